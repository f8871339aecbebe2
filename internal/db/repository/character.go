package repository

import (
	"context"
	"database/sql"

	"sheetvault/internal/domain"
)

// CharacterRepo persists character sheets.
type CharacterRepo struct {
	db *sql.DB
}

// NewCharacterRepo creates a new CharacterRepo.
func NewCharacterRepo(db *sql.DB) *CharacterRepo {
	return &CharacterRepo{db: db}
}

func (r *CharacterRepo) Create(ctx context.Context, c *domain.Character) (*domain.Character, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO characters (id, name, owner_id, background)
		VALUES (?, ?, ?, ?)
		RETURNING id, name, owner_id, background, created_at, updated_at`,
		c.ID, c.Name, nullStr(c.OwnerID), c.Background,
	)
	return scanCharacter(row)
}

func (r *CharacterRepo) GetByID(ctx context.Context, id string) (*domain.Character, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, owner_id, background, created_at, updated_at
		FROM characters WHERE id = ?`, id)
	return scanCharacter(row)
}

// List returns all characters, newest first.
func (r *CharacterRepo) List(ctx context.Context, page domain.PageRequest) ([]domain.Character, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM characters`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, owner_id, background, created_at, updated_at
		FROM characters ORDER BY created_at DESC, id LIMIT ? OFFSET ?`,
		page.Limit(), page.Offset())
	if err != nil {
		return nil, 0, err
	}
	return collectCharacters(rows, total)
}

// ListByOwner returns the characters owned by the given user, newest first.
func (r *CharacterRepo) ListByOwner(ctx context.Context, ownerID string, page domain.PageRequest) ([]domain.Character, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM characters WHERE owner_id = ?`, ownerID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, owner_id, background, created_at, updated_at
		FROM characters WHERE owner_id = ?
		ORDER BY created_at DESC, id LIMIT ? OFFSET ?`,
		ownerID, page.Limit(), page.Offset())
	if err != nil {
		return nil, 0, err
	}
	return collectCharacters(rows, total)
}

// Update persists the mutable fields of a character. Ownership is assigned
// at creation time and never updated here.
func (r *CharacterRepo) Update(ctx context.Context, c *domain.Character) (*domain.Character, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE characters
		SET name = ?, background = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
		RETURNING id, name, owner_id, background, created_at, updated_at`,
		c.Name, c.Background, c.ID,
	)
	return scanCharacter(row)
}

func (r *CharacterRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM characters WHERE id = ?`, id)
	if err != nil {
		return mapDBError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound("character %s not found", id)
	}
	return nil
}

func scanCharacter(row *sql.Row) (*domain.Character, error) {
	var c domain.Character
	var owner sql.NullString
	err := row.Scan(&c.ID, &c.Name, &owner, &c.Background, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, mapDBError(err)
	}
	c.OwnerID = strPtr(owner)
	return &c, nil
}

func collectCharacters(rows *sql.Rows, total int64) ([]domain.Character, int64, error) {
	defer rows.Close() //nolint:errcheck

	var cs []domain.Character
	for rows.Next() {
		var c domain.Character
		var owner sql.NullString
		if err := rows.Scan(&c.ID, &c.Name, &owner, &c.Background, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, 0, err
		}
		c.OwnerID = strPtr(owner)
		cs = append(cs, c)
	}
	return cs, total, rows.Err()
}
