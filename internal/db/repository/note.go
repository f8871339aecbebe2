package repository

import (
	"context"
	"database/sql"

	"sheetvault/internal/domain"
)

// NoteRepo persists notes belonging to a character.
type NoteRepo struct {
	db *sql.DB
}

// NewNoteRepo creates a new NoteRepo.
func NewNoteRepo(db *sql.DB) *NoteRepo {
	return &NoteRepo{db: db}
}

func (r *NoteRepo) Create(ctx context.Context, n *domain.Note) (*domain.Note, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO notes (id, character_id, title, body)
		VALUES (?, ?, ?, ?)
		RETURNING id, character_id, title, body, created_at`,
		n.ID, n.CharacterID, n.Title, n.Body,
	)
	return scanNote(row)
}

func (r *NoteRepo) GetByID(ctx context.Context, id string) (*domain.Note, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, character_id, title, body, created_at
		FROM notes WHERE id = ?`, id)
	return scanNote(row)
}

func (r *NoteRepo) ListByCharacter(ctx context.Context, characterID string) ([]domain.Note, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, character_id, title, body, created_at
		FROM notes WHERE character_id = ? ORDER BY created_at DESC, id`, characterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var notes []domain.Note
	for rows.Next() {
		var n domain.Note
		if err := rows.Scan(&n.ID, &n.CharacterID, &n.Title, &n.Body, &n.CreatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (r *NoteRepo) Update(ctx context.Context, n *domain.Note) (*domain.Note, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE notes SET title = ?, body = ?
		WHERE id = ?
		RETURNING id, character_id, title, body, created_at`,
		n.Title, n.Body, n.ID,
	)
	return scanNote(row)
}

func (r *NoteRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return mapDBError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound("note %s not found", id)
	}
	return nil
}

func scanNote(row *sql.Row) (*domain.Note, error) {
	var n domain.Note
	err := row.Scan(&n.ID, &n.CharacterID, &n.Title, &n.Body, &n.CreatedAt)
	if err != nil {
		return nil, mapDBError(err)
	}
	return &n, nil
}
