package repository

import (
	"context"
	"database/sql"

	"sheetvault/internal/domain"
)

// EquipmentRepo persists equipment belonging to a character.
type EquipmentRepo struct {
	db *sql.DB
}

// NewEquipmentRepo creates a new EquipmentRepo.
func NewEquipmentRepo(db *sql.DB) *EquipmentRepo {
	return &EquipmentRepo{db: db}
}

func (r *EquipmentRepo) Create(ctx context.Context, e *domain.Equipment) (*domain.Equipment, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO equipment (id, character_id, name, quantity, description)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id, character_id, name, quantity, description`,
		e.ID, e.CharacterID, e.Name, e.Quantity, e.Description,
	)
	return scanEquipment(row)
}

func (r *EquipmentRepo) GetByID(ctx context.Context, id string) (*domain.Equipment, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, character_id, name, quantity, description
		FROM equipment WHERE id = ?`, id)
	return scanEquipment(row)
}

func (r *EquipmentRepo) ListByCharacter(ctx context.Context, characterID string) ([]domain.Equipment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, character_id, name, quantity, description
		FROM equipment WHERE character_id = ? ORDER BY name, id`, characterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var items []domain.Equipment
	for rows.Next() {
		var e domain.Equipment
		if err := rows.Scan(&e.ID, &e.CharacterID, &e.Name, &e.Quantity, &e.Description); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

func (r *EquipmentRepo) Update(ctx context.Context, e *domain.Equipment) (*domain.Equipment, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE equipment SET name = ?, quantity = ?, description = ?
		WHERE id = ?
		RETURNING id, character_id, name, quantity, description`,
		e.Name, e.Quantity, e.Description, e.ID,
	)
	return scanEquipment(row)
}

func (r *EquipmentRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM equipment WHERE id = ?`, id)
	if err != nil {
		return mapDBError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound("equipment %s not found", id)
	}
	return nil
}

func scanEquipment(row *sql.Row) (*domain.Equipment, error) {
	var e domain.Equipment
	err := row.Scan(&e.ID, &e.CharacterID, &e.Name, &e.Quantity, &e.Description)
	if err != nil {
		return nil, mapDBError(err)
	}
	return &e, nil
}
