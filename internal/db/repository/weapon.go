package repository

import (
	"context"
	"database/sql"

	"sheetvault/internal/domain"
)

// WeaponRepo persists weapons belonging to a character.
type WeaponRepo struct {
	db *sql.DB
}

// NewWeaponRepo creates a new WeaponRepo.
func NewWeaponRepo(db *sql.DB) *WeaponRepo {
	return &WeaponRepo{db: db}
}

func (r *WeaponRepo) Create(ctx context.Context, w *domain.Weapon) (*domain.Weapon, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO weapons (id, character_id, name, damage, weapon_range, notes)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id, character_id, name, damage, weapon_range, notes`,
		w.ID, w.CharacterID, w.Name, w.Damage, w.Range, w.Notes,
	)
	return scanWeapon(row)
}

func (r *WeaponRepo) GetByID(ctx context.Context, id string) (*domain.Weapon, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, character_id, name, damage, weapon_range, notes
		FROM weapons WHERE id = ?`, id)
	return scanWeapon(row)
}

func (r *WeaponRepo) ListByCharacter(ctx context.Context, characterID string) ([]domain.Weapon, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, character_id, name, damage, weapon_range, notes
		FROM weapons WHERE character_id = ? ORDER BY name, id`, characterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var weapons []domain.Weapon
	for rows.Next() {
		var w domain.Weapon
		if err := rows.Scan(&w.ID, &w.CharacterID, &w.Name, &w.Damage, &w.Range, &w.Notes); err != nil {
			return nil, err
		}
		weapons = append(weapons, w)
	}
	return weapons, rows.Err()
}

func (r *WeaponRepo) Update(ctx context.Context, w *domain.Weapon) (*domain.Weapon, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE weapons SET name = ?, damage = ?, weapon_range = ?, notes = ?
		WHERE id = ?
		RETURNING id, character_id, name, damage, weapon_range, notes`,
		w.Name, w.Damage, w.Range, w.Notes, w.ID,
	)
	return scanWeapon(row)
}

func (r *WeaponRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM weapons WHERE id = ?`, id)
	if err != nil {
		return mapDBError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound("weapon %s not found", id)
	}
	return nil
}

func scanWeapon(row *sql.Row) (*domain.Weapon, error) {
	var w domain.Weapon
	err := row.Scan(&w.ID, &w.CharacterID, &w.Name, &w.Damage, &w.Range, &w.Notes)
	if err != nil {
		return nil, mapDBError(err)
	}
	return &w, nil
}
