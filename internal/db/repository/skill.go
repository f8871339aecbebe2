package repository

import (
	"context"
	"database/sql"

	"sheetvault/internal/domain"
)

// SkillRepo persists skills belonging to a character.
type SkillRepo struct {
	db *sql.DB
}

// NewSkillRepo creates a new SkillRepo.
func NewSkillRepo(db *sql.DB) *SkillRepo {
	return &SkillRepo{db: db}
}

func (r *SkillRepo) Create(ctx context.Context, s *domain.Skill) (*domain.Skill, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO skills (id, character_id, name, rating, specialty)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id, character_id, name, rating, specialty`,
		s.ID, s.CharacterID, s.Name, s.Rating, s.Specialty,
	)
	return scanSkill(row)
}

func (r *SkillRepo) GetByID(ctx context.Context, id string) (*domain.Skill, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, character_id, name, rating, specialty
		FROM skills WHERE id = ?`, id)
	return scanSkill(row)
}

func (r *SkillRepo) ListByCharacter(ctx context.Context, characterID string) ([]domain.Skill, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, character_id, name, rating, specialty
		FROM skills WHERE character_id = ? ORDER BY name, id`, characterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var skills []domain.Skill
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.CharacterID, &s.Name, &s.Rating, &s.Specialty); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

func (r *SkillRepo) Update(ctx context.Context, s *domain.Skill) (*domain.Skill, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE skills SET name = ?, rating = ?, specialty = ?
		WHERE id = ?
		RETURNING id, character_id, name, rating, specialty`,
		s.Name, s.Rating, s.Specialty, s.ID,
	)
	return scanSkill(row)
}

func (r *SkillRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM skills WHERE id = ?`, id)
	if err != nil {
		return mapDBError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound("skill %s not found", id)
	}
	return nil
}

func scanSkill(row *sql.Row) (*domain.Skill, error) {
	var s domain.Skill
	err := row.Scan(&s.ID, &s.CharacterID, &s.Name, &s.Rating, &s.Specialty)
	if err != nil {
		return nil, mapDBError(err)
	}
	return &s, nil
}
