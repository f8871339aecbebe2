package service

import (
	"context"
	"log/slog"

	"sheetvault/internal/domain"
)

// SkillStore is the persistence interface used by SkillService.
type SkillStore interface {
	Create(ctx context.Context, s *domain.Skill) (*domain.Skill, error)
	GetByID(ctx context.Context, id string) (*domain.Skill, error)
	ListByCharacter(ctx context.Context, characterID string) ([]domain.Skill, error)
	Update(ctx context.Context, s *domain.Skill) (*domain.Skill, error)
	Delete(ctx context.Context, id string) error
}

// SkillService manages the skills section of a character sheet. Access is
// decided by the parent character's owner reference.
type SkillService struct {
	skills SkillStore
	chars  characterResolver
	logger *slog.Logger
}

// NewSkillService creates a new SkillService.
func NewSkillService(skills SkillStore, chars characterResolver, logger *slog.Logger) *SkillService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SkillService{skills: skills, chars: chars, logger: logger}
}

// ListForCharacter returns the character's skills.
func (s *SkillService) ListForCharacter(ctx context.Context, characterID string) ([]domain.Skill, error) {
	if _, _, err := authorizeCharacter(ctx, s.chars, characterID); err != nil {
		return nil, err
	}
	return s.skills.ListByCharacter(ctx, characterID)
}

// Add creates a skill on the character sheet.
func (s *SkillService) Add(ctx context.Context, characterID string, req domain.CreateSkillRequest) (*domain.Skill, error) {
	if _, _, err := authorizeCharacter(ctx, s.chars, characterID); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.skills.Create(ctx, &domain.Skill{
		ID:          domain.NewID(),
		CharacterID: characterID,
		Name:        req.Name,
		Rating:      req.Rating,
		Specialty:   req.Specialty,
	})
}

// Update applies a field-by-field patch to a skill.
func (s *SkillService) Update(ctx context.Context, characterID, skillID string, req domain.UpdateSkillRequest) (*domain.Skill, error) {
	if _, _, err := authorizeCharacter(ctx, s.chars, characterID); err != nil {
		return nil, err
	}
	sk, err := s.skills.GetByID(ctx, skillID)
	if err != nil {
		return nil, err
	}
	if sk.CharacterID != characterID {
		return nil, domain.ErrNotFound("skill %s not found", skillID)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	req.Apply(sk)
	return s.skills.Update(ctx, sk)
}

// Delete removes a skill from the character sheet.
func (s *SkillService) Delete(ctx context.Context, characterID, skillID string) error {
	if _, _, err := authorizeCharacter(ctx, s.chars, characterID); err != nil {
		return err
	}
	sk, err := s.skills.GetByID(ctx, skillID)
	if err != nil {
		return err
	}
	if sk.CharacterID != characterID {
		return domain.ErrNotFound("skill %s not found", skillID)
	}
	return s.skills.Delete(ctx, skillID)
}
