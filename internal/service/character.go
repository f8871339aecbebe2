package service

import (
	"context"
	"log/slog"

	"sheetvault/internal/domain"
)

// CharacterStore is the persistence interface used by CharacterService.
type CharacterStore interface {
	Create(ctx context.Context, c *domain.Character) (*domain.Character, error)
	GetByID(ctx context.Context, id string) (*domain.Character, error)
	List(ctx context.Context, page domain.PageRequest) ([]domain.Character, int64, error)
	ListByOwner(ctx context.Context, ownerID string, page domain.PageRequest) ([]domain.Character, int64, error)
	Update(ctx context.Context, c *domain.Character) (*domain.Character, error)
	Delete(ctx context.Context, id string) error
}

// CharacterService implements character sheet operations. Every operation on
// an existing character resolves the record first (404 before 403) and then
// applies the ownership access policy.
type CharacterService struct {
	repo   CharacterStore
	logger *slog.Logger
}

// NewCharacterService creates a new CharacterService.
func NewCharacterService(repo CharacterStore, logger *slog.Logger) *CharacterService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CharacterService{repo: repo, logger: logger}
}

// Create creates a character owned by the calling principal. NPC requests
// produce an ownerless character and require the master role.
func (s *CharacterService) Create(ctx context.Context, req domain.CreateCharacterRequest) (*domain.Character, error) {
	actor, err := domain.RequirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var owner *string
	if req.NPC {
		if !actor.IsMaster {
			return nil, domain.ErrAccessDenied(accessDeniedMessage)
		}
	} else {
		id := actor.ID
		owner = &id
	}

	c, err := s.repo.Create(ctx, &domain.Character{
		ID:         domain.NewID(),
		Name:       req.Name,
		OwnerID:    owner,
		Background: req.Background,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("character created", "character", c.ID, "actor", actor.ID, "npc", req.NPC)
	return c, nil
}

// Get returns a character the actor may access.
func (s *CharacterService) Get(ctx context.Context, id string) (*domain.Character, error) {
	_, c, err := authorizeCharacter(ctx, s.repo, id)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// List returns the characters visible to the actor: their own for players,
// everything for masters.
func (s *CharacterService) List(ctx context.Context, page domain.PageRequest) ([]domain.Character, int64, error) {
	actor, err := domain.RequirePrincipal(ctx)
	if err != nil {
		return nil, 0, err
	}
	if actor.IsMaster {
		return s.repo.List(ctx, page)
	}
	return s.repo.ListByOwner(ctx, actor.ID, page)
}

// Update applies a field-by-field patch to a character.
func (s *CharacterService) Update(ctx context.Context, id string, req domain.UpdateCharacterRequest) (*domain.Character, error) {
	actor, c, err := authorizeCharacter(ctx, s.repo, id)
	if err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	req.Apply(c)
	updated, err := s.repo.Update(ctx, c)
	if err != nil {
		return nil, err
	}

	s.logger.Info("character updated", "character", id, "actor", actor.ID)
	return updated, nil
}

// Delete removes a character and, via cascade, its sheet entries.
func (s *CharacterService) Delete(ctx context.Context, id string) error {
	actor, _, err := authorizeCharacter(ctx, s.repo, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("character deleted", "character", id, "actor", actor.ID)
	return nil
}
