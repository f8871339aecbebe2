package service

import (
	"context"
	"log/slog"

	"sheetvault/internal/domain"
)

// WeaponStore is the persistence interface used by WeaponService.
type WeaponStore interface {
	Create(ctx context.Context, w *domain.Weapon) (*domain.Weapon, error)
	GetByID(ctx context.Context, id string) (*domain.Weapon, error)
	ListByCharacter(ctx context.Context, characterID string) ([]domain.Weapon, error)
	Update(ctx context.Context, w *domain.Weapon) (*domain.Weapon, error)
	Delete(ctx context.Context, id string) error
}

// WeaponService manages the weapons section of a character sheet.
type WeaponService struct {
	weapons WeaponStore
	chars   characterResolver
	logger  *slog.Logger
}

// NewWeaponService creates a new WeaponService.
func NewWeaponService(weapons WeaponStore, chars characterResolver, logger *slog.Logger) *WeaponService {
	if logger == nil {
		logger = slog.Default()
	}
	return &WeaponService{weapons: weapons, chars: chars, logger: logger}
}

// ListForCharacter returns the character's weapons.
func (s *WeaponService) ListForCharacter(ctx context.Context, characterID string) ([]domain.Weapon, error) {
	if _, _, err := authorizeCharacter(ctx, s.chars, characterID); err != nil {
		return nil, err
	}
	return s.weapons.ListByCharacter(ctx, characterID)
}

// Add creates a weapon entry on the character sheet.
func (s *WeaponService) Add(ctx context.Context, characterID string, req domain.CreateWeaponRequest) (*domain.Weapon, error) {
	if _, _, err := authorizeCharacter(ctx, s.chars, characterID); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.weapons.Create(ctx, &domain.Weapon{
		ID:          domain.NewID(),
		CharacterID: characterID,
		Name:        req.Name,
		Damage:      req.Damage,
		Range:       req.Range,
		Notes:       req.Notes,
	})
}

// Update applies a field-by-field patch to a weapon.
func (s *WeaponService) Update(ctx context.Context, characterID, weaponID string, req domain.UpdateWeaponRequest) (*domain.Weapon, error) {
	if _, _, err := authorizeCharacter(ctx, s.chars, characterID); err != nil {
		return nil, err
	}
	w, err := s.weapons.GetByID(ctx, weaponID)
	if err != nil {
		return nil, err
	}
	if w.CharacterID != characterID {
		return nil, domain.ErrNotFound("weapon %s not found", weaponID)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	req.Apply(w)
	return s.weapons.Update(ctx, w)
}

// Delete removes a weapon from the character sheet.
func (s *WeaponService) Delete(ctx context.Context, characterID, weaponID string) error {
	if _, _, err := authorizeCharacter(ctx, s.chars, characterID); err != nil {
		return err
	}
	w, err := s.weapons.GetByID(ctx, weaponID)
	if err != nil {
		return err
	}
	if w.CharacterID != characterID {
		return domain.ErrNotFound("weapon %s not found", weaponID)
	}
	return s.weapons.Delete(ctx, weaponID)
}
