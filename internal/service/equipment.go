package service

import (
	"context"
	"log/slog"

	"sheetvault/internal/domain"
)

// EquipmentStore is the persistence interface used by EquipmentService.
type EquipmentStore interface {
	Create(ctx context.Context, e *domain.Equipment) (*domain.Equipment, error)
	GetByID(ctx context.Context, id string) (*domain.Equipment, error)
	ListByCharacter(ctx context.Context, characterID string) ([]domain.Equipment, error)
	Update(ctx context.Context, e *domain.Equipment) (*domain.Equipment, error)
	Delete(ctx context.Context, id string) error
}

// EquipmentService manages the equipment section of a character sheet.
type EquipmentService struct {
	items  EquipmentStore
	chars  characterResolver
	logger *slog.Logger
}

// NewEquipmentService creates a new EquipmentService.
func NewEquipmentService(items EquipmentStore, chars characterResolver, logger *slog.Logger) *EquipmentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &EquipmentService{items: items, chars: chars, logger: logger}
}

// ListForCharacter returns the character's equipment.
func (s *EquipmentService) ListForCharacter(ctx context.Context, characterID string) ([]domain.Equipment, error) {
	if _, _, err := authorizeCharacter(ctx, s.chars, characterID); err != nil {
		return nil, err
	}
	return s.items.ListByCharacter(ctx, characterID)
}

// Add creates an equipment entry on the character sheet.
func (s *EquipmentService) Add(ctx context.Context, characterID string, req domain.CreateEquipmentRequest) (*domain.Equipment, error) {
	if _, _, err := authorizeCharacter(ctx, s.chars, characterID); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	return s.items.Create(ctx, &domain.Equipment{
		ID:          domain.NewID(),
		CharacterID: characterID,
		Name:        req.Name,
		Quantity:    quantity,
		Description: req.Description,
	})
}

// Update applies a field-by-field patch to an equipment entry.
func (s *EquipmentService) Update(ctx context.Context, characterID, equipmentID string, req domain.UpdateEquipmentRequest) (*domain.Equipment, error) {
	if _, _, err := authorizeCharacter(ctx, s.chars, characterID); err != nil {
		return nil, err
	}
	e, err := s.items.GetByID(ctx, equipmentID)
	if err != nil {
		return nil, err
	}
	if e.CharacterID != characterID {
		return nil, domain.ErrNotFound("equipment %s not found", equipmentID)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	req.Apply(e)
	return s.items.Update(ctx, e)
}

// Delete removes an equipment entry from the character sheet.
func (s *EquipmentService) Delete(ctx context.Context, characterID, equipmentID string) error {
	if _, _, err := authorizeCharacter(ctx, s.chars, characterID); err != nil {
		return err
	}
	e, err := s.items.GetByID(ctx, equipmentID)
	if err != nil {
		return err
	}
	if e.CharacterID != characterID {
		return domain.ErrNotFound("equipment %s not found", equipmentID)
	}
	return s.items.Delete(ctx, equipmentID)
}
