package service

import (
	"context"
	"log/slog"

	"sheetvault/internal/domain"
)

// NoteStore is the persistence interface used by NoteService.
type NoteStore interface {
	Create(ctx context.Context, n *domain.Note) (*domain.Note, error)
	GetByID(ctx context.Context, id string) (*domain.Note, error)
	ListByCharacter(ctx context.Context, characterID string) ([]domain.Note, error)
	Update(ctx context.Context, n *domain.Note) (*domain.Note, error)
	Delete(ctx context.Context, id string) error
}

// NoteService manages the notes section of a character sheet.
type NoteService struct {
	notes  NoteStore
	chars  characterResolver
	logger *slog.Logger
}

// NewNoteService creates a new NoteService.
func NewNoteService(notes NoteStore, chars characterResolver, logger *slog.Logger) *NoteService {
	if logger == nil {
		logger = slog.Default()
	}
	return &NoteService{notes: notes, chars: chars, logger: logger}
}

// ListForCharacter returns the character's notes.
func (s *NoteService) ListForCharacter(ctx context.Context, characterID string) ([]domain.Note, error) {
	if _, _, err := authorizeCharacter(ctx, s.chars, characterID); err != nil {
		return nil, err
	}
	return s.notes.ListByCharacter(ctx, characterID)
}

// Add creates a note on the character sheet.
func (s *NoteService) Add(ctx context.Context, characterID string, req domain.CreateNoteRequest) (*domain.Note, error) {
	if _, _, err := authorizeCharacter(ctx, s.chars, characterID); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.notes.Create(ctx, &domain.Note{
		ID:          domain.NewID(),
		CharacterID: characterID,
		Title:       req.Title,
		Body:        req.Body,
	})
}

// Update applies a field-by-field patch to a note.
func (s *NoteService) Update(ctx context.Context, characterID, noteID string, req domain.UpdateNoteRequest) (*domain.Note, error) {
	if _, _, err := authorizeCharacter(ctx, s.chars, characterID); err != nil {
		return nil, err
	}
	n, err := s.notes.GetByID(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if n.CharacterID != characterID {
		return nil, domain.ErrNotFound("note %s not found", noteID)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	req.Apply(n)
	return s.notes.Update(ctx, n)
}

// Delete removes a note from the character sheet.
func (s *NoteService) Delete(ctx context.Context, characterID, noteID string) error {
	if _, _, err := authorizeCharacter(ctx, s.chars, characterID); err != nil {
		return err
	}
	n, err := s.notes.GetByID(ctx, noteID)
	if err != nil {
		return err
	}
	if n.CharacterID != characterID {
		return domain.ErrNotFound("note %s not found", noteID)
	}
	return s.notes.Delete(ctx, noteID)
}
