package domain

import "time"

// Character is the root entity of a character sheet. OwnerID is nil for
// master-managed characters (NPCs); it is assigned at creation time and
// treated as immutable afterwards.
type Character struct {
	ID         string
	Name       string
	OwnerID    *string
	Background string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CreateCharacterRequest holds parameters for creating a new character.
type CreateCharacterRequest struct {
	Name       string
	Background string
	// NPC requests an ownerless character. Only elevated principals may
	// create one; the service enforces this.
	NPC bool
}

// Validate checks that the request is well-formed.
func (r *CreateCharacterRequest) Validate() error {
	if r.Name == "" {
		return ErrValidation("character name is required")
	}
	return nil
}

// UpdateCharacterRequest holds a field-by-field patch for a character.
// Nil fields are left unchanged.
type UpdateCharacterRequest struct {
	Name       *string
	Background *string
}

// Validate checks that the patch is well-formed.
func (r *UpdateCharacterRequest) Validate() error {
	if r.Name != nil && *r.Name == "" {
		return ErrValidation("character name cannot be empty")
	}
	return nil
}

// Apply copies the non-nil patch fields onto the character.
func (r *UpdateCharacterRequest) Apply(c *Character) {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.Background != nil {
		c.Background = *r.Background
	}
}
