package domain

import "time"

// Skill is a rated ability on a character sheet.
type Skill struct {
	ID          string
	CharacterID string
	Name        string
	Rating      int
	Specialty   string
}

// CreateSkillRequest holds parameters for adding a skill to a character.
type CreateSkillRequest struct {
	Name      string
	Rating    int
	Specialty string
}

// Validate checks that the request is well-formed.
func (r *CreateSkillRequest) Validate() error {
	if r.Name == "" {
		return ErrValidation("skill name is required")
	}
	if r.Rating < 0 {
		return ErrValidation("skill rating cannot be negative")
	}
	return nil
}

// UpdateSkillRequest holds a field-by-field patch for a skill.
type UpdateSkillRequest struct {
	Name      *string
	Rating    *int
	Specialty *string
}

// Validate checks that the patch is well-formed.
func (r *UpdateSkillRequest) Validate() error {
	if r.Name != nil && *r.Name == "" {
		return ErrValidation("skill name cannot be empty")
	}
	if r.Rating != nil && *r.Rating < 0 {
		return ErrValidation("skill rating cannot be negative")
	}
	return nil
}

// Apply copies the non-nil patch fields onto the skill.
func (r *UpdateSkillRequest) Apply(s *Skill) {
	if r.Name != nil {
		s.Name = *r.Name
	}
	if r.Rating != nil {
		s.Rating = *r.Rating
	}
	if r.Specialty != nil {
		s.Specialty = *r.Specialty
	}
}

// Equipment is a carried item on a character sheet.
type Equipment struct {
	ID          string
	CharacterID string
	Name        string
	Quantity    int
	Description string
}

// CreateEquipmentRequest holds parameters for adding equipment.
type CreateEquipmentRequest struct {
	Name        string
	Quantity    int
	Description string
}

// Validate checks that the request is well-formed.
func (r *CreateEquipmentRequest) Validate() error {
	if r.Name == "" {
		return ErrValidation("equipment name is required")
	}
	if r.Quantity < 0 {
		return ErrValidation("equipment quantity cannot be negative")
	}
	return nil
}

// UpdateEquipmentRequest holds a field-by-field patch for equipment.
type UpdateEquipmentRequest struct {
	Name        *string
	Quantity    *int
	Description *string
}

// Validate checks that the patch is well-formed.
func (r *UpdateEquipmentRequest) Validate() error {
	if r.Name != nil && *r.Name == "" {
		return ErrValidation("equipment name cannot be empty")
	}
	if r.Quantity != nil && *r.Quantity < 0 {
		return ErrValidation("equipment quantity cannot be negative")
	}
	return nil
}

// Apply copies the non-nil patch fields onto the equipment.
func (r *UpdateEquipmentRequest) Apply(e *Equipment) {
	if r.Name != nil {
		e.Name = *r.Name
	}
	if r.Quantity != nil {
		e.Quantity = *r.Quantity
	}
	if r.Description != nil {
		e.Description = *r.Description
	}
}

// Weapon is an armament entry on a character sheet.
type Weapon struct {
	ID          string
	CharacterID string
	Name        string
	Damage      string
	Range       string
	Notes       string
}

// CreateWeaponRequest holds parameters for adding a weapon.
type CreateWeaponRequest struct {
	Name   string
	Damage string
	Range  string
	Notes  string
}

// Validate checks that the request is well-formed.
func (r *CreateWeaponRequest) Validate() error {
	if r.Name == "" {
		return ErrValidation("weapon name is required")
	}
	return nil
}

// UpdateWeaponRequest holds a field-by-field patch for a weapon.
type UpdateWeaponRequest struct {
	Name   *string
	Damage *string
	Range  *string
	Notes  *string
}

// Validate checks that the patch is well-formed.
func (r *UpdateWeaponRequest) Validate() error {
	if r.Name != nil && *r.Name == "" {
		return ErrValidation("weapon name cannot be empty")
	}
	return nil
}

// Apply copies the non-nil patch fields onto the weapon.
func (r *UpdateWeaponRequest) Apply(w *Weapon) {
	if r.Name != nil {
		w.Name = *r.Name
	}
	if r.Damage != nil {
		w.Damage = *r.Damage
	}
	if r.Range != nil {
		w.Range = *r.Range
	}
	if r.Notes != nil {
		w.Notes = *r.Notes
	}
}

// Note is a free-form journal entry on a character sheet.
type Note struct {
	ID          string
	CharacterID string
	Title       string
	Body        string
	CreatedAt   time.Time
}

// CreateNoteRequest holds parameters for adding a note.
type CreateNoteRequest struct {
	Title string
	Body  string
}

// Validate checks that the request is well-formed.
func (r *CreateNoteRequest) Validate() error {
	if r.Title == "" {
		return ErrValidation("note title is required")
	}
	return nil
}

// UpdateNoteRequest holds a field-by-field patch for a note.
type UpdateNoteRequest struct {
	Title *string
	Body  *string
}

// Validate checks that the patch is well-formed.
func (r *UpdateNoteRequest) Validate() error {
	if r.Title != nil && *r.Title == "" {
		return ErrValidation("note title cannot be empty")
	}
	return nil
}

// Apply copies the non-nil patch fields onto the note.
func (r *UpdateNoteRequest) Apply(n *Note) {
	if r.Title != nil {
		n.Title = *r.Title
	}
	if r.Body != nil {
		n.Body = *r.Body
	}
}
