package api

import (
	"time"

	"sheetvault/internal/domain"
	"sheetvault/internal/service"
)

// Wire types for the JSON API. Domain entities stay free of JSON tags; the
// conversion happens here.

type registerRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Password    string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type principalResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

type loginResponse struct {
	Token     string            `json:"token"`
	ExpiresAt time.Time         `json:"expires_at"`
	Principal principalResponse `json:"principal"`
}

func toPrincipalResponse(p domain.Principal) principalResponse {
	return principalResponse{
		ID:          p.ID,
		Email:       p.Email,
		DisplayName: p.Name,
		Role:        p.Role(),
	}
}

func toLoginResponse(res *service.LoginResult) loginResponse {
	return loginResponse{
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
		Principal: toPrincipalResponse(res.Principal),
	}
}

type createCharacterRequest struct {
	Name       string `json:"name"`
	Background string `json:"background,omitempty"`
	NPC        bool   `json:"npc,omitempty"`
}

type updateCharacterRequest struct {
	Name       *string `json:"name,omitempty"`
	Background *string `json:"background,omitempty"`
}

type characterResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	OwnerID    *string   `json:"owner_id"`
	Background string    `json:"background,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type characterListResponse struct {
	Characters    []characterResponse `json:"characters"`
	NextPageToken string              `json:"next_page_token,omitempty"`
}

func toCharacterResponse(c *domain.Character) characterResponse {
	return characterResponse{
		ID:         c.ID,
		Name:       c.Name,
		OwnerID:    c.OwnerID,
		Background: c.Background,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

type skillPayload struct {
	Name      string `json:"name"`
	Rating    int    `json:"rating"`
	Specialty string `json:"specialty,omitempty"`
}

type skillPatch struct {
	Name      *string `json:"name,omitempty"`
	Rating    *int    `json:"rating,omitempty"`
	Specialty *string `json:"specialty,omitempty"`
}

type skillResponse struct {
	ID          string `json:"id"`
	CharacterID string `json:"character_id"`
	Name        string `json:"name"`
	Rating      int    `json:"rating"`
	Specialty   string `json:"specialty,omitempty"`
}

func toSkillResponse(s *domain.Skill) skillResponse {
	return skillResponse{
		ID:          s.ID,
		CharacterID: s.CharacterID,
		Name:        s.Name,
		Rating:      s.Rating,
		Specialty:   s.Specialty,
	}
}

type equipmentPayload struct {
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	Description string `json:"description,omitempty"`
}

type equipmentPatch struct {
	Name        *string `json:"name,omitempty"`
	Quantity    *int    `json:"quantity,omitempty"`
	Description *string `json:"description,omitempty"`
}

type equipmentResponse struct {
	ID          string `json:"id"`
	CharacterID string `json:"character_id"`
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	Description string `json:"description,omitempty"`
}

func toEquipmentResponse(e *domain.Equipment) equipmentResponse {
	return equipmentResponse{
		ID:          e.ID,
		CharacterID: e.CharacterID,
		Name:        e.Name,
		Quantity:    e.Quantity,
		Description: e.Description,
	}
}

type weaponPayload struct {
	Name   string `json:"name"`
	Damage string `json:"damage,omitempty"`
	Range  string `json:"range,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

type weaponPatch struct {
	Name   *string `json:"name,omitempty"`
	Damage *string `json:"damage,omitempty"`
	Range  *string `json:"range,omitempty"`
	Notes  *string `json:"notes,omitempty"`
}

type weaponResponse struct {
	ID          string `json:"id"`
	CharacterID string `json:"character_id"`
	Name        string `json:"name"`
	Damage      string `json:"damage,omitempty"`
	Range       string `json:"range,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

func toWeaponResponse(w *domain.Weapon) weaponResponse {
	return weaponResponse{
		ID:          w.ID,
		CharacterID: w.CharacterID,
		Name:        w.Name,
		Damage:      w.Damage,
		Range:       w.Range,
		Notes:       w.Notes,
	}
}

type notePayload struct {
	Title string `json:"title"`
	Body  string `json:"body,omitempty"`
}

type notePatch struct {
	Title *string `json:"title,omitempty"`
	Body  *string `json:"body,omitempty"`
}

type noteResponse struct {
	ID          string    `json:"id"`
	CharacterID string    `json:"character_id"`
	Title       string    `json:"title"`
	Body        string    `json:"body,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func toNoteResponse(n *domain.Note) noteResponse {
	return noteResponse{
		ID:          n.ID,
		CharacterID: n.CharacterID,
		Title:       n.Title,
		Body:        n.Body,
		CreatedAt:   n.CreatedAt,
	}
}
