package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"sheetvault/internal/domain"
)

// CreateCharacter creates a character owned by the caller, or an ownerless
// NPC when requested by a master.
func (h *Handler) CreateCharacter(w http.ResponseWriter, r *http.Request) {
	var req createCharacterRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	c, err := h.characters.Create(r.Context(), domain.CreateCharacterRequest{
		Name:       req.Name,
		Background: req.Background,
		NPC:        req.NPC,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, toCharacterResponse(c))
}

// ListCharacters lists the characters visible to the caller.
func (h *Handler) ListCharacters(w http.ResponseWriter, r *http.Request) {
	page := pageFromQuery(r)

	cs, total, err := h.characters.List(r.Context(), page)
	if err != nil {
		h.writeError(w, err)
		return
	}

	out := characterListResponse{
		Characters:    make([]characterResponse, 0, len(cs)),
		NextPageToken: domain.NextPageToken(page.Offset(), page.Limit(), total),
	}
	for i := range cs {
		out.Characters = append(out.Characters, toCharacterResponse(&cs[i]))
	}
	h.writeJSON(w, http.StatusOK, out)
}

// GetCharacter returns a single character.
func (h *Handler) GetCharacter(w http.ResponseWriter, r *http.Request) {
	c, err := h.characters.Get(r.Context(), chi.URLParam(r, "characterID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCharacterResponse(c))
}

// UpdateCharacter applies a partial update to a character.
func (h *Handler) UpdateCharacter(w http.ResponseWriter, r *http.Request) {
	var req updateCharacterRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	c, err := h.characters.Update(r.Context(), chi.URLParam(r, "characterID"), domain.UpdateCharacterRequest{
		Name:       req.Name,
		Background: req.Background,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toCharacterResponse(c))
}

// DeleteCharacter removes a character and its sheet entries.
func (h *Handler) DeleteCharacter(w http.ResponseWriter, r *http.Request) {
	if err := h.characters.Delete(r.Context(), chi.URLParam(r, "characterID")); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
