package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"sheetvault/internal/domain"
)

func (h *Handler) ListSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := h.skills.ListForCharacter(r.Context(), chi.URLParam(r, "characterID"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	out := make([]skillResponse, 0, len(skills))
	for i := range skills {
		out = append(out, toSkillResponse(&skills[i]))
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) AddSkill(w http.ResponseWriter, r *http.Request) {
	var req skillPayload
	if err := h.decodeJSON(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	s, err := h.skills.Add(r.Context(), chi.URLParam(r, "characterID"), domain.CreateSkillRequest{
		Name:      req.Name,
		Rating:    req.Rating,
		Specialty: req.Specialty,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, toSkillResponse(s))
}

func (h *Handler) UpdateSkill(w http.ResponseWriter, r *http.Request) {
	var req skillPatch
	if err := h.decodeJSON(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	s, err := h.skills.Update(r.Context(), chi.URLParam(r, "characterID"), chi.URLParam(r, "skillID"), domain.UpdateSkillRequest{
		Name:      req.Name,
		Rating:    req.Rating,
		Specialty: req.Specialty,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toSkillResponse(s))
}

func (h *Handler) DeleteSkill(w http.ResponseWriter, r *http.Request) {
	if err := h.skills.Delete(r.Context(), chi.URLParam(r, "characterID"), chi.URLParam(r, "skillID")); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
