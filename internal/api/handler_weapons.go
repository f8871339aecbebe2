package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"sheetvault/internal/domain"
)

func (h *Handler) ListWeapons(w http.ResponseWriter, r *http.Request) {
	weapons, err := h.weapons.ListForCharacter(r.Context(), chi.URLParam(r, "characterID"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	out := make([]weaponResponse, 0, len(weapons))
	for i := range weapons {
		out = append(out, toWeaponResponse(&weapons[i]))
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) AddWeapon(w http.ResponseWriter, r *http.Request) {
	var req weaponPayload
	if err := h.decodeJSON(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	wp, err := h.weapons.Add(r.Context(), chi.URLParam(r, "characterID"), domain.CreateWeaponRequest{
		Name:   req.Name,
		Damage: req.Damage,
		Range:  req.Range,
		Notes:  req.Notes,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, toWeaponResponse(wp))
}

func (h *Handler) UpdateWeapon(w http.ResponseWriter, r *http.Request) {
	var req weaponPatch
	if err := h.decodeJSON(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	wp, err := h.weapons.Update(r.Context(), chi.URLParam(r, "characterID"), chi.URLParam(r, "weaponID"), domain.UpdateWeaponRequest{
		Name:   req.Name,
		Damage: req.Damage,
		Range:  req.Range,
		Notes:  req.Notes,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toWeaponResponse(wp))
}

func (h *Handler) DeleteWeapon(w http.ResponseWriter, r *http.Request) {
	if err := h.weapons.Delete(r.Context(), chi.URLParam(r, "characterID"), chi.URLParam(r, "weaponID")); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
