package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"sheetvault/internal/domain"
)

func (h *Handler) ListEquipment(w http.ResponseWriter, r *http.Request) {
	items, err := h.equipment.ListForCharacter(r.Context(), chi.URLParam(r, "characterID"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	out := make([]equipmentResponse, 0, len(items))
	for i := range items {
		out = append(out, toEquipmentResponse(&items[i]))
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) AddEquipment(w http.ResponseWriter, r *http.Request) {
	var req equipmentPayload
	if err := h.decodeJSON(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	e, err := h.equipment.Add(r.Context(), chi.URLParam(r, "characterID"), domain.CreateEquipmentRequest{
		Name:        req.Name,
		Quantity:    req.Quantity,
		Description: req.Description,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, toEquipmentResponse(e))
}

func (h *Handler) UpdateEquipment(w http.ResponseWriter, r *http.Request) {
	var req equipmentPatch
	if err := h.decodeJSON(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	e, err := h.equipment.Update(r.Context(), chi.URLParam(r, "characterID"), chi.URLParam(r, "equipmentID"), domain.UpdateEquipmentRequest{
		Name:        req.Name,
		Quantity:    req.Quantity,
		Description: req.Description,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toEquipmentResponse(e))
}

func (h *Handler) DeleteEquipment(w http.ResponseWriter, r *http.Request) {
	if err := h.equipment.Delete(r.Context(), chi.URLParam(r, "characterID"), chi.URLParam(r, "equipmentID")); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
