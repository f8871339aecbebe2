package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"sheetvault/internal/domain"
)

func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.notes.ListForCharacter(r.Context(), chi.URLParam(r, "characterID"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	out := make([]noteResponse, 0, len(notes))
	for i := range notes {
		out = append(out, toNoteResponse(&notes[i]))
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) AddNote(w http.ResponseWriter, r *http.Request) {
	var req notePayload
	if err := h.decodeJSON(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	n, err := h.notes.Add(r.Context(), chi.URLParam(r, "characterID"), domain.CreateNoteRequest{
		Title: req.Title,
		Body:  req.Body,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, toNoteResponse(n))
}

func (h *Handler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	var req notePatch
	if err := h.decodeJSON(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	n, err := h.notes.Update(r.Context(), chi.URLParam(r, "characterID"), chi.URLParam(r, "noteID"), domain.UpdateNoteRequest{
		Title: req.Title,
		Body:  req.Body,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toNoteResponse(n))
}

func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	if err := h.notes.Delete(r.Context(), chi.URLParam(r, "characterID"), chi.URLParam(r, "noteID")); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
