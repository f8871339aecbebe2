package api

import (
	"net/http"

	"sheetvault/internal/domain"
)

// Register creates a new player account and logs it in.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	res, err := h.auth.Register(r.Context(), domain.CreateUserRequest{
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Password:    req.Password,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.logger.Info("user registered", "email", req.Email)
	h.writeJSON(w, http.StatusCreated, toLoginResponse(res))
}

// Login exchanges email/password credentials for a bearer token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	res, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toLoginResponse(res))
}

// Me returns the authenticated caller's identity.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	p, err := domain.RequirePrincipal(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toPrincipalResponse(p))
}
