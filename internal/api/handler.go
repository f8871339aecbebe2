// Package api provides the HTTP handlers for the character sheet REST API.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"sheetvault/internal/domain"
	"sheetvault/internal/service"
)

// Handler implements the REST API over the application services.
type Handler struct {
	auth       *service.AuthService
	characters *service.CharacterService
	skills     *service.SkillService
	equipment  *service.EquipmentService
	weapons    *service.WeaponService
	notes      *service.NoteService
	logger     *slog.Logger
}

// NewHandler creates a Handler with all required service dependencies.
func NewHandler(
	auth *service.AuthService,
	characters *service.CharacterService,
	skills *service.SkillService,
	equipment *service.EquipmentService,
	weapons *service.WeaponService,
	notes *service.NoteService,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		auth:       auth,
		characters: characters,
		skills:     skills,
		equipment:  equipment,
		weapons:    weapons,
		notes:      notes,
		logger:     logger,
	}
}

// Routes registers all API endpoints on the given router. The caller mounts
// the authenticator middleware around this; the auth endpoints additionally
// appear in its skip list.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/auth/register", h.Register)
	r.Post("/auth/login", h.Login)

	r.Get("/me", h.Me)

	r.Route("/characters", func(r chi.Router) {
		r.Post("/", h.CreateCharacter)
		r.Get("/", h.ListCharacters)

		r.Route("/{characterID}", func(r chi.Router) {
			r.Get("/", h.GetCharacter)
			r.Patch("/", h.UpdateCharacter)
			r.Delete("/", h.DeleteCharacter)

			r.Get("/skills", h.ListSkills)
			r.Post("/skills", h.AddSkill)
			r.Patch("/skills/{skillID}", h.UpdateSkill)
			r.Delete("/skills/{skillID}", h.DeleteSkill)

			r.Get("/equipment", h.ListEquipment)
			r.Post("/equipment", h.AddEquipment)
			r.Patch("/equipment/{equipmentID}", h.UpdateEquipment)
			r.Delete("/equipment/{equipmentID}", h.DeleteEquipment)

			r.Get("/weapons", h.ListWeapons)
			r.Post("/weapons", h.AddWeapon)
			r.Patch("/weapons/{weaponID}", h.UpdateWeapon)
			r.Delete("/weapons/{weaponID}", h.DeleteWeapon)

			r.Get("/notes", h.ListNotes)
			r.Post("/notes", h.AddNote)
			r.Patch("/notes/{noteID}", h.UpdateNote)
			r.Delete("/notes/{noteID}", h.DeleteNote)
		})
	})
}

// AuthSkipPaths returns the request paths (as mounted under prefix) that the
// authenticator must bypass: they are credential-first, not token-first.
func AuthSkipPaths(prefix string) []string {
	return []string{prefix + "/auth/register", prefix + "/auth/login"}
}

// Error is the JSON error body returned by all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// --- helpers ---

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response", "error", err)
	}
}

// writeError translates a domain error into the JSON error body. Internal
// faults are logged server-side and returned with a generic message.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	code := httpStatusFromDomainError(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		h.logger.Error("request failed", "error", err)
		message = "internal server error"
	}
	h.writeJSON(w, code, Error{Code: code, Message: message})
}

// decodeJSON decodes the request body, surfacing malformed input as a
// ValidationError (400), not a fault.
func (h *Handler) decodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.ErrValidation("invalid request body: %v", err)
	}
	return nil
}

// pageFromQuery extracts a PageRequest from optional max_results/page_token
// query parameters.
func pageFromQuery(r *http.Request) domain.PageRequest {
	p := domain.PageRequest{PageToken: r.URL.Query().Get("page_token")}
	if v := r.URL.Query().Get("max_results"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			p.MaxResults = n
		}
	}
	return p
}
