// Package middleware provides HTTP middleware for bearer-token authentication
// and request identification.
package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"sheetvault/internal/domain"
	"sheetvault/internal/token"
)

const bearerPrefix = "Bearer "

// TokenVerifier verifies a bearer token and reconstructs the principal it
// asserts. Failures are returned as *token.VerificationError.
type TokenVerifier interface {
	Verify(tokenString string) (domain.Principal, error)
}

// PrincipalLookup resolves a token subject to the stored credential record.
type PrincipalLookup interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Authenticator establishes the request principal from the Authorization
// header. It runs once per request and takes exactly one reject decision:
// a structurally invalid token is answered with 401 before the handler runs.
// Everything else (no header, no Bearer prefix, empty subject, unknown
// subject) passes through unauthenticated, and endpoint-level authorization
// decides the outcome.
type Authenticator struct {
	verifier TokenVerifier
	users    PrincipalLookup
	skip     map[string]bool
	logger   *slog.Logger
}

// NewAuthenticator creates an Authenticator. skipPaths lists exact request
// paths that bypass token handling entirely (the credential-first login and
// registration endpoints).
func NewAuthenticator(verifier TokenVerifier, users PrincipalLookup, skipPaths []string, logger *slog.Logger) *Authenticator {
	if logger == nil {
		logger = slog.Default()
	}
	skip := make(map[string]bool, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = true
	}
	return &Authenticator{verifier: verifier, users: users, skip: skip, logger: logger}
}

// Middleware returns the chi-compatible middleware function.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.skip[r.URL.Path] {
			next.ServeHTTP(w, r)
			return
		}

		auth := r.Header.Get("Authorization")
		if !strings.HasPrefix(auth, bearerPrefix) {
			next.ServeHTTP(w, r)
			return
		}

		p, err := a.verifier.Verify(strings.TrimPrefix(auth, bearerPrefix))
		if err != nil {
			var verr *token.VerificationError
			if errors.As(err, &verr) {
				// Malformed, forged, and expired tokens are data, not
				// faults. Internally distinguished for observability only;
				// the client always sees a single 401.
				a.logger.Debug("bearer token rejected", "kind", verr.Kind.String())
				writeAuthError(w, http.StatusUnauthorized, "unauthorized: invalid or expired token")
				return
			}
			a.logger.Error("token verification fault", "error", err)
			writeAuthError(w, http.StatusInternalServerError, "internal error")
			return
		}

		// A verified token without a subject asserts no identity.
		if p.Email == "" {
			next.ServeHTTP(w, r)
			return
		}

		// A principal may already be present when this filter shares a
		// chain with another authentication mechanism. None exists today;
		// the guard is the extension point for one.
		if _, ok := domain.PrincipalFromContext(r.Context()); ok {
			next.ServeHTTP(w, r)
			return
		}

		u, err := a.users.GetByEmail(r.Context(), p.Email)
		if err != nil {
			if errors.As(err, new(*domain.NotFoundError)) {
				// Token subject no longer exists in the store. Treat as no
				// identity asserted rather than a fault.
				a.logger.Warn("token subject not found", "subject", p.Email)
				next.ServeHTTP(w, r)
				return
			}
			a.logger.Error("principal lookup failed", "error", err)
			writeAuthError(w, http.StatusInternalServerError, "internal error")
			return
		}

		ctx := domain.WithPrincipal(r.Context(), u.Principal())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeAuthError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"code":    code,
		"message": message,
	})
}
