// Package token implements issuing and verifying the signed bearer tokens
// that carry a principal's identity and role between requests.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"sheetvault/internal/domain"
)

// DefaultLifetime is the fixed validity window of an issued token.
const DefaultLifetime = 12 * time.Hour

// ErrorKind classifies why a token failed verification.
type ErrorKind int

const (
	// KindMalformed covers tokens that are not structurally valid JWTs,
	// use an unexpected algorithm, or are missing required claims.
	KindMalformed ErrorKind = iota
	// KindBadSignature covers tokens whose signature does not verify
	// against the configured secret (including tampered payloads).
	KindBadSignature
	// KindExpired covers structurally valid, correctly signed tokens
	// whose validity window has passed.
	KindExpired
)

// String returns a short label for logging and metrics.
func (k ErrorKind) String() string {
	switch k {
	case KindBadSignature:
		return "bad_signature"
	case KindExpired:
		return "expired"
	default:
		return "malformed"
	}
}

// VerificationError is the typed result of a failed Verify call. Malformed,
// forged, and expired tokens are expected inputs on every anonymous or stale
// request, so they are returned as values rather than propagated as faults.
type VerificationError struct {
	Kind  ErrorKind
	cause error
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("token verification failed (%s): %v", e.Kind, e.cause)
}

func (e *VerificationError) Unwrap() error { return e.cause }

// Claims is the payload of an issued token. The token is self-contained:
// verifying it reconstructs the principal without a store round-trip.
type Claims struct {
	UserID      string `json:"id"`
	DisplayName string `json:"name"`
	Role        string `json:"role"`
	jwt.RegisteredClaims
}

// Codec issues and verifies HS256-signed tokens with a fixed lifetime.
// The signing secret is loaded once at process start and read-only for the
// process lifetime, so a Codec is safe for concurrent use.
type Codec struct {
	secret   []byte
	lifetime time.Duration
	now      func() time.Time
}

// NewCodec creates a Codec from the shared signing secret. A non-positive
// lifetime selects DefaultLifetime.
func NewCodec(secret []byte, lifetime time.Duration) (*Codec, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("token signing secret is required")
	}
	if lifetime <= 0 {
		lifetime = DefaultLifetime
	}
	return &Codec{secret: secret, lifetime: lifetime, now: time.Now}, nil
}

// Issue builds and signs a token for the given principal. The subject is the
// principal's email; issuance time is the codec clock, expiry is exactly one
// lifetime later. Never fails for a well-formed principal.
func (c *Codec) Issue(p domain.Principal) (string, error) {
	issuedAt := c.now()
	claims := Claims{
		UserID:      p.ID,
		DisplayName: p.Name,
		Role:        p.Role(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.Email,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(c.lifetime)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Lifetime returns the validity window applied to issued tokens.
func (c *Codec) Lifetime() time.Duration { return c.lifetime }

// Verify decodes the token, checks signature and expiry, and reconstructs
// the principal from the claims. Failures are returned as a typed
// *VerificationError; the validity interval is closed-open [iat, exp) with
// no clock-skew allowance.
func (c *Codec) Verify(tokenString string) (domain.Principal, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method == nil || t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return domain.Principal{}, classify(err)
	}

	return domain.Principal{
		ID:       claims.UserID,
		Email:    claims.Subject,
		Name:     claims.DisplayName,
		IsMaster: claims.Role == domain.RoleMaster,
	}, nil
}

// classify maps jwt parse errors onto the verification error taxonomy.
func classify(err error) *VerificationError {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return &VerificationError{Kind: KindExpired, cause: err}
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return &VerificationError{Kind: KindBadSignature, cause: err}
	default:
		return &VerificationError{Kind: KindMalformed, cause: err}
	}
}
