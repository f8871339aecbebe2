package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"sheetvault/internal/domain"
)

// UserStore is the credential persistence interface used by AuthService.
type UserStore interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Count(ctx context.Context) (int64, error)
}

// TokenIssuer mints signed bearer tokens for authenticated principals.
type TokenIssuer interface {
	Issue(p domain.Principal) (string, error)
	Lifetime() time.Duration
}

// LoginResult is the outcome of a successful credential verification.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Principal domain.Principal
}

// AuthService verifies credentials and issues tokens. It is the only place
// that touches password hashes; per-request authentication never consults it
// because the token is self-contained.
type AuthService struct {
	users  UserStore
	tokens TokenIssuer
	logger *slog.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, tokens TokenIssuer, logger *slog.Logger) *AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{users: users, tokens: tokens, logger: logger}
}

// Login verifies the email/password pair and issues a token. Both unknown
// emails and wrong passwords produce the same UnauthenticatedError so the
// response never reveals which one failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrValidation("email and password are required")
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.As(err, new(*domain.NotFoundError)) {
			return nil, domain.ErrUnauthenticated("invalid email or password")
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrUnauthenticated("invalid email or password")
	}

	p := u.Principal()
	signed, err := s.tokens.Issue(p)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info("login", "user", u.ID, "role", p.Role())
	return &LoginResult{
		Token:     signed,
		ExpiresAt: time.Now().Add(s.tokens.Lifetime()).UTC(),
		Principal: p,
	}, nil
}

// CreateUser hashes the password and persists a new credential record.
func (s *AuthService) CreateUser(ctx context.Context, req domain.CreateUserRequest) (*domain.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.users.Create(ctx, &domain.User{
		ID:           domain.NewID(),
		Email:        req.Email,
		DisplayName:  req.DisplayName,
		PasswordHash: string(hash),
		IsMaster:     req.IsMaster,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user created", "user", u.ID, "master", u.IsMaster)
	return u, nil
}

// Register creates a player account and immediately logs it in. Public
// registration never grants the master role; masters are provisioned by the
// bootstrap seed or the admin CLI.
func (s *AuthService) Register(ctx context.Context, req domain.CreateUserRequest) (*LoginResult, error) {
	req.IsMaster = false
	if _, err := s.CreateUser(ctx, req); err != nil {
		return nil, err
	}
	return s.Login(ctx, req.Email, req.Password)
}
