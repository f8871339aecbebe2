package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"sheetvault/internal/domain"
	"sheetvault/internal/token"
)

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func storedUser(t *testing.T, password string, master bool) *domain.User {
	t.Helper()
	return &domain.User{
		ID:           "u-1",
		Email:        "a@b.com",
		DisplayName:  "Alice",
		PasswordHash: hashOf(t, password),
		IsMaster:     master,
	}
}

func TestAuthService_Login(t *testing.T) {
	codec, err := token.NewCodec([]byte("login-test-secret"), 0)
	require.NoError(t, err)

	t.Run("happy path issues verifiable token", func(t *testing.T) {
		users := &mockUserStore{
			getByEmailFn: func(_ context.Context, email string) (*domain.User, error) {
				require.Equal(t, "a@b.com", email)
				return storedUser(t, "hunter22", false), nil
			},
		}
		svc := NewAuthService(users, codec, nil)

		res, err := svc.Login(context.Background(), "a@b.com", "hunter22")
		require.NoError(t, err)
		assert.Equal(t, "u-1", res.Principal.ID)
		assert.Equal(t, domain.RolePlayer, res.Principal.Role())
		assert.False(t, res.ExpiresAt.IsZero())

		decoded, err := codec.Verify(res.Token)
		require.NoError(t, err)
		assert.Equal(t, "a@b.com", decoded.Email)
		assert.Equal(t, domain.RolePlayer, decoded.Role())
	})

	t.Run("master role on the wire", func(t *testing.T) {
		users := &mockUserStore{
			getByEmailFn: func(_ context.Context, _ string) (*domain.User, error) {
				return storedUser(t, "hunter22", true), nil
			},
		}
		svc := NewAuthService(users, codec, nil)

		res, err := svc.Login(context.Background(), "a@b.com", "hunter22")
		require.NoError(t, err)

		decoded, err := codec.Verify(res.Token)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleMaster, decoded.Role())
	})

	t.Run("wrong password", func(t *testing.T) {
		users := &mockUserStore{
			getByEmailFn: func(_ context.Context, _ string) (*domain.User, error) {
				return storedUser(t, "hunter22", false), nil
			},
		}
		svc := NewAuthService(users, codec, nil)

		_, err := svc.Login(context.Background(), "a@b.com", "wrong")
		require.Error(t, err)
		assert.ErrorAs(t, err, new(*domain.UnauthenticatedError))
	})

	t.Run("unknown email gets the same error as wrong password", func(t *testing.T) {
		users := &mockUserStore{
			getByEmailFn: func(_ context.Context, _ string) (*domain.User, error) {
				return nil, domain.ErrNotFound("user not found")
			},
		}
		svc := NewAuthService(users, codec, nil)

		_, err := svc.Login(context.Background(), "nobody@b.com", "hunter22")
		require.Error(t, err)
		var unauth *domain.UnauthenticatedError
		require.ErrorAs(t, err, &unauth)
		assert.Equal(t, "invalid email or password", unauth.Message)
	})

	t.Run("empty credentials", func(t *testing.T) {
		svc := NewAuthService(&mockUserStore{}, codec, nil)
		_, err := svc.Login(context.Background(), "", "")
		assert.ErrorAs(t, err, new(*domain.ValidationError))
	})

	t.Run("store fault propagates", func(t *testing.T) {
		users := &mockUserStore{
			getByEmailFn: func(_ context.Context, _ string) (*domain.User, error) {
				return nil, errTest
			},
		}
		svc := NewAuthService(users, codec, nil)

		_, err := svc.Login(context.Background(), "a@b.com", "hunter22")
		require.Error(t, err)
		assert.ErrorIs(t, err, errTest)
	})
}

func TestAuthService_CreateUser(t *testing.T) {
	t.Run("hashes the password", func(t *testing.T) {
		var stored *domain.User
		users := &mockUserStore{
			createFn: func(_ context.Context, u *domain.User) (*domain.User, error) {
				stored = u
				return u, nil
			},
		}
		svc := NewAuthService(users, &mockIssuer{}, nil)

		u, err := svc.CreateUser(context.Background(), domain.CreateUserRequest{
			Email: "a@b.com", DisplayName: "Alice", Password: "hunter22",
		})
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.NotEqual(t, "hunter22", stored.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter22")))
		assert.NotEmpty(t, u.ID)
	})

	t.Run("validates input", func(t *testing.T) {
		svc := NewAuthService(&mockUserStore{}, &mockIssuer{}, nil)
		_, err := svc.CreateUser(context.Background(), domain.CreateUserRequest{
			Email: "a@b.com", DisplayName: "Alice", Password: "short",
		})
		assert.ErrorAs(t, err, new(*domain.ValidationError))
	})
}

func TestAuthService_Register_NeverGrantsMaster(t *testing.T) {
	var stored *domain.User
	users := &mockUserStore{
		createFn: func(_ context.Context, u *domain.User) (*domain.User, error) {
			stored = u
			return u, nil
		},
		getByEmailFn: func(_ context.Context, _ string) (*domain.User, error) {
			return stored, nil
		},
	}
	svc := NewAuthService(users, &mockIssuer{}, nil)

	res, err := svc.Register(context.Background(), domain.CreateUserRequest{
		Email: "a@b.com", DisplayName: "Alice", Password: "hunter22",
		IsMaster: true, // must be ignored
	})
	require.NoError(t, err)
	assert.False(t, stored.IsMaster)
	assert.Equal(t, domain.RolePlayer, res.Principal.Role())
}
