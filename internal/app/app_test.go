package app

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sheetvault/internal/config"
	internaldb "sheetvault/internal/db"
	"sheetvault/internal/domain"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			TokenSecret:   base64.StdEncoding.EncodeToString([]byte("app-test-secret")),
			TokenLifetime: time.Hour,
		},
	}
}

func newTestApp(t *testing.T, cfg *config.Config) *App {
	t.Helper()
	writeDB, readDB := internaldb.OpenTestSQLite(t)
	a, err := New(Deps{Cfg: cfg, WriteDB: writeDB, ReadDB: readDB})
	require.NoError(t, err)
	return a
}

func TestNew_RejectsBadSecret(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.TokenSecret = "%%% not base64 %%%"
	writeDB, readDB := internaldb.OpenTestSQLite(t)

	_, err := New(Deps{Cfg: cfg, WriteDB: writeDB, ReadDB: readDB})
	require.Error(t, err)
}

func TestSeedBootstrapMaster(t *testing.T) {
	ctx := context.Background()

	t.Run("creates master on empty database", func(t *testing.T) {
		cfg := testConfig()
		cfg.Auth.BootstrapEmail = "gm@example.com"
		cfg.Auth.BootstrapPassword = "hunter22!"
		cfg.Auth.BootstrapName = "Game Master"
		a := newTestApp(t, cfg)

		require.NoError(t, a.SeedBootstrapMaster(ctx))

		u, err := a.Users.GetByEmail(ctx, "gm@example.com")
		require.NoError(t, err)
		assert.True(t, u.IsMaster)

		// Idempotent on restart.
		require.NoError(t, a.SeedBootstrapMaster(ctx))
		n, err := a.Users.Count(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)
	})

	t.Run("no-op without bootstrap config", func(t *testing.T) {
		a := newTestApp(t, testConfig())
		require.NoError(t, a.SeedBootstrapMaster(ctx))

		n, err := a.Users.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("skips when any account exists", func(t *testing.T) {
		cfg := testConfig()
		cfg.Auth.BootstrapEmail = "gm@example.com"
		cfg.Auth.BootstrapPassword = "hunter22!"
		a := newTestApp(t, cfg)

		_, err := a.Auth.CreateUser(ctx, domain.CreateUserRequest{
			Email: "existing@example.com", DisplayName: "Existing", Password: "hunter22!",
		})
		require.NoError(t, err)

		require.NoError(t, a.SeedBootstrapMaster(ctx))
		_, err = a.Users.GetByEmail(ctx, "gm@example.com")
		assert.ErrorAs(t, err, new(*domain.NotFoundError))
	})
}
