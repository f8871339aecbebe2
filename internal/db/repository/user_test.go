package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internaldb "sheetvault/internal/db"
	"sheetvault/internal/domain"
)

func newUser(email string, master bool) *domain.User {
	return &domain.User{
		ID:           domain.NewID(),
		Email:        email,
		DisplayName:  "Test User",
		PasswordHash: "$2a$10$fakehashfakehashfakehash",
		IsMaster:     master,
	}
}

func TestUserRepo_CreateAndGet(t *testing.T) {
	writeDB, _ := internaldb.OpenTestSQLite(t)
	repo := NewUserRepo(writeDB)
	ctx := context.Background()

	created, err := repo.Create(ctx, newUser("a@b.com", false))
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", created.Email)
	assert.False(t, created.IsMaster)
	assert.False(t, created.CreatedAt.IsZero())

	byEmail, err := repo.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	byID, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", byID.Email)
}

func TestUserRepo_DuplicateEmail(t *testing.T) {
	writeDB, _ := internaldb.OpenTestSQLite(t)
	repo := NewUserRepo(writeDB)
	ctx := context.Background()

	_, err := repo.Create(ctx, newUser("a@b.com", false))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newUser("a@b.com", true))
	require.Error(t, err)
	assert.ErrorAs(t, err, new(*domain.ConflictError))
}

func TestUserRepo_NotFound(t *testing.T) {
	writeDB, _ := internaldb.OpenTestSQLite(t)
	repo := NewUserRepo(writeDB)
	ctx := context.Background()

	_, err := repo.GetByEmail(ctx, "nobody@b.com")
	assert.ErrorAs(t, err, new(*domain.NotFoundError))

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorAs(t, err, new(*domain.NotFoundError))
}

func TestUserRepo_CountAndList(t *testing.T) {
	writeDB, _ := internaldb.OpenTestSQLite(t)
	repo := NewUserRepo(writeDB)
	ctx := context.Background()

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = repo.Create(ctx, newUser("a@b.com", false))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newUser("gm@b.com", true))
	require.NoError(t, err)

	n, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	users, total, err := repo.List(ctx, domain.PageRequest{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, users, 2)
}
