package service

import (
	"context"
	"errors"
	"time"

	"sheetvault/internal/domain"
)

var errTest = errors.New("boom")

// ctxWithActor returns a context carrying the given principal.
func ctxWithActor(p domain.Principal) context.Context {
	return domain.WithPrincipal(context.Background(), p)
}

// === User store mock ===

type mockUserStore struct {
	createFn     func(ctx context.Context, u *domain.User) (*domain.User, error)
	getByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	countFn      func(ctx context.Context) (int64, error)
}

func (m *mockUserStore) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	return m.createFn(ctx, u)
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.getByEmailFn(ctx, email)
}

func (m *mockUserStore) Count(ctx context.Context) (int64, error) {
	if m.countFn == nil {
		return 0, nil
	}
	return m.countFn(ctx)
}

// === Token issuer mock ===

type mockIssuer struct {
	issueFn func(p domain.Principal) (string, error)
}

func (m *mockIssuer) Issue(p domain.Principal) (string, error) {
	if m.issueFn == nil {
		return "signed-token", nil
	}
	return m.issueFn(p)
}

func (m *mockIssuer) Lifetime() time.Duration { return 12 * time.Hour }

// === Character store mock ===

type mockCharacterStore struct {
	createFn      func(ctx context.Context, c *domain.Character) (*domain.Character, error)
	getByIDFn     func(ctx context.Context, id string) (*domain.Character, error)
	listFn        func(ctx context.Context, page domain.PageRequest) ([]domain.Character, int64, error)
	listByOwnerFn func(ctx context.Context, ownerID string, page domain.PageRequest) ([]domain.Character, int64, error)
	updateFn      func(ctx context.Context, c *domain.Character) (*domain.Character, error)
	deleteFn      func(ctx context.Context, id string) error
}

func (m *mockCharacterStore) Create(ctx context.Context, c *domain.Character) (*domain.Character, error) {
	return m.createFn(ctx, c)
}

func (m *mockCharacterStore) GetByID(ctx context.Context, id string) (*domain.Character, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockCharacterStore) List(ctx context.Context, page domain.PageRequest) ([]domain.Character, int64, error) {
	return m.listFn(ctx, page)
}

func (m *mockCharacterStore) ListByOwner(ctx context.Context, ownerID string, page domain.PageRequest) ([]domain.Character, int64, error) {
	return m.listByOwnerFn(ctx, ownerID, page)
}

func (m *mockCharacterStore) Update(ctx context.Context, c *domain.Character) (*domain.Character, error) {
	return m.updateFn(ctx, c)
}

func (m *mockCharacterStore) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

// === Skill store mock ===

type mockSkillStore struct {
	createFn          func(ctx context.Context, s *domain.Skill) (*domain.Skill, error)
	getByIDFn         func(ctx context.Context, id string) (*domain.Skill, error)
	listByCharacterFn func(ctx context.Context, characterID string) ([]domain.Skill, error)
	updateFn          func(ctx context.Context, s *domain.Skill) (*domain.Skill, error)
	deleteFn          func(ctx context.Context, id string) error
}

func (m *mockSkillStore) Create(ctx context.Context, s *domain.Skill) (*domain.Skill, error) {
	return m.createFn(ctx, s)
}

func (m *mockSkillStore) GetByID(ctx context.Context, id string) (*domain.Skill, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockSkillStore) ListByCharacter(ctx context.Context, characterID string) ([]domain.Skill, error) {
	return m.listByCharacterFn(ctx, characterID)
}

func (m *mockSkillStore) Update(ctx context.Context, s *domain.Skill) (*domain.Skill, error) {
	return m.updateFn(ctx, s)
}

func (m *mockSkillStore) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

// charResolver returns a characterResolver serving a fixed set of characters.
type charResolver map[string]*domain.Character

func (r charResolver) GetByID(_ context.Context, id string) (*domain.Character, error) {
	c, ok := r[id]
	if !ok {
		return nil, domain.ErrNotFound("character %s not found", id)
	}
	return c, nil
}
