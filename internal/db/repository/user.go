package repository

import (
	"context"
	"database/sql"

	"sheetvault/internal/domain"
)

// UserRepo persists credential records. It backs both the login path
// (lookup by email) and the per-request principal resolution (lookup by
// token subject).
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO users (id, email, display_name, password_hash, is_master)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id, email, display_name, password_hash, is_master, created_at`,
		u.ID, u.Email, u.DisplayName, u.PasswordHash, boolToInt(u.IsMaster),
	)
	return scanUser(row)
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, email, display_name, password_hash, is_master, created_at
		FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, email, display_name, password_hash, is_master, created_at
		FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *UserRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *UserRepo) List(ctx context.Context, page domain.PageRequest) ([]domain.User, int64, error) {
	total, err := r.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, email, display_name, password_hash, is_master, created_at
		FROM users ORDER BY created_at, id LIMIT ? OFFSET ?`,
		page.Limit(), page.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close() //nolint:errcheck

	var users []domain.User
	for rows.Next() {
		u, err := scanUserRows(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, *u)
	}
	return users, total, rows.Err()
}

func scanUser(row *sql.Row) (*domain.User, error) {
	var u domain.User
	var isMaster int
	err := row.Scan(&u.ID, &u.Email, &u.DisplayName, &u.PasswordHash, &isMaster, &u.CreatedAt)
	if err != nil {
		return nil, mapDBError(err)
	}
	u.IsMaster = isMaster != 0
	return &u, nil
}

func scanUserRows(rows *sql.Rows) (*domain.User, error) {
	var u domain.User
	var isMaster int
	err := rows.Scan(&u.ID, &u.Email, &u.DisplayName, &u.PasswordHash, &isMaster, &u.CreatedAt)
	if err != nil {
		return nil, mapDBError(err)
	}
	u.IsMaster = isMaster != 0
	return &u, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
