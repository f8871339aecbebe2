package domain

import "time"

// Wire values for the role claim. Internally the role is modeled as the
// IsMaster flag; these strings only appear in tokens and API responses.
const (
	RolePlayer = "PLAYER"
	RoleMaster = "MASTER"
)

// Principal represents the authenticated actor for a single request.
// It is constructed once (at login, or from a verified token's claims)
// and never mutated afterwards.
type Principal struct {
	ID       string
	Email    string
	Name     string
	IsMaster bool
}

// Role returns the wire representation of the principal's role.
func (p Principal) Role() string {
	if p.IsMaster {
		return RoleMaster
	}
	return RolePlayer
}

// User is the persisted credential record behind a principal.
type User struct {
	ID           string
	Email        string
	DisplayName  string
	PasswordHash string
	IsMaster     bool
	CreatedAt    time.Time
}

// Principal derives the request-facing identity from the credential record.
func (u *User) Principal() Principal {
	return Principal{
		ID:       u.ID,
		Email:    u.Email,
		Name:     u.DisplayName,
		IsMaster: u.IsMaster,
	}
}

// CreateUserRequest holds parameters for creating a new user.
type CreateUserRequest struct {
	Email       string
	DisplayName string
	Password    string
	IsMaster    bool
}

// Validate checks that the request is well-formed.
func (r *CreateUserRequest) Validate() error {
	if r.Email == "" {
		return ErrValidation("email is required")
	}
	if r.DisplayName == "" {
		return ErrValidation("display name is required")
	}
	if len(r.Password) < 8 {
		return ErrValidation("password must be at least 8 characters")
	}
	return nil
}
