package domain

import (
	"context"
	"time"
)

// Role is an application role. Exactly one role per user; authorization is an
// exact match on the required role, with no hierarchy between roles.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleSpeaker  Role = "SPEAKER"
	RoleAttendee Role = "ATTENDEE"
)

// Valid reports whether r is one of the enumerated roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSpeaker, RoleAttendee:
		return true
	}
	return false
}

// User represents a registered user. PasswordHash and Salt are write-only and
// never serialized.
// swagger:model User
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PasswordHasher handles salt generation, hashing, and verification.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues signed identity tokens for an authenticated user.
type TokenIssuer interface {
	Issue(userID int64, role Role) (string, error)
}

// TokenVerifier verifies a token and returns the identity embedded in it.
// Any structural, signature, or expiry failure yields an error; callers must
// treat all failures uniformly.
type TokenVerifier interface {
	Verify(token string) (userID int64, role Role, err error)
}

// UserRepository defines the interface for user storage.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
}

// AuthService defines registration, login, and profile lookup.
type AuthService interface {
	// Register creates a user. An empty role defaults to ATTENDEE.
	Register(ctx context.Context, name, email, password string, role Role) (*User, error)
	// Login verifies credentials and returns a signed token. Unknown email and
	// wrong password are indistinguishable: both return ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, error)
	Profile(ctx context.Context, userID int64) (*User, error)
}
