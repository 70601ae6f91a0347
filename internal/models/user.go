package models

import (
	"errors"
	"time"
)

// Role is the closed set of account roles.
type Role string

const (
	RoleUser      Role = "user"
	RolePowerUser Role = "power_user"
	RoleAdmin     Role = "admin"
)

// ErrInvalidRole is returned by ParseRole for unknown role strings.
var ErrInvalidRole = errors.New("invalid role")

// ParseRole converts a wire string into a Role, rejecting unknown values.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleUser, RolePowerUser, RoleAdmin:
		return r, nil
	}
	return "", ErrInvalidRole
}

// UserDB represents a user record in the database
type UserDB struct {
	ID           int64     `json:"id" db:"id"`                 // Primary key
	Username     string    `json:"username" db:"username"`     // Unique lowercase username
	Email        string    `json:"email" db:"email"`           // Unique lowercase email
	PasswordHash string    `json:"-" db:"password_hash"`       // bcrypt digest, never serialized
	Role         Role      `json:"role" db:"role"`             // Account role
	IsActive     bool      `json:"is_active" db:"is_active"`   // Activation flag managed by admins
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// PasswordResetToken is a single-use credential replacement token.
type PasswordResetToken struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Token     string    `json:"-" db:"token"` // never serialized or logged
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
}

// IsExpired reports whether the token is past its expiry at the given instant.
func (t *PasswordResetToken) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
