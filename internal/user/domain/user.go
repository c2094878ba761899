// Package domain defines the core user domain entities and types.
package domain

import (
	"github.com/google/uuid"

	"github.com/allisson/auth/internal/audit"
	"github.com/allisson/auth/internal/errors"
)

// User represents an account in the directory. Username is unique across all
// records and RoleID must reference an existing role; the role check is
// enforced by the use case at create/update time, not by this type.
type User struct {
	ID       uuid.UUID
	Username string
	Name     string
	RoleID   uuid.UUID
	Password string // Argon2id hash, never the plaintext

	audit.Created
	audit.Updated
}

// Sanitized returns a copy of the user with the password hash cleared, for use
// in API responses and token payloads.
func (u *User) Sanitized() *User {
	out := *u
	out.Password = ""
	return &out
}

// Domain-specific errors for user operations.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrUsernameTaken indicates a user with the same username already exists.
	ErrUsernameTaken = errors.Wrap(errors.ErrConflict, "username already exists")
)
