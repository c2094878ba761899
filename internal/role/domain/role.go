// Package domain defines the core role domain entities and types.
package domain

import (
	"github.com/google/uuid"

	"github.com/allisson/auth/internal/audit"
	"github.com/allisson/auth/internal/errors"
)

// Role groups capability strings under a unique name. Permissions are drawn
// from the scope catalog vocabulary; duplicates are allowed but redundant.
type Role struct {
	ID          uuid.UUID
	Name        string
	Permissions []string

	audit.Created
	audit.Updated
}

// Domain-specific errors for role operations.
var (
	// ErrRoleNotFound indicates the requested role does not exist.
	ErrRoleNotFound = errors.Wrap(errors.ErrNotFound, "role not found")

	// ErrRoleNameTaken indicates a role with the same name already exists.
	ErrRoleNameTaken = errors.Wrap(errors.ErrConflict, "role name already exists")

	// ErrRoleInUse indicates the role is still assigned to users and cannot
	// be deleted.
	ErrRoleInUse = errors.Wrap(errors.ErrConflict, "role is assigned to users")
)
