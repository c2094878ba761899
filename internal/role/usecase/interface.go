// Package usecase implements the role business logic and orchestrates role domain operations.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/allisson/auth/internal/role/domain"
)

// CreateRoleInput contains the input data for role creation.
type CreateRoleInput struct {
	Name        string
	Permissions []string
	CreatedBy   string
}

// UpdateRoleInput contains the mutable fields for a role update.
// Nil fields are left untouched (patch semantics).
type UpdateRoleInput struct {
	Name        *string
	Permissions *[]string
	UpdatedBy   string
}

// RoleRepository defines role persistence operations.
// Get returns domain.ErrRoleNotFound when no record matches.
type RoleRepository interface {
	Create(ctx context.Context, role *domain.Role) error
	Get(ctx context.Context, roleID uuid.UUID) (*domain.Role, error)
	GetByName(ctx context.Context, name string) (*domain.Role, error)
	GetAll(ctx context.Context, offset, limit int) ([]*domain.Role, error)
	Update(ctx context.Context, role *domain.Role) error
	Delete(ctx context.Context, roleID uuid.UUID) error
}

// UseCase defines the interface for role business logic operations.
type UseCase interface {
	Create(ctx context.Context, input *CreateRoleInput) (*domain.Role, error)
	Get(ctx context.Context, roleID uuid.UUID) (*domain.Role, error)
	GetByName(ctx context.Context, name string) (*domain.Role, error)
	GetAll(ctx context.Context, offset, limit int) ([]*domain.Role, error)
	Update(ctx context.Context, roleID uuid.UUID, input *UpdateRoleInput) (*domain.Role, error)
	Delete(ctx context.Context, roleID uuid.UUID) error
}
