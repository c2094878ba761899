// Package usecase implements the user business logic and orchestrates user domain operations.
package usecase

import (
	"context"

	"github.com/google/uuid"

	roleDomain "github.com/allisson/auth/internal/role/domain"
	"github.com/allisson/auth/internal/user/domain"
)

// CreateUserInput contains the input data for user creation. Password is the
// plain text credential; it is hashed before it reaches the repository.
type CreateUserInput struct {
	Username  string
	Name      string
	Password  string
	RoleID    uuid.UUID
	CreatedBy string
}

// UpdateUserInput contains the mutable fields for a user update.
// Nil fields are left untouched (patch semantics).
type UpdateUserInput struct {
	Username  *string
	Name      *string
	Password  *string
	RoleID    *uuid.UUID
	UpdatedBy string
}

// UserRepository defines user persistence operations.
// Get and GetByUsername return domain.ErrUserNotFound when no record matches.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	Get(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetAll(ctx context.Context, offset, limit int) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

// RoleRepository is the narrow role lookup needed to validate role references.
type RoleRepository interface {
	Get(ctx context.Context, roleID uuid.UUID) (*roleDomain.Role, error)
}

// UseCase defines the interface for user business logic operations.
// Returned users are sanitized: the password hash is never exposed.
type UseCase interface {
	Create(ctx context.Context, input *CreateUserInput) (*domain.User, error)
	Get(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetAll(ctx context.Context, offset, limit int) ([]*domain.User, error)
	Update(ctx context.Context, userID uuid.UUID, input *UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}
