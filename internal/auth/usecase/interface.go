// Package usecase implements business logic orchestration for authentication
// and authorization operations.
package usecase

import (
	"context"

	"github.com/google/uuid"

	authDomain "github.com/allisson/auth/internal/auth/domain"
	roleDomain "github.com/allisson/auth/internal/role/domain"
	userDomain "github.com/allisson/auth/internal/user/domain"
)

// UserRepository is the narrow credential-store view the login flow needs.
// Lookups return userDomain.ErrUserNotFound when no record matches.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*userDomain.User, error)
}

// RoleRepository resolves the role referenced by an authenticated user.
type RoleRepository interface {
	Get(ctx context.Context, roleID uuid.UUID) (*roleDomain.Role, error)
}

// AuthUseCase defines the authentication protocol and the authorization guard.
type AuthUseCase interface {
	// Login verifies the presented credentials and mints a session token
	// carrying the user's role capabilities as scopes.
	//
	// Returns ErrInvalidCredentials for unknown usernames and wrong passwords
	// alike, and ErrRoleIntegrity when an authenticated user references a
	// missing role.
	Login(ctx context.Context, input *authDomain.LoginInput) (*authDomain.LoginOutput, error)

	// Authorize parses and verifies a raw bearer token and checks that every
	// required scope is granted by the token's claims. Pure computation over
	// (token, clock, secret, requiredScopes); no I/O.
	//
	// Returns ErrInvalidToken/ErrExpiredToken for bad tokens and
	// ErrInsufficientScope when the identity is valid but a scope is missing.
	Authorize(ctx context.Context, rawToken string, requiredScopes []string) (*authDomain.Claims, error)
}
