package usecase

import (
	"context"
	"errors"
	"time"

	authDomain "github.com/allisson/auth/internal/auth/domain"
	authService "github.com/allisson/auth/internal/auth/service"
	"github.com/allisson/auth/internal/config"
	roleDomain "github.com/allisson/auth/internal/role/domain"
	userDomain "github.com/allisson/auth/internal/user/domain"
)

// authUseCase implements AuthUseCase.
type authUseCase struct {
	config          *config.Config
	userRepo        UserRepository
	roleRepo        RoleRepository
	passwordService authService.PasswordService
	tokenCodec      authService.TokenCodec
}

// Login authenticates a user and mints a session token.
//
// The flow:
//  1. Look up the user by username
//  2. Verify the password against the stored hash
//  3. Resolve the user's role
//  4. Mint a token binding identity and the role's current capability list
//
// Security notes:
//   - Unknown usernames and wrong passwords both return ErrInvalidCredentials,
//     and the unknown-user path still performs a dummy hash verification, so
//     neither the response nor its timing reveals which check failed.
//   - A missing role for a valid user is a data-integrity violation and is
//     surfaced as ErrRoleIntegrity (server error), never as a client error.
//   - Scopes are snapshotted into the token at mint time; role edits apply on
//     the next login.
func (a *authUseCase) Login(
	ctx context.Context,
	input *authDomain.LoginInput,
) (*authDomain.LoginOutput, error) {
	user, err := a.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, userDomain.ErrUserNotFound) {
			a.passwordService.VerifyDummy(input.Password)
			return nil, authDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !a.passwordService.Verify(input.Password, user.Password) {
		return nil, authDomain.ErrInvalidCredentials
	}

	role, err := a.roleRepo.Get(ctx, user.RoleID)
	if err != nil {
		if errors.Is(err, roleDomain.ErrRoleNotFound) {
			return nil, authDomain.ErrRoleIntegrity
		}
		return nil, err
	}

	claims := &authDomain.Claims{
		Subject:   user.Username,
		UserID:    user.ID,
		RoleID:    role.ID,
		Scopes:    role.Permissions,
		ExpiresAt: time.Now().UTC().Add(a.config.TokenExpiration),
	}

	accessToken, err := a.tokenCodec.Mint(claims)
	if err != nil {
		return nil, err
	}

	return &authDomain.LoginOutput{
		AccessToken: accessToken,
		TokenType:   authDomain.TokenTypeBearer,
		User:        user.Sanitized(),
	}, nil
}

// Authorize verifies a raw token and enforces the required scopes.
func (a *authUseCase) Authorize(
	_ context.Context,
	rawToken string,
	requiredScopes []string,
) (*authDomain.Claims, error) {
	claims, err := a.tokenCodec.Parse(rawToken)
	if err != nil {
		return nil, err
	}

	for _, scope := range requiredScopes {
		if !claims.HasScope(scope) {
			return nil, authDomain.ErrInsufficientScope
		}
	}

	return claims, nil
}

// NewAuthUseCase creates an AuthUseCase with the provided dependencies.
func NewAuthUseCase(
	cfg *config.Config,
	userRepo UserRepository,
	roleRepo RoleRepository,
	passwordService authService.PasswordService,
	tokenCodec authService.TokenCodec,
) AuthUseCase {
	return &authUseCase{
		config:          cfg,
		userRepo:        userRepo,
		roleRepo:        roleRepo,
		passwordService: passwordService,
		tokenCodec:      tokenCodec,
	}
}
