package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	authDomain "github.com/allisson/auth/internal/auth/domain"
	authService "github.com/allisson/auth/internal/auth/service"
	"github.com/allisson/auth/internal/config"
	roleDomain "github.com/allisson/auth/internal/role/domain"
	userDomain "github.com/allisson/auth/internal/user/domain"
)

// TestMain verifies no goroutines leak from the login and authorization flows.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeUserRepository serves a single user by username.
type fakeUserRepository struct {
	user *userDomain.User
	err  error
}

func (f *fakeUserRepository) GetByUsername(_ context.Context, username string) (*userDomain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.user == nil || f.user.Username != username {
		return nil, userDomain.ErrUserNotFound
	}
	userCopy := *f.user
	return &userCopy, nil
}

// fakeRoleRepository serves a single role by ID.
type fakeRoleRepository struct {
	role *roleDomain.Role
	err  error
}

func (f *fakeRoleRepository) Get(_ context.Context, roleID uuid.UUID) (*roleDomain.Role, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.role == nil || f.role.ID != roleID {
		return nil, roleDomain.ErrRoleNotFound
	}
	roleCopy := *f.role
	return &roleCopy, nil
}

// fakePasswordService treats "hash(<plain>)" as the stored hash for <plain>
// and records dummy verifications for timing-equalization assertions.
type fakePasswordService struct {
	dummyCalls int
}

func (f *fakePasswordService) Hash(plainPassword string) (string, error) {
	return "hash(" + plainPassword + ")", nil
}

func (f *fakePasswordService) Verify(plainPassword, hashedPassword string) bool {
	return hashedPassword == "hash("+plainPassword+")"
}

func (f *fakePasswordService) VerifyDummy(string) {
	f.dummyCalls++
}

type authFixture struct {
	useCase         AuthUseCase
	userRepo        *fakeUserRepository
	roleRepo        *fakeRoleRepository
	passwordService *fakePasswordService
	tokenCodec      authService.TokenCodec
	user            *userDomain.User
	role            *roleDomain.Role
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	role := &roleDomain.Role{
		ID:          uuid.Must(uuid.NewV7()),
		Name:        "operators",
		Permissions: []string{authDomain.ScopeUserRead, authDomain.ScopeRoleRead},
	}

	user := &userDomain.User{
		ID:       uuid.Must(uuid.NewV7()),
		Username: "alice",
		Name:     "Alice Operator",
		RoleID:   role.ID,
		Password: "hash(Sup3r-Secret)",
	}

	userRepo := &fakeUserRepository{user: user}
	roleRepo := &fakeRoleRepository{role: role}
	passwordService := &fakePasswordService{}

	tokenCodec, err := authService.NewTokenCodec([]byte("test-signing-secret-32-bytes-min"), "HS256")
	require.NoError(t, err)

	cfg := &config.Config{TokenExpiration: 30 * time.Minute}

	return &authFixture{
		useCase:         NewAuthUseCase(cfg, userRepo, roleRepo, passwordService, tokenCodec),
		userRepo:        userRepo,
		roleRepo:        roleRepo,
		passwordService: passwordService,
		tokenCodec:      tokenCodec,
		user:            user,
		role:            role,
	}
}

func TestAuthUseCaseLogin(t *testing.T) {
	fixture := newAuthFixture(t)
	ctx := context.Background()

	output, err := fixture.useCase.Login(ctx, &authDomain.LoginInput{
		Username: "alice",
		Password: "Sup3r-Secret",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, output.AccessToken)
	assert.Equal(t, authDomain.TokenTypeBearer, output.TokenType)

	// The returned user is sanitized
	assert.Equal(t, fixture.user.ID, output.User.ID)
	assert.Equal(t, "alice", output.User.Username)
	assert.Empty(t, output.User.Password)

	// The token carries the role's capability snapshot
	claims, err := fixture.tokenCodec.Parse(output.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, fixture.user.ID, claims.UserID)
	assert.Equal(t, fixture.role.ID, claims.RoleID)
	assert.Equal(t, fixture.role.Permissions, claims.Scopes)
	assert.WithinDuration(t, time.Now().UTC().Add(30*time.Minute), claims.ExpiresAt, 5*time.Second)
}

func TestAuthUseCaseLoginUnknownUser(t *testing.T) {
	fixture := newAuthFixture(t)
	ctx := context.Background()

	output, err := fixture.useCase.Login(ctx, &authDomain.LoginInput{
		Username: "nobody",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, authDomain.ErrInvalidCredentials)
	assert.Nil(t, output)

	// The unknown-user path still burns a hash verification
	assert.Equal(t, 1, fixture.passwordService.dummyCalls)
}

func TestAuthUseCaseLoginWrongPassword(t *testing.T) {
	fixture := newAuthFixture(t)
	ctx := context.Background()

	output, err := fixture.useCase.Login(ctx, &authDomain.LoginInput{
		Username: "alice",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, authDomain.ErrInvalidCredentials)
	assert.Nil(t, output)
}

func TestAuthUseCaseLoginMissingRole(t *testing.T) {
	fixture := newAuthFixture(t)
	ctx := context.Background()

	// Point the user at a role the repository does not know
	fixture.user.RoleID = uuid.Must(uuid.NewV7())

	output, err := fixture.useCase.Login(ctx, &authDomain.LoginInput{
		Username: "alice",
		Password: "Sup3r-Secret",
	})

	assert.ErrorIs(t, err, authDomain.ErrRoleIntegrity)
	assert.Nil(t, output)
}

func TestAuthUseCaseLoginUserRepositoryError(t *testing.T) {
	fixture := newAuthFixture(t)
	fixture.userRepo.err = assert.AnError
	ctx := context.Background()

	output, err := fixture.useCase.Login(ctx, &authDomain.LoginInput{
		Username: "alice",
		Password: "Sup3r-Secret",
	})

	assert.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, output)
}

func TestAuthUseCaseAuthorize(t *testing.T) {
	fixture := newAuthFixture(t)
	ctx := context.Background()

	output, err := fixture.useCase.Login(ctx, &authDomain.LoginInput{
		Username: "alice",
		Password: "Sup3r-Secret",
	})
	require.NoError(t, err)

	tests := []struct {
		name           string
		token          string
		requiredScopes []string
		wantErr        error
	}{
		{
			name:           "granted single scope",
			token:          output.AccessToken,
			requiredScopes: []string{authDomain.ScopeUserRead},
			wantErr:        nil,
		},
		{
			name:           "granted multiple scopes",
			token:          output.AccessToken,
			requiredScopes: []string{authDomain.ScopeUserRead, authDomain.ScopeRoleRead},
			wantErr:        nil,
		},
		{
			name:           "no scopes required",
			token:          output.AccessToken,
			requiredScopes: nil,
			wantErr:        nil,
		},
		{
			name:           "missing scope",
			token:          output.AccessToken,
			requiredScopes: []string{authDomain.ScopeUserWrite},
			wantErr:        authDomain.ErrInsufficientScope,
		},
		{
			name:           "one granted one missing",
			token:          output.AccessToken,
			requiredScopes: []string{authDomain.ScopeUserRead, authDomain.ScopeRoleWrite},
			wantErr:        authDomain.ErrInsufficientScope,
		},
		{
			name:           "invalid token",
			token:          "not-a-token",
			requiredScopes: []string{authDomain.ScopeUserRead},
			wantErr:        authDomain.ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := fixture.useCase.Authorize(ctx, tt.token, tt.requiredScopes)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "alice", claims.Subject)
				assert.Equal(t, fixture.user.ID, claims.UserID)
			}
		})
	}
}

func TestAuthUseCaseAuthorizeExpiredToken(t *testing.T) {
	fixture := newAuthFixture(t)
	ctx := context.Background()

	expired, err := fixture.tokenCodec.Mint(&authDomain.Claims{
		Subject:   "alice",
		UserID:    fixture.user.ID,
		RoleID:    fixture.role.ID,
		Scopes:    fixture.role.Permissions,
		ExpiresAt: time.Now().UTC().Add(-1 * time.Minute),
	})
	require.NoError(t, err)

	claims, err := fixture.useCase.Authorize(ctx, expired, []string{authDomain.ScopeUserRead})
	assert.ErrorIs(t, err, authDomain.ErrExpiredToken)
	assert.Nil(t, claims)
}
