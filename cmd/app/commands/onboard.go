package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/allisson/auth/internal/app"
	authDomain "github.com/allisson/auth/internal/auth/domain"
	"github.com/allisson/auth/internal/config"
	roleDomain "github.com/allisson/auth/internal/role/domain"
	roleUsecase "github.com/allisson/auth/internal/role/usecase"
	userDomain "github.com/allisson/auth/internal/user/domain"
	userUsecase "github.com/allisson/auth/internal/user/usecase"
)

// onboardActor is the audit identity recorded for bootstrap records.
const onboardActor = "onboard"

// Bootstrap role names.
const (
	rootRoleName     = "root"
	readOnlyRoleName = "read-only"
)

// RunOnboard bootstraps a fresh installation: it creates the root role (all
// capabilities), a read-only role, and the superuser defined by ROOT_USERNAME
// and ROOT_PASSWORD. The command is idempotent - records that already exist
// are left untouched.
func RunOnboard(ctx context.Context) error {
	cfg := config.Load()

	if cfg.RootUsername == "" || cfg.RootPassword == "" {
		return fmt.Errorf("ROOT_USERNAME and ROOT_PASSWORD must be set to onboard")
	}

	container := app.NewContainer(cfg)
	logger := container.Logger()
	defer closeContainer(container, logger)

	roleUseCase, err := container.RoleUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize role use case: %w", err)
	}

	userUseCase, err := container.UserUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize user use case: %w", err)
	}

	rootRole, err := ensureRole(ctx, roleUseCase, logger, rootRoleName, authDomain.RootScopes())
	if err != nil {
		return err
	}

	if _, err := ensureRole(ctx, roleUseCase, logger, readOnlyRoleName, authDomain.ReadOnlyScopes()); err != nil {
		return err
	}

	if err := ensureRootUser(ctx, userUseCase, logger, cfg, rootRole); err != nil {
		return err
	}

	logger.Info("onboarding completed")
	return nil
}

// ensureRole returns the named role, creating it with the given permissions
// when it does not exist yet.
func ensureRole(
	ctx context.Context,
	roleUseCase roleUsecase.UseCase,
	logger *slog.Logger,
	name string,
	permissions []string,
) (*roleDomain.Role, error) {
	role, err := roleUseCase.GetByName(ctx, name)
	if err == nil {
		logger.Info("role already exists", slog.String("name", name))
		return role, nil
	}
	if !errors.Is(err, roleDomain.ErrRoleNotFound) {
		return nil, fmt.Errorf("failed to look up role %q: %w", name, err)
	}

	role, err = roleUseCase.Create(ctx, &roleUsecase.CreateRoleInput{
		Name:        name,
		Permissions: permissions,
		CreatedBy:   onboardActor,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create role %q: %w", name, err)
	}

	logger.Info("role created",
		slog.String("name", name),
		slog.String("id", role.ID.String()),
	)
	return role, nil
}

// ensureRootUser creates the configured superuser bound to the root role when
// it does not exist yet.
func ensureRootUser(
	ctx context.Context,
	userUseCase userUsecase.UseCase,
	logger *slog.Logger,
	cfg *config.Config,
	rootRole *roleDomain.Role,
) error {
	if _, err := userUseCase.GetByUsername(ctx, cfg.RootUsername); err == nil {
		logger.Info("root user already exists", slog.String("username", cfg.RootUsername))
		return nil
	} else if !errors.Is(err, userDomain.ErrUserNotFound) {
		return fmt.Errorf("failed to look up root user: %w", err)
	}

	user, err := userUseCase.Create(ctx, &userUsecase.CreateUserInput{
		Username:  cfg.RootUsername,
		Name:      cfg.RootUsername,
		Password:  cfg.RootPassword,
		RoleID:    rootRole.ID,
		CreatedBy: onboardActor,
	})
	if err != nil {
		return fmt.Errorf("failed to create root user: %w", err)
	}

	logger.Info("root user created",
		slog.String("username", user.Username),
		slog.String("id", user.ID.String()),
	)
	return nil
}
