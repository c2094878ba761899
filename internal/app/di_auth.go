package app

import (
	"context"
	"fmt"

	authService "github.com/allisson/auth/internal/auth/service"
	authUsecase "github.com/allisson/auth/internal/auth/usecase"
)

// PasswordService returns the password hashing service instance.
func (c *Container) PasswordService() (authService.PasswordService, error) {
	c.passwordServiceInit.Do(func() {
		c.passwordService = authService.NewPasswordService()
	})
	return c.passwordService, nil
}

// TokenCodec returns the session token codec instance.
// The signing secret is resolved at first access: decrypted through KMS when
// a key URI is configured, used as-is otherwise.
func (c *Container) TokenCodec() (authService.TokenCodec, error) {
	c.tokenCodecInit.Do(func() {
		codec, err := c.initTokenCodec()
		if err != nil {
			c.initErrors["tokenCodec"] = err
			return
		}
		c.tokenCodec = codec
	})
	if storedErr, exists := c.initErrors["tokenCodec"]; exists {
		return nil, storedErr
	}
	return c.tokenCodec, nil
}

// AuthUseCase returns the authentication use case instance.
func (c *Container) AuthUseCase() (authUsecase.AuthUseCase, error) {
	c.authUseCaseInit.Do(func() {
		useCase, err := c.initAuthUseCase()
		if err != nil {
			c.initErrors["authUseCase"] = err
			return
		}
		c.authUseCase = useCase
	})
	if storedErr, exists := c.initErrors["authUseCase"]; exists {
		return nil, storedErr
	}
	return c.authUseCase, nil
}

// initTokenCodec resolves the signing secret and builds the token codec.
func (c *Container) initTokenCodec() (authService.TokenCodec, error) {
	secret, err := authService.ResolveSigningSecret(
		context.Background(),
		c.config.JWTSecret,
		c.config.JWTSecretKMSKeyURI,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve token signing secret: %w", err)
	}

	codec, err := authService.NewTokenCodec(secret, c.config.JWTAlgorithm)
	if err != nil {
		return nil, fmt.Errorf("failed to create token codec: %w", err)
	}
	return codec, nil
}

// initAuthUseCase creates the authentication use case with all its dependencies.
func (c *Container) initAuthUseCase() (authUsecase.AuthUseCase, error) {
	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for auth use case: %w", err)
	}

	roleRepo, err := c.RoleRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get role repository for auth use case: %w", err)
	}

	passwordService, err := c.PasswordService()
	if err != nil {
		return nil, fmt.Errorf("failed to get password service for auth use case: %w", err)
	}

	tokenCodec, err := c.TokenCodec()
	if err != nil {
		return nil, fmt.Errorf("failed to get token codec for auth use case: %w", err)
	}

	useCase := authUsecase.NewAuthUseCase(c.config, userRepo, roleRepo, passwordService, tokenCodec)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for auth use case: %w", err)
		}
		useCase = authUsecase.NewAuthUseCaseWithMetrics(useCase, businessMetrics)
	}

	return useCase, nil
}
