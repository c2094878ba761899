package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/auth/internal/auth/domain"
	authHTTP "github.com/allisson/auth/internal/auth/http"
	roleHTTP "github.com/allisson/auth/internal/role/http"
	roleRepository "github.com/allisson/auth/internal/role/repository"
	roleUsecase "github.com/allisson/auth/internal/role/usecase"
	userHTTP "github.com/allisson/auth/internal/user/http"
	userRepository "github.com/allisson/auth/internal/user/repository"
	userUsecase "github.com/allisson/auth/internal/user/usecase"
)

// RoleRepository returns the role repository instance.
func (c *Container) RoleRepository() (roleUsecase.RoleRepository, error) {
	c.roleRepoInit.Do(func() {
		repo, err := c.initRoleRepository()
		if err != nil {
			c.initErrors["roleRepo"] = err
			return
		}
		c.roleRepo = repo
	})
	if storedErr, exists := c.initErrors["roleRepo"]; exists {
		return nil, storedErr
	}
	return c.roleRepo, nil
}

// UserRepository returns the user repository instance.
func (c *Container) UserRepository() (userUsecase.UserRepository, error) {
	c.userRepoInit.Do(func() {
		repo, err := c.initUserRepository()
		if err != nil {
			c.initErrors["userRepo"] = err
			return
		}
		c.userRepo = repo
	})
	if storedErr, exists := c.initErrors["userRepo"]; exists {
		return nil, storedErr
	}
	return c.userRepo, nil
}

// RoleUseCase returns the role use case instance.
func (c *Container) RoleUseCase() (roleUsecase.UseCase, error) {
	c.roleUseCaseInit.Do(func() {
		useCase, err := c.initRoleUseCase()
		if err != nil {
			c.initErrors["roleUseCase"] = err
			return
		}
		c.roleUseCase = useCase
	})
	if storedErr, exists := c.initErrors["roleUseCase"]; exists {
		return nil, storedErr
	}
	return c.roleUseCase, nil
}

// UserUseCase returns the user use case instance.
func (c *Container) UserUseCase() (userUsecase.UseCase, error) {
	c.userUseCaseInit.Do(func() {
		useCase, err := c.initUserUseCase()
		if err != nil {
			c.initErrors["userUseCase"] = err
			return
		}
		c.userUseCase = useCase
	})
	if storedErr, exists := c.initErrors["userUseCase"]; exists {
		return nil, storedErr
	}
	return c.userUseCase, nil
}

// initRoleRepository creates the role repository instance.
func (c *Container) initRoleRepository() (roleUsecase.RoleRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for role repository: %w", err)
	}

	// Select the appropriate repository based on the database driver
	switch c.config.DBDriver {
	case "mysql":
		return roleRepository.NewMySQLRoleRepository(db), nil
	case "postgres":
		return roleRepository.NewPostgreSQLRoleRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initUserRepository creates the user repository instance.
func (c *Container) initUserRepository() (userUsecase.UserRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for user repository: %w", err)
	}

	// Select the appropriate repository based on the database driver
	switch c.config.DBDriver {
	case "mysql":
		return userRepository.NewMySQLUserRepository(db), nil
	case "postgres":
		return userRepository.NewPostgreSQLUserRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initRoleUseCase creates the role use case with all its dependencies.
func (c *Container) initRoleUseCase() (roleUsecase.UseCase, error) {
	roleRepo, err := c.RoleRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get role repository for role use case: %w", err)
	}

	useCase := roleUsecase.NewRoleUseCase(roleRepo)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for role use case: %w", err)
		}
		useCase = roleUsecase.NewRoleUseCaseWithMetrics(useCase, businessMetrics)
	}

	return useCase, nil
}

// initUserUseCase creates the user use case with all its dependencies.
func (c *Container) initUserUseCase() (userUsecase.UseCase, error) {
	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for user use case: %w", err)
	}

	roleRepo, err := c.RoleRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get role repository for user use case: %w", err)
	}

	passwordService, err := c.PasswordService()
	if err != nil {
		return nil, fmt.Errorf("failed to get password service for user use case: %w", err)
	}

	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for user use case: %w", err)
	}

	useCase := userUsecase.NewUserUseCase(userRepo, roleRepo, passwordService, txManager)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for user use case: %w", err)
		}
		useCase = userUsecase.NewUserUseCaseWithMetrics(useCase, businessMetrics)
	}

	return useCase, nil
}

// buildRoutes wires handlers and scope guards into a route registration
// function consumed by the HTTP server.
func (c *Container) buildRoutes() (func(*gin.Engine), error) {
	logger := c.Logger()

	authUseCase, err := c.AuthUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get auth use case for routes: %w", err)
	}

	roleUseCase, err := c.RoleUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get role use case for routes: %w", err)
	}

	userUseCase, err := c.UserUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get user use case for routes: %w", err)
	}

	loginHandler := authHTTP.NewLoginHandler(authUseCase, logger)
	roleHandler := roleHTTP.NewRoleHandler(roleUseCase, logger)
	userHandler := userHTTP.NewUserHandler(userUseCase, logger)

	return func(router *gin.Engine) {
		v1 := router.Group("/v1")

		// Login endpoints are unauthenticated and rate limited per IP.
		auth := v1.Group("/auth")
		if c.config.RateLimitLoginEnabled {
			auth.Use(authHTTP.LoginRateLimitMiddleware(
				c.config.RateLimitLoginRequestsPerSec,
				c.config.RateLimitLoginBurst,
				logger,
			))
		}
		auth.POST("", loginHandler.LoginHandler)
		auth.POST("/swagger", loginHandler.SwaggerLoginHandler)

		roles := v1.Group("/roles")
		roles.POST("",
			authHTTP.RequireScopes(authUseCase, logger, authDomain.ScopeRoleWrite),
			roleHandler.CreateRoleHandler)
		roles.GET("",
			authHTTP.RequireScopes(authUseCase, logger, authDomain.ScopeRoleRead),
			roleHandler.ListRolesHandler)
		roles.GET("/my-role",
			authHTTP.RequireScopes(authUseCase, logger, authDomain.ScopeRoleRead),
			roleHandler.GetMyRoleHandler)
		roles.GET("/:id",
			authHTTP.RequireScopes(authUseCase, logger, authDomain.ScopeRoleRead),
			roleHandler.GetRoleHandler)
		roles.PATCH("/:id",
			authHTTP.RequireScopes(authUseCase, logger, authDomain.ScopeRoleWrite),
			roleHandler.UpdateRoleHandler)
		roles.DELETE("/:id",
			authHTTP.RequireScopes(authUseCase, logger, authDomain.ScopeRoleWrite),
			roleHandler.DeleteRoleHandler)

		users := v1.Group("/users")
		users.POST("",
			authHTTP.RequireScopes(authUseCase, logger, authDomain.ScopeUserWrite),
			userHandler.CreateUserHandler)
		users.GET("",
			authHTTP.RequireScopes(authUseCase, logger, authDomain.ScopeUserRead),
			userHandler.ListUsersHandler)
		users.GET("/me",
			authHTTP.RequireScopes(authUseCase, logger, authDomain.ScopeUserRead),
			userHandler.GetMeHandler)
		users.GET("/:id",
			authHTTP.RequireScopes(authUseCase, logger, authDomain.ScopeUserRead),
			userHandler.GetUserHandler)
		users.PATCH("/:id",
			authHTTP.RequireScopes(authUseCase, logger, authDomain.ScopeUserWrite),
			userHandler.UpdateUserHandler)
		users.DELETE("/:id",
			authHTTP.RequireScopes(authUseCase, logger, authDomain.ScopeUserWrite),
			userHandler.DeleteUserHandler)
	}, nil
}
