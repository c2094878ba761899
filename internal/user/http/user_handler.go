// Package http provides HTTP handlers for user management operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHTTP "github.com/allisson/auth/internal/auth/http"
	apperrors "github.com/allisson/auth/internal/errors"
	"github.com/allisson/auth/internal/httputil"
	"github.com/allisson/auth/internal/user/http/dto"
	"github.com/allisson/auth/internal/user/usecase"
	customValidation "github.com/allisson/auth/internal/validation"
)

// UserHandler handles user-related HTTP requests.
type UserHandler struct {
	userUseCase usecase.UseCase
	logger      *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userUseCase usecase.UseCase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// actor resolves the authenticated username for audit stamping.
func actor(c *gin.Context) string {
	claims, ok := authHTTP.GetClaims(c.Request.Context())
	if !ok {
		return ""
	}
	return claims.Subject
}

// CreateUserHandler creates a new user.
// POST /v1/users - Requires user:write scope.
func (h *UserHandler) CreateUserHandler(c *gin.Context) {
	var req dto.CreateUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	user, err := h.userUseCase.Create(c.Request.Context(), dto.ToCreateUserInput(req, actor(c)))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// GetUserHandler retrieves a user by ID.
// GET /v1/users/:id - Requires user:read scope.
func (h *UserHandler) GetUserHandler(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	user, err := h.userUseCase.Get(c.Request.Context(), userID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// GetMeHandler retrieves the user identified by the caller's session token.
// GET /v1/users/me - Requires user:read scope.
func (h *UserHandler) GetMeHandler(c *gin.Context) {
	claims, ok := authHTTP.GetClaims(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	user, err := h.userUseCase.Get(c.Request.Context(), claims.UserID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// ListUsersHandler retrieves users with pagination.
// GET /v1/users - Requires user:read scope.
func (h *UserHandler) ListUsersHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	users, err := h.userUseCase.GetAll(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users":  dto.ToUserListResponse(users),
		"offset": offset,
		"limit":  limit,
	})
}

// UpdateUserHandler applies a partial update to a user.
// PATCH /v1/users/:id - Requires user:write scope.
func (h *UserHandler) UpdateUserHandler(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	user, err := h.userUseCase.Update(c.Request.Context(), userID, dto.ToUpdateUserInput(req, actor(c)))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// DeleteUserHandler removes a user.
// DELETE /v1/users/:id - Requires user:write scope.
func (h *UserHandler) DeleteUserHandler(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := h.userUseCase.Delete(c.Request.Context(), userID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
