// Package http provides HTTP handlers for role management operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHTTP "github.com/allisson/auth/internal/auth/http"
	apperrors "github.com/allisson/auth/internal/errors"
	"github.com/allisson/auth/internal/httputil"
	"github.com/allisson/auth/internal/role/http/dto"
	"github.com/allisson/auth/internal/role/usecase"
	customValidation "github.com/allisson/auth/internal/validation"
)

// RoleHandler handles role-related HTTP requests.
type RoleHandler struct {
	roleUseCase usecase.UseCase
	logger      *slog.Logger
}

// NewRoleHandler creates a new RoleHandler.
func NewRoleHandler(roleUseCase usecase.UseCase, logger *slog.Logger) *RoleHandler {
	return &RoleHandler{
		roleUseCase: roleUseCase,
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

// CreateRoleHandler creates a new role.
// POST /v1/roles - Requires role:write scope.
func (h *RoleHandler) CreateRoleHandler(c *gin.Context) {
	var req dto.CreateRoleRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	role, err := h.roleUseCase.Create(c.Request.Context(), dto.ToCreateRoleInput(req, actor(c)))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRoleResponse(role))
}

// GetRoleHandler retrieves a role by ID.
// GET /v1/roles/:id - Requires role:read scope.
func (h *RoleHandler) GetRoleHandler(c *gin.Context) {
	roleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	role, err := h.roleUseCase.Get(c.Request.Context(), roleID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToRoleResponse(role))
}

// GetMyRoleHandler retrieves the role attached to the caller's session token.
// GET /v1/roles/my-role - Requires role:read scope.
func (h *RoleHandler) GetMyRoleHandler(c *gin.Context) {
	claims, ok := authHTTP.GetClaims(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	role, err := h.roleUseCase.Get(c.Request.Context(), claims.RoleID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToRoleResponse(role))
}

// ListRolesHandler retrieves roles with pagination.
// GET /v1/roles - Requires role:read scope.
func (h *RoleHandler) ListRolesHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	roles, err := h.roleUseCase.GetAll(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"roles":  dto.ToRoleListResponse(roles),
		"offset": offset,
		"limit":  limit,
	})
}

// UpdateRoleHandler applies a partial update to a role.
// PATCH /v1/roles/:id - Requires role:write scope.
func (h *RoleHandler) UpdateRoleHandler(c *gin.Context) {
	roleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	var req dto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	role, err := h.roleUseCase.Update(c.Request.Context(), roleID, dto.ToUpdateRoleInput(req, actor(c)))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToRoleResponse(role))
}

// DeleteRoleHandler removes a role.
// DELETE /v1/roles/:id - Requires role:write scope.
func (h *RoleHandler) DeleteRoleHandler(c *gin.Context) {
	roleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := h.roleUseCase.Delete(c.Request.Context(), roleID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
