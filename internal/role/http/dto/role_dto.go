// Package dto contains request and response shapes for the role HTTP API.
package dto

import (
	"time"

	validation "github.com/jellydator/validation"

	"github.com/allisson/auth/internal/role/domain"
	"github.com/allisson/auth/internal/role/usecase"
	customValidation "github.com/allisson/auth/internal/validation"
)

// CreateRoleRequest represents the role creation payload.
type CreateRoleRequest struct {
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

// Validate checks if the create role request is valid. Permission vocabulary
// checks happen in the use case layer.
func (r *CreateRoleRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Permissions,
			validation.Required,
		),
	)
}

// ToCreateRoleInput converts the request to a use case input.
// createdBy is the authenticated actor recorded in the audit trail.
func ToCreateRoleInput(r CreateRoleRequest, createdBy string) *usecase.CreateRoleInput {
	return &usecase.CreateRoleInput{
		Name:        r.Name,
		Permissions: r.Permissions,
		CreatedBy:   createdBy,
	}
}

// UpdateRoleRequest represents a partial role update. Absent fields are left
// untouched.
type UpdateRoleRequest struct {
	Name        *string   `json:"name"`
	Permissions *[]string `json:"permissions"`
}

// Validate checks if the update role request is valid.
func (r *UpdateRoleRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.NilOrNotEmpty,
		),
		validation.Field(&r.Permissions,
			validation.NilOrNotEmpty,
		),
	)
}

// ToUpdateRoleInput converts the request to a use case input.
func ToUpdateRoleInput(r UpdateRoleRequest, updatedBy string) *usecase.UpdateRoleInput {
	return &usecase.UpdateRoleInput{
		Name:        r.Name,
		Permissions: r.Permissions,
		UpdatedBy:   updatedBy,
	}
}

// RoleResponse represents a role in API responses.
type RoleResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Permissions []string   `json:"permissions"`
	CreatedBy   string     `json:"created_by,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedBy   string     `json:"updated_by,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// ToRoleResponse converts a domain role to an API response.
func ToRoleResponse(role *domain.Role) RoleResponse {
	return RoleResponse{
		ID:          role.ID.String(),
		Name:        role.Name,
		Permissions: role.Permissions,
		CreatedBy:   role.CreatedBy,
		CreatedAt:   role.CreatedAt,
		UpdatedBy:   role.UpdatedBy,
		UpdatedAt:   role.UpdatedAt,
	}
}

// ToRoleListResponse converts a slice of domain roles to API responses.
func ToRoleListResponse(roles []*domain.Role) []RoleResponse {
	responses := make([]RoleResponse, 0, len(roles))
	for _, role := range roles {
		responses = append(responses, ToRoleResponse(role))
	}
	return responses
}
