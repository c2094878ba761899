// Package dto contains request and response shapes for the user HTTP API.
package dto

import (
	"time"

	validation "github.com/jellydator/validation"

	"github.com/google/uuid"

	"github.com/allisson/auth/internal/user/domain"
	"github.com/allisson/auth/internal/user/usecase"
	customValidation "github.com/allisson/auth/internal/validation"
)

// CreateUserRequest represents the user creation payload.
type CreateUserRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
	RoleID   string `json:"role_id"`
}

// Validate checks if the create user request is valid. Password strength is
// enforced in the use case layer.
func (r *CreateUserRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Username,
			validation.Required,
			customValidation.NotBlank,
			customValidation.NoWhitespace,
			validation.Length(1, 255),
		),
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Password,
			validation.Required,
		),
		validation.Field(&r.RoleID,
			validation.Required,
			validation.By(validUUID),
		),
	)
}

// ToCreateUserInput converts the request to a use case input.
// createdBy is the authenticated actor recorded in the audit trail.
func ToCreateUserInput(r CreateUserRequest, createdBy string) *usecase.CreateUserInput {
	return &usecase.CreateUserInput{
		Username:  r.Username,
		Name:      r.Name,
		Password:  r.Password,
		RoleID:    uuid.MustParse(r.RoleID),
		CreatedBy: createdBy,
	}
}

// UpdateUserRequest represents a partial user update. Absent fields are left
// untouched.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Name     *string `json:"name"`
	Password *string `json:"password"`
	RoleID   *string `json:"role_id"`
}

// Validate checks if the update user request is valid.
func (r *UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Username,
			validation.NilOrNotEmpty,
		),
		validation.Field(&r.Name,
			validation.NilOrNotEmpty,
		),
		validation.Field(&r.Password,
			validation.NilOrNotEmpty,
		),
		validation.Field(&r.RoleID,
			validation.By(validUUID),
		),
	)
}

// ToUpdateUserInput converts the request to a use case input.
func ToUpdateUserInput(r UpdateUserRequest, updatedBy string) *usecase.UpdateUserInput {
	input := &usecase.UpdateUserInput{
		Username:  r.Username,
		Name:      r.Name,
		Password:  r.Password,
		UpdatedBy: updatedBy,
	}
	if r.RoleID != nil {
		roleID := uuid.MustParse(*r.RoleID)
		input.RoleID = &roleID
	}
	return input
}

// UserResponse represents a user in API responses. The password hash is never
// part of this shape.
type UserResponse struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Name      string     `json:"name"`
	RoleID    string     `json:"role_id"`
	CreatedBy string     `json:"created_by,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedBy string     `json:"updated_by,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// ToUserResponse converts a domain user to an API response.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Username:  user.Username,
		Name:      user.Name,
		RoleID:    user.RoleID.String(),
		CreatedBy: user.CreatedBy,
		CreatedAt: user.CreatedAt,
		UpdatedBy: user.UpdatedBy,
		UpdatedAt: user.UpdatedAt,
	}
}

// ToUserListResponse converts a slice of domain users to API responses.
func ToUserListResponse(users []*domain.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, ToUserResponse(user))
	}
	return responses
}

// validUUID is a validation rule for UUID-formatted string fields. Nil
// pointers pass so the rule composes with optional update fields.
func validUUID(value interface{}) error {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case *string:
		if v == nil {
			return nil
		}
		s = *v
	default:
		return validation.NewError("validation_uuid_type", "must be a string")
	}
	if _, err := uuid.Parse(s); err != nil {
		return validation.NewError("validation_uuid_format", "must be a valid UUID")
	}
	return nil
}
