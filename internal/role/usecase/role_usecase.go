package usecase

import (
	"context"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/google/uuid"

	authDomain "github.com/allisson/auth/internal/auth/domain"
	"github.com/allisson/auth/internal/audit"
	"github.com/allisson/auth/internal/role/domain"
	appValidation "github.com/allisson/auth/internal/validation"
)

// roleUseCase implements UseCase.
type roleUseCase struct {
	roleRepo RoleRepository
}

// NewRoleUseCase creates a new role use case.
func NewRoleUseCase(roleRepo RoleRepository) UseCase {
	return &roleUseCase{roleRepo: roleRepo}
}

// knownScope validates that a value is a capability string from the scope
// catalog vocabulary.
var knownScope = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_scope_type", "must be a string")
	}
	if !authDomain.IsKnownScope(s) {
		return validation.NewError("validation_scope_unknown", "unknown permission: "+s)
	}
	return nil
})

// validateCreateRoleInput validates role creation input, including that every
// permission belongs to the scope catalog vocabulary.
func (uc *roleUseCase) validateCreateRoleInput(input *CreateRoleInput) error {
	err := validation.ValidateStruct(input,
		validation.Field(&input.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("name must be between 1 and 255 characters"),
		),
		validation.Field(&input.Permissions,
			validation.Required.Error("permissions are required"),
			validation.Each(knownScope),
		),
	)
	return appValidation.WrapValidationError(err)
}

// Create creates a new role.
func (uc *roleUseCase) Create(ctx context.Context, input *CreateRoleInput) (*domain.Role, error) {
	if err := uc.validateCreateRoleInput(input); err != nil {
		return nil, err
	}

	role := &domain.Role{
		ID:          uuid.Must(uuid.NewV7()),
		Name:        strings.TrimSpace(input.Name),
		Permissions: input.Permissions,
		Created:     audit.NewCreated(input.CreatedBy),
	}

	if err := uc.roleRepo.Create(ctx, role); err != nil {
		return nil, err
	}

	return role, nil
}

// Get retrieves a role by ID.
func (uc *roleUseCase) Get(ctx context.Context, roleID uuid.UUID) (*domain.Role, error) {
	return uc.roleRepo.Get(ctx, roleID)
}

// GetByName retrieves a role by its unique name.
func (uc *roleUseCase) GetByName(ctx context.Context, name string) (*domain.Role, error) {
	return uc.roleRepo.GetByName(ctx, name)
}

// GetAll retrieves roles with pagination.
func (uc *roleUseCase) GetAll(ctx context.Context, offset, limit int) ([]*domain.Role, error) {
	return uc.roleRepo.GetAll(ctx, offset, limit)
}

// Update applies a partial update to an existing role.
func (uc *roleUseCase) Update(
	ctx context.Context,
	roleID uuid.UUID,
	input *UpdateRoleInput,
) (*domain.Role, error) {
	role, err := uc.roleRepo.Get(ctx, roleID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if err := appValidation.WrapValidationError(validation.Validate(name,
			validation.Required.Error("name must not be blank"),
			validation.Length(1, 255).Error("name must be between 1 and 255 characters"),
		)); err != nil {
			return nil, err
		}
		role.Name = name
	}

	if input.Permissions != nil {
		if err := appValidation.WrapValidationError(validation.Validate(*input.Permissions,
			validation.Required.Error("permissions must not be empty"),
			validation.Each(knownScope),
		)); err != nil {
			return nil, err
		}
		role.Permissions = *input.Permissions
	}

	role.Updated = audit.NewUpdated(input.UpdatedBy)

	if err := uc.roleRepo.Update(ctx, role); err != nil {
		return nil, err
	}

	return role, nil
}

// Delete removes a role. Deleting an absent role is not an error.
func (uc *roleUseCase) Delete(ctx context.Context, roleID uuid.UUID) error {
	return uc.roleRepo.Delete(ctx, roleID)
}
