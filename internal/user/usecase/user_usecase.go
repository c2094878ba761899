package usecase

import (
	"context"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/google/uuid"

	"github.com/allisson/auth/internal/audit"
	"github.com/allisson/auth/internal/auth/service"
	"github.com/allisson/auth/internal/database"
	"github.com/allisson/auth/internal/user/domain"
	appValidation "github.com/allisson/auth/internal/validation"
)

// passwordStrength is the policy applied to every new or changed password.
var passwordStrength = appValidation.PasswordStrength{
	MinLength:     8,
	RequireUpper:  true,
	RequireLower:  true,
	RequireNumber: true,
}

// userUseCase implements UseCase.
type userUseCase struct {
	userRepo        UserRepository
	roleRepo        RoleRepository
	passwordService service.PasswordService
	txManager       database.TxManager
}

// NewUserUseCase creates a new user use case.
func NewUserUseCase(
	userRepo UserRepository,
	roleRepo RoleRepository,
	passwordService service.PasswordService,
	txManager database.TxManager,
) UseCase {
	return &userUseCase{
		userRepo:        userRepo,
		roleRepo:        roleRepo,
		passwordService: passwordService,
		txManager:       txManager,
	}
}

// validateCreateUserInput validates user creation input.
func (uc *userUseCase) validateCreateUserInput(input *CreateUserInput) error {
	err := validation.ValidateStruct(input,
		validation.Field(&input.Username,
			validation.Required.Error("username is required"),
			appValidation.NotBlank,
			appValidation.NoWhitespace,
			validation.Length(1, 255).Error("username must be between 1 and 255 characters"),
		),
		validation.Field(&input.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("name must be between 1 and 255 characters"),
		),
		validation.Field(&input.Password,
			validation.Required.Error("password is required"),
			passwordStrength,
		),
		validation.Field(&input.RoleID,
			validation.Required.Error("role_id is required"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// Create creates a new user. The referenced role must exist and the password
// is hashed before anything is persisted.
func (uc *userUseCase) Create(ctx context.Context, input *CreateUserInput) (*domain.User, error) {
	if err := uc.validateCreateUserInput(input); err != nil {
		return nil, err
	}

	hashedPassword, err := uc.passwordService.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:       uuid.Must(uuid.NewV7()),
		Username: input.Username,
		Name:     strings.TrimSpace(input.Name),
		RoleID:   input.RoleID,
		Password: hashedPassword,
		Created:  audit.NewCreated(input.CreatedBy),
	}

	err = uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		if _, err := uc.roleRepo.Get(ctx, input.RoleID); err != nil {
			return err
		}
		return uc.userRepo.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	return user.Sanitized(), nil
}

// Get retrieves a user by ID.
func (uc *userUseCase) Get(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := uc.userRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Sanitized(), nil
}

// GetByUsername retrieves a user by username.
func (uc *userUseCase) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return user.Sanitized(), nil
}

// GetAll retrieves users with pagination.
func (uc *userUseCase) GetAll(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	users, err := uc.userRepo.GetAll(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	sanitized := make([]*domain.User, 0, len(users))
	for _, user := range users {
		sanitized = append(sanitized, user.Sanitized())
	}
	return sanitized, nil
}

// Update applies a partial update to an existing user. A changed role must
// exist and a changed password goes through strength validation and hashing.
func (uc *userUseCase) Update(
	ctx context.Context,
	userID uuid.UUID,
	input *UpdateUserInput,
) (*domain.User, error) {
	user, err := uc.userRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Username != nil {
		username := *input.Username
		if err := appValidation.WrapValidationError(validation.Validate(username,
			validation.Required.Error("username must not be blank"),
			appValidation.NotBlank,
			appValidation.NoWhitespace,
			validation.Length(1, 255).Error("username must be between 1 and 255 characters"),
		)); err != nil {
			return nil, err
		}
		user.Username = username
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if err := appValidation.WrapValidationError(validation.Validate(name,
			validation.Required.Error("name must not be blank"),
			validation.Length(1, 255).Error("name must be between 1 and 255 characters"),
		)); err != nil {
			return nil, err
		}
		user.Name = name
	}

	if input.Password != nil {
		if err := appValidation.WrapValidationError(
			validation.Validate(*input.Password, passwordStrength),
		); err != nil {
			return nil, err
		}
		hashedPassword, err := uc.passwordService.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashedPassword
	}

	if input.RoleID != nil {
		user.RoleID = *input.RoleID
	}

	user.Updated = audit.NewUpdated(input.UpdatedBy)

	err = uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		if input.RoleID != nil {
			if _, err := uc.roleRepo.Get(ctx, *input.RoleID); err != nil {
				return err
			}
		}
		return uc.userRepo.Update(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	return user.Sanitized(), nil
}

// Delete removes a user. Deleting an absent user is not an error.
func (uc *userUseCase) Delete(ctx context.Context, userID uuid.UUID) error {
	return uc.userRepo.Delete(ctx, userID)
}
