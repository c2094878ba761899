package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/auth/internal/auth/domain"
	apperrors "github.com/allisson/auth/internal/errors"
	"github.com/allisson/auth/internal/role/domain"
)

// memoryRoleRepository is an in-memory RoleRepository for use case tests.
type memoryRoleRepository struct {
	roles map[uuid.UUID]*domain.Role
	err   error
}

func newMemoryRoleRepository() *memoryRoleRepository {
	return &memoryRoleRepository{roles: make(map[uuid.UUID]*domain.Role)}
}

func (m *memoryRoleRepository) Create(_ context.Context, role *domain.Role) error {
	if m.err != nil {
		return m.err
	}
	for _, existing := range m.roles {
		if existing.Name == role.Name {
			return domain.ErrRoleNameTaken
		}
	}
	roleCopy := *role
	m.roles[role.ID] = &roleCopy
	return nil
}

func (m *memoryRoleRepository) Get(_ context.Context, roleID uuid.UUID) (*domain.Role, error) {
	if m.err != nil {
		return nil, m.err
	}
	role, ok := m.roles[roleID]
	if !ok {
		return nil, domain.ErrRoleNotFound
	}
	roleCopy := *role
	return &roleCopy, nil
}

func (m *memoryRoleRepository) GetByName(_ context.Context, name string) (*domain.Role, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, role := range m.roles {
		if role.Name == name {
			roleCopy := *role
			return &roleCopy, nil
		}
	}
	return nil, domain.ErrRoleNotFound
}

func (m *memoryRoleRepository) GetAll(_ context.Context, offset, limit int) ([]*domain.Role, error) {
	if m.err != nil {
		return nil, m.err
	}
	var roles []*domain.Role
	for _, role := range m.roles {
		roleCopy := *role
		roles = append(roles, &roleCopy)
	}
	if offset >= len(roles) {
		return nil, nil
	}
	end := offset + limit
	if end > len(roles) {
		end = len(roles)
	}
	return roles[offset:end], nil
}

func (m *memoryRoleRepository) Update(_ context.Context, role *domain.Role) error {
	if m.err != nil {
		return m.err
	}
	roleCopy := *role
	m.roles[role.ID] = &roleCopy
	return nil
}

func (m *memoryRoleRepository) Delete(_ context.Context, roleID uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	delete(m.roles, roleID)
	return nil
}

func TestRoleUseCaseCreate(t *testing.T) {
	repo := newMemoryRoleRepository()
	uc := NewRoleUseCase(repo)
	ctx := context.Background()

	role, err := uc.Create(ctx, &CreateRoleInput{
		Name:        "operators",
		Permissions: []string{authDomain.ScopeUserRead, authDomain.ScopeRoleRead},
		CreatedBy:   "admin",
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, role.ID)
	assert.Equal(t, "operators", role.Name)
	assert.Equal(t, []string{authDomain.ScopeUserRead, authDomain.ScopeRoleRead}, role.Permissions)
	assert.Equal(t, "admin", role.CreatedBy)
	assert.WithinDuration(t, time.Now().UTC(), role.CreatedAt, 5*time.Second)

	// Persisted
	stored, err := uc.Get(ctx, role.ID)
	require.NoError(t, err)
	assert.Equal(t, role.Name, stored.Name)
}

func TestRoleUseCaseCreateTrimsName(t *testing.T) {
	repo := newMemoryRoleRepository()
	uc := NewRoleUseCase(repo)

	role, err := uc.Create(context.Background(), &CreateRoleInput{
		Name:        "  operators  ",
		Permissions: []string{authDomain.ScopeUserRead},
		CreatedBy:   "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, "operators", role.Name)
}

func TestRoleUseCaseCreateValidation(t *testing.T) {
	tests := []struct {
		name  string
		input *CreateRoleInput
	}{
		{
			name: "missing name",
			input: &CreateRoleInput{
				Permissions: []string{authDomain.ScopeUserRead},
			},
		},
		{
			name: "blank name",
			input: &CreateRoleInput{
				Name:        "   ",
				Permissions: []string{authDomain.ScopeUserRead},
			},
		},
		{
			name: "missing permissions",
			input: &CreateRoleInput{
				Name: "operators",
			},
		},
		{
			name: "unknown permission",
			input: &CreateRoleInput{
				Name:        "operators",
				Permissions: []string{"secret:read"},
			},
		},
		{
			name: "mix of known and unknown permissions",
			input: &CreateRoleInput{
				Name:        "operators",
				Permissions: []string{authDomain.ScopeUserRead, "user:admin"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemoryRoleRepository()
			uc := NewRoleUseCase(repo)

			role, err := uc.Create(context.Background(), tt.input)
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
			assert.Nil(t, role)
			assert.Empty(t, repo.roles, "nothing should be persisted on validation failure")
		})
	}
}

func TestRoleUseCaseCreateNameTaken(t *testing.T) {
	repo := newMemoryRoleRepository()
	uc := NewRoleUseCase(repo)
	ctx := context.Background()

	_, err := uc.Create(ctx, &CreateRoleInput{
		Name:        "operators",
		Permissions: []string{authDomain.ScopeUserRead},
	})
	require.NoError(t, err)

	role, err := uc.Create(ctx, &CreateRoleInput{
		Name:        "operators",
		Permissions: []string{authDomain.ScopeRoleRead},
	})
	assert.ErrorIs(t, err, domain.ErrRoleNameTaken)
	assert.Nil(t, role)
}

func TestRoleUseCaseGetNotFound(t *testing.T) {
	uc := NewRoleUseCase(newMemoryRoleRepository())

	role, err := uc.Get(context.Background(), uuid.Must(uuid.NewV7()))
	assert.ErrorIs(t, err, domain.ErrRoleNotFound)
	assert.Nil(t, role)
}

func TestRoleUseCaseGetByName(t *testing.T) {
	repo := newMemoryRoleRepository()
	uc := NewRoleUseCase(repo)
	ctx := context.Background()

	created, err := uc.Create(ctx, &CreateRoleInput{
		Name:        "root",
		Permissions: authDomain.RootScopes(),
	})
	require.NoError(t, err)

	role, err := uc.GetByName(ctx, "root")
	require.NoError(t, err)
	assert.Equal(t, created.ID, role.ID)

	_, err = uc.GetByName(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrRoleNotFound)
}

func TestRoleUseCaseUpdate(t *testing.T) {
	repo := newMemoryRoleRepository()
	uc := NewRoleUseCase(repo)
	ctx := context.Background()

	created, err := uc.Create(ctx, &CreateRoleInput{
		Name:        "operators",
		Permissions: []string{authDomain.ScopeUserRead},
		CreatedBy:   "admin",
	})
	require.NoError(t, err)

	t.Run("update name only", func(t *testing.T) {
		newName := "auditors"
		updated, err := uc.Update(ctx, created.ID, &UpdateRoleInput{
			Name:      &newName,
			UpdatedBy: "admin",
		})
		require.NoError(t, err)

		assert.Equal(t, "auditors", updated.Name)
		// Untouched fields keep their values (patch semantics)
		assert.Equal(t, []string{authDomain.ScopeUserRead}, updated.Permissions)
		assert.Equal(t, "admin", updated.UpdatedBy)
		require.NotNil(t, updated.UpdatedAt)
	})

	t.Run("update permissions only", func(t *testing.T) {
		perms := []string{authDomain.ScopeUserRead, authDomain.ScopeUserWrite}
		updated, err := uc.Update(ctx, created.ID, &UpdateRoleInput{
			Permissions: &perms,
			UpdatedBy:   "admin",
		})
		require.NoError(t, err)

		assert.Equal(t, perms, updated.Permissions)
		assert.Equal(t, "auditors", updated.Name, "name from previous update is preserved")
	})

	t.Run("unknown permission rejected", func(t *testing.T) {
		perms := []string{"billing:export"}
		updated, err := uc.Update(ctx, created.ID, &UpdateRoleInput{
			Permissions: &perms,
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		assert.Nil(t, updated)
	})

	t.Run("blank name rejected", func(t *testing.T) {
		blank := "   "
		updated, err := uc.Update(ctx, created.ID, &UpdateRoleInput{
			Name: &blank,
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		assert.Nil(t, updated)
	})

	t.Run("missing role", func(t *testing.T) {
		newName := "ghost"
		updated, err := uc.Update(ctx, uuid.Must(uuid.NewV7()), &UpdateRoleInput{
			Name: &newName,
		})
		assert.ErrorIs(t, err, domain.ErrRoleNotFound)
		assert.Nil(t, updated)
	})
}

func TestRoleUseCaseDelete(t *testing.T) {
	repo := newMemoryRoleRepository()
	uc := NewRoleUseCase(repo)
	ctx := context.Background()

	created, err := uc.Create(ctx, &CreateRoleInput{
		Name:        "operators",
		Permissions: []string{authDomain.ScopeUserRead},
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, created.ID))

	_, err = uc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrRoleNotFound)

	// Deleting an absent role is not an error
	assert.NoError(t, uc.Delete(ctx, created.ID))
}

func TestRoleUseCaseGetAll(t *testing.T) {
	repo := newMemoryRoleRepository()
	uc := NewRoleUseCase(repo)
	ctx := context.Background()

	for _, name := range []string{"role-a", "role-b", "role-c"} {
		_, err := uc.Create(ctx, &CreateRoleInput{
			Name:        name,
			Permissions: []string{authDomain.ScopeUserRead},
		})
		require.NoError(t, err)
	}

	roles, err := uc.GetAll(ctx, 0, 50)
	require.NoError(t, err)
	assert.Len(t, roles, 3)

	roles, err = uc.GetAll(ctx, 0, 2)
	require.NoError(t, err)
	assert.Len(t, roles, 2)

	roles, err = uc.GetAll(ctx, 10, 2)
	require.NoError(t, err)
	assert.Empty(t, roles)
}
