package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/auth/internal/audit"
	"github.com/allisson/auth/internal/testutil"
	"github.com/allisson/auth/internal/user/domain"
)

func mysqlUserFixture(t *testing.T, roleID uuid.UUID, username string) *domain.User {
	t.Helper()
	return &domain.User{
		ID:       uuid.Must(uuid.NewV7()),
		Username: username,
		Name:     "Test User",
		RoleID:   roleID,
		Password: "argon2id-hash",
		Created:  audit.NewCreated("admin"),
	}
}

func TestMySQLUserRepositoryCreateAndGet(t *testing.T) {
	db := testutil.SetupMySQLDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupMySQLDB(t, db)

	repo := NewMySQLUserRepository(db)
	ctx := context.Background()

	roleID := testutil.CreateTestRole(t, db, "mysql", "user-repo-role")
	user := mysqlUserFixture(t, roleID, "alice")

	err := repo.Create(ctx, user)
	require.NoError(t, err)

	retrieved, err := repo.Get(ctx, user.ID)
	require.NoError(t, err)

	assert.Equal(t, user.ID, retrieved.ID)
	assert.Equal(t, user.Username, retrieved.Username)
	assert.Equal(t, user.Name, retrieved.Name)
	assert.Equal(t, user.RoleID, retrieved.RoleID)
	assert.Equal(t, user.Password, retrieved.Password)
	assert.Equal(t, user.CreatedBy, retrieved.CreatedBy)
	assert.WithinDuration(t, user.CreatedAt, retrieved.CreatedAt, time.Second)
}

func TestMySQLUserRepositoryCreateDuplicateUsername(t *testing.T) {
	db := testutil.SetupMySQLDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupMySQLDB(t, db)

	repo := NewMySQLUserRepository(db)
	ctx := context.Background()

	roleID := testutil.CreateTestRole(t, db, "mysql", "user-repo-role")

	require.NoError(t, repo.Create(ctx, mysqlUserFixture(t, roleID, "alice")))

	err := repo.Create(ctx, mysqlUserFixture(t, roleID, "alice"))
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestMySQLUserRepositoryGetByUsername(t *testing.T) {
	db := testutil.SetupMySQLDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupMySQLDB(t, db)

	repo := NewMySQLUserRepository(db)
	ctx := context.Background()

	roleID := testutil.CreateTestRole(t, db, "mysql", "user-repo-role")
	user := mysqlUserFixture(t, roleID, "alice")
	require.NoError(t, repo.Create(ctx, user))

	retrieved, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, retrieved.ID)

	_, err = repo.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestMySQLUserRepositoryGetAll(t *testing.T) {
	db := testutil.SetupMySQLDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupMySQLDB(t, db)

	repo := NewMySQLUserRepository(db)
	ctx := context.Background()

	roleID := testutil.CreateTestRole(t, db, "mysql", "user-repo-role")

	for _, username := range []string{"alice", "bob", "carol"} {
		require.NoError(t, repo.Create(ctx, mysqlUserFixture(t, roleID, username)))
		time.Sleep(time.Millisecond) // distinct created_at ordering
	}

	users, err := repo.GetAll(ctx, 0, 50)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "carol", users[2].Username)

	users, err = repo.GetAll(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "bob", users[0].Username)
}

func TestMySQLUserRepositoryUpdate(t *testing.T) {
	db := testutil.SetupMySQLDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupMySQLDB(t, db)

	repo := NewMySQLUserRepository(db)
	ctx := context.Background()

	roleID := testutil.CreateTestRole(t, db, "mysql", "user-repo-role")
	otherRoleID := testutil.CreateTestRole(t, db, "mysql", "user-repo-other-role")

	user := mysqlUserFixture(t, roleID, "alice")
	require.NoError(t, repo.Create(ctx, user))

	user.Name = "Alice Administrator"
	user.RoleID = otherRoleID
	user.Password = "new-argon2id-hash"
	user.Updated = audit.NewUpdated("admin")
	require.NoError(t, repo.Update(ctx, user))

	retrieved, err := repo.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice Administrator", retrieved.Name)
	assert.Equal(t, otherRoleID, retrieved.RoleID)
	assert.Equal(t, "new-argon2id-hash", retrieved.Password)
	assert.Equal(t, "admin", retrieved.UpdatedBy)
	require.NotNil(t, retrieved.UpdatedAt)
}

func TestMySQLUserRepositoryDelete(t *testing.T) {
	db := testutil.SetupMySQLDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupMySQLDB(t, db)

	repo := NewMySQLUserRepository(db)
	ctx := context.Background()

	roleID := testutil.CreateTestRole(t, db, "mysql", "user-repo-role")
	user := mysqlUserFixture(t, roleID, "alice")
	require.NoError(t, repo.Create(ctx, user))

	require.NoError(t, repo.Delete(ctx, user.ID))

	_, err := repo.Get(ctx, user.ID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	// Deleting an absent user is not an error
	assert.NoError(t, repo.Delete(ctx, user.ID))
}
