package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamtrack/internal/domain/user"
	vo "teamtrack/internal/domain/user/valueobjects"
	"teamtrack/internal/infrastructure/persistence/models"
	"teamtrack/internal/shared/authorization"
	"teamtrack/internal/shared/logger"
)

func createTestUser(t *testing.T, username, email string, roleID uint) *user.User {
	addr, err := vo.NewEmail(email)
	require.NoError(t, err)

	u, err := user.NewUser(username, addr, "Test", "User", roleID, authorization.RoleDeveloper)
	require.NoError(t, err)
	return u
}

func TestUserRepository_SaveAndGet(t *testing.T) {
	database := setupTestDB(t)
	require.NoError(t, database.Create(&models.RoleModel{Name: "Developer", Slug: "developer", IsActive: true}).Error)

	repo := NewUserRepository(database, logger.NewLogger())
	ctx := context.Background()

	u := createTestUser(t, "alice", "alice@example.com", 1)
	require.NoError(t, repo.Save(ctx, u))
	assert.NotZero(t, u.ID())

	t.Run("get by username resolves the role slug", func(t *testing.T) {
		found, err := repo.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "alice@example.com", found.Email().String())
		assert.Equal(t, authorization.RoleDeveloper, found.Role())
	})

	t.Run("get by email", func(t *testing.T) {
		found, err := repo.GetByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "alice", found.Username())
	})

	t.Run("missing user returns nil without error", func(t *testing.T) {
		found, err := repo.GetByUsername(ctx, "nobody")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("duplicate username fails", func(t *testing.T) {
		dup := createTestUser(t, "alice", "alice2@example.com", 1)
		assert.Error(t, repo.Save(ctx, dup))
	})
}

func TestUserRepository_ExistsChecks(t *testing.T) {
	database := setupTestDB(t)
	require.NoError(t, database.Create(&models.RoleModel{Name: "Developer", Slug: "developer", IsActive: true}).Error)

	repo := NewUserRepository(database, logger.NewLogger())
	ctx := context.Background()

	u := createTestUser(t, "bob", "bob@example.com", 1)
	require.NoError(t, repo.Save(ctx, u))

	exists, err := repo.ExistsByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByUsername(ctx, "carol")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUserRepository_UpdateDeactivates(t *testing.T) {
	database := setupTestDB(t)
	require.NoError(t, database.Create(&models.RoleModel{Name: "Developer", Slug: "developer", IsActive: true}).Error)

	repo := NewUserRepository(database, logger.NewLogger())
	ctx := context.Background()

	u := createTestUser(t, "dave", "dave@example.com", 1)
	require.NoError(t, repo.Save(ctx, u))

	u.Deactivate()
	require.NoError(t, repo.Update(ctx, u))

	found, err := repo.GetByID(ctx, u.ID())
	require.NoError(t, err)
	assert.False(t, found.IsActive())
}
