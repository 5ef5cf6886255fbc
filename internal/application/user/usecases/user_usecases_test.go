package usecases

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamtrack/internal/application/activity"
	"teamtrack/internal/application/user/dto"
	infraauth "teamtrack/internal/infrastructure/auth"
	"teamtrack/internal/shared/errors"
	"teamtrack/internal/shared/logger"
)

var testHasher = infraauth.NewBcryptPasswordHasher(4)

func newTestRecorder() (*activity.Recorder, *mockActivityRepo) {
	repo := &mockActivityRepo{}
	return activity.NewRecorder(repo, logger.NewLogger()), repo
}

func createUser(t *testing.T, uc *CreateUserUseCase, username, email string, roleID uint) *dto.UserResponse {
	t.Helper()
	resp, err := uc.Execute(context.Background(), 1, dto.CreateUserRequest{
		Username:  username,
		Email:     email,
		FirstName: "Jane",
		LastName:  "Doe",
		Password:  "Secret@123",
		RoleID:    roleID,
	})
	require.NoError(t, err)
	return resp
}

func TestCreateUserUseCase(t *testing.T) {
	userRepo := newMockUserRepo()
	roleRepo := newMockRoleRepo()
	recorder, activityRepo := newTestRecorder()
	uc := NewCreateUserUseCase(userRepo, roleRepo, testHasher, recorder, logger.NewLogger())

	t.Run("creates a developer", func(t *testing.T) {
		resp := createUser(t, uc, "jane", "jane@example.com", 3)
		assert.NotZero(t, resp.ID)
		assert.Equal(t, "developer", resp.Role)
		assert.Equal(t, "Jane Doe", resp.FullName)
		assert.True(t, resp.IsActive)
		assert.Len(t, activityRepo.saved, 1)
	})

	t.Run("response never carries the password", func(t *testing.T) {
		resp := createUser(t, uc, "jack", "jack@example.com", 3)
		raw, err := json.Marshal(resp)
		require.NoError(t, err)
		assert.NotContains(t, string(raw), "Secret@123")
		assert.NotContains(t, string(raw), "password")
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), 1, dto.CreateUserRequest{
			Username:  "jane",
			Email:     "other@example.com",
			FirstName: "Other",
			LastName:  "User",
			Password:  "Secret@123",
			RoleID:    3,
		})
		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), 1, dto.CreateUserRequest{
			Username:  "norole",
			Email:     "norole@example.com",
			FirstName: "No",
			LastName:  "Role",
			Password:  "Secret@123",
			RoleID:    42,
		})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestDeleteUserUseCase(t *testing.T) {
	newFixture := func(t *testing.T, counts *mockTicketCounts) (*DeleteUserUseCase, *mockUserRepo, uint) {
		userRepo := newMockUserRepo()
		roleRepo := newMockRoleRepo()
		recorder, _ := newTestRecorder()
		create := NewCreateUserUseCase(userRepo, roleRepo, testHasher, recorder, logger.NewLogger())
		resp := createUser(t, create, "victim", "victim@example.com", 3)
		return NewDeleteUserUseCase(userRepo, counts, recorder, logger.NewLogger()), userRepo, resp.ID
	}

	t.Run("soft deletes when unreferenced", func(t *testing.T) {
		uc, userRepo, id := newFixture(t, &mockTicketCounts{})

		require.NoError(t, uc.Execute(context.Background(), 99, id))

		u, _ := userRepo.GetByID(context.Background(), id)
		require.NotNil(t, u, "the row survives as an inactive account")
		assert.False(t, u.IsActive())
	})

	t.Run("refuses while tickets are assigned", func(t *testing.T) {
		uc, _, id := newFixture(t, &mockTicketCounts{assigned: 2})

		err := uc.Execute(context.Background(), 99, id)
		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("refuses while comments exist", func(t *testing.T) {
		uc, _, id := newFixture(t, &mockTicketCounts{comments: 1})

		err := uc.Execute(context.Background(), 99, id)
		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("refuses self deletion", func(t *testing.T) {
		uc, _, id := newFixture(t, &mockTicketCounts{})

		err := uc.Execute(context.Background(), id, id)
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestChangeRoleUseCase(t *testing.T) {
	userRepo := newMockUserRepo()
	roleRepo := newMockRoleRepo()
	recorder, _ := newTestRecorder()
	create := NewCreateUserUseCase(userRepo, roleRepo, testHasher, recorder, logger.NewLogger())
	resp := createUser(t, create, "promotee", "promotee@example.com", 3)

	uc := NewChangeRoleUseCase(userRepo, roleRepo, recorder, logger.NewLogger())

	t.Run("promotes developer to manager", func(t *testing.T) {
		changed, err := uc.Execute(context.Background(), 99, resp.ID, dto.ChangeRoleRequest{RoleID: 2})
		require.NoError(t, err)
		assert.Equal(t, "manager", changed.Role)
		assert.Equal(t, uint(2), changed.RoleID)
	})

	t.Run("refuses changing own role", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), resp.ID, resp.ID, dto.ChangeRoleRequest{RoleID: 1})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestListRolesUseCase(t *testing.T) {
	roleRepo := newMockRoleRepo()
	uc := NewListRolesUseCase(roleRepo)

	roles, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, roles, 4)

	slugs := make([]string, 0, len(roles))
	for _, r := range roles {
		slugs = append(slugs, r.Slug)
	}
	assert.ElementsMatch(t, []string{"admin", "manager", "developer", "tester"}, slugs)
}

func TestUpdateProfileUseCase(t *testing.T) {
	userRepo := newMockUserRepo()
	roleRepo := newMockRoleRepo()
	recorder, _ := newTestRecorder()
	create := NewCreateUserUseCase(userRepo, roleRepo, testHasher, recorder, logger.NewLogger())
	resp := createUser(t, create, "selfie", "selfie@example.com", 4)

	uc := NewUpdateProfileUseCase(userRepo, logger.NewLogger())

	updated, err := uc.Execute(context.Background(), resp.ID, dto.UpdateProfileRequest{
		Email:     "newmail@example.com",
		FirstName: "New",
		LastName:  "Name",
	})
	require.NoError(t, err)
	assert.Equal(t, "newmail@example.com", updated.Email)
	assert.Equal(t, "New Name", updated.FullName)
	assert.Equal(t, "tester", updated.Role, "role is untouched by profile updates")
}
