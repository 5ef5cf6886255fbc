// Package mappers converts between domain aggregates and gorm models.
// Mappers are stateless; repositories hold one of each.
package mappers

import (
	"fmt"

	"teamtrack/internal/domain/user"
	vo "teamtrack/internal/domain/user/valueobjects"
	"teamtrack/internal/infrastructure/persistence/models"
	"teamtrack/internal/shared/authorization"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Username:     u.Username(),
		Email:        u.Email().String(),
		FirstName:    u.FirstName(),
		LastName:     u.LastName(),
		PasswordHash: u.PasswordHash(),
		RoleID:       u.RoleID(),
		IsActive:     u.IsActive(),
		LastLoginAt:  u.LastLoginAt(),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
	}
}

// ToDomain rebuilds the aggregate. The role slug comes from the joined
// RoleModel when the repository preloaded it; otherwise the role falls
// back to the default and callers that need it must preload.
func (m *UserMapper) ToDomain(model *models.UserModel) (*user.User, error) {
	email, err := vo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("invalid stored email (user id=%d): %w", model.ID, err)
	}

	roleSlug := ""
	if model.Role != nil {
		roleSlug = model.Role.Slug
	}
	role := authorization.ParseUserRole(roleSlug)

	return user.ReconstructUser(
		model.ID,
		model.Username,
		email,
		model.FirstName,
		model.LastName,
		model.PasswordHash,
		model.RoleID,
		role,
		model.IsActive,
		model.LastLoginAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *UserMapper) ToDomainList(modelList []*models.UserModel) ([]*user.User, error) {
	users := make([]*user.User, 0, len(modelList))
	for _, model := range modelList {
		u, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

func (m *UserMapper) RoleToDomain(model *models.RoleModel) *user.Role {
	return &user.Role{
		ID:          model.ID,
		Name:        model.Name,
		Slug:        authorization.UserRole(model.Slug),
		Description: model.Description,
		IsActive:    model.IsActive,
	}
}
