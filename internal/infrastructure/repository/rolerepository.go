package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"teamtrack/internal/domain/user"
	"teamtrack/internal/infrastructure/persistence/mappers"
	"teamtrack/internal/infrastructure/persistence/models"
	"teamtrack/internal/shared/db"
	"teamtrack/internal/shared/logger"
)

type RoleRepository struct {
	db     *gorm.DB
	mapper *mappers.UserMapper
	logger logger.Interface
}

func NewRoleRepository(database *gorm.DB, log logger.Interface) user.RoleRepository {
	return &RoleRepository{
		db:     database,
		mapper: mappers.NewUserMapper(),
		logger: log,
	}
}

func (r *RoleRepository) GetByID(ctx context.Context, id uint) (*user.Role, error) {
	var model models.RoleModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get role: %w", err)
	}

	return r.mapper.RoleToDomain(&model), nil
}

func (r *RoleRepository) GetBySlug(ctx context.Context, slug string) (*user.Role, error) {
	var model models.RoleModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("slug = ?", slug).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get role by slug: %w", err)
	}

	return r.mapper.RoleToDomain(&model), nil
}

func (r *RoleRepository) List(ctx context.Context) ([]*user.Role, error) {
	var modelList []*models.RoleModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("is_active = ?", true).Order("id").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}

	roles := make([]*user.Role, 0, len(modelList))
	for _, model := range modelList {
		roles = append(roles, r.mapper.RoleToDomain(model))
	}

	return roles, nil
}
