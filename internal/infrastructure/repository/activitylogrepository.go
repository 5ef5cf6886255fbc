package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"teamtrack/internal/domain/activity"
	"teamtrack/internal/infrastructure/persistence/mappers"
	"teamtrack/internal/infrastructure/persistence/models"
	"teamtrack/internal/shared/db"
	"teamtrack/internal/shared/logger"
)

type ActivityLogRepository struct {
	db     *gorm.DB
	mapper *mappers.ActivityMapper
	logger logger.Interface
}

func NewActivityLogRepository(database *gorm.DB, log logger.Interface) activity.Repository {
	return &ActivityLogRepository{
		db:     database,
		mapper: mappers.NewActivityMapper(),
		logger: log,
	}
}

func (r *ActivityLogRepository) Save(ctx context.Context, l *activity.Log) error {
	model := r.mapper.ToModel(l)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to save activity log", "action", model.Action, "error", err)
		return fmt.Errorf("failed to save activity log: %w", err)
	}

	if err := l.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set activity log ID: %w", err)
	}

	return nil
}

func (r *ActivityLogRepository) List(ctx context.Context, filter activity.Filter) ([]*activity.Log, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ActivityLogModel{})

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.EntityType != nil {
		query = query.Where("entity_type = ?", *filter.EntityType)
	}
	if filter.EntityID != nil {
		query = query.Where("entity_id = ?", *filter.EntityID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count activity logs: %w", err)
	}

	var modelList []*models.ActivityLogModel
	offset := (filter.Page - 1) * filter.PageSize
	if err := query.Order("created_at DESC").
		Offset(offset).Limit(filter.PageSize).
		Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list activity logs: %w", err)
	}

	return r.mapper.ToDomainList(modelList), total, nil
}
