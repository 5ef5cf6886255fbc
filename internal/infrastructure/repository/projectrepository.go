package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"teamtrack/internal/domain/project"
	"teamtrack/internal/infrastructure/persistence/mappers"
	"teamtrack/internal/infrastructure/persistence/models"
	"teamtrack/internal/shared/db"
	"teamtrack/internal/shared/logger"
)

type ProjectRepository struct {
	db     *gorm.DB
	mapper *mappers.ProjectMapper
	logger logger.Interface
}

func NewProjectRepository(database *gorm.DB, log logger.Interface) project.Repository {
	return &ProjectRepository{
		db:     database,
		mapper: mappers.NewProjectMapper(),
		logger: log,
	}
}

func (r *ProjectRepository) Save(ctx context.Context, entity *project.Project) error {
	model := r.mapper.ToModel(entity)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create project", "name", model.Name, "error", err)
		return fmt.Errorf("failed to create project: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set project ID: %w", err)
	}

	return nil
}

func (r *ProjectRepository) Update(ctx context.Context, entity *project.Project) error {
	model := r.mapper.ToModel(entity)

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.ProjectModel{}).Where("id = ?", model.ID).
		Select("name", "description", "status", "manager_id", "start_date",
			"end_date", "is_active", "updated_at").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update project", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update project: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("project %d not found", model.ID)
	}

	return nil
}

// Delete removes the project and everything under it. Runs in a single
// transaction: comments first, then tickets, then the project row.
func (r *ProjectRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(tx *gorm.DB) error {
		ticketIDs := tx.Model(&models.TicketModel{}).Select("id").Where("project_id = ?", id)
		if err := tx.Where("ticket_id IN (?)", ticketIDs).
			Delete(&models.TicketCommentModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete project ticket comments: %w", err)
		}

		if err := tx.Where("project_id = ?", id).Delete(&models.TicketModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete project tickets: %w", err)
		}

		if err := tx.Delete(&models.ProjectModel{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete project: %w", err)
		}

		return nil
	})
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uint) (*project.Project, error) {
	var model models.ProjectModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get project", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ProjectRepository) List(ctx context.Context, filter project.Filter) ([]*project.Project, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ProjectModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.ManagerID != nil {
		query = query.Where("manager_id = ?", *filter.ManagerID)
	}
	if filter.VisibleToUserID != nil {
		// Projects the user manages or has tickets in.
		userTickets := tx.Session(&gorm.Session{NewDB: true}).
			Model(&models.TicketModel{}).Select("project_id").
			Where("creator_id = ? OR assignee_id = ?", *filter.VisibleToUserID, *filter.VisibleToUserID)
		query = query.Where("manager_id = ? OR id IN (?)", *filter.VisibleToUserID, userTickets)
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count projects: %w", err)
	}

	var modelList []*models.ProjectModel
	offset := (filter.Page - 1) * filter.PageSize
	if err := query.Order("created_at DESC").
		Offset(offset).Limit(filter.PageSize).
		Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}

	projects, err := r.mapper.ToDomainList(modelList)
	if err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}
