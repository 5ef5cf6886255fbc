package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"teamtrack/internal/domain/ticket"
	"teamtrack/internal/infrastructure/persistence/mappers"
	"teamtrack/internal/infrastructure/persistence/models"
	"teamtrack/internal/shared/db"
	"teamtrack/internal/shared/logger"
)

// allowedTicketOrderByFields whitelists ORDER BY columns so user input
// never reaches the SQL string.
var allowedTicketOrderByFields = map[string]bool{
	"id":         true,
	"title":      true,
	"status":     true,
	"priority":   true,
	"due_date":   true,
	"time_spent": true,
	"created_at": true,
	"updated_at": true,
}

type TicketRepository struct {
	db     *gorm.DB
	mapper *mappers.TicketMapper
	logger logger.Interface
}

func NewTicketRepository(database *gorm.DB, log logger.Interface) ticket.Repository {
	return &TicketRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
		logger: log,
	}
}

func (r *TicketRepository) Save(ctx context.Context, entity *ticket.Ticket) error {
	model := r.mapper.ToModel(entity)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create ticket", "title", model.Title, "error", err)
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set ticket ID: %w", err)
	}

	return nil
}

func (r *TicketRepository) Update(ctx context.Context, entity *ticket.Ticket) error {
	model := r.mapper.ToModel(entity)

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.TicketModel{}).Where("id = ?", model.ID).
		Select("title", "description", "project_id", "assignee_id", "status",
			"priority", "type", "due_date", "time_spent", "is_active", "updated_at").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update ticket", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ticket %d not found", model.ID)
	}

	return nil
}

// Delete hard-deletes the ticket and its comments.
func (r *TicketRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ticket_id = ?", id).Delete(&models.TicketCommentModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete ticket comments: %w", err)
		}
		if err := tx.Delete(&models.TicketModel{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete ticket: %w", err)
		}
		return nil
	})
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get ticket", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{})

	if filter.ProjectID != nil {
		query = query.Where("project_id = ?", *filter.ProjectID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.Type != nil {
		query = query.Where("type = ?", filter.Type.String())
	}
	if filter.CreatorID != nil {
		query = query.Where("creator_id = ?", *filter.CreatorID)
	}
	if filter.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filter.AssigneeID)
	}
	if filter.VisibleToUserID != nil {
		query = query.Where("creator_id = ? OR assignee_id = ?",
			*filter.VisibleToUserID, *filter.VisibleToUserID)
	}
	if filter.ManagedByUserID != nil {
		managedProjects := tx.Session(&gorm.Session{NewDB: true}).
			Model(&models.ProjectModel{}).Select("id").
			Where("manager_id = ?", *filter.ManagedByUserID)
		query = query.Where("project_id IN (?) OR creator_id = ? OR assignee_id = ?",
			managedProjects, *filter.ManagedByUserID, *filter.ManagedByUserID)
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	orderBy := "created_at"
	if filter.SortBy != "" && allowedTicketOrderByFields[filter.SortBy] {
		orderBy = filter.SortBy
	}
	direction := "DESC"
	if filter.SortOrder == "asc" {
		direction = "ASC"
	}

	var modelList []*models.TicketModel
	offset := (filter.Page - 1) * filter.PageSize
	if err := query.Order(fmt.Sprintf("%s %s", orderBy, direction)).
		Offset(offset).Limit(filter.PageSize).
		Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets, err := r.mapper.ToDomainList(modelList)
	if err != nil {
		return nil, 0, err
	}

	return tickets, total, nil
}

func (r *TicketRepository) CountActiveByAssignee(ctx context.Context, userID uint) (int64, error) {
	var count int64

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.TicketModel{}).
		Where("assignee_id = ? AND is_active = ?", userID, true).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count tickets by assignee: %w", err)
	}

	return count, nil
}

// UnassignUserFromProject clears the assignee on every ticket of the
// project currently assigned to the user.
func (r *TicketRepository) UnassignUserFromProject(ctx context.Context, projectID, userID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.TicketModel{}).
		Where("project_id = ? AND assignee_id = ?", projectID, userID).
		Update("assignee_id", nil).Error; err != nil {
		return fmt.Errorf("failed to unassign user from project tickets: %w", err)
	}

	return nil
}

func (r *TicketRepository) SaveComment(ctx context.Context, c *ticket.Comment) error {
	model := r.mapper.CommentToModel(c)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create comment", "ticket_id", model.TicketID, "error", err)
		return fmt.Errorf("failed to create comment: %w", err)
	}

	if err := c.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set comment ID: %w", err)
	}

	return nil
}

func (r *TicketRepository) GetCommentsByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	var modelList []*models.TicketCommentModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to get ticket comments: %w", err)
	}

	comments := make([]*ticket.Comment, 0, len(modelList))
	for _, model := range modelList {
		c, err := r.mapper.CommentToDomain(model)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}

	return comments, nil
}

func (r *TicketRepository) CountCommentsByAuthor(ctx context.Context, userID uint) (int64, error) {
	var count int64

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.TicketCommentModel{}).
		Where("author_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count comments by author: %w", err)
	}

	return count, nil
}
