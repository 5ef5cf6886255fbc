package activity

import (
	"context"
	"fmt"
	"time"

	"teamtrack/internal/domain/activity"
	"teamtrack/internal/shared/logger"
)

type ListRequest struct {
	UserID     *uint
	EntityType *string
	EntityID   *uint
	Page       int
	PageSize   int
}

type LogResponse struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	Action      string    `json:"action"`
	Description string    `json:"description"`
	EntityType  string    `json:"entity_type"`
	EntityID    uint      `json:"entity_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type ListActivityUseCase struct {
	repo   activity.Repository
	logger logger.Interface
}

func NewListActivityUseCase(repo activity.Repository, log logger.Interface) *ListActivityUseCase {
	return &ListActivityUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *ListActivityUseCase) Execute(ctx context.Context, request ListRequest) ([]LogResponse, int64, error) {
	logs, total, err := uc.repo.List(ctx, activity.Filter{
		UserID:     request.UserID,
		EntityType: request.EntityType,
		EntityID:   request.EntityID,
		Page:       request.Page,
		PageSize:   request.PageSize,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list activity: %w", err)
	}

	responses := make([]LogResponse, 0, len(logs))
	for _, l := range logs {
		responses = append(responses, LogResponse{
			ID:          l.ID(),
			UserID:      l.UserID(),
			Action:      l.Action(),
			Description: l.Description(),
			EntityType:  l.EntityType(),
			EntityID:    l.EntityID(),
			CreatedAt:   l.CreatedAt(),
		})
	}

	return responses, total, nil
}
