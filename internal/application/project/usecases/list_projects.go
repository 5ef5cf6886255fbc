package usecases

import (
	"context"
	"fmt"

	"teamtrack/internal/application/project/dto"
	domainProject "teamtrack/internal/domain/project"
	vo "teamtrack/internal/domain/project/valueobjects"
	"teamtrack/internal/shared/authorization"
	"teamtrack/internal/shared/errors"
	"teamtrack/internal/shared/logger"
)

type ListProjectsUseCase struct {
	projectRepo domainProject.Repository
	logger      logger.Interface
}

func NewListProjectsUseCase(projectRepo domainProject.Repository, log logger.Interface) *ListProjectsUseCase {
	return &ListProjectsUseCase{
		projectRepo: projectRepo,
		logger:      log,
	}
}

func (uc *ListProjectsUseCase) Execute(ctx context.Context, actorID uint, role authorization.UserRole, request dto.ListProjectsRequest) ([]dto.ProjectResponse, int64, error) {
	filter := domainProject.Filter{
		ManagerID:  request.ManagerID,
		ActiveOnly: request.ActiveOnly,
		Page:       request.Page,
		PageSize:   request.PageSize,
	}

	if request.Status != "" {
		status, err := vo.NewStatus(request.Status)
		if err != nil {
			return nil, 0, errors.NewValidationError("invalid status filter", err.Error())
		}
		filter.Status = &status
	}

	// Non-admins only see what the visibility rule allows.
	if !role.IsAdmin() {
		filter.VisibleToUserID = &actorID
	}

	projects, total, err := uc.projectRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}

	responses := make([]dto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, ToProjectResponse(p))
	}

	return responses, total, nil
}
