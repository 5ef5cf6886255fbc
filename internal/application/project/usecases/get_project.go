package usecases

import (
	"context"
	"fmt"

	"teamtrack/internal/application/project/dto"
	domainProject "teamtrack/internal/domain/project"
	domainTicket "teamtrack/internal/domain/ticket"
	"teamtrack/internal/shared/authorization"
	"teamtrack/internal/shared/errors"
	"teamtrack/internal/shared/logger"
)

type GetProjectUseCase struct {
	projectRepo domainProject.Repository
	ticketRepo  domainTicket.Repository
	logger      logger.Interface
}

func NewGetProjectUseCase(
	projectRepo domainProject.Repository,
	ticketRepo domainTicket.Repository,
	log logger.Interface,
) *GetProjectUseCase {
	return &GetProjectUseCase{
		projectRepo: projectRepo,
		ticketRepo:  ticketRepo,
		logger:      log,
	}
}

func (uc *GetProjectUseCase) Execute(ctx context.Context, actorID uint, role authorization.UserRole, id uint) (*dto.ProjectResponse, error) {
	p, err := uc.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if p == nil {
		return nil, errors.NewNotFoundError("project not found")
	}

	visible := p.CanBeViewedBy(actorID, role)
	if !visible {
		// Developers and testers see projects they have tickets in.
		visible, err = uc.hasTicketsIn(ctx, actorID, id)
		if err != nil {
			return nil, err
		}
	}
	if !visible {
		return nil, errors.NewForbiddenError("no access to this project")
	}

	response := ToProjectResponse(p)
	return &response, nil
}

func (uc *GetProjectUseCase) hasTicketsIn(ctx context.Context, userID, projectID uint) (bool, error) {
	_, total, err := uc.ticketRepo.List(ctx, domainTicket.Filter{
		ProjectID:       &projectID,
		VisibleToUserID: &userID,
		Page:            1,
		PageSize:        1,
	})
	if err != nil {
		return false, fmt.Errorf("failed to check project visibility: %w", err)
	}
	return total > 0, nil
}
