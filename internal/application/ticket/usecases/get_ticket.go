package usecases

import (
	"context"
	"fmt"

	"teamtrack/internal/application/ticket/dto"
	domainProject "teamtrack/internal/domain/project"
	domainTicket "teamtrack/internal/domain/ticket"
	"teamtrack/internal/shared/authorization"
	"teamtrack/internal/shared/errors"
	"teamtrack/internal/shared/logger"
)

type GetTicketUseCase struct {
	ticketRepo  domainTicket.Repository
	projectRepo domainProject.Repository
	logger      logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo domainTicket.Repository,
	projectRepo domainProject.Repository,
	log logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:  ticketRepo,
		projectRepo: projectRepo,
		logger:      log,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, actorID uint, role authorization.UserRole, id uint) (*dto.TicketResponse, error) {
	t, err := uc.ticketRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	visible, err := ticketVisibleTo(ctx, uc.projectRepo, t, actorID, role)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, errors.NewForbiddenError("no access to this ticket")
	}

	response := ToTicketResponse(t)
	return &response, nil
}
