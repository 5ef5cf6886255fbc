package usecases

import (
	"context"
	"fmt"

	"teamtrack/internal/application/activity"
	"teamtrack/internal/application/ticket/dto"
	domainActivity "teamtrack/internal/domain/activity"
	domainProject "teamtrack/internal/domain/project"
	domainTicket "teamtrack/internal/domain/ticket"
	vo "teamtrack/internal/domain/ticket/valueobjects"
	"teamtrack/internal/shared/authorization"
	"teamtrack/internal/shared/errors"
	"teamtrack/internal/shared/logger"
)

type UpdateTicketUseCase struct {
	ticketRepo  domainTicket.Repository
	projectRepo domainProject.Repository
	recorder    *activity.Recorder
	logger      logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo domainTicket.Repository,
	projectRepo domainProject.Repository,
	recorder *activity.Recorder,
	log logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo:  ticketRepo,
		projectRepo: projectRepo,
		recorder:    recorder,
		logger:      log,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, actorID uint, role authorization.UserRole, id uint, request dto.UpdateTicketRequest) (*dto.TicketResponse, error) {
	t, err := uc.ticketRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	// Editing follows the same rule as viewing.
	visible, err := ticketVisibleTo(ctx, uc.projectRepo, t, actorID, role)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, errors.NewForbiddenError("no access to this ticket")
	}

	priority, err := vo.NewPriority(request.Priority)
	if err != nil {
		return nil, errors.NewValidationError("invalid priority", err.Error())
	}
	ticketType, err := vo.NewTicketType(request.Type)
	if err != nil {
		return nil, errors.NewValidationError("invalid type", err.Error())
	}

	if err := t.Update(request.Title, request.Description, priority, ticketType, request.DueDate); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	uc.logger.Infow("ticket updated", "id", t.ID())
	uc.recorder.Record(ctx, actorID, "ticket.updated",
		fmt.Sprintf("updated ticket %q", t.Title()),
		domainActivity.EntityTicket, t.ID())

	response := ToTicketResponse(t)
	return &response, nil
}
