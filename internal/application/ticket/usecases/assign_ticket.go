package usecases

import (
	"context"
	"fmt"

	"teamtrack/internal/application/activity"
	"teamtrack/internal/application/ticket/dto"
	domainActivity "teamtrack/internal/domain/activity"
	domainTicket "teamtrack/internal/domain/ticket"
	domainUser "teamtrack/internal/domain/user"
	"teamtrack/internal/shared/errors"
	"teamtrack/internal/shared/logger"
)

type AssignTicketUseCase struct {
	ticketRepo domainTicket.Repository
	userRepo   domainUser.Repository
	recorder   *activity.Recorder
	logger     logger.Interface
}

func NewAssignTicketUseCase(
	ticketRepo domainTicket.Repository,
	userRepo domainUser.Repository,
	recorder *activity.Recorder,
	log logger.Interface,
) *AssignTicketUseCase {
	return &AssignTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		recorder:   recorder,
		logger:     log,
	}
}

func (uc *AssignTicketUseCase) Execute(ctx context.Context, actorID, id uint, request dto.AssignTicketRequest) (*dto.TicketResponse, error) {
	t, err := uc.ticketRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	assignee, err := uc.userRepo.GetByID(ctx, request.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up assignee: %w", err)
	}
	if assignee == nil || !assignee.IsActive() {
		return nil, errors.NewValidationError("assignee not found", fmt.Sprintf("user %d", request.UserID))
	}

	if err := t.AssignTo(request.UserID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to assign ticket: %w", err)
	}

	uc.logger.Infow("ticket assigned", "id", t.ID(), "assignee_id", request.UserID)
	uc.recorder.Record(ctx, actorID, "ticket.assigned",
		fmt.Sprintf("assigned ticket %q to %s", t.Title(), assignee.Username()),
		domainActivity.EntityTicket, t.ID())

	response := ToTicketResponse(t)
	return &response, nil
}

type UnassignTicketUseCase struct {
	ticketRepo domainTicket.Repository
	recorder   *activity.Recorder
	logger     logger.Interface
}

func NewUnassignTicketUseCase(
	ticketRepo domainTicket.Repository,
	recorder *activity.Recorder,
	log logger.Interface,
) *UnassignTicketUseCase {
	return &UnassignTicketUseCase{
		ticketRepo: ticketRepo,
		recorder:   recorder,
		logger:     log,
	}
}

func (uc *UnassignTicketUseCase) Execute(ctx context.Context, actorID, id uint) (*dto.TicketResponse, error) {
	t, err := uc.ticketRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	t.Unassign()
	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to unassign ticket: %w", err)
	}

	uc.logger.Infow("ticket unassigned", "id", t.ID())
	uc.recorder.Record(ctx, actorID, "ticket.unassigned",
		fmt.Sprintf("cleared assignee of ticket %q", t.Title()),
		domainActivity.EntityTicket, t.ID())

	response := ToTicketResponse(t)
	return &response, nil
}
