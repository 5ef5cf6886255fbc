package usecases

import (
	"context"
	"fmt"

	"teamtrack/internal/application/activity"
	"teamtrack/internal/application/ticket/dto"
	domainActivity "teamtrack/internal/domain/activity"
	domainTicket "teamtrack/internal/domain/ticket"
	vo "teamtrack/internal/domain/ticket/valueobjects"
	"teamtrack/internal/shared/authorization"
	"teamtrack/internal/shared/errors"
	"teamtrack/internal/shared/logger"
)

// UpdateStatusUseCase drives the ticket state machine. Only the
// assignee or a manager/admin may move a ticket; hours reported with
// the transition accumulate on the ticket, and an optional comment is
// attached in the same transaction-less flow.
type UpdateStatusUseCase struct {
	ticketRepo domainTicket.Repository
	recorder   *activity.Recorder
	logger     logger.Interface
}

func NewUpdateStatusUseCase(
	ticketRepo domainTicket.Repository,
	recorder *activity.Recorder,
	log logger.Interface,
) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{
		ticketRepo: ticketRepo,
		recorder:   recorder,
		logger:     log,
	}
}

func (uc *UpdateStatusUseCase) Execute(ctx context.Context, actorID uint, role authorization.UserRole, id uint, request dto.UpdateStatusRequest) (*dto.TicketResponse, error) {
	t, err := uc.ticketRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if !t.CanChangeStatusBy(actorID, role) {
		return nil, errors.NewForbiddenError("only the assignee or a manager can change the status")
	}

	status, err := vo.NewStatus(request.Status)
	if err != nil {
		return nil, errors.NewValidationError("invalid status", err.Error())
	}

	previous := t.Status()
	if err := t.ChangeStatus(status, request.TimeSpent); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to update ticket status: %w", err)
	}

	if request.Comment != "" {
		comment, err := domainTicket.NewComment(t.ID(), actorID, request.Comment)
		if err != nil {
			return nil, errors.NewValidationError("invalid comment", err.Error())
		}
		if err := uc.ticketRepo.SaveComment(ctx, comment); err != nil {
			// The transition already happened; losing the note is
			// worth a warning, not a rollback.
			uc.logger.Warnw("failed to save status comment", "ticket_id", t.ID(), "error", err)
		}
	}

	uc.logger.Infow("ticket status changed",
		"id", t.ID(), "from", previous.String(), "to", status.String(),
		"time_spent_total", t.TimeSpent())
	uc.recorder.Record(ctx, actorID, "ticket.status_changed",
		fmt.Sprintf("moved ticket %q from %s to %s", t.Title(), previous, status),
		domainActivity.EntityTicket, t.ID())

	response := ToTicketResponse(t)
	return &response, nil
}
