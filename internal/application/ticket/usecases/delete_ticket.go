package usecases

import (
	"context"
	"fmt"

	"teamtrack/internal/application/activity"
	domainActivity "teamtrack/internal/domain/activity"
	domainTicket "teamtrack/internal/domain/ticket"
	"teamtrack/internal/shared/errors"
	"teamtrack/internal/shared/logger"
)

// DeleteTicketUseCase hard-deletes a ticket and its comments.
type DeleteTicketUseCase struct {
	ticketRepo domainTicket.Repository
	recorder   *activity.Recorder
	logger     logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo domainTicket.Repository,
	recorder *activity.Recorder,
	log logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		recorder:   recorder,
		logger:     log,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, actorID, id uint) error {
	t, err := uc.ticketRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get ticket: %w", err)
	}
	if t == nil {
		return errors.NewNotFoundError("ticket not found")
	}

	if err := uc.ticketRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete ticket: %w", err)
	}

	uc.logger.Infow("ticket deleted", "id", id)
	uc.recorder.Record(ctx, actorID, "ticket.deleted",
		fmt.Sprintf("deleted ticket %q", t.Title()),
		domainActivity.EntityTicket, id)

	return nil
}
