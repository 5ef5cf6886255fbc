package usecases

import (
	"context"
	"fmt"

	"teamtrack/internal/application/activity"
	domainActivity "teamtrack/internal/domain/activity"
	domainTicket "teamtrack/internal/domain/ticket"
	domainUser "teamtrack/internal/domain/user"
	"teamtrack/internal/shared/errors"
	"teamtrack/internal/shared/logger"
)

// DeleteUserUseCase deactivates an account. Deletion is refused while
// the user still holds active ticket assignments or has authored
// comments, so history keeps a valid author.
type DeleteUserUseCase struct {
	userRepo   domainUser.Repository
	ticketRepo domainTicket.Repository
	recorder   *activity.Recorder
	logger     logger.Interface
}

func NewDeleteUserUseCase(
	userRepo domainUser.Repository,
	ticketRepo domainTicket.Repository,
	recorder *activity.Recorder,
	log logger.Interface,
) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo:   userRepo,
		ticketRepo: ticketRepo,
		recorder:   recorder,
		logger:     log,
	}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, actorID, id uint) error {
	if actorID == id {
		return errors.NewValidationError("cannot delete your own account")
	}

	u, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return errors.NewNotFoundError("user not found")
	}

	assigned, err := uc.ticketRepo.CountActiveByAssignee(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count assignments: %w", err)
	}
	if assigned > 0 {
		return errors.NewConflictError(
			"user has active ticket assignments",
			fmt.Sprintf("%d active tickets assigned", assigned))
	}

	comments, err := uc.ticketRepo.CountCommentsByAuthor(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count comments: %w", err)
	}
	if comments > 0 {
		return errors.NewConflictError(
			"user has authored ticket comments",
			fmt.Sprintf("%d comments authored", comments))
	}

	u.Deactivate()
	if err := uc.userRepo.Update(ctx, u); err != nil {
		return fmt.Errorf("failed to deactivate user: %w", err)
	}

	uc.logger.Infow("user deactivated", "id", id)
	uc.recorder.Record(ctx, actorID, "user.deleted",
		fmt.Sprintf("deactivated user %s", u.Username()),
		domainActivity.EntityUser, id)

	return nil
}
