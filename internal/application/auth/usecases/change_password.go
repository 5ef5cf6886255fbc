package usecases

import (
	"context"
	"fmt"

	"teamtrack/internal/application/auth/dto"
	domainUser "teamtrack/internal/domain/user"
	"teamtrack/internal/infrastructure/email"
	"teamtrack/internal/shared/errors"
	"teamtrack/internal/shared/logger"
)

type ChangePasswordUseCase struct {
	userRepo domainUser.Repository
	hasher   domainUser.PasswordHasher
	sender   email.Sender
	logger   logger.Interface
}

func NewChangePasswordUseCase(
	userRepo domainUser.Repository,
	hasher domainUser.PasswordHasher,
	sender email.Sender,
	log logger.Interface,
) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		sender:   sender,
		logger:   log,
	}
}

func (uc *ChangePasswordUseCase) Execute(ctx context.Context, userID uint, request dto.ChangePasswordRequest) error {
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if u == nil {
		return errors.NewNotFoundError("user not found")
	}

	if err := u.ChangePassword(request.CurrentPassword, request.NewPassword, uc.hasher); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	uc.logger.Infow("password changed", "user_id", u.ID())

	if uc.sender != nil {
		if err := uc.sender.SendPasswordChangedEmail(u.Email().String(), u.Username()); err != nil {
			uc.logger.Warnw("failed to send password changed email", "user_id", u.ID(), "error", err)
		}
	}

	return nil
}
