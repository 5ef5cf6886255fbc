package usecases

import (
	"context"
	"fmt"
	"time"

	"teamtrack/internal/application/auth/dto"
	domainUser "teamtrack/internal/domain/user"
	"teamtrack/internal/infrastructure/email"
	"teamtrack/internal/shared/logger"
)

// ResetTokenGenerator mints the short-lived, non-bearer tokens embedded
// in password reset links.
type ResetTokenGenerator interface {
	GenerateResetToken(userID uint, email string) (string, time.Time, error)
}

// ResetPasswordUseCase mails a reset link. It succeeds regardless of
// whether the address is known, so the endpoint cannot be used to
// probe for accounts.
type ResetPasswordUseCase struct {
	userRepo domainUser.Repository
	tokens   ResetTokenGenerator
	sender   email.Sender
	logger   logger.Interface
}

func NewResetPasswordUseCase(
	userRepo domainUser.Repository,
	tokens ResetTokenGenerator,
	sender email.Sender,
	log logger.Interface,
) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{
		userRepo: userRepo,
		tokens:   tokens,
		sender:   sender,
		logger:   log,
	}
}

func (uc *ResetPasswordUseCase) Execute(ctx context.Context, request dto.ResetPasswordRequest) error {
	u, err := uc.userRepo.GetByEmail(ctx, request.Email)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if u == nil || !u.IsActive() {
		uc.logger.Infow("password reset requested for unknown or inactive account")
		return nil
	}

	token, _, err := uc.tokens.GenerateResetToken(u.ID(), u.Email().String())
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	if uc.sender == nil {
		uc.logger.Warnw("email sender not configured, skipping reset email", "user_id", u.ID())
		return nil
	}

	if err := uc.sender.SendPasswordResetEmail(u.Email().String(), u.Username(), token); err != nil {
		uc.logger.Errorw("failed to send password reset email", "user_id", u.ID(), "error", err)
		return fmt.Errorf("failed to send reset email: %w", err)
	}

	uc.logger.Infow("password reset email sent", "user_id", u.ID())
	return nil
}
