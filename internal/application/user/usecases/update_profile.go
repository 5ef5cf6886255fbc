package usecases

import (
	"context"
	"fmt"

	"teamtrack/internal/application/user/dto"
	domainUser "teamtrack/internal/domain/user"
	vo "teamtrack/internal/domain/user/valueobjects"
	"teamtrack/internal/shared/errors"
	"teamtrack/internal/shared/logger"
)

// UpdateProfileUseCase is the self-service variant of user update: it
// can only touch the caller's own name and email.
type UpdateProfileUseCase struct {
	userRepo domainUser.Repository
	logger   logger.Interface
}

func NewUpdateProfileUseCase(userRepo domainUser.Repository, log logger.Interface) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo: userRepo,
		logger:   log,
	}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, userID uint, request dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	if request.Email != u.Email().String() {
		taken, err := uc.userRepo.ExistsByEmail(ctx, request.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
		if taken {
			return nil, errors.NewConflictError("email already registered", request.Email)
		}
	}

	emailAddr, err := vo.NewEmail(request.Email)
	if err != nil {
		return nil, errors.NewValidationError("invalid email", err.Error())
	}

	if err := u.UpdateProfile(emailAddr, request.FirstName, request.LastName); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	uc.logger.Infow("profile updated", "user_id", u.ID())

	response := ToUserResponse(u)
	return &response, nil
}
