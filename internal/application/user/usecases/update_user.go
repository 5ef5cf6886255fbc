package usecases

import (
	"context"
	"fmt"

	"teamtrack/internal/application/activity"
	"teamtrack/internal/application/user/dto"
	domainActivity "teamtrack/internal/domain/activity"
	domainUser "teamtrack/internal/domain/user"
	vo "teamtrack/internal/domain/user/valueobjects"
	"teamtrack/internal/shared/errors"
	"teamtrack/internal/shared/logger"
)

type UpdateUserUseCase struct {
	userRepo domainUser.Repository
	recorder *activity.Recorder
	logger   logger.Interface
}

func NewUpdateUserUseCase(
	userRepo domainUser.Repository,
	recorder *activity.Recorder,
	log logger.Interface,
) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo: userRepo,
		recorder: recorder,
		logger:   log,
	}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, actorID, id uint, request dto.UpdateUserRequest) (*dto.UserResponse, error) {
	u, err := uc.userRepo.GetByID(ctx, id)
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

	if request.IsActive != nil {
		if *request.IsActive {
			u.Activate()
		} else {
			u.Deactivate()
		}
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	uc.logger.Infow("user updated", "id", u.ID())
	uc.recorder.Record(ctx, actorID, "user.updated",
		fmt.Sprintf("updated user %s", u.Username()),
		domainActivity.EntityUser, u.ID())

	response := ToUserResponse(u)
	return &response, nil
}
