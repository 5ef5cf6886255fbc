package usecases

import (
	"context"
	"fmt"

	"teamtrack/internal/application/user/dto"
	domainUser "teamtrack/internal/domain/user"
	"teamtrack/internal/shared/errors"
	"teamtrack/internal/shared/logger"
)

type GetUserUseCase struct {
	userRepo domainUser.Repository
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo domainUser.Repository, log logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{
		userRepo: userRepo,
		logger:   log,
	}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, id uint) (*dto.UserResponse, error) {
	u, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	response := ToUserResponse(u)
	return &response, nil
}
