package usecases

import (
	"context"
	"fmt"

	"teamtrack/internal/application/user/dto"
	domainUser "teamtrack/internal/domain/user"
	"teamtrack/internal/shared/logger"
)

type ListUsersUseCase struct {
	userRepo domainUser.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo domainUser.Repository, log logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   log,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, request dto.ListUsersRequest) ([]dto.UserResponse, int64, error) {
	users, total, err := uc.userRepo.List(ctx, domainUser.Filter{
		RoleID:     request.RoleID,
		ActiveOnly: request.ActiveOnly,
		Page:       request.Page,
		PageSize:   request.PageSize,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, ToUserResponse(u))
	}

	return responses, total, nil
}
