package usecases

import (
	"context"
	"fmt"

	"teamtrack/internal/application/activity"
	"teamtrack/internal/application/user/dto"
	domainActivity "teamtrack/internal/domain/activity"
	domainUser "teamtrack/internal/domain/user"
	"teamtrack/internal/shared/errors"
	"teamtrack/internal/shared/logger"
)

type ChangeRoleUseCase struct {
	userRepo domainUser.Repository
	roleRepo domainUser.RoleRepository
	recorder *activity.Recorder
	logger   logger.Interface
}

func NewChangeRoleUseCase(
	userRepo domainUser.Repository,
	roleRepo domainUser.RoleRepository,
	recorder *activity.Recorder,
	log logger.Interface,
) *ChangeRoleUseCase {
	return &ChangeRoleUseCase{
		userRepo: userRepo,
		roleRepo: roleRepo,
		recorder: recorder,
		logger:   log,
	}
}

func (uc *ChangeRoleUseCase) Execute(ctx context.Context, actorID, id uint, request dto.ChangeRoleRequest) (*dto.UserResponse, error) {
	if actorID == id {
		return nil, errors.NewValidationError("cannot change your own role")
	}

	u, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	role, err := uc.roleRepo.GetByID(ctx, request.RoleID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up role: %w", err)
	}
	if role == nil || !role.IsActive {
		return nil, errors.NewValidationError("unknown role", fmt.Sprintf("role %d", request.RoleID))
	}

	if err := u.ChangeRole(role.ID, role.Slug); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to update user role: %w", err)
	}

	uc.logger.Infow("user role changed", "id", u.ID(), "role", role.Slug)
	uc.recorder.Record(ctx, actorID, "user.role_changed",
		fmt.Sprintf("changed role of %s to %s", u.Username(), role.Slug),
		domainActivity.EntityUser, u.ID())

	response := ToUserResponse(u)
	return &response, nil
}
