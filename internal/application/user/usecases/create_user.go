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

type CreateUserUseCase struct {
	userRepo domainUser.Repository
	roleRepo domainUser.RoleRepository
	hasher   domainUser.PasswordHasher
	recorder *activity.Recorder
	logger   logger.Interface
}

func NewCreateUserUseCase(
	userRepo domainUser.Repository,
	roleRepo domainUser.RoleRepository,
	hasher domainUser.PasswordHasher,
	recorder *activity.Recorder,
	log logger.Interface,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo: userRepo,
		roleRepo: roleRepo,
		hasher:   hasher,
		recorder: recorder,
		logger:   log,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, actorID uint, request dto.CreateUserRequest) (*dto.UserResponse, error) {
	exists, err := uc.userRepo.ExistsByUsername(ctx, request.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing username: %w", err)
	}
	if exists {
		return nil, errors.NewConflictError("username already taken", request.Username)
	}

	exists, err = uc.userRepo.ExistsByEmail(ctx, request.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}
	if exists {
		return nil, errors.NewConflictError("email already registered", request.Email)
	}

	role, err := uc.roleRepo.GetByID(ctx, request.RoleID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up role: %w", err)
	}
	if role == nil || !role.IsActive {
		return nil, errors.NewValidationError("unknown role", fmt.Sprintf("role %d", request.RoleID))
	}

	emailAddr, err := vo.NewEmail(request.Email)
	if err != nil {
		return nil, errors.NewValidationError("invalid email", err.Error())
	}

	entity, err := domainUser.NewUser(
		request.Username,
		emailAddr,
		request.FirstName,
		request.LastName,
		role.ID,
		role.Slug,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := entity.SetPassword(request.Password, uc.hasher); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, entity); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("username or email already taken")
		}
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	uc.logger.Infow("user created", "id", entity.ID(), "username", entity.Username(), "role", role.Slug)
	uc.recorder.Record(ctx, actorID, "user.created",
		fmt.Sprintf("created user %s with role %s", entity.Username(), role.Slug),
		domainActivity.EntityUser, entity.ID())

	response := ToUserResponse(entity)
	return &response, nil
}
