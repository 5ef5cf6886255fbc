package usecases

import (
	"context"
	"fmt"

	"teamtrack/internal/application/activity"
	"teamtrack/internal/application/project/dto"
	domainActivity "teamtrack/internal/domain/activity"
	domainProject "teamtrack/internal/domain/project"
	domainUser "teamtrack/internal/domain/user"
	"teamtrack/internal/shared/authorization"
	"teamtrack/internal/shared/errors"
	"teamtrack/internal/shared/logger"
)

type UpdateProjectUseCase struct {
	projectRepo domainProject.Repository
	userRepo    domainUser.Repository
	recorder    *activity.Recorder
	logger      logger.Interface
}

func NewUpdateProjectUseCase(
	projectRepo domainProject.Repository,
	userRepo domainUser.Repository,
	recorder *activity.Recorder,
	log logger.Interface,
) *UpdateProjectUseCase {
	return &UpdateProjectUseCase{
		projectRepo: projectRepo,
		userRepo:    userRepo,
		recorder:    recorder,
		logger:      log,
	}
}

func (uc *UpdateProjectUseCase) Execute(ctx context.Context, actorID uint, role authorization.UserRole, id uint, request dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	p, err := uc.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if p == nil {
		return nil, errors.NewNotFoundError("project not found")
	}

	// Managers may only edit their own projects.
	if !role.IsAdmin() && !p.IsManagedBy(actorID) {
		return nil, errors.NewForbiddenError("only the project manager can update this project")
	}

	managerID := request.ManagerID
	if managerID == nil {
		managerID = p.ManagerID()
	} else {
		manager, err := uc.userRepo.GetByID(ctx, *managerID)
		if err != nil {
			return nil, fmt.Errorf("failed to look up manager: %w", err)
		}
		if manager == nil || !manager.IsActive() {
			return nil, errors.NewValidationError("manager not found", fmt.Sprintf("user %d", *managerID))
		}
	}

	if err := p.Update(request.Name, request.Description, request.StartDate, request.EndDate, managerID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.projectRepo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	uc.logger.Infow("project updated", "id", p.ID())
	uc.recorder.Record(ctx, actorID, "project.updated",
		fmt.Sprintf("updated project %s", p.Name()),
		domainActivity.EntityProject, p.ID())

	response := ToProjectResponse(p)
	return &response, nil
}
