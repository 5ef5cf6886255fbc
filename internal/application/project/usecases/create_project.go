// Package usecases implements project management flows. Callers pass
// the acting user's id and role so visibility and ownership rules are
// enforced close to the data.
package usecases

import (
	"context"
	"fmt"

	"teamtrack/internal/application/activity"
	"teamtrack/internal/application/project/dto"
	domainActivity "teamtrack/internal/domain/activity"
	domainProject "teamtrack/internal/domain/project"
	domainUser "teamtrack/internal/domain/user"
	"teamtrack/internal/shared/errors"
	"teamtrack/internal/shared/logger"
)

type CreateProjectUseCase struct {
	projectRepo domainProject.Repository
	userRepo    domainUser.Repository
	recorder    *activity.Recorder
	logger      logger.Interface
}

func NewCreateProjectUseCase(
	projectRepo domainProject.Repository,
	userRepo domainUser.Repository,
	recorder *activity.Recorder,
	log logger.Interface,
) *CreateProjectUseCase {
	return &CreateProjectUseCase{
		projectRepo: projectRepo,
		userRepo:    userRepo,
		recorder:    recorder,
		logger:      log,
	}
}

func (uc *CreateProjectUseCase) Execute(ctx context.Context, actorID uint, request dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	managerID := request.ManagerID
	if managerID == nil {
		// The creator runs the project unless another manager is named.
		managerID = &actorID
	}

	manager, err := uc.userRepo.GetByID(ctx, *managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up manager: %w", err)
	}
	if manager == nil || !manager.IsActive() {
		return nil, errors.NewValidationError("manager not found", fmt.Sprintf("user %d", *managerID))
	}

	entity, err := domainProject.NewProject(
		request.Name,
		request.Description,
		request.StartDate,
		request.EndDate,
		managerID,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.projectRepo.Save(ctx, entity); err != nil {
		return nil, fmt.Errorf("failed to save project: %w", err)
	}

	uc.logger.Infow("project created", "id", entity.ID(), "name", entity.Name())
	uc.recorder.Record(ctx, actorID, "project.created",
		fmt.Sprintf("created project %s", entity.Name()),
		domainActivity.EntityProject, entity.ID())

	response := ToProjectResponse(entity)
	return &response, nil
}
