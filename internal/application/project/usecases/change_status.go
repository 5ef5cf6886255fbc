package usecases

import (
	"context"
	"fmt"

	"teamtrack/internal/application/activity"
	"teamtrack/internal/application/project/dto"
	domainActivity "teamtrack/internal/domain/activity"
	domainProject "teamtrack/internal/domain/project"
	vo "teamtrack/internal/domain/project/valueobjects"
	"teamtrack/internal/shared/errors"
	"teamtrack/internal/shared/logger"
)

type ChangeProjectStatusUseCase struct {
	projectRepo domainProject.Repository
	recorder    *activity.Recorder
	logger      logger.Interface
}

func NewChangeProjectStatusUseCase(
	projectRepo domainProject.Repository,
	recorder *activity.Recorder,
	log logger.Interface,
) *ChangeProjectStatusUseCase {
	return &ChangeProjectStatusUseCase{
		projectRepo: projectRepo,
		recorder:    recorder,
		logger:      log,
	}
}

func (uc *ChangeProjectStatusUseCase) Execute(ctx context.Context, actorID, id uint, request dto.ChangeProjectStatusRequest) (*dto.ProjectResponse, error) {
	p, err := uc.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if p == nil {
		return nil, errors.NewNotFoundError("project not found")
	}

	status, err := vo.NewStatus(request.Status)
	if err != nil {
		return nil, errors.NewValidationError("invalid status", err.Error())
	}

	previous := p.Status()
	if err := p.ChangeStatus(status); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.projectRepo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update project status: %w", err)
	}

	uc.logger.Infow("project status changed",
		"id", p.ID(), "from", previous.String(), "to", status.String())
	uc.recorder.Record(ctx, actorID, "project.status_changed",
		fmt.Sprintf("moved project %s from %s to %s", p.Name(), previous, status),
		domainActivity.EntityProject, p.ID())

	response := ToProjectResponse(p)
	return &response, nil
}
