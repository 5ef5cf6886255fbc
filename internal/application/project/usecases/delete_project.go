package usecases

import (
	"context"
	"fmt"

	"teamtrack/internal/application/activity"
	domainActivity "teamtrack/internal/domain/activity"
	domainProject "teamtrack/internal/domain/project"
	"teamtrack/internal/shared/errors"
	"teamtrack/internal/shared/logger"
)

// DeleteProjectUseCase removes a project together with its tickets and
// their comments. The cascade is intentional: tickets have no meaning
// outside their project.
type DeleteProjectUseCase struct {
	projectRepo domainProject.Repository
	recorder    *activity.Recorder
	logger      logger.Interface
}

func NewDeleteProjectUseCase(
	projectRepo domainProject.Repository,
	recorder *activity.Recorder,
	log logger.Interface,
) *DeleteProjectUseCase {
	return &DeleteProjectUseCase{
		projectRepo: projectRepo,
		recorder:    recorder,
		logger:      log,
	}
}

func (uc *DeleteProjectUseCase) Execute(ctx context.Context, actorID, id uint) error {
	p, err := uc.projectRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get project: %w", err)
	}
	if p == nil {
		return errors.NewNotFoundError("project not found")
	}

	if err := uc.projectRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	uc.logger.Infow("project deleted", "id", id, "name", p.Name())
	uc.recorder.Record(ctx, actorID, "project.deleted",
		fmt.Sprintf("deleted project %s and its tickets", p.Name()),
		domainActivity.EntityProject, id)

	return nil
}
