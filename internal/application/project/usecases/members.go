package usecases

import (
	"context"
	"fmt"

	"teamtrack/internal/application/activity"
	"teamtrack/internal/application/project/dto"
	domainActivity "teamtrack/internal/domain/activity"
	domainProject "teamtrack/internal/domain/project"
	domainTicket "teamtrack/internal/domain/ticket"
	domainUser "teamtrack/internal/domain/user"
	"teamtrack/internal/shared/authorization"
	"teamtrack/internal/shared/errors"
	"teamtrack/internal/shared/logger"
)

// Membership is implicit: a user belongs to a project through the
// tickets they create or get assigned. Assigning a member validates
// the pairing and records it; removing one clears their ticket
// assignments in that project.
type AssignMemberUseCase struct {
	projectRepo domainProject.Repository
	userRepo    domainUser.Repository
	recorder    *activity.Recorder
	logger      logger.Interface
}

func NewAssignMemberUseCase(
	projectRepo domainProject.Repository,
	userRepo domainUser.Repository,
	recorder *activity.Recorder,
	log logger.Interface,
) *AssignMemberUseCase {
	return &AssignMemberUseCase{
		projectRepo: projectRepo,
		userRepo:    userRepo,
		recorder:    recorder,
		logger:      log,
	}
}

func (uc *AssignMemberUseCase) Execute(ctx context.Context, actorID uint, role authorization.UserRole, projectID uint, request dto.AssignMemberRequest) error {
	p, err := uc.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return fmt.Errorf("failed to get project: %w", err)
	}
	if p == nil {
		return errors.NewNotFoundError("project not found")
	}

	if !role.IsAdmin() && !p.IsManagedBy(actorID) {
		return errors.NewForbiddenError("only the project manager can assign members")
	}

	member, err := uc.userRepo.GetByID(ctx, request.UserID)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if member == nil || !member.IsActive() {
		return errors.NewValidationError("user not found", fmt.Sprintf("user %d", request.UserID))
	}

	uc.logger.Infow("member assigned to project", "project_id", projectID, "user_id", request.UserID)
	uc.recorder.Record(ctx, actorID, "project.member_assigned",
		fmt.Sprintf("assigned %s to project %s", member.Username(), p.Name()),
		domainActivity.EntityProject, projectID)

	return nil
}

type RemoveMemberUseCase struct {
	projectRepo domainProject.Repository
	userRepo    domainUser.Repository
	ticketRepo  domainTicket.Repository
	recorder    *activity.Recorder
	logger      logger.Interface
}

func NewRemoveMemberUseCase(
	projectRepo domainProject.Repository,
	userRepo domainUser.Repository,
	ticketRepo domainTicket.Repository,
	recorder *activity.Recorder,
	log logger.Interface,
) *RemoveMemberUseCase {
	return &RemoveMemberUseCase{
		projectRepo: projectRepo,
		userRepo:    userRepo,
		ticketRepo:  ticketRepo,
		recorder:    recorder,
		logger:      log,
	}
}

func (uc *RemoveMemberUseCase) Execute(ctx context.Context, actorID uint, role authorization.UserRole, projectID, userID uint) error {
	p, err := uc.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return fmt.Errorf("failed to get project: %w", err)
	}
	if p == nil {
		return errors.NewNotFoundError("project not found")
	}

	if !role.IsAdmin() && !p.IsManagedBy(actorID) {
		return errors.NewForbiddenError("only the project manager can remove members")
	}

	member, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if member == nil {
		return errors.NewNotFoundError("user not found")
	}

	if err := uc.ticketRepo.UnassignUserFromProject(ctx, projectID, userID); err != nil {
		return fmt.Errorf("failed to clear ticket assignments: %w", err)
	}

	uc.logger.Infow("member removed from project", "project_id", projectID, "user_id", userID)
	uc.recorder.Record(ctx, actorID, "project.member_removed",
		fmt.Sprintf("removed %s from project %s", member.Username(), p.Name()),
		domainActivity.EntityProject, projectID)

	return nil
}
