package usecases

import (
	"context"
	"fmt"

	"teamtrack/internal/application/activity"
	"teamtrack/internal/application/ticket/dto"
	domainActivity "teamtrack/internal/domain/activity"
	domainProject "teamtrack/internal/domain/project"
	domainTicket "teamtrack/internal/domain/ticket"
	vo "teamtrack/internal/domain/ticket/valueobjects"
	domainUser "teamtrack/internal/domain/user"
	"teamtrack/internal/shared/errors"
	"teamtrack/internal/shared/logger"
)

type CreateTicketUseCase struct {
	ticketRepo  domainTicket.Repository
	projectRepo domainProject.Repository
	userRepo    domainUser.Repository
	recorder    *activity.Recorder
	logger      logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo domainTicket.Repository,
	projectRepo domainProject.Repository,
	userRepo domainUser.Repository,
	recorder *activity.Recorder,
	log logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:  ticketRepo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
		recorder:    recorder,
		logger:      log,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, actorID uint, request dto.CreateTicketRequest) (*dto.TicketResponse, error) {
	p, err := uc.projectRepo.GetByID(ctx, request.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if p == nil || !p.IsActive() {
		return nil, errors.NewValidationError("project not found", fmt.Sprintf("project %d", request.ProjectID))
	}
	if p.Status().IsTerminal() {
		return nil, errors.NewValidationError("cannot add tickets to a finished project")
	}

	priority, err := vo.NewPriority(request.Priority)
	if err != nil {
		return nil, errors.NewValidationError("invalid priority", err.Error())
	}
	ticketType, err := vo.NewTicketType(request.Type)
	if err != nil {
		return nil, errors.NewValidationError("invalid type", err.Error())
	}

	entity, err := domainTicket.NewTicket(
		request.Title,
		request.Description,
		request.ProjectID,
		actorID,
		priority,
		ticketType,
		request.DueDate,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if request.AssigneeID != nil {
		assignee, err := uc.userRepo.GetByID(ctx, *request.AssigneeID)
		if err != nil {
			return nil, fmt.Errorf("failed to look up assignee: %w", err)
		}
		if assignee == nil || !assignee.IsActive() {
			return nil, errors.NewValidationError("assignee not found", fmt.Sprintf("user %d", *request.AssigneeID))
		}
		if err := entity.AssignTo(*request.AssigneeID); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.ticketRepo.Save(ctx, entity); err != nil {
		return nil, fmt.Errorf("failed to save ticket: %w", err)
	}

	uc.logger.Infow("ticket created",
		"id", entity.ID(), "project_id", entity.ProjectID(), "creator_id", actorID)
	uc.recorder.Record(ctx, actorID, "ticket.created",
		fmt.Sprintf("created ticket %q in project %s", entity.Title(), p.Name()),
		domainActivity.EntityTicket, entity.ID())

	response := ToTicketResponse(entity)
	return &response, nil
}
