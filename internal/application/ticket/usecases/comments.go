package usecases

import (
	"context"
	"fmt"

	"teamtrack/internal/application/activity"
	"teamtrack/internal/application/ticket/dto"
	domainActivity "teamtrack/internal/domain/activity"
	domainProject "teamtrack/internal/domain/project"
	domainTicket "teamtrack/internal/domain/ticket"
	"teamtrack/internal/shared/authorization"
	"teamtrack/internal/shared/errors"
	"teamtrack/internal/shared/logger"
	"teamtrack/internal/shared/services/markdown"
)

type AddCommentUseCase struct {
	ticketRepo  domainTicket.Repository
	projectRepo domainProject.Repository
	markdown    markdown.Service
	recorder    *activity.Recorder
	logger      logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo domainTicket.Repository,
	projectRepo domainProject.Repository,
	md markdown.Service,
	recorder *activity.Recorder,
	log logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:  ticketRepo,
		projectRepo: projectRepo,
		markdown:    md,
		recorder:    recorder,
		logger:      log,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, actorID uint, role authorization.UserRole, ticketID uint, request dto.AddCommentRequest) (*dto.CommentResponse, error) {
	t, err := uc.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	visible, err := ticketVisibleTo(ctx, uc.projectRepo, t, actorID, role)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, errors.NewForbiddenError("no access to this ticket")
	}

	comment, err := domainTicket.NewComment(ticketID, actorID, request.Content)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.SaveComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to save comment: %w", err)
	}

	uc.logger.Infow("comment added", "ticket_id", ticketID, "comment_id", comment.ID())
	uc.recorder.Record(ctx, actorID, "comment.added",
		fmt.Sprintf("commented on ticket %q", t.Title()),
		domainActivity.EntityComment, comment.ID())

	response := ToCommentResponse(comment, uc.markdown)
	return &response, nil
}

type ListCommentsUseCase struct {
	ticketRepo  domainTicket.Repository
	projectRepo domainProject.Repository
	markdown    markdown.Service
	logger      logger.Interface
}

func NewListCommentsUseCase(
	ticketRepo domainTicket.Repository,
	projectRepo domainProject.Repository,
	md markdown.Service,
	log logger.Interface,
) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		ticketRepo:  ticketRepo,
		projectRepo: projectRepo,
		markdown:    md,
		logger:      log,
	}
}

func (uc *ListCommentsUseCase) Execute(ctx context.Context, actorID uint, role authorization.UserRole, ticketID uint) ([]dto.CommentResponse, error) {
	t, err := uc.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	visible, err := ticketVisibleTo(ctx, uc.projectRepo, t, actorID, role)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, errors.NewForbiddenError("no access to this ticket")
	}

	comments, err := uc.ticketRepo.GetCommentsByTicketID(ctx, ticketID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	responses := make([]dto.CommentResponse, 0, len(comments))
	for _, c := range comments {
		responses = append(responses, ToCommentResponse(c, uc.markdown))
	}

	return responses, nil
}
