package usecases

import (
	"context"
	"fmt"

	"teamtrack/internal/application/ticket/dto"
	domainTicket "teamtrack/internal/domain/ticket"
	vo "teamtrack/internal/domain/ticket/valueobjects"
	"teamtrack/internal/shared/authorization"
	"teamtrack/internal/shared/errors"
	"teamtrack/internal/shared/logger"
)

type ListTicketsUseCase struct {
	ticketRepo domainTicket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo domainTicket.Repository, log logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     log,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, actorID uint, role authorization.UserRole, request dto.ListTicketsRequest) ([]dto.TicketResponse, int64, error) {
	filter := domainTicket.Filter{
		ProjectID:  request.ProjectID,
		CreatorID:  request.CreatorID,
		AssigneeID: request.AssigneeID,
		ActiveOnly: request.ActiveOnly,
		Page:       request.Page,
		PageSize:   request.PageSize,
		SortBy:     request.SortBy,
		SortOrder:  request.SortOrder,
	}

	if request.Status != "" {
		status, err := vo.NewStatus(request.Status)
		if err != nil {
			return nil, 0, errors.NewValidationError("invalid status filter", err.Error())
		}
		filter.Status = &status
	}
	if request.Priority != "" {
		priority, err := vo.NewPriority(request.Priority)
		if err != nil {
			return nil, 0, errors.NewValidationError("invalid priority filter", err.Error())
		}
		filter.Priority = &priority
	}
	if request.Type != "" {
		ticketType, err := vo.NewTicketType(request.Type)
		if err != nil {
			return nil, 0, errors.NewValidationError("invalid type filter", err.Error())
		}
		filter.Type = &ticketType
	}

	// Scope the listing by role: admins see everything, managers see
	// their projects plus their own tickets, everyone else sees only
	// tickets they created or are assigned to.
	switch {
	case role.IsAdmin():
	case role.IsManager():
		filter.ManagedByUserID = &actorID
	default:
		filter.VisibleToUserID = &actorID
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	responses := make([]dto.TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		responses = append(responses, ToTicketResponse(t))
	}

	return responses, total, nil
}
