// Package usecases implements the ticket workflows: CRUD, assignment,
// the status state machine with time tracking, and comments.
package usecases

import (
	"context"
	"fmt"

	"teamtrack/internal/application/ticket/dto"
	domainProject "teamtrack/internal/domain/project"
	domainTicket "teamtrack/internal/domain/ticket"
	"teamtrack/internal/shared/authorization"
	"teamtrack/internal/shared/services/markdown"
)

// ticketVisibleTo resolves the project-manager dimension of the
// visibility rule before delegating to the entity. A missing project
// simply leaves the manager unscoped, matching the list filter.
func ticketVisibleTo(
	ctx context.Context,
	projectRepo domainProject.Repository,
	t *domainTicket.Ticket,
	actorID uint,
	role authorization.UserRole,
) (bool, error) {
	manages := false
	if role.IsManager() {
		p, err := projectRepo.GetByID(ctx, t.ProjectID())
		if err != nil {
			return false, fmt.Errorf("failed to get project: %w", err)
		}
		manages = p != nil && p.IsManagedBy(actorID)
	}
	return t.CanBeViewedBy(actorID, role, manages), nil
}

func ToTicketResponse(t *domainTicket.Ticket) dto.TicketResponse {
	return dto.TicketResponse{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		ProjectID:   t.ProjectID(),
		AssigneeID:  t.AssigneeID(),
		CreatorID:   t.CreatorID(),
		Status:      t.Status().String(),
		Priority:    t.Priority().String(),
		Type:        t.Type().String(),
		DueDate:     t.DueDate(),
		TimeSpent:   t.TimeSpent(),
		IsActive:    t.IsActive(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

// ToCommentResponse renders the markdown body when a renderer is
// provided; rendering failures fall back to the raw content.
func ToCommentResponse(c *domainTicket.Comment, md markdown.Service) dto.CommentResponse {
	response := dto.CommentResponse{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		AuthorID:  c.AuthorID(),
		Content:   c.Content(),
		CreatedAt: c.CreatedAt(),
	}

	if md != nil {
		if html, err := md.ToHTMLSanitized(c.Content()); err == nil {
			response.ContentHTML = html
		}
	}

	return response
}
