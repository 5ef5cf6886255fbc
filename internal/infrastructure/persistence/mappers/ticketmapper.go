package mappers

import (
	"fmt"

	"teamtrack/internal/domain/ticket"
	vo "teamtrack/internal/domain/ticket/valueobjects"
	"teamtrack/internal/infrastructure/persistence/models"
)

type TicketMapper struct{}

func NewTicketMapper() *TicketMapper {
	return &TicketMapper{}
}

func (m *TicketMapper) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
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

// ToDomain converts the ticket fields only. Comments are loaded
// separately by the repository.
func (m *TicketMapper) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid stored status (ticket id=%d): %w", model.ID, err)
	}
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("invalid stored priority (ticket id=%d): %w", model.ID, err)
	}
	ticketType, err := vo.NewTicketType(model.Type)
	if err != nil {
		return nil, fmt.Errorf("invalid stored type (ticket id=%d): %w", model.ID, err)
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Title,
		model.Description,
		model.ProjectID,
		model.AssigneeID,
		model.CreatorID,
		status,
		priority,
		ticketType,
		model.DueDate,
		model.TimeSpent,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *TicketMapper) ToDomainList(modelList []*models.TicketModel) ([]*ticket.Ticket, error) {
	tickets := make([]*ticket.Ticket, 0, len(modelList))
	for _, model := range modelList {
		t, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}

func (m *TicketMapper) CommentToModel(c *ticket.Comment) *models.TicketCommentModel {
	return &models.TicketCommentModel{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		AuthorID:  c.AuthorID(),
		Content:   c.Content(),
		CreatedAt: c.CreatedAt(),
	}
}

func (m *TicketMapper) CommentToDomain(model *models.TicketCommentModel) (*ticket.Comment, error) {
	return ticket.ReconstructComment(
		model.ID,
		model.TicketID,
		model.AuthorID,
		model.Content,
		model.CreatedAt,
	)
}
