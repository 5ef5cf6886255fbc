package ticket

import (
	"context"

	vo "teamtrack/internal/domain/ticket/valueobjects"
)

// Filter narrows ticket listings. Visibility restrictions are expressed
// through CreatorID/AssigneeID/ManagerID rather than post-filtering.
type Filter struct {
	ProjectID  *uint
	Status     *vo.Status
	Priority   *vo.Priority
	Type       *vo.TicketType
	CreatorID  *uint
	AssigneeID *uint
	// VisibleToUserID restricts results to tickets the user created or
	// is assigned to (OR semantics, unlike the exact-match fields above).
	VisibleToUserID *uint
	// ManagedByUserID restricts results to tickets in projects the user
	// manages, OR created by / assigned to the user.
	ManagedByUserID *uint
	ActiveOnly      bool
	Page            int
	PageSize        int
	SortBy          string
	SortOrder       string
}

type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Ticket, error)
	List(ctx context.Context, filter Filter) ([]*Ticket, int64, error)
	CountActiveByAssignee(ctx context.Context, userID uint) (int64, error)
	UnassignUserFromProject(ctx context.Context, projectID, userID uint) error

	SaveComment(ctx context.Context, c *Comment) error
	GetCommentsByTicketID(ctx context.Context, ticketID uint) ([]*Comment, error)
	CountCommentsByAuthor(ctx context.Context, userID uint) (int64, error)
}
