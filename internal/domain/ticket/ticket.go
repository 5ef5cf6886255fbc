package ticket

import (
	"fmt"
	"time"

	vo "teamtrack/internal/domain/ticket/valueobjects"
	"teamtrack/internal/shared/authorization"
	"teamtrack/internal/shared/biztime"
)

const (
	maxTitleLength       = 100
	maxDescriptionLength = 1000
)

// Ticket is the ticket aggregate root. Persistence concerns live in the
// infrastructure layer; all state changes go through methods so the
// status transition and due date rules cannot be bypassed.
type Ticket struct {
	id          uint
	title       string
	description string
	projectID   uint
	assigneeID  *uint
	creatorID   uint
	status      vo.Status
	priority    vo.Priority
	ticketType  vo.TicketType
	dueDate     *time.Time
	timeSpent   float64
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
	comments    []*Comment
}

func NewTicket(
	title string,
	description string,
	projectID uint,
	creatorID uint,
	priority vo.Priority,
	ticketType vo.TicketType,
	dueDate *time.Time,
) (*Ticket, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if err := validateDescription(description); err != nil {
		return nil, err
	}
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}
	if !ticketType.IsValid() {
		return nil, fmt.Errorf("invalid ticket type: %s", ticketType)
	}
	if err := validateDueDate(dueDate); err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	return &Ticket{
		title:       title,
		description: description,
		projectID:   projectID,
		creatorID:   creatorID,
		status:      vo.StatusNew,
		priority:    priority,
		ticketType:  ticketType,
		dueDate:     dueDate,
		isActive:    true,
		createdAt:   now,
		updatedAt:   now,
		comments:    []*Comment{},
	}, nil
}

// ReconstructTicket rebuilds a ticket from persistence without running
// creation-time validation (stored due dates may be in the past).
func ReconstructTicket(
	id uint,
	title string,
	description string,
	projectID uint,
	assigneeID *uint,
	creatorID uint,
	status vo.Status,
	priority vo.Priority,
	ticketType vo.TicketType,
	dueDate *time.Time,
	timeSpent float64,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}
	if !ticketType.IsValid() {
		return nil, fmt.Errorf("invalid ticket type: %s", ticketType)
	}

	return &Ticket{
		id:          id,
		title:       title,
		description: description,
		projectID:   projectID,
		assigneeID:  assigneeID,
		creatorID:   creatorID,
		status:      status,
		priority:    priority,
		ticketType:  ticketType,
		dueDate:     dueDate,
		timeSpent:   timeSpent,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		comments:    []*Comment{},
	}, nil
}

func (t *Ticket) ID() uint                { return t.id }
func (t *Ticket) Title() string           { return t.title }
func (t *Ticket) Description() string     { return t.description }
func (t *Ticket) ProjectID() uint         { return t.projectID }
func (t *Ticket) AssigneeID() *uint       { return t.assigneeID }
func (t *Ticket) CreatorID() uint         { return t.creatorID }
func (t *Ticket) Status() vo.Status       { return t.status }
func (t *Ticket) Priority() vo.Priority   { return t.priority }
func (t *Ticket) Type() vo.TicketType     { return t.ticketType }
func (t *Ticket) DueDate() *time.Time     { return t.dueDate }
func (t *Ticket) TimeSpent() float64      { return t.timeSpent }
func (t *Ticket) IsActive() bool          { return t.isActive }
func (t *Ticket) CreatedAt() time.Time    { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time    { return t.updatedAt }

func (t *Ticket) Comments() []*Comment {
	commentsCopy := make([]*Comment, len(t.comments))
	copy(commentsCopy, t.comments)
	return commentsCopy
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// Update overwrites the mutable fields in one shot. Partial patches are
// not supported; callers send the full record.
func (t *Ticket) Update(
	title string,
	description string,
	priority vo.Priority,
	ticketType vo.TicketType,
	dueDate *time.Time,
) error {
	if err := validateTitle(title); err != nil {
		return err
	}
	if err := validateDescription(description); err != nil {
		return err
	}
	if !priority.IsValid() {
		return fmt.Errorf("invalid priority: %s", priority)
	}
	if !ticketType.IsValid() {
		return fmt.Errorf("invalid ticket type: %s", ticketType)
	}
	if err := validateDueDate(dueDate); err != nil {
		return err
	}

	t.title = title
	t.description = description
	t.priority = priority
	t.ticketType = ticketType
	t.dueDate = dueDate
	t.updatedAt = biztime.NowUTC()
	return nil
}

// ChangeStatus moves the ticket through the status machine. A time
// spent value, when given, accumulates onto the running total rather
// than replacing it.
func (t *Ticket) ChangeStatus(newStatus vo.Status, timeSpent *float64) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}
	if t.status != newStatus && !t.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", t.status, newStatus)
	}
	if timeSpent != nil {
		if *timeSpent < 0 {
			return fmt.Errorf("time spent cannot be negative")
		}
		t.timeSpent += *timeSpent
	}

	t.status = newStatus
	t.updatedAt = biztime.NowUTC()
	return nil
}

// AssignTo sets the assignee. No history of the prior assignee is kept.
func (t *Ticket) AssignTo(userID uint) error {
	if userID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}
	t.assigneeID = &userID
	t.updatedAt = biztime.NowUTC()
	return nil
}

func (t *Ticket) Unassign() {
	t.assigneeID = nil
	t.updatedAt = biztime.NowUTC()
}

func (t *Ticket) AddComment(comment *Comment) error {
	if comment == nil {
		return fmt.Errorf("comment cannot be nil")
	}
	if comment.TicketID() != t.id {
		return fmt.Errorf("comment ticket ID mismatch")
	}
	t.comments = append(t.comments, comment)
	return nil
}

// IsAssignedTo reports whether userID is the current assignee.
func (t *Ticket) IsAssignedTo(userID uint) bool {
	return t.assigneeID != nil && *t.assigneeID == userID
}

// CanBeViewedBy implements the visibility rule: admins see every
// ticket; managers see tickets in projects they manage plus tickets
// they created or are assigned; everyone else sees only tickets they
// created or are assigned. The caller resolves managesProject against
// the ticket's project.
func (t *Ticket) CanBeViewedBy(userID uint, role authorization.UserRole, managesProject bool) bool {
	if role.IsAdmin() {
		return true
	}
	if role.IsManager() && managesProject {
		return true
	}
	return t.creatorID == userID || t.IsAssignedTo(userID)
}

// CanChangeStatusBy implements the ownership rule for status updates:
// the assignee, or any admin/manager.
func (t *Ticket) CanChangeStatusBy(userID uint, role authorization.UserRole) bool {
	if role.CanManage() {
		return true
	}
	return t.IsAssignedTo(userID)
}

func validateTitle(title string) error {
	if len(title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLength {
		return fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	return nil
}

func validateDescription(description string) error {
	if len(description) == 0 {
		return fmt.Errorf("description is required")
	}
	if len(description) > maxDescriptionLength {
		return fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}
	return nil
}

func validateDueDate(dueDate *time.Time) error {
	if dueDate != nil && dueDate.Before(biztime.NowUTC()) {
		return fmt.Errorf("due date cannot be in the past")
	}
	return nil
}
