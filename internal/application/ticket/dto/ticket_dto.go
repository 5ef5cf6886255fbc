package dto

import "time"

type CreateTicketRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	ProjectID   uint       `json:"project_id" binding:"required"`
	AssigneeID  *uint      `json:"assignee_id"`
	Priority    string     `json:"priority" binding:"required"`
	Type        string     `json:"type" binding:"required"`
	DueDate     *time.Time `json:"due_date"`
}

type UpdateTicketRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Priority    string     `json:"priority" binding:"required"`
	Type        string     `json:"type" binding:"required"`
	DueDate     *time.Time `json:"due_date"`
}

// UpdateStatusRequest optionally carries the hours spent since the
// last status change and a progress comment.
type UpdateStatusRequest struct {
	Status    string   `json:"status" binding:"required"`
	TimeSpent *float64 `json:"time_spent"`
	Comment   string   `json:"comment"`
}

type AssignTicketRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}

type AddCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type ListTicketsRequest struct {
	ProjectID  *uint
	Status     string
	Priority   string
	Type       string
	AssigneeID *uint
	CreatorID  *uint
	ActiveOnly bool
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}

type TicketResponse struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ProjectID   uint       `json:"project_id"`
	AssigneeID  *uint      `json:"assignee_id,omitempty"`
	CreatorID   uint       `json:"creator_id"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	Type        string     `json:"type"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	TimeSpent   float64    `json:"time_spent"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type CommentResponse struct {
	ID          uint      `json:"id"`
	TicketID    uint      `json:"ticket_id"`
	AuthorID    uint      `json:"author_id"`
	Content     string    `json:"content"`
	ContentHTML string    `json:"content_html,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
