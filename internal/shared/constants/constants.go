// Package constants defines shared constants used across layers.
package constants

// Context keys set by the auth middleware.
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUsername = "username"
	ContextKeyUserRole = "user_role"
)

// Pagination defaults.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Table names.
const (
	TableRoles          = "roles"
	TableUsers          = "users"
	TableProjects       = "projects"
	TableTickets        = "tickets"
	TableTicketComments = "ticket_comments"
	TableActivityLogs   = "activity_logs"
)
