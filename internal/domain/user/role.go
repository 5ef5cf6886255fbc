package user

import "teamtrack/internal/shared/authorization"

// Role mirrors a row of the fixed role table (Admin, Manager,
// Developer, Tester). Roles are seeded at first run and never created
// through the API.
type Role struct {
	ID          uint
	Name        string
	Slug        authorization.UserRole
	Description string
	IsActive    bool
}
