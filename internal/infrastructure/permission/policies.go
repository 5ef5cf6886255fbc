package permission

// Resource and action names used in the policy table and by the
// permission middleware. They mirror the HTTP surface: one resource
// per aggregate plus the activity feed.
const (
	ResourceUser     = "user"
	ResourceProject  = "project"
	ResourceTicket   = "ticket"
	ResourceActivity = "activity"

	ActionCreate = "create"
	ActionRead   = "read"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionStatus = "status"
	ActionAssign = "assign"
)

// InitPolicies seeds the static role policies. AddPolicy is a no-op
// for rows that already exist, so seeding is idempotent across
// restarts.
func (e *Enforcer) InitPolicies() error {
	policies := [][]string{
		// User management is admin only. Profile routes bypass the
		// resource check entirely, every authenticated user owns them.
		{"admin", ResourceUser, ActionCreate},
		{"admin", ResourceUser, ActionRead},
		{"admin", ResourceUser, ActionUpdate},
		{"admin", ResourceUser, ActionDelete},

		// Projects: managers run them, everyone can read what the
		// visibility filter lets through. Status changes and deletes
		// stay with admins.
		{"admin", ResourceProject, ActionCreate},
		{"admin", ResourceProject, ActionRead},
		{"admin", ResourceProject, ActionUpdate},
		{"admin", ResourceProject, ActionDelete},
		{"admin", ResourceProject, ActionStatus},
		{"admin", ResourceProject, ActionAssign},
		{"manager", ResourceProject, ActionCreate},
		{"manager", ResourceProject, ActionRead},
		{"manager", ResourceProject, ActionUpdate},
		{"manager", ResourceProject, ActionAssign},
		{"developer", ResourceProject, ActionRead},
		{"tester", ResourceProject, ActionRead},

		// Tickets: any role can open and read one, ownership of the
		// status transition is checked in the usecase. Deletion is a
		// management concern.
		{"admin", ResourceTicket, ActionCreate},
		{"admin", ResourceTicket, ActionRead},
		{"admin", ResourceTicket, ActionUpdate},
		{"admin", ResourceTicket, ActionDelete},
		{"admin", ResourceTicket, ActionStatus},
		{"admin", ResourceTicket, ActionAssign},
		{"manager", ResourceTicket, ActionCreate},
		{"manager", ResourceTicket, ActionRead},
		{"manager", ResourceTicket, ActionUpdate},
		{"manager", ResourceTicket, ActionDelete},
		{"manager", ResourceTicket, ActionStatus},
		{"manager", ResourceTicket, ActionAssign},
		{"developer", ResourceTicket, ActionCreate},
		{"developer", ResourceTicket, ActionRead},
		{"developer", ResourceTicket, ActionUpdate},
		{"developer", ResourceTicket, ActionStatus},
		{"tester", ResourceTicket, ActionCreate},
		{"tester", ResourceTicket, ActionRead},
		{"tester", ResourceTicket, ActionUpdate},
		{"tester", ResourceTicket, ActionStatus},

		// Activity feed is an admin audit surface.
		{"admin", ResourceActivity, ActionRead},
	}

	if err := e.addPolicies(policies); err != nil {
		return err
	}

	e.logger.Infow("permission policies initialized", "count", len(policies))
	return nil
}
