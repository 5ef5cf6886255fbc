// Package authorization defines the fixed role set and role helpers
// shared by the token claims and the permission layer.
package authorization

// UserRole is the role slug embedded in token claims and casbin policies.
type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleManager   UserRole = "manager"
	RoleDeveloper UserRole = "developer"
	RoleTester    UserRole = "tester"
)

var validRoles = map[UserRole]bool{
	RoleAdmin:     true,
	RoleManager:   true,
	RoleDeveloper: true,
	RoleTester:    true,
}

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsValid() bool {
	return validRoles[r]
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) IsManager() bool {
	return r == RoleManager
}

// CanManage reports whether the role may act on entities it does not own.
func (r UserRole) CanManage() bool {
	return r == RoleAdmin || r == RoleManager
}

// ParseUserRole parses a role slug, falling back to developer for
// unknown values so a malformed claim never grants elevated access.
func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleDeveloper
}
