package usecases

import (
	"context"

	domainActivity "teamtrack/internal/domain/activity"
	domainTicket "teamtrack/internal/domain/ticket"
	domainUser "teamtrack/internal/domain/user"
)

type mockUserRepo struct {
	byID   map[uint]*domainUser.User
	nextID uint
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{byID: make(map[uint]*domainUser.User), nextID: 1}
}

func (m *mockUserRepo) Save(ctx context.Context, u *domainUser.User) error {
	if err := u.SetID(m.nextID); err != nil {
		return err
	}
	m.byID[m.nextID] = u
	m.nextID++
	return nil
}

func (m *mockUserRepo) Update(ctx context.Context, u *domainUser.User) error {
	m.byID[u.ID()] = u
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uint) (*domainUser.User, error) {
	return m.byID[id], nil
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*domainUser.User, error) {
	for _, u := range m.byID {
		if u.Username() == username {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domainUser.User, error) {
	for _, u := range m.byID {
		if u.Email().String() == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) List(ctx context.Context, filter domainUser.Filter) ([]*domainUser.User, int64, error) {
	users := make([]*domainUser.User, 0, len(m.byID))
	for _, u := range m.byID {
		if filter.ActiveOnly && !u.IsActive() {
			continue
		}
		users = append(users, u)
	}
	return users, int64(len(users)), nil
}

func (m *mockUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	u, _ := m.GetByUsername(ctx, username)
	return u != nil, nil
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	u, _ := m.GetByEmail(ctx, email)
	return u != nil, nil
}

type mockRoleRepo struct {
	roles map[uint]*domainUser.Role
}

func newMockRoleRepo() *mockRoleRepo {
	return &mockRoleRepo{roles: map[uint]*domainUser.Role{
		1: {ID: 1, Name: "Admin", Slug: "admin", IsActive: true},
		2: {ID: 2, Name: "Manager", Slug: "manager", IsActive: true},
		3: {ID: 3, Name: "Developer", Slug: "developer", IsActive: true},
		4: {ID: 4, Name: "Tester", Slug: "tester", IsActive: true},
	}}
}

func (m *mockRoleRepo) GetByID(ctx context.Context, id uint) (*domainUser.Role, error) {
	return m.roles[id], nil
}

func (m *mockRoleRepo) GetBySlug(ctx context.Context, slug string) (*domainUser.Role, error) {
	for _, r := range m.roles {
		if string(r.Slug) == slug {
			return r, nil
		}
	}
	return nil, nil
}

func (m *mockRoleRepo) List(ctx context.Context) ([]*domainUser.Role, error) {
	roles := make([]*domainUser.Role, 0, len(m.roles))
	for _, r := range m.roles {
		roles = append(roles, r)
	}
	return roles, nil
}

// mockTicketCounts satisfies just the counting methods DeleteUser needs.
type mockTicketCounts struct {
	assigned int64
	comments int64
}

func (m *mockTicketCounts) Save(ctx context.Context, t *domainTicket.Ticket) error   { return nil }
func (m *mockTicketCounts) Update(ctx context.Context, t *domainTicket.Ticket) error { return nil }
func (m *mockTicketCounts) Delete(ctx context.Context, id uint) error                { return nil }
func (m *mockTicketCounts) GetByID(ctx context.Context, id uint) (*domainTicket.Ticket, error) {
	return nil, nil
}
func (m *mockTicketCounts) List(ctx context.Context, filter domainTicket.Filter) ([]*domainTicket.Ticket, int64, error) {
	return nil, 0, nil
}
func (m *mockTicketCounts) CountActiveByAssignee(ctx context.Context, userID uint) (int64, error) {
	return m.assigned, nil
}
func (m *mockTicketCounts) UnassignUserFromProject(ctx context.Context, projectID, userID uint) error {
	return nil
}
func (m *mockTicketCounts) SaveComment(ctx context.Context, c *domainTicket.Comment) error {
	return nil
}
func (m *mockTicketCounts) GetCommentsByTicketID(ctx context.Context, ticketID uint) ([]*domainTicket.Comment, error) {
	return nil, nil
}
func (m *mockTicketCounts) CountCommentsByAuthor(ctx context.Context, userID uint) (int64, error) {
	return m.comments, nil
}

type mockActivityRepo struct {
	saved []*domainActivity.Log
}

func (m *mockActivityRepo) Save(ctx context.Context, l *domainActivity.Log) error {
	_ = l.SetID(uint(len(m.saved) + 1))
	m.saved = append(m.saved, l)
	return nil
}

func (m *mockActivityRepo) List(ctx context.Context, filter domainActivity.Filter) ([]*domainActivity.Log, int64, error) {
	return m.saved, int64(len(m.saved)), nil
}
