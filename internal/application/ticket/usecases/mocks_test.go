package usecases

import (
	"context"

	domainActivity "teamtrack/internal/domain/activity"
	domainProject "teamtrack/internal/domain/project"
	domainTicket "teamtrack/internal/domain/ticket"
	domainUser "teamtrack/internal/domain/user"
)

type mockTicketRepo struct {
	tickets  map[uint]*domainTicket.Ticket
	comments map[uint][]*domainTicket.Comment
	nextID   uint
}

func newMockTicketRepo() *mockTicketRepo {
	return &mockTicketRepo{
		tickets:  make(map[uint]*domainTicket.Ticket),
		comments: make(map[uint][]*domainTicket.Comment),
		nextID:   1,
	}
}

func (m *mockTicketRepo) Save(ctx context.Context, t *domainTicket.Ticket) error {
	if err := t.SetID(m.nextID); err != nil {
		return err
	}
	m.tickets[m.nextID] = t
	m.nextID++
	return nil
}

func (m *mockTicketRepo) Update(ctx context.Context, t *domainTicket.Ticket) error {
	m.tickets[t.ID()] = t
	return nil
}

func (m *mockTicketRepo) Delete(ctx context.Context, id uint) error {
	delete(m.tickets, id)
	delete(m.comments, id)
	return nil
}

func (m *mockTicketRepo) GetByID(ctx context.Context, id uint) (*domainTicket.Ticket, error) {
	return m.tickets[id], nil
}

func (m *mockTicketRepo) List(ctx context.Context, filter domainTicket.Filter) ([]*domainTicket.Ticket, int64, error) {
	matches := make([]*domainTicket.Ticket, 0)
	for _, t := range m.tickets {
		if filter.ProjectID != nil && t.ProjectID() != *filter.ProjectID {
			continue
		}
		if filter.VisibleToUserID != nil {
			uid := *filter.VisibleToUserID
			if t.CreatorID() != uid && !t.IsAssignedTo(uid) {
				continue
			}
		}
		matches = append(matches, t)
	}
	return matches, int64(len(matches)), nil
}

func (m *mockTicketRepo) CountActiveByAssignee(ctx context.Context, userID uint) (int64, error) {
	var count int64
	for _, t := range m.tickets {
		if t.IsAssignedTo(userID) && t.IsActive() {
			count++
		}
	}
	return count, nil
}

func (m *mockTicketRepo) UnassignUserFromProject(ctx context.Context, projectID, userID uint) error {
	for _, t := range m.tickets {
		if t.ProjectID() == projectID && t.IsAssignedTo(userID) {
			t.Unassign()
		}
	}
	return nil
}

func (m *mockTicketRepo) SaveComment(ctx context.Context, c *domainTicket.Comment) error {
	if err := c.SetID(uint(len(m.comments[c.TicketID()]) + 1)); err != nil {
		return err
	}
	m.comments[c.TicketID()] = append(m.comments[c.TicketID()], c)
	return nil
}

func (m *mockTicketRepo) GetCommentsByTicketID(ctx context.Context, ticketID uint) ([]*domainTicket.Comment, error) {
	return m.comments[ticketID], nil
}

func (m *mockTicketRepo) CountCommentsByAuthor(ctx context.Context, userID uint) (int64, error) {
	var count int64
	for _, list := range m.comments {
		for _, c := range list {
			if c.AuthorID() == userID {
				count++
			}
		}
	}
	return count, nil
}

type mockProjectRepo struct {
	projects map[uint]*domainProject.Project
	nextID   uint
}

func newMockProjectRepo() *mockProjectRepo {
	return &mockProjectRepo{projects: make(map[uint]*domainProject.Project), nextID: 1}
}

func (m *mockProjectRepo) Save(ctx context.Context, p *domainProject.Project) error {
	if err := p.SetID(m.nextID); err != nil {
		return err
	}
	m.projects[m.nextID] = p
	m.nextID++
	return nil
}

func (m *mockProjectRepo) Update(ctx context.Context, p *domainProject.Project) error {
	m.projects[p.ID()] = p
	return nil
}

func (m *mockProjectRepo) Delete(ctx context.Context, id uint) error {
	delete(m.projects, id)
	return nil
}

func (m *mockProjectRepo) GetByID(ctx context.Context, id uint) (*domainProject.Project, error) {
	return m.projects[id], nil
}

func (m *mockProjectRepo) List(ctx context.Context, filter domainProject.Filter) ([]*domainProject.Project, int64, error) {
	projects := make([]*domainProject.Project, 0, len(m.projects))
	for _, p := range m.projects {
		projects = append(projects, p)
	}
	return projects, int64(len(projects)), nil
}

type mockUserRepo struct {
	users map[uint]*domainUser.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uint]*domainUser.User)}
}

func (m *mockUserRepo) add(id uint, u *domainUser.User) {
	m.users[id] = u
}

func (m *mockUserRepo) Save(ctx context.Context, u *domainUser.User) error { return nil }
func (m *mockUserRepo) Update(ctx context.Context, u *domainUser.User) error {
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uint) (*domainUser.User, error) {
	return m.users[id], nil
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*domainUser.User, error) {
	return nil, nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domainUser.User, error) {
	return nil, nil
}

func (m *mockUserRepo) List(ctx context.Context, filter domainUser.Filter) ([]*domainUser.User, int64, error) {
	return nil, 0, nil
}

func (m *mockUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return false, nil
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
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
