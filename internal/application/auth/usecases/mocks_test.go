package usecases

import (
	"context"
	"time"

	domainUser "teamtrack/internal/domain/user"
	"teamtrack/internal/shared/authorization"
)

type mockUserRepo struct {
	users     map[string]*domainUser.User
	updateErr error
	updated   []*domainUser.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*domainUser.User)}
}

func (m *mockUserRepo) add(u *domainUser.User) {
	m.users[u.Username()] = u
}

func (m *mockUserRepo) Save(ctx context.Context, u *domainUser.User) error {
	m.users[u.Username()] = u
	return nil
}

func (m *mockUserRepo) Update(ctx context.Context, u *domainUser.User) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updated = append(m.updated, u)
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uint) (*domainUser.User, error) {
	for _, u := range m.users {
		if u.ID() == id {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*domainUser.User, error) {
	return m.users[username], nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domainUser.User, error) {
	for _, u := range m.users {
		if u.Email().String() == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) List(ctx context.Context, filter domainUser.Filter) ([]*domainUser.User, int64, error) {
	return nil, 0, nil
}

func (m *mockUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, ok := m.users[username]
	return ok, nil
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	u, _ := m.GetByEmail(ctx, email)
	return u != nil, nil
}

type mockTokens struct {
	token string
	err   error
}

func (m *mockTokens) Generate(userID uint, username, email string, role authorization.UserRole) (string, time.Time, error) {
	if m.err != nil {
		return "", time.Time{}, m.err
	}
	return m.token, time.Now().Add(time.Hour), nil
}

func (m *mockTokens) GenerateResetToken(userID uint, email string) (string, time.Time, error) {
	if m.err != nil {
		return "", time.Time{}, m.err
	}
	return m.token, time.Now().Add(30 * time.Minute), nil
}

type mockSender struct {
	resetSent   []string
	changedSent []string
}

func (m *mockSender) SendPasswordResetEmail(to, username, token string) error {
	m.resetSent = append(m.resetSent, to)
	return nil
}

func (m *mockSender) SendPasswordChangedEmail(to, username string) error {
	m.changedSent = append(m.changedSent, to)
	return nil
}
