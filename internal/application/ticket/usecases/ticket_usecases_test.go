package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamtrack/internal/application/activity"
	"teamtrack/internal/application/ticket/dto"
	domainProject "teamtrack/internal/domain/project"
	domainUser "teamtrack/internal/domain/user"
	uservo "teamtrack/internal/domain/user/valueobjects"
	"teamtrack/internal/shared/authorization"
	appErrors "teamtrack/internal/shared/errors"
	"teamtrack/internal/shared/logger"
	"teamtrack/internal/shared/services/markdown"
)

type fixture struct {
	ticketRepo   *mockTicketRepo
	projectRepo  *mockProjectRepo
	userRepo     *mockUserRepo
	activityRepo *mockActivityRepo
	recorder     *activity.Recorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		ticketRepo:   newMockTicketRepo(),
		projectRepo:  newMockProjectRepo(),
		userRepo:     newMockUserRepo(),
		activityRepo: &mockActivityRepo{},
	}
	f.recorder = activity.NewRecorder(f.activityRepo, logger.NewLogger())
	return f
}

func (f *fixture) seedUser(t *testing.T, id uint, username string, role authorization.UserRole) *domainUser.User {
	t.Helper()

	email, err := uservo.NewEmail(username + "@teamtrack.local")
	require.NoError(t, err)
	u, err := domainUser.NewUser(username, email, "Test", "User", 1, role)
	require.NoError(t, err)
	require.NoError(t, u.SetID(id))
	f.userRepo.add(id, u)
	return u
}

func (f *fixture) seedProject(t *testing.T, managerID uint) *domainProject.Project {
	t.Helper()

	p, err := domainProject.NewProject("Backlog", "Sprint backlog", time.Now().UTC(), nil, &managerID)
	require.NoError(t, err)
	require.NoError(t, f.projectRepo.Save(context.Background(), p))
	return p
}

func (f *fixture) createTicket(t *testing.T, actorID uint, request dto.CreateTicketRequest) *dto.TicketResponse {
	t.Helper()

	uc := NewCreateTicketUseCase(f.ticketRepo, f.projectRepo, f.userRepo, f.recorder, logger.NewLogger())
	resp, err := uc.Execute(context.Background(), actorID, request)
	require.NoError(t, err)
	return resp
}

func TestCreateTicketUseCase(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedUser(t, 1, "manager", authorization.RoleManager)
	f.seedUser(t, 2, "dev", authorization.RoleDeveloper)
	p := f.seedProject(t, 1)

	assignee := uint(2)
	resp := f.createTicket(t, 1, dto.CreateTicketRequest{
		Title:       "Login button unresponsive",
		Description: "Nothing happens on click in Firefox",
		ProjectID:   p.ID(),
		AssigneeID:  &assignee,
		Priority:    "high",
		Type:        "bug",
	})

	assert.Equal(t, "new", resp.Status)
	assert.Equal(t, uint(1), resp.CreatorID)
	require.NotNil(t, resp.AssigneeID)
	assert.Equal(t, uint(2), *resp.AssigneeID)
	assert.Zero(t, resp.TimeSpent)
	require.Len(t, f.activityRepo.saved, 1)
	assert.Equal(t, "ticket.created", f.activityRepo.saved[0].Action())

	t.Run("past due date refused", func(t *testing.T) {
		uc := NewCreateTicketUseCase(f.ticketRepo, f.projectRepo, f.userRepo, f.recorder, logger.NewLogger())
		past := time.Now().UTC().Add(-48 * time.Hour)
		_, err := uc.Execute(ctx, 1, dto.CreateTicketRequest{
			Title:       "Late",
			Description: "Due date already passed",
			ProjectID:   p.ID(),
			Priority:    "low",
			Type:        "task",
			DueDate:     &past,
		})
		assert.True(t, appErrors.IsValidationError(err))
	})

	t.Run("finished project refused", func(t *testing.T) {
		done := f.seedProject(t, 1)
		require.NoError(t, done.ChangeStatus("in_progress"))
		require.NoError(t, done.ChangeStatus("completed"))

		uc := NewCreateTicketUseCase(f.ticketRepo, f.projectRepo, f.userRepo, f.recorder, logger.NewLogger())
		_, err := uc.Execute(ctx, 1, dto.CreateTicketRequest{
			Title:       "Too late",
			Description: "Project is already completed",
			ProjectID:   done.ID(),
			Priority:    "low",
			Type:        "task",
		})
		assert.True(t, appErrors.IsValidationError(err))
	})

	t.Run("inactive assignee refused", func(t *testing.T) {
		ghost := f.seedUser(t, 9, "ghost", authorization.RoleTester)
		ghost.Deactivate()

		uc := NewCreateTicketUseCase(f.ticketRepo, f.projectRepo, f.userRepo, f.recorder, logger.NewLogger())
		ghostID := uint(9)
		_, err := uc.Execute(ctx, 1, dto.CreateTicketRequest{
			Title:       "Orphan",
			Description: "Assignee left the company",
			ProjectID:   p.ID(),
			AssigneeID:  &ghostID,
			Priority:    "medium",
			Type:        "task",
		})
		assert.True(t, appErrors.IsValidationError(err))
	})
}

func TestUpdateStatusUseCase_Ownership(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name      string
		actorID   uint
		role      authorization.UserRole
		wantError bool
	}{
		{"assignee may move the ticket", 2, authorization.RoleDeveloper, false},
		{"unrelated developer is refused", 3, authorization.RoleDeveloper, true},
		{"unrelated tester is refused", 3, authorization.RoleTester, true},
		{"manager may move any ticket", 4, authorization.RoleManager, false},
		{"admin may move any ticket", 5, authorization.RoleAdmin, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.seedUser(t, 1, "manager", authorization.RoleManager)
			f.seedUser(t, 2, "dev", authorization.RoleDeveloper)
			p := f.seedProject(t, 1)
			assignee := uint(2)
			created := f.createTicket(t, 1, dto.CreateTicketRequest{
				Title:       "Flaky test",
				Description: "Intermittent failure in CI",
				ProjectID:   p.ID(),
				AssigneeID:  &assignee,
				Priority:    "medium",
				Type:        "bug",
			})

			uc := NewUpdateStatusUseCase(f.ticketRepo, f.recorder, logger.NewLogger())
			resp, err := uc.Execute(ctx, tc.actorID, tc.role, created.ID, dto.UpdateStatusRequest{Status: "in_progress"})

			if tc.wantError {
				assert.True(t, appErrors.IsForbiddenError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "in_progress", resp.Status)
		})
	}
}

func TestUpdateStatusUseCase_TimeSpentAccumulates(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedUser(t, 1, "manager", authorization.RoleManager)
	f.seedUser(t, 2, "dev", authorization.RoleDeveloper)
	p := f.seedProject(t, 1)
	assignee := uint(2)
	created := f.createTicket(t, 1, dto.CreateTicketRequest{
		Title:       "Slow query",
		Description: "Dashboard load exceeds 5s",
		ProjectID:   p.ID(),
		AssigneeID:  &assignee,
		Priority:    "high",
		Type:        "task",
	})

	uc := NewUpdateStatusUseCase(f.ticketRepo, f.recorder, logger.NewLogger())

	first := 2.5
	resp, err := uc.Execute(ctx, 2, authorization.RoleDeveloper, created.ID, dto.UpdateStatusRequest{
		Status:    "in_progress",
		TimeSpent: &first,
	})
	require.NoError(t, err)
	assert.InDelta(t, 2.5, resp.TimeSpent, 0.001)

	second := 1.5
	resp, err = uc.Execute(ctx, 2, authorization.RoleDeveloper, created.ID, dto.UpdateStatusRequest{
		Status:    "resolved",
		TimeSpent: &second,
		Comment:   "Added a covering index",
	})
	require.NoError(t, err)
	assert.Equal(t, "resolved", resp.Status)
	assert.InDelta(t, 4.0, resp.TimeSpent, 0.001)

	comments, err := f.ticketRepo.GetCommentsByTicketID(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "Added a covering index", comments[0].Content())
	assert.Equal(t, uint(2), comments[0].AuthorID())
}

func TestUpdateStatusUseCase_Rejections(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedUser(t, 1, "manager", authorization.RoleManager)
	p := f.seedProject(t, 1)
	created := f.createTicket(t, 1, dto.CreateTicketRequest{
		Title:       "Typo on landing page",
		Description: "Teh instead of The",
		ProjectID:   p.ID(),
		Priority:    "low",
		Type:        "bug",
	})

	uc := NewUpdateStatusUseCase(f.ticketRepo, f.recorder, logger.NewLogger())

	t.Run("illegal transition", func(t *testing.T) {
		_, err := uc.Execute(ctx, 1, authorization.RoleManager, created.ID, dto.UpdateStatusRequest{Status: "resolved"})
		assert.True(t, appErrors.IsValidationError(err))
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := uc.Execute(ctx, 1, authorization.RoleManager, created.ID, dto.UpdateStatusRequest{Status: "done"})
		assert.True(t, appErrors.IsValidationError(err))
	})

	t.Run("negative time spent", func(t *testing.T) {
		negative := -1.0
		_, err := uc.Execute(ctx, 1, authorization.RoleManager, created.ID, dto.UpdateStatusRequest{
			Status:    "in_progress",
			TimeSpent: &negative,
		})
		assert.True(t, appErrors.IsValidationError(err))
	})

	t.Run("missing ticket", func(t *testing.T) {
		_, err := uc.Execute(ctx, 1, authorization.RoleManager, 9999, dto.UpdateStatusRequest{Status: "in_progress"})
		assert.True(t, appErrors.IsNotFoundError(err))
	})
}

func TestAssignAndUnassignTicket(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedUser(t, 1, "manager", authorization.RoleManager)
	f.seedUser(t, 2, "dev", authorization.RoleDeveloper)
	p := f.seedProject(t, 1)
	created := f.createTicket(t, 1, dto.CreateTicketRequest{
		Title:       "Unassigned work",
		Description: "Waiting for an owner",
		ProjectID:   p.ID(),
		Priority:    "medium",
		Type:        "feature",
	})

	assign := NewAssignTicketUseCase(f.ticketRepo, f.userRepo, f.recorder, logger.NewLogger())
	resp, err := assign.Execute(ctx, 1, created.ID, dto.AssignTicketRequest{UserID: 2})
	require.NoError(t, err)
	require.NotNil(t, resp.AssigneeID)
	assert.Equal(t, uint(2), *resp.AssigneeID)

	t.Run("unknown assignee refused", func(t *testing.T) {
		_, err := assign.Execute(ctx, 1, created.ID, dto.AssignTicketRequest{UserID: 404})
		assert.True(t, appErrors.IsValidationError(err))
	})

	unassign := NewUnassignTicketUseCase(f.ticketRepo, f.recorder, logger.NewLogger())
	resp, err = unassign.Execute(ctx, 1, created.ID)
	require.NoError(t, err)
	assert.Nil(t, resp.AssigneeID)
}

func TestGetTicketUseCase_ManagerProjectScope(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedUser(t, 1, "owner", authorization.RoleManager)
	f.seedUser(t, 5, "othermanager", authorization.RoleManager)
	f.seedUser(t, 2, "dev", authorization.RoleDeveloper)
	p := f.seedProject(t, 1)
	assignee := uint(2)
	created := f.createTicket(t, 1, dto.CreateTicketRequest{
		Title:       "Scoped ticket",
		Description: "Visible only inside its project",
		ProjectID:   p.ID(),
		AssigneeID:  &assignee,
		Priority:    "medium",
		Type:        "task",
	})

	uc := NewGetTicketUseCase(f.ticketRepo, f.projectRepo, logger.NewLogger())

	t.Run("managing manager reads", func(t *testing.T) {
		resp, err := uc.Execute(ctx, 1, authorization.RoleManager, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, resp.ID)
	})

	t.Run("manager of another project is refused", func(t *testing.T) {
		_, err := uc.Execute(ctx, 5, authorization.RoleManager, created.ID)
		assert.True(t, appErrors.IsForbiddenError(err))
	})

	t.Run("admin reads everything", func(t *testing.T) {
		f.seedUser(t, 9, "root", authorization.RoleAdmin)
		resp, err := uc.Execute(ctx, 9, authorization.RoleAdmin, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, resp.ID)
	})

	t.Run("foreign manager cannot list comments either", func(t *testing.T) {
		list := NewListCommentsUseCase(f.ticketRepo, f.projectRepo, markdown.NewService(), logger.NewLogger())
		_, err := list.Execute(ctx, 5, authorization.RoleManager, created.ID)
		assert.True(t, appErrors.IsForbiddenError(err))
	})
}

func TestCommentUseCases(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedUser(t, 1, "manager", authorization.RoleManager)
	f.seedUser(t, 2, "dev", authorization.RoleDeveloper)
	p := f.seedProject(t, 1)
	assignee := uint(2)
	created := f.createTicket(t, 1, dto.CreateTicketRequest{
		Title:       "Document the API",
		Description: "Endpoints lack examples",
		ProjectID:   p.ID(),
		AssigneeID:  &assignee,
		Priority:    "low",
		Type:        "task",
	})

	md := markdown.NewService()
	add := NewAddCommentUseCase(f.ticketRepo, f.projectRepo, md, f.recorder, logger.NewLogger())

	resp, err := add.Execute(ctx, 2, authorization.RoleDeveloper, created.ID, dto.AddCommentRequest{
		Content: "Drafted the **authentication** section",
	})
	require.NoError(t, err)
	assert.Equal(t, "Drafted the **authentication** section", resp.Content)
	assert.Contains(t, resp.ContentHTML, "<strong>authentication</strong>")

	t.Run("outsider cannot comment", func(t *testing.T) {
		f.seedUser(t, 7, "outsider", authorization.RoleTester)
		_, err := add.Execute(ctx, 7, authorization.RoleTester, created.ID, dto.AddCommentRequest{Content: "drive-by"})
		assert.True(t, appErrors.IsForbiddenError(err))
	})

	list := NewListCommentsUseCase(f.ticketRepo, f.projectRepo, md, logger.NewLogger())
	comments, err := list.Execute(ctx, 2, authorization.RoleDeveloper, created.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, uint(2), comments[0].AuthorID)

	t.Run("outsider cannot list", func(t *testing.T) {
		_, err := list.Execute(ctx, 7, authorization.RoleTester, created.ID)
		assert.True(t, appErrors.IsForbiddenError(err))
	})
}

func TestDeleteTicketUseCase(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedUser(t, 1, "manager", authorization.RoleManager)
	p := f.seedProject(t, 1)
	created := f.createTicket(t, 1, dto.CreateTicketRequest{
		Title:       "Duplicate report",
		Description: "Same as another ticket",
		ProjectID:   p.ID(),
		Priority:    "low",
		Type:        "bug",
	})

	uc := NewDeleteTicketUseCase(f.ticketRepo, f.recorder, logger.NewLogger())
	require.NoError(t, uc.Execute(ctx, 1, created.ID))

	gone, err := f.ticketRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	assert.True(t, appErrors.IsNotFoundError(uc.Execute(ctx, 1, created.ID)))
}

func TestListTicketsUseCase_VisibilityFilter(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedUser(t, 1, "manager", authorization.RoleManager)
	f.seedUser(t, 2, "dev", authorization.RoleDeveloper)
	p := f.seedProject(t, 1)

	assignee := uint(2)
	f.createTicket(t, 1, dto.CreateTicketRequest{
		Title: "Mine", Description: "Assigned to the developer",
		ProjectID: p.ID(), AssigneeID: &assignee, Priority: "low", Type: "task",
	})
	f.createTicket(t, 1, dto.CreateTicketRequest{
		Title: "Not mine", Description: "Unassigned",
		ProjectID: p.ID(), Priority: "low", Type: "task",
	})

	uc := NewListTicketsUseCase(f.ticketRepo, logger.NewLogger())

	visible, total, err := uc.Execute(ctx, 2, authorization.RoleDeveloper, dto.ListTicketsRequest{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, visible, 1)
	assert.Equal(t, "Mine", visible[0].Title)

	all, total, err := uc.Execute(ctx, 5, authorization.RoleAdmin, dto.ListTicketsRequest{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, all, 2)
}
