package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamtrack/internal/domain/project"
	"teamtrack/internal/domain/ticket"
	"teamtrack/internal/shared/logger"
)

func createTestProject(t *testing.T, name string, managerID uint) *project.Project {
	start := time.Now().UTC()
	p, err := project.NewProject(name, "test project", start, nil, &managerID)
	require.NoError(t, err)
	return p
}

func TestProjectRepository_SaveAndGet(t *testing.T) {
	database := setupTestDB(t)
	repo := NewProjectRepository(database, logger.NewLogger())
	ctx := context.Background()

	p := createTestProject(t, "Website Redesign", 2)
	require.NoError(t, repo.Save(ctx, p))
	assert.NotZero(t, p.ID())

	found, err := repo.GetByID(ctx, p.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Website Redesign", found.Name())
	require.NotNil(t, found.ManagerID())
	assert.Equal(t, uint(2), *found.ManagerID())
}

func TestProjectRepository_DeleteCascadesTickets(t *testing.T) {
	database := setupTestDB(t)
	projectRepo := NewProjectRepository(database, logger.NewLogger())
	ticketRepo := NewTicketRepository(database, logger.NewLogger())
	ctx := context.Background()

	p := createTestProject(t, "Doomed Project", 2)
	require.NoError(t, projectRepo.Save(ctx, p))

	tk := createTestTicket(t, "Ticket in doomed project", p.ID(), 1)
	require.NoError(t, ticketRepo.Save(ctx, tk))

	c, err := ticket.NewComment(tk.ID(), 1, "this will go too")
	require.NoError(t, err)
	require.NoError(t, ticketRepo.SaveComment(ctx, c))

	other := createTestProject(t, "Survivor Project", 2)
	require.NoError(t, projectRepo.Save(ctx, other))
	otherTicket := createTestTicket(t, "Unrelated ticket", other.ID(), 1)
	require.NoError(t, ticketRepo.Save(ctx, otherTicket))

	require.NoError(t, projectRepo.Delete(ctx, p.ID()))

	foundProject, err := projectRepo.GetByID(ctx, p.ID())
	require.NoError(t, err)
	assert.Nil(t, foundProject)

	foundTicket, err := ticketRepo.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Nil(t, foundTicket)

	comments, err := ticketRepo.GetCommentsByTicketID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Empty(t, comments)

	survivor, err := ticketRepo.GetByID(ctx, otherTicket.ID())
	require.NoError(t, err)
	require.NotNil(t, survivor, "tickets of other projects are untouched")
}

func TestProjectRepository_ListVisibility(t *testing.T) {
	database := setupTestDB(t)
	projectRepo := NewProjectRepository(database, logger.NewLogger())
	ticketRepo := NewTicketRepository(database, logger.NewLogger())
	ctx := context.Background()

	managed := createTestProject(t, "Managed by 5", 5)
	require.NoError(t, projectRepo.Save(ctx, managed))

	withTicket := createTestProject(t, "Has ticket from 5", 2)
	require.NoError(t, projectRepo.Save(ctx, withTicket))
	tk := createTestTicket(t, "Created by user 5", withTicket.ID(), 5)
	require.NoError(t, ticketRepo.Save(ctx, tk))

	unrelated := createTestProject(t, "Unrelated", 2)
	require.NoError(t, projectRepo.Save(ctx, unrelated))

	userID := uint(5)
	projects, total, err := projectRepo.List(ctx, project.Filter{
		VisibleToUserID: &userID,
		Page:            1,
		PageSize:        10,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	names := make([]string, 0, len(projects))
	for _, p := range projects {
		names = append(names, p.Name())
	}
	assert.ElementsMatch(t, []string{"Managed by 5", "Has ticket from 5"}, names)
}
