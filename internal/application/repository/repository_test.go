package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/festy23/team_recruitment/internal/application/model"
	"github.com/festy23/team_recruitment/internal/database/dbtest"
)

func newApplication(teamID, competitionID string, createdAt time.Time) *model.Application {
	return &model.Application{
		ID:            uuid.NewString(),
		UserID:        "captain",
		TeamID:        teamID,
		CompetitionID: competitionID,
		Status:        model.StatusPending,
		CreatedAt:     createdAt,
	}
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("success", func(t *testing.T) {
		repo := New(dbtest.New(t))
		app := newApplication("t1", "c1", now)

		require.NoError(t, repo.Create(ctx, app))

		got, err := repo.GetByID(ctx, app.ID)
		require.NoError(t, err)
		assert.Equal(t, model.StatusPending, got.Status)
		assert.Nil(t, got.DecidedAt)
	})

	t.Run("one application per team and competition", func(t *testing.T) {
		repo := New(dbtest.New(t))
		require.NoError(t, repo.Create(ctx, newApplication("t1", "c1", now)))

		err := repo.Create(ctx, newApplication("t1", "c1", now))

		assert.ErrorIs(t, err, model.ErrApplicationExists)
		assert.NoError(t, repo.Create(ctx, newApplication("t1", "c2", now)))
		assert.NoError(t, repo.Create(ctx, newApplication("t2", "c1", now)))
	})
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo := New(dbtest.New(t))

	_, err := repo.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, model.ErrApplicationNotFound)
}

func TestRepository_Decide(t *testing.T) {
	ctx := context.Background()
	repo := New(dbtest.New(t))
	now := time.Now().UTC()
	app := newApplication("t1", "c1", now)
	require.NoError(t, repo.Create(ctx, app))

	ok, err := repo.Decide(ctx, app.ID, model.StatusApproved, "org", now)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Decide(ctx, app.ID, model.StatusRejected, "org", now)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := repo.GetByID(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, got.Status)
	require.NotNil(t, got.DecidedBy)
	assert.Equal(t, "org", *got.DecidedBy)
}

func TestRepository_ListByCompetition(t *testing.T) {
	ctx := context.Background()
	repo := New(dbtest.New(t))
	base := time.Now().UTC()
	first := newApplication("t1", "c1", base)
	second := newApplication("t2", "c1", base.Add(time.Minute))
	other := newApplication("t3", "c2", base)
	for _, a := range []*model.Application{first, second, other} {
		require.NoError(t, repo.Create(ctx, a))
	}
	_, err := repo.Decide(ctx, second.ID, model.StatusRejected, "org", base)
	require.NoError(t, err)

	all, err := repo.ListByCompetition(ctx, "c1", "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)

	pending, err := repo.ListByCompetition(ctx, "c1", model.StatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, first.ID, pending[0].ID)

	none, err := repo.ListByCompetition(ctx, "c9", "")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
