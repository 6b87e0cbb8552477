package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/team_recruitment/internal/competition"
	"github.com/festy23/team_recruitment/internal/database/dbtest"
	"github.com/festy23/team_recruitment/internal/events"
	"github.com/festy23/team_recruitment/internal/identity"
	membershipModel "github.com/festy23/team_recruitment/internal/membership/model"
	membershipRepository "github.com/festy23/team_recruitment/internal/membership/repository"
	membershipService "github.com/festy23/team_recruitment/internal/membership/service"
	"github.com/festy23/team_recruitment/internal/team/model"
	"github.com/festy23/team_recruitment/internal/team/repository"
)

type fixture struct {
	db            *gorm.DB
	svc           Service
	members       membershipService.Service
	published     *events.MemoryPublisher
	competitionID string
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db := dbtest.New(t)
	logger := zap.NewNop().Sugar()
	members := membershipService.New(membershipRepository.New(db), logger)
	published := events.NewMemoryPublisher()
	svc := New(
		repository.New(db),
		db,
		members,
		competition.NewRegistry(db),
		events.NewEmitter(published, nil, logger),
		logger,
	)
	return &fixture{
		db:            db,
		svc:           svc,
		members:       members,
		published:     published,
		competitionID: dbtest.SeedCompetition(t, db, "hackathon"),
	}
}

func ptr[T any](v T) *T {
	return &v
}

var captain = identity.Actor{UserID: "captain", Role: identity.RoleMember}

func TestService_CreateTeam(t *testing.T) {
	ctx := context.Background()

	t.Run("creates team with captain membership", func(t *testing.T) {
		f := setup(t)

		resp, err := f.svc.CreateTeam(ctx, captain, &model.CreateTeamRequest{
			Name:              "  Rockets ",
			Description:       "we build things",
			CompetitionID:     f.competitionID,
			LookingForMembers: true,
			AvailableSlots:    3,
			RequiredRoles:     "frontend",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.Team.ID)
		assert.Equal(t, "Rockets", resp.Team.Name)
		assert.True(t, resp.Team.LookingForMembers)
		assert.Equal(t, 3, resp.Team.AvailableSlots)
		require.Len(t, resp.Members, 1)
		assert.Equal(t, "captain", resp.Members[0].UserID)
		assert.True(t, resp.Members[0].IsCaptain)

		isCaptain, err := f.members.IsCaptain(ctx, resp.Team.ID, "captain")
		require.NoError(t, err)
		assert.True(t, isCaptain)

		created := f.published.OfType(events.TypeTeamCreated)
		require.Len(t, created, 1)
		assert.Equal(t, resp.Team.ID, created[0].TeamID)
	})

	t.Run("looking for members forced off without slots", func(t *testing.T) {
		f := setup(t)

		resp, err := f.svc.CreateTeam(ctx, captain, &model.CreateTeamRequest{
			Name:              "Solo",
			CompetitionID:     f.competitionID,
			LookingForMembers: true,
			AvailableSlots:    0,
		})

		require.NoError(t, err)
		assert.False(t, resp.Team.LookingForMembers)
	})

	tests := []struct {
		name    string
		req     model.CreateTeamRequest
		wantErr error
	}{
		{name: "blank name", req: model.CreateTeamRequest{Name: "   ", CompetitionID: "x"}, wantErr: model.ErrInvalidTeamName},
		{name: "name too long", req: model.CreateTeamRequest{Name: strings.Repeat("a", model.MaxNameLength+1), CompetitionID: "x"}, wantErr: model.ErrInvalidTeamName},
		{name: "missing competition", req: model.CreateTeamRequest{Name: "Rockets"}, wantErr: model.ErrCompetitionRequired},
		{name: "negative slots", req: model.CreateTeamRequest{Name: "Rockets", CompetitionID: "x", AvailableSlots: -1}, wantErr: model.ErrInvalidSlots},
		{name: "unknown competition", req: model.CreateTeamRequest{Name: "Rockets", CompetitionID: "missing"}, wantErr: competition.ErrCompetitionNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)

			resp, err := f.svc.CreateTeam(ctx, captain, &tt.req)

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantErr)

			var count int64
			f.db.Model(&model.Team{}).Count(&count)
			assert.Zero(t, count)
			assert.Empty(t, f.published.Events())
		})
	}
}

func TestService_GetTeamAndListMembers(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	created, err := f.svc.CreateTeam(ctx, captain, &model.CreateTeamRequest{
		Name: "Rockets", CompetitionID: f.competitionID, LookingForMembers: true, AvailableSlots: 2,
	})
	require.NoError(t, err)
	_, err = f.members.AddMember(ctx, created.Team.ID, "u1", false)
	require.NoError(t, err)

	t.Run("get team with roster", func(t *testing.T) {
		resp, err := f.svc.GetTeam(ctx, created.Team.ID)

		require.NoError(t, err)
		assert.Equal(t, created.Team.ID, resp.Team.ID)
		require.Len(t, resp.Members, 2)
		assert.Equal(t, "captain", resp.Members[0].UserID)
	})

	t.Run("list members", func(t *testing.T) {
		members, err := f.svc.ListMembers(ctx, created.Team.ID)

		require.NoError(t, err)
		assert.Len(t, members, 2)
	})

	t.Run("unknown team", func(t *testing.T) {
		_, err := f.svc.GetTeam(ctx, "missing")
		assert.ErrorIs(t, err, model.ErrTeamNotFound)

		_, err = f.svc.ListMembers(ctx, "missing")
		assert.ErrorIs(t, err, model.ErrTeamNotFound)
	})
}

func TestService_ReserveSlot(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	created, err := f.svc.CreateTeam(ctx, captain, &model.CreateTeamRequest{
		Name: "Rockets", CompetitionID: f.competitionID, LookingForMembers: true, AvailableSlots: 1,
	})
	require.NoError(t, err)

	team, err := f.svc.ReserveSlot(ctx, created.Team.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, team.AvailableSlots)
	assert.False(t, team.LookingForMembers)

	_, err = f.svc.ReserveSlot(ctx, created.Team.ID)
	assert.ErrorIs(t, err, model.ErrNoSlotsAvailable)
}

func TestService_UpdateRecruitment(t *testing.T) {
	ctx := context.Background()

	newTeam := func(t *testing.T, f *fixture) string {
		created, err := f.svc.CreateTeam(ctx, captain, &model.CreateTeamRequest{
			Name: "Rockets", CompetitionID: f.competitionID, AvailableSlots: 0, RequiredRoles: "ml",
		})
		require.NoError(t, err)
		return created.Team.ID
	}
	newOpenTeam := func(t *testing.T, f *fixture, slots int) string {
		created, err := f.svc.CreateTeam(ctx, captain, &model.CreateTeamRequest{
			Name: "Rockets", CompetitionID: f.competitionID, LookingForMembers: true, AvailableSlots: slots, RequiredRoles: "ml",
		})
		require.NoError(t, err)
		return created.Team.ID
	}

	t.Run("captain lowers slots and keeps roles", func(t *testing.T) {
		f := setup(t)
		teamID := newOpenTeam(t, f, 3)

		team, err := f.svc.UpdateRecruitment(ctx, captain, teamID, &model.UpdateRecruitmentRequest{
			LookingForMembers: true,
			AvailableSlots:    ptr(1),
		})

		require.NoError(t, err)
		assert.True(t, team.LookingForMembers)
		assert.Equal(t, 1, team.AvailableSlots)
		assert.Equal(t, "ml", team.RequiredRoles)
		assert.Len(t, f.published.OfType(events.TypeRecruitmentUpdated), 1)
	})

	t.Run("captain closes then reopens within remaining slots", func(t *testing.T) {
		f := setup(t)
		teamID := newOpenTeam(t, f, 2)

		closed, err := f.svc.UpdateRecruitment(ctx, captain, teamID, &model.UpdateRecruitmentRequest{AvailableSlots: ptr(2)})
		require.NoError(t, err)
		assert.False(t, closed.LookingForMembers)

		reopened, err := f.svc.UpdateRecruitment(ctx, captain, teamID, &model.UpdateRecruitmentRequest{
			LookingForMembers: true,
			AvailableSlots:    ptr(2),
		})
		require.NoError(t, err)
		assert.True(t, reopened.LookingForMembers)
		assert.Equal(t, 2, reopened.AvailableSlots)
	})

	t.Run("raising slots is rejected", func(t *testing.T) {
		f := setup(t)
		teamID := newOpenTeam(t, f, 1)
		_, err := f.svc.ReserveSlot(ctx, teamID)
		require.NoError(t, err)

		_, err = f.svc.UpdateRecruitment(ctx, captain, teamID, &model.UpdateRecruitmentRequest{
			LookingForMembers: true,
			AvailableSlots:    ptr(3),
		})

		assert.ErrorIs(t, err, model.ErrSlotsIncrease)
		team, err := f.svc.Lookup(ctx, teamID)
		require.NoError(t, err)
		assert.Equal(t, 0, team.AvailableSlots)
		assert.False(t, team.LookingForMembers)
		assert.Empty(t, f.published.OfType(events.TypeRecruitmentUpdated))
	})

	t.Run("zero slots keeps recruitment closed", func(t *testing.T) {
		f := setup(t)
		teamID := newTeam(t, f)

		team, err := f.svc.UpdateRecruitment(ctx, captain, teamID, &model.UpdateRecruitmentRequest{
			LookingForMembers: true,
			AvailableSlots:    ptr(0),
			RequiredRoles:     ptr(""),
		})

		require.NoError(t, err)
		assert.False(t, team.LookingForMembers)
		assert.Empty(t, team.RequiredRoles)
	})

	t.Run("non-captain", func(t *testing.T) {
		f := setup(t)
		teamID := newTeam(t, f)
		_, err := f.members.AddMember(ctx, teamID, "member", false)
		require.NoError(t, err)

		_, err = f.svc.UpdateRecruitment(ctx, identity.Actor{UserID: "member"}, teamID, &model.UpdateRecruitmentRequest{
			AvailableSlots: ptr(1),
		})

		assert.ErrorIs(t, err, model.ErrNotCaptain)
	})

	t.Run("negative slots", func(t *testing.T) {
		f := setup(t)
		teamID := newTeam(t, f)

		_, err := f.svc.UpdateRecruitment(ctx, captain, teamID, &model.UpdateRecruitmentRequest{
			AvailableSlots: ptr(-1),
		})

		assert.ErrorIs(t, err, model.ErrInvalidSlots)
	})

	t.Run("unknown team", func(t *testing.T) {
		f := setup(t)

		_, err := f.svc.UpdateRecruitment(ctx, captain, "missing", &model.UpdateRecruitmentRequest{
			AvailableSlots: ptr(1),
		})

		assert.ErrorIs(t, err, model.ErrTeamNotFound)
	})
}

func TestService_CreateTeam_CaptainInsertFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	logger := zap.NewNop().Sugar()
	svc := New(repository.New(f.db), f.db, failingMembers{f.members}, competition.NewRegistry(f.db), nil, logger)

	_, err := svc.CreateTeam(ctx, captain, &model.CreateTeamRequest{Name: "Rockets", CompetitionID: f.competitionID})

	assert.ErrorIs(t, err, membershipModel.ErrAlreadyMember)
	var count int64
	f.db.Model(&model.Team{}).Count(&count)
	assert.Zero(t, count)
}

// failingMembers rejects every insert.
type failingMembers struct {
	membershipService.Service
}

func (m failingMembers) WithTx(tx *gorm.DB) membershipService.Service {
	return failingMembers{m.Service.WithTx(tx)}
}

func (failingMembers) AddMember(context.Context, string, string, bool) (*membershipModel.Member, error) {
	return nil, membershipModel.ErrAlreadyMember
}
