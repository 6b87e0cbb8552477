// Package service provides business logic layer for the application tracker.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/team_recruitment/internal/application/model"
	"github.com/festy23/team_recruitment/internal/application/repository"
	"github.com/festy23/team_recruitment/internal/competition"
	"github.com/festy23/team_recruitment/internal/events"
	"github.com/festy23/team_recruitment/internal/identity"
	membershipService "github.com/festy23/team_recruitment/internal/membership/service"
	"github.com/festy23/team_recruitment/internal/metrics"
	teamService "github.com/festy23/team_recruitment/internal/team/service"
)

// Service defines the application tracker operations.
type Service interface {
	// SubmitApplication lets a team captain apply to the team's competition.
	SubmitApplication(ctx context.Context, actor identity.Actor, req *model.SubmitApplicationRequest) (*model.Application, error)
	// UpdateStatus records an authority's decision and returns the roster at decision time.
	UpdateStatus(ctx context.Context, actor identity.Actor, applicationID, status string) (*model.ApplicationView, error)
	// GetApplication returns the application with the team's current roster.
	GetApplication(ctx context.Context, actor identity.Actor, applicationID string) (*model.ApplicationView, error)
	// ListApplications lists a competition's applications for an authority.
	ListApplications(ctx context.Context, actor identity.Actor, competitionID, status string) ([]model.Application, error)
}

type service struct {
	repo         repository.Repository
	db           *gorm.DB
	teams        teamService.Service
	members      membershipService.Service
	competitions competition.Registry
	metrics      *metrics.Recruitment
	emitter      *events.Emitter
	logger       *zap.SugaredLogger
}

// New creates a new application service instance.
func New(
	repo repository.Repository,
	db *gorm.DB,
	teams teamService.Service,
	members membershipService.Service,
	competitions competition.Registry,
	m *metrics.Recruitment,
	emitter *events.Emitter,
	logger *zap.SugaredLogger,
) Service {
	if m == nil {
		m = metrics.New(prometheus.NewRegistry())
	}
	return &service{
		repo:         repo,
		db:           db,
		teams:        teams,
		members:      members,
		competitions: competitions,
		metrics:      m,
		emitter:      emitter,
		logger:       logger,
	}
}

func (s *service) SubmitApplication(
	ctx context.Context,
	actor identity.Actor,
	req *model.SubmitApplicationRequest,
) (*model.Application, error) {
	if req.TeamID == "" {
		return nil, model.ErrTeamRequired
	}

	team, err := s.teams.Lookup(ctx, req.TeamID)
	if err != nil {
		return nil, err
	}
	isCaptain, err := s.members.IsCaptain(ctx, team.ID, actor.UserID)
	if err != nil {
		return nil, err
	}
	if !isCaptain {
		return nil, model.ErrNotCaptain
	}

	competitionID := req.CompetitionID
	if competitionID == "" {
		competitionID = team.CompetitionID
	}
	if err := competition.Require(ctx, s.competitions, competitionID); err != nil {
		return nil, err
	}
	if competitionID != team.CompetitionID {
		return nil, model.ErrCompetitionMismatch
	}

	app := &model.Application{
		ID:            uuid.NewString(),
		UserID:        actor.UserID,
		TeamID:        team.ID,
		CompetitionID: competitionID,
		Status:        model.StatusPending,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, app); err != nil {
		return nil, err
	}

	s.logger.Infow("application submitted",
		"application_id", app.ID,
		"team_id", app.TeamID,
		"competition_id", app.CompetitionID,
		"user_id", actor.UserID,
	)
	s.emitter.Emit(ctx, events.Event{
		Type:      events.TypeApplicationSubmitted,
		TeamID:    app.TeamID,
		SubjectID: app.ID,
		ActorID:   actor.UserID,
		Attributes: map[string]string{
			"competition_id": app.CompetitionID,
		},
	})
	return app, nil
}

func (s *service) UpdateStatus(
	ctx context.Context,
	actor identity.Actor,
	applicationID, status string,
) (*model.ApplicationView, error) {
	decision, ok := model.ParseDecision(status)
	if !ok {
		return nil, model.ErrInvalidStatus
	}
	if !actor.IsAuthority() {
		return nil, model.ErrNotAuthority
	}

	var view *model.ApplicationView
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := repository.New(tx)
		app, err := repo.GetByID(ctx, applicationID)
		if err != nil {
			return err
		}
		if !app.IsPending() {
			return model.ErrAlreadyDecided
		}

		now := time.Now().UTC()
		decided, err := repo.Decide(ctx, app.ID, decision, actor.UserID, now)
		if err != nil {
			return err
		}
		if !decided {
			return model.ErrAlreadyDecided
		}

		roster, err := s.members.WithTx(tx).ListMembers(ctx, app.TeamID)
		if err != nil {
			return err
		}

		app.Status = decision
		app.DecidedBy = &actor.UserID
		app.DecidedAt = &now
		view = &model.ApplicationView{Application: app, Roster: roster}
		return nil
	})
	if err != nil {
		s.logger.Debugw("application decision rejected", "application_id", applicationID, "user_id", actor.UserID, "error", err)
		return nil, err
	}

	app := view.Application
	s.metrics.IncApplicationDecided(string(app.Status))
	s.logger.Infow("application decided",
		"application_id", app.ID,
		"team_id", app.TeamID,
		"status", app.Status,
		"decided_by", actor.UserID,
		"roster_size", len(view.Roster),
	)
	s.emitter.Emit(ctx, events.Event{
		Type:      events.TypeApplicationDecided,
		TeamID:    app.TeamID,
		SubjectID: app.ID,
		ActorID:   actor.UserID,
		Attributes: map[string]string{
			"competition_id": app.CompetitionID,
			"status":         string(app.Status),
		},
	})
	return view, nil
}

func (s *service) GetApplication(
	ctx context.Context,
	actor identity.Actor,
	applicationID string,
) (*model.ApplicationView, error) {
	app, err := s.repo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAuthority() {
		isCaptain, err := s.members.IsCaptain(ctx, app.TeamID, actor.UserID)
		if err != nil {
			return nil, err
		}
		if !isCaptain {
			return nil, model.ErrCannotView
		}
	}

	roster, err := s.members.ListMembers(ctx, app.TeamID)
	if err != nil {
		return nil, err
	}
	return &model.ApplicationView{Application: app, Roster: roster}, nil
}

func (s *service) ListApplications(
	ctx context.Context,
	actor identity.Actor,
	competitionID, status string,
) ([]model.Application, error) {
	if !actor.IsAuthority() {
		return nil, model.ErrNotAuthority
	}
	filter, ok := model.ParseStatusFilter(status)
	if !ok {
		return nil, model.ErrInvalidStatusFilter
	}
	if err := competition.Require(ctx, s.competitions, competitionID); err != nil {
		return nil, err
	}
	return s.repo.ListByCompetition(ctx, competitionID, filter)
}
