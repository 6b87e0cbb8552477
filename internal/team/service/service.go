// Package service provides business logic layer for the team registry.
package service

import (
	"context"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/team_recruitment/internal/competition"
	"github.com/festy23/team_recruitment/internal/events"
	"github.com/festy23/team_recruitment/internal/identity"
	membershipModel "github.com/festy23/team_recruitment/internal/membership/model"
	membershipService "github.com/festy23/team_recruitment/internal/membership/service"
	"github.com/festy23/team_recruitment/internal/team/model"
	"github.com/festy23/team_recruitment/internal/team/repository"
)

// Service defines the team registry operations.
type Service interface {
	// CreateTeam creates a team with the actor as its captain.
	CreateTeam(ctx context.Context, actor identity.Actor, req *model.CreateTeamRequest) (*model.TeamResponse, error)
	// GetTeam returns a team with its roster.
	GetTeam(ctx context.Context, teamID string) (*model.TeamResponse, error)
	// Lookup returns the team without its roster.
	Lookup(ctx context.Context, teamID string) (*model.Team, error)
	// ListMembers returns the roster of an existing team.
	ListMembers(ctx context.Context, teamID string) ([]membershipModel.Member, error)
	// ReserveSlot consumes one slot or fails with model.ErrNoSlotsAvailable.
	ReserveSlot(ctx context.Context, teamID string) (*model.Team, error)
	// UpdateRecruitment lets the captain toggle recruitment, lower the remaining
	// slots or change the wanted roles. Slots are never raised.
	UpdateRecruitment(
		ctx context.Context,
		actor identity.Actor,
		teamID string,
		req *model.UpdateRecruitmentRequest,
	) (*model.Team, error)
	// WithTx returns a service whose reads and writes run inside tx.
	WithTx(tx *gorm.DB) Service
}

type service struct {
	repo         repository.Repository
	db           *gorm.DB
	members      membershipService.Service
	competitions competition.Registry
	emitter      *events.Emitter
	logger       *zap.SugaredLogger
}

// New creates a new team service instance.
func New(
	repo repository.Repository,
	db *gorm.DB,
	members membershipService.Service,
	competitions competition.Registry,
	emitter *events.Emitter,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:         repo,
		db:           db,
		members:      members,
		competitions: competitions,
		emitter:      emitter,
		logger:       logger,
	}
}

func (s *service) WithTx(tx *gorm.DB) Service {
	return &service{
		repo:         repository.New(tx),
		db:           tx,
		members:      s.members.WithTx(tx),
		competitions: competition.NewRegistry(tx),
		emitter:      s.emitter,
		logger:       s.logger,
	}
}

func (s *service) CreateTeam(
	ctx context.Context,
	actor identity.Actor,
	req *model.CreateTeamRequest,
) (*model.TeamResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || utf8.RuneCountInString(name) > model.MaxNameLength {
		return nil, model.ErrInvalidTeamName
	}
	if req.CompetitionID == "" {
		return nil, model.ErrCompetitionRequired
	}
	if req.AvailableSlots < 0 {
		return nil, model.ErrInvalidSlots
	}
	if err := competition.Require(ctx, s.competitions, req.CompetitionID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	team := &model.Team{
		ID:                uuid.NewString(),
		Name:              name,
		Description:       req.Description,
		CompetitionID:     req.CompetitionID,
		LookingForMembers: model.NormalizeRecruitment(req.LookingForMembers, req.AvailableSlots),
		AvailableSlots:    req.AvailableSlots,
		RequiredRoles:     req.RequiredRoles,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	var captain *membershipModel.Member
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repository.New(tx).Create(ctx, team); err != nil {
			return err
		}
		var err error
		captain, err = s.members.WithTx(tx).AddMember(ctx, team.ID, actor.UserID, true)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("team created",
		"team_id", team.ID,
		"competition_id", team.CompetitionID,
		"captain_id", actor.UserID,
		"available_slots", team.AvailableSlots,
	)
	s.emitter.Emit(ctx, events.Event{
		Type:      events.TypeTeamCreated,
		TeamID:    team.ID,
		SubjectID: team.ID,
		ActorID:   actor.UserID,
		Attributes: map[string]string{
			"competition_id":  team.CompetitionID,
			"available_slots": strconv.Itoa(team.AvailableSlots),
		},
	})

	return &model.TeamResponse{Team: team, Members: []membershipModel.Member{*captain}}, nil
}

func (s *service) GetTeam(ctx context.Context, teamID string) (*model.TeamResponse, error) {
	team, err := s.repo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	members, err := s.members.ListMembers(ctx, teamID)
	if err != nil {
		return nil, err
	}
	return &model.TeamResponse{Team: team, Members: members}, nil
}

func (s *service) Lookup(ctx context.Context, teamID string) (*model.Team, error) {
	return s.repo.GetByID(ctx, teamID)
}

func (s *service) ListMembers(ctx context.Context, teamID string) ([]membershipModel.Member, error) {
	if _, err := s.repo.GetByID(ctx, teamID); err != nil {
		return nil, err
	}
	return s.members.ListMembers(ctx, teamID)
}

func (s *service) ReserveSlot(ctx context.Context, teamID string) (*model.Team, error) {
	team, err := s.repo.ReserveSlot(ctx, teamID)
	if err != nil {
		return nil, err
	}
	s.logger.Debugw("slot reserved",
		"team_id", teamID,
		"available_slots", team.AvailableSlots,
		"looking_for_members", team.LookingForMembers,
	)
	return team, nil
}

func (s *service) UpdateRecruitment(
	ctx context.Context,
	actor identity.Actor,
	teamID string,
	req *model.UpdateRecruitmentRequest,
) (*model.Team, error) {
	if req.AvailableSlots == nil || *req.AvailableSlots < 0 {
		return nil, model.ErrInvalidSlots
	}
	slots := *req.AvailableSlots

	var updated *model.Team
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := repository.New(tx)
		team, err := repo.GetByID(ctx, teamID)
		if err != nil {
			return err
		}
		isCaptain, err := s.members.WithTx(tx).IsCaptain(ctx, teamID, actor.UserID)
		if err != nil {
			return err
		}
		if !isCaptain {
			return model.ErrNotCaptain
		}

		roles := team.RequiredRoles
		if req.RequiredRoles != nil {
			roles = *req.RequiredRoles
		}
		updated, err = repo.UpdateRecruitment(ctx, teamID, req.LookingForMembers, slots, roles)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("recruitment updated",
		"team_id", teamID,
		"user_id", actor.UserID,
		"available_slots", updated.AvailableSlots,
		"looking_for_members", updated.LookingForMembers,
	)
	s.emitter.Emit(ctx, events.Event{
		Type:      events.TypeRecruitmentUpdated,
		TeamID:    teamID,
		SubjectID: teamID,
		ActorID:   actor.UserID,
		Attributes: map[string]string{
			"available_slots":     strconv.Itoa(updated.AvailableSlots),
			"looking_for_members": strconv.FormatBool(updated.LookingForMembers),
		},
	})
	return updated, nil
}
