// Package service implements the invitation and join-request broker.
package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/team_recruitment/internal/config"
	"github.com/festy23/team_recruitment/internal/database/dberrors"
	"github.com/festy23/team_recruitment/internal/events"
	"github.com/festy23/team_recruitment/internal/identity"
	membershipModel "github.com/festy23/team_recruitment/internal/membership/model"
	membershipService "github.com/festy23/team_recruitment/internal/membership/service"
	"github.com/festy23/team_recruitment/internal/metrics"
	"github.com/festy23/team_recruitment/internal/recruitment/model"
	"github.com/festy23/team_recruitment/internal/recruitment/repository"
	teamModel "github.com/festy23/team_recruitment/internal/team/model"
	teamService "github.com/festy23/team_recruitment/internal/team/service"
	"github.com/festy23/team_recruitment/pkg/retry"
)

const tracerName = "github.com/festy23/team_recruitment/internal/recruitment"

// Service defines the recruitment broker operations.
type Service interface {
	// CreateInvitation lets a captain invite a user to the team.
	CreateInvitation(
		ctx context.Context,
		actor identity.Actor,
		teamID string,
		req *model.CreateInvitationRequest,
	) (*model.Request, error)

	// CreateJoinRequest lets the actor ask to join a recruiting team.
	CreateJoinRequest(
		ctx context.Context,
		actor identity.Actor,
		teamID string,
		req *model.CreateJoinRequestRequest,
	) (*model.Request, error)

	// Respond resolves a pending request of either kind.
	Respond(ctx context.Context, actor identity.Actor, requestID, status string) (*model.RespondResult, error)

	// RespondToInvitation resolves a pending invitation.
	RespondToInvitation(ctx context.Context, actor identity.Actor, requestID, status string) (*model.RespondResult, error)

	// RespondToJoinRequest resolves a pending join-request.
	RespondToJoinRequest(ctx context.Context, actor identity.Actor, requestID, status string) (*model.RespondResult, error)

	// CheckExistingRequest reports membership and any pending request for the pair.
	CheckExistingRequest(ctx context.Context, teamID, userID string) (*model.CheckResult, error)

	// ListTeamRequests lists a team's requests for its captain or an authority.
	ListTeamRequests(ctx context.Context, actor identity.Actor, teamID, status string) ([]model.Request, error)

	// ListUserRequests lists the requests addressed to or sent by the actor as prospective member.
	ListUserRequests(ctx context.Context, actor identity.Actor, status string) ([]model.Request, error)

	// GetRequest returns a single request if the actor may see it.
	GetRequest(ctx context.Context, actor identity.Actor, requestID string) (*model.Request, error)
}

type service struct {
	db      *gorm.DB
	teams   teamService.Service
	members membershipService.Service
	txRetry retry.Config
	metrics *metrics.Recruitment
	emitter *events.Emitter
	tracer  trace.Tracer
	logger  *zap.SugaredLogger
}

// New creates a new recruitment service instance.
func New(
	db *gorm.DB,
	teams teamService.Service,
	members membershipService.Service,
	cfg config.RecruitmentConfig,
	m *metrics.Recruitment,
	emitter *events.Emitter,
	logger *zap.SugaredLogger,
) Service {
	if cfg.TxMaxAttempts < 1 {
		cfg = config.DefaultRecruitmentConfig()
	}
	txRetry := retry.TransactionConfig(cfg.TxMaxAttempts, cfg.TxRetryDelay)
	txRetry.Classify = dberrors.IsRetryable
	if m == nil {
		m = metrics.New(prometheus.NewRegistry())
	}

	return &service{
		db:      db,
		teams:   teams,
		members: members,
		txRetry: txRetry,
		metrics: m,
		emitter: emitter,
		tracer:  otel.Tracer(tracerName),
		logger:  logger,
	}
}

// inTx runs fn in a transaction, re-running it only for transient database failures.
func (s *service) inTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return retry.Do(ctx, s.txRetry, func() error {
		return s.db.WithContext(ctx).Transaction(fn)
	})
}

func (s *service) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (s *service) CreateInvitation(
	ctx context.Context,
	actor identity.Actor,
	teamID string,
	req *model.CreateInvitationRequest,
) (result *model.Request, err error) {
	ctx, span := s.startSpan(ctx, "recruitment.CreateInvitation",
		attribute.String("team_id", teamID),
		attribute.String("user_id", req.UserID),
	)
	defer func() { endSpan(span, err) }()

	if req.UserID == "" {
		return nil, model.ErrTargetRequired
	}

	err = s.inTx(ctx, func(tx *gorm.DB) error {
		team, txErr := s.teams.WithTx(tx).Lookup(ctx, teamID)
		if txErr != nil {
			return txErr
		}

		members := s.members.WithTx(tx)
		isCaptain, txErr := members.IsCaptain(ctx, teamID, actor.UserID)
		if txErr != nil {
			return txErr
		}
		if !isCaptain {
			return model.ErrNotCaptain
		}

		result, txErr = s.createInTx(ctx, tx, team, model.Request{
			UserID:        req.UserID,
			InitiatedBy:   actor.UserID,
			Kind:          model.KindInvite,
			CompetitionID: req.CompetitionID,
			Message:       req.Message,
		})
		return txErr
	})
	if err != nil {
		s.logger.Debugw("invitation rejected", "team_id", teamID, "user_id", req.UserID, "error", err)
		return nil, err
	}

	s.afterCreate(ctx, result)
	return result, nil
}

func (s *service) CreateJoinRequest(
	ctx context.Context,
	actor identity.Actor,
	teamID string,
	req *model.CreateJoinRequestRequest,
) (result *model.Request, err error) {
	ctx, span := s.startSpan(ctx, "recruitment.CreateJoinRequest",
		attribute.String("team_id", teamID),
		attribute.String("user_id", actor.UserID),
	)
	defer func() { endSpan(span, err) }()

	err = s.inTx(ctx, func(tx *gorm.DB) error {
		team, txErr := s.teams.WithTx(tx).Lookup(ctx, teamID)
		if txErr != nil {
			return txErr
		}

		result, txErr = s.createInTx(ctx, tx, team, model.Request{
			UserID:        actor.UserID,
			InitiatedBy:   actor.UserID,
			Kind:          model.KindJoinRequest,
			CompetitionID: req.CompetitionID,
			Message:       req.Message,
		})
		return txErr
	})
	if err != nil {
		s.logger.Debugw("join-request rejected", "team_id", teamID, "user_id", actor.UserID, "error", err)
		return nil, err
	}

	s.afterCreate(ctx, result)
	return result, nil
}

// createInTx checks the shared creation preconditions in order (member,
// duplicate, recruiting for join-requests, competition) and inserts the request.
func (s *service) createInTx(
	ctx context.Context,
	tx *gorm.DB,
	team *teamModel.Team,
	draft model.Request,
) (*model.Request, error) {
	isMember, err := s.members.WithTx(tx).IsMember(ctx, team.ID, draft.UserID)
	if err != nil {
		return nil, err
	}
	if isMember {
		return nil, membershipModel.ErrAlreadyMember
	}

	repo := repository.New(tx)
	pending, err := repo.FindPending(ctx, team.ID, draft.UserID)
	if err != nil {
		return nil, err
	}
	if pending != nil {
		return nil, model.ErrDuplicateRequest
	}

	if draft.Kind == model.KindJoinRequest && !team.IsRecruiting() {
		return nil, model.ErrNotRecruiting
	}
	if draft.CompetitionID != "" && draft.CompetitionID != team.CompetitionID {
		return nil, model.ErrCompetitionMismatch
	}

	req := draft
	req.ID = uuid.NewString()
	req.TeamID = team.ID
	req.CompetitionID = team.CompetitionID
	req.Status = model.StatusPending
	req.CreatedAt = time.Now().UTC()
	if err := repo.Create(ctx, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

func (s *service) afterCreate(ctx context.Context, req *model.Request) {
	s.metrics.IncRequestCreated(string(req.Kind))
	s.logger.Infow("recruitment request created",
		"request_id", req.ID,
		"team_id", req.TeamID,
		"user_id", req.UserID,
		"kind", req.Kind,
		"initiated_by", req.InitiatedBy,
	)
	s.emitter.Emit(ctx, events.Event{
		Type:      events.TypeRequestCreated,
		TeamID:    req.TeamID,
		SubjectID: req.ID,
		ActorID:   req.InitiatedBy,
		Attributes: map[string]string{
			"kind":    string(req.Kind),
			"user_id": req.UserID,
		},
	})
}

func (s *service) RespondToInvitation(
	ctx context.Context,
	actor identity.Actor,
	requestID, status string,
) (*model.RespondResult, error) {
	kind := model.KindInvite
	return s.respond(ctx, actor, requestID, status, &kind)
}

func (s *service) RespondToJoinRequest(
	ctx context.Context,
	actor identity.Actor,
	requestID, status string,
) (*model.RespondResult, error) {
	kind := model.KindJoinRequest
	return s.respond(ctx, actor, requestID, status, &kind)
}

func (s *service) Respond(
	ctx context.Context,
	actor identity.Actor,
	requestID, status string,
) (*model.RespondResult, error) {
	return s.respond(ctx, actor, requestID, status, nil)
}

// respond applies the status flip, slot reservation and membership insert as
// one transaction. A lost race for the last slot rolls the flip back, leaving
// the request pending.
func (s *service) respond(
	ctx context.Context,
	actor identity.Actor,
	requestID, status string,
	expectKind *model.Kind,
) (result *model.RespondResult, err error) {
	ctx, span := s.startSpan(ctx, "recruitment.Respond",
		attribute.String("request_id", requestID),
		attribute.String("status", status),
	)
	defer func() { endSpan(span, err) }()

	start := time.Now()
	defer s.metrics.ObserveRespond(start)

	decision, ok := model.ParseDecision(status)
	if !ok {
		return nil, model.ErrInvalidStatus
	}

	err = s.inTx(ctx, func(tx *gorm.DB) error {
		var txErr error
		result, txErr = s.respondInTx(ctx, tx, actor, requestID, decision, expectKind)
		return txErr
	})
	if err != nil {
		if errors.Is(err, teamModel.ErrNoSlotsAvailable) {
			s.metrics.IncSlotConflict()
		}
		s.logger.Debugw("respond rejected", "request_id", requestID, "user_id", actor.UserID, "error", err)
		return nil, err
	}

	req := result.Request
	span.SetAttributes(attribute.String("team_id", req.TeamID), attribute.String("kind", string(req.Kind)))
	s.metrics.IncRequestResolved(string(req.Kind), string(req.Status))
	s.logger.Infow("recruitment request resolved",
		"request_id", req.ID,
		"team_id", req.TeamID,
		"user_id", req.UserID,
		"kind", req.Kind,
		"status", req.Status,
		"resolved_by", actor.UserID,
		"available_slots", result.Team.AvailableSlots,
	)
	s.emitter.Emit(ctx, events.Event{
		Type:      events.TypeRequestResolved,
		TeamID:    req.TeamID,
		SubjectID: req.ID,
		ActorID:   actor.UserID,
		Attributes: map[string]string{
			"kind":            string(req.Kind),
			"status":          string(req.Status),
			"user_id":         req.UserID,
			"available_slots": strconv.Itoa(result.Team.AvailableSlots),
		},
	})
	return result, nil
}

func (s *service) respondInTx(
	ctx context.Context,
	tx *gorm.DB,
	actor identity.Actor,
	requestID string,
	decision model.Status,
	expectKind *model.Kind,
) (*model.RespondResult, error) {
	repo := repository.New(tx)
	members := s.members.WithTx(tx)
	teams := s.teams.WithTx(tx)

	req, err := repo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !req.IsPending() {
		return nil, model.ErrAlreadyResolved
	}
	if expectKind != nil && req.Kind != *expectKind {
		return nil, model.ErrWrongKind
	}

	isCaptain := false
	if req.Kind == model.KindJoinRequest {
		if isCaptain, err = members.IsCaptain(ctx, req.TeamID, actor.UserID); err != nil {
			return nil, err
		}
	}
	if !req.Kind.CanRespond(actor, req, isCaptain) {
		return nil, model.ErrCannotRespond
	}

	now := time.Now().UTC()
	flipped, err := repo.Resolve(ctx, req.ID, decision, actor.UserID, now)
	if err != nil {
		return nil, err
	}
	if !flipped {
		return nil, model.ErrAlreadyResolved
	}

	var team *teamModel.Team
	if decision == model.StatusAccepted {
		if team, err = teams.ReserveSlot(ctx, req.TeamID); err != nil {
			return nil, err
		}
		if _, err = members.AddMember(ctx, req.TeamID, req.UserID, false); err != nil {
			return nil, err
		}
	} else if team, err = teams.Lookup(ctx, req.TeamID); err != nil {
		return nil, err
	}

	req.Status = decision
	req.ResolvedBy = &actor.UserID
	req.ResolvedAt = &now
	return &model.RespondResult{Request: req, Team: team}, nil
}

func (s *service) CheckExistingRequest(ctx context.Context, teamID, userID string) (*model.CheckResult, error) {
	if userID == "" {
		return nil, model.ErrTargetRequired
	}
	if _, err := s.teams.Lookup(ctx, teamID); err != nil {
		return nil, err
	}

	isMember, err := s.members.IsMember(ctx, teamID, userID)
	if err != nil {
		return nil, err
	}
	pending, err := repository.New(s.db).FindPending(ctx, teamID, userID)
	if err != nil {
		return nil, err
	}
	return &model.CheckResult{IsMember: isMember, PendingRequest: pending}, nil
}

func (s *service) ListTeamRequests(
	ctx context.Context,
	actor identity.Actor,
	teamID, status string,
) ([]model.Request, error) {
	filter, ok := model.ParseStatusFilter(status)
	if !ok {
		return nil, model.ErrInvalidStatusFilter
	}
	if _, err := s.teams.Lookup(ctx, teamID); err != nil {
		return nil, err
	}
	if !actor.IsAuthority() {
		isCaptain, err := s.members.IsCaptain(ctx, teamID, actor.UserID)
		if err != nil {
			return nil, err
		}
		if !isCaptain {
			return nil, model.ErrCannotView
		}
	}
	return repository.New(s.db).ListByTeam(ctx, teamID, filter)
}

func (s *service) ListUserRequests(ctx context.Context, actor identity.Actor, status string) ([]model.Request, error) {
	filter, ok := model.ParseStatusFilter(status)
	if !ok {
		return nil, model.ErrInvalidStatusFilter
	}
	return repository.New(s.db).ListByUser(ctx, actor.UserID, filter)
}

func (s *service) GetRequest(ctx context.Context, actor identity.Actor, requestID string) (*model.Request, error) {
	req, err := repository.New(s.db).GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	isCaptain, err := s.members.IsCaptain(ctx, req.TeamID, actor.UserID)
	if err != nil {
		return nil, err
	}
	if !req.VisibleTo(actor, isCaptain) {
		return nil, model.ErrCannotView
	}
	return req, nil
}
