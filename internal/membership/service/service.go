// Package service provides business logic layer for the membership ledger.
package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/team_recruitment/internal/membership/model"
	"github.com/festy23/team_recruitment/internal/membership/repository"
)

// Service defines the membership ledger operations. AddMember is the only write path.
type Service interface {
	AddMember(ctx context.Context, teamID, userID string, isCaptain bool) (*model.Member, error)
	IsMember(ctx context.Context, teamID, userID string) (bool, error)
	IsCaptain(ctx context.Context, teamID, userID string) (bool, error)
	ListMembers(ctx context.Context, teamID string) ([]model.Member, error)
	// WithTx returns a service whose reads and writes run inside tx.
	WithTx(tx *gorm.DB) Service
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new membership service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) WithTx(tx *gorm.DB) Service {
	return &service{repo: repository.New(tx), logger: s.logger}
}

func (s *service) AddMember(ctx context.Context, teamID, userID string, isCaptain bool) (*model.Member, error) {
	if teamID == "" || userID == "" {
		return nil, model.ErrInvalidMember
	}

	member := &model.Member{
		TeamID:    teamID,
		UserID:    userID,
		IsCaptain: isCaptain,
		JoinedAt:  time.Now().UTC(),
	}
	if err := s.repo.Add(ctx, member); err != nil {
		return nil, err
	}

	s.logger.Debugw("member added", "team_id", teamID, "user_id", userID, "is_captain", isCaptain)
	return member, nil
}

func (s *service) IsMember(ctx context.Context, teamID, userID string) (bool, error) {
	if teamID == "" || userID == "" {
		return false, nil
	}
	return s.repo.Exists(ctx, teamID, userID)
}

func (s *service) IsCaptain(ctx context.Context, teamID, userID string) (bool, error) {
	if teamID == "" || userID == "" {
		return false, nil
	}
	return s.repo.IsCaptain(ctx, teamID, userID)
}

func (s *service) ListMembers(ctx context.Context, teamID string) ([]model.Member, error) {
	return s.repo.ListByTeam(ctx, teamID)
}
