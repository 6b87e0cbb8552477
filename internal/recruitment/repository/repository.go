// Package repository provides data access layer for recruitment requests.
package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/festy23/team_recruitment/internal/database/dberrors"
	"github.com/festy23/team_recruitment/internal/recruitment/model"
)

// Repository defines the interface for recruitment request data access operations.
type Repository interface {
	// Create inserts a pending request. Returns model.ErrDuplicateRequest when the
	// pending-pair index rejects it.
	Create(ctx context.Context, req *model.Request) error
	// GetByID finds a request by ID.
	GetByID(ctx context.Context, requestID string) (*model.Request, error)
	// FindPending returns the pending request for the pair, or nil if there is none.
	FindPending(ctx context.Context, teamID, userID string) (*model.Request, error)
	// Resolve moves a pending request to status. It reports false when the
	// request was no longer pending.
	Resolve(ctx context.Context, requestID string, status model.Status, resolvedBy string, at time.Time) (bool, error)
	// ListByTeam returns the team's requests, newest first. An empty status lists all.
	ListByTeam(ctx context.Context, teamID string, status model.Status) ([]model.Request, error)
	// ListByUser returns the requests where userID is the prospective member, newest first.
	ListByUser(ctx context.Context, userID string, status model.Status) ([]model.Request, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new recruitment repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, req *model.Request) error {
	err := r.db.WithContext(ctx).Create(req).Error
	if dberrors.IsUniqueViolation(err) {
		return model.ErrDuplicateRequest
	}
	return err
}

func (r *repository) GetByID(ctx context.Context, requestID string) (*model.Request, error) {
	var req model.Request
	err := r.db.WithContext(ctx).
		Where("id = ?", requestID).
		First(&req).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrRequestNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *repository) FindPending(ctx context.Context, teamID, userID string) (*model.Request, error) {
	var reqs []model.Request
	err := r.db.WithContext(ctx).
		Where("team_id = ? AND user_id = ? AND status = ?", teamID, userID, model.StatusPending).
		Limit(1).
		Find(&reqs).Error
	if err != nil {
		return nil, err
	}
	if len(reqs) == 0 {
		return nil, nil
	}
	return &reqs[0], nil
}

func (r *repository) Resolve(
	ctx context.Context,
	requestID string,
	status model.Status,
	resolvedBy string,
	at time.Time,
) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Request{}).
		Where("id = ? AND status = ?", requestID, model.StatusPending).
		Updates(map[string]interface{}{
			"status":      status,
			"resolved_by": resolvedBy,
			"resolved_at": at,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *repository) ListByTeam(ctx context.Context, teamID string, status model.Status) ([]model.Request, error) {
	return r.list(r.db.WithContext(ctx).Where("team_id = ?", teamID), status)
}

func (r *repository) ListByUser(ctx context.Context, userID string, status model.Status) ([]model.Request, error) {
	return r.list(r.db.WithContext(ctx).Where("user_id = ?", userID), status)
}

func (r *repository) list(q *gorm.DB, status model.Status) ([]model.Request, error) {
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var reqs []model.Request
	if err := q.Order("created_at DESC").Order("id ASC").Find(&reqs).Error; err != nil {
		return nil, err
	}
	if reqs == nil {
		return []model.Request{}, nil
	}
	return reqs, nil
}
