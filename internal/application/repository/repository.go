// Package repository provides data access layer for competition applications.
package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/festy23/team_recruitment/internal/application/model"
	"github.com/festy23/team_recruitment/internal/database/dberrors"
)

// Repository defines the interface for application data access operations.
type Repository interface {
	// Create inserts an application. Returns model.ErrApplicationExists for a second
	// application of the same team to the same competition.
	Create(ctx context.Context, app *model.Application) error
	// GetByID finds an application by ID.
	GetByID(ctx context.Context, id string) (*model.Application, error)
	// Decide moves a pending application to status. It reports false when the
	// application was no longer pending.
	Decide(ctx context.Context, id string, status model.Status, decidedBy string, at time.Time) (bool, error)
	// ListByCompetition lists a competition's applications, oldest first.
	ListByCompetition(ctx context.Context, competitionID string, status model.Status) ([]model.Application, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new application repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, app *model.Application) error {
	err := r.db.WithContext(ctx).Create(app).Error
	if dberrors.IsUniqueViolation(err) {
		return model.ErrApplicationExists
	}
	return err
}

func (r *repository) GetByID(ctx context.Context, id string) (*model.Application, error) {
	var app model.Application
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *repository) Decide(
	ctx context.Context,
	id string,
	status model.Status,
	decidedBy string,
	at time.Time,
) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Application{}).
		Where("id = ? AND status = ?", id, model.StatusPending).
		Updates(map[string]interface{}{
			"status":     status,
			"decided_by": decidedBy,
			"decided_at": at,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *repository) ListByCompetition(
	ctx context.Context,
	competitionID string,
	status model.Status,
) ([]model.Application, error) {
	q := r.db.WithContext(ctx).Where("competition_id = ?", competitionID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	apps := []model.Application{}
	if err := q.Order("created_at ASC").Order("id ASC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}
