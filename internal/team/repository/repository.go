// Package repository provides data access layer for the team registry.
package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/festy23/team_recruitment/internal/team/model"
)

// Repository defines the interface for team data access operations.
type Repository interface {
	// Create inserts a new team.
	Create(ctx context.Context, team *model.Team) error
	// GetByID finds a team by ID.
	GetByID(ctx context.Context, teamID string) (*model.Team, error)
	// ReserveSlot takes one slot in a single conditional update and returns the updated team.
	ReserveSlot(ctx context.Context, teamID string) (*model.Team, error)
	// UpdateRecruitment changes the recruitment settings of a team. Slots can only be lowered.
	UpdateRecruitment(ctx context.Context, teamID string, lookingForMembers bool, availableSlots int, requiredRoles string) (*model.Team, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new team repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, team *model.Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

func (r *repository) GetByID(ctx context.Context, teamID string) (*model.Team, error) {
	var team model.Team
	err := r.db.WithContext(ctx).
		Where("id = ?", teamID).
		First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

// ReserveSlot relies on the row lock taken by UPDATE: a concurrent reservation
// on the same team waits, then re-evaluates available_slots > 0 against the
// committed value.
func (r *repository) ReserveSlot(ctx context.Context, teamID string) (*model.Team, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Team{}).
		Where("id = ? AND available_slots > 0", teamID).
		Updates(map[string]interface{}{
			"available_slots":     gorm.Expr("available_slots - 1"),
			"looking_for_members": gorm.Expr("CASE WHEN available_slots <= 1 THEN ? ELSE looking_for_members END", false),
			"updated_at":          time.Now().UTC(),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		if _, err := r.GetByID(ctx, teamID); err != nil {
			return nil, err
		}
		return nil, model.ErrNoSlotsAvailable
	}
	return r.GetByID(ctx, teamID)
}

// UpdateRecruitment never raises available_slots: the WHERE clause is
// re-evaluated after any concurrent ReserveSlot commits, so a lowered count is
// written against the current value and no decrement is lost.
func (r *repository) UpdateRecruitment(
	ctx context.Context,
	teamID string,
	lookingForMembers bool,
	availableSlots int,
	requiredRoles string,
) (*model.Team, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Team{}).
		Where("id = ? AND available_slots >= ?", teamID, availableSlots).
		Updates(map[string]interface{}{
			"looking_for_members": lookingForMembers && availableSlots > 0,
			"available_slots":     availableSlots,
			"required_roles":      requiredRoles,
			"updated_at":          time.Now().UTC(),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		if _, err := r.GetByID(ctx, teamID); err != nil {
			return nil, err
		}
		return nil, model.ErrSlotsIncrease
	}
	return r.GetByID(ctx, teamID)
}
