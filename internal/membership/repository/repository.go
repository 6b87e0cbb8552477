// Package repository provides data access layer for the membership ledger.
package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/festy23/team_recruitment/internal/database/dberrors"
	"github.com/festy23/team_recruitment/internal/membership/model"
)

// Repository defines the interface for membership data access operations.
type Repository interface {
	// Add inserts a member row. Returns model.ErrAlreadyMember if the pair exists.
	Add(ctx context.Context, member *model.Member) error
	// Exists reports whether userID belongs to teamID.
	Exists(ctx context.Context, teamID, userID string) (bool, error)
	// IsCaptain reports whether userID is the captain of teamID.
	IsCaptain(ctx context.Context, teamID, userID string) (bool, error)
	// ListByTeam returns the team's members, captain first, then by join time.
	ListByTeam(ctx context.Context, teamID string) ([]model.Member, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new membership repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Add(ctx context.Context, member *model.Member) error {
	err := r.db.WithContext(ctx).Create(member).Error
	if dberrors.IsUniqueViolation(err) {
		return model.ErrAlreadyMember
	}
	return err
}

func (r *repository) Exists(ctx context.Context, teamID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Member{}).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) IsCaptain(ctx context.Context, teamID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Member{}).
		Where("team_id = ? AND user_id = ? AND is_captain = ?", teamID, userID, true).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) ListByTeam(ctx context.Context, teamID string) ([]model.Member, error) {
	var members []model.Member
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("is_captain DESC").
		Order("joined_at ASC").
		Order("user_id ASC").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	if members == nil {
		return []model.Member{}, nil
	}
	return members, nil
}
