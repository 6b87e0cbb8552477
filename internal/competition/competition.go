// Package competition gives read-only access to the competition registry.
package competition

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/festy23/team_recruitment/pkg/apperr"
)

// ErrCompetitionNotFound is returned when a competition ID is unknown.
var ErrCompetitionNotFound = apperr.New(apperr.KindNotFound, "COMPETITION_NOT_FOUND", "competition not found")

// Competition is the registry row. The service references it by ID only.
type Competition struct {
	ID        string    `gorm:"primaryKey;column:id;type:varchar(64)" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Competition) TableName() string {
	return "competitions"
}

// Registry answers whether a competition exists.
type Registry interface {
	Exists(ctx context.Context, competitionID string) (bool, error)
}

type registry struct {
	db *gorm.DB
}

// NewRegistry creates a registry backed by the competitions table.
func NewRegistry(db *gorm.DB) Registry {
	return &registry{db: db}
}

func (r *registry) Exists(ctx context.Context, competitionID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Competition{}).
		Where("id = ?", competitionID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Require returns ErrCompetitionNotFound unless the competition exists.
func Require(ctx context.Context, reg Registry, competitionID string) error {
	ok, err := reg.Exists(ctx, competitionID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCompetitionNotFound
	}
	return nil
}
