// Package dbtest opens throwaway SQLite databases carrying the full schema.
package dbtest

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	applicationModel "github.com/festy23/team_recruitment/internal/application/model"
	"github.com/festy23/team_recruitment/internal/competition"
	membershipModel "github.com/festy23/team_recruitment/internal/membership/model"
	recruitmentModel "github.com/festy23/team_recruitment/internal/recruitment/model"
	teamModel "github.com/festy23/team_recruitment/internal/team/model"
)

// New returns an in-memory database with every table migrated. A single
// connection is used so all callers see the same database and transactions
// are serialized.
func New(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&competition.Competition{},
		&teamModel.Team{},
		&membershipModel.Member{},
		&recruitmentModel.Request{},
		&applicationModel.Application{},
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return db
}

// SeedCompetition inserts a competition and returns its ID.
func SeedCompetition(t *testing.T, db *gorm.DB, name string) string {
	t.Helper()

	c := competition.Competition{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, db.Create(&c).Error)
	return c.ID
}

// SeedTeam inserts a team with captainID as its captain and returns it.
func SeedTeam(t *testing.T, db *gorm.DB, competitionID, captainID string, slots int) *teamModel.Team {
	t.Helper()

	now := time.Now().UTC()
	team := &teamModel.Team{
		ID:                uuid.NewString(),
		Name:              "team-" + captainID,
		CompetitionID:     competitionID,
		LookingForMembers: slots > 0,
		AvailableSlots:    slots,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	require.NoError(t, db.Create(team).Error)
	require.NoError(t, db.Create(&membershipModel.Member{
		TeamID:    team.ID,
		UserID:    captainID,
		IsCaptain: true,
		JoinedAt:  now,
	}).Error)
	return team
}
