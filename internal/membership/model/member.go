// Package model provides domain models for the membership ledger.
package model

import "time"

// Member is one (team, user) row of the ledger. A team has exactly one captain.
type Member struct {
	TeamID    string    `gorm:"primaryKey;column:team_id;type:varchar(64);uniqueIndex:idx_team_members_one_captain,where:is_captain = true" json:"team_id"`
	UserID    string    `gorm:"primaryKey;column:user_id;type:varchar(64);index:idx_team_members_user_id" json:"user_id"`
	IsCaptain bool      `gorm:"column:is_captain;not null" json:"is_captain"`
	JoinedAt  time.Time `gorm:"column:joined_at;not null" json:"joined_at"`
}

// TableName specifies the table name for GORM.
func (Member) TableName() string {
	return "team_members"
}
