// Package model provides domain models and DTOs for competition applications.
package model

import "time"

// Status is the approval state of an application.
type Status string

// Application statuses. Approved and rejected are terminal.
const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// IsTerminal reports whether no further transition is allowed.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// ParseDecision accepts only the statuses an authority may set.
func ParseDecision(s string) (Status, bool) {
	switch st := Status(s); st {
	case StatusApproved, StatusRejected:
		return st, true
	default:
		return "", false
	}
}

// ParseStatusFilter accepts any status or an empty string meaning "all".
func ParseStatusFilter(s string) (Status, bool) {
	switch st := Status(s); st {
	case "", StatusPending, StatusApproved, StatusRejected:
		return st, true
	default:
		return "", false
	}
}

// Application is a team's entry into a competition. One per (team, competition).
type Application struct {
	ID            string     `gorm:"primaryKey;column:id;type:varchar(64)" json:"id"`
	UserID        string     `gorm:"column:user_id;type:varchar(64);not null" json:"user_id"`
	TeamID        string     `gorm:"column:team_id;type:varchar(64);not null;uniqueIndex:applications_team_competition_unique,priority:1" json:"team_id"`
	CompetitionID string     `gorm:"column:competition_id;type:varchar(64);not null;uniqueIndex:applications_team_competition_unique,priority:2;index:idx_applications_competition_status,priority:1" json:"competition_id"`
	Status        Status     `gorm:"column:status;type:varchar(16);not null;index:idx_applications_competition_status,priority:2" json:"status"`
	DecidedBy     *string    `gorm:"column:decided_by;type:varchar(64)" json:"decided_by,omitempty"`
	DecidedAt     *time.Time `gorm:"column:decided_at" json:"decided_at,omitempty"`
	CreatedAt     time.Time  `gorm:"column:created_at;not null" json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Application) TableName() string {
	return "applications"
}

// IsPending reports whether the application awaits a decision.
func (a *Application) IsPending() bool {
	return a.Status == StatusPending
}
