// Package model provides domain models and DTOs for the team registry.
package model

import "time"

// Team is a team formed for one competition together with its recruitment state.
// LookingForMembers is never true while AvailableSlots is zero.
type Team struct {
	ID                string    `gorm:"primaryKey;column:id;type:varchar(64)" json:"id"`
	Name              string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Description       string    `gorm:"column:description;type:text;not null" json:"description"`
	CompetitionID     string    `gorm:"column:competition_id;type:varchar(64);not null;index:idx_teams_competition_id" json:"competition_id"`
	LookingForMembers bool      `gorm:"column:looking_for_members;not null" json:"looking_for_members"`
	AvailableSlots    int       `gorm:"column:available_slots;not null;check:teams_available_slots_non_negative,available_slots >= 0" json:"available_slots"`
	RequiredRoles     string    `gorm:"column:required_roles;type:text;not null" json:"required_roles"`
	CreatedAt         time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}

// IsRecruiting reports whether the team currently accepts join-requests.
func (t *Team) IsRecruiting() bool {
	return t.LookingForMembers && t.AvailableSlots > 0
}

// NormalizeRecruitment forces recruitment closed when no slots remain.
func NormalizeRecruitment(lookingForMembers bool, availableSlots int) bool {
	return lookingForMembers && availableSlots > 0
}
