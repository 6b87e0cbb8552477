package model

import membershipModel "github.com/festy23/team_recruitment/internal/membership/model"

// CreateTeamRequest is the body of POST /teams. The caller becomes captain.
type CreateTeamRequest struct {
	Name              string `json:"name" binding:"required"`
	Description       string `json:"description"`
	CompetitionID     string `json:"competition_id" binding:"required"`
	LookingForMembers bool   `json:"looking_for_members"`
	AvailableSlots    int    `json:"available_slots"`
	RequiredRoles     string `json:"required_roles"`
}

// UpdateRecruitmentRequest is the body of PATCH /teams/:team_id/recruitment.
// A nil RequiredRoles keeps the current value.
type UpdateRecruitmentRequest struct {
	LookingForMembers bool    `json:"looking_for_members"`
	AvailableSlots    *int    `json:"available_slots" binding:"required"`
	RequiredRoles     *string `json:"required_roles"`
}

// TeamResponse is a team with its current roster.
type TeamResponse struct {
	Team    *Team                    `json:"team"`
	Members []membershipModel.Member `json:"members"`
}

// MembersResponse is the body of GET /teams/:team_id/members.
type MembersResponse struct {
	TeamID  string                   `json:"team_id"`
	Members []membershipModel.Member `json:"members"`
}
