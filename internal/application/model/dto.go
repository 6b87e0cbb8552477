package model

import membershipModel "github.com/festy23/team_recruitment/internal/membership/model"

// SubmitApplicationRequest is the body of POST /applications.
// CompetitionID defaults to the team's competition.
type SubmitApplicationRequest struct {
	TeamID        string `json:"team_id" binding:"required"`
	CompetitionID string `json:"competition_id"`
}

// UpdateStatusRequest is the body of POST /applications/:application_id/status.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ApplicationView is an application with the roster read at the time of the call.
type ApplicationView struct {
	Application *Application             `json:"application"`
	Roster      []membershipModel.Member `json:"roster"`
}

// ApplicationsResponse wraps a list of applications.
type ApplicationsResponse struct {
	CompetitionID string        `json:"competition_id"`
	Applications  []Application `json:"applications"`
}
