package model

import teamModel "github.com/festy23/team_recruitment/internal/team/model"

// CreateInvitationRequest is the body of POST /teams/:team_id/invitations.
type CreateInvitationRequest struct {
	UserID        string `json:"user_id" binding:"required"`
	CompetitionID string `json:"competition_id"`
	Message       string `json:"message"`
}

// CreateJoinRequestRequest is the body of POST /teams/:team_id/join-requests.
type CreateJoinRequestRequest struct {
	CompetitionID string `json:"competition_id"`
	Message       string `json:"message"`
}

// RespondRequest is the body of the respond endpoints.
type RespondRequest struct {
	Status string `json:"status" binding:"required"`
}

// RespondResult is the resolved request together with the team state after resolution.
type RespondResult struct {
	Request *Request        `json:"request"`
	Team    *teamModel.Team `json:"team"`
}

// CheckResult reports whether a user could be invited to or request to join a team.
type CheckResult struct {
	IsMember       bool     `json:"is_member"`
	PendingRequest *Request `json:"pending_request"`
}

// RequestsResponse wraps a list of requests.
type RequestsResponse struct {
	Requests []Request `json:"requests"`
}
