package model

import "github.com/festy23/team_recruitment/pkg/apperr"

var (
	// ErrAlreadyMember indicates that the user already belongs to the team.
	ErrAlreadyMember = apperr.New(apperr.KindConflict, "ALREADY_MEMBER", "user is already a member of the team")
	// ErrInvalidMember indicates that team_id or user_id is empty.
	ErrInvalidMember = apperr.New(apperr.KindInvalid, "INVALID_REQUEST", "team_id and user_id are required")
)
