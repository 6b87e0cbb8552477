package model

import "github.com/festy23/team_recruitment/pkg/apperr"

var (
	// ErrApplicationNotFound is returned when application is not found.
	ErrApplicationNotFound = apperr.New(apperr.KindNotFound, "APPLICATION_NOT_FOUND", "application not found")

	// ErrApplicationExists is returned when the team already applied to the competition.
	ErrApplicationExists = apperr.New(apperr.KindConflict, "APPLICATION_EXISTS", "team already applied to this competition")

	// ErrNotCaptain is returned when a non-captain submits an application.
	ErrNotCaptain = apperr.New(apperr.KindForbidden, "NOT_CAPTAIN", "only the team captain can submit an application")

	// ErrNotAuthority is returned when a caller without an authority role decides or lists applications.
	ErrNotAuthority = apperr.New(apperr.KindForbidden, "FORBIDDEN", "competition authority role required")

	// ErrCannotView is returned when the caller may not read the application.
	ErrCannotView = apperr.New(apperr.KindForbidden, "FORBIDDEN", "not allowed to view this application")

	// ErrAlreadyDecided is returned when the application is no longer pending.
	ErrAlreadyDecided = apperr.New(apperr.KindInvalid, "INVALID_TRANSITION", "application is already decided")

	// ErrInvalidStatus is returned for a decision other than approved or rejected.
	ErrInvalidStatus = apperr.New(apperr.KindInvalid, "INVALID_STATUS", "status must be approved or rejected")

	// ErrInvalidStatusFilter is returned for an unknown status query parameter.
	ErrInvalidStatusFilter = apperr.New(apperr.KindInvalid, "INVALID_STATUS", "status must be pending, approved or rejected")

	// ErrCompetitionMismatch is returned when the competition differs from the team's.
	ErrCompetitionMismatch = apperr.New(apperr.KindInvalid, "COMPETITION_MISMATCH", "team is not formed for this competition")

	// ErrTeamRequired is returned when team_id is missing.
	ErrTeamRequired = apperr.New(apperr.KindInvalid, "INVALID_REQUEST", "team_id is required")
)
