package model

import "github.com/festy23/team_recruitment/pkg/apperr"

// MaxNameLength is the longest accepted team name.
const MaxNameLength = 255

var (
	// ErrTeamNotFound indicates that the requested team does not exist.
	ErrTeamNotFound = apperr.New(apperr.KindNotFound, "TEAM_NOT_FOUND", "team not found")
	// ErrNoSlotsAvailable indicates that the team has no open slot left.
	ErrNoSlotsAvailable = apperr.New(apperr.KindConflict, "NO_SLOTS_AVAILABLE", "team has no available slots")
	// ErrInvalidTeamName indicates that the team name is empty or too long.
	ErrInvalidTeamName = apperr.New(apperr.KindInvalid, "INVALID_NAME", "team name must be 1-255 characters")
	// ErrInvalidSlots indicates a negative slot count.
	ErrInvalidSlots = apperr.New(apperr.KindInvalid, "INVALID_SLOTS", "available_slots must be non-negative")
	// ErrSlotsIncrease indicates an attempt to open more slots than the team has left.
	ErrSlotsIncrease = apperr.New(apperr.KindInvalid, "INVALID_SLOTS", "available_slots can only be lowered")
	// ErrCompetitionRequired indicates that no competition was given.
	ErrCompetitionRequired = apperr.New(apperr.KindInvalid, "INVALID_REQUEST", "competition_id is required")
	// ErrNotCaptain indicates that only the captain may change the team.
	ErrNotCaptain = apperr.New(apperr.KindForbidden, "NOT_CAPTAIN", "only the team captain can change recruitment settings")
)
