package model

import "github.com/festy23/team_recruitment/pkg/apperr"

var (
	// ErrRequestNotFound indicates that the recruitment request does not exist.
	ErrRequestNotFound = apperr.New(apperr.KindNotFound, "REQUEST_NOT_FOUND", "recruitment request not found")
	// ErrNotCaptain indicates that only the team captain may invite.
	ErrNotCaptain = apperr.New(apperr.KindForbidden, "NOT_CAPTAIN", "only the team captain can invite members")
	// ErrCannotRespond indicates that the caller is not allowed to resolve the request.
	ErrCannotRespond = apperr.New(apperr.KindForbidden, "FORBIDDEN", "caller may not respond to this request")
	// ErrCannotView indicates that the caller is not allowed to read the request(s).
	ErrCannotView = apperr.New(apperr.KindForbidden, "FORBIDDEN", "caller may not view these requests")
	// ErrDuplicateRequest indicates a pending request already exists for the pair.
	ErrDuplicateRequest = apperr.New(apperr.KindConflict, "DUPLICATE_REQUEST", "a pending request already exists for this user and team")
	// ErrAlreadyResolved indicates the request has already left the pending state.
	ErrAlreadyResolved = apperr.New(apperr.KindConflict, "ALREADY_RESOLVED", "request has already been resolved")
	// ErrNotRecruiting indicates the team is not accepting join-requests.
	ErrNotRecruiting = apperr.New(apperr.KindInvalid, "NOT_RECRUITING", "team is not looking for members")
	// ErrWrongKind indicates the request was answered through the endpoint of the other kind.
	ErrWrongKind = apperr.New(apperr.KindInvalid, "INVALID_TRANSITION", "request kind does not match this operation")
	// ErrInvalidStatus indicates a respond status other than accepted or rejected.
	ErrInvalidStatus = apperr.New(apperr.KindInvalid, "INVALID_STATUS", "status must be accepted or rejected")
	// ErrInvalidStatusFilter indicates an unknown status filter.
	ErrInvalidStatusFilter = apperr.New(apperr.KindInvalid, "INVALID_STATUS", "status must be pending, accepted or rejected")
	// ErrCompetitionMismatch indicates the given competition is not the team's competition.
	ErrCompetitionMismatch = apperr.New(apperr.KindInvalid, "COMPETITION_MISMATCH", "competition_id does not match the team's competition")
	// ErrTargetRequired indicates a missing invitee.
	ErrTargetRequired = apperr.New(apperr.KindInvalid, "INVALID_REQUEST", "user_id is required")
)
