// Package model provides domain models and DTOs for recruitment requests.
package model

import (
	"time"

	"github.com/festy23/team_recruitment/internal/identity"
)

// Kind distinguishes captain-initiated invitations from user-initiated join-requests.
type Kind string

// Request kinds.
const (
	KindInvite      Kind = "invite"
	KindJoinRequest Kind = "join_request"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k == KindInvite || k == KindJoinRequest
}

// CanRespond reports whether actor may resolve req. Invitations are answered
// by the invited user; join-requests by the team captain or an authority.
func (k Kind) CanRespond(actor identity.Actor, req *Request, isCaptain bool) bool {
	switch k {
	case KindInvite:
		return actor.UserID == req.UserID
	case KindJoinRequest:
		return isCaptain || actor.IsAuthority()
	default:
		return false
	}
}

// Status is the lifecycle state of a request. Accepted and rejected are terminal.
type Status string

// Request statuses.
const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// IsTerminal reports whether no further transition is allowed.
func (s Status) IsTerminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// ParseDecision accepts only the two terminal statuses a respond call may set.
func ParseDecision(s string) (Status, bool) {
	switch st := Status(s); st {
	case StatusAccepted, StatusRejected:
		return st, true
	default:
		return "", false
	}
}

// ParseStatusFilter accepts any status or an empty string meaning "all".
func ParseStatusFilter(s string) (Status, bool) {
	switch st := Status(s); st {
	case "", StatusPending, StatusAccepted, StatusRejected:
		return st, true
	default:
		return "", false
	}
}

// Request is a single recruitment request of either kind. At most one pending
// request exists per (team, user) pair.
type Request struct {
	ID            string     `gorm:"primaryKey;column:id;type:varchar(64)" json:"id"`
	TeamID        string     `gorm:"column:team_id;type:varchar(64);not null;uniqueIndex:idx_requests_pending_pair,priority:1,where:status = 'pending';index:idx_requests_team_status,priority:1" json:"team_id"`
	UserID        string     `gorm:"column:user_id;type:varchar(64);not null;uniqueIndex:idx_requests_pending_pair,priority:2,where:status = 'pending';index:idx_requests_user_status,priority:1" json:"user_id"`
	InitiatedBy   string     `gorm:"column:initiated_by;type:varchar(64);not null" json:"initiated_by"`
	Kind          Kind       `gorm:"column:kind;type:varchar(16);not null" json:"kind"`
	Status        Status     `gorm:"column:status;type:varchar(16);not null;index:idx_requests_team_status,priority:2;index:idx_requests_user_status,priority:2" json:"status"`
	CompetitionID string     `gorm:"column:competition_id;type:varchar(64);not null" json:"competition_id"`
	Message       string     `gorm:"column:message;type:text;not null" json:"message,omitempty"`
	ResolvedBy    *string    `gorm:"column:resolved_by;type:varchar(64)" json:"resolved_by,omitempty"`
	ResolvedAt    *time.Time `gorm:"column:resolved_at" json:"resolved_at,omitempty"`
	CreatedAt     time.Time  `gorm:"column:created_at;not null" json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Request) TableName() string {
	return "recruitment_requests"
}

// IsPending reports whether the request is still open.
func (r *Request) IsPending() bool {
	return r.Status == StatusPending
}

// VisibleTo reports whether actor may read the request.
func (r *Request) VisibleTo(actor identity.Actor, isCaptain bool) bool {
	return actor.UserID == r.UserID || actor.UserID == r.InitiatedBy || isCaptain || actor.IsAuthority()
}
