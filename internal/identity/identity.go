// Package identity carries the verified caller of every request.
package identity

import (
	"context"
	"strings"
)

// Role is the caller's platform role.
type Role string

// Roles known to the service. Organizer, federation and admin are authority roles.
const (
	RoleMember     Role = "member"
	RoleOrganizer  Role = "organizer"
	RoleFederation Role = "federation"
	RoleAdmin      Role = "admin"
)

// ParseRole normalizes a role string. An empty string means RoleMember.
func ParseRole(s string) (Role, bool) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case "":
		return RoleMember, true
	case RoleMember, RoleOrganizer, RoleFederation, RoleAdmin:
		return r, true
	default:
		return "", false
	}
}

// IsAuthority reports whether the role may oversee recruitment and decide applications.
func (r Role) IsAuthority() bool {
	return r == RoleOrganizer || r == RoleFederation || r == RoleAdmin
}

// Actor is the verified (user, role) pair attached to a call.
type Actor struct {
	UserID string
	Role   Role
}

// IsAuthority reports whether the actor holds an authority role.
func (a Actor) IsAuthority() bool {
	return a.Role.IsAuthority()
}

type actorKey struct{}

// WithActor returns a copy of ctx carrying actor.
func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// FromContext returns the actor stored in ctx.
func FromContext(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(Actor)
	return actor, ok
}
