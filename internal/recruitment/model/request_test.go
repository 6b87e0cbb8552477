package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/festy23/team_recruitment/internal/identity"
)

func TestKind_CanRespond(t *testing.T) {
	invite := &Request{UserID: "invitee", InitiatedBy: "captain", Kind: KindInvite}
	join := &Request{UserID: "applicant", InitiatedBy: "applicant", Kind: KindJoinRequest}

	tests := []struct {
		name      string
		req       *Request
		actor     identity.Actor
		isCaptain bool
		want      bool
	}{
		{name: "invitee answers invitation", req: invite, actor: identity.Actor{UserID: "invitee"}, want: true},
		{name: "captain cannot answer own invitation", req: invite, actor: identity.Actor{UserID: "captain"}, isCaptain: true, want: false},
		{name: "authority cannot answer invitation", req: invite, actor: identity.Actor{UserID: "org", Role: identity.RoleOrganizer}, want: false},
		{name: "captain answers join-request", req: join, actor: identity.Actor{UserID: "captain"}, isCaptain: true, want: true},
		{name: "authority answers join-request", req: join, actor: identity.Actor{UserID: "fed", Role: identity.RoleFederation}, want: true},
		{name: "applicant cannot accept own join-request", req: join, actor: identity.Actor{UserID: "applicant"}, want: false},
		{name: "unknown kind", req: &Request{Kind: "other"}, actor: identity.Actor{UserID: "x", Role: identity.RoleAdmin}, isCaptain: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.Kind.CanRespond(tt.actor, tt.req, tt.isCaptain))
		})
	}
}

func TestParseDecision(t *testing.T) {
	for _, s := range []string{"accepted", "rejected"} {
		st, ok := ParseDecision(s)
		assert.True(t, ok, s)
		assert.True(t, st.IsTerminal())
	}
	for _, s := range []string{"", "pending", "ACCEPTED", "approved"} {
		_, ok := ParseDecision(s)
		assert.False(t, ok, s)
	}
}

func TestParseStatusFilter(t *testing.T) {
	for _, s := range []string{"", "pending", "accepted", "rejected"} {
		_, ok := ParseStatusFilter(s)
		assert.True(t, ok, s)
	}
	_, ok := ParseStatusFilter("done")
	assert.False(t, ok)
}

func TestRequest_VisibleTo(t *testing.T) {
	req := &Request{UserID: "invitee", InitiatedBy: "captain"}

	assert.True(t, req.VisibleTo(identity.Actor{UserID: "invitee"}, false))
	assert.True(t, req.VisibleTo(identity.Actor{UserID: "captain"}, false))
	assert.True(t, req.VisibleTo(identity.Actor{UserID: "new-captain"}, true))
	assert.True(t, req.VisibleTo(identity.Actor{UserID: "org", Role: identity.RoleAdmin}, false))
	assert.False(t, req.VisibleTo(identity.Actor{UserID: "stranger"}, false))
}
