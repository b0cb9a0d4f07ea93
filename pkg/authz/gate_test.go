package authz_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ecmarket/shopclient/pkg/authz"
	"github.com/ecmarket/shopclient/pkg/session"
)

func authenticated(role session.Role) session.State {
	return session.State{
		Status: session.StatusAuthenticated,
		Identity: &session.Identity{
			ID:       uuid.New(),
			Username: "alice",
			Email:    "alice@example.com",
			Role:     role,
		},
		Credential: "tok",
		Generation: 1,
	}
}

func TestDecide(t *testing.T) {
	t.Parallel()

	unauthenticated := session.State{Status: session.StatusUnauthenticated, Generation: 1}
	resolving := session.State{Status: session.StatusResolving}

	tests := []struct {
		name     string
		state    session.State
		required authz.Capability
		want     authz.Decision
	}{
		{
			name:     "resolving is pending",
			state:    resolving,
			required: authz.CapabilitySeller,
			want:     authz.Decision{Outcome: authz.OutcomePending},
		},
		{
			name:     "resolving is pending even without capability",
			state:    resolving,
			required: authz.CapabilityNone,
			want:     authz.Decision{Outcome: authz.OutcomePending},
		},
		{
			name:     "unauthenticated buyer requirement redirects to login",
			state:    unauthenticated,
			required: authz.CapabilityBuyer,
			want:     authz.Decision{Outcome: authz.OutcomeDeny, Redirect: authz.TargetLogin},
		},
		{
			name:     "unauthenticated protected view redirects to login",
			state:    unauthenticated,
			required: authz.CapabilityNone,
			want:     authz.Decision{Outcome: authz.OutcomeDeny, Redirect: authz.TargetLogin},
		},
		{
			name:     "authenticated without capability requirement",
			state:    authenticated(session.RoleBuyer),
			required: authz.CapabilityNone,
			want:     authz.Decision{Outcome: authz.OutcomeAllow},
		},
		{
			name:     "seller allowed for seller views",
			state:    authenticated(session.RoleSeller),
			required: authz.CapabilitySeller,
			want:     authz.Decision{Outcome: authz.OutcomeAllow},
		},
		{
			name:     "seller denied admin views",
			state:    authenticated(session.RoleSeller),
			required: authz.CapabilityAdmin,
			want:     authz.Decision{Outcome: authz.OutcomeDeny, Redirect: authz.TargetHome},
		},
		{
			name:     "admin allowed everywhere",
			state:    authenticated(session.RoleAdmin),
			required: authz.CapabilitySeller,
			want:     authz.Decision{Outcome: authz.OutcomeAllow},
		},
		{
			name:     "buyer denied seller views",
			state:    authenticated(session.RoleBuyer),
			required: authz.CapabilitySeller,
			want:     authz.Decision{Outcome: authz.OutcomeDeny, Redirect: authz.TargetHome},
		},
		{
			name:     "seller is not a superset of buyer",
			state:    authenticated(session.RoleSeller),
			required: authz.CapabilityBuyer,
			want:     authz.Decision{Outcome: authz.OutcomeDeny, Redirect: authz.TargetHome},
		},
		{
			name:     "admin allowed for buyer views",
			state:    authenticated(session.RoleAdmin),
			required: authz.CapabilityBuyer,
			want:     authz.Decision{Outcome: authz.OutcomeAllow},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, authz.Decide(tt.state, tt.required))
		})
	}
}

func TestDecide_Deterministic(t *testing.T) {
	t.Parallel()

	state := authenticated(session.RoleSeller)
	first := authz.Decide(state, authz.CapabilityAdmin)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, authz.Decide(state, authz.CapabilityAdmin))
	}
}

func TestDecision_Allowed(t *testing.T) {
	t.Parallel()

	assert.True(t, authz.Decision{Outcome: authz.OutcomeAllow}.Allowed())
	assert.False(t, authz.Decision{Outcome: authz.OutcomeDeny}.Allowed())
	assert.False(t, authz.Decision{Outcome: authz.OutcomePending}.Allowed())
}
