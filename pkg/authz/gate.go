package authz

import "github.com/ecmarket/shopclient/pkg/session"

// Capability is the access requirement attached to a protected view.
// CapabilityNone means any authenticated user qualifies.
type Capability string

const (
	CapabilityNone   Capability = ""
	CapabilityBuyer  Capability = Capability(session.RoleBuyer)
	CapabilitySeller Capability = Capability(session.RoleSeller)
	CapabilityAdmin  Capability = Capability(session.RoleAdmin)
)

// Outcome is the gate's verdict class.
type Outcome string

const (
	// OutcomePending means the session is still resolving; the caller
	// should show a neutral loading view and not decide yet.
	OutcomePending Outcome = "pending"

	// OutcomeAllow grants access.
	OutcomeAllow Outcome = "allow"

	// OutcomeDeny refuses access; Decision.Redirect names where to send
	// the user instead.
	OutcomeDeny Outcome = "deny"
)

// Target is a redirect destination for denied access.
type Target string

const (
	// TargetLogin is used for unauthenticated access to protected views.
	TargetLogin Target = "login"

	// TargetHome is used for authenticated users lacking the capability.
	TargetHome Target = "home"
)

// Decision is the gate's answer for one (state, capability) pair.
type Decision struct {
	Outcome  Outcome
	Redirect Target // set only when Outcome is OutcomeDeny
}

// Allowed reports whether access was granted.
func (d Decision) Allowed() bool { return d.Outcome == OutcomeAllow }

var (
	pending      = Decision{Outcome: OutcomePending}
	allow        = Decision{Outcome: OutcomeAllow}
	denyToLogin  = Decision{Outcome: OutcomeDeny, Redirect: TargetLogin}
	denyToHome   = Decision{Outcome: OutcomeDeny, Redirect: TargetHome}
)

// Decide gates a protected view. It is a pure function of its inputs:
// deterministic, idempotent, no side effects, no clock.
//
// While the session resolves, the verdict is Pending. Unauthenticated
// users are sent to login. Authenticated users pass when the view needs no
// particular capability, when their role matches the required one, or when
// they are admin — admin is a superset capability, not a hierarchy level
// (there is no seller⊃buyer relation). Everyone else is sent home.
func Decide(state session.State, required Capability) Decision {
	switch state.Status {
	case session.StatusResolving:
		return pending
	case session.StatusAuthenticated:
		// Fall through below.
	default:
		return denyToLogin
	}

	if state.Identity == nil {
		// Defensive: an authenticated state always carries an identity.
		return denyToLogin
	}

	if required == CapabilityNone {
		return allow
	}
	if state.Identity.Role == session.Role(required) || state.Identity.Role == session.RoleAdmin {
		return allow
	}
	return denyToHome
}
