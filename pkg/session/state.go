package session

import (
	"github.com/google/uuid"

	"github.com/ecmarket/shopclient/pkg/api"
)

// Role is a marketplace role. Admin is a superset capability for gating
// purposes; there is no seller/buyer inclusion relation.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

// Valid reports whether the role is one the marketplace knows.
func (r Role) Valid() bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleAdmin:
		return true
	}
	return false
}

// Status is the session lifecycle status.
type Status string

const (
	// StatusResolving means the stored credential is being resolved to an
	// identity. Initial status at startup.
	StatusResolving Status = "resolving"

	// StatusAuthenticated means a credential resolved to an identity.
	StatusAuthenticated Status = "authenticated"

	// StatusUnauthenticated means no valid credential is held.
	StatusUnauthenticated Status = "unauthenticated"
)

// Identity is the resolved user record. It is derived state: recomputed by
// resolving the current credential, never edited locally.
type Identity struct {
	ID       uuid.UUID
	Username string
	Email    string
	Role     Role
}

// State is a snapshot of the session. Identity and Credential are set
// exactly when Status is StatusAuthenticated. Generation is a monotonic
// counter bumped on every credential transition; asynchronous completions
// tagged with an older generation are discarded.
type State struct {
	Status     Status
	Identity   *Identity
	Credential string
	Generation uint64
}

// IsAuthenticated reports whether the session holds a resolved identity.
func (s State) IsAuthenticated() bool {
	return s.Status == StatusAuthenticated && s.Identity != nil
}

// clone returns a deep copy so callers can never mutate manager-owned
// state through the snapshot.
func (s State) clone() State {
	out := s
	if s.Identity != nil {
		identity := *s.Identity
		out.Identity = &identity
	}
	return out
}

func identityFromUser(user api.User) Identity {
	return Identity{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     Role(user.Role),
	}
}
