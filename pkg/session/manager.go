package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/ecmarket/shopclient/pkg/api"
	"github.com/ecmarket/shopclient/pkg/broadcast"
	"github.com/ecmarket/shopclient/pkg/credstore"
	"github.com/ecmarket/shopclient/pkg/logger"
	"github.com/ecmarket/shopclient/pkg/statemachine"
	"github.com/ecmarket/shopclient/pkg/validate"
)

// API is the slice of the REST surface the session manager depends on.
// *api.Client satisfies it.
type API interface {
	Login(ctx context.Context, username, password string) (api.LoginResponse, error)
	Register(ctx context.Context, username, email, password string) error
	Me(ctx context.Context, token string) (api.User, error)
	UpdateRole(ctx context.Context, token, role string) (api.User, error)
}

const (
	stateResolving       = statemachine.StringState(StatusResolving)
	stateAuthenticated   = statemachine.StringState(StatusAuthenticated)
	stateUnauthenticated = statemachine.StringState(StatusUnauthenticated)

	eventResolved      = statemachine.StringEvent("resolved")
	eventResolveFailed = statemachine.StringEvent("resolve_failed")
	eventLoggedIn      = statemachine.StringEvent("logged_in")
	eventLoggedOut     = statemachine.StringEvent("logged_out")
	eventRoleChanged   = statemachine.StringEvent("role_changed")
)

// Manager owns session state: it is the sole writer of the credential
// store and the only component that resolves credentials to identities.
// Exactly one Manager exists per running client. All other components read
// session state through Current or Subscribe.
type Manager struct {
	api     API
	creds   credstore.Store
	machine *statemachine.Machine
	bus     *broadcast.MemoryBroadcaster[State]
	log     *slog.Logger

	mu    sync.Mutex
	state State
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the manager's logger.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// New creates a Manager parked in StatusResolving. Callers run Resolve
// once at startup to leave it.
func New(apiClient API, creds credstore.Store, opts ...Option) *Manager {
	m := &Manager{
		api:   apiClient,
		creds: creds,
		bus:   broadcast.NewMemoryBroadcaster[State](16),
		log:   logger.NewDiscard(),
		state: State{Status: StatusResolving},
	}
	for _, opt := range opts {
		opt(m)
	}

	// Generation guard: a completion tagged with a generation that is no
	// longer current is rejected, which apply treats as a discard. Guards
	// run while m.mu is held by apply.
	sameGeneration := func(_ statemachine.State, _ statemachine.Event, data any) bool {
		tag, ok := data.(uint64)
		return ok && tag == m.state.Generation
	}

	machine := statemachine.New(stateResolving)
	mustAdd := func(from, to statemachine.StringState, event statemachine.StringEvent, guards ...statemachine.Guard) {
		if err := machine.AddTransition(from, to, event, guards...); err != nil {
			panic(err)
		}
	}

	mustAdd(stateResolving, stateAuthenticated, eventResolved, sameGeneration)
	mustAdd(stateResolving, stateUnauthenticated, eventResolveFailed, sameGeneration)

	// Login is deliberately not coalesced: a second concurrent login races
	// and the last response to land wins, from any state.
	for _, from := range []statemachine.StringState{stateResolving, stateAuthenticated, stateUnauthenticated} {
		mustAdd(from, stateAuthenticated, eventLoggedIn)
		mustAdd(from, stateUnauthenticated, eventLoggedOut)
	}

	mustAdd(stateAuthenticated, stateAuthenticated, eventRoleChanged, sameGeneration)

	m.machine = machine
	return m
}

// Current returns a snapshot of the session state.
func (m *Manager) Current() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.clone()
}

// Subscribe returns a subscriber that receives a snapshot after every
// applied transition. Receivers should treat messages as change signals
// and re-read Current when exactness matters.
func (m *Manager) Subscribe(ctx context.Context) broadcast.Subscriber[State] {
	return m.bus.Subscribe(ctx)
}

// Close shuts down the change broadcast. The manager itself holds no other
// resources.
func (m *Manager) Close() error {
	return m.bus.Close()
}

// Resolve performs the startup identity resolution and returns the
// resulting state. With no stored credential it lands Unauthenticated
// without touching the network. With one, it issues exactly one identity
// request; any failure (expired token, garbage token, network) clears the
// credential and lands Unauthenticated. Failures are recovered silently —
// they are state transitions, not errors.
func (m *Manager) Resolve(ctx context.Context) State {
	m.mu.Lock()
	startGen := m.state.Generation
	m.mu.Unlock()

	credential, err := m.creds.Get(ctx)
	if err != nil {
		if !errors.Is(err, credstore.ErrNoCredential) {
			m.log.Warn("credential store read failed", logger.Error(err))
		}
		m.apply(ctx, eventResolveFailed, startGen, func(s *State) {
			s.Identity = nil
			s.Credential = ""
			s.Generation++
		})
		return m.Current()
	}

	user, err := m.api.Me(ctx, credential)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			m.log.Debug("stored credential rejected, clearing")
		} else {
			m.log.Warn("identity resolution failed, clearing credential", logger.Error(err))
		}
		if clearErr := m.creds.Clear(ctx); clearErr != nil {
			m.log.Warn("credential store clear failed", logger.Error(clearErr))
		}
		m.apply(ctx, eventResolveFailed, startGen, func(s *State) {
			s.Identity = nil
			s.Credential = ""
			s.Generation++
		})
		return m.Current()
	}

	identity := identityFromUser(user)
	m.apply(ctx, eventResolved, startGen, func(s *State) {
		s.Identity = &identity
		s.Credential = credential
		s.Generation++
	})
	return m.Current()
}

// Login authenticates with the marketplace. On success the returned
// credential and identity are stored atomically and the session becomes
// Authenticated. On failure the session is left exactly as it was and the
// error is surfaced; there are no retries. Concurrent logins are not
// coalesced — the last response to land wins.
func (m *Manager) Login(ctx context.Context, username, password string) (Identity, error) {
	if err := validate.Apply(
		validate.Required("username", username),
		validate.Required("password", password),
	); err != nil {
		return Identity{}, err
	}

	resp, err := m.api.Login(ctx, username, password)
	if err != nil {
		return Identity{}, err
	}

	if err := m.creds.Set(ctx, resp.AccessToken); err != nil {
		// Session continues in memory; it is simply lost on restart.
		m.log.Warn("credential store write failed", logger.Error(err))
	}

	identity := identityFromUser(resp.User)
	m.apply(ctx, eventLoggedIn, nil, func(s *State) {
		s.Identity = &identity
		s.Credential = resp.AccessToken
		s.Generation++
	})

	m.log.Info("logged in",
		logger.UserID(identity.ID),
		logger.Role(identity.Role),
	)
	return identity, nil
}

// Register creates an account. Inputs are validated before anything goes
// on the wire; validate.Extract recovers per-field details from the
// returned error. Register never authenticates and never chains into
// Login; registration and the follow-up login are two explicit caller
// steps. Server failures surface verbatim.
func (m *Manager) Register(ctx context.Context, username, email, password string) error {
	if err := validate.Apply(
		validate.Required("username", username),
		validate.MaxLen("username", username, 50),
		validate.Email("email", email),
		validate.MinLen("password", password, 6),
	); err != nil {
		return err
	}

	return m.api.Register(ctx, username, email, password)
}

// Logout ends the session locally: it clears the stored credential and
// identity and transitions to Unauthenticated. It never touches the
// network and cannot fail.
func (m *Manager) Logout() {
	ctx := context.Background()
	if err := m.creds.Clear(ctx); err != nil {
		m.log.Warn("credential store clear failed", logger.Error(err))
	}

	m.apply(ctx, eventLoggedOut, nil, func(s *State) {
		s.Identity = nil
		s.Credential = ""
		s.Generation++
	})
	m.log.Info("logged out")
}

// UpdateRole changes the authenticated user's role and replaces the stored
// identity with the server's response. On failure the session is left
// unchanged and the error propagates; nothing was applied optimistically
// so there is nothing to roll back. A response landing after the session
// ended or changed is discarded.
func (m *Manager) UpdateRole(ctx context.Context, role Role) (Identity, error) {
	if !role.Valid() {
		return Identity{}, ErrInvalidRole
	}

	snapshot := m.Current()
	if !snapshot.IsAuthenticated() {
		return Identity{}, ErrNotAuthenticated
	}

	user, err := m.api.UpdateRole(ctx, snapshot.Credential, string(role))
	if err != nil {
		return Identity{}, err
	}

	identity := identityFromUser(user)
	// The credential is untouched, so the generation stays: observers see
	// an identity change, not a new session.
	if !m.apply(ctx, eventRoleChanged, snapshot.Generation, func(s *State) {
		s.Identity = &identity
	}) {
		return Identity{}, ErrSessionEnded
	}

	m.log.Info("role updated", logger.UserID(identity.ID), logger.Role(identity.Role))
	return identity, nil
}

// apply fires the transition and, when it is accepted, mutates state and
// broadcasts the new snapshot. A discarded transition (stale completion)
// returns false and leaves everything untouched.
func (m *Manager) apply(ctx context.Context, event statemachine.Event, tag any, update func(*State)) bool {
	m.mu.Lock()
	if err := m.machine.Fire(event, tag); err != nil {
		m.mu.Unlock()
		if statemachine.IsDiscard(err) {
			m.log.Debug("stale session completion discarded", slog.String("event", event.Name()))
			return false
		}
		m.log.Error("session transition failed", slog.String("event", event.Name()), logger.Error(err))
		return false
	}

	update(&m.state)
	m.state.Status = Status(m.machine.Current().Name())
	snapshot := m.state.clone()
	m.mu.Unlock()

	_ = m.bus.Broadcast(ctx, broadcast.Message[State]{Data: snapshot})
	return true
}
