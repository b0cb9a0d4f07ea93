package cart

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/ecmarket/shopclient/pkg/api"
	"github.com/ecmarket/shopclient/pkg/broadcast"
	"github.com/ecmarket/shopclient/pkg/logger"
	"github.com/ecmarket/shopclient/pkg/notify"
	"github.com/ecmarket/shopclient/pkg/session"
	"github.com/ecmarket/shopclient/pkg/statemachine"
)

// API is the slice of the marketplace surface the cache depends on.
// *api.Client satisfies it.
type API interface {
	CartItems(ctx context.Context, token string) ([]api.CartItem, error)
	AddCartItem(ctx context.Context, token string, productID uuid.UUID, quantity int) error
	UpdateCartItem(ctx context.Context, token string, productID uuid.UUID, quantity int) error
	RemoveCartItem(ctx context.Context, token string, productID uuid.UUID) error
	ClearCart(ctx context.Context, token string) error
}

// Sessions is what the cache needs from the session layer. *session.Manager
// satisfies it.
type Sessions interface {
	Current() session.State
	Subscribe(ctx context.Context) broadcast.Subscriber[session.State]
}

const (
	stateEmpty   = statemachine.StringState(StatusEmpty)
	stateLoading = statemachine.StringState(StatusLoading)
	stateReady   = statemachine.StringState(StatusReady)
	stateError   = statemachine.StringState(StatusError)

	eventFetchStarted   = statemachine.StringEvent("fetch_started")
	eventFetchSucceeded = statemachine.StringEvent("fetch_succeeded")
	eventFetchFailed    = statemachine.StringEvent("fetch_failed")
	eventSessionCleared = statemachine.StringEvent("session_cleared")
)

// Cache mirrors the server-side cart for the current session. The server is
// the source of truth: every mutation writes to the server first and, on
// success, refetches the full cart. The mirror is never patched locally.
//
// Fetch completions carry the session generation observed when the fetch was
// issued. A completion whose tag no longer matches the live generation is
// discarded, so responses belonging to an ended session can never overwrite
// the mirror.
type Cache struct {
	api      API
	sessions Sessions
	notifier notify.Notifier
	machine  *statemachine.Machine
	log      *slog.Logger

	mu         sync.Mutex
	items      []Item
	lastErr    error
	generation uint64
}

// Option configures a Cache.
type Option func(*Cache)

// WithNotifier sets the notifier used for user-facing mutation feedback.
func WithNotifier(n notify.Notifier) Option {
	return func(c *Cache) {
		c.notifier = n
	}
}

// WithLogger sets the logger. Defaults to a discard logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Cache) {
		if log != nil {
			c.log = log
		}
	}
}

// NewCache creates a cart cache bound to the given API and session layer.
// The cache starts empty; call Run to keep it synchronized with session
// changes.
func NewCache(apiClient API, sessions Sessions, opts ...Option) *Cache {
	c := &Cache{
		api:      apiClient,
		sessions: sessions,
		notifier: notify.Noop{},
		log:      logger.NewDiscard(),
	}
	for _, opt := range opts {
		opt(c)
	}

	sameGeneration := func(_ statemachine.State, _ statemachine.Event, data any) bool {
		tag, ok := data.(uint64)
		return ok && tag == c.sessions.Current().Generation
	}

	m := statemachine.New(stateEmpty)
	states := []statemachine.State{stateEmpty, stateLoading, stateReady, stateError}
	for _, from := range states {
		m.AddTransition(from, stateLoading, eventFetchStarted)
		m.AddTransition(from, stateEmpty, eventSessionCleared)
	}
	m.AddTransition(stateLoading, stateReady, eventFetchSucceeded, sameGeneration)
	m.AddTransition(stateLoading, stateError, eventFetchFailed, sameGeneration)
	c.machine = m

	return c
}

// Run keeps the cache synchronized with session changes until ctx is
// cancelled. A transition into an authenticated session triggers a fetch; a
// transition out clears the mirror locally without any network traffic.
// Run blocks and is intended to be launched in its own goroutine.
func (c *Cache) Run(ctx context.Context) {
	sub := c.sessions.Subscribe(ctx)
	defer sub.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-sub.Receive(ctx):
			if !ok {
				return
			}
			c.onSessionChange(ctx)
		}
	}
}

// onSessionChange reconciles the mirror against the live session state. It
// re-reads the owner instead of trusting the broadcast payload, so dropped
// intermediate signals cannot leave the mirror behind.
func (c *Cache) onSessionChange(ctx context.Context) {
	st := c.sessions.Current()
	switch {
	case st.IsAuthenticated():
		c.mu.Lock()
		upToDate := c.generation == st.Generation
		c.mu.Unlock()
		if upToDate {
			// Same credential epoch, e.g. a role change. Nothing to fetch.
			return
		}
		c.refetch(ctx, st)
	case st.Status == session.StatusUnauthenticated:
		c.clearLocal(st.Generation)
	default:
		// Resolving: wait for the session to settle.
	}
}

// Refresh refetches the cart for the current session. It is a no-op when the
// session is not authenticated.
func (c *Cache) Refresh(ctx context.Context) {
	st := c.sessions.Current()
	if !st.IsAuthenticated() {
		return
	}
	c.refetch(ctx, st)
}

// Add puts quantity units of a product into the cart. The server is written
// first; the mirror updates only through the follow-up refetch.
func (c *Cache) Add(ctx context.Context, productID uuid.UUID, quantity int) error {
	st, err := c.requireSession(ctx, "Please login to add items to your cart")
	if err != nil {
		return err
	}
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	if err := c.api.AddCartItem(ctx, st.Credential, productID, quantity); err != nil {
		c.log.ErrorContext(ctx, "add to cart failed", slog.String("product_id", productID.String()), logger.Error(err))
		notify.Error(ctx, c.notifier, "Failed to add product to cart")
		return err
	}

	notify.Success(ctx, c.notifier, "Product added to cart")
	c.refetch(ctx, st)
	return nil
}

// Update sets the quantity of a product already in the cart.
func (c *Cache) Update(ctx context.Context, productID uuid.UUID, quantity int) error {
	st, err := c.requireSession(ctx, "Please login to update your cart")
	if err != nil {
		return err
	}
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	if err := c.api.UpdateCartItem(ctx, st.Credential, productID, quantity); err != nil {
		c.log.ErrorContext(ctx, "update cart item failed", slog.String("product_id", productID.String()), logger.Error(err))
		notify.Error(ctx, c.notifier, "Failed to update cart")
		return err
	}

	c.refetch(ctx, st)
	return nil
}

// Remove deletes a product from the cart.
func (c *Cache) Remove(ctx context.Context, productID uuid.UUID) error {
	st, err := c.requireSession(ctx, "Please login to update your cart")
	if err != nil {
		return err
	}

	if err := c.api.RemoveCartItem(ctx, st.Credential, productID); err != nil {
		c.log.ErrorContext(ctx, "remove cart item failed", slog.String("product_id", productID.String()), logger.Error(err))
		notify.Error(ctx, c.notifier, "Failed to remove item from cart")
		return err
	}

	notify.Success(ctx, c.notifier, "Item removed from cart")
	c.refetch(ctx, st)
	return nil
}

// Clear removes every item from the cart. On success the follow-up refetch
// lands the mirror in StatusReady with zero items.
func (c *Cache) Clear(ctx context.Context) error {
	st, err := c.requireSession(ctx, "Please login to update your cart")
	if err != nil {
		return err
	}

	if err := c.api.ClearCart(ctx, st.Credential); err != nil {
		c.log.ErrorContext(ctx, "clear cart failed", logger.Error(err))
		notify.Error(ctx, c.notifier, "Failed to clear cart")
		return err
	}

	notify.Success(ctx, c.notifier, "Cart cleared")
	c.refetch(ctx, st)
	return nil
}

// Items returns a copy of the mirrored cart lines.
func (c *Cache) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}

// Status returns the mirror lifecycle state.
func (c *Cache) Status() Status {
	return Status(c.machine.Current().Name())
}

// Err returns the error recorded by the last failed fetch, or nil.
func (c *Cache) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// requireSession returns the current session state when it is authenticated.
// Otherwise it reports the given message through the notifier and returns
// ErrAuthenticationRequired without touching the network.
func (c *Cache) requireSession(ctx context.Context, msg string) (session.State, error) {
	st := c.sessions.Current()
	if !st.IsAuthenticated() {
		notify.Error(ctx, c.notifier, msg)
		return session.State{}, ErrAuthenticationRequired
	}
	return st, nil
}

// refetch replaces the mirror with a fresh server read. The completion is
// discarded when the session generation moved on while the request was in
// flight; whatever session change caused the move is responsible for the
// mirror's next state.
func (c *Cache) refetch(ctx context.Context, st session.State) {
	tag := st.Generation

	c.mu.Lock()
	if err := c.machine.Fire(eventFetchStarted, tag); err != nil {
		c.mu.Unlock()
		c.log.DebugContext(ctx, "fetch not started", logger.Generation(tag), logger.Error(err))
		return
	}
	c.mu.Unlock()

	items, err := c.api.CartItems(ctx, st.Credential)

	c.mu.Lock()

	if err != nil {
		if fireErr := c.machine.Fire(eventFetchFailed, tag); fireErr != nil {
			c.mu.Unlock()
			c.log.DebugContext(ctx, "stale fetch failure discarded", logger.Generation(tag))
			return
		}
		c.items = nil
		c.lastErr = err
		c.generation = tag
		c.mu.Unlock()
		c.log.ErrorContext(ctx, "cart fetch failed", logger.Generation(tag), logger.Error(err))
		notify.Error(ctx, c.notifier, "Failed to fetch cart")
		return
	}

	if fireErr := c.machine.Fire(eventFetchSucceeded, tag); fireErr != nil {
		c.mu.Unlock()
		c.log.DebugContext(ctx, "stale fetch result discarded", logger.Generation(tag))
		return
	}
	c.items = itemsFromAPI(items)
	c.lastErr = nil
	c.generation = tag
	c.mu.Unlock()
}

// clearLocal empties the mirror without network traffic.
func (c *Cache) clearLocal(generation uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.machine.Fire(eventSessionCleared, nil); err != nil {
		return
	}
	c.items = nil
	c.lastErr = nil
	c.generation = generation
}
