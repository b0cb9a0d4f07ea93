package cart_test

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/ecmarket/shopclient/pkg/api"
	"github.com/ecmarket/shopclient/pkg/broadcast"
	"github.com/ecmarket/shopclient/pkg/session"
)

type mockAPI struct {
	mock.Mock
}

func (m *mockAPI) CartItems(ctx context.Context, token string) ([]api.CartItem, error) {
	args := m.Called(ctx, token)
	items, _ := args.Get(0).([]api.CartItem)
	return items, args.Error(1)
}

func (m *mockAPI) AddCartItem(ctx context.Context, token string, productID uuid.UUID, quantity int) error {
	args := m.Called(ctx, token, productID, quantity)
	return args.Error(0)
}

func (m *mockAPI) UpdateCartItem(ctx context.Context, token string, productID uuid.UUID, quantity int) error {
	args := m.Called(ctx, token, productID, quantity)
	return args.Error(0)
}

func (m *mockAPI) RemoveCartItem(ctx context.Context, token string, productID uuid.UUID) error {
	args := m.Called(ctx, token, productID)
	return args.Error(0)
}

func (m *mockAPI) ClearCart(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

// stubSessions is a controllable session source. Tests set the state
// directly and publish change signals through a real broadcaster.
type stubSessions struct {
	mu    sync.Mutex
	state session.State
	bus   *broadcast.MemoryBroadcaster[session.State]
}

func newStubSessions(initial session.State) *stubSessions {
	return &stubSessions{
		state: initial,
		bus:   broadcast.NewMemoryBroadcaster[session.State](16),
	}
}

func (s *stubSessions) Current() session.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *stubSessions) Subscribe(ctx context.Context) broadcast.Subscriber[session.State] {
	return s.bus.Subscribe(ctx)
}

// set replaces the state and broadcasts a change signal.
func (s *stubSessions) set(ctx context.Context, state session.State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
	_ = s.bus.Broadcast(ctx, broadcast.Message[session.State]{Data: state})
}

func authenticatedState(generation uint64) session.State {
	return session.State{
		Status: session.StatusAuthenticated,
		Identity: &session.Identity{
			ID:       uuid.New(),
			Username: "shopper",
			Email:    "shopper@example.com",
			Role:     session.RoleBuyer,
		},
		Credential: "tok",
		Generation: generation,
	}
}

func unauthenticatedState(generation uint64) session.State {
	return session.State{
		Status:     session.StatusUnauthenticated,
		Generation: generation,
	}
}
