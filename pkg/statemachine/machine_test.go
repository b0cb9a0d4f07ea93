package statemachine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecmarket/shopclient/pkg/statemachine"
)

const (
	stateLoading = statemachine.StringState("loading")
	stateReady   = statemachine.StringState("ready")
	stateEmpty   = statemachine.StringState("empty")

	eventFetched = statemachine.StringEvent("fetched")
	eventCleared = statemachine.StringEvent("cleared")
)

func TestMachine_Fire(t *testing.T) {
	t.Parallel()

	t.Run("applies matching transition", func(t *testing.T) {
		t.Parallel()

		m := statemachine.New(stateLoading)
		require.NoError(t, m.AddTransition(stateLoading, stateReady, eventFetched))

		err := m.Fire(eventFetched, nil)
		assert.NoError(t, err)
		assert.Equal(t, stateReady, m.Current())
	})

	t.Run("no transition for event", func(t *testing.T) {
		t.Parallel()

		m := statemachine.New(stateReady)
		require.NoError(t, m.AddTransition(stateLoading, stateReady, eventFetched))

		err := m.Fire(eventFetched, nil)
		require.Error(t, err)

		var noTransition *statemachine.NoTransitionError
		assert.ErrorAs(t, err, &noTransition)
		assert.True(t, statemachine.IsDiscard(err))
		assert.Equal(t, stateReady, m.Current())
	})

	t.Run("guard rejects transition", func(t *testing.T) {
		t.Parallel()

		m := statemachine.New(stateLoading)
		guard := func(from statemachine.State, event statemachine.Event, data any) bool {
			tag, ok := data.(uint64)
			return ok && tag == 7
		}
		require.NoError(t, m.AddTransition(stateLoading, stateReady, eventFetched, guard))

		err := m.Fire(eventFetched, uint64(3))
		require.Error(t, err)

		var rejected *statemachine.RejectedError
		assert.ErrorAs(t, err, &rejected)
		assert.True(t, statemachine.IsDiscard(err))
		assert.Equal(t, stateLoading, m.Current())

		require.NoError(t, m.Fire(eventFetched, uint64(7)))
		assert.Equal(t, stateReady, m.Current())
	})

	t.Run("guard branching picks first passing transition", func(t *testing.T) {
		t.Parallel()

		m := statemachine.New(stateLoading)
		never := func(statemachine.State, statemachine.Event, any) bool { return false }
		require.NoError(t, m.AddTransition(stateLoading, stateReady, eventFetched, never))
		require.NoError(t, m.AddTransition(stateLoading, stateEmpty, eventFetched))

		require.NoError(t, m.Fire(eventFetched, nil))
		assert.Equal(t, stateEmpty, m.Current())
	})

	t.Run("nil event", func(t *testing.T) {
		t.Parallel()

		m := statemachine.New(stateLoading)
		assert.ErrorIs(t, m.Fire(nil, nil), statemachine.ErrInvalidEvent)
	})
}

func TestMachine_CanFire(t *testing.T) {
	t.Parallel()

	m := statemachine.New(stateReady)
	require.NoError(t, m.AddTransition(stateReady, stateEmpty, eventCleared))

	assert.True(t, m.CanFire(eventCleared, nil))
	assert.False(t, m.CanFire(eventFetched, nil))
	assert.False(t, m.CanFire(nil, nil))
}

func TestMachine_Reset(t *testing.T) {
	t.Parallel()

	m := statemachine.New(stateLoading)
	require.NoError(t, m.AddTransition(stateLoading, stateReady, eventFetched))
	require.NoError(t, m.Fire(eventFetched, nil))
	require.Equal(t, stateReady, m.Current())

	m.Reset()
	assert.Equal(t, stateLoading, m.Current())
}

func TestMachine_AddTransition_Invalid(t *testing.T) {
	t.Parallel()

	m := statemachine.New(stateLoading)
	assert.ErrorIs(t, m.AddTransition(nil, stateReady, eventFetched), statemachine.ErrInvalidTransition)
	assert.ErrorIs(t, m.AddTransition(stateLoading, nil, eventFetched), statemachine.ErrInvalidTransition)
	assert.ErrorIs(t, m.AddTransition(stateLoading, stateReady, nil), statemachine.ErrInvalidTransition)
}
