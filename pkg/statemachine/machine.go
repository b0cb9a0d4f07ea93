package statemachine

import "sync"

// Machine is a thread-safe finite state machine. Transition lookups use a
// nested map keyed by state and event names: [fromState][event][]Transition.
type Machine struct {
	initial     State
	current     State
	transitions map[string]map[string][]Transition
	mu          sync.RWMutex
}

// New creates a machine parked in the initial state.
func New(initial State) *Machine {
	return &Machine{
		initial:     initial,
		current:     initial,
		transitions: make(map[string]map[string][]Transition),
	}
}

// Current returns the current state.
func (m *Machine) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// AddTransition registers a transition. Multiple transitions may share a
// from/event pair to support guard-based branching; the first one whose
// guards all pass wins.
func (m *Machine) AddTransition(from, to State, event Event, guards ...Guard) error {
	if from == nil || to == nil || event == nil {
		return ErrInvalidTransition
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	fromName := from.Name()
	if _, ok := m.transitions[fromName]; !ok {
		m.transitions[fromName] = make(map[string][]Transition)
	}

	eventName := event.Name()
	m.transitions[fromName][eventName] = append(m.transitions[fromName][eventName], Transition{
		From:   from,
		To:     to,
		Event:  event,
		Guards: guards,
	})
	return nil
}

// Fire attempts to apply the event to the current state. It returns
// ErrNoTransition when the event is not defined for the current state and
// ErrTransitionRejected when every candidate transition was blocked by a
// guard. Callers treating completions as potentially stale can interpret
// either error as "discard".
func (m *Machine) Fire(event Event, data any) error {
	if event == nil {
		return ErrInvalidEvent
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	t, err := m.match(event, data)
	if err != nil {
		return err
	}

	m.current = t.To
	return nil
}

// CanFire reports whether the event would cause a transition from the
// current state.
func (m *Machine) CanFire(event Event, data any) bool {
	if event == nil {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	_, err := m.match(event, data)
	return err == nil
}

// Reset returns the machine to its initial state.
func (m *Machine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.initial
}

// match finds the first transition for the event whose guards all pass.
// Callers must hold at least a read lock.
func (m *Machine) match(event Event, data any) (*Transition, error) {
	currentName := m.current.Name()
	eventName := event.Name()

	candidates, ok := m.transitions[currentName][eventName]
	if !ok || len(candidates) == 0 {
		return nil, &NoTransitionError{StateName: currentName, EventName: eventName}
	}

	for i := range candidates {
		t := &candidates[i]
		passed := true
		for _, guard := range t.Guards {
			if guard != nil && !guard(m.current, event, data) {
				passed = false
				break
			}
		}
		if passed {
			return t, nil
		}
	}

	return nil, &RejectedError{StateName: currentName, EventName: eventName}
}
