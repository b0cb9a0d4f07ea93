// Package statemachine provides a small guarded finite state machine used
// as the shared transition contract for the session manager and the cart
// cache.
//
// Both consumers drive their lifecycle statuses through a Machine and rely
// on a common property: an asynchronous completion that arrives after the
// owning state has moved on fires an event that either has no transition
// from the current state or is rejected by a generation guard. IsDiscard
// recognises both cases so stale completions can be dropped silently.
//
// # Usage
//
//	m := statemachine.New(statemachine.StringState("loading"))
//	m.AddTransition(
//	    statemachine.StringState("loading"),
//	    statemachine.StringState("ready"),
//	    statemachine.StringEvent("fetched"),
//	    guardGenerationMatches,
//	)
//
//	if err := m.Fire(statemachine.StringEvent("fetched"), tag); err != nil {
//	    if statemachine.IsDiscard(err) {
//	        return // stale completion, drop it
//	    }
//	    return err
//	}
package statemachine
