// Package session owns the client's identity lifecycle: credential
// acquisition on login, rehydration at startup, and invalidation on logout
// or credential rejection.
//
// # State machine
//
// The manager starts Resolving. Resolve moves it to Authenticated when the
// stored credential still maps to a user, or to Unauthenticated otherwise
// (clearing the credential on the way). Login and Logout transition from
// any state; a role update replaces the identity without leaving
// Authenticated.
//
//	            ┌── resolved ──► Authenticated ◄─┐
//	 Resolving ─┤                    │           │ logged_in
//	            └─ resolve_failed ─► Unauthenticated
//	                    logged_out ──►
//
// Every credential transition bumps a monotonic generation counter. An
// asynchronous completion carries the generation current when its request
// was issued; if the session has moved on, the completion's transition is
// rejected and the result is silently dropped. There is no cancellation of
// in-flight requests — only discard on landing.
//
// # Observation
//
// Dependents (the cart cache, the authorization gate) receive the manager
// by injection and read state through Current or Subscribe; the manager is
// the sole writer of both session state and the credential store.
package session
