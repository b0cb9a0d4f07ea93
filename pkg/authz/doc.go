// Package authz decides whether the current session may enter a protected
// view.
//
// The whole package is one pure function, Decide, mapping a session
// snapshot and a required capability to a verdict: Pending while the
// session resolves, Allow, or Deny with a redirect target. Keeping it free
// of side effects and hidden inputs makes every case table-testable with
// fabricated session states.
package authz
