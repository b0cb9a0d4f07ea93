// Package notify defines the side channel through which the SDK reports
// user-facing outcomes such as "product added to cart" or "please login".
//
// The SDK only ever calls into the Notifier interface; delivery (toasts,
// terminal output, log lines) belongs to the embedding application. The
// default everywhere is Noop.
package notify
