// Package cart maintains a client-side mirror of the server cart.
//
// The server is the single source of truth. Every mutation (Add, Update,
// Remove, Clear) writes to the server first and, on success, schedules a
// full refetch; the mirror is never patched locally from a mutation's
// arguments. When refetches race, the last one to settle wins.
//
// The mirror follows the session lifecycle published by the session layer:
// a newly authenticated session triggers a fetch, and an ended session
// clears the mirror locally without touching the network. Fetch completions
// are tagged with the session generation observed at issue time, and a
// completion whose tag no longer matches the live generation is discarded.
// A cart that belongs to a previous login can therefore never bleed into
// the next one.
//
//	cache := cart.NewCache(client, sessions,
//		cart.WithNotifier(toasts),
//		cart.WithLogger(log),
//	)
//	go cache.Run(ctx)
//
//	if err := cache.Add(ctx, productID, 2); err != nil {
//		// server rejected the write; the mirror is unchanged
//	}
//
// Mutations attempted without an authenticated session fail with
// ErrAuthenticationRequired before any request is made, and the configured
// notifier receives a user-facing message.
package cart
