// Package broadcast provides a small generic publish/subscribe primitive
// used to propagate session state changes to in-process observers such as
// the cart cache.
//
// The in-memory implementation fans out to buffered per-subscriber
// channels and never blocks the publisher: a subscriber that cannot keep
// up is dropped. Observers are therefore expected to treat a received
// message as a change signal and re-read the authoritative state from its
// owner, not to reconstruct it from the message stream.
//
// # Usage
//
//	bus := broadcast.NewMemoryBroadcaster[session.State](16)
//	sub := bus.Subscribe(ctx)
//	for msg := range sub.Receive(ctx) {
//	    onSessionChange(msg.Data)
//	}
package broadcast
