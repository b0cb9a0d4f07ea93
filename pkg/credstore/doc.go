// Package credstore persists the client's single opaque bearer credential
// across restarts.
//
// Three implementations of the Store interface ship out of the box:
//
//   - FileStore: durable single-file slot, degrades to memory-only when the
//     filesystem fails (callers never see storage errors)
//   - MemoryStore: volatile, for tests and explicit opt-out
//   - RedisStore: external slot for clients sharing state through Redis
//
// The store is a dumb key/value slot. It never inspects or validates the
// credential; lifecycle decisions belong to the session manager, which is
// its only writer.
package credstore
