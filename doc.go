// Package shopclient is a Go SDK for the ecmarket marketplace. It manages
// the authenticated session, authorization decisions for gated surfaces,
// and a synchronized mirror of the server-side cart.
//
// Assemble a client, start it, and work through the component accessors:
//
//	client, err := shopclient.NewFromEnv(ctx,
//		shopclient.WithLogger(log),
//		shopclient.WithNotifier(toasts),
//	)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	state := client.Start(ctx)
//	if !state.IsAuthenticated() {
//		if _, err := client.Sessions().Login(ctx, username, password); err != nil {
//			return err
//		}
//	}
//
//	if err := client.Cart().Add(ctx, productID, 1); err != nil {
//		return err
//	}
//
// The session is the single owner of authentication state. Components that
// render or gate on it subscribe to change signals and re-read the current
// snapshot, so they can never disagree about who is signed in. Capability
// checks are pure:
//
//	decision := client.Decide(authz.CapabilitySeller)
//	if !decision.Allowed() {
//		redirect(decision.Redirect)
//	}
//
// Credentials persist across restarts through a pluggable store (file by
// default, in-memory and Redis available), and a credential that no longer
// resolves is discarded silently at startup.
package shopclient
