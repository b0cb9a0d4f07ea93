// Package api is the thin REST transport for the marketplace backend.
//
// It exposes one typed method per endpoint the client depends on, speaks
// JSON both ways, and sends the opaque bearer credential as an
// Authorization header on authenticated calls. The transport performs no
// retries and owns no state beyond the pooled http.Client; failure
// classification (unauthorized vs. server error vs. unreachable) is
// expressed through sentinel errors the session manager and cart cache
// branch on.
//
//	client, err := api.New("https://api.example.com")
//	if err != nil { ... }
//
//	resp, err := client.Login(ctx, "alice", "secret")
//	if err != nil { ... }
//	user, err := client.Me(ctx, resp.AccessToken)
package api
