// Package logger provides a small factory over log/slog with consistent
// attribute helpers for the client SDK.
//
// Components accept a *slog.Logger through their options and default to a
// discard logger, so log output is always an explicit caller decision:
//
//	log := logger.New(logger.WithDevelopment("shopclient"))
//	manager := session.New(api, store, session.WithLogger(log))
package logger
