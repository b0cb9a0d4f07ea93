// Package redis provides a retrying connection helper around the go-redis
// client, used when the credential store is configured with the redis
// backend.
//
//	client, err := redis.Connect(ctx, redis.Config{
//	    ConnectionURL: "redis://localhost:6379/0",
//	})
package redis
