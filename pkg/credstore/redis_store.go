package credstore

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey is the slot name used when none is provided.
const DefaultRedisKey = "shopclient:credential"

// RedisStore persists the credential in a single Redis key, for clients
// that share durable state through an external store instead of the local
// filesystem.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore creates a store writing to key on the given client. An
// empty key falls back to DefaultRedisKey.
func NewRedisStore(client *redis.Client, key string) *RedisStore {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStore{client: client, key: key}
}

func (s *RedisStore) Get(ctx context.Context) (string, error) {
	credential, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNoCredential
		}
		return "", err
	}
	if credential == "" {
		return "", ErrNoCredential
	}
	return credential, nil
}

func (s *RedisStore) Set(ctx context.Context, credential string) error {
	// No TTL: the credential has no client-visible expiry, the server is
	// the sole validity authority.
	return s.client.Set(ctx, s.key, credential, 0).Err()
}

func (s *RedisStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}
