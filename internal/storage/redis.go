package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisKV keeps the snapshot blobs in Redis.  Useful when the tracker runs
// on a box that already has Redis around and the user wants the data to
// survive the container's filesystem.
type RedisKV struct {
	client *redis.Client
}

// NewRedisKV wraps an already-connected client.
func NewRedisKV(client *redis.Client) *RedisKV {
	return &RedisKV{client: client}
}

// GetItem fetches the blob for key; redis.Nil maps to "absent".
func (s *RedisKV) GetItem(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return v, true, nil
}

// SetItem overwrites the blob for key with no expiry.
func (s *RedisKV) SetItem(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, key, value, 0).Err()
}
