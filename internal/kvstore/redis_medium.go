package kvstore

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
)

// RedisMedium keeps entries as plain Redis strings under a key prefix.
type RedisMedium struct {
	client *redis.Client
	prefix string
}

// NewRedisMedium creates a medium on client. Keys are stored as prefix+key.
func NewRedisMedium(client *redis.Client, prefix string) *RedisMedium {
	return &RedisMedium{client: client, prefix: prefix}
}

// Read returns the value for key or ErrNotFound.
func (m *RedisMedium) Read(ctx context.Context, key string) (string, error) {
	value, err := m.client.Get(ctx, m.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", err
	}
	return value, nil
}

// Write stores the value for key without expiry.
func (m *RedisMedium) Write(ctx context.Context, key, value string) error {
	return m.client.Set(ctx, m.prefix+key, value, 0).Err()
}

// Delete removes key.
func (m *RedisMedium) Delete(ctx context.Context, key string) error {
	return m.client.Del(ctx, m.prefix+key).Err()
}
