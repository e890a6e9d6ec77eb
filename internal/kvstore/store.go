package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"treasury/internal/logger"
)

const defaultTimeout = 3 * time.Second

// Store encodes values as JSON text on a Medium.
type Store struct {
	medium  Medium
	timeout time.Duration
}

// Option configures a Store.
type Option func(*Store)

// WithTimeout bounds every medium call.
func WithTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// New creates a Store on top of medium.
func New(medium Medium, opts ...Option) *Store {
	s := &Store{medium: medium, timeout: defaultTimeout}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get decodes the value stored under key. An absent key, a medium failure,
// or text that does not parse as T all yield def.
func Get[T any](s *Store, key string, def T) T {
	raw, ok := s.Raw(key)
	if !ok {
		return def
	}

	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		logger.Get().Errorw("failed to decode stored value, using default",
			"key", key,
			"error", err,
		)
		return def
	}
	return value
}

// Raw returns the stored text for key. ok is false when the key is absent or
// the medium could not be read.
func (s *Store) Raw(key string) (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	raw, err := s.medium.Read(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.Get().Errorw("failed to read stored value",
				"key", key,
				"error", err,
			)
		}
		return "", false
	}
	return raw, true
}

// Set stores value under key. Failures are logged and the write is dropped.
func (s *Store) Set(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		logger.Get().Errorw("failed to encode value, write dropped",
			"key", key,
			"error", err,
		)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.medium.Write(ctx, key, string(data)); err != nil {
		logger.Get().Errorw("failed to write stored value, write dropped",
			"key", key,
			"error", err,
		)
	}
}

// Remove deletes key. Removing an absent key is not an error.
func (s *Store) Remove(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.medium.Delete(ctx, key); err != nil && !errors.Is(err, ErrNotFound) {
		logger.Get().Errorw("failed to remove stored value",
			"key", key,
			"error", err,
		)
	}
}
