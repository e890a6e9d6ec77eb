// Package kvstore persists JSON-serializable values by string key on top of
// a pluggable Medium. Reads that fail fall back to the caller's default and
// writes that fail are dropped; both are logged and never returned.
package kvstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by a Medium when the key has never been written.
var ErrNotFound = errors.New("kvstore: key not found")

// Medium is the durable text storage underneath a Store.
type Medium interface {
	Read(ctx context.Context, key string) (string, error)
	Write(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
