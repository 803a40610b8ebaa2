package ports

import (
	"context"
	"time"
)

// Cache is a flat key-value store for upstream responses.
// Entries never expire; they are removed only by Delete.
type Cache interface {
	// Get returns the value for key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the underlying store.
	Close() error
}

// Timestamped is implemented by caches that record when each key was last
// written.
type Timestamped interface {
	UpdatedAt(ctx context.Context, key string) (at time.Time, ok bool, err error)
}
