// Package storage provides the key/value item store that backs persisted
// studio state, with SQLite and in-memory implementations.
package storage

import (
	"context"
	"errors"
	"fmt"
)

// DefaultQuota is the byte budget used when none is configured.
const DefaultQuota int64 = 5 << 20

// ErrQuotaExceeded is returned when a write would push the stored bytes
// past the quota. The previous value is left in place.
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// Storage is a string item store keyed by name.
type Storage interface {
	// GetItem returns the value for key. ok is false when the key is absent.
	GetItem(ctx context.Context, key string) (value string, ok bool, err error)

	// SetItem stores value under key, replacing any previous value.
	SetItem(ctx context.Context, key, value string) error

	// RemoveItem deletes key. Removing an absent key is not an error.
	RemoveItem(ctx context.Context, key string) error

	// Usage reports the bytes currently held across all keys.
	Usage(ctx context.Context) (int64, error)

	// Close releases the underlying resources.
	Close() error
}

func itemSize(key, value string) int64 {
	return int64(len(key) + len(value))
}

func quotaErr(key string, need, quota int64) error {
	return fmt.Errorf("set %q: %w (%d of %d bytes)", key, ErrQuotaExceeded, need, quota)
}
