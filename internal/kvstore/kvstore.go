// Package kvstore defines the persistence adapter: whole-blob key-value
// storage scoped to a single client. Every write replaces the entire
// blob under its key; there are no partial updates. Backends are
// substitutable without touching cart or order logic.
package kvstore

import "context"

// Well-known keys for the persisted collections.
const (
	KeyCart   = "cart"
	KeyOrders = "orders"
)

// Store is the persistence adapter contract. Implementations must be
// safe for concurrent use.
type Store interface {
	// Read returns the blob stored under key, or ErrKeyNotFound if no
	// blob exists.
	Read(ctx context.Context, key string) ([]byte, error)

	// Write replaces the blob stored under key.
	Write(ctx context.Context, key string, value []byte) error

	// Delete removes the blob stored under key. Deleting an absent key
	// is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the store.
	Close() error
}
