package kvstore

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// MemoryStore keeps blobs in a map. It is the default backend for tests
// and for running without any storage configuration; contents do not
// survive a restart.
type MemoryStore struct {
	mu     sync.RWMutex
	blobs  map[string][]byte
	closed bool
	logger zerolog.Logger
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore(logger zerolog.Logger) *MemoryStore {
	return &MemoryStore{
		blobs:  make(map[string][]byte),
		logger: logger.With().Str("store", "memory").Logger(),
	}
}

// Read returns a copy of the blob under key.
func (s *MemoryStore) Read(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	blob, ok := s.blobs[key]
	if !ok {
		return nil, ErrKeyNotFound
	}

	out := make([]byte, len(blob))
	copy(out, blob)
	return out, nil
}

// Write replaces the blob under key with a copy of value.
func (s *MemoryStore) Write(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	blob := make([]byte, len(value))
	copy(blob, value)
	s.blobs[key] = blob

	s.logger.Debug().Str("key", key).Int("bytes", len(blob)).Msg("blob written")
	return nil
}

// Delete removes the blob under key.
func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	delete(s.blobs, key)
	return nil
}

// Close marks the store closed; further operations fail.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
