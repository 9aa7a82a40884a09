package kvstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// FileStore keeps one file per key under a root directory. Writes go
// through a temp file plus rename so a crash never leaves a torn blob.
type FileStore struct {
	root   string
	logger zerolog.Logger
}

// NewFileStore creates the root directory if needed and returns a store
// over it.
func NewFileStore(root string, logger zerolog.Logger) (*FileStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &FileStore{
		root:   root,
		logger: logger.With().Str("store", "file").Str("root", root).Logger(),
	}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.root, key+".json")
}

// Read returns the blob stored under key.
func (s *FileStore) Read(ctx context.Context, key string) ([]byte, error) {
	blob, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrKeyNotFound
		}
		s.logger.Error().Err(err).Str("key", key).Msg("failed to read blob")
		return nil, fmt.Errorf("failed to read blob %q: %w", key, err)
	}
	return blob, nil
}

// Write atomically replaces the blob stored under key.
func (s *FileStore) Write(ctx context.Context, key string, value []byte) error {
	tmp := filepath.Join(s.root, fmt.Sprintf(".%s.%s.tmp", key, uuid.NewString()))

	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to write temp blob")
		return fmt.Errorf("failed to write blob %q: %w", key, err)
	}

	if err := os.Rename(tmp, s.path(key)); err != nil {
		os.Remove(tmp)
		s.logger.Error().Err(err).Str("key", key).Msg("failed to commit blob")
		return fmt.Errorf("failed to commit blob %q: %w", key, err)
	}

	s.logger.Debug().Str("key", key).Int("bytes", len(value)).Msg("blob written")
	return nil
}

// Delete removes the blob stored under key.
func (s *FileStore) Delete(ctx context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to delete blob")
		return fmt.Errorf("failed to delete blob %q: %w", key, err)
	}
	return nil
}

// Close is a no-op; the store holds no open handles between calls.
func (s *FileStore) Close() error {
	return nil
}
