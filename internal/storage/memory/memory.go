package memory

import (
	"context"
	"fmt"
	"sync"

	"rdc-blueprint/internal/storage"
)

// Storage keeps snapshots in process memory. State is lost on restart.
type Storage struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func New() *Storage {
	return &Storage{blobs: map[string][]byte{}}
}

func (s *Storage) Load(_ context.Context, key string) ([]byte, error) {
	const op = "storage.memory.Load"

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.blobs[key]
	if !ok {
		return nil, fmt.Errorf("%s: %s: %w", op, key, storage.ErrSnapshotNotFound)
	}
	return append([]byte(nil), data...), nil
}

func (s *Storage) Save(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blobs[key] = append([]byte(nil), data...)
	return nil
}

func (s *Storage) Close() error {
	return nil
}
