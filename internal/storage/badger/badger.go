package badger

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"rdc-blueprint/internal/storage"
)

// Storage is an embedded key-value snapshot store.
type Storage struct {
	db *badger.DB
}

// New opens the database at path. An empty path keeps everything in memory.
func New(path string) (*Storage, error) {
	const op = "storage.badger.New"

	opts := badger.DefaultOptions(path).WithLogger(nil)
	if path == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

func (s *Storage) Load(_ context.Context, key string) ([]byte, error) {
	const op = "storage.badger.Load"

	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}

		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%s: %s: %w", op, key, storage.ErrSnapshotNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return data, nil
}

func (s *Storage) Save(_ context.Context, key string, data []byte) error {
	const op = "storage.badger.Save"

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}
