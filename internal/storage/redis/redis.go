package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"rdc-blueprint/internal/storage"
)

// Client is the part of *redis.Client the snapshot store needs.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

// Storage keeps snapshots in redis so several service replicas share one state.
type Storage struct {
	client Client
}

func New(ctx context.Context, addr, password string, db int) (*Storage, error) {
	const op = "storage.redis.New"

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return NewWithClient(client), nil
}

func NewWithClient(client Client) *Storage {
	return &Storage{client: client}
}

func (s *Storage) Load(ctx context.Context, key string) ([]byte, error) {
	const op = "storage.redis.Load"

	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%s: %s: %w", op, key, storage.ErrSnapshotNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return data, nil
}

func (s *Storage) Save(ctx context.Context, key string, data []byte) error {
	const op = "storage.redis.Save"

	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) Close() error {
	return s.client.Close()
}
