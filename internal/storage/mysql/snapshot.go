package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"rdc-blueprint/internal/storage"
)

func (s *Storage) Load(ctx context.Context, key string) ([]byte, error) {
	const op = "storage.mysql.Load"

	query := `SELECT data FROM blueprint_snapshots WHERE snapshot_key = ?`

	var data []byte
	err := s.db.QueryRowContext(ctx, query, key).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %s: %w", op, key, storage.ErrSnapshotNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return data, nil
}

// Save upserts the snapshot row for key.
func (s *Storage) Save(ctx context.Context, key string, data []byte) error {
	const op = "storage.mysql.Save"

	stmt := `
		INSERT INTO blueprint_snapshots (snapshot_key, data, updated_at)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE data = VALUES(data), updated_at = VALUES(updated_at)
	`

	if _, err := s.db.ExecContext(ctx, stmt, key, data, time.Now().UTC()); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
