package mysql

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
)

type Storage struct {
	db *sql.DB
}

// New opens the database described by dsn, e.g.
// "user:password@tcp(localhost:3306)/blueprint?parseTime=true".
func New(dsn string) (*Storage, error) {
	const op = "storage.mysql.New"

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

// Init creates the snapshot table when it does not exist yet.
func (s *Storage) Init(ctx context.Context) error {
	const op = "storage.mysql.Init"

	stmt := `
		CREATE TABLE IF NOT EXISTS blueprint_snapshots (
			snapshot_key VARCHAR(128) NOT NULL PRIMARY KEY,
			data LONGBLOB NOT NULL,
			updated_at DATETIME NOT NULL
		)
	`

	if _, err := s.db.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}
