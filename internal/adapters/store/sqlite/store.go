// Package sqlite implements the shared key-value store on a SQLite database
// written by the host application. The database is opened read-only.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/jsamuelsen/dailywisdom/internal/domain"
)

// Schema is the table layout the host application writes to.
const Schema = `
CREATE TABLE IF NOT EXISTS shared_store (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	updated_at INTEGER NOT NULL DEFAULT (unixepoch())
);`

const getQuery = `SELECT value FROM shared_store WHERE key = ?`

// Store reads keys from the shared_store table.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens the database at path read-only.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("sqlite store: path cannot be empty")
	}

	dsn := fmt.Sprintf("file:%s?mode=ro&_pragma=busy_timeout(5000)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite store: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Get implements ports.KeyValueStore.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte

	err := s.db.QueryRowContext(ctx, getQuery, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("key", key)
	}

	if err != nil {
		return nil, domain.NewUnavailableError(s.Name(), err.Error())
	}

	return value, nil
}

// Name returns the health check name for this store.
func (s *Store) Name() string {
	return "store:sqlite"
}

// Check verifies the database is reachable and the table exists.
func (s *Store) Check(ctx context.Context) error {
	var n int

	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM shared_store`).Scan(&n)
	if err != nil {
		return domain.NewUnavailableError(s.Name(), err.Error())
	}

	return nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
