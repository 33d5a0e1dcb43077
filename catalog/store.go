// Package catalog implements the SQLite-backed tuning catalog.
// See doc.go for the full contract.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Sentinel errors for catalog operations.
var (
	// ErrNotFound indicates a lookup that matched no row.
	ErrNotFound = errors.New("catalog: not found")

	// ErrDuplicate indicates an insert that violated a uniqueness rule.
	ErrDuplicate = errors.New("catalog: duplicate")
)

// Store wraps the catalog database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the catalog at path and applies
// pending migrations. The connection uses WAL journaling, a busy
// timeout, enforced foreign keys, and a single connection so writes
// serialize naturally.
func Open(ctx context.Context, path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err = db.PingContext(ctx); err != nil {
		db.Close()

		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if err = applyMigrations(ctx, db); err != nil {
		db.Close()

		return nil, err
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}

	return s.db.Close()
}

// DB exposes the raw handle for tests and ad hoc queries.
func (s *Store) DB() *sql.DB {
	return s.db
}
