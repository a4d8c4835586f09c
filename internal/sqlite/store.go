// Package sqlite implements the kalenote storage layer over a single SQLite
// file. One Store instance serves the whole process; every operation takes
// the store mutex for its duration, so calls are serialized rather than
// interleaved on the shared connection.
package sqlite

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/kalenote/kalenote/pkg/types"
)

// Store provides typed CRUD access to the tasks, settings, and
// calendar_presets tables.
type Store struct {
	mu     sync.Mutex
	db     *sql.DB
	closed bool
	logger *slog.Logger
}

// Open creates or opens the database at path, ensures the schema and the
// singleton settings row exist, and returns a ready Store. Parent
// directories are created if missing. Any schema failure closes the handle
// and returns no store.
func Open(path string) (*Store, error) {
	logger := slog.Default().With("component", "store")

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%w: creating data directory: %v", types.ErrNotOpenable, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrNotOpenable, err)
	}

	// Single-process store, but WAL keeps the repair pass's second
	// connection safe if it ever overlaps with the main one.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	if err := applySchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	logger.Info("store opened", "path", path)
	return &Store{db: db, logger: logger}, nil
}

// Close releases the underlying connection. Close is idempotent; operations
// after Close return ErrStoreClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

// applySchema runs all DDL statements and seeds the settings row. Every
// statement is idempotent, so a second Open against the same file changes
// nothing.
func applySchema(db *sql.DB) error {
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("creating table: %w", err)
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("creating index: %w", err)
		}
	}

	defaults := types.DefaultSettings()
	_, err := db.Exec(seedSettings,
		types.SettingsRowID, defaults.Theme, defaults.TimeMode, defaults.AvailableTime)
	if err != nil {
		return fmt.Errorf("seeding settings: %w", err)
	}
	return nil
}

// checkOpen reports ErrStoreClosed after Close. The caller must hold s.mu.
func (s *Store) checkOpen() error {
	if s.closed {
		return types.ErrStoreClosed
	}
	return nil
}
