/*
Package sqlite provides a SQLite-backed differential-type catalog store.

PURPOSE:
  Persists the differential-type catalog the engine consumes. The engine
  itself never touches storage - this package plays the "external
  collaborator" role: it loads the catalog once at startup and hands it
  to the calculation layer by reference. Calculation results are never
  persisted anywhere.

KEY TABLE:
  differential_types: One row per catalog entry, config as a JSON column
                      (the same document shape the catalog factory parses)

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging):
  - Multiple readers don't block
  - Single writer at a time
  - Better crash recovery

CONCURRENCY:
  Uses sync.RWMutex for thread-safety. With PostgreSQL the database's own
  concurrency control would take over; the interface stays the same.

USAGE:
  store, err := sqlite.New("./data/compengine.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  store.Seed(ctx, catalog.DefaultCatalog())
  cat, err := store.ListTypes(ctx)

SEE ALSO:
  - catalog/factory.go: JSON column encoding/decoding
  - api/handlers.go: Serves the loaded catalog
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/warp/compensation-engine/catalog"
	"github.com/warp/compensation-engine/compensation"
)

// Store persists the differential-type catalog in SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store at the given path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS differential_types (
		key TEXT PRIMARY KEY,
		category TEXT NOT NULL,
		config_json TEXT NOT NULL,
		version INTEGER NOT NULL DEFAULT 1,
		created_at TEXT NOT NULL DEFAULT (datetime('now')),
		updated_at TEXT NOT NULL DEFAULT (datetime('now'))
	);

	CREATE INDEX IF NOT EXISTS idx_differential_types_category
		ON differential_types(category);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// CATALOG PERSISTENCE
// =============================================================================

// SaveType inserts or replaces one catalog entry, bumping its version on
// replacement.
func (s *Store) SaveType(ctx context.Context, cfg compensation.TypeConfig) error {
	doc, err := catalog.MarshalConfig(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config %q: %w", cfg.Key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO differential_types (key, category, config_json)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			category = excluded.category,
			config_json = excluded.config_json,
			version = version + 1,
			updated_at = datetime('now')`,
		cfg.Key, string(cfg.Category), string(doc))
	if err != nil {
		return fmt.Errorf("failed to save type %q: %w", cfg.Key, err)
	}
	return nil
}

// GetType returns one catalog entry, or nil when the key is unknown.
func (s *Store) GetType(ctx context.Context, key string) (*compensation.TypeConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var doc string
	err := s.db.QueryRowContext(ctx,
		`SELECT config_json FROM differential_types WHERE key = ?`, key).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get type %q: %w", key, err)
	}

	cfg, err := catalog.ParseConfig(key, []byte(doc))
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ListTypes loads the full catalog.
func (s *Store) ListTypes(ctx context.Context) (compensation.Catalog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT key, config_json FROM differential_types ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("failed to list types: %w", err)
	}
	defer rows.Close()

	cat := make(compensation.Catalog)
	for rows.Next() {
		var key, doc string
		if err := rows.Scan(&key, &doc); err != nil {
			return nil, err
		}
		cfg, err := catalog.ParseConfig(key, []byte(doc))
		if err != nil {
			return nil, err
		}
		cat[key] = cfg
	}
	return cat, rows.Err()
}

// DeleteType removes a catalog entry.
func (s *Store) DeleteType(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`DELETE FROM differential_types WHERE key = ?`, key)
	return err
}

// Seed inserts every catalog entry that does not already exist. Existing
// rows are left untouched, so deployments can edit types without boot
// reverting them.
func (s *Store) Seed(ctx context.Context, cat compensation.Catalog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for key, cfg := range cat {
		doc, err := catalog.MarshalConfig(cfg)
		if err != nil {
			return fmt.Errorf("failed to encode config %q: %w", key, err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO differential_types (key, category, config_json)
			VALUES (?, ?, ?)
			ON CONFLICT(key) DO NOTHING`,
			key, string(cfg.Category), string(doc))
		if err != nil {
			return fmt.Errorf("failed to seed type %q: %w", key, err)
		}
	}
	return tx.Commit()
}
