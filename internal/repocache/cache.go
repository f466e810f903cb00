// Package repocache persists the repository name→GUID mapping populated by
// `ado repo list` and consumed by commands that accept a repository name
// but need its identifier. It is a convenience cache: no TTL, no eviction.
// Staleness is accepted and resolved by re-running the populating command.
package repocache

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"ado/pkg/logging"

	_ "modernc.org/sqlite"
)

const (
	// cacheFileName is the SQLite database file under the config directory.
	cacheFileName = "cache.db"
	// userConfigDir is the subdirectory under home for ado state.
	userConfigDir = ".config/ado"
)

// Entry maps a repository display name to its opaque identifier.
type Entry struct {
	ID   string
	Name string
}

// Cache is the SQLite-backed name→identifier store.
type Cache struct {
	db   *sql.DB
	path string
}

// Open opens the cache at the default per-user path, creating the database
// and schema on first use.
func Open() (*Cache, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine home directory: %w", err)
	}
	return OpenPath(filepath.Join(homeDir, userConfigDir, cacheFileName))
}

// OpenPath opens the cache at a custom path. This is useful for testing.
func OpenPath(path string) (*Cache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository cache: %w", err)
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Cache{db: db, path: path}, nil
}

func migrate(db *sql.DB) error {
	statements := []string{
		`PRAGMA journal_mode=WAL;`,
		`CREATE TABLE IF NOT EXISTS repos (
			id   TEXT PRIMARY KEY,
			name TEXT NOT NULL
		);`,
	}
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("repository cache migration failed: %w", err)
		}
	}
	return nil
}

// Close releases the underlying database handle.
func (c *Cache) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Path returns the database file location.
func (c *Cache) Path() string {
	return c.path
}

// UpsertAll inserts or replaces every entry in one transaction.
// List commands call this wholesale on each refresh; the operation is
// idempotent per entry.
func (c *Cache) UpsertAll(entries []Entry) error {
	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin cache transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO repos (id, name) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare cache upsert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if e.ID == "" || e.Name == "" {
			continue
		}
		if _, err := stmt.Exec(e.ID, e.Name); err != nil {
			return fmt.Errorf("failed to upsert cache entry %q: %w", e.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cache transaction: %w", err)
	}

	logging.Debug("RepoCache", "Refreshed %d entries in %s", len(entries), c.path)
	return nil
}

// IDByName looks up a repository identifier by display name.
// A miss is not an error; the boolean reports whether the name was found.
func (c *Cache) IDByName(name string) (string, bool, error) {
	var id string
	err := c.db.QueryRow(`SELECT id FROM repos WHERE name = ?`, name).Scan(&id)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to query repository cache: %w", err)
	}
	return id, true, nil
}
