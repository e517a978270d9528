package dictionary

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Cache persists fetched dictionaries in a local SQLite database so a
// previously loaded dictionary remains usable when its source is
// unreachable.
type Cache struct {
	db *sql.DB
}

// DefaultCachePath returns the default location for the dictionary
// cache database.
func DefaultCachePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "omniread-dictionary.db")
	}
	return filepath.Join(home, ".local", "state", "omniread", "dictionary.db")
}

// OpenCache opens (creating if needed) the cache database at path
func OpenCache(path string) (*Cache, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS dictionary_entries (
		source     TEXT NOT NULL,
		word       TEXT NOT NULL,
		phonetic   TEXT NOT NULL,
		fetched_at INTEGER NOT NULL,
		PRIMARY KEY (source, word)
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create cache schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Put replaces the cached entries for source with the given mapping
func (c *Cache) Put(source string, entries map[string]string) error {
	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM dictionary_entries WHERE source = ?", source); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to clear previous entries: %w", err)
	}

	now := time.Now().Unix()
	stmt, err := tx.Prepare("INSERT INTO dictionary_entries (source, word, phonetic, fetched_at) VALUES (?, ?, ?, ?)")
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for word, phonetic := range entries {
		if _, err := stmt.Exec(source, word, phonetic, now); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert entry '%s': %w", word, err)
		}
	}

	return tx.Commit()
}

// Get returns the cached entries for source. An unknown source yields
// an empty map, not an error.
func (c *Cache) Get(source string) (map[string]string, error) {
	rows, err := c.db.Query("SELECT word, phonetic FROM dictionary_entries WHERE source = ?", source)
	if err != nil {
		return nil, fmt.Errorf("failed to query cache: %w", err)
	}
	defer rows.Close()

	entries := make(map[string]string)
	for rows.Next() {
		var word, phonetic string
		if err := rows.Scan(&word, &phonetic); err != nil {
			return nil, fmt.Errorf("failed to scan cache row: %w", err)
		}
		entries[word] = phonetic
	}

	return entries, rows.Err()
}

// Close closes the underlying database
func (c *Cache) Close() error {
	return c.db.Close()
}
