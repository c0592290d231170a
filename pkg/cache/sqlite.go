package cache

import (
	"database/sql"
	"fmt"
	"log/slog"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/lepinkainen/extract-forge/pkg/filesystem"
)

// SQLite is a persistent cache backend backed by a single-table SQLite
// database with a TTL column. Expired rows are invisible to Get and
// removed by CleanupExpired.
type SQLite struct {
	db     *sql.DB
	mu     sync.RWMutex
	dbPath string
}

var _ Cache = (*SQLite)(nil)
var _ CleanupProvider = (*SQLite)(nil)
var _ StatsProvider = (*SQLite)(nil)

// DefaultDBFile is the database filename used when no path is configured.
const DefaultDBFile = "extract-forge.db"

// NewSQLite opens (or creates) the cache database at dbPath.
func NewSQLite(dbPath string) (*SQLite, error) {
	if dbPath == "" {
		dbPath = DefaultDBFile
	}

	if err := filesystem.EnsureDirectoryExists(dbPath); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL keeps concurrent readers cheap; busy_timeout rides out writer
	// contention instead of failing the call.
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA temp_store=memory",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma %q: %w", pragma, err)
		}
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	c := &SQLite{db: db, dbPath: dbPath}
	if err := c.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	slog.Debug("Cache database initialized", "path", dbPath)
	return c, nil
}

func (c *SQLite) createSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS cache_entries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		key TEXT NOT NULL UNIQUE,
		value TEXT NOT NULL,
		expires_at TIMESTAMP NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_cache_entries_key ON cache_entries(key);
	CREATE INDEX IF NOT EXISTS idx_cache_entries_expires ON cache_entries(expires_at);
	`

	_, err := c.db.Exec(schema)
	return err
}

// Close closes the underlying database.
func (c *SQLite) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// Get returns the fresh value for key, if any.
func (c *SQLite) Get(key string) (string, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	query := `
	SELECT value FROM cache_entries
	WHERE key = ? AND expires_at > CURRENT_TIMESTAMP
	`

	var value string
	err := c.db.QueryRow(query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get cache value: %w", err)
	}
	return value, true, nil
}

// Set stores value under key for ttl (DefaultTTL when zero).
func (c *SQLite) Set(key, value string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	query := `
	INSERT OR REPLACE INTO cache_entries (key, value, expires_at, updated_at)
	VALUES (?, ?, ?, CURRENT_TIMESTAMP)
	`

	if _, err := c.db.Exec(query, key, value, time.Now().Add(ttl).UTC()); err != nil {
		return fmt.Errorf("failed to set cache value: %w", err)
	}
	return nil
}

// Delete removes key.
func (c *SQLite) Delete(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.db.Exec(`DELETE FROM cache_entries WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete cache value: %w", err)
	}
	return nil
}

// CleanupExpired removes rows past their expiry.
func (c *SQLite) CleanupExpired() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	result, err := c.db.Exec(`DELETE FROM cache_entries WHERE expires_at < CURRENT_TIMESTAMP`)
	if err != nil {
		return fmt.Errorf("failed to cleanup expired entries: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected > 0 {
		slog.Debug("Cleaned up expired cache entries", "count", rowsAffected)
	}
	return nil
}

// Stats reports total, valid and expired entry counts.
func (c *SQLite) Stats() (map[string]int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	stats := make(map[string]int64)

	queries := map[string]string{
		"total_entries":   `SELECT COUNT(*) FROM cache_entries`,
		"valid_entries":   `SELECT COUNT(*) FROM cache_entries WHERE expires_at > CURRENT_TIMESTAMP`,
		"expired_entries": `SELECT COUNT(*) FROM cache_entries WHERE expires_at < CURRENT_TIMESTAMP`,
	}
	for name, query := range queries {
		var count int64
		if err := c.db.QueryRow(query).Scan(&count); err != nil {
			return nil, fmt.Errorf("failed to get %s: %w", name, err)
		}
		stats[name] = count
	}
	return stats, nil
}
