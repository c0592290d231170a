// Package cache defines the pluggable key/value store used to memoize
// OpenGraph lookups, plus two backends: an in-process map and a SQLite
// database. Any store honoring the Cache contract can be injected instead.
package cache

import "time"

// Cache is the backend contract: atomic get/set per key with a TTL hint.
// Backends that cannot honor TTL may ignore it, but must still report
// expired entries as absent if they do.
type Cache interface {
	// Get returns the value for key and whether it was present and fresh.
	Get(key string) (string, bool, error)
	// Set stores value under key. A zero ttl means the backend default.
	Set(key, value string, ttl time.Duration) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
}

// CleanupProvider is implemented by backends that can evict expired
// entries eagerly.
type CleanupProvider interface {
	CleanupExpired() error
}

// StatsProvider is implemented by backends that report entry counts.
type StatsProvider interface {
	Stats() (map[string]int64, error)
}

// DefaultTTL applies when a caller passes no expiry of its own.
const DefaultTTL = 1 * time.Hour
