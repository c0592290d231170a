package cache

import (
	"sync"
	"time"
)

// Memory is a mutex-guarded in-process cache with lazy TTL eviction.
// Entries past their expiry are reported as absent on read and removed on
// CleanupExpired.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

var _ Cache = (*Memory)(nil)
var _ CleanupProvider = (*Memory)(nil)
var _ StatsProvider = (*Memory)(nil)

// NewMemory creates an empty in-memory cache.
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]memoryEntry),
	}
}

// Get returns the fresh value for key, if any.
func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		return "", false, nil
	}
	return entry.value, true, nil
}

// Set stores value under key for ttl (DefaultTTL when zero).
func (m *Memory) Set(key, value string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = memoryEntry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// Delete removes key.
func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

// CleanupExpired removes every entry past its expiry.
func (m *Memory) CleanupExpired() error {
	now := time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()
	for key, entry := range m.entries {
		if now.After(entry.expiresAt) {
			delete(m.entries, key)
		}
	}
	return nil
}

// Stats reports total and fresh entry counts.
func (m *Memory) Stats() (map[string]int64, error) {
	now := time.Now()

	m.mu.RLock()
	defer m.mu.RUnlock()

	var valid int64
	for _, entry := range m.entries {
		if !now.After(entry.expiresAt) {
			valid++
		}
	}
	return map[string]int64{
		"total_entries": int64(len(m.entries)),
		"valid_entries": valid,
	}, nil
}
