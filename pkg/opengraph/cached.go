package opengraph

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/lepinkainen/extract-forge/pkg/cache"
)

// CacheOptions controls the caching wrap around a Fetcher.
type CacheOptions struct {
	// TTL for written entries; cache.DefaultTTL when zero.
	TTL time.Duration
	// KeyPrefix namespaces cache keys. Empty means the bare URL is the key.
	KeyPrefix string
	// CacheErrors also memoizes failed fetches. Off by default: a transient
	// network failure must not poison the cache for the TTL window.
	CacheErrors bool
}

// CachedFetcher wraps a Fetcher with read-through/write-through caching.
// Cache failures are logged and bypassed; a broken cache never breaks a
// fetch.
type CachedFetcher struct {
	fetcher *Fetcher
	cache   cache.Cache
	opts    CacheOptions
}

// NewCachedFetcher wraps fetcher with c. A nil cache disables memoization
// and every Fetch goes to the network.
func NewCachedFetcher(fetcher *Fetcher, c cache.Cache, opts CacheOptions) *CachedFetcher {
	return &CachedFetcher{
		fetcher: fetcher,
		cache:   c,
		opts:    opts,
	}
}

// CacheKey builds the cache key for url: "opengraph:{prefix}:{url}" when a
// prefix is set, the bare url otherwise.
func CacheKey(prefix, url string) string {
	if prefix == "" {
		return url
	}
	return "opengraph:" + prefix + ":" + url
}

// Fetch returns the cached record for targetURL or fetches and memoizes a
// fresh one. Like Fetcher.Fetch it never returns a Go error.
func (cf *CachedFetcher) Fetch(ctx context.Context, targetURL string) *Record {
	if cf.cache == nil {
		return cf.fetcher.Fetch(ctx, targetURL)
	}

	key := CacheKey(cf.opts.KeyPrefix, targetURL)

	if cached, ok := cf.read(key); ok {
		slog.Debug("OpenGraph cache hit", "url", targetURL)
		return cached
	}

	record := cf.fetcher.Fetch(ctx, targetURL)

	if record.OK() || cf.opts.CacheErrors {
		cf.write(key, record)
	}
	return record
}

// read returns the cached record for key, treating every cache or decode
// failure as a miss.
func (cf *CachedFetcher) read(key string) (*Record, bool) {
	value, ok, err := cf.cache.Get(key)
	if err != nil {
		slog.Warn("Cache read failed, fetching directly", "key", key, "error", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var record Record
	if err := json.Unmarshal([]byte(value), &record); err != nil {
		slog.Warn("Cached record is malformed, refetching", "key", key, "error", err)
		return nil, false
	}
	return &record, true
}

// write stores record under key; failures are logged only.
func (cf *CachedFetcher) write(key string, record *Record) {
	value, err := json.Marshal(record)
	if err != nil {
		slog.Warn("Failed to encode record for cache", "key", key, "error", err)
		return
	}
	if err := cf.cache.Set(key, string(value), cf.opts.TTL); err != nil {
		slog.Warn("Cache write failed", "key", key, "error", err)
	}
}

// FetchAll fetches records for every URL concurrently, at most five
// in flight, and returns them keyed by URL. Callers needing different
// fan-out policies can fetch per URL themselves; Fetch is reentrant.
func (cf *CachedFetcher) FetchAll(ctx context.Context, urls []string) map[string]*Record {
	records := make(map[string]*Record, len(urls))
	if len(urls) == 0 {
		return records
	}

	type result struct {
		url    string
		record *Record
	}

	results := make(chan result, len(urls))
	semaphore := make(chan struct{}, 5)
	var wg sync.WaitGroup

	for _, targetURL := range urls {
		if targetURL == "" {
			continue
		}

		wg.Add(1)
		go func(url string) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			results <- result{url: url, record: cf.Fetch(ctx, url)}
		}(targetURL)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	for res := range results {
		records[res.url] = res.record
	}
	return records
}
