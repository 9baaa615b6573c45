package source

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

const defaultCacheTTL = 15 * time.Minute

// cacheEntry holds cached search results with their expiration time.
type cacheEntry struct {
	results   []SearchResult
	expiresAt time.Time
}

// CachedSearch memoizes a SearchBackend's results for a TTL. Digest
// handlers issue overlapping queries (the weekly report repeats the
// entertainment search, category tools share templates), so a short
// in-process cache cuts upstream traffic without becoming a
// persistence layer.
type CachedSearch struct {
	backend SearchBackend
	ttl     time.Duration
	logger  *slog.Logger

	mu    sync.Mutex
	cache map[string]cacheEntry
}

// NewCachedSearch wraps backend with a TTL-bounded result cache.
func NewCachedSearch(backend SearchBackend, ttl time.Duration, logger *slog.Logger) *CachedSearch {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &CachedSearch{
		backend: backend,
		ttl:     ttl,
		logger:  logger,
		cache:   make(map[string]cacheEntry),
	}
}

func (c *CachedSearch) Name() string { return c.backend.Name() }

func (c *CachedSearch) Search(ctx context.Context, query string, count int) ([]SearchResult, error) {
	key := fmt.Sprintf("%s|%d", query, count)

	if results, ok := c.get(key); ok {
		c.logger.Debug("search cache hit", "query", query)
		return results, nil
	}

	results, err := c.backend.Search(ctx, query, count)
	if err != nil {
		// Failures are not cached: the next request should probe again.
		return nil, err
	}

	c.put(key, results)
	return results, nil
}

// get returns cached results if they exist and have not expired.
func (c *CachedSearch) get(key string) ([]SearchResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.cache[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		delete(c.cache, key)
		return nil, false
	}
	return entry.results, true
}

// put stores results with the configured TTL, lazily evicting expired
// entries once the cache grows large.
func (c *CachedSearch) put(key string, results []SearchResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache[key] = cacheEntry{
		results:   results,
		expiresAt: time.Now().Add(c.ttl),
	}

	if len(c.cache) > 100 {
		now := time.Now()
		for k, v := range c.cache {
			if now.After(v.expiresAt) {
				delete(c.cache, k)
			}
		}
	}
}
