// Package memo provides the per-session memoization cache used by upstream
// fetchers. Entries live until the cache is dropped; there is no eviction.
package memo

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
)

// entry is a memoized outcome: either a value or a retained failure.
type entry struct {
	value any
	err   error
}

// Cache maps request keys to fetched results or failed markers.
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry

	// retain decides whether a failed fetch is remembered. Failures that are
	// not retained leave no entry, so the next call goes to the network again.
	retain func(error) bool

	hits   atomic.Int64
	misses atomic.Int64
}

// New creates an empty cache.
func New(opts ...Option) *Cache {
	c := &Cache{
		entries: make(map[string]entry),
		retain:  func(error) bool { return false },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do returns the memoized outcome for key, calling fetch on the first request.
// The boolean reports whether the outcome came from the cache.
//
// fetch runs with the cache lock held, so concurrent callers for the same
// cache are serialized and never issue duplicate requests. fetch must not
// call back into the same cache.
func Do[T any](ctx context.Context, c *Cache, key string, fetch func(context.Context) (T, error)) (T, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		c.hits.Add(1)
		if e.err != nil {
			var zero T
			return zero, true, e.err
		}
		v, ok := e.value.(T)
		if !ok {
			var zero T
			return zero, true, fmt.Errorf("%w: %q holds %T", ErrTypeMismatch, key, e.value)
		}
		return v, true, nil
	}

	c.misses.Add(1)
	v, err := fetch(ctx)
	if err != nil {
		if c.retain(err) {
			c.entries[key] = entry{err: err}
		}
		return v, false, err
	}
	c.entries[key] = entry{value: v}
	return v, false, nil
}

// Contains reports whether key has a memoized outcome (value or failure).
func (c *Cache) Contains(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}

// Len returns the number of memoized outcomes.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats is a point-in-time view of cache usage.
type Stats struct {
	Entries int   `json:"entries"`
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
}

// Stats returns current hit/miss counters.
func (c *Cache) Stats() Stats {
	return Stats{
		Entries: c.Len(),
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
	}
}
