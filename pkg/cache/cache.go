// Package cache provides the short-lived read cache in front of the
// template store.
//
// Entries expire after a fixed TTL. Invalidation is coarse: any write to the
// store drops every entry, so readers never see data older than the last
// write they made, and at most TTL older than anybody else's.
package cache

import (
	"strconv"
	"sync"
	"time"

	"github.com/zeromicro/go-zero/core/syncx"
)

// DefaultTTL is used when a non-positive TTL is configured.
const DefaultTTL = 30 * time.Second

type entry struct {
	value   any
	expires time.Time
}

// Cache is a TTL cache with whole-cache invalidation. It is safe for
// concurrent use.
type Cache struct {
	name string
	ttl  time.Duration
	now  func() time.Time

	mu         sync.Mutex
	entries    map[string]entry
	generation uint64

	flight syncx.SingleFlight
}

// Option configures a Cache.
type Option func(*Cache)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// WithName labels the cache's metrics.
func WithName(name string) Option {
	return func(c *Cache) {
		c.name = name
	}
}

// New creates a cache whose entries live for ttl.
func New(ttl time.Duration, opts ...Option) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c := &Cache{
		name:    "store",
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry),
		flight:  syncx.NewSingleFlight(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TTL returns the configured time-to-live.
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// Get returns the live value for key.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		cacheMisses.Inc(c.name)
		return nil, false
	}
	if !c.now().Before(e.expires) {
		delete(c.entries, key)
		cacheMisses.Inc(c.name)
		return nil, false
	}
	cacheHits.Inc(c.name)
	return e.value, true
}

// Put stores value under key for one TTL.
func (c *Cache) Put(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, expires: c.now().Add(c.ttl)}
}

// InvalidateAll drops every entry. Fetches started before the call do not
// repopulate the cache when they finish.
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
	c.generation++
	cacheInvalidations.Inc(c.name)
}

// Len returns the number of stored entries, including expired ones not yet
// evicted.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Take returns the cached value for key, or calls fetch and caches its
// result. Concurrent misses on one key share a single fetch, but a Take that
// starts after InvalidateAll never joins a fetch that started before it.
// Errors are returned to every waiter and never cached.
func (c *Cache) Take(key string, fetch func() (any, error)) (any, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	c.mu.Lock()
	gen := c.generation
	c.mu.Unlock()

	return c.flight.Do(strconv.FormatUint(gen, 10)+":"+key, func() (any, error) {
		v, err := fetch()
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		if gen == c.generation {
			c.entries[key] = entry{value: v, expires: c.now().Add(c.ttl)}
		}
		c.mu.Unlock()
		return v, nil
	})
}
