package catalog

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// snapshot is a loaded catalog and the time it was built.
type snapshot struct {
	catalog *Catalog
	built   time.Time
}

func (s *snapshot) expired(ttl time.Duration, now time.Time) bool {
	if s == nil || ttl == 0 {
		return true
	}
	return now.Sub(s.built) > ttl
}

// Cache reuses a loaded catalog for TTL and collapses concurrent reloads
// into a single Source.Load call.
type Cache struct {
	source Source
	ttl    time.Duration
	now    func() time.Time

	mu      sync.RWMutex
	current *snapshot
	sf      singleflight.Group
}

// NewCache wraps source. A zero ttl loads on every Get.
func NewCache(source Source, ttl time.Duration) *Cache {
	return &Cache{source: source, ttl: ttl, now: time.Now}
}

// Source returns the wrapped source.
func (c *Cache) Source() Source {
	return c.source
}

// Get returns the cached catalog, loading it if missing or expired.
func (c *Cache) Get(ctx context.Context) (*Catalog, error) {
	c.mu.RLock()
	snap := c.current
	c.mu.RUnlock()

	if !snap.expired(c.ttl, c.now()) {
		return snap.catalog, nil
	}

	result, err, _ := c.sf.Do(c.source.Name(), func() (interface{}, error) {
		// Double-check after acquiring singleflight lock
		c.mu.RLock()
		snap := c.current
		c.mu.RUnlock()
		if !snap.expired(c.ttl, c.now()) {
			return snap.catalog, nil
		}
		return c.load(ctx)
	})
	if err != nil {
		return nil, err
	}
	return result.(*Catalog), nil
}

// Reload loads the catalog now, replacing any cached copy.
func (c *Cache) Reload(ctx context.Context) (*Catalog, error) {
	result, err, _ := c.sf.Do(c.source.Name()+"|reload", func() (interface{}, error) {
		return c.load(ctx)
	})
	if err != nil {
		return nil, err
	}
	return result.(*Catalog), nil
}

// Invalidate drops the cached catalog.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.current = nil
	c.mu.Unlock()
}

func (c *Cache) load(ctx context.Context) (*Catalog, error) {
	cat, err := c.source.Load(ctx)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.current = &snapshot{catalog: cat, built: c.now()}
	c.mu.Unlock()
	return cat, nil
}
