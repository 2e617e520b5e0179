package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/c360/semstreams-opcua/nodeid"
)

// ttlEntry represents an entry in the TTL cache.
type ttlEntry[V any] struct {
	key       nodeid.NodeID
	value     V
	expiresAt time.Time
}

// ttlCache is a thread-safe TTL (Time-To-Live) cache implementation.
// Expired entries are dropped on access and by a background sweep.
type ttlCache[V any] struct {
	mu      sync.RWMutex
	ttl     time.Duration
	items   *nodeid.Map[*ttlEntry[V]]
	rec     recorder
	evictFn EvictCallback[V] // Optional callback
	now     func() time.Time

	// Background cleanup coordination
	shutdown  chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

func newTTLCache[V any](ctx context.Context, ttl time.Duration, opts *cacheOptions[V]) (*ttlCache[V], error) {
	rec, err := newRecorder(opts.cacheOptionsBase, "newTTLCache")
	if err != nil {
		return nil, err
	}

	c := &ttlCache[V]{
		ttl:      ttl,
		items:    nodeid.NewMap[*ttlEntry[V]](),
		rec:      rec,
		evictFn:  opts.evictCallback,
		now:      time.Now,
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
	}

	// Start background cleanup goroutine with caller's context
	go c.cleanup(ctx, opts.cleanupInterval)

	return c, nil
}

// Get retrieves a value by key, checking for expiration.
func (c *ttlCache[V]) Get(key nodeid.Key) (V, bool) {
	var zero V
	ref := key.Ref()

	c.mu.RLock()
	entry, exists := c.items.Get(ref)
	c.mu.RUnlock()

	if !exists {
		c.rec.miss()
		return zero, false
	}

	if c.now().After(entry.expiresAt) {
		c.mu.Lock()
		// Double-check it's still there and still expired
		current, stillExists := c.items.Get(ref)
		removed := stillExists && c.now().After(current.expiresAt)
		if removed {
			c.items.Delete(ref)
		}
		size := c.items.Len()
		c.mu.Unlock()

		if removed {
			c.rec.evicted(1, size)
			if c.evictFn != nil {
				c.evictFn(current.key, current.value)
			}
		}
		c.rec.miss()
		return zero, false
	}

	c.rec.hit()
	return entry.value, true
}

// Set stores a value with the given key and sets its expiration time.
func (c *ttlCache[V]) Set(key nodeid.NodeID, value V) (bool, error) {
	if err := validateKey(key); err != nil {
		return false, err
	}
	entry := &ttlEntry[V]{key: key, value: value, expiresAt: c.now().Add(c.ttl)}

	c.mu.Lock()
	created := c.items.Set(key, entry)
	size := c.items.Len()
	c.mu.Unlock()

	c.rec.set(size)
	return created, nil
}

// Delete removes an entry by key.
func (c *ttlCache[V]) Delete(key nodeid.Key) (bool, error) {
	if err := validateKey(key); err != nil {
		return false, err
	}

	c.mu.Lock()
	entry, exists := c.items.Delete(key)
	size := c.items.Len()
	c.mu.Unlock()

	if !exists {
		return false, nil
	}
	c.rec.deleted(size)
	if c.evictFn != nil {
		c.evictFn(entry.key, entry.value)
	}
	return true, nil
}

// Clear removes all entries from the cache.
func (c *ttlCache[V]) Clear() error {
	c.mu.Lock()
	old := c.items
	c.items = nodeid.NewMap[*ttlEntry[V]]()
	c.mu.Unlock()

	if c.evictFn != nil {
		old.Range(func(_ nodeid.NodeID, entry *ttlEntry[V]) bool {
			c.evictFn(entry.key, entry.value)
			return true
		})
	}
	c.rec.resized(0)
	return nil
}

// Size returns the current number of entries in the cache.
// Expired entries count until they are swept.
func (c *ttlCache[V]) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.items.Len()
}

// Keys returns the keys of all unexpired entries in ascending node id order.
func (c *ttlCache[V]) Keys() []nodeid.NodeID {
	now := c.now()

	c.mu.RLock()
	keys := make([]nodeid.NodeID, 0, c.items.Len())
	c.items.Range(func(key nodeid.NodeID, entry *ttlEntry[V]) bool {
		if now.Before(entry.expiresAt) {
			keys = append(keys, key)
		}
		return true
	})
	c.mu.RUnlock()

	nodeid.SortNodeIDs(keys)
	return keys
}

// Stats returns cache statistics.
func (c *ttlCache[V]) Stats() *Statistics {
	return c.rec.stats
}

// Close shuts down the cache and stops the background cleanup goroutine.
func (c *ttlCache[V]) Close() error {
	c.closeOnce.Do(func() {
		close(c.shutdown)
		c.rec.close()
	})

	select {
	case <-c.done:
		return nil
	case <-time.After(5 * time.Second):
		return fmt.Errorf("timeout waiting for cleanup goroutine to finish")
	}
}

// cleanup runs in a background goroutine and periodically removes expired entries.
func (c *ttlCache[V]) cleanup(ctx context.Context, interval time.Duration) {
	defer close(c.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-c.shutdown:
			return
		case <-ticker.C:
			c.removeExpired()
		}
	}
}

// removeExpired removes all expired entries from the cache.
func (c *ttlCache[V]) removeExpired() {
	now := c.now()
	var expired []*ttlEntry[V]

	c.mu.Lock()
	c.items.Range(func(_ nodeid.NodeID, entry *ttlEntry[V]) bool {
		if now.After(entry.expiresAt) {
			expired = append(expired, entry)
		}
		return true
	})
	for _, entry := range expired {
		c.items.Delete(entry.key)
	}
	size := c.items.Len()
	c.mu.Unlock()

	if len(expired) == 0 {
		return
	}
	c.rec.evicted(len(expired), size)
	if c.evictFn != nil {
		for _, entry := range expired {
			c.evictFn(entry.key, entry.value)
		}
	}
}
