package cache

import (
	"sync"

	"github.com/c360/semstreams-opcua/nodeid"
)

// simpleCache is a thread-safe cache with no eviction policy.
// It stores items indefinitely until explicitly deleted or cleared.
type simpleCache[V any] struct {
	mu      sync.RWMutex
	items   *nodeid.Map[V]
	rec     recorder
	evictFn EvictCallback[V] // Optional callback
}

func newSimpleCache[V any](opts *cacheOptions[V]) (*simpleCache[V], error) {
	rec, err := newRecorder(opts.cacheOptionsBase, "newSimpleCache")
	if err != nil {
		return nil, err
	}
	return &simpleCache[V]{
		items:   nodeid.NewMap[V](),
		rec:     rec,
		evictFn: opts.evictCallback,
	}, nil
}

// Get retrieves a value by key.
func (c *simpleCache[V]) Get(key nodeid.Key) (V, bool) {
	c.mu.RLock()
	value, exists := c.items.Get(key)
	c.mu.RUnlock()

	if exists {
		c.rec.hit()
	} else {
		c.rec.miss()
	}
	return value, exists
}

// Set stores a value with the given key.
func (c *simpleCache[V]) Set(key nodeid.NodeID, value V) (bool, error) {
	if err := validateKey(key); err != nil {
		return false, err
	}
	c.mu.Lock()
	created := c.items.Set(key, value)
	size := c.items.Len()
	c.mu.Unlock()

	c.rec.set(size)
	return created, nil
}

// Delete removes an entry by key.
func (c *simpleCache[V]) Delete(key nodeid.Key) (bool, error) {
	if err := validateKey(key); err != nil {
		return false, err
	}
	ref := key.Ref()
	c.mu.Lock()
	value, exists := c.items.Delete(ref)
	size := c.items.Len()
	c.mu.Unlock()

	if !exists {
		return false, nil
	}
	c.rec.deleted(size)
	if c.evictFn != nil {
		c.evictFn(ref.NodeID(), value)
	}
	return true, nil
}

// Clear removes all entries from the cache.
func (c *simpleCache[V]) Clear() error {
	c.mu.Lock()
	old := c.items
	c.items = nodeid.NewMap[V]()
	c.mu.Unlock()

	// Call eviction callbacks outside lock to prevent deadlock
	if c.evictFn != nil {
		old.Range(func(key nodeid.NodeID, value V) bool {
			c.evictFn(key, value)
			return true
		})
	}
	c.rec.resized(0)
	return nil
}

// Size returns the current number of entries in the cache.
func (c *simpleCache[V]) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.items.Len()
}

// Keys returns all keys in ascending node id order.
func (c *simpleCache[V]) Keys() []nodeid.NodeID {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.items.Keys()
}

// Stats returns cache statistics.
func (c *simpleCache[V]) Stats() *Statistics {
	return c.rec.stats
}

// Close releases the metrics registration, if any.
func (c *simpleCache[V]) Close() error {
	c.rec.close()
	return nil
}
