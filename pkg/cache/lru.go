package cache

import (
	"container/list"
	"sync"

	"github.com/c360/semstreams-opcua/nodeid"
)

// lruEntry represents an entry in the LRU cache.
type lruEntry[V any] struct {
	key   nodeid.NodeID
	value V
}

// lruCache is a thread-safe LRU (Least Recently Used) cache implementation.
// It evicts the least recently used items when the maximum size is exceeded.
type lruCache[V any] struct {
	mu      sync.Mutex
	maxSize int
	items   *nodeid.Map[*list.Element] // key -> list element
	order   *list.List                 // front is most recently used
	rec     recorder
	evictFn EvictCallback[V] // Optional callback
}

func newLRUCache[V any](maxSize int, opts *cacheOptions[V]) (*lruCache[V], error) {
	rec, err := newRecorder(opts.cacheOptionsBase, "newLRUCache")
	if err != nil {
		return nil, err
	}
	return &lruCache[V]{
		maxSize: maxSize,
		items:   nodeid.NewMap[*list.Element](),
		order:   list.New(),
		rec:     rec,
		evictFn: opts.evictCallback,
	}, nil
}

// Get retrieves a value by key and marks it as recently used.
func (c *lruCache[V]) Get(key nodeid.Key) (V, bool) {
	c.mu.Lock()
	element, exists := c.items.Get(key)
	if !exists {
		c.mu.Unlock()
		c.rec.miss()
		var zero V
		return zero, false
	}
	c.order.MoveToFront(element)
	value := element.Value.(*lruEntry[V]).value
	c.mu.Unlock()

	c.rec.hit()
	return value, true
}

// Set stores a value with the given key and marks it as recently used.
func (c *lruCache[V]) Set(key nodeid.NodeID, value V) (bool, error) {
	if err := validateKey(key); err != nil {
		return false, err
	}

	c.mu.Lock()
	if element, exists := c.items.Get(key); exists {
		element.Value.(*lruEntry[V]).value = value
		c.order.MoveToFront(element)
		size := c.items.Len()
		c.mu.Unlock()

		c.rec.set(size)
		return false, nil
	}

	c.items.Set(key, c.order.PushFront(&lruEntry[V]{key: key, value: value}))

	var evicted []*lruEntry[V]
	for c.items.Len() > c.maxSize {
		evicted = append(evicted, c.removeElementUnsafe(c.order.Back()))
	}
	size := c.items.Len()
	c.mu.Unlock()

	c.rec.set(size)
	if len(evicted) > 0 {
		c.rec.evicted(len(evicted), size)
		c.notify(evicted)
	}
	return true, nil
}

// Delete removes an entry by key.
func (c *lruCache[V]) Delete(key nodeid.Key) (bool, error) {
	if err := validateKey(key); err != nil {
		return false, err
	}

	c.mu.Lock()
	element, exists := c.items.Get(key)
	if !exists {
		c.mu.Unlock()
		return false, nil
	}
	entry := c.removeElementUnsafe(element)
	size := c.items.Len()
	c.mu.Unlock()

	c.rec.deleted(size)
	c.notify([]*lruEntry[V]{entry})
	return true, nil
}

// Clear removes all entries from the cache.
func (c *lruCache[V]) Clear() error {
	var evicted []*lruEntry[V]

	c.mu.Lock()
	if c.evictFn != nil {
		evicted = make([]*lruEntry[V], 0, c.items.Len())
		for element := c.order.Back(); element != nil; element = element.Prev() {
			evicted = append(evicted, element.Value.(*lruEntry[V]))
		}
	}
	c.items.Clear()
	c.order.Init()
	c.mu.Unlock()

	c.rec.resized(0)
	c.notify(evicted)
	return nil
}

// Size returns the current number of entries in the cache.
func (c *lruCache[V]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items.Len()
}

// Keys returns all keys in LRU order (most recently used first).
func (c *lruCache[V]) Keys() []nodeid.NodeID {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]nodeid.NodeID, 0, c.items.Len())
	for element := c.order.Front(); element != nil; element = element.Next() {
		keys = append(keys, element.Value.(*lruEntry[V]).key)
	}
	return keys
}

// Stats returns cache statistics.
func (c *lruCache[V]) Stats() *Statistics {
	return c.rec.stats
}

// Close releases the metrics registration, if any.
func (c *lruCache[V]) Close() error {
	c.rec.close()
	return nil
}

// removeElementUnsafe removes an element from both the list and map.
// Must be called with mutex held. Does NOT call eviction callback - caller is responsible.
func (c *lruCache[V]) removeElementUnsafe(element *list.Element) *lruEntry[V] {
	entry := element.Value.(*lruEntry[V])
	c.items.Delete(entry.key)
	c.order.Remove(element)
	return entry
}

// notify runs the eviction callback outside the lock.
func (c *lruCache[V]) notify(entries []*lruEntry[V]) {
	if c.evictFn == nil {
		return
	}
	for _, entry := range entries {
		c.evictFn(entry.key, entry.value)
	}
}
