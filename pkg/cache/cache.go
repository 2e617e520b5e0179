// Package cache provides generic, thread-safe caches keyed by node identifier.
//
// This package offers multiple cache types:
//   - SimpleCache: No eviction policy (stores items indefinitely)
//   - LRUCache: Least Recently Used eviction based on size
//   - TTLCache: Time-To-Live eviction based on expiry
//
// Entries are stored under owned nodeid.NodeID keys and can be looked up with
// any nodeid.Key, including a view decoded straight from a wire buffer.
// All cache implementations are thread-safe with built-in statistics (always
// enabled for observability) and optional Prometheus metrics integration via
// functional options.
package cache

import (
	"github.com/c360/semstreams-opcua/errors"
	"github.com/c360/semstreams-opcua/nodeid"
)

// Cache represents a generic cache interface that all cache implementations must satisfy.
// The cache is parameterized by value type V for type safety.
type Cache[V any] interface {
	// Get retrieves a value by key. Returns the value and true if found, zero value and false otherwise.
	Get(key nodeid.Key) (V, bool)

	// Set stores a value with the given key. Returns true if a new entry was created, false if updated.
	// Returns an error if the key is the null node id.
	Set(key nodeid.NodeID, value V) (bool, error)

	// Delete removes an entry by key. Returns true if the key existed and was deleted.
	Delete(key nodeid.Key) (bool, error)

	// Clear removes all entries from the cache.
	Clear() error

	// Size returns the current number of entries in the cache.
	Size() int

	// Keys returns all keys currently in the cache.
	Keys() []nodeid.NodeID

	// Stats returns cache statistics, nil for a disabled cache.
	Stats() *Statistics

	// Close shuts down the cache and releases any resources (e.g., background goroutines).
	Close() error
}

// EvictCallback is called when an entry is evicted from the cache.
// It receives the key and value of the evicted entry.
type EvictCallback[V any] func(key nodeid.NodeID, value V)

// validateKey rejects the null node id, which never names a real node.
func validateKey(key nodeid.Key) error {
	if key.Ref().IsNull() {
		return errors.WrapInvalid(errors.ErrNullNodeID, "cache", "validateKey", "key cannot be the null node id")
	}
	return nil
}

// recorder feeds one operation into the always-on statistics and the optional metrics.
type recorder struct {
	stats   *Statistics
	metrics *cacheMetrics
}

func newRecorder(opts cacheOptionsBase, method string) (recorder, error) {
	r := recorder{stats: NewStatistics()}
	if opts.metricsReg != nil && opts.metricsPrefix != "" {
		m, err := newCacheMetrics(opts.metricsReg, opts.metricsPrefix)
		if err != nil {
			return r, errors.Wrap(err, "cache", method, "register metrics")
		}
		r.metrics = m
	}
	return r, nil
}

// close releases the metrics registration, if any.
func (r recorder) close() {
	if r.metrics != nil {
		r.metrics.unregister()
	}
}

func (r recorder) hit() {
	r.stats.Hit()
	if r.metrics != nil {
		r.metrics.recordHit()
	}
}

func (r recorder) miss() {
	r.stats.Miss()
	if r.metrics != nil {
		r.metrics.recordMiss()
	}
}

func (r recorder) set(size int) {
	r.stats.Set()
	r.stats.UpdateSize(int64(size))
	if r.metrics != nil {
		r.metrics.recordSet()
		r.metrics.updateSize(size)
	}
}

func (r recorder) deleted(size int) {
	r.stats.Delete()
	r.stats.UpdateSize(int64(size))
	if r.metrics != nil {
		r.metrics.recordDelete()
		r.metrics.updateSize(size)
	}
}

func (r recorder) evicted(count, size int) {
	for i := 0; i < count; i++ {
		r.stats.Eviction()
		if r.metrics != nil {
			r.metrics.recordEviction()
		}
	}
	r.resized(size)
}

func (r recorder) resized(size int) {
	r.stats.UpdateSize(int64(size))
	if r.metrics != nil {
		r.metrics.updateSize(size)
	}
}
