package cache

import (
	"time"

	"github.com/c360/semstreams-opcua/metric"
)

// Option configures cache behavior using the functional options pattern.
type Option[V any] func(*cacheOptions[V])

// cacheOptionsBase holds the settings that do not depend on the value type.
type cacheOptionsBase struct {
	// metricsReg is optional - if provided, cache stats are also exposed as Prometheus metrics
	metricsReg *metric.MetricsRegistry

	// metricsPrefix is used as the component label for Prometheus metrics
	metricsPrefix string

	// cleanupInterval is how often a TTL cache sweeps expired entries
	cleanupInterval time.Duration
}

// cacheOptions holds internal configuration for cache instances.
// Stats are ALWAYS collected; metrics are optional and exposed via WithMetrics().
type cacheOptions[V any] struct {
	cacheOptionsBase

	// evictCallback is called when items are evicted from the cache
	evictCallback EvictCallback[V]
}

// WithMetrics enables Prometheus metrics export for cache statistics.
// If registry is nil or prefix is empty, this option is ignored.
func WithMetrics[V any](registry *metric.MetricsRegistry, prefix string) Option[V] {
	return func(opts *cacheOptions[V]) {
		if registry != nil && prefix != "" {
			opts.metricsReg = registry
			opts.metricsPrefix = prefix
		}
	}
}

// WithEvictionCallback sets a callback function that is called when items are evicted.
func WithEvictionCallback[V any](callback EvictCallback[V]) Option[V] {
	return func(opts *cacheOptions[V]) {
		opts.evictCallback = callback
	}
}

// WithCleanupInterval sets how often a TTL cache removes expired entries.
// If interval is <= 0, this option is ignored.
func WithCleanupInterval[V any](interval time.Duration) Option[V] {
	return func(opts *cacheOptions[V]) {
		if interval > 0 {
			opts.cleanupInterval = interval
		}
	}
}

// applyOptions applies functional options to create final cache configuration.
func applyOptions[V any](options ...Option[V]) *cacheOptions[V] {
	opts := &cacheOptions[V]{
		cacheOptionsBase: cacheOptionsBase{cleanupInterval: time.Minute},
	}

	for _, opt := range options {
		if opt != nil {
			opt(opts)
		}
	}

	return opts
}
