package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/c360/semstreams-opcua/errors"
	"github.com/c360/semstreams-opcua/nodeid"
)

// Strategy defines the eviction strategy for the cache.
type Strategy string

const (
	// StrategySimple uses no eviction policy.
	StrategySimple Strategy = "simple"

	// StrategyLRU uses Least Recently Used eviction based on size.
	StrategyLRU Strategy = "lru"

	// StrategyTTL uses Time-To-Live eviction based on expiry.
	StrategyTTL Strategy = "ttl"
)

// Config contains configuration for cache creation.
// Durations are written as strings such as "5m" in YAML.
type Config struct {
	Enabled         bool          `json:"enabled" yaml:"enabled"`
	Strategy        Strategy      `json:"strategy" yaml:"strategy"`
	MaxSize         int           `json:"max_size" yaml:"max_size"`
	TTL             time.Duration `json:"ttl" yaml:"ttl"`
	CleanupInterval time.Duration `json:"cleanup_interval" yaml:"cleanup_interval"`
}

// DefaultConfig returns a default cache configuration.
func DefaultConfig() Config {
	return Config{
		Enabled:         true,
		Strategy:        StrategyLRU,
		MaxSize:         1000,
		TTL:             5 * time.Minute,
		CleanupInterval: 1 * time.Minute,
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if !c.Enabled {
		return nil // No validation needed if disabled
	}

	switch c.Strategy {
	case StrategySimple:
	case StrategyLRU:
		if c.MaxSize <= 0 {
			return errors.WrapInvalid(errors.ErrInvalidData, "cache", "Validate",
				fmt.Sprintf("max_size must be positive for LRU cache, got %d", c.MaxSize))
		}
	case StrategyTTL:
		if c.TTL <= 0 {
			return errors.WrapInvalid(errors.ErrInvalidData, "cache", "Validate",
				fmt.Sprintf("ttl must be positive for TTL cache, got %v", c.TTL))
		}
		if c.CleanupInterval <= 0 {
			return errors.WrapInvalid(errors.ErrInvalidData, "cache", "Validate",
				fmt.Sprintf("cleanup_interval must be positive for TTL cache, got %v", c.CleanupInterval))
		}
	default:
		return errors.WrapInvalid(errors.ErrInvalidData, "cache", "Validate",
			fmt.Sprintf("unknown cache strategy: %q", c.Strategy))
	}

	return nil
}

// NewFromConfig creates a cache based on the provided configuration.
// Returns a disabled cache (NoopCache) if config.Enabled is false.
// Additional functional options can be passed to configure metrics, callbacks, etc.
func NewFromConfig[V any](ctx context.Context, config Config, options ...Option[V]) (Cache[V], error) {
	if err := config.Validate(); err != nil {
		return nil, errors.WrapInvalid(err, "cache", "NewFromConfig", "config validation")
	}

	if !config.Enabled {
		return NewNoop[V](), nil
	}

	switch config.Strategy {
	case StrategySimple:
		return NewSimple[V](options...)
	case StrategyLRU:
		return NewLRU[V](config.MaxSize, options...)
	default:
		options = append(options, WithCleanupInterval[V](config.CleanupInterval))
		return NewTTL[V](ctx, config.TTL, options...)
	}
}

// NewLRU creates a new LRU cache with the specified maximum size.
// Stats are always enabled for observability. Use WithMetrics() to also export as Prometheus metrics.
func NewLRU[V any](maxSize int, options ...Option[V]) (Cache[V], error) {
	if maxSize <= 0 {
		return nil, errors.WrapInvalid(errors.ErrInvalidData, "cache", "NewLRU",
			fmt.Sprintf("max size must be positive, got %d", maxSize))
	}
	c, err := newLRUCache[V](maxSize, applyOptions(options...))
	if err != nil {
		return nil, err
	}
	return c, nil
}

// NewTTL creates a new TTL cache. The background sweep stops when ctx is
// done or Close is called.
func NewTTL[V any](ctx context.Context, ttl time.Duration, options ...Option[V]) (Cache[V], error) {
	if ttl <= 0 {
		return nil, errors.WrapInvalid(errors.ErrInvalidData, "cache", "NewTTL",
			fmt.Sprintf("ttl must be positive, got %v", ttl))
	}
	c, err := newTTLCache[V](ctx, ttl, applyOptions(options...))
	if err != nil {
		return nil, err
	}
	return c, nil
}

// NewSimple creates a new Simple cache with no eviction policy.
func NewSimple[V any](options ...Option[V]) (Cache[V], error) {
	c, err := newSimpleCache[V](applyOptions(options...))
	if err != nil {
		return nil, err
	}
	return c, nil
}

// NewNoop creates a cache that does nothing (always returns cache misses).
// This is useful when caching is disabled via configuration.
func NewNoop[V any]() Cache[V] {
	return noopCache[V]{}
}

// noopCache is a cache implementation that does nothing.
type noopCache[V any] struct{}

func (noopCache[V]) Get(nodeid.Key) (V, bool) {
	var zero V
	return zero, false
}

func (noopCache[V]) Set(nodeid.NodeID, V) (bool, error) { return false, nil }
func (noopCache[V]) Delete(nodeid.Key) (bool, error)    { return false, nil }
func (noopCache[V]) Clear() error                       { return nil }
func (noopCache[V]) Size() int                          { return 0 }
func (noopCache[V]) Keys() []nodeid.NodeID              { return nil }
func (noopCache[V]) Stats() *Statistics                 { return nil }
func (noopCache[V]) Close() error                       { return nil }
