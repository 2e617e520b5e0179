// Package cache provides thread-safe caches keyed by OPC UA node identifier,
// with built-in statistics and optional Prometheus metrics.
//
// # Overview
//
// Three implementations share the Cache interface:
//   - Simple: No eviction (manual cleanup only)
//   - LRU: Least Recently Used eviction once MaxSize is reached
//   - TTL: Time-To-Live expiration with a background sweep
//
// Entries are stored under owned nodeid.NodeID values. Lookups accept any
// nodeid.Key, so a nodeid.NodeIDRef decoded directly from a wire buffer can be
// used without first copying its payload:
//
//	ref, _, err := nodeid.DecodeRef(frame, codec.DefaultContext())
//	if err != nil {
//		return err
//	}
//	value, ok := c.Get(ref)
//
// The null node id is never a valid key. Set and Delete reject it with an
// error wrapping errors.ErrNullNodeID.
//
// # Quick Start
//
//	c, err := cache.NewLRU[string](1000)
//	if err != nil {
//		return err
//	}
//	defer c.Close()
//
//	created, err := c.Set(nodeid.ObjectsFolderID(), "Objects")
//	name, ok := c.Get(nodeid.ObjectsFolderID())
//
// TTL cache with expiration:
//
//	c, err := cache.NewTTL[*Attributes](ctx, 30*time.Minute,
//		cache.WithCleanupInterval[*Attributes](time.Minute),
//	)
//
// From configuration:
//
//	c, err := cache.NewFromConfig[string](ctx, settings.Cache,
//		cache.WithMetrics[string](registry, "browse_names"),
//	)
//
// # Observability
//
// Statistics are always collected with atomic counters and are available via
// Stats(). WithMetrics additionally exports hits, misses, sets, deletes,
// evictions and size under the opcua_cache_* names, labelled by component.
//
// # Functional Options
//
//   - WithMetrics: Enable Prometheus metrics export
//   - WithEvictionCallback: Get notified when items are evicted
//   - WithCleanupInterval: Set the sweep interval (TTL only)
//
// # Thread Safety
//
// All operations are safe for concurrent use. Eviction callbacks are called
// outside locks. The TTL sweep goroutine stops when its context is canceled or
// Close is called.
//
// # Key Ordering
//
// Keys returns node ids in nodeid.NodeID.Compare order for the Simple and TTL
// caches, and from most to least recently used for the LRU cache.
package cache
