package cache

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360/semstreams-opcua/metric"
)

// cacheMetrics holds Prometheus metrics for cache operations.
type cacheMetrics struct {
	registry metric.MetricsRegistrar
	prefix   string
	names    []string

	hits      prometheus.Counter
	misses    prometheus.Counter
	sets      prometheus.Counter
	deletes   prometheus.Counter
	evictions prometheus.Counter
	size      prometheus.Gauge
}

// newCacheMetrics creates and registers cache metrics with the provided registry.
// prefix becomes the component label and the registrar service name.
func newCacheMetrics(registry metric.MetricsRegistrar, prefix string) (*cacheMetrics, error) {
	labels := prometheus.Labels{"component": prefix}
	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "opcua",
			Subsystem:   "cache",
			Name:        name,
			ConstLabels: labels,
			Help:        help,
		})
	}

	m := &cacheMetrics{
		registry: registry,
		prefix:   prefix,

		hits:      counter("hits_total", "Total number of cache hits"),
		misses:    counter("misses_total", "Total number of cache misses"),
		sets:      counter("sets_total", "Total number of cache set operations"),
		deletes:   counter("deletes_total", "Total number of cache delete operations"),
		evictions: counter("evictions_total", "Total number of cache evictions"),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "opcua",
			Subsystem:   "cache",
			Name:        "size",
			ConstLabels: labels,
			Help:        "Current number of entries in cache",
		}),
	}

	counters := []struct {
		name string
		c    prometheus.Counter
	}{
		{"cache_hits", m.hits},
		{"cache_misses", m.misses},
		{"cache_sets", m.sets},
		{"cache_deletes", m.deletes},
		{"cache_evictions", m.evictions},
	}
	for _, entry := range counters {
		if err := registry.RegisterCounter(prefix, entry.name, entry.c); err != nil {
			m.unregister()
			return nil, err
		}
		m.names = append(m.names, entry.name)
	}
	if err := registry.RegisterGauge(prefix, "cache_size", m.size); err != nil {
		m.unregister()
		return nil, err
	}
	m.names = append(m.names, "cache_size")

	return m, nil
}

// unregister removes every metric this cache registered, freeing the prefix.
func (m *cacheMetrics) unregister() {
	for _, name := range m.names {
		m.registry.Unregister(m.prefix, name)
	}
	m.names = nil
}

func (m *cacheMetrics) recordHit()          { m.hits.Inc() }
func (m *cacheMetrics) recordMiss()         { m.misses.Inc() }
func (m *cacheMetrics) recordSet()          { m.sets.Inc() }
func (m *cacheMetrics) recordDelete()       { m.deletes.Inc() }
func (m *cacheMetrics) recordEviction()     { m.evictions.Inc() }
func (m *cacheMetrics) updateSize(size int) { m.size.Set(float64(size)) }
