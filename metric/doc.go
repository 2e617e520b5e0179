// Package metric provides Prometheus-based metrics collection for the node
// identifier codecs and the components built on them.
//
// The package offers a centralized metrics registry managing both the core
// codec metrics and custom component-specific metrics such as the cache
// statistics in pkg/cache.
//
// # Architecture
//
// The package follows a two-layer design:
//
//  1. Core Metrics: codec-level metrics registered automatically (Metrics type)
//  2. Component Registry: extensible registration for component-specific metrics (MetricsRegistrar interface)
//
// The underlying *prometheus.Registry is exposed through PrometheusRegistry so
// callers can gather or expose it however they like; cmd/nodeidctl writes it
// in the Prometheus text format with expfmt.
//
// # Basic Usage
//
//	registry := metric.NewMetricsRegistry()
//	core := registry.CoreMetrics()
//
//	n, err := nodeid.Decode(r, ctx)
//	core.RecordDecode(n.Encoding().String(), err)
//
// # Core Metrics
//
// All core metrics live under the opcua_nodeid prefix:
//
//   - encoded_total{encoding}, encoded_bytes_total
//   - decoded_total{encoding}, decode_errors_total{kind}
//   - parsed_total{status}
//   - allocated_total
//   - conversions_total{target,status}
//
// ErrorKind maps codec errors onto the kind label (malformed_tag, truncated,
// limit_exceeded, invalid_data, syntax, null, not_convertible, other).
//
// # Component Metrics
//
// Components register their own collectors through MetricsRegistrar:
//
//	hits := prometheus.NewCounter(prometheus.CounterOpts{
//	    Namespace: "opcua",
//	    Subsystem: "cache",
//	    Name:      "hits_total",
//	    Help:      "Cache hits",
//	})
//	if err := registry.RegisterCounter("browse-cache", "hits_total", hits); err != nil {
//	    return err
//	}
//
// Registering the same component/metric pair twice fails with an invalid
// classified error; a Prometheus name conflict across components is reported
// the same way.
//
// Unregister releases a component/metric pair. pkg/cache calls it when a
// cache is closed, so the component name can be reused.
//
// # Thread Safety
//
// MetricsRegistry is safe for concurrent use. Prometheus collectors are
// themselves goroutine-safe.
package metric
