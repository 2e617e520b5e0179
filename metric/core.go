package metric

import (
	stderrors "errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360/semstreams-opcua/errors"
)

// Metrics contains the codec-level metrics shared by every user of the node
// identifier codecs (not component-specific)
type Metrics struct {
	Encoded      *prometheus.CounterVec
	EncodedBytes prometheus.Counter
	Decoded      *prometheus.CounterVec
	DecodeErrors *prometheus.CounterVec
	Parsed       *prometheus.CounterVec
	Allocated    prometheus.Counter
	Conversions  *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance with all codec metrics
func NewMetrics() *Metrics {
	return &Metrics{
		Encoded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "opcua",
				Subsystem: "nodeid",
				Name:      "encoded_total",
				Help:      "Total number of node ids encoded, by wire layout",
			},
			[]string{"encoding"},
		),

		EncodedBytes: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "opcua",
				Subsystem: "nodeid",
				Name:      "encoded_bytes_total",
				Help:      "Total number of bytes written by node id encoding",
			},
		),

		Decoded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "opcua",
				Subsystem: "nodeid",
				Name:      "decoded_total",
				Help:      "Total number of node ids decoded, by wire layout",
			},
			[]string{"encoding"},
		),

		DecodeErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "opcua",
				Subsystem: "nodeid",
				Name:      "decode_errors_total",
				Help:      "Total number of failed node id decodes, by error kind",
			},
			[]string{"kind"},
		),

		Parsed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "opcua",
				Subsystem: "nodeid",
				Name:      "parsed_total",
				Help:      "Total number of textual node id parses, by status",
			},
			[]string{"status"},
		),

		Allocated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "opcua",
				Subsystem: "nodeid",
				Name:      "allocated_total",
				Help:      "Total number of numeric node ids handed out by allocators",
			},
		),

		Conversions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "opcua",
				Subsystem: "nodeid",
				Name:      "conversions_total",
				Help:      "Total number of well-known id conversions, by target and status",
			},
			[]string{"target", "status"},
		),
	}
}

// ErrorKind maps a codec error onto a short label value
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return "none"
	case stderrors.Is(err, errors.ErrMalformedTag):
		return "malformed_tag"
	case stderrors.Is(err, errors.ErrTruncated):
		return "truncated"
	case stderrors.Is(err, errors.ErrLimitExceeded):
		return "limit_exceeded"
	case stderrors.Is(err, errors.ErrInvalidData):
		return "invalid_data"
	case stderrors.Is(err, errors.ErrNodeIDInvalid):
		return "syntax"
	case stderrors.Is(err, errors.ErrNullNodeID):
		return "null"
	case stderrors.Is(err, errors.ErrNotConvertible):
		return "not_convertible"
	default:
		return "other"
	}
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// RecordEncode counts one encoded node id and its size
func (c *Metrics) RecordEncode(encoding string, size int) {
	c.Encoded.WithLabelValues(encoding).Inc()
	c.EncodedBytes.Add(float64(size))
}

// RecordDecode counts a decode attempt; encoding is ignored on error
func (c *Metrics) RecordDecode(encoding string, err error) {
	if err != nil {
		c.DecodeErrors.WithLabelValues(ErrorKind(err)).Inc()
		return
	}
	c.Decoded.WithLabelValues(encoding).Inc()
}

// RecordParse counts a textual parse
func (c *Metrics) RecordParse(err error) {
	c.Parsed.WithLabelValues(status(err)).Inc()
}

// RecordAllocation counts a successful allocator call
func (c *Metrics) RecordAllocation() {
	c.Allocated.Inc()
}

// RecordConversion counts a well-known id conversion
func (c *Metrics) RecordConversion(target string, err error) {
	c.Conversions.WithLabelValues(target, status(err)).Inc()
}

func (c *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		c.Encoded,
		c.EncodedBytes,
		c.Decoded,
		c.DecodeErrors,
		c.Parsed,
		c.Allocated,
		c.Conversions,
	}
}
