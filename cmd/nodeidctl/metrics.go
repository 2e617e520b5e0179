package main

import (
	"io"
	"strings"

	"github.com/prometheus/common/expfmt"

	"github.com/c360/semstreams-opcua/metric"
)

// dumpMetrics writes the opcua_* metric families in the Prometheus text format.
func dumpMetrics(w io.Writer, registry *metric.MetricsRegistry) error {
	families, err := registry.PrometheusRegistry().Gather()
	if err != nil {
		return err
	}

	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), "opcua_") {
			continue
		}
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}
