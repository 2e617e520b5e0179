package metric_test

import (
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/semstreams-opcua/errors"
	"github.com/c360/semstreams-opcua/metric"
	"github.com/c360/semstreams-opcua/nodeid"
	"github.com/c360/semstreams-opcua/pkg/cache"
)

func gather(t *testing.T, registry *metric.MetricsRegistry) map[string]*dto.MetricFamily {
	t.Helper()
	families, err := registry.PrometheusRegistry().Gather()
	require.NoError(t, err)

	byName := make(map[string]*dto.MetricFamily, len(families))
	for _, mf := range families {
		byName[mf.GetName()] = mf
	}
	return byName
}

// counterFor returns the counter value of the series carrying label=value.
func counterFor(t *testing.T, mf *dto.MetricFamily, label, value string) float64 {
	t.Helper()
	require.NotNil(t, mf)
	for _, m := range mf.Metric {
		for _, l := range m.Label {
			if l.GetName() == label && l.GetValue() == value {
				return m.GetCounter().GetValue()
			}
		}
	}
	t.Fatalf("%s has no series with %s=%q", mf.GetName(), label, value)
	return 0
}

func TestMetricsIntegration_CodecAndCacheGatheredTogether(t *testing.T) {
	registry := metric.NewMetricsRegistry()
	core := registry.CoreMetrics()

	aliases, err := cache.NewLRU[string](8, cache.WithMetrics[string](registry, "aliases"))
	require.NoError(t, err)
	defer aliases.Close()

	boiler := nodeid.NewText(1, "Boiler")
	data, err := boiler.MarshalBinary()
	require.NoError(t, err)
	core.RecordEncode(boiler.Encoding().String(), len(data))

	_, err = aliases.Set(boiler, "boiler")
	require.NoError(t, err)

	ref, _, err := nodeid.DecodeRef(data, nil)
	core.RecordDecode(nodeid.Encoding(data[0]).String(), err)
	require.NoError(t, err)

	name, ok := aliases.Get(ref)
	require.True(t, ok)
	assert.Equal(t, "boiler", name)

	_, _, err = nodeid.DecodeRef([]byte{0x06}, nil)
	core.RecordDecode("unknown", err)

	families := gather(t, registry)

	assert.Equal(t, float64(1), counterFor(t, families["opcua_nodeid_encoded_total"], "encoding", "string"))
	assert.Equal(t, float64(len(data)), families["opcua_nodeid_encoded_bytes_total"].Metric[0].GetCounter().GetValue())
	assert.Equal(t, float64(1), counterFor(t, families["opcua_nodeid_decoded_total"], "encoding", "string"))
	assert.Equal(t, float64(1), counterFor(t, families["opcua_nodeid_decode_errors_total"], "kind", "malformed_tag"))

	assert.Equal(t, float64(1), counterFor(t, families["opcua_cache_hits_total"], "component", "aliases"))
	assert.Equal(t, float64(1), counterFor(t, families["opcua_cache_sets_total"], "component", "aliases"))
	require.NotNil(t, families["opcua_cache_size"])
	assert.Equal(t, float64(1), families["opcua_cache_size"].Metric[0].GetGauge().GetValue())
}

func TestMetricsIntegration_CachesSideBySide(t *testing.T) {
	registry := metric.NewMetricsRegistry()

	browse, err := cache.NewSimple[int](cache.WithMetrics[int](registry, "browse"))
	require.NoError(t, err)
	defer browse.Close()
	aliases, err := cache.NewLRU[int](4, cache.WithMetrics[int](registry, "aliases"))
	require.NoError(t, err)
	defer aliases.Close()

	_, _ = browse.Set(nodeid.ObjectsFolderID(), 1)
	_, _ = browse.Set(nodeid.RootFolderID(), 2)
	_, _ = aliases.Set(nodeid.NewNumeric(2, 7), 7)

	sets := gather(t, registry)["opcua_cache_sets_total"]
	assert.Equal(t, float64(2), counterFor(t, sets, "component", "browse"))
	assert.Equal(t, float64(1), counterFor(t, sets, "component", "aliases"))
}

func TestMetricsIntegration_ReRegistrationConflicts(t *testing.T) {
	registry := metric.NewMetricsRegistry()

	first, err := cache.NewLRU[string](4, cache.WithMetrics[string](registry, "aliases"))
	require.NoError(t, err)

	_, err = cache.NewLRU[string](4, cache.WithMetrics[string](registry, "aliases"))
	require.Error(t, err)
	assert.True(t, errors.IsInvalid(err))

	// the codec metrics stay intact after the failed registration
	registry.CoreMetrics().RecordAllocation()
	assert.Equal(t, float64(1), gather(t, registry)["opcua_nodeid_allocated_total"].Metric[0].GetCounter().GetValue())

	require.NoError(t, first.Close())
	again, err := cache.NewLRU[string](4, cache.WithMetrics[string](registry, "aliases"))
	require.NoError(t, err)
	require.NoError(t, again.Close())
}

func TestMetricsIntegration_UnregisterUnknown(t *testing.T) {
	registry := metric.NewMetricsRegistry()
	assert.False(t, registry.Unregister("aliases", "cache_hits"))
}
