// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestAppendNamespace(t *testing.T) {
	tests := []struct {
		prefix   string
		suffix   string
		expected string
	}{
		{
			prefix:   "burstcache",
			suffix:   "tiered",
			expected: "burstcache_tiered",
		},
		{
			prefix:   "",
			suffix:   "tiered",
			expected: "tiered",
		},
		{
			prefix:   "burstcache",
			suffix:   "",
			expected: "burstcache",
		},
		{
			prefix:   "",
			suffix:   "",
			expected: "",
		},
	}
	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			require.Equal(t, test.expected, AppendNamespace(test.prefix, test.suffix))
		})
	}
}

func TestSnapshot(t *testing.T) {
	require := require.New(t)

	registry := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "counter"})
	gauge := prometheus.NewGauge(prometheus.GaugeOpts{Name: "gauge"})
	vec := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "vec"}, []string{"b", "a"})
	latency := NewNanosecondsLatencyMetric("ns", "get")
	require.NoError(registry.Register(counter))
	require.NoError(registry.Register(gauge))
	require.NoError(registry.Register(vec))
	require.NoError(registry.Register(latency))

	counter.Add(3)
	gauge.Set(-2)
	vec.WithLabelValues("x", "y").Inc()
	ObserveSince(latency, time.Now())
	ObserveSince(latency, time.Now())

	values, err := Snapshot(registry)
	require.NoError(err)
	require.Equal(
		map[string]float64{
			"counter":          3,
			"gauge":            -2,
			`vec{a="y",b="x"}`: 1,
			"ns_get_count":     2,
		},
		values,
	)
}
