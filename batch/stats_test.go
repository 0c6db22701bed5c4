// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package batch

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/burstcache/utils/metric"
)

func TestStats(t *testing.T) {
	require := require.New(t)

	registry := prometheus.NewRegistry()
	stats, err := NewStats("processor", registry)
	require.NoError(err)

	stats.Inc(ItemsAdded)
	stats.Inc(ItemsAdded)
	stats.Add(ItemsProcessed, 5)
	stats.Inc(Counter("unknown"))

	require.Equal(int64(2), stats.Get(ItemsAdded))
	require.Equal(int64(5), stats.Get(ItemsProcessed))
	require.Zero(stats.Get(Counter("unknown")))

	snapshot := stats.Snapshot()
	require.Len(snapshot, len(Counters))
	require.Equal(int64(2), snapshot[ItemsAdded])
	require.Zero(snapshot[Batches])

	values, err := metric.Snapshot(registry)
	require.NoError(err)
	require.Equal(2.0, values[`processor_events{kind="items_added"}`])
	require.Equal(5.0, values[`processor_events{kind="items_processed"}`])
}

func TestStatsWithoutRegisterer(t *testing.T) {
	stats, err := NewStats("", nil)
	require.NoError(t, err)
	stats.Inc(Batches)
	require.Equal(t, int64(1), stats.Get(Batches))
}
