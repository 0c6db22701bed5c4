// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metercacher

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/burstcache/cache"
	"github.com/ava-labs/burstcache/cache/cachetest"
	"github.com/ava-labs/burstcache/cache/lru"
	"github.com/ava-labs/burstcache/utils/metric"
)

func TestInterface(t *testing.T) {
	cachetest.Run(t, func(t *testing.T) cache.Cache[int, int64] {
		baseCache, err := lru.NewCache[int, int64](cache.Configuration{Capacity: cachetest.Size})
		require.NoError(t, err)
		c, err := New("", prometheus.NewRegistry(), cache.Cache[int, int64](baseCache))
		require.NoError(t, err)
		return c
	})
}

func TestMetrics(t *testing.T) {
	require := require.New(t)

	baseCache, err := lru.NewCache[string, int](cache.Configuration{Capacity: 2})
	require.NoError(err)
	registry := prometheus.NewRegistry()
	c, err := New[string, int]("meter", registry, baseCache)
	require.NoError(err)

	require.NoError(c.Put("a", 1))
	_, found, err := c.Get("a")
	require.NoError(err)
	require.True(found)
	_, found, err = c.Get("b")
	require.NoError(err)
	require.False(found)

	values, err := c.GetAll([]string{"a", "b", "c"})
	require.NoError(err)
	require.Len(values, 1)

	_, err = c.Replace("a", 2)
	require.NoError(err)
	_, err = c.Remove("a")
	require.NoError(err)
	require.NoError(c.Close())
	_, _, err = c.Get("a")
	require.ErrorIs(err, cache.ErrClosed)

	snapshot, err := metric.Snapshot(registry)
	require.NoError(err)
	require.Equal(2.0, snapshot["meter_hit"])
	require.Equal(3.0, snapshot["meter_miss"])
	require.Equal(1.0, snapshot["meter_failure"])
	require.Equal(4.0, snapshot["meter_get_count"])
	require.Equal(1.0, snapshot["meter_put_count"])
	require.Equal(1.0, snapshot["meter_replace_count"])
	require.Equal(1.0, snapshot["meter_remove_count"])
}

func TestDuplicateRegistration(t *testing.T) {
	require := require.New(t)

	registry := prometheus.NewRegistry()
	baseCache, err := lru.NewCache[string, int](cache.Configuration{})
	require.NoError(err)

	_, err = New[string, int]("dup", registry, baseCache)
	require.NoError(err)
	_, err = New[string, int]("dup", registry, baseCache)
	var alreadyRegistered prometheus.AlreadyRegisteredError
	require.ErrorAs(err, &alreadyRegistered)
}
