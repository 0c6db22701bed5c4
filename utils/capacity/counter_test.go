// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package capacity

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCounterBounded(t *testing.T) {
	require := require.New(t)

	c := NewCounter(2)
	require.Equal(2, c.Limit())
	require.True(c.TryAcquire())
	require.True(c.TryAcquire())
	require.False(c.TryAcquire())
	require.True(c.Full())
	require.Equal(2, c.Len())

	require.True(c.Release())
	require.False(c.Full())
	require.True(c.TryAcquire())

	require.Equal(2, c.Reset())
	require.Zero(c.Len())
	require.False(c.Release())
}

func TestCounterUnbounded(t *testing.T) {
	require := require.New(t)

	c := NewCounter(0)
	for i := 0; i < 1000; i++ {
		require.True(c.TryAcquire())
	}
	require.False(c.Full())
	require.Zero(c.Limit())
	require.Equal(1000, c.Len())
	require.Equal(1000, c.ReleaseN(5000))
	require.Zero(c.ReleaseN(1))
}

func TestCounterConcurrentAcquireNeverExceedsLimit(t *testing.T) {
	require := require.New(t)

	const (
		limit   = 50
		workers = 16
		tries   = 1000
	)
	c := NewCounter(limit)

	var (
		wg       sync.WaitGroup
		acquired atomic.Int64
		maxSeen  atomic.Int64
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < tries; j++ {
				if !c.TryAcquire() {
					continue
				}
				acquired.Add(1)
				if n := int64(c.Len()); n > maxSeen.Load() {
					maxSeen.Store(n)
				}
				if j%2 == 0 {
					c.Release()
					acquired.Add(-1)
				}
			}
		}()
	}
	wg.Wait()

	require.LessOrEqual(maxSeen.Load(), int64(limit))
	require.Equal(acquired.Load(), int64(c.Len()))
	require.LessOrEqual(c.Len(), limit)
}
