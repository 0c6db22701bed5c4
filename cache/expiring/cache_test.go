// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package expiring

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/ava-labs/burstcache/cache"
	"github.com/ava-labs/burstcache/utils/timer/mockable"
)

func newFakeClock() *mockable.Clock {
	clock := &mockable.Clock{}
	clock.Set(time.Unix(1_000, 0))
	return clock
}

func TestGetHonorsExpiry(t *testing.T) {
	require := require.New(t)

	clock := newFakeClock()
	c := New[string, int]("results", time.Second, clock)
	require.Equal("results", c.Name())

	_, ok := c.Get("a")
	require.False(ok)

	c.Put("a", 1)
	value, ok := c.Get("a")
	require.True(ok)
	require.Equal(1, value)

	clock.Advance(999 * time.Millisecond)
	_, ok = c.Get("a")
	require.True(ok)

	clock.Advance(time.Millisecond)
	_, ok = c.Get("a")
	require.False(ok)

	// Reads don't remove expired entries.
	require.Equal(1, c.Len())
}

func TestSetTTLOnlyAffectsNewEntries(t *testing.T) {
	require := require.New(t)

	clock := newFakeClock()
	c := New[string, int]("results", time.Second, clock)

	c.Put("short", 1)
	c.SetTTL(time.Minute)
	require.Equal(time.Minute, c.TTL())
	c.Put("long", 2)

	clock.Advance(2 * time.Second)
	_, ok := c.Get("short")
	require.False(ok)
	value, ok := c.Get("long")
	require.True(ok)
	require.Equal(2, value)
}

func TestIteratorPurgesExpired(t *testing.T) {
	require := require.New(t)

	clock := newFakeClock()
	c := New[string, int]("results", time.Second, clock)

	c.Put("old", 1)
	clock.Advance(500 * time.Millisecond)
	c.Put("new", 2)
	clock.Advance(600 * time.Millisecond)

	got, err := cache.Collect(c.Iterator())
	require.NoError(err)
	require.Equal(map[string]int{"new": 2}, got)
	require.Equal(1, c.Len())
}

func TestReplace(t *testing.T) {
	require := require.New(t)

	clock := newFakeClock()
	c := New[string, int]("results", time.Second, clock)

	require.False(c.Replace("a", 0, 1))

	c.Put("a", 1)
	require.False(c.Replace("a", 2, 3))
	require.True(c.Replace("a", 1, 3))
	value, ok := c.Get("a")
	require.True(ok)
	require.Equal(3, value)

	// The replacement is given a fresh lifetime.
	clock.Advance(900 * time.Millisecond)
	require.True(c.Replace("a", 3, 4))
	clock.Advance(900 * time.Millisecond)
	value, ok = c.Get("a")
	require.True(ok)
	require.Equal(4, value)

	clock.Advance(100 * time.Millisecond)
	require.False(c.Replace("a", 4, 5))
}

func TestReplaceIsAtomic(t *testing.T) {
	require := require.New(t)

	c := New[string, int]("counter", time.Hour, newFakeClock())
	c.Put("n", 0)

	const (
		numWorkers    = 8
		numIncrements = 100
	)
	var eg errgroup.Group
	for range numWorkers {
		eg.Go(func() error {
			for range numIncrements {
				for {
					current, _ := c.Get("n")
					if c.Replace("n", current, current+1) {
						break
					}
				}
			}
			return nil
		})
	}
	require.NoError(eg.Wait())

	value, ok := c.Get("n")
	require.True(ok)
	require.Equal(numWorkers*numIncrements, value)
}

func TestGetAndReplace(t *testing.T) {
	require := require.New(t)

	clock := newFakeClock()
	c := New[string, int]("results", time.Second, clock)

	_, ok := c.GetAndReplace("a", 1)
	require.False(ok)
	_, ok = c.Get("a")
	require.False(ok)

	c.Put("a", 1)
	previous, ok := c.GetAndReplace("a", 2)
	require.True(ok)
	require.Equal(1, previous)

	clock.Advance(time.Second)
	_, ok = c.GetAndReplace("a", 3)
	require.False(ok)
}

func TestRemove(t *testing.T) {
	require := require.New(t)

	clock := newFakeClock()
	c := New[int, int]("results", time.Second, clock)
	for i := range 4 {
		c.Put(i, i)
	}

	require.True(c.Remove(0))
	require.False(c.Remove(0))

	c.RemoveAllKeys([]int{1, 2})
	_, ok := c.Get(1)
	require.False(ok)
	require.Equal(1, c.Len())

	clock.Advance(time.Second)
	require.False(c.Remove(3))
	require.Zero(c.Len())

	c.Put(5, 5)
	c.RemoveAll()
	require.Zero(c.Len())

	c.Put(6, 6)
	c.Clear()
	require.Zero(c.Len())
}

func TestPurge(t *testing.T) {
	require := require.New(t)

	clock := newFakeClock()
	c := New[int, int]("results", time.Second, clock)
	for i := range 10 {
		c.Put(i, i)
		if i == 4 {
			clock.Advance(time.Second)
		}
	}

	require.Equal(5, c.Purge())
	require.Equal(5, c.Len())
	require.Zero(c.Purge())
}

func TestRunJanitor(t *testing.T) {
	require := require.New(t)

	clock := newFakeClock()
	c := New[int, int]("results", time.Second, clock)
	c.Put(1, 1)
	clock.Advance(time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	var (
		once   sync.Once
		purged = make(chan int, 1)
		done   = make(chan struct{})
	)
	go func() {
		defer close(done)
		c.RunJanitor(ctx, time.Millisecond, func(n int) {
			if n > 0 {
				once.Do(func() {
					purged <- n
				})
			}
		})
	}()

	require.Equal(1, <-purged)
	cancel()
	<-done
	require.Zero(c.Len())
}
