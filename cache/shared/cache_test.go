// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package shared

import (
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/ava-labs/burstcache/utils/timer/mockable"
)

type payload struct {
	body string
}

func newPayload(calls *atomic.Int64) Provider[string, *payload] {
	return func(key string) *payload {
		calls.Add(1)
		return &payload{body: key}
	}
}

func TestPutSharesInstances(t *testing.T) {
	require := require.New(t)

	var calls atomic.Int64
	c := New[int, string, *payload](nil)

	first := c.Put(1, "body", newPayload(&calls), time.Minute)
	second := c.Put(2, "body", newPayload(&calls), time.Minute)
	other := c.Put(3, "other", newPayload(&calls), time.Minute)

	require.Same(first, second)
	require.NotSame(first, other)
	require.Equal(int64(2), calls.Load())

	got, ok := c.Get(2)
	require.True(ok)
	require.Same(first, got)
	require.Equal(3, c.Len())
	require.Equal(2, c.Shared())
}

func TestConcurrentPutsComputeOnce(t *testing.T) {
	require := require.New(t)

	var calls atomic.Int64
	c := New[int, string, *payload](nil)
	provider := func(key string) *payload {
		calls.Add(1)
		time.Sleep(time.Millisecond)
		return &payload{body: key}
	}

	const numPuts = 64
	results := make([]*payload, numPuts)
	var eg errgroup.Group
	for i := range numPuts {
		eg.Go(func() error {
			results[i] = c.Put(i, "body", provider, time.Minute)
			return nil
		})
	}
	require.NoError(eg.Wait())

	require.Equal(int64(1), calls.Load())
	for _, result := range results {
		require.Same(results[0], result)
	}
}

func TestGetHonorsExpiry(t *testing.T) {
	require := require.New(t)

	clock := &mockable.Clock{}
	clock.Set(time.Unix(0, 0))

	var calls atomic.Int64
	c := New[string, string, *payload](clock)
	c.Put("short", "body", newPayload(&calls), time.Second)
	c.Put("long", "body", newPayload(&calls), time.Hour)

	clock.Advance(time.Second)
	_, ok := c.Get("short")
	require.False(ok)
	_, ok = c.Get("long")
	require.True(ok)
	_, ok = c.Get("missing")
	require.False(ok)

	// Expiry of a primary entry doesn't drop the shared value.
	c.Put("short", "body", newPayload(&calls), time.Second)
	require.Equal(int64(1), calls.Load())
}

func TestForget(t *testing.T) {
	require := require.New(t)

	var calls atomic.Int64
	c := New[int, string, *payload](nil)

	before := c.Put(1, "body", newPayload(&calls), time.Minute)
	c.Forget("body")
	require.Zero(c.Shared())

	after := c.Put(2, "body", newPayload(&calls), time.Minute)
	require.NotSame(before, after)
	require.Equal(int64(2), calls.Load())

	got, ok := c.Get(1)
	require.True(ok)
	require.Same(before, got)

	c.Remove(1)
	_, ok = c.Get(1)
	require.False(ok)
}

func TestValueTypes(t *testing.T) {
	require := require.New(t)

	c := New[string, int, string](nil)
	value := c.Put("a", 7, strconv.Itoa, time.Minute)
	require.Equal("7", value)

	got, ok := c.Get("a")
	require.True(ok)
	require.Equal("7", got)
}

type pair struct {
	first, second string
}

func joinPair(p pair) string {
	return p.first + "|" + p.second
}

// Distinct keys with the same printed form must not share a computation.
func TestConcurrentPutsOfLookalikeKeys(t *testing.T) {
	require := require.New(t)

	c := New[int, pair, string](nil)

	var (
		a        = pair{first: "x y", second: "z"}
		b        = pair{first: "x", second: "y z"}
		entered  = make(chan struct{})
		release  = make(chan struct{})
		putFirst = make(chan string, 1)
	)
	go func() {
		putFirst <- c.Put(1, a, func(p pair) string {
			close(entered)
			<-release
			return joinPair(p)
		}, time.Minute)
	}()

	// The first computation is still running.
	<-entered
	require.Equal("x|y z", c.Put(2, b, joinPair, time.Minute))
	close(release)
	require.Equal("x y|z", <-putFirst)

	got, ok := c.Get(1)
	require.True(ok)
	require.Equal("x y|z", got)
	got, ok = c.Get(2)
	require.True(ok)
	require.Equal("x|y z", got)
	require.Equal(2, c.Shared())
}

func TestInterfaceKeysOfDifferentTypes(t *testing.T) {
	require := require.New(t)

	c := New[int, any, string](nil)
	describe := func(key any) string {
		switch key.(type) {
		case int:
			return "int"
		default:
			return "string"
		}
	}

	require.Equal("int", c.Put(1, 1, describe, time.Minute))
	require.Equal("string", c.Put(2, "1", describe, time.Minute))
	require.Equal(2, c.Shared())
}

func TestForgetThenPutComputesAgain(t *testing.T) {
	require := require.New(t)

	var calls atomic.Int64
	c := New[int, string, *payload](nil)

	c.Put(1, "body", newPayload(&calls), time.Minute)
	c.Forget("body")
	c.Forget("never stored")
	c.Put(2, "body", newPayload(&calls), time.Minute)
	c.Put(3, "body", newPayload(&calls), time.Minute)
	require.Equal(int64(2), calls.Load())
	require.Equal(1, c.Shared())
}
