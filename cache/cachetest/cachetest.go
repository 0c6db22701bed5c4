// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package cachetest is a behavioural suite shared by every cache.Cache
// implementation.
package cachetest

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/burstcache/cache"
)

// Size is the number of entries every test in the suite may store without
// triggering eviction.
const Size = 16

// Tests is the list of all cache.Cache tests. Each test receives a fresh
// cache able to hold at least Size entries.
var Tests = []struct {
	Name string
	Func func(t *testing.T, c cache.Cache[int, int64])
}{
	{Name: "basic", Func: TestBasic},
	{Name: "get and put", Func: TestGetAndPut},
	{Name: "remove", Func: TestRemove},
	{Name: "replace", Func: TestReplace},
	{Name: "bulk", Func: TestBulk},
	{Name: "iterator", Func: TestIterator},
	{Name: "clear", Func: TestClear},
	{Name: "created listener", Func: TestCreatedListener},
	{Name: "close", Func: TestClose},
}

// Run executes every test against caches built by [setup].
func Run(t *testing.T, setup func(t *testing.T) cache.Cache[int, int64]) {
	for _, test := range Tests {
		t.Run(test.Name, func(t *testing.T) {
			test.Func(t, setup(t))
		})
	}
}

func TestBasic(t *testing.T, c cache.Cache[int, int64]) {
	require := require.New(t)

	_, found, err := c.Get(1)
	require.NoError(err)
	require.False(found)

	contains, err := c.ContainsKey(1)
	require.NoError(err)
	require.False(contains)

	require.NoError(c.Put(1, 1))
	value, found, err := c.Get(1)
	require.NoError(err)
	require.True(found)
	require.Equal(int64(1), value)

	require.NoError(c.Put(1, 2))
	value, found, err = c.Get(1)
	require.NoError(err)
	require.True(found)
	require.Equal(int64(2), value)

	contains, err = c.ContainsKey(1)
	require.NoError(err)
	require.True(contains)
	require.False(c.IsClosed())
}

func TestGetAndPut(t *testing.T, c cache.Cache[int, int64]) {
	require := require.New(t)

	_, found, err := c.GetAndPut(1, 1)
	require.NoError(err)
	require.False(found)

	previous, found, err := c.GetAndPut(1, 2)
	require.NoError(err)
	require.True(found)
	require.Equal(int64(1), previous)

	value, found, err := c.Get(1)
	require.NoError(err)
	require.True(found)
	require.Equal(int64(2), value)
}

func TestRemove(t *testing.T, c cache.Cache[int, int64]) {
	require := require.New(t)

	removed, err := c.Remove(1)
	require.NoError(err)
	require.False(removed)

	require.NoError(c.Put(1, 1))
	require.NoError(c.Put(2, 2))

	removed, err = c.Remove(1)
	require.NoError(err)
	require.True(removed)

	_, found, err := c.Get(1)
	require.NoError(err)
	require.False(found)

	value, found, err := c.GetAndRemove(2)
	require.NoError(err)
	require.True(found)
	require.Equal(int64(2), value)

	_, found, err = c.GetAndRemove(2)
	require.NoError(err)
	require.False(found)
}

func TestReplace(t *testing.T, c cache.Cache[int, int64]) {
	require := require.New(t)

	replaced, err := c.Replace(1, 1)
	require.NoError(err)
	require.False(replaced)

	_, found, err := c.Get(1)
	require.NoError(err)
	require.False(found)

	_, found, err = c.GetAndReplace(1, 1)
	require.NoError(err)
	require.False(found)

	require.NoError(c.Put(1, 1))
	replaced, err = c.Replace(1, 2)
	require.NoError(err)
	require.True(replaced)

	previous, found, err := c.GetAndReplace(1, 3)
	require.NoError(err)
	require.True(found)
	require.Equal(int64(2), previous)

	value, found, err := c.Get(1)
	require.NoError(err)
	require.True(found)
	require.Equal(int64(3), value)
}

func TestBulk(t *testing.T, c cache.Cache[int, int64]) {
	require := require.New(t)

	entries := make(map[int]int64, Size/2)
	for i := range Size / 2 {
		entries[i] = int64(i * 10)
	}
	require.NoError(c.PutAll(entries))

	got, err := c.GetAll([]int{0, 1, Size / 2, Size})
	require.NoError(err)
	require.Equal(map[int]int64{0: 0, 1: 10}, got)

	got, err = c.GetAll(nil)
	require.NoError(err)
	require.Empty(got)
}

func TestIterator(t *testing.T, c cache.Cache[int, int64]) {
	require := require.New(t)

	got, err := cache.Collect(c.Iterator())
	require.NoError(err)
	require.Empty(got)

	expected := make(map[int]int64, Size)
	for i := range Size {
		expected[i] = int64(i)
		require.NoError(c.Put(i, int64(i)))
	}

	got, err = cache.Collect(c.Iterator())
	require.NoError(err)
	require.Equal(expected, got)

	it := c.Iterator()
	require.True(it.Next())
	entry := it.Entry()
	require.Equal(it.Key(), entry.Key)
	require.Equal(it.Value(), entry.Value)
	_, err = entry.Unwrap()
	require.ErrorIs(err, cache.ErrNotSupported)
	it.Release()
}

func TestClear(t *testing.T, c cache.Cache[int, int64]) {
	require := require.New(t)

	for i := range Size {
		require.NoError(c.Put(i, int64(i)))
	}
	require.NoError(c.Clear())
	for i := range Size {
		_, found, err := c.Get(i)
		require.NoError(err)
		require.False(found)
	}

	for i := range Size {
		require.NoError(c.Put(i, int64(i)))
	}
	require.NoError(c.RemoveAll())
	got, err := cache.Collect(c.Iterator())
	require.NoError(err)
	require.Empty(got)
}

func TestCreatedListener(t *testing.T, c cache.Cache[int, int64]) {
	require := require.New(t)

	var (
		lock    sync.Mutex
		created []cache.Entry[int, int64]
	)
	require.NoError(c.RegisterCreatedListener(func(e cache.Entry[int, int64]) {
		lock.Lock()
		defer lock.Unlock()

		created = append(created, e)
	}))

	require.NoError(c.Put(1, 1))
	require.NoError(c.Put(1, 2))
	_, _, err := c.GetAndPut(2, 2)
	require.NoError(err)
	_, _, err = c.GetAndPut(2, 3)
	require.NoError(err)

	lock.Lock()
	defer lock.Unlock()

	require.ElementsMatch(
		[]cache.Entry[int, int64]{
			{Key: 1, Value: 1},
			{Key: 2, Value: 2},
		},
		created,
	)
}

func TestClose(t *testing.T, c cache.Cache[int, int64]) {
	require := require.New(t)

	require.NoError(c.Put(1, 1))
	require.NoError(c.Close())
	require.True(c.IsClosed())
	require.NoError(c.Close())

	_, _, err := c.Get(1)
	require.ErrorIs(err, cache.ErrClosed)
	err = c.Put(2, 2)
	require.ErrorIs(err, cache.ErrClosed)
}
