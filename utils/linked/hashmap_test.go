// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package linked

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// keys returns the keys of [lh], oldest first.
func keys[K comparable, V any](lh *Hashmap[K, V]) []K {
	var ks []K
	for it := lh.NewIterator(); it.Next(); {
		ks = append(ks, it.Key())
	}
	return ks
}

func TestHashmapOrder(t *testing.T) {
	type op struct {
		put    bool
		key    int
		value  string
		exists bool
	}
	tests := []struct {
		name           string
		ops            []op
		expectedKeys   []int
		expectedOldest int
	}{
		{
			name: "insertion order",
			ops: []op{
				{put: true, key: 1, value: "a"},
				{put: true, key: 2, value: "b"},
				{put: true, key: 3, value: "c"},
			},
			expectedKeys:   []int{1, 2, 3},
			expectedOldest: 1,
		},
		{
			name: "put on a resident key moves it to newest",
			ops: []op{
				{put: true, key: 1, value: "a"},
				{put: true, key: 2, value: "b"},
				{put: true, key: 1, value: "c"},
			},
			expectedKeys:   []int{2, 1},
			expectedOldest: 2,
		},
		{
			name: "delete oldest",
			ops: []op{
				{put: true, key: 1, value: "a"},
				{put: true, key: 2, value: "b"},
				{key: 1, exists: true},
			},
			expectedKeys:   []int{2},
			expectedOldest: 2,
		},
		{
			name: "interleaved deletes",
			ops: []op{
				{put: true, key: 1, value: "a"},
				{put: true, key: 2, value: "b"},
				{key: 2, exists: true},
				{put: true, key: 3, value: "c"},
				{key: 2},
				{put: true, key: 2, value: "d"},
				{key: 1, exists: true},
				{put: true, key: 4, value: "e"},
			},
			expectedKeys:   []int{3, 2, 4},
			expectedOldest: 3,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			lh := NewHashmap[int, string]()
			for _, op := range test.ops {
				if op.put {
					lh.Put(op.key, op.value)
					require.True(lh.Contains(op.key))
					continue
				}
				require.Equal(op.exists, lh.Delete(op.key))
				require.False(lh.Contains(op.key))
			}

			require.Equal(test.expectedKeys, keys(lh))
			require.Equal(len(test.expectedKeys), lh.Len())

			oldest, _, ok := lh.Oldest()
			require.True(ok)
			require.Equal(test.expectedOldest, oldest)
		})
	}
}

func TestHashmapPutUpdatesValue(t *testing.T) {
	require := require.New(t)

	lh := NewHashmap[string, int]()
	lh.Put("a", 1)
	lh.Put("a", 2)
	require.Equal(1, lh.Len())

	key, value, ok := lh.Oldest()
	require.True(ok)
	require.Equal("a", key)
	require.Equal(2, value)
}

func TestHashmapClearThenReuse(t *testing.T) {
	require := require.New(t)

	lh := NewHashmap[int, struct{}]()
	for i := 0; i < 4; i++ {
		lh.Put(i, struct{}{})
	}
	lh.Clear()

	require.Zero(lh.Len())
	require.Empty(keys(lh))
	require.Len(lh.freeList, 4)
	_, _, ok := lh.Oldest()
	require.False(ok)

	lh.Put(7, struct{}{})
	lh.Put(5, struct{}{})
	require.Len(lh.freeList, 2)
	require.Equal([]int{7, 5}, keys(lh))
	require.False(lh.Contains(0))
}

func TestHashmapDeleteReleasesElement(t *testing.T) {
	require := require.New(t)

	lh := NewHashmap[int, string]()
	lh.Put(1, "a")
	lh.Put(2, "b")
	require.Empty(lh.freeList)

	require.True(lh.Delete(1))
	require.False(lh.Delete(1))
	require.Len(lh.freeList, 1)
	require.Equal(keyValue[int, string]{}, lh.freeList[0].Value)

	lh.Put(3, "c")
	require.Empty(lh.freeList)
	require.Equal([]int{2, 3}, keys(lh))
}

func TestIteratorExhausted(t *testing.T) {
	require := require.New(t)

	lh := NewHashmap[int, string]()
	lh.Put(1, "a")

	it := lh.NewIterator()
	require.True(it.Next())
	require.Equal(1, it.Key())
	require.Equal("a", it.Value())

	require.False(it.Next())
	require.Zero(it.Key())
	require.Empty(it.Value())

	// Entries added after exhaustion aren't returned.
	lh.Put(2, "b")
	require.False(it.Next())
}

func TestIteratorIsLazy(t *testing.T) {
	require := require.New(t)

	lh := NewHashmap[int, string]()
	it := lh.NewIterator()

	// Entries added before the first call to Next are returned.
	lh.Put(1, "a")
	lh.Put(2, "b")
	require.True(it.Next())
	require.Equal(1, it.Key())

	// Deleting an already returned entry doesn't affect the iterator.
	require.True(lh.Delete(1))
	require.True(it.Next())
	require.Equal(2, it.Key())
	require.False(it.Next())
}

func TestListMoveToBack(t *testing.T) {
	require := require.New(t)

	var (
		l     List[int]
		elems = make([]*ListElement[int], 3)
	)
	for i := range elems {
		elems[i] = &ListElement[int]{Value: i}
		l.PushBack(elems[i])
	}
	l.MoveToBack(elems[0])
	l.MoveToBack(elems[0]) // already at the back

	var values []int
	for e := l.Front(); e != nil; e = e.Next() {
		values = append(values, e.Value)
	}
	require.Equal([]int{1, 2, 0}, values)
	require.Equal(3, l.Len())

	// Removing an element that isn't in the list is a noop.
	l.Remove(&ListElement[int]{})
	l.Remove(elems[1])
	l.Remove(elems[1])
	require.Equal(2, l.Len())
	require.Equal(elems[2], l.Front())
}
