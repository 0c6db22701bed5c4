// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package heap

import "container/heap"

var _ heap.Interface = (*indexedQueue[int, int])(nil)

// NewMap returns a heap of values keyed by K, ordered by [less].
func NewMap[K comparable, V any](less func(a, b V) bool) Map[K, V] {
	return Map[K, V]{
		queue: &indexedQueue[K, V]{
			index: make(map[K]int),
			less:  less,
		},
	}
}

// Map is a heap that holds at most one value per key. The zero value is not
// usable; use NewMap.
type Map[K comparable, V any] struct {
	queue *indexedQueue[K, V]
}

// Push inserts [v] under [k]. If [k] was already present its value is
// replaced in place, the heap is re-ordered, and the previous value is
// returned.
func (m Map[K, V]) Push(k K, v V) (V, bool) {
	if i, ok := m.queue.index[k]; ok {
		prev := m.queue.entries[i].v
		m.queue.entries[i].v = v
		heap.Fix(m.queue, i)
		return prev, true
	}

	heap.Push(m.queue, entry[K, V]{k: k, v: v})
	return *new(V), false
}

// Pop removes and returns the top of the heap.
func (m Map[K, V]) Pop() (K, V, bool) {
	if m.Len() == 0 {
		return *new(K), *new(V), false
	}

	popped := heap.Pop(m.queue).(entry[K, V])
	return popped.k, popped.v, true
}

// Peek returns the top of the heap without removing it.
func (m Map[K, V]) Peek() (K, V, bool) {
	if m.Len() == 0 {
		return *new(K), *new(V), false
	}

	e := m.queue.entries[0]
	return e.k, e.v, true
}

func (m Map[K, V]) Len() int {
	return len(m.queue.entries)
}

// Remove deletes [k] from the heap, returning its value.
func (m Map[K, V]) Remove(k K) (V, bool) {
	i, ok := m.queue.index[k]
	if !ok {
		return *new(V), false
	}

	removed := heap.Remove(m.queue, i).(entry[K, V])
	return removed.v, true
}

// Fix re-establishes the heap ordering after the value of [k] changed.
func (m Map[K, V]) Fix(k K) {
	if i, ok := m.queue.index[k]; ok {
		heap.Fix(m.queue, i)
	}
}

func (m Map[K, V]) Get(k K) (V, bool) {
	if i, ok := m.queue.index[k]; ok {
		return m.queue.entries[i].v, true
	}
	return *new(V), false
}

func (m Map[K, V]) Contains(k K) bool {
	_, ok := m.queue.index[k]
	return ok
}

// Clear removes every entry.
func (m Map[K, V]) Clear() {
	clear(m.queue.entries)
	m.queue.entries = m.queue.entries[:0]
	clear(m.queue.index)
}

type entry[K any, V any] struct {
	k K
	v V
}

type indexedQueue[K comparable, V any] struct {
	entries []entry[K, V]
	index   map[K]int
	less    func(a, b V) bool
}

func (q *indexedQueue[K, V]) Len() int {
	return len(q.entries)
}

func (q *indexedQueue[K, V]) Less(i, j int) bool {
	return q.less(q.entries[i].v, q.entries[j].v)
}

func (q *indexedQueue[K, V]) Swap(i, j int) {
	q.entries[i], q.entries[j] = q.entries[j], q.entries[i]
	q.index[q.entries[i].k] = i
	q.index[q.entries[j].k] = j
}

func (q *indexedQueue[K, V]) Push(x any) {
	e := x.(entry[K, V])
	q.index[e.k] = len(q.entries)
	q.entries = append(q.entries, e)
}

func (q *indexedQueue[K, V]) Pop() any {
	end := len(q.entries) - 1

	popped := q.entries[end]
	q.entries[end] = entry[K, V]{}
	q.entries = q.entries[:end]

	delete(q.index, popped.k)
	return popped
}
