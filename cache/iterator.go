// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cache

import "iter"

var (
	_ Iterator[int, int] = (*sliceIterator[int, int])(nil)
	_ Iterator[int, int] = (*seqIterator[int, int])(nil)
	_ Iterator[int, int] = (*concatIterator[int, int])(nil)
	_ Iterator[int, int] = (*errIterator[int, int])(nil)
)

// Iterator walks the entries of a cache.
//
// Next must be called before the first Key, Value or Entry. Once Next returns
// false, Error reports whether iteration stopped early. Release must be called
// when the iterator is no longer needed.
type Iterator[K comparable, V any] interface {
	Next() bool
	Key() K
	Value() V
	Entry() Entry[K, V]
	Error() error
	Release()
}

// Collect drains [it] into a map and releases it.
func Collect[K comparable, V any](it Iterator[K, V]) (map[K]V, error) {
	defer it.Release()

	entries := make(map[K]V)
	for it.Next() {
		entries[it.Key()] = it.Value()
	}
	return entries, it.Error()
}

// NewSliceIterator iterates over a snapshot of entries.
func NewSliceIterator[K comparable, V any](entries []Entry[K, V]) Iterator[K, V] {
	return &sliceIterator[K, V]{entries: entries, index: -1}
}

type sliceIterator[K comparable, V any] struct {
	entries []Entry[K, V]
	index   int
}

func (it *sliceIterator[K, V]) Next() bool {
	if it.index+1 >= len(it.entries) {
		it.index = len(it.entries)
		return false
	}
	it.index++
	return true
}

func (it *sliceIterator[K, V]) Entry() Entry[K, V] {
	if it.index < 0 || it.index >= len(it.entries) {
		return Entry[K, V]{}
	}
	return it.entries[it.index]
}

func (it *sliceIterator[K, V]) Key() K   { return it.Entry().Key }
func (it *sliceIterator[K, V]) Value() V { return it.Entry().Value }
func (*sliceIterator[_, _]) Error() error {
	return nil
}

func (it *sliceIterator[_, _]) Release() {
	it.entries = nil
	it.index = 0
}

// NewSeqIterator pulls from a live sequence. The sequence is suspended between
// calls to Next and stopped by Release.
func NewSeqIterator[K comparable, V any](seq iter.Seq2[K, V]) Iterator[K, V] {
	next, stop := iter.Pull2(seq)
	return &seqIterator[K, V]{next: next, stop: stop}
}

type seqIterator[K comparable, V any] struct {
	next    func() (K, V, bool)
	stop    func()
	current Entry[K, V]
}

func (it *seqIterator[K, V]) Next() bool {
	k, v, ok := it.next()
	if !ok {
		it.current = Entry[K, V]{}
		return false
	}
	it.current = Entry[K, V]{Key: k, Value: v}
	return true
}

func (it *seqIterator[K, V]) Entry() Entry[K, V] { return it.current }
func (it *seqIterator[K, V]) Key() K             { return it.current.Key }
func (it *seqIterator[K, V]) Value() V           { return it.current.Value }
func (*seqIterator[_, _]) Error() error {
	return nil
}

func (it *seqIterator[_, _]) Release() {
	it.stop()
}

// Concat walks each iterator in order. Iteration stops at the first iterator
// that reports an error.
func Concat[K comparable, V any](iterators ...Iterator[K, V]) Iterator[K, V] {
	return &concatIterator[K, V]{iterators: iterators}
}

type concatIterator[K comparable, V any] struct {
	iterators []Iterator[K, V]
	err       error
}

func (it *concatIterator[K, V]) Next() bool {
	for len(it.iterators) > 0 {
		current := it.iterators[0]
		if current.Next() {
			return true
		}
		if err := current.Error(); err != nil {
			it.err = err
			it.Release()
			return false
		}
		current.Release()
		it.iterators = it.iterators[1:]
	}
	return false
}

func (it *concatIterator[K, V]) Entry() Entry[K, V] {
	if len(it.iterators) == 0 {
		return Entry[K, V]{}
	}
	return it.iterators[0].Entry()
}

func (it *concatIterator[K, V]) Key() K   { return it.Entry().Key }
func (it *concatIterator[K, V]) Value() V { return it.Entry().Value }

func (it *concatIterator[_, _]) Error() error {
	return it.err
}

func (it *concatIterator[_, _]) Release() {
	for _, i := range it.iterators {
		i.Release()
	}
	it.iterators = nil
}

// Lazy returns an iterator that calls [newIterator] on the first call to
// Next. Releasing it before then never creates the underlying iterator.
func Lazy[K comparable, V any](newIterator func() Iterator[K, V]) Iterator[K, V] {
	return &lazyIterator[K, V]{newIterator: newIterator}
}

type lazyIterator[K comparable, V any] struct {
	newIterator func() Iterator[K, V]
	it          Iterator[K, V]
}

func (it *lazyIterator[_, _]) Next() bool {
	if it.newIterator != nil {
		it.it = it.newIterator()
		it.newIterator = nil
	}
	return it.it != nil && it.it.Next()
}

func (it *lazyIterator[K, V]) Entry() Entry[K, V] {
	if it.it == nil {
		return Entry[K, V]{}
	}
	return it.it.Entry()
}

func (it *lazyIterator[K, _]) Key() K   { return it.Entry().Key }
func (it *lazyIterator[_, V]) Value() V { return it.Entry().Value }

func (it *lazyIterator[_, _]) Error() error {
	if it.it == nil {
		return nil
	}
	return it.it.Error()
}

func (it *lazyIterator[_, _]) Release() {
	it.newIterator = nil
	if it.it != nil {
		it.it.Release()
		it.it = nil
	}
}

// NewErrIterator returns an empty iterator that reports [err].
func NewErrIterator[K comparable, V any](err error) Iterator[K, V] {
	return &errIterator[K, V]{err: err}
}

type errIterator[K comparable, V any] struct {
	err error
}

func (*errIterator[_, _]) Next() bool { return false }

func (*errIterator[K, V]) Entry() Entry[K, V] { return Entry[K, V]{} }
func (*errIterator[K, _]) Key() K            { return *new(K) }
func (*errIterator[_, V]) Value() V          { return *new(V) }
func (it *errIterator[_, _]) Error() error   { return it.err }
func (*errIterator[_, _]) Release()          {}
