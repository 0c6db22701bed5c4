// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package linked

type keyValue[K, V any] struct {
	key   K
	value V
}

// Hashmap provides an ordered O(1) mapping from keys to values.
//
// Entries are tracked by insertion order. Removed list elements are kept on a
// free list and reused by later puts.
type Hashmap[K comparable, V any] struct {
	entryMap  map[K]*ListElement[keyValue[K, V]]
	entryList *List[keyValue[K, V]]
	freeList  []*ListElement[keyValue[K, V]]
}

func NewHashmap[K comparable, V any]() *Hashmap[K, V] {
	return &Hashmap[K, V]{
		entryMap:  make(map[K]*ListElement[keyValue[K, V]]),
		entryList: &List[keyValue[K, V]]{},
	}
}

// Put sets [key] to [value] and marks it as the newest entry.
func (lh *Hashmap[K, V]) Put(key K, value V) {
	if e, ok := lh.entryMap[key]; ok {
		lh.entryList.MoveToBack(e)
		e.Value.value = value
		return
	}

	var e *ListElement[keyValue[K, V]]
	if numFree := len(lh.freeList); numFree > 0 {
		numFree--
		e = lh.freeList[numFree]
		lh.freeList = lh.freeList[:numFree]
	} else {
		e = &ListElement[keyValue[K, V]]{}
	}

	e.Value = keyValue[K, V]{
		key:   key,
		value: value,
	}
	lh.entryMap[key] = e
	lh.entryList.PushBack(e)
}

func (lh *Hashmap[K, V]) Contains(key K) bool {
	_, ok := lh.entryMap[key]
	return ok
}

// Delete removes [key], returning whether it was present.
func (lh *Hashmap[K, V]) Delete(key K) bool {
	e, ok := lh.entryMap[key]
	if ok {
		lh.remove(e)
	}
	return ok
}

func (lh *Hashmap[K, V]) Clear() {
	for _, e := range lh.entryMap {
		lh.remove(e)
	}
}

// Assumes [e] is in the map.
func (lh *Hashmap[K, V]) remove(e *ListElement[keyValue[K, V]]) {
	delete(lh.entryMap, e.Value.key)
	lh.entryList.Remove(e)
	e.Value = keyValue[K, V]{} // Free the key value pair
	lh.freeList = append(lh.freeList, e)
}

func (lh *Hashmap[K, V]) Len() int {
	return len(lh.entryMap)
}

func (lh *Hashmap[K, V]) Oldest() (K, V, bool) {
	if e := lh.entryList.Front(); e != nil {
		return e.Value.key, e.Value.value, true
	}
	return *new(K), *new(V), false
}

// NewIterator returns an iterator over the entries, oldest first. The
// iterator is lazily initialized on the first call to Next. Deleting the entry
// the iterator will return next invalidates the iterator.
func (lh *Hashmap[K, V]) NewIterator() *Iterator[K, V] {
	return &Iterator[K, V]{lh: lh}
}

// Iterator walks a Hashmap. It must not be used concurrently with writes.
type Iterator[K comparable, V any] struct {
	lh          *Hashmap[K, V]
	key         K
	value       V
	next        *ListElement[keyValue[K, V]]
	initialized bool
	exhausted   bool
}

func (it *Iterator[K, V]) Next() bool {
	if it.exhausted {
		return false
	}

	if !it.initialized {
		it.next = it.lh.entryList.Front()
		it.initialized = true
	}

	if it.next == nil {
		it.exhausted = true
		it.key = *new(K)
		it.value = *new(V)
		return false
	}

	it.key = it.next.Value.key
	it.value = it.next.Value.value
	it.next = it.next.Next()
	return true
}

func (it *Iterator[K, V]) Key() K {
	return it.key
}

func (it *Iterator[K, V]) Value() V {
	return it.value
}
