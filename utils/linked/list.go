// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package linked

// ListElement is an element of a linked list.
type ListElement[T any] struct {
	next, prev *ListElement[T]
	list       *List[T]
	Value      T
}

// Next returns the next element or nil.
func (e *ListElement[T]) Next() *ListElement[T] {
	if n := e.next; e.list != nil && n != &e.list.sentinel {
		return n
	}
	return nil
}

// List is a doubly linked list. Unlike container/list, elements are
// allocated by the caller so that they can be re-used after removal.
//
// The zero value is an empty list.
type List[T any] struct {
	sentinel ListElement[T]
	length   int
}

func (l *List[T]) lazyInit() {
	if l.sentinel.next == nil {
		l.sentinel.next = &l.sentinel
		l.sentinel.prev = &l.sentinel
	}
}

func (l *List[T]) Len() int {
	return l.length
}

// Front returns the first element or nil.
func (l *List[T]) Front() *ListElement[T] {
	if l.length == 0 {
		return nil
	}
	return l.sentinel.next
}

// PushBack inserts [e] at the back of the list. [e] must not already be in a
// list.
func (l *List[T]) PushBack(e *ListElement[T]) {
	l.lazyInit()
	l.insertAfter(e, l.sentinel.prev)
}

// Remove removes [e] from the list. Removing an element that is not in [l]
// is a noop.
func (l *List[T]) Remove(e *ListElement[T]) {
	if e.list != l {
		return
	}

	e.prev.next = e.next
	e.next.prev = e.prev
	e.next = nil
	e.prev = nil
	e.list = nil
	l.length--
}

// MoveToBack moves [e] to the back of the list.
func (l *List[T]) MoveToBack(e *ListElement[T]) {
	if e.list != l || l.sentinel.prev == e {
		return
	}

	l.Remove(e)
	l.PushBack(e)
}

func (l *List[T]) insertAfter(e, at *ListElement[T]) {
	e.prev = at
	e.next = at.next
	e.prev.next = e
	e.next.prev = e
	e.list = l
	l.length++
}
