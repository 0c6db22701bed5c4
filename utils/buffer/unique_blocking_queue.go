// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package buffer

import (
	"sync"
	"time"

	"github.com/ava-labs/burstcache/utils/capacity"
	"github.com/ava-labs/burstcache/utils/linked"
)

// UniqueBlockingQueue is a thread-safe, bounded, insertion ordered blocking
// queue that holds each element at most once. Offering an element that is
// already queued succeeds without growing the queue.
type UniqueBlockingQueue[E comparable] struct {
	slots *capacity.Counter

	lock    sync.Mutex
	items   *linked.Hashmap[E, struct{}]
	changed signal
	closed  bool
}

// NewUniqueBlockingQueue returns a queue holding at most [limit] elements. A
// limit <= 0 means the queue is unbounded.
func NewUniqueBlockingQueue[E comparable](limit int) *UniqueBlockingQueue[E] {
	return &UniqueBlockingQueue[E]{
		slots:   capacity.NewCounter(limit),
		items:   linked.NewHashmap[E, struct{}](),
		changed: newSignal(),
	}
}

// Offer appends [e] unless it is already queued. Returns false if the queue
// is full or closed.
func (q *UniqueBlockingQueue[E]) Offer(e E) bool {
	q.lock.Lock()
	defer q.lock.Unlock()

	accepted, _ := q.offer(e)
	return accepted
}

// Put appends [e], waiting for space if needed. Returns false if the queue is
// closed.
func (q *UniqueBlockingQueue[E]) Put(e E) bool {
	return q.put(e, time.Time{})
}

// PutTimeout appends [e], waiting at most [timeout] for space.
func (q *UniqueBlockingQueue[E]) PutTimeout(e E, timeout time.Duration) bool {
	return q.put(e, time.Now().Add(timeout))
}

func (q *UniqueBlockingQueue[E]) put(e E, deadline time.Time) bool {
	for {
		q.lock.Lock()
		accepted, retry := q.offer(e)
		woken := q.changed.wait()
		q.lock.Unlock()

		if accepted || !retry {
			return accepted
		}

		remaining, ok := untilDeadline(deadline)
		if !ok {
			return false
		}
		sleep(woken, remaining)
	}
}

// offer returns whether [e] was accepted and, if not, whether waiting for
// space could help.
//
// Assumes [q.lock] is held.
func (q *UniqueBlockingQueue[E]) offer(e E) (bool, bool) {
	if q.closed {
		return false, false
	}
	if q.items.Contains(e) {
		return true, false
	}
	if !q.slots.TryAcquire() {
		return false, true
	}

	q.items.Put(e, struct{}{})
	q.changed.notify()
	return true, false
}

// TryPoll removes and returns the oldest element without waiting.
func (q *UniqueBlockingQueue[E]) TryPoll() (E, bool) {
	q.lock.Lock()
	defer q.lock.Unlock()

	return q.pollOldest()
}

// Poll removes and returns the oldest element, waiting at most [timeout].
func (q *UniqueBlockingQueue[E]) Poll(timeout time.Duration) (E, bool) {
	return q.poll(time.Now().Add(timeout))
}

// Take removes and returns the oldest element, waiting as long as needed.
// Returns false once the queue is closed and empty.
func (q *UniqueBlockingQueue[E]) Take() (E, bool) {
	return q.poll(time.Time{})
}

func (q *UniqueBlockingQueue[E]) poll(deadline time.Time) (E, bool) {
	for {
		q.lock.Lock()
		e, ok := q.pollOldest()
		closed := q.closed
		woken := q.changed.wait()
		q.lock.Unlock()

		if ok {
			return e, true
		}
		if closed {
			return *new(E), false
		}

		remaining, ok := untilDeadline(deadline)
		if !ok {
			return *new(E), false
		}
		sleep(woken, remaining)
	}
}

// Assumes [q.lock] is held.
func (q *UniqueBlockingQueue[E]) pollOldest() (E, bool) {
	e, _, ok := q.items.Oldest()
	if !ok {
		return *new(E), false
	}

	q.items.Delete(e)
	q.slots.Release()
	q.changed.notify()
	return e, true
}

// Drain removes and returns every element, oldest first.
func (q *UniqueBlockingQueue[E]) Drain() []E {
	q.lock.Lock()
	defer q.lock.Unlock()

	drained := make([]E, 0, q.items.Len())
	for it := q.items.NewIterator(); it.Next(); {
		drained = append(drained, it.Key())
	}
	q.clear()
	return drained
}

func (q *UniqueBlockingQueue[E]) Remove(e E) bool {
	q.lock.Lock()
	defer q.lock.Unlock()

	if !q.items.Delete(e) {
		return false
	}
	q.slots.Release()
	q.changed.notify()
	return true
}

func (q *UniqueBlockingQueue[E]) Contains(e E) bool {
	q.lock.Lock()
	defer q.lock.Unlock()

	return q.items.Contains(e)
}

func (q *UniqueBlockingQueue[E]) Clear() {
	q.lock.Lock()
	defer q.lock.Unlock()

	q.clear()
}

// Assumes [q.lock] is held.
func (q *UniqueBlockingQueue[E]) clear() {
	q.slots.ReleaseN(q.items.Len())
	q.items.Clear()
	q.changed.notify()
}

func (q *UniqueBlockingQueue[E]) Len() int {
	return q.slots.Len()
}

// Limit returns the maximum number of elements, or 0 if unbounded.
func (q *UniqueBlockingQueue[E]) Limit() int {
	return q.slots.Limit()
}

// Close rejects further offers and wakes every blocked caller. Elements that
// are already queued can still be taken.
func (q *UniqueBlockingQueue[E]) Close() {
	q.lock.Lock()
	defer q.lock.Unlock()

	if q.closed {
		return
	}
	q.closed = true
	q.changed.notify()
}
