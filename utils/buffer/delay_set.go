// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package buffer

import (
	"sync"
	"time"

	"github.com/ava-labs/burstcache/utils/capacity"
	"github.com/ava-labs/burstcache/utils/heap"
	"github.com/ava-labs/burstcache/utils/timer/mockable"
)

// Delayed is a unit of work that becomes ready at an instant.
//
// Two Delayed values with equal keys represent the same unit of work,
// regardless of when they become ready.
type Delayed[K comparable] interface {
	Key() K
	ReadyAt() time.Time
}

// DelaySet is a delay ordered collection holding at most one element per key.
// Offering an element whose key is already present replaces the resident
// element, which refreshes its delay, instead of growing the set.
type DelaySet[K comparable, E Delayed[K]] struct {
	clock *mockable.Clock
	slots *capacity.Counter

	lock    sync.Mutex
	items   heap.Map[K, E]
	changed signal
	closed  bool
}

// NewDelaySet returns a set holding at most [limit] elements. A limit <= 0
// means the set is unbounded. Readiness is evaluated on [clock]; blocking
// waits assume [clock] advances with wall time.
func NewDelaySet[K comparable, E Delayed[K]](limit int, clock *mockable.Clock) *DelaySet[K, E] {
	if clock == nil {
		clock = &mockable.Clock{}
	}
	return &DelaySet[K, E]{
		clock: clock,
		slots: capacity.NewCounter(limit),
		items: heap.NewMap[K, E](func(a, b E) bool {
			return a.ReadyAt().Before(b.ReadyAt())
		}),
		changed: newSignal(),
	}
}

// Offer inserts [e], or replaces the resident element with the same key.
// Returns false if the set is closed, or if [e] is new and the set is full.
func (s *DelaySet[K, E]) Offer(e E) bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.closed {
		return false
	}
	key := e.Key()
	if s.items.Contains(key) {
		headKey, _, _ := s.items.Peek()
		s.items.Push(key, e)
		if newHeadKey, _, _ := s.items.Peek(); headKey == key || newHeadKey == key {
			s.changed.notify()
		}
		return true
	}

	if !s.slots.TryAcquire() {
		return false
	}
	s.items.Push(key, e)
	if headKey, _, _ := s.items.Peek(); headKey == key {
		s.changed.notify()
	}
	return true
}

// Add is Offer. It exists for callers that use the set as an unbounded
// collection.
func (s *DelaySet[K, E]) Add(e E) bool {
	return s.Offer(e)
}

// Remove deletes the element with the same key as [e].
func (s *DelaySet[K, E]) Remove(e E) bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.items.Remove(e.Key()); !ok {
		return false
	}
	s.slots.Release()
	s.changed.notify()
	return true
}

// Contains reports whether an element with [key] is resident.
func (s *DelaySet[K, E]) Contains(key K) bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.items.Contains(key)
}

func (s *DelaySet[K, E]) Clear() {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.slots.ReleaseN(s.items.Len())
	s.items.Clear()
	s.changed.notify()
}

func (s *DelaySet[K, E]) Len() int {
	return s.slots.Len()
}

// Limit returns the maximum number of elements, or 0 if unbounded.
func (s *DelaySet[K, E]) Limit() int {
	return s.slots.Limit()
}

// TryPoll removes and returns the earliest element if it is ready.
func (s *DelaySet[K, E]) TryPoll() (E, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	e, _, ok := s.pollReady()
	return e, ok
}

// Poll removes and returns the earliest element once it is ready, waiting at
// most [timeout].
func (s *DelaySet[K, E]) Poll(timeout time.Duration) (E, bool) {
	return s.poll(time.Now().Add(timeout))
}

// Take removes and returns the earliest element once it is ready, waiting as
// long as needed. Returns false once the set is closed and empty.
func (s *DelaySet[K, E]) Take() (E, bool) {
	return s.poll(time.Time{})
}

// Drain removes and returns every element in readiness order, ignoring
// delays.
func (s *DelaySet[K, E]) Drain() []E {
	s.lock.Lock()
	defer s.lock.Unlock()

	drained := make([]E, 0, s.items.Len())
	for {
		_, e, ok := s.items.Pop()
		if !ok {
			break
		}
		drained = append(drained, e)
	}
	s.slots.ReleaseN(len(drained))
	s.changed.notify()
	return drained
}

// Close rejects further offers and wakes every blocked caller. Elements that
// are already resident can still be taken once they are ready.
func (s *DelaySet[K, E]) Close() {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.changed.notify()
}

func (s *DelaySet[K, E]) poll(deadline time.Time) (E, bool) {
	for {
		s.lock.Lock()
		e, wait, ok := s.pollReady()
		closed := s.closed
		woken := s.changed.wait()
		s.lock.Unlock()

		if ok {
			return e, true
		}
		if closed && wait < 0 {
			return *new(E), false
		}

		remaining, ok := untilDeadline(deadline)
		if !ok {
			return *new(E), false
		}
		if remaining < 0 || (wait >= 0 && wait < remaining) {
			remaining = wait
		}
		sleep(woken, remaining)
	}
}

// pollReady pops the head if it is ready. Otherwise it returns how long until
// the head is ready, or -1 if the set is empty.
//
// Assumes [s.lock] is held.
func (s *DelaySet[K, E]) pollReady() (E, time.Duration, bool) {
	_, head, ok := s.items.Peek()
	if !ok {
		return *new(E), -1, false
	}

	wait := head.ReadyAt().Sub(s.clock.Time())
	if wait > 0 {
		return *new(E), wait, false
	}

	s.items.Pop()
	s.slots.Release()
	return head, 0, true
}
