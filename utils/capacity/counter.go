// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package capacity provides lock-free accounting of occupied slots in a
// bounded store.
package capacity

import "sync/atomic"

// Counter tracks how many slots of a bounded store are in use.
//
// Invariant: 0 <= Len() <= Limit() whenever Limit() > 0. The counter is
// advisory: it is kept in step with the store it guards, it is not derived
// from it.
type Counter struct {
	limit int64
	used  atomic.Int64
}

// NewCounter returns a counter with [limit] slots. A limit <= 0 means the
// store is unbounded.
func NewCounter(limit int) *Counter {
	return &Counter{limit: int64(limit)}
}

// TryAcquire reserves one slot, returning false if none are free.
func (c *Counter) TryAcquire() bool {
	for {
		current := c.used.Load()
		if c.limit > 0 && current >= c.limit {
			return false
		}
		if c.used.CompareAndSwap(current, current+1) {
			return true
		}
	}
}

// Release returns one slot. Releasing with no slots in use is a noop and
// returns false.
func (c *Counter) Release() bool {
	return c.ReleaseN(1) == 1
}

// ReleaseN returns up to [n] slots and reports how many were released.
func (c *Counter) ReleaseN(n int) int {
	if n <= 0 {
		return 0
	}
	for {
		current := c.used.Load()
		released := min(current, int64(n))
		if released == 0 {
			return 0
		}
		if c.used.CompareAndSwap(current, current-released) {
			return int(released)
		}
	}
}

// Reset marks every slot as free and returns how many were in use.
func (c *Counter) Reset() int {
	return int(c.used.Swap(0))
}

// Len returns the number of slots in use.
func (c *Counter) Len() int {
	return int(c.used.Load())
}

// Limit returns the total number of slots, or 0 if unbounded.
func (c *Counter) Limit() int {
	return int(max(c.limit, 0))
}

// Full reports whether every slot is in use.
func (c *Counter) Full() bool {
	return c.limit > 0 && c.used.Load() >= c.limit
}
