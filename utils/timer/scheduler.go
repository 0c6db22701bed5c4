// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package timer

import (
	"sync/atomic"
	"time"

	"github.com/ava-labs/burstcache/utils/timer/mockable"
)

var (
	_ Scheduler = (*scheduler)(nil)
	_ Future    = (*future)(nil)
)

// Scheduler runs single-shot callbacks at a future instant.
type Scheduler interface {
	// Schedule arranges for [f] to be called once at [at]. If [at] is not in
	// the future, [f] is called as soon as possible.
	Schedule(f func(), at time.Time) Future
}

// Future is a handle to a scheduled callback.
type Future interface {
	// Done returns true once the callback has returned or was canceled.
	Done() bool
	// Cancel prevents the callback from running. Returns false if the
	// callback already started or the future was already canceled.
	Cancel() bool
}

type scheduler struct {
	clock *mockable.Clock
}

// NewScheduler returns a Scheduler backed by runtime timers. [clock] is used
// to convert instants into durations, so instants must be expressed on it.
func NewScheduler(clock *mockable.Clock) Scheduler {
	if clock == nil {
		clock = &mockable.Clock{}
	}
	return &scheduler{clock: clock}
}

func (s *scheduler) Schedule(f func(), at time.Time) Future {
	fut := &future{}
	fut.timer = time.AfterFunc(at.Sub(s.clock.Time()), func() {
		defer fut.done.Store(true)
		f()
	})
	return fut
}

type future struct {
	timer *time.Timer
	done  atomic.Bool
}

func (f *future) Done() bool {
	return f.done.Load()
}

func (f *future) Cancel() bool {
	if !f.timer.Stop() {
		return false
	}
	f.done.Store(true)
	return true
}
