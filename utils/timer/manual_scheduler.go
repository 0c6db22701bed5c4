// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package timer

import (
	"slices"
	"sync"
	"time"
)

var _ Scheduler = (*ManualScheduler)(nil)

// ManualScheduler is a deterministic Scheduler. Callbacks only run when
// RunDue is called.
type ManualScheduler struct {
	lock  sync.Mutex
	tasks []*manualTask
	// scheduled counts every call to Schedule.
	scheduled int
}

type manualTask struct {
	at       time.Time
	f        func()
	lock     sync.Mutex
	started  bool
	finished bool
	canceled bool
}

func (s *ManualScheduler) Schedule(f func(), at time.Time) Future {
	s.lock.Lock()
	defer s.lock.Unlock()

	task := &manualTask{at: at, f: f}
	s.tasks = append(s.tasks, task)
	s.scheduled++
	return task
}

// Scheduled returns the number of calls to Schedule so far.
func (s *ManualScheduler) Scheduled() int {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.scheduled
}

// Pending returns the instants of the callbacks that have not run yet, in
// scheduling order.
func (s *ManualScheduler) Pending() []time.Time {
	s.lock.Lock()
	defer s.lock.Unlock()

	pending := make([]time.Time, 0, len(s.tasks))
	for _, task := range s.tasks {
		if task.Done() {
			continue
		}
		pending = append(pending, task.at)
	}
	return pending
}

// RunDue runs, in instant order, every callback scheduled at or before [now]
// and returns how many ran. Callbacks scheduled by the callbacks themselves
// are not run until the next call.
func (s *ManualScheduler) RunDue(now time.Time) int {
	s.lock.Lock()
	var (
		due  []*manualTask
		kept = s.tasks[:0]
	)
	for _, task := range s.tasks {
		if task.at.After(now) {
			kept = append(kept, task)
		} else {
			due = append(due, task)
		}
	}
	s.tasks = kept
	s.lock.Unlock()

	slices.SortStableFunc(due, func(a, b *manualTask) int {
		return a.at.Compare(b.at)
	})

	ran := 0
	for _, task := range due {
		if task.run() {
			ran++
		}
	}
	return ran
}

func (t *manualTask) run() bool {
	t.lock.Lock()
	if t.canceled {
		t.lock.Unlock()
		return false
	}
	t.started = true
	t.lock.Unlock()

	t.f()

	t.lock.Lock()
	t.finished = true
	t.lock.Unlock()
	return true
}

func (t *manualTask) Done() bool {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.finished || t.canceled
}

func (t *manualTask) Cancel() bool {
	t.lock.Lock()
	defer t.lock.Unlock()

	if t.started || t.canceled {
		return false
	}
	t.canceled = true
	return true
}
