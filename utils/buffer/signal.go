// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package buffer

import "time"

// signal is a broadcast wake-up. Waiters grab the current channel while
// holding the owner's lock and block on it after releasing the lock; notify
// closes the channel and re-arms a new one.
//
// Assumes the owner's lock is held for both wait and notify.
type signal struct {
	ch chan struct{}
}

func newSignal() signal {
	return signal{ch: make(chan struct{})}
}

func (s *signal) wait() <-chan struct{} {
	return s.ch
}

func (s *signal) notify() {
	close(s.ch)
	s.ch = make(chan struct{})
}

// sleep blocks until [woken] is closed or [d] elapses. A negative [d] blocks
// until [woken] is closed.
func sleep(woken <-chan struct{}, d time.Duration) {
	if d < 0 {
		<-woken
		return
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-woken:
	case <-timer.C:
	}
}

// untilDeadline returns how long remains before [deadline]. A zero deadline
// means no deadline and yields -1.
func untilDeadline(deadline time.Time) (time.Duration, bool) {
	if deadline.IsZero() {
		return -1, true
	}
	remaining := time.Until(deadline)
	return remaining, remaining > 0
}
