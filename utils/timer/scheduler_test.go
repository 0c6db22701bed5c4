// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/burstcache/utils/timer/mockable"
)

func TestSchedulerRuns(t *testing.T) {
	require := require.New(t)

	clock := &mockable.Clock{}
	s := NewScheduler(clock)

	called := make(chan struct{})
	fut := s.Schedule(func() { close(called) }, clock.Time().Add(time.Millisecond))

	select {
	case <-called:
	case <-time.After(5 * time.Second):
		require.FailNow("callback never ran")
	}
	require.Eventually(fut.Done, 5*time.Second, time.Millisecond)
	require.False(fut.Cancel())
}

func TestSchedulerPastInstant(t *testing.T) {
	s := NewScheduler(nil)

	called := make(chan struct{})
	s.Schedule(func() { close(called) }, time.Now().Add(-time.Hour))
	<-called
}

func TestSchedulerCancel(t *testing.T) {
	require := require.New(t)

	s := NewScheduler(nil)
	fut := s.Schedule(func() {
		require.FailNow("canceled callback ran")
	}, time.Now().Add(time.Hour))

	require.False(fut.Done())
	require.True(fut.Cancel())
	require.True(fut.Done())
	require.False(fut.Cancel())
}

func TestManualScheduler(t *testing.T) {
	require := require.New(t)

	s := &ManualScheduler{}
	now := time.Unix(100, 0)

	var order []int
	first := s.Schedule(func() { order = append(order, 1) }, now.Add(2*time.Second))
	second := s.Schedule(func() { order = append(order, 2) }, now.Add(time.Second))
	canceled := s.Schedule(func() { order = append(order, 3) }, now.Add(time.Second))
	require.True(canceled.Cancel())

	require.Equal(3, s.Scheduled())
	require.Equal([]time.Time{now.Add(2 * time.Second), now.Add(time.Second)}, s.Pending())

	require.Zero(s.RunDue(now))
	require.Equal(1, s.RunDue(now.Add(time.Second)))
	require.True(second.Done())
	require.False(first.Done())

	require.Equal(1, s.RunDue(now.Add(time.Hour)))
	require.True(first.Done())
	require.Equal([]int{2, 1}, order)
	require.Empty(s.Pending())
}

func TestManualSchedulerReschedulesFromCallback(t *testing.T) {
	require := require.New(t)

	s := &ManualScheduler{}
	now := time.Unix(100, 0)

	runs := 0
	var f func()
	f = func() {
		runs++
		s.Schedule(f, now)
	}
	s.Schedule(f, now)

	require.Equal(1, s.RunDue(now))
	require.Equal(1, runs)
	require.Len(s.Pending(), 1)
}
