// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package buffer

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestUniqueBlockingQueueOffer(t *testing.T) {
	require := require.New(t)

	q := NewUniqueBlockingQueue[int](2)
	require.True(q.Offer(1))
	require.True(q.Offer(2))
	require.Equal(2, q.Len())

	// Coalesced, even though the queue is full.
	require.True(q.Offer(1))
	require.Equal(2, q.Len())

	require.False(q.Offer(3))
	require.False(q.Contains(3))

	e, ok := q.TryPoll()
	require.True(ok)
	require.Equal(1, e)

	require.True(q.Offer(3))
	require.Equal([]int{2, 3}, q.Drain())
	require.Zero(q.Len())
}

func TestUniqueBlockingQueueKeepsInsertionOrder(t *testing.T) {
	require := require.New(t)

	q := NewUniqueBlockingQueue[string](0)
	for _, e := range []string{"c", "a", "c", "b", "a"} {
		require.True(q.Offer(e))
	}
	require.Equal(3, q.Len())

	for _, expected := range []string{"c", "a", "b"} {
		e, ok := q.Poll(0)
		require.True(ok)
		require.Equal(expected, e)
	}
	_, ok := q.Poll(0)
	require.False(ok)
}

func TestUniqueBlockingQueueRemoveAndClear(t *testing.T) {
	require := require.New(t)

	q := NewUniqueBlockingQueue[int](3)
	require.True(q.Offer(1))
	require.True(q.Offer(2))
	require.True(q.Remove(1))
	require.False(q.Remove(1))
	require.Equal(1, q.Len())

	q.Clear()
	require.Zero(q.Len())
	for i := 0; i < 3; i++ {
		require.True(q.Offer(i))
	}
	require.False(q.Offer(4))
}

func TestUniqueBlockingQueuePollTimeout(t *testing.T) {
	require := require.New(t)

	q := NewUniqueBlockingQueue[int](1)

	start := time.Now()
	_, ok := q.Poll(20 * time.Millisecond)
	require.False(ok)
	require.GreaterOrEqual(time.Since(start), 20*time.Millisecond)
}

func TestUniqueBlockingQueueTakeWakesOnOffer(t *testing.T) {
	require := require.New(t)

	q := NewUniqueBlockingQueue[int](1)

	result := make(chan int)
	go func() {
		e, ok := q.Take()
		require.True(ok)
		result <- e
	}()

	time.Sleep(5 * time.Millisecond)
	require.True(q.Offer(9))

	select {
	case e := <-result:
		require.Equal(9, e)
	case <-time.After(5 * time.Second):
		require.FailNow("consumer was not woken")
	}
}

func TestUniqueBlockingQueuePutWaitsForSpace(t *testing.T) {
	require := require.New(t)

	q := NewUniqueBlockingQueue[int](1)
	require.True(q.Offer(1))

	require.False(q.PutTimeout(2, 10*time.Millisecond))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		require.True(q.Put(2))
	}()

	time.Sleep(5 * time.Millisecond)
	e, ok := q.TryPoll()
	require.True(ok)
	require.Equal(1, e)

	wg.Wait()
	e, ok = q.TryPoll()
	require.True(ok)
	require.Equal(2, e)
}

func TestUniqueBlockingQueueClose(t *testing.T) {
	require := require.New(t)

	q := NewUniqueBlockingQueue[int](1)
	require.True(q.Offer(1))

	blocked := make(chan bool)
	go func() {
		blocked <- q.Put(2)
	}()

	time.Sleep(5 * time.Millisecond)
	q.Close()
	require.False(<-blocked)
	require.False(q.Offer(3))

	// Queued elements survive Close.
	e, ok := q.Take()
	require.True(ok)
	require.Equal(1, e)

	_, ok = q.Take()
	require.False(ok)
	q.Close()
}

func TestUniqueBlockingQueueAccounting(t *testing.T) {
	require := require.New(t)

	const (
		producers   = 8
		perProducer = 500
		keys        = 64
	)

	q := NewUniqueBlockingQueue[int](16)

	var (
		attempts, accepted, rejected atomic.Int64
		producerGroup                errgroup.Group
	)
	for p := 0; p < producers; p++ {
		p := p
		producerGroup.Go(func() error {
			for i := 0; i < perProducer; i++ {
				attempts.Add(1)
				if q.Offer((p*perProducer + i) % keys) {
					accepted.Add(1)
				} else {
					rejected.Add(1)
				}
			}
			return nil
		})
	}

	var (
		taken    atomic.Int64
		stop     = make(chan struct{})
		consumer errgroup.Group
	)
	consumer.Go(func() error {
		for {
			if _, ok := q.Poll(time.Millisecond); ok {
				taken.Add(1)
				continue
			}
			select {
			case <-stop:
				return nil
			default:
			}
		}
	})

	require.NoError(producerGroup.Wait())
	close(stop)
	require.NoError(consumer.Wait())
	taken.Add(int64(len(q.Drain())))

	require.Equal(attempts.Load(), accepted.Load()+rejected.Load())
	require.Equal(int64(producers*perProducer), attempts.Load())
	// Coalesced offers are accepted without adding an element.
	require.LessOrEqual(taken.Load(), accepted.Load())
	require.Positive(taken.Load())
}
