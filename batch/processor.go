// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package batch

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ava-labs/burstcache/utils/logging"
	"github.com/ava-labs/burstcache/utils/timer"
	"github.com/ava-labs/burstcache/utils/timer/mockable"
)

var (
	errNoQueue       = errors.New("no queue provided")
	errNoHandler     = errors.New("no handler provided")
	errNoScheduler   = errors.New("no scheduler provided")
	errNegativeDelay = errors.New("delay must not be negative")
)

type Config[T any] struct {
	Log       logging.Logger
	Clock     *mockable.Clock
	Stats     *Stats
	Scheduler timer.Scheduler
	Queue     Queue[T]
	Handler   Handler[T]
	// Delay is the quiet period between an item being accepted and the run
	// that processes it.
	Delay time.Duration
}

// Processor collects items in a queue and hands them to a handler in batches.
//
// Accepting an item schedules a run [Delay] later unless a run is already
// pending, so bursts of items are processed together. At most one run is
// pending at any time.
type Processor[T any] struct {
	log       logging.Logger
	clock     *mockable.Clock
	stats     *Stats
	scheduler timer.Scheduler
	queue     Queue[T]
	handler   Handler[T]
	delay     time.Duration

	lock sync.Mutex
	// next is the pending run, nil if the processor is idle.
	next     timer.Future
	shutdown bool
}

func New[T any](config Config[T]) (*Processor[T], error) {
	switch {
	case config.Queue == nil:
		return nil, errNoQueue
	case config.Handler == nil:
		return nil, errNoHandler
	case config.Scheduler == nil:
		return nil, errNoScheduler
	case config.Delay < 0:
		return nil, errNegativeDelay
	}

	p := &Processor[T]{
		log:       config.Log,
		clock:     config.Clock,
		stats:     config.Stats,
		scheduler: config.Scheduler,
		queue:     config.Queue,
		handler:   config.Handler,
		delay:     config.Delay,
	}
	if p.log == nil {
		p.log = logging.NoLog{}
	}
	if p.clock == nil {
		p.clock = &mockable.Clock{}
	}
	if p.stats == nil {
		stats, err := NewStats("", nil)
		if err != nil {
			return nil, err
		}
		p.stats = stats
	}
	return p, nil
}

// AsyncProcessItem queues [item] and makes sure a run is pending. Returns
// false if the queue refused the item.
func (p *Processor[T]) AsyncProcessItem(item T) bool {
	p.lock.Lock()
	defer p.lock.Unlock()

	if p.shutdown || !p.queue.Offer(item) {
		p.stats.Inc(ItemsRejected)
		return false
	}
	p.stats.Inc(ItemsAdded)

	if p.next == nil || p.next.Done() {
		p.scheduleLocked()
	}
	return true
}

// Run processes every item that is ready. If items remain, another run is
// scheduled.
func (p *Processor[T]) Run() {
	p.stats.Inc(Batches)

	var processed int
	for {
		item, ok := p.queue.TryPoll()
		if !ok {
			break
		}
		p.process(item)
		processed++
	}

	p.lock.Lock()
	defer p.lock.Unlock()

	p.next = nil
	remaining := p.queue.Len()
	p.log.Verbo("batch processed",
		zap.Int("processed", processed),
		zap.Int("remaining", remaining),
	)
	if remaining > 0 && !p.shutdown {
		p.scheduleLocked()
	}
}

// Shutdown cancels the pending run and processes every queued item
// immediately, ready or not. Items offered afterwards are rejected.
func (p *Processor[T]) Shutdown() {
	p.lock.Lock()
	p.shutdown = true
	if p.next != nil {
		p.next.Cancel()
		p.next = nil
	}
	p.lock.Unlock()

	items := p.queue.Drain()
	for _, item := range items {
		p.process(item)
	}
	p.log.Debug("batch processor shut down",
		zap.Int("drained", len(items)),
	)
}

// Idle reports whether no run is pending and the queue is empty.
func (p *Processor[T]) Idle() bool {
	p.lock.Lock()
	defer p.lock.Unlock()

	return (p.next == nil || p.next.Done()) && p.queue.Len() == 0
}

// Len returns the number of queued items.
func (p *Processor[T]) Len() int {
	return p.queue.Len()
}

func (p *Processor[_]) Stats() *Stats {
	return p.stats
}

// scheduleLocked must be called with the lock held.
func (p *Processor[_]) scheduleLocked() {
	p.next = p.scheduler.Schedule(p.Run, p.clock.Time().Add(p.delay))
}

func (p *Processor[T]) process(item T) {
	p.stats.Inc(ItemsRemoved)
	p.stats.Inc(ItemsProcessed)
	if err := p.handler.Process(item); err != nil {
		p.stats.Inc(ItemsFailed)
		p.log.Warn("failed to process item",
			zap.Error(err),
		)
	}
}
