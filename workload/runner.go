// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package workload

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ava-labs/burstcache/api/metrics"
	"github.com/ava-labs/burstcache/app"
	"github.com/ava-labs/burstcache/batch"
	"github.com/ava-labs/burstcache/cache"
	"github.com/ava-labs/burstcache/cache/expiring"
	"github.com/ava-labs/burstcache/cache/lru"
	"github.com/ava-labs/burstcache/cache/metercacher"
	"github.com/ava-labs/burstcache/cache/shared"
	"github.com/ava-labs/burstcache/cache/tiered"
	"github.com/ava-labs/burstcache/config"
	"github.com/ava-labs/burstcache/utils/buffer"
	"github.com/ava-labs/burstcache/utils/logging"
	"github.com/ava-labs/burstcache/utils/metric"
	"github.com/ava-labs/burstcache/utils/timer"
	"github.com/ava-labs/burstcache/utils/timer/mockable"
)

const (
	namespace = "burstcache"

	idlePollInterval = 10 * time.Millisecond
)

var (
	_ app.App = (*Runner)(nil)

	errUnknownQueueKind = errors.New("unknown queue kind")
	errNotIdle          = errors.New("processor did not become idle")
)

// Runner drives bursts of events through a debounced batch processor into a
// tiered cache, and reports what happened once every event was flushed.
type Runner struct {
	config config.Config
	log    logging.Logger
	clock  mockable.Clock

	registry *prometheus.Registry
	server   *metrics.Server
	created  prometheus.Counter
	purged   prometheus.Counter

	cache     *tiered.Cache[string, string]
	recent    *expiring.Cache[string, int]
	payloads  *shared.Cache[string, int, string]
	processor *batch.Processor[Event]

	ctx    context.Context
	cancel context.CancelFunc

	done     chan struct{}
	exitCode int
	err      error
}

// New builds every component described by [config]. Nothing runs until Start
// is called.
func New(config config.Config, log logging.Logger) (*Runner, error) {
	r := &Runner{
		config:   config,
		log:      log,
		registry: prometheus.NewRegistry(),
		created: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "created_keys",
			Help:      "Number of keys created in the tiered cache",
		}),
		purged: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "purged_recent_keys",
			Help:      "Number of expired recent keys removed by the janitor",
		}),
		done: make(chan struct{}),
	}
	r.ctx, r.cancel = context.WithCancel(context.Background())

	delegate, err := lru.NewCache[string, string](cache.Configuration{
		Name:              "payloads",
		Capacity:          config.DelegateCapacity,
		StatisticsEnabled: true,
	})
	if err != nil {
		return nil, err
	}
	metered, err := metercacher.New[string, string](
		metric.AppendNamespace(namespace, "delegate"),
		r.registry,
		delegate,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to register delegate metrics: %w", err)
	}
	r.cache, err = tiered.NewWithMetrics[string, string](
		log,
		metered,
		config.HotCapacity,
		metric.AppendNamespace(namespace, "tiered"),
		r.registry,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create tiered cache: %w", err)
	}
	if err := r.cache.RegisterCreatedListener(func(cache.Entry[string, string]) {
		r.created.Inc()
	}); err != nil {
		return nil, err
	}

	r.recent = expiring.New[string, int]("recent", config.RecentTTL, &r.clock)
	r.payloads = shared.New[string, int, string](&r.clock)

	queue, err := r.newQueue()
	if err != nil {
		return nil, err
	}
	stats, err := batch.NewStats(namespace, r.registry)
	if err != nil {
		return nil, fmt.Errorf("failed to register batch metrics: %w", err)
	}
	r.processor, err = batch.New(batch.Config[Event]{
		Log:       log,
		Clock:     &r.clock,
		Stats:     stats,
		Scheduler: timer.NewScheduler(&r.clock),
		Queue:     queue,
		Handler:   batch.HandlerFunc[Event](r.flush),
		Delay:     config.DebounceDelay,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create batch processor: %w", err)
	}

	err = errors.Join(
		r.registry.Register(r.created),
		r.registry.Register(r.purged),
		r.registry.Register(newGaugeFunc("recent_keys", "Number of recently flushed keys", r.recent.Len)),
		r.registry.Register(newGaugeFunc("shared_payloads", "Number of interned payloads", r.payloads.Shared)),
		r.registry.Register(newGaugeFunc("queued_events", "Number of events waiting to be flushed", r.processor.Len)),
	)
	if err != nil {
		return nil, err
	}

	if config.MetricsAddress != "" {
		r.server = metrics.NewServer(log, r.registry)
	}
	return r, nil
}

func (r *Runner) newQueue() (batch.Queue[Event], error) {
	switch r.config.QueueKind {
	case config.DelayQueue:
		return buffer.NewDelaySet[string, Event](r.config.QueueCapacity, &r.clock), nil
	case config.UniqueQueue:
		return buffer.NewUniqueBlockingQueue[Event](r.config.QueueCapacity), nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownQueueKind, r.config.QueueKind)
	}
}

func (r *Runner) Start() error {
	r.log.Info("starting workload",
		zap.String("queueKind", r.config.QueueKind),
		zap.Int("producers", r.config.Workload.Producers),
		zap.Int("eventsPerProducer", r.config.Workload.EventsPerProducer),
		zap.Int("hotCapacity", r.config.HotCapacity),
	)

	if r.server != nil {
		go func() {
			if err := r.server.Dispatch(r.config.MetricsAddress); err != nil {
				r.log.Error("metrics server failed",
					zap.Error(err),
				)
			}
		}()
	}
	if r.config.JanitorInterval > 0 {
		go r.recent.RunJanitor(r.ctx, r.config.JanitorInterval, func(n int) {
			r.purged.Add(float64(n))
		})
	}
	go r.run()
	return nil
}

func (r *Runner) Stop() error {
	r.log.Info("stopping workload")
	r.cancel()
	return nil
}

func (r *Runner) ExitCode() (int, error) {
	<-r.done
	return r.exitCode, r.err
}

// Registry returns the registry every component reports to.
func (r *Runner) Registry() *prometheus.Registry {
	return r.registry
}

func (r *Runner) run() {
	defer close(r.done)

	start := time.Now()
	err := r.produce()
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	if idleErr := r.waitIdle(); idleErr != nil {
		r.log.Warn("flushing remaining events",
			zap.Error(idleErr),
			zap.Int("queued", r.processor.Len()),
		)
	}
	r.processor.Shutdown()

	summary, reportErr := r.report(time.Since(start))
	r.cancel()

	var shutdownErr error
	if r.server != nil {
		shutdownErr = r.server.Shutdown()
	}
	r.err = errors.Join(err, reportErr, r.cache.Close(), shutdownErr)
	if summary.failed > 0 || summary.missing > 0 {
		r.exitCode = 1
	}
}

// produce runs every producer until they have all sent their events or the
// runner is stopped.
func (r *Runner) produce() error {
	w := r.config.Workload
	eg, ctx := errgroup.WithContext(r.ctx)
	for i := 0; i < w.Producers; i++ {
		gen := newGenerator(uint64(i), w.DistinctKeys, w.DistinctPayloads)
		eg.Go(func() error {
			return r.producer(ctx, gen)
		})
	}
	return eg.Wait()
}

func (r *Runner) producer(ctx context.Context, gen *generator) error {
	w := r.config.Workload
	for sent := 0; sent < w.EventsPerProducer; {
		for i := 0; i < w.BurstSize && sent < w.EventsPerProducer; i++ {
			r.processor.AsyncProcessItem(gen.next(r.readyAt()))
			sent++
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(w.BurstPause):
		}
	}
	return nil
}

// readyAt returns when a new event may be flushed. Events held by a unique
// queue carry no delay, so identical writes compare equal.
func (r *Runner) readyAt() time.Time {
	if r.config.QueueKind != config.DelayQueue {
		return time.Time{}
	}
	return r.clock.Time().Add(r.config.EventDelay)
}

// waitIdle blocks until the processor has nothing left to do, the idle
// timeout expires or the runner is stopped.
func (r *Runner) waitIdle() error {
	ticker := time.NewTicker(idlePollInterval)
	defer ticker.Stop()

	timeout := time.NewTimer(r.config.Workload.IdleTimeout)
	defer timeout.Stop()

	for !r.processor.Idle() {
		select {
		case <-ticker.C:
		case <-timeout.C:
			return errNotIdle
		case <-r.ctx.Done():
			return r.ctx.Err()
		}
	}
	return nil
}

func (r *Runner) flush(e Event) error {
	payload := r.payloads.Put(e.key, e.payload, renderPayload, r.config.PayloadTTL)
	if err := r.cache.Put(e.key, payload); err != nil {
		return fmt.Errorf("failed to cache %q: %w", e.key, err)
	}
	r.recent.Put(e.key, e.payload)
	return nil
}

type summary struct {
	stats   map[batch.Counter]int64
	entries int
	failed  int64
	// missing counts recently flushed keys the tiered cache can't serve.
	missing int
}

func (r *Runner) report(elapsed time.Duration) (summary, error) {
	stats := r.processor.Stats().Snapshot()
	rep := summary{
		stats:  stats,
		failed: stats[batch.ItemsFailed],
	}

	entries, err := cache.Collect(r.cache.Iterator())
	if err != nil {
		return rep, fmt.Errorf("failed to iterate cache: %w", err)
	}
	rep.entries = len(entries)

	recent, err := cache.Collect(r.recent.Iterator())
	if err != nil {
		return rep, fmt.Errorf("failed to iterate recent keys: %w", err)
	}
	for key := range recent {
		if _, ok, err := r.cache.Get(key); err != nil || !ok {
			rep.missing++
		}
	}

	fields := []zap.Field{
		zap.Duration("elapsed", elapsed),
		zap.Int("entries", rep.entries),
		zap.Int("hotEntries", r.cache.Len()),
		zap.Int("recentKeys", len(recent)),
		zap.Int("missingKeys", rep.missing),
		zap.Int("sharedPayloads", r.payloads.Shared()),
	}
	for _, c := range batch.Counters {
		fields = append(fields, zap.Int64(string(c), stats[c]))
	}
	r.log.Info("workload finished", fields...)

	snapshot, err := metric.Snapshot(r.registry)
	if err != nil {
		return rep, fmt.Errorf("failed to gather metrics: %w", err)
	}
	names := make([]string, 0, len(snapshot))
	for name := range snapshot {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		r.log.Debug("metric",
			zap.String("name", name),
			zap.Float64("value", snapshot[name]),
		)
	}
	return rep, nil
}

func newGaugeFunc(name, help string, f func() int) prometheus.GaugeFunc {
	return prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		},
		func() float64 {
			return float64(f())
		},
	)
}
