// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package batch

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

// Counter names a statistic tracked by a Processor.
type Counter string

const (
	// ItemsAdded counts items accepted by the queue.
	ItemsAdded Counter = "items_added"
	// ItemsRejected counts items the queue refused because it was full or
	// the processor was shut down.
	ItemsRejected Counter = "items_rejected"
	// ItemsRemoved counts items taken out of the queue.
	ItemsRemoved Counter = "items_removed"
	// ItemsProcessed counts items handed to the handler.
	ItemsProcessed Counter = "items_processed"
	// ItemsFailed counts items the handler returned an error for.
	ItemsFailed Counter = "items_failed"
	// Batches counts runs of the processor.
	Batches Counter = "batches"
)

// Counters lists every Counter in reporting order.
var Counters = []Counter{
	ItemsAdded,
	ItemsRejected,
	ItemsRemoved,
	ItemsProcessed,
	ItemsFailed,
	Batches,
}

// Stats is a set of named counters that can be incremented concurrently and
// read back individually or all at once.
type Stats struct {
	values map[Counter]*atomic.Int64
	vec    *prometheus.CounterVec
}

// NewStats returns zeroed counters. If [registerer] is non-nil the counters
// are also exported under [namespace].
func NewStats(namespace string, registerer prometheus.Registerer) (*Stats, error) {
	s := &Stats{
		values: make(map[Counter]*atomic.Int64, len(Counters)),
		vec: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "events",
				Help:      "Number of batch processor events by kind",
			},
			[]string{"kind"},
		),
	}
	for _, c := range Counters {
		s.values[c] = &atomic.Int64{}
	}
	if registerer == nil {
		return s, nil
	}
	return s, registerer.Register(s.vec)
}

// Inc adds one to [c].
func (s *Stats) Inc(c Counter) {
	s.Add(c, 1)
}

// Add adds [n] to [c]. Unknown counters are ignored.
func (s *Stats) Add(c Counter, n int64) {
	value, ok := s.values[c]
	if !ok {
		return
	}
	value.Add(n)
	s.vec.WithLabelValues(string(c)).Add(float64(n))
}

// Get returns the current value of [c].
func (s *Stats) Get(c Counter) int64 {
	value, ok := s.values[c]
	if !ok {
		return 0
	}
	return value.Load()
}

// Snapshot returns the current value of every counter.
func (s *Stats) Snapshot() map[Counter]int64 {
	snapshot := make(map[Counter]int64, len(s.values))
	for c, value := range s.values {
		snapshot[c] = value.Load()
	}
	return snapshot
}
