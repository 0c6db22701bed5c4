// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// NanosecondsBuckets are latency buckets for in-memory operations.
var NanosecondsBuckets = []float64{
	float64(100 * time.Nanosecond),
	float64(time.Microsecond),
	float64(10 * time.Microsecond),
	float64(100 * time.Microsecond),
	float64(time.Millisecond),
	float64(10 * time.Millisecond),
	float64(100 * time.Millisecond),
	float64(time.Second),
	// anything larger than a second will be bucketed together
}

// NewNanosecondsLatencyMetric returns a histogram of the latency of [name] in
// nanoseconds.
func NewNanosecondsLatencyMetric(namespace, name string) prometheus.Histogram {
	return prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      name,
		Help:      fmt.Sprintf("Latency of a %s in nanoseconds", name),
		Buckets:   NanosecondsBuckets,
	})
}

// ObserveSince records the time elapsed since [start] on [h].
func ObserveSince(h prometheus.Observer, start time.Time) {
	h.Observe(float64(time.Since(start)))
}
