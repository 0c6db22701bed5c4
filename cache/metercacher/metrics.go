// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metercacher

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/burstcache/utils/metric"
)

func newCounterMetric(namespace, name string) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      name,
		Help:      fmt.Sprintf("# of times a %s occurred", name),
	})
}

type metrics struct {
	get,
	put,
	remove,
	replace,
	clear prometheus.Histogram

	hit,
	miss,
	failure prometheus.Counter
}

func newMetrics(
	namespace string,
	registerer prometheus.Registerer,
) (*metrics, error) {
	m := &metrics{
		get:     metric.NewNanosecondsLatencyMetric(namespace, "get"),
		put:     metric.NewNanosecondsLatencyMetric(namespace, "put"),
		remove:  metric.NewNanosecondsLatencyMetric(namespace, "remove"),
		replace: metric.NewNanosecondsLatencyMetric(namespace, "replace"),
		clear:   metric.NewNanosecondsLatencyMetric(namespace, "clear"),
		hit:     newCounterMetric(namespace, "hit"),
		miss:    newCounterMetric(namespace, "miss"),
		failure: newCounterMetric(namespace, "failure"),
	}
	return m, errors.Join(
		registerer.Register(m.get),
		registerer.Register(m.put),
		registerer.Register(m.remove),
		registerer.Register(m.replace),
		registerer.Register(m.clear),
		registerer.Register(m.hit),
		registerer.Register(m.miss),
		registerer.Register(m.failure),
	)
}

// lookup records the outcome of a read.
func (m *metrics) lookup(found bool, err error) {
	switch {
	case err != nil:
		m.failure.Inc()
	case found:
		m.hit.Inc()
	default:
		m.miss.Inc()
	}
}

func (m *metrics) result(err error) {
	if err != nil {
		m.failure.Inc()
	}
}
