// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metercacher

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/burstcache/cache"
	"github.com/ava-labs/burstcache/utils/metric"
)

var _ cache.Cache[struct{}, struct{}] = (*Cache[struct{}, struct{}])(nil)

// Cache records the latency and outcome of every call to the wrapped cache.
// Operations that aren't measured pass straight through.
type Cache[K comparable, V any] struct {
	cache.Cache[K, V]

	metrics *metrics
}

func New[K comparable, V any](
	namespace string,
	registerer prometheus.Registerer,
	c cache.Cache[K, V],
) (*Cache[K, V], error) {
	metrics, err := newMetrics(namespace, registerer)
	return &Cache[K, V]{
		Cache:   c,
		metrics: metrics,
	}, err
}

func (c *Cache[K, V]) Get(key K) (V, bool, error) {
	start := time.Now()
	value, found, err := c.Cache.Get(key)
	metric.ObserveSince(c.metrics.get, start)

	c.metrics.lookup(found, err)
	return value, found, err
}

func (c *Cache[K, V]) GetAll(keys []K) (map[K]V, error) {
	start := time.Now()
	values, err := c.Cache.GetAll(keys)
	metric.ObserveSince(c.metrics.get, start)

	if err != nil {
		c.metrics.failure.Inc()
		return values, err
	}
	c.metrics.hit.Add(float64(len(values)))
	c.metrics.miss.Add(float64(len(keys) - len(values)))
	return values, nil
}

func (c *Cache[K, _]) ContainsKey(key K) (bool, error) {
	start := time.Now()
	found, err := c.Cache.ContainsKey(key)
	metric.ObserveSince(c.metrics.get, start)

	c.metrics.lookup(found, err)
	return found, err
}

func (c *Cache[K, V]) Put(key K, value V) error {
	start := time.Now()
	err := c.Cache.Put(key, value)
	metric.ObserveSince(c.metrics.put, start)

	c.metrics.result(err)
	return err
}

func (c *Cache[K, V]) GetAndPut(key K, value V) (V, bool, error) {
	start := time.Now()
	previous, found, err := c.Cache.GetAndPut(key, value)
	metric.ObserveSince(c.metrics.put, start)

	c.metrics.result(err)
	return previous, found, err
}

func (c *Cache[K, V]) PutAll(entries map[K]V) error {
	start := time.Now()
	err := c.Cache.PutAll(entries)
	metric.ObserveSince(c.metrics.put, start)

	c.metrics.result(err)
	return err
}

func (c *Cache[K, _]) Remove(key K) (bool, error) {
	start := time.Now()
	removed, err := c.Cache.Remove(key)
	metric.ObserveSince(c.metrics.remove, start)

	c.metrics.result(err)
	return removed, err
}

func (c *Cache[K, V]) GetAndRemove(key K) (V, bool, error) {
	start := time.Now()
	value, found, err := c.Cache.GetAndRemove(key)
	metric.ObserveSince(c.metrics.remove, start)

	c.metrics.result(err)
	return value, found, err
}

func (c *Cache[K, V]) Replace(key K, value V) (bool, error) {
	start := time.Now()
	replaced, err := c.Cache.Replace(key, value)
	metric.ObserveSince(c.metrics.replace, start)

	c.metrics.result(err)
	return replaced, err
}

func (c *Cache[K, V]) GetAndReplace(key K, value V) (V, bool, error) {
	start := time.Now()
	previous, found, err := c.Cache.GetAndReplace(key, value)
	metric.ObserveSince(c.metrics.replace, start)

	c.metrics.result(err)
	return previous, found, err
}

func (c *Cache[_, _]) RemoveAll() error {
	start := time.Now()
	err := c.Cache.RemoveAll()
	metric.ObserveSince(c.metrics.clear, start)

	c.metrics.result(err)
	return err
}

func (c *Cache[_, _]) Clear() error {
	start := time.Now()
	err := c.Cache.Clear()
	metric.ObserveSince(c.metrics.clear, start)

	c.metrics.result(err)
	return err
}
