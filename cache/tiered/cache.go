// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tiered

import (
	"errors"
	"fmt"
	"hash/maphash"
	"sync"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ava-labs/burstcache/cache"
	"github.com/ava-labs/burstcache/utils/capacity"
	"github.com/ava-labs/burstcache/utils/logging"
)

const numStripes = 64

var (
	_ cache.Cache[struct{}, struct{}] = (*Cache[struct{}, struct{}])(nil)

	ErrInvalidCapacity = errors.New("hot capacity must be positive")
	errNilDelegate     = errors.New("nil delegate cache")
)

// Cache serves writes from a bounded in-memory hot store and overflows to a
// delegate cache once the hot store is full.
//
// A key lives in at most one tier at a time. Keys already held by the
// delegate are updated in the delegate, keys already held by the hot store
// are updated in the hot store even when it is full.
type Cache[K comparable, V any] struct {
	log      logging.Logger
	delegate cache.Cache[K, V]

	// structure is held for writing by operations that touch every entry, and
	// for reading by everything else.
	structure sync.RWMutex
	// stripes serialize operations on the same key across both tiers.
	stripes [numStripes]sync.Mutex
	seed    maphash.Seed

	slots *capacity.Counter
	hot   sync.Map
	// occupancy mirrors slots.Len().
	occupancy prometheus.Gauge

	listenersLock sync.RWMutex
	listeners     []cache.CreatedListener[K, V]

	closed atomic.Bool
}

// New returns a cache holding up to [hotCapacity] entries in memory before
// overflowing to [delegate].
func New[K comparable, V any](
	log logging.Logger,
	delegate cache.Cache[K, V],
	hotCapacity int,
) (*Cache[K, V], error) {
	if hotCapacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, hotCapacity)
	}
	if delegate == nil {
		return nil, errNilDelegate
	}
	if log == nil {
		log = logging.NoLog{}
	}
	return &Cache[K, V]{
		log:      log,
		delegate: delegate,
		seed:     maphash.MakeSeed(),
		slots:    capacity.NewCounter(hotCapacity),
		occupancy: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "hot_entries",
			Help: "Number of entries held by the hot store",
		}),
	}, nil
}

// NewWithMetrics is New with the hot store occupancy reported to
// [registerer] under [namespace].
func NewWithMetrics[K comparable, V any](
	log logging.Logger,
	delegate cache.Cache[K, V],
	hotCapacity int,
	namespace string,
	registerer prometheus.Registerer,
) (*Cache[K, V], error) {
	c, err := New(log, delegate, hotCapacity)
	if err != nil {
		return nil, err
	}
	c.occupancy = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "hot_entries",
		Help:      "Number of entries held by the hot store",
	})
	return c, registerer.Register(c.occupancy)
}

func (c *Cache[_, _]) Name() string {
	return c.delegate.Name()
}

func (c *Cache[_, _]) Configuration() cache.Configuration {
	return c.delegate.Configuration()
}

// Capacity returns the number of entries the hot store can hold.
func (c *Cache[_, _]) Capacity() int {
	return c.slots.Limit()
}

// Len returns the number of entries in the hot store.
func (c *Cache[_, _]) Len() int {
	return c.slots.Len()
}

func (c *Cache[K, V]) Get(key K) (V, bool, error) {
	c.structure.RLock()
	defer c.structure.RUnlock()

	if value, ok := c.hot.Load(key); ok {
		return unwrap[V](value), true, nil
	}
	return c.delegate.Get(key)
}

func (c *Cache[K, V]) GetAll(keys []K) (map[K]V, error) {
	c.structure.RLock()
	defer c.structure.RUnlock()

	values := make(map[K]V, len(keys))
	for _, key := range keys {
		if value, ok := c.hot.Load(key); ok {
			values[key] = unwrap[V](value)
			continue
		}
		value, ok, err := c.delegate.Get(key)
		if err != nil {
			return nil, err
		}
		if ok {
			values[key] = value
		}
	}
	return values, nil
}

func (c *Cache[K, _]) ContainsKey(key K) (bool, error) {
	c.structure.RLock()
	defer c.structure.RUnlock()

	if _, ok := c.hot.Load(key); ok {
		return true, nil
	}
	return c.delegate.ContainsKey(key)
}

func (c *Cache[K, V]) Put(key K, value V) error {
	_, _, err := c.GetAndPut(key, value)
	return err
}

func (c *Cache[K, V]) GetAndPut(key K, value V) (V, bool, error) {
	c.structure.RLock()
	previous, found, created, err := c.getAndPut(key, value)
	c.structure.RUnlock()

	if created {
		c.notify(key, value)
	}
	return previous, found, err
}

// getAndPut must be called with the structure lock held for reading. Returns
// true if [key] was created in the hot store.
func (c *Cache[K, V]) getAndPut(key K, value V) (V, bool, bool, error) {
	if c.IsClosed() {
		previous, found, err := c.delegate.GetAndPut(key, value)
		return previous, found, false, err
	}

	lock := c.stripe(key)
	lock.Lock()
	defer lock.Unlock()

	if previous, ok := c.hot.Load(key); ok {
		c.hot.Store(key, value)
		return unwrap[V](previous), true, false, nil
	}

	if !c.slots.TryAcquire() {
		c.log.Verbo("hot store full, writing to delegate",
			zap.String("cache", c.delegate.Name()),
			zap.Int("capacity", c.slots.Limit()),
		)
		previous, found, err := c.delegate.GetAndPut(key, value)
		return previous, found, false, err
	}

	inDelegate, err := c.delegate.ContainsKey(key)
	if err != nil || inDelegate {
		c.release(1)
		if err != nil {
			return *new(V), false, false, err
		}
		previous, found, err := c.delegate.GetAndPut(key, value)
		return previous, found, false, err
	}

	previous, replaced := c.hot.Swap(key, value)
	if replaced {
		c.release(1)
		return unwrap[V](previous), true, false, nil
	}
	c.occupancy.Set(float64(c.slots.Len()))
	return *new(V), false, true, nil
}

func (c *Cache[K, V]) PutAll(entries map[K]V) error {
	for key, value := range entries {
		if err := c.Put(key, value); err != nil {
			return err
		}
	}
	return nil
}

// PutIfAbsent is not supported.
func (*Cache[K, V]) PutIfAbsent(K, V) (bool, error) {
	return false, cache.ErrNotSupported
}

func (c *Cache[K, V]) Remove(key K) (bool, error) {
	_, found, err := c.GetAndRemove(key)
	return found, err
}

func (c *Cache[K, V]) GetAndRemove(key K) (V, bool, error) {
	c.structure.RLock()
	defer c.structure.RUnlock()

	lock := c.stripe(key)
	lock.Lock()
	defer lock.Unlock()

	if value, ok := c.hot.LoadAndDelete(key); ok {
		c.release(1)
		return unwrap[V](value), true, nil
	}
	return c.delegate.GetAndRemove(key)
}

func (c *Cache[K, V]) Replace(key K, value V) (bool, error) {
	_, found, err := c.GetAndReplace(key, value)
	return found, err
}

func (c *Cache[K, V]) GetAndReplace(key K, value V) (V, bool, error) {
	c.structure.RLock()
	defer c.structure.RUnlock()

	lock := c.stripe(key)
	lock.Lock()
	defer lock.Unlock()

	if previous, ok := c.hot.Load(key); ok {
		c.hot.Store(key, value)
		return unwrap[V](previous), true, nil
	}
	return c.delegate.GetAndReplace(key, value)
}

func (c *Cache[_, _]) RemoveAll() error {
	c.structure.Lock()
	defer c.structure.Unlock()

	c.clearHot()
	return c.delegate.RemoveAll()
}

func (c *Cache[_, _]) Clear() error {
	c.structure.Lock()
	defer c.structure.Unlock()

	c.clearHot()
	return c.delegate.Clear()
}

// Iterator walks a live view of the hot store followed by the delegate's
// entries. The delegate's iterator is only created once the hot store is
// exhausted.
// Iterator walks the hot store and then the delegate. The delegate iterator
// is only created once the hot store is exhausted.
func (c *Cache[K, V]) Iterator() cache.Iterator[K, V] {
	return cache.Concat(
		cache.NewSeqIterator(c.hotEntries),
		cache.Lazy(c.delegate.Iterator),
	)
}

// RegisterCreatedListener registers [listener] with the delegate, which
// reports keys that overflow, and retains it to report keys created in the
// hot store.
//
// Keys created in the hot store are reported after every lock is released.
// Overflowing keys are reported by the delegate while the key's lock is held,
// so [listener] must not call back into this cache.
func (c *Cache[K, V]) RegisterCreatedListener(listener cache.CreatedListener[K, V]) error {
	if err := c.delegate.RegisterCreatedListener(listener); err != nil {
		return err
	}

	c.listenersLock.Lock()
	defer c.listenersLock.Unlock()

	c.listeners = append(c.listeners, listener)
	return nil
}

// Invoke is not supported.
func (*Cache[K, V]) Invoke(K, cache.EntryProcessor[K, V]) (V, bool, error) {
	return *new(V), false, cache.ErrNotSupported
}

// LoadAll is not supported.
func (*Cache[K, _]) LoadAll([]K, bool) error {
	return cache.ErrNotSupported
}

// Unwrap is not supported.
func (*Cache[_, _]) Unwrap() (any, error) {
	return nil, cache.ErrNotSupported
}

// Close moves every hot entry into the delegate and then closes the delegate.
func (c *Cache[K, V]) Close() error {
	c.structure.Lock()
	defer c.structure.Unlock()

	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}

	var (
		errs    []error
		drained int
	)
	c.hot.Range(func(k, v any) bool {
		if err := c.delegate.Put(unwrap[K](k), unwrap[V](v)); err != nil {
			errs = append(errs, err)
			return true
		}
		drained++
		return true
	})
	c.clearHot()

	c.log.Debug("closing tiered cache",
		zap.String("cache", c.delegate.Name()),
		zap.Int("drained", drained),
		zap.Int("failed", len(errs)),
	)
	errs = append(errs, c.delegate.Close())
	return errors.Join(errs...)
}

func (c *Cache[_, _]) IsClosed() bool {
	return c.closed.Load() || c.delegate.IsClosed()
}

func (c *Cache[K, V]) hotEntries(yield func(K, V) bool) {
	c.hot.Range(func(k, v any) bool {
		return yield(unwrap[K](k), unwrap[V](v))
	})
}

// clearHot must be called with the structure lock held for writing.
func (c *Cache[_, _]) clearHot() {
	c.hot.Clear()
	c.slots.Reset()
	c.occupancy.Set(0)
}

func (c *Cache[_, _]) release(n int) {
	c.slots.ReleaseN(n)
	c.occupancy.Set(float64(c.slots.Len()))
}

func (c *Cache[K, _]) stripe(key K) *sync.Mutex {
	return &c.stripes[maphash.Comparable(c.seed, key)%numStripes]
}

func (c *Cache[K, V]) notify(key K, value V) {
	c.listenersLock.RLock()
	listeners := c.listeners
	c.listenersLock.RUnlock()

	if len(listeners) == 0 {
		return
	}
	entry := cache.Entry[K, V]{
		Key:   key,
		Value: value,
	}
	for _, listener := range listeners {
		listener(entry)
	}
}

func unwrap[T any](v any) T {
	t, _ := v.(T)
	return t
}
