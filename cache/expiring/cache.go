// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package expiring

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ava-labs/burstcache/cache"
	"github.com/ava-labs/burstcache/utils/timer/mockable"
)

// Cache holds values for a bounded amount of time.
//
// Each entry keeps the TTL that was configured when it was written. Expired
// entries are invisible to reads and are removed lazily, by iteration or by
// Purge.
type Cache[K comparable, V comparable] struct {
	name  string
	clock *mockable.Clock
	ttl   atomic.Int64

	entries sync.Map // K -> *cache.CachedResult[V]
}

// New returns an empty cache whose entries live for [ttl]. If [clock] is nil,
// the wall clock is used.
func New[K comparable, V comparable](name string, ttl time.Duration, clock *mockable.Clock) *Cache[K, V] {
	if clock == nil {
		clock = &mockable.Clock{}
	}
	c := &Cache[K, V]{
		name:  name,
		clock: clock,
	}
	c.ttl.Store(int64(ttl))
	return c
}

func (c *Cache[_, _]) Name() string {
	return c.name
}

// TTL returns the lifetime given to newly written entries.
func (c *Cache[_, _]) TTL() time.Duration {
	return time.Duration(c.ttl.Load())
}

// SetTTL changes the lifetime given to newly written entries. Existing entries
// keep their expiry.
func (c *Cache[_, _]) SetTTL(ttl time.Duration) {
	c.ttl.Store(int64(ttl))
}

func (c *Cache[K, V]) Put(key K, value V) {
	c.entries.Store(key, c.newResult(value))
}

// Get returns the value of [key] if it is present and hasn't expired. Expired
// entries are left in place.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	result, ok := c.load(key)
	if !ok || !result.IsValid(c.clock.Time()) {
		return *new(V), false
	}
	return result.Value(), true
}

// Replace sets [key] to [value] only if its current unexpired value is
// [expected]. The replacement gets a fresh TTL.
func (c *Cache[K, V]) Replace(key K, expected, value V) bool {
	result, ok := c.load(key)
	if !ok || !result.IsValid(c.clock.Time()) || result.Value() != expected {
		return false
	}
	return c.entries.CompareAndSwap(key, result, c.newResult(value))
}

// GetAndReplace sets [key] to [value] if it holds an unexpired value and
// returns the previous value.
func (c *Cache[K, V]) GetAndReplace(key K, value V) (V, bool) {
	replacement := c.newResult(value)
	for {
		result, ok := c.load(key)
		if !ok || !result.IsValid(c.clock.Time()) {
			return *new(V), false
		}
		if c.entries.CompareAndSwap(key, result, replacement) {
			return result.Value(), true
		}
	}
}

// Remove deletes [key] and reports whether an unexpired value was removed.
func (c *Cache[K, V]) Remove(key K) bool {
	value, ok := c.entries.LoadAndDelete(key)
	if !ok {
		return false
	}
	result, _ := value.(*cache.CachedResult[V])
	return result != nil && result.IsValid(c.clock.Time())
}

// RemoveAllKeys deletes every key in [keys].
func (c *Cache[K, _]) RemoveAllKeys(keys []K) {
	for _, key := range keys {
		c.entries.Delete(key)
	}
}

// RemoveAll deletes every entry.
func (c *Cache[_, _]) RemoveAll() {
	c.Clear()
}

func (c *Cache[_, _]) Clear() {
	c.entries.Clear()
}

// Iterator walks the unexpired entries. Expired entries encountered along the
// way are removed.
func (c *Cache[K, V]) Iterator() cache.Iterator[K, V] {
	return cache.NewSeqIterator(c.valid)
}

// Purge removes every expired entry and returns how many were removed.
func (c *Cache[_, _]) Purge() int {
	var purged int
	now := c.clock.Time()
	c.entries.Range(func(key, value any) bool {
		if c.evict(key, value, now) {
			purged++
		}
		return true
	})
	return purged
}

// Len returns the number of stored entries, including expired entries that
// haven't been removed yet.
func (c *Cache[_, _]) Len() int {
	var n int
	c.entries.Range(func(any, any) bool {
		n++
		return true
	})
	return n
}

// RunJanitor purges expired entries every [interval] until [ctx] is done.
// [onPurge] is called with the number of entries removed by each sweep.
func (c *Cache[_, _]) RunJanitor(ctx context.Context, interval time.Duration, onPurge func(int)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			purged := c.Purge()
			if onPurge != nil {
				onPurge(purged)
			}
		case <-ctx.Done():
			return
		}
	}
}

func (c *Cache[K, V]) valid(yield func(K, V) bool) {
	c.entries.Range(func(key, value any) bool {
		result, ok := value.(*cache.CachedResult[V])
		if !ok {
			return true
		}
		if !result.IsValid(c.clock.Time()) {
			c.entries.CompareAndDelete(key, value)
			return true
		}
		k, _ := key.(K)
		return yield(k, result.Value())
	})
}

// evict removes [key] if [value] is still its entry and has expired at [now].
func (c *Cache[_, V]) evict(key, value any, now time.Time) bool {
	result, _ := value.(*cache.CachedResult[V])
	if result == nil || result.IsValid(now) {
		return false
	}
	return c.entries.CompareAndDelete(key, value)
}

func (c *Cache[K, V]) load(key K) (*cache.CachedResult[V], bool) {
	value, ok := c.entries.Load(key)
	if !ok {
		return nil, false
	}
	result, ok := value.(*cache.CachedResult[V])
	return result, ok
}

func (c *Cache[_, V]) newResult(value V) *cache.CachedResult[V] {
	return cache.NewCachedResult(value, c.clock.Time(), c.TTL())
}
