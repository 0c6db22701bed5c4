// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package shared

import (
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/ava-labs/burstcache/cache"
	"github.com/ava-labs/burstcache/utils/timer/mockable"
)

// Provider computes the value shared by every primary key mapped to [key].
type Provider[S comparable, V any] func(key S) V

// Cache maps primary keys to values interned by a shared key. Every primary
// key stored with the same shared key receives the same value instance.
//
// Primary entries expire. Shared values are kept until they are forgotten.
type Cache[P comparable, S comparable, V any] struct {
	clock *mockable.Clock

	primary sync.Map // P -> *cache.CachedResult[V]
	shared  sync.Map // S -> V
	group   singleflight.Group
	// flights assigns every shared key a distinct singleflight key.
	flights    sync.Map // S -> string
	nextFlight atomic.Uint64
}

// New returns an empty cache. If [clock] is nil, the wall clock is used.
func New[P comparable, S comparable, V any](clock *mockable.Clock) *Cache[P, S, V] {
	if clock == nil {
		clock = &mockable.Clock{}
	}
	return &Cache[P, S, V]{
		clock: clock,
	}
}

// Put stores the value of [sharedKey] under [primaryKey] for [ttl] and
// returns it. The value is computed by [provider] only if [sharedKey] has no
// value yet. Concurrent callers with the same shared key wait for a single
// computation.
func (c *Cache[P, S, V]) Put(primaryKey P, sharedKey S, provider Provider[S, V], ttl time.Duration) V {
	value := c.intern(sharedKey, provider)
	c.primary.Store(primaryKey, cache.NewCachedResult(value, c.clock.Time(), ttl))
	return value
}

// Get returns the value of [primaryKey] if it is present and hasn't expired.
func (c *Cache[P, _, V]) Get(primaryKey P) (V, bool) {
	entry, ok := c.primary.Load(primaryKey)
	if !ok {
		return *new(V), false
	}
	result, _ := entry.(*cache.CachedResult[V])
	if result == nil || !result.IsValid(c.clock.Time()) {
		return *new(V), false
	}
	return result.Value(), true
}

// Remove deletes [primaryKey]. The shared value is kept.
func (c *Cache[P, _, _]) Remove(primaryKey P) {
	c.primary.Delete(primaryKey)
}

// Forget drops the value of [sharedKey]. Primary entries already holding it
// are unaffected, later puts compute a new value.
func (c *Cache[_, S, _]) Forget(sharedKey S) {
	c.shared.Delete(sharedKey)
	if flight, ok := c.flights.LoadAndDelete(sharedKey); ok {
		key, _ := flight.(string)
		c.group.Forget(key)
	}
}

// Shared returns the number of interned values.
func (c *Cache[_, _, _]) Shared() int {
	return count(&c.shared)
}

// Len returns the number of primary entries, including expired entries.
func (c *Cache[_, _, _]) Len() int {
	return count(&c.primary)
}

func (c *Cache[_, S, V]) intern(sharedKey S, provider Provider[S, V]) V {
	if value, ok := c.shared.Load(sharedKey); ok {
		v, _ := value.(V)
		return v
	}

	value, _, _ := c.group.Do(c.flightKey(sharedKey), func() (any, error) {
		if value, ok := c.shared.Load(sharedKey); ok {
			return value, nil
		}
		value, _ := c.shared.LoadOrStore(sharedKey, provider(sharedKey))
		return value, nil
	})
	v, _ := value.(V)
	return v
}

// flightKey returns the singleflight key of [sharedKey]. Keys are assigned
// on first use, so distinct shared keys never share a flight.
func (c *Cache[_, S, _]) flightKey(sharedKey S) string {
	flight, ok := c.flights.Load(sharedKey)
	if !ok {
		flight, _ = c.flights.LoadOrStore(sharedKey, strconv.FormatUint(c.nextFlight.Add(1), 10))
	}
	key, _ := flight.(string)
	return key
}

func count(m *sync.Map) int {
	var n int
	m.Range(func(any, any) bool {
		n++
		return true
	})
	return n
}
