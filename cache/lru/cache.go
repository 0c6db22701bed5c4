// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package lru

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/hashicorp/golang-lru/simplelru"

	"github.com/ava-labs/burstcache/cache"
)

var (
	_ cache.Cache[struct{}, struct{}] = (*Cache[struct{}, struct{}])(nil)

	errNilProcessor = errors.New("nil entry processor")
)

// Cache is a key value store with bounded size. If the size is attempted to be
// exceeded, then the least recently used element is removed from the cache
// before the insertion is done.
type Cache[K comparable, V any] struct {
	config cache.Configuration
	loader cache.Loader[K, V]

	lock      sync.Mutex
	elements  *simplelru.LRU
	listeners []cache.CreatedListener[K, V]
	closed    bool
}

// NewCache creates a new LRU cache described by [config]. A capacity <= 0
// means the cache is unbounded.
func NewCache[K comparable, V any](config cache.Configuration) (*Cache[K, V], error) {
	return NewCacheWithLoader[K, V](config, nil)
}

// NewCacheWithLoader creates a new LRU cache whose LoadAll fetches values with
// [loader].
func NewCacheWithLoader[K comparable, V any](
	config cache.Configuration,
	loader cache.Loader[K, V],
) (*Cache[K, V], error) {
	size := config.Capacity
	if size <= 0 {
		size = math.MaxInt
	}
	elements, err := simplelru.NewLRU(size, nil)
	if err != nil {
		return nil, fmt.Errorf("couldn't create lru %q: %w", config.Name, err)
	}
	return &Cache[K, V]{
		config:   config,
		loader:   loader,
		elements: elements,
	}, nil
}

func (c *Cache[_, _]) Name() string {
	return c.config.Name
}

func (c *Cache[_, _]) Configuration() cache.Configuration {
	return c.config
}

func (c *Cache[K, V]) Get(key K) (V, bool, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.closed {
		return *new(V), false, cache.ErrClosed
	}
	value, ok := c.get(key)
	return value, ok, nil
}

func (c *Cache[K, V]) GetAll(keys []K) (map[K]V, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.closed {
		return nil, cache.ErrClosed
	}
	values := make(map[K]V, len(keys))
	for _, key := range keys {
		if value, ok := c.get(key); ok {
			values[key] = value
		}
	}
	return values, nil
}

func (c *Cache[K, _]) ContainsKey(key K) (bool, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.closed {
		return false, cache.ErrClosed
	}
	return c.elements.Contains(key), nil
}

func (c *Cache[K, V]) Put(key K, value V) error {
	_, _, err := c.GetAndPut(key, value)
	return err
}

func (c *Cache[K, V]) GetAndPut(key K, value V) (V, bool, error) {
	c.lock.Lock()
	if c.closed {
		c.lock.Unlock()
		return *new(V), false, cache.ErrClosed
	}
	previous, existed := c.peek(key)
	c.elements.Add(key, value)
	listeners := c.createdListeners(existed)
	c.lock.Unlock()

	notify(listeners, key, value)
	return previous, existed, nil
}

func (c *Cache[K, V]) PutAll(entries map[K]V) error {
	for key, value := range entries {
		if err := c.Put(key, value); err != nil {
			return err
		}
	}
	return nil
}

func (c *Cache[K, V]) PutIfAbsent(key K, value V) (bool, error) {
	c.lock.Lock()
	if c.closed {
		c.lock.Unlock()
		return false, cache.ErrClosed
	}
	if c.elements.Contains(key) {
		c.lock.Unlock()
		return false, nil
	}
	c.elements.Add(key, value)
	listeners := c.createdListeners(false)
	c.lock.Unlock()

	notify(listeners, key, value)
	return true, nil
}

func (c *Cache[K, _]) Remove(key K) (bool, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.closed {
		return false, cache.ErrClosed
	}
	return c.elements.Remove(key), nil
}

func (c *Cache[K, V]) GetAndRemove(key K) (V, bool, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.closed {
		return *new(V), false, cache.ErrClosed
	}
	value, ok := c.peek(key)
	if ok {
		c.elements.Remove(key)
	}
	return value, ok, nil
}

func (c *Cache[K, V]) Replace(key K, value V) (bool, error) {
	_, replaced, err := c.GetAndReplace(key, value)
	return replaced, err
}

func (c *Cache[K, V]) GetAndReplace(key K, value V) (V, bool, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.closed {
		return *new(V), false, cache.ErrClosed
	}
	previous, ok := c.peek(key)
	if ok {
		c.elements.Add(key, value)
	}
	return previous, ok, nil
}

// RemoveAll is equivalent to Clear, the cache has no removal listeners.
func (c *Cache[_, _]) RemoveAll() error {
	return c.Clear()
}

func (c *Cache[_, _]) Clear() error {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.closed {
		return cache.ErrClosed
	}
	c.elements.Purge()
	return nil
}

// Iterator walks a snapshot of the cache from the least to the most recently
// used entry. Iterating does not change the recency of any entry.
func (c *Cache[K, V]) Iterator() cache.Iterator[K, V] {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.closed {
		return cache.NewErrIterator[K, V](cache.ErrClosed)
	}
	keys := c.elements.Keys()
	entries := make([]cache.Entry[K, V], 0, len(keys))
	for _, k := range keys {
		key, _ := k.(K)
		value, _ := c.peek(key)
		entries = append(entries, cache.Entry[K, V]{
			Key:   key,
			Value: value,
		})
	}
	return cache.NewSliceIterator(entries)
}

func (c *Cache[K, V]) RegisterCreatedListener(listener cache.CreatedListener[K, V]) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.closed {
		return cache.ErrClosed
	}
	c.listeners = append(c.listeners, listener)
	return nil
}

// Invoke applies [processor] while holding the cache lock. The processor must
// not call back into the cache.
func (c *Cache[K, V]) Invoke(key K, processor cache.EntryProcessor[K, V]) (V, bool, error) {
	if processor == nil {
		return *new(V), false, errNilProcessor
	}

	c.lock.Lock()
	if c.closed {
		c.lock.Unlock()
		return *new(V), false, cache.ErrClosed
	}
	value, exists := c.peek(key)
	newValue, keep := processor(key, value, exists)
	if !keep {
		c.elements.Remove(key)
		c.lock.Unlock()
		return *new(V), false, nil
	}
	c.elements.Add(key, newValue)
	listeners := c.createdListeners(exists)
	c.lock.Unlock()

	notify(listeners, key, newValue)
	return newValue, true, nil
}

// LoadAll fetches [keys] from the loader. Keys that are already cached are
// only reloaded if [replaceExisting] is set.
func (c *Cache[K, V]) LoadAll(keys []K, replaceExisting bool) error {
	if c.loader == nil {
		return cache.ErrNotSupported
	}
	for _, key := range keys {
		if !replaceExisting {
			contains, err := c.ContainsKey(key)
			if err != nil {
				return err
			}
			if contains {
				continue
			}
		}

		value, err := c.loader(key)
		if err != nil {
			return fmt.Errorf("couldn't load %v into %q: %w", key, c.config.Name, err)
		}
		if err := c.Put(key, value); err != nil {
			return err
		}
	}
	return nil
}

// Unwrap returns the underlying simplelru.LRUCache. It is not safe for
// concurrent use.
func (c *Cache[_, _]) Unwrap() (any, error) {
	var unwrapped simplelru.LRUCache = c.elements
	return unwrapped, nil
}

func (c *Cache[_, _]) Close() error {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	c.elements.Purge()
	c.listeners = nil
	return nil
}

func (c *Cache[_, _]) IsClosed() bool {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.closed
}

// Len returns the number of cached entries.
func (c *Cache[_, _]) Len() int {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.elements.Len()
}

// PortionFilled returns the fraction of the capacity in use, 0 if the cache is
// unbounded.
func (c *Cache[_, _]) PortionFilled() float64 {
	if c.config.Capacity <= 0 {
		return 0
	}
	return float64(c.Len()) / float64(c.config.Capacity)
}

// get marks [key] as the most recently used entry.
func (c *Cache[K, V]) get(key K) (V, bool) {
	value, ok := c.elements.Get(key)
	if !ok {
		return *new(V), false
	}
	v, _ := value.(V)
	return v, true
}

func (c *Cache[K, V]) peek(key K) (V, bool) {
	value, ok := c.elements.Peek(key)
	if !ok {
		return *new(V), false
	}
	v, _ := value.(V)
	return v, true
}

// createdListeners returns the listeners to notify after an insertion. Must be
// called with the lock held.
func (c *Cache[K, V]) createdListeners(existed bool) []cache.CreatedListener[K, V] {
	if existed || len(c.listeners) == 0 {
		return nil
	}
	return c.listeners
}

func notify[K comparable, V any](listeners []cache.CreatedListener[K, V], key K, value V) {
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
