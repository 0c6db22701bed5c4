// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cache

import "errors"

var (
	// ErrNotSupported is returned by operations a cache deliberately does not
	// implement. Callers must not retry them.
	ErrNotSupported = errors.New("operation not supported")
	// ErrClosed is returned by every operation on a closed cache.
	ErrClosed = errors.New("cache is closed")
)

// Configuration describes a cache.
type Configuration struct {
	Name string `json:"name"`
	// Capacity is the maximum number of entries, 0 if unbounded.
	Capacity          int  `json:"capacity"`
	StatisticsEnabled bool `json:"statisticsEnabled"`
}

// CreatedListener is notified once for every key that did not previously
// exist in the cache.
type CreatedListener[K comparable, V any] func(Entry[K, V])

// EntryProcessor computes the new value of an entry. [exists] reports whether
// the key was present. Returning keep=false removes the entry.
type EntryProcessor[K comparable, V any] func(key K, value V, exists bool) (newValue V, keep bool)

// Loader fetches the value of [key] from the system of record.
type Loader[K comparable, V any] func(key K) (V, error)

// Cache is a full-featured key value store.
//
// Every method may fail with an implementation specific error, ErrClosed once
// the cache is closed, or ErrNotSupported.
type Cache[K comparable, V any] interface {
	Name() string
	Configuration() Configuration

	// Get returns the value of [key], if present.
	Get(key K) (V, bool, error)
	// GetAll returns the values of the present keys. Missing keys are
	// omitted.
	GetAll(keys []K) (map[K]V, error)
	ContainsKey(key K) (bool, error)

	// Put sets [key] to [value].
	Put(key K, value V) error
	// GetAndPut sets [key] to [value] and returns the previous value, if any.
	GetAndPut(key K, value V) (V, bool, error)
	PutAll(entries map[K]V) error
	// PutIfAbsent sets [key] to [value] only if [key] is absent and reports
	// whether it did.
	PutIfAbsent(key K, value V) (bool, error)

	// Remove deletes [key] and reports whether it was present.
	Remove(key K) (bool, error)
	// GetAndRemove deletes [key] and returns its value, if any.
	GetAndRemove(key K) (V, bool, error)
	// Replace sets [key] to [value] only if [key] is present and reports
	// whether it did.
	Replace(key K, value V) (bool, error)
	// GetAndReplace sets [key] to [value] only if [key] is present and
	// returns the previous value.
	GetAndReplace(key K, value V) (V, bool, error)

	// RemoveAll deletes every entry, notifying the cache's collaborators as
	// though each entry was removed individually.
	RemoveAll() error
	// Clear deletes every entry without notifying anyone.
	Clear() error

	// Iterator walks the entries of the cache.
	Iterator() Iterator[K, V]

	// RegisterCreatedListener subscribes [listener] to entry creation.
	RegisterCreatedListener(listener CreatedListener[K, V]) error

	// Invoke atomically applies [processor] to the entry of [key] and returns
	// the resulting value.
	Invoke(key K, processor EntryProcessor[K, V]) (V, bool, error)
	// LoadAll populates [keys] from the cache's loader.
	LoadAll(keys []K, replaceExisting bool) error
	// Unwrap returns the underlying implementation.
	Unwrap() (any, error)

	// Close releases the cache. Closing a closed cache is a noop.
	Close() error
	IsClosed() bool
}
