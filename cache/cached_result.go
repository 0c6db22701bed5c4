// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cache

import "time"

// CachedResult is an immutable value with its creation and expiry times, in
// milliseconds since the unix epoch.
type CachedResult[V any] struct {
	value   V
	created int64
	expires int64
}

// NewCachedResult returns [value] created at [now] expiring [ttl] later.
func NewCachedResult[V any](value V, now time.Time, ttl time.Duration) *CachedResult[V] {
	created := now.UnixMilli()
	return &CachedResult[V]{
		value:   value,
		created: created,
		expires: created + ttl.Milliseconds(),
	}
}

func (r *CachedResult[V]) Value() V {
	return r.value
}

// Created returns the creation time in unix milliseconds.
func (r *CachedResult[_]) Created() int64 {
	return r.created
}

// Expires returns the expiry time in unix milliseconds.
func (r *CachedResult[_]) Expires() int64 {
	return r.expires
}

// IsValid returns true iff [at] is before the expiry time.
func (r *CachedResult[_]) IsValid(at time.Time) bool {
	return at.UnixMilli() < r.expires
}
