// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cache

// Entry is a key value pair exposed by iteration and listeners.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Unwrap always fails, entries are not backed by a native type.
func (Entry[_, _]) Unwrap() (any, error) {
	return nil, ErrNotSupported
}
