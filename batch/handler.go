// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package batch

var _ Handler[struct{}] = HandlerFunc[struct{}](nil)

// Handler processes items released by a Processor.
type Handler[T any] interface {
	// Process handles [item]. A returned error is logged and counted, the
	// item is not retried.
	Process(item T) error
}

// HandlerFunc adapts a function to a Handler.
type HandlerFunc[T any] func(item T) error

func (f HandlerFunc[T]) Process(item T) error {
	return f(item)
}

// Queue holds the items waiting to be processed.
//
// buffer.DelaySet and buffer.UniqueBlockingQueue both satisfy Queue.
type Queue[T any] interface {
	// Offer adds [item], returning false if it was refused.
	Offer(item T) bool
	// TryPoll removes an item that is ready to be processed, without
	// blocking.
	TryPoll() (T, bool)
	// Drain removes every item regardless of readiness.
	Drain() []T
	Len() int
}
