// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import "go.uber.org/zap"

// Logger defines the structured logging interface used across the module.
type Logger interface {
	// Fatal is for critical failures the process cannot recover from.
	Fatal(msg string, fields ...zap.Field)
	// Error is for a failed operation that will not be retried.
	Error(msg string, fields ...zap.Field)
	// Warn is for an unexpected, but tolerated, condition.
	Warn(msg string, fields ...zap.Field)
	// Info is for lifecycle events an operator cares about.
	Info(msg string, fields ...zap.Field)
	// Trace is for high level per-batch events.
	Trace(msg string, fields ...zap.Field)
	// Debug is for per-item events.
	Debug(msg string, fields ...zap.Field)
	// Verbo is for anything else.
	Verbo(msg string, fields ...zap.Field)

	// With returns a child logger that always attaches [fields].
	With(fields ...zap.Field) Logger

	// SetLevel changes the minimum level that is written.
	SetLevel(level Level)
	// Enabled reports whether [level] would be written.
	Enabled(level Level) bool

	// Stop flushes and closes the underlying writers.
	Stop()
}
