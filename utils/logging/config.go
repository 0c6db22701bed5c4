// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"io"
	"os"
)

// Config describes a single logger writing to one destination.
type Config struct {
	LogLevel Level  `json:"logLevel"`
	Format   Format `json:"format"`
	// Prefix is the name attached to every line, may be empty.
	Prefix string `json:"prefix"`
}

// DefaultConfig writes plain INFO lines.
func DefaultConfig() Config {
	return Config{
		LogLevel: Info,
		Format:   Plain,
	}
}

// New builds a logger from [config] writing to [w]. If [w] is nil, stdout is
// used.
func New(config Config, w io.WriteCloser) Logger {
	if w == nil {
		w = nopCloser{Writer: os.Stdout}
	}
	return NewLogger(
		config.Prefix,
		NewWrappedCore(config.LogLevel, w, config.Format.Encoder()),
	)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
