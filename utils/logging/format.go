// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
)

// Format modes available
const (
	Plain Format = iota
	JSON
)

// Format selects how log lines are encoded.
type Format int

// ToFormat parses a format name.
func ToFormat(f string) (Format, error) {
	switch strings.ToUpper(f) {
	case "PLAIN":
		return Plain, nil
	case "JSON":
		return JSON, nil
	default:
		return Plain, fmt.Errorf("unknown log format: %q", f)
	}
}

func (f Format) String() string {
	if f == JSON {
		return "json"
	}
	return "plain"
}

func (f Format) Encoder() zapcore.Encoder {
	config := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.TimeEncoderOfLayout("[01-02|15:04:05.000]"),
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	if f == JSON {
		config.EncodeLevel = jsonLevelEncoder
		config.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339Nano)
		return zapcore.NewJSONEncoder(config)
	}
	config.EncodeLevel = consoleLevelEncoder
	config.ConsoleSeparator = " "
	return zapcore.NewConsoleEncoder(config)
}

func consoleLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(Level(l).AlignedString())
}

func jsonLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(Level(l).LowerString())
}
