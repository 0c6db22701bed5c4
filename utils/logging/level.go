// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Level is a zapcore.Level extended with the Verbo and Trace levels.
type Level int8

const (
	Verbo Level = iota - 3
	Debug
	Trace
	Info
	Warn
	Error
	Fatal
	Off
)

const (
	alignedStringLen = 5

	fatalStr   = "FATAL"
	errorStr   = "ERROR"
	warnStr    = "WARN"
	infoStr    = "INFO"
	traceStr   = "TRACE"
	debugStr   = "DEBUG"
	verboStr   = "VERBO"
	offStr     = "OFF"
	unknownStr = "UNKNO"
)

// ToLevel is the inverse of Level.String()
func ToLevel(l string) (Level, error) {
	switch strings.ToUpper(l) {
	case offStr:
		return Off, nil
	case fatalStr:
		return Fatal, nil
	case errorStr:
		return Error, nil
	case warnStr:
		return Warn, nil
	case infoStr:
		return Info, nil
	case traceStr:
		return Trace, nil
	case debugStr:
		return Debug, nil
	case verboStr:
		return Verbo, nil
	default:
		return Off, fmt.Errorf("unknown log level: %q", l)
	}
}

func (l Level) String() string {
	switch l {
	case Fatal:
		return fatalStr
	case Error:
		return errorStr
	case Warn:
		return warnStr
	case Info:
		return infoStr
	case Trace:
		return traceStr
	case Debug:
		return debugStr
	case Verbo:
		return verboStr
	case Off:
		return offStr
	default:
		// This should never happen
		return unknownStr
	}
}

// LowerString is the lower-case form of String, used by the console encoder.
func (l Level) LowerString() string {
	return strings.ToLower(l.String())
}

// AlignedString pads or truncates String to exactly [alignedStringLen]
// characters so that console output lines up.
func (l Level) AlignedString() string {
	s := l.String()
	sLen := len(s)
	switch {
	case sLen < alignedStringLen:
		return s + strings.Repeat(" ", alignedStringLen-sLen)
	case sLen == alignedStringLen:
		return s
	default:
		return s[:alignedStringLen]
	}
}

func (l Level) zap() zapcore.Level {
	return zapcore.Level(l)
}

func (l Level) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

func (l *Level) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	var err error
	*l, err = ToLevel(str)
	return err
}
