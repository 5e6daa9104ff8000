// Copyright 2024 The EDS Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package xlog is the small leveled logger the cmd/edsdump CLI wires in
// around the core eds package, which never logs anything itself.
package xlog

import (
	"fmt"
	"log"
	"os"
)

// Level orders log severities from most to least verbose.
type Level int

const (
	LevelDebug Level = iota
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger is the minimal interface the CLI depends on; callers may supply
// their own implementation in place of StdLogger.
type Logger interface {
	Log(level Level, msg string)
}

// StdLogger backs Logger with the standard library's log.Logger.
type StdLogger struct {
	out *log.Logger
}

// NewStdLogger builds a StdLogger writing to w.
func NewStdLogger(w *os.File) *StdLogger {
	return &StdLogger{out: log.New(w, "", log.LstdFlags)}
}

func (s *StdLogger) Log(level Level, msg string) {
	s.out.Printf("%s: %s", level, msg)
}

// FilterLogger wraps a Logger and drops messages below a minimum level.
type FilterLogger struct {
	next Logger
	min  Level
}

// NewFilter builds a FilterLogger that passes through only messages at
// or above min.
func NewFilter(next Logger, min Level) *FilterLogger {
	return &FilterLogger{next: next, min: min}
}

func (f *FilterLogger) Log(level Level, msg string) {
	if level < f.min {
		return
	}
	f.next.Log(level, msg)
}

// Helper adds printf-style convenience methods over a Logger.
type Helper struct {
	logger Logger
}

// NewHelper wraps logger in a Helper.
func NewHelper(logger Logger) *Helper {
	return &Helper{logger: logger}
}

func (h *Helper) Debug(msg string)  { h.logger.Log(LevelDebug, msg) }
func (h *Helper) Warn(msg string)   { h.logger.Log(LevelWarn, msg) }
func (h *Helper) Error(msg string)  { h.logger.Log(LevelError, msg) }

func (h *Helper) Debugf(format string, args ...any) { h.logger.Log(LevelDebug, fmt.Sprintf(format, args...)) }
func (h *Helper) Warnf(format string, args ...any)  { h.logger.Log(LevelWarn, fmt.Sprintf(format, args...)) }
func (h *Helper) Errorf(format string, args ...any) { h.logger.Log(LevelError, fmt.Sprintf(format, args...)) }
