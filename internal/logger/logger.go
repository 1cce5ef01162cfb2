// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the POS
// client.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// It also satisfies resty's Logger interface so transport warnings land in the
// same stream as application logs.
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// New constructs a *Logger writing JSON to w. Every entry carries a "role"
// field, a timestamp and a "func" caller field holding the fully-qualified
// function name. Entries below level are dropped.
func New(role string, w io.Writer, level string) *Logger {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).
		Level(ParseLevel(level)).
		With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewClientLogger constructs the logger of the interactive client. The
// terminal is owned by the UI, so output goes to the file at path (created
// and appended to). An empty path selects a "logs" file next to the
// executable. If the file cannot be opened the logger falls back to stderr.
func NewClientLogger(role, level, path string) *Logger {
	if path == "" {
		execPath, _ := os.Executable()
		path = filepath.Join(filepath.Dir(execPath), "logs")
	}

	var out io.Writer = os.Stderr
	logFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err == nil {
		out = logFile
	}

	return New(role, out, level)
}

// ParseLevel converts a level name to a zerolog.Level.
//
//	"trace" -> TraceLevel
//	"debug" -> DebugLevel
//	"info"  -> InfoLevel (default)
//	"warn"  -> WarnLevel
//	"error" -> ErrorLevel
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithContext attaches l to ctx so that [FromContext] can retrieve it.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext extracts the zerolog.Logger stored in ctx. If none is attached
// zerolog's default context logger is returned, so this never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

// Errorf implements resty.Logger.
func (l *Logger) Errorf(format string, v ...any) {
	l.Error().Str("component", "resty").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Warnf implements resty.Logger.
func (l *Logger) Warnf(format string, v ...any) {
	l.Warn().Str("component", "resty").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Debugf implements resty.Logger.
func (l *Logger) Debugf(format string, v ...any) {
	l.Debug().Str("component", "resty").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
