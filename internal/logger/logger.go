// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger with the constructors and
// context helpers used across go-env-keeper.
//
// Logger embeds zerolog.Logger, so the full zerolog API (Debug, Info,
// Warn, Error, Fatal, ...) is available on *Logger directly. Request
// handlers obtain a request-scoped logger through FromRequest; everything
// else passes *Logger explicitly.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a JSON logger writing to stdout for the given role
// label (e.g. "envproxyd", "envkeeper"). Every entry carries the role, a
// timestamp, and the fully-qualified caller function name under "func".
// The global level is Debug.
func NewLogger(role string) *Logger {
	return newLogger(role, os.Stdout)
}

// NewFileLogger constructs the same logger writing to the file at path,
// appending and creating it as needed. The interactive client uses this:
// stdout belongs to the terminal UI, so logs must go elsewhere. Falls
// back to stdout if the file cannot be opened.
func NewFileLogger(role, path string) *Logger {
	out, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return newLogger(role, os.Stdout)
	}
	return newLogger(role, out)
}

func newLogger(role string, out io.Writer) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}

	l := zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{l}
}

// Nop returns a *Logger that discards everything. For tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger inheriting all fields of the
// receiver; the child can be enriched without touching the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest extracts the request-scoped logger attached to r's context
// by the trace-ID middleware. Never returns nil: without an attached
// logger zerolog hands back its global one.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext extracts the logger stored in ctx via zerolog's WithContext.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
