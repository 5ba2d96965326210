// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqlmd

package graphqlmd

import (
	"io"
	"log/slog"
	"strings"
)

// Logger is the logging capability used by generation components.
// *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// NopLogger returns logger discarding every record.
func NopLogger() Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewTextLogger builds text logger writing records at or above level name.
func NewTextLogger(w io.Writer, level string) Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLogLevel(level)}))
}

// ParseLogLevel maps level name to slog level, defaulting to info.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// loggerOrNop returns logger or discarding fallback for nil.
func loggerOrNop(logger Logger) Logger {
	if logger == nil {
		return NopLogger()
	}

	return logger
}
