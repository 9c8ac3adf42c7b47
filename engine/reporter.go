// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"log/slog"
)

// Level is the severity of a reported message.
type Level int

// Levels, lowest first.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns a lowercase label of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// slogLevel maps l onto log/slog.
func (l Level) slogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Reporter receives human-readable diagnostics from the engine.
type Reporter interface {
	Report(level Level, message string)
}

// SlogReporter forwards reports to a *slog.Logger.
type SlogReporter struct {
	logger *slog.Logger
}

// NewSlogReporter returns a Reporter writing to logger (slog.Default() when nil).
func NewSlogReporter(logger *slog.Logger) *SlogReporter {
	if logger == nil {
		logger = slog.Default()
	}

	return &SlogReporter{logger: logger.With(slog.String("component", "engine"))}
}

// Report implements Reporter.
func (r *SlogReporter) Report(level Level, message string) {
	r.logger.Log(context.Background(), level.slogLevel(), message)
}

// NopReporter discards every report.
type NopReporter struct{}

// Report implements Reporter.
func (NopReporter) Report(Level, string) {}
