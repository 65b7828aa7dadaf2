// Package diag provides the stable, line-oriented diagnostics logger shared
// by the pattern-collection generators (hillclimbing, systematic).
//
// The generators never write to stdout directly. Instead they log through a
// *Logger, which defaults to a no-op sink so that importing this module
// never produces unwanted output; callers opt in with New or NewDevelopment.
package diag

import (
	"go.uber.org/zap"
)

// Logger wraps a *zap.SugaredLogger with a nil-safe default so generator
// code can log unconditionally without checking for a nil dependency.
type Logger struct {
	z *zap.SugaredLogger
}

// Noop returns a Logger that discards every line. This is the default used
// by hillclimbing.Config and systematic.Config when no logger option is set.
func Noop() *Logger {
	return &Logger{z: zap.NewNop().Sugar()}
}

// New wraps an existing zap logger. Passing nil is equivalent to Noop.
func New(z *zap.Logger) *Logger {
	if z == nil {
		return Noop()
	}
	return &Logger{z: z.Sugar()}
}

// NewDevelopment builds a human-readable console logger, convenient for
// ad-hoc debugging.
func NewDevelopment() *Logger {
	z, err := zap.NewDevelopment()
	if err != nil {
		return Noop()
	}
	return &Logger{z: z.Sugar()}
}

// Infof logs a formatted line at info level. Safe to call on a nil *Logger.
func (l *Logger) Infof(format string, args ...interface{}) {
	if l == nil || l.z == nil {
		return
	}
	l.z.Infof(format, args...)
}

// Sync flushes any buffered log entries. Safe to call on a nil *Logger.
func (l *Logger) Sync() {
	if l == nil || l.z == nil {
		return
	}
	_ = l.z.Sync()
}
