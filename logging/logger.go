// Package logging provides the *slog.Logger shared by the svgpathgen packages.
package logging

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discardHandler silently drops every record. Enabled returns false
// so callers skip building the record.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(discardHandler{}))
}

// SetLogger configures the logger used by all packages.
// By default nothing is logged; pass nil to restore this behavior.
//
// Levels used:
//   - [slog.LevelDebug]: per path and per document progress
//   - [slog.LevelWarn]: rejected path data and documents
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(discardHandler{})
	}
	logger.Store(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return logger.Load()
}
