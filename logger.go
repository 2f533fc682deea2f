package textcache

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Reporting Enabled false lets slog skip
// argument formatting for disabled messages on the shaping path.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func discardLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr holds the active logger; swapped atomically so SetLogger may
// race with a rendering goroutine that is mid-log.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(discardLogger())
}

// SetLogger configures the logger for textcache. By default the package
// produces no log output. Pass nil to restore the silent default.
//
// Log levels used:
//   - [slog.LevelWarn]: recoverable degradations (emoji fallback family
//     failed to load, shaping continues without emoji support)
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = discardLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by textcache.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
