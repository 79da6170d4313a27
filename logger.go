package cubemap

import (
	"context"
	"log/slog"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// Logger returns the logger the executor reports to. It is never nil.
//
// Log levels used by cubemap:
//   - [slog.LevelDebug]: per-face timing and chunk counts
//   - [slog.LevelInfo]: per-size and per-batch timing
//   - [slog.LevelWarn]: faces that failed during a batch
func (e *Executor) Logger() *slog.Logger {
	return e.logger
}
