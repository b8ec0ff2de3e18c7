// Package logging provides slog helpers shared across the tool.
//
// Loggers are dependency-injected, never global: the base logger is built
// in main, and components that want one take a *slog.Logger and scope it
// with With at construction. Nothing here logs inside line-scan loops;
// lifecycle boundaries (index built, store loaded) are the intended log
// points.
package logging

import (
	"context"
	"log/slog"
)

// discardHandler drops all records.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }

// Discard returns a logger that discards all output.
func Discard() *slog.Logger {
	return slog.New(discardHandler{})
}

// Default returns logger if non-nil, otherwise a discard logger. Standard
// pattern for optional logger parameters.
func Default(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return Discard()
}
