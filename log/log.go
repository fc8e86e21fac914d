// Package log provides logging utilities for the gotimers package.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"
)

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByType(func(d time.Duration) slog.Value {
		return slog.StringValue(d.String())
	}),
)

// NewConsoleLogger creates a logger that writes colorized, single-line
// records to out. It is the handler used by [Default] until overridden
// with [SetDefault].
func NewConsoleLogger(out io.Writer, lvl slog.Level) *slog.Logger {
	if out == nil {
		out = os.Stderr
	}
	return slog.New(newHandler(
		console.NewHandler(out, &console.HandlerOptions{
			AddSource:  true,
			Level:      lvl,
			TimeFormat: time.RFC3339Nano,
		}),
	))
}

// NewDevLogger creates a developer logger with verbose, structured output.
func NewDevLogger(out io.Writer, lvl slog.Level) *slog.Logger {
	if out == nil {
		out = os.Stdout
	}
	return slog.New(newHandler(
		devslog.NewHandler(out, &devslog.Options{
			HandlerOptions: &slog.HandlerOptions{
				AddSource: true,
				Level:     lvl,
			},
			SortKeys:   true,
			TimeFormat: time.RFC3339Nano,
		}),
	))
}

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop is a logger that discards all records.
var Noop = slog.New(noopHandler{})

var defLog atomic.Pointer[slog.Logger]

func init() {
	defLog.Store(NewConsoleLogger(os.Stderr, slog.LevelInfo))
}

// Default returns the package default logger.
func Default() *slog.Logger { return defLog.Load() }

// SetDefault replaces the package default logger.
// Passing nil resets the default to [Noop].
func SetDefault(l *slog.Logger) {
	if l == nil {
		l = Noop
	}
	defLog.Store(l)
}
