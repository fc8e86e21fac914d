package gotimers

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ghettovoice/gotimers/log"
)

// Stopwatch measures the time elapsed between its creation and each tick.
// It is a diagnostic probe for observing scheduling accuracy: pass
// [Stopwatch.Tick] as a timer callback, optionally wrapped with [Repeat]
// to measure the interval between consecutive firings.
type Stopwatch struct {
	name string
	log  *slog.Logger

	mu   sync.Mutex
	last time.Time
}

// NewStopwatch creates a stopwatch with the measurement started.
// If logger is nil, the [log.Default] will be used.
func NewStopwatch(name string, logger *slog.Logger) *Stopwatch {
	if logger == nil {
		logger = log.Default()
	}
	return &Stopwatch{
		name: name,
		log:  logger,
		last: time.Now(),
	}
}

// Elapsed returns the time since creation or the previous tick without
// resetting the measurement.
func (s *Stopwatch) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return time.Since(s.last)
}

// Tick logs the elapsed time since creation or the previous tick and
// restarts the measurement.
func (s *Stopwatch) Tick() {
	now := time.Now()

	s.mu.Lock()
	elapsed := now.Sub(s.last)
	s.last = now
	s.mu.Unlock()

	s.log.LogAttrs(context.Background(), slog.LevelInfo, "stopwatch tick",
		slog.String("name", s.name),
		slog.Duration("elapsed", elapsed),
	)
}
