package gotimers

import (
	"log/slog"
	"time"
)

// Repeat wraps fn into a callback that runs fn and then reschedules itself
// on m with the same period, emulating a periodic timer purely by
// composition: the manager itself knows nothing about periodicity.
//
// Each reinsertion is relative to the moment the previous firing finished,
// so the period does not account for the callback's own run time and drift
// accumulates over many firings.
//
// Rescheduling stops silently once the manager is closed. The returned
// callback must still be scheduled once to start the cycle:
//
//	mgr.Schedule(gotimers.Repeat(mgr, fn, time.Second), time.Second)
func Repeat(m *Manager, fn func(), period time.Duration) func() {
	var tick func()
	tick = func() {
		fn()

		if err := m.Schedule(tick, period); err != nil {
			m.log.LogAttrs(m.ctx, slog.LevelDebug, "repeat reschedule skipped",
				slog.Any("error", err),
				slog.Duration("period", period),
			)
		}
	}
	return tick
}
