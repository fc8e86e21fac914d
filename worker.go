package gotimers

import (
	"log/slog"
	"math"
	"time"
)

const sleepForever = time.Duration(math.MaxInt64)

// workerLoop is the single background goroutine that sleeps until the
// nearest deadline or a wake signal and executes due callbacks.
//
// The loop alternates between two phases. Draining: under the lock, pop
// the heap top while it is due and run each callback with the lock
// released. Sleeping: block until the top deadline, a wake token or a stop
// request. The wake token is consumed at the start of every check, so a
// signal that arrives between the check and the sleep is never lost.
func (m *Manager) workerLoop() {
	defer close(m.done)

	m.log.LogAttrs(m.ctx, slog.LevelDebug, "worker started", slog.Any("manager", m))

	tmr := time.NewTimer(sleepForever)
	defer tmr.Stop()

	for {
		// Clear the wake flag before re-evaluating: the heap top is
		// re-checked below anyway.
		select {
		case <-m.wake:
		default:
		}

		if m.drainDue() {
			return
		}

		m.mu.Lock()
		var timeout <-chan time.Time
		if top := m.heap.top(); top != nil {
			d := time.Until(top.deadline)
			m.mu.Unlock()
			if d <= 0 {
				// The deadline elapsed between checks, reprocess
				// immediately.
				continue
			}
			tmr.Reset(d)
			timeout = tmr.C
		} else {
			m.mu.Unlock()
		}

		m.fire(wkrEvtSleep)

		select {
		case <-m.wake:
		case <-timeout:
		case <-m.ctx.Done():
		}
		if timeout != nil {
			tmr.Stop()
		}

		m.fire(wkrEvtWake)
	}
}

// drainDue pops and executes every timer that is already due.
// It reports whether a stop was requested.
func (m *Manager) drainDue() bool {
	for {
		if m.ctx.Err() != nil {
			// Remaining pending timers are not drained on shutdown.
			m.fire(wkrEvtStop)
			return true
		}

		m.mu.Lock()
		top := m.heap.top()
		if top == nil || top.deadline.After(time.Now()) {
			m.mu.Unlock()
			return false
		}
		t := m.heap.pop()
		m.mu.Unlock()

		m.fire(wkrEvtExec)
		m.run(t)
		m.fire(wkrEvtDrain)
	}
}

// run executes a popped timer's callback on the worker goroutine with no
// lock held. The callback reference moved out of the heap entry and is
// invoked exactly once.
func (m *Manager) run(t *timer) {
	if h := m.panicHandler; h != nil {
		defer func() {
			if r := recover(); r != nil {
				m.log.LogAttrs(m.ctx, slog.LevelError, "callback panicked",
					slog.Any("timer", t),
					slog.Any("recovered", r),
				)
				h(r)
			}
		}()
	}

	m.log.LogAttrs(m.ctx, slog.LevelDebug, "timer fired",
		slog.Any("timer", t),
		slog.Duration("late", time.Since(t.deadline)),
	)

	t.fn()
	m.executed.Add(1)
}
