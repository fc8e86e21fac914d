package gotimers_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/ghettovoice/gotimers"
)

func TestRepeat_FiresPeriodically(t *testing.T) {
	t.Parallel()

	mgr := gotimers.NewManager(nil)
	defer mgr.Close()

	const period = 50 * time.Millisecond

	var ticks atomic.Int32
	fired := make(chan int32, 16)
	tick := gotimers.Repeat(mgr, func() { fired <- ticks.Add(1) }, period)

	if err := mgr.Schedule(tick, period); err != nil {
		t.Fatalf("mgr.Schedule() error = %v, want nil", err)
	}

	deadline := time.After(3 * time.Second)
	for {
		select {
		case n := <-fired:
			if n >= 4 {
				return
			}
		case <-deadline:
			t.Fatalf("observed %d ticks, want >= 4 within 3s", ticks.Load())
		}
	}
}

func TestRepeat_StopsAfterClose(t *testing.T) {
	t.Parallel()

	mgr := gotimers.NewManager(nil)

	var ticks atomic.Int32
	tick := gotimers.Repeat(mgr, func() { ticks.Add(1) }, 10*time.Millisecond)
	if err := mgr.Schedule(tick, 10*time.Millisecond); err != nil {
		t.Fatalf("mgr.Schedule() error = %v, want nil", err)
	}

	// Let it cycle a few times, then close mid-flight. The reschedule
	// after Close must be a silent no-op.
	time.Sleep(50 * time.Millisecond)
	mgr.Close()

	n := ticks.Load()
	time.Sleep(50 * time.Millisecond)
	if got := ticks.Load(); got != n {
		t.Errorf("ticks after Close() = %d, want %d", got, n)
	}
}

func TestRepeat_DriftIsRelativeToPreviousFiring(t *testing.T) {
	t.Parallel()

	mgr := gotimers.NewManager(nil)
	defer mgr.Close()

	const (
		period   = 40 * time.Millisecond
		workTime = 30 * time.Millisecond
	)

	// Each reinsertion is relative to "now", so a slow callback pushes
	// every subsequent firing back by its own run time.
	intervals := make(chan time.Duration, 4)
	last := time.Now()
	tick := gotimers.Repeat(mgr, func() {
		now := time.Now()
		intervals <- now.Sub(last)
		last = now
		time.Sleep(workTime)
	}, period)

	if err := mgr.Schedule(tick, period); err != nil {
		t.Fatalf("mgr.Schedule() error = %v, want nil", err)
	}

	var got []time.Duration
	tmr := time.NewTimer(3 * time.Second)
	defer tmr.Stop()
	for len(got) < 3 {
		select {
		case d := <-intervals:
			got = append(got, d)
		case <-tmr.C:
			t.Fatalf("observed %d intervals, want 3 within 3s", len(got))
		}
	}

	// Skip the first interval: it has no preceding work time.
	for _, d := range got[1:] {
		if d < period+workTime {
			t.Errorf("interval = %s, want >= %s (period plus callback run time)", d, period+workTime)
		}
	}
}
