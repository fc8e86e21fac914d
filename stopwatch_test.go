package gotimers_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/ghettovoice/gotimers"
	"github.com/ghettovoice/gotimers/log"
)

func TestStopwatch_Elapsed(t *testing.T) {
	t.Parallel()

	sw := gotimers.NewStopwatch("test", log.Noop)

	time.Sleep(30 * time.Millisecond)
	if got := sw.Elapsed(); got < 30*time.Millisecond {
		t.Errorf("sw.Elapsed() = %s, want >= 30ms", got)
	}
}

func TestStopwatch_TickResetsMeasurement(t *testing.T) {
	t.Parallel()

	sw := gotimers.NewStopwatch("test", log.Noop)

	time.Sleep(30 * time.Millisecond)
	sw.Tick()

	if got := sw.Elapsed(); got >= 30*time.Millisecond {
		t.Errorf("sw.Elapsed() after Tick() = %s, want < 30ms", got)
	}
}

func TestStopwatch_TickLogs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	sw := gotimers.NewStopwatch("probe", logger)
	sw.Tick()

	out := buf.String()
	if !strings.Contains(out, "stopwatch tick") {
		t.Errorf("log output %q does not contain %q", out, "stopwatch tick")
	}
	if !strings.Contains(out, "name=probe") {
		t.Errorf("log output %q does not contain %q", out, "name=probe")
	}
}
