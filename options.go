package gotimers

import (
	"log/slog"
	"time"

	"github.com/ghettovoice/gotimers/log"
)

// ManagerOptions contains options for a timers manager.
// The zero value is fully usable.
type ManagerOptions struct {
	// Logger is the logger that will be used with the manager.
	// If nil, the [log.Default] will be used.
	Logger *slog.Logger
	// Resolution is the internal tick delays are truncated to.
	// If zero, delays keep full [time.Duration] precision.
	Resolution time.Duration
	// PanicHandler, if set, receives values recovered from panicking
	// callbacks and the worker stays alive. If nil, a callback panic
	// propagates and terminates the worker goroutine.
	PanicHandler func(recovered any)
}

func (o *ManagerOptions) log() *slog.Logger {
	if o == nil || o.Logger == nil {
		return log.Default()
	}
	return o.Logger
}

func (o *ManagerOptions) resolution() time.Duration {
	if o == nil || o.Resolution < 0 {
		return 0
	}
	return o.Resolution
}

func (o *ManagerOptions) panicHandler() func(any) {
	if o == nil {
		return nil
	}
	return o.PanicHandler
}
