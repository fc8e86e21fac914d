package gotimers

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"braces.dev/errtrace"
	"github.com/qmuntal/stateless"

	"github.com/ghettovoice/gotimers/internal/types"
)

// Manager is a single-process, in-memory timer scheduler.
//
// A manager owns a min-heap of pending timers and exactly one background
// worker goroutine that sleeps until the nearest deadline and executes due
// callbacks one at a time. Any number of goroutines may call
// [Manager.Schedule] concurrently.
//
// A manager must be created with [NewManager] and released with
// [Manager.Close].
type Manager struct {
	mu     sync.Mutex
	heap   timerHeap
	seq    uint64
	closed bool

	// wake carries at most one pending token. A token means the worker's
	// sleep assumptions may be stale and it must re-check the heap top
	// before its current timeout elapses.
	wake chan struct{}

	ctx       context.Context
	cancel    context.CancelFunc
	done      chan struct{}
	closeOnce sync.Once

	fsm            *stateless.StateMachine
	onStateChanged types.CallbackManager[StateChangeHandler]

	log          *slog.Logger
	resolution   time.Duration
	panicHandler func(recovered any)

	scheduled atomic.Uint64
	executed  atomic.Uint64
	discarded atomic.Uint64
}

// NewManager creates a new timers manager and starts its worker goroutine.
func NewManager(opts *ManagerOptions) *Manager {
	m := &Manager{
		wake:         make(chan struct{}, 1),
		done:         make(chan struct{}),
		log:          opts.log(),
		resolution:   opts.resolution(),
		panicHandler: opts.panicHandler(),
	}
	m.ctx, m.cancel = context.WithCancel(context.Background())
	m.initFSM()

	go m.workerLoop()

	return m
}

// LogValue implements [slog.LogValuer].
func (m *Manager) LogValue() slog.Value {
	if m == nil {
		return slog.Value{}
	}
	return slog.GroupValue(
		slog.Any("state", m.State()),
		slog.Int("pending", m.Len()),
	)
}

// Schedule registers fn to run no earlier than now plus delay.
//
// It never blocks the caller beyond a short internal critical section and
// never waits for the timer to fire. A zero delay is legal and means "run
// as soon as the worker can process it"; a negative delay is clamped to
// zero. If the manager was configured with a non-zero resolution, the delay
// is truncated to it.
//
// Schedule returns [ErrManagerClosed] after [Manager.Close] and
// [ErrInvalidArgument] for a nil fn.
func (m *Manager) Schedule(fn func(), delay time.Duration) error {
	if fn == nil {
		return errtrace.Wrap(NewInvalidArgumentError("nil callback"))
	}
	if delay < 0 {
		delay = 0
	}
	if m.resolution > 0 {
		delay = delay.Truncate(m.resolution)
	}

	// time.Now carries a monotonic clock reading, so the deadline is
	// immune to wall-clock adjustments.
	deadline := time.Now().Add(delay)

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return errtrace.Wrap(ErrManagerClosed)
	}
	m.seq++
	t := &timer{seq: m.seq, deadline: deadline, fn: fn}

	var prevEarliest time.Time
	hadPending := false
	if top := m.heap.top(); top != nil {
		prevEarliest = top.deadline
		hadPending = true
	}
	m.heap.push(t)
	becameEarliest := !hadPending || deadline.Before(prevEarliest)
	m.mu.Unlock()

	m.scheduled.Add(1)

	m.log.LogAttrs(m.ctx, slog.LevelDebug, "timer scheduled",
		slog.Any("timer", t),
		slog.Duration("delay", delay),
		slog.Bool("earliest", becameEarliest),
	)

	if becameEarliest {
		m.signal()
	}
	return nil
}

// signal marks the wake flag. The send never blocks: a token already in
// the channel means the worker is going to re-check anyway.
func (m *Manager) signal() {
	select {
	case m.wake <- struct{}{}:
	default:
	}
}

// Len returns the number of pending timers.
func (m *Manager) Len() int {
	if m == nil {
		return 0
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.heap)
}

// Done returns a channel that is closed when the worker goroutine has
// terminated.
func (m *Manager) Done() <-chan struct{} { return m.done }

// Close stops the manager: it signals the worker to stop, wakes it even
// from an unbounded sleep and blocks until the worker goroutine has
// terminated. Timers still pending at that point are discarded without
// executing. Close is idempotent and safe for concurrent use; every call
// blocks until the worker is done.
//
// Close must not be called from a timer callback: the callback runs on
// the worker goroutine Close waits for.
func (m *Manager) Close() {
	m.closeOnce.Do(func() {
		m.mu.Lock()
		m.closed = true
		discarded := len(m.heap)
		m.heap = nil
		m.mu.Unlock()

		if discarded > 0 {
			m.discarded.Add(uint64(discarded))
		}

		m.cancel()
		<-m.done

		if discarded > 0 {
			m.log.LogAttrs(m.ctx, slog.LevelDebug, "pending timers discarded",
				slog.Int("count", discarded),
			)
		}
	})
	<-m.done
}
