package gotimers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/qmuntal/stateless"
)

// WorkerState represents the current state of the manager's worker goroutine.
type WorkerState string

const (
	// WorkerStateSleeping indicates the worker is blocked waiting for the
	// nearest deadline, a wake signal or a stop request. The sleep is
	// unbounded while the heap is empty.
	WorkerStateSleeping WorkerState = "sleeping"
	// WorkerStateDraining indicates the worker is re-checking the heap top
	// and popping due timers.
	WorkerStateDraining WorkerState = "draining"
	// WorkerStateExecuting indicates a callback is running on the worker
	// goroutine with the lock released.
	WorkerStateExecuting WorkerState = "executing"
	// WorkerStateStopped is the terminal state after [Manager.Close].
	WorkerStateStopped WorkerState = "stopped"
)

func (s WorkerState) String() string { return string(s) }

// StateChangeHandler is called on each worker state transition.
type StateChangeHandler = func(ctx context.Context, from, to WorkerState)

const (
	wkrEvtWake  = "wake"
	wkrEvtSleep = "sleep"
	wkrEvtExec  = "exec"
	wkrEvtDrain = "drain"
	wkrEvtStop  = "stop"
)

func (m *Manager) initFSM() {
	m.fsm = stateless.NewStateMachine(WorkerStateDraining)

	m.fsm.Configure(WorkerStateDraining).
		Permit(wkrEvtSleep, WorkerStateSleeping).
		Permit(wkrEvtExec, WorkerStateExecuting).
		Permit(wkrEvtStop, WorkerStateStopped)

	m.fsm.Configure(WorkerStateSleeping).
		Permit(wkrEvtWake, WorkerStateDraining)

	m.fsm.Configure(WorkerStateExecuting).
		Permit(wkrEvtDrain, WorkerStateDraining)

	m.fsm.Configure(WorkerStateStopped).
		OnEntry(m.actStopped)

	m.fsm.OnTransitioned(func(ctx context.Context, tr stateless.Transition) {
		if m.onStateChanged.Len() == 0 {
			return
		}
		from := tr.Source.(WorkerState)    //nolint:forcetypeassert
		to := tr.Destination.(WorkerState) //nolint:forcetypeassert
		for fn := range m.onStateChanged.All() {
			fn(ctx, from, to)
		}
	})
}

func (m *Manager) actStopped(ctx context.Context, _ ...any) error {
	m.log.LogAttrs(ctx, slog.LevelDebug, "worker stopped", slog.Any("manager", m))
	return nil
}

// fire fires a worker FSM trigger.
// All triggers are fired from the worker goroutine only.
func (m *Manager) fire(evt string) {
	if err := m.fsm.FireCtx(m.ctx, evt); err != nil {
		panic(fmt.Errorf("fire %q in state %q: %w", evt, m.State(), err))
	}
}

// State returns the current worker state.
func (m *Manager) State() WorkerState {
	if m == nil {
		return ""
	}
	return m.fsm.MustState().(WorkerState) //nolint:forcetypeassert
}

// OnStateChanged registers a callback to be called on each worker state
// transition. The callback runs synchronously on the worker goroutine.
//
// The callback can be canceled by calling the returned cancel function.
// Multiple callbacks can be registered.
func (m *Manager) OnStateChanged(fn StateChangeHandler) (cancel func()) {
	return m.onStateChanged.Add(fn)
}
