package gotimers

import (
	"container/heap"
	"log/slog"
	"time"
)

// timer is a single pending entry in the manager's heap.
// The callback moves out of the entry exactly once, when the worker pops it.
type timer struct {
	seq      uint64
	deadline time.Time
	fn       func()
}

// LogValue implements [slog.LogValuer].
func (t *timer) LogValue() slog.Value {
	if t == nil {
		return slog.Value{}
	}
	return slog.GroupValue(
		slog.Uint64("seq", t.seq),
		slog.Time("deadline", t.deadline),
	)
}

// timerHeap is a binary min-heap of pending timers ordered by deadline.
// Timers with equal deadlines fire in insertion order.
type timerHeap []*timer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].deadline.Equal(h[j].deadline) {
		return h[i].seq < h[j].seq
	}
	return h[i].deadline.Before(h[j].deadline)
}

func (h timerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *timerHeap) Push(x any) {
	*h = append(*h, x.(*timer)) //nolint:forcetypeassert
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil // release the callback reference
	*h = old[:n-1]
	return x
}

// push adds t to the heap restoring the heap property.
func (h *timerHeap) push(t *timer) { heap.Push(h, t) }

// pop removes and returns the timer with the earliest deadline.
func (h *timerHeap) pop() *timer {
	return heap.Pop(h).(*timer) //nolint:forcetypeassert
}

// top returns the timer with the earliest deadline without removing it.
func (h timerHeap) top() *timer {
	if len(h) == 0 {
		return nil
	}
	return h[0]
}
