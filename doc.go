// Package gotimers implements a single-process, in-memory timer scheduler.
//
// # Overview
//
// The central type is [Manager]: callers register a callback to run after a
// delay with [Manager.Schedule], and a single background worker goroutine
// fires callbacks at (approximately) their due time, in due-time order.
// Pending timers live in a binary min-heap ordered by absolute monotonic
// deadline; producers and the worker coordinate through one mutex and a
// wake signal, so an insertion that becomes the new earliest deadline
// reliably preempts a longer sleep.
//
// Callbacks execute strictly one at a time on the worker goroutine, with no
// lock held, in non-decreasing deadline order among callbacks that were
// already due when the worker woke. A timer never fires before its deadline;
// a slow callback delays all subsequent timers.
//
//	mgr := gotimers.NewManager(nil)
//	defer mgr.Close()
//
//	mgr.Schedule(func() { fmt.Println("hello") }, time.Second)
//
// Periodic execution is layered on top of the one-shot primitive with
// [Repeat]; there is no first-class repeating timer. There is no per-timer
// cancellation: only whole-manager shutdown via [Manager.Close], which
// discards pending timers without executing them.
package gotimers
