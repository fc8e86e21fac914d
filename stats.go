package gotimers

import "time"

// StatsReport is a point-in-time snapshot of manager counters.
type StatsReport struct {
	Time time.Time `json:"time"`
	// State is the worker state at the time of the report.
	State WorkerState `json:"state"`
	// Pending is the number of timers waiting in the heap.
	Pending int `json:"pending"`
	// Scheduled is the total number of timers accepted by Schedule.
	Scheduled uint64 `json:"scheduled_total"`
	// Executed is the total number of callbacks that ran to completion.
	Executed uint64 `json:"executed_total"`
	// Discarded is the total number of pending timers dropped at Close.
	Discarded uint64 `json:"discarded_total"`
}

// Stats returns a snapshot of the manager counters.
func (m *Manager) Stats() StatsReport {
	return StatsReport{
		Time:      time.Now(),
		State:     m.State(),
		Pending:   m.Len(),
		Scheduled: m.scheduled.Load(),
		Executed:  m.executed.Load(),
		Discarded: m.discarded.Load(),
	}
}
