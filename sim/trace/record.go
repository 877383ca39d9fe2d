// Package trace provides the timeline records emitted by a scheduling run.
// This package has no dependencies on sim/; it stores pure data types.
package trace

import "fmt"

// Kind identifies what a timeline record reports.
type Kind int

const (
	// KindComplete closes the final execution segment of a task.
	KindComplete Kind = iota
	// KindStop closes an execution segment interrupted by preemption.
	KindStop
	// KindMiss reports a deadline miss.
	KindMiss
)

func (k Kind) String() string {
	switch k {
	case KindComplete:
		return "complete"
	case KindStop:
		return "stop"
	case KindMiss:
		return "miss"
	default:
		return "unknown"
	}
}

// Record is one entry of a run's timeline.
// Start and End are meaningful for KindComplete and KindStop only.
type Record struct {
	Kind  Kind
	Task  string
	Start int64
	End   int64
	Clock int64 // tick at which the record was emitted
}

// Duration returns the number of service ticks covered by an interval record.
func (r Record) Duration() int64 {
	if r.Kind == KindMiss {
		return 0
	}
	return r.End - r.Start
}

// String renders the record the way schedule transcripts print it.
func (r Record) String() string {
	if r.Kind == KindMiss {
		return fmt.Sprintf("%s:Missed", r.Task)
	}
	return fmt.Sprintf("%s:%d->%d", r.Task, r.Start, r.End)
}
