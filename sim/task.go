// Defines the Task struct that models a single schedulable unit in the simulation.
// Tracks arrival, service progress, optional deadlines, and lifecycle timestamps.

package sim

import (
	"fmt"
)

// TaskState represents the lifecycle state of a task within one run.
type TaskState string

const (
	StatePending   TaskState = "pending" // not yet arrived
	StateReady     TaskState = "ready"
	StateRunning   TaskState = "running"
	StateCompleted TaskState = "completed"
	StateMissed    TaskState = "missed"
)

// Task models a task's lifecycle in a single scheduling run.
// Deadline fields are optional; a task carrying neither deadline is a plain
// general-purpose task and can never be missed.
type Task struct {
	Name      string // Unique within a batch
	Arrival   int64  // Tick at which the task becomes ready
	Estimated int64  // Total service required (> 0)
	Remaining int64  // Service still owed; monotonically non-increasing
	Priority  int    // Policy-assigned; FP uses template input index (lower = more urgent)
	Waited    int64  // Ticks spent ready but not running (HRRN)

	Started   *int64 // First dispatch tick
	Stopped   *int64 // Most recent preemption tick
	Completed *int64 // Tick at which Remaining reached zero

	StartDeadline *int64 // Latest tick at which execution may begin
	EndDeadline   *int64 // Tick by which execution must finish
	Missed        bool

	State TaskState

	seq          int64 // admission sequence, breaks ties in favour of the first admitted
	segmentStart int64 // dispatch tick of the current execution segment
}

// NewTask creates a general-purpose task with Remaining set to Estimated.
func NewTask(name string, arrival, estimated int64) *Task {
	return &Task{
		Name:      name,
		Arrival:   arrival,
		Estimated: estimated,
		Remaining: estimated,
		State:     StatePending,
	}
}

// NewRealtimeTask creates a task carrying optional start and end deadlines.
// Pass nil for a deadline that does not apply.
func NewRealtimeTask(name string, arrival, estimated int64, startDln, endDln *int64) *Task {
	t := NewTask(name, arrival, estimated)
	t.StartDeadline = copyTick(startDln)
	t.EndDeadline = copyTick(endDln)
	return t
}

// Tick returns a pointer to v, for populating optional tick fields.
func Tick(v int64) *int64 { return &v }

func copyTick(p *int64) *int64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Realtime reports whether the task carries any deadline.
func (t *Task) Realtime() bool {
	return t.StartDeadline != nil || t.EndDeadline != nil
}

// Service advances the task by the given number of ticks.
func (t *Task) Service(ticks int64) {
	t.Remaining -= ticks
}

// Wait accounts ticks spent in the ready set.
func (t *Task) Wait(ticks int64) {
	t.Waited += ticks
}

// Finished reports whether all required service has been delivered.
func (t *Task) Finished() bool {
	return t.Remaining <= 0
}

// Done reports whether the task is out of scheduling consideration:
// either finished, or missed (real-time tasks only).
func (t *Task) Done() bool {
	return t.Missed || t.Finished()
}

// CheckMiss evaluates the task's deadlines at the given tick and latches Missed.
// Returns the (possibly unchanged) missed flag.
func (t *Task) CheckMiss(clock int64) bool {
	if !t.Missed && deadlineMissed(t.StartDeadline, t.EndDeadline, t.Started != nil, t.Remaining, clock) {
		t.Missed = true
		t.State = StateMissed
	}
	return t.Missed
}

// deadlineMissed is the miss rule shared by all real-time policies.
// A start deadline is missed once the clock passes it with the task unstarted;
// an end deadline is missed once the clock reaches it with service still owed.
func deadlineMissed(startDln, endDln *int64, started bool, remaining, clock int64) bool {
	if startDln != nil && clock > *startDln && !started {
		return true
	}
	if endDln != nil && clock >= *endDln && remaining > 0 {
		return true
	}
	return false
}

// Clone returns a deep copy of the task. The copy shares no pointers with t.
func (t *Task) Clone() *Task {
	c := *t
	c.Started = copyTick(t.Started)
	c.Stopped = copyTick(t.Stopped)
	c.Completed = copyTick(t.Completed)
	c.StartDeadline = copyTick(t.StartDeadline)
	c.EndDeadline = copyTick(t.EndDeadline)
	return &c
}

// CloneTasks deep-copies a task list. Every simulation run must start from
// its own copy: policies mutate Remaining, Started, Waited and friends.
func CloneTasks(tasks []*Task) []*Task {
	out := make([]*Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}

// This method returns a human-readable string representation of a Task.
func (t Task) String() string {
	return fmt.Sprintf("Task: (Name: %s, State: %s, Arrival: %d, Remaining: %d/%d)",
		t.Name, t.State, t.Arrival, t.Remaining, t.Estimated)
}
