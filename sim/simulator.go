// sim/simulator.go
package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/schedsim/schedsim/sim/trace"
)

// engine is the per-run state every policy's tick loop operates on: the clock,
// the task list the run owns, the running slot, the pending-miss stack and the
// timeline being recorded. One engine serves exactly one run.
type engine struct {
	Clock    int64
	Tasks    []*Task
	Running  *Task
	Timeline *trace.Timeline

	policy  string
	missed  []*Task // pending miss notifications, flushed LIFO
	nextSeq int64
}

func newEngine(policy string, tasks []*Task) *engine {
	for _, t := range tasks {
		t.State = StatePending
	}
	return &engine{
		Tasks:    tasks,
		Timeline: trace.NewTimeline(),
		policy:   policy,
	}
}

// admit stamps a task with its admission sequence number.
func (e *engine) admit(t *Task) {
	t.seq = e.nextSeq
	e.nextSeq++
	t.State = StateReady
	logrus.Debugf("[tick %07d] %s: admit %s", e.Clock, e.policy, t.Name)
}

// arrivals admits and returns the pending tasks due at or before the current tick,
// in list order. Tasks with a negative arrival are admitted at tick 0.
func (e *engine) arrivals() []*Task {
	var out []*Task
	for _, t := range e.Tasks {
		if t.Arrival <= e.Clock && t.State == StatePending {
			e.admit(t)
			out = append(out, t)
		}
	}
	return out
}

// dispatch makes t the running task and opens a new execution segment.
// Started is recorded on the first dispatch only.
func (e *engine) dispatch(t *Task) {
	if e.Running != nil {
		panic("dispatch: processor is busy with " + e.Running.Name)
	}
	if t.Started == nil {
		t.Started = Tick(e.Clock)
	}
	t.segmentStart = e.Clock
	t.State = StateRunning
	e.Running = t
	logrus.Debugf("[tick %07d] %s: dispatch %s (remaining %d)", e.Clock, e.policy, t.Name, t.Remaining)
}

// serviceRunning gives the running task one tick of service and reports whether it finished.
func (e *engine) serviceRunning() bool {
	e.Running.Service(1)
	return e.Running.Finished()
}

// complete retires the running task, records its final segment and flushes pending misses.
func (e *engine) complete() {
	t := e.Running
	t.Completed = Tick(e.Clock)
	t.State = StateCompleted
	e.Timeline.Interval(trace.KindComplete, t.Name, t.segmentStart, e.Clock)
	e.Running = nil
	logrus.Debugf("[tick %07d] %s: complete %s", e.Clock, e.policy, t.Name)
	e.flushMissed()
}

// preempt takes the running task off the processor and records the interrupted segment.
// The caller decides where the task goes next.
func (e *engine) preempt() *Task {
	t := e.Running
	t.Stopped = Tick(e.Clock)
	e.Timeline.Interval(trace.KindStop, t.Name, t.segmentStart, e.Clock)
	e.Running = nil
	logrus.Debugf("[tick %07d] %s: preempt %s (remaining %d)", e.Clock, e.policy, t.Name, t.Remaining)
	return t
}

// miss parks a missed task until the next flush point.
func (e *engine) miss(t *Task) {
	e.missed = append(e.missed, t)
	logrus.Debugf("[tick %07d] %s: %s missed its deadline", e.Clock, e.policy, t.Name)
}

// checkMisses evaluates every task returned by remove against the clock and parks the missed ones.
func (e *engine) checkMisses(remove func(func(*Task) bool) []*Task) {
	for _, t := range remove(func(t *Task) bool { return t.CheckMiss(e.Clock) }) {
		e.miss(t)
	}
}

// flushMissed emits pending miss notifications, most recent first.
func (e *engine) flushMissed() {
	for len(e.missed) > 0 {
		t := e.missed[len(e.missed)-1]
		e.missed = e.missed[:len(e.missed)-1]
		e.Timeline.Miss(t.Name, e.Clock)
	}
}

// allDone reports whether every task of the run is finished or missed.
func (e *engine) allDone() bool {
	for _, t := range e.Tasks {
		if !t.Done() {
			return false
		}
	}
	return true
}

// result closes the run. Misses detected after the last flush point are emitted here.
func (e *engine) result() *Result {
	e.flushMissed()
	logrus.Debugf("[tick %07d] %s: run ended", e.Clock, e.policy)
	return &Result{
		Policy:   e.policy,
		Timeline: e.Timeline,
		Tasks:    e.Tasks,
		EndClock: e.Clock,
	}
}
