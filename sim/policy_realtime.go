package sim

import (
	"math"
)

// DefaultIdleAllowed is the number of idle ticks EDUI tolerates before it
// dispatches the earliest-deadline task without waiting for its deadline.
const DefaultIdleAllowed = 20

// startDeadlineKey orders tasks by start deadline; tasks without one sort last.
func startDeadlineKey(t *Task) int64 {
	if t.StartDeadline == nil {
		return math.MaxInt64
	}
	return *t.StartDeadline
}

// ED (earliest deadline) dispatches the ready task with the earliest start
// deadline and runs it to completion. Misses are reported at the next completion.
type ED struct{}

func (p *ED) Name() string { return "ED" }

func (p *ED) Run(tasks []*Task) *Result {
	e := newEngine(p.Name(), tasks)
	ready := NewReadySet(startDeadlineKey)
	for ; !e.allDone(); e.Clock++ {
		for _, t := range e.arrivals() {
			ready.Put(t)
		}
		e.checkMisses(ready.RemoveIf)
		if e.Running == nil {
			if ready.Len() > 0 {
				e.dispatch(ready.PopMin())
			}
			continue
		}
		if e.serviceRunning() {
			e.complete()
			if ready.Len() > 0 {
				e.dispatch(ready.PopMin())
			}
		}
	}
	return e.result()
}

// EDUI is earliest deadline with unforced idle times: an idle processor stays
// idle until a ready task's start deadline is due, or until it has idled for
// more than IdleAllowed ticks. A completion hands over to the next task at once.
type EDUI struct {
	IdleAllowed int64
}

func (p *EDUI) Name() string { return "EDUI" }

func (p *EDUI) Run(tasks []*Task) *Result {
	e := newEngine(p.Name(), tasks)
	ready := NewReadySet(startDeadlineKey)
	var idle int64
	for ; !e.allDone(); e.Clock++ {
		for _, t := range e.arrivals() {
			ready.Put(t)
		}
		e.checkMisses(ready.RemoveIf)
		switch {
		case e.Running != nil:
			idle = 0
			if e.serviceRunning() {
				e.complete()
				if ready.Len() > 0 {
					e.dispatch(ready.PopMin())
				}
			}
		case ready.Len() > 0:
			if due := dueAt(ready, e.Clock); due != nil {
				ready.Remove(due)
				e.dispatch(due)
				idle = 0
			} else if idle > p.IdleAllowed {
				e.dispatch(ready.PopMin())
				idle = 0
			} else {
				idle++
			}
		default:
			idle++
		}
	}
	return e.result()
}

// dueAt returns the first ready task whose start deadline is exactly clock.
func dueAt(ready *ReadySet, clock int64) *Task {
	for _, t := range ready.Items() {
		if t.StartDeadline != nil && *t.StartDeadline == clock {
			return t
		}
	}
	return nil
}

// RFCSC is first-come first-served over the tasks that can still meet their
// deadlines: every ready task is checked every tick and missed ones are dropped.
type RFCSC struct{}

func (p *RFCSC) Name() string { return "RFCSC" }

func (p *RFCSC) Run(tasks []*Task) *Result {
	e := newEngine(p.Name(), tasks)
	ready := &ReadyQueue{}
	for ; !e.allDone(); e.Clock++ {
		for _, t := range e.arrivals() {
			ready.Enqueue(t)
		}
		e.checkMisses(ready.RemoveIf)
		if e.Running == nil {
			if ready.Len() > 0 {
				e.dispatch(ready.Dequeue())
			}
			continue
		}
		if e.serviceRunning() {
			e.complete()
			if ready.Len() > 0 {
				e.dispatch(ready.Dequeue())
			}
		}
	}
	return e.result()
}
