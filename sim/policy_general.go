package sim

import (
	"sort"
)

// FCFS runs tasks to completion in arrival order.
type FCFS struct{}

func (p *FCFS) Name() string { return "FCFS" }

func (p *FCFS) Run(tasks []*Task) *Result {
	// Arrival order is fixed once up front; equal arrivals keep input order.
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Arrival < tasks[j].Arrival
	})
	e := newEngine(p.Name(), tasks)
	ready := &ReadyQueue{}
	for ; !e.allDone(); e.Clock++ {
		for _, t := range e.arrivals() {
			ready.Enqueue(t)
		}
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

// RR is round-robin with a fixed time slice. A task whose slice expires goes
// to the tail of the queue; if it is alone it is dispatched again at once,
// which still closes the interval it just ran.
type RR struct {
	Quantum int64
}

func (p *RR) Name() string { return "RR" }

func (p *RR) Run(tasks []*Task) *Result {
	if p.Quantum <= 0 {
		panic("RR: quantum must be positive")
	}
	e := newEngine(p.Name(), tasks)
	ready := &ReadyQueue{}
	var slice int64
	for ; !e.allDone(); e.Clock++ {
		for _, t := range e.arrivals() {
			ready.Enqueue(t)
		}
		if e.Running == nil {
			if ready.Len() > 0 {
				e.dispatch(ready.Dequeue())
			}
			continue
		}
		slice++
		switch {
		case e.serviceRunning():
			e.complete()
			if ready.Len() > 0 {
				e.dispatch(ready.Dequeue())
			}
			slice = 0
		case slice >= p.Quantum:
			ready.Enqueue(e.preempt())
			e.dispatch(ready.Dequeue())
			slice = 0
		}
	}
	return e.result()
}

// SPN (shortest process next) dispatches the ready task with the smallest
// estimated service time and never preempts.
type SPN struct{}

func (p *SPN) Name() string { return "SPN" }

func (p *SPN) Run(tasks []*Task) *Result {
	e := newEngine(p.Name(), tasks)
	ready := NewReadySet(func(t *Task) int64 { return t.Estimated })
	for ; !e.allDone(); e.Clock++ {
		for _, t := range e.arrivals() {
			ready.Put(t)
		}
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

// SRT (shortest remaining time) re-evaluates after every service tick and
// preempts the running task when a ready task owes strictly less service than
// the running task owed at the start of the tick. The comparison uses the
// pre-service value: a ready task tied with the post-service remainder wins.
type SRT struct{}

func (p *SRT) Name() string { return "SRT" }

func (p *SRT) Run(tasks []*Task) *Result {
	e := newEngine(p.Name(), tasks)
	// Only the running task's Remaining changes, and it is outside the set while it runs.
	ready := NewReadySet(func(t *Task) int64 { return t.Remaining })
	for ; !e.allDone(); e.Clock++ {
		for _, t := range e.arrivals() {
			ready.Put(t)
		}
		if e.Running == nil {
			if ready.Len() > 0 {
				e.dispatch(ready.PopMin())
			}
			continue
		}
		owed := e.Running.Remaining
		if e.serviceRunning() {
			e.complete()
			if ready.Len() > 0 {
				e.dispatch(ready.PopMin())
			}
			continue
		}
		if shortest := ready.Min(); shortest != nil && shortest.Remaining < owed {
			// The stopped task may tie with the shortest; it goes back only after the pop.
			next := ready.PopMin()
			ready.Put(e.preempt())
			e.dispatch(next)
		}
	}
	return e.result()
}

// HRRN (highest response ratio next) picks, whenever the processor frees up,
// the ready task maximising (waited + estimated) / estimated. Non-preemptive.
type HRRN struct{}

func (p *HRRN) Name() string { return "HRRN" }

func (p *HRRN) Run(tasks []*Task) *Result {
	e := newEngine(p.Name(), tasks)
	var ready []*Task // admission order
	next := func() *Task {
		best := 0
		for i := 1; i < len(ready); i++ {
			if higherResponseRatio(ready[i], ready[best]) {
				best = i
			}
		}
		t := ready[best]
		ready = append(ready[:best], ready[best+1:]...)
		return t
	}
	for ; !e.allDone(); e.Clock++ {
		for _, t := range e.arrivals() {
			ready = append(ready, t)
		}
		if e.Running == nil {
			if len(ready) > 0 {
				e.dispatch(next())
			}
			continue
		}
		finished := e.serviceRunning()
		for _, t := range ready {
			t.Wait(1)
		}
		if finished {
			e.complete()
			if len(ready) > 0 {
				e.dispatch(next())
			}
		}
	}
	return e.result()
}

// higherResponseRatio reports whether a's response ratio strictly exceeds b's.
// Cross-multiplied so the comparison is exact: (wa+ea)/ea > (wb+eb)/eb.
func higherResponseRatio(a, b *Task) bool {
	return (a.Waited+a.Estimated)*b.Estimated > (b.Waited+b.Estimated)*a.Estimated
}
