package sim

import (
	"fmt"
)

// DefaultHorizon is the last tick simulated by the periodic policies when the
// batch does not specify one.
const DefaultHorizon = 100

// spawner releases periodic task instances. Every template task is released
// whenever clock % period == arrival, period being the template's end deadline.
// Instance k of template A is named "A(k)" and has end deadline k * period.
type spawner struct {
	templates []*Task
	counters  []int64
}

func newSpawner(policy string, templates []*Task) *spawner {
	counters := make([]int64, len(templates))
	for i, tmpl := range templates {
		if tmpl.EndDeadline == nil || *tmpl.EndDeadline <= 0 {
			panic(fmt.Sprintf("%s: template %s needs a positive end deadline", policy, tmpl.Name))
		}
		counters[i] = 1
	}
	return &spawner{templates: templates, counters: counters}
}

// spawn releases the instances due at the engine's clock, in template order.
func (s *spawner) spawn(e *engine) []*Task {
	var out []*Task
	for i, tmpl := range s.templates {
		period := *tmpl.EndDeadline
		if e.Clock%period != tmpl.Arrival {
			continue
		}
		k := s.counters[i]
		s.counters[i]++
		inst := NewRealtimeTask(fmt.Sprintf("%s(%d)", tmpl.Name, k), e.Clock, tmpl.Estimated, nil, Tick(period*k))
		inst.Priority = tmpl.Priority
		e.admit(inst)
		e.Tasks = append(e.Tasks, inst)
		out = append(out, inst)
	}
	return out
}

// runPeriodic is the tick loop shared by FP and EDCD. The ready set is ordered
// by key; a ready instance with a strictly smaller key than the running one
// preempts it. The loop runs for ticks 0..horizon inclusive.
func runPeriodic(policy string, templates []*Task, horizon int64, key KeyFunc) *Result {
	e := newEngine(policy, nil)
	spawn := newSpawner(policy, templates)
	ready := NewReadySet(key)
	for ; e.Clock <= horizon; e.Clock++ {
		for _, inst := range spawn.spawn(e) {
			ready.Put(inst)
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
			continue
		}
		if best := ready.Min(); best != nil && key(best) < key(e.Running) {
			stopped := e.preempt()
			e.flushMissed()
			next := ready.PopMin()
			ready.Put(stopped)
			e.dispatch(next)
		}
	}
	return e.result()
}

// FP is fixed-priority preemptive scheduling of periodic tasks. Priority is
// the template's input position: the first template is the most urgent.
type FP struct {
	Horizon int64
}

func (p *FP) Name() string { return "FP" }

func (p *FP) Run(templates []*Task) *Result {
	for i, tmpl := range templates {
		tmpl.Priority = i
	}
	return runPeriodic(p.Name(), templates, p.Horizon, func(t *Task) int64 { return int64(t.Priority) })
}

// EDCD is earliest-deadline scheduling of periodic tasks with dynamic
// preemption: an instance with a strictly earlier end deadline takes over.
type EDCD struct {
	Horizon int64
}

func (p *EDCD) Name() string { return "EDCD" }

func (p *EDCD) Run(templates []*Task) *Result {
	return runPeriodic(p.Name(), templates, p.Horizon, func(t *Task) int64 { return *t.EndDeadline })
}
