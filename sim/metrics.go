// Tracks per-run and per-task performance metrics such as turnaround,
// waiting and response times.

package sim

import (
	"github.com/schedsim/schedsim/sim/trace"
)

// TaskMetrics describes how one task fared in a run.
// Turnaround, Waiting and Response are only meaningful for completed tasks.
type TaskMetrics struct {
	Name       string
	Arrival    int64
	Estimated  int64
	Serviced   int64 // ticks of service delivered
	Started    *int64
	Completed  *int64
	Turnaround int64 // Completed - Arrival
	Waiting    int64 // Turnaround - Estimated
	Response   int64 // Started - Arrival
	State      TaskState
}

// Metrics aggregates statistics about a run for reporting.
type Metrics struct {
	Policy      string
	Completed   int
	Missed      int
	Preemptions int
	Makespan    int64 // tick of the last completion

	MeanTurnaround float64
	P90Turnaround  float64
	MeanWaiting    float64
	MeanResponse   float64
	Throughput     float64 // completions per tick of makespan

	Tasks []TaskMetrics
}

// ComputeMetrics derives metrics from a finished run.
func ComputeMetrics(r *Result) *Metrics {
	m := &Metrics{Policy: r.Policy}
	summary := trace.Summarize(r.Timeline)
	m.Preemptions = summary.Preemptions
	m.Missed = summary.Misses

	var turnarounds, waits, responses []int64
	for _, t := range r.Tasks {
		tm := TaskMetrics{
			Name:      t.Name,
			Arrival:   t.Arrival,
			Estimated: t.Estimated,
			Serviced:  t.Estimated - max(t.Remaining, 0),
			Started:   copyTick(t.Started),
			Completed: copyTick(t.Completed),
			State:     t.State,
		}
		if t.Started != nil {
			tm.Response = *t.Started - t.Arrival
		}
		if t.Completed != nil {
			m.Completed++
			m.Makespan = max(m.Makespan, *t.Completed)
			tm.Turnaround = *t.Completed - t.Arrival
			tm.Waiting = tm.Turnaround - t.Estimated
			turnarounds = append(turnarounds, tm.Turnaround)
			waits = append(waits, tm.Waiting)
			responses = append(responses, tm.Response)
		}
		m.Tasks = append(m.Tasks, tm)
	}

	m.MeanTurnaround = CalculateMean(turnarounds)
	m.P90Turnaround = CalculatePercentile(turnarounds, 90)
	m.MeanWaiting = CalculateMean(waits)
	m.MeanResponse = CalculateMean(responses)
	if m.Makespan > 0 {
		m.Throughput = float64(m.Completed) / float64(m.Makespan)
	}
	return m
}
