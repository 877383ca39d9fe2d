package trace

// TaskSummary aggregates the records of a single task.
type TaskSummary struct {
	Serviced  int64 // total ticks covered by the task's intervals
	Segments  int   // number of intervals (completions + stops)
	Stops     int
	Completed bool
	Missed    bool
}

// Summary aggregates statistics from a Timeline.
type Summary struct {
	Intervals   int
	Preemptions int
	Misses      int
	Tasks       map[string]*TaskSummary
}

// Summarize computes per-task statistics from a Timeline.
// Safe for nil or empty timelines (returns zero-value fields).
func Summarize(tl *Timeline) *Summary {
	summary := &Summary{Tasks: make(map[string]*TaskSummary)}
	if tl == nil {
		return summary
	}
	for _, r := range tl.Records {
		ts, ok := summary.Tasks[r.Task]
		if !ok {
			ts = &TaskSummary{}
			summary.Tasks[r.Task] = ts
		}
		switch r.Kind {
		case KindComplete:
			summary.Intervals++
			ts.Segments++
			ts.Serviced += r.Duration()
			ts.Completed = true
		case KindStop:
			summary.Intervals++
			summary.Preemptions++
			ts.Segments++
			ts.Stops++
			ts.Serviced += r.Duration()
		case KindMiss:
			summary.Misses++
			ts.Missed = true
		}
	}
	return summary
}

// Overlaps reports whether any two interval records cover a common tick.
// A uniprocessor timeline must never overlap.
func Overlaps(tl *Timeline) bool {
	if tl == nil {
		return false
	}
	var last int64 = -1
	for _, r := range tl.Records {
		if r.Kind == KindMiss {
			continue
		}
		if r.Start < last {
			return true
		}
		last = r.End
	}
	return false
}
