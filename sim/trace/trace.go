package trace

// Timeline collects records in emission order.
type Timeline struct {
	Records []Record
}

// NewTimeline creates an empty Timeline ready for recording.
func NewTimeline() *Timeline {
	return &Timeline{Records: make([]Record, 0)}
}

// Interval appends a completion or stop record.
func (tl *Timeline) Interval(kind Kind, task string, start, end int64) {
	tl.Records = append(tl.Records, Record{Kind: kind, Task: task, Start: start, End: end, Clock: end})
}

// Miss appends a deadline-miss record flushed at the given tick.
func (tl *Timeline) Miss(task string, clock int64) {
	tl.Records = append(tl.Records, Record{Kind: KindMiss, Task: task, Clock: clock})
}

// Len returns the number of records.
func (tl *Timeline) Len() int {
	return len(tl.Records)
}

// Lines renders every record with Record.String.
func (tl *Timeline) Lines() []string {
	lines := make([]string, len(tl.Records))
	for i, r := range tl.Records {
		lines[i] = r.String()
	}
	return lines
}
