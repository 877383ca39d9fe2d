package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func realtimePolicies() []Policy {
	return []Policy{&ED{}, &EDUI{IdleAllowed: DefaultIdleAllowed}, &RFCSC{}}
}

func TestRealtimePolicies_SingleTaskMeetsDeadline(t *testing.T) {
	for _, p := range realtimePolicies() {
		t.Run(p.Name(), func(t *testing.T) {
			got := schedule(p, aperiodic("A", 0, 3, 5))
			if p.Name() == "EDUI" {
				// waits for the deadline
				assert.Equal(t, []string{"A:5->8"}, got)
				return
			}
			assert.Equal(t, []string{"A:0->3"}, got)
		})
	}
}

func TestRealtimePolicies_DeadlineBeforeArrivalIsMissed(t *testing.T) {
	for _, p := range realtimePolicies() {
		t.Run(p.Name(), func(t *testing.T) {
			r := Simulate(p, aperiodic("A", 3, 3, 2))
			assert.Equal(t, []string{"A:Missed"}, r.Timeline.Lines())
			require.Len(t, r.Tasks, 1)
			assert.True(t, r.Tasks[0].Missed)
			assert.Nil(t, r.Tasks[0].Started)
			assert.Equal(t, StateMissed, r.Tasks[0].State)
		})
	}
}

// B's miss is detected at tick 4 but only reported once A completes. Misses are
// never written at detection time; existing transcripts depend on this order.
func TestED_MissReportedAtNextCompletion(t *testing.T) {
	tasks := aperiodic("A", 0, 4, 0, "B", 1, 2, 3, "C", 2, 2, 4)
	want := []string{"A:0->4", "B:Missed", "C:4->6"}
	assert.Equal(t, want, schedule(&ED{}, tasks))
	assert.Equal(t, want, schedule(&EDUI{IdleAllowed: DefaultIdleAllowed}, tasks))
}

func TestED_MissesFlushedMostRecentFirst(t *testing.T) {
	// B misses at tick 3, C at tick 4; both are reported when A completes
	got := schedule(&ED{}, aperiodic("A", 0, 4, 0, "B", 1, 1, 2, "C", 1, 1, 3))
	assert.Equal(t, []string{"A:0->4", "C:Missed", "B:Missed"}, got)
}

func TestED_VersusRFCSC(t *testing.T) {
	tasks := aperiodic("A", 0, 2, 0, "B", 1, 1, 9, "C", 1, 1, 2)
	// ED picks C by deadline; RFCSC serves B first and C misses
	assert.Equal(t, []string{"A:0->2", "C:2->3", "B:3->4"}, schedule(&ED{}, tasks))
	assert.Equal(t, []string{"A:0->2", "B:2->3", "C:Missed"}, schedule(&RFCSC{}, tasks))
}

func TestEDUI_IdlesUntilDeadlineIsDue(t *testing.T) {
	tasks := aperiodic("A", 0, 2, 5, "B", 1, 1, 3)
	assert.Equal(t, []string{"B:3->4", "A:4->6"}, schedule(&EDUI{IdleAllowed: DefaultIdleAllowed}, tasks))
	assert.Equal(t, []string{"A:0->2", "B:2->3"}, schedule(&ED{}, tasks))
	assert.Equal(t, []string{"A:0->2", "B:2->3"}, schedule(&RFCSC{}, tasks))
}

func TestEDUI_IdleThreshold(t *testing.T) {
	tasks := aperiodic("A", 0, 1, 10)
	// dispatched once the processor has idled more than IdleAllowed ticks
	assert.Equal(t, []string{"A:3->4"}, schedule(&EDUI{IdleAllowed: 2}, tasks))
	// the deadline comes first with the default threshold
	assert.Equal(t, []string{"A:10->11"}, schedule(&EDUI{IdleAllowed: DefaultIdleAllowed}, tasks))
}

func TestEDUI_ZeroIdleAllowed(t *testing.T) {
	// one idle tick is always spent before dispatching ahead of the deadline
	assert.Equal(t, []string{"A:1->3"}, schedule(&EDUI{IdleAllowed: 0}, aperiodic("A", 0, 2, 10)))
}

func TestRFCSC_DropsMissedTasksEveryTick(t *testing.T) {
	// B and C wait behind A; C's deadline passes first
	tasks := aperiodic("A", 0, 3, 0, "B", 0, 1, 5, "C", 0, 1, 1)
	r := Simulate(&RFCSC{}, tasks)
	assert.Equal(t, []string{"A:0->3", "C:Missed", "B:3->4"}, r.Timeline.Lines())
}

func TestStartDeadlineKey(t *testing.T) {
	assert.Equal(t, int64(7), startDeadlineKey(NewRealtimeTask("A", 0, 1, Tick(7), nil)))
	assert.Greater(t, startDeadlineKey(NewTask("B", 0, 1)), int64(1<<40))
}
