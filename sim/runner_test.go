package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulate_LeavesInputUntouched(t *testing.T) {
	tasks := general("A", 3, 5, "B", 0, 3)
	Simulate(&SRT{}, tasks)
	Simulate(&FCFS{}, tasks)

	assert.Equal(t, []string{"A", "B"}, taskNames(tasks), "FCFS sorts its own copy")
	for _, task := range tasks {
		assert.Equal(t, task.Estimated, task.Remaining)
		assert.Nil(t, task.Started)
		assert.Nil(t, task.Completed)
		assert.Equal(t, StatePending, task.State)
	}
}

func TestSimulate_Deterministic(t *testing.T) {
	tasks := randomGeneral(7, 25)
	for _, name := range PoliciesFor(KindGeneral, nil) {
		p := NewPolicy(name, PolicyParams{Quantum: 3, IdleAllowed: DefaultIdleAllowed, Horizon: DefaultHorizon})
		assert.Equal(t, schedule(p, tasks), schedule(p, tasks), name)
	}
}

func TestRunBatch_RunsApplicablePoliciesInOrder(t *testing.T) {
	b := &Batch{Source: "mem", Kind: KindGeneral, Quantum: 2, Tasks: general("A", 0, 5, "B", 1, 3)}
	results, err := RunBatch(b, b.Params(), nil)
	require.NoError(t, err)

	var names []string
	for _, r := range results {
		names = append(names, r.Policy)
	}
	assert.Equal(t, []string{"FCFS", "RR", "SPN", "SRT", "HRRN"}, names)
	assert.Equal(t, []string{"A:0->2", "B:2->4", "A:4->6", "B:6->7", "A:7->8"}, results[1].Timeline.Lines())
}

func TestRunBatch_RunsAreIsolated(t *testing.T) {
	b := &Batch{Kind: KindGeneral, Tasks: general("A", 0, 5, "B", 1, 3)}
	results, err := RunBatch(b, b.Params(), []string{"fcfs", "fcfs"})
	require.NoError(t, err)
	require.Len(t, results, 1)

	// a second run over the same batch sees the pristine workload
	again, err := RunBatch(b, b.Params(), []string{"fcfs"})
	require.NoError(t, err)
	assert.Equal(t, results[0].Timeline.Lines(), again[0].Timeline.Lines())
}

func TestRunBatch_SelectionForOtherKindRunsNothing(t *testing.T) {
	b := &Batch{Kind: KindPeriodic, Horizon: 10, Tasks: periodic("A", 0, 1, 4)}
	results, err := RunBatch(b, b.Params(), []string{"fcfs"})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRunBatch_Errors(t *testing.T) {
	b := &Batch{Kind: KindGeneral, Tasks: general("A", 0, 1)}

	_, err := RunBatch(b, b.Params(), []string{"nope"})
	assert.Error(t, err)

	_, err = RunBatch(b, PolicyParams{Quantum: 0}, nil)
	assert.Error(t, err)
}
