package sim_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedsim/schedsim/sim"
	"github.com/schedsim/schedsim/sim/workload"
)

// TestExampleConfigs_PolicyBundle verifies that the shipped policy.yaml loads,
// validates and selects the preemptive policies.
func TestExampleConfigs_PolicyBundle(t *testing.T) {
	// GIVEN the policy.yaml example config
	bundle, err := sim.LoadPolicyBundle(filepath.Join("..", "examples", "policy.yaml"))
	require.NoError(t, err, "failed to load policy.yaml")

	// THEN validation passes
	require.NoError(t, bundle.Validate(), "validation failed")

	// THEN the overrides are applied on top of the defaults
	params := bundle.Apply(sim.DefaultPolicyParams())
	assert.Equal(t, int64(2), params.Quantum)
	assert.Equal(t, int64(5), params.IdleAllowed)
	assert.Equal(t, int64(sim.DefaultHorizon), params.Horizon)
	assert.Equal(t, []string{"rr", "srt"}, sim.PoliciesFor(sim.KindGeneral, bundle.Policies))
}

// TestExampleBatches_RunUnderBundle runs every shipped batch with the shipped bundle.
func TestExampleBatches_RunUnderBundle(t *testing.T) {
	bundle, err := sim.LoadPolicyBundle(filepath.Join("..", "examples", "policy.yaml"))
	require.NoError(t, err)

	tests := []struct {
		file     string
		kind     sim.BatchKind
		policies []string
	}{
		{"general.txt", sim.KindGeneral, []string{"RR", "SRT"}},
		{"aperiodic.txt", sim.KindAperiodic, []string{"EDUI"}},
		{"periodic.txt", sim.KindPeriodic, []string{"FP", "EDCD"}},
	}
	for _, tc := range tests {
		t.Run(tc.file, func(t *testing.T) {
			b, err := workload.LoadBatch(filepath.Join("..", "examples", tc.file))
			require.NoError(t, err)
			assert.Equal(t, tc.kind, b.Kind)

			results, err := sim.RunBatch(b, bundle.Apply(b.Params()), bundle.Policies)
			require.NoError(t, err)
			var names []string
			for _, r := range results {
				names = append(names, r.Policy)
				assert.NotZero(t, r.Timeline.Len(), r.Policy)
			}
			assert.Equal(t, tc.policies, names)
		})
	}
}

func ExampleSimulate() {
	tasks := []*sim.Task{sim.NewTask("A", 0, 5), sim.NewTask("B", 1, 3)}
	for _, line := range sim.Simulate(&sim.RR{Quantum: 2}, tasks).Timeline.Lines() {
		fmt.Println(line)
	}
	// Output:
	// A:0->2
	// B:2->4
	// A:4->6
	// B:6->7
	// A:7->8
}
