package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/schedsim/schedsim/sim/trace"
)

// Result is the outcome of one policy run.
type Result struct {
	Policy   string          // display name, e.g. "RR"
	Timeline *trace.Timeline // completion, stop and miss records in emission order
	Tasks    []*Task         // final task states; spawned instances for periodic policies
	EndClock int64           // first tick not simulated
}

// Simulate runs p over a private deep copy of tasks, leaving tasks untouched.
func Simulate(p Policy, tasks []*Task) *Result {
	return p.Run(CloneTasks(tasks))
}

// RunBatch runs every policy applicable to the batch, restricted to only when
// non-empty, in reporting order. Each run receives its own copy of the workload.
func RunBatch(b *Batch, params PolicyParams, only []string) ([]*Result, error) {
	if err := ValidatePolicyNames(only); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	names := PoliciesFor(b.Kind, only)
	if len(names) == 0 {
		logrus.Warnf("no selected policy applies to %s batch %s", b.Kind, b.Source)
	}
	results := make([]*Result, 0, len(names))
	for _, name := range names {
		logrus.Infof("Running %s over %d tasks from %s", name, len(b.Tasks), b.Source)
		results = append(results, Simulate(NewPolicy(name, params), b.Tasks))
	}
	return results, nil
}
