package sim

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

// general builds plain tasks from (name, arrival, estimated) triples.
func general(specs ...any) []*Task {
	if len(specs)%3 != 0 {
		panic("general: specs must be name, arrival, estimated triples")
	}
	var tasks []*Task
	for i := 0; i < len(specs); i += 3 {
		tasks = append(tasks, NewTask(specs[i].(string), int64(specs[i+1].(int)), int64(specs[i+2].(int))))
	}
	return tasks
}

// aperiodic builds start-deadline tasks from (name, arrival, exec, start deadline) quads.
func aperiodic(specs ...any) []*Task {
	if len(specs)%4 != 0 {
		panic("aperiodic: specs must be name, arrival, exec, deadline quads")
	}
	var tasks []*Task
	for i := 0; i < len(specs); i += 4 {
		tasks = append(tasks, NewRealtimeTask(specs[i].(string), int64(specs[i+1].(int)), int64(specs[i+2].(int)),
			Tick(int64(specs[i+3].(int))), nil))
	}
	return tasks
}

// periodic builds end-deadline templates from (name, arrival, exec, end deadline) quads.
func periodic(specs ...any) []*Task {
	if len(specs)%4 != 0 {
		panic("periodic: specs must be name, arrival, exec, deadline quads")
	}
	var tasks []*Task
	for i := 0; i < len(specs); i += 4 {
		tasks = append(tasks, NewRealtimeTask(specs[i].(string), int64(specs[i+1].(int)), int64(specs[i+2].(int)),
			nil, Tick(int64(specs[i+3].(int)))))
	}
	return tasks
}

// schedule runs p over a copy of tasks and returns the rendered timeline.
func schedule(p Policy, tasks []*Task) []string {
	return Simulate(p, tasks).Timeline.Lines()
}

// randomGeneral generates a deterministic general-purpose workload.
func randomGeneral(seed int64, n int) []*Task {
	rng := rand.New(rand.NewSource(seed))
	tasks := make([]*Task, n)
	var arrival int64
	for i := range tasks {
		tasks[i] = NewTask(fmt.Sprintf("T%d", i), arrival, 1+rng.Int63n(9))
		arrival += rng.Int63n(4)
	}
	return tasks
}

// randomAperiodic generates a deterministic start-deadline workload.
func randomAperiodic(seed int64, n int) []*Task {
	rng := rand.New(rand.NewSource(seed))
	tasks := make([]*Task, n)
	var arrival int64
	for i := range tasks {
		dln := arrival + rng.Int63n(12)
		tasks[i] = NewRealtimeTask(fmt.Sprintf("R%d", i), arrival, 1+rng.Int63n(5), Tick(dln), nil)
		arrival += rng.Int63n(3)
	}
	return tasks
}

func writeTempYAML(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "policy.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
