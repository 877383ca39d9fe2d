// Package testutil provides shared test infrastructure for the scheduling
// simulator. It holds the golden schedule dataset types and assertion helpers
// used across sim/ test packages.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/golden_schedules.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase is one batch, one policy and the schedule it must produce.
type GoldenTestCase struct {
	Name        string        `json:"name"`
	Batch       string        `json:"batch"` // batch file contents, header line first
	Policy      string        `json:"policy"`
	IdleAllowed *int64        `json:"idle_allowed,omitempty"`
	Schedule    []string      `json:"schedule"`
	Metrics     GoldenMetrics `json:"metrics"`
}

// GoldenMetrics represents the expected run summary of a golden test case.
type GoldenMetrics struct {
	// Exact match metrics (integers)
	Completed   int   `json:"completed"`
	Missed      int   `json:"missed"`
	Preemptions int   `json:"preemptions"`
	Makespan    int64 `json:"makespan"`

	// Derived averages
	MeanTurnaround float64 `json:"mean_turnaround"`
	MeanWaiting    float64 `json:"mean_waiting"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "golden_schedules.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}

// AssertLinesEqual compares two rendered schedules line by line.
func AssertLinesEqual(t *testing.T, name string, want, got []string) {
	t.Helper()
	if len(want) != len(got) {
		t.Errorf("%s: got %d lines %v, want %d lines %v", name, len(got), got, len(want), want)
		return
	}
	for i := range want {
		if want[i] != got[i] {
			t.Errorf("%s: line %d: got %q, want %q", name, i, got[i], want[i])
		}
	}
}
