package trace

import (
	"testing"
)

func TestTimeline_Interval_AppendsRecord(t *testing.T) {
	// GIVEN an empty timeline
	tl := NewTimeline()

	// WHEN a completion interval is recorded
	tl.Interval(KindComplete, "A", 2, 7)

	// THEN the timeline holds one record stamped at the interval end
	if tl.Len() != 1 {
		t.Fatalf("expected 1 record, got %d", tl.Len())
	}
	r := tl.Records[0]
	if r.Kind != KindComplete || r.Task != "A" || r.Start != 2 || r.End != 7 {
		t.Errorf("unexpected record %+v", r)
	}
	if r.Clock != 7 {
		t.Errorf("expected clock 7, got %d", r.Clock)
	}
	if r.Duration() != 5 {
		t.Errorf("expected duration 5, got %d", r.Duration())
	}
}

func TestTimeline_Miss_AppendsRecord(t *testing.T) {
	tl := NewTimeline()
	tl.Miss("B", 4)

	if tl.Len() != 1 {
		t.Fatalf("expected 1 record, got %d", tl.Len())
	}
	r := tl.Records[0]
	if r.Kind != KindMiss || r.Task != "B" || r.Clock != 4 {
		t.Errorf("unexpected record %+v", r)
	}
	if r.Duration() != 0 {
		t.Errorf("miss records carry no service, got %d", r.Duration())
	}
}

func TestTimeline_Lines_PreservesEmissionOrder(t *testing.T) {
	tl := NewTimeline()
	tl.Interval(KindStop, "A", 0, 2)
	tl.Interval(KindComplete, "B", 2, 3)
	tl.Miss("C", 3)
	tl.Interval(KindComplete, "A(2)", 3, 5)

	want := []string{"A:0->2", "B:2->3", "C:Missed", "A(2):3->5"}
	got := tl.Lines()
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTimeline_Empty(t *testing.T) {
	tl := NewTimeline()
	if tl.Len() != 0 {
		t.Errorf("expected empty timeline, got %d records", tl.Len())
	}
	if len(tl.Lines()) != 0 {
		t.Errorf("expected no lines, got %v", tl.Lines())
	}
}

func TestKind_String(t *testing.T) {
	tests := map[Kind]string{
		KindComplete: "complete",
		KindStop:     "stop",
		KindMiss:     "miss",
		Kind(42):     "unknown",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(k), got, want)
		}
	}
}
