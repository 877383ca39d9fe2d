package sim

// BatchKind identifies the workload family of an input batch, and with it
// the set of policies that apply.
type BatchKind string

const (
	KindGeneral   BatchKind = "U"  // general-purpose tasks
	KindAperiodic BatchKind = "RA" // real-time tasks with start deadlines
	KindPeriodic  BatchKind = "RP" // periodic templates with end deadlines
)

func (k BatchKind) String() string {
	switch k {
	case KindGeneral:
		return "general"
	case KindAperiodic:
		return "aperiodic real-time"
	case KindPeriodic:
		return "periodic real-time"
	default:
		return string(k)
	}
}

// Batch is one parsed input file: a header plus the tasks it describes.
// Batch.Tasks is the pristine workload; runs always operate on clones.
type Batch struct {
	Source       string // file the batch was read from (empty for in-memory batches)
	Kind         BatchKind
	NumProcesses int   // declared process count from the header
	Quantum      int64 // RR quantum, general batches only
	Horizon      int64 // ending time, periodic batches only
	Tasks        []*Task
}

// Params returns the policy parameters declared by the batch header,
// on top of the defaults.
func (b *Batch) Params() PolicyParams {
	params := DefaultPolicyParams()
	if b.Kind == KindGeneral && b.Quantum > 0 {
		params.Quantum = b.Quantum
	}
	if b.Kind == KindPeriodic {
		params.Horizon = b.Horizon
	}
	return params
}
