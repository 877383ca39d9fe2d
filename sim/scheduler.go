package sim

import (
	"fmt"
	"sort"
	"strings"
)

// Policy is a uniprocessor scheduling discipline.
// Run takes ownership of tasks and mutates them; use Simulate to run a policy
// over a workload that other runs also read.
type Policy interface {
	Name() string
	Run(tasks []*Task) *Result
}

// PolicyParams carries the tunables resolved from the batch header, the
// policy bundle and CLI flags, in increasing order of precedence.
type PolicyParams struct {
	Quantum     int64 // RR time slice, in ticks
	IdleAllowed int64 // EDUI idle threshold, in ticks
	Horizon     int64 // last tick simulated by FP and EDCD
}

// DefaultPolicyParams returns the parameters used when nothing overrides them.
func DefaultPolicyParams() PolicyParams {
	return PolicyParams{
		Quantum:     1,
		IdleAllowed: DefaultIdleAllowed,
		Horizon:     DefaultHorizon,
	}
}

// Validate checks parameter ranges.
func (pp PolicyParams) Validate() error {
	if pp.Quantum <= 0 {
		return fmt.Errorf("rr quantum must be positive, got %d", pp.Quantum)
	}
	if pp.IdleAllowed < 0 {
		return fmt.Errorf("idle_allowed must be non-negative, got %d", pp.IdleAllowed)
	}
	if pp.Horizon < 0 {
		return fmt.Errorf("horizon must be non-negative, got %d", pp.Horizon)
	}
	return nil
}

// policyOrder lists every policy in the order runs are reported, with the
// batch kind it applies to.
var policyOrder = []struct {
	name string
	kind BatchKind
}{
	{"fcfs", KindGeneral},
	{"rr", KindGeneral},
	{"spn", KindGeneral},
	{"srt", KindGeneral},
	{"hrrn", KindGeneral},
	{"ed", KindAperiodic},
	{"edui", KindAperiodic},
	{"rfcsc", KindAperiodic},
	{"fp", KindPeriodic},
	{"edcd", KindPeriodic},
}

// validPolicies maps lower-case policy names to the batch kind they apply to.
var validPolicies = func() map[string]BatchKind {
	m := make(map[string]BatchKind, len(policyOrder))
	for _, p := range policyOrder {
		m[p.name] = p.kind
	}
	return m
}()

// IsValidPolicy returns true if name (case-insensitive) is a registered policy.
func IsValidPolicy(name string) bool {
	_, ok := validPolicies[strings.ToLower(name)]
	return ok
}

// PolicyKind returns the batch kind a registered policy applies to.
func PolicyKind(name string) (BatchKind, bool) {
	kind, ok := validPolicies[strings.ToLower(name)]
	return kind, ok
}

// PolicyNames returns every registered policy name in reporting order.
func PolicyNames() []string {
	names := make([]string, len(policyOrder))
	for i, p := range policyOrder {
		names[i] = p.name
	}
	return names
}

// PoliciesFor returns the policies applicable to a batch kind, in reporting order.
// When only is non-empty the result is restricted to those names.
func PoliciesFor(kind BatchKind, only []string) []string {
	var filter map[string]bool
	if len(only) > 0 {
		filter = make(map[string]bool, len(only))
		for _, n := range only {
			filter[strings.ToLower(n)] = true
		}
	}
	var names []string
	for _, p := range policyOrder {
		if p.kind != kind {
			continue
		}
		if filter != nil && !filter[p.name] {
			continue
		}
		names = append(names, p.name)
	}
	return names
}

// ValidatePolicyNames returns an error naming every unknown policy, sorted.
func ValidatePolicyNames(names []string) error {
	var unknown []string
	for _, n := range names {
		if !IsValidPolicy(n) {
			unknown = append(unknown, n)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return fmt.Errorf("unknown policies %q (valid: %s)", unknown, strings.Join(PolicyNames(), ", "))
}

// NewPolicy creates a Policy by name (case-insensitive).
// Panics on unrecognized names.
func NewPolicy(name string, params PolicyParams) Policy {
	if !IsValidPolicy(name) {
		panic(fmt.Sprintf("unknown policy %q", name))
	}
	switch strings.ToLower(name) {
	case "fcfs":
		return &FCFS{}
	case "rr":
		return &RR{Quantum: params.Quantum}
	case "spn":
		return &SPN{}
	case "srt":
		return &SRT{}
	case "hrrn":
		return &HRRN{}
	case "ed":
		return &ED{}
	case "edui":
		return &EDUI{IdleAllowed: params.IdleAllowed}
	case "rfcsc":
		return &RFCSC{}
	case "fp":
		return &FP{Horizon: params.Horizon}
	case "edcd":
		return &EDCD{Horizon: params.Horizon}
	default:
		panic(fmt.Sprintf("unhandled policy %q", name))
	}
}
