package sim

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PolicyBundle holds run configuration, loadable from a YAML file.
// Nil pointer fields mean "not set in YAML": they do not override batch headers.
// An empty Policies list means "every policy applicable to the batch".
type PolicyBundle struct {
	Policies    []string `yaml:"policies"`
	Quantum     *int64   `yaml:"rr_quantum"`
	IdleAllowed *int64   `yaml:"idle_allowed"`
	Horizon     *int64   `yaml:"horizon"`
}

// LoadPolicyBundle reads and parses a YAML policy configuration file.
// Unknown keys are rejected so typos surface as errors.
func LoadPolicyBundle(path string) (*PolicyBundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading policy config: %w", err)
	}
	var bundle PolicyBundle
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&bundle); err != nil {
		return nil, fmt.Errorf("parsing policy config: %w", err)
	}
	return &bundle, nil
}

// Validate checks that all policy names and parameter ranges in the bundle are valid.
func (b *PolicyBundle) Validate() error {
	if err := ValidatePolicyNames(b.Policies); err != nil {
		return err
	}
	if b.Quantum != nil && *b.Quantum <= 0 {
		return fmt.Errorf("rr_quantum must be positive, got %d", *b.Quantum)
	}
	if b.IdleAllowed != nil && *b.IdleAllowed < 0 {
		return fmt.Errorf("idle_allowed must be non-negative, got %d", *b.IdleAllowed)
	}
	if b.Horizon != nil && *b.Horizon < 0 {
		return fmt.Errorf("horizon must be non-negative, got %d", *b.Horizon)
	}
	return nil
}

// Apply overlays the fields set in the bundle onto params.
// A nil bundle returns params unchanged.
func (b *PolicyBundle) Apply(params PolicyParams) PolicyParams {
	if b == nil {
		return params
	}
	if b.Quantum != nil {
		params.Quantum = *b.Quantum
	}
	if b.IdleAllowed != nil {
		params.IdleAllowed = *b.IdleAllowed
	}
	if b.Horizon != nil {
		params.Horizon = *b.Horizon
	}
	return params
}
