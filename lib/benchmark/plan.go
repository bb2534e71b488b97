// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package benchmark measures sha2 digest throughput across payload
// sizes and compares it against the standard library's assembly-backed
// implementations. A benchmark run is described by a Plan (algorithms,
// payload sizes, per-size iteration counts) which is either the
// built-in default or loaded from a JSONC file (JSON extended with
// comments and trailing commas).
package benchmark

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/bureau-foundation/sha2/lib/sha2"
)

// Plan describes a benchmark run.
type Plan struct {
	// Algorithms lists the digests to measure. Empty means all
	// recognized algorithms.
	Algorithms []string `json:"algorithms,omitempty"`

	// Sizes lists the payloads to measure, each with its own
	// iteration count. Larger payloads use fewer iterations so the
	// total run time stays bounded.
	Sizes []Size `json:"sizes"`

	// Warmup is the number of unmeasured iterations run before
	// timing starts, letting the first-touch page faults and branch
	// predictors settle. Defaults to 3 when zero.
	Warmup int `json:"warmup,omitempty"`

	// Seed feeds the deterministic payload generator, so separate
	// runs hash identical data and are directly comparable.
	Seed int64 `json:"seed,omitempty"`
}

// Size is one payload entry in a Plan.
type Size struct {
	// Name labels the payload in reports (e.g. "1 MB").
	Name string `json:"name"`

	// Bytes is the payload length.
	Bytes int `json:"bytes"`

	// Iterations is the number of measured hash calls.
	Iterations int `json:"iterations"`
}

// DefaultPlan returns the standard sweep: 512 B through 16 MB with
// iteration counts that shrink as payloads grow.
func DefaultPlan() Plan {
	return Plan{
		Sizes: []Size{
			{Name: "512 B", Bytes: 512, Iterations: 200},
			{Name: "1 KB", Bytes: 1 << 10, Iterations: 200},
			{Name: "10 KB", Bytes: 10 << 10, Iterations: 100},
			{Name: "100 KB", Bytes: 100 << 10, Iterations: 50},
			{Name: "512 KB", Bytes: 512 << 10, Iterations: 40},
			{Name: "1 MB", Bytes: 1 << 20, Iterations: 25},
			{Name: "4 MB", Bytes: 4 << 20, Iterations: 10},
			{Name: "16 MB", Bytes: 16 << 20, Iterations: 3},
		},
	}
}

// Validate checks the plan and fills in defaults: all algorithms when
// none are listed, and a warmup of 3 when unset.
func (p *Plan) Validate() error {
	if len(p.Algorithms) == 0 {
		p.Algorithms = sha2.Names()
	}
	for _, name := range p.Algorithms {
		if _, err := sha2.New(name, nil); err != nil {
			return err
		}
	}

	if len(p.Sizes) == 0 {
		return fmt.Errorf("benchmark plan defines no payload sizes")
	}
	for i, size := range p.Sizes {
		if size.Name == "" {
			return fmt.Errorf("size %d: missing name", i)
		}
		if size.Bytes <= 0 {
			return fmt.Errorf("size %q: bytes must be positive, got %d", size.Name, size.Bytes)
		}
		if size.Iterations <= 0 {
			return fmt.Errorf("size %q: iterations must be positive, got %d", size.Name, size.Iterations)
		}
	}

	if p.Warmup < 0 {
		return fmt.Errorf("warmup must not be negative, got %d", p.Warmup)
	}
	if p.Warmup == 0 {
		p.Warmup = 3
	}
	return nil
}

// ParsePlan strips JSONC comments and trailing commas from data, then
// unmarshals and validates the plan.
func ParsePlan(data []byte) (Plan, error) {
	var plan Plan
	if err := json.Unmarshal(jsonc.ToJSON(data), &plan); err != nil {
		return Plan{}, fmt.Errorf("parsing benchmark plan: %w", err)
	}
	if err := plan.Validate(); err != nil {
		return Plan{}, err
	}
	return plan, nil
}

// LoadPlan reads and parses the plan file at path.
func LoadPlan(path string) (Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, fmt.Errorf("reading benchmark plan: %w", err)
	}
	plan, err := ParsePlan(data)
	if err != nil {
		return Plan{}, fmt.Errorf("%s: %w", path, err)
	}
	return plan, nil
}
