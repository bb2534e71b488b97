// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package benchmark

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bureau-foundation/sha2/lib/sha2"
)

// tinyPlan keeps test runs fast: small payloads, few iterations.
func tinyPlan() Plan {
	return Plan{
		Sizes: []Size{
			{Name: "64 B", Bytes: 64, Iterations: 2},
			{Name: "4 KB", Bytes: 4 << 10, Iterations: 2},
		},
	}
}

func TestRun(t *testing.T) {
	plan := tinyPlan()
	results, err := Run(plan, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	// Two sizes times two algorithms.
	if len(results) != 4 {
		t.Fatalf("Run returned %d results, want 4", len(results))
	}
	for _, result := range results {
		if result.Engine.AvgNs <= 0 {
			t.Errorf("%s/%s: engine average is %d ns", result.Algorithm, result.Size, result.Engine.AvgNs)
		}
		if result.Engine.MinNs > result.Engine.MaxNs {
			t.Errorf("%s/%s: min %d ns exceeds max %d ns", result.Algorithm, result.Size, result.Engine.MinNs, result.Engine.MaxNs)
		}
		if result.Engine.ThroughputMBps <= 0 {
			t.Errorf("%s/%s: throughput is %f", result.Algorithm, result.Size, result.Engine.ThroughputMBps)
		}
		if result.Ratio <= 0 {
			t.Errorf("%s/%s: ratio is %f", result.Algorithm, result.Size, result.Ratio)
		}
	}
}

func TestRunSingleAlgorithm(t *testing.T) {
	plan := tinyPlan()
	plan.Algorithms = []string{"sha512"}
	results, err := Run(plan, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Run returned %d results, want 2", len(results))
	}
	for _, result := range results {
		if result.Algorithm != "sha512" {
			t.Errorf("unexpected algorithm %q in results", result.Algorithm)
		}
	}
}

func TestRunRejectsUnknownAlgorithm(t *testing.T) {
	plan := tinyPlan()
	plan.Algorithms = []string{"md5"}
	_, err := Run(plan, nil)
	if !errors.Is(err, sha2.ErrUnknownAlgorithm) {
		t.Errorf("Run error = %v, want ErrUnknownAlgorithm", err)
	}
}

func TestDefaultPlanValid(t *testing.T) {
	plan := DefaultPlan()
	if err := plan.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(plan.Algorithms) != 2 {
		t.Errorf("default plan algorithms = %v, want both", plan.Algorithms)
	}
	if plan.Warmup == 0 {
		t.Error("Validate did not default the warmup count")
	}
}

func TestParsePlanJSONC(t *testing.T) {
	const input = `{
	// Comments and trailing commas are allowed in plan files.
	"algorithms": ["sha256"],
	"warmup": 1,
	"sizes": [
		{"name": "1 KB", "bytes": 1024, "iterations": 5},
	],
}`
	plan, err := ParsePlan([]byte(input))
	if err != nil {
		t.Fatalf("ParsePlan: %v", err)
	}
	if len(plan.Sizes) != 1 || plan.Sizes[0].Bytes != 1024 {
		t.Errorf("ParsePlan sizes = %+v", plan.Sizes)
	}
	if plan.Warmup != 1 {
		t.Errorf("ParsePlan warmup = %d, want 1", plan.Warmup)
	}
}

func TestParsePlanRejectsBadPlans(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"no sizes", `{"sizes": []}`},
		{"zero bytes", `{"sizes": [{"name": "x", "bytes": 0, "iterations": 1}]}`},
		{"zero iterations", `{"sizes": [{"name": "x", "bytes": 1, "iterations": 0}]}`},
		{"missing name", `{"sizes": [{"bytes": 1, "iterations": 1}]}`},
		{"negative warmup", `{"warmup": -1, "sizes": [{"name": "x", "bytes": 1, "iterations": 1}]}`},
		{"not json", `sizes:`},
	}
	for _, c := range cases {
		if _, err := ParsePlan([]byte(c.input)); err == nil {
			t.Errorf("%s: ParsePlan succeeded, want error", c.name)
		}
	}
}

func TestLoadPlan(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.jsonc")
	content := `{"sizes": [{"name": "64 B", "bytes": 64, "iterations": 1}]}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	plan, err := LoadPlan(path)
	if err != nil {
		t.Fatalf("LoadPlan: %v", err)
	}
	if len(plan.Sizes) != 1 {
		t.Errorf("LoadPlan sizes = %+v", plan.Sizes)
	}

	if _, err := LoadPlan(filepath.Join(t.TempDir(), "missing.jsonc")); err == nil {
		t.Error("LoadPlan of a missing file succeeded")
	}
}

func TestWriteText(t *testing.T) {
	results, err := Run(tinyPlan(), nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	var out bytes.Buffer
	if err := WriteText(&out, results); err != nil {
		t.Fatalf("WriteText: %v", err)
	}

	report := out.String()
	for _, want := range []string{"ALGORITHM", "sha256", "sha512", "64 B", "4 KB"} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}
