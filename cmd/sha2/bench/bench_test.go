// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bench

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPlanDefault(t *testing.T) {
	plan, err := loadPlan(benchParams{})
	if err != nil {
		t.Fatalf("loadPlan: %v", err)
	}
	if len(plan.Sizes) == 0 {
		t.Fatal("default plan has no sizes")
	}
}

func TestLoadPlanOverrides(t *testing.T) {
	plan, err := loadPlan(benchParams{
		Algorithms: []string{"sha512"},
		Seed:       99,
	})
	if err != nil {
		t.Fatalf("loadPlan: %v", err)
	}
	if len(plan.Algorithms) != 1 || plan.Algorithms[0] != "sha512" {
		t.Errorf("Algorithms = %v, want [sha512]", plan.Algorithms)
	}
	if plan.Seed != 99 {
		t.Errorf("Seed = %d, want 99", plan.Seed)
	}
}

func TestLoadPlanFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.jsonc")
	content := `{
		// minimal plan
		"sizes": [
			{"name": "64 B", "bytes": 64, "iterations": 2},
		],
	}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	plan, err := loadPlan(benchParams{Plan: path})
	if err != nil {
		t.Fatalf("loadPlan: %v", err)
	}
	if len(plan.Sizes) != 1 || plan.Sizes[0].Bytes != 64 {
		t.Errorf("Sizes = %v", plan.Sizes)
	}
}

func TestLoadPlanMissingFile(t *testing.T) {
	_, err := loadPlan(benchParams{Plan: filepath.Join(t.TempDir(), "absent.jsonc")})
	if err == nil {
		t.Error("loadPlan succeeded on a missing plan file")
	}
}
