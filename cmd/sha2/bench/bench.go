// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bench

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/sha2/cmd/sha2/cli"
	"github.com/bureau-foundation/sha2/lib/benchmark"
)

// benchParams holds the parameters for "sha2 bench".
type benchParams struct {
	cli.JSONOutput
	Plan       string   `flag:"plan"       desc:"path to a JSONC benchmark plan (default: built-in sweep)"`
	Algorithms []string `flag:"algorithms" desc:"restrict to these algorithms (default: all)"`
	Seed       int64    `flag:"seed"       desc:"override the plan's payload generator seed"`
}

// Command returns the "bench" command.
func Command() *cli.Command {
	var params benchParams

	return &cli.Command{
		Name:    "bench",
		Summary: "Measure digest throughput against the standard library",
		Description: `Run a benchmark plan and report per-size throughput for this
module's digest engine next to the standard library's assembly-backed
implementations.

Without --plan, the built-in sweep runs: 512 B through 16 MB payloads
with iteration counts that shrink as payloads grow. A plan file is
JSONC (JSON with comments and trailing commas) matching the built-in
plan's shape.

Every payload is hashed once with both implementations and the digests
compared before timing starts; a mismatch aborts the run.`,
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("bench", &params)
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument %q", args[0])
			}

			plan, err := loadPlan(params)
			if err != nil {
				return err
			}

			logger := cli.NewCommandLogger()
			results, err := benchmark.Run(plan, logger)
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(results); done || err != nil {
				return err
			}
			return benchmark.WriteText(os.Stdout, results)
		},
		Examples: []cli.Example{
			{
				Description: "Run the built-in sweep",
				Command:     "sha2 bench",
			},
			{
				Description: "SHA-512 only, machine-readable output",
				Command:     "sha2 bench --algorithms sha512 --json",
			},
			{
				Description: "Run a custom plan",
				Command:     "sha2 bench --plan plans/quick.jsonc",
			},
		},
	}
}

// loadPlan resolves the plan from flags: a plan file when --plan is
// set, the built-in sweep otherwise, with --algorithms and --seed
// overriding either source.
func loadPlan(params benchParams) (benchmark.Plan, error) {
	plan := benchmark.DefaultPlan()
	if params.Plan != "" {
		loaded, err := benchmark.LoadPlan(params.Plan)
		if err != nil {
			return benchmark.Plan{}, err
		}
		plan = loaded
	}
	if len(params.Algorithms) > 0 {
		plan.Algorithms = params.Algorithms
	}
	if params.Seed != 0 {
		plan.Seed = params.Seed
	}
	return plan, nil
}
