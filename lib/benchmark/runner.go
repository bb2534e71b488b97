// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package benchmark

import (
	"bytes"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/bureau-foundation/sha2/lib/sha2"
)

// Result holds the measurements for one algorithm at one payload size:
// this library ("engine") side by side with the standard library
// reference over identical data.
type Result struct {
	Algorithm  string `json:"algorithm"`
	Size       string `json:"size"`
	Bytes      int    `json:"bytes"`
	Iterations int    `json:"iterations"`

	Engine    Timing `json:"engine"`
	Reference Timing `json:"reference"`

	// Ratio is engine average time over reference average time.
	// 1.0 means parity; 2.0 means the engine is twice as slow.
	Ratio float64 `json:"ratio"`
}

// Timing summarizes the measured iterations for one implementation.
type Timing struct {
	AvgNs int64 `json:"avg_ns"`
	MinNs int64 `json:"min_ns"`
	MaxNs int64 `json:"max_ns"`

	// ThroughputMBps is derived from the average time (MB = 2^20).
	ThroughputMBps float64 `json:"throughput_mb_per_s"`
}

// implementations maps algorithm names to the engine function under
// test and the stdlib reference it is compared against.
var implementations = map[string]struct {
	engine    func([]byte) []byte
	reference func([]byte) []byte
}{
	"sha256": {
		engine:    func(p []byte) []byte { sum := sha2.Sum256(p); return sum[:] },
		reference: func(p []byte) []byte { sum := sha256.Sum256(p); return sum[:] },
	},
	"sha512": {
		engine:    func(p []byte) []byte { sum := sha2.Sum512(p); return sum[:] },
		reference: func(p []byte) []byte { sum := sha512.Sum512(p); return sum[:] },
	},
}

// Run executes the plan and returns one Result per algorithm and
// payload size. Payloads are generated deterministically from the
// plan's seed. Before timing anything, each algorithm's output is
// cross-checked against the reference over the payload; a mismatch
// aborts the run, since throughput numbers for an incorrect digest are
// meaningless.
//
// Hashing is sequential on the calling goroutine: block compression is
// chained, and concurrent measurement would only add scheduler noise.
func Run(plan Plan, logger *slog.Logger) ([]Result, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	generator := rand.New(rand.NewSource(plan.Seed))
	results := make([]Result, 0, len(plan.Algorithms)*len(plan.Sizes))

	for _, size := range plan.Sizes {
		payload := make([]byte, size.Bytes)
		generator.Read(payload)

		for _, name := range plan.Algorithms {
			impl := implementations[name]

			if !bytes.Equal(impl.engine(payload), impl.reference(payload)) {
				return nil, fmt.Errorf("%s digest mismatch against reference on %s payload", name, size.Name)
			}

			logger.Info("benchmarking",
				"algorithm", name,
				"size", size.Name,
				"bytes", size.Bytes,
				"iterations", size.Iterations,
			)

			engine := measure(impl.engine, payload, size.Iterations, plan.Warmup)
			reference := measure(impl.reference, payload, size.Iterations, plan.Warmup)

			results = append(results, Result{
				Algorithm:  name,
				Size:       size.Name,
				Bytes:      size.Bytes,
				Iterations: size.Iterations,
				Engine:     engine,
				Reference:  reference,
				Ratio:      float64(engine.AvgNs) / float64(reference.AvgNs),
			})
		}
	}
	return results, nil
}

// measure times iterations calls of hash over payload after warmup
// unmeasured calls.
func measure(hash func([]byte) []byte, payload []byte, iterations, warmup int) Timing {
	for range warmup {
		hash(payload)
	}

	var total, minimum, maximum time.Duration
	for i := range iterations {
		start := time.Now()
		hash(payload)
		elapsed := time.Since(start)

		total += elapsed
		if i == 0 || elapsed < minimum {
			minimum = elapsed
		}
		if elapsed > maximum {
			maximum = elapsed
		}
	}

	average := total / time.Duration(iterations)
	megabytes := float64(len(payload)) / float64(1<<20)

	return Timing{
		AvgNs:          average.Nanoseconds(),
		MinNs:          minimum.Nanoseconds(),
		MaxNs:          maximum.Nanoseconds(),
		ThroughputMBps: megabytes / average.Seconds(),
	}
}
