// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package bench implements the "sha2 bench" command: run a benchmark
// plan against the digest engine and report throughput alongside the
// standard library's implementations.
package bench
