// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Sha2 is the CLI for the sha2 digest module. It provides subcommands
// for hashing files and stdin (sum), running conformance vectors
// (verify), and benchmarking the digest engine against the standard
// library (bench).
package main
