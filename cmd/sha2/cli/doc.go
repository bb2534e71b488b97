// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command framework for the sha2 binary: a
// nested command tree with structured help, pflag-based flag parsing
// bound to tagged parameter structs, typo suggestions for unknown
// commands and flags, JSON output support, and exit-code plumbing.
//
// Commands declare their parameters as a struct with flag/desc/default
// tags and hand [FlagsFromParams] to the Command's Flags hook; after
// parsing, the struct fields hold the flag values. Commands that
// support machine-readable output embed [JSONOutput].
package cli
