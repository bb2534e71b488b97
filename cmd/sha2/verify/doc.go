// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package verify implements the "sha2 verify" command: run conformance
// vectors through the digest engine and report pass/fail per vector.
package verify
