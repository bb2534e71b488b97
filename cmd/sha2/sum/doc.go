// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package sum implements the "sha2 sum" command: hash files or stdin
// and print or check sha*sum-style digest lines.
package sum
