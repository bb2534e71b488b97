// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version provides build version information for the sha2 CLI.
//
// Three package-level variables are injected at build time via
// -ldflags -X: [Version], [GitCommit], and [BuildTime]. They default
// to "0.1.0-dev" / "unknown" when not injected, which is what
// development builds and test runs see.
//
// [Short], [Info], and [Full] format the variables at increasing
// levels of detail; "sha2 version" and "sha2 --version" print [Full].
package version
