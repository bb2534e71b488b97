// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete sha2 CLI command tree.
package commands

import (
	"fmt"

	benchcmd "github.com/bureau-foundation/sha2/cmd/sha2/bench"
	"github.com/bureau-foundation/sha2/cmd/sha2/cli"
	sumcmd "github.com/bureau-foundation/sha2/cmd/sha2/sum"
	verifycmd "github.com/bureau-foundation/sha2/cmd/sha2/verify"
	"github.com/bureau-foundation/sha2/lib/version"
)

// Root builds and returns the complete sha2 CLI command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "sha2",
		Description: `sha2: streaming SHA-256 and SHA-512 digests.

Hash files and stdin, run conformance vectors, and benchmark the
digest engine against the standard library.`,
		Subcommands: []*cli.Command{
			sumcmd.Command(),
			verifycmd.Command(),
			benchcmd.Command(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					fmt.Printf("sha2 %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Hash a file",
				Command:     "sha2 sum release.tar.gz",
			},
			{
				Description: "Verify the built-in conformance vectors",
				Command:     "sha2 verify",
			},
			{
				Description: "Benchmark SHA-512 throughput",
				Command:     "sha2 bench --algorithms sha512",
			},
		},
	}
}
