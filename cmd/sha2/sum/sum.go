// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package sum

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/sha2/cmd/sha2/cli"
	"github.com/bureau-foundation/sha2/lib/hashfile"
)

// sumParams holds the parameters for "sha2 sum".
type sumParams struct {
	Algorithm string `flag:"algorithm,a" desc:"digest algorithm (sha256 or sha512)" default:"sha256"`
	Check     bool   `flag:"check,c"     desc:"read digest lines from the arguments and verify them"`
}

// Command returns the "sum" command.
func Command() *cli.Command {
	var params sumParams

	return &cli.Command{
		Name:    "sum",
		Summary: "Hash files or stdin",
		Description: `Hash each named file and print one line per file in the sha256sum
format: the lowercase hex digest, two spaces, and the path. With no
arguments (or "-"), stdin is hashed and the path printed as "-".

With --check, each argument is a file of digest lines previously
produced by this command (or sha256sum/sha512sum). Every listed file is
re-hashed and compared; mismatches are reported and the exit code is
non-zero.`,
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("sum", &params)
		},
		Run: func(args []string) error {
			if params.Check {
				return checkLists(os.Stdout, params.Algorithm, args)
			}
			return hashPaths(os.Stdout, params.Algorithm, args)
		},
		Examples: []cli.Example{
			{
				Description: "Hash a file",
				Command:     "sha2 sum release.tar.gz",
			},
			{
				Description: "Hash stdin with SHA-512",
				Command:     "sha2 sum --algorithm sha512 < release.tar.gz",
			},
			{
				Description: "Record and later verify digests",
				Command:     "sha2 sum *.tar.gz > SHA256SUMS && sha2 sum --check SHA256SUMS",
			},
		},
	}
}

// hashPaths hashes each path and writes digest lines. "-" or an empty
// argument list means stdin.
func hashPaths(w io.Writer, algorithm string, paths []string) error {
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	for _, path := range paths {
		digest, err := hashPath(algorithm, path)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s  %s\n", hashfile.FormatDigest(digest), path)
	}
	return nil
}

// hashPath hashes one path, with "-" meaning stdin.
func hashPath(algorithm, path string) ([]byte, error) {
	if path == "-" {
		digest, err := hashfile.HashReader(algorithm, os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return digest, nil
	}
	return hashfile.HashFile(algorithm, path)
}

// checkLists verifies the digest lines in each list file. A failed
// entry is reported but does not stop the remaining checks; the final
// error is an ExitError when anything failed.
func checkLists(w io.Writer, algorithm string, listPaths []string) error {
	if len(listPaths) == 0 {
		return fmt.Errorf("--check requires at least one digest list file")
	}
	failed := 0
	for _, listPath := range listPaths {
		data, err := os.ReadFile(listPath)
		if err != nil {
			return fmt.Errorf("reading digest list: %w", err)
		}
		listFailed, err := checkList(w, algorithm, listPath, data)
		if err != nil {
			return err
		}
		failed += listFailed
	}
	if failed > 0 {
		fmt.Fprintf(w, "%d file(s) did not match\n", failed)
		return &cli.ExitError{Code: 1}
	}
	return nil
}

// checkList verifies one digest list, returning the failure count.
func checkList(w io.Writer, algorithm, listPath string, data []byte) (int, error) {
	failed := 0
	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		expectedHex, path, found := strings.Cut(line, "  ")
		if !found {
			return failed, fmt.Errorf("%s:%d: malformed digest line", listPath, lineNumber)
		}
		expected, err := hashfile.ParseDigest(algorithm, expectedHex)
		if err != nil {
			return failed, fmt.Errorf("%s:%d: %w", listPath, lineNumber, err)
		}

		digest, err := hashfile.HashFile(algorithm, path)
		if err != nil {
			return failed, err
		}
		if bytes.Equal(digest, expected) {
			fmt.Fprintf(w, "%s: OK\n", path)
		} else {
			fmt.Fprintf(w, "%s: FAILED\n", path)
			failed++
		}
	}
	return failed, scanner.Err()
}
