// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package verify

import (
	"bytes"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/sha2/cmd/sha2/cli"
	"github.com/bureau-foundation/sha2/lib/sha2"
	"github.com/bureau-foundation/sha2/lib/vector"
)

// verifyParams holds the parameters for "sha2 verify".
type verifyParams struct {
	cli.JSONOutput
	Vectors string `flag:"vectors" desc:"path to a YAML vector file (default: built-in vectors)"`
}

// Result is the outcome of one vector, for reports.
type Result struct {
	Name      string `json:"name"`
	Algorithm string `json:"algorithm"`
	Passed    bool   `json:"passed"`
	Detail    string `json:"detail,omitempty"`
}

// Command returns the "verify" command.
func Command() *cli.Command {
	var params verifyParams

	return &cli.Command{
		Name:    "verify",
		Summary: "Run conformance vectors against the digest engine",
		Description: `Hash each vector's input with this module's digest engine and
compare against the expected digest. As an independent check, every
input is also hashed with the standard library and the two digests
compared.

Without --vectors, the built-in set runs: the FIPS 180-4 examples plus
a large repeated-fill case for each algorithm. A vector file is YAML;
see the vector package for the document shape.

Exits non-zero when any vector fails.`,
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("verify", &params)
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument %q", args[0])
			}

			vectors := vector.Builtin()
			if params.Vectors != "" {
				loaded, err := vector.Load(params.Vectors)
				if err != nil {
					return err
				}
				vectors = loaded
			}

			results := runVectors(vectors)

			emitted, err := params.EmitJSON(results)
			if err != nil {
				return err
			}
			if !emitted {
				if err := writeResults(os.Stdout, results); err != nil {
					return err
				}
			}

			for _, result := range results {
				if !result.Passed {
					return &cli.ExitError{Code: 1}
				}
			}
			return nil
		},
		Examples: []cli.Example{
			{
				Description: "Run the built-in vectors",
				Command:     "sha2 verify",
			},
			{
				Description: "Run an external vector file",
				Command:     "sha2 verify --vectors vectors/nist.yaml",
			},
		},
	}
}

// runVectors checks each vector and collects the outcomes.
func runVectors(vectors []vector.Vector) []Result {
	results := make([]Result, 0, len(vectors))
	for i := range vectors {
		v := &vectors[i]
		result := Result{Name: v.Name, Algorithm: v.Algorithm}
		if detail := checkVector(v); detail != "" {
			result.Detail = detail
		} else {
			result.Passed = true
		}
		results = append(results, result)
	}
	return results
}

// checkVector runs one vector. The empty string means it passed; any
// other return is the failure detail.
func checkVector(v *vector.Vector) string {
	if err := v.Validate(); err != nil {
		return err.Error()
	}
	input, err := v.Data()
	if err != nil {
		return err.Error()
	}

	digest, err := sha2.New(v.Algorithm, input)
	if err != nil {
		return err.Error()
	}
	got := digest.Sum(nil)

	expected, err := hex.DecodeString(v.Digest)
	if err != nil {
		return fmt.Sprintf("expected digest is not hex: %v", err)
	}
	if !bytes.Equal(got, expected) {
		return fmt.Sprintf("digest mismatch: got %x", got)
	}

	reference := referenceDigest(v.Algorithm, input)
	if !bytes.Equal(got, reference) {
		return fmt.Sprintf("disagrees with standard library: stdlib %x", reference)
	}
	return ""
}

// referenceDigest hashes input with the standard library. The
// algorithm is already validated, so an unrecognized name is a
// programming error.
func referenceDigest(algorithm string, input []byte) []byte {
	switch algorithm {
	case "sha256":
		sum := sha256.Sum256(input)
		return sum[:]
	case "sha512":
		sum := sha512.Sum512(input)
		return sum[:]
	}
	panic(fmt.Sprintf("no reference implementation for %q", algorithm))
}

// writeResults renders the pass/fail table.
func writeResults(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "VECTOR\tALGORITHM\tRESULT")
	failed := 0
	for _, result := range results {
		status := "ok"
		if !result.Passed {
			status = "FAIL: " + result.Detail
			failed++
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", result.Name, result.Algorithm, status)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if failed > 0 {
		fmt.Fprintf(w, "\n%d of %d vectors failed\n", failed, len(results))
	} else {
		fmt.Fprintf(w, "\nall %d vectors passed\n", len(results))
	}
	return nil
}
