// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package vector defines conformance test vectors for the sha2 digest
// engine: a fixed input paired with its expected digest. Vectors are
// either built in (the FIPS 180-4 examples plus a large repeated-fill
// case) or loaded from YAML files so the verify harness can run
// external vector sets.
package vector

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/sha2/lib/sha2"
)

// Vector is a single conformance case. Exactly one input form is used:
// Input (literal text), InputHex (raw bytes as hex), or Repeat (a fill
// byte repeated Count times). An absent input means the empty message.
type Vector struct {
	// Name identifies the vector in reports.
	Name string `yaml:"name"`

	// Algorithm is the digest to run, "sha256" or "sha512".
	Algorithm string `yaml:"algorithm"`

	// Input is the message as literal text.
	Input string `yaml:"input,omitempty"`

	// InputHex is the message as hex-encoded raw bytes, for inputs
	// that are not printable text.
	InputHex string `yaml:"input_hex,omitempty"`

	// Repeat generates the message as a repeated fill byte. Used for
	// the large multi-block cases where a literal would be unwieldy.
	Repeat *Repeat `yaml:"repeat,omitempty"`

	// Digest is the expected digest, lowercase hex.
	Digest string `yaml:"digest"`
}

// Repeat describes a repeated-fill message.
type Repeat struct {
	// Byte is the fill, a single-character string.
	Byte string `yaml:"byte"`

	// Count is the number of repetitions.
	Count int `yaml:"count"`
}

// file is the YAML document shape for vector files.
type file struct {
	Vectors []Vector `yaml:"vectors"`
}

// Validate checks the vector for structural problems: an unrecognized
// algorithm, more than one input form, a malformed hex input, or an
// expected digest whose length does not match the algorithm.
func (v *Vector) Validate() error {
	digest, err := sha2.New(v.Algorithm, nil)
	if err != nil {
		return fmt.Errorf("vector %q: %w", v.Name, err)
	}

	forms := 0
	if v.Input != "" {
		forms++
	}
	if v.InputHex != "" {
		forms++
	}
	if v.Repeat != nil {
		forms++
	}
	if forms > 1 {
		return fmt.Errorf("vector %q: more than one input form set", v.Name)
	}

	if v.InputHex != "" {
		if _, err := hex.DecodeString(v.InputHex); err != nil {
			return fmt.Errorf("vector %q: input_hex: %w", v.Name, err)
		}
	}
	if v.Repeat != nil {
		if len(v.Repeat.Byte) != 1 {
			return fmt.Errorf("vector %q: repeat byte must be a single character, got %q", v.Name, v.Repeat.Byte)
		}
		if v.Repeat.Count < 0 {
			return fmt.Errorf("vector %q: repeat count is negative", v.Name)
		}
	}

	want := 2 * digest.Size()
	if len(v.Digest) != want {
		return fmt.Errorf("vector %q: digest is %d hex characters, want %d for %s",
			v.Name, len(v.Digest), want, v.Algorithm)
	}
	if _, err := hex.DecodeString(v.Digest); err != nil {
		return fmt.Errorf("vector %q: digest: %w", v.Name, err)
	}
	if v.Digest != strings.ToLower(v.Digest) {
		return fmt.Errorf("vector %q: digest must be lowercase hex", v.Name)
	}
	return nil
}

// Data materializes the vector's message bytes.
func (v *Vector) Data() ([]byte, error) {
	switch {
	case v.InputHex != "":
		data, err := hex.DecodeString(v.InputHex)
		if err != nil {
			return nil, fmt.Errorf("vector %q: input_hex: %w", v.Name, err)
		}
		return data, nil
	case v.Repeat != nil:
		return bytes.Repeat([]byte(v.Repeat.Byte), v.Repeat.Count), nil
	default:
		return []byte(v.Input), nil
	}
}

// Parse unmarshals a YAML vector file and validates every vector.
func Parse(data []byte) ([]Vector, error) {
	var parsed file
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parsing vector file: %w", err)
	}
	if len(parsed.Vectors) == 0 {
		return nil, fmt.Errorf("vector file defines no vectors")
	}
	for i := range parsed.Vectors {
		if err := parsed.Vectors[i].Validate(); err != nil {
			return nil, err
		}
	}
	return parsed.Vectors, nil
}

// Load reads and parses the vector file at path.
func Load(path string) ([]Vector, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading vector file: %w", err)
	}
	vectors, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return vectors, nil
}

// Builtin returns the built-in conformance set: the FIPS 180-4 example
// messages for both algorithms plus the one-million-'a' multi-block
// case.
func Builtin() []Vector {
	return []Vector{
		{
			Name:      "sha256-empty",
			Algorithm: "sha256",
			Digest:    "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			Name:      "sha256-abc",
			Algorithm: "sha256",
			Input:     "abc",
			Digest:    "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		},
		{
			Name:      "sha256-two-block",
			Algorithm: "sha256",
			Input:     "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq",
			Digest:    "248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1",
		},
		{
			Name:      "sha256-million-a",
			Algorithm: "sha256",
			Repeat:    &Repeat{Byte: "a", Count: 1000000},
			Digest:    "cdc76e5c9914fb9281a1c7e284d73e67f1809a48a497200e046d39ccc7112cd0",
		},
		{
			Name:      "sha512-empty",
			Algorithm: "sha512",
			Digest: "cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce" +
				"47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e",
		},
		{
			Name:      "sha512-abc",
			Algorithm: "sha512",
			Input:     "abc",
			Digest: "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a" +
				"2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f",
		},
		{
			Name:      "sha512-two-block",
			Algorithm: "sha512",
			Input: "abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmno" +
				"ijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu",
			Digest: "8e959b75dae313da8cf4f72814fc143f8f7779c6eb9f7fa17299aeadb6889018" +
				"501d289e4900f7e4331b99dec4b5433ac7d329eeb6dd26545e96e55b874be909",
		},
		{
			Name:      "sha512-million-a",
			Algorithm: "sha512",
			Repeat:    &Repeat{Byte: "a", Count: 1000000},
			Digest: "e718483d0ce769644e2e42c7bc15b4638e1f98b13b2044285632a803afa973eb" +
				"de0ff244877ea60a4cb0432ce577c31beb009c5c2c49aa2e4eadb217ad8cc09b",
		},
	}
}
