// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package sha2

import (
	"errors"
	"fmt"
	"hash"
	"strings"
)

// Digest and block sizes in bytes.
const (
	// Size256 is the size of a SHA-256 digest.
	Size256 = 32
	// BlockSize256 is the SHA-256 block size.
	BlockSize256 = 64
	// Size512 is the size of a SHA-512 digest.
	Size512 = 64
	// BlockSize512 is the SHA-512 block size.
	BlockSize512 = 128
)

// ErrUnknownAlgorithm is returned by [New] for any algorithm name other
// than "sha256" or "sha512".
var ErrUnknownAlgorithm = errors.New("unknown hash algorithm")

// Hash is the streaming digest interface implemented by both
// algorithms. It extends [hash.Hash] with algorithm metadata and
// non-destructive observation helpers.
type Hash interface {
	hash.Hash

	// Name returns the canonical lowercase algorithm name,
	// "sha256" or "sha512".
	Name() string

	// HexSum returns the digest of everything written so far as a
	// lowercase hex string. Like Sum, it leaves the running state
	// untouched: further Writes continue from where they left off.
	HexSum() string

	// Clone returns an independent copy of the digest. Writes to
	// the clone and the original do not affect each other.
	Clone() Hash
}

// New constructs a streaming digest by algorithm name. Recognized
// names are "sha256" and "sha512" (case-insensitive). If initial is
// non-empty it is fed to the new digest, equivalent to one Write call.
func New(name string, initial []byte) (Hash, error) {
	var digest Hash
	switch strings.ToLower(name) {
	case "sha256":
		digest = New256()
	case "sha512":
		digest = New512()
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownAlgorithm)
	}
	if len(initial) > 0 {
		digest.Write(initial)
	}
	return digest, nil
}

// Names returns the algorithm names recognized by [New], in the order
// they are documented. Callers use this for CLI help and validation
// messages rather than hard-coding the list.
func Names() []string {
	return []string{"sha256", "sha512"}
}
