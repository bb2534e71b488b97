// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package hashfile streams files and readers through the sha2 digest
// engine. The engine itself performs no I/O; this package owns the
// file handling so digests of large files use constant memory (one
// block buffer plus the copy buffer) regardless of file size.
package hashfile

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/bureau-foundation/sha2/lib/sha2"
)

// HashFile computes the named algorithm's digest of the file at path.
// The file is streamed through the digest via io.Copy.
func HashFile(algorithm, path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s for hashing: %w", path, err)
	}
	defer file.Close()

	digest, err := HashReader(algorithm, file)
	if err != nil {
		return nil, fmt.Errorf("hashing %s: %w", path, err)
	}
	return digest, nil
}

// HashReader computes the named algorithm's digest of everything read
// from r.
func HashReader(algorithm string, r io.Reader) ([]byte, error) {
	digest, err := sha2.New(algorithm, nil)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(digest, r); err != nil {
		return nil, fmt.Errorf("hashing stream: %w", err)
	}
	return digest.Sum(nil), nil
}

// FormatDigest returns the hex-encoded string representation of a
// digest. This is the canonical format used in CLI output and
// vector files.
func FormatDigest(digest []byte) string {
	return hex.EncodeToString(digest)
}

// ParseDigest parses a hex-encoded digest string, validating the
// encoding and that its length matches the named algorithm.
func ParseDigest(algorithm, hexString string) ([]byte, error) {
	reference, err := sha2.New(algorithm, nil)
	if err != nil {
		return nil, err
	}
	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		return nil, fmt.Errorf("parsing %s digest: %w", algorithm, err)
	}
	if len(decoded) != reference.Size() {
		return nil, fmt.Errorf("%s digest is %d bytes, want %d", algorithm, len(decoded), reference.Size())
	}
	return decoded, nil
}
