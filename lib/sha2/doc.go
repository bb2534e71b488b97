// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package sha2 implements the SHA-256 and SHA-512 hash algorithms
// defined in FIPS 180-4 as incremental streaming digests.
//
// Both digests implement the standard [hash.Hash] interface extended
// with algorithm metadata ([Hash]): Write accepts input of any length
// and any chunking and never fails, Sum and HexSum read the digest of
// everything written so far without disturbing the running state, so a
// caller may interleave Sum and Write calls freely. Memory use is fixed
// per digest (one block buffer, eight state words, a length counter)
// regardless of how much data has been hashed, and Write performs no
// heap allocation: whole blocks are compressed directly from the
// caller's slice and only a trailing partial block is buffered.
//
// Digests are constructed directly ([New256], [New512]), by algorithm
// name ([New]), or implicitly via the one-shot helpers [Sum256] and
// [Sum512]. Both digests also implement [encoding.BinaryMarshaler] and
// [encoding.BinaryUnmarshaler], so in-flight hash state can be
// persisted and resumed.
//
// A digest is a single-writer object: it is not safe for concurrent
// mutation without external synchronization. Independent digests share
// nothing and may be used from any number of goroutines.
package sha2
