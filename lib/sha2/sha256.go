// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package sha2

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

// initial256 is the SHA-256 initial hash value: the first 32 bits of
// the fractional parts of the square roots of the first 8 primes.
var initial256 = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

// digest256 is the running state of a SHA-256 computation: the chaining
// value, a fixed one-block buffer holding the unprocessed tail (always
// strictly shorter than a block), and the total byte count written.
type digest256 struct {
	h   [8]uint32
	x   [BlockSize256]byte
	nx  int
	len uint64
}

// New256 returns a new streaming SHA-256 digest.
func New256() Hash {
	d := new(digest256)
	d.Reset()
	return d
}

// Sum256 returns the SHA-256 digest of data in one shot.
func Sum256(data []byte) [Size256]byte {
	var d digest256
	d.Reset()
	d.Write(data)
	return d.checkSum()
}

func (d *digest256) Reset() {
	d.h = initial256
	d.nx = 0
	d.len = 0
}

func (d *digest256) Size() int      { return Size256 }
func (d *digest256) BlockSize() int { return BlockSize256 }
func (d *digest256) Name() string   { return "sha256" }

// Write feeds p into the digest. It accepts any length and any
// chunking, updates the byte counter before any block boundary is
// reached, and never returns an error. Whole blocks are compressed
// directly from p; only a trailing partial block is copied into the
// fixed buffer.
func (d *digest256) Write(p []byte) (int, error) {
	written := len(p)
	d.len += uint64(written)

	// Top up a partially filled buffer first.
	if d.nx > 0 {
		n := copy(d.x[d.nx:], p)
		d.nx += n
		if d.nx == BlockSize256 {
			block256(&d.h, d.x[:])
			d.nx = 0
		}
		p = p[n:]
	}

	// Compress whole blocks straight from the caller's slice.
	if len(p) >= BlockSize256 {
		n := len(p) &^ (BlockSize256 - 1)
		block256(&d.h, p[:n])
		p = p[n:]
	}

	// Buffer the remainder (< one block).
	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}
	return written, nil
}

// Sum appends the digest of everything written so far to in. The
// finalization (padding, length field, final compression) runs on a
// copy of the state, so the caller can keep writing and summing.
func (d *digest256) Sum(in []byte) []byte {
	snapshot := *d
	sum := snapshot.checkSum()
	return append(in, sum[:]...)
}

// HexSum returns the current digest as a lowercase hex string.
func (d *digest256) HexSum() string {
	snapshot := *d
	sum := snapshot.checkSum()
	return hex.EncodeToString(sum[:])
}

// Clone returns an independent copy of the digest.
func (d *digest256) Clone() Hash {
	clone := *d
	return &clone
}

// checkSum consumes the receiver: it appends the standard padding (one
// 0x80 byte, zeros up to the length field, then the total bit length
// big-endian) and serializes the final state words. Callers that need
// the live state preserved must operate on a copy.
func (d *digest256) checkSum() [Size256]byte {
	length := d.len

	// Pad so the padded length is 56 mod 64, leaving exactly 8 bytes
	// for the 64-bit bit-length field. The 0x80 marker byte counts
	// toward the pad, so at least one pad byte is always written.
	var pad [BlockSize256 + 8]byte
	pad[0] = 0x80
	var n uint64
	if length%64 < 56 {
		n = 56 - length%64
	} else {
		n = 64 + 56 - length%64
	}
	binary.BigEndian.PutUint64(pad[n:], length<<3)
	d.Write(pad[: n+8 : n+8])

	if d.nx != 0 {
		panic("sha2: partial block after final padding")
	}

	var sum [Size256]byte
	for i, word := range d.h {
		binary.BigEndian.PutUint32(sum[i*4:], word)
	}
	return sum
}

const (
	magic256         = "sha2\x01"
	marshaledSize256 = len(magic256) + 8*4 + BlockSize256 + 8
)

// MarshalBinary serializes the in-flight hash state so it can be
// persisted and resumed later with UnmarshalBinary.
func (d *digest256) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, marshaledSize256)
	b = append(b, magic256...)
	for _, word := range d.h {
		b = binary.BigEndian.AppendUint32(b, word)
	}
	b = append(b, d.x[:d.nx]...)
	b = b[:len(b)+len(d.x)-d.nx] // remaining buffer bytes, already zero
	b = binary.BigEndian.AppendUint64(b, d.len)
	return b, nil
}

// UnmarshalBinary restores state previously produced by MarshalBinary.
func (d *digest256) UnmarshalBinary(b []byte) error {
	if len(b) < len(magic256) || string(b[:len(magic256)]) != magic256 {
		return fmt.Errorf("sha2: invalid sha256 state identifier")
	}
	if len(b) != marshaledSize256 {
		return fmt.Errorf("sha2: sha256 state is %d bytes, want %d", len(b), marshaledSize256)
	}
	b = b[len(magic256):]
	for i := range d.h {
		d.h[i] = binary.BigEndian.Uint32(b)
		b = b[4:]
	}
	b = b[copy(d.x[:], b):]
	d.len = binary.BigEndian.Uint64(b)
	d.nx = int(d.len % BlockSize256)
	return nil
}
