// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package sha2

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

// initial512 is the SHA-512 initial hash value: the first 64 bits of
// the fractional parts of the square roots of the first 8 primes.
var initial512 = [8]uint64{
	0x6a09e667f3bcc908, 0xbb67ae8584caa73b, 0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
	0x510e527fade682d1, 0x9b05688c2b3e6c1f, 0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
}

// digest512 is the running state of a SHA-512 computation. The layout
// mirrors digest256 with 64-bit words and a 128-byte block.
type digest512 struct {
	h   [8]uint64
	x   [BlockSize512]byte
	nx  int
	len uint64
}

// New512 returns a new streaming SHA-512 digest.
func New512() Hash {
	d := new(digest512)
	d.Reset()
	return d
}

// Sum512 returns the SHA-512 digest of data in one shot.
func Sum512(data []byte) [Size512]byte {
	var d digest512
	d.Reset()
	d.Write(data)
	return d.checkSum()
}

func (d *digest512) Reset() {
	d.h = initial512
	d.nx = 0
	d.len = 0
}

func (d *digest512) Size() int      { return Size512 }
func (d *digest512) BlockSize() int { return BlockSize512 }
func (d *digest512) Name() string   { return "sha512" }

// Write feeds p into the digest. See digest256.Write; the structure is
// identical with a 128-byte block.
func (d *digest512) Write(p []byte) (int, error) {
	written := len(p)
	d.len += uint64(written)

	if d.nx > 0 {
		n := copy(d.x[d.nx:], p)
		d.nx += n
		if d.nx == BlockSize512 {
			block512(&d.h, d.x[:])
			d.nx = 0
		}
		p = p[n:]
	}

	if len(p) >= BlockSize512 {
		n := len(p) &^ (BlockSize512 - 1)
		block512(&d.h, p[:n])
		p = p[n:]
	}

	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}
	return written, nil
}

// Sum appends the digest of everything written so far to in,
// finalizing a copy of the state so the caller can keep writing.
func (d *digest512) Sum(in []byte) []byte {
	snapshot := *d
	sum := snapshot.checkSum()
	return append(in, sum[:]...)
}

// HexSum returns the current digest as a lowercase hex string.
func (d *digest512) HexSum() string {
	snapshot := *d
	sum := snapshot.checkSum()
	return hex.EncodeToString(sum[:])
}

// Clone returns an independent copy of the digest.
func (d *digest512) Clone() Hash {
	clone := *d
	return &clone
}

// checkSum consumes the receiver. SHA-512 reserves a 128-bit length
// field; the upper word is derived from the byte counter's high bits
// (len>>61 is the bit count shifted past 64), so the encoding is exact
// for every input length a uint64 byte counter can represent.
func (d *digest512) checkSum() [Size512]byte {
	length := d.len

	// Pad so the padded length is 112 mod 128, leaving 16 bytes for
	// the length field.
	var pad [BlockSize512 + 16]byte
	pad[0] = 0x80
	var n uint64
	if length%128 < 112 {
		n = 112 - length%128
	} else {
		n = 128 + 112 - length%128
	}
	binary.BigEndian.PutUint64(pad[n:], length>>61)
	binary.BigEndian.PutUint64(pad[n+8:], length<<3)
	d.Write(pad[: n+16 : n+16])

	if d.nx != 0 {
		panic("sha2: partial block after final padding")
	}

	var sum [Size512]byte
	for i, word := range d.h {
		binary.BigEndian.PutUint64(sum[i*8:], word)
	}
	return sum
}

const (
	magic512         = "sha2\x02"
	marshaledSize512 = len(magic512) + 8*8 + BlockSize512 + 8
)

// MarshalBinary serializes the in-flight hash state so it can be
// persisted and resumed later with UnmarshalBinary.
func (d *digest512) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, marshaledSize512)
	b = append(b, magic512...)
	for _, word := range d.h {
		b = binary.BigEndian.AppendUint64(b, word)
	}
	b = append(b, d.x[:d.nx]...)
	b = b[:len(b)+len(d.x)-d.nx] // remaining buffer bytes, already zero
	b = binary.BigEndian.AppendUint64(b, d.len)
	return b, nil
}

// UnmarshalBinary restores state previously produced by MarshalBinary.
func (d *digest512) UnmarshalBinary(b []byte) error {
	if len(b) < len(magic512) || string(b[:len(magic512)]) != magic512 {
		return fmt.Errorf("sha2: invalid sha512 state identifier")
	}
	if len(b) != marshaledSize512 {
		return fmt.Errorf("sha2: sha512 state is %d bytes, want %d", len(b), marshaledSize512)
	}
	b = b[len(magic512):]
	for i := range d.h {
		d.h[i] = binary.BigEndian.Uint64(b)
		b = b[8:]
	}
	b = b[copy(d.x[:], b):]
	d.len = binary.BigEndian.Uint64(b)
	d.nx = int(d.len % BlockSize512)
	return nil
}
