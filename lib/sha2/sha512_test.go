// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package sha2

import (
	"bytes"
	"crypto/sha512"
	"encoding"
	"fmt"
	"strings"
	"testing"
)

var sha512Vectors = []struct {
	name  string
	input string
	want  string
}{
	{"empty", "",
		"cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce" +
			"47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e"},
	{"abc", "abc",
		"ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a" +
			"2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f"},
	{"two-block",
		"abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmno" +
			"ijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu",
		"8e959b75dae313da8cf4f72814fc143f8f7779c6eb9f7fa17299aeadb6889018" +
			"501d289e4900f7e4331b99dec4b5433ac7d329eeb6dd26545e96e55b874be909"},
	{"fox", "The quick brown fox jumps over the lazy dog",
		"07e547d9586f6a73f73fbac0435ed76951218fb7d0c8d788a309d785436bbb64" +
			"2e93a252a954f23912547d1e8a3b5ed6e1bfd7097821233fa0538f3db854fee6"},
	{"million-a", strings.Repeat("a", 1000000),
		"e718483d0ce769644e2e42c7bc15b4638e1f98b13b2044285632a803afa973eb" +
			"de0ff244877ea60a4cb0432ce577c31beb009c5c2c49aa2e4eadb217ad8cc09b"},
}

func TestSum512Vectors(t *testing.T) {
	for _, vector := range sha512Vectors {
		digest := New512()
		digest.Write([]byte(vector.input))
		if got := digest.HexSum(); got != vector.want {
			t.Errorf("%s: HexSum = %s, want %s", vector.name, got, vector.want)
		}

		oneShot := Sum512([]byte(vector.input))
		if !bytes.Equal(oneShot[:], digest.Sum(nil)) {
			t.Errorf("%s: Sum512 disagrees with streaming digest", vector.name)
		}
	}
}

func TestVectorConstants512(t *testing.T) {
	// The expected digests above are transcribed by hand; recompute
	// each with the standard library so a transcription slip fails
	// here with a clear message instead of implicating the engine.
	for _, vector := range sha512Vectors {
		want := sha512.Sum512([]byte(vector.input))
		if got := fmt.Sprintf("%x", want); got != vector.want {
			t.Errorf("%s: expected digest constant is wrong, stdlib says %s", vector.name, got)
		}
	}
}

func TestAgainstStdlib512(t *testing.T) {
	// Lengths straddling the 128-byte block and the padding cutoffs
	// at 111/112/113.
	lengths := []int{0, 1, 63, 110, 111, 112, 113, 127, 128, 129, 255, 256, 257, 1000, 4096, 1 << 20}
	for _, n := range lengths {
		content := testPattern(n)
		got := Sum512(content)
		want := sha512.Sum512(content)
		if got != want {
			t.Errorf("length %d: Sum512 = %x, want %x", n, got, want)
		}
	}
}

func TestChunkingInvariance512(t *testing.T) {
	content := testPattern(2*BlockSize512 + 33)
	want := Sum512(content)

	for split := 0; split <= len(content); split++ {
		digest := New512()
		digest.Write(content[:split])
		digest.Write(content[split:])
		if !bytes.Equal(digest.Sum(nil), want[:]) {
			t.Fatalf("split %d: chunked digest differs from one-shot", split)
		}
	}
}

func TestSumDoesNotConsume512(t *testing.T) {
	digest := New512()
	digest.Write([]byte("hello "))

	first := digest.Sum(nil)
	second := digest.Sum(nil)
	if !bytes.Equal(first, second) {
		t.Errorf("consecutive Sums differ: %x then %x", first, second)
	}

	digest.Write([]byte("world"))
	want := Sum512([]byte("hello world"))
	if !bytes.Equal(digest.Sum(nil), want[:]) {
		t.Error("Write after Sum does not continue from the pre-Sum state")
	}
}

func TestMetadata512(t *testing.T) {
	digest := New512()
	if got := digest.Size(); got != 64 {
		t.Errorf("Size = %d, want 64", got)
	}
	if got := digest.BlockSize(); got != 128 {
		t.Errorf("BlockSize = %d, want 128", got)
	}
	if got := digest.Name(); got != "sha512" {
		t.Errorf("Name = %q, want %q", got, "sha512")
	}
}

func TestMultiBlock512(t *testing.T) {
	// 1000 bytes spans several 128-byte blocks, exercising the
	// chained compression beyond a single block.
	content := bytes.Repeat([]byte{'a'}, 1000)
	got := Sum512(content)
	want := sha512.Sum512(content)
	if got != want {
		t.Errorf("Sum512(1000 x 'a') = %x, want %x", got, want)
	}
}

func TestMarshalResume512(t *testing.T) {
	content := testPattern(2*BlockSize512 + 71)

	half := len(content) / 2
	first := New512()
	first.Write(content[:half])

	state, err := first.(encoding.BinaryMarshaler).MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}

	resumed := New512()
	if err := resumed.(encoding.BinaryUnmarshaler).UnmarshalBinary(state); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	resumed.Write(content[half:])

	want := Sum512(content)
	if !bytes.Equal(resumed.Sum(nil), want[:]) {
		t.Error("resumed digest differs from straight-through digest")
	}
}

func TestStateNotInterchangeable(t *testing.T) {
	// A sha256 state blob must not unmarshal into a sha512 digest and
	// vice versa.
	d256 := New256()
	d256.Write([]byte("abc"))
	state, err := d256.(encoding.BinaryMarshaler).MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}

	d512 := New512()
	if err := d512.(encoding.BinaryUnmarshaler).UnmarshalBinary(state); err == nil {
		t.Error("sha512 digest accepted a sha256 state blob")
	}
}

func BenchmarkSum512(b *testing.B) {
	content := testPattern(8 * 1024)
	b.SetBytes(int64(len(content)))
	b.ReportAllocs()
	for b.Loop() {
		Sum512(content)
	}
}
