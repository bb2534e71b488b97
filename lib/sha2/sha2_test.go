// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package sha2

import (
	"bytes"
	"errors"
	"testing"
)

func TestNewDispatch(t *testing.T) {
	data := []byte("dispatch check")

	for _, name := range Names() {
		digest, err := New(name, data)
		if err != nil {
			t.Fatalf("New(%q): %v", name, err)
		}
		if got := digest.Name(); got != name {
			t.Errorf("New(%q).Name() = %q", name, got)
		}

		// Dispatching by name must be exactly equivalent to the
		// direct constructor fed the same data.
		direct, err := New(name, nil)
		if err != nil {
			t.Fatalf("New(%q, nil): %v", name, err)
		}
		direct.Write(data)
		if !bytes.Equal(digest.Sum(nil), direct.Sum(nil)) {
			t.Errorf("%s: initial-data construction differs from construct+Write", name)
		}
	}
}

func TestNewCaseInsensitive(t *testing.T) {
	upper, err := New("SHA256", []byte("abc"))
	if err != nil {
		t.Fatalf("New(SHA256): %v", err)
	}
	lower, err := New("sha256", []byte("abc"))
	if err != nil {
		t.Fatalf("New(sha256): %v", err)
	}
	if !bytes.Equal(upper.Sum(nil), lower.Sum(nil)) {
		t.Error("case-insensitive dispatch produced a different digest")
	}
}

func TestNewUnknownAlgorithm(t *testing.T) {
	for _, name := range []string{"", "md5", "sha1", "sha384", "sha-256", "unknown"} {
		_, err := New(name, nil)
		if err == nil {
			t.Errorf("New(%q) succeeded, want error", name)
			continue
		}
		if !errors.Is(err, ErrUnknownAlgorithm) {
			t.Errorf("New(%q) error = %v, want ErrUnknownAlgorithm", name, err)
		}
	}
}

func TestNewDirectEquivalence(t *testing.T) {
	data := []byte("equivalence")

	byName, err := New("sha256", data)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	direct := New256()
	direct.Write(data)
	if !bytes.Equal(byName.Sum(nil), direct.Sum(nil)) {
		t.Error("New(\"sha256\") differs from New256")
	}

	byName, err = New("sha512", data)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	direct = New512()
	direct.Write(data)
	if !bytes.Equal(byName.Sum(nil), direct.Sum(nil)) {
		t.Error("New(\"sha512\") differs from New512")
	}
}

func TestCloneIndependence(t *testing.T) {
	for _, name := range Names() {
		original, err := New(name, []byte("shared prefix "))
		if err != nil {
			t.Fatalf("New(%q): %v", name, err)
		}
		clone := original.Clone()

		// The clone starts at the original's current state.
		if !bytes.Equal(original.Sum(nil), clone.Sum(nil)) {
			t.Errorf("%s: clone digest differs at the fork point", name)
		}

		// Diverging writes must not leak between the two.
		original.Write([]byte("left"))
		clone.Write([]byte("right"))

		wantOriginal, err := New(name, []byte("shared prefix left"))
		if err != nil {
			t.Fatalf("New(%q): %v", name, err)
		}
		wantClone, err := New(name, []byte("shared prefix right"))
		if err != nil {
			t.Fatalf("New(%q): %v", name, err)
		}
		if !bytes.Equal(original.Sum(nil), wantOriginal.Sum(nil)) {
			t.Errorf("%s: original was affected by writes to the clone", name)
		}
		if !bytes.Equal(clone.Sum(nil), wantClone.Sum(nil)) {
			t.Errorf("%s: clone was affected by writes to the original", name)
		}
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 2 || names[0] != "sha256" || names[1] != "sha512" {
		t.Errorf("Names() = %v, want [sha256 sha512]", names)
	}
	for _, name := range names {
		if _, err := New(name, nil); err != nil {
			t.Errorf("New(%q): %v", name, err)
		}
	}
}
