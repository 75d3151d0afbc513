// Copyright © 2026 libmonospaceif contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmdhist/cmdhist_test.go
// Summary: Ring recall-order tests.

package cmdhist

import "testing"

func TestRingRecallsNewestFirst(t *testing.T) {
	r := NewRing(10)
	r.Add([]rune("first"))
	r.Add([]rune("second"))
	r.Add([]rune("third"))

	if line, ok := r.At(1); !ok || string(line) != "third" {
		t.Fatalf("At(1) = %q, %v, want %q, true", line, ok, "third")
	}
	if line, ok := r.At(2); !ok || string(line) != "second" {
		t.Fatalf("At(2) = %q, %v, want %q, true", line, ok, "second")
	}
	if line, ok := r.At(3); !ok || string(line) != "first" {
		t.Fatalf("At(3) = %q, %v, want %q, true", line, ok, "first")
	}
}

func TestRingAtZeroAndPastOldestFail(t *testing.T) {
	r := NewRing(10)
	r.Add([]rune("only"))

	if _, ok := r.At(0); ok {
		t.Fatalf("At(0) should report false (index 0 is the live buffer, not ring-owned)")
	}
	if _, ok := r.At(2); ok {
		t.Fatalf("At(2) should report false, only one entry recorded")
	}
}

func TestRingEvictsOldestPastCapacity(t *testing.T) {
	r := NewRing(2)
	r.Add([]rune("one"))
	r.Add([]rune("two"))
	r.Add([]rune("three"))

	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", r.Len())
	}
	if line, ok := r.At(1); !ok || string(line) != "three" {
		t.Fatalf("At(1) = %q, %v, want %q, true", line, ok, "three")
	}
	if line, ok := r.At(2); !ok || string(line) != "two" {
		t.Fatalf("At(2) = %q, %v, want %q, true", line, ok, "two")
	}
	if _, ok := r.At(3); ok {
		t.Fatalf("At(3) should report false, oldest entry was evicted")
	}
}

func TestRingAddCopiesInput(t *testing.T) {
	r := NewRing(10)
	src := []rune("mutable")
	r.Add(src)
	src[0] = 'X'

	line, ok := r.At(1)
	if !ok || string(line) != "mutable" {
		t.Fatalf("At(1) = %q, %v, want %q unaffected by later mutation of the source slice", line, ok, "mutable")
	}
}

func TestNewRingDefaultsNonPositiveMax(t *testing.T) {
	r := NewRing(0)
	for i := 0; i < 100; i++ {
		r.Add([]rune("x"))
	}
	if r.Len() != 64 {
		t.Fatalf("Len() = %d, want 64 (default ring size)", r.Len())
	}
}
