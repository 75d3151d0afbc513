// Copyright © 2026 libmonospaceif contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: zscii/zscii_test.go
// Summary: DefaultMapper round-trip tests.

package zscii

import "testing"

func TestDefaultMapperASCIIRoundTrip(t *testing.T) {
	m := NewDefaultMapper()
	for r := rune(32); r <= 126; r++ {
		b, ok := m.ToZSCII(r)
		if !ok {
			t.Fatalf("ToZSCII(%q) not ok", r)
		}
		if b != byte(r) {
			t.Fatalf("ToZSCII(%q) = %d, want %d", r, b, r)
		}
		if got := m.FromZSCII(b); got != r {
			t.Fatalf("FromZSCII(%d) = %q, want %q", b, got, r)
		}
	}
}

func TestDefaultMapperNewline(t *testing.T) {
	m := NewDefaultMapper()
	b, ok := m.ToZSCII('\n')
	if !ok || b != 13 {
		t.Fatalf("ToZSCII('\\n') = %d, %v, want 13, true", b, ok)
	}
	if got := m.FromZSCII(13); got != '\n' {
		t.Fatalf("FromZSCII(13) = %q, want newline", got)
	}
}

func TestDefaultMapperRejectsOutOfRangeRunes(t *testing.T) {
	m := NewDefaultMapper()
	for _, r := range []rune{0, 31, 127, 200, 0x1F600} {
		if _, ok := m.ToZSCII(r); ok {
			t.Fatalf("ToZSCII(%q) unexpectedly ok", r)
		}
	}
}

func TestCellWidth(t *testing.T) {
	if CellWidth('a') != 1 {
		t.Fatalf("CellWidth('a') != 1")
	}
	if CellWidth(0) != 0 {
		t.Fatalf("CellWidth(0) != 0, want 0 for a non-printing control rune")
	}
}
