// Copyright © 2026 libmonospaceif contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/status_test.go
// Summary: ShowStatus formatting tests.

package screen

import (
	"strings"
	"testing"
)

func newStatusTestAdapter(t *testing.T, width int) (*Adapter, *fakeBackend) {
	t.Helper()
	return newTestAdapter(t, width, 6, 3)
}

func TestShowStatusScoreAndTurnLayout(t *testing.T) {
	a, b := newStatusTestAdapter(t, 40)
	if r := a.ShowStatus("Kitchen", ScoreAndTurn, 42, 7); r.Kind != Ok {
		t.Fatalf("show_status: %v", r)
	}

	row := b.rowString(0)
	if !strings.HasPrefix(row, " Kitchen") {
		t.Fatalf("row = %q, want prefix %q", row, " Kitchen")
	}
	want := "Score: 42  Turns: 7 "
	if !strings.HasSuffix(row, want) {
		t.Fatalf("row = %q, want suffix %q", row, want)
	}
}

func TestShowStatusTimeLayout(t *testing.T) {
	a, b := newStatusTestAdapter(t, 40)
	if r := a.ShowStatus("Cave", Time, 9, 5); r.Kind != Ok {
		t.Fatalf("show_status: %v", r)
	}

	row := b.rowString(0)
	if !strings.HasPrefix(row, " Cave") {
		t.Fatalf("row = %q, want prefix %q", row, " Cave")
	}
	if !strings.HasSuffix(row, "09:05") {
		t.Fatalf("row = %q, want suffix %q", row, "09:05")
	}
}

// TestShowStatusTruncatesRoomDescriptionOnOverlap covers the case where the
// room description alone would overrun the right-hand group: it must be
// truncated rather than overwriting the score/turns text.
func TestShowStatusTruncatesRoomDescriptionOnOverlap(t *testing.T) {
	a, b := newStatusTestAdapter(t, 20)
	long := strings.Repeat("X", 30)
	if r := a.ShowStatus(long, ScoreAndTurn, 1, 1); r.Kind != Ok {
		t.Fatalf("show_status: %v", r)
	}

	row := b.rowString(0)
	if len([]rune(row)) != 20 {
		t.Fatalf("row length = %d, want 20", len([]rune(row)))
	}
	want := "Score: 1  Turns: 1 "
	if !strings.HasSuffix(row, want) {
		t.Fatalf("row = %q, want suffix %q", row, want)
	}
	if strings.Contains(row, "XScore") {
		t.Fatalf("room description ran into the score group: %q", row)
	}
}

func TestShowStatusNoopAboveVersion3(t *testing.T) {
	a, b := newTestAdapter(t, 40, 6, 5)
	if r := a.ShowStatus("Kitchen", ScoreAndTurn, 1, 1); r.Kind != Ok {
		t.Fatalf("show_status above v3 should be a no-op ok, got %v", r)
	}
	for i := 0; i < 6; i++ {
		if got := b.rowString(i); strings.TrimRight(got, " ") != "" {
			t.Fatalf("row %d = %q, want untouched blank row above v3", i, got)
		}
	}
}

// TestShowStatusCachesForRefreshScreen confirms RefreshScreen replays the
// last ShowStatus call after a resize (spec.md §4.G).
func TestShowStatusCachesForRefreshScreen(t *testing.T) {
	a, b := newStatusTestAdapter(t, 40)
	if r := a.ShowStatus("Kitchen", ScoreAndTurn, 42, 7); r.Kind != Ok {
		t.Fatalf("show_status: %v", r)
	}
	b.ClearArea(1, 1, 40, 1)
	if strings.TrimRight(b.rowString(0), " ") != "" {
		t.Fatalf("setup: status row not cleared before refresh")
	}

	if r := a.RefreshScreen(); r.Kind != Ok {
		t.Fatalf("refresh_screen: %v", r)
	}

	row := b.rowString(0)
	if !strings.HasPrefix(row, " Kitchen") {
		t.Fatalf("status row not restored by refresh_screen: %q", row)
	}
}
