// Copyright © 2026 libmonospaceif contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: history/store.go
// Summary: Output-history Store/Cursor contract.

// Package history defines the output-history store contract (spec.md §6):
// a paragraph-addressable log of everything written to window 0, maintained
// by the interpreter core and replayed by the adapter's history-refresh
// engine to redraw the screen.
package history

// Paragraph is one rewindable unit of recorded output.
type Paragraph struct {
	Text             []rune
	NewlineTerminated bool
}

// Cursor walks backwards (and forwards) through a Store's paragraphs.
// Store implementations return a fresh Cursor positioned at the tail
// (the newest, not-yet-rewound position) whenever the interpreter produces
// new output, since any existing cursor would otherwise replay stale data.
type Cursor interface {
	// RewindParagraph steps the cursor one paragraph further into the past.
	// Returns 0 on success, 1 if this call reached the oldest recorded
	// paragraph (the cursor still moved), or a negative value if the store
	// is in an inconsistent state (see spec.md §7, History store
	// inconsistency).
	RewindParagraph() int

	// RepeatParagraphs reads up to n paragraphs starting from the cursor's
	// current position, moving forward (towards the present) as it goes.
	// wantNewlines controls whether the store appends the newline
	// terminator flag's effect; dryRun leaves the cursor's position
	// unchanged afterward (used to measure a paragraph's height, or to peek
	// the one a preceding RewindParagraph just reached, without consuming
	// it) while a real (non-dry) call advances the position by n so a bare
	// sequence of calls with no rewind in between walks forward through
	// successive paragraphs. The sink receives each paragraph in order.
	// Returns 0 on success, -1 if the front edge of history (the present)
	// was reached before n paragraphs were read.
	RepeatParagraphs(n int, wantNewlines bool, dryRun bool, sink func(Paragraph)) int

	// IsOutputAtFrontIndex reports whether the cursor is already at the
	// oldest recorded paragraph (rewind_paragraph would return negative).
	IsOutputAtFrontIndex() bool

	// Destroy releases the cursor. Safe to call multiple times.
	Destroy()
}

// Store is the output-history log itself.
type Store interface {
	// Append records a newly emitted paragraph. It does not move or
	// invalidate outstanding Cursors; the adapter recreates its history
	// cursor whenever new output arrives rather than relying on the store to
	// do so (spec.md §3, History cursor state).
	Append(p Paragraph)

	// NewCursor returns a cursor positioned at the tail of the log (chsl==0,
	// "no output shown yet" above the logical bottom).
	NewCursor() Cursor

	// Len reports the number of recorded paragraphs.
	Len() int
}
