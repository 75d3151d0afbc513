// Copyright © 2026 libmonospaceif contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: history/mem.go
// Summary: Slice-backed default Store implementation.

package history

// memStore is a simple Store backed by an append-only paragraph slice,
// grounded on the teacher's InMemoryBufferStore (_teacher_ref/buffer_store.go):
// same "interface plus trivial slice-backed default" shape, generalised from
// a single cell-buffer snapshot to an append-only rewindable log.
type memStore struct {
	paragraphs []Paragraph
}

// NewMemStore constructs an empty in-memory output-history store.
func NewMemStore() Store {
	return &memStore{}
}

func (s *memStore) Append(p Paragraph) {
	s.paragraphs = append(s.paragraphs, p)
}

func (s *memStore) Len() int {
	return len(s.paragraphs)
}

func (s *memStore) NewCursor() Cursor {
	return &memCursor{store: s, pos: len(s.paragraphs)}
}

// memCursor walks s.paragraphs. pos addresses the next paragraph a
// RepeatParagraphs call would read; it starts at len(paragraphs), a
// sentinel meaning "nothing rewound yet" (chsl == 0 in the adapter's
// terms). RewindParagraph always moves one step further into the past.
// RepeatParagraphs(n) reads paragraphs[pos..pos+n-1] moving towards the
// present; a dry run (used by refresh case 0/1 to measure or provisionally
// peek the paragraph a rewind just reached) leaves pos untouched so the
// next RewindParagraph steps one further back, while a real run (case 2/3's
// bare forward walk, and case 1's final bulk replay) advances pos by n so
// repeated calls without an intervening rewind keep moving forward.
type memCursor struct {
	store *memStore
	pos   int
}

func (c *memCursor) RewindParagraph() int {
	if c.pos <= 0 {
		return -1
	}
	c.pos--
	if c.pos == 0 {
		return 1
	}
	return 0
}

func (c *memCursor) RepeatParagraphs(n int, wantNewlines bool, dryRun bool, sink func(Paragraph)) int {
	if n <= 0 {
		return 0
	}
	for i := 0; i < n; i++ {
		idx := c.pos + i
		if idx < 0 || idx >= len(c.store.paragraphs) {
			return -1
		}
		p := c.store.paragraphs[idx]
		if !wantNewlines {
			p.NewlineTerminated = false
		}
		if sink != nil {
			sink(p)
		}
	}
	if !dryRun {
		c.pos += n
	}
	return 0
}

func (c *memCursor) IsOutputAtFrontIndex() bool {
	return c.pos <= 0
}

func (c *memCursor) Destroy() {
	c.store = nil
}

var _ Store = (*memStore)(nil)
var _ Cursor = (*memCursor)(nil)
