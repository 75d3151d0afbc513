// Copyright © 2026 libmonospaceif contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: wrapper/reflow.go
// Summary: Default Wrapper built on muesli/reflow/wordwrap.

package wrapper

import (
	"github.com/muesli/ansi"
	"github.com/muesli/reflow/wordwrap"
)

// pendingMeta records a metadata callback queued mid-paragraph together with
// the visible-column position (summed via ansi.PrintableRuneWidth, so wide
// runes count for two) it was queued at, so Flush can fire it at the right
// point in the sunk stream rather than all at once.
type pendingMeta struct {
	afterWidth int
	cb         MetadataCallback
	ctx        int
	data       uint32
}

// reflowWrapper is the default Wrapper, built on muesli/reflow/wordwrap —
// the actual word-wrap dependency of the Adjective-Object-bubbletea pack
// member, reused here for the external wrapper-library role spec.md §6
// describes. reflow's Writer only exposes its fully wrapped content once
// closed, so Wrap buffers submitted runes and Flush re-wraps the pending
// buffer. A metadata callback queued by InsertMetadata must take effect at
// the exact horizontal position in the wrapped output where it was queued
// (spec.md §4.B, §5, §8 property 2), so Flush splits the buffer at each
// recorded position, wraps and sinks the run up to that point, fires the
// callback, then continues with the remainder — it never drains the
// pending callbacks before the text in front of them has reached the sink.
type reflowWrapper struct {
	width          int
	sink           Sink
	ctx            int
	hyphenate      bool
	buf            []rune
	submittedWidth int
	pending        []pendingMeta
	lineIndex      int
}

// NewFactory returns a Factory producing reflow-backed wrappers.
func NewFactory() Factory {
	return func(width int, sink Sink, ctx int, hyphenate bool) Wrapper {
		return &reflowWrapper{width: width, sink: sink, ctx: ctx, hyphenate: hyphenate}
	}
}

func (w *reflowWrapper) Wrap(text []rune) {
	for _, r := range text {
		w.buf = append(w.buf, r)
		w.submittedWidth += ansi.PrintableRuneWidth(string(r))
	}
}

func (w *reflowWrapper) Flush() {
	width := w.width
	if width <= 0 {
		width = 1
	}

	segStart, curWidth := 0, 0
	for _, m := range w.pending {
		idx, iw := segStart, curWidth
		for idx < len(w.buf) && iw < m.afterWidth {
			iw += ansi.PrintableRuneWidth(string(w.buf[idx]))
			idx++
		}
		w.sinkSegment(w.buf[segStart:idx], width)
		m.cb(m.ctx, m.data)
		segStart, curWidth = idx, iw
	}
	w.sinkSegment(w.buf[segStart:], width)

	w.buf = w.buf[:0]
	w.submittedWidth = 0
	w.pending = w.pending[:0]
}

func (w *reflowWrapper) sinkSegment(seg []rune, width int) {
	if len(seg) == 0 {
		return
	}
	wrapped := wordwrap.String(string(seg), width)
	w.sink(w.ctx, []rune(wrapped))
}

func (w *reflowWrapper) InsertMetadata(cb MetadataCallback, ctx int, data uint32) {
	w.pending = append(w.pending, pendingMeta{afterWidth: w.submittedWidth, cb: cb, ctx: ctx, data: data})
}

func (w *reflowWrapper) SetLineIndex(n int) {
	w.lineIndex = n
}

func (w *reflowWrapper) AdjustLineLength(n int) {
	w.width = n
}

func (w *reflowWrapper) Destroy() {
	w.buf = nil
	w.submittedWidth = 0
	w.pending = nil
}

var _ Wrapper = (*reflowWrapper)(nil)
