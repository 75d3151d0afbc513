// Copyright © 2026 libmonospaceif contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/window.go
// Summary: Per-window state (spec.md §3) and window-management operations.

package screen

import "github.com/chrender/libmonospaceif/driver"

// WindowID identifies a Z-machine window. 0 is always the main text area.
type WindowID int

const statusWindowID WindowID = -1 // internal bookkeeping slot, never exposed

// window is the per-Z-window record of spec.md §3.
type window struct {
	id WindowID

	// Geometry (1-based).
	ypos, xpos   int
	ysize, xsize int
	ycursorpos, xcursorpos int

	leftMargin, rightMargin int

	outputStyle    driver.Style
	bufferedStyle  driver.Style
	outputFG, outputBG     driver.Colour
	bufferedFG, bufferedBG driver.Colour

	wrapping  bool
	buffering bool
	wrap      wrapperHandle

	consecutiveLinesOutput int

	// Transient refresh bookkeeping (spec.md §4.C). For linesToSkip and
	// remainingLinesToFill -1 means "inactive"; the margins are 0 when
	// inactive.
	upperMargin          int
	lowerMargin          int
	linesToSkip          int
	remainingLinesToFill int

	scrollbackTopLine int

	// contentBuf snapshots what has been drawn to this window, cell by
	// cell, so it can be repainted after a resize without a history to
	// replay (spec.md §4.G). Only kept for non-scrollable windows; window
	// 0 redraws from the output-history store instead.
	contentBuf [][]contentCell
}

// contentCell is one remembered screen cell of a non-history window.
type contentCell struct {
	r          rune
	style      driver.Style
	fg, bg     driver.Colour
}

func newWindow(id WindowID) *window {
	return &window{
		id:                   id,
		ycursorpos:           1,
		xcursorpos:           1,
		linesToSkip:          -1,
		remainingLinesToFill: -1,
	}
}

// resizeContentBuf (re)allocates the snapshot buffer to the window's
// current size, preserving whatever cells still fit.
func (w *window) resizeContentBuf() {
	if w.id == 0 {
		return
	}
	buf := make([][]contentCell, w.ysize)
	for y := range buf {
		buf[y] = make([]contentCell, w.xsize)
		for x := range buf[y] {
			buf[y][x].r = ' '
		}
		if y < len(w.contentBuf) {
			copy(buf[y], w.contentBuf[y])
		}
	}
	w.contentBuf = buf
}

// recordCells snapshots a run of characters written at (row, col) with the
// given style/colour, clipping silently at the window edge.
func (w *window) recordCells(row, col int, chunk []rune, style driver.Style, fg, bg driver.Colour) {
	if w.id == 0 || row < 1 || row > len(w.contentBuf) {
		return
	}
	line := w.contentBuf[row-1]
	for i, r := range chunk {
		c := col - 1 + i
		if c < 0 || c >= len(line) {
			continue
		}
		line[c] = contentCell{r: r, style: style, fg: fg, bg: bg}
	}
}

// clampCursor enforces invariant 1 (spec.md §8): 1 <= cursor <= size on both
// axes.
func (w *window) clampCursor() {
	if w.ycursorpos < 1 {
		w.ycursorpos = 1
	}
	if w.ycursorpos > w.ysize {
		w.ycursorpos = w.ysize
	}
	if w.xcursorpos < 1 {
		w.xcursorpos = 1
	}
	if w.xcursorpos > w.xsize {
		w.xcursorpos = w.xsize
	}
}

// contentWidth is the width the window's wrapper should wrap to.
func (w *window) contentWidth() int {
	cw := w.xsize - w.leftMargin - w.rightMargin
	if cw < 0 {
		cw = 0
	}
	return cw
}

// enforceMarginInvariant forces both margins to 0 if they would leave no
// writable columns (spec.md §3 invariant, §8 boundary behaviour).
func (w *window) enforceMarginInvariant() {
	if w.wrapping && w.leftMargin+w.rightMargin >= w.xsize {
		w.leftMargin = 0
		w.rightMargin = 0
	}
}

func (w *window) resetRefreshBookkeeping() {
	w.upperMargin = 0
	w.lowerMargin = 0
	w.linesToSkip = -1
	w.remainingLinesToFill = -1
}
