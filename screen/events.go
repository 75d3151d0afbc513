// Copyright © 2026 libmonospaceif contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/events.go
// Summary: Backend resize-event handling.

package screen

import "github.com/chrender/libmonospaceif/driver"

// handleResize reacts to a backend-reported size change (spec.md §4.G):
// update stored dimensions, notify the interpreter, re-lay-out the windows,
// clamp cursors, adjust wrapper widths, and fully repaint.
func (a *Adapter) handleResize(width, height int) Result {
	if !a.linked {
		return ok()
	}
	if width == a.screenWidth && height == a.screenHeight {
		return ok() // resize commutativity: a no-op change repaints nothing extra
	}
	a.screenWidth, a.screenHeight = width, height
	a.resizeHook(width, height)

	top0 := 1
	if sw := a.windows[statusWindowID]; sw != nil {
		sw.xsize = width
		top0 = 2
	}

	splitSize := 0
	if w1 := a.windows[1]; w1 != nil && a.version != 6 {
		available := height - top0
		if w1.ysize > available {
			w1.ysize = available
		}
		if w1.ysize < 0 {
			w1.ysize = 0
		}
		splitSize = w1.ysize
	}

	for _, id := range a.windowOrder {
		w := a.windows[id]
		w.xsize = width
		switch id {
		case 0:
			w.ypos = top0 + splitSize
			w.ysize = height - top0 - splitSize
			if w.ysize < 0 {
				w.ysize = 0
			}
			w.scrollbackTopLine = w.ysize
		case 1:
			w.ypos = top0
		default:
			w.ysize = height
		}
		w.enforceMarginInvariant()
		w.clampCursor()
		w.resizeContentBuf()
		if w.wrap.w != nil {
			w.wrap.w.AdjustLineLength(w.contentWidth())
		}
	}
	return a.RefreshScreen()
}

// RefreshScreen performs the full repaint sequence of spec.md §4.G: erase
// window 0, replay history into it, redraw the V<=3 status line, then
// repaint the upper window from its remembered content.
func (a *Adapter) RefreshScreen() Result {
	w0 := a.windows[0]
	if w0 == nil {
		return geometryViolation("refresh_screen with no window 0")
	}
	a.eraseOneWindow(w0)
	a.Refresh(1, w0.ysize, true)

	if a.hasStatus && a.lastStatusValid {
		a.ShowStatus(a.lastStatusRoom, a.lastStatusMode, a.lastStatusP1, a.lastStatusP2)
	}

	a.redrawContentWindow(a.windows[1])
	a.backend.UpdateScreen()
	return ok()
}

// redrawContentWindow repaints w from its cell snapshot, coalescing runs of
// equal style/colour into single backend.Output calls per spec.md §4.G's
// "correct style/colour runs" requirement.
func (a *Adapter) redrawContentWindow(w *window) {
	if w == nil || len(w.contentBuf) == 0 {
		return
	}
	for row, line := range w.contentBuf {
		col := 0
		for col < len(line) {
			start := col
			cell := line[col]
			runeBuf := []rune{cell.r}
			col++
			for col < len(line) && line[col].style == cell.style && line[col].fg == cell.fg && line[col].bg == cell.bg {
				runeBuf = append(runeBuf, line[col].r)
				col++
			}
			a.backend.SetTextStyle(cell.style)
			a.backend.SetColour(cell.fg, cell.bg)
			a.backend.GotoYX(w.ypos+row, w.xpos+start)
			a.backend.Output(runeBuf)
		}
	}
	a.backend.SetTextStyle(w.outputStyle)
	a.backend.SetColour(w.outputFG, w.outputBG)
}

// waitForEvent reads one backend event, transparently handling WINCH by
// running the full resize path and looping (spec.md §4.G, §5 ordering).
func (a *Adapter) waitForEvent(timeoutMillis int) driver.Event {
	for {
		ev := a.backend.GetNextEvent(timeoutMillis)
		if ev.Type == driver.EventWinch {
			a.handleResize(ev.Width, ev.Height)
			continue
		}
		return ev
	}
}
