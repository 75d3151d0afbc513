// Copyright © 2026 libmonospaceif contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/output.go
// Summary: ZUCSOutput and window-target output routing.

package screen

import "github.com/chrender/libmonospaceif/driver"

// ZUCSOutput writes text to the active window (spec.md §4.B, §6). Buffering
// windows feed the wrapper; others go straight to the window target
// routine.
func (a *Adapter) ZUCSOutput(text []rune) Result {
	w := a.windows[a.activeWindow]
	if w == nil {
		return geometryViolation("z_ucs_output with no active window")
	}
	a.destroyHistoryCursor()
	if w.buffering && w.wrap.w != nil {
		w.wrap.w.Wrap(text)
		return ok()
	}
	return a.windowTarget(w.id, text)
}

// wrapperSink is installed as the wrapper's callback for window id: wrapped
// text flows back into the window target routine (spec.md §4.B, wrapper
// binding).
func (a *Adapter) wrapperSink(id WindowID) func(ctx int, text []rune) {
	return func(_ int, text []rune) {
		a.windowTarget(id, text)
	}
}

// windowTarget implements the window target routine of spec.md §4.B: given
// a run of characters destined for one window, emit it line by line,
// handling margins, scroll-on-overflow, refresh bookkeeping, and [MORE].
func (a *Adapter) windowTarget(id WindowID, run []rune) Result {
	w := a.windows[id]
	if w == nil {
		return geometryViolation("output to unknown window")
	}

	for len(run) > 0 {
		// 1. Clamp cursor if it would fall in the protected lower margin.
		if w.lowerMargin > 0 && w.ycursorpos > w.ysize-w.lowerMargin {
			w.ycursorpos = w.ysize - w.lowerMargin
		}

		// 2. Reconcile backend style/colour with this window's output state.
		a.reconcileStyleColour(w)

		// 3. Space remaining on this line.
		space := w.xsize - w.rightMargin - (w.xcursorpos - 1)
		if space < 0 {
			space = 0
		}

		// 4. Find the next newline; truncate at space if none within it.
		nl := -1
		for i, r := range run {
			if r == '\n' {
				nl = i
				break
			}
		}
		var chunk []rune
		var consumedNewline bool
		switch {
		case nl >= 0 && nl <= space:
			chunk = run[:nl]
			run = run[nl+1:]
			consumedNewline = true
		case nl >= 0 && nl > space:
			chunk = run[:space]
			run = run[space:]
		default: // no newline in run
			if len(run) <= space {
				chunk = run
				run = nil
			} else {
				chunk = run[:space]
				run = run[space:]
			}
		}

		suppressed := w.linesToSkip > 0

		// 5. Emit the slice.
		if len(chunk) > 0 && !suppressed {
			a.backend.GotoYX(w.ypos+w.ycursorpos-1, w.xpos+w.xcursorpos-1)
			a.backend.Output(chunk)
			w.recordCells(w.ycursorpos, w.xcursorpos, chunk, w.outputStyle, w.outputFG, w.outputBG)
		}
		w.xcursorpos += len(chunk)

		atLineBoundary := consumedNewline || w.xcursorpos > w.xsize-w.rightMargin
		if !atLineBoundary {
			continue
		}

		// 6. Line boundary handling.
		lastPrintableRow := w.ysize - w.lowerMargin
		if w.wrapping && w.ycursorpos >= lastPrintableRow {
			if !suppressed {
				a.backend.CopyArea(w.ypos+w.upperMargin, w.xpos,
					w.ypos+w.upperMargin+1, w.xpos,
					lastPrintableRow-w.upperMargin-1, w.xsize)
				a.backend.SetColour(w.outputFG, w.outputBG)
				a.backend.ClearArea(w.xpos, w.ypos+lastPrintableRow-1, w.xsize, 1)
			}
		} else {
			w.ycursorpos++
		}
		w.xcursorpos = 1 + w.leftMargin

		if w.linesToSkip > 0 {
			w.linesToSkip--
		}
		if w.remainingLinesToFill != -1 {
			w.remainingLinesToFill--
		}
		w.consecutiveLinesOutput++

		// 7. [MORE] pagination.
		if w.wrapping && !a.disableMorePrompt &&
			w.consecutiveLinesOutput == w.ysize-1 &&
			w.linesToSkip <= 0 && w.remainingLinesToFill == -1 {
			a.morePrompt(w)
		}
	}
	return ok()
}

func (a *Adapter) reconcileStyleColour(w *window) {
	a.backend.SetTextStyle(w.outputStyle)
	a.backend.SetColour(w.outputFG, w.outputBG)
}

// morePrompt implements the [MORE] pause (spec.md §4.B step 7): flush every
// other buffered window, show the localised prompt, wait for a keystroke
// (ignoring TIMEOUT, breaking on resize), clear the line, and reset the
// consecutive-lines counter.
func (a *Adapter) morePrompt(w *window) {
	for _, id := range a.windowOrder {
		if other := a.windows[id]; other != nil && other.id != w.id && other.buffering && other.wrap.w != nil {
			other.wrap.w.Flush()
		}
	}
	a.backend.SetColour(w.outputFG, w.outputBG)
	a.backend.GotoYX(w.ypos+w.ysize-1, w.xpos)
	prompt := []rune(a.cat.More())
	a.backend.Output(prompt)
	a.backend.UpdateScreen()

	for {
		ev := a.backend.GetNextEvent(0)
		if ev.Type == driver.EventTimeout {
			continue
		}
		if ev.Type == driver.EventWinch {
			a.handleResize(ev.Width, ev.Height)
			break
		}
		break
	}

	a.backend.SetColour(w.outputFG, w.outputBG)
	a.backend.ClearArea(w.xpos, w.ypos+w.ysize-1, w.xsize, 1)
	w.consecutiveLinesOutput = 0
}

// DisableMorePrompt lets the interpreter suspend [MORE] pagination
// entirely (used e.g. while replaying a transcript).
func (a *Adapter) DisableMorePrompt(disable bool) { a.disableMorePrompt = disable }
