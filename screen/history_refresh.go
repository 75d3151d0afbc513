// Copyright © 2026 libmonospaceif contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/history_refresh.go
// Summary: The four-case history-replay engine behind Refresh (spec.md §4.C).
// Notes: refreshCase0/1/3's front-edge exhaustion paths report
// HistoryInconsistent when currentHistoryScreenLine != 0 (spec.md §7);
// refreshCase2's forward walk relies solely on RepeatParagraphs's own
// return code, not IsOutputAtFrontIndex (a rewind-direction signal).

package screen

import "github.com/chrender/libmonospaceif/history"

// infiniteSkip stands in for spec.md §4.C's "lines_to_skip = ∞" in refresh
// case #0: large enough that the normal per-line decrement in windowTarget
// never exhausts it during one dry-run paragraph.
const infiniteSkip = 1 << 30

// Refresh repaints [yRefreshTop .. yRefreshTop+ySize-1] of window 0 by
// replaying the output-history store (spec.md §4.C). resetHistory discards
// any live history cursor first (used by CTRL_L and the full refresh_screen
// path). Returns false if the refresh reached the front of history without
// fully filling the strip, or if ySize <= 0 (boundary: a zero-height window
// refresh is a no-op per spec.md §8).
func (a *Adapter) Refresh(yRefreshTop, ySize int, resetHistory bool) (bool, Result) {
	if ySize <= 0 {
		return false, ok()
	}
	w := a.windows[0]
	if w == nil {
		return false, geometryViolation("refresh with no window 0")
	}
	if resetHistory {
		a.destroyHistoryCursor()
	}
	if a.historyCursor == nil {
		a.historyCursor = a.hist.NewCursor()
		a.currentHistoryScreenLine = 0
		a.currentHistoryHitTop = false
	}
	defer w.resetRefreshBookkeeping()
	return a.refresh(w, yRefreshTop, ySize)
}

// historyInconsistentResult builds the spec.md §7 fatal Result for a history
// replay that reports "no more paragraphs" while the adapter still believes
// there is more scrollback above the present screen line — a store that
// disagrees with the adapter's own bookkeeping, not a normal front-of-history
// edge. Its message reuses the catalogue's FunctionCallAborted string, the
// same wording spec.md §7 uses for an unrecoverable interpreter-facing abort.
func (a *Adapter) historyInconsistentResult() Result {
	return historyInconsistent(a.cat.FunctionCallAborted())
}

func (a *Adapter) refresh(w *window, yRefreshTop, ySize int) (bool, Result) {
	if ySize <= 0 {
		return true, ok()
	}
	bLo := w.scrollbackTopLine - (yRefreshTop - 1) - ySize
	bHi := w.scrollbackTopLine - (yRefreshTop - 1)
	chsl := a.currentHistoryScreenLine

	switch {
	case chsl < bLo:
		return a.refreshCase0(w, yRefreshTop, ySize, bLo)
	case chsl == bLo:
		return a.refreshCase1(w, yRefreshTop, ySize)
	case chsl < bHi:
		return a.refreshCase2(w, yRefreshTop, ySize, bLo, bHi)
	default:
		return a.refreshCase3(w, yRefreshTop, ySize, bHi)
	}
}

// replayParagraph feeds p (with its newline terminator, if any) through the
// window's wrapper so it re-wraps at the window's current width, same as any
// other buffered output.
func (a *Adapter) replayParagraph(w *window, p history.Paragraph) {
	text := p.Text
	if p.NewlineTerminated {
		text = append(append([]rune{}, text...), '\n')
	}
	if w.wrap.w != nil {
		w.wrap.w.Wrap(text)
		w.wrap.w.Flush()
	} else {
		a.windowTarget(w.id, text)
	}
}

// refreshCase0 — chsl below B_lo (spec.md §4.C case 0): measure the next
// rewindable paragraph's height via a dry run before we know how far up it
// brings us. Rewinding into a store that cannot produce the paragraph it
// just claimed was there (RewindParagraph returning negative) is always a
// fatal inconsistency (spec.md §7); hitting the oldest recorded paragraph
// while the adapter still expects more above the present screen line
// (chsl != 0) is the same fatal condition reached the ordinary way.
func (a *Adapter) refreshCase0(w *window, yRefreshTop, ySize, bLo int) (bool, Result) {
	if a.historyCursor.IsOutputAtFrontIndex() {
		if a.currentHistoryScreenLine != 0 {
			return false, a.historyInconsistentResult()
		}
		return false, ok()
	}
	saved := w.linesToSkip
	w.linesToSkip = infiniteSkip
	w.consecutiveLinesOutput = 0

	rc := a.historyCursor.RewindParagraph()
	if rc < 0 {
		w.linesToSkip = saved
		return false, a.historyInconsistentResult()
	}
	if rc == 1 {
		a.currentHistoryHitTop = true
	}

	var p history.Paragraph
	got := false
	a.historyCursor.RepeatParagraphs(1, true, true, func(par history.Paragraph) { p = par; got = true })
	if got {
		a.replayParagraph(w, p)
	}
	w.linesToSkip = saved
	a.currentHistoryScreenLine += w.consecutiveLinesOutput

	if a.currentHistoryHitTop && a.currentHistoryScreenLine < bLo {
		return false, ok()
	}
	return a.refresh(w, yRefreshTop, ySize)
}

// refreshCase1 — chsl == B_lo (spec.md §4.C case 1): the requested strip is
// entirely fresh scrollback. First measure backward, one paragraph at a
// time, how far back the strip's ySize lines reach — a dry run, so the
// measuring walk only moves the cursor via RewindParagraph and never
// consumes what it peeks at. Then replay the whole discovered span forward
// in a single pass, oldest paragraph first, a plain top-to-bottom fill with
// scrolling turned off: the strip's capacity was just measured to fit, so
// nothing needs to scroll, and scrolling here would only discard the first
// paragraph written to make room for a line that was never coming.
func (a *Adapter) refreshCase1(w *window, yRefreshTop, ySize int) (bool, Result) {
	chslNonZero := a.currentHistoryScreenLine != 0
	if a.historyCursor.IsOutputAtFrontIndex() {
		if chslNonZero {
			return false, a.historyInconsistentResult()
		}
		return false, ok()
	}

	saved := w.linesToSkip
	w.linesToSkip = infiniteSkip
	w.consecutiveLinesOutput = 0
	needed := 0
	hitTop := false
	inconsistent := false
	for w.consecutiveLinesOutput < ySize {
		if a.historyCursor.IsOutputAtFrontIndex() {
			break
		}
		rc := a.historyCursor.RewindParagraph()
		if rc < 0 {
			inconsistent = true
			break
		}
		needed++
		var p history.Paragraph
		got := false
		a.historyCursor.RepeatParagraphs(1, true, true, func(par history.Paragraph) { p = par; got = true })
		if got {
			a.replayParagraph(w, p)
		}
		if rc == 1 {
			hitTop = true
			break
		}
	}
	if inconsistent {
		w.linesToSkip = saved
		w.consecutiveLinesOutput = 0
		return false, a.historyInconsistentResult()
	}
	measured := w.consecutiveLinesOutput
	w.linesToSkip = saved
	w.consecutiveLinesOutput = 0

	// delta>0: fewer lines than the strip holds, so the content must start
	// further down to stay anchored to the bottom (newest) edge, leaving
	// blank rows above it. delta<0: more lines than the strip holds, so the
	// oldest |delta| of them start before yRefreshTop and must be suppressed
	// via linesToSkip rather than drawn off the top of the window.
	delta := ySize - measured
	overflow := 0
	if delta < 0 {
		overflow = -delta
	}
	savedWrapping := w.wrapping
	w.wrapping = false
	w.linesToSkip = overflow
	w.upperMargin = yRefreshTop - 1
	w.lowerMargin = w.ysize - (yRefreshTop - 1 + ySize)
	w.ycursorpos = yRefreshTop + delta
	w.xcursorpos = 1 + w.leftMargin

	a.historyCursor.RepeatParagraphs(needed, true, false, func(p history.Paragraph) {
		a.replayParagraph(w, p)
	})

	w.wrapping = savedWrapping
	w.linesToSkip = -1

	if hitTop {
		a.currentHistoryHitTop = true
	}
	filled := measured
	if filled > ySize {
		filled = ySize
	}
	a.currentHistoryScreenLine += filled
	return measured >= ySize, ok()
}

// refreshCase2 — B_lo < chsl < B_hi (spec.md §4.C case 2): the requested
// history is inside the strip already. Fill downward from chsl to measure
// how many lines of the bottom of the strip it accounts for, then rewind
// back to chsl and recurse on the upper remainder,
// [y_refresh_top .. y_refresh_top + (B_hi - chsl) - 1].
func (a *Adapter) refreshCase2(w *window, yRefreshTop, ySize, bLo, bHi int) (bool, Result) {
	originalPos := a.currentHistoryScreenLine
	fillLines := originalPos - bLo
	if fillLines > ySize {
		fillLines = ySize
	}
	bottomStart := yRefreshTop + ySize - fillLines

	w.upperMargin = bottomStart - 1
	w.lowerMargin = 0
	// Authoritative cursor formula for this case (spec.md §9 Open
	// Questions): ycursorpos = scrollback_top_line - chsl.
	w.ycursorpos = w.scrollbackTopLine - originalPos
	if w.ycursorpos < bottomStart {
		w.ycursorpos = bottomStart
	}
	w.xcursorpos = 1 + w.leftMargin
	w.remainingLinesToFill = fillLines
	// As in case 1, the fill covers rows already measured to fit, so
	// scroll-on-overflow stays off: a trailing newline on the strip's last
	// row must not push the rows just written upward.
	savedWrapping := w.wrapping
	w.wrapping = false

	// RepeatParagraphs' own return code is the forward-exhaustion signal
	// here (spec.md §7: "no more paragraphs" on a present-ward walk), not
	// IsOutputAtFrontIndex — that reports the opposite (oldest-paragraph)
	// edge and would stop this loop before the first read on a cursor that
	// has simply been rewound to paragraph zero.
	paragraphsAdvanced := 0
	for w.remainingLinesToFill > 0 {
		var p history.Paragraph
		got := false
		code := a.historyCursor.RepeatParagraphs(1, true, false, func(par history.Paragraph) { p = par; got = true })
		if code != 0 || !got {
			break
		}
		paragraphsAdvanced++
		a.replayParagraph(w, p)
	}
	w.remainingLinesToFill = -1
	w.upperMargin = 0
	w.wrapping = savedWrapping

	for i := 0; i < paragraphsAdvanced; i++ {
		a.historyCursor.RewindParagraph()
	}
	a.currentHistoryScreenLine = originalPos

	return a.refresh(w, yRefreshTop, bHi-originalPos)
}

// refreshCase3 — chsl >= B_hi (spec.md §4.C case 3): part of what we want
// is already further back than chsl in the buffer. Skip the rows already
// displayed, then emit forward until the strip is full or history's front
// edge (the present) is hit. A RepeatParagraphs exhaustion (spec.md §7: "no
// more paragraphs") while chsl != 0 means the adapter's own bookkeeping
// expected more scrollback above the present than the store actually holds
// — a store/adapter inconsistency, not the ordinary "reached the bottom of
// the transcript" stop.
func (a *Adapter) refreshCase3(w *window, yRefreshTop, ySize, bHi int) (bool, Result) {
	chsl := a.currentHistoryScreenLine
	skip := chsl - (w.scrollbackTopLine - yRefreshTop + 1)
	if skip < 0 {
		skip = 0
	}
	w.linesToSkip = skip
	w.remainingLinesToFill = ySize
	w.upperMargin = yRefreshTop - 1
	w.lowerMargin = w.ysize - (yRefreshTop - 1 + ySize)
	w.ycursorpos = yRefreshTop
	w.xcursorpos = 1 + w.leftMargin

	exhausted := false
	for w.remainingLinesToFill > 0 {
		var p history.Paragraph
		got := false
		code := a.historyCursor.RepeatParagraphs(1, true, false, func(par history.Paragraph) { p = par; got = true })
		if code != 0 || !got {
			exhausted = true
			break
		}
		a.replayParagraph(w, p)
	}

	filled := w.remainingLinesToFill <= 0
	w.linesToSkip = -1
	w.remainingLinesToFill = -1

	a.currentHistoryScreenLine = chsl - ySize
	if a.currentHistoryScreenLine < 0 {
		a.currentHistoryScreenLine = 0
	}
	if exhausted && chsl != 0 {
		return false, a.historyInconsistentResult()
	}
	return filled, ok()
}
