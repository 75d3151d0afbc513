// Copyright © 2026 libmonospaceif contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/status.go
// Summary: ShowStatus formatting for the status line.

package screen

import (
	"fmt"

	"github.com/chrender/libmonospaceif/driver"
	"github.com/mattn/go-runewidth"
)

// StatusMode selects how ShowStatus formats the right-hand group.
type StatusMode int

const (
	ScoreAndTurn StatusMode = iota
	Time
)

// ShowStatus renders the V<=3 status line (spec.md §4.E). p1/p2 are
// score/turns or hour/minute depending on mode.
func (a *Adapter) ShowStatus(roomDesc string, mode StatusMode, p1, p2 int) Result {
	if a.version > 3 {
		return ok()
	}
	w := a.windows[statusWindowID]
	if w == nil {
		return geometryViolation("show_status with no status window")
	}
	a.lastStatusRoom, a.lastStatusMode = roomDesc, mode
	a.lastStatusP1, a.lastStatusP2 = p1, p2
	a.lastStatusValid = true

	savedStyle := w.outputStyle
	w.outputStyle = driver.StyleReverse
	a.backend.SetTextStyle(driver.StyleReverse)
	a.backend.SetColour(w.outputFG, w.outputBG)
	a.backend.ClearArea(w.xpos, w.ypos, w.xsize, 1)

	var right string
	switch mode {
	case Time:
		right = fmt.Sprintf("%02d:%02d", p1, p2)
	default:
		right = fmt.Sprintf("%s: %d  %s: %d ", a.cat.Score(), p1, a.cat.Turns(), p2)
	}

	left := " " + roomDesc
	maxLeft := w.xsize - runewidth.StringWidth(right) - 1
	if maxLeft < 0 {
		maxLeft = 0
	}
	if runewidth.StringWidth(left) > maxLeft {
		left = runewidth.Truncate(left, maxLeft, "")
	}

	a.backend.GotoYX(w.ypos, w.xpos)
	a.backend.Output([]rune(left))

	rightCol := w.xpos + w.xsize - runewidth.StringWidth(right)
	if mode == Time {
		rightCol = w.xpos + w.xsize - 5
	}
	a.backend.GotoYX(w.ypos, rightCol)
	a.backend.Output([]rune(right))

	w.outputStyle = savedStyle
	a.backend.SetTextStyle(savedStyle)
	return ok()
}
