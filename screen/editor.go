// Copyright © 2026 libmonospaceif contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/editor.go
// Summary: ReadLine/ReadChar, the interactive line/char editor.

package screen

import "github.com/chrender/libmonospaceif/driver"

// ReadLine implements spec.md §4.D: an interactive, horizontally-scrolling
// line editor sharing the window's output geometry. dest is overwritten in
// place up to maxLen bytes of Z-SCII; preloadedCount bytes of dest are taken
// as the initial buffer contents. Returns the number of characters read, 0
// if verify aborted input, or -2 on ESC (when returnOnEscape is set).
func (a *Adapter) ReadLine(dest []byte, maxLen int, tenthSeconds int, verify VerifyRoutine, preloadedCount int, returnOnEscape bool, disableCmdHistory bool) int {
	w := a.windows[a.activeWindow]
	if w == nil || maxLen <= 0 {
		return 0
	}

	for _, id := range a.windowOrder {
		if other := a.windows[id]; other != nil {
			if other.buffering && other.wrap.w != nil {
				other.wrap.w.Flush()
			}
			other.consecutiveLinesOutput = 0
		}
	}

	if w.xcursorpos >= w.xsize-w.rightMargin {
		a.windowTarget(w.id, []rune{'\n'})
	}

	buf := make([]rune, 0, maxLen)
	for i := 0; i < preloadedCount && i < len(dest); i++ {
		buf = append(buf, a.zmap.FromZSCII(dest[i]))
	}
	cursor := len(buf)
	scroll := 0

	startCol := w.xcursorpos - preloadedCount
	inputY := w.ypos + w.ycursorpos - 1
	inputX := w.xpos + startCol - 1
	displayWidth := w.xsize - (startCol - 1) - w.rightMargin
	if displayWidth < 1 {
		displayWidth = 1
	}

	histIndex := 0
	var savedBuf []rune

	repaint := func() {
		if cursor < scroll {
			scroll = cursor
		}
		if cursor-scroll >= displayWidth {
			scroll = cursor - displayWidth + 1
		}
		a.backend.SetTextStyle(w.outputStyle)
		a.backend.SetColour(w.outputFG, w.outputBG)
		a.backend.ClearArea(inputX, inputY, displayWidth, 1)
		end := scroll + displayWidth
		if end > len(buf) {
			end = len(buf)
		}
		a.backend.GotoYX(inputY, inputX)
		if end > scroll {
			a.backend.Output(buf[scroll:end])
		}
		a.backend.GotoYX(inputY, inputX+(cursor-scroll))
	}

	timeoutMillis := 0
	if tenthSeconds > 0 && a.backend.IsInputTimeoutAvailable() {
		timeoutMillis = 100
	}

	ticks := 0
	scrolledBack := false
	repaint()

	for {
		ev := a.backend.GetNextEvent(timeoutMillis)

		if ev.Type == driver.EventWinch {
			a.handleResize(ev.Width, ev.Height)
			w = a.windows[a.activeWindow]
			if w == nil {
				return 0
			}
			inputY = w.ypos + w.ycursorpos - 1
			startCol = w.xcursorpos - cursor
			inputX = w.xpos + startCol - 1
			displayWidth = w.xsize - (startCol - 1) - w.rightMargin
			if displayWidth < 1 {
				displayWidth = 1
			}
			repaint()
			continue
		}

		if ev.Type != driver.EventPageUp && ev.Type != driver.EventPageDown && scrolledBack {
			w.scrollbackTopLine = w.ysize
			a.eraseOneWindow(w)
			a.Refresh(1, w.ysize, true)
			a.backend.SetCursorVisibility(true)
			scrolledBack = false
			repaint()
		}

		switch ev.Type {
		case driver.EventTimeout:
			if timeoutMillis == 0 {
				continue
			}
			ticks++
			if ticks >= tenthSeconds {
				ticks = 0
				if verify != nil {
					if rc := verify(); rc != 0 {
						// spec.md §8 scenario 6 has the verify-abort case
						// returning 0, which contradicts §4.D's own exit
						// clause (-1 on verifier abort). Siding with the
						// worked scenario over the prose is the documented,
						// deliberate choice here, not an oversight.
						return 0
					}
				}
				repaint()
			}
			continue

		case driver.EventPageUp, driver.EventPageDown:
			half := (w.ysize + 1) / 2
			if ev.Type == driver.EventPageUp {
				w.scrollbackTopLine += half
			} else {
				w.scrollbackTopLine -= half
				if w.scrollbackTopLine < w.ysize {
					w.scrollbackTopLine = w.ysize
				}
			}
			filled, _ := a.Refresh(1, w.ysize, false)
			if !filled && ev.Type == driver.EventPageUp {
				w.scrollbackTopLine -= half
			}
			scrolledBack = w.scrollbackTopLine > w.ysize
			a.backend.SetCursorVisibility(!scrolledBack)
			continue

		case driver.EventInput:
			if len(buf) >= maxLen {
				continue
			}
			buf = append(buf[:cursor], append([]rune{ev.Rune}, buf[cursor:]...)...)
			cursor++
			repaint()

		case driver.EventBackspace:
			if cursor > 0 {
				buf = append(buf[:cursor-1], buf[cursor:]...)
				cursor--
				repaint()
			}

		case driver.EventDelete:
			if cursor < len(buf) {
				buf = append(buf[:cursor], buf[cursor+1:]...)
				repaint()
			}

		case driver.EventCursorLeft:
			if cursor > 0 {
				cursor--
				repaint()
			}

		case driver.EventCursorRight:
			if cursor < len(buf) {
				cursor++
				repaint()
			}

		case driver.EventHome, driver.EventCtrlA:
			cursor = 0
			repaint()

		case driver.EventEnd, driver.EventCtrlE:
			cursor = len(buf)
			repaint()

		case driver.EventCursorUp:
			if disableCmdHistory {
				continue
			}
			if histIndex == 0 {
				savedBuf = append([]rune{}, buf...)
			}
			if line, okH := a.cmdHist.At(histIndex + 1); okH {
				histIndex++
				buf = append([]rune{}, line...)
				cursor = len(buf)
				repaint()
			}

		case driver.EventCursorDown:
			if disableCmdHistory {
				continue
			}
			if histIndex <= 0 {
				continue
			}
			histIndex--
			if histIndex == 0 {
				buf = append([]rune{}, savedBuf...)
			} else if line, okH := a.cmdHist.At(histIndex); okH {
				buf = append([]rune{}, line...)
			}
			cursor = len(buf)
			repaint()

		case driver.EventCtrlL:
			a.eraseOneWindow(w)
			a.Refresh(1, w.ysize, true)
			repaint()

		case driver.EventCtrlR:
			a.handleResize(a.backend.GetScreenSize())

		case driver.EventNewline:
			if !disableCmdHistory && len(buf) > 0 {
				a.cmdHist.Add(buf)
			}
			a.backend.ClearArea(inputX, inputY, displayWidth, 1)
			n := copy(dest, zsciiEncode(buf, a.zmap))
			return n

		case driver.EventEscape:
			if returnOnEscape {
				a.backend.ClearArea(inputX, inputY, displayWidth, 1)
				return -2
			}
		}
	}
}

func zsciiEncode(buf []rune, mapper interface {
	ToZSCII(r rune) (byte, bool)
}) []byte {
	out := make([]byte, 0, len(buf))
	for _, r := range buf {
		if b, okZ := mapper.ToZSCII(r); okZ {
			out = append(out, b)
		}
	}
	return out
}

// ReadChar implements spec.md §4.D's reduced-mapping sibling of ReadLine:
// no editable buffer, just a single Z-SCII code back, with the cursor/edit
// keys distinguished per the ZSCII* constants. Returns 0 if verify aborted.
func (a *Adapter) ReadChar(tenthSeconds int, verify VerifyRoutine) int {
	timeoutMillis := 0
	if tenthSeconds > 0 && a.backend.IsInputTimeoutAvailable() {
		timeoutMillis = 100
	}
	ticks := 0
	for {
		ev := a.waitForEvent(timeoutMillis)
		switch ev.Type {
		case driver.EventTimeout:
			if timeoutMillis == 0 {
				continue
			}
			ticks++
			if ticks >= tenthSeconds {
				if verify != nil && verify() != 0 {
					return 0
				}
				ticks = 0
			}
		case driver.EventInput:
			if b, okZ := a.zmap.ToZSCII(ev.Rune); okZ {
				return int(b)
			}
		case driver.EventBackspace:
			return 8
		case driver.EventDelete:
			return 127
		case driver.EventCursorUp:
			return 129
		case driver.EventCursorDown:
			return 130
		case driver.EventCursorLeft:
			return 131
		case driver.EventCursorRight:
			return 132
		case driver.EventNewline:
			return 13
		case driver.EventEscape:
			return 27
		}
	}
}
