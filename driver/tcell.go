// Copyright © 2026 libmonospaceif contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: driver/tcell.go
// Summary: Backend implementation on top of gdamore/tcell.
// Notes: LinkInterfaceToStory surfaces tcell.Screen.Init failures as an
// error rather than panicking, so the adapter can report BackendErrorKind.

package driver

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"
)

// TcellBackend adapts a tcell.Screen to the Backend interface. Shaped after
// the teacher's TcellScreenDriver: a thin wrapper that forwards almost
// everything straight through, extended with the cell-rectangle primitives
// (ClearArea, CopyArea) and the config/capability surface the adapter needs
// that a bare screen-diffing engine never did.
type TcellBackend struct {
	screen       tcell.Screen
	style        tcell.Style
	cursorRow    int
	cursorCol    int
	cursorHidden bool
	colourProf   termenv.Profile
	config       map[string]string
}

// NewTcellBackend wraps the provided screen. The caller owns calling
// screen.Init() via LinkInterfaceToStory.
func NewTcellBackend(screen tcell.Screen) *TcellBackend {
	return &TcellBackend{
		screen:     screen,
		style:      tcell.StyleDefault,
		colourProf: termenv.ColorProfile(),
		config:     map[string]string{},
	}
}

func (b *TcellBackend) GetScreenSize() (int, int) {
	w, h := b.screen.Size()
	return w, h
}

func (b *TcellBackend) DefaultColours() (Colour, Colour) {
	return ColourDefault, ColourDefault
}

func (b *TcellBackend) IsColourAvailable() bool {
	return b.colourProf != termenv.Ascii
}

func (b *TcellBackend) IsBoldFaceAvailable() bool { return true }

func (b *TcellBackend) IsItalicAvailable() bool { return true }

func (b *TcellBackend) IsInputTimeoutAvailable() bool { return true }

func (b *TcellBackend) GetInterfaceName() string { return "tcell" }

func (b *TcellBackend) GotoYX(row, col int) {
	b.cursorRow, b.cursorCol = row, col
	if !b.cursorHidden {
		b.screen.ShowCursor(col-1, row-1)
	}
}

func (b *TcellBackend) Output(text []rune) {
	x, y := b.cursorCol-1, b.cursorRow-1
	for _, r := range text {
		b.screen.SetContent(x, y, r, nil, b.style)
		x++
	}
	b.cursorCol += len(text)
}

func (b *TcellBackend) SetTextStyle(style Style) {
	s := tcell.StyleDefault
	if style&StyleReverse != 0 {
		s = s.Reverse(true)
	}
	if style&StyleBold != 0 {
		s = s.Bold(true)
	}
	if style&StyleItalic != 0 {
		s = s.Italic(true)
	}
	fg, bg, _ := b.style.Decompose()
	b.style = s.Foreground(fg).Background(bg)
}

func (b *TcellBackend) SetColour(fg, bg Colour) {
	_, _, attrs := b.style.Decompose()
	_ = attrs
	b.style = b.style.Foreground(tcellColour(fg)).Background(tcellColour(bg))
}

func tcellColour(c Colour) tcell.Color {
	switch c {
	case ColourDefault, ColourCurrent:
		return tcell.ColorDefault
	case ColourBlack:
		return tcell.ColorBlack
	case ColourRed:
		return tcell.ColorMaroon
	case ColourGreen:
		return tcell.ColorGreen
	case ColourYellow:
		return tcell.ColorOlive
	case ColourBlue:
		return tcell.ColorNavy
	case ColourMagenta:
		return tcell.ColorPurple
	case ColourCyan:
		return tcell.ColorTeal
	case ColourWhite:
		return tcell.ColorSilver
	default:
		return tcell.ColorDefault
	}
}

func (b *TcellBackend) ClearArea(x, y, w, h int) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			b.screen.SetContent(col-1, row-1, ' ', nil, b.style)
		}
	}
}

func (b *TcellBackend) ClearToEOL() {
	w, _ := b.screen.Size()
	y := b.cursorRow - 1
	for col := b.cursorCol - 1; col < w; col++ {
		b.screen.SetContent(col, y, ' ', nil, b.style)
	}
}

// CopyArea copies an h x w rectangle from (srcY,srcX) to (dstY,dstX), both
// 1-based. It is used by the history-refresh engine and the scroll-on-
// overflow path in the output pipeline; both only ever move rectangles up or
// down within the same column range, so a naive row-major copy (choosing
// copy direction to avoid self-clobbering) is sufficient.
func (b *TcellBackend) CopyArea(dstY, dstX, srcY, srcX, h, w int) {
	rows := make([]int, h)
	for i := range rows {
		rows[i] = i
	}
	if dstY > srcY {
		for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
			rows[i], rows[j] = rows[j], rows[i]
		}
	}
	for _, i := range rows {
		for col := 0; col < w; col++ {
			r, comb, style, _ := b.screen.GetContent(srcX-1+col, srcY-1+i)
			b.screen.SetContent(dstX-1+col, dstY-1+i, r, comb, style)
		}
	}
}

func (b *TcellBackend) SetCursorVisibility(visible bool) {
	b.cursorHidden = !visible
	if visible {
		b.screen.ShowCursor(b.cursorCol-1, b.cursorRow-1)
	} else {
		b.screen.HideCursor()
	}
}

func (b *TcellBackend) UpdateScreen() {
	b.screen.Show()
}

func (b *TcellBackend) RedrawScreenFromScratch() {
	b.screen.Sync()
}

// GetNextEvent polls tcell for the next event, translating it into the
// adapter's reduced event vocabulary. A timeoutMillis of 0 blocks forever.
func (b *TcellBackend) GetNextEvent(timeoutMillis int) Event {
	type pollResult struct{ ev tcell.Event }
	ch := make(chan pollResult, 1)
	go func() { ch <- pollResult{b.screen.PollEvent()} }()

	var timer *time.Timer
	var timeoutCh <-chan time.Time
	if timeoutMillis > 0 {
		timer = time.NewTimer(time.Duration(timeoutMillis) * time.Millisecond)
		timeoutCh = timer.C
	}

	select {
	case r := <-ch:
		if timer != nil {
			timer.Stop()
		}
		return translateTcellEvent(r.ev)
	case <-timeoutCh:
		return Event{Type: EventTimeout}
	}
}

func translateTcellEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventWinch, Width: w, Height: h}
	case *tcell.EventKey:
		switch e.Key() {
		case tcell.KeyUp:
			return Event{Type: EventCursorUp}
		case tcell.KeyDown:
			return Event{Type: EventCursorDown}
		case tcell.KeyLeft:
			return Event{Type: EventCursorLeft}
		case tcell.KeyRight:
			return Event{Type: EventCursorRight}
		case tcell.KeyPgUp:
			return Event{Type: EventPageUp}
		case tcell.KeyPgDn:
			return Event{Type: EventPageDown}
		case tcell.KeyCtrlA:
			return Event{Type: EventCtrlA}
		case tcell.KeyCtrlE:
			return Event{Type: EventCtrlE}
		case tcell.KeyCtrlL:
			return Event{Type: EventCtrlL}
		case tcell.KeyCtrlR:
			return Event{Type: EventCtrlR}
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			return Event{Type: EventBackspace}
		case tcell.KeyDelete:
			return Event{Type: EventDelete}
		case tcell.KeyEscape:
			return Event{Type: EventEscape}
		case tcell.KeyEnter:
			return Event{Type: EventNewline}
		case tcell.KeyHome:
			return Event{Type: EventHome}
		case tcell.KeyEnd:
			return Event{Type: EventEnd}
		default:
			return Event{Type: EventInput, Rune: e.Rune()}
		}
	default:
		return Event{Type: EventTimeout}
	}
}

func (b *TcellBackend) PromptForFilename(forWriting bool, suggested string) (string, bool) {
	// No in-terminal filename prompt widget is implemented; callers fall
	// back to a config value or environment default.
	return suggested, suggested != ""
}

func (b *TcellBackend) ParseConfigParameter(key, value string) int {
	b.config[key] = value
	return 0
}

func (b *TcellBackend) GetConfigValue(key string) (string, bool) {
	v, ok := b.config[key]
	return v, ok
}

func (b *TcellBackend) GetConfigOptionNames() []string {
	return nil
}

func (b *TcellBackend) LinkInterfaceToStory(storyName string) error {
	if err := b.screen.Init(); err != nil {
		return err
	}
	b.screen.SetStyle(tcell.StyleDefault)
	return nil
}

func (b *TcellBackend) ResetInterface() {
	b.screen.Clear()
}

func (b *TcellBackend) CloseInterface() {
	b.screen.Fini()
}

var _ Backend = (*TcellBackend)(nil)
