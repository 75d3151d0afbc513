// Copyright © 2026 libmonospaceif contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/fakebackend_test.go
// Summary: In-memory driver.Backend used by the screen package's own tests.

package screen

import "github.com/chrender/libmonospaceif/driver"

// fakeBackend is a grid-based driver.Backend used by the screen package's
// own tests: an in-memory rune grid rather than a real terminal, following
// the teacher's style of exercising the engine against a recorded buffer
// rather than a live tcell.Screen (mirrored in _teacher_ref/wrap_visual_test.go).
type fakeBackend struct {
	width, height int
	grid          [][]rune
	row, col      int
	events        []driver.Event
	cursorVisible bool
	timedInput    bool
	colour        bool
	linkErr       error
}

func newFakeBackend(width, height int) *fakeBackend {
	b := &fakeBackend{width: width, height: height, cursorVisible: true, timedInput: true, colour: true}
	b.grid = make([][]rune, height)
	for i := range b.grid {
		b.grid[i] = make([]rune, width)
		for j := range b.grid[i] {
			b.grid[i][j] = ' '
		}
	}
	return b
}

func (b *fakeBackend) rowString(r int) string {
	return string(b.grid[r])
}

func (b *fakeBackend) queue(ev ...driver.Event) {
	b.events = append(b.events, ev...)
}

func (b *fakeBackend) GetScreenSize() (int, int)        { return b.width, b.height }
func (b *fakeBackend) DefaultColours() (driver.Colour, driver.Colour) {
	return driver.ColourWhite, driver.ColourBlack
}
func (b *fakeBackend) IsColourAvailable() bool       { return b.colour }
func (b *fakeBackend) IsBoldFaceAvailable() bool     { return true }
func (b *fakeBackend) IsItalicAvailable() bool       { return true }
func (b *fakeBackend) IsInputTimeoutAvailable() bool { return b.timedInput }
func (b *fakeBackend) GetInterfaceName() string      { return "fake" }

func (b *fakeBackend) GotoYX(row, col int) { b.row, b.col = row, col }

func (b *fakeBackend) Output(text []rune) {
	y := b.row - 1
	if y < 0 || y >= b.height {
		return
	}
	for i, r := range text {
		x := b.col - 1 + i
		if x < 0 || x >= b.width {
			continue
		}
		b.grid[y][x] = r
	}
	b.col += len(text)
}

func (b *fakeBackend) SetTextStyle(driver.Style)  {}
func (b *fakeBackend) SetColour(driver.Colour, driver.Colour) {}

func (b *fakeBackend) ClearArea(x, y, w, h int) {
	for row := y; row < y+h; row++ {
		if row < 1 || row > b.height {
			continue
		}
		for col := x; col < x+w; col++ {
			if col < 1 || col > b.width {
				continue
			}
			b.grid[row-1][col-1] = ' '
		}
	}
}

func (b *fakeBackend) ClearToEOL() {
	y := b.row - 1
	if y < 0 || y >= b.height {
		return
	}
	for x := b.col - 1; x < b.width; x++ {
		b.grid[y][x] = ' '
	}
}

func (b *fakeBackend) CopyArea(dstY, dstX, srcY, srcX, h, w int) {
	buf := make([][]rune, h)
	for i := 0; i < h; i++ {
		srow := srcY - 1 + i
		buf[i] = make([]rune, w)
		if srow >= 0 && srow < b.height {
			end := srcX - 1 + w
			if end > b.width {
				end = b.width
			}
			copy(buf[i], b.grid[srow][srcX-1:end])
		}
	}
	for i := 0; i < h; i++ {
		drow := dstY - 1 + i
		if drow < 0 || drow >= b.height {
			continue
		}
		for j := 0; j < w; j++ {
			dcol := dstX - 1 + j
			if dcol < 0 || dcol >= b.width {
				continue
			}
			b.grid[drow][dcol] = buf[i][j]
		}
	}
}

func (b *fakeBackend) SetCursorVisibility(visible bool) { b.cursorVisible = visible }
func (b *fakeBackend) UpdateScreen()                    {}
func (b *fakeBackend) RedrawScreenFromScratch()         {}

func (b *fakeBackend) GetNextEvent(timeoutMillis int) driver.Event {
	if len(b.events) == 0 {
		return driver.Event{Type: driver.EventTimeout}
	}
	ev := b.events[0]
	b.events = b.events[1:]
	return ev
}

func (b *fakeBackend) PromptForFilename(forWriting bool, suggested string) (string, bool) {
	return suggested, true
}

func (b *fakeBackend) ParseConfigParameter(key, value string) int { return -1 }
func (b *fakeBackend) GetConfigValue(key string) (string, bool)  { return "", false }
func (b *fakeBackend) GetConfigOptionNames() []string            { return nil }

func (b *fakeBackend) LinkInterfaceToStory(storyName string) error { return b.linkErr }
func (b *fakeBackend) ResetInterface()                       {}
func (b *fakeBackend) CloseInterface()                       {}

var _ driver.Backend = (*fakeBackend)(nil)
