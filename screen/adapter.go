// Copyright © 2026 libmonospaceif contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/adapter.go
// Summary: Adapter type and the top-level entry points (link, split, config).

// Package screen implements the monospace screen adapter: the subsystem
// that turns Z-machine window/output/input semantics into cell-level calls
// on a driver.Backend. One Adapter value owns all process-wide state
// (Design Notes §9); every public entry point is a method on it.
package screen

import (
	"github.com/chrender/libmonospaceif/cmdhist"
	"github.com/chrender/libmonospaceif/config"
	"github.com/chrender/libmonospaceif/driver"
	"github.com/chrender/libmonospaceif/history"
	"github.com/chrender/libmonospaceif/l10n"
	"github.com/chrender/libmonospaceif/wrapper"
	"github.com/chrender/libmonospaceif/zscii"
)

// wrapperHandle couples a wrapper.Wrapper with the window id it was
// constructed for, since the sink callback is keyed by that id.
type wrapperHandle struct {
	w  wrapper.Wrapper
	id WindowID
}

// VerifyRoutine is the interpreter-supplied callback invoked during timed
// input (spec.md §4.D). A non-zero return aborts the current read_line.
type VerifyRoutine func() int

// Adapter is the monospace screen adapter. Construct with New, then call
// LinkInterfaceToStory before any other method.
type Adapter struct {
	backend        driver.Backend
	wrapperFactory wrapper.Factory
	hist           history.Store
	zmap           zscii.Mapper
	cat            l10n.Catalogue
	cmdHist        cmdhist.Store
	cfg            *config.Config

	windows      map[WindowID]*window
	windowOrder  []WindowID
	activeWindow WindowID
	version      int
	hasStatus    bool

	screenWidth, screenHeight int
	defaultFG, defaultBG      driver.Colour

	disableMorePrompt bool

	// History cursor state (spec.md §3). historyCursor is nil when not
	// actively refreshing.
	historyCursor            history.Cursor
	currentHistoryScreenLine int
	currentHistoryHitTop     bool

	// titleHook is the inert extension point for game-specific title /
	// xterm-title handling the source left commented out (spec.md §9, Open
	// Questions). Never invoked by default.
	titleHook func(string)

	// resizeHook notifies the interpreter of a new screen size (spec.md
	// §4.G). Defaults to a no-op.
	resizeHook func(width, height int)

	// Last ShowStatus call, replayed by RefreshScreen after a resize.
	lastStatusRoom  string
	lastStatusMode  StatusMode
	lastStatusP1    int
	lastStatusP2    int
	lastStatusValid bool

	linked bool
}

// Option configures optional collaborators at construction time. Unset
// options fall back to the in-memory/default implementations.
type Option func(*Adapter)

func WithHistoryStore(s history.Store) Option    { return func(a *Adapter) { a.hist = s } }
func WithZSCIIMapper(m zscii.Mapper) Option      { return func(a *Adapter) { a.zmap = m } }
func WithCatalogue(c l10n.Catalogue) Option      { return func(a *Adapter) { a.cat = c } }
func WithCommandHistory(c cmdhist.Store) Option  { return func(a *Adapter) { a.cmdHist = c } }
func WithWrapperFactory(f wrapper.Factory) Option { return func(a *Adapter) { a.wrapperFactory = f } }
func WithTitleHook(h func(string)) Option        { return func(a *Adapter) { a.titleHook = h } }
func WithResizeHook(h func(width, height int)) Option { return func(a *Adapter) { a.resizeHook = h } }

// New constructs an Adapter bound to backend. Call LinkInterfaceToStory
// before using it.
func New(backend driver.Backend, wrapperFactory wrapper.Factory, opts ...Option) *Adapter {
	a := &Adapter{
		backend:        backend,
		wrapperFactory: wrapperFactory,
		hist:           history.NewMemStore(),
		zmap:           zscii.NewDefaultMapper(),
		cat:            l10n.Default(),
		cmdHist:        cmdhist.NewRing(64),
		cfg:            config.Default(),
		windows:        map[WindowID]*window{},
		titleHook:      func(string) {},
		resizeHook:     func(int, int) {},
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// LinkInterfaceToStory initialises window geometry for Z-machine version v,
// querying screen dimensions from the backend (spec.md §4.A).
func (a *Adapter) LinkInterfaceToStory(storyName string, v int) Result {
	if err := a.backend.LinkInterfaceToStory(storyName); err != nil {
		return backendError(err)
	}
	a.version = v
	a.screenWidth, a.screenHeight = a.backend.GetScreenSize()
	a.defaultFG, a.defaultBG = a.backend.DefaultColours()
	a.buildWindows()
	a.activeWindow = 0
	a.linked = true
	return ok()
}

// numWindows returns the window count for the Z-machine version rule table
// (spec.md §3, Window layout rules).
func (a *Adapter) numWindows() int {
	switch {
	case a.version <= 2:
		return 1
	case a.version == 6:
		return 8
	default:
		return 2
	}
}

func (a *Adapter) buildWindows() {
	a.windows = map[WindowID]*window{}
	a.windowOrder = nil
	n := a.numWindows()
	a.hasStatus = a.version == 3

	top0 := 1
	height0 := a.screenHeight
	if a.hasStatus {
		top0 = 2
		height0 = a.screenHeight - 1
	}

	for id := WindowID(0); id < WindowID(n); id++ {
		w := newWindow(id)
		w.xpos = 1
		w.xsize = a.screenWidth
		w.ysize = a.screenHeight
		w.ypos = 1
		if id == 0 {
			w.ypos = top0
			w.ysize = height0
			w.buffering = true
			w.wrapping = true
			if a.version != 6 {
				w.leftMargin = a.cfg.LeftMargin
				w.rightMargin = a.cfg.RightMargin
				w.enforceMarginInvariant()
			}
		} else if a.version == 6 {
			w.buffering = true
		} else {
			// Window 1 starts unsplit: zero rows until SplitWindow sizes it.
			w.ysize = 0
		}
		w.ycursorpos = 1
		w.xcursorpos = 1 + w.leftMargin
		w.outputStyle = driver.StyleRoman
		w.bufferedStyle = driver.StyleRoman
		w.outputFG, w.outputBG = a.defaultFG, a.defaultBG
		w.bufferedFG, w.bufferedBG = a.defaultFG, a.defaultBG
		w.scrollbackTopLine = w.ysize
		w.resizeContentBuf()
		if w.buffering {
			a.bindWrapper(w)
		}
		a.windows[id] = w
		a.windowOrder = append(a.windowOrder, id)
	}

	if a.hasStatus {
		sw := newWindow(statusWindowID)
		sw.ypos, sw.xpos = 1, 1
		sw.ysize, sw.xsize = 1, a.screenWidth
		sw.outputStyle = driver.StyleReverse
		a.windows[statusWindowID] = sw
	}
}

func (a *Adapter) bindWrapper(w *window) {
	id := w.id
	w.wrap = wrapperHandle{
		w:  a.wrapperFactory(w.contentWidth(), a.wrapperSink(id), int(id), !a.cfg.DisableHyphenation),
		id: id,
	}
}

// ResetInterface reinitialises geometry and clears style/colour state
// without tearing down the backend (spec.md §6).
func (a *Adapter) ResetInterface() Result {
	a.backend.ResetInterface()
	a.buildWindows()
	return ok()
}

// CloseInterface tears down the backend, wrappers, and window storage
// regardless of prior errors (spec.md §7). If errMsg is non-empty it is
// shown instead of the "press any key to quit" prompt.
func (a *Adapter) CloseInterface(errMsg string) int {
	for _, w := range a.windows {
		if w.wrap.w != nil {
			w.wrap.w.Destroy()
		}
	}
	if a.historyCursor != nil {
		a.historyCursor.Destroy()
		a.historyCursor = nil
	}
	prompt := errMsg
	if prompt == "" {
		prompt = a.cat.PressAnyKeyToQuit()
	}
	if w0 := a.windows[0]; w0 != nil {
		a.windowTarget(0, []rune("\n"+prompt))
	}
	a.flushAllWindows()
	a.backend.GetNextEvent(0)
	a.backend.CloseInterface()
	a.windows = nil
	a.linked = false
	if errMsg != "" {
		return -1
	}
	return 0
}

// SetTextStyle sets the buffered/output style on the active window
// (spec.md §6). For a buffering window the change is queued as wrapper
// metadata so it lands at the correct horizontal position.
func (a *Adapter) SetTextStyle(style driver.Style) {
	w := a.windows[a.activeWindow]
	if w == nil {
		return
	}
	w.bufferedStyle = style
	if w.buffering && w.wrap.w != nil {
		w.wrap.w.InsertMetadata(a.styleMetadataCB, int(w.id), uint32(style))
	} else {
		w.outputStyle = style
	}
}

// SetColour sets fg/bg for windowOrActive, or for the active window when
// windowOrActive == -1 (spec.md §6).
func (a *Adapter) SetColour(fg, bg driver.Colour, windowOrActive WindowID) {
	id := windowOrActive
	if id == -1 {
		id = a.activeWindow
	}
	w := a.windows[id]
	if w == nil {
		return
	}
	if fg != driver.ColourCurrent {
		w.bufferedFG = fg
	}
	if bg != driver.ColourCurrent {
		w.bufferedBG = bg
	}
	if w.buffering && w.wrap.w != nil {
		w.wrap.w.InsertMetadata(a.colourMetadataCB, int(w.id), packColour(w.bufferedFG, w.bufferedBG))
	} else {
		w.outputFG, w.outputBG = w.bufferedFG, w.bufferedBG
	}
}

func packColour(fg, bg driver.Colour) uint32 {
	return uint32(uint16(fg))<<16 | uint32(uint16(bg))
}

func unpackColour(data uint32) (driver.Colour, driver.Colour) {
	return driver.Colour(int16(data >> 16)), driver.Colour(int16(data & 0xFFFF))
}

func (a *Adapter) styleMetadataCB(ctx int, data uint32) {
	if w := a.windows[WindowID(ctx)]; w != nil {
		w.outputStyle = driver.Style(data)
	}
}

func (a *Adapter) colourMetadataCB(ctx int, data uint32) {
	if w := a.windows[WindowID(ctx)]; w != nil {
		w.outputFG, w.outputBG = unpackColour(data)
	}
}

// SetFont is a no-op: proportional/pixel fonts are a non-goal (spec.md §1).
func (a *Adapter) SetFont(int) {}

// SplitWindow creates/resizes window 1 to nlines rows at the top of the
// screen, shrinking window 0 beneath it (spec.md §6).
func (a *Adapter) SplitWindow(nlines int) Result {
	w1, ok1 := a.windows[1]
	w0 := a.windows[0]
	if !ok1 || w0 == nil {
		return geometryViolation("split_window on a layout with no window 1")
	}
	top0 := 1
	if a.hasStatus {
		top0 = 2
	}
	w1.ypos = top0
	w1.xpos = 1
	w1.xsize = a.screenWidth
	w1.ysize = nlines
	w0.ypos = top0 + nlines
	w0.ysize = a.screenHeight - nlines
	if a.hasStatus {
		w0.ysize -= 1
	}
	w1.resizeContentBuf()
	w0.clampCursor()
	w1.clampCursor()
	return ok()
}

// SetWindow sets the active output window.
func (a *Adapter) SetWindow(id WindowID) {
	if _, ok := a.windows[id]; ok {
		a.activeWindow = id
	}
}

// EraseWindow clears window id, or every window when id == -1.
func (a *Adapter) EraseWindow(id WindowID) Result {
	if id == -1 {
		for _, w := range a.windows {
			a.eraseOneWindow(w)
		}
		return ok()
	}
	w, okW := a.windows[id]
	if !okW {
		return geometryViolation("erase_window on unknown window")
	}
	a.eraseOneWindow(w)
	return ok()
}

func (a *Adapter) eraseOneWindow(w *window) {
	a.backend.SetColour(w.outputFG, w.outputBG)
	a.backend.ClearArea(w.xpos, w.ypos, w.xsize, w.ysize)
	w.ycursorpos = 1
	w.xcursorpos = 1 + w.leftMargin
	w.consecutiveLinesOutput = 0
	for _, line := range w.contentBuf {
		for i := range line {
			line[i] = contentCell{r: ' ', fg: w.outputFG, bg: w.outputBG}
		}
	}
}

// SetCursor positions the cursor in window (spec.md §6). Only meaningful
// for non-wrapping windows per the original semantics; window 0 still
// accepts it for completeness.
func (a *Adapter) SetCursor(line, col int, id WindowID) Result {
	w, okW := a.windows[id]
	if !okW {
		return geometryViolation("set_cursor on unknown window")
	}
	w.ycursorpos = line
	w.xcursorpos = col
	w.clampCursor()
	return ok()
}

func (a *Adapter) GetCursorRow() int {
	if w := a.windows[a.activeWindow]; w != nil {
		return w.ycursorpos
	}
	return 1
}

func (a *Adapter) GetCursorColumn() int {
	if w := a.windows[a.activeWindow]; w != nil {
		return w.xcursorpos
	}
	return 1
}

// --- capability & config surface (spec.md §4.F) ---

func (a *Adapter) SupportsStatusLine() bool  { return true }
func (a *Adapter) SupportsSplit() bool       { return true }
func (a *Adapter) SupportsPictures() bool    { return false }
func (a *Adapter) SupportsVariablePitch() bool { return false }
func (a *Adapter) SupportsColour() bool {
	return !a.cfg.DisableColor && a.backend.IsColourAvailable()
}
func (a *Adapter) SupportsBoldFace() bool   { return a.backend.IsBoldFaceAvailable() }
func (a *Adapter) SupportsItalic() bool     { return a.backend.IsItalicAvailable() }
func (a *Adapter) SupportsTimedInput() bool { return a.backend.IsInputTimeoutAvailable() }

func (a *Adapter) ScreenWidth() int  { return a.screenWidth }
func (a *Adapter) ScreenHeight() int { return a.screenHeight }
func (a *Adapter) FontWidth() int    { return 1 }
func (a *Adapter) FontHeight() int   { return 1 }
func (a *Adapter) DefaultColours() (driver.Colour, driver.Colour) {
	return a.defaultFG, a.defaultBG
}

// ParseConfigParameter handles an adapter-owned key itself, otherwise
// forwards to the backend (spec.md §4.F, §6).
func (a *Adapter) ParseConfigParameter(key, value string) int {
	handled, err := a.cfg.Parse(key, value)
	if handled {
		if err != nil {
			_ = configErr(err)
			return -1
		}
		a.reapplyMargins()
		return 0
	}
	return a.backend.ParseConfigParameter(key, value)
}

func (a *Adapter) reapplyMargins() {
	w0 := a.windows[0]
	if w0 == nil || a.version == 6 {
		return
	}
	w0.leftMargin = a.cfg.LeftMargin
	w0.rightMargin = a.cfg.RightMargin
	w0.enforceMarginInvariant()
	if w0.wrap.w != nil {
		w0.wrap.w.AdjustLineLength(w0.contentWidth())
	}
}

func (a *Adapter) GetConfigValue(key string) (string, bool) {
	if v, okV := a.cfg.Get(key); okV {
		return v, true
	}
	return a.backend.GetConfigValue(key)
}

func (a *Adapter) GetConfigOptionNames() []string {
	names := append([]string{}, config.OwnedKeys()...)
	names = append(names, a.backend.GetConfigOptionNames()...)
	return names
}

func (a *Adapter) OutputInterfaceInfo() string {
	return a.backend.GetInterfaceName()
}

// InputMustBeRepeatedByStory always returns true: this adapter does not
// echo input itself outside of the line editor's own display.
func (a *Adapter) InputMustBeRepeatedByStory() bool { return true }

// GameWasRestoredAndHistoryModified invalidates any live history cursor,
// since a restore can rewrite the output-history store out from under it.
func (a *Adapter) GameWasRestoredAndHistoryModified() {
	a.destroyHistoryCursor()
}

func (a *Adapter) PromptForFilename(forWriting bool, suggested string) (string, bool) {
	return a.backend.PromptForFilename(forWriting, suggested)
}

func (a *Adapter) destroyHistoryCursor() {
	if a.historyCursor != nil {
		a.historyCursor.Destroy()
	}
	a.historyCursor = nil
	a.currentHistoryScreenLine = 0
	a.currentHistoryHitTop = false
}

func (a *Adapter) flushAllWindows() {
	for _, id := range a.windowOrder {
		if w := a.windows[id]; w != nil && w.buffering && w.wrap.w != nil {
			w.wrap.w.Flush()
		}
	}
	a.backend.UpdateScreen()
}
