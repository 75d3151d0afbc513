// Copyright © 2026 libmonospaceif contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: zscii/zscii.go
// Summary: Unicode <-> Z-SCII mapping for read_line/read_char.

// Package zscii maps between Unicode code points (the adapter's internal
// string representation, per Design Notes §9) and Z-SCII, the Z-machine's
// native character encoding, for read_line/read_char's return values.
package zscii

import "github.com/mattn/go-runewidth"

// Special Z-SCII codes read_char must be able to return for editing keys.
const (
	ZSCIIDeleteLine = 8
	ZSCIIDelete     = 127
	ZSCIICursorUp    = 129
	ZSCIICursorDown  = 130
	ZSCIICursorLeft  = 131
	ZSCIICursorRight = 132
)

// Mapper converts between Unicode code points and Z-SCII bytes.
type Mapper interface {
	ToZSCII(r rune) (byte, bool)
	FromZSCII(b byte) rune
}

// defaultMapper implements the ASCII part of the Z-SCII table: 13 is
// newline and 32-126 is US-ASCII verbatim. The 155-251 extra-characters
// range is not mapped: ToZSCII rejects every code point other than newline
// and 32-126, and FromZSCII returns any other byte value unchanged as a
// rune (the actual localisation table is an external collaborator per
// spec.md §1).
type defaultMapper struct{}

// NewDefaultMapper returns the standard ASCII-range Z-SCII mapper.
func NewDefaultMapper() Mapper { return defaultMapper{} }

func (defaultMapper) ToZSCII(r rune) (byte, bool) {
	switch {
	case r == '\n':
		return 13, true
	case r >= 32 && r <= 126:
		return byte(r), true
	default:
		return 0, false
	}
}

func (defaultMapper) FromZSCII(b byte) rune {
	if b == 13 {
		return '\n'
	}
	return rune(b)
}

// CellWidth asserts the adapter's one-cell-per-code-point monospace
// assumption (Design Notes §9); callers use it defensively when accepting
// text from the interpreter core.
func CellWidth(r rune) int {
	if w := runewidth.RuneWidth(r); w > 0 {
		return 1
	}
	return 0
}
