// Copyright © 2026 libmonospaceif contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: wrapper/wrapper.go
// Summary: Wrapper/Factory/Sink contract the output pipeline drives.

// Package wrapper defines the external word-wrapper library contract the
// adapter's output pipeline drives (spec.md §6) and a default implementation
// built on github.com/muesli/reflow/wordwrap.
package wrapper

// Sink receives wrapped text destined for the window identified by ctx. The
// adapter's output pipeline passes an opaque small integer window id as ctx
// (see Design Notes §9 — no pointer-to-window-id indirection).
type Sink func(ctx int, text []rune)

// MetadataCallback is invoked by the wrapper at the point in the output
// stream it was queued for, i.e. once every rune submitted before the
// InsertMetadata call has reached the sink. Used for style/colour changes
// that must take effect exactly where they were requested after wrapping,
// not where they were submitted.
type MetadataCallback func(ctx int, data uint32)

// Wrapper is one window's word-wrapping sink, parameterised by content
// width. Implementations buffer text until Flush or until a full line is
// ready, then call Sink with newline-terminated or partial runs.
type Wrapper interface {
	Wrap(text []rune)
	Flush()
	InsertMetadata(cb MetadataCallback, ctx int, data uint32)
	SetLineIndex(n int)
	AdjustLineLength(n int)
	Destroy()
}

// Factory constructs a Wrapper bound to one window.
type Factory func(width int, sink Sink, ctx int, hyphenate bool) Wrapper
