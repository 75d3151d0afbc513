// Copyright © 2026 libmonospaceif contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: l10n/l10n.go
// Summary: Localisation-catalogue contract and a default English catalogue.

// Package l10n defines the localisation-catalogue contract (spec.md §6, an
// external collaborator) and a default English catalogue.
package l10n

// Catalogue resolves the handful of adapter-owned strings that must be
// localisable: the [MORE] prompt, the final quit prompt, and status-line
// labels.
type Catalogue interface {
	More() string
	PressAnyKeyToQuit() string
	Score() string
	Turns() string
	FunctionCallAborted() string
}

type english struct{}

// Default returns the built-in English catalogue.
func Default() Catalogue { return english{} }

func (english) More() string                 { return "[MORE]" }
func (english) PressAnyKeyToQuit() string     { return "Press any key to quit" }
func (english) Score() string                 { return "Score" }
func (english) Turns() string                 { return "Turns" }
func (english) FunctionCallAborted() string   { return "function call aborted due to error" }
