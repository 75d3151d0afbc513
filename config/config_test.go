// Copyright © 2026 libmonospaceif contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config_test.go
// Summary: Parse/merge and invalid-value logging tests.

package config

import (
	"os"
	"testing"
)

func TestDefaultIsZeroValue(t *testing.T) {
	c := Default()
	if c.LeftMargin != 0 || c.RightMargin != 0 || c.DisableHyphenation || c.DisableColor {
		t.Fatalf("Default() = %+v, want zero value", c)
	}
}

func TestParseMargins(t *testing.T) {
	c := Default()
	if handled, err := c.Parse("left-margin", "4"); !handled || err != nil {
		t.Fatalf("parse left-margin: handled=%v err=%v", handled, err)
	}
	if handled, err := c.Parse("right-margin", "2"); !handled || err != nil {
		t.Fatalf("parse right-margin: handled=%v err=%v", handled, err)
	}
	if c.LeftMargin != 4 || c.RightMargin != 2 {
		t.Fatalf("margins = %d/%d, want 4/2", c.LeftMargin, c.RightMargin)
	}
}

func TestParseInvalidMarginReportsError(t *testing.T) {
	c := Default()
	if handled, err := c.Parse("left-margin", "not-a-number"); !handled || err == nil {
		t.Fatalf("parse invalid left-margin: handled=%v err=%v, want handled=true err!=nil", handled, err)
	}
	if handled, err := c.Parse("right-margin", "-1"); !handled || err == nil {
		t.Fatalf("parse negative right-margin: handled=%v err=%v, want handled=true err!=nil", handled, err)
	}
}

func TestParseBooleanKeys(t *testing.T) {
	c := Default()
	if handled, err := c.Parse("disable-hyphenation", ""); !handled || err != nil {
		t.Fatalf("parse disable-hyphenation: handled=%v err=%v", handled, err)
	}
	if !c.DisableHyphenation {
		t.Fatalf("disable-hyphenation with empty value should default to true")
	}

	c2 := Default()
	if handled, _ := c2.Parse("disable-color", "false"); !handled {
		t.Fatalf("parse disable-color=false not handled")
	}
	if c2.DisableColor {
		t.Fatalf("disable-color=false should leave DisableColor false")
	}
}

func TestParseUnknownKeyNotHandled(t *testing.T) {
	c := Default()
	handled, err := c.Parse("some-backend-key", "xterm-256color")
	if handled || err != nil {
		t.Fatalf("parse unknown key: handled=%v err=%v, want false, nil", handled, err)
	}
}

func TestParseExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory available in this environment")
	}
	if got, want := expandHome("$(HOME)/zscreen.log"), home+"/zscreen.log"; got != want {
		t.Fatalf("expandHome substituted to %q, want %q", got, want)
	}
	c := Default()
	// left-margin doesn't take a path, but Parse runs every value through
	// the same expandHome substitution before strconv.Atoi; the expanded
	// home path is not an integer, so parsing must still fail.
	_, perr := c.Parse("left-margin", "$(HOME)")
	if perr == nil {
		t.Fatalf("expected $(HOME) alone to fail integer parsing after expansion to %q", home)
	}
}

func TestGetReturnsAdapterOwnedKeys(t *testing.T) {
	c := Default()
	c.LeftMargin = 3
	c.DisableColor = true
	if v, ok := c.Get("left-margin"); !ok || v != "3" {
		t.Fatalf("Get(left-margin) = %q, %v, want 3, true", v, ok)
	}
	if v, ok := c.Get("disable-color"); !ok || v != "true" {
		t.Fatalf("Get(disable-color) = %q, %v, want true, true", v, ok)
	}
	if _, ok := c.Get("unknown-key"); ok {
		t.Fatalf("Get(unknown-key) reported ok, want false")
	}
}

func TestOwnedKeysOrder(t *testing.T) {
	want := []string{"left-margin", "right-margin", "disable-hyphenation", "disable-color"}
	got := OwnedKeys()
	if len(got) != len(want) {
		t.Fatalf("OwnedKeys() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("OwnedKeys()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
