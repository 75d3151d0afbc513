// Copyright © 2026 libmonospaceif contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: Adapter-owned configuration keys and per-key parse/merge.

// Package config holds the adapter-owned configuration surface (spec.md
// §4.F, §6): left-margin, right-margin, disable-hyphenation, disable-color.
// Every other key is forwarded to the backend untouched. Shaped after the
// teacher's config package (_teacher_ref/config_ref/config.go): a Default()
// constructor plus an explicit parse/merge step, adapted from whole-file JSON
// loading to the spec's per-key parse_config_parameter calls.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// Config holds the adapter-owned keys. Unknown keys are not stored here;
// Adapter forwards them to the backend (spec.md §4.F).
type Config struct {
	LeftMargin         int
	RightMargin        int
	DisableHyphenation bool
	DisableColor       bool
}

// Default returns the zero-margin, hyphenation-on, colour-on configuration.
func Default() *Config {
	return &Config{}
}

// OwnedKeys lists the adapter-owned config keys, in the order
// get_config_option_names must present them before the backend's own keys.
func OwnedKeys() []string {
	return []string{"left-margin", "right-margin", "disable-hyphenation", "disable-color"}
}

// trueLiteral / falseLiteral mirror the boolean-key values the spec allows:
// an empty value, or an explicit true/false literal.
const (
	trueLiteral  = "true"
	falseLiteral = "false"
)

// Parse applies one key=value pair. It returns true if the key was one of
// the adapter's own (handled here), false if the caller should forward it to
// the backend. err is non-nil only when the key was adapter-owned but the
// value could not be parsed (spec.md §7, Configuration error).
func (c *Config) Parse(key, value string) (handled bool, err error) {
	value = expandHome(value)
	switch key {
	case "left-margin":
		n, perr := strconv.Atoi(value)
		if perr != nil || n < 0 {
			log.Printf("Config: invalid left-margin value %q", value)
			return true, errInvalidMargin
		}
		c.LeftMargin = n
		return true, nil
	case "right-margin":
		n, perr := strconv.Atoi(value)
		if perr != nil || n < 0 {
			log.Printf("Config: invalid right-margin value %q", value)
			return true, errInvalidMargin
		}
		c.RightMargin = n
		return true, nil
	case "disable-hyphenation":
		c.DisableHyphenation = boolValue(value)
		return true, nil
	case "enable-color":
		c.DisableColor = !boolValue(value)
		if value == "" {
			c.DisableColor = false
		}
		return true, nil
	case "disable-color":
		c.DisableColor = boolValue(value)
		return true, nil
	default:
		return false, nil
	}
}

func boolValue(v string) bool {
	switch strings.ToLower(v) {
	case "", trueLiteral:
		return true
	case falseLiteral:
		return false
	default:
		return true
	}
}

// expandHome substitutes $(HOME) the way the spec's config layer requires.
func expandHome(v string) string {
	if !strings.Contains(v, "$(HOME)") {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return v
	}
	return strings.ReplaceAll(v, "$(HOME)", home)
}

// Get returns the string form of an adapter-owned key, or ("", false) if key
// is not adapter-owned.
func (c *Config) Get(key string) (string, bool) {
	switch key {
	case "left-margin":
		return strconv.Itoa(c.LeftMargin), true
	case "right-margin":
		return strconv.Itoa(c.RightMargin), true
	case "disable-hyphenation":
		return strconv.FormatBool(c.DisableHyphenation), true
	case "disable-color":
		return strconv.FormatBool(c.DisableColor), true
	default:
		return "", false
	}
}

var errInvalidMargin = marginError{}

type marginError struct{}

func (marginError) Error() string { return "margin value must be a non-negative integer" }
