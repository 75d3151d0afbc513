// Copyright © 2026 libmonospaceif contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/zscreen-demo/main.go
// Summary: Minimal interpreter-core stand-in exercising the adapter end to end.
// Usage: ZSCREEN_DEBUG=1 routes log.Printf diagnostics to /tmp/zscreen-debug.log
// instead of discarding them.

// Command zscreen-demo drives the monospace screen adapter against a real
// terminal, standing in for a Z-machine interpreter core: it links the
// interface, prints a short banner to window 0, splits off a one-line
// window 1, and reads a single line before quitting.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/chrender/libmonospaceif/driver"
	"github.com/chrender/libmonospaceif/screen"
	"github.com/chrender/libmonospaceif/wrapper"
)

func init() {
	// Redirect log output away from stderr so it never mangles the
	// terminal display. If ZSCREEN_DEBUG is set, log to a file; otherwise
	// discard.
	if os.Getenv("ZSCREEN_DEBUG") != "" {
		logFile, err := os.OpenFile("/tmp/zscreen-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			log.SetOutput(logFile)
			log.SetFlags(log.Ltime | log.Lmicroseconds)
		} else {
			log.SetOutput(io.Discard)
		}
	} else {
		log.SetOutput(io.Discard)
	}
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "zscreen-demo:", err)
		os.Exit(1)
	}
}

func run() error {
	tscreen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	backend := driver.NewTcellBackend(tscreen)

	a := screen.New(backend, wrapper.NewFactory())
	a.LinkInterfaceToStory("zscreen-demo", 5)
	defer a.CloseInterface("")

	a.SplitWindow(1)
	a.SetWindow(1)
	a.SetTextStyle(driver.StyleReverse)
	a.ZUCSOutput([]rune("zscreen-demo"))
	a.SetWindow(0)
	a.SetTextStyle(driver.StyleRoman)

	a.ZUCSOutput([]rune("Welcome. Type something and press enter.\n\n> "))

	dest := make([]byte, 256)
	n := a.ReadLine(dest, len(dest), 0, nil, 0, false, false)
	if n > 0 {
		a.ZUCSOutput([]rune(fmt.Sprintf("\nyou typed %d byte(s). Press any key to quit.\n", n)))
		a.ReadChar(0, nil)
	}
	return nil
}
