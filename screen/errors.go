// Copyright © 2026 libmonospaceif contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/errors.go
// Summary: Result/Kind, the fatal-vs-recoverable outcome union (spec.md §7).

package screen

import (
	"errors"
	"fmt"
	"log"
)

// Kind classifies a Result the way Design Notes §9 asks: collapse the
// source's mix of exit(-1), negative return codes, and localised fatal
// translators into one union.
type Kind int

const (
	Ok Kind = iota
	ConfigError
	GeometryViolation
	HistoryInconsistent
	BackendErrorKind
)

// Result is returned by adapter operations that can fail. GeometryViolation
// and HistoryInconsistent are fatal (see Fatal) and the session should be
// torn down via CloseInterface; ConfigError and BackendErrorKind are
// surfaced to the caller as return values and are not Fatal().
type Result struct {
	Kind Kind
	Err  error
}

func ok() Result { return Result{Kind: Ok} }

func configErr(err error) Result {
	log.Printf("Screen: config error: %v", err)
	return Result{Kind: ConfigError, Err: err}
}

// geometryViolation and historyInconsistent construct a Result.Fatal()
// result, so the session is about to be torn down via CloseInterface;
// backendError constructs a non-fatal BackendErrorKind result. All of them
// log at construction, the single place every such Result is born, which
// catches every error path without scattering log.Printf calls across each
// call site.
func geometryViolation(msg string) Result {
	err := fmt.Errorf("%s: %w", msg, ErrGeometryViolation)
	log.Printf("Screen: %v", err)
	return Result{Kind: GeometryViolation, Err: err}
}

func historyInconsistent(msg string) Result {
	err := fmt.Errorf("%s: %w", msg, ErrHistoryInconsistent)
	log.Printf("Screen: %v", err)
	return Result{Kind: HistoryInconsistent, Err: err}
}

func backendError(err error) Result {
	log.Printf("Screen: backend error: %v", err)
	return Result{Kind: BackendErrorKind, Err: err}
}

// Fatal reports whether Kind demands session teardown.
func (r Result) Fatal() bool {
	return r.Kind == GeometryViolation || r.Kind == HistoryInconsistent
}

func (r Result) Error() string {
	if r.Err == nil {
		return "ok"
	}
	return r.Err.Error()
}

var (
	ErrGeometryViolation   = errors.New("geometry violation")
	ErrHistoryInconsistent = errors.New("history store inconsistency")
)
