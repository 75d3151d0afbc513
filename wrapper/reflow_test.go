// Copyright © 2026 libmonospaceif contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: wrapper/reflow_test.go
// Summary: reflowWrapper wrap/flush and metadata-position tests.

package wrapper

import "testing"

func TestReflowWrapperWrapsOnWordBoundary(t *testing.T) {
	var got []rune
	calls := 0
	w := NewFactory()(2, func(ctx int, text []rune) {
		calls++
		got = text
	}, 7, false)

	w.Wrap([]rune("ab cd"))
	w.Flush()

	if calls != 1 {
		t.Fatalf("sink called %d times, want 1", calls)
	}
	if string(got) != "ab\ncd" {
		t.Fatalf("wrapped = %q, want %q", string(got), "ab\ncd")
	}
}

func TestReflowWrapperShortTextPassesThroughUnwrapped(t *testing.T) {
	var got []rune
	w := NewFactory()(10, func(ctx int, text []rune) { got = text }, 0, false)

	w.Wrap([]rune("hi"))
	w.Flush()

	if string(got) != "hi" {
		t.Fatalf("wrapped = %q, want %q", string(got), "hi")
	}
}

func TestReflowWrapperFlushWithNothingSubmittedFiresMetadataOnly(t *testing.T) {
	sinkCalls := 0
	metaFired := false
	w := NewFactory()(10, func(ctx int, text []rune) { sinkCalls++ }, 0, false)

	w.InsertMetadata(func(ctx int, data uint32) { metaFired = true }, 3, 99)
	w.Flush()

	if sinkCalls != 0 {
		t.Fatalf("sink called %d times with nothing submitted, want 0", sinkCalls)
	}
	if !metaFired {
		t.Fatalf("metadata callback did not fire on flush")
	}
}

// TestReflowWrapperMetadataFiresAtFlushNotAtWrap covers the documented
// deferred-callback contract: a metadata callback queued mid-paragraph fires
// at the following Flush, not as soon as the runes before it are submitted.
func TestReflowWrapperMetadataFiresAtFlushNotAtWrap(t *testing.T) {
	fired := false
	w := NewFactory()(20, func(ctx int, text []rune) {}, 0, false)

	w.Wrap([]rune("before"))
	w.InsertMetadata(func(ctx int, data uint32) { fired = true }, 1, 42)
	w.Wrap([]rune(" after"))
	if fired {
		t.Fatalf("metadata callback fired before flush")
	}
	w.Flush()
	if !fired {
		t.Fatalf("metadata callback did not fire at flush")
	}
}

func TestReflowWrapperAdjustLineLength(t *testing.T) {
	var got []rune
	w := NewFactory()(2, func(ctx int, text []rune) { got = text }, 0, false)

	w.AdjustLineLength(10)
	w.Wrap([]rune("ab cd"))
	w.Flush()

	if string(got) != "ab cd" {
		t.Fatalf("wrapped after widening = %q, want %q", string(got), "ab cd")
	}
}

func TestReflowWrapperDestroyClearsPendingState(t *testing.T) {
	calls := 0
	w := NewFactory()(10, func(ctx int, text []rune) { calls++ }, 0, false)

	w.Wrap([]rune("hello"))
	w.Destroy()
	w.Flush()

	if calls != 0 {
		t.Fatalf("sink called %d times after destroy, want 0", calls)
	}
}
