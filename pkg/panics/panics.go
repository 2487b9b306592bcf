// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package panics funnels panics through a process-wide report hook.
//
// The Go runtime prints an unrecovered panic to stderr on its own terms:
// unconditionally, without logging tags, and only at the moment the process
// dies. This package gives a program a reporting boundary it controls
// instead. Code brackets units of work with the deferred helpers
// RecoverAndReportPanic or RecoverAndExit (or starts goroutines through Go,
// which installs the latter), and every panic crossing such a boundary is
// turned into a Report and delivered to the installed Hook before control
// flow resumes its course.
//
// The hook in effect at process start is DefaultHook, which renders the
// report to stderr much like the runtime would. Programs exchange it with
// SetHook to redirect, decorate, or filter reports; the previous hook is
// returned so replacements can chain to it.
//
// Note that a boundary installed with RecoverAndReportPanic re-panics after
// reporting. If nothing above it recovers, the runtime still prints its own
// copy of the panic when the process dies; that copy is outside this
// package's control.
package panics

import (
	"sync/atomic"

	"github.com/cockroachdb/errors"
)

// A Hook receives one Report per panic that crosses a reporting boundary.
//
// Hooks run on the panicking goroutine, between recover() and whatever the
// boundary does next (re-panic or exit). They must not panic.
type Hook func(Report)

// hook holds the installed Hook. It is never nil after package
// initialization.
var hook atomic.Pointer[Hook]

func init() {
	h := Hook(DefaultHook)
	hook.Store(&h)
}

// SetHook installs h as the process-wide report hook and returns the hook it
// replaces. The exchange is atomic: a concurrent reporter observes either
// the previous hook or h, never neither.
//
// A replacement hook that wants to augment rather than supplant reporting
// should capture the returned hook and invoke it:
//
//	var prev panics.Hook
//	prev = panics.SetHook(func(rep panics.Report) {
//		count.Add(1)
//		prev(rep)
//	})
func SetHook(h Hook) Hook {
	if h == nil {
		panic(errors.AssertionFailedf("cannot install a nil panic report hook"))
	}
	prev := hook.Swap(&h)
	return *prev
}

// CurrentHook returns the installed report hook.
func CurrentHook() Hook {
	if h := hook.Load(); h != nil {
		return *h
	}
	// Not reachable after package initialization; the reporting path forwards
	// rather than faults.
	return DefaultHook
}

// ResetHook reinstalls DefaultHook, undoing any SetHook calls.
func ResetHook() {
	SetHook(DefaultHook)
}
