// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package panics

import "context"

// ReportPanic delivers a recovered panic value to the installed hook. It
// does not alter control flow; the caller re-panics or exits as appropriate.
//
// depth locates the reporting boundary in the Report: 0 attributes it to
// ReportPanic's caller, 1 to that function's caller, and so on.
func ReportPanic(ctx context.Context, r interface{}, depth int) {
	rep := makeReport(ctx, r, depth+1)
	CurrentHook()(rep)
}

// RecoverAndReportPanic, upon catching a panic in a deferred call, reports
// it through the installed hook and then panics again with the original
// value. Defer it at the top of a unit of work whose panics should pass
// through the hook on their way up:
//
//	func runTask(ctx context.Context) {
//		defer panics.RecoverAndReportPanic(ctx)
//		...
//	}
//
// An enclosing recover() still sees the original panic value; if nothing
// recovers, the process dies as it would have without the boundary.
func RecoverAndReportPanic(ctx context.Context) {
	if r := recover(); r != nil {
		ReportPanic(ctx, r, 1)
		panic(r)
	}
}

// RecoverAndExit, upon catching a panic in a deferred call, reports it
// through the installed hook and then terminates the process through the
// configured exit function. It does not re-panic, so the hook's output is
// the only trace of the panic; the runtime never prints its own copy.
func RecoverAndExit(ctx context.Context) {
	if r := recover(); r != nil {
		ReportPanic(ctx, r, 1)
		exitFunc()(PanicExitCode)
	}
}

// Go runs fn in a new goroutine with RecoverAndExit installed at its top.
// A panic escaping fn is reported exactly once, by the installed hook.
func Go(ctx context.Context, fn func(ctx context.Context)) {
	go func() {
		defer RecoverAndExit(ctx)
		fn(ctx)
	}()
}
