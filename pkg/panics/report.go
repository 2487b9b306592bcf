// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package panics

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/hush/pkg/util/caller"
	"github.com/cockroachdb/hush/pkg/util/timeutil"
	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/redact"
	"github.com/petermattis/goid"
)

// A Report describes one panic as captured at a reporting boundary, before
// any hook has seen it.
type Report struct {
	// Value is the value the goroutine panicked with, as returned by
	// recover().
	Value interface{}

	// Message is a redactable rendering of Value. Hooks that ship reports
	// off-process can redact it; DefaultHook strips the markers and prints
	// the full text.
	Message redact.RedactableString

	// GoroutineID identifies the panicking goroutine. It matches the id in
	// the "goroutine N" header of Stack.
	GoroutineID int64

	// File and Line locate the reporting boundary that captured the panic,
	// with the file reduced to a path relative to the repository. For panics
	// captured by a deferred boundary the location degrades to the runtime's
	// unwinding machinery; Stack holds the frames that matter.
	File string
	Line int

	// Stack is the stack of the panicking goroutine, formatted as by
	// runtime/debug.Stack and including the boundary's own frames.
	Stack []byte

	// Tags are the logging tags attached to the context at the boundary, or
	// nil if there were none.
	Tags *logtags.Buffer

	// Time is when the panic was captured, in UTC.
	Time time.Time
}

// now is swapped out by tests that pin the report timestamp.
var now = timeutil.Now

// makeReport builds the Report for a recovered panic value. depth locates
// the reporting boundary: 0 attributes the report to makeReport's caller.
func makeReport(ctx context.Context, r interface{}, depth int) Report {
	file, line, _ := caller.Lookup(depth + 1)
	return Report{
		Value:       r,
		Message:     redact.Sprint(r),
		GoroutineID: goid.Get(),
		File:        file,
		Line:        line,
		Stack:       debug.Stack(),
		Tags:        logtags.FromContext(ctx),
		Time:        now(),
	}
}

// String renders the report as a single header line, without the stack.
func (r Report) String() string {
	var buf strings.Builder
	if r.Tags != nil {
		fmt.Fprintf(&buf, "[%s] ", r.Tags)
	}
	fmt.Fprintf(&buf, "panic: %s (goroutine %d, %s:%d, %s)",
		r.Message.StripMarkers(), r.GoroutineID, r.File, r.Line,
		r.Time.Format(timeutil.FullTimeFormat))
	return buf.String()
}

// PanicAsError turns r into an error if it is not one already, annotated
// with the stack of the caller at the given depth. It is a convenience for
// hooks and recover() sites that hand panics to error-based plumbing.
func PanicAsError(depth int, r interface{}) error {
	if err, ok := r.(error); ok {
		return errors.WithStackDepth(err, depth+1)
	}
	return errors.NewWithDepthf(depth+1, "panic: %v", r)
}
