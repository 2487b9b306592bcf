// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package hush

import "github.com/petermattis/goid"

// HushPanic suppresses panic reports for the calling goroutine until a
// matching UnhushPanic. It returns true if the goroutine was not already
// hushed; hushing an already-hushed goroutine is a no-op.
//
// Most callers are better served by HushThisTest, whose guard restores the
// previous state even when the test body panics.
func HushPanic() bool {
	return ensureRegistry().ids.Add(goid.Get())
}

// UnhushPanic re-enables panic reports for the calling goroutine. It
// returns true if the goroutine was hushed; unhushing a goroutine that was
// never hushed is a no-op.
func UnhushPanic() bool {
	return ensureRegistry().ids.Remove(goid.Get())
}

// HushThisTest suppresses panic reports for the calling goroutine and
// returns a Guard that undoes it. The usual form is
//
//	defer hush.HushThisTest().Close()
//
// at the top of a test whose intentional panics would otherwise be
// reported.
func HushThisTest() *Guard {
	gid := goid.Get()
	added := ensureRegistry().ids.Add(gid)
	return &Guard{gid: gid, added: added}
}
