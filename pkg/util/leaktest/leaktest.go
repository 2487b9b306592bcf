// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package leaktest detects goroutines leaked by a test. Tests opt in with
//
//	defer leaktest.AfterTest(t)()
//
// as their first statement; goroutines already running at that point are
// not reported. The detection itself is delegated to go.uber.org/goleak,
// which knows about the runtime's own background goroutines and retries
// for a grace period so goroutines that are still winding down when the
// test body returns do not produce false positives.
package leaktest

import (
	"testing"

	"go.uber.org/goleak"
)

// AfterTest snapshots the currently-running goroutines and returns a
// function to be run at the end of the test (usually via defer) that fails
// the test if new goroutines are still running by then.
func AfterTest(t testing.TB) func() {
	opt := goleak.IgnoreCurrent()
	return func() {
		// Leaks are routine fallout of an already-failed test. Don't pile on.
		if t.Failed() {
			return
		}
		goleak.VerifyNone(t, opt)
	}
}

// TestMainWithLeakCheck is an implementation of TestMain which verifies
// that there are no leaked goroutines once all tests in the package have
// run. It does not return; the process exits with the tests' exit code.
func TestMainWithLeakCheck(m *testing.M) {
	goleak.VerifyTestMain(m)
}
