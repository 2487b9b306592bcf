// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package hush_test

import (
	"fmt"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/hush/pkg/hush"
	"github.com/cockroachdb/hush/pkg/util/leaktest"
)

// TestDataDriven exercises hush state transitions from a script. All
// directives run on the test's goroutine, so hush/unhush/guard commands and
// the panics they fence apply to one and the same goroutine, exactly as in
// real use. Commands:
//
//	hush            suppress reports for this goroutine
//	unhush          stop suppressing
//	guard           like hush, but remembered in a guard
//	close           close the guard
//	panic value=<v> panic with <v> behind a reporting boundary; reports
//	                whether the report was dropped or forwarded
func TestDataDriven(t *testing.T) {
	defer leaktest.AfterTest(t)()
	rec := captureReports(t)

	var guard *hush.Guard
	datadriven.RunTest(t, "testdata/hush", func(t *testing.T, d *datadriven.TestData) string {
		switch d.Cmd {
		case "hush":
			if hush.HushPanic() {
				return "hushed"
			}
			return "already hushed"
		case "unhush":
			if hush.UnhushPanic() {
				return "unhushed"
			}
			return "not hushed"
		case "guard":
			guard = hush.HushThisTest()
			return "guard open"
		case "close":
			guard.Close()
			return "guard closed"
		case "panic":
			var value string
			d.ScanArgs(t, "value", &value)
			before := rec.count()
			raise(value)
			if rec.count() == before {
				return "dropped"
			}
			return fmt.Sprintf("forwarded: %v", rec.last().Value)
		}
		d.Fatalf(t, "unknown command %q", d.Cmd)
		return ""
	})
}
