// Copyright 2020 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package skip

import (
	"fmt"
	"testing"

	"github.com/cockroachdb/hush/pkg/util"
	"github.com/cockroachdb/hush/pkg/util/syncutil"
)

// WithIssue skips this test, logging the given issue ID as the reason.
func WithIssue(t testing.TB, githubIssueID int, args ...interface{}) {
	t.Skip(append([]interface{}{
		fmt.Sprintf("https://github.com/cockroachdb/hush/issues/%d", githubIssueID)},
		args...)...)
}

// IgnoreLint skips this test, explicitly marking it as not a test that
// should be tracked as a "skipped test" by external tools. You should use this
// if, for example, your test should only be run in Race mode.
func IgnoreLint(t testing.TB, args ...interface{}) {
	t.Skip(args...)
}

// IgnoreLintf is like IgnoreLint, and it also takes a format string.
func IgnoreLintf(t testing.TB, format string, args ...interface{}) {
	t.Skipf(format, args...)
}

// UnderRace skips this test if the race detector is enabled.
func UnderRace(t testing.TB, args ...interface{}) {
	if util.RaceEnabled {
		t.Skip(append([]interface{}{"disabled under race"}, args...)...)
	}
}

// UnderShort skips this test if the -short flag is specified.
func UnderShort(t testing.TB, args ...interface{}) {
	if testing.Short() {
		t.Skip(append([]interface{}{"disabled under -short"}, args...)...)
	}
}

// UnderDeadlock skips this test if the deadlock detector is enabled.
func UnderDeadlock(t testing.TB, args ...interface{}) {
	if syncutil.DeadlockEnabled {
		t.Skip(append([]interface{}{"disabled under deadlock detector"}, args...)...)
	}
}
