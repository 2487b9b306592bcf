// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package timeutil

import "time"

// Now returns the current UTC time.
//
// UTC time is used throughout the library so that timestamps embedded in
// reports compare consistently regardless of the local time zone. Calling
// UTC() also has the desirable side effect of stripping the monotonic clock
// reading, so two timestamps taken through this function round-trip through
// their formatted representation unchanged.
func Now() time.Time {
	return time.Now().UTC()
}

// Since returns the time elapsed since t.
// It is shorthand for Now().Sub(t).
func Since(t time.Time) time.Duration {
	return time.Since(t)
}

// Until returns the duration until t.
// It is shorthand for t.Sub(Now()).
func Until(t time.Time) time.Duration {
	return time.Until(t)
}
