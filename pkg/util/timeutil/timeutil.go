// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package timeutil

// FullTimeFormat is the time format used to display any timestamp
// with date, time and time zone data.
const FullTimeFormat = "2006-01-02 15:04:05.999999-07:00:00"
