// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package hush_test

import (
	"testing"

	"github.com/cockroachdb/hush/pkg/hush"
	"github.com/cockroachdb/hush/pkg/util/leaktest"
	"github.com/stretchr/testify/require"
)

func TestGuardRestoresOnClose(t *testing.T) {
	defer leaktest.AfterTest(t)()
	rec := captureReports(t)

	g := hush.HushThisTest()
	raise("hushed")
	require.Equal(t, 0, rec.count())

	g.Close()
	raise("loud")
	require.Equal(t, 1, rec.count())
}

func TestGuardCloseIdempotent(t *testing.T) {
	defer leaktest.AfterTest(t)()
	rec := captureReports(t)

	g := hush.HushThisTest()
	g.Close()
	g.Close()

	// After closing, the goroutine is back to normal and can be hushed
	// again from scratch.
	raise("loud")
	require.Equal(t, 1, rec.count())
	require.True(t, hush.HushPanic())
	require.True(t, hush.UnhushPanic())
}

// TestGuardPreservesOuterHush checks that a guard taken while the goroutine
// is already hushed does not unhush it on Close; the enclosing hush stays
// in effect until its own UnhushPanic.
func TestGuardPreservesOuterHush(t *testing.T) {
	defer leaktest.AfterTest(t)()
	rec := captureReports(t)

	require.True(t, hush.HushPanic())
	g := hush.HushThisTest()
	g.Close()

	raise("still hushed")
	require.Equal(t, 0, rec.count())

	require.True(t, hush.UnhushPanic())
	raise("loud")
	require.Equal(t, 1, rec.count())
}

func TestZeroGuardClose(t *testing.T) {
	defer leaktest.AfterTest(t)()

	// A zero guard belongs to no goroutine; Close must be a no-op.
	var g hush.Guard
	g.Close()
	g.Close()
}
