// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package hush suppresses panic reports for chosen goroutines.
//
// The panics package funnels every panic that crosses a reporting boundary
// through a process-wide hook. Tests that exercise intentional panics, such
// as require.Panics closures or crash-path tests, drown the output in
// reports for failures that are entirely expected. Hushing marks the current
// goroutine so that its reports are dropped before they reach the hook that
// would print them; reports from every other goroutine pass through
// untouched.
//
// The first use of this package swaps an intercepting hook in front of
// whatever hook is installed at that moment, and the interceptor stays
// installed for the life of the process, even when no goroutine is hushed.
// A program that wants a custom hook should install it with panics.SetHook
// before the first hush call, so that the interceptor forwards to it.
//
// The typical use is the guard form:
//
//	func TestDivideByZeroPanics(t *testing.T) {
//		defer hush.HushThisTest().Close()
//		require.Panics(t, func() {
//			defer panics.RecoverAndReportPanic(context.Background())
//			divide(1, 0)
//		})
//	}
//
// HushPanic and UnhushPanic are the low-level pair for callers that manage
// the hushed window themselves.
//
// Hushing is strictly per-goroutine. A goroutine spawned from a hushed
// goroutine is not hushed, and a goroutine cannot hush another. Goroutine
// ids are never reused within a process, so a hushed id that is never
// unhushed wastes a registry entry but cannot silence an unrelated
// goroutine later.
//
// Hushing silences reports, not panics: the panic value still unwinds the
// stack, and a panic that nothing recovers still crashes the process with
// the runtime's own output, which no hook can suppress.
package hush
