// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package hush

import "sync"

// A Guard restores, on Close, the hush state a HushThisTest call found. If
// the goroutine was not hushed before the call, Close unhushes it; if an
// enclosing hush was already in effect, Close leaves it in place.
type Guard struct {
	gid   int64
	added bool
	once  sync.Once
}

// Close undoes the HushThisTest call that produced the guard. It is
// idempotent, and may be called from any goroutine; it always operates on
// the goroutine that created the guard.
func (g *Guard) Close() {
	g.once.Do(func() {
		if !g.added {
			// The creating goroutine was hushed before the guard existed.
			// That enclosing hush is not ours to undo.
			return
		}
		ensureRegistry().ids.Remove(g.gid)
	})
}
