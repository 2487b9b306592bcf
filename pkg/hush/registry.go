// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package hush

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/cockroachdb/hush/pkg/panics"
	"github.com/cockroachdb/hush/pkg/util/syncutil"
)

// registry is the process-wide hush state: the hook that was installed when
// the interceptor took over, which reports from non-hushed goroutines are
// forwarded to, and the set of hushed goroutine ids.
type registry struct {
	prev panics.Hook
	ids  syncutil.Set[int64]
}

var installOnce sync.Once

// reg is published (exactly once) after the interceptor has been installed
// and the registry fully built. A nil load therefore means installation is
// still in flight on some other goroutine.
var reg atomic.Pointer[registry]

// ensureRegistry installs the intercepting hook on first use and returns
// the registry.
func ensureRegistry() *registry {
	installOnce.Do(func() {
		r := &registry{}
		r.prev = panics.SetHook(intercept)
		reg.Store(r)
	})
	return reg.Load()
}

// intercept is the hook the registry installs. It drops reports from hushed
// goroutines and forwards everything else to the previously installed hook.
func intercept(rep panics.Report) {
	// The interceptor is swapped in before the registry is published, so a
	// goroutine that panics in that window can observe a nil registry here.
	// The window is a handful of instructions on the installing goroutine;
	// spin until the publication lands.
	r := reg.Load()
	for r == nil {
		runtime.Gosched()
		r = reg.Load()
	}
	if r.prev == nil {
		// Never reached: the registry is published with prev set. Forward to
		// the default hook rather than swallow the report.
		panics.DefaultHook(rep)
		return
	}
	if r.ids.Contains(rep.GoroutineID) {
		// Hushed. The report stops here.
		return
	}
	r.prev(rep)
}
