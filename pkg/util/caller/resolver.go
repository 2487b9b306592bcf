// Copyright 2015 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package caller

import (
	"path"
	"runtime"
	"strings"

	"github.com/cockroachdb/hush/pkg/util/syncutil"
)

// A CallResolver is a helping hand around runtime.Caller() to look up file,
// line and name of the calling function. CallResolver has a cache that is
// used to speed up repeated lookups from the same call site.
type CallResolver struct {
	mu    syncutil.Mutex
	cache map[uintptr]*cachedLookup
}

type cachedLookup struct {
	file string
	line int
	fun  string
}

var dummyLookup = cachedLookup{file: "???", line: 1, fun: "???"}

// defaultCallResolver is the resolver used by the package-level Lookup.
var defaultCallResolver = &CallResolver{cache: map[uintptr]*cachedLookup{}}

// Lookup returns the (reduced) file, line and function of the caller at the
// requested depth, using a default call resolver which drops the path prefix
// of this repository (and of well-known sibling repositories).
func Lookup(depth int) (_file string, _line int, _fun string) {
	return defaultCallResolver.Lookup(depth + 1)
}

// Lookup returns the (reduced) file, line and function of the caller at the
// requested depth.
func (cr *CallResolver) Lookup(depth int) (_file string, _line int, _fun string) {
	pc, _, _, ok := runtime.Caller(depth + 1)
	if !ok || cr == nil {
		return dummyLookup.file, dummyLookup.line, dummyLookup.fun
	}
	cr.mu.Lock()
	defer cr.mu.Unlock()
	if v, okCache := cr.cache[pc]; okCache {
		return v.file, v.line, v.fun
	}

	// Now do the expensive resolution and cache the result.
	frame, _ := runtime.CallersFrames([]uintptr{pc}).Next()
	v := &cachedLookup{file: dummyLookup.file, line: frame.Line, fun: dummyLookup.fun}
	if frame.Function != "" {
		pkg, fun := parseFQFun(frame.Function)
		// NB: frame.File uses unix separators on all platforms.
		v.file = path.Join(pkg, path.Base(frame.File))
		v.fun = fun
	}
	cr.cache[pc] = v
	return v.file, v.line, v.fun
}

// uninterestingPrefixes are path prefixes that add more noise than value when
// they appear in front of every reported location, so they are stripped from
// the package path. Longer prefixes must come first.
var uninterestingPrefixes = []string{
	"github.com/cockroachdb/hush/pkg/",
	"github.com/cockroachdb/",
}

// parseFQFun splits a fully-qualified function name as found in
// runtime.Frame.Function into its package path and function parts, i.e.
// "github.com/foo/bar/baz.(*Something).Else" turns into the package
// "github.com/foo/bar/baz" and the function "(*Something).Else".
// Uninteresting package path prefixes are stripped.
func parseFQFun(fqFun string) (pkg string, fun string) {
	// The package qualifier extends to the first '.' following the last '/'.
	// Note that the function part may itself contain dots (method receivers,
	// anonymous function suffixes like ".func1").
	slash := strings.LastIndexByte(fqFun, '/')
	dot := strings.IndexByte(fqFun[slash+1:], '.')
	if dot == -1 {
		return "", fqFun
	}
	dot += slash + 1
	pkg, fun = fqFun[:dot], fqFun[dot+1:]
	for _, prefix := range uninterestingPrefixes {
		if strings.HasPrefix(pkg, prefix) {
			pkg = pkg[len(prefix):]
			break
		}
	}
	return pkg, fun
}
