// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package panics

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/hush/pkg/util/syncutil"
)

// PanicExitCode is the status RecoverAndExit terminates the process with.
// It matches the exit status the Go runtime uses for an unrecovered panic.
const PanicExitCode = 2

var exitOverride struct {
	syncutil.Mutex
	f         func(int)
	hideStack bool
}

// SetExitFunc allows setting a function that will be called to exit the
// process when a panic reaches RecoverAndExit. The supplied bool, if true,
// suppresses the stack trace in DefaultHook's output, which is useful for
// test callers wishing to keep the captured output reasonably clean.
//
// Call ResetExitFunc to undo.
func SetExitFunc(hideStack bool, f func(int)) {
	if f == nil {
		panic(errors.AssertionFailedf("nil exit function; use ResetExitFunc instead"))
	}
	exitOverride.Lock()
	defer exitOverride.Unlock()
	exitOverride.f = f
	exitOverride.hideStack = hideStack
}

// ResetExitFunc undoes any prior call to SetExitFunc.
func ResetExitFunc() {
	exitOverride.Lock()
	defer exitOverride.Unlock()
	exitOverride.f = nil
	exitOverride.hideStack = false
}

func exitFunc() func(int) {
	exitOverride.Lock()
	defer exitOverride.Unlock()
	if exitOverride.f != nil {
		return exitOverride.f
	}
	return os.Exit
}

func stackHidden() bool {
	exitOverride.Lock()
	defer exitOverride.Unlock()
	return exitOverride.hideStack
}
