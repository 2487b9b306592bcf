// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package panics

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/hush/pkg/util/syncutil"
	"github.com/cockroachdb/ttycolor"
)

// OrigStderr points to the original stderr stream, duplicated at process
// start. Reports can reach it even after os.Stderr has been repointed at a
// file or pipe.
var OrigStderr = func() *os.File {
	fd, err := dupFD(os.Stderr.Fd())
	if err != nil {
		panic(err)
	}

	return os.NewFile(fd, os.Stderr.Name())
}()

// stderrSink is where DefaultHook writes. Tests swap it out (via
// testutils.TestingHook) to capture report output.
var stderrSink io.Writer = os.Stderr

// stderrSinkMu serializes DefaultHook writes so reports from concurrently
// panicking goroutines don't interleave.
var stderrSinkMu syncutil.Mutex

// DefaultHook renders the report to stderr. It is the hook in effect at
// process start.
//
// The output stays close to the runtime's own panic report so that tooling
// which greps for "panic:" keeps working: any logging tags in brackets, the
// "panic: <value>" line, then the goroutine's stack after a blank line. The
// stack is omitted when an exit function was installed with hideStack set.
func DefaultHook(rep Report) {
	var buf bytes.Buffer
	if rep.Tags != nil {
		fmt.Fprintf(&buf, "[%s] ", rep.Tags)
	}
	fmt.Fprintf(&buf, "panic: %s\n", rep.Message.StripMarkers())
	if len(rep.Stack) > 0 && !stackHidden() {
		fmt.Fprintf(&buf, "\n%s", rep.Stack)
	}

	stderrSinkMu.Lock()
	defer stderrSinkMu.Unlock()
	w := stderrSink
	if w == io.Writer(os.Stderr) {
		ttycolor.Stderr(ttycolor.Red)
		defer ttycolor.Stderr(ttycolor.Reset)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		// The sink is broken. The duplicated original stream is the report's
		// last resort; if that fails too there is nowhere left to write.
		_, _ = OrigStderr.Write(buf.Bytes())
	}
}
