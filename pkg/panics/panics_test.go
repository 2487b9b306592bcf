// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package panics

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/hush/pkg/util/leaktest"
	"github.com/stretchr/testify/require"
)

func TestSetHookExchangesHooks(t *testing.T) {
	defer leaktest.AfterTest(t)()
	defer ResetHook()

	var got []string
	record := func(label string) Hook {
		return func(rep Report) {
			got = append(got, label+":"+rep.Message.StripMarkers())
		}
	}

	SetHook(record("first"))
	prev := SetHook(record("second"))

	// The installed hook is now "second"; "first" came back from the swap.
	CurrentHook()(Report{Message: "boom"})
	prev(Report{Message: "boom"})
	require.Equal(t, []string{"second:boom", "first:boom"}, got)
}

func TestHookChaining(t *testing.T) {
	defer leaktest.AfterTest(t)()
	defer ResetHook()

	var got []string
	SetHook(func(rep Report) { got = append(got, "inner") })

	var prev Hook
	prev = SetHook(func(rep Report) {
		got = append(got, "outer")
		prev(rep)
	})

	ctx := context.Background()
	require.PanicsWithValue(t, "boom", func() {
		defer RecoverAndReportPanic(ctx)
		panic("boom")
	})
	require.Equal(t, []string{"outer", "inner"}, got)
}

func TestSetHookRejectsNil(t *testing.T) {
	defer leaktest.AfterTest(t)()

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok, "panic value %T is not an error", r)
		require.True(t, errors.HasAssertionFailure(err))
	}()
	SetHook(nil)
}

func TestSetExitFuncRejectsNil(t *testing.T) {
	defer leaktest.AfterTest(t)()

	require.Panics(t, func() { SetExitFunc(false, nil) })
}
