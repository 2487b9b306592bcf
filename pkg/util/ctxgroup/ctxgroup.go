// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package ctxgroup wraps golang.org/x/sync/errgroup with a derived context.
//
// The errgroup API is easy to misuse with contexts: the context returned by
// errgroup.WithContext is canceled as soon as the first function returns an
// error, but nothing forces the remaining functions to observe that
// cancellation, and the group's Wait ignores the context entirely. This
// package binds the two together. Functions started through GoCtx receive
// the derived context, and Wait returns an error whenever that context was
// canceled, even if every function returned nil.
//
// Typical usage:
//
//	g := ctxgroup.WithContext(ctx)
//	g.GoCtx(func(ctx context.Context) error { ... })
//	g.GoCtx(func(ctx context.Context) error { ... })
//	if err := g.Wait(); err != nil {
//		return err
//	}
package ctxgroup

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Group wraps errgroup.Group with the context it was started from.
type Group struct {
	wrapped *errgroup.Group
	ctx     context.Context
}

// WithContext returns a new Group and an associated Context derived from ctx.
// The derived context is canceled the first time a function passed to Go or
// GoCtx returns a non-nil error.
func WithContext(ctx context.Context) Group {
	grp, ctx := errgroup.WithContext(ctx)
	return Group{
		wrapped: grp,
		ctx:     ctx,
	}
}

// Wait blocks until all function calls from the Go and GoCtx methods have
// returned, then returns the first non-nil error (if any) from them. If Wait
// is invoked after the context (originally supplied to WithContext) is
// canceled, Wait returns an error even if no function did.
func (g Group) Wait() error {
	// NB: the context error must be read before waiting. The wrapped group
	// cancels the derived context when Wait returns, so reading it after
	// would report cancellation even for successful groups.
	ctxErr := g.ctx.Err()
	err := g.wrapped.Wait()
	if err != nil {
		return err
	}
	return ctxErr
}

// Go calls the given function in a new goroutine.
func (g Group) Go(f func() error) {
	g.wrapped.Go(f)
}

// GoCtx calls the given function in a new goroutine, passing it the group's
// derived context.
func (g Group) GoCtx(f func(ctx context.Context) error) {
	g.wrapped.Go(func() error {
		return f(g.ctx)
	})
}

// GroupWorkers runs num copies of the given worker function in a group,
// passing each its worker index, and waits for them all to finish.
func GroupWorkers(ctx context.Context, num int, f func(context.Context, int) error) error {
	group := WithContext(ctx)
	for i := 0; i < num; i++ {
		workerID := i
		group.GoCtx(func(ctx context.Context) error { return f(ctx, workerID) })
	}
	return group.Wait()
}

// GoAndWait calls the given functions each in a new goroutine and then waits
// for them all to finish, returning the first non-nil error.
func GoAndWait(ctx context.Context, fs ...func(ctx context.Context) error) error {
	group := WithContext(ctx)
	for _, f := range fs {
		group.GoCtx(f)
	}
	return group.Wait()
}
