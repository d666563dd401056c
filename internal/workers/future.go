// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs CPU-bound work (key derivation, mostly) off the
// caller's goroutine so that hosts stay responsive and can abandon the work
// through a context.
package workers

import (
	"context"
	"fmt"
)

// Future is the pending result of a function started with [Go].
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Go runs fn in a new goroutine and returns a Future for its result.
// fn receives ctx and should return early when it is cancelled, although
// most CPU-bound functions cannot; [Future.Await] returns as soon as ctx is
// done either way.
//
// A panic in fn is recovered and reported as an error from Await.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	go func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				f.err = fmt.Errorf("workers: task panicked: %v", r)
			}
		}()
		f.value, f.err = fn(ctx)
	}()

	return f
}

// Await blocks until the task finishes or ctx is done, whichever comes first.
// When ctx wins, the zero value and ctx.Err() are returned and the task keeps
// running in the background; use [Future.Discard] to dispose of its result.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done is closed when the task has finished.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Discard waits for the task in the background and hands its value to
// dispose once it is available. It is used to wipe key material produced by a
// task whose caller already gave up.
func (f *Future[T]) Discard(dispose func(T)) {
	go func() {
		<-f.done
		if f.err == nil && dispose != nil {
			dispose(f.value)
		}
	}()
}
