/*
 * MIT License
 *
 * Copyright (c) 2022-2025  Arsene Tochemey Gandote
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package future

import (
	"context"
	"sync"
)

// Future represents a value which may or may not currently be available,
// but will be available at some point in the future, or an error if that value
// could not be made available.
//
// A Future is completed exactly once by its Promise. Late completions are discarded.
//
// Example usage:
//
//	promise := future.NewPromise[uint8]()
//	go func() { promise.Success(42) }()
//
//	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
//	defer cancel()
//
//	value, err := promise.Future().Await(ctx)
type Future[T any] interface {
	// Await blocks until the Future is completed or the context is canceled and
	// returns either a result or an error. Awaiting a completed Future again
	// returns the same outcome.
	Await(ctx context.Context) (T, error)
	// Done returns a channel that is closed once the Future is completed.
	// It allows racing a Future in a select statement.
	Done() <-chan struct{}
	// Result returns the outcome of a completed Future. It returns nil while the
	// Future is still pending.
	Result() *Result[T]
}

// Promise is a writable, single-assignment container which completes a Future.
// It is single-producer: only the first call to Success or Failure has an effect.
type Promise[T any] interface {
	// Success completes the underlying Future with a value.
	// It returns false when the Future was already completed.
	Success(T) bool
	// Failure fails the underlying Future with an error.
	// It returns false when the Future was already completed.
	Failure(error) bool
	// Future returns the underlying Future.
	Future() Future[T]
}

// Result represents the outcome of a completed Future.
type Result[T any] struct {
	success T
	failure error
}

// Success returns the successful result of the Future, if available.
func (x *Result[T]) Success() T {
	return x.success
}

// Failure returns the error encountered, if any.
func (x *Result[T]) Failure() error {
	return x.failure
}

// future implements both Future and Promise.
type future[T any] struct {
	once   sync.Once
	done   chan struct{}
	result *Result[T]
}

// enforce compilation error
var (
	_ Future[any]  = (*future[any])(nil)
	_ Promise[any] = (*future[any])(nil)
)

// NewPromise returns a new pending Promise.
func NewPromise[T any]() Promise[T] {
	return &future[T]{
		done: make(chan struct{}),
	}
}

// New creates a Future that executes the given task in a separate goroutine.
// The Future is completed with the value returned by the task or failed with the error.
func New[T any](task func() (T, error)) Future[T] {
	promise := NewPromise[T]()
	go func() {
		result, err := task()
		if err != nil {
			promise.Failure(err)
			return
		}
		promise.Success(result)
	}()
	return promise.Future()
}

// Completed returns a Future already completed with the given value.
func Completed[T any](value T) Future[T] {
	promise := NewPromise[T]()
	promise.Success(value)
	return promise.Future()
}

// Failed returns a Future already failed with the given error.
func Failed[T any](err error) Future[T] {
	promise := NewPromise[T]()
	promise.Failure(err)
	return promise.Future()
}

// Success completes the Future with a given value.
func (x *future[T]) Success(value T) bool {
	return x.complete(&Result[T]{success: value})
}

// Failure fails the Future with a given error.
func (x *future[T]) Failure(err error) bool {
	return x.complete(&Result[T]{failure: err})
}

// Future returns the underlying Future.
func (x *future[T]) Future() Future[T] {
	return x
}

// Await blocks until the Future is completed or context is canceled.
func (x *future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-x.done:
		return x.result.success, x.result.failure
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done returns a channel closed on completion.
func (x *future[T]) Done() <-chan struct{} {
	return x.done
}

// Result returns the outcome once completed, nil otherwise.
func (x *future[T]) Result() *Result[T] {
	select {
	case <-x.done:
		return x.result
	default:
		return nil
	}
}

func (x *future[T]) complete(result *Result[T]) bool {
	completed := false
	x.once.Do(func() {
		x.result = result
		close(x.done)
		completed = true
	})
	return completed
}
