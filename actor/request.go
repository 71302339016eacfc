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

package actor

import (
	"context"
	"reflect"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	gerrors "github.com/tochemey/distributor/errors"
	"github.com/tochemey/distributor/future"
	"github.com/tochemey/distributor/message"
	"github.com/tochemey/distributor/telemetry"
)

// reply is the outcome of a request once its envelope has been matched
type reply[R any] struct {
	value R
	err   error
}

// Request asks one subscriber of the group and returns a Future of the typed reply.
//
// The Future fails with:
//   - ErrUnreachable when the group has no subscriber
//   - ErrReplyFailed when the subscriber could not produce a reply
//   - ErrTypeMismatch when the reply is not an R
//   - ErrRequestCanceled when ctx is canceled before the reply arrives
//
// The request runs in the background; the actor system waits for in-flight
// requests when it stops.
func Request[R any](ctx context.Context, d Distributor, question any) future.Future[R] {
	return request[R](ctx, d, question, 0)
}

// RequestSync asks one subscriber of the group and blocks the calling goroutine
// until the typed reply arrives. It fails like Request.
// Calling it from within Receive blocks the calling actor for the duration of the request.
func RequestSync[R any](ctx context.Context, d Distributor, question any) (R, error) {
	reply := request[R](ctx, d, question, 0)
	<-reply.Done()
	result := reply.Result()
	return result.Success(), result.Failure()
}

// RequestTimeout behaves like Request but fails with ErrRequestTimeout when no
// reply arrives within timeout. A late reply is discarded.
// A non-positive timeout fails with ErrInvalidTimeout.
func RequestTimeout[R any](ctx context.Context, d Distributor, question any, timeout time.Duration) future.Future[R] {
	if timeout <= 0 {
		return future.Failed[R](gerrors.ErrInvalidTimeout)
	}
	return request[R](ctx, d, question, timeout)
}

// request runs the request state machine in a background task:
// created, question sent, then replied, timed out or failed, and finally delivered.
// A zero timeout waits for the reply without deadline.
func request[R any](ctx context.Context, d Distributor, question any, timeout time.Duration) future.Future[R] {
	if err := d.check(); err != nil {
		return future.Failed[R](err)
	}

	promise := future.NewPromise[R]()
	system := d.system
	system.spawnTask(func() {
		name := d.Name()
		start := time.Now()

		spanCtx, span := system.telemetry.Tracer().Start(ctx, "distributor.Request",
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(
				attribute.String(telemetry.DistributorAttributeKey, name),
				attribute.String("distributor.question", message.TypeName(question)),
			))
		defer span.End()

		outcome := awaitReply[R](spanCtx, d, question, timeout)
		system.metrics.requestDuration(spanCtx, name, time.Since(start))

		if outcome.err != nil {
			system.metrics.requestFailure(spanCtx, name)
			span.RecordError(outcome.err)
			span.SetStatus(codes.Error, outcome.err.Error())
			system.logger.Debugf("Request to group (%s) failed: %v", name, outcome.err)
			promise.Failure(outcome.err)
			return
		}

		span.SetStatus(codes.Ok, "")
		promise.Success(outcome.value)
	})

	return promise.Future()
}

// awaitReply sends the question and waits for the reply, the timer or the context,
// whichever comes first
func awaitReply[R any](ctx context.Context, d Distributor, question any, timeout time.Duration) reply[R] {
	answer, err := d.AskOne(ctx, question)
	if err != nil {
		return reply[R]{err: err}
	}

	var expired <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		expired = timer.C
	}

	select {
	case <-answer.Done():
		result := answer.Result()
		if err := result.Failure(); err != nil {
			return reply[R]{err: err}
		}
		return decode[R](result.Success())
	case <-expired:
		d.system.metrics.requestTimeout(ctx, d.Name())
		return reply[R]{err: gerrors.ErrRequestTimeout}
	case <-ctx.Done():
		return reply[R]{err: gerrors.NewErrRequestCanceled(ctx.Err())}
	}
}

// decode matches the reply envelope against R
func decode[R any](envelope *message.Envelope) reply[R] {
	return message.Match(envelope,
		func(envelope *message.Envelope) reply[R] {
			expected := reflect.TypeFor[R]().String()
			return reply[R]{err: gerrors.NewErrTypeMismatch(expected, envelope.TypeName())}
		},
		message.On(func(value R) reply[R] {
			return reply[R]{value: value}
		}),
	)
}
