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
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/wrapperspb"

	gerrors "github.com/tochemey/distributor/errors"
)

func TestRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("With Request", func(t *testing.T) {
		system := newTestSystem(t)
		spawn(t, system, "answer", newResponder(uint8(42)), WithDistributors("answers"))

		reply := Request[uint8](ctx, system.Distributor("answers"), question{})
		value, err := reply.Await(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 42, value)
	})
	t.Run("With Request of a protobuf reply", func(t *testing.T) {
		system := newTestSystem(t)
		spawn(t, system, "proto-answer", newResponder(wrapperspb.String("pong")), WithDistributors("proto-answers"))

		value, err := RequestSync[*wrapperspb.StringValue](ctx, system.Distributor("proto-answers"), question{})
		require.NoError(t, err)
		assert.Equal(t, "pong", value.GetValue())
	})
	t.Run("With RequestSync", func(t *testing.T) {
		system := newTestSystem(t)
		spawn(t, system, "sync-answer", newResponder("pong"), WithDistributors("sync"))

		value, err := RequestSync[string](ctx, system.Distributor("sync"), question{})
		require.NoError(t, err)
		assert.Equal(t, "pong", value)
	})
	t.Run("With RequestSync on an empty group", func(t *testing.T) {
		system := newTestSystem(t)
		value, err := RequestSync[string](ctx, system.Distributor("nobody"), question{})
		require.ErrorIs(t, err, gerrors.ErrUnreachable)
		assert.Empty(t, value)
	})
	t.Run("With a reply of the wrong type", func(t *testing.T) {
		system := newTestSystem(t)
		spawn(t, system, "wrong", newResponder("not a number"), WithDistributors("wrong"))

		_, err := RequestSync[uint8](ctx, system.Distributor("wrong"), question{})
		require.ErrorIs(t, err, gerrors.ErrTypeMismatch)
		assert.Contains(t, err.Error(), "uint8")
		assert.Contains(t, err.Error(), "string")
	})
	t.Run("With RequestTimeout shorter than the reply latency", func(t *testing.T) {
		system := newTestSystem(t)
		slow := newResponder(uint8(1))
		slow.delay = 200 * time.Millisecond
		spawn(t, system, "slow", slow, WithDistributors("slow"))

		_, err := RequestTimeout[uint8](ctx, system.Distributor("slow"), question{}, 20*time.Millisecond).Await(ctx)
		require.ErrorIs(t, err, gerrors.ErrRequestTimeout)
	})
	t.Run("With RequestTimeout longer than the reply latency", func(t *testing.T) {
		system := newTestSystem(t)
		slow := newResponder(uint8(1))
		slow.delay = 20 * time.Millisecond
		spawn(t, system, "fast-enough", slow, WithDistributors("fast-enough"))

		value, err := RequestTimeout[uint8](ctx, system.Distributor("fast-enough"), question{}, time.Second).Await(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 1, value)
	})
	t.Run("With RequestTimeout of an invalid timeout", func(t *testing.T) {
		system := newTestSystem(t)
		spawn(t, system, "whatever", newResponder(uint8(1)), WithDistributors("whatever"))

		_, err := RequestTimeout[uint8](ctx, system.Distributor("whatever"), question{}, 0).Await(ctx)
		require.ErrorIs(t, err, gerrors.ErrInvalidTimeout)
	})
	t.Run("With a responder that does not reply", func(t *testing.T) {
		system := newTestSystem(t)
		spawn(t, system, "mute", silent{}, WithDistributors("mute"))

		_, err := RequestSync[uint8](ctx, system.Distributor("mute"), question{})
		require.ErrorIs(t, err, gerrors.ErrReplyFailed)
		require.ErrorIs(t, err, gerrors.ErrNoReply)
	})
	t.Run("With a responder recording an error", func(t *testing.T) {
		system := newTestSystem(t)
		cause := errors.New("database unavailable")
		spawn(t, system, "faulty", faulty{err: cause}, WithDistributors("faulty"))

		_, err := RequestSync[uint8](ctx, system.Distributor("faulty"), question{})
		require.ErrorIs(t, err, gerrors.ErrReplyFailed)
		require.ErrorIs(t, err, cause)
	})
	t.Run("With a panicking responder", func(t *testing.T) {
		system := newTestSystem(t)
		pid := spawn(t, system, "panicking", panicker{}, WithDistributors("panicking"))

		_, err := RequestSync[uint8](ctx, system.Distributor("panicking"), question{})
		require.ErrorIs(t, err, gerrors.ErrReplyFailed)
		var panicErr *gerrors.PanicError
		require.ErrorAs(t, err, &panicErr)

		// the actor survives the panic
		assert.True(t, pid.IsRunning())
	})
	t.Run("With a canceled context", func(t *testing.T) {
		system := newTestSystem(t)
		slow := newResponder(uint8(1))
		slow.delay = 200 * time.Millisecond
		spawn(t, system, "canceled", slow, WithDistributors("canceled"))

		cctx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
		defer cancel()

		_, err := RequestSync[uint8](cctx, system.Distributor("canceled"), question{})
		require.ErrorIs(t, err, gerrors.ErrRequestCanceled)
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})
	t.Run("With a stopped actor system", func(t *testing.T) {
		system := newTestSystem(t)
		d := system.Distributor("stopped")
		require.NoError(t, system.Stop(ctx))

		_, err := Request[uint8](ctx, d, question{}).Await(ctx)
		require.ErrorIs(t, err, gerrors.ErrRegistryFault)
	})
	t.Run("With the system waiting for in-flight requests", func(t *testing.T) {
		system := newTestSystem(t)
		slow := newResponder(uint8(9))
		slow.delay = 50 * time.Millisecond
		spawn(t, system, "in-flight", slow, WithDistributors("in-flight"))

		reply := Request[uint8](ctx, system.Distributor("in-flight"), question{})
		require.NoError(t, system.Stop(ctx))

		// the request completed before Stop returned
		select {
		case <-reply.Done():
		default:
			require.Fail(t, "request should be completed")
		}
	})
}
