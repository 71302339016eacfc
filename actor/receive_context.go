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

	"go.uber.org/atomic"

	gerrors "github.com/tochemey/distributor/errors"
	"github.com/tochemey/distributor/future"
	"github.com/tochemey/distributor/log"
	"github.com/tochemey/distributor/message"
)

// ReceiveContext carries the message being handled by an actor together with
// the operations available while handling it.
//
// A ReceiveContext is only valid within the Receive call it is handed to.
// Do not retain it.
type ReceiveContext struct {
	ctx       context.Context
	self      *PID
	envelope  *message.Envelope
	reply     future.Promise[*message.Envelope]
	responded *atomic.Bool
	err       error
}

// newReceiveContext creates a ReceiveContext for a message delivered to the given pid.
// reply is nil for fire-and-forget messages.
func newReceiveContext(ctx context.Context, to *PID, msg any, reply future.Promise[*message.Envelope]) *ReceiveContext {
	return &ReceiveContext{
		ctx:       ctx,
		self:      to,
		envelope:  message.NewEnvelope(msg),
		reply:     reply,
		responded: atomic.NewBool(false),
	}
}

// Context returns the context the message was sent with
func (rctx *ReceiveContext) Context() context.Context {
	return rctx.ctx
}

// Self returns the PID of the actor handling the message
func (rctx *ReceiveContext) Self() *PID {
	return rctx.self
}

// Message returns the payload of the message
func (rctx *ReceiveContext) Message() any {
	return rctx.envelope.Message()
}

// Envelope returns the typed envelope of the message
func (rctx *ReceiveContext) Envelope() *message.Envelope {
	return rctx.envelope
}

// IsAsk reports whether the sender awaits a response
func (rctx *ReceiveContext) IsAsk() bool {
	return rctx.reply != nil
}

// Response answers the question being handled.
// Only the first call has an effect. Response is a no-op for messages
// that are not questions.
func (rctx *ReceiveContext) Response(resp any) {
	if rctx.reply == nil {
		return
	}
	if rctx.responded.CompareAndSwap(false, true) {
		rctx.reply.Success(message.NewEnvelope(resp))
	}
}

// Err records a non-fatal error observed while handling the message.
// When the message is a question left without a response, the asker
// receives ErrReplyFailed wrapping this error.
func (rctx *ReceiveContext) Err(err error) {
	rctx.err = err
}

// Tell sends a message to the given actor. A failed delivery is recorded with Err.
func (rctx *ReceiveContext) Tell(to *PID, msg any) {
	if to == nil {
		rctx.Err(gerrors.ErrUndefinedActor)
		return
	}
	if err := to.Tell(context.WithoutCancel(rctx.ctx), msg); err != nil {
		rctx.Err(err)
	}
}

// Distributor returns the distributor of the given group name
func (rctx *ReceiveContext) Distributor(name string) Distributor {
	return rctx.self.system.Distributor(name)
}

// ActorSystem returns the actor system the actor belongs to
func (rctx *ReceiveContext) ActorSystem() ActorSystem {
	return rctx.self.system
}

// Logger returns the logger of the actor
func (rctx *ReceiveContext) Logger() log.Logger {
	return rctx.self.Logger()
}

// fail fails the pending reply slot, if any, with the given error
func (rctx *ReceiveContext) fail(err error) {
	if rctx.reply == nil {
		return
	}
	if rctx.responded.CompareAndSwap(false, true) {
		rctx.reply.Failure(err)
	}
}

// complete settles the reply slot once Receive has returned.
// A question left unanswered fails with ErrReplyFailed.
func (rctx *ReceiveContext) complete() {
	if rctx.reply == nil || rctx.responded.Load() {
		return
	}

	cause := rctx.err
	if cause == nil {
		cause = gerrors.ErrNoReply
	}
	rctx.fail(gerrors.NewErrReplyFailed(cause))
}

// getError returns the error recorded with Err
func (rctx *ReceiveContext) getError() error {
	return rctx.err
}
