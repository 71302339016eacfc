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
	"fmt"
	"runtime"
	"sync"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/flowchartsman/retry"
	"github.com/google/uuid"
	"go.uber.org/atomic"

	gerrors "github.com/tochemey/distributor/errors"
	"github.com/tochemey/distributor/future"
	"github.com/tochemey/distributor/internal/intern"
	"github.com/tochemey/distributor/log"
	"github.com/tochemey/distributor/message"
)

const (
	idle int32 = iota
	busy
)

// PID is the reference of a running actor.
//
// A PID is the Endpoint Reference of the routing layer: distributors hold
// PIDs as subscribers and deliver messages through them.
type PID struct {
	id       string
	name     string
	sequence uint64
	actor    Actor
	system   *actorSystem
	logger   log.Logger

	mailbox    Mailbox
	processing *atomic.Int32

	// stateLock makes the running flag and mailbox enqueues mutually exclusive
	// with shutdown, so that no message lands in the mailbox after it is drained
	stateLock sync.RWMutex
	running   *atomic.Bool

	// handles of the groups the actor is subscribed to
	groups mapset.Set[intern.Handle]

	initMaxRetries int
	initTimeout    time.Duration
}

// newPID creates a PID. The actor is not started yet.
func newPID(name string, actor Actor, system *actorSystem, config *spawnConfig) *PID {
	mailbox := config.mailbox
	if mailbox == nil {
		mailbox = system.defaultMailbox()
	}

	return &PID{
		id:             uuid.NewString(),
		name:           name,
		sequence:       system.sequence.Inc(),
		actor:          actor,
		system:         system,
		logger:         system.logger,
		mailbox:        mailbox,
		processing:     atomic.NewInt32(idle),
		running:        atomic.NewBool(false),
		groups:         mapset.NewSet[intern.Handle](),
		initMaxRetries: system.actorInitMaxRetries,
		initTimeout:    system.actorInitTimeout,
	}
}

// ID returns the unique identifier of the actor
func (pid *PID) ID() string {
	return pid.id
}

// Name returns the actor name
func (pid *PID) Name() string {
	return pid.name
}

// Equals is a convenient method to compare two PIDs
func (pid *PID) Equals(to *PID) bool {
	if pid == nil || to == nil {
		return pid == to
	}
	return pid.id == to.id
}

// String implements fmt.Stringer
func (pid *PID) String() string {
	return fmt.Sprintf("%s(%s)", pid.name, pid.id)
}

// IsRunning returns true when the actor is alive and ready to process messages
func (pid *PID) IsRunning() bool {
	return pid != nil && pid.running.Load()
}

// ActorSystem returns the actor system the actor belongs to
func (pid *PID) ActorSystem() ActorSystem {
	return pid.system
}

// Logger returns the logger of the actor
func (pid *PID) Logger() log.Logger {
	return pid.logger
}

// MailboxSize returns the number of messages waiting in the mailbox
func (pid *PID) MailboxSize() int64 {
	return pid.mailbox.Len()
}

// Groups returns the names of the groups the actor is subscribed to
func (pid *PID) Groups() []string {
	handles := pid.groups.ToSlice()
	names := make([]string, 0, len(handles))
	for _, handle := range handles {
		if name, ok := pid.system.interner.Resolve(handle); ok {
			names = append(names, name)
		}
	}
	return names
}

// Tell sends a fire-and-forget message to the actor.
// It returns once the mailbox has accepted the message.
func (pid *PID) Tell(ctx context.Context, msg any) error {
	if pid == nil {
		return gerrors.ErrUndefinedActor
	}
	return pid.doReceive(newReceiveContext(ctx, pid, msg, nil))
}

// Ask sends a question to the actor and waits for the response.
// It fails with ErrRequestTimeout when no response arrives in time and with
// ErrReplyFailed when the actor could not produce a response.
func (pid *PID) Ask(ctx context.Context, msg any, timeout time.Duration) (any, error) {
	if pid == nil {
		return nil, gerrors.ErrUndefinedActor
	}

	if timeout <= 0 {
		return nil, gerrors.ErrInvalidTimeout
	}

	reply := pid.ask(ctx, msg)
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-reply.Done():
		result := reply.Result()
		if err := result.Failure(); err != nil {
			return nil, err
		}
		return result.Success().Message(), nil
	case <-timer.C:
		return nil, gerrors.ErrRequestTimeout
	case <-ctx.Done():
		return nil, gerrors.NewErrRequestCanceled(ctx.Err())
	}
}

// ask delivers a question to the actor together with a fresh reply slot.
// The returned Future always completes: a delivery failure fails it immediately.
func (pid *PID) ask(ctx context.Context, msg any) future.Future[*message.Envelope] {
	promise := future.NewPromise[*message.Envelope]()
	if err := pid.doReceive(newReceiveContext(ctx, pid, msg, promise)); err != nil {
		promise.Failure(gerrors.NewErrReplyFailed(err))
	}
	return promise.Future()
}

// Shutdown gracefully shuts the actor down.
// The actor leaves every group it is subscribed to, queued messages are dropped
// and PostStop is invoked. Shutting down a stopped actor is a no-op.
func (pid *PID) Shutdown(ctx context.Context) error {
	pid.stateLock.Lock()
	if !pid.running.Load() {
		pid.stateLock.Unlock()
		return nil
	}
	pid.running.Store(false)
	pid.stateLock.Unlock()

	pid.logger.Debugf("Shutdown process has started for Actor (%s)...", pid.Name())

	pid.system.registry.removeAll(pid)
	// let the processing loop drain the mailbox
	pid.process()

	if err := pid.actor.PostStop(ctx); err != nil {
		pid.logger.Errorf("Actor (%s) failed to cleanly stop: %v", pid.Name(), err)
		pid.system.removeActor(pid)
		return err
	}

	pid.system.removeActor(pid)
	pid.system.publish(newActorStopped(pid))
	pid.logger.Debugf("Actor (%s) successfully shutdown", pid.Name())
	return nil
}

// init runs the PreStart hook and marks the actor as running
func (pid *PID) init(ctx context.Context) error {
	pid.logger.Debugf("Initialization process started for Actor (%s)...", pid.Name())

	cctx, cancel := context.WithTimeout(ctx, pid.initTimeout)
	defer cancel()

	retrier := retry.NewRetrier(pid.initMaxRetries, time.Millisecond, pid.initTimeout)
	if err := retrier.RunContext(cctx, func(ctx context.Context) error {
		return pid.actor.PreStart(ctx)
	}); err != nil {
		pid.logger.Errorf("Failed to initialize Actor (%s): %v", pid.Name(), err)
		return gerrors.NewErrInitFailure(err)
	}

	pid.stateLock.Lock()
	pid.running.Store(true)
	pid.stateLock.Unlock()

	pid.logger.Debugf("Actor (%s) initialization is successful.", pid.Name())
	return nil
}

// doReceive pushes a given message to the actor mailbox
// and signals the processing loop
func (pid *PID) doReceive(received *ReceiveContext) error {
	pid.stateLock.RLock()
	if !pid.running.Load() {
		pid.stateLock.RUnlock()
		return gerrors.ErrDead
	}

	if err := pid.mailbox.Enqueue(received); err != nil {
		pid.stateLock.RUnlock()
		pid.logger.Warnf("Actor (%s) rejected message %s: %v", pid.Name(), received.Envelope(), err)
		return err
	}
	pid.stateLock.RUnlock()

	pid.process()
	return nil
}

// process extracts every message from the actor mailbox
// and pass it to the actor for handling
func (pid *PID) process() {
	// only one processing loop runs at a time
	if !pid.processing.CompareAndSwap(idle, busy) {
		return
	}

	go func() {
		for {
			if !pid.IsRunning() {
				pid.drain()
			} else if received := pid.mailbox.Dequeue(); received != nil {
				pid.handleReceived(received)
			}

			pid.processing.Store(idle)

			// check if new messages were added in the meantime
			if !pid.mailbox.IsEmpty() && pid.processing.CompareAndSwap(idle, busy) {
				continue
			}
			return
		}
	}()
}

// handleReceived passes the message to the actor and settles the reply slot
func (pid *PID) handleReceived(received *ReceiveContext) {
	defer pid.recovery(received)
	pid.actor.Receive(received)
	received.complete()

	if err := received.getError(); err != nil && !received.IsAsk() {
		pid.logger.Warnf("Actor (%s) failed to handle %s: %v", pid.Name(), received.Envelope(), err)
	}
}

// recovery turns a panic raised while handling a message into a failed reply
func (pid *PID) recovery(received *ReceiveContext) {
	r := recover()
	if r == nil {
		return
	}

	var perr *gerrors.PanicError
	pc, fn, line, _ := runtime.Caller(2)
	switch err, ok := r.(error); {
	case ok && errors.As(err, &perr):
	case ok:
		perr = gerrors.NewPanicError(fmt.Errorf("%w at %s[%s:%d]", err, runtime.FuncForPC(pc).Name(), fn, line))
	default:
		perr = gerrors.NewPanicError(fmt.Errorf("%#v at %s[%s:%d]", r, runtime.FuncForPC(pc).Name(), fn, line))
	}

	pid.logger.Errorf("Actor (%s) panicked while handling %s: %v", pid.Name(), received.Envelope(), perr)
	received.fail(gerrors.NewErrReplyFailed(perr))
}

// drain drops the queued messages of a stopped actor and fails their reply slots
func (pid *PID) drain() {
	for received := pid.mailbox.Dequeue(); received != nil; received = pid.mailbox.Dequeue() {
		received.fail(gerrors.NewErrReplyFailed(gerrors.ErrDead))
	}
	pid.mailbox.Dispose()
}
