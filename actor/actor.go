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

// Package actor provides an in-process actor runtime with named-group routing.
//
// Actors are spawned in an ActorSystem and addressed through their PID. A
// Distributor names a group of actors: subscribers join and leave groups at
// runtime, and senders reach them by name without holding any reference:
//
//	system, _ := actor.NewActorSystem("orders")
//	_ = system.Start(ctx)
//	pid, _ := system.Spawn(ctx, "worker-1", new(Worker), actor.WithDistributors("workers"))
//
//	workers := system.Distributor("workers")
//	_ = workers.TellOne(ctx, &Job{})
//	total, err := actor.RequestSync[uint64](ctx, workers, &CountJobs{})
package actor

import (
	"context"
)

// Actor defines the contract of an actor.
//
// An actor processes the messages of its mailbox one at a time, so its state
// never needs explicit synchronization as long as it is only touched from
// within the lifecycle hooks and Receive.
//
// The lifecycle of an actor follows three phases:
//  1. PreStart runs once before any message is handled
//  2. Receive handles every message delivered to the actor's mailbox
//  3. PostStop runs once when the actor is shut down
type Actor interface {
	// PreStart is invoked once before the actor begins processing any messages.
	// When it returns an error it is retried according to the actor system
	// settings. An actor whose PreStart keeps failing is never started.
	PreStart(ctx context.Context) error

	// Receive handles all messages sent to the actor's mailbox.
	//
	// When the message is a question (see ReceiveContext.IsAsk) the handler is
	// expected to call ReceiveContext.Response before returning. A question left
	// without a response fails the asker with ErrReplyFailed.
	// A panic in Receive is recovered; the actor keeps running.
	Receive(ctx *ReceiveContext)

	// PostStop is invoked once the actor is shut down.
	// Messages still queued at that point are dropped and pending questions
	// are failed with ErrReplyFailed.
	PostStop(ctx context.Context) error
}
