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
	"fmt"

	gerrors "github.com/tochemey/distributor/errors"
	"github.com/tochemey/distributor/future"
	"github.com/tochemey/distributor/internal/intern"
	"github.com/tochemey/distributor/message"
)

// Distributor is a handle on a named group of actors.
//
// Distributors are cheap to copy and comparable: two distributors created by
// the same actor system with the same name are equal and can be used as map
// keys. A Distributor does not own its subscribers; the actor system does.
//
// Subscribers are actors. Any actor may join or leave any number of groups at
// runtime, and any goroutine may send to a group by name:
//
//	workers := system.Distributor("workers")
//	_ = workers.Subscribe(pid)
//	_ = workers.TellOne(ctx, &Job{ID: 42})
type Distributor struct {
	handle intern.Handle
	system *actorSystem
}

// Named returns the distributor of the given group name in the actor system.
// Calling it repeatedly with the same name yields equal distributors.
func Named(system ActorSystem, name string) Distributor {
	return system.Distributor(name)
}

// Name returns the group name
func (d Distributor) Name() string {
	if d.system == nil {
		return ""
	}
	return d.system.resolve(d.handle)
}

// String implements fmt.Stringer
func (d Distributor) String() string {
	return fmt.Sprintf("Distributor(%s)", d.Name())
}

// Subscribe adds the actor to the group. Subscribing twice is a no-op.
func (d Distributor) Subscribe(pid *PID) error {
	if err := d.check(); err != nil {
		return err
	}
	return d.system.registry.register(d.handle, pid)
}

// Unsubscribe removes the actor from the group.
// Unsubscribing an actor that is not a member is a no-op.
func (d Distributor) Unsubscribe(pid *PID) error {
	if err := d.check(); err != nil {
		return err
	}
	return d.system.registry.remove([]intern.Handle{d.handle}, pid)
}

// Subscribers returns the running subscribers of the group at call time
func (d Distributor) Subscribers() []*PID {
	if d.check() != nil {
		return nil
	}
	return d.system.registry.snapshot(d.handle)
}

// TellOne sends a fire-and-forget message to exactly one subscriber, chosen
// by the actor system selection policy. It fails with ErrUnreachable when the
// group has no subscriber.
func (d Distributor) TellOne(ctx context.Context, msg any) error {
	if err := d.check(); err != nil {
		return err
	}
	return d.system.dispatcher.tell(ctx, d.handle, msg)
}

// TellEveryone sends a copy of the message to every subscriber.
// It returns one delivery outcome per subscriber, nil on success, and fails
// with ErrUnreachable when the group has no subscriber.
func (d Distributor) TellEveryone(ctx context.Context, msg any) ([]error, error) {
	if err := d.check(); err != nil {
		return nil, err
	}
	return d.system.dispatcher.tellEveryone(ctx, d.handle, msg)
}

// AskOne sends a question to exactly one subscriber and returns the Future of its reply.
// It fails with ErrUnreachable when the group has no subscriber.
func (d Distributor) AskOne(ctx context.Context, question any) (future.Future[*message.Envelope], error) {
	if err := d.check(); err != nil {
		return nil, err
	}
	return d.system.dispatcher.ask(ctx, d.handle, question)
}

// AskEveryone sends a copy of the question to every subscriber and returns
// one reply Future per subscriber. It fails with ErrUnreachable when the group
// has no subscriber.
func (d Distributor) AskEveryone(ctx context.Context, question any) ([]future.Future[*message.Envelope], error) {
	if err := d.check(); err != nil {
		return nil, err
	}
	return d.system.dispatcher.askEveryone(ctx, d.handle, question)
}

// check makes sure the registry behind the distributor is usable
func (d Distributor) check() error {
	if d.system == nil {
		return gerrors.NewErrRegistryFault(gerrors.ErrActorSystemNotStarted)
	}
	if !d.system.Running() {
		return gerrors.NewErrRegistryFault(gerrors.ErrActorSystemNotStarted)
	}
	return nil
}
