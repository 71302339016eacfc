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

	gerrors "github.com/tochemey/distributor/errors"
	"github.com/tochemey/distributor/future"
	"github.com/tochemey/distributor/internal/intern"
	"github.com/tochemey/distributor/message"
)

// dispatcher resolves a group into subscribers and delivers messages to them.
// Every operation works on a registry snapshot taken when it starts, so a
// concurrent subscription change never yields a partial delivery.
type dispatcher struct {
	system   *actorSystem
	selector selector
}

func newDispatcher(system *actorSystem) *dispatcher {
	return &dispatcher{
		system:   system,
		selector: newSelector(system.selectionPolicy),
	}
}

// members returns the group snapshot or ErrUnreachable when it is empty
func (d *dispatcher) members(ctx context.Context, handle intern.Handle) ([]*PID, error) {
	members := d.system.registry.snapshot(handle)
	if len(members) == 0 {
		name := d.system.resolve(handle)
		d.system.metrics.unreachable(ctx, name)
		return nil, gerrors.NewErrUnreachable(name)
	}
	return members, nil
}

// tell delivers msg to exactly one member of the group
func (d *dispatcher) tell(ctx context.Context, handle intern.Handle, msg any) error {
	members, err := d.members(ctx, handle)
	if err != nil {
		return err
	}

	target := d.selector.selectOne(handle, msg, members)
	if err := target.Tell(ctx, msg); err != nil {
		return err
	}

	d.system.metrics.tells(ctx, d.system.resolve(handle), 1)
	return nil
}

// tellEveryone delivers a copy of msg to every member of the group.
// It returns one outcome per member, nil on success. A failing member
// does not prevent delivery to the others.
func (d *dispatcher) tellEveryone(ctx context.Context, handle intern.Handle, msg any) ([]error, error) {
	members, err := d.members(ctx, handle)
	if err != nil {
		return nil, err
	}

	delivered := 0
	outcomes := make([]error, len(members))
	for index, member := range members {
		outcomes[index] = member.Tell(ctx, copyFor(index, len(members), msg))
		if outcomes[index] == nil {
			delivered++
		}
	}

	d.system.metrics.tells(ctx, d.system.resolve(handle), delivered)
	return outcomes, nil
}

// ask delivers question to exactly one member together with a reply slot
func (d *dispatcher) ask(ctx context.Context, handle intern.Handle, question any) (future.Future[*message.Envelope], error) {
	members, err := d.members(ctx, handle)
	if err != nil {
		return nil, err
	}

	target := d.selector.selectOne(handle, question, members)
	reply := target.ask(ctx, question)
	d.system.metrics.asks(ctx, d.system.resolve(handle), 1)
	return reply, nil
}

// askEveryone delivers a copy of question to every member, each with its own reply slot.
// The returned slots follow the subscription order of the members.
func (d *dispatcher) askEveryone(ctx context.Context, handle intern.Handle, question any) ([]future.Future[*message.Envelope], error) {
	members, err := d.members(ctx, handle)
	if err != nil {
		return nil, err
	}

	replies := make([]future.Future[*message.Envelope], len(members))
	for index, member := range members {
		replies[index] = member.ask(ctx, copyFor(index, len(members), question))
	}

	d.system.metrics.asks(ctx, d.system.resolve(handle), len(replies))
	return replies, nil
}

// copyFor hands the original message to the last recipient and a duplicate to the others
func copyFor(index, total int, msg any) any {
	if index == total-1 {
		return msg
	}
	return message.Duplicate(msg)
}
