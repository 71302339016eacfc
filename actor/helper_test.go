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

	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"

	"github.com/tochemey/distributor/internal/pause"
	"github.com/tochemey/distributor/log"
)

// question is the message answered by the responder actor
type question struct{}

// keyed is a message routed by key with ConsistentHashSelection
type keyed struct {
	key string
}

func (k keyed) HashKey() string { return k.key }

// responder answers every question with value after delay
// and counts the fire-and-forget messages it receives
type responder struct {
	value    any
	delay    time.Duration
	received *atomic.Int64
	messages chan any
}

var _ Actor = (*responder)(nil)

func newResponder(value any) *responder {
	return &responder{
		value:    value,
		received: atomic.NewInt64(0),
		messages: make(chan any, 100),
	}
}

func (x *responder) PreStart(context.Context) error { return nil }

func (x *responder) Receive(ctx *ReceiveContext) {
	if ctx.IsAsk() {
		if x.delay > 0 {
			pause.For(x.delay)
		}
		ctx.Response(x.value)
		return
	}

	x.received.Inc()
	select {
	case x.messages <- ctx.Message():
	default:
	}
}

func (x *responder) PostStop(context.Context) error { return nil }

// silent handles questions without answering them
type silent struct{}

func (silent) PreStart(context.Context) error { return nil }
func (silent) Receive(*ReceiveContext)        {}
func (silent) PostStop(context.Context) error { return nil }

// faulty records an error instead of answering
type faulty struct {
	err error
}

func (x faulty) PreStart(context.Context) error { return nil }
func (x faulty) Receive(ctx *ReceiveContext)    { ctx.Err(x.err) }
func (x faulty) PostStop(context.Context) error { return nil }

// panicker panics on every message
type panicker struct{}

func (panicker) PreStart(context.Context) error { return nil }
func (panicker) Receive(*ReceiveContext)        { panic("boom") }
func (panicker) PostStop(context.Context) error { return nil }

// failingStart never starts
type failingStart struct{}

func (failingStart) PreStart(context.Context) error { return errors.New("cannot start") }
func (failingStart) Receive(*ReceiveContext)        {}
func (failingStart) PostStop(context.Context) error { return nil }

// blocker blocks in Receive until released
type blocker struct {
	entered chan struct{}
	release chan struct{}
}

func newBlocker() *blocker {
	return &blocker{
		entered: make(chan struct{}, 10),
		release: make(chan struct{}),
	}
}

func (x *blocker) PreStart(context.Context) error { return nil }

func (x *blocker) Receive(*ReceiveContext) {
	x.entered <- struct{}{}
	<-x.release
}

func (x *blocker) PostStop(context.Context) error { return nil }

// newTestSystem creates and starts an actor system stopped at the end of the test
func newTestSystem(t *testing.T, opts ...Option) ActorSystem {
	t.Helper()
	ctx := context.Background()

	opts = append([]Option{WithLogger(log.DiscardLogger)}, opts...)
	system, err := NewActorSystem("testSystem", opts...)
	require.NoError(t, err)
	require.NoError(t, system.Start(ctx))

	t.Cleanup(func() {
		if system.Running() {
			require.NoError(t, system.Stop(ctx))
		}
	})
	return system
}

// spawn spawns an actor and fails the test on error
func spawn(t *testing.T, system ActorSystem, name string, actor Actor, opts ...SpawnOption) *PID {
	t.Helper()
	pid, err := system.Spawn(context.Background(), name, actor, opts...)
	require.NoError(t, err)
	require.NotNil(t, pid)
	return pid
}
