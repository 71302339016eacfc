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
	"cmp"
	"context"
	"errors"
	"regexp"
	"runtime"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"

	gerrors "github.com/tochemey/distributor/errors"
	"github.com/tochemey/distributor/internal/errorschain"
	"github.com/tochemey/distributor/internal/eventstream"
	"github.com/tochemey/distributor/internal/intern"
	"github.com/tochemey/distributor/internal/types"
	"github.com/tochemey/distributor/internal/xsync"
	"github.com/tochemey/distributor/log"
	"github.com/tochemey/distributor/telemetry"
)

var systemNamePattern = regexp.MustCompile("^[a-zA-Z0-9][a-zA-Z0-9-_]*$")

// ActorSystem defines the contract of an actor system
type ActorSystem interface {
	// ID returns the unique identifier of the actor system
	ID() string
	// Name returns the actor system name
	Name() string
	// Start starts the actor system. Starting a running system fails with ErrActorSystemAlreadyStarted.
	Start(ctx context.Context) error
	// Stop stops every actor, waits for in-flight requests and releases the resources.
	// Stop does not terminate the program.
	Stop(ctx context.Context) error
	// Running returns true when the actor system is running
	Running() bool
	// Spawn creates and starts an actor with a unique name
	Spawn(ctx context.Context, name string, actor Actor, opts ...SpawnOption) (*PID, error)
	// Kill stops the actor with the given name
	Kill(ctx context.Context, name string) error
	// ActorOf returns the running actor with the given name
	ActorOf(name string) (*PID, error)
	// Actors returns the running actors, in spawn order
	Actors() []*PID
	// Distributor returns the distributor of the given group name.
	// The name is interned once and reused for the lifetime of the system.
	Distributor(name string) Distributor
	// Unsubscribe removes the actor from each of the given groups in one call.
	// Groups the actor is not a member of are ignored.
	Unsubscribe(pid *PID, names ...string) error
	// Groups returns the names of the groups that currently have subscribers
	Groups() []string
	// SubscribeEvents creates an event subscriber receiving actor lifecycle and group membership events
	SubscribeEvents() (eventstream.Subscriber, error)
	// UnsubscribeEvents removes an event subscriber
	UnsubscribeEvents(subscriber eventstream.Subscriber) error
	// Logger returns the logger of the actor system
	Logger() log.Logger
}

// actorSystem is the in-process implementation of ActorSystem
type actorSystem struct {
	id   string
	name string

	logger                 log.Logger
	selectionPolicy        SelectionPolicy
	actorInitMaxRetries    int
	actorInitTimeout       time.Duration
	shutdownTimeout        time.Duration
	defaultMailboxCapacity int
	telemetry              *telemetry.Telemetry

	started      *atomic.Bool
	shuttingDown *atomic.Bool
	sequence     *atomic.Uint64

	// spawnLock serializes spawns so that actor names stay unique
	spawnLock sync.Mutex
	actors    *xsync.Map[string, *PID]

	interner     *intern.Interner
	registry     *subscriberRegistry
	dispatcher   *dispatcher
	metrics      *distributorMetrics
	eventsStream eventstream.Stream

	// tasks tracks the in-flight requests
	tasks sync.WaitGroup
}

// enforce compilation error
var _ ActorSystem = (*actorSystem)(nil)

// NewActorSystem creates an instance of ActorSystem
func NewActorSystem(name string, opts ...Option) (ActorSystem, error) {
	if name == "" {
		return nil, gerrors.ErrNameRequired
	}

	if !systemNamePattern.MatchString(name) {
		return nil, gerrors.ErrInvalidActorSystemName
	}

	system := &actorSystem{
		id:                  uuid.NewString(),
		name:                name,
		logger:              log.DefaultLogger,
		selectionPolicy:     DefaultSelectionPolicy,
		actorInitMaxRetries: DefaultInitMaxRetries,
		actorInitTimeout:    DefaultInitTimeout,
		shutdownTimeout:     DefaultShutdownTimeout,
		started:             atomic.NewBool(false),
		shuttingDown:        atomic.NewBool(false),
		sequence:            atomic.NewUint64(0),
		actors:              xsync.NewMap[string, *PID](),
		interner:            intern.New(),
	}

	for _, opt := range opts {
		opt.Apply(system)
	}

	if system.logger == nil {
		system.logger = log.DiscardLogger
	}

	if system.telemetry == nil {
		system.telemetry = telemetry.New()
	}

	if system.actorInitMaxRetries <= 0 {
		system.actorInitMaxRetries = DefaultInitMaxRetries
	}

	if system.actorInitTimeout <= 0 {
		system.actorInitTimeout = DefaultInitTimeout
	}

	if system.shutdownTimeout <= 0 {
		system.shutdownTimeout = DefaultShutdownTimeout
	}

	system.registry = newSubscriberRegistry(system)
	system.dispatcher = newDispatcher(system)
	system.metrics = newDistributorMetrics(system.telemetry, system.logger)
	return system, nil
}

// ID returns the unique identifier of the actor system
func (x *actorSystem) ID() string {
	return x.id
}

// Name returns the actor system name
func (x *actorSystem) Name() string {
	return x.name
}

// Logger returns the logger sets when creating the actor system
func (x *actorSystem) Logger() log.Logger {
	return x.logger
}

// Running returns true when the actor system is running
func (x *actorSystem) Running() bool {
	return x.started.Load() && !x.shuttingDown.Load()
}

// Start starts the actor system
func (x *actorSystem) Start(context.Context) error {
	if x.started.Load() {
		return gerrors.ErrActorSystemAlreadyStarted
	}

	x.logger.Infof("Starting Actor System (%s) on %s/%s..", x.name, runtime.GOOS, runtime.GOARCH)

	x.eventsStream = eventstream.New()
	x.shuttingDown.Store(false)
	x.started.Store(true)

	x.logger.Infof("Actor System (%s) successfully started..:)", x.name)
	return nil
}

// Stop stops the actor system
func (x *actorSystem) Stop(ctx context.Context) error {
	if !x.started.Load() {
		return gerrors.ErrActorSystemNotStarted
	}

	if !x.shuttingDown.CompareAndSwap(false, true) {
		return gerrors.ErrSystemShuttingDown
	}

	x.logger.Infof("Shutting down Actor System (%s)...", x.name)

	ctx, cancel := context.WithTimeout(ctx, x.shutdownTimeout)
	defer cancel()

	err := errorschain.
		New(errorschain.ReturnAll()).
		AddErrorFn(func() error { return x.shutdownActors(ctx) }).
		AddErrorFn(func() error { return x.awaitTasks(ctx) }).
		Error()

	x.registry.reset()
	x.actors.Reset()
	if x.eventsStream != nil {
		x.eventsStream.Close()
	}

	x.started.Store(false)
	x.shuttingDown.Store(false)

	if err != nil {
		x.logger.Errorf("Actor System (%s) failed to shutdown cleanly: %v", x.name, err)
		return err
	}

	x.logger.Infof("Actor System (%s) shuts down successfully", x.name)
	return x.logger.Flush()
}

// Spawn creates and starts an actor
func (x *actorSystem) Spawn(ctx context.Context, name string, actor Actor, opts ...SpawnOption) (*PID, error) {
	if !x.Running() {
		return nil, gerrors.ErrActorSystemNotStarted
	}

	if name == "" {
		return nil, gerrors.ErrNameRequired
	}

	if actor == nil {
		return nil, gerrors.ErrUndefinedActor
	}

	x.spawnLock.Lock()
	defer x.spawnLock.Unlock()

	if existing, ok := x.actors.Get(name); ok && existing.IsRunning() {
		return nil, gerrors.NewErrActorAlreadyExists(name)
	}

	config := newSpawnConfig(opts...)
	pid := newPID(name, actor, x, config)
	if err := pid.init(ctx); err != nil {
		return nil, err
	}

	x.actors.Set(name, pid)
	x.publish(newActorStarted(pid))

	for _, group := range config.distributors {
		if err := x.Distributor(group).Subscribe(pid); err != nil {
			return nil, errors.Join(err, pid.Shutdown(ctx))
		}
	}

	return pid, nil
}

// Kill stops the actor with the given name
func (x *actorSystem) Kill(ctx context.Context, name string) error {
	pid, err := x.ActorOf(name)
	if err != nil {
		return err
	}
	return pid.Shutdown(ctx)
}

// ActorOf returns the running actor with the given name
func (x *actorSystem) ActorOf(name string) (*PID, error) {
	if !x.Running() {
		return nil, gerrors.ErrActorSystemNotStarted
	}

	pid, ok := x.actors.Get(name)
	if !ok || !pid.IsRunning() {
		return nil, gerrors.NewErrActorNotFound(name)
	}
	return pid, nil
}

// Actors returns the running actors, in spawn order
func (x *actorSystem) Actors() []*PID {
	pids := x.actors.Values()
	running := make([]*PID, 0, len(pids))
	for _, pid := range pids {
		if pid.IsRunning() {
			running = append(running, pid)
		}
	}

	slices.SortFunc(running, func(a, b *PID) int {
		return cmp.Compare(a.sequence, b.sequence)
	})
	return running
}

// Distributor returns the distributor of the given group name
func (x *actorSystem) Distributor(name string) Distributor {
	return Distributor{
		handle: x.interner.Intern(name),
		system: x,
	}
}

// Unsubscribe removes the actor from each of the given groups
func (x *actorSystem) Unsubscribe(pid *PID, names ...string) error {
	if !x.Running() {
		return gerrors.NewErrRegistryFault(gerrors.ErrActorSystemNotStarted)
	}

	handles := make([]intern.Handle, 0, len(names))
	for _, name := range names {
		// a name never interned cannot have subscribers
		if handle, ok := x.interner.Lookup(name); ok {
			handles = append(handles, handle)
		}
	}
	return x.registry.remove(handles, pid)
}

// Groups returns the names of the groups that currently have subscribers
func (x *actorSystem) Groups() []string {
	return x.registry.names()
}

// SubscribeEvents creates an event subscriber
func (x *actorSystem) SubscribeEvents() (eventstream.Subscriber, error) {
	if !x.Running() {
		return nil, gerrors.ErrActorSystemNotStarted
	}

	subscriber := x.eventsStream.AddSubscriber()
	x.eventsStream.Subscribe(subscriber, eventsTopic)
	return subscriber, nil
}

// UnsubscribeEvents removes an event subscriber
func (x *actorSystem) UnsubscribeEvents(subscriber eventstream.Subscriber) error {
	if !x.Running() {
		return gerrors.ErrActorSystemNotStarted
	}

	x.eventsStream.Unsubscribe(subscriber, eventsTopic)
	x.eventsStream.RemoveSubscriber(subscriber)
	return nil
}

// resolve returns the name behind a handle
func (x *actorSystem) resolve(handle intern.Handle) string {
	name, _ := x.interner.Resolve(handle)
	return name
}

// publish pushes an event to the event stream subscribers
func (x *actorSystem) publish(event any) {
	if x.eventsStream != nil {
		x.eventsStream.Publish(eventsTopic, event)
	}
}

// defaultMailbox creates the mailbox of actors spawned without one
func (x *actorSystem) defaultMailbox() Mailbox {
	if x.defaultMailboxCapacity > 0 {
		return NewBoundedMailbox(x.defaultMailboxCapacity)
	}
	return NewUnboundedMailbox()
}

// removeActor forgets a stopped actor unless its name has been reused
func (x *actorSystem) removeActor(pid *PID) {
	x.actors.DeleteIf(pid.Name(), func(current *PID) bool {
		return current == pid
	})
}

// spawnTask runs task in the background and tracks it until it completes
func (x *actorSystem) spawnTask(task func()) {
	x.tasks.Add(1)
	go func() {
		defer x.tasks.Done()
		task()
	}()
}

// shutdownActors stops every actor concurrently
func (x *actorSystem) shutdownActors(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)
	for _, pid := range x.Actors() {
		eg.Go(func() error {
			if err := pid.Shutdown(ctx); err != nil {
				x.logger.Errorf("Failed to shutdown Actor (%s): %v", pid.Name(), err)
				return err
			}
			return nil
		})
	}
	return eg.Wait()
}

// awaitTasks waits for the in-flight requests to complete
func (x *actorSystem) awaitTasks(ctx context.Context) error {
	done := make(chan types.Unit)
	go func() {
		x.tasks.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
