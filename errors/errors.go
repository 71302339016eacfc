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

package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrUnreachable is returned when a named group has no subscriber at the time a message is routed.
	ErrUnreachable = errors.New("no subscriber is reachable")

	// ErrReplyFailed is returned when a reply slot is dropped or fails before a reply is delivered.
	ErrReplyFailed = errors.New("couldn't receive reply")

	// ErrTypeMismatch is returned when a reply is received but is not of the expected type.
	ErrTypeMismatch = errors.New("received a message with the wrong type")

	// ErrRequestTimeout indicates that a request timed out while waiting for a reply.
	ErrRequestTimeout = errors.New("operation timed out before finish")

	// ErrRequestCanceled indicates that the caller context was canceled before a reply was delivered.
	ErrRequestCanceled = errors.New("request canceled")

	// ErrRegistryFault is returned when the subscriber registry or the actor system backing it is unavailable.
	// It is distinct from ErrUnreachable which only means that nobody is subscribed.
	ErrRegistryFault = errors.New("subscriber registry is unavailable")

	// ErrNoReply is the cause attached to ErrReplyFailed when a responder handled a question without replying.
	ErrNoReply = errors.New("question handled without reply")

	// ErrDead indicates that the actor is no longer alive or has been terminated.
	ErrDead = errors.New("actor is not alive")

	// ErrUndefinedActor is returned when an actor reference is undefined.
	ErrUndefinedActor = errors.New("actor is not defined")

	// ErrActorNotFound indicates that the specified actor could not be found in the system.
	ErrActorNotFound = errors.New("actor not found")

	// ErrActorAlreadyExists is returned when trying to create an actor with a name that already exists.
	ErrActorAlreadyExists = errors.New("actor already exists")

	// ErrNameRequired is returned when a name is required but not provided.
	ErrNameRequired = errors.New("name is required")

	// ErrInvalidActorSystemName is returned when the actor system name contains invalid characters.
	ErrInvalidActorSystemName = errors.New("invalid ActorSystem name, must contain only word characters (i.e. [a-zA-Z0-9] plus non-leading '-' or '_')")

	// ErrActorSystemNotStarted indicates that an actor system has not been started before use.
	ErrActorSystemNotStarted = errors.New("actor system is not running")

	// ErrActorSystemAlreadyStarted is returned when attempting to start an actor system that is already running.
	ErrActorSystemAlreadyStarted = errors.New("actor system has already started")

	// ErrInvalidTimeout is returned when a timeout value is less than or equal to zero.
	ErrInvalidTimeout = errors.New("invalid timeout")

	// ErrInitFailure is returned when the actor's PreStart hook fails during initialization.
	ErrInitFailure = errors.New("preStart failed")

	// ErrMailboxFull is returned when a bounded mailbox has reached its capacity.
	ErrMailboxFull = errors.New("mailbox is full")

	// ErrMailboxDisposed is returned when operations are attempted on a disposed mailbox.
	ErrMailboxDisposed = errors.New("mailbox has been disposed")

	// ErrSystemShuttingDown is returned when a message is sent while the actor system is shutting down.
	ErrSystemShuttingDown = errors.New("actor system is shutting down")
)

// NewErrUnreachable formats an ErrUnreachable with the given group name.
func NewErrUnreachable(name string) error {
	return fmt.Errorf("distributor=(%s) %w", name, ErrUnreachable)
}

// NewErrReplyFailed wraps a base error with ErrReplyFailed.
func NewErrReplyFailed(err error) error {
	return errors.Join(ErrReplyFailed, err)
}

// NewErrTypeMismatch formats an ErrTypeMismatch with the expected and received type names.
func NewErrTypeMismatch(expected, received string) error {
	return fmt.Errorf("expected=(%s) received=(%s) %w", expected, received, ErrTypeMismatch)
}

// NewErrRegistryFault wraps a base error with ErrRegistryFault.
func NewErrRegistryFault(err error) error {
	return errors.Join(ErrRegistryFault, err)
}

// NewErrRequestCanceled wraps the context error with ErrRequestCanceled.
func NewErrRequestCanceled(err error) error {
	return errors.Join(ErrRequestCanceled, err)
}

// NewErrActorNotFound formats an ErrActorNotFound with the given actor name.
func NewErrActorNotFound(name string) error {
	return fmt.Errorf("(actor=%s) %w", name, ErrActorNotFound)
}

// NewErrActorAlreadyExists formats an ErrActorAlreadyExists for the given actor name.
func NewErrActorAlreadyExists(name string) error {
	return fmt.Errorf("actor=(%s) %w", name, ErrActorAlreadyExists)
}

// NewErrInitFailure wraps a base error with ErrInitFailure to indicate a startup failure.
func NewErrInitFailure(err error) error {
	return errors.Join(ErrInitFailure, err)
}

// PanicError defines the panic error
// wrapping the underlying error
type PanicError struct {
	err error
}

// enforce compilation error
var _ error = (*PanicError)(nil)

// NewPanicError creates an instance of PanicError
func NewPanicError(err error) *PanicError {
	return &PanicError{err}
}

// Error implements the standard error interface
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.err)
}

func (e *PanicError) Unwrap() error {
	return e.err
}
