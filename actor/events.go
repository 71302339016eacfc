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

import "time"

// ActorStarted is published on the event stream when an actor has started
type ActorStarted struct {
	actorID   string
	actorName string
	startedAt time.Time
}

func newActorStarted(pid *PID) *ActorStarted {
	return &ActorStarted{actorID: pid.ID(), actorName: pid.Name(), startedAt: time.Now().UTC()}
}

// ActorID returns the id of the started actor
func (x *ActorStarted) ActorID() string { return x.actorID }

// ActorName returns the name of the started actor
func (x *ActorStarted) ActorName() string { return x.actorName }

// StartedAt returns the time the actor started
func (x *ActorStarted) StartedAt() time.Time { return x.startedAt }

// ActorStopped is published on the event stream when an actor has stopped
type ActorStopped struct {
	actorID   string
	actorName string
	stoppedAt time.Time
}

func newActorStopped(pid *PID) *ActorStopped {
	return &ActorStopped{actorID: pid.ID(), actorName: pid.Name(), stoppedAt: time.Now().UTC()}
}

// ActorID returns the id of the stopped actor
func (x *ActorStopped) ActorID() string { return x.actorID }

// ActorName returns the name of the stopped actor
func (x *ActorStopped) ActorName() string { return x.actorName }

// StoppedAt returns the time the actor stopped
func (x *ActorStopped) StoppedAt() time.Time { return x.stoppedAt }

// GroupJoined is published on the event stream when an actor subscribes to a group
type GroupJoined struct {
	group    string
	actorID  string
	joinedAt time.Time
}

func newGroupJoined(group string, pid *PID) *GroupJoined {
	return &GroupJoined{group: group, actorID: pid.ID(), joinedAt: time.Now().UTC()}
}

// Group returns the name of the group
func (x *GroupJoined) Group() string { return x.group }

// ActorID returns the id of the subscriber
func (x *GroupJoined) ActorID() string { return x.actorID }

// JoinedAt returns the subscription time
func (x *GroupJoined) JoinedAt() time.Time { return x.joinedAt }

// GroupLeft is published on the event stream when an actor leaves a group,
// either by unsubscribing or by stopping
type GroupLeft struct {
	group   string
	actorID string
	leftAt  time.Time
}

func newGroupLeft(group string, pid *PID) *GroupLeft {
	return &GroupLeft{group: group, actorID: pid.ID(), leftAt: time.Now().UTC()}
}

// Group returns the name of the group
func (x *GroupLeft) Group() string { return x.group }

// ActorID returns the id of the former subscriber
func (x *GroupLeft) ActorID() string { return x.actorID }

// LeftAt returns the time the actor left the group
func (x *GroupLeft) LeftAt() time.Time { return x.leftAt }
