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
	"slices"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
	"go.uber.org/atomic"

	gerrors "github.com/tochemey/distributor/errors"
	"github.com/tochemey/distributor/internal/intern"
	"github.com/tochemey/distributor/internal/xsync"
)

// group holds the subscribers of one name.
// members is guarded by the registry lock. view is the immutable snapshot
// handed to readers and is replaced wholesale on every membership change.
type group struct {
	members mapset.Set[*PID]
	view    atomic.Pointer[[]*PID]
}

func newGroup() *group {
	g := &group{members: mapset.NewThreadUnsafeSet[*PID]()}
	g.refresh()
	return g
}

// refresh rebuilds the snapshot in subscription order
func (g *group) refresh() {
	members := g.members.ToSlice()
	slices.SortFunc(members, func(a, b *PID) int {
		return cmp.Compare(a.sequence, b.sequence)
	})
	g.view.Store(&members)
}

func (g *group) snapshot() []*PID {
	if view := g.view.Load(); view != nil {
		return *view
	}
	return nil
}

// subscriberRegistry maps group handles to their subscribers
type subscriberRegistry struct {
	// mu makes group creation and pruning atomic with membership changes
	mu     sync.RWMutex
	groups *xsync.Map[intern.Handle, *group]
	system *actorSystem
}

func newSubscriberRegistry(system *actorSystem) *subscriberRegistry {
	return &subscriberRegistry{
		groups: xsync.NewMap[intern.Handle, *group](),
		system: system,
	}
}

// register adds pid to the group identified by handle. It is idempotent.
func (r *subscriberRegistry) register(handle intern.Handle, pid *PID) error {
	if !r.system.Running() {
		return gerrors.NewErrRegistryFault(gerrors.ErrActorSystemNotStarted)
	}

	if pid == nil {
		return gerrors.ErrUndefinedActor
	}

	if !pid.IsRunning() {
		return gerrors.ErrDead
	}

	r.mu.Lock()
	g, _ := r.groups.GetOrSet(handle, newGroup)
	added := g.members.Add(pid)
	if added {
		g.refresh()
		pid.groups.Add(handle)
	}
	r.mu.Unlock()

	if added {
		name := r.system.resolve(handle)
		r.system.logger.Debugf("Actor (%s) joined group (%s)", pid.Name(), name)
		r.system.publish(newGroupJoined(name, pid))
	}
	return nil
}

// remove removes pid from every listed group. Absent memberships are ignored.
func (r *subscriberRegistry) remove(handles []intern.Handle, pid *PID) error {
	if !r.system.Running() {
		return gerrors.NewErrRegistryFault(gerrors.ErrActorSystemNotStarted)
	}

	if pid == nil {
		return gerrors.ErrUndefinedActor
	}

	left := r.delete(handles, pid)
	for _, handle := range left {
		name := r.system.resolve(handle)
		r.system.logger.Debugf("Actor (%s) left group (%s)", pid.Name(), name)
		r.system.publish(newGroupLeft(name, pid))
	}
	return nil
}

// removeAll removes pid from every group it belongs to
func (r *subscriberRegistry) removeAll(pid *PID) {
	left := r.delete(pid.groups.ToSlice(), pid)
	for _, handle := range left {
		r.system.publish(newGroupLeft(r.system.resolve(handle), pid))
	}
}

// delete removes pid from the groups and prunes the empty ones.
// It returns the handles pid was actually removed from.
func (r *subscriberRegistry) delete(handles []intern.Handle, pid *PID) []intern.Handle {
	left := make([]intern.Handle, 0, len(handles))

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, handle := range handles {
		pid.groups.Remove(handle)

		g, ok := r.groups.Get(handle)
		if !ok || !g.members.Contains(pid) {
			continue
		}

		g.members.Remove(pid)
		if g.members.IsEmpty() {
			r.groups.Delete(handle)
		} else {
			g.refresh()
		}
		left = append(left, handle)
	}
	return left
}

// snapshot returns the running members of the group at call time, in
// subscription order. The returned slice must not be modified.
// Members found stopped are pruned.
func (r *subscriberRegistry) snapshot(handle intern.Handle) []*PID {
	g, ok := r.groups.Get(handle)
	if !ok {
		return nil
	}

	members := g.snapshot()
	stale := 0
	for _, member := range members {
		if !member.IsRunning() {
			stale++
		}
	}

	if stale == 0 {
		return members
	}

	running := make([]*PID, 0, len(members)-stale)
	for _, member := range members {
		if member.IsRunning() {
			running = append(running, member)
			continue
		}
		r.removeAll(member)
	}
	return running
}

// names returns the names of the non-empty groups
func (r *subscriberRegistry) names() []string {
	r.mu.RLock()
	handles := r.groups.Keys()
	r.mu.RUnlock()

	names := make([]string, 0, len(handles))
	for _, handle := range handles {
		names = append(names, r.system.resolve(handle))
	}
	slices.Sort(names)
	return names
}

// size returns the number of subscribers of the group
func (r *subscriberRegistry) size(handle intern.Handle) int {
	return len(r.snapshot(handle))
}

// reset drops every group
func (r *subscriberRegistry) reset() {
	r.mu.Lock()
	r.groups.Reset()
	r.mu.Unlock()
}
