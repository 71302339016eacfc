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
	"math/rand/v2"

	"github.com/zeebo/xxh3"
	"go.uber.org/atomic"

	"github.com/tochemey/distributor/internal/intern"
	"github.com/tochemey/distributor/internal/xsync"
	"github.com/tochemey/distributor/message"
)

// SelectionPolicy defines how TellOne and AskOne pick the subscriber
// receiving a message among the members of a group
type SelectionPolicy int

const (
	// RoundRobinSelection cycles through the members of a group in
	// subscription order. Each group keeps its own cursor.
	RoundRobinSelection SelectionPolicy = iota
	// RandomSelection picks a member uniformly at random
	RandomSelection
	// ConsistentHashSelection routes messages implementing message.Keyed
	// to the member with the highest rendezvous score for their key, so that
	// a given key sticks to the same member as long as the membership is stable.
	// Other messages are routed round robin.
	ConsistentHashSelection
)

// String implements fmt.Stringer
func (x SelectionPolicy) String() string {
	switch x {
	case RoundRobinSelection:
		return "RoundRobin"
	case RandomSelection:
		return "Random"
	case ConsistentHashSelection:
		return "ConsistentHash"
	default:
		return "Unknown"
	}
}

// selector picks one member out of a non-empty snapshot
type selector interface {
	selectOne(handle intern.Handle, msg any, members []*PID) *PID
}

// newSelector creates the selector of the given policy
func newSelector(policy SelectionPolicy) selector {
	switch policy {
	case RandomSelection:
		return randomSelector{}
	case ConsistentHashSelection:
		return &hashSelector{fallback: newRoundRobinSelector()}
	default:
		return newRoundRobinSelector()
	}
}

type roundRobinSelector struct {
	cursors *xsync.Map[intern.Handle, *atomic.Uint64]
}

func newRoundRobinSelector() *roundRobinSelector {
	return &roundRobinSelector{cursors: xsync.NewMap[intern.Handle, *atomic.Uint64]()}
}

func (x *roundRobinSelector) selectOne(handle intern.Handle, _ any, members []*PID) *PID {
	cursor, _ := x.cursors.GetOrSet(handle, func() *atomic.Uint64 { return atomic.NewUint64(0) })
	next := cursor.Inc() - 1
	return members[next%uint64(len(members))]
}

type randomSelector struct{}

func (randomSelector) selectOne(_ intern.Handle, _ any, members []*PID) *PID {
	return members[rand.IntN(len(members))] //nolint:gosec
}

type hashSelector struct {
	fallback selector
}

// selectOne implements rendezvous hashing: every member scores the key and the
// highest score wins. Adding or removing a member only moves the keys it wins or held.
func (x *hashSelector) selectOne(handle intern.Handle, msg any, members []*PID) *PID {
	keyed, ok := msg.(message.Keyed)
	if !ok {
		return x.fallback.selectOne(handle, msg, members)
	}

	key := keyed.HashKey()
	var (
		winner *PID
		best   uint64
	)

	for _, member := range members {
		score := xxh3.HashStringSeed(key, xxh3.HashString(member.ID()))
		if winner == nil || score > best {
			winner, best = member, score
		}
	}
	return winner
}
