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
	"sync"
	"sync/atomic"
	"unsafe"

	gerrors "github.com/tochemey/distributor/errors"
)

// cacheLinePadding prevents false sharing between CPU cache lines
type cacheLinePadding [64]byte

// node is a single link of the mailbox
type node struct {
	value atomic.Pointer[ReceiveContext]
	next  unsafe.Pointer
}

var nodePool = sync.Pool{New: func() any { return new(node) }}

// UnboundedMailbox is a lock-free multi-producer, single-consumer (MPSC)
// FIFO queue. It is the default actor mailbox.
//
// Producers never block and never fail while the mailbox is open: if they
// outpace the consumer, memory usage grows without limit.
//
// The zero value is not ready for use; always construct via NewUnboundedMailbox.
//
// Reference: https://concurrencyfreaks.blogspot.com/2014/04/multi-producer-single-consumer-queue.html
type UnboundedMailbox struct {
	// head pointer for dequeue operations (consumer side)
	head unsafe.Pointer // *node
	_    cacheLinePadding

	// tail pointer for enqueue operations (producer side)
	tail unsafe.Pointer // *node
	_    cacheLinePadding

	disposed atomic.Bool
}

// enforces compilation error
var _ Mailbox = (*UnboundedMailbox)(nil)

// NewUnboundedMailbox returns a new, initialized UnboundedMailbox.
func NewUnboundedMailbox() *UnboundedMailbox {
	item := new(node)
	return &UnboundedMailbox{
		head: unsafe.Pointer(item),
		tail: unsafe.Pointer(item),
	}
}

// Enqueue appends the given ReceiveContext to the tail of the mailbox.
func (m *UnboundedMailbox) Enqueue(value *ReceiveContext) error {
	if m.disposed.Load() {
		return gerrors.ErrMailboxDisposed
	}

	tnode := nodePool.Get().(*node)
	tnode.value.Store(value)
	atomic.StorePointer(&tnode.next, nil)

	prev := (*node)(atomic.SwapPointer(&m.tail, unsafe.Pointer(tnode)))
	atomic.StorePointer(&prev.next, unsafe.Pointer(tnode))
	return nil
}

// Dequeue removes and returns the next message at the head of the mailbox.
// It returns nil if the mailbox is empty. Dequeue must be called by exactly one
// consumer goroutine.
func (m *UnboundedMailbox) Dequeue() *ReceiveContext {
	head := (*node)(atomic.LoadPointer(&m.head))
	next := (*node)(atomic.LoadPointer(&head.next))

	if next == nil {
		return nil
	}

	atomic.StorePointer(&m.head, unsafe.Pointer(next))
	value := next.value.Load()
	next.value.Store(nil)

	nodePool.Put(head)
	return value
}

// Len returns an approximate number of messages currently in the mailbox.
// This performs an O(n) traversal.
func (m *UnboundedMailbox) Len() int64 {
	var count int64
	head := (*node)(atomic.LoadPointer(&m.head))
	current := (*node)(atomic.LoadPointer(&head.next))

	for current != nil {
		count++
		current = (*node)(atomic.LoadPointer(&current.next))
	}

	return count
}

// IsEmpty reports whether the mailbox currently holds no messages.
func (m *UnboundedMailbox) IsEmpty() bool {
	head := (*node)(atomic.LoadPointer(&m.head))
	next := (*node)(atomic.LoadPointer(&head.next))
	return next == nil
}

// Dispose closes the mailbox for producers.
// Messages already queued can still be dequeued.
func (m *UnboundedMailbox) Dispose() {
	m.disposed.Store(true)
}
