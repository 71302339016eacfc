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
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gerrors "github.com/tochemey/distributor/errors"
)

func TestUnboundedMailbox(t *testing.T) {
	t.Run("With FIFO order", func(t *testing.T) {
		mailbox := NewUnboundedMailbox()
		assert.True(t, mailbox.IsEmpty())
		assert.Nil(t, mailbox.Dequeue())

		for i := range 3 {
			require.NoError(t, mailbox.Enqueue(&ReceiveContext{err: nil, ctx: context.WithValue(context.Background(), testKey{}, i)}))
		}
		assert.EqualValues(t, 3, mailbox.Len())
		assert.False(t, mailbox.IsEmpty())

		for i := range 3 {
			received := mailbox.Dequeue()
			require.NotNil(t, received)
			assert.Equal(t, i, received.Context().Value(testKey{}))
		}
		assert.True(t, mailbox.IsEmpty())
	})
	t.Run("With concurrent producers", func(t *testing.T) {
		mailbox := NewUnboundedMailbox()
		var wg sync.WaitGroup
		for range 10 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range 100 {
					_ = mailbox.Enqueue(new(ReceiveContext))
				}
			}()
		}
		wg.Wait()
		assert.EqualValues(t, 1000, mailbox.Len())
	})
	t.Run("With Dispose", func(t *testing.T) {
		mailbox := NewUnboundedMailbox()
		require.NoError(t, mailbox.Enqueue(new(ReceiveContext)))
		mailbox.Dispose()

		require.ErrorIs(t, mailbox.Enqueue(new(ReceiveContext)), gerrors.ErrMailboxDisposed)
		// queued messages can still be drained
		assert.NotNil(t, mailbox.Dequeue())
		assert.Nil(t, mailbox.Dequeue())
	})
}

func TestBoundedMailbox(t *testing.T) {
	t.Run("With capacity", func(t *testing.T) {
		mailbox := NewBoundedMailbox(2)
		assert.EqualValues(t, 2, mailbox.Capacity())
		assert.True(t, mailbox.IsEmpty())
		assert.Nil(t, mailbox.Dequeue())

		first := new(ReceiveContext)
		second := new(ReceiveContext)
		require.NoError(t, mailbox.Enqueue(first))
		require.NoError(t, mailbox.Enqueue(second))
		require.ErrorIs(t, mailbox.Enqueue(new(ReceiveContext)), gerrors.ErrMailboxFull)
		assert.EqualValues(t, 2, mailbox.Len())

		assert.Same(t, first, mailbox.Dequeue())
		assert.Same(t, second, mailbox.Dequeue())
		assert.True(t, mailbox.IsEmpty())
	})
	t.Run("With Dispose", func(t *testing.T) {
		mailbox := NewBoundedMailbox(0)
		require.NoError(t, mailbox.Enqueue(new(ReceiveContext)))
		mailbox.Dispose()

		require.ErrorIs(t, mailbox.Enqueue(new(ReceiveContext)), gerrors.ErrMailboxDisposed)
		assert.True(t, mailbox.IsEmpty())
		assert.Nil(t, mailbox.Dequeue())
	})
}

type testKey struct{}
