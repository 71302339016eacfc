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

package xsync

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	t.Run("With Set/Get/Delete", func(t *testing.T) {
		m := NewMap[string, int]()
		m.Set("a", 1)
		m.Set("b", 2)

		value, ok := m.Get("a")
		require.True(t, ok)
		assert.Equal(t, 1, value)
		assert.Equal(t, 2, m.Len())

		m.Delete("a")
		_, ok = m.Get("a")
		assert.False(t, ok)
		assert.Equal(t, 1, m.Len())

		m.Reset()
		assert.Zero(t, m.Len())
	})
	t.Run("With Keys and Values", func(t *testing.T) {
		m := NewMap[string, int]()
		m.Set("a", 1)
		m.Set("b", 2)

		keys := m.Keys()
		sort.Strings(keys)
		assert.Equal(t, []string{"a", "b"}, keys)

		values := m.Values()
		sort.Ints(values)
		assert.Equal(t, []int{1, 2}, values)

		sum := 0
		m.Range(func(_ string, v int) { sum += v })
		assert.Equal(t, 3, sum)
	})
	t.Run("With GetOrSet", func(t *testing.T) {
		m := NewMap[string, int]()
		value, loaded := m.GetOrSet("a", func() int { return 1 })
		assert.False(t, loaded)
		assert.Equal(t, 1, value)

		value, loaded = m.GetOrSet("a", func() int { return 2 })
		assert.True(t, loaded)
		assert.Equal(t, 1, value)
	})
	t.Run("With concurrent GetOrSet", func(t *testing.T) {
		m := NewMap[string, *int]()
		var wg sync.WaitGroup
		results := make([]*int, 16)
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i], _ = m.GetOrSet("shared", func() *int { return new(int) })
			}(i)
		}
		wg.Wait()
		for _, result := range results {
			assert.Same(t, results[0], result)
		}
	})
	t.Run("With DeleteIf", func(t *testing.T) {
		m := NewMap[string, int]()
		m.Set("a", 0)
		m.Set("b", 1)

		assert.True(t, m.DeleteIf("a", func(v int) bool { return v == 0 }))
		assert.False(t, m.DeleteIf("b", func(v int) bool { return v == 0 }))
		assert.False(t, m.DeleteIf("c", func(int) bool { return true }))
		assert.Equal(t, 1, m.Len())
	})
}
