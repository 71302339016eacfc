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

package errorschain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorsChain(t *testing.T) {
	t.Run("With ReturnFirst", func(t *testing.T) {
		e1 := errors.New("err1")
		e2 := errors.New("err2")
		e3 := errors.New("err3")

		chain := New(ReturnFirst()).AddError(e1).AddError(e2).AddError(e3)
		actual := chain.Error()
		require.ErrorIs(t, actual, e1)
		require.NotErrorIs(t, actual, e2)
	})
	t.Run("With no error", func(t *testing.T) {
		chain := New(ReturnFirst()).AddError(nil)
		require.NoError(t, chain.Error())
	})
	t.Run("With ReturnAll", func(t *testing.T) {
		e1 := errors.New("err1")
		e2 := errors.New("err2")
		e3 := errors.New("err3")

		chain := New(ReturnAll()).AddErrors(e1, e2, e3, nil)
		actual := chain.Error()
		require.EqualError(t, actual, "err1; err2; err3")
		require.ErrorIs(t, actual, e2)
	})
	t.Run("With AddErrorFn ReturnFirst", func(t *testing.T) {
		var calledFn1, calledFn2 bool
		fn1 := func() error { calledFn1 = true; return errors.New("err1") }
		fn2 := func() error { calledFn2 = true; return errors.New("err2") }

		chain := New(ReturnFirst()).AddErrorFn(fn1).AddErrorFn(fn2)
		require.EqualError(t, chain.Error(), "err1")
		require.True(t, calledFn1)
		require.False(t, calledFn2)
	})
	t.Run("With AddErrorFns ReturnAll", func(t *testing.T) {
		var calls int
		fn1 := func() error { calls++; return errors.New("err1") }
		fn2 := func() error { calls++; return nil }
		fn3 := func() error { calls++; return errors.New("err3") }

		chain := New(ReturnAll()).AddErrorFns(fn1, fn2, fn3, nil)
		require.EqualError(t, chain.Error(), "err1; err3")
		require.Equal(t, 3, calls)
	})
	t.Run("With Error evaluated once", func(t *testing.T) {
		var calls int
		chain := New().AddErrorFn(func() error { calls++; return errors.New("err1") })
		require.Error(t, chain.Error())
		require.Error(t, chain.Error())
		require.Equal(t, 1, calls)
	})
}
