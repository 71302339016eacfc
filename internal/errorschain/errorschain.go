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

import "go.uber.org/multierr"

// Chain collects errors in insertion order and reports them
// either as the first non-nil error or as a combined multierr.
type Chain struct {
	returnFirst bool
	errs        []error
	fns         []func() error
}

// ChainOption configures a Chain at creation time.
type ChainOption func(*Chain)

// New creates a new error chain
func New(opts ...ChainOption) *Chain {
	chain := &Chain{
		errs: make([]error, 0),
		fns:  make([]func() error, 0),
	}

	for _, opt := range opts {
		opt(chain)
	}

	return chain
}

// AddError adds an already computed error to the chain
func (c *Chain) AddError(err error) *Chain {
	c.fns = append(c.fns, func() error { return err })
	return c
}

// AddErrors adds a slice of errors to the chain. The slice order matters
func (c *Chain) AddErrors(errs ...error) *Chain {
	for _, err := range errs {
		c.AddError(err)
	}
	return c
}

// AddErrorFn adds a deferred computation to the chain.
// The function is only executed when Error is called and,
// in ReturnFirst mode, only when no earlier entry failed.
func (c *Chain) AddErrorFn(fn func() error) *Chain {
	c.fns = append(c.fns, fn)
	return c
}

// AddErrorFns adds a list of deferred computations to the chain
func (c *Chain) AddErrorFns(fns ...func() error) *Chain {
	c.fns = append(c.fns, fns...)
	return c
}

// Error evaluates the chain and returns the resulting error
func (c *Chain) Error() error {
	if len(c.errs) > 0 {
		return c.result()
	}

	for _, fn := range c.fns {
		if fn == nil {
			continue
		}
		if err := fn(); err != nil {
			c.errs = append(c.errs, err)
			if c.returnFirst {
				break
			}
		}
	}
	return c.result()
}

func (c *Chain) result() error {
	if len(c.errs) == 0 {
		return nil
	}
	if c.returnFirst {
		return c.errs[0]
	}
	return multierr.Combine(c.errs...)
}

// ReturnFirst sets whether a chain should stop on the first error.
func ReturnFirst() ChainOption {
	return func(c *Chain) { c.returnFirst = true }
}

// ReturnAll sets whether a chain should return all errors.
func ReturnAll() ChainOption {
	return func(c *Chain) { c.returnFirst = false }
}
