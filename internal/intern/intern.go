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

package intern

import (
	"sync"
)

// Handle is a small, copyable token standing for an interned name.
// Two handles from the same Interner are equal if and only if their names are equal.
type Handle uint32

// Interner maps names to handles and back.
// It is append-only: a handle is never invalidated while the Interner lives.
// It is safe for concurrent use.
type Interner struct {
	mu      sync.RWMutex
	handles map[string]Handle
	names   []string
}

// New creates an empty Interner
func New() *Interner {
	return &Interner{
		handles: make(map[string]Handle),
		names:   make([]string, 0, 16),
	}
}

// Intern returns the handle of name, allocating one when the name is new.
func (x *Interner) Intern(name string) Handle {
	x.mu.RLock()
	handle, ok := x.handles[name]
	x.mu.RUnlock()
	if ok {
		return handle
	}

	x.mu.Lock()
	defer x.mu.Unlock()
	// another writer may have interned it in the meantime
	if handle, ok := x.handles[name]; ok {
		return handle
	}

	handle = Handle(len(x.names))
	x.names = append(x.names, name)
	x.handles[name] = handle
	return handle
}

// Lookup returns the handle of an already interned name.
func (x *Interner) Lookup(name string) (Handle, bool) {
	x.mu.RLock()
	handle, ok := x.handles[name]
	x.mu.RUnlock()
	return handle, ok
}

// Resolve returns the name behind a handle.
// It returns false when the handle was not produced by this Interner.
func (x *Interner) Resolve(handle Handle) (string, bool) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	if int(handle) >= len(x.names) {
		return "", false
	}
	return x.names[handle], true
}

// Len returns the number of interned names
func (x *Interner) Len() int {
	x.mu.RLock()
	l := len(x.names)
	x.mu.RUnlock()
	return l
}
