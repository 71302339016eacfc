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

package message

// Case is one typed branch of Match.
type Case[R any] struct {
	typeName string
	apply    func(message any) (R, bool)
}

// On builds a Case that applies handler when the payload is a T.
func On[T any, R any](handler func(T) R) Case[R] {
	var zero T
	return Case[R]{
		typeName: TypeName(zero),
		apply: func(message any) (R, bool) {
			value, ok := message.(T)
			if !ok {
				var none R
				return none, false
			}
			return handler(value), true
		},
	}
}

// TypeName returns the name of the type this case matches.
// It is "<nil>" for interface types.
func (c Case[R]) TypeName() string {
	return c.typeName
}

// Match invokes the first case whose type matches the envelope payload.
// When no case matches, or the envelope is nil, fallback is invoked.
func Match[R any](envelope *Envelope, fallback func(*Envelope) R, cases ...Case[R]) R {
	if envelope != nil {
		for _, c := range cases {
			if out, ok := c.apply(envelope.message); ok {
				return out
			}
		}
	}
	return fallback(envelope)
}

// As returns the envelope payload as a T.
func As[T any](envelope *Envelope) (T, bool) {
	value, ok := envelope.Message().(T)
	return value, ok
}
