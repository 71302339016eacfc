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

// Package message provides the typed envelope exchanged between actors.
//
// An Envelope carries a dynamically typed payload together with its type name.
// Receivers interpret an envelope with Match, which tries an ordered list of
// typed cases and falls back to a handler when none applies:
//
//	answer := message.Match(envelope,
//		func(env *message.Envelope) string { return "unknown " + env.TypeName() },
//		message.On(func(v uint8) string { return fmt.Sprint(v) }),
//		message.On(func(v string) string { return v }),
//	)
package message

import (
	"fmt"

	"google.golang.org/protobuf/proto"
)

// Envelope wraps a message payload with its discriminant.
// An Envelope is immutable once created.
type Envelope struct {
	message  any
	typeName string
}

// NewEnvelope wraps the given message.
func NewEnvelope(message any) *Envelope {
	return &Envelope{
		message:  message,
		typeName: TypeName(message),
	}
}

// Message returns the wrapped payload.
func (x *Envelope) Message() any {
	if x == nil {
		return nil
	}
	return x.message
}

// TypeName returns the discriminant of the wrapped payload.
func (x *Envelope) TypeName() string {
	if x == nil {
		return TypeName(nil)
	}
	return x.typeName
}

// String implements fmt.Stringer
func (x *Envelope) String() string {
	return fmt.Sprintf("Envelope(%s)", x.TypeName())
}

// TypeName returns the discriminant used for a payload: the fully qualified
// protobuf name for protobuf messages and the Go type otherwise.
func TypeName(message any) string {
	switch m := message.(type) {
	case nil:
		return "<nil>"
	case proto.Message:
		return string(proto.MessageName(m))
	default:
		return fmt.Sprintf("%T", message)
	}
}
