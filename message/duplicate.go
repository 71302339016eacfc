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

import "google.golang.org/protobuf/proto"

// Cloner is implemented by messages that know how to copy themselves.
// Broadcast delivery uses it to hand every subscriber its own copy.
type Cloner interface {
	Clone() any
}

// Keyed is implemented by messages that carry a routing key.
// Consistent-hash selection routes messages with the same key to the same subscriber.
type Keyed interface {
	HashKey() string
}

// Duplicate returns a copy of message suitable for delivery to one more recipient.
// Protobuf messages are deep-copied, Cloner implementations are cloned and any
// other value is returned as is: non-pointer values are copied by assignment,
// pointers are shared.
func Duplicate(message any) any {
	switch m := message.(type) {
	case proto.Message:
		return proto.Clone(m)
	case Cloner:
		return m.Clone()
	default:
		return message
	}
}
