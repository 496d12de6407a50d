/**
 * Copyright (c) 2018, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package jsonvalue

import (
	"errors"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

var errTrailingData = errors.New("jsonvalue: unexpected data after top-level value")

// Decode reads the next value from iter. Errors are reported through iter.Error.
func Decode(iter *jsoniter.Iterator) *Value {
	switch iter.WhatIsNext() {
	case jsoniter.NilValue:
		iter.Skip()
		return NullValue()

	case jsoniter.BoolValue:
		return BoolValue(iter.ReadBool())

	case jsoniter.NumberValue:
		return NumberValue(string(iter.ReadNumber()))

	case jsoniter.StringValue:
		return StringValue(iter.ReadString())

	case jsoniter.ArrayValue:
		v := &Value{
			kind: List,
		}
		closed := iter.ReadArrayCB(func(iter *jsoniter.Iterator) bool {
			v.list = append(v.list, Decode(iter))
			return iter.Error == nil
		})
		if !closed {
			truncated(iter)
		}
		return v

	case jsoniter.ObjectValue:
		v := &Value{
			kind:  Map,
			index: map[string]int{},
		}
		closed := iter.ReadMapCB(func(iter *jsoniter.Iterator, key string) bool {
			v.set(key, Decode(iter))
			return iter.Error == nil
		})
		if !closed {
			truncated(iter)
		}
		return v
	}

	if iter.Error == nil {
		iter.ReportError("jsonvalue.Decode", "unexpected value")
	} else {
		truncated(iter)
	}
	return nil
}

// truncated turns an io.EOF hit in the middle of a value into io.ErrUnexpectedEOF. The iterator
// reports io.EOF whenever it reaches the end of input, which is fine only after a complete
// top-level value.
func truncated(iter *jsoniter.Iterator) {
	if iter.Error == nil || iter.Error == io.EOF {
		iter.Error = io.ErrUnexpectedEOF
	}
}

// Parse decodes a JSON document. The entire input must be a single value.
func Parse(data []byte) (*Value, error) {
	iter := jsoniter.ConfigDefault.BorrowIterator(data)
	defer jsoniter.ConfigDefault.ReturnIterator(iter)

	v := Decode(iter)
	if iter.Error != nil && iter.Error != io.EOF {
		return nil, fmt.Errorf("jsonvalue: %s", iter.Error)
	}

	// Only whitespace may follow.
	iter.WhatIsNext()
	if iter.Error != io.EOF {
		return nil, errTrailingData
	}

	return v, nil
}

// Encode writes v to stream.
func Encode(v *Value, stream *jsoniter.Stream) {
	switch v.Kind() {
	case Null:
		stream.WriteNil()

	case Bool:
		stream.WriteBool(v.boolean)

	case Number:
		stream.WriteRaw(v.text)

	case String:
		stream.WriteString(v.text)

	case List:
		stream.WriteArrayStart()
		for i, element := range v.list {
			if i > 0 {
				stream.WriteMore()
			}
			Encode(element, stream)
		}
		stream.WriteArrayEnd()

	case Map:
		stream.WriteObjectStart()
		for i, field := range v.fields {
			if i > 0 {
				stream.WriteMore()
			}
			stream.WriteObjectField(field.Key)
			Encode(field.Value, stream)
		}
		stream.WriteObjectEnd()
	}
}

// MarshalJSON implements json.Marshaler.
func (v *Value) MarshalJSON() ([]byte, error) {
	stream := jsoniter.ConfigDefault.BorrowStream(nil)
	defer jsoniter.ConfigDefault.ReturnStream(stream)

	Encode(v, stream)
	if stream.Error != nil {
		return nil, stream.Error
	}

	// Copy out the buffer which is returned to the pool.
	result := make([]byte, len(stream.Buffer()))
	copy(result, stream.Buffer())
	return result, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	decoded, err := Parse(data)
	if err != nil {
		return err
	}
	*v = *decoded
	return nil
}
