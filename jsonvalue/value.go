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
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind tells which variant a Value holds.
type Kind uint8

// Enumeration of Kind
const (
	Null Kind = iota
	Bool
	Number
	String
	List
	Map
)

var _ fmt.Stringer = Kind(0)

func (kind Kind) String() string {
	switch kind {
	case Null:
		return "null"
	case Bool:
		return "boolean"
	case Number:
		return "number"
	case String:
		return "string"
	case List:
		return "list"
	case Map:
		return "map"
	}
	return fmt.Sprintf("Kind(%d)", int(kind))
}

// Field is an entry of a Map value.
type Field struct {
	Key   string
	Value *Value
}

// Value is a JSON value. The zero value is a JSON null. Values are not modified once decoded and
// can be shared by multiple goroutines.
type Value struct {
	kind Kind

	// For Bool
	boolean bool

	// Text of a String or the literal of a Number as it appeared in the input
	text string

	// Elements of a List
	list []*Value

	// Entries of a Map in input order and an index from key to position in fields
	fields []Field
	index  map[string]int
}

// NullValue returns a Value of JSON null.
func NullValue() *Value {
	return &Value{}
}

// BoolValue returns a Value of JSON boolean.
func BoolValue(b bool) *Value {
	return &Value{
		kind:    Bool,
		boolean: b,
	}
}

// NumberValue returns a Value of JSON number with the given literal. The literal is not validated.
func NumberValue(literal string) *Value {
	return &Value{
		kind: Number,
		text: literal,
	}
}

// IntValue returns a Value of JSON number for an integer.
func IntValue(i int64) *Value {
	return NumberValue(strconv.FormatInt(i, 10))
}

// StringValue returns a Value of JSON string.
func StringValue(s string) *Value {
	return &Value{
		kind: String,
		text: s,
	}
}

// ListValue returns a Value of JSON array containing the given elements.
func ListValue(elements ...*Value) *Value {
	return &Value{
		kind: List,
		list: elements,
	}
}

// MapValue returns a Value of JSON object containing the given fields. When a key is repeated, the
// last one wins but the key keeps the position of its first appearance.
func MapValue(fields ...Field) *Value {
	v := &Value{
		kind:   Map,
		fields: make([]Field, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for _, field := range fields {
		v.set(field.Key, field.Value)
	}
	return v
}

func (v *Value) set(key string, value *Value) {
	if i, exists := v.index[key]; exists {
		v.fields[i].Value = value
		return
	}
	v.index[key] = len(v.fields)
	v.fields = append(v.fields, Field{
		Key:   key,
		Value: value,
	})
}

// Kind returns the variant of v. A nil Value is a JSON null.
func (v *Value) Kind() Kind {
	if v == nil {
		return Null
	}
	return v.kind
}

// IsNull returns true if v is nil or a JSON null.
func (v *Value) IsNull() bool {
	return v.Kind() == Null
}

// Bool returns the boolean held by v.
func (v *Value) Bool() (bool, bool) {
	if v.Kind() != Bool {
		return false, false
	}
	return v.boolean, true
}

// Number returns the literal of the number held by v.
func (v *Value) Number() (json.Number, bool) {
	if v.Kind() != Number {
		return "", false
	}
	return json.Number(v.text), true
}

// Int64 interprets v as a 64-bit integer.
func (v *Value) Int64() (int64, error) {
	n, ok := v.Number()
	if !ok {
		return 0, fmt.Errorf("jsonvalue: %s is not a number", v.Kind())
	}
	return n.Int64()
}

// Float64 interprets v as a floating point number.
func (v *Value) Float64() (float64, error) {
	n, ok := v.Number()
	if !ok {
		return 0, fmt.Errorf("jsonvalue: %s is not a number", v.Kind())
	}
	return n.Float64()
}

// Str returns the string held by v.
func (v *Value) Str() (string, bool) {
	if v.Kind() != String {
		return "", false
	}
	return v.text, true
}

// List returns the elements of the array held by v.
func (v *Value) List() ([]*Value, bool) {
	if v.Kind() != List {
		return nil, false
	}
	return v.list, true
}

// Fields returns entries of the object held by v in input order.
func (v *Value) Fields() ([]Field, bool) {
	if v.Kind() != Map {
		return nil, false
	}
	return v.fields, true
}

// Len returns the number of elements in a List or entries in a Map. It returns 0 for others.
func (v *Value) Len() int {
	switch v.Kind() {
	case List:
		return len(v.list)
	case Map:
		return len(v.fields)
	}
	return 0
}

// Get looks up key in a Map. It returns false if v is not a Map or doesn't contain the key.
func (v *Value) Get(key string) (*Value, bool) {
	if v.Kind() != Map {
		return nil, false
	}
	i, exists := v.index[key]
	if !exists {
		return nil, false
	}
	return v.fields[i].Value, true
}

// Lookup follows a path of keys through nested Maps.
func (v *Value) Lookup(path ...string) (*Value, bool) {
	for _, key := range path {
		var ok bool
		if v, ok = v.Get(key); !ok {
			return nil, false
		}
	}
	return v, true
}

// Interface converts v into Go values: nil, bool, json.Number, string, []interface{} and
// map[string]interface{}.
func (v *Value) Interface() interface{} {
	switch v.Kind() {
	case Bool:
		return v.boolean
	case Number:
		return json.Number(v.text)
	case String:
		return v.text
	case List:
		result := make([]interface{}, len(v.list))
		for i, element := range v.list {
			result[i] = element.Interface()
		}
		return result
	case Map:
		result := make(map[string]interface{}, len(v.fields))
		for _, field := range v.fields {
			result[field.Key] = field.Value.Interface()
		}
		return result
	}
	return nil
}

// Equal reports whether v and other represent the same JSON value. Numbers are compared by their
// literals and Map entries are compared regardless of their order.
func (v *Value) Equal(other *Value) bool {
	if v.Kind() != other.Kind() {
		return false
	}

	switch v.Kind() {
	case Null:
		return true
	case Bool:
		return v.boolean == other.boolean
	case Number, String:
		return v.text == other.text
	case List:
		if len(v.list) != len(other.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(other.list[i]) {
				return false
			}
		}
		return true
	case Map:
		if len(v.fields) != len(other.fields) {
			return false
		}
		for _, field := range v.fields {
			otherValue, exists := other.Get(field.Key)
			if !exists || !field.Value.Equal(otherValue) {
				return false
			}
		}
		return true
	}
	return false
}

// String returns the JSON encoding of v.
func (v *Value) String() string {
	b, err := v.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("<invalid: %s>", err)
	}
	return string(b)
}
