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

package request

import (
	"errors"
	"fmt"
	"strings"
)

// Code classifies a request error.
type Code uint8

// Enumeration of Code
const (
	CodeUnknown Code = iota

	// Neither query text nor a cache key was given.
	MissingQuery

	// The cache key given in the request refers to no cached document.
	DocumentNotFound

	// A socket message lacks its type or id or has fields of wrong types.
	InvalidMessageStructure

	// The body is not valid JSON or is not an object or a non-empty array of objects, or a field
	// has a wrong type.
	InvalidRequestBody

	// The query text failed to parse. Err holds the syntax error.
	InvalidQuery

	// The sha256Hash in the persisted query extension doesn't match the query text.
	InvalidQueryHash
)

func (code Code) String() string {
	switch code {
	case MissingQuery:
		return "MissingQuery"
	case DocumentNotFound:
		return "DocumentNotFound"
	case InvalidMessageStructure:
		return "InvalidMessageStructure"
	case InvalidRequestBody:
		return "InvalidRequestBody"
	case InvalidQuery:
		return "InvalidQuery"
	case InvalidQueryHash:
		return "InvalidQueryHash"
	}
	return "Unknown"
}

// Error is returned by the request parser when a request cannot be turned into a document.
type Error struct {
	Code Code

	// Position of the failing request in a batch; 0 for a single request.
	Index int

	// The cache key involved in the failure if any
	Key string

	// Description of what is wrong; Err or Code describes the error when it is empty.
	Message string

	// The underlying error if any (e.g., the syntax error for InvalidQuery)
	Err error
}

var _ error = (*Error)(nil)

// NewError creates an Error with a message formatted from args.
func NewError(code Code, message string, args ...interface{}) *Error {
	if len(args) > 0 {
		message = fmt.Sprintf(message, args...)
	}
	return &Error{
		Code:    code,
		Message: message,
	}
}

func wrapError(code Code, err error, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Error implements Go's error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("request: ")
	b.WriteString(e.Code.String())
	if len(e.Message) > 0 {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if len(e.Key) > 0 {
		fmt.Fprintf(&b, " (key %q)", e.Key)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// CodeOf returns the code of the first Error in err's chain or CodeUnknown if there's none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}
