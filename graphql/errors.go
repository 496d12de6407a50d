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

package graphql

import (
	"errors"
	"fmt"
)

//===----------------------------------------------------------------------------------------====//
// Syntax Error
//===----------------------------------------------------------------------------------------====//

// SyntaxErrorCode classifies a SyntaxError.
type SyntaxErrorCode uint8

// Enumeration of SyntaxErrorCode
const (
	// SyntaxErrorUnknown is returned by SyntaxErrorCodeOf for errors that are not syntax errors.
	SyntaxErrorUnknown SyntaxErrorCode = iota

	// A character that cannot start any token or is not allowed in the source.
	SyntaxErrorUnexpectedCharacter

	// A well-formed token that the grammar doesn't accept at its position.
	SyntaxErrorUnexpectedToken

	// A numeric literal that violates the Int or Float grammar.
	SyntaxErrorInvalidNumberFormat

	// An unknown escape or a malformed \uXXXX in a string.
	SyntaxErrorInvalidEscapeSequence

	// A string or block string that reaches a line terminator or <EOF> before its closing quote.
	SyntaxErrorUnterminatedString

	// An invalid source character within a block string.
	SyntaxErrorInvalidBlockStringEscape

	// The document has more tokens than the limit configured for the lexer.
	SyntaxErrorTooManyTokens
)

func (code SyntaxErrorCode) String() string {
	switch code {
	case SyntaxErrorUnknown:
		return "Unknown"
	case SyntaxErrorUnexpectedCharacter:
		return "UnexpectedCharacter"
	case SyntaxErrorUnexpectedToken:
		return "UnexpectedToken"
	case SyntaxErrorInvalidNumberFormat:
		return "InvalidNumberFormat"
	case SyntaxErrorInvalidEscapeSequence:
		return "InvalidEscapeSequence"
	case SyntaxErrorUnterminatedString:
		return "UnterminatedString"
	case SyntaxErrorInvalidBlockStringEscape:
		return "InvalidBlockStringEscape"
	case SyntaxErrorTooManyTokens:
		return "TooManyTokens"
	}
	return fmt.Sprintf("SyntaxErrorCode(%d)", code)
}

// SyntaxError describes a failure to recognize GraphQL source text. It is always delivered wrapped
// in an Error of ErrKindSyntax which carries the location for response.
type SyntaxError struct {
	Code SyntaxErrorCode

	// 1-indexed position of the offending character or token
	Line   uint
	Column uint

	// The offending source text if one is applicable (e.g., the malformed escape sequence or the
	// unexpected token.)
	Lexeme string

	Description string

	// Err is set when the syntax error was converted from an unexpected internal failure.
	Err error
}

var (
	_ error              = (*SyntaxError)(nil)
	_ ErrorWithLocations = (*SyntaxError)(nil)
)

// Error implements Go's error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("Syntax Error: %s", e.Description)
}

// Unwrap returns the internal failure that caused the error.
func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Locations implements ErrorWithLocations.
func (e *SyntaxError) Locations() []ErrorLocation {
	return []ErrorLocation{
		{
			Line:   e.Line,
			Column: e.Column,
		},
	}
}

// NewSyntaxError produces an error representing a syntax error, containing useful descriptive
// information about the syntax error's position in the source.
func NewSyntaxError(code SyntaxErrorCode, location ErrorLocation, lexeme string, description string) error {
	e := &SyntaxError{
		Code:        code,
		Line:        location.Line,
		Column:      location.Column,
		Lexeme:      lexeme,
		Description: description,
	}
	return NewError(e.Error(), e, ErrKindSyntax)
}

// WrapSyntaxError is like NewSyntaxError but attaches the underlying failure.
func WrapSyntaxError(err error, code SyntaxErrorCode, location ErrorLocation, description string) error {
	e := &SyntaxError{
		Code:        code,
		Line:        location.Line,
		Column:      location.Column,
		Description: description,
		Err:         err,
	}
	return NewError(e.Error(), e, ErrKindSyntax)
}

// SyntaxErrorOf returns the SyntaxError in err's chain or nil if there's none.
func SyntaxErrorOf(err error) *SyntaxError {
	var e *SyntaxError
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// SyntaxErrorCodeOf returns the code of the SyntaxError in err's chain. Return SyntaxErrorUnknown if
// err is not a syntax error.
func SyntaxErrorCodeOf(err error) SyntaxErrorCode {
	if e := SyntaxErrorOf(err); e != nil {
		return e.Code
	}
	return SyntaxErrorUnknown
}
