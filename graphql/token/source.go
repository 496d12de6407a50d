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

package token

import (
	"unicode/utf8"

	"github.com/botobag/gqlsyntax/internal/unsafe"
)

// SourceBody contains contents of a GraphQL document in a byte sequence.
type SourceBody []byte

// RuneAt decodes a rune at given pos. It also returns the number of bytes occupied by the
// rune.
func (body SourceBody) RuneAt(pos uint) (rune, uint) {
	if uint(len(body)) <= pos {
		// Return -1 to indicate an <EOF>.
		return -1, 0
	}

	// Fast path: characters below Runeself are represented as themselves in a single byte.
	c := body[pos]
	if c < utf8.RuneSelf {
		return rune(c), 1
	}

	r, n := utf8.DecodeRune(body[pos:])
	return r, uint(n)
}

// At returns the byte in the source at given position. Return 0 if the given position is out of
// body's range.
func (body SourceBody) At(pos uint) byte {
	if body.Size() <= pos {
		return 0
	}
	return body[pos]
}

// Size returns the body size in bytes.
func (body SourceBody) Size() uint {
	return uint(len(body))
}

// DefaultSourceName is given to Source without a name.
const DefaultSourceName = "GraphQL request"

// SourceConfig specifies configuration of a Source.
type SourceConfig struct {
	Body SourceBody

	// Name is optional. It is useful for clients who store GraphQL documents in source files.
	Name string
}

// SourceOption configures a Source created by NewSourceFromBytes or NewSourceFromString.
type SourceOption func(config *SourceConfig)

// SourceName sets the name of the source.
func SourceName(name string) SourceOption {
	return func(config *SourceConfig) {
		config.Name = name
	}
}

// Source represent a GraphQL source text.
type Source struct {
	config SourceConfig
}

// NewSource initializes a Source instance from given config.
func NewSource(config *SourceConfig) *Source {
	source := &Source{
		config: *config,
	}
	if len(config.Name) == 0 {
		source.config.Name = DefaultSourceName
	}
	return source
}

// NewSourceFromBytes creates a Source whose body is the given bytes. The bytes are not copied and
// must not be modified afterward.
func NewSourceFromBytes(body []byte, opts ...SourceOption) *Source {
	config := SourceConfig{
		Body: SourceBody(body),
	}
	for _, opt := range opts {
		opt(&config)
	}
	return NewSource(&config)
}

// NewSourceFromString creates a Source from a text. The body shares memory with text, which is
// safe because nothing writes to a SourceBody.
func NewSourceFromString(text string, opts ...SourceOption) *Source {
	return NewSourceFromBytes(unsafe.Bytes(text), opts...)
}

// Body returns source.config.Body.
func (source *Source) Body() SourceBody {
	return source.config.Body
}

// Name returns source.config.Name.
func (source *Source) Name() string {
	return source.config.Name
}
