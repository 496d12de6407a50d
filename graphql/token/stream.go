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

// Stream is the append-only sequence of tokens produced by one lexing pass over a Source. The first
// token is always <SOF> and the last one is always <EOF>. Comments are included. Neighbors are
// found by index.
type Stream []Token

// Len returns the number of tokens in the stream.
func (stream Stream) Len() int {
	return len(stream)
}

// At returns the i-th token.
func (stream Stream) At(i int) *Token {
	return &stream[i]
}

// Prev returns the token before the i-th one or nil for <SOF>.
func (stream Stream) Prev(i int) *Token {
	if i <= 0 || i > len(stream) {
		return nil
	}
	return &stream[i-1]
}

// Next returns the token after the i-th one or nil for <EOF>.
func (stream Stream) Next(i int) *Token {
	if i < -1 || i+1 >= len(stream) {
		return nil
	}
	return &stream[i+1]
}

// NextSignificant returns the index of the first token after i that is not a comment. It returns
// the index of <EOF> when nothing significant follows.
func (stream Stream) NextSignificant(i int) int {
	for i++; i < len(stream)-1; i++ {
		if stream[i].Kind != KindComment {
			return i
		}
	}
	return len(stream) - 1
}

// Significant returns a copy of stream with comment tokens removed.
func (stream Stream) Significant() Stream {
	result := make(Stream, 0, len(stream))
	for _, tok := range stream {
		if tok.Kind != KindComment {
			result = append(result, tok)
		}
	}
	return result
}

// Equal reports whether two streams contain identical tokens in the same order.
func (stream Stream) Equal(other Stream) bool {
	if len(stream) != len(other) {
		return false
	}
	for i := range stream {
		if stream[i] != other[i] {
			return false
		}
	}
	return true
}
