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

// Package graphql provides the error taxonomy shared by the GraphQL syntax toolchain: the Error
// type that is serialized into a GraphQL response and the SyntaxError reported by the lexer and
// the parser.
//
// The packages under this directory turn GraphQL source text into an immutable AST:
//
//	token    Token kinds, index-addressed token streams and Source
//	lexer    Tokenizer producing a token.Stream from a Source
//	ast      AST node model, printer and traversal
//	parser   Recursive-descent parser producing an ast.Document
//	cache    Documents cache keyed by query hash or name
//	request  Transport envelope parser with persisted query support
//	handler  HTTP and WebSocket front-ends
package graphql
