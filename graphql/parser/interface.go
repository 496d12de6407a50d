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

package parser

import (
	"github.com/botobag/gqlsyntax/graphql"
	"github.com/botobag/gqlsyntax/graphql/ast"
	"github.com/botobag/gqlsyntax/graphql/token"
)

// Option configures the parser.
type Option func(options *options)

// options contains configuration options to control parser behavior.
type options struct {
	// See ExperimentalFragmentVariables.
	experimentalFragmentVariables bool

	// If set, the parser doesn't attach ast.Location to the nodes it creates.
	noLocations bool

	// Maximum number of significant tokens allowed in a source; Zero means unlimited.
	maxTokens int

	// Maximum nesting depth of selection sets, list and object values and list types; Zero means
	// unlimited.
	maxDepth int
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ExperimentalFragmentVariables enables the parser to understand and parse variable definitions
// contained in a fragment definition. They'll be represented in the VariableDefinitions field of
// the FragmentDefinition.
//
// The syntax is identical to normal, query-defined variables. For example:
//
//	fragment A($var: Boolean = false) on T  {
//	  ...
//	}
//
// Note: this feature is experimental and may change or be removed in the future.
//
// See https://github.com/facebook/graphql/issues/204.
func ExperimentalFragmentVariables() Option {
	return func(options *options) {
		options.experimentalFragmentVariables = true
	}
}

// NoLocations tells the parser not to record the source locations of the nodes. It saves memory for
// documents that are cached for a long time and never reported errors against.
func NoLocations() Option {
	return func(options *options) {
		options.noLocations = true
	}
}

// MaxTokens fails parsing with SyntaxErrorTooManyTokens once the source contains more than n
// tokens (comments excluded).
func MaxTokens(n int) Option {
	return func(options *options) {
		options.maxTokens = n
	}
}

// MaxDepth fails parsing once selection sets, list or object values or list types are nested more
// than n levels deep.
func MaxDepth(n int) Option {
	return func(options *options) {
		options.maxDepth = n
	}
}

var errNilSource = graphql.NewError("Must provide Source. Received: nil")

// Parse parses the given GraphQL source into a Document. The returned document is either complete
// or nil together with a syntax error; no partial document is returned.
func Parse(source *token.Source, opts ...Option) (*ast.Document, error) {
	if source == nil {
		return nil, errNilSource
	}

	parser, err := newParser(source, newOptions(opts))
	if err != nil {
		return nil, err
	}

	var document *ast.Document
	err = parser.run(func() (err error) {
		document, err = parser.parseDocument()
		return
	})
	if err != nil {
		return nil, err
	}
	return document, nil
}

// ParseString is a shorthand of Parse for a GraphQL source given in string.
func ParseString(text string, opts ...Option) (*ast.Document, error) {
	return Parse(token.NewSourceFromString(text), opts...)
}

// ParseBytes is a shorthand of Parse for a GraphQL source given in bytes.
func ParseBytes(body []byte, opts ...Option) (*ast.Document, error) {
	return Parse(token.NewSourceFromBytes(body), opts...)
}

// ParseValue parses the AST for string containing a GraphQL value (e.g., `[42]`). Variables are
// allowed in the value.
func ParseValue(source *token.Source, opts ...Option) (ast.Value, error) {
	if source == nil {
		return nil, errNilSource
	}

	parser, err := newParser(source, newOptions(opts))
	if err != nil {
		return nil, err
	}

	var value ast.Value
	err = parser.run(func() (err error) {
		if value, err = parser.parseValue(false /* isConst */); err != nil {
			return
		}
		_, err = parser.expect(token.KindEOF)
		return
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

// ParseType parses the AST for string containing a GraphQL Type (e.g., `[Int!]`).
func ParseType(source *token.Source, opts ...Option) (ast.Type, error) {
	if source == nil {
		return nil, errNilSource
	}

	parser, err := newParser(source, newOptions(opts))
	if err != nil {
		return nil, err
	}

	var t ast.Type
	err = parser.run(func() (err error) {
		if t, err = parser.parseType(); err != nil {
			return
		}
		_, err = parser.expect(token.KindEOF)
		return
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}
