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
	"fmt"

	"github.com/botobag/gqlsyntax/graphql"
	"github.com/botobag/gqlsyntax/graphql/ast"
	"github.com/botobag/gqlsyntax/graphql/lexer"
	"github.com/botobag/gqlsyntax/graphql/token"
)

// parser holds internal state during parsing.
type parser struct {
	body token.SourceBody

	// The token stream produced by lexer
	tokens token.Stream

	// Index of the current token in tokens; It never points to a comment.
	pos int

	// Index of the last consumed token; Used to compute the end of node location.
	lastPos int

	// Current nesting depth; See MaxDepth.
	depth int

	// The configuration options
	options options
}

func newParser(source *token.Source, options options) (*parser, error) {
	var lexerOptions []lexer.Option
	if options.maxTokens > 0 {
		lexerOptions = append(lexerOptions, lexer.MaxTokens(options.maxTokens))
	}

	tokens, err := lexer.Tokenize(source, lexerOptions...)
	if err != nil {
		return nil, err
	}

	return &parser{
		body:   source.Body(),
		tokens: tokens,
		// Move past <SOF>.
		pos:     tokens.NextSignificant(0),
		lastPos: 0,
		options: options,
	}, nil
}

// run calls f and converts a panic raised from it into a syntax error so callers only see one error
// taxonomy.
func (p *parser) run(f func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			cause, ok := r.(error)
			if !ok {
				cause = fmt.Errorf("%v", r)
			}
			err = graphql.WrapSyntaxError(
				cause,
				graphql.SyntaxErrorUnexpectedToken,
				p.locationOf(p.peek()),
				"Unexpected token sequence")
		}
	}()
	return f()
}

// Peek return current token without consume it.
func (p *parser) peek() *token.Token {
	return p.tokens.At(p.pos)
}

// advance moves to the next significant token.
func (p *parser) advance() {
	p.lastPos = p.pos
	p.pos = p.tokens.NextSignificant(p.pos)
}

// loc returns a Location that begins at the token at index start and ends with the last consumed
// token.
func (p *parser) loc(start int) *ast.Location {
	if p.options.noLocations {
		return nil
	}
	var (
		first = p.tokens.At(start)
		last  = p.tokens.At(p.lastPos)
	)
	return &ast.Location{
		Start:  first.Start,
		End:    last.End,
		Line:   first.Line,
		Column: first.Column,
	}
}

func (p *parser) locationOf(tok *token.Token) graphql.ErrorLocation {
	return graphql.ErrorLocation{
		Line:   tok.Line,
		Column: tok.Column,
	}
}

// newError creates a syntax error at the given token.
func (p *parser) newError(tok *token.Token, description string) error {
	return graphql.NewSyntaxError(
		graphql.SyntaxErrorUnexpectedToken,
		p.locationOf(tok),
		string(p.body[tok.Start:tok.End]),
		description)
}

// If the next token is of the given kind, return true after advancing the parser. Otherwise, do not
// change the parser state and return false.
func (p *parser) skip(tokenKind token.Kind) bool {
	if p.peek().Kind == tokenKind {
		p.advance()
		return true
	}
	return false
}

// If the next token is of the given kind, return that token after advancing the parser. Otherwise,
// do not change the parser state and return an error.
func (p *parser) expect(tokenKind token.Kind) (*token.Token, error) {
	tok := p.peek()
	if tok.Kind == tokenKind {
		p.advance()
		return tok, nil
	}
	return nil, p.newError(tok, fmt.Sprintf("Expected %v, found %s", tokenKind, tok.Description()))
}

// If the next token is a keyword with the given value, return true after advancing the parser.
// Otherwise, do not change the parser state and return false.
func (p *parser) skipKeyword(keyword string) bool {
	if tok := p.peek(); tok.Kind == token.KindName && tok.Value == keyword {
		p.advance()
		return true
	}
	return false
}

// If the next token is a keyword with the given value, advance the parser. Otherwise, do not change
// the parser state and return an error.
func (p *parser) expectKeyword(keyword string) error {
	if !p.skipKeyword(keyword) {
		tok := p.peek()
		return p.newError(tok, fmt.Sprintf(`Expected "%s", found %s`, keyword, tok.Description()))
	}
	return nil
}

// Helper function for creating an error when an unexpected lexed token is encountered.
func (p *parser) unexpected(tok *token.Token) error {
	return p.newError(tok, fmt.Sprintf("Unexpected %s", tok.Description()))
}

// descend enters one more level of nesting. The caller calls ascend on return.
func (p *parser) descend() error {
	p.depth++
	if p.options.maxDepth > 0 && p.depth > p.options.maxDepth {
		return p.newError(p.peek(),
			fmt.Sprintf("Document exceeds maximum nesting depth of %d", p.options.maxDepth))
	}
	return nil
}

func (p *parser) ascend() {
	p.depth--
}

// Converts a name lex token into a name parse node.
func (p *parser) parseName() (ast.Name, error) {
	start := p.pos
	tok, err := p.expect(token.KindName)
	if err != nil {
		return ast.Name{}, err
	}
	return ast.Name{
		Value: tok.Value,
		Loc:   p.loc(start),
	}, nil
}

// Implements the parsing rules in the Document section.

//	Document ::
//		Definition*
func (p *parser) parseDocument() (*ast.Document, error) {
	var definitions []ast.Definition
	for !p.skip(token.KindEOF) {
		definition, err := p.parseDefinition()
		if err != nil {
			return nil, err
		}
		definitions = append(definitions, definition)
	}

	return &ast.Document{
		Definitions: definitions,
		// Starts from <SOF>.
		Loc: p.loc(0),
	}, nil
}

//	Definition ::
//		ExecutableDefinition
//		TypeSystemDefinition
//		TypeSystemExtension
func (p *parser) parseDefinition() (ast.Definition, error) {
	tok := p.peek()
	switch tok.Kind {
	case token.KindName:
		switch tok.Value {
		case "query", "mutation", "subscription":
			return p.parseOperationDefinition()
		case "fragment":
			return p.parseFragmentDefinition()
		case "schema", "scalar", "type", "interface", "union", "enum", "input", "directive":
			return p.parseTypeSystemDefinition()
		case "extend":
			return p.parseTypeSystemExtension()
		}

	case token.KindString, token.KindBlockString:
		// A description is only allowed on a type system definition.
		return p.parseTypeSystemDefinition()

	case token.KindLeftBrace:
		// Should be parseExecutableDefinition and then parseOperationDefinition. But directly jump to
		// parseQueryShorthand to make it a slightly faster.
		return p.parseQueryShorthand()
	}

	return nil, p.unexpected(tok)
}

//	OperationDefinition ::
// 		OperationType Name? VariableDefinitions? Directives? SelectionSet
//		SelectionSet
//
// Note the second rule which is known as "Query Shorthand" is handled by parseQueryShorthand() not
// here.
func (p *parser) parseOperationDefinition() (*ast.OperationDefinition, error) {
	var (
		start               = p.pos
		name                ast.Name
		variableDefinitions ast.VariableDefinitions
		directives          ast.Directives
		err                 error
	)

	operationType, err := p.expect(token.KindName)
	if err != nil {
		return nil, err
	}

	if p.peek().Kind == token.KindName {
		if name, err = p.parseName(); err != nil {
			return nil, err
		}
	}

	if p.peek().Kind == token.KindLeftParen {
		if variableDefinitions, err = p.parseVariableDefinitions(); err != nil {
			return nil, err
		}
	}

	if p.peek().Kind == token.KindAt {
		if directives, err = p.parseDirectives(false /* isConst */); err != nil {
			return nil, err
		}
	}

	selectionSet, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}

	return &ast.OperationDefinition{
		Operation:           ast.OperationType(operationType.Value),
		Name:                name,
		VariableDefinitions: variableDefinitions,
		Directives:          directives,
		SelectionSet:        selectionSet,
		Loc:                 p.loc(start),
	}, nil
}

// Parse a "Query Shorthand" which is a query operation represented in a short-hand form. It only
// specifies a SelectionSet, omitting the query keyword, query name and any others.
//
// For example: "{ field }"
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Language.Operations
func (p *parser) parseQueryShorthand() (*ast.OperationDefinition, error) {
	start := p.pos
	selectionSet, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}

	return &ast.OperationDefinition{
		Operation:    ast.OperationTypeQuery,
		SelectionSet: selectionSet,
		Loc:          p.loc(start),
	}, nil
}

//	SelectionSet ::
//		{ Selection+ }
func (p *parser) parseSelectionSet() (*ast.SelectionSet, error) {
	start := p.pos

	if err := p.descend(); err != nil {
		return nil, err
	}
	defer p.ascend()

	// Expect {.
	if _, err := p.expect(token.KindLeftBrace); err != nil {
		return nil, err
	}

	selections := make([]ast.Selection, 0, 1)
	for {
		selection, err := p.parseSelection()
		if err != nil {
			return nil, err
		}

		selections = append(selections, selection)

		// Stop on } token.
		if p.skip(token.KindRightBrace) {
			break
		}
	}

	return &ast.SelectionSet{
		Selections: selections,
		Loc:        p.loc(start),
	}, nil
}

//	Selection ::
//		Field
//		FragmentSpread
//		InlineFragment
//
//	FragmentSpread ::
//		... FragmentName Directives?
//
//	InlineFragment ::
//		... TypeCondition? Directives? SelectionSet
func (p *parser) parseSelection() (ast.Selection, error) {
	start := p.pos
	// Both FragmentSpread and InlineFragment start with "...".
	if p.skip(token.KindSpread) {
		// Peek the next token to determine which rule should we go.
		tok := p.peek()
		if tok.Kind != token.KindName || tok.Value == "on" {
			// Must be a InlineFragment.
			return p.parseInlineFragment(start)
		}
		return p.parseFragmentSpread(start)
	}
	return p.parseField()
}

//	Field ::
//		Alias? Name Arguments? Directives? SelectionSet?
//
//	Alias ::
//		Name :
func (p *parser) parseField() (*ast.Field, error) {
	var (
		start        = p.pos
		alias        ast.Name
		name         ast.Name
		arguments    ast.Arguments
		directives   ast.Directives
		selectionSet *ast.SelectionSet
	)

	nameOrAlias, err := p.parseName()
	if err != nil {
		return nil, err
	}

	if !p.skip(token.KindColon) {
		name = nameOrAlias
	} else {
		alias = nameOrAlias
		name, err = p.parseName()
		if err != nil {
			return nil, err
		}
	}

	if p.peek().Kind == token.KindLeftParen {
		arguments, err = p.parseArguments(false)
		if err != nil {
			return nil, err
		}
	}

	if p.peek().Kind == token.KindAt {
		directives, err = p.parseDirectives(false)
		if err != nil {
			return nil, err
		}
	}

	if p.peek().Kind == token.KindLeftBrace {
		selectionSet, err = p.parseSelectionSet()
		if err != nil {
			return nil, err
		}
	}

	return &ast.Field{
		Alias:        alias,
		Name:         name,
		Arguments:    arguments,
		Directives:   directives,
		SelectionSet: selectionSet,
		Loc:          p.loc(start),
	}, nil
}

//	FragmentSpread
//		... FragmentName Directives?
//
// Note that this function assumes "..." has been consumed (see parseSelection, it needs a lookahead
// for distinguish between InlineFragment.)
func (p *parser) parseFragmentSpread(start int) (*ast.FragmentSpread, error) {
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	var directives ast.Directives
	if tok := p.peek(); tok.Kind == token.KindAt {
		if directives, err = p.parseDirectives(false /* isConst */); err != nil {
			return nil, err
		}
	}

	return &ast.FragmentSpread{
		Name:       name,
		Directives: directives,
		Loc:        p.loc(start),
	}, nil
}

//	FragmentDefinition ::
//		fragment FragmentName TypeCondition Directives? SelectionSet
func (p *parser) parseFragmentDefinition() (*ast.FragmentDefinition, error) {
	start := p.pos

	// "fragment" keyword must already been expected before here. Simply expect a Name token to
	// advance.
	if _, err := p.expect(token.KindName); err != nil {
		return nil, err
	}

	name, err := p.parseFragmentName()
	if err != nil {
		return nil, err
	}

	var variableDefinitions ast.VariableDefinitions
	if p.options.experimentalFragmentVariables {
		if tok := p.peek(); tok.Kind == token.KindLeftParen {
			if variableDefinitions, err = p.parseVariableDefinitions(); err != nil {
				return nil, err
			}
		}
	}

	typeCondition, err := p.parseTypeCondition()
	if err != nil {
		return nil, err
	}

	var directives ast.Directives
	if tok := p.peek(); tok.Kind == token.KindAt {
		if directives, err = p.parseDirectives(false /* isConst */); err != nil {
			return nil, err
		}
	}

	selectionSet, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}

	return &ast.FragmentDefinition{
		Name:                name,
		VariableDefinitions: variableDefinitions,
		TypeCondition:       typeCondition,
		Directives:          directives,
		SelectionSet:        selectionSet,
		Loc:                 p.loc(start),
	}, nil
}

//	FragmentName ::
//		Name but not on
func (p *parser) parseFragmentName() (ast.Name, error) {
	if tok := p.peek(); tok.Kind == token.KindName && tok.Value == "on" {
		return ast.Name{}, p.newError(tok, `Expected a fragment name before "on"`)
	}

	return p.parseName()
}

//	TypeCondition ::
//		on NamedType
func (p *parser) parseTypeCondition() (*ast.NamedType, error) {
	if err := p.expectKeyword("on"); err != nil {
		return nil, err
	}
	return p.parseNamedType()
}

//	InlineFragment
//		... TypeCondition? Directives? SelectionSet
func (p *parser) parseInlineFragment(start int) (*ast.InlineFragment, error) {
	var (
		typeCondition *ast.NamedType
		directives    ast.Directives
		err           error
	)

	if tok := p.peek(); tok.Kind == token.KindName {
		if typeCondition, err = p.parseTypeCondition(); err != nil {
			return nil, err
		}
	}

	if tok := p.peek(); tok.Kind == token.KindAt {
		if directives, err = p.parseDirectives(false /* isConst */); err != nil {
			return nil, err
		}
	}

	selectionSet, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}

	return &ast.InlineFragment{
		TypeCondition: typeCondition,
		Directives:    directives,
		SelectionSet:  selectionSet,
		Loc:           p.loc(start),
	}, nil
}

//	Arguments ::
//		( Argument+ )
func (p *parser) parseArguments(isConst bool) (ast.Arguments, error) {
	if _, err := p.expect(token.KindLeftParen); err != nil {
		return nil, err
	}

	arguments := make(ast.Arguments, 0, 1)
	for {
		argument, err := p.parseArgument(isConst)
		if err != nil {
			return nil, err
		}

		arguments = append(arguments, argument)

		// Stop on ) token.
		if p.skip(token.KindRightParen) {
			break
		}
	}

	return arguments, nil
}

//	Argument ::
//		Name : Value
func (p *parser) parseArgument(isConst bool) (*ast.Argument, error) {
	start := p.pos

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KindColon); err != nil {
		return nil, err
	}

	value, err := p.parseValue(isConst)
	if err != nil {
		return nil, err
	}

	return &ast.Argument{
		Name:  name,
		Value: value,
		Loc:   p.loc(start),
	}, nil
}

//	Value ::
//		Variable
//		IntValue
//		FloatValue
//		StringValue
//		BooleanValue
//		NullValue
//		EnumValue
//		ListValueConst
//		ObjectValueConst
//
//	BooleanValue::
//		true or false
//
//	NullValue::
//		null
//
//	EnumValue ::
//		Name but not true or false or null
func (p *parser) parseValue(isConst bool) (ast.Value, error) {
	start := p.pos
	tok := p.peek()
	switch tok.Kind {
	case token.KindDollar:
		if !isConst {
			return p.parseVariable()
		}

	case token.KindInt:
		p.advance()
		return &ast.IntValue{
			Value: tok.Value,
			Loc:   p.loc(start),
		}, nil

	case token.KindFloat:
		p.advance()
		return &ast.FloatValue{
			Value: tok.Value,
			Loc:   p.loc(start),
		}, nil

	case token.KindString, token.KindBlockString:
		return p.parseStringLiteral(), nil

	case token.KindName:
		p.advance()

		switch tok.Value {
		case "true", "false":
			return &ast.BooleanValue{
				Value: tok.Value == "true",
				Loc:   p.loc(start),
			}, nil

		case "null":
			return &ast.NullValue{
				Loc: p.loc(start),
			}, nil

		default:
			return &ast.EnumValue{
				Value: tok.Value,
				Loc:   p.loc(start),
			}, nil
		}

	case token.KindLeftBracket:
		return p.parseListValue(isConst)

	case token.KindLeftBrace:
		return p.parseObjectValue(isConst)
	}

	return nil, p.unexpected(tok)
}

// parseStringLiteral assumes the current token is either a String or a BlockString.
func (p *parser) parseStringLiteral() *ast.StringValue {
	start := p.pos
	tok := p.peek()
	p.advance()
	return &ast.StringValue{
		Value: tok.Value,
		Block: tok.Kind == token.KindBlockString,
		Loc:   p.loc(start),
	}
}

//	ListValue ::
//		[ ]
//		[ Value+ ]
func (p *parser) parseListValue(isConst bool) (*ast.ListValue, error) {
	start := p.pos

	if err := p.descend(); err != nil {
		return nil, err
	}
	defer p.ascend()

	if _, err := p.expect(token.KindLeftBracket); err != nil {
		return nil, err
	}

	var values []ast.Value
	// Stop on ] token.
	for !p.skip(token.KindRightBracket) {
		value, err := p.parseValue(isConst)
		if err != nil {
			return nil, err
		}

		values = append(values, value)
	}

	return &ast.ListValue{
		Values: values,
		Loc:    p.loc(start),
	}, nil
}

//	ObjectValue ::
//		{ }
//		{ ObjectField+ }
func (p *parser) parseObjectValue(isConst bool) (*ast.ObjectValue, error) {
	start := p.pos

	if err := p.descend(); err != nil {
		return nil, err
	}
	defer p.ascend()

	if _, err := p.expect(token.KindLeftBrace); err != nil {
		return nil, err
	}

	var fields []*ast.ObjectField
	// Stop on } token.
	for !p.skip(token.KindRightBrace) {
		// Parse a ObjectField.
		field, err := p.parseObjectField(isConst)
		if err != nil {
			return nil, err
		}

		fields = append(fields, field)
	}

	return &ast.ObjectValue{
		Fields: fields,
		Loc:    p.loc(start),
	}, nil
}

//	ObjectField ::
//		Name : Value
func (p *parser) parseObjectField(isConst bool) (*ast.ObjectField, error) {
	start := p.pos

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KindColon); err != nil {
		return nil, err
	}

	value, err := p.parseValue(isConst)
	if err != nil {
		return nil, err
	}

	return &ast.ObjectField{
		Name:  name,
		Value: value,
		Loc:   p.loc(start),
	}, nil
}

//	Variable ::
//		$ Name
func (p *parser) parseVariable() (*ast.Variable, error) {
	start := p.pos

	if _, err := p.expect(token.KindDollar); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	return &ast.Variable{
		Name: name,
		Loc:  p.loc(start),
	}, nil
}

//	VariableDefinitions ::
//		( VariableDefinition+ )
func (p *parser) parseVariableDefinitions() (ast.VariableDefinitions, error) {
	var variableDefinitions ast.VariableDefinitions

	if _, err := p.expect(token.KindLeftParen); err != nil {
		return nil, err
	}

	for {
		variableDefinition, err := p.parseVariableDefinition()
		if err != nil {
			return nil, err
		}
		variableDefinitions = append(variableDefinitions, variableDefinition)

		if p.skip(token.KindRightParen) {
			break
		}

		// Continue parsing a VariableDefinition node.
	}

	return variableDefinitions, nil
}

//	VariableDefinition ::
//		Variable : Type DefaultValue? Directives?
func (p *parser) parseVariableDefinition() (*ast.VariableDefinition, error) {
	var (
		start        = p.pos
		defaultValue ast.Value
		directives   ast.Directives
	)

	variable, err := p.parseVariable()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KindColon); err != nil {
		return nil, err
	}

	variableType, err := p.parseType()
	if err != nil {
		return nil, err
	}

	if p.peek().Kind == token.KindEquals {
		if defaultValue, err = p.parseDefaultValue(); err != nil {
			return nil, err
		}
	}

	if p.peek().Kind == token.KindAt {
		if directives, err = p.parseDirectives(true /* isConst */); err != nil {
			return nil, err
		}
	}

	return &ast.VariableDefinition{
		Variable:     variable,
		Type:         variableType,
		DefaultValue: defaultValue,
		Directives:   directives,
		Loc:          p.loc(start),
	}, nil
}

//	Type ::
//		NamedType
//		ListType
//		NonNullType
//
//	NamedType ::
//		Name
//
//	ListType ::
//		[ Type ]
//
//	NonNullType ::
//		NamedType !
//		ListType !
func (p *parser) parseType() (ast.Type, error) {
	// Index of the opening brackets in the token stream from the outermost to the innermost
	var listStarts []int

	// See how many levels the innermost named type is nested in lists.
	for p.peek().Kind == token.KindLeftBracket {
		if err := p.descend(); err != nil {
			return nil, err
		}
		listStarts = append(listStarts, p.pos)
		p.advance()
	}

	namedType, err := p.parseNamedType()
	if err != nil {
		return nil, err
	}

	t, err := p.wrapNonNull(namedType, p.lastPos)
	if err != nil {
		return nil, err
	}

	for i := len(listStarts) - 1; i >= 0; i-- {
		if _, err := p.expect(token.KindRightBracket); err != nil {
			return nil, err
		}
		p.ascend()

		listType := &ast.ListType{
			ItemType: t,
			Loc:      p.loc(listStarts[i]),
		}

		if t, err = p.wrapNonNull(listType, listStarts[i]); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// wrapNonNull consumes an optional "!" following t and wraps t into a NonNullType if there's one.
// start is the index of the first token of t.
func (p *parser) wrapNonNull(t ast.NullableType, start int) (ast.Type, error) {
	if !p.skip(token.KindBang) {
		return t, nil
	}

	return &ast.NonNullType{
		Type: t,
		Loc:  p.loc(start),
	}, nil
}

//	NamedType ::
//		Name
func (p *parser) parseNamedType() (*ast.NamedType, error) {
	start := p.pos
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	return &ast.NamedType{
		Name: name,
		Loc:  p.loc(start),
	}, nil
}

//	DefaultValue ::
//		= Value[Const]
func (p *parser) parseDefaultValue() (ast.Value, error) {
	if _, err := p.expect(token.KindEquals); err != nil {
		return nil, err
	}
	return p.parseValue(true /* isConst */)
}

//	Directives ::
//		Directive+
func (p *parser) parseDirectives(isConst bool) (ast.Directives, error) {
	var directives ast.Directives
	for p.peek().Kind == token.KindAt {
		directive, err := p.parseDirective(isConst)
		if err != nil {
			return nil, err
		}
		directives = append(directives, directive)
	}
	return directives, nil
}

//	Directive ::
//		@ Name Arguments?
func (p *parser) parseDirective(isConst bool) (*ast.Directive, error) {
	start := p.pos

	if _, err := p.expect(token.KindAt); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	var arguments ast.Arguments
	if p.peek().Kind == token.KindLeftParen {
		if arguments, err = p.parseArguments(isConst); err != nil {
			return nil, err
		}
	}

	return &ast.Directive{
		Name:      name,
		Arguments: arguments,
		Loc:       p.loc(start),
	}, nil
}
