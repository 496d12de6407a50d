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

	"github.com/botobag/gqlsyntax/graphql/ast"
	"github.com/botobag/gqlsyntax/graphql/token"
)

// Implements the parsing rules in the Type System section.

// Set of names that are valid in DirectiveLocations
//
// Reference: https://facebook.github.io/graphql/June2018/#DirectiveLocation
var directiveLocations = map[string]bool{
	// ExecutableDirectiveLocation
	"QUERY":               true,
	"MUTATION":            true,
	"SUBSCRIPTION":        true,
	"FIELD":               true,
	"FRAGMENT_DEFINITION": true,
	"FRAGMENT_SPREAD":     true,
	"INLINE_FRAGMENT":     true,
	"VARIABLE_DEFINITION": true,

	// TypeSystemDirectiveLocation
	"SCHEMA":                 true,
	"SCALAR":                 true,
	"OBJECT":                 true,
	"FIELD_DEFINITION":       true,
	"ARGUMENT_DEFINITION":    true,
	"INTERFACE":              true,
	"UNION":                  true,
	"ENUM":                   true,
	"ENUM_VALUE":             true,
	"INPUT_OBJECT":           true,
	"INPUT_FIELD_DEFINITION": true,
}

//	TypeSystemDefinition ::
//		SchemaDefinition
//		TypeDefinition
//		DirectiveDefinition
//
//	TypeDefinition ::
//		ScalarTypeDefinition
//		ObjectTypeDefinition
//		InterfaceTypeDefinition
//		UnionTypeDefinition
//		EnumTypeDefinition
//		InputObjectTypeDefinition
func (p *parser) parseTypeSystemDefinition() (ast.TypeSystemDefinition, error) {
	// Many definitions begin with a description and require a lookahead.
	start := p.pos
	description := p.parseDescription()

	keyword := p.peek()
	if keyword.Kind == token.KindName {
		switch keyword.Value {
		case "schema":
			return p.parseSchemaDefinition(start, description)
		case "scalar":
			return p.parseScalarTypeDefinition(start, description)
		case "type":
			return p.parseObjectTypeDefinition(start, description)
		case "interface":
			return p.parseInterfaceTypeDefinition(start, description)
		case "union":
			return p.parseUnionTypeDefinition(start, description)
		case "enum":
			return p.parseEnumTypeDefinition(start, description)
		case "input":
			return p.parseInputObjectTypeDefinition(start, description)
		case "directive":
			return p.parseDirectiveDefinition(start, description)
		}
	}

	return nil, p.unexpected(keyword)
}

//	Description ::
//		StringValue
func (p *parser) parseDescription() *ast.StringValue {
	switch p.peek().Kind {
	case token.KindString, token.KindBlockString:
		return p.parseStringLiteral()
	}
	return nil
}

//	SchemaDefinition ::
//		Description? schema Directives[Const]? { OperationTypeDefinition+ }
func (p *parser) parseSchemaDefinition(start int, description *ast.StringValue) (*ast.SchemaDefinition, error) {
	if err := p.expectKeyword("schema"); err != nil {
		return nil, err
	}

	directives, err := p.parseDirectives(true /* isConst */)
	if err != nil {
		return nil, err
	}

	operationTypes, err := p.parseOperationTypeDefinitions()
	if err != nil {
		return nil, err
	}

	return &ast.SchemaDefinition{
		Description:    description,
		Directives:     directives,
		OperationTypes: operationTypes,
		Loc:            p.loc(start),
	}, nil
}

//	{ OperationTypeDefinition+ }
func (p *parser) parseOperationTypeDefinitions() ([]*ast.OperationTypeDefinition, error) {
	if _, err := p.expect(token.KindLeftBrace); err != nil {
		return nil, err
	}

	var operationTypes []*ast.OperationTypeDefinition
	for {
		operationType, err := p.parseOperationTypeDefinition()
		if err != nil {
			return nil, err
		}
		operationTypes = append(operationTypes, operationType)

		if p.skip(token.KindRightBrace) {
			break
		}
	}

	return operationTypes, nil
}

//	OperationTypeDefinition ::
//		OperationType : NamedType
func (p *parser) parseOperationTypeDefinition() (*ast.OperationTypeDefinition, error) {
	start := p.pos

	tok, err := p.expect(token.KindName)
	if err != nil {
		return nil, err
	}

	operation := ast.OperationType(tok.Value)
	if !operation.IsValid() {
		return nil, p.unexpected(tok)
	}

	if _, err := p.expect(token.KindColon); err != nil {
		return nil, err
	}

	namedType, err := p.parseNamedType()
	if err != nil {
		return nil, err
	}

	return &ast.OperationTypeDefinition{
		Operation: operation,
		Type:      namedType,
		Loc:       p.loc(start),
	}, nil
}

//	ScalarTypeDefinition ::
//		Description? scalar Name Directives[Const]?
func (p *parser) parseScalarTypeDefinition(start int, description *ast.StringValue) (*ast.ScalarTypeDefinition, error) {
	if err := p.expectKeyword("scalar"); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	directives, err := p.parseDirectives(true /* isConst */)
	if err != nil {
		return nil, err
	}

	return &ast.ScalarTypeDefinition{
		Description: description,
		Name:        name,
		Directives:  directives,
		Loc:         p.loc(start),
	}, nil
}

//	ObjectTypeDefinition ::
//		Description? type Name ImplementsInterfaces? Directives[Const]? FieldsDefinition?
func (p *parser) parseObjectTypeDefinition(start int, description *ast.StringValue) (*ast.ObjectTypeDefinition, error) {
	if err := p.expectKeyword("type"); err != nil {
		return nil, err
	}

	name, interfaces, directives, fields, err := p.parseObjectLike()
	if err != nil {
		return nil, err
	}

	return &ast.ObjectTypeDefinition{
		Description: description,
		Name:        name,
		Interfaces:  interfaces,
		Directives:  directives,
		Fields:      fields,
		Loc:         p.loc(start),
	}, nil
}

//	InterfaceTypeDefinition ::
//		Description? interface Name ImplementsInterfaces? Directives[Const]? FieldsDefinition?
func (p *parser) parseInterfaceTypeDefinition(start int, description *ast.StringValue) (*ast.InterfaceTypeDefinition, error) {
	if err := p.expectKeyword("interface"); err != nil {
		return nil, err
	}

	name, interfaces, directives, fields, err := p.parseObjectLike()
	if err != nil {
		return nil, err
	}

	return &ast.InterfaceTypeDefinition{
		Description: description,
		Name:        name,
		Interfaces:  interfaces,
		Directives:  directives,
		Fields:      fields,
		Loc:         p.loc(start),
	}, nil
}

// parseObjectLike parses the part after the keyword that object and interface types (both
// definitions and extensions) share:
//
//	Name ImplementsInterfaces? Directives[Const]? FieldsDefinition?
func (p *parser) parseObjectLike() (
	name ast.Name,
	interfaces []*ast.NamedType,
	directives ast.Directives,
	fields []*ast.FieldDefinition,
	err error) {

	if name, err = p.parseName(); err != nil {
		return
	}

	if interfaces, err = p.parseImplementsInterfaces(); err != nil {
		return
	}

	if directives, err = p.parseDirectives(true /* isConst */); err != nil {
		return
	}

	fields, err = p.parseFieldsDefinition()
	return
}

//	ImplementsInterfaces ::
//		ImplementsInterfaces & NamedType
//		implements &? NamedType
func (p *parser) parseImplementsInterfaces() ([]*ast.NamedType, error) {
	if !p.skipKeyword("implements") {
		return nil, nil
	}

	// Optional leading ampersand
	p.skip(token.KindAmp)

	var types []*ast.NamedType
	for {
		namedType, err := p.parseNamedType()
		if err != nil {
			return nil, err
		}
		types = append(types, namedType)

		if !p.skip(token.KindAmp) {
			break
		}
	}

	return types, nil
}

//	FieldsDefinition ::
//		{ FieldDefinition+ }
func (p *parser) parseFieldsDefinition() ([]*ast.FieldDefinition, error) {
	if !p.skip(token.KindLeftBrace) {
		return nil, nil
	}

	var fields []*ast.FieldDefinition
	for {
		field, err := p.parseFieldDefinition()
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)

		if p.skip(token.KindRightBrace) {
			break
		}
	}

	return fields, nil
}

//	FieldDefinition ::
//		Description? Name ArgumentsDefinition? : Type Directives[Const]?
func (p *parser) parseFieldDefinition() (*ast.FieldDefinition, error) {
	start := p.pos
	description := p.parseDescription()

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	arguments, err := p.parseArgumentDefinitions()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KindColon); err != nil {
		return nil, err
	}

	fieldType, err := p.parseType()
	if err != nil {
		return nil, err
	}

	directives, err := p.parseDirectives(true /* isConst */)
	if err != nil {
		return nil, err
	}

	return &ast.FieldDefinition{
		Description: description,
		Name:        name,
		Arguments:   arguments,
		Type:        fieldType,
		Directives:  directives,
		Loc:         p.loc(start),
	}, nil
}

//	ArgumentsDefinition ::
//		( InputValueDefinition+ )
func (p *parser) parseArgumentDefinitions() ([]*ast.InputValueDefinition, error) {
	if !p.skip(token.KindLeftParen) {
		return nil, nil
	}

	var arguments []*ast.InputValueDefinition
	for {
		argument, err := p.parseInputValueDefinition()
		if err != nil {
			return nil, err
		}
		arguments = append(arguments, argument)

		if p.skip(token.KindRightParen) {
			break
		}
	}

	return arguments, nil
}

//	InputValueDefinition ::
//		Description? Name : Type DefaultValue? Directives[Const]?
func (p *parser) parseInputValueDefinition() (*ast.InputValueDefinition, error) {
	start := p.pos
	description := p.parseDescription()

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KindColon); err != nil {
		return nil, err
	}

	valueType, err := p.parseType()
	if err != nil {
		return nil, err
	}

	var defaultValue ast.Value
	if p.peek().Kind == token.KindEquals {
		if defaultValue, err = p.parseDefaultValue(); err != nil {
			return nil, err
		}
	}

	directives, err := p.parseDirectives(true /* isConst */)
	if err != nil {
		return nil, err
	}

	return &ast.InputValueDefinition{
		Description:  description,
		Name:         name,
		Type:         valueType,
		DefaultValue: defaultValue,
		Directives:   directives,
		Loc:          p.loc(start),
	}, nil
}

//	UnionTypeDefinition ::
//		Description? union Name Directives[Const]? UnionMemberTypes?
func (p *parser) parseUnionTypeDefinition(start int, description *ast.StringValue) (*ast.UnionTypeDefinition, error) {
	if err := p.expectKeyword("union"); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	directives, err := p.parseDirectives(true /* isConst */)
	if err != nil {
		return nil, err
	}

	types, err := p.parseUnionMemberTypes()
	if err != nil {
		return nil, err
	}

	return &ast.UnionTypeDefinition{
		Description: description,
		Name:        name,
		Directives:  directives,
		Types:       types,
		Loc:         p.loc(start),
	}, nil
}

//	UnionMemberTypes ::
//		UnionMemberTypes | NamedType
//		= |? NamedType
func (p *parser) parseUnionMemberTypes() ([]*ast.NamedType, error) {
	if !p.skip(token.KindEquals) {
		return nil, nil
	}

	// Optional leading pipe
	p.skip(token.KindPipe)

	var types []*ast.NamedType
	for {
		namedType, err := p.parseNamedType()
		if err != nil {
			return nil, err
		}
		types = append(types, namedType)

		if !p.skip(token.KindPipe) {
			break
		}
	}

	return types, nil
}

//	EnumTypeDefinition ::
//		Description? enum Name Directives[Const]? EnumValuesDefinition?
func (p *parser) parseEnumTypeDefinition(start int, description *ast.StringValue) (*ast.EnumTypeDefinition, error) {
	if err := p.expectKeyword("enum"); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	directives, err := p.parseDirectives(true /* isConst */)
	if err != nil {
		return nil, err
	}

	values, err := p.parseEnumValuesDefinition()
	if err != nil {
		return nil, err
	}

	return &ast.EnumTypeDefinition{
		Description: description,
		Name:        name,
		Directives:  directives,
		Values:      values,
		Loc:         p.loc(start),
	}, nil
}

//	EnumValuesDefinition ::
//		{ EnumValueDefinition+ }
func (p *parser) parseEnumValuesDefinition() ([]*ast.EnumValueDefinition, error) {
	if !p.skip(token.KindLeftBrace) {
		return nil, nil
	}

	var values []*ast.EnumValueDefinition
	for {
		value, err := p.parseEnumValueDefinition()
		if err != nil {
			return nil, err
		}
		values = append(values, value)

		if p.skip(token.KindRightBrace) {
			break
		}
	}

	return values, nil
}

//	EnumValueDefinition ::
//		Description? EnumValue Directives[Const]?
//
//	EnumValue ::
//		Name but not true, false or null
func (p *parser) parseEnumValueDefinition() (*ast.EnumValueDefinition, error) {
	start := p.pos
	description := p.parseDescription()

	if tok := p.peek(); tok.Kind == token.KindName {
		switch tok.Value {
		case "true", "false", "null":
			return nil, p.newError(tok,
				fmt.Sprintf("%s is reserved and cannot be used for an enum value", tok.Description()))
		}
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	directives, err := p.parseDirectives(true /* isConst */)
	if err != nil {
		return nil, err
	}

	return &ast.EnumValueDefinition{
		Description: description,
		Name:        name,
		Directives:  directives,
		Loc:         p.loc(start),
	}, nil
}

//	InputObjectTypeDefinition ::
//		Description? input Name Directives[Const]? InputFieldsDefinition?
func (p *parser) parseInputObjectTypeDefinition(start int, description *ast.StringValue) (*ast.InputObjectTypeDefinition, error) {
	if err := p.expectKeyword("input"); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	directives, err := p.parseDirectives(true /* isConst */)
	if err != nil {
		return nil, err
	}

	fields, err := p.parseInputFieldsDefinition()
	if err != nil {
		return nil, err
	}

	return &ast.InputObjectTypeDefinition{
		Description: description,
		Name:        name,
		Directives:  directives,
		Fields:      fields,
		Loc:         p.loc(start),
	}, nil
}

//	InputFieldsDefinition ::
//		{ InputValueDefinition+ }
func (p *parser) parseInputFieldsDefinition() ([]*ast.InputValueDefinition, error) {
	if !p.skip(token.KindLeftBrace) {
		return nil, nil
	}

	var fields []*ast.InputValueDefinition
	for {
		field, err := p.parseInputValueDefinition()
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)

		if p.skip(token.KindRightBrace) {
			break
		}
	}

	return fields, nil
}

//	DirectiveDefinition ::
//		Description? directive @ Name ArgumentsDefinition? repeatable? on DirectiveLocations
func (p *parser) parseDirectiveDefinition(start int, description *ast.StringValue) (*ast.DirectiveDefinition, error) {
	if err := p.expectKeyword("directive"); err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KindAt); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	arguments, err := p.parseArgumentDefinitions()
	if err != nil {
		return nil, err
	}

	repeatable := p.skipKeyword("repeatable")

	if err := p.expectKeyword("on"); err != nil {
		return nil, err
	}

	locations, err := p.parseDirectiveLocations()
	if err != nil {
		return nil, err
	}

	return &ast.DirectiveDefinition{
		Description: description,
		Name:        name,
		Arguments:   arguments,
		Repeatable:  repeatable,
		Locations:   locations,
		Loc:         p.loc(start),
	}, nil
}

//	DirectiveLocations ::
//		DirectiveLocations | DirectiveLocation
//		|? DirectiveLocation
func (p *parser) parseDirectiveLocations() ([]ast.Name, error) {
	// Optional leading pipe
	p.skip(token.KindPipe)

	var locations []ast.Name
	for {
		tok := p.peek()
		if tok.Kind == token.KindName && !directiveLocations[tok.Value] {
			return nil, p.unexpected(tok)
		}

		location, err := p.parseName()
		if err != nil {
			return nil, err
		}
		locations = append(locations, location)

		if !p.skip(token.KindPipe) {
			break
		}
	}

	return locations, nil
}

//	TypeSystemExtension ::
//		SchemaExtension
//		TypeExtension
//
//	TypeExtension ::
//		ScalarTypeExtension
//		ObjectTypeExtension
//		InterfaceTypeExtension
//		UnionTypeExtension
//		EnumTypeExtension
//		InputObjectTypeExtension
func (p *parser) parseTypeSystemExtension() (ast.TypeSystemDefinition, error) {
	start := p.pos
	if err := p.expectKeyword("extend"); err != nil {
		return nil, err
	}

	keyword := p.peek()
	if keyword.Kind == token.KindName {
		switch keyword.Value {
		case "schema":
			return p.parseSchemaExtension(start)
		case "scalar":
			return p.parseScalarTypeExtension(start)
		case "type":
			return p.parseObjectTypeExtension(start)
		case "interface":
			return p.parseInterfaceTypeExtension(start)
		case "union":
			return p.parseUnionTypeExtension(start)
		case "enum":
			return p.parseEnumTypeExtension(start)
		case "input":
			return p.parseInputObjectTypeExtension(start)
		}
	}

	return nil, p.unexpected(keyword)
}

//	SchemaExtension ::
//		extend schema Directives[Const]? { OperationTypeDefinition+ }
//		extend schema Directives[Const]
func (p *parser) parseSchemaExtension(start int) (*ast.SchemaExtension, error) {
	if err := p.expectKeyword("schema"); err != nil {
		return nil, err
	}

	directives, err := p.parseDirectives(true /* isConst */)
	if err != nil {
		return nil, err
	}

	var operationTypes []*ast.OperationTypeDefinition
	if p.peek().Kind == token.KindLeftBrace {
		if operationTypes, err = p.parseOperationTypeDefinitions(); err != nil {
			return nil, err
		}
	}

	if len(directives) == 0 && len(operationTypes) == 0 {
		return nil, p.unexpected(p.peek())
	}

	return &ast.SchemaExtension{
		Directives:     directives,
		OperationTypes: operationTypes,
		Loc:            p.loc(start),
	}, nil
}

//	ScalarTypeExtension ::
//		extend scalar Name Directives[Const]
func (p *parser) parseScalarTypeExtension(start int) (*ast.ScalarTypeExtension, error) {
	if err := p.expectKeyword("scalar"); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	directives, err := p.parseDirectives(true /* isConst */)
	if err != nil {
		return nil, err
	}

	if len(directives) == 0 {
		return nil, p.unexpected(p.peek())
	}

	return &ast.ScalarTypeExtension{
		Name:       name,
		Directives: directives,
		Loc:        p.loc(start),
	}, nil
}

//	ObjectTypeExtension ::
//		extend type Name ImplementsInterfaces? Directives[Const]? FieldsDefinition
//		extend type Name ImplementsInterfaces? Directives[Const]
//		extend type Name ImplementsInterfaces
func (p *parser) parseObjectTypeExtension(start int) (*ast.ObjectTypeExtension, error) {
	if err := p.expectKeyword("type"); err != nil {
		return nil, err
	}

	name, interfaces, directives, fields, err := p.parseObjectLike()
	if err != nil {
		return nil, err
	}

	if len(interfaces) == 0 && len(directives) == 0 && len(fields) == 0 {
		return nil, p.unexpected(p.peek())
	}

	return &ast.ObjectTypeExtension{
		Name:       name,
		Interfaces: interfaces,
		Directives: directives,
		Fields:     fields,
		Loc:        p.loc(start),
	}, nil
}

//	InterfaceTypeExtension ::
//		extend interface Name ImplementsInterfaces? Directives[Const]? FieldsDefinition
//		extend interface Name ImplementsInterfaces? Directives[Const]
//		extend interface Name ImplementsInterfaces
func (p *parser) parseInterfaceTypeExtension(start int) (*ast.InterfaceTypeExtension, error) {
	if err := p.expectKeyword("interface"); err != nil {
		return nil, err
	}

	name, interfaces, directives, fields, err := p.parseObjectLike()
	if err != nil {
		return nil, err
	}

	if len(interfaces) == 0 && len(directives) == 0 && len(fields) == 0 {
		return nil, p.unexpected(p.peek())
	}

	return &ast.InterfaceTypeExtension{
		Name:       name,
		Interfaces: interfaces,
		Directives: directives,
		Fields:     fields,
		Loc:        p.loc(start),
	}, nil
}

//	UnionTypeExtension ::
//		extend union Name Directives[Const]? UnionMemberTypes
//		extend union Name Directives[Const]
func (p *parser) parseUnionTypeExtension(start int) (*ast.UnionTypeExtension, error) {
	if err := p.expectKeyword("union"); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	directives, err := p.parseDirectives(true /* isConst */)
	if err != nil {
		return nil, err
	}

	types, err := p.parseUnionMemberTypes()
	if err != nil {
		return nil, err
	}

	if len(directives) == 0 && len(types) == 0 {
		return nil, p.unexpected(p.peek())
	}

	return &ast.UnionTypeExtension{
		Name:       name,
		Directives: directives,
		Types:      types,
		Loc:        p.loc(start),
	}, nil
}

//	EnumTypeExtension ::
//		extend enum Name Directives[Const]? EnumValuesDefinition
//		extend enum Name Directives[Const]
func (p *parser) parseEnumTypeExtension(start int) (*ast.EnumTypeExtension, error) {
	if err := p.expectKeyword("enum"); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	directives, err := p.parseDirectives(true /* isConst */)
	if err != nil {
		return nil, err
	}

	values, err := p.parseEnumValuesDefinition()
	if err != nil {
		return nil, err
	}

	if len(directives) == 0 && len(values) == 0 {
		return nil, p.unexpected(p.peek())
	}

	return &ast.EnumTypeExtension{
		Name:       name,
		Directives: directives,
		Values:     values,
		Loc:        p.loc(start),
	}, nil
}

//	InputObjectTypeExtension ::
//		extend input Name Directives[Const]? InputFieldsDefinition
//		extend input Name Directives[Const]
func (p *parser) parseInputObjectTypeExtension(start int) (*ast.InputObjectTypeExtension, error) {
	if err := p.expectKeyword("input"); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	directives, err := p.parseDirectives(true /* isConst */)
	if err != nil {
		return nil, err
	}

	fields, err := p.parseInputFieldsDefinition()
	if err != nil {
		return nil, err
	}

	if len(directives) == 0 && len(fields) == 0 {
		return nil, p.unexpected(p.peek())
	}

	return &ast.InputObjectTypeExtension{
		Name:       name,
		Directives: directives,
		Fields:     fields,
		Loc:        p.loc(start),
	}, nil
}
