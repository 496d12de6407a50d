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

package ast

import (
	"fmt"
)

//===----------------------------------------------------------------------------------------====//
// Type System
//===----------------------------------------------------------------------------------------====//

func (p *printer) printTypeSystemDefinition(node TypeSystemDefinition) {
	switch node := node.(type) {
	case *SchemaDefinition:
		p.printDescription(node.Description)
		p.WriteString("schema")
		p.printDirectivesWithSpace(node.Directives)
		p.printOperationTypeDefinitions(node.OperationTypes)

	case *SchemaExtension:
		p.WriteString("extend schema")
		p.printDirectivesWithSpace(node.Directives)
		p.printOperationTypeDefinitions(node.OperationTypes)

	case *ScalarTypeDefinition:
		p.printDescription(node.Description)
		p.WriteString("scalar ")
		p.printName(node.Name)
		p.printDirectivesWithSpace(node.Directives)

	case *ScalarTypeExtension:
		p.WriteString("extend scalar ")
		p.printName(node.Name)
		p.printDirectivesWithSpace(node.Directives)

	case *ObjectTypeDefinition:
		p.printDescription(node.Description)
		p.WriteString("type ")
		p.printName(node.Name)
		p.printImplementInterfaces(node.Interfaces)
		p.printDirectivesWithSpace(node.Directives)
		p.printFieldDefinitions(node.Fields)

	case *ObjectTypeExtension:
		p.WriteString("extend type ")
		p.printName(node.Name)
		p.printImplementInterfaces(node.Interfaces)
		p.printDirectivesWithSpace(node.Directives)
		p.printFieldDefinitions(node.Fields)

	case *InterfaceTypeDefinition:
		p.printDescription(node.Description)
		p.WriteString("interface ")
		p.printName(node.Name)
		p.printImplementInterfaces(node.Interfaces)
		p.printDirectivesWithSpace(node.Directives)
		p.printFieldDefinitions(node.Fields)

	case *InterfaceTypeExtension:
		p.WriteString("extend interface ")
		p.printName(node.Name)
		p.printImplementInterfaces(node.Interfaces)
		p.printDirectivesWithSpace(node.Directives)
		p.printFieldDefinitions(node.Fields)

	case *UnionTypeDefinition:
		p.printDescription(node.Description)
		p.WriteString("union ")
		p.printName(node.Name)
		p.printDirectivesWithSpace(node.Directives)
		p.printUnionMemberTypes(node.Types)

	case *UnionTypeExtension:
		p.WriteString("extend union ")
		p.printName(node.Name)
		p.printDirectivesWithSpace(node.Directives)
		p.printUnionMemberTypes(node.Types)

	case *EnumTypeDefinition:
		p.printDescription(node.Description)
		p.WriteString("enum ")
		p.printName(node.Name)
		p.printDirectivesWithSpace(node.Directives)
		p.printEnumValueDefinitions(node.Values)

	case *EnumTypeExtension:
		p.WriteString("extend enum ")
		p.printName(node.Name)
		p.printDirectivesWithSpace(node.Directives)
		p.printEnumValueDefinitions(node.Values)

	case *InputObjectTypeDefinition:
		p.printDescription(node.Description)
		p.WriteString("input ")
		p.printName(node.Name)
		p.printDirectivesWithSpace(node.Directives)
		p.printInputFieldDefinitions(node.Fields)

	case *InputObjectTypeExtension:
		p.WriteString("extend input ")
		p.printName(node.Name)
		p.printDirectivesWithSpace(node.Directives)
		p.printInputFieldDefinitions(node.Fields)

	case *DirectiveDefinition:
		p.printDirectiveDefinition(node)

	default:
		panic(fmt.Sprintf("unexpected node type %T when printing TypeSystemDefinition", node))
	}
}

// printDescription prints the description followed by a line break at the current indentation.
func (p *printer) printDescription(description *StringValue) {
	if description == nil {
		return
	}
	p.printStringValue(description, "")
	p.writeNewLineWithIndent()
}

func (p *printer) printOperationTypeDefinitions(operationTypes []*OperationTypeDefinition) {
	p.printBlock(len(operationTypes), func(i int) {
		p.printOperationTypeDefinition(operationTypes[i])
	})
}

func (p *printer) printOperationTypeDefinition(operationType *OperationTypeDefinition) {
	p.WriteString(string(operationType.Operation))
	p.WriteString(": ")
	p.printNamedType(operationType.Type)
}

func (p *printer) printImplementInterfaces(interfaces []*NamedType) {
	if len(interfaces) > 0 {
		p.WriteString(" implements ")
		for i, iface := range interfaces {
			if i > 0 {
				p.WriteString(" & ")
			}
			p.printNamedType(iface)
		}
	}
}

func (p *printer) printUnionMemberTypes(types []*NamedType) {
	if len(types) > 0 {
		p.WriteString(" = ")
		for i, t := range types {
			if i > 0 {
				p.WriteString(" | ")
			}
			p.printNamedType(t)
		}
	}
}

func (p *printer) printFieldDefinitions(fields []*FieldDefinition) {
	p.printBlock(len(fields), func(i int) {
		p.printFieldDefinition(fields[i])
	})
}

func (p *printer) printFieldDefinition(field *FieldDefinition) {
	p.printDescription(field.Description)
	p.printName(field.Name)
	p.printArgumentDefinitions(field.Arguments)
	p.WriteString(": ")
	p.printType(field.Type)
	p.printDirectivesWithSpace(field.Directives)
}

// printArgumentDefinitions prints arguments on one line unless any of them has a description, in
// which case each argument is printed on its own line.
func (p *printer) printArgumentDefinitions(args []*InputValueDefinition) {
	if len(args) == 0 {
		return
	}

	multiline := false
	for _, arg := range args {
		if arg.Description != nil {
			multiline = true
			break
		}
	}

	if !multiline {
		p.WriteString("(")
		for i, arg := range args {
			if i > 0 {
				p.WriteString(", ")
			}
			p.printInputValueDefinition(arg)
		}
		p.WriteString(")")
		return
	}

	p.WriteString("(")
	p.indentLevel++
	for _, arg := range args {
		p.writeNewLineWithIndent()
		p.printInputValueDefinition(arg)
	}
	p.indentLevel--
	p.writeNewLineWithIndent()
	p.WriteString(")")
}

func (p *printer) printInputValueDefinition(value *InputValueDefinition) {
	p.printDescription(value.Description)
	p.printName(value.Name)
	p.WriteString(": ")
	p.printType(value.Type)
	if value.DefaultValue != nil {
		p.WriteString(" = ")
		p.printValue(value.DefaultValue)
	}
	p.printDirectivesWithSpace(value.Directives)
}

func (p *printer) printInputFieldDefinitions(fields []*InputValueDefinition) {
	p.printBlock(len(fields), func(i int) {
		p.printInputValueDefinition(fields[i])
	})
}

func (p *printer) printEnumValueDefinitions(values []*EnumValueDefinition) {
	p.printBlock(len(values), func(i int) {
		p.printEnumValueDefinition(values[i])
	})
}

func (p *printer) printEnumValueDefinition(value *EnumValueDefinition) {
	p.printDescription(value.Description)
	p.printName(value.Name)
	p.printDirectivesWithSpace(value.Directives)
}

func (p *printer) printDirectiveDefinition(directive *DirectiveDefinition) {
	p.printDescription(directive.Description)
	p.WriteString("directive @")
	p.printName(directive.Name)
	p.printArgumentDefinitions(directive.Arguments)
	if directive.Repeatable {
		p.WriteString(" repeatable")
	}
	p.WriteString(" on ")
	for i, location := range directive.Locations {
		if i > 0 {
			p.WriteString(" | ")
		}
		p.printName(location)
	}
}
