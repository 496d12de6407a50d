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
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// Print uses a set of formatting rules (compatible with graphql-js) to convert an AST into a
// string.
func Print(node Node) string {
	var buf strings.Builder
	// strings.Builder never fails.
	Fprint(&buf, node) // nolint: errcheck
	return buf.String()
}

// Fprint "pretty-prints" an AST node to out. It returns the first error returned by out.
func Fprint(out io.Writer, node Node) error {
	p := &printer{
		out: out,
	}
	p.printNode(node)
	return p.err
}

type printer struct {
	out         io.Writer
	err         error
	indentLevel int
}

// WriteString writes s to the output. Once a write fails, the subsequent writes are dropped.
func (p *printer) WriteString(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.out, s)
}

// Write implements io.Writer to allow p using jsoniter.Stream to encode string values.
func (p *printer) Write(b []byte) (int, error) {
	p.WriteString(string(b))
	return len(b), p.err
}

func (p *printer) beginBlock() {
	p.WriteString("{\n")
	p.indentLevel++
}

func (p *printer) endBlock() {
	p.indentLevel--
	p.writeNewLineWithIndent()
	p.WriteString("}")
}

func (p *printer) writeNewLineWithIndent() {
	p.WriteString("\n")
	p.writeIndent()
}

func (p *printer) writeIndent() {
	p.WriteString(p.indentation())
}

func (p *printer) indentation() string {
	return strings.Repeat(" ", 2*p.indentLevel)
}

// printBlock prints each of the n items on its own line within braces.
func (p *printer) printBlock(n int, printItem func(i int)) {
	if n == 0 {
		return
	}
	p.WriteString(" ")
	p.beginBlock()
	for i := 0; i < n; i++ {
		if i > 0 {
			p.WriteString("\n")
		}
		p.writeIndent()
		printItem(i)
	}
	p.endBlock()
}

func (p *printer) printNode(node Node) {
	switch node := node.(type) {
	case *Argument:
		p.printArgument(node)
	case *Directive:
		p.printDirective(node)
	case *Document:
		p.printDocument(node)
	case Name:
		p.printName(node)
	case *ObjectField:
		p.printObjectField(node)
	case *SelectionSet:
		p.printSelectionSet(node)
	case *VariableDefinition:
		p.printVariableDefinition(node)
	case *OperationTypeDefinition:
		p.printOperationTypeDefinition(node)
	case *FieldDefinition:
		p.printFieldDefinition(node)
	case *InputValueDefinition:
		p.printInputValueDefinition(node)
	case *EnumValueDefinition:
		p.printEnumValueDefinition(node)
	case Type:
		p.printType(node)
	case Value:
		p.printValue(node)
	case Definition:
		p.printDefinition(node)
	case Selection:
		p.printSelection(node)
	default:
		panic(fmt.Sprintf("unsupported node type %T to print", node))
	}
}

func (p *printer) printName(name Name) {
	p.WriteString(name.Value)
}

//===----------------------------------------------------------------------------------------====//
// Document
//===----------------------------------------------------------------------------------------====//

func (p *printer) printDocument(doc *Document) {
	if len(doc.Definitions) == 0 {
		return
	}
	for i, definition := range doc.Definitions {
		if i > 0 {
			p.WriteString("\n\n")
		}
		p.printDefinition(definition)
	}
	p.WriteString("\n")
}

func (p *printer) printDefinition(node Definition) {
	switch node := node.(type) {
	case *FragmentDefinition:
		p.printFragmentDefinition(node)
	case *OperationDefinition:
		p.printOperationDefinition(node)
	case TypeSystemDefinition:
		p.printTypeSystemDefinition(node)
	default:
		panic(fmt.Sprintf("unexpected node type %T when printing Definition", node))
	}
}

func (p *printer) printOperationDefinition(operation *OperationDefinition) {
	var (
		name       = operation.Name
		varDefs    = operation.VariableDefinitions
		directives = operation.Directives
	)

	if operation.IsQueryShorthand() {
		p.printSelectionSet(operation.SelectionSet)
		return
	}

	p.WriteString(string(operation.OperationType()))

	if !name.IsNil() || len(varDefs) > 0 {
		p.WriteString(" ")
		if !name.IsNil() {
			p.printName(name)
		}
		p.printVariableDefinitions(varDefs)
	}

	if len(directives) > 0 {
		p.WriteString(" ")
		p.printDirectives(directives)
	}

	if operation.SelectionSet != nil {
		p.WriteString(" ")
		p.printSelectionSet(operation.SelectionSet)
	}
}

func (p *printer) printVariableDefinitions(varDefs VariableDefinitions) {
	if len(varDefs) > 0 {
		p.WriteString("(")
		for i, varDef := range varDefs {
			if i > 0 {
				p.WriteString(", ")
			}
			p.printVariableDefinition(varDef)
		}
		p.WriteString(")")
	}
}

func (p *printer) printVariableDefinition(varDef *VariableDefinition) {
	p.printVariable(varDef.Variable)
	p.WriteString(": ")
	p.printType(varDef.Type)

	if varDef.DefaultValue != nil {
		p.WriteString(" = ")
		p.printValue(varDef.DefaultValue)
	}

	if len(varDef.Directives) > 0 {
		p.WriteString(" ")
		p.printDirectives(varDef.Directives)
	}
}

//===----------------------------------------------------------------------------------------====//
// Fragments
//===----------------------------------------------------------------------------------------====//

func (p *printer) printFragmentDefinition(fragmentDef *FragmentDefinition) {
	// Note: fragment variable definitions are experimental and may be changed or removed in the future.
	p.WriteString("fragment ")
	p.printName(fragmentDef.Name)
	p.printVariableDefinitions(fragmentDef.VariableDefinitions)
	p.WriteString(" on ")
	p.printNamedType(fragmentDef.TypeCondition)
	p.WriteString(" ")

	if len(fragmentDef.Directives) > 0 {
		p.printDirectives(fragmentDef.Directives)
		p.WriteString(" ")
	}

	p.printSelectionSet(fragmentDef.SelectionSet)
}

func (p *printer) printFragmentSpread(fragment *FragmentSpread) {
	p.WriteString("...")
	p.printName(fragment.Name)

	if len(fragment.Directives) > 0 {
		p.WriteString(" ")
		p.printDirectives(fragment.Directives)
	}
}

func (p *printer) printInlineFragment(fragment *InlineFragment) {
	p.WriteString("...")

	if fragment.TypeCondition != nil {
		p.WriteString(" on ")
		p.printNamedType(fragment.TypeCondition)
	}

	if len(fragment.Directives) > 0 {
		p.WriteString(" ")
		p.printDirectives(fragment.Directives)
	}

	if fragment.SelectionSet != nil {
		p.WriteString(" ")
		p.printSelectionSet(fragment.SelectionSet)
	}
}

//===----------------------------------------------------------------------------------------====//
// SelectionSet
//===----------------------------------------------------------------------------------------====//

func (p *printer) printSelectionSet(selectionSet *SelectionSet) {
	if selectionSet == nil || len(selectionSet.Selections) == 0 {
		return
	}
	selections := selectionSet.Selections
	p.beginBlock()
	p.writeIndent()
	p.printSelection(selections[0])
	for _, selection := range selections[1:] {
		p.writeNewLineWithIndent()
		p.printSelection(selection)
	}
	p.endBlock()
}

func (p *printer) printSelection(node Selection) {
	switch node := node.(type) {
	case *Field:
		p.printField(node)
	case *FragmentSpread:
		p.printFragmentSpread(node)
	case *InlineFragment:
		p.printInlineFragment(node)
	default:
		panic(fmt.Sprintf("unexpected node type %T when printing Selection", node))
	}
}

func (p *printer) printField(field *Field) {
	if !field.Alias.IsNil() {
		p.printName(field.Alias)
		p.WriteString(": ")
	}

	p.printName(field.Name)
	p.printArguments(field.Arguments)

	if len(field.Directives) > 0 {
		p.WriteString(" ")
		p.printDirectives(field.Directives)
	}

	if field.SelectionSet != nil {
		p.WriteString(" ")
		p.printSelectionSet(field.SelectionSet)
	}
}

func (p *printer) printArguments(args Arguments) {
	if len(args) > 0 {
		p.WriteString("(")
		for i, arg := range args {
			if i > 0 {
				p.WriteString(", ")
			}
			p.printArgument(arg)
		}
		p.WriteString(")")
	}
}

func (p *printer) printArgument(arg *Argument) {
	p.printName(arg.Name)
	p.WriteString(": ")
	p.printValue(arg.Value)
}

//===----------------------------------------------------------------------------------------====//
// Value
//===----------------------------------------------------------------------------------------====//

func (p *printer) printValue(node Value) {
	switch node := node.(type) {
	case *BooleanValue:
		if node.Value {
			p.WriteString("true")
		} else {
			p.WriteString("false")
		}
	case *EnumValue:
		p.WriteString(node.Value)
	case *FloatValue:
		p.WriteString(node.Value)
	case *IntValue:
		p.WriteString(node.Value)
	case *ListValue:
		p.printListValue(node)
	case *NullValue:
		p.WriteString("null")
	case *ObjectValue:
		p.printObjectValue(node)
	case *StringValue:
		p.printStringValue(node, "  ")
	case *Variable:
		p.printVariable(node)
	default:
		panic(fmt.Sprintf("unexpected node type %T when printing Value", node))
	}
}

func (p *printer) printListValue(value *ListValue) {
	p.WriteString("[")
	for i, item := range value.Values {
		if i > 0 {
			p.WriteString(", ")
		}
		p.printValue(item)
	}
	p.WriteString("]")
}

func (p *printer) printObjectValue(value *ObjectValue) {
	p.WriteString("{")
	for i, field := range value.Fields {
		if i > 0 {
			p.WriteString(", ")
		}
		p.printObjectField(field)
	}
	p.WriteString("}")
}

func (p *printer) printObjectField(field *ObjectField) {
	p.printName(field.Name)
	p.WriteString(": ")
	p.printValue(field.Value)
}

func (p *printer) printStringValue(value *StringValue, blockStringIndent string) {
	if value.Block {
		p.printBlockString(value.Value, blockStringIndent)
		return
	}

	// graphql-js: JSON.stringify(value)
	stream := jsoniter.ConfigDefault.BorrowStream(p)
	stream.WriteString(value.Value)
	// Flush reports write errors which are already recorded in p.err.
	stream.Flush() // nolint: errcheck
	jsoniter.ConfigDefault.ReturnStream(stream)
}

// Print a block string in the indented block form by adding a leading and trailing blank line.
// However, if a block string starts with whitespace and is a single-line, adding a leading blank
// line would strip that whitespace.
func (p *printer) printBlockString(value string, indentation string) {
	var (
		isSingleLine         = !strings.ContainsRune(value, '\n')
		hasLeadingSpace      = len(value) > 0 && (value[0] == ' ' || value[0] == '\t')
		hasTrailingQuote     = len(value) > 0 && value[len(value)-1] == '"'
		printAsMultipleLines = !isSingleLine || hasTrailingQuote
	)

	p.WriteString(`"""`)

	// Format a multi-line block quote to account for leading space.
	if printAsMultipleLines && !(isSingleLine && hasLeadingSpace) {
		p.writeNewLineWithIndent()
		p.WriteString(indentation)
	}

	// Replace """ with \""".
	value = strings.Replace(value, `"""`, `\"""`, -1)
	value = strings.Replace(value, "\n", "\n"+p.indentation()+indentation, -1)
	p.WriteString(value)

	if printAsMultipleLines {
		p.writeNewLineWithIndent()
	}

	p.WriteString(`"""`)
}

func (p *printer) printVariable(v *Variable) {
	p.WriteString("$")
	p.printName(v.Name)
}

//===----------------------------------------------------------------------------------------====//
// Type
//===----------------------------------------------------------------------------------------====//

func (p *printer) printType(node Type) {
	switch node := node.(type) {
	case *ListType:
		p.WriteString("[")
		p.printType(node.ItemType)
		p.WriteString("]")
	case *NamedType:
		p.printNamedType(node)
	case *NonNullType:
		p.printType(node.Type)
		p.WriteString("!")
	default:
		panic(fmt.Sprintf("unexpected node type %T when printing Type", node))
	}
}

func (p *printer) printNamedType(named *NamedType) {
	p.printName(named.Name)
}

//===----------------------------------------------------------------------------------------====//
// Directive
//===----------------------------------------------------------------------------------------====//

func (p *printer) printDirectives(directives Directives) {
	for i, directive := range directives {
		if i > 0 {
			p.WriteString(" ")
		}
		p.printDirective(directive)
	}
}

// printDirectivesWithSpace prints directives preceded by a space.
func (p *printer) printDirectivesWithSpace(directives Directives) {
	if len(directives) > 0 {
		p.WriteString(" ")
		p.printDirectives(directives)
	}
}

func (p *printer) printDirective(directive *Directive) {
	p.WriteString("@")
	p.printName(directive.Name)
	p.printArguments(directive.Arguments)
}
