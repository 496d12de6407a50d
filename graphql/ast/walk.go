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

// VisitResult is returned by a Visitor to tell Walk of the next action to take. The behavior of the
// traversal can be altered based on the value, including skipping over a sub-tree of AST (by
// returning SkipSubTree) or stopping the whole traversal (by returning Break).
type VisitResult int

// Enumeration of VisitResult.
const (
	// No action, continue the traversal.
	Continue VisitResult = iota

	// Skip over the sub-tree of AST. Leave is not called for the node when returned from Enter.
	SkipSubTree

	// Stop the traversal on return
	Break
)

// Visitor is called by Walk when entering and leaving each node.
type Visitor interface {
	Enter(node Node) VisitResult
	Leave(node Node) VisitResult
}

// VisitorFuncs adapts a pair of functions to Visitor. Either function may be nil.
type VisitorFuncs struct {
	OnEnter func(node Node) VisitResult
	OnLeave func(node Node) VisitResult
}

var _ Visitor = VisitorFuncs{}

// Enter implements Visitor.
func (v VisitorFuncs) Enter(node Node) VisitResult {
	if v.OnEnter == nil {
		return Continue
	}
	return v.OnEnter(node)
}

// Leave implements Visitor.
func (v VisitorFuncs) Leave(node Node) VisitResult {
	if v.OnLeave == nil {
		return Continue
	}
	return v.OnLeave(node)
}

// Walk traverses an AST in depth-first order. Children are visited in the order they appear in the
// source. Absent optional children (e.g., an empty alias or a nil selection set) are not visited.
func Walk(node Node, visitor Visitor) {
	w := walker{visitor}
	w.walk(node)
}

// Inspect traverses an AST in depth-first order. It calls f(node) when entering each node. If f
// returns false, the children of the node are skipped.
func Inspect(node Node, f func(node Node) bool) {
	Walk(node, VisitorFuncs{
		OnEnter: func(node Node) VisitResult {
			if f(node) {
				return Continue
			}
			return SkipSubTree
		},
	})
}

type walker struct {
	visitor Visitor
}

func walkList[T Node](w walker, nodes []T) bool {
	for _, node := range nodes {
		if !w.walk(node) {
			return false
		}
	}
	return true
}

func (w walker) walkName(name Name) bool {
	if name.IsNil() {
		return true
	}
	return w.walk(name)
}

func (w walker) walkDescription(description *StringValue) bool {
	if description == nil {
		return true
	}
	return w.walk(description)
}

// walk returns false if the traversal should be stopped.
func (w walker) walk(node Node) bool {
	switch w.visitor.Enter(node) {
	case Break:
		return false
	case SkipSubTree:
		return true
	}

	if !w.walkChildren(node) {
		return false
	}

	return w.visitor.Leave(node) != Break
}

func (w walker) walkChildren(node Node) bool {
	switch node := node.(type) {
	case Name,
		*IntValue,
		*FloatValue,
		*StringValue,
		*BooleanValue,
		*NullValue,
		*EnumValue:
		return true

	case *Document:
		return walkList(w, node.Definitions)

	case *OperationDefinition:
		return w.walkName(node.Name) &&
			walkList(w, node.VariableDefinitions) &&
			walkList(w, node.Directives) &&
			(node.SelectionSet == nil || w.walk(node.SelectionSet))

	case *VariableDefinition:
		return w.walk(node.Variable) &&
			w.walk(node.Type) &&
			(node.DefaultValue == nil || w.walk(node.DefaultValue)) &&
			walkList(w, node.Directives)

	case *Variable:
		return w.walkName(node.Name)

	case *SelectionSet:
		return walkList(w, node.Selections)

	case *Field:
		return w.walkName(node.Alias) &&
			w.walkName(node.Name) &&
			walkList(w, node.Arguments) &&
			walkList(w, node.Directives) &&
			(node.SelectionSet == nil || w.walk(node.SelectionSet))

	case *Argument:
		return w.walkName(node.Name) && w.walk(node.Value)

	case *FragmentSpread:
		return w.walkName(node.Name) && walkList(w, node.Directives)

	case *InlineFragment:
		return (node.TypeCondition == nil || w.walk(node.TypeCondition)) &&
			walkList(w, node.Directives) &&
			(node.SelectionSet == nil || w.walk(node.SelectionSet))

	case *FragmentDefinition:
		return w.walkName(node.Name) &&
			walkList(w, node.VariableDefinitions) &&
			(node.TypeCondition == nil || w.walk(node.TypeCondition)) &&
			walkList(w, node.Directives) &&
			(node.SelectionSet == nil || w.walk(node.SelectionSet))

	case *ListValue:
		return walkList(w, node.Values)

	case *ObjectValue:
		return walkList(w, node.Fields)

	case *ObjectField:
		return w.walkName(node.Name) && w.walk(node.Value)

	case *Directive:
		return w.walkName(node.Name) && walkList(w, node.Arguments)

	case *NamedType:
		return w.walkName(node.Name)

	case *ListType:
		return w.walk(node.ItemType)

	case *NonNullType:
		return w.walk(node.Type)

	case *SchemaDefinition:
		return w.walkDescription(node.Description) &&
			walkList(w, node.Directives) &&
			walkList(w, node.OperationTypes)

	case *SchemaExtension:
		return walkList(w, node.Directives) && walkList(w, node.OperationTypes)

	case *OperationTypeDefinition:
		return w.walk(node.Type)

	case *ScalarTypeDefinition:
		return w.walkDescription(node.Description) &&
			w.walkName(node.Name) &&
			walkList(w, node.Directives)

	case *ScalarTypeExtension:
		return w.walkName(node.Name) && walkList(w, node.Directives)

	case *ObjectTypeDefinition:
		return w.walkDescription(node.Description) &&
			w.walkName(node.Name) &&
			walkList(w, node.Interfaces) &&
			walkList(w, node.Directives) &&
			walkList(w, node.Fields)

	case *ObjectTypeExtension:
		return w.walkName(node.Name) &&
			walkList(w, node.Interfaces) &&
			walkList(w, node.Directives) &&
			walkList(w, node.Fields)

	case *FieldDefinition:
		return w.walkDescription(node.Description) &&
			w.walkName(node.Name) &&
			walkList(w, node.Arguments) &&
			w.walk(node.Type) &&
			walkList(w, node.Directives)

	case *InputValueDefinition:
		return w.walkDescription(node.Description) &&
			w.walkName(node.Name) &&
			w.walk(node.Type) &&
			(node.DefaultValue == nil || w.walk(node.DefaultValue)) &&
			walkList(w, node.Directives)

	case *InterfaceTypeDefinition:
		return w.walkDescription(node.Description) &&
			w.walkName(node.Name) &&
			walkList(w, node.Interfaces) &&
			walkList(w, node.Directives) &&
			walkList(w, node.Fields)

	case *InterfaceTypeExtension:
		return w.walkName(node.Name) &&
			walkList(w, node.Interfaces) &&
			walkList(w, node.Directives) &&
			walkList(w, node.Fields)

	case *UnionTypeDefinition:
		return w.walkDescription(node.Description) &&
			w.walkName(node.Name) &&
			walkList(w, node.Directives) &&
			walkList(w, node.Types)

	case *UnionTypeExtension:
		return w.walkName(node.Name) &&
			walkList(w, node.Directives) &&
			walkList(w, node.Types)

	case *EnumTypeDefinition:
		return w.walkDescription(node.Description) &&
			w.walkName(node.Name) &&
			walkList(w, node.Directives) &&
			walkList(w, node.Values)

	case *EnumTypeExtension:
		return w.walkName(node.Name) &&
			walkList(w, node.Directives) &&
			walkList(w, node.Values)

	case *EnumValueDefinition:
		return w.walkDescription(node.Description) &&
			w.walkName(node.Name) &&
			walkList(w, node.Directives)

	case *InputObjectTypeDefinition:
		return w.walkDescription(node.Description) &&
			w.walkName(node.Name) &&
			walkList(w, node.Directives) &&
			walkList(w, node.Fields)

	case *InputObjectTypeExtension:
		return w.walkName(node.Name) &&
			walkList(w, node.Directives) &&
			walkList(w, node.Fields)

	case *DirectiveDefinition:
		return w.walkDescription(node.Description) &&
			w.walkName(node.Name) &&
			walkList(w, node.Arguments) &&
			walkList(w, node.Locations)
	}

	panic(fmt.Sprintf("unexpected node type %T when walking AST", node))
}
