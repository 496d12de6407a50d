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
	"math"
	"strconv"
)

// Location describes the region of the source that a node was parsed from.
type Location struct {
	// Byte offset of the first character of the first token in the node
	Start uint

	// Byte offset just past the last character of the last token in the node
	End uint

	// 1-indexed line and column of Start
	Line   uint
	Column uint
}

// Contains returns true if other lies within the region of loc. A nil location contains nothing and
// is contained by nothing.
func (loc *Location) Contains(other *Location) bool {
	if loc == nil || other == nil {
		return false
	}
	return loc.Start <= other.Start && other.End <= loc.End
}

// Node represents a node in an AST tree from parsing GraphQL language.
type Node interface {
	// GetLoc returns the source region of the node or nil if the node was not created by a parser or
	// the parser was asked not to record locations.
	GetLoc() *Location
}

// Name represents a name.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Names
type Name struct {
	Value string
	Loc   *Location
}

var _ Node = Name{}

// NewName creates a Name without location.
func NewName(value string) Name {
	return Name{Value: value}
}

// GetLoc implements Node.
func (node Name) GetLoc() *Location {
	return node.Loc
}

// IsNil returns true if the name is not given.
func (node Name) IsNil() bool {
	return len(node.Value) == 0
}

// String returns the name in string.
func (node Name) String() string {
	return node.Value
}

//===----------------------------------------------------------------------------------------====//
// 2.2 Document
//===----------------------------------------------------------------------------------------====//
// A GraphQL Document describes a complete file or request string operated on by a GraphQL service
// or client. A document contains multiple definitions, either executable or representative of a
// GraphQL type system.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Language.Document

// Document represents a GraphQL Document.
//
// Reference: https://facebook.github.io/graphql/June2018/#Document
type Document struct {
	// Definitions defined in the document.
	Definitions []Definition
	Loc         *Location
}

var _ Node = (*Document)(nil)

// GetLoc implements Node.
func (node *Document) GetLoc() *Location {
	return node.Loc
}

// Definition represents a GraphQL Definition.
//
// Reference: https://facebook.github.io/graphql/June2018/#Definition
type Definition interface {
	Node

	// Directives applied to the definition to provide alternate runtime and validation behaviors.
	// (Prepend "Get" to avoid name collision with the fields in derived class.)
	GetDirectives() Directives

	// definitionNode is a special mark to indicate a Definition node. It makes sure that only
	// definition node can be assigned to Definition.
	definitionNode()
}

// ExecutableDefinition is either an OperationDefinition or a FragmentDefinition.
//
// Reference: https://facebook.github.io/graphql/June2018/#ExecutableDefinition
type ExecutableDefinition interface {
	Definition

	// GetSelectionSet returns the selection set of the definition.
	GetSelectionSet() *SelectionSet
}

var (
	_ ExecutableDefinition = (*OperationDefinition)(nil)
	_ ExecutableDefinition = (*FragmentDefinition)(nil)
)

//===----------------------------------------------------------------------------------------====//
// 2.3 Operations
//===----------------------------------------------------------------------------------------====//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Language.Operations

// OperationType is one of the three operation types in GraphQL.
//
// Reference: https://facebook.github.io/graphql/June2018/#OperationType
type OperationType string

// Enumeration of OperationType
const (
	OperationTypeQuery        OperationType = "query"
	OperationTypeMutation     OperationType = "mutation"
	OperationTypeSubscription OperationType = "subscription"
)

// IsValid returns true if t is one of the three operation types.
func (t OperationType) IsValid() bool {
	switch t {
	case OperationTypeQuery, OperationTypeMutation, OperationTypeSubscription:
		return true
	}
	return false
}

// OperationDefinition represents a GraphQL operation.
//
// Reference: https://facebook.github.io/graphql/June2018/#OperationDefinition
type OperationDefinition struct {
	Operation           OperationType
	Name                Name
	VariableDefinitions VariableDefinitions
	Directives          Directives
	SelectionSet        *SelectionSet
	Loc                 *Location
}

// GetLoc implements Node.
func (node *OperationDefinition) GetLoc() *Location {
	return node.Loc
}

// GetDirectives implements Definition.
func (node *OperationDefinition) GetDirectives() Directives {
	return node.Directives
}

// GetSelectionSet implements ExecutableDefinition.
func (node *OperationDefinition) GetSelectionSet() *SelectionSet {
	return node.SelectionSet
}

// OperationType returns the type of the operation. It defaults to query when not given.
func (node *OperationDefinition) OperationType() OperationType {
	if len(node.Operation) == 0 {
		return OperationTypeQuery
	}
	return node.Operation
}

// IsQueryShorthand returns true if the operation can be written as a bare selection set (i.e., an
// anonymous query without variables and directives).
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Language.Operations.Query-shorthand
func (node *OperationDefinition) IsQueryShorthand() bool {
	return node.OperationType() == OperationTypeQuery &&
		node.Name.IsNil() &&
		len(node.VariableDefinitions) == 0 &&
		len(node.Directives) == 0
}

// definitionNode implements Definition.
func (*OperationDefinition) definitionNode() {}

//===----------------------------------------------------------------------------------------====//
// 2.4 Selection Sets
//===----------------------------------------------------------------------------------------====//

// Selection specifies the information to be fetched in an operation.
//
// Reference: https://facebook.github.io/graphql/June2018/#Selection
type Selection interface {
	Node

	// GetDirectives returns directives applied to the selection.
	GetDirectives() Directives

	// selectionNode is a special mark to indicate a Selection node. It makes sure that only
	// selection node can be assigned to Selection.
	selectionNode()
}

var (
	_ Selection = (*Field)(nil)
	_ Selection = (*FragmentSpread)(nil)
	_ Selection = (*InlineFragment)(nil)
)

// SelectionSet is a list of Selection enclosed in braces. A parsed selection set is never empty.
//
// Reference: https://facebook.github.io/graphql/June2018/#SelectionSet
type SelectionSet struct {
	Selections []Selection
	Loc        *Location
}

// GetLoc implements Node.
func (node *SelectionSet) GetLoc() *Location {
	return node.Loc
}

//===----------------------------------------------------------------------------------------====//
// 2.5 Fields
//===----------------------------------------------------------------------------------------====//

// Field describes a discrete piece of information available to request within a selection set.
//
// Reference: https://facebook.github.io/graphql/June2018/#Field
type Field struct {
	// Alias is nil when the field is not aliased.
	Alias        Name
	Name         Name
	Arguments    Arguments
	Directives   Directives
	SelectionSet *SelectionSet
	Loc          *Location
}

// GetLoc implements Node.
func (node *Field) GetLoc() *Location {
	return node.Loc
}

// GetDirectives implements Selection.
func (node *Field) GetDirectives() Directives {
	return node.Directives
}

// ResponseKey returns the key in the response map for the field (i.e., alias if any or the name).
func (node *Field) ResponseKey() string {
	if !node.Alias.IsNil() {
		return node.Alias.Value
	}
	return node.Name.Value
}

// selectionNode implements Selection.
func (*Field) selectionNode() {}

//===----------------------------------------------------------------------------------------====//
// 2.6 Arguments
//===----------------------------------------------------------------------------------------====//

// Argument is an unordered name-value pair passed to a field or a directive.
//
// Reference: https://facebook.github.io/graphql/June2018/#Argument
type Argument struct {
	Name  Name
	Value Value
	Loc   *Location
}

// GetLoc implements Node.
func (node *Argument) GetLoc() *Location {
	return node.Loc
}

// Arguments is a list of Argument.
//
// Reference: https://facebook.github.io/graphql/June2018/#Arguments
type Arguments []*Argument

// Get finds the argument with the given name. It returns nil if not found.
func (args Arguments) Get(name string) *Argument {
	for _, arg := range args {
		if arg.Name.Value == name {
			return arg
		}
	}
	return nil
}

//===----------------------------------------------------------------------------------------====//
// 2.8 Fragments
//===----------------------------------------------------------------------------------------====//

// FragmentSpread is a reference to a named fragment.
//
// Reference: https://facebook.github.io/graphql/June2018/#FragmentSpread
type FragmentSpread struct {
	Name       Name
	Directives Directives
	Loc        *Location
}

// GetLoc implements Node.
func (node *FragmentSpread) GetLoc() *Location {
	return node.Loc
}

// GetDirectives implements Selection.
func (node *FragmentSpread) GetDirectives() Directives {
	return node.Directives
}

// selectionNode implements Selection.
func (*FragmentSpread) selectionNode() {}

// FragmentDefinition defines a fragment.
//
// Reference: https://facebook.github.io/graphql/June2018/#FragmentDefinition
type FragmentDefinition struct {
	Name Name

	// VariableDefinitions is only set when the document was parsed with the experimental fragment
	// variables option.
	VariableDefinitions VariableDefinitions
	TypeCondition       *NamedType
	Directives          Directives
	SelectionSet        *SelectionSet
	Loc                 *Location
}

// GetLoc implements Node.
func (node *FragmentDefinition) GetLoc() *Location {
	return node.Loc
}

// GetDirectives implements Definition.
func (node *FragmentDefinition) GetDirectives() Directives {
	return node.Directives
}

// GetSelectionSet implements ExecutableDefinition.
func (node *FragmentDefinition) GetSelectionSet() *SelectionSet {
	return node.SelectionSet
}

// definitionNode implements Definition.
func (*FragmentDefinition) definitionNode() {}

// InlineFragment is a fragment defined inline within a selection set.
//
// Reference: https://facebook.github.io/graphql/June2018/#InlineFragment
type InlineFragment struct {
	// TypeCondition is nil when the fragment applies to the enclosing type.
	TypeCondition *NamedType
	Directives    Directives
	SelectionSet  *SelectionSet
	Loc           *Location
}

// GetLoc implements Node.
func (node *InlineFragment) GetLoc() *Location {
	return node.Loc
}

// GetDirectives implements Selection.
func (node *InlineFragment) GetDirectives() Directives {
	return node.Directives
}

// selectionNode implements Selection.
func (*InlineFragment) selectionNode() {}

//===----------------------------------------------------------------------------------------====//
// 2.9 Input Values
//===----------------------------------------------------------------------------------------====//

// Value represents an input value in GraphQL.
//
// Reference: https://facebook.github.io/graphql/June2018/#Value
type Value interface {
	Node

	// Interface converts the literal into a Go value. Variables are converted into nil. List values
	// give []interface{} and object values give map[string]interface{}.
	Interface() interface{}

	// valueNode is a special mark to indicate a Value node. It makes sure that only value node can
	// be assigned to Value.
	valueNode()
}

var (
	_ Value = (*Variable)(nil)
	_ Value = (*IntValue)(nil)
	_ Value = (*FloatValue)(nil)
	_ Value = (*StringValue)(nil)
	_ Value = (*BooleanValue)(nil)
	_ Value = (*NullValue)(nil)
	_ Value = (*EnumValue)(nil)
	_ Value = (*ListValue)(nil)
	_ Value = (*ObjectValue)(nil)
)

// IntValue represents an integer value. Value holds the literal text as it appears in the source.
//
// Reference: https://facebook.github.io/graphql/June2018/#IntValue
type IntValue struct {
	Value string
	Loc   *Location
}

// GetLoc implements Node.
func (node *IntValue) GetLoc() *Location {
	return node.Loc
}

// Int64 converts the literal to int64.
func (node *IntValue) Int64() (int64, error) {
	return strconv.ParseInt(node.Value, 10, 64)
}

// Interface implements Value. It gives an int64 or a float64 if the literal overflows int64.
func (node *IntValue) Interface() interface{} {
	if v, err := node.Int64(); err == nil {
		return v
	}
	v, err := strconv.ParseFloat(node.Value, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// valueNode implements Value.
func (*IntValue) valueNode() {}

// FloatValue represents a float value. Value holds the literal text as it appears in the source.
//
// Reference: https://facebook.github.io/graphql/June2018/#FloatValue
type FloatValue struct {
	Value string
	Loc   *Location
}

// GetLoc implements Node.
func (node *FloatValue) GetLoc() *Location {
	return node.Loc
}

// Float64 converts the literal to float64.
func (node *FloatValue) Float64() (float64, error) {
	return strconv.ParseFloat(node.Value, 64)
}

// Interface implements Value.
func (node *FloatValue) Interface() interface{} {
	v, err := node.Float64()
	if err != nil {
		return math.NaN()
	}
	return v
}

// valueNode implements Value.
func (*FloatValue) valueNode() {}

// StringValue represents a string value. Value holds the decoded string (i.e., escape sequences
// are interpreted and block strings are normalized).
//
// Reference: https://facebook.github.io/graphql/June2018/#StringValue
type StringValue struct {
	Value string

	// Block is true when the string was written as a block string.
	Block bool
	Loc   *Location
}

// GetLoc implements Node.
func (node *StringValue) GetLoc() *Location {
	return node.Loc
}

// Interface implements Value.
func (node *StringValue) Interface() interface{} {
	return node.Value
}

// valueNode implements Value.
func (*StringValue) valueNode() {}

// BooleanValue represents a boolean value.
//
// Reference: https://facebook.github.io/graphql/June2018/#BooleanValue
type BooleanValue struct {
	Value bool
	Loc   *Location
}

// GetLoc implements Node.
func (node *BooleanValue) GetLoc() *Location {
	return node.Loc
}

// Interface implements Value.
func (node *BooleanValue) Interface() interface{} {
	return node.Value
}

// valueNode implements Value.
func (*BooleanValue) valueNode() {}

// NullValue represents the keyword "null".
//
// Reference: https://facebook.github.io/graphql/June2018/#NullValue
type NullValue struct {
	Loc *Location
}

// GetLoc implements Node.
func (node *NullValue) GetLoc() *Location {
	return node.Loc
}

// Interface implements Value.
func (node *NullValue) Interface() interface{} {
	return nil
}

// valueNode implements Value.
func (*NullValue) valueNode() {}

// EnumValue represents an enum value which is a name other than true, false or null.
//
// Reference: https://facebook.github.io/graphql/June2018/#EnumValue
type EnumValue struct {
	Value string
	Loc   *Location
}

// GetLoc implements Node.
func (node *EnumValue) GetLoc() *Location {
	return node.Loc
}

// Interface implements Value. It gives the name of the enum value.
func (node *EnumValue) Interface() interface{} {
	return node.Value
}

// valueNode implements Value.
func (*EnumValue) valueNode() {}

// ListValue represents an ordered list of values.
//
// Reference: https://facebook.github.io/graphql/June2018/#ListValue
type ListValue struct {
	Values []Value
	Loc    *Location
}

// GetLoc implements Node.
func (node *ListValue) GetLoc() *Location {
	return node.Loc
}

// Interface implements Value.
func (node *ListValue) Interface() interface{} {
	values := make([]interface{}, len(node.Values))
	for i, value := range node.Values {
		values[i] = value.Interface()
	}
	return values
}

// valueNode implements Value.
func (*ListValue) valueNode() {}

// ObjectField is a name-value pair in an ObjectValue.
//
// Reference: https://facebook.github.io/graphql/June2018/#ObjectField
type ObjectField struct {
	Name  Name
	Value Value
	Loc   *Location
}

// GetLoc implements Node.
func (node *ObjectField) GetLoc() *Location {
	return node.Loc
}

// ObjectValue represents an unordered list of keyed input values.
//
// Reference: https://facebook.github.io/graphql/June2018/#ObjectValue
type ObjectValue struct {
	Fields []*ObjectField
	Loc    *Location
}

// GetLoc implements Node.
func (node *ObjectValue) GetLoc() *Location {
	return node.Loc
}

// Interface implements Value.
func (node *ObjectValue) Interface() interface{} {
	values := make(map[string]interface{}, len(node.Fields))
	for _, field := range node.Fields {
		values[field.Name.Value] = field.Value.Interface()
	}
	return values
}

// valueNode implements Value.
func (*ObjectValue) valueNode() {}

//===----------------------------------------------------------------------------------------====//
// 2.10 Variables
//===----------------------------------------------------------------------------------------====//

// Variable represents a variable reference "$name".
//
// Reference: https://facebook.github.io/graphql/June2018/#Variable
type Variable struct {
	Name Name
	Loc  *Location
}

// GetLoc implements Node.
func (node *Variable) GetLoc() *Location {
	return node.Loc
}

// Interface implements Value. The value of a variable is not known without an execution context.
func (node *Variable) Interface() interface{} {
	return nil
}

// valueNode implements Value.
func (*Variable) valueNode() {}

// VariableDefinition declares a variable for an operation.
//
// Reference: https://facebook.github.io/graphql/June2018/#VariableDefinition
type VariableDefinition struct {
	Variable *Variable
	Type     Type

	// DefaultValue is nil if not given. It is a constant value.
	DefaultValue Value
	Directives   Directives
	Loc          *Location
}

// GetLoc implements Node.
func (node *VariableDefinition) GetLoc() *Location {
	return node.Loc
}

// VariableDefinitions is a list of VariableDefinition.
//
// Reference: https://facebook.github.io/graphql/June2018/#VariableDefinitions
type VariableDefinitions []*VariableDefinition

//===----------------------------------------------------------------------------------------====//
// 2.11 Type References
//===----------------------------------------------------------------------------------------====//

// Type represents a type reference in a variable definition or a type-system definition.
//
// Reference: https://facebook.github.io/graphql/June2018/#Type
type Type interface {
	Node

	// String renders the type reference in GraphQL syntax (e.g., "[Foo!]!").
	String() string

	// typeNode is a special mark to indicate a Type node.
	typeNode()
}

// NullableType is a Type that can be wrapped by NonNullType.
type NullableType interface {
	Type

	// nullableTypeNode is a special mark to indicate a NullableType node.
	nullableTypeNode()
}

var (
	_ NullableType = (*NamedType)(nil)
	_ NullableType = (*ListType)(nil)
	_ Type         = (*NonNullType)(nil)
)

// NamedType refers to a type by its name.
//
// Reference: https://facebook.github.io/graphql/June2018/#NamedType
type NamedType struct {
	Name Name
	Loc  *Location
}

// NewNamedType creates a NamedType without location.
func NewNamedType(name string) *NamedType {
	return &NamedType{Name: NewName(name)}
}

// GetLoc implements Node.
func (node *NamedType) GetLoc() *Location {
	return node.Loc
}

// String implements Type.
func (node *NamedType) String() string {
	return node.Name.Value
}

// typeNode implements Type.
func (*NamedType) typeNode() {}

// nullableTypeNode implements NullableType.
func (*NamedType) nullableTypeNode() {}

// ListType wraps a type in brackets.
//
// Reference: https://facebook.github.io/graphql/June2018/#ListType
type ListType struct {
	ItemType Type
	Loc      *Location
}

// GetLoc implements Node.
func (node *ListType) GetLoc() *Location {
	return node.Loc
}

// String implements Type.
func (node *ListType) String() string {
	return "[" + node.ItemType.String() + "]"
}

// typeNode implements Type.
func (*ListType) typeNode() {}

// nullableTypeNode implements NullableType.
func (*ListType) nullableTypeNode() {}

// NonNullType marks a type as non-nullable with a trailing "!".
//
// Reference: https://facebook.github.io/graphql/June2018/#NonNullType
type NonNullType struct {
	Type NullableType
	Loc  *Location
}

// GetLoc implements Node.
func (node *NonNullType) GetLoc() *Location {
	return node.Loc
}

// String implements Type.
func (node *NonNullType) String() string {
	return node.Type.String() + "!"
}

// typeNode implements Type.
func (*NonNullType) typeNode() {}

// NamedTypeOf unwraps list and non-null wrappers until it reaches the NamedType.
func NamedTypeOf(t Type) *NamedType {
	for {
		switch ttype := t.(type) {
		case *NamedType:
			return ttype
		case *ListType:
			t = ttype.ItemType
		case *NonNullType:
			t = ttype.Type
		default:
			return nil
		}
	}
}

//===----------------------------------------------------------------------------------------====//
// 2.12 Directives
//===----------------------------------------------------------------------------------------====//

// Directive provides a way to describe alternate runtime execution and type validation behavior.
//
// Reference: https://facebook.github.io/graphql/June2018/#Directive
type Directive struct {
	Name      Name
	Arguments Arguments
	Loc       *Location
}

// GetLoc implements Node.
func (node *Directive) GetLoc() *Location {
	return node.Loc
}

// Directives is a list of Directive.
//
// Reference: https://facebook.github.io/graphql/June2018/#Directives
type Directives []*Directive

// Get finds the first directive with the given name. It returns nil if not found.
func (directives Directives) Get(name string) *Directive {
	for _, directive := range directives {
		if directive.Name.Value == name {
			return directive
		}
	}
	return nil
}
