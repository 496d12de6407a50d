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

// The WithX methods in this file implement structural edits on the immutable tree. Each returns a
// shallow copy of the receiver with one field replaced. Children that are not replaced are shared
// with the receiver. The copy has no location because its span no longer comes from a source.

// WithDefinitions returns a copy of the document with the given definitions.
func (node *Document) WithDefinitions(definitions []Definition) *Document {
	n := *node
	n.Definitions = definitions
	n.Loc = nil
	return &n
}

// WithName returns a copy of the operation with the given name.
func (node *OperationDefinition) WithName(name Name) *OperationDefinition {
	n := *node
	n.Name = name
	n.Loc = nil
	return &n
}

// WithVariableDefinitions returns a copy of the operation with the given variable definitions.
func (node *OperationDefinition) WithVariableDefinitions(
	variableDefinitions VariableDefinitions) *OperationDefinition {
	n := *node
	n.VariableDefinitions = variableDefinitions
	n.Loc = nil
	return &n
}

// WithDirectives returns a copy of the operation with the given directives.
func (node *OperationDefinition) WithDirectives(directives Directives) *OperationDefinition {
	n := *node
	n.Directives = directives
	n.Loc = nil
	return &n
}

// WithSelectionSet returns a copy of the operation with the given selection set.
func (node *OperationDefinition) WithSelectionSet(selectionSet *SelectionSet) *OperationDefinition {
	n := *node
	n.SelectionSet = selectionSet
	n.Loc = nil
	return &n
}

// WithSelections returns a copy of the selection set with the given selections.
func (node *SelectionSet) WithSelections(selections []Selection) *SelectionSet {
	n := *node
	n.Selections = selections
	n.Loc = nil
	return &n
}

// WithAlias returns a copy of the field with the given alias.
func (node *Field) WithAlias(alias Name) *Field {
	n := *node
	n.Alias = alias
	n.Loc = nil
	return &n
}

// WithName returns a copy of the field with the given name.
func (node *Field) WithName(name Name) *Field {
	n := *node
	n.Name = name
	n.Loc = nil
	return &n
}

// WithArguments returns a copy of the field with the given arguments.
func (node *Field) WithArguments(arguments Arguments) *Field {
	n := *node
	n.Arguments = arguments
	n.Loc = nil
	return &n
}

// WithDirectives returns a copy of the field with the given directives.
func (node *Field) WithDirectives(directives Directives) *Field {
	n := *node
	n.Directives = directives
	n.Loc = nil
	return &n
}

// WithSelectionSet returns a copy of the field with the given selection set.
func (node *Field) WithSelectionSet(selectionSet *SelectionSet) *Field {
	n := *node
	n.SelectionSet = selectionSet
	n.Loc = nil
	return &n
}

// WithName returns a copy of the argument with the given name.
func (node *Argument) WithName(name Name) *Argument {
	n := *node
	n.Name = name
	n.Loc = nil
	return &n
}

// WithValue returns a copy of the argument with the given value.
func (node *Argument) WithValue(value Value) *Argument {
	n := *node
	n.Value = value
	n.Loc = nil
	return &n
}

// WithName returns a copy of the fragment spread with the given name.
func (node *FragmentSpread) WithName(name Name) *FragmentSpread {
	n := *node
	n.Name = name
	n.Loc = nil
	return &n
}

// WithDirectives returns a copy of the fragment spread with the given directives.
func (node *FragmentSpread) WithDirectives(directives Directives) *FragmentSpread {
	n := *node
	n.Directives = directives
	n.Loc = nil
	return &n
}

// WithTypeCondition returns a copy of the inline fragment with the given type condition.
func (node *InlineFragment) WithTypeCondition(typeCondition *NamedType) *InlineFragment {
	n := *node
	n.TypeCondition = typeCondition
	n.Loc = nil
	return &n
}

// WithDirectives returns a copy of the inline fragment with the given directives.
func (node *InlineFragment) WithDirectives(directives Directives) *InlineFragment {
	n := *node
	n.Directives = directives
	n.Loc = nil
	return &n
}

// WithSelectionSet returns a copy of the inline fragment with the given selection set.
func (node *InlineFragment) WithSelectionSet(selectionSet *SelectionSet) *InlineFragment {
	n := *node
	n.SelectionSet = selectionSet
	n.Loc = nil
	return &n
}

// WithName returns a copy of the fragment definition with the given name.
func (node *FragmentDefinition) WithName(name Name) *FragmentDefinition {
	n := *node
	n.Name = name
	n.Loc = nil
	return &n
}

// WithTypeCondition returns a copy of the fragment definition with the given type condition.
func (node *FragmentDefinition) WithTypeCondition(typeCondition *NamedType) *FragmentDefinition {
	n := *node
	n.TypeCondition = typeCondition
	n.Loc = nil
	return &n
}

// WithDirectives returns a copy of the fragment definition with the given directives.
func (node *FragmentDefinition) WithDirectives(directives Directives) *FragmentDefinition {
	n := *node
	n.Directives = directives
	n.Loc = nil
	return &n
}

// WithSelectionSet returns a copy of the fragment definition with the given selection set.
func (node *FragmentDefinition) WithSelectionSet(selectionSet *SelectionSet) *FragmentDefinition {
	n := *node
	n.SelectionSet = selectionSet
	n.Loc = nil
	return &n
}

// WithName returns a copy of the directive with the given name.
func (node *Directive) WithName(name Name) *Directive {
	n := *node
	n.Name = name
	n.Loc = nil
	return &n
}

// WithArguments returns a copy of the directive with the given arguments.
func (node *Directive) WithArguments(arguments Arguments) *Directive {
	n := *node
	n.Arguments = arguments
	n.Loc = nil
	return &n
}

// WithName returns a copy of the variable with the given name.
func (node *Variable) WithName(name Name) *Variable {
	n := *node
	n.Name = name
	n.Loc = nil
	return &n
}

// WithName returns a copy of the named type with the given name.
func (node *NamedType) WithName(name Name) *NamedType {
	n := *node
	n.Name = name
	n.Loc = nil
	return &n
}

// WithName returns a copy of the object field with the given name.
func (node *ObjectField) WithName(name Name) *ObjectField {
	n := *node
	n.Name = name
	n.Loc = nil
	return &n
}

// WithDirectives returns a copy of the variable definition with the given directives.
func (node *VariableDefinition) WithDirectives(directives Directives) *VariableDefinition {
	n := *node
	n.Directives = directives
	n.Loc = nil
	return &n
}

// Type-system definitions

// WithDescription returns a copy of the schema definition with the given description.
func (node *SchemaDefinition) WithDescription(description *StringValue) *SchemaDefinition {
	n := *node
	n.Description = description
	n.Loc = nil
	return &n
}

// WithDirectives returns a copy of the schema definition with the given directives.
func (node *SchemaDefinition) WithDirectives(directives Directives) *SchemaDefinition {
	n := *node
	n.Directives = directives
	n.Loc = nil
	return &n
}

// WithName returns a copy of the scalar definition with the given name.
func (node *ScalarTypeDefinition) WithName(name Name) *ScalarTypeDefinition {
	n := *node
	n.Name = name
	n.Loc = nil
	return &n
}

// WithDescription returns a copy of the scalar definition with the given description.
func (node *ScalarTypeDefinition) WithDescription(description *StringValue) *ScalarTypeDefinition {
	n := *node
	n.Description = description
	n.Loc = nil
	return &n
}

// WithDirectives returns a copy of the scalar definition with the given directives.
func (node *ScalarTypeDefinition) WithDirectives(directives Directives) *ScalarTypeDefinition {
	n := *node
	n.Directives = directives
	n.Loc = nil
	return &n
}

// WithName returns a copy of the object definition with the given name.
func (node *ObjectTypeDefinition) WithName(name Name) *ObjectTypeDefinition {
	n := *node
	n.Name = name
	n.Loc = nil
	return &n
}

// WithDescription returns a copy of the object definition with the given description.
func (node *ObjectTypeDefinition) WithDescription(description *StringValue) *ObjectTypeDefinition {
	n := *node
	n.Description = description
	n.Loc = nil
	return &n
}

// WithDirectives returns a copy of the object definition with the given directives.
func (node *ObjectTypeDefinition) WithDirectives(directives Directives) *ObjectTypeDefinition {
	n := *node
	n.Directives = directives
	n.Loc = nil
	return &n
}

// WithFields returns a copy of the object definition with the given fields.
func (node *ObjectTypeDefinition) WithFields(fields []*FieldDefinition) *ObjectTypeDefinition {
	n := *node
	n.Fields = fields
	n.Loc = nil
	return &n
}

// WithName returns a copy of the field definition with the given name.
func (node *FieldDefinition) WithName(name Name) *FieldDefinition {
	n := *node
	n.Name = name
	n.Loc = nil
	return &n
}

// WithDescription returns a copy of the field definition with the given description.
func (node *FieldDefinition) WithDescription(description *StringValue) *FieldDefinition {
	n := *node
	n.Description = description
	n.Loc = nil
	return &n
}

// WithArguments returns a copy of the field definition with the given arguments.
func (node *FieldDefinition) WithArguments(arguments []*InputValueDefinition) *FieldDefinition {
	n := *node
	n.Arguments = arguments
	n.Loc = nil
	return &n
}

// WithDirectives returns a copy of the field definition with the given directives.
func (node *FieldDefinition) WithDirectives(directives Directives) *FieldDefinition {
	n := *node
	n.Directives = directives
	n.Loc = nil
	return &n
}

// WithName returns a copy of the input value definition with the given name.
func (node *InputValueDefinition) WithName(name Name) *InputValueDefinition {
	n := *node
	n.Name = name
	n.Loc = nil
	return &n
}

// WithDescription returns a copy of the input value definition with the given description.
func (node *InputValueDefinition) WithDescription(description *StringValue) *InputValueDefinition {
	n := *node
	n.Description = description
	n.Loc = nil
	return &n
}

// WithDirectives returns a copy of the input value definition with the given directives.
func (node *InputValueDefinition) WithDirectives(directives Directives) *InputValueDefinition {
	n := *node
	n.Directives = directives
	n.Loc = nil
	return &n
}

// WithName returns a copy of the interface definition with the given name.
func (node *InterfaceTypeDefinition) WithName(name Name) *InterfaceTypeDefinition {
	n := *node
	n.Name = name
	n.Loc = nil
	return &n
}

// WithDescription returns a copy of the interface definition with the given description.
func (node *InterfaceTypeDefinition) WithDescription(
	description *StringValue) *InterfaceTypeDefinition {
	n := *node
	n.Description = description
	n.Loc = nil
	return &n
}

// WithDirectives returns a copy of the interface definition with the given directives.
func (node *InterfaceTypeDefinition) WithDirectives(directives Directives) *InterfaceTypeDefinition {
	n := *node
	n.Directives = directives
	n.Loc = nil
	return &n
}

// WithFields returns a copy of the interface definition with the given fields.
func (node *InterfaceTypeDefinition) WithFields(fields []*FieldDefinition) *InterfaceTypeDefinition {
	n := *node
	n.Fields = fields
	n.Loc = nil
	return &n
}

// WithName returns a copy of the union definition with the given name.
func (node *UnionTypeDefinition) WithName(name Name) *UnionTypeDefinition {
	n := *node
	n.Name = name
	n.Loc = nil
	return &n
}

// WithDescription returns a copy of the union definition with the given description.
func (node *UnionTypeDefinition) WithDescription(description *StringValue) *UnionTypeDefinition {
	n := *node
	n.Description = description
	n.Loc = nil
	return &n
}

// WithDirectives returns a copy of the union definition with the given directives.
func (node *UnionTypeDefinition) WithDirectives(directives Directives) *UnionTypeDefinition {
	n := *node
	n.Directives = directives
	n.Loc = nil
	return &n
}

// WithTypes returns a copy of the union definition with the given member types.
func (node *UnionTypeDefinition) WithTypes(types []*NamedType) *UnionTypeDefinition {
	n := *node
	n.Types = types
	n.Loc = nil
	return &n
}

// WithName returns a copy of the enum definition with the given name.
func (node *EnumTypeDefinition) WithName(name Name) *EnumTypeDefinition {
	n := *node
	n.Name = name
	n.Loc = nil
	return &n
}

// WithDescription returns a copy of the enum definition with the given description.
func (node *EnumTypeDefinition) WithDescription(description *StringValue) *EnumTypeDefinition {
	n := *node
	n.Description = description
	n.Loc = nil
	return &n
}

// WithDirectives returns a copy of the enum definition with the given directives.
func (node *EnumTypeDefinition) WithDirectives(directives Directives) *EnumTypeDefinition {
	n := *node
	n.Directives = directives
	n.Loc = nil
	return &n
}

// WithValues returns a copy of the enum definition with the given values.
func (node *EnumTypeDefinition) WithValues(values []*EnumValueDefinition) *EnumTypeDefinition {
	n := *node
	n.Values = values
	n.Loc = nil
	return &n
}

// WithName returns a copy of the enum value definition with the given name.
func (node *EnumValueDefinition) WithName(name Name) *EnumValueDefinition {
	n := *node
	n.Name = name
	n.Loc = nil
	return &n
}

// WithDescription returns a copy of the enum value definition with the given description.
func (node *EnumValueDefinition) WithDescription(description *StringValue) *EnumValueDefinition {
	n := *node
	n.Description = description
	n.Loc = nil
	return &n
}

// WithDirectives returns a copy of the enum value definition with the given directives.
func (node *EnumValueDefinition) WithDirectives(directives Directives) *EnumValueDefinition {
	n := *node
	n.Directives = directives
	n.Loc = nil
	return &n
}

// WithName returns a copy of the input object definition with the given name.
func (node *InputObjectTypeDefinition) WithName(name Name) *InputObjectTypeDefinition {
	n := *node
	n.Name = name
	n.Loc = nil
	return &n
}

// WithDescription returns a copy of the input object definition with the given description.
func (node *InputObjectTypeDefinition) WithDescription(
	description *StringValue) *InputObjectTypeDefinition {
	n := *node
	n.Description = description
	n.Loc = nil
	return &n
}

// WithDirectives returns a copy of the input object definition with the given directives.
func (node *InputObjectTypeDefinition) WithDirectives(
	directives Directives) *InputObjectTypeDefinition {
	n := *node
	n.Directives = directives
	n.Loc = nil
	return &n
}

// WithFields returns a copy of the input object definition with the given fields.
func (node *InputObjectTypeDefinition) WithFields(
	fields []*InputValueDefinition) *InputObjectTypeDefinition {
	n := *node
	n.Fields = fields
	n.Loc = nil
	return &n
}

// WithName returns a copy of the directive definition with the given name.
func (node *DirectiveDefinition) WithName(name Name) *DirectiveDefinition {
	n := *node
	n.Name = name
	n.Loc = nil
	return &n
}

// WithDescription returns a copy of the directive definition with the given description.
func (node *DirectiveDefinition) WithDescription(description *StringValue) *DirectiveDefinition {
	n := *node
	n.Description = description
	n.Loc = nil
	return &n
}

// WithName returns a copy of the scalar extension with the given name.
func (node *ScalarTypeExtension) WithName(name Name) *ScalarTypeExtension {
	n := *node
	n.Name = name
	n.Loc = nil
	return &n
}

// WithName returns a copy of the object extension with the given name.
func (node *ObjectTypeExtension) WithName(name Name) *ObjectTypeExtension {
	n := *node
	n.Name = name
	n.Loc = nil
	return &n
}

// WithName returns a copy of the interface extension with the given name.
func (node *InterfaceTypeExtension) WithName(name Name) *InterfaceTypeExtension {
	n := *node
	n.Name = name
	n.Loc = nil
	return &n
}

// WithName returns a copy of the union extension with the given name.
func (node *UnionTypeExtension) WithName(name Name) *UnionTypeExtension {
	n := *node
	n.Name = name
	n.Loc = nil
	return &n
}

// WithName returns a copy of the enum extension with the given name.
func (node *EnumTypeExtension) WithName(name Name) *EnumTypeExtension {
	n := *node
	n.Name = name
	n.Loc = nil
	return &n
}

// WithName returns a copy of the input object extension with the given name.
func (node *InputObjectTypeExtension) WithName(name Name) *InputObjectTypeExtension {
	n := *node
	n.Name = name
	n.Loc = nil
	return &n
}
