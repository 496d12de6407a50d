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

//===----------------------------------------------------------------------------------------====//
// 3 Type System
//===----------------------------------------------------------------------------------------====//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Type-System

// TypeSystemDefinition is a Definition that describes or extends a GraphQL type system.
//
// Reference: https://facebook.github.io/graphql/June2018/#TypeSystemDefinition
type TypeSystemDefinition interface {
	Definition

	// IsExtension returns true for the "extend" forms.
	IsExtension() bool

	// typeSystemNode is a special mark to indicate a TypeSystemDefinition node.
	typeSystemNode()
}

// TypeDefinition is a TypeSystemDefinition that defines or extends a named type.
//
// Reference: https://facebook.github.io/graphql/June2018/#TypeDefinition
type TypeDefinition interface {
	TypeSystemDefinition

	// GetName returns the name of the type.
	GetName() Name
}

var (
	_ TypeSystemDefinition = (*SchemaDefinition)(nil)
	_ TypeSystemDefinition = (*SchemaExtension)(nil)
	_ TypeSystemDefinition = (*DirectiveDefinition)(nil)

	_ TypeDefinition = (*ScalarTypeDefinition)(nil)
	_ TypeDefinition = (*ObjectTypeDefinition)(nil)
	_ TypeDefinition = (*InterfaceTypeDefinition)(nil)
	_ TypeDefinition = (*UnionTypeDefinition)(nil)
	_ TypeDefinition = (*EnumTypeDefinition)(nil)
	_ TypeDefinition = (*InputObjectTypeDefinition)(nil)

	_ TypeDefinition = (*ScalarTypeExtension)(nil)
	_ TypeDefinition = (*ObjectTypeExtension)(nil)
	_ TypeDefinition = (*InterfaceTypeExtension)(nil)
	_ TypeDefinition = (*UnionTypeExtension)(nil)
	_ TypeDefinition = (*EnumTypeExtension)(nil)
	_ TypeDefinition = (*InputObjectTypeExtension)(nil)
)

// typeSystemDefinitionBase is embedded by every type-system node to provide the marker methods.
type typeSystemDefinitionBase struct{}

func (typeSystemDefinitionBase) definitionNode() {}
func (typeSystemDefinitionBase) typeSystemNode() {}
func (typeSystemDefinitionBase) IsExtension() bool {
	return false
}

// typeSystemExtensionBase overrides IsExtension for the extend forms.
type typeSystemExtensionBase struct {
	typeSystemDefinitionBase
}

func (typeSystemExtensionBase) IsExtension() bool {
	return true
}

//===----------------------------------------------------------------------------------------====//
// 3.2 Schema
//===----------------------------------------------------------------------------------------====//

// SchemaDefinition defines the root operation types of a schema.
//
// Reference: https://facebook.github.io/graphql/June2018/#SchemaDefinition
type SchemaDefinition struct {
	typeSystemDefinitionBase
	Description    *StringValue
	Directives     Directives
	OperationTypes []*OperationTypeDefinition
	Loc            *Location
}

// GetLoc implements Node.
func (node *SchemaDefinition) GetLoc() *Location {
	return node.Loc
}

// GetDirectives implements Definition.
func (node *SchemaDefinition) GetDirectives() Directives {
	return node.Directives
}

// OperationTypeDefinition binds an operation type to an object type.
//
// Reference: https://facebook.github.io/graphql/June2018/#RootOperationTypeDefinition
type OperationTypeDefinition struct {
	Operation OperationType
	Type      *NamedType
	Loc       *Location
}

// GetLoc implements Node.
func (node *OperationTypeDefinition) GetLoc() *Location {
	return node.Loc
}

// SchemaExtension extends a schema.
//
// Reference: https://facebook.github.io/graphql/June2018/#SchemaExtension
type SchemaExtension struct {
	typeSystemExtensionBase
	Directives     Directives
	OperationTypes []*OperationTypeDefinition
	Loc            *Location
}

// GetLoc implements Node.
func (node *SchemaExtension) GetLoc() *Location {
	return node.Loc
}

// GetDirectives implements Definition.
func (node *SchemaExtension) GetDirectives() Directives {
	return node.Directives
}

//===----------------------------------------------------------------------------------------====//
// 3.4 Types
//===----------------------------------------------------------------------------------------====//

// ScalarTypeDefinition defines a custom scalar.
//
// Reference: https://facebook.github.io/graphql/June2018/#ScalarTypeDefinition
type ScalarTypeDefinition struct {
	typeSystemDefinitionBase
	Description *StringValue
	Name        Name
	Directives  Directives
	Loc         *Location
}

// GetLoc implements Node.
func (node *ScalarTypeDefinition) GetLoc() *Location {
	return node.Loc
}

// GetDirectives implements Definition.
func (node *ScalarTypeDefinition) GetDirectives() Directives {
	return node.Directives
}

// GetName implements TypeDefinition.
func (node *ScalarTypeDefinition) GetName() Name {
	return node.Name
}

// ObjectTypeDefinition defines an object type.
//
// Reference: https://facebook.github.io/graphql/June2018/#ObjectTypeDefinition
type ObjectTypeDefinition struct {
	typeSystemDefinitionBase
	Description *StringValue
	Name        Name
	Interfaces  []*NamedType
	Directives  Directives
	Fields      []*FieldDefinition
	Loc         *Location
}

// GetLoc implements Node.
func (node *ObjectTypeDefinition) GetLoc() *Location {
	return node.Loc
}

// GetDirectives implements Definition.
func (node *ObjectTypeDefinition) GetDirectives() Directives {
	return node.Directives
}

// GetName implements TypeDefinition.
func (node *ObjectTypeDefinition) GetName() Name {
	return node.Name
}

// FieldDefinition defines a field in an object or an interface type.
//
// Reference: https://facebook.github.io/graphql/June2018/#FieldDefinition
type FieldDefinition struct {
	Description *StringValue
	Name        Name
	Arguments   []*InputValueDefinition
	Type        Type
	Directives  Directives
	Loc         *Location
}

// GetLoc implements Node.
func (node *FieldDefinition) GetLoc() *Location {
	return node.Loc
}

// InputValueDefinition defines an argument or a field of an input object type.
//
// Reference: https://facebook.github.io/graphql/June2018/#InputValueDefinition
type InputValueDefinition struct {
	Description *StringValue
	Name        Name
	Type        Type

	// DefaultValue is nil if not given. It is a constant value.
	DefaultValue Value
	Directives   Directives
	Loc          *Location
}

// GetLoc implements Node.
func (node *InputValueDefinition) GetLoc() *Location {
	return node.Loc
}

// InterfaceTypeDefinition defines an interface type.
//
// Reference: https://facebook.github.io/graphql/June2018/#InterfaceTypeDefinition
type InterfaceTypeDefinition struct {
	typeSystemDefinitionBase
	Description *StringValue
	Name        Name
	Interfaces  []*NamedType
	Directives  Directives
	Fields      []*FieldDefinition
	Loc         *Location
}

// GetLoc implements Node.
func (node *InterfaceTypeDefinition) GetLoc() *Location {
	return node.Loc
}

// GetDirectives implements Definition.
func (node *InterfaceTypeDefinition) GetDirectives() Directives {
	return node.Directives
}

// GetName implements TypeDefinition.
func (node *InterfaceTypeDefinition) GetName() Name {
	return node.Name
}

// UnionTypeDefinition defines a union type.
//
// Reference: https://facebook.github.io/graphql/June2018/#UnionTypeDefinition
type UnionTypeDefinition struct {
	typeSystemDefinitionBase
	Description *StringValue
	Name        Name
	Directives  Directives
	Types       []*NamedType
	Loc         *Location
}

// GetLoc implements Node.
func (node *UnionTypeDefinition) GetLoc() *Location {
	return node.Loc
}

// GetDirectives implements Definition.
func (node *UnionTypeDefinition) GetDirectives() Directives {
	return node.Directives
}

// GetName implements TypeDefinition.
func (node *UnionTypeDefinition) GetName() Name {
	return node.Name
}

// EnumTypeDefinition defines an enum type.
//
// Reference: https://facebook.github.io/graphql/June2018/#EnumTypeDefinition
type EnumTypeDefinition struct {
	typeSystemDefinitionBase
	Description *StringValue
	Name        Name
	Directives  Directives
	Values      []*EnumValueDefinition
	Loc         *Location
}

// GetLoc implements Node.
func (node *EnumTypeDefinition) GetLoc() *Location {
	return node.Loc
}

// GetDirectives implements Definition.
func (node *EnumTypeDefinition) GetDirectives() Directives {
	return node.Directives
}

// GetName implements TypeDefinition.
func (node *EnumTypeDefinition) GetName() Name {
	return node.Name
}

// EnumValueDefinition defines a value of an enum type.
//
// Reference: https://facebook.github.io/graphql/June2018/#EnumValueDefinition
type EnumValueDefinition struct {
	Description *StringValue
	Name        Name
	Directives  Directives
	Loc         *Location
}

// GetLoc implements Node.
func (node *EnumValueDefinition) GetLoc() *Location {
	return node.Loc
}

// InputObjectTypeDefinition defines an input object type.
//
// Reference: https://facebook.github.io/graphql/June2018/#InputObjectTypeDefinition
type InputObjectTypeDefinition struct {
	typeSystemDefinitionBase
	Description *StringValue
	Name        Name
	Directives  Directives
	Fields      []*InputValueDefinition
	Loc         *Location
}

// GetLoc implements Node.
func (node *InputObjectTypeDefinition) GetLoc() *Location {
	return node.Loc
}

// GetDirectives implements Definition.
func (node *InputObjectTypeDefinition) GetDirectives() Directives {
	return node.Directives
}

// GetName implements TypeDefinition.
func (node *InputObjectTypeDefinition) GetName() Name {
	return node.Name
}

//===----------------------------------------------------------------------------------------====//
// 3.4.3 Type Extensions
//===----------------------------------------------------------------------------------------====//

// ScalarTypeExtension adds directives to a scalar type.
//
// Reference: https://facebook.github.io/graphql/June2018/#ScalarTypeExtension
type ScalarTypeExtension struct {
	typeSystemExtensionBase
	Name       Name
	Directives Directives
	Loc        *Location
}

// GetLoc implements Node.
func (node *ScalarTypeExtension) GetLoc() *Location {
	return node.Loc
}

// GetDirectives implements Definition.
func (node *ScalarTypeExtension) GetDirectives() Directives {
	return node.Directives
}

// GetName implements TypeDefinition.
func (node *ScalarTypeExtension) GetName() Name {
	return node.Name
}

// ObjectTypeExtension extends an object type.
//
// Reference: https://facebook.github.io/graphql/June2018/#ObjectTypeExtension
type ObjectTypeExtension struct {
	typeSystemExtensionBase
	Name       Name
	Interfaces []*NamedType
	Directives Directives
	Fields     []*FieldDefinition
	Loc        *Location
}

// GetLoc implements Node.
func (node *ObjectTypeExtension) GetLoc() *Location {
	return node.Loc
}

// GetDirectives implements Definition.
func (node *ObjectTypeExtension) GetDirectives() Directives {
	return node.Directives
}

// GetName implements TypeDefinition.
func (node *ObjectTypeExtension) GetName() Name {
	return node.Name
}

// InterfaceTypeExtension extends an interface type.
//
// Reference: https://facebook.github.io/graphql/June2018/#InterfaceTypeExtension
type InterfaceTypeExtension struct {
	typeSystemExtensionBase
	Name       Name
	Interfaces []*NamedType
	Directives Directives
	Fields     []*FieldDefinition
	Loc        *Location
}

// GetLoc implements Node.
func (node *InterfaceTypeExtension) GetLoc() *Location {
	return node.Loc
}

// GetDirectives implements Definition.
func (node *InterfaceTypeExtension) GetDirectives() Directives {
	return node.Directives
}

// GetName implements TypeDefinition.
func (node *InterfaceTypeExtension) GetName() Name {
	return node.Name
}

// UnionTypeExtension extends a union type.
//
// Reference: https://facebook.github.io/graphql/June2018/#UnionTypeExtension
type UnionTypeExtension struct {
	typeSystemExtensionBase
	Name       Name
	Directives Directives
	Types      []*NamedType
	Loc        *Location
}

// GetLoc implements Node.
func (node *UnionTypeExtension) GetLoc() *Location {
	return node.Loc
}

// GetDirectives implements Definition.
func (node *UnionTypeExtension) GetDirectives() Directives {
	return node.Directives
}

// GetName implements TypeDefinition.
func (node *UnionTypeExtension) GetName() Name {
	return node.Name
}

// EnumTypeExtension extends an enum type.
//
// Reference: https://facebook.github.io/graphql/June2018/#EnumTypeExtension
type EnumTypeExtension struct {
	typeSystemExtensionBase
	Name       Name
	Directives Directives
	Values     []*EnumValueDefinition
	Loc        *Location
}

// GetLoc implements Node.
func (node *EnumTypeExtension) GetLoc() *Location {
	return node.Loc
}

// GetDirectives implements Definition.
func (node *EnumTypeExtension) GetDirectives() Directives {
	return node.Directives
}

// GetName implements TypeDefinition.
func (node *EnumTypeExtension) GetName() Name {
	return node.Name
}

// InputObjectTypeExtension extends an input object type.
//
// Reference: https://facebook.github.io/graphql/June2018/#InputObjectTypeExtension
type InputObjectTypeExtension struct {
	typeSystemExtensionBase
	Name       Name
	Directives Directives
	Fields     []*InputValueDefinition
	Loc        *Location
}

// GetLoc implements Node.
func (node *InputObjectTypeExtension) GetLoc() *Location {
	return node.Loc
}

// GetDirectives implements Definition.
func (node *InputObjectTypeExtension) GetDirectives() Directives {
	return node.Directives
}

// GetName implements TypeDefinition.
func (node *InputObjectTypeExtension) GetName() Name {
	return node.Name
}

//===----------------------------------------------------------------------------------------====//
// 3.13 Directives
//===----------------------------------------------------------------------------------------====//

// DirectiveDefinition defines a directive.
//
// Reference: https://facebook.github.io/graphql/June2018/#DirectiveDefinition
type DirectiveDefinition struct {
	typeSystemDefinitionBase
	Description *StringValue
	Name        Name
	Arguments   []*InputValueDefinition
	Repeatable  bool
	Locations   []Name
	Loc         *Location
}

// GetLoc implements Node.
func (node *DirectiveDefinition) GetLoc() *Location {
	return node.Loc
}

// GetDirectives implements Definition. Directive definitions cannot have directives applied.
func (node *DirectiveDefinition) GetDirectives() Directives {
	return nil
}
