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

package parser_test

import (
	"io/ioutil"

	"github.com/botobag/gqlsyntax/graphql"
	"github.com/botobag/gqlsyntax/graphql/ast"
	"github.com/botobag/gqlsyntax/graphql/parser"
	"github.com/botobag/gqlsyntax/internal/testutil"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	. "github.com/onsi/gomega/gstruct"
)

func nameNode(value string, start, line, column uint) ast.Name {
	return ast.Name{
		Value: value,
		Loc:   loc(start, start+uint(len(value)), line, column),
	}
}

func namedTypeNode(value string, start, line, column uint) *ast.NamedType {
	return &ast.NamedType{
		Name: nameNode(value, start, line, column),
		Loc:  loc(start, start+uint(len(value)), line, column),
	}
}

func parseSDL(s string) ast.Definition {
	document, err := parse(s)
	Expect(err).ShouldNot(HaveOccurred())
	Expect(document.Definitions).Should(HaveLen(1))
	return document.Definitions[0]
}

// graphql-js/src/language/__tests__/schema-parser-test.js
var _ = Describe("Schema Parser", func() {
	It("parses simple type", func() {
		definition := parseSDL("type Hello {\n  world: String\n}")
		Expect(definition).Should(Equal(&ast.ObjectTypeDefinition{
			Name: nameNode("Hello", 5, 1, 6),
			Fields: []*ast.FieldDefinition{
				{
					Name: nameNode("world", 15, 2, 3),
					Type: namedTypeNode("String", 22, 2, 10),
					Loc:  loc(15, 28, 2, 3),
				},
			},
			Loc: loc(0, 30, 1, 1),
		}))
		Expect(definition.(ast.TypeSystemDefinition).IsExtension()).Should(BeFalse())
	})

	It("parses type with description string", func() {
		definition := parseSDL("\"Description\"\ntype Hello {\n  world: String\n}")
		object := definition.(*ast.ObjectTypeDefinition)
		Expect(object.Description).Should(Equal(&ast.StringValue{
			Value: "Description",
			Loc:   loc(0, 13, 1, 1),
		}))
		// The definition begins at its description.
		Expect(object.Loc).Should(Equal(loc(0, 44, 1, 1)))
	})

	It("parses type with description multi-line string", func() {
		definition := parseSDL("\"\"\"\nDescription\n\"\"\"\n# Even with comments between them\ntype Hello {\n  world: String\n}")
		object := definition.(*ast.ObjectTypeDefinition)
		Expect(object.Description).Should(PointTo(MatchAllFields(Fields{
			"Value": Equal("Description"),
			"Block": BeTrue(),
			"Loc":   Equal(loc(0, 19, 1, 1)),
		})))
	})

	It("parses simple extension", func() {
		definition := parseSDL("extend type Hello {\n  world: String\n}")
		Expect(definition).Should(Equal(&ast.ObjectTypeExtension{
			Name: nameNode("Hello", 12, 1, 13),
			Fields: []*ast.FieldDefinition{
				{
					Name: nameNode("world", 22, 2, 3),
					Type: namedTypeNode("String", 29, 2, 10),
					Loc:  loc(22, 35, 2, 3),
				},
			},
			Loc: loc(0, 37, 1, 1),
		}))
		Expect(definition.(ast.TypeSystemDefinition).IsExtension()).Should(BeTrue())
	})

	It("parses extension without fields", func() {
		definition := parseSDL("extend type Hello implements Greeting")
		Expect(definition).Should(Equal(&ast.ObjectTypeExtension{
			Name: nameNode("Hello", 12, 1, 13),
			Interfaces: []*ast.NamedType{
				namedTypeNode("Greeting", 29, 1, 30),
			},
			Loc: loc(0, 37, 1, 1),
		}))
	})

	It("parses extension without fields followed by extension", func() {
		document, err := parse(`
      extend type Hello implements Greeting
      extend type Hello implements SecondGreeting
    `)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(document.Definitions).Should(HaveLen(2))
		Expect(document.Definitions[1].(*ast.ObjectTypeExtension).Interfaces[0].Name.Value).Should(
			Equal("SecondGreeting"))
	})

	It("rejects extension without anything", func() {
		expectSyntaxError("extend type Hello", "Unexpected <EOF>", graphql.ErrorLocation{
			Line:   1,
			Column: 18,
		})
		expectSyntaxError("extend scalar Hello", "Unexpected <EOF>", graphql.ErrorLocation{
			Line:   1,
			Column: 20,
		})
		expectSyntaxError("extend schema", "Unexpected <EOF>", graphql.ErrorLocation{
			Line:   1,
			Column: 14,
		})
		expectSyntaxError("extend union Hello", "Unexpected <EOF>", graphql.ErrorLocation{
			Line:   1,
			Column: 19,
		})
		expectSyntaxError("extend enum Hello", "Unexpected <EOF>", graphql.ErrorLocation{
			Line:   1,
			Column: 18,
		})
		expectSyntaxError("extend input Hello", "Unexpected <EOF>", graphql.ErrorLocation{
			Line:   1,
			Column: 19,
		})
		expectSyntaxError("extend interface Hello", "Unexpected <EOF>", graphql.ErrorLocation{
			Line:   1,
			Column: 23,
		})
	})

	It("rejects extension of unknown kinds", func() {
		expectSyntaxError("extend directive @foo on FIELD", `Unexpected Name "directive"`, graphql.ErrorLocation{
			Line:   1,
			Column: 8,
		})
	})

	It("does not allow description on extensions", func() {
		expectSyntaxError(`
      "Description"
      extend type Hello {
        world: String
      }`,
			`Unexpected Name "extend"`,
			graphql.ErrorLocation{
				Line:   3,
				Column: 7,
			})
	})

	It("does not allow description on executable definitions", func() {
		expectSyntaxError(`"Description" query { field }`, `Unexpected Name "query"`, graphql.ErrorLocation{
			Line:   1,
			Column: 15,
		})
	})

	It("parses schema extension", func() {
		definition := parseSDL("extend schema @directive {\n  mutation: Mutation\n}")
		Expect(definition).Should(PointTo(MatchFields(IgnoreExtras, Fields{
			"Directives": ConsistOf(PointTo(MatchFields(IgnoreExtras, Fields{
				"Name": Equal(nameNode("directive", 15, 1, 16)),
			}))),
			"OperationTypes": Equal([]*ast.OperationTypeDefinition{
				{
					Operation: ast.OperationTypeMutation,
					Type:      namedTypeNode("Mutation", 39, 2, 13),
					Loc:       loc(29, 47, 2, 3),
				},
			}),
			"Loc": Equal(loc(0, 49, 1, 1)),
		})))
	})

	It("parses schema extension with only directives", func() {
		definition := parseSDL("extend schema @directive")
		extension := definition.(*ast.SchemaExtension)
		Expect(extension.Directives).Should(HaveLen(1))
		Expect(extension.OperationTypes).Should(BeEmpty())
	})

	It("rejects unknown operation types in schema", func() {
		expectSyntaxError("schema { query: Q other: O }", `Unexpected Name "other"`, graphql.ErrorLocation{
			Line:   1,
			Column: 19,
		})
		expectSyntaxError("schema {}", "Expected Name, found }", graphql.ErrorLocation{
			Line:   1,
			Column: 9,
		})
	})

	It("parses simple non-null type", func() {
		definition := parseSDL("type Hello {\n  world: String!\n}")
		field := definition.(*ast.ObjectTypeDefinition).Fields[0]
		Expect(field.Type).Should(Equal(&ast.NonNullType{
			Type: namedTypeNode("String", 22, 2, 10),
			Loc:  loc(22, 29, 2, 10),
		}))
	})

	It("parses simple interface inheriting interface", func() {
		definition := parseSDL("interface Hello implements World { field: String }")
		Expect(definition).Should(PointTo(MatchFields(IgnoreExtras, Fields{
			"Name": Equal(nameNode("Hello", 10, 1, 11)),
			"Interfaces": Equal([]*ast.NamedType{
				namedTypeNode("World", 27, 1, 28),
			}),
		})))
	})

	It("parses simple type inheriting multiple interfaces", func() {
		definition := parseSDL("type Hello implements Wo & rld { field: String }")
		Expect(definition.(*ast.ObjectTypeDefinition).Interfaces).Should(Equal([]*ast.NamedType{
			namedTypeNode("Wo", 22, 1, 23),
			namedTypeNode("rld", 27, 1, 28),
		}))
	})

	It("parses simple type inheriting multiple interfaces with leading ampersand", func() {
		definition := parseSDL("type Hello implements & Wo & rld { field: String }")
		Expect(definition.(*ast.ObjectTypeDefinition).Interfaces).Should(Equal([]*ast.NamedType{
			namedTypeNode("Wo", 24, 1, 25),
			namedTypeNode("rld", 29, 1, 30),
		}))
	})

	It("parses single value enum", func() {
		definition := parseSDL("enum Hello { WORLD }")
		Expect(definition).Should(Equal(&ast.EnumTypeDefinition{
			Name: nameNode("Hello", 5, 1, 6),
			Values: []*ast.EnumValueDefinition{
				{
					Name: nameNode("WORLD", 13, 1, 14),
					Loc:  loc(13, 18, 1, 14),
				},
			},
			Loc: loc(0, 20, 1, 1),
		}))
	})

	It("parses double value enum", func() {
		definition := parseSDL("enum Hello { WO, RLD }")
		values := definition.(*ast.EnumTypeDefinition).Values
		Expect(values).Should(HaveLen(2))
		Expect(values[0].Name.Value).Should(Equal("WO"))
		Expect(values[1].Name.Value).Should(Equal("RLD"))
	})

	It("rejects reserved enum values", func() {
		for _, reserved := range []string{"true", "false", "null"} {
			expectSyntaxError("enum Test { VALID, "+reserved+" }",
				`Name "`+reserved+`" is reserved and cannot be used for an enum value`,
				graphql.ErrorLocation{
					Line:   1,
					Column: 20,
				})
		}
	})

	It("parses simple field with arg", func() {
		definition := parseSDL("type Hello {\n  world(flag: Boolean): String\n}")
		Expect(definition.(*ast.ObjectTypeDefinition).Fields[0].Arguments).Should(Equal(
			[]*ast.InputValueDefinition{
				{
					Name: nameNode("flag", 21, 2, 9),
					Type: namedTypeNode("Boolean", 27, 2, 15),
					Loc:  loc(21, 34, 2, 9),
				},
			}))
	})

	It("parses simple field with arg with default value", func() {
		definition := parseSDL("type Hello {\n  world(flag: Boolean = true): String\n}")
		argument := definition.(*ast.ObjectTypeDefinition).Fields[0].Arguments[0]
		Expect(argument.DefaultValue).Should(Equal(&ast.BooleanValue{
			Value: true,
			Loc:   loc(37, 41, 2, 25),
		}))
		Expect(argument.Loc).Should(Equal(loc(21, 41, 2, 9)))
	})

	It("parses simple field with list arg", func() {
		definition := parseSDL("type Hello {\n  world(things: [String]): String\n}")
		argument := definition.(*ast.ObjectTypeDefinition).Fields[0].Arguments[0]
		Expect(argument.Type.String()).Should(Equal("[String]"))
	})

	It("parses simple field with two args", func() {
		definition := parseSDL("type Hello {\n  world(argOne: Boolean, argTwo: Int): String\n}")
		arguments := definition.(*ast.ObjectTypeDefinition).Fields[0].Arguments
		Expect(arguments).Should(HaveLen(2))
		Expect(arguments[1].Name.Value).Should(Equal("argTwo"))
		Expect(arguments[1].Type.String()).Should(Equal("Int"))
	})

	It("rejects variables in default values", func() {
		expectSyntaxError("type Hello { world(flag: Boolean = $var): String }", "Unexpected $", graphql.ErrorLocation{
			Line:   1,
			Column: 36,
		})
	})

	It("parses simple union", func() {
		definition := parseSDL("union Hello = World")
		Expect(definition).Should(Equal(&ast.UnionTypeDefinition{
			Name: nameNode("Hello", 6, 1, 7),
			Types: []*ast.NamedType{
				namedTypeNode("World", 14, 1, 15),
			},
			Loc: loc(0, 19, 1, 1),
		}))
	})

	It("parses union with two types", func() {
		definition := parseSDL("union Hello = Wo | Rld")
		Expect(definition.(*ast.UnionTypeDefinition).Types).Should(Equal([]*ast.NamedType{
			namedTypeNode("Wo", 14, 1, 15),
			namedTypeNode("Rld", 19, 1, 20),
		}))
	})

	It("parses union with leading pipe", func() {
		definition := parseSDL("union Hello = | Wo | Rld")
		Expect(definition.(*ast.UnionTypeDefinition).Types).Should(HaveLen(2))
	})

	It("rejects union with no types", func() {
		expectSyntaxError("union Hello = |", "Expected Name, found <EOF>", graphql.ErrorLocation{
			Line:   1,
			Column: 16,
		})
	})

	It("rejects union with two pipes", func() {
		expectSyntaxError("union Hello = || Wo | Rld", "Expected Name, found |", graphql.ErrorLocation{
			Line:   1,
			Column: 16,
		})
		expectSyntaxError("union Hello = Wo || Rld", "Expected Name, found |", graphql.ErrorLocation{
			Line:   1,
			Column: 19,
		})
	})

	It("rejects union with trailing pipe", func() {
		expectSyntaxError("union Hello = | Wo | Rld |", "Expected Name, found <EOF>", graphql.ErrorLocation{
			Line:   1,
			Column: 27,
		})
	})

	It("parses scalar", func() {
		definition := parseSDL("scalar Hello")
		Expect(definition).Should(Equal(&ast.ScalarTypeDefinition{
			Name: nameNode("Hello", 7, 1, 8),
			Loc:  loc(0, 12, 1, 1),
		}))
	})

	It("parses simple input object", func() {
		definition := parseSDL("\ninput Hello {\n  world: String\n}")
		Expect(definition).Should(Equal(&ast.InputObjectTypeDefinition{
			Name: nameNode("Hello", 7, 2, 7),
			Fields: []*ast.InputValueDefinition{
				{
					Name: nameNode("world", 17, 3, 3),
					Type: namedTypeNode("String", 24, 3, 10),
					Loc:  loc(17, 30, 3, 3),
				},
			},
			Loc: loc(1, 32, 2, 1),
		}))
	})

	It("rejects simple input object with args", func() {
		expectSyntaxError("input Hello {\n  world(foo: Int): String\n}", "Expected :, found (", graphql.ErrorLocation{
			Line:   2,
			Column: 8,
		})
	})

	It("parses directive with incorrect locations", func() {
		expectSyntaxError("directive @foo on FIELD | INCORRECT_LOCATION", `Unexpected Name "INCORRECT_LOCATION"`,
			graphql.ErrorLocation{
				Line:   1,
				Column: 27,
			})
	})

	It("parses directive definition", func() {
		definition := parseSDL("directive @foo(arg: Int) on FIELD | FRAGMENT_SPREAD")
		Expect(definition).Should(PointTo(MatchFields(IgnoreExtras, Fields{
			"Description": BeNil(),
			"Name":        Equal(nameNode("foo", 11, 1, 12)),
			"Arguments":   HaveLen(1),
			"Repeatable":  BeFalse(),
			"Locations": Equal([]ast.Name{
				nameNode("FIELD", 28, 1, 29),
				nameNode("FRAGMENT_SPREAD", 36, 1, 37),
			}),
			"Loc": Equal(loc(0, 51, 1, 1)),
		})))
	})

	It("parses repeatable directive definition", func() {
		definition := parseSDL("directive @foo repeatable on | OBJECT | INTERFACE")
		directive := definition.(*ast.DirectiveDefinition)
		Expect(directive.Repeatable).Should(BeTrue())
		Expect(directive.Locations).Should(HaveLen(2))
	})

	It("rejects directive definition without locations", func() {
		expectSyntaxError("directive @foo", `Expected "on", found <EOF>`, graphql.ErrorLocation{
			Line:   1,
			Column: 15,
		})
	})

	It("parses mixed executable and type system definitions", func() {
		document, err := parse(`
      type Query { hello: String }
      { hello }
      extend type Query @cached
    `)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(document.Definitions).Should(HaveLen(3))
		Expect(document.Definitions[0]).Should(BeAssignableToTypeOf(&ast.ObjectTypeDefinition{}))
		Expect(document.Definitions[1]).Should(BeAssignableToTypeOf(&ast.OperationDefinition{}))
		Expect(document.Definitions[2]).Should(BeAssignableToTypeOf(&ast.ObjectTypeExtension{}))
	})

	It("parses schema kitchen sink", func() {
		schemaKitchenSink, err := ioutil.ReadFile("./schema-kitchen-sink.graphql")
		Expect(err).ShouldNot(HaveOccurred())

		document, err := parser.ParseBytes(schemaKitchenSink)
		Expect(err).ShouldNot(HaveOccurred())

		var extensions, definitions int
		for _, definition := range document.Definitions {
			if definition.(ast.TypeSystemDefinition).IsExtension() {
				extensions++
			} else {
				definitions++
			}
		}
		Expect(extensions).Should(Equal(13))
		Expect(definitions).Should(Equal(24))
	})

	It("reports syntax errors in type system definitions with codes", func() {
		_, err := parse("type Hello { world: }")
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.MessageEqual("Syntax Error: Expected Name, found }"),
			testutil.LocationEqual(graphql.ErrorLocation{
				Line:   1,
				Column: 21,
			}),
			testutil.KindIs(graphql.ErrKindSyntax),
		))
		Expect(err).Should(testutil.MatchSyntaxErrorCode(graphql.SyntaxErrorUnexpectedToken))
	})
})
