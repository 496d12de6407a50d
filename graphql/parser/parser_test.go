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
	"bytes"
	"fmt"
	"io/ioutil"
	"math"
	"strings"
	"text/template"

	"github.com/botobag/gqlsyntax/graphql"
	"github.com/botobag/gqlsyntax/graphql/ast"
	"github.com/botobag/gqlsyntax/graphql/parser"
	"github.com/botobag/gqlsyntax/graphql/token"
	"github.com/botobag/gqlsyntax/internal/testutil"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	. "github.com/onsi/gomega/gstruct"
)

func parse(s string, opts ...parser.Option) (*ast.Document, error) {
	return parser.ParseString(s, opts...)
}

func parseValue(s string) (ast.Value, error) {
	return parser.ParseValue(token.NewSourceFromString(s))
}

func parseType(s string) (ast.Type, error) {
	return parser.ParseType(token.NewSourceFromString(s))
}

func expectSyntaxError(text string, message string, location graphql.ErrorLocation) {
	_, err := parse(text)
	Expect(err).Should(testutil.MatchGraphQLError(
		testutil.MessageContainSubstring(message),
		testutil.LocationEqual(location),
		testutil.KindIs(graphql.ErrKindSyntax),
	))
}

func loc(start, end, line, column uint) *ast.Location {
	return &ast.Location{
		Start:  start,
		End:    end,
		Line:   line,
		Column: column,
	}
}

var _ = Describe("Parser", func() {
	// graphql-js/src/language/__tests__/parser-test.js
	It("asserts that a source to parse was provided", func() {
		_, err := parser.Parse(nil)
		Expect(err).Should(MatchError("Must provide Source. Received: nil"))

		_, err = parser.ParseValue(nil)
		Expect(err).Should(MatchError("Must provide Source. Received: nil"))

		_, err = parser.ParseType(nil)
		Expect(err).Should(MatchError("Must provide Source. Received: nil"))
	})

	It("parse provides useful errors", func() {
		_, err := parse("{")
		Expect(err).Should(PointTo(MatchFields(IgnoreExtras, Fields{
			"Message": Equal("Syntax Error: Expected Name, found <EOF>"),
			"Locations": Equal([]graphql.ErrorLocation{
				{Line: 1, Column: 2},
			}),
			"Kind": Equal(graphql.ErrKindSyntax),
		})))
		Expect(err).Should(testutil.MatchSyntaxErrorCode(graphql.SyntaxErrorUnexpectedToken))

		expectSyntaxError(
			`
      { ...MissingOn }
      fragment MissingOn Type`,
			`Expected "on", found Name "Type"`,
			graphql.ErrorLocation{
				Line:   3,
				Column: 26,
			},
		)

		expectSyntaxError("{ field: {} }", "Expected Name, found {", graphql.ErrorLocation{
			Line:   1,
			Column: 10,
		})

		expectSyntaxError(
			"notanoperation Foo { field }",
			`Unexpected Name "notanoperation"`,
			graphql.ErrorLocation{
				Line:   1,
				Column: 1,
			},
		)

		expectSyntaxError("...", "Unexpected ...", graphql.ErrorLocation{
			Line:   1,
			Column: 1,
		})
	})

	It("accepts a document without definitions", func() {
		for _, text := range []string{"", "  ", "# only a comment\n", "\n,\n"} {
			doc, err := parse(text)
			Expect(err).ShouldNot(HaveOccurred(), "%q", text)
			Expect(doc.Definitions).Should(BeEmpty(), "%q", text)
			Expect(ast.Print(doc)).Should(BeEmpty())
		}
	})

	It("rejects a partial definition after a comment", func() {
		expectSyntaxError("# only a comment\nquery", "Expected {, found <EOF>", graphql.ErrorLocation{
			Line:   2,
			Column: 6,
		})
	})

	It("rejects an empty selection set", func() {
		expectSyntaxError("{}", "Expected Name, found }", graphql.ErrorLocation{
			Line:   1,
			Column: 2,
		})
	})

	It("rejects an empty argument list", func() {
		expectSyntaxError("{ field() }", "Expected Name, found )", graphql.ErrorLocation{
			Line:   1,
			Column: 9,
		})
	})

	It("reports lexer errors", func() {
		_, err := parse(`{ field(arg: "unterminated) }`)
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.MessageContainSubstring("Unterminated string"),
			testutil.KindIs(graphql.ErrKindSyntax),
		))
		Expect(err).Should(testutil.MatchSyntaxErrorCode(graphql.SyntaxErrorUnterminatedString))
	})

	It("parses variable inline values", func() {
		_, err := parse("{ field(complex: { a: { b: [ $var ] } }) }")
		Expect(err).ShouldNot(HaveOccurred())
	})

	It("parses constant default values", func() {
		expectSyntaxError(
			"query Foo($x: Complex = { a: { b: [ $var ] } }) { field }",
			"Unexpected $",
			graphql.ErrorLocation{
				Line:   1,
				Column: 37,
			})
	})

	It("parses variable definition directives", func() {
		_, err := parse("query Foo($x: Boolean = false @bar) { field }")
		Expect(err).ShouldNot(HaveOccurred())
	})

	It(`does not accept fragments named "on"`, func() {
		expectSyntaxError(
			"fragment on on on { on }",
			`Expected a fragment name before "on"`,
			graphql.ErrorLocation{
				Line:   1,
				Column: 10,
			})
	})

	It(`does not accept fragments spread of "on"`, func() {
		expectSyntaxError("{ ...on }", "Expected Name, found }", graphql.ErrorLocation{
			Line:   1,
			Column: 9,
		})
	})

	It("parses multi-byte characters", func() {
		// Note: ਊ could be naively interpreted as two line-feed chars.
		document, err := parse(`
      # This comment has a ` + "ਊ" + ` multi-byte character.
      { field(arg: "Has a ` + "ਊ" + ` multi-byte character.") }
    `)

		Expect(err).ShouldNot(HaveOccurred())
		Expect(
			document.
				Definitions[0].(ast.ExecutableDefinition).
				GetSelectionSet().Selections[0].(*ast.Field).
				Arguments[0].
				Value.
				Interface(),
		).Should(Equal("Has a ਊ multi-byte character."))
	})

	It("parses kitchen sink", func() {
		kitchenSink, err := ioutil.ReadFile("./kitchen-sink.graphql")
		Expect(err).ShouldNot(HaveOccurred())

		document, err := parser.ParseBytes(kitchenSink)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(document.Definitions).Should(HaveLen(6))
	})

	It("allows non-keywords anywhere a Name is allowed", func() {
		nonKeywords := []string{
			"on",
			"fragment",
			"query",
			"mutation",
			"subscription",
			"true",
			"false",
		}

		document, err := template.New("keywork-document").Parse(`
        query {{.Keyword}} {
          ... {{.FragmentName}}
          ... on {{.Keyword}} { field }
        }
        fragment {{.FragmentName}} on Type {
          {{.Keyword}}({{.Keyword}}: ${{.Keyword}})
            @{{.Keyword}}({{.Keyword}}: {{.Keyword}})
        }
      `)
		Expect(err).ShouldNot(HaveOccurred())

		for _, keyword := range nonKeywords {
			fragmentName := keyword
			if fragmentName == "on" {
				// You can't define or reference a fragment named `on`.
				fragmentName = "a"
			}

			var buf bytes.Buffer
			Expect(document.Execute(&buf, struct {
				Keyword      string
				FragmentName string
			}{
				Keyword:      keyword,
				FragmentName: fragmentName,
			})).Should(Succeed())

			_, err = parser.ParseBytes(buf.Bytes())
			Expect(err).ShouldNot(HaveOccurred())
		}
	})

	It("parses anonymous mutation operations", func() {
		document, err := parse(`
      mutation {
        mutationField
      }
    `)
		Expect(err).ShouldNot(HaveOccurred())
		operation := document.Definitions[0].(*ast.OperationDefinition)
		Expect(operation.OperationType()).Should(Equal(ast.OperationTypeMutation))
		Expect(operation.Name.IsNil()).Should(BeTrue())
	})

	It("parses anonymous subscription operations", func() {
		document, err := parse(`
      subscription {
        subscriptionField
      }
    `)
		Expect(err).ShouldNot(HaveOccurred())
		operation := document.Definitions[0].(*ast.OperationDefinition)
		Expect(operation.OperationType()).Should(Equal(ast.OperationTypeSubscription))
	})

	It("parses named mutation operations", func() {
		document, err := parse(`
      mutation Foo {
        mutationField
      }
    `)
		Expect(err).ShouldNot(HaveOccurred())
		operation := document.Definitions[0].(*ast.OperationDefinition)
		Expect(operation.Name.Value).Should(Equal("Foo"))
	})

	It("parses named subscription operations", func() {
		document, err := parse(`
      subscription Foo {
        subscriptionField
      }
    `)
		Expect(err).ShouldNot(HaveOccurred())
		operation := document.Definitions[0].(*ast.OperationDefinition)
		Expect(operation.OperationType()).Should(Equal(ast.OperationTypeSubscription))
		Expect(operation.Name.Value).Should(Equal("Foo"))
	})

	It("reports anonymous queries as expressible in shorthand", func() {
		document, err := parse("{ a } query { b } query Q { c } query ($v: Int) { d }")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(document.Definitions).Should(HaveLen(4))

		Expect(document.Definitions[0].(*ast.OperationDefinition).IsQueryShorthand()).Should(BeTrue())
		Expect(document.Definitions[1].(*ast.OperationDefinition).IsQueryShorthand()).Should(BeTrue())
		Expect(document.Definitions[2].(*ast.OperationDefinition).IsQueryShorthand()).Should(BeFalse())
		Expect(document.Definitions[3].(*ast.OperationDefinition).IsQueryShorthand()).Should(BeFalse())
		for _, definition := range document.Definitions {
			Expect(definition.(*ast.OperationDefinition).OperationType()).Should(Equal(ast.OperationTypeQuery))
		}
	})

	It("creates ast", func() {
		result, err := parse("{\n  node(id: 4) {\n    id,\n    name\n  }\n}\n")
		Expect(err).ShouldNot(HaveOccurred())

		Expect(result.Loc).Should(Equal(loc(0, 41, 1, 1)))
		Expect(result.Definitions).Should(HaveLen(1))

		operation, ok := result.Definitions[0].(*ast.OperationDefinition)
		Expect(ok).Should(BeTrue())
		Expect(*operation).Should(MatchAllFields(Fields{
			"Operation":           Equal(ast.OperationTypeQuery),
			"Name":                Equal(ast.Name{}),
			"VariableDefinitions": BeEmpty(),
			"Directives":          BeEmpty(),
			"SelectionSet": PointTo(MatchAllFields(Fields{
				"Selections": HaveLen(1),
				"Loc":        Equal(loc(0, 40, 1, 1)),
			})),
			"Loc": Equal(loc(0, 40, 1, 1)),
		}))

		node := operation.SelectionSet.Selections[0]
		Expect(node).Should(PointTo(MatchAllFields(Fields{
			"Alias": Equal(ast.Name{}),
			"Name": Equal(ast.Name{
				Value: "node",
				Loc:   loc(4, 8, 2, 3),
			}),
			"Arguments": ConsistOf(PointTo(MatchAllFields(Fields{
				"Name": Equal(ast.Name{
					Value: "id",
					Loc:   loc(9, 11, 2, 8),
				}),
				"Value": Equal(&ast.IntValue{
					Value: "4",
					Loc:   loc(13, 14, 2, 12),
				}),
				"Loc": Equal(loc(9, 14, 2, 8)),
			}))),
			"Directives": BeEmpty(),
			"SelectionSet": PointTo(MatchAllFields(Fields{
				"Selections": Equal([]ast.Selection{
					&ast.Field{
						Name: ast.Name{
							Value: "id",
							Loc:   loc(22, 24, 3, 5),
						},
						Loc: loc(22, 24, 3, 5),
					},
					&ast.Field{
						Name: ast.Name{
							Value: "name",
							Loc:   loc(30, 34, 4, 5),
						},
						Loc: loc(30, 34, 4, 5),
					},
				}),
				"Loc": Equal(loc(16, 38, 2, 15)),
			})),
			"Loc": Equal(loc(4, 38, 2, 3)),
		})))
	})

	It("creates ast from nameless query without variables", func() {
		result, err := parse("query {\n  node {\n    id\n  }\n}\n")
		Expect(err).ShouldNot(HaveOccurred())

		operation := result.Definitions[0].(*ast.OperationDefinition)
		Expect(operation.Operation).Should(Equal(ast.OperationTypeQuery))
		Expect(operation.Name.IsNil()).Should(BeTrue())
		Expect(operation.IsQueryShorthand()).Should(BeTrue())
		Expect(operation.Loc).Should(Equal(loc(0, 29, 1, 1)))

		node := operation.SelectionSet.Selections[0].(*ast.Field)
		Expect(node.Name).Should(Equal(ast.Name{
			Value: "node",
			Loc:   loc(10, 14, 2, 3),
		}))
		Expect(node.SelectionSet.Selections).Should(Equal([]ast.Selection{
			&ast.Field{
				Name: ast.Name{
					Value: "id",
					Loc:   loc(21, 23, 3, 5),
				},
				Loc: loc(21, 23, 3, 5),
			},
		}))
	})

	It("Experimental: allows parsing fragment defined variables", func() {
		document := "fragment a($v: Boolean = false) on t { f(v: $v) }"
		expectSyntaxError(document, `Expected "on", found (`, graphql.ErrorLocation{
			Line:   1,
			Column: 11,
		})

		result, err := parse(document, parser.ExperimentalFragmentVariables())
		Expect(err).ShouldNot(HaveOccurred())

		fragment := result.Definitions[0].(*ast.FragmentDefinition)
		Expect(fragment.VariableDefinitions).Should(HaveLen(1))
		Expect(fragment.VariableDefinitions[0].Variable.Name.Value).Should(Equal("v"))
		Expect(fragment.VariableDefinitions[0].DefaultValue.Interface()).Should(Equal(false))
	})

	It("contains location information", func() {
		result, err := parse("{ id }")
		Expect(err).ShouldNot(HaveOccurred())

		// Document spans from <SOF> to <EOF>.
		Expect(result.Loc).Should(Equal(loc(0, 6, 1, 1)))
		field := result.Definitions[0].(*ast.OperationDefinition).SelectionSet.Selections[0]
		Expect(field.GetLoc()).Should(Equal(loc(2, 4, 1, 3)))
	})

	It("excludes trailing comments from node locations", func() {
		result, err := parse("{ id # comment\n}")
		Expect(err).ShouldNot(HaveOccurred())

		field := result.Definitions[0].(*ast.OperationDefinition).SelectionSet.Selections[0]
		Expect(field.GetLoc()).Should(Equal(loc(2, 4, 1, 3)))
	})

	It("omits locations on request", func() {
		result, err := parse("query Q($v: [Int!]) { a: b(c: $v) @d { ...F ... on T { e } } }", parser.NoLocations())
		Expect(err).ShouldNot(HaveOccurred())
		Expect(result.Loc).Should(BeNil())

		var located []ast.Node
		ast.Inspect(result, func(node ast.Node) bool {
			if node.GetLoc() != nil {
				located = append(located, node)
			}
			return true
		})
		Expect(located).Should(BeEmpty())
	})

	It("parses directives on every executable location", func() {
		result, err := parse(`
      query Q($v: Int @onVariable) @onQuery {
        field @onField
        ...Frag @onSpread
        ... on T @onInline { id }
      }
      fragment Frag on T @onFragment { id }
    `)
		Expect(err).ShouldNot(HaveOccurred())

		var names []string
		ast.Inspect(result, func(node ast.Node) bool {
			if directive, ok := node.(*ast.Directive); ok {
				names = append(names, directive.Name.Value)
			}
			return true
		})
		Expect(names).Should(Equal([]string{
			"onVariable", "onQuery", "onField", "onSpread", "onInline", "onFragment",
		}))
	})

	It("parses aliases", func() {
		result, err := parse("{ alias: field }")
		Expect(err).ShouldNot(HaveOccurred())

		field := result.Definitions[0].(*ast.OperationDefinition).SelectionSet.Selections[0].(*ast.Field)
		Expect(field.Alias.Value).Should(Equal("alias"))
		Expect(field.Name.Value).Should(Equal("field"))
		Expect(field.ResponseKey()).Should(Equal("alias"))
		Expect(field.Loc).Should(Equal(loc(2, 14, 1, 3)))
	})

	Describe("limits", func() {
		It("rejects sources with too many tokens", func() {
			_, err := parse("{ a b c }", parser.MaxTokens(4))
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.MessageContainSubstring("Document contains more than 4 tokens. Parsing aborted."),
				testutil.LocationEqual(graphql.ErrorLocation{
					Line:   1,
					Column: 9,
				}),
				testutil.KindIs(graphql.ErrKindSyntax),
			))
			Expect(err).Should(testutil.MatchSyntaxErrorCode(graphql.SyntaxErrorTooManyTokens))

			_, err = parse("{ a b c }", parser.MaxTokens(5))
			Expect(err).ShouldNot(HaveOccurred())
		})

		It("does not count comments towards the token limit", func() {
			_, err := parse("# one\n# two\n{ a }", parser.MaxTokens(3))
			Expect(err).ShouldNot(HaveOccurred())
		})

		It("rejects deeply nested selection sets", func() {
			_, err := parse("{ a { b { c } } }", parser.MaxDepth(2))
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.MessageContainSubstring("Document exceeds maximum nesting depth of 2"),
				testutil.LocationEqual(graphql.ErrorLocation{
					Line:   1,
					Column: 9,
				}),
				testutil.KindIs(graphql.ErrKindSyntax),
			))

			_, err = parse("{ a { b { c } } }", parser.MaxDepth(3))
			Expect(err).ShouldNot(HaveOccurred())
		})

		It("counts depth of values and list types", func() {
			_, err := parse("{ a(v: [[1]]) }", parser.MaxDepth(2))
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.MessageContainSubstring("Document exceeds maximum nesting depth of 2"),
				testutil.LocationEqual(graphql.ErrorLocation{
					Line:   1,
					Column: 9,
				}),
			))

			_, err = parse("{ a(v: {b: 1}) }", parser.MaxDepth(2))
			Expect(err).ShouldNot(HaveOccurred())

			_, err = parse("query ($v: [[[Int]]]) { a }", parser.MaxDepth(2))
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.MessageContainSubstring("Document exceeds maximum nesting depth of 2"),
				testutil.LocationEqual(graphql.ErrorLocation{
					Line:   1,
					Column: 14,
				}),
			))
		})

		It("allows unlimited nesting by default", func() {
			var query strings.Builder
			for i := 0; i < 200; i++ {
				query.WriteString("{ a ")
			}
			query.WriteString(strings.Repeat("}", 200))

			_, err := parse(query.String())
			Expect(err).ShouldNot(HaveOccurred())
		})
	})

	Describe("ParseValue", func() {
		It("parses null value", func() {
			result, err := parseValue("null")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(result).Should(Equal(&ast.NullValue{
				Loc: loc(0, 4, 1, 1),
			}))
			Expect(result.Interface()).Should(BeNil())
		})

		It("parses list values", func() {
			result, err := parseValue(`[123 "abc"]`)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(result).Should(Equal(&ast.ListValue{
				Values: []ast.Value{
					&ast.IntValue{
						Value: "123",
						Loc:   loc(1, 4, 1, 2),
					},
					&ast.StringValue{
						Value: "abc",
						Loc:   loc(5, 10, 1, 6),
					},
				},
				Loc: loc(0, 11, 1, 1),
			}))
		})

		It("parses block strings", func() {
			result, err := parseValue(`["""long""" "short"]`)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(result).Should(Equal(&ast.ListValue{
				Values: []ast.Value{
					&ast.StringValue{
						Value: "long",
						Block: true,
						Loc:   loc(1, 11, 1, 2),
					},
					&ast.StringValue{
						Value: "short",
						Loc:   loc(12, 19, 1, 13),
					},
				},
				Loc: loc(0, 20, 1, 1),
			}))
		})

		It("parse nested list value", func() {
			result, err := parseValue(`[[1], [2, 3]]`)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(result.Interface()).Should(Equal([]interface{}{
				[]interface{}{int64(1)},
				[]interface{}{int64(2), int64(3)},
			}))
		})

		It("parses an empty list", func() {
			result, err := parseValue("[]")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(result).Should(Equal(&ast.ListValue{
				Loc: loc(0, 2, 1, 1),
			}))
		})

		It("parses an empty object", func() {
			result, err := parseValue("{}")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(result).Should(Equal(&ast.ObjectValue{
				Loc: loc(0, 2, 1, 1),
			}))
		})

		It("parses object values", func() {
			result, err := parseValue(`{a: 1, b: {c: ENUM}, d: $var}`)
			Expect(err).ShouldNot(HaveOccurred())

			object := result.(*ast.ObjectValue)
			Expect(object.Fields).Should(HaveLen(3))
			Expect(object.Fields[0].Name.Value).Should(Equal("a"))
			Expect(object.Fields[0].Loc).Should(Equal(loc(1, 5, 1, 2)))
			Expect(object.Fields[1].Value).Should(BeAssignableToTypeOf(&ast.ObjectValue{}))
			Expect(object.Fields[2].Value).Should(Equal(&ast.Variable{
				Name: ast.Name{
					Value: "var",
					Loc:   loc(25, 28, 1, 26),
				},
				Loc: loc(24, 28, 1, 25),
			}))
			Expect(result.Interface()).Should(Equal(map[string]interface{}{
				"a": int64(1),
				"b": map[string]interface{}{"c": "ENUM"},
				"d": nil,
			}))
		})

		It("parses boolean values", func() {
			result, err := parseValue("true")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(result).Should(Equal(&ast.BooleanValue{
				Value: true,
				Loc:   loc(0, 4, 1, 1),
			}))

			result, err = parseValue("false")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(result).Should(Equal(&ast.BooleanValue{
				Value: false,
				Loc:   loc(0, 5, 1, 1),
			}))
		})

		It("parses enum values", func() {
			result, err := parseValue("MOBILE")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(result).Should(Equal(&ast.EnumValue{
				Value: "MOBILE",
				Loc:   loc(0, 6, 1, 1),
			}))
		})

		It("parses int values", func() {
			tests := map[string]int64{
				"0":        0,
				"1":        1,
				"123":      123,
				"123333":   123333,
				"-1":       -1,
				"-1003":    -1003,
				"-1003748": -1003748,
			}

			for test, expectedValue := range tests {
				result, err := parseValue(test)
				Expect(err).ShouldNot(HaveOccurred())

				value, ok := result.(*ast.IntValue)
				Expect(ok).Should(BeTrue())
				Expect(value.Value).Should(Equal(test))
				Expect(value.Loc).Should(Equal(loc(0, uint(len(test)), 1, 1)))
				Expect(value.Int64()).Should(Equal(expectedValue))
				Expect(value.Interface()).Should(Equal(expectedValue))
			}
		})

		It("parses int values that overflow 64 bits", func() {
			for _, test := range []string{
				"-8190283917982478127489274192749874",
				"7219896182364762369416748936479639",
			} {
				result, err := parseValue(test)
				Expect(err).ShouldNot(HaveOccurred())

				value := result.(*ast.IntValue)
				Expect(value.Value).Should(Equal(test))
				_, err = value.Int64()
				Expect(err).Should(HaveOccurred())
			}
		})

		It("parses float values", func() {
			tests := []struct {
				s             string
				expectedValue float64
			}{
				{"1.23", 1.23},
				{"-1.23", -1.23},
				{"1e10", 1e10},
				{"0.0", 0.0},
				{"123.456e789", math.NaN()},
			}

			for _, test := range tests {
				result, err := parseValue(test.s)
				Expect(err).ShouldNot(HaveOccurred())

				value, ok := result.(*ast.FloatValue)
				Expect(ok).Should(BeTrue())
				Expect(value.Value).Should(Equal(test.s))
				Expect(value.Loc).Should(Equal(loc(0, uint(len(test.s)), 1, 1)))

				if math.IsNaN(test.expectedValue) {
					_, err := value.Float64()
					Expect(err).Should(HaveOccurred())
					Expect(math.IsNaN(value.Interface().(float64))).Should(BeTrue())
				} else {
					Expect(value.Float64()).Should(Equal(test.expectedValue))
					Expect(value.Interface()).Should(Equal(test.expectedValue))
				}
			}
		})

		It("parses variables", func() {
			result, err := parseValue("$var")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(result).Should(Equal(&ast.Variable{
				Name: ast.Name{
					Value: "var",
					Loc:   loc(1, 4, 1, 2),
				},
				Loc: loc(0, 4, 1, 1),
			}))
		})

		It("rejects multiple values", func() {
			_, err := parseValue(`1 2`)
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.MessageContainSubstring(`Expected <EOF>, found Int "2"`),
				testutil.LocationEqual(graphql.ErrorLocation{
					Line:   1,
					Column: 3,
				}),
				testutil.KindIs(graphql.ErrKindSyntax),
			))
		})

		It("reject invalid values", func() {
			_, err := parseValue("@deprecated")
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.MessageContainSubstring("Unexpected @"),
				testutil.LocationEqual(graphql.ErrorLocation{
					Line:   1,
					Column: 1,
				}),
				testutil.KindIs(graphql.ErrKindSyntax),
			))
		})

		It("rejects unterminated lists", func() {
			_, err := parseValue("[1, 2")
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.MessageContainSubstring("Unexpected <EOF>"),
				testutil.LocationEqual(graphql.ErrorLocation{
					Line:   1,
					Column: 6,
				}),
				testutil.KindIs(graphql.ErrKindSyntax),
			))
		})
	})

	Describe("ParseType", func() {
		It("parses well known types", func() {
			result, err := parseType("String")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(result).Should(Equal(&ast.NamedType{
				Name: ast.Name{
					Value: "String",
					Loc:   loc(0, 6, 1, 1),
				},
				Loc: loc(0, 6, 1, 1),
			}))
		})

		It("parses custom types", func() {
			result, err := parseType("MyType")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(result.String()).Should(Equal("MyType"))
			Expect(result.GetLoc()).Should(Equal(loc(0, 6, 1, 1)))
		})

		It("parses list types", func() {
			result, err := parseType("[MyType]")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(result).Should(Equal(&ast.ListType{
				ItemType: &ast.NamedType{
					Name: ast.Name{
						Value: "MyType",
						Loc:   loc(1, 7, 1, 2),
					},
					Loc: loc(1, 7, 1, 2),
				},
				Loc: loc(0, 8, 1, 1),
			}))
		})

		It("parses non-null types", func() {
			result, err := parseType("MyType!")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(result).Should(Equal(&ast.NonNullType{
				Type: &ast.NamedType{
					Name: ast.Name{
						Value: "MyType",
						Loc:   loc(0, 6, 1, 1),
					},
					Loc: loc(0, 6, 1, 1),
				},
				Loc: loc(0, 7, 1, 1),
			}))
		})

		It("parses nested types", func() {
			result, err := parseType("[MyType!]")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(result).Should(Equal(&ast.ListType{
				ItemType: &ast.NonNullType{
					Type: &ast.NamedType{
						Name: ast.Name{
							Value: "MyType",
							Loc:   loc(1, 7, 1, 2),
						},
						Loc: loc(1, 7, 1, 2),
					},
					Loc: loc(1, 8, 1, 2),
				},
				Loc: loc(0, 9, 1, 1),
			}))

			result, err = parseType("[[Int]!]!")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(result.String()).Should(Equal("[[Int]!]!"))
			Expect(result.GetLoc()).Should(Equal(loc(0, 9, 1, 1)))

			inner := result.(*ast.NonNullType).Type.(*ast.ListType).ItemType
			Expect(inner.GetLoc()).Should(Equal(loc(1, 7, 1, 2)))
		})

		It("rejects incompleted list types", func() {
			_, err := parseType("[[MyType!]")
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.MessageContainSubstring("Expected ], found <EOF>"),
				testutil.LocationEqual(graphql.ErrorLocation{
					Line:   1,
					Column: 11,
				}),
				testutil.KindIs(graphql.ErrKindSyntax),
			))
		})

		It("rejects list type without item type", func() {
			_, err := parseType("[]")
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.MessageContainSubstring("Expected Name, found ]"),
				testutil.LocationEqual(graphql.ErrorLocation{
					Line:   1,
					Column: 2,
				}),
				testutil.KindIs(graphql.ErrKindSyntax),
			))
		})

		It("rejects non-null type without item type", func() {
			_, err := parseType("!")
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.MessageContainSubstring("Expected Name, found !"),
				testutil.LocationEqual(graphql.ErrorLocation{
					Line:   1,
					Column: 1,
				}),
				testutil.KindIs(graphql.ErrKindSyntax),
			))
		})

		It("rejects non-null type with non-null item type", func() {
			_, err := parseType("MyType!!")
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.MessageContainSubstring("Expected <EOF>, found !"),
				testutil.LocationEqual(graphql.ErrorLocation{
					Line:   1,
					Column: 8,
				}),
				testutil.KindIs(graphql.ErrKindSyntax),
			))

			_, err = parseType("[[MyType!]!!]")
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.MessageContainSubstring("Expected ], found !"),
				testutil.LocationEqual(graphql.ErrorLocation{
					Line:   1,
					Column: 12,
				}),
				testutil.KindIs(graphql.ErrKindSyntax),
			))
		})
	})

	Measure("parses query with 10k field selection", func(b Benchmarker) {
		var query bytes.Buffer
		query.WriteString("{")
		for i := 0; i < 10000; i++ {
			query.WriteString(fmt.Sprintf(" field%d", i))
		}
		query.WriteString("}")

		source := token.NewSourceFromBytes(query.Bytes())

		b.Time("parse time", func() {
			_, err := parser.Parse(source)
			Expect(err).ShouldNot(HaveOccurred())
		})
	}, 10)
})
