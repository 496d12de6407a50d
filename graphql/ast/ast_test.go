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

package ast_test

import (
	"math"

	"github.com/botobag/gqlsyntax/graphql/ast"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Location", func() {
	It("contains nested regions", func() {
		outer := &ast.Location{Start: 0, End: 10}
		Expect(outer.Contains(&ast.Location{Start: 0, End: 10})).Should(BeTrue())
		Expect(outer.Contains(&ast.Location{Start: 2, End: 5})).Should(BeTrue())
		Expect(outer.Contains(&ast.Location{Start: 5, End: 11})).Should(BeFalse())
		Expect(outer.Contains(nil)).Should(BeFalse())

		var missing *ast.Location
		Expect(missing.Contains(outer)).Should(BeFalse())
	})

	It("is consistent between parents and children in parsed documents", func() {
		for _, doc := range []*ast.Document{kitchenSinkAST(), schemaKitchenSinkAST()} {
			var ancestors []ast.Node
			ast.Walk(doc, ast.VisitorFuncs{
				OnEnter: func(node ast.Node) ast.VisitResult {
					loc := node.GetLoc()
					Expect(loc).ShouldNot(BeNil(), "%T", node)
					Expect(loc.Start).Should(BeNumerically("<=", loc.End))
					if len(ancestors) > 0 {
						parent := ancestors[len(ancestors)-1]
						Expect(parent.GetLoc().Contains(loc)).Should(BeTrue(), "%T in %T", node, parent)
					}
					ancestors = append(ancestors, node)
					return ast.Continue
				},
				OnLeave: func(node ast.Node) ast.VisitResult {
					ancestors = ancestors[:len(ancestors)-1]
					return ast.Continue
				},
			})
		}
	})
})

var _ = Describe("Value", func() {
	It("converts literals into Go values", func() {
		Expect((&ast.IntValue{Value: "-42"}).Interface()).Should(Equal(int64(-42)))
		Expect((&ast.IntValue{Value: "92233720368547758070"}).Interface()).Should(Equal(9.223372036854776e+19))
		Expect((&ast.FloatValue{Value: "1.5e3"}).Interface()).Should(Equal(1500.0))
		Expect(math.IsNaN((&ast.FloatValue{Value: "x"}).Interface().(float64))).Should(BeTrue())
		Expect((&ast.StringValue{Value: "s", Block: true}).Interface()).Should(Equal("s"))
		Expect((&ast.BooleanValue{Value: true}).Interface()).Should(Equal(true))
		Expect((&ast.NullValue{}).Interface()).Should(BeNil())
		Expect((&ast.EnumValue{Value: "RED"}).Interface()).Should(Equal("RED"))
		Expect((&ast.Variable{Name: ast.NewName("v")}).Interface()).Should(BeNil())
	})

	It("converts lists and objects recursively", func() {
		value := &ast.ObjectValue{
			Fields: []*ast.ObjectField{
				{
					Name: ast.NewName("list"),
					Value: &ast.ListValue{
						Values: []ast.Value{
							&ast.IntValue{Value: "1"},
							&ast.StringValue{Value: "two"},
						},
					},
				},
				{
					Name:  ast.NewName("nested"),
					Value: &ast.ObjectValue{},
				},
			},
		}

		Expect(value.Interface()).Should(Equal(map[string]interface{}{
			"list":   []interface{}{int64(1), "two"},
			"nested": map[string]interface{}{},
		}))
	})

	It("keeps the literal text of numbers", func() {
		intValue := &ast.IntValue{Value: "007"}
		v, err := intValue.Int64()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(v).Should(Equal(int64(7)))
		Expect(ast.Print(intValue)).Should(Equal("007"))

		floatValue := &ast.FloatValue{Value: "1.50E+2"}
		f, err := floatValue.Float64()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(f).Should(Equal(150.0))
		Expect(ast.Print(floatValue)).Should(Equal("1.50E+2"))
	})
})

var _ = Describe("Type", func() {
	It("renders type references", func() {
		t := &ast.NonNullType{
			Type: &ast.ListType{
				ItemType: &ast.NonNullType{
					Type: ast.NewNamedType("Foo"),
				},
			},
		}
		Expect(t.String()).Should(Equal("[Foo!]!"))
		Expect(ast.Print(t)).Should(Equal("[Foo!]!"))
		Expect(ast.NamedTypeOf(t).Name.Value).Should(Equal("Foo"))
	})
})

var _ = Describe("OperationDefinition", func() {
	It("defaults the operation type to query", func() {
		operation := &ast.OperationDefinition{}
		Expect(operation.OperationType()).Should(Equal(ast.OperationTypeQuery))
		Expect(operation.IsQueryShorthand()).Should(BeTrue())
		Expect(operation.WithName(ast.NewName("Q")).IsQueryShorthand()).Should(BeFalse())
	})

	It("finds arguments and directives by name", func() {
		doc := parse(`{ f(a: 1, b: 2) @skip(if: false) @deprecated }`)
		field := doc.Definitions[0].(*ast.OperationDefinition).SelectionSet.Selections[0].(*ast.Field)

		Expect(field.Arguments.Get("b").Value.Interface()).Should(Equal(int64(2)))
		Expect(field.Arguments.Get("c")).Should(BeNil())
		Expect(field.Directives.Get("deprecated")).ShouldNot(BeNil())
		Expect(field.Directives.Get("include")).Should(BeNil())
		Expect(field.ResponseKey()).Should(Equal("f"))
		Expect(field.WithAlias(ast.NewName("g")).ResponseKey()).Should(Equal("g"))
	})
})
