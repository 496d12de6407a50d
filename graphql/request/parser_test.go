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

package request_test

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/botobag/gqlsyntax/graphql"
	"github.com/botobag/gqlsyntax/graphql/ast"
	"github.com/botobag/gqlsyntax/graphql/cache"
	"github.com/botobag/gqlsyntax/graphql/parser"
	"github.com/botobag/gqlsyntax/graphql/request"
	"github.com/botobag/gqlsyntax/graphql/token"
	"github.com/botobag/gqlsyntax/jsonvalue"

	. "github.com/onsi/ginkgo"
	"github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

const helloHash = "001c3174e099bd72b729d0c0a529ba9f5a740c446e2a6e1d71b283cb84ec3065"

// countingParse returns a ParseFunc that counts its calls.
func countingParse(count *int32) request.ParseFunc {
	return func(source *token.Source) (*ast.Document, error) {
		atomic.AddInt32(count, 1)
		return parser.Parse(source)
	}
}

func expectRequestError(err error, code request.Code) *request.Error {
	Expect(err).Should(HaveOccurred())
	Expect(request.CodeOf(err)).Should(Equal(code), "error: %v", err)
	e, ok := err.(*request.Error)
	Expect(ok).Should(BeTrue())
	return e
}

var _ = Describe("Parser", func() {
	var (
		ctx        context.Context
		parseCount int32
		p          *request.Parser
	)

	BeforeEach(func() {
		ctx = context.Background()
		parseCount = 0
		p = request.NewParser(request.WithParseFunc(countingParse(&parseCount)))
	})

	It("parses a request with query", func() {
		results, err := p.ParseRequest(ctx, []byte(`{
			"query": "{ hello }",
			"operationName": null,
			"variables": { "a": 1, "b": [true, "x"] },
			"extensions": null
		}`))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(results).Should(HaveLen(1))

		result := results[0]
		Expect(result.OperationName).Should(BeEmpty())
		Expect(result.QueryName).Should(BeEmpty())
		Expect(result.QueryHash).Should(Equal(helloHash))
		Expect(result.Extensions).Should(BeNil())
		Expect(result.Variables.Interface()).Should(Equal(map[string]interface{}{
			"a": jsonvalue.NumberValue("1").Interface(),
			"b": []interface{}{true, "x"},
		}))

		Expect(result.Document.Definitions).Should(HaveLen(1))
		operation, ok := result.Document.Definitions[0].(*ast.OperationDefinition)
		Expect(ok).Should(BeTrue())
		Expect(operation.SelectionSet.Selections).Should(HaveLen(1))
		Expect(operation.SelectionSet.Selections[0].(*ast.Field).Name.Value).Should(Equal("hello"))
	})

	It("resolves a later hash-only request from cache without parsing", func() {
		results, err := p.ParseRequest(ctx, []byte(`{"query": "{ hello }"}`))
		Expect(err).ShouldNot(HaveOccurred())
		first := results[0]
		Expect(first.QueryHash).ShouldNot(BeEmpty())
		Expect(parseCount).Should(Equal(int32(1)))

		results, err = p.ParseRequest(ctx, []byte(fmt.Sprintf(`{"namedQuery": %q}`, first.QueryHash)))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(results[0].Document).Should(Equal(first.Document))
		Expect(results[0].QueryName).Should(Equal(first.QueryHash))
		Expect(parseCount).Should(Equal(int32(1)))

		// Sending the same text again hits the cache as well.
		results, err = p.ParseRequest(ctx, []byte(`{"query": "{ hello }"}`))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(results[0].Document).Should(BeIdenticalTo(first.Document))
		Expect(parseCount).Should(Equal(int32(1)))
	})

	It("stores document under the given name", func() {
		_, err := p.ParseRequest(ctx, []byte(`{"query": "{ hello }", "id": "HelloQuery"}`))
		Expect(err).ShouldNot(HaveOccurred())

		results, err := p.ParseRequest(ctx, []byte(`{"id": "HelloQuery", "operationName": "Hello"}`))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(results[0].QueryName).Should(Equal("HelloQuery"))
		Expect(results[0].OperationName).Should(Equal("Hello"))
		Expect(results[0].QueryHash).Should(BeEmpty())
		Expect(results[0].Document).ShouldNot(BeNil())
		Expect(parseCount).Should(Equal(int32(1)))
	})

	It("prefers namedQuery over id", func() {
		_, err := p.ParseRequest(ctx, []byte(`{"query": "{ hello }", "namedQuery": "A", "id": "B"}`))
		Expect(err).ShouldNot(HaveOccurred())

		_, ok := p.Cache().Get(request.NameKey("A"))
		Expect(ok).Should(BeTrue())
		_, ok = p.Cache().Get(request.NameKey("B"))
		Expect(ok).Should(BeFalse())
	})

	It("keeps names apart from query digests", func() {
		meHash := request.SHA256Hasher{}.Hash([]byte("{ me { name } }"))

		// A name that collides with the digest of another query.
		_, err := p.ParseRequest(ctx, []byte(fmt.Sprintf(`{"query": "{ other }", "namedQuery": %q}`, meHash)))
		Expect(err).ShouldNot(HaveOccurred())
		_, ok := p.Cache().Get(meHash)
		Expect(ok).Should(BeFalse())

		results, err := p.ParseRequest(ctx, []byte(`{"query": "{ me { name } }"}`))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(results[0].QueryHash).Should(Equal(meHash))
		me := results[0].Document
		Expect(ast.Print(me)).Should(Equal("{\n  me {\n    name\n  }\n}\n"))

		// Looking up by digest finds the query text that produced it.
		results, err = p.ParseRequest(ctx, []byte(fmt.Sprintf(`{"namedQuery": %q}`, meHash)))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(results[0].Document).Should(BeIdenticalTo(me))
	})

	Describe("automatic persisted queries", func() {
		apqRequest := func(hash string, query string) []byte {
			body := fmt.Sprintf(`"extensions": {"persistedQuery": {"version": 1, "sha256Hash": %q}}`, hash)
			if len(query) > 0 {
				body = fmt.Sprintf(`"query": %q, %s`, query, body)
			}
			return []byte("{" + body + "}")
		}

		It("answers hash-only miss with DocumentNotFound and then resolves after full query is sent", func() {
			_, err := p.ParseRequest(ctx, apqRequest(helloHash, ""))
			e := expectRequestError(err, request.DocumentNotFound)
			Expect(e.Key).Should(Equal(helloHash))
			Expect(e.Error()).Should(ContainSubstring("DocumentNotFound"))

			results, err := p.ParseRequest(ctx, apqRequest(helloHash, "{ hello }"))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(results[0].QueryHash).Should(Equal(helloHash))

			results, err = p.ParseRequest(ctx, apqRequest(helloHash, ""))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(results[0].Document).ShouldNot(BeNil())
			Expect(parseCount).Should(Equal(int32(1)))
		})

		It("rejects mismatched hash", func() {
			_, err := p.ParseRequest(ctx, apqRequest(strings.Repeat("0", 64), "{ hello }"))
			expectRequestError(err, request.InvalidQueryHash)
			Expect(parseCount).Should(Equal(int32(0)))
		})

		It("skips hash verification when disabled", func() {
			p = request.NewParser(request.VerifyHash(false))
			bogus := strings.Repeat("0", 64)
			_, err := p.ParseRequest(ctx, apqRequest(bogus, "{ hello }"))
			Expect(err).ShouldNot(HaveOccurred())

			// An unchecked hash never becomes a cache key.
			_, ok := p.Cache().Get(bogus)
			Expect(ok).Should(BeFalse())
			_, err = p.ParseRequest(ctx, apqRequest(bogus, ""))
			expectRequestError(err, request.DocumentNotFound)
		})

		It("stores under sha256Hash when keys are computed by another hasher", func() {
			p = request.NewParser(request.WithHasher(request.FarmHasher{}))
			results, err := p.ParseRequest(ctx, apqRequest(helloHash, "{ hello }"))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(results[0].QueryHash).ShouldNot(Equal(helloHash))
			Expect(results[0].QueryHash).Should(HaveLen(32))

			results, err = p.ParseRequest(ctx, apqRequest(helloHash, ""))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(results[0].Document).ShouldNot(BeNil())
		})
	})

	It("wraps syntax error in InvalidQuery", func() {
		_, err := p.ParseRequest(ctx, []byte(`{"query": "{"}`))
		e := expectRequestError(err, request.InvalidQuery)
		Expect(graphql.SyntaxErrorCodeOf(e)).Should(Equal(graphql.SyntaxErrorUnexpectedToken))

		var gqlErr *graphql.Error
		Expect(e.Err).Should(BeAssignableToTypeOf(gqlErr))
		Expect(e.Err.(*graphql.Error).Locations).Should(Equal([]graphql.ErrorLocation{
			{Line: 1, Column: 2},
		}))

		// Errors are not cached.
		_, err = p.ParseRequest(ctx, []byte(`{"query": "{"}`))
		expectRequestError(err, request.InvalidQuery)
		Expect(parseCount).Should(Equal(int32(2)))
	})

	It("applies parse options", func() {
		p = request.NewParser(request.WithParseOptions(parser.MaxTokens(3)))
		_, err := p.ParseRequest(ctx, []byte(`{"query": "{ a b c }"}`))
		e := expectRequestError(err, request.InvalidQuery)
		Expect(graphql.SyntaxErrorCodeOf(e)).Should(Equal(graphql.SyntaxErrorTooManyTokens))

		p = request.NewParser(request.WithParseOptions(parser.NoLocations()))
		results, err := p.ParseRequest(ctx, []byte(`{"query": "{ a }"}`))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(results[0].Document.Loc).Should(BeNil())
	})

	It("uses the given cache", func() {
		c, err := cache.NewLRUCache(1)
		Expect(err).ShouldNot(HaveOccurred())
		p = request.NewParser(request.WithCache(c))
		Expect(p.Cache()).Should(BeIdenticalTo(c))
		Expect(p.Hasher()).Should(Equal(request.SHA256Hasher{}))

		_, err = p.ParseRequest(ctx, []byte(`{"query": "{ a }"}`))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(c.Len()).Should(Equal(1))
	})

	table.DescribeTable("rejects malformed requests",
		func(body string, code request.Code) {
			_, err := p.ParseRequest(ctx, []byte(body))
			expectRequestError(err, code)
		},
		table.Entry("no query", `{}`, request.MissingQuery),
		table.Entry("null query", `{"query": null, "operationName": "A"}`, request.MissingQuery),
		table.Entry("unknown name", `{"namedQuery": "A"}`, request.DocumentNotFound),
		table.Entry("invalid JSON", `{"query": `, request.InvalidRequestBody),
		table.Entry("trailing data", `{"query": "{ a }"} {}`, request.InvalidRequestBody),
		table.Entry("string body", `"{ a }"`, request.InvalidRequestBody),
		table.Entry("number body", `42`, request.InvalidRequestBody),
		table.Entry("empty batch", `[]`, request.InvalidRequestBody),
		table.Entry("non-object in batch", `[{"query": "{ a }"}, 1]`, request.InvalidRequestBody),
		table.Entry("non-string query", `{"query": 1}`, request.InvalidRequestBody),
		table.Entry("non-string operationName", `{"query": "{ a }", "operationName": []}`, request.InvalidRequestBody),
		table.Entry("non-object variables", `{"query": "{ a }", "variables": "{}"}`, request.InvalidRequestBody),
		table.Entry("non-object extensions", `{"query": "{ a }", "extensions": [1]}`, request.InvalidRequestBody),
		table.Entry("non-string sha256Hash",
			`{"extensions": {"persistedQuery": {"sha256Hash": 1}}}`, request.InvalidRequestBody),
	)

	Describe("batch", func() {
		It("returns results in request order", func() {
			const n = 20
			var b strings.Builder
			b.WriteString("[")
			for i := 0; i < n; i++ {
				if i > 0 {
					b.WriteString(",")
				}
				fmt.Fprintf(&b, `{"query": "{ field%d }", "operationName": "op%d"}`, i, i)
			}
			b.WriteString("]")

			p = request.NewParser(request.WithBatchConcurrency(3))
			results, err := p.ParseRequest(ctx, []byte(b.String()))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(results).Should(HaveLen(n))
			for i, result := range results {
				Expect(result.OperationName).Should(Equal(fmt.Sprintf("op%d", i)))
				operation := result.Document.Definitions[0].(*ast.OperationDefinition)
				field := operation.SelectionSet.Selections[0].(*ast.Field)
				Expect(field.Name.Value).Should(Equal(fmt.Sprintf("field%d", i)))
			}
		})

		It("parses identical queries once", func() {
			results, err := p.ParseRequest(ctx, []byte(`[
				{"query": "{ hello }"},
				{"query": "{ hello }"},
				{"query": "{ hello }"}
			]`))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(results).Should(HaveLen(3))
			Expect(results[1].Document).Should(BeIdenticalTo(results[0].Document))
			Expect(results[2].Document).Should(BeIdenticalTo(results[0].Document))
			Expect(parseCount).Should(Equal(int32(1)))
		})

		It("fails the whole batch with index of the failing request", func() {
			results, err := p.ParseRequest(ctx, []byte(`[
				{"query": "{ a }"},
				{"query": "{ b }"},
				{"namedQuery": "missing"},
				{"query": "{ c }"}
			]`))
			Expect(results).Should(BeNil())
			e := expectRequestError(err, request.DocumentNotFound)
			Expect(e.Index).Should(Equal(2))
			Expect(e.Key).Should(Equal("missing"))
		})

		It("honors context cancellation", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()
			_, err := p.ParseRequest(cancelled, []byte(`[{"query": "{ a }"}, {"query": "{ b }"}]`))
			Expect(err).Should(Equal(context.Canceled))
		})
	})
})

var _ = Describe("Hasher", func() {
	It("computes SHA-256 in lowercase hex", func() {
		hasher := request.SHA256Hasher{}
		Expect(hasher.Name()).Should(Equal("sha256"))
		Expect(hasher.Hash([]byte("{ hello }"))).Should(Equal(helloHash))
		Expect(hasher.Hash(nil)).Should(Equal(
			"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"))
	})

	It("computes FarmHash fingerprints", func() {
		hasher := request.FarmHasher{}
		Expect(hasher.Name()).Should(Equal("farm"))
		a := hasher.Hash([]byte("{ a }"))
		Expect(a).Should(MatchRegexp("^[0-9a-f]{32}$"))
		Expect(hasher.Hash([]byte("{ a }"))).Should(Equal(a))
		Expect(hasher.Hash([]byte("{ b }"))).ShouldNot(Equal(a))
	})

	It("looks up hasher by name", func() {
		Expect(request.HasherByName("")).Should(Equal(request.SHA256Hasher{}))
		Expect(request.HasherByName("sha256")).Should(Equal(request.SHA256Hasher{}))
		Expect(request.HasherByName("farm")).Should(Equal(request.FarmHasher{}))
		_, err := request.HasherByName("md5")
		Expect(err).Should(MatchError(`request: unknown hash algorithm "md5"`))
		_, err = request.HasherByName("fram")
		Expect(err).Should(MatchError(`request: unknown hash algorithm "fram"; did you mean "farm"?`))
	})
})
