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

package cmd

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"

	"github.com/botobag/gqlsyntax/config"
	"github.com/botobag/gqlsyntax/graphql/request"
	"github.com/botobag/gqlsyntax/log"

	"github.com/prometheus/client_golang/prometheus"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func hashOf(query string) string {
	return request.SHA256Hasher{}.Hash([]byte(query))
}

var _ = Describe("gqlsyntax", func() {
	var dir string

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "gqlsyntax-cmd")
		Expect(err).ShouldNot(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(dir)
	})

	writeFile := func(name string, content string) string {
		path := filepath.Join(dir, name)
		Expect(os.WriteFile(path, []byte(content), 0o600)).Should(Succeed())
		return path
	}

	run := func(stdin string, args ...string) (string, error) {
		var out bytes.Buffer
		rootCmd := NewRootCmd()
		rootCmd.SetArgs(append([]string{"--config", writeFile("config.json", "{}")}, args...))
		rootCmd.SetIn(strings.NewReader(stdin))
		rootCmd.SetOut(&out)
		rootCmd.SetErr(&out)
		err := rootCmd.Execute()
		return out.String(), err
	}

	Describe("lex", func() {
		It("prints tokens", func() {
			out, err := run("{ hello(id: 4) }\n", "lex", "-")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(out).Should(Equal(strings.Join([]string{
				"1:1 {",
				`1:3 Name "hello"`,
				"1:8 (",
				`1:9 Name "id"`,
				"1:11 :",
				`1:13 Int "4"`,
				"1:14 )",
				"1:16 }",
				"2:1 <EOF>",
				"",
			}, "\n")))
		})

		It("prints comments on request", func() {
			out, err := run("# hi\n{ a }", "lex", "--comments", "-")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(out).Should(HavePrefix(`1:1 Comment " hi"` + "\n"))
		})

		It("reports syntax error with file name", func() {
			path := writeFile("bad.graphql", "{ \"a }")
			out, err := run("", "lex", path)
			Expect(err).Should(HaveOccurred())
			Expect(err.Error()).Should(HavePrefix(path + ": "))
			Expect(err.Error()).Should(ContainSubstring("Unterminated string."))
			Expect(out).Should(ContainSubstring("Error:"))
		})

		It("limits tokens", func() {
			_, err := run("{ a b c }", "lex", "--max-tokens", "3", "-")
			Expect(err).Should(HaveOccurred())
			Expect(err.Error()).Should(ContainSubstring("Document contains more than 3 tokens"))
		})
	})

	Describe("parse", func() {
		It("prints document", func() {
			path := writeFile("query.graphql", "query   Q{a  b}")
			out, err := run("", "parse", "--print", path)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(out).Should(Equal("query Q {\n  a\n  b\n}\n"))
		})

		It("prints AST in JSON", func() {
			out, err := run("{ a }", "parse", "-")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(out).Should(ContainSubstring(`"Definitions"`))
			Expect(out).Should(ContainSubstring(`"Value": "a"`))
			Expect(out).Should(ContainSubstring(`"Loc"`))
		})

		It("omits locations on request", func() {
			out, err := run("{ a }", "parse", "--no-location", "-")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(out).Should(ContainSubstring(`"Loc": null`))
			Expect(out).ShouldNot(ContainSubstring(`"Start"`))
		})

		It("limits depth", func() {
			_, err := run("{ a { b { c } } }", "parse", "--max-depth", "2", "-")
			Expect(err).Should(HaveOccurred())
			Expect(err.Error()).Should(ContainSubstring("maximum nesting depth of 2"))
		})

		It("requires a file", func() {
			_, err := run("", "parse")
			Expect(err).Should(HaveOccurred())
		})
	})

	Describe("hash", func() {
		It("prints sha256 by default", func() {
			out, err := run("{ hello }", "hash", "-")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(out).Should(Equal("001c3174e099bd72b729d0c0a529ba9f5a740c446e2a6e1d71b283cb84ec3065\n"))
		})

		It("supports farm", func() {
			out, err := run("{ hello }", "hash", "--algorithm", "farm", "-")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(out).Should(MatchRegexp("^[0-9a-f]{32}\n$"))
		})

		It("rejects unknown algorithm", func() {
			_, err := run("{ hello }", "hash", "--algorithm", "md5", "-")
			Expect(err).Should(MatchError(`request: unknown hash algorithm "md5"`))
		})
	})

	It("prints version", func() {
		out, err := run("", "version")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(out).Should(HavePrefix("gqlsyntax dev ("))
	})

	It("fails on missing config file", func() {
		rootCmd := NewRootCmd()
		rootCmd.SetArgs([]string{"--config", filepath.Join(dir, "missing.json"), "version"})
		rootCmd.SetOut(&bytes.Buffer{})
		rootCmd.SetErr(&bytes.Buffer{})
		// version doesn't read configuration.
		Expect(rootCmd.Execute()).Should(Succeed())

		rootCmd = NewRootCmd()
		rootCmd.SetArgs([]string{"--config", filepath.Join(dir, "missing.json"), "hash", "-"})
		rootCmd.SetIn(strings.NewReader("{ a }"))
		rootCmd.SetOut(&bytes.Buffer{})
		rootCmd.SetErr(&bytes.Buffer{})
		Expect(rootCmd.Execute()).ShouldNot(Succeed())
	})

	Describe("server", func() {
		var server *httptest.Server

		BeforeEach(func() {
			conf := config.Default()
			mux, err := newServer(&conf, log.Discard(), prometheus.NewRegistry())
			Expect(err).ShouldNot(HaveOccurred())
			server = httptest.NewServer(mux)
		})

		AfterEach(func() {
			server.Close()
		})

		post := func(body string) (int, string) {
			resp, err := http.Post(server.URL+"/graphql", "application/json", strings.NewReader(body))
			Expect(err).ShouldNot(HaveOccurred())
			defer resp.Body.Close()
			var b bytes.Buffer
			_, err = b.ReadFrom(resp.Body)
			Expect(err).ShouldNot(HaveOccurred())
			return resp.StatusCode, b.String()
		}

		It("answers with normalized document", func() {
			status, body := post(`{"query": "query Q{a  b}", "operationName": "Q"}`)
			Expect(status).Should(Equal(http.StatusOK))
			Expect(body).Should(MatchJSON(`{
				"data": {
					"document": "query Q {\n  a\n  b\n}\n",
					"operationName": "Q",
					"queryHash": "` + hashOf("query Q{a  b}") + `"
				}
			}`))
		})

		It("exposes metrics", func() {
			post(`{"query": "{ a }"}`)
			post(`{"query": "{ a }"}`)

			resp, err := http.Get(server.URL + "/metrics")
			Expect(err).ShouldNot(HaveOccurred())
			defer resp.Body.Close()
			var b bytes.Buffer
			_, err = b.ReadFrom(resp.Body)
			Expect(err).ShouldNot(HaveOccurred())

			Expect(b.String()).Should(ContainSubstring(`gqlsyntax_http_requests_total{code="200"} 2`))
			Expect(b.String()).Should(ContainSubstring(`gqlsyntax_document_cache_hits_total{cache="documents"} 1`))
		})
	})
})
