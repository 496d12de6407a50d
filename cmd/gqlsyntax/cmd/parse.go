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
	"github.com/botobag/gqlsyntax/config"
	"github.com/botobag/gqlsyntax/graphql/ast"
	"github.com/botobag/gqlsyntax/graphql/parser"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
)

// parserOptions converts the parser settings into parser options.
func parserOptions(conf *config.ParserConfig) []parser.Option {
	var opts []parser.Option
	if conf.MaxTokens > 0 {
		opts = append(opts, parser.MaxTokens(conf.MaxTokens))
	}
	if conf.MaxDepth > 0 {
		opts = append(opts, parser.MaxDepth(conf.MaxDepth))
	}
	if conf.NoLocations {
		opts = append(opts, parser.NoLocations())
	}
	return opts
}

func newParseCmd(rootOpts *rootOptions) *cobra.Command {
	var (
		noLocation bool
		printDoc   bool
		maxTokens  int
		maxDepth   int
	)

	cmd := &cobra.Command{
		Use:   "parse FILE",
		Short: "Parse a GraphQL document",
		Long: `Parse a GraphQL document and print its AST in JSON, or print the document back in
GraphQL with --print. Use "-" as FILE to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := rootOpts.loadConfig()
			if err != nil {
				return err
			}

			parserConf := conf.Parser
			parserConf.MaxTokens = intFlag(cmd.Flags(), "max-tokens", parserConf.MaxTokens)
			parserConf.MaxDepth = intFlag(cmd.Flags(), "max-depth", parserConf.MaxDepth)
			if noLocation {
				parserConf.NoLocations = true
			}

			source, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}

			document, err := parser.Parse(source, parserOptions(&parserConf)...)
			if err != nil {
				return sourceError(source, err)
			}

			out := cmd.OutOrStdout()
			if printDoc {
				return ast.Fprint(out, document)
			}

			data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(document, "", "  ")
			if err != nil {
				return err
			}
			_, err = out.Write(append(data, '\n'))
			return err
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&noLocation, "no-location", false, "Don't record source locations in the AST.")
	flags.BoolVar(&printDoc, "print", false, "Print the document in GraphQL instead of its AST in JSON.")
	flags.IntVar(&maxTokens, "max-tokens", 0,
		"Maximum number of tokens; Zero means unlimited. Defaults to parser.max_tokens in config.")
	flags.IntVar(&maxDepth, "max-depth", 0,
		"Maximum nesting depth; Zero means unlimited. Defaults to parser.max_depth in config.")

	return cmd
}
