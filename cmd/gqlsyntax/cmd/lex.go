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
	"fmt"

	"github.com/botobag/gqlsyntax/graphql/lexer"
	"github.com/botobag/gqlsyntax/graphql/token"

	"github.com/spf13/cobra"
)

func newLexCmd(rootOpts *rootOptions) *cobra.Command {
	var (
		maxTokens    int
		withComments bool
	)

	cmd := &cobra.Command{
		Use:   "lex FILE",
		Short: "Print the tokens of a GraphQL document",
		Long: `Print the tokens of a GraphQL document, one per line, as "line:column Kind "value"".
Use "-" as FILE to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := rootOpts.loadConfig()
			if err != nil {
				return err
			}

			source, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}

			tokens, err := lexer.Tokenize(source,
				lexer.MaxTokens(intFlag(cmd.Flags(), "max-tokens", conf.Parser.MaxTokens)))
			if err != nil {
				return sourceError(source, err)
			}

			out := cmd.OutOrStdout()
			for i := range tokens {
				tok := tokens.At(i)
				switch tok.Kind {
				case token.KindSOF:
					continue
				case token.KindComment:
					if !withComments {
						continue
					}
				}
				fmt.Fprintf(out, "%d:%d %s\n", tok.Line, tok.Column, tok.Description())
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&maxTokens, "max-tokens", 0,
		"Maximum number of tokens; Zero means unlimited. Defaults to parser.max_tokens in config.")
	cmd.Flags().BoolVar(&withComments, "comments", false, "Also print comment tokens.")

	return cmd
}
