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

	"github.com/botobag/gqlsyntax/graphql/request"

	"github.com/spf13/cobra"
)

func newHashCmd(rootOpts *rootOptions) *cobra.Command {
	var algorithm string

	cmd := &cobra.Command{
		Use:   "hash FILE",
		Short: "Print the cache key of a query",
		Long: `Print the key under which the server caches the document of the query in FILE. With
the sha256 algorithm, the key is also the sha256Hash of automatic persisted queries. Use "-" as
FILE to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := rootOpts.loadConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("algorithm") {
				algorithm = conf.Cache.Hash
			}

			hasher, err := request.HasherByName(algorithm)
			if err != nil {
				return err
			}

			source, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), hasher.Hash(source.Body()))
			return nil
		},
	}

	cmd.Flags().StringVar(&algorithm, "algorithm", "sha256", "Hash algorithm, one of [sha256, farm].")

	return cmd
}
