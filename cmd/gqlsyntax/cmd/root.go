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

// Package cmd implements the gqlsyntax command line tool.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/botobag/gqlsyntax/config"
	"github.com/botobag/gqlsyntax/graphql/token"
	"github.com/botobag/gqlsyntax/log"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Default locations of the configuration file
var defaultConfigPaths = []string{
	"gqlsyntax.json",
	"/etc/gqlsyntax/gqlsyntax.json",
}

// options shared by all subcommands
type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string
}

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	var opts rootOptions

	rootCmd := &cobra.Command{
		Use:   "gqlsyntax",
		Short: "gqlsyntax: GraphQL tokenizer, parser and request front-end",
		Long: `
gqlsyntax tokenizes and parses GraphQL documents, computes the cache keys of
persisted queries and serves a GraphQL endpoint that parses requests into
cached documents.
`,
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "",
		"Configuration file. Takes precedence over default values, but is "+
			"overridden to values set with environment variables and flags.")
	flags.StringVar(&opts.logLevel, "log-level", "",
		"Log level, one of [debug, info, warn, error]. Overrides the configuration.")
	flags.StringVar(&opts.logFormat, "log-format", "",
		"Log format, one of [text, json]. Overrides the configuration.")

	rootCmd.AddCommand(
		newLexCmd(&opts),
		newParseCmd(&opts),
		newHashCmd(&opts),
		newServeCmd(&opts),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig loads configuration from the file given by --config (or the default locations) and
// environment, and sets up the logger.
func (opts *rootOptions) loadConfig() (*config.Config, error) {
	conf := config.Default()

	paths := defaultConfigPaths
	if len(opts.configPath) > 0 {
		if _, err := os.Stat(opts.configPath); err != nil {
			return nil, errors.Wrap(err, "reading config")
		}
		paths = []string{opts.configPath}
	}

	if err := config.Load(paths, &conf); err != nil {
		return nil, errors.Wrap(err, "loading config")
	}

	if len(opts.logLevel) > 0 {
		conf.LogLevel = opts.logLevel
	}
	if len(opts.logFormat) > 0 {
		conf.LogFormat = opts.logFormat
	}

	return &conf, nil
}

// newLogger returns the logger configured by conf.
func newLogger(conf *config.Config, out io.Writer) log.FieldLogger {
	logger := log.New(out, log.ParseLevel(conf.LogLevel))
	logger.Formatter = log.NewFormatter(conf.LogFormat)
	return logger
}

// readSource reads the GraphQL source named by path; "-" reads stdin.
func readSource(cmd *cobra.Command, path string) (*token.Source, error) {
	var (
		body []byte
		err  error
	)
	if path == "-" {
		body, err = io.ReadAll(cmd.InOrStdin())
		path = "<stdin>"
	} else {
		body, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return token.NewSourceFromBytes(body, token.SourceName(path)), nil
}

// intFlag returns the value of flag name if it was set on the command line, otherwise def.
func intFlag(flags *pflag.FlagSet, name string, def int) int {
	if flags.Changed(name) {
		if v, err := flags.GetInt(name); err == nil {
			return v
		}
	}
	return def
}

// sourceError formats err with the name of source.
func sourceError(source *token.Source, err error) error {
	return fmt.Errorf("%s: %w", source.Name(), err)
}
