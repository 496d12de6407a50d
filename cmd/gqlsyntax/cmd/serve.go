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
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/botobag/gqlsyntax/config"
	"github.com/botobag/gqlsyntax/graphql/ast"
	"github.com/botobag/gqlsyntax/graphql/cache"
	"github.com/botobag/gqlsyntax/graphql/handler"
	"github.com/botobag/gqlsyntax/graphql/request"
	"github.com/botobag/gqlsyntax/log"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

// documentExecutor answers each request with the document in its canonical GraphQL form. The
// server thereby acts as a syntax checker and normalizer for the queries sent to it.
func documentExecutor(ctx context.Context, req *request.ParsedRequest) (interface{}, error) {
	return map[string]interface{}{
		"document":      ast.Print(req.Document),
		"operationName": req.OperationName,
		"queryHash":     req.QueryHash,
	}, nil
}

// newServer creates the mux that serves GraphQL over HTTP and WebSocket and the metrics.
func newServer(conf *config.Config, logger log.FieldLogger, registry *prometheus.Registry) (http.Handler, error) {
	documentCache, err := cache.New(cache.Backend(conf.Cache.Backend), conf.Cache.MaxEntries, logger)
	if err != nil {
		return nil, errors.Wrap(err, "creating document cache")
	}
	instrumentedCache, err := cache.Instrument(documentCache, "documents", registry)
	if err != nil {
		return nil, errors.Wrap(err, "instrumenting document cache")
	}

	hasher, err := request.HasherByName(conf.Cache.Hash)
	if err != nil {
		return nil, err
	}

	parser := request.NewParser(
		request.WithCache(instrumentedCache),
		request.WithHasher(hasher),
		request.WithParseOptions(parserOptions(&conf.Parser)...),
		request.WithBatchConcurrency(conf.BatchConcurrency),
		request.VerifyHash(conf.VerifyQueryHash),
	)

	executor := handler.ExecutorFunc(documentExecutor)

	httpHandler, err := handler.New(executor,
		handler.RequestParser(parser),
		handler.MaxBodySize(uint(conf.MaxBodySize)),
		handler.Logger(logger),
		handler.Metrics(registry),
	)
	if err != nil {
		return nil, err
	}

	wsHandler, err := handler.NewWebSocketHandler(parser, executor, handler.WebSocketLogger(logger))
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle(conf.GraphQLPath, httpHandler)
	mux.Handle(conf.WebSocketPath, wsHandler)
	mux.Handle(conf.MetricsPath, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	return mux, nil
}

func newServeCmd(rootOpts *rootOptions) *cobra.Command {
	var (
		listenAddress string
		cacheBackend  string
		cacheSize     int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the GraphQL endpoint",
		Long: `Run an HTTP server that parses GraphQL requests (including batches and persisted
queries) over HTTP and WebSocket and answers with the normalized documents. Prometheus metrics
are exposed at the metrics path.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := rootOpts.loadConfig()
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("listen") {
				conf.ListenAddress = listenAddress
			}
			if flags.Changed("cache-backend") {
				conf.Cache.Backend = cacheBackend
			}
			conf.Cache.MaxEntries = intFlag(flags, "cache-size", conf.Cache.MaxEntries)
			if err := conf.Validate(); err != nil {
				return err
			}

			logger := newLogger(conf, cmd.ErrOrStderr())

			registry := prometheus.NewRegistry()
			registry.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)

			mux, err := newServer(conf, logger, registry)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return runServer(ctx, &http.Server{
				Addr:              conf.ListenAddress,
				Handler:           mux,
				ReadHeaderTimeout: 10 * time.Second,
			}, logger)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&listenAddress, "listen", ":8080", "Address to listen on.")
	flags.StringVar(&cacheBackend, "cache-backend", "lru", "Document cache, one of [map, lru, ristretto, none].")
	flags.IntVar(&cacheSize, "cache-size", 1024, "Maximum number of cached documents.")

	return cmd
}

// runServer serves until ctx is done and then shuts server down gracefully.
func runServer(ctx context.Context, server *http.Server, logger log.FieldLogger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.WithField("address", server.Addr).Info("serving GraphQL")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "serving")
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutting down")
	}
	return nil
}
