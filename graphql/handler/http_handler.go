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

package handler

import (
	"net/http"
	"time"

	"github.com/botobag/gqlsyntax/graphql/request"
	"github.com/botobag/gqlsyntax/log"

	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus"
)

// httpHandler implements a http.Handler which is based on LLHandler to serve GraphQL queries from
// HTTP requests.
type httpHandler struct {
	*LLHandler

	config httpHandlerConfig

	// The handler for presenting errors occurred before execution; It doesn't handle errors
	// occurred during execution (in which ResultPresenter is responsible for.)
	errorPresenter ErrorPresenter

	// The handles for writing responses; If not given, DefaultResultPresenter is used.
	resultPresenter ResultPresenter

	logger log.FieldLogger
}

// httpHandlerConfig contains configuration for a httpHandler.
type httpHandlerConfig struct {
	LLConfig

	httpRequestParserOptions ParseHTTPRequestOptions

	errorPresenter  ErrorPresenter
	resultPresenter ResultPresenter

	logger     log.FieldLogger
	registerer prometheus.Registerer
}

// Option configures httpHandler
type Option func(h *httpHandlerConfig)

// RequestParser sets the parser for request envelopes. It decides the document cache, the hash
// algorithm and the parser limits.
func RequestParser(parser *request.Parser) Option {
	return func(h *httpHandlerConfig) {
		h.Parser = parser
	}
}

// MaxBodySize sets the maximum number of bytes to be read from request body for ParseHTTPRequest.
func MaxBodySize(size uint) Option {
	return func(h *httpHandlerConfig) {
		h.httpRequestParserOptions.MaxBodySize = size
	}
}

// Middlewares appends middlewares to be applied before executing requests.
func Middlewares(middlewares ...RequestMiddleware) Option {
	return func(h *httpHandlerConfig) {
		h.Middlewares = append(h.Middlewares, middlewares...)
	}
}

// OverrideErrorPresenter overrides DefaultErrorPresenter.
func OverrideErrorPresenter(errorPresenter ErrorPresenter) Option {
	return func(h *httpHandlerConfig) {
		h.errorPresenter = errorPresenter
	}
}

// OverrideResultPresenter overrides DefaultResultPresenter.
func OverrideResultPresenter(resultPresenter ResultPresenter) Option {
	return func(h *httpHandlerConfig) {
		h.resultPresenter = resultPresenter
	}
}

// Logger sets the logger for the handler.
func Logger(logger log.FieldLogger) Option {
	return func(h *httpHandlerConfig) {
		h.logger = logger
	}
}

// Metrics instruments the handler with request counter and duration histogram registered to the
// given registerer.
func Metrics(registerer prometheus.Registerer) Option {
	return func(h *httpHandlerConfig) {
		h.registerer = registerer
	}
}

// New creates a net/http.Handler which parses GraphQL requests and serves them with executor.
func New(executor Executor, opts ...Option) (http.Handler, error) {
	// Apply Options on config.
	config := httpHandlerConfig{
		LLConfig: LLConfig{
			Executor: executor,
		},

		httpRequestParserOptions: ParseHTTPRequestOptions{
			MaxBodySize: 1 << 20, // 1MB
		},
	}
	for _, opt := range opts {
		opt(&config)
	}

	baseHandler, err := NewLLHandler(&config.LLConfig)
	if err != nil {
		return nil, err
	}

	resultPresenter := config.resultPresenter
	if resultPresenter == nil {
		resultPresenter = DefaultResultPresenter{}
	}

	errorPresenter := config.errorPresenter
	if errorPresenter == nil {
		errorPresenter = DefaultErrorPresenter{}
	}

	logger := config.logger
	if logger == nil {
		logger = log.Get()
	}

	h := &httpHandler{
		LLHandler:       baseHandler,
		config:          config,
		errorPresenter:  errorPresenter,
		resultPresenter: resultPresenter,
		logger:          log.WithPrefix(logger, "handler"),
	}

	if config.registerer == nil {
		return h, nil
	}
	return instrumentHandler(h, config.registerer)
}

func (h *httpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	envelope, err := ParseHTTPRequest(r, &h.config.httpRequestParserOptions)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	parsed, err := h.Parser().ParseRequest(r.Context(), envelope)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	results := make([]*Result, len(parsed))
	for i, req := range parsed {
		results[i] = h.Serve(&Request{
			Ctx:    r.Context(),
			Parsed: req,
		})
	}

	h.resultPresenter.Write(w, r, results, isBatch(envelope))

	h.logger.WithFields(log.Fields{
		"method":   r.Method,
		"requests": len(parsed),
		"duration": time.Since(start),
	}).Debug("served GraphQL request")
}

func (h *httpHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.WithError(err).WithField("method", r.Method).Debug("rejected GraphQL request")
	h.errorPresenter.Write(w, r, err)
}

// ResultPresenter presents results to a http.ResponseWriter.
type ResultPresenter interface {
	// Write writes results to w. batch is true if the requests came in an array.
	Write(w http.ResponseWriter, r *http.Request, results []*Result, batch bool)
}

// DefaultResultPresenter implements a ResultPresenter used by HTTP handler to present results in
// JSON.
type DefaultResultPresenter struct{}

// Write implements ResultPresenter.
func (DefaultResultPresenter) Write(w http.ResponseWriter, r *http.Request, results []*Result, batch bool) {
	// Serialize result to JSON encoding.
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)

	stream := jsoniter.ConfigDefault.BorrowStream(w)
	defer jsoniter.ConfigDefault.ReturnStream(stream)

	if batch {
		stream.WriteArrayStart()
		for i, result := range results {
			if i > 0 {
				stream.WriteMore()
			}
			result.MarshalJSONTo(stream)
		}
		stream.WriteArrayEnd()
	} else if len(results) > 0 {
		results[0].MarshalJSONTo(stream)
	}

	stream.Flush()
}
