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
	"context"
	"errors"
	"fmt"

	"github.com/botobag/gqlsyntax/graphql"
	"github.com/botobag/gqlsyntax/graphql/request"

	jsoniter "github.com/json-iterator/go"
)

// Executor runs a parsed request. The handlers in this package deliver documents to it and present
// what it returns as the "data" of the response.
type Executor interface {
	Execute(ctx context.Context, req *request.ParsedRequest) (interface{}, error)
}

// ExecutorFunc is an adapter to allow the use of ordinary functions as Executor.
type ExecutorFunc func(ctx context.Context, req *request.ParsedRequest) (interface{}, error)

// Execute implements Executor by calling f(ctx, req).
func (f ExecutorFunc) Execute(ctx context.Context, req *request.ParsedRequest) (interface{}, error) {
	return f(ctx, req)
}

// LLHandler is a low-level building block for serving parsed GraphQL requests. It runs middlewares
// and then the Executor on each request. It is shared by the HTTP and WebSocket handlers.
type LLHandler struct {
	parser   *request.Parser
	executor Executor

	// Middlewares to be applied before executing a Request
	middlewares []RequestMiddleware
}

// LLConfig contains configuration to set up a LLHandler.
type LLConfig struct {
	// Parser for request envelopes; A parser with default settings is created if not given.
	Parser *request.Parser

	Executor Executor

	// Middlewares to be applied before executing a Request
	Middlewares []RequestMiddleware
}

var errMissingExecutor = errors.New("gqlsyntax/handler: must specify an executor")

// NewLLHandler creates a LLHandler from given configuration.
func NewLLHandler(config *LLConfig) (*LLHandler, error) {
	if config.Executor == nil {
		return nil, errMissingExecutor
	}

	parser := config.Parser
	if parser == nil {
		parser = request.NewParser()
	}

	return &LLHandler{
		parser:      parser,
		executor:    config.Executor,
		middlewares: config.Middlewares,
	}, nil
}

// Parser returns the request parser of the handler.
func (handler *LLHandler) Parser() *request.Parser {
	return handler.parser
}

// Request contains parameter required by Serve.
type Request struct {
	Ctx    context.Context
	Parsed *request.ParsedRequest
}

// Result is the response to a Request.
type Result struct {
	Data   interface{}
	Errors graphql.Errors
}

// MarshalJSON implements json.Marshaler.
func (result *Result) MarshalJSON() ([]byte, error) {
	stream := jsoniter.ConfigDefault.BorrowStream(nil)
	defer jsoniter.ConfigDefault.ReturnStream(stream)

	result.MarshalJSONTo(stream)
	if stream.Error != nil {
		return nil, stream.Error
	}
	return append([]byte(nil), stream.Buffer()...), nil
}

// MarshalJSONTo writes result in the GraphQL response format to stream. "data" is omitted when an
// error occurred before execution.
func (result *Result) MarshalJSONTo(stream *jsoniter.Stream) {
	stream.WriteObjectStart()

	needComma := false
	if result.Data != nil || !result.Errors.HaveOccurred() {
		stream.WriteObjectField("data")
		stream.WriteVal(result.Data)
		needComma = true
	}

	if result.Errors.HaveOccurred() {
		if needComma {
			stream.WriteMore()
		}
		stream.WriteObjectField("errors")
		stream.WriteVal(result.Errors.Errors)
	}

	stream.WriteObjectEnd()
}

// RequestMiddleware applies changes on Request before it gets executed. It can be used to check
// the document (e.g., reject mutations over GET) or to attach values to the context.
type RequestMiddleware interface {
	// Apply modifies request. next specifies the next action to do after applying the middleware.
	Apply(request *Request, next *RequestMiddlewareNext)
}

// RequestMiddlewareFunc is an adapter to allow the use of ordinary functions as RequestMiddleware.
type RequestMiddlewareFunc func(request *Request, next *RequestMiddlewareNext)

// Apply implements RequestMiddleware.
func (f RequestMiddlewareFunc) Apply(request *Request, next *RequestMiddlewareNext) {
	f(request, next)
}

// RequestMiddlewareNext is provided to a RequestMiddleware to specify the next action to do.
type RequestMiddlewareNext struct {
	middlewares []RequestMiddleware

	// The index of middleware to be applied when Next is called.
	nextIndex int

	// The result after applying middlewares
	result interface{} /* Should be either *Request or *Result */
}

// Next continues applying the next middleware in the chain.
func (next *RequestMiddlewareNext) Next(request *Request) {
	switch next.result.(type) {
	case *Request:
		panic("calling Next multiple times is not allowed")
	case *Result:
		panic("cannot call Next after one of NextError or NextResult is called")
	case nil:
		/* Apply next middleware or return */
	default:
		panic(fmt.Errorf("unexpected result type: %T", next.result))
	}

	middlewares := next.middlewares
	if next.nextIndex >= len(middlewares) {
		// All middlewares has been applied.
		next.result = request
		return
	}

	// Take the next middleware to be applied.
	nextMiddleware := middlewares[next.nextIndex]
	// Increment index.
	next.nextIndex++
	// Apply the middleware.
	nextMiddleware.Apply(request, next)

	if next.result == nil {
		panic(fmt.Errorf(`"%T" must end with one of Next, NextError or NextResult on return`,
			nextMiddleware))
	}
}

// NextError stops applying rest middlewares in the chain and sends a Result that includes given
// error.
func (next *RequestMiddlewareNext) NextError(err *graphql.Error) {
	next.NextResult(&Result{
		Errors: graphql.ErrorsOf(err),
	})
}

// NextResult stops applying rest middlewares in the chain and sends the result.
func (next *RequestMiddlewareNext) NextResult(result *Result) {
	switch next.result.(type) {
	case *Request:
		panic("calling NextError or NextResult is not allowed on returning from Next")

	case *Result:
		panic("calling NextError or NextResult multiple times is not allowed")

	case nil:
		next.result = result

	default:
		panic(fmt.Errorf("unexpected result type: %T", next.result))
	}
}

// Serve executes the request. The given request object must not be nil.
func (handler *LLHandler) Serve(request *Request) *Result {
	middlewares := handler.middlewares
	if len(middlewares) > 0 {
		next := RequestMiddlewareNext{
			middlewares: middlewares,
		}
		// Call Next to apply the middleware chain.
		next.Next(request)

		switch result := next.result.(type) {
		case *Request:
			request = result

		case *Result:
			return result

		default:
			panic(fmt.Errorf("unexpected result type: %T", next.result))
		}
	}

	data, err := handler.executor.Execute(request.Ctx, request.Parsed)
	result := &Result{
		Data: data,
	}
	if err != nil {
		result.Errors.Append(executionError(err))
	}
	return result
}

// executionError converts an error returned by Executor for response.
func executionError(err error) error {
	var e *graphql.Error
	if errors.As(err, &e) {
		return e
	}
	return graphql.NewError(err.Error(), err, graphql.ErrKindExecution)
}
