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
	"errors"
	"net/http"

	"github.com/botobag/gqlsyntax/graphql"
	"github.com/botobag/gqlsyntax/graphql/request"

	jsoniter "github.com/json-iterator/go"
)

// ErrorPresenter presents an error occurred before execution to a http.ResponseWriter.
type ErrorPresenter interface {
	// Write sends the given error to w.
	Write(w http.ResponseWriter, r *http.Request, err error)
}

// Values of "code" in error extensions
const (
	CodePersistedQueryNotFound = "PERSISTED_QUERY_NOT_FOUND"
	CodeGraphQLParseFailed     = "GRAPHQL_PARSE_FAILED"
	CodeBadRequest             = "BAD_REQUEST"
	CodeInternalServerError    = "INTERNAL_SERVER_ERROR"
)

// Apollo clients resend the full query upon an error with this message.
const persistedQueryNotFoundMessage = "PersistedQueryNotFound"

// PresentError converts err into a GraphQL error for response together with the HTTP status code.
func PresentError(err error) (int, *graphql.Error) {
	var parseErr *HTTPRequestParseError
	if errors.As(err, &parseErr) {
		return parseErr.StatusCode, presentableError(parseErr.Error(), parseErr, CodeBadRequest)
	}

	var requestErr *request.Error
	if errors.As(err, &requestErr) {
		switch requestErr.Code {
		case request.DocumentNotFound:
			return http.StatusBadRequest, presentableError(
				persistedQueryNotFoundMessage, requestErr, CodePersistedQueryNotFound)

		case request.InvalidQuery:
			var syntaxErr *graphql.Error
			if errors.As(requestErr.Err, &syntaxErr) {
				return http.StatusBadRequest, presentableError(syntaxErr.Message, syntaxErr, CodeGraphQLParseFailed)
			}
			return http.StatusBadRequest, presentableError(requestErr.Error(), requestErr, CodeGraphQLParseFailed)

		default:
			return http.StatusBadRequest, presentableError(requestErr.Error(), requestErr, CodeBadRequest)
		}
	}

	var gqlErr *graphql.Error
	if errors.As(err, &gqlErr) && gqlErr.Kind == graphql.ErrKindSyntax {
		return http.StatusBadRequest, presentableError(gqlErr.Message, gqlErr, CodeGraphQLParseFailed)
	}

	return http.StatusInternalServerError, presentableError("Internal server error", err, CodeInternalServerError)
}

func presentableError(message string, err error, code string) *graphql.Error {
	kind := graphql.ErrKindRequest
	if code == CodeInternalServerError {
		kind = graphql.ErrKindInternal
	}
	return graphql.NewError(message, err, kind, graphql.ErrorExtensions{
		"code": code,
	}).(*graphql.Error)
}

// DefaultErrorPresenter implements an ErrorPresenter which is default used by HTTP handler when no
// error presenter is provided. It writes {"errors": [...]} with the status given by PresentError.
type DefaultErrorPresenter struct{}

// Write implements ErrorPresenter.
func (DefaultErrorPresenter) Write(w http.ResponseWriter, r *http.Request, err error) {
	status, gqlErr := PresentError(err)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)

	stream := jsoniter.ConfigDefault.BorrowStream(w)
	defer jsoniter.ConfigDefault.ReturnStream(stream)

	result := Result{
		Errors: graphql.ErrorsOf(gqlErr),
	}
	result.MarshalJSONTo(stream)
	stream.Flush()
}
