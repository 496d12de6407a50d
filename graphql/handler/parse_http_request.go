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
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"

	"github.com/botobag/gqlsyntax/internal/unsafe"

	jsoniter "github.com/json-iterator/go"
)

// If the value doesn't contains value for the given key, return an empty string without error.
// If there're multiple values associated with the key, return an error. Otherwise, return the
// single value.
func getOneValue(values url.Values, key string) (string, error) {
	v := values[key]
	switch len(v) {
	case 0:
		return "", nil
	case 1:
		return v[0], nil
	default:
		return "", fmt.Errorf(`multiple values are provided to "%s", but only one expected`, key)
	}
}

// Fields read from URL values; "variables" and "extensions" carry JSON text.
var (
	stringValueKeys = []string{"query", "operationName", "namedQuery", "id"}
	jsonValueKeys   = []string{"variables", "extensions"}
)

// Build a request envelope in JSON from url.Values. r is used for including in error value to
// provide verbose context for debugging.
func parseRequestFromValues(
	r *http.Request,
	options *ParseHTTPRequestOptions,
	values url.Values) ([]byte, error) {

	stream := jsoniter.ConfigDefault.BorrowStream(nil)
	defer jsoniter.ConfigDefault.ReturnStream(stream)

	stream.WriteObjectStart()
	first := true
	writeField := func(key string) {
		if !first {
			stream.WriteMore()
		}
		first = false
		stream.WriteObjectField(key)
	}

	for _, key := range stringValueKeys {
		value, err := getOneValue(values, key)
		if err != nil {
			return nil, newHTTPRequestParseError(r, options, http.StatusBadRequest, err)
		}
		if len(value) > 0 {
			writeField(key)
			stream.WriteString(value)
		}
	}

	for _, key := range jsonValueKeys {
		value, err := getOneValue(values, key)
		if err != nil {
			return nil, newHTTPRequestParseError(r, options, http.StatusBadRequest, err)
		}
		if len(value) > 0 {
			if !jsoniter.ConfigDefault.Valid(unsafe.Bytes(value)) {
				return nil, newHTTPRequestParseError(r, options, http.StatusBadRequest,
					fmt.Errorf(`"%s" is not valid JSON`, key))
			}
			writeField(key)
			stream.WriteRaw(value)
		}
	}

	stream.WriteObjectEnd()

	if stream.Error != nil {
		return nil, newHTTPRequestParseError(r, options, http.StatusBadRequest, stream.Error)
	}

	// The stream buffer is reused after return.
	return append([]byte(nil), stream.Buffer()...), nil
}

// ParseHTTPRequestOptions provides settings to ParseHTTPRequest.
type ParseHTTPRequestOptions struct {
	// Maximum size in bytes to be read when parsing a GraphQL query from HTTP request body.
	MaxBodySize uint
}

// HTTPRequestParseError is returned by ParseHTTPRequest when parsing failed.
type HTTPRequestParseError struct {
	Request *http.Request
	Options *ParseHTTPRequestOptions

	// HTTP status code to respond
	StatusCode int

	Err error
}

func newHTTPRequestParseError(
	r *http.Request,
	options *ParseHTTPRequestOptions,
	statusCode int,
	err error) *HTTPRequestParseError {
	return &HTTPRequestParseError{
		Request:    r,
		Options:    options,
		StatusCode: statusCode,
		Err:        err,
	}
}

// Error implements Go's error interface.
func (err *HTTPRequestParseError) Error() string {
	return err.Err.Error()
}

// Unwrap returns the underlying error.
func (err *HTTPRequestParseError) Unwrap() error {
	return err.Err
}

var (
	errRequestBodyTooLarge   = errors.New("request body is too large")
	errUnsupportedMethod     = errors.New("GraphQL only supports GET and POST requests")
	errUnsupportedMediaType  = errors.New("unsupported content type")
	errEmptyRequestBody      = errors.New("request body is empty")
	errPostWithoutBodyReader = errors.New("request has no body")
)

// ParseHTTPRequest reads the GraphQL request carried by a http.Request and returns it as a request
// envelope in JSON which is either an object or a batch of objects.
func ParseHTTPRequest(r *http.Request, options *ParseHTTPRequestOptions) ([]byte, error) {
	switch r.Method {
	case http.MethodGet:
		var (
			// Read query variables in URL from r.Form.
			values = r.Form
			err    error
		)
		if values == nil {
			// If not present, parse them from URL.
			values, err = url.ParseQuery(r.URL.RawQuery)
			if err != nil {
				return nil, newHTTPRequestParseError(r, options, http.StatusBadRequest, err)
			}
		}
		return parseRequestFromValues(r, options, values)

	case http.MethodPost:
		// Determine the content-type.
		var contentType = r.Header.Get("Content-Type")
		contentType, _, _ = mime.ParseMediaType(contentType)
		// Ignore error.

		// Quick path: if content-type is application/x-www-form-urlencoded and r.Form has already been
		// populated, use it.
		if contentType == "application/x-www-form-urlencoded" && r.PostForm != nil {
			return parseRequestFromValues(r, options, r.PostForm)
		}

		if r.Body == nil {
			return nil, newHTTPRequestParseError(r, options, http.StatusBadRequest, errPostWithoutBodyReader)
		}

		// Read body.
		maxBodySize := options.MaxBodySize
		body, err := io.ReadAll(io.LimitReader(r.Body, int64(maxBodySize)+1))
		if err != nil {
			return nil, newHTTPRequestParseError(r, options, http.StatusBadRequest, err)
		}

		// Check the overflow.
		if uint(len(body)) > maxBodySize {
			return nil, newHTTPRequestParseError(r, options, http.StatusRequestEntityTooLarge, errRequestBodyTooLarge)
		}

		// See https://github.com/graphql/express-graphql/blob/8826952/src/parseBody.js for the
		// supported content-type.
		switch contentType {
		case "application/graphql":
			// The entire body is the query.
			stream := jsoniter.ConfigDefault.BorrowStream(nil)
			defer jsoniter.ConfigDefault.ReturnStream(stream)
			stream.WriteObjectStart()
			stream.WriteObjectField("query")
			stream.WriteString(string(body))
			stream.WriteObjectEnd()
			return append([]byte(nil), stream.Buffer()...), nil

		case "application/x-www-form-urlencoded":
			values, err := url.ParseQuery(string(body))
			if err != nil {
				return nil, newHTTPRequestParseError(r, options, http.StatusBadRequest, err)
			}
			return parseRequestFromValues(r, options, values)

		case "", "application/json":
			if len(bytes.TrimSpace(body)) == 0 {
				return nil, newHTTPRequestParseError(r, options, http.StatusBadRequest, errEmptyRequestBody)
			}
			// The request parser validates the body.
			return body, nil

		default:
			return nil, newHTTPRequestParseError(r, options, http.StatusUnsupportedMediaType, errUnsupportedMediaType)
		}

	default:
		return nil, newHTTPRequestParseError(r, options, http.StatusMethodNotAllowed, errUnsupportedMethod)
	}
}

// isBatch returns true if the envelope is a JSON array.
func isBatch(envelope []byte) bool {
	trimmed := bytes.TrimLeft(envelope, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '['
}
