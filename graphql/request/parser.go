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

// Package request parses GraphQL transport envelopes: the JSON bodies of HTTP requests, including
// batches and persisted queries, and the messages of GraphQL over WebSocket protocols.
package request

import (
	"context"

	"github.com/botobag/gqlsyntax/graphql/ast"
	"github.com/botobag/gqlsyntax/graphql/cache"
	"github.com/botobag/gqlsyntax/graphql/parser"
	"github.com/botobag/gqlsyntax/graphql/token"
	"github.com/botobag/gqlsyntax/internal/unsafe"
	"github.com/botobag/gqlsyntax/jsonvalue"

	"golang.org/x/sync/errgroup"
)

// ParsedRequest is a request whose query has been resolved to a document.
type ParsedRequest struct {
	// Name of the operation in Document to execute; Empty if not given.
	OperationName string

	// Name of the persisted query (namedQuery or id) if one was given
	QueryName string

	// Cache key of the query text; Empty when the document was looked up by name.
	QueryHash string

	Document *ast.Document

	// Variables and Extensions are Map values or nil when absent or null.
	Variables  *jsonvalue.Value
	Extensions *jsonvalue.Value
}

// ParseFunc turns a source into a document.
type ParseFunc func(source *token.Source) (*ast.Document, error)

// Option configures a Parser.
type Option func(p *Parser)

// WithCache sets the cache for documents. The default is an unbounded map cache.
func WithCache(c cache.DocumentCache) Option {
	return func(p *Parser) {
		p.cache = c
	}
}

// WithHasher sets the algorithm for computing cache keys of query text. The default is
// SHA256Hasher.
func WithHasher(hasher Hasher) Option {
	return func(p *Parser) {
		p.hasher = hasher
	}
}

// WithParseFunc replaces the function that parses query text.
func WithParseFunc(parse ParseFunc) Option {
	return func(p *Parser) {
		p.parse = parse
	}
}

// WithParseOptions sets options passed to parser.Parse. It has no effect when WithParseFunc is
// given.
func WithParseOptions(opts ...parser.Option) Option {
	return func(p *Parser) {
		p.parseOptions = opts
	}
}

// WithBatchConcurrency limits the number of requests in a batch that are parsed at the same time.
// Zero or negative means unlimited.
func WithBatchConcurrency(n int) Option {
	return func(p *Parser) {
		p.batchConcurrency = n
	}
}

// VerifyHash enables or disables checking the sha256Hash of the persisted query extension against
// the query text when both are given. It is enabled by default.
func VerifyHash(verify bool) Option {
	return func(p *Parser) {
		p.verifyHash = verify
	}
}

// Parser parses request envelopes. It is safe for concurrent use.
type Parser struct {
	cache            cache.DocumentCache
	loader           *cache.Loader
	hasher           Hasher
	parse            ParseFunc
	parseOptions     []parser.Option
	batchConcurrency int
	verifyHash       bool
}

// NewParser creates a Parser.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		verifyHash: true,
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.cache == nil {
		p.cache = cache.NewMapCache()
	}
	if p.hasher == nil {
		p.hasher = SHA256Hasher{}
	}
	if p.parse == nil {
		parseOptions := p.parseOptions
		p.parse = func(source *token.Source) (*ast.Document, error) {
			return parser.Parse(source, parseOptions...)
		}
	}
	p.loader = cache.NewLoader(p.cache)

	return p
}

// Cache returns the document cache used by p.
func (p *Parser) Cache() cache.DocumentCache {
	return p.cache
}

// Hasher returns the hasher used by p.
func (p *Parser) Hasher() Hasher {
	return p.hasher
}

// ParseRequest parses body which contains either a request object or a batch (an array) of request
// objects. The results are in the same order as the requests in body. Any failing request fails
// the whole batch; the returned Error carries its index.
func (p *Parser) ParseRequest(ctx context.Context, body []byte) ([]*ParsedRequest, error) {
	value, err := jsonvalue.Parse(body)
	if err != nil {
		return nil, wrapError(InvalidRequestBody, err, "body is not valid JSON")
	}

	switch value.Kind() {
	case jsonvalue.Map:
		result, err := p.parseObject(ctx, value)
		if err != nil {
			return nil, err
		}
		return []*ParsedRequest{result}, nil

	case jsonvalue.List:
		items, _ := value.List()
		if len(items) == 0 {
			return nil, NewError(InvalidRequestBody, "batch contains no request")
		}
		return p.parseBatch(ctx, items)
	}

	return nil, NewError(InvalidRequestBody, "expected an object or an array of objects, found %s", value.Kind())
}

func (p *Parser) parseBatch(ctx context.Context, items []*jsonvalue.Value) ([]*ParsedRequest, error) {
	var (
		results = make([]*ParsedRequest, len(items))
		errs    = make([]*Error, len(items))
	)

	g, gctx := errgroup.WithContext(ctx)
	if p.batchConcurrency > 0 {
		g.SetLimit(p.batchConcurrency)
	}

	for i := range items {
		i := i
		g.Go(func() error {
			// Skip the remaining items once one has failed.
			if gctx.Err() != nil {
				return nil
			}

			result, err := p.parseItem(gctx, items[i])
			if err != nil {
				err.Index = i
				errs[i] = err
				return err
			}
			results[i] = result
			return nil
		})
	}

	g.Wait()

	// Report the failure with the lowest index so the result doesn't depend on scheduling.
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

func (p *Parser) parseItem(ctx context.Context, item *jsonvalue.Value) (*ParsedRequest, *Error) {
	if item.Kind() != jsonvalue.Map {
		return nil, NewError(InvalidRequestBody, "expected a request object, found %s", item.Kind())
	}
	return p.parseObject(ctx, item)
}

// envelope holds the recognized fields of a request object.
type envelope struct {
	query         string
	hasQuery      bool
	operationName string
	namedQuery    string
	id            string
	sha256Hash    string
	variables     *jsonvalue.Value
	extensions    *jsonvalue.Value
}

func optionalString(object *jsonvalue.Value, key string) (string, bool, *Error) {
	v, exists := object.Get(key)
	if !exists || v.IsNull() {
		return "", false, nil
	}
	s, ok := v.Str()
	if !ok {
		return "", false, NewError(InvalidRequestBody, `"%s" must be a string, found %s`, key, v.Kind())
	}
	return s, true, nil
}

func optionalMap(object *jsonvalue.Value, key string) (*jsonvalue.Value, *Error) {
	v, exists := object.Get(key)
	if !exists || v.IsNull() {
		return nil, nil
	}
	if v.Kind() != jsonvalue.Map {
		return nil, NewError(InvalidRequestBody, `"%s" must be an object, found %s`, key, v.Kind())
	}
	return v, nil
}

func readEnvelope(object *jsonvalue.Value) (*envelope, *Error) {
	var (
		e   envelope
		err *Error
	)

	if e.query, e.hasQuery, err = optionalString(object, "query"); err != nil {
		return nil, err
	}
	if e.operationName, _, err = optionalString(object, "operationName"); err != nil {
		return nil, err
	}
	if e.namedQuery, _, err = optionalString(object, "namedQuery"); err != nil {
		return nil, err
	}
	if e.id, _, err = optionalString(object, "id"); err != nil {
		return nil, err
	}
	if e.variables, err = optionalMap(object, "variables"); err != nil {
		return nil, err
	}
	if e.extensions, err = optionalMap(object, "extensions"); err != nil {
		return nil, err
	}

	if e.extensions != nil {
		if persistedQuery, exists := e.extensions.Get("persistedQuery"); exists {
			if e.sha256Hash, _, err = optionalString(persistedQuery, "sha256Hash"); err != nil {
				return nil, err
			}
		}
	}

	return &e, nil
}

// Digests of query text are cache keys as is. Other keys carry a prefix so that a name chosen by a
// client never shadows the digest of some other query.
const (
	nameKeyPrefix   = "name:"
	sha256KeyPrefix = "sha256:"
)

// NameKey returns the cache key under which a document sent with a namedQuery or id is stored.
func NameKey(name string) string {
	return nameKeyPrefix + name
}

// sha256Key returns the cache key for a sha256Hash of persisted query extension.
func (p *Parser) sha256Key(hash string) string {
	if p.hasher.Name() == (SHA256Hasher{}).Name() {
		return hash
	}
	return sha256KeyPrefix + hash
}

// name returns the persisted query name given by the request.
func (e *envelope) name() string {
	if len(e.namedQuery) > 0 {
		return e.namedQuery
	}
	return e.id
}

func (p *Parser) parseObject(ctx context.Context, object *jsonvalue.Value) (*ParsedRequest, *Error) {
	e, err := readEnvelope(object)
	if err != nil {
		return nil, err
	}

	result := &ParsedRequest{
		OperationName: e.operationName,
		QueryName:     e.name(),
		Variables:     e.variables,
		Extensions:    e.extensions,
	}

	if e.hasQuery {
		if err := p.resolveQuery(e, result); err != nil {
			return nil, err
		}
		return result, nil
	}

	var (
		key      string
		document *ast.Document
		ok       bool
	)
	switch {
	case len(result.QueryName) > 0:
		key = result.QueryName
		// A name may be the digest of a query sent before.
		if document, ok = p.cache.Get(key); !ok {
			document, ok = p.cache.Get(NameKey(key))
		}
	case len(e.sha256Hash) > 0:
		key = e.sha256Hash
		document, ok = p.cache.Get(p.sha256Key(key))
	default:
		return nil, NewError(MissingQuery, "request must contain either query text or a cache key")
	}

	if !ok {
		return nil, &Error{
			Code:    DocumentNotFound,
			Key:     key,
			Message: "no cached document under the key",
		}
	}
	result.Document = document

	return result, nil
}

func (p *Parser) resolveQuery(e *envelope, result *ParsedRequest) *Error {
	query := unsafe.Bytes(e.query)

	if len(e.sha256Hash) > 0 && p.verifyHash {
		if hash := (SHA256Hasher{}).Hash(query); hash != e.sha256Hash {
			return &Error{
				Code:    InvalidQueryHash,
				Key:     e.sha256Hash,
				Message: "provided sha256Hash does not match query",
			}
		}
	}

	hash := p.hasher.Hash(query)
	document, _, err := p.loader.GetOrInsert(hash, func() (*ast.Document, error) {
		return p.parse(token.NewSourceFromBytes(query))
	})
	if err != nil {
		return wrapError(InvalidQuery, err, "")
	}

	// Make the document reachable by the other keys the client may use next time. A sha256Hash
	// becomes a key only after it was checked against the query.
	if len(result.QueryName) > 0 {
		p.cache.Put(NameKey(result.QueryName), document)
	}
	if len(e.sha256Hash) > 0 && p.verifyHash {
		if key := p.sha256Key(e.sha256Hash); key != hash {
			p.cache.Put(key, document)
		}
	}

	result.QueryHash = hash
	result.Document = document

	return nil
}
