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

// Package cache stores parsed documents under content keys so that repeated and persisted queries
// skip tokenizing and parsing.
package cache

import (
	"sync"

	"github.com/botobag/gqlsyntax/graphql/ast"
)

// DocumentCache maps a key (usually the hash of query text or the name of a persisted query) to a
// parsed document. Implementations must be safe for concurrent use.
type DocumentCache interface {
	// Get looks up the document for the given key.
	Get(key string) (document *ast.Document, ok bool)

	// Put associates document with key unless the key already has one. It returns the document
	// that is cached under the key after the call, which is the existing one when the key was
	// taken. Implementations may decline to store the document (e.g., because of admission policy)
	// in which case the given document is returned.
	Put(key string, document *ast.Document) *ast.Document
}

// MapCache is an unbounded DocumentCache backed by a sync.Map.
type MapCache struct {
	m sync.Map
}

var _ DocumentCache = (*MapCache)(nil)

// NewMapCache creates an empty MapCache.
func NewMapCache() *MapCache {
	return &MapCache{}
}

// Get implements DocumentCache.
func (c *MapCache) Get(key string) (*ast.Document, bool) {
	v, ok := c.m.Load(key)
	if !ok {
		return nil, false
	}
	return v.(*ast.Document), true
}

// Put implements DocumentCache.
func (c *MapCache) Put(key string, document *ast.Document) *ast.Document {
	actual, _ := c.m.LoadOrStore(key, document)
	return actual.(*ast.Document)
}

// Len returns the number of cached documents.
func (c *MapCache) Len() int {
	n := 0
	c.m.Range(func(_, _ interface{}) bool {
		n++
		return true
	})
	return n
}

// nopCache does nothing.
type nopCache struct{}

var _ DocumentCache = nopCache{}

// NopCache returns a DocumentCache that never stores anything.
func NopCache() DocumentCache {
	return nopCache{}
}

// Get implements DocumentCache.
func (nopCache) Get(key string) (document *ast.Document, ok bool) {
	return
}

// Put implements DocumentCache.
func (nopCache) Put(key string, document *ast.Document) *ast.Document {
	return document
}
