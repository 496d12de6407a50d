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

package cache

import (
	"errors"

	"github.com/botobag/gqlsyntax/graphql/ast"

	lru "github.com/hashicorp/golang-lru/v2"
)

// LRUCache is a DocumentCache that holds at most a fixed number of documents and evicts the least
// recently used one to make room.
type LRUCache struct {
	lru *lru.Cache[string, *ast.Document]
}

var _ DocumentCache = (*LRUCache)(nil)

var errZeroCacheSize = errors.New("cache: must specify a non-zero cache size")

// NewLRUCache creates a new LRUCache with given size.
func NewLRUCache(maxEntries int) (*LRUCache, error) {
	if maxEntries <= 0 {
		return nil, errZeroCacheSize
	}

	c, err := lru.New[string, *ast.Document](maxEntries)
	if err != nil {
		return nil, err
	}

	return &LRUCache{
		lru: c,
	}, nil
}

// Get implements DocumentCache. A hit marks the entry as recently used.
func (c *LRUCache) Get(key string) (*ast.Document, bool) {
	return c.lru.Get(key)
}

// Put implements DocumentCache.
func (c *LRUCache) Put(key string, document *ast.Document) *ast.Document {
	if previous, ok, _ := c.lru.PeekOrAdd(key, document); ok {
		return previous
	}
	return document
}

// Len returns the number of cached documents.
func (c *LRUCache) Len() int {
	return c.lru.Len()
}
