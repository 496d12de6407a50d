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
	"sync"

	"github.com/botobag/gqlsyntax/graphql/ast"

	"github.com/dgraph-io/ristretto/v2"
)

// RistrettoCache is a DocumentCache with cost-based admission and eviction. Every document costs 1
// so MaxCost is the number of documents. Unlike LRUCache, a Put may be rejected by the admission
// policy when the cache is full of documents that are more frequently used.
type RistrettoCache struct {
	// Serializes Put so that the first writer of a key wins.
	mu    sync.Mutex
	cache *ristretto.Cache[string, *ast.Document]
}

var _ DocumentCache = (*RistrettoCache)(nil)

// NewRistrettoCache creates a RistrettoCache that holds about maxEntries documents.
func NewRistrettoCache(maxEntries int) (*RistrettoCache, error) {
	if maxEntries <= 0 {
		return nil, errZeroCacheSize
	}

	c, err := ristretto.NewCache(&ristretto.Config[string, *ast.Document]{
		// Ristretto recommends 10x counters of the number of items.
		NumCounters: int64(maxEntries) * 10,
		MaxCost:     int64(maxEntries),
		BufferItems: 64,
		// Cost is the number of documents. Don't add the size of ristretto's own bookkeeping.
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}

	return &RistrettoCache{
		cache: c,
	}, nil
}

// Get implements DocumentCache.
func (c *RistrettoCache) Get(key string) (*ast.Document, bool) {
	return c.cache.Get(key)
}

// Put implements DocumentCache. It waits for the write to be applied so a subsequent Get observes
// the document if it was admitted.
func (c *RistrettoCache) Put(key string, document *ast.Document) *ast.Document {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.cache.Get(key); ok {
		return existing
	}

	if c.cache.Set(key, document, 1) {
		c.cache.Wait()
	}
	return document
}

// Close stops the background goroutines of the cache. The cache must not be used afterwards.
func (c *RistrettoCache) Close() {
	c.cache.Close()
}
