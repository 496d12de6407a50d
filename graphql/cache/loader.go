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
	"github.com/botobag/gqlsyntax/graphql/ast"

	"golang.org/x/sync/singleflight"
)

// Loader fills a DocumentCache on misses. Concurrent misses on the same key share one call to the
// compute function.
type Loader struct {
	cache DocumentCache
	group singleflight.Group
}

// NewLoader creates a Loader that reads and writes the given cache.
func NewLoader(cache DocumentCache) *Loader {
	return &Loader{
		cache: cache,
	}
}

// Cache returns the underlying cache.
func (loader *Loader) Cache() DocumentCache {
	return loader.cache
}

// GetOrInsert returns the document cached under key. On a miss, it calls compute and stores the
// result. hit reports whether the document came from the cache without calling compute in this
// call. Errors from compute are returned to every waiting caller and are not cached.
func (loader *Loader) GetOrInsert(
	key string,
	compute func() (*ast.Document, error),
) (document *ast.Document, hit bool, err error) {
	if document, ok := loader.cache.Get(key); ok {
		return document, true, nil
	}

	v, err, _ := loader.group.Do(key, func() (interface{}, error) {
		// Another caller may have stored the document between our Get and Do.
		if document, ok := loader.cache.Get(key); ok {
			return document, nil
		}
		document, err := compute()
		if err != nil {
			return nil, err
		}
		return loader.cache.Put(key, document), nil
	})
	if err != nil {
		return nil, false, err
	}

	return v.(*ast.Document), false, nil
}
