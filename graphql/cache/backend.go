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
	"fmt"

	"github.com/botobag/gqlsyntax/internal/util"
	"github.com/botobag/gqlsyntax/log"
)

// Backend names a DocumentCache implementation.
type Backend string

// Enumeration of Backend
const (
	BackendMap       Backend = "map"
	BackendLRU       Backend = "lru"
	BackendRistretto Backend = "ristretto"
	BackendNone      Backend = "none"
)

var backendNames = []string{
	string(BackendMap),
	string(BackendLRU),
	string(BackendRistretto),
	string(BackendNone),
}

// New creates a DocumentCache of the given backend. maxEntries is ignored by the unbounded
// backends.
func New(backend Backend, maxEntries int, logger log.FieldLogger) (DocumentCache, error) {
	if logger == nil {
		logger = log.Get()
	}
	logger = log.WithPrefix(logger, "cache")

	var (
		c   DocumentCache
		err error
	)
	switch backend {
	case BackendMap:
		c = NewMapCache()
	case BackendLRU, "":
		c, err = NewLRUCache(maxEntries)
	case BackendRistretto:
		c, err = NewRistrettoCache(maxEntries)
	case BackendNone:
		c = NopCache()
	default:
		return nil, fmt.Errorf("cache: unknown backend %q%s", backend,
			util.DidYouMean(string(backend), backendNames))
	}
	if err != nil {
		return nil, err
	}

	logger.WithFields(log.Fields{
		"backend":     string(backend),
		"max_entries": maxEntries,
	}).Debug("document cache created")
	return c, nil
}
