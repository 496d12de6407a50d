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

	"github.com/prometheus/client_golang/prometheus"
)

type cacheMetrics struct {
	hits   *prometheus.CounterVec
	misses *prometheus.CounterVec
	puts   *prometheus.CounterVec
}

func newCacheMetrics(registerer prometheus.Registerer) (*cacheMetrics, error) {
	m := &cacheMetrics{
		hits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gqlsyntax",
			Subsystem: "document_cache",
			Name:      "hits_total",
			Help:      "Number of document cache lookups that found a document.",
		}, []string{"cache"}),
		misses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gqlsyntax",
			Subsystem: "document_cache",
			Name:      "misses_total",
			Help:      "Number of document cache lookups that found nothing.",
		}, []string{"cache"}),
		puts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gqlsyntax",
			Subsystem: "document_cache",
			Name:      "puts_total",
			Help:      "Number of documents offered to the document cache.",
		}, []string{"cache"}),
	}

	if registerer == nil {
		return m, nil
	}

	var err error
	if m.hits, err = registerCounterVec(registerer, m.hits); err != nil {
		return nil, err
	}
	if m.misses, err = registerCounterVec(registerer, m.misses); err != nil {
		return nil, err
	}
	if m.puts, err = registerCounterVec(registerer, m.puts); err != nil {
		return nil, err
	}
	return m, nil
}

// registerCounterVec registers c or returns the collector that was registered before with the same
// descriptor so that several instrumented caches can share one registry.
func registerCounterVec(registerer prometheus.Registerer, c *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := registerer.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, err
	}
	return c, nil
}

// InstrumentedCache counts hits, misses and puts of the DocumentCache it wraps.
type InstrumentedCache struct {
	cache  DocumentCache
	hits   prometheus.Counter
	misses prometheus.Counter
	puts   prometheus.Counter
}

var _ DocumentCache = (*InstrumentedCache)(nil)

// Instrument wraps c with Prometheus counters labeled with the given name and registers them to
// registerer. A nil registerer leaves the counters unregistered.
func Instrument(c DocumentCache, name string, registerer prometheus.Registerer) (*InstrumentedCache, error) {
	m, err := newCacheMetrics(registerer)
	if err != nil {
		return nil, err
	}

	return &InstrumentedCache{
		cache:  c,
		hits:   m.hits.WithLabelValues(name),
		misses: m.misses.WithLabelValues(name),
		puts:   m.puts.WithLabelValues(name),
	}, nil
}

// Unwrap returns the wrapped cache.
func (c *InstrumentedCache) Unwrap() DocumentCache {
	return c.cache
}

// Get implements DocumentCache.
func (c *InstrumentedCache) Get(key string) (*ast.Document, bool) {
	document, ok := c.cache.Get(key)
	if ok {
		c.hits.Inc()
	} else {
		c.misses.Inc()
	}
	return document, ok
}

// Put implements DocumentCache.
func (c *InstrumentedCache) Put(key string, document *ast.Document) *ast.Document {
	c.puts.Inc()
	return c.cache.Put(key, document)
}
