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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func registerCollector[C prometheus.Collector](registerer prometheus.Registerer, c C) (C, error) {
	if err := registerer.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// instrumentHandler counts the requests served by h by status code and observes their latency.
func instrumentHandler(h http.Handler, registerer prometheus.Registerer) (http.Handler, error) {
	requests, err := registerCollector(registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gqlsyntax",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Number of GraphQL HTTP requests by status code.",
	}, []string{"code"}))
	if err != nil {
		return nil, err
	}

	duration, err := registerCollector(registerer, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "gqlsyntax",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Latency of GraphQL HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{}))
	if err != nil {
		return nil, err
	}

	return promhttp.InstrumentHandlerDuration(duration, promhttp.InstrumentHandlerCounter(requests, h)), nil
}
