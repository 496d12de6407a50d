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

// Package config holds the settings of the gqlsyntax server and command line tool.
package config

import (
	"os"

	"github.com/botobag/gqlsyntax/internal/util"
	"github.com/botobag/gqlsyntax/log"

	jsoniter "github.com/json-iterator/go"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// EnvPrefix is the prefix of environment variables that override the configuration (e.g.,
// GQLSYNTAX_LISTENADDRESS or GQLSYNTAX_CACHE_BACKEND).
const EnvPrefix = "GQLSYNTAX"

// ParserConfig limits the parser.
type ParserConfig struct {
	// Zero means unlimited.
	MaxTokens int `json:"max_tokens"`
	MaxDepth  int `json:"max_depth"`

	NoLocations bool `json:"no_locations"`
}

// CacheConfig selects the document cache.
type CacheConfig struct {
	// One of "map", "lru", "ristretto" and "none"
	Backend    string `json:"backend"`
	MaxEntries int    `json:"max_entries"`

	// Algorithm for keys of query text: "sha256" or "farm"
	Hash string `json:"hash"`
}

// Config is the configuration of the server.
type Config struct {
	ListenAddress string `json:"listen_address"`
	MetricsPath   string `json:"metrics_path"`
	GraphQLPath   string `json:"graphql_path"`
	WebSocketPath string `json:"websocket_path"`

	// Maximum size of request bodies in bytes
	MaxBodySize int64 `json:"max_body_size"`

	Parser ParserConfig `json:"parser"`
	Cache  CacheConfig  `json:"cache"`

	// Number of requests in a batch parsed at the same time
	BatchConcurrency int  `json:"batch_concurrency"`
	VerifyQueryHash  bool `json:"verify_query_hash"`

	// Log level and format ("text" or "json")
	LogLevel  string `json:"log_level"`
	LogFormat string `json:"log_format"`

	// Path of the file the configuration was loaded from; Empty if none was found.
	OriginalPath string `json:"-" ignored:"true"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		ListenAddress: ":8080",
		MetricsPath:   "/metrics",
		GraphQLPath:   "/graphql",
		WebSocketPath: "/graphql/ws",
		MaxBodySize:   1 << 20,
		Parser: ParserConfig{
			MaxTokens: 15000,
		},
		Cache: CacheConfig{
			Backend:    "lru",
			MaxEntries: 1024,
			Hash:       "sha256",
		},
		BatchConcurrency: 4,
		VerifyQueryHash:  true,
		LogLevel:         "info",
		LogFormat:        "text",
	}
}

// Load reads the first readable file in paths into conf and then applies overrides from
// environment variables. conf keeps its values when no file exists; missing fields in the file
// also keep their values in conf.
func Load(paths []string, conf *Config) error {
	logger := log.WithPrefix(log.Get(), "config")

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return errors.Wrapf(err, "couldn't read config file %s", path)
		}

		if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, conf); err != nil {
			return errors.Wrapf(err, "couldn't unmarshal config file %s", path)
		}
		conf.OriginalPath = path
		logger.WithField("path", path).Debug("loaded configuration file")
		break
	}

	if len(conf.OriginalPath) == 0 && len(paths) > 0 {
		logger.Debug("no config file found, using defaults")
	}

	if err := envconfig.Process(EnvPrefix, conf); err != nil {
		return errors.Wrap(err, "failed to process config env vars")
	}

	return conf.Validate()
}

var (
	cacheBackends  = []string{"map", "lru", "ristretto", "none"}
	hashAlgorithms = []string{"sha256", "farm"}
)

func contains(options []string, s string) bool {
	for _, option := range options {
		if option == s {
			return true
		}
	}
	return false
}

// Validate checks the settings.
func (c *Config) Validate() error {
	if !contains(cacheBackends, c.Cache.Backend) {
		return errors.Errorf("unknown cache backend %q%s", c.Cache.Backend,
			util.DidYouMean(c.Cache.Backend, cacheBackends))
	}

	switch c.Cache.Backend {
	case "lru", "ristretto":
		if c.Cache.MaxEntries <= 0 {
			return errors.Errorf("cache backend %q requires positive max_entries", c.Cache.Backend)
		}
	}

	if !contains(hashAlgorithms, c.Cache.Hash) {
		return errors.Errorf("unknown hash algorithm %q%s", c.Cache.Hash,
			util.DidYouMean(c.Cache.Hash, hashAlgorithms))
	}

	if c.MaxBodySize <= 0 {
		return errors.New("max_body_size must be positive")
	}
	if c.Parser.MaxTokens < 0 || c.Parser.MaxDepth < 0 {
		return errors.New("parser limits must not be negative")
	}

	return nil
}
