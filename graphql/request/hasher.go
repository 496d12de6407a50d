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

package request

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/botobag/gqlsyntax/internal/util"

	farm "github.com/dgryski/go-farm"
)

// Hasher computes the cache key of a query from its raw text.
type Hasher interface {
	// Name identifies the algorithm (e.g., "sha256").
	Name() string

	// Hash returns the lowercase hex digest of the query.
	Hash(query []byte) string
}

// SHA256Hasher hashes queries with SHA-256. Its digests are the same as the sha256Hash sent by
// clients of automatic persisted queries.
type SHA256Hasher struct{}

var _ Hasher = SHA256Hasher{}

// Name implements Hasher.
func (SHA256Hasher) Name() string {
	return "sha256"
}

// Hash implements Hasher.
func (SHA256Hasher) Hash(query []byte) string {
	sum := sha256.Sum256(query)
	return hex.EncodeToString(sum[:])
}

// FarmHasher hashes queries with the 128-bit FarmHash fingerprint. It is much faster than SHA-256
// but not collision resistant against adversarial input.
type FarmHasher struct{}

var _ Hasher = FarmHasher{}

// Name implements Hasher.
func (FarmHasher) Name() string {
	return "farm"
}

// Hash implements Hasher.
func (FarmHasher) Hash(query []byte) string {
	lo, hi := farm.Fingerprint128(query)
	return fmt.Sprintf("%016x%016x", hi, lo)
}

// HasherByName returns the Hasher with the given name.
func HasherByName(name string) (Hasher, error) {
	switch name {
	case "", "sha256":
		return SHA256Hasher{}, nil
	case "farm":
		return FarmHasher{}, nil
	}
	return nil, fmt.Errorf("request: unknown hash algorithm %q%s", name,
		util.DidYouMean(name, []string{"sha256", "farm"}))
}
