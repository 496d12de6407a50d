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

package unsafe_test

import (
	"github.com/botobag/gqlsyntax/internal/unsafe"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Bytes", func() {
	It("returns nil for empty string", func() {
		Expect(unsafe.Bytes("")).Should(BeNil())
	})

	It("shares the bytes of the string", func() {
		b := unsafe.Bytes("{ hello }")
		Expect(b).Should(Equal([]byte("{ hello }")))
		Expect(cap(b)).Should(Equal(len(b)))
	})
})

var _ = Describe("String", func() {
	It("returns empty string for empty slice", func() {
		Expect(unsafe.String(nil)).Should(BeEmpty())
		Expect(unsafe.String([]byte{})).Should(BeEmpty())
	})

	It("is backed by the byte slice", func() {
		b := []byte("query")
		s := unsafe.String(b)
		Expect(s).Should(Equal("query"))
		b[0] = 'Q'
		Expect(s).Should(Equal("Query"))
	})
})
