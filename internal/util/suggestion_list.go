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

// Package util contains helpers for building user-facing messages.
package util

import (
	"math"
	"sort"
	"strings"
)

type suggestion struct {
	option   string
	distance int
}

// SuggestionList returns the options that are similar enough to input to be offered as a
// correction, closest first. Options at the same distance keep their original order.
func SuggestionList(input string, options []string) []string {
	if len(options) == 0 {
		return nil
	}

	var (
		candidates     []suggestion
		inputThreshold = float64(len(input)) / 2
	)
	for _, option := range options {
		distance := lexicalDistance(input, option)
		threshold := math.Max(math.Max(inputThreshold, float64(len(option))/2), 1)
		if float64(distance) <= threshold {
			candidates = append(candidates, suggestion{option, distance})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	result := make([]string, len(candidates))
	for i, c := range candidates {
		result[i] = c.option
	}
	return result
}

// lexicalDistance counts the edits needed to turn a into b. An edit inserts, deletes or
// substitutes one character, or swaps two adjacent ones. Strings that differ only in case are one
// edit apart.
func lexicalDistance(a string, b string) int {
	if a == b {
		return 0
	}

	a = strings.ToLower(a)
	b = strings.ToLower(b)
	if a == b {
		return 1
	}

	aLength := len(a)
	bLength := len(b)
	d := make([][]int, aLength+1)
	for i := range d {
		d[i] = make([]int, bLength+1)
		d[i][0] = i
	}
	for j := 1; j <= bLength; j++ {
		d[0][j] = j
	}

	for i := 1; i <= aLength; i++ {
		for j := 1; j <= bLength; j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			min := d[i-1][j] + 1
			if x := d[i][j-1] + 1; x < min {
				min = x
			}
			if x := d[i-1][j-1] + cost; x < min {
				min = x
			}

			// Adjacent swap.
			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				if x := d[i-2][j-2] + cost; x < min {
					min = x
				}
			}

			d[i][j] = min
		}
	}

	return d[aLength][bLength]
}
