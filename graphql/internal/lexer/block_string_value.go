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

package lexer

import (
	"regexp"
	"strings"
)

var splitLinesRegex = regexp.MustCompile("\r\n|[\n\r]")

// BlockStringValue produces the value of a block string from its raw value captured between the
// triple quotes, similar to CoffeeScript's block string, Python's docstring trim or Ruby's
// strip_heredoc. It also returns the number of lines in the raw value so the lexer can advance its
// line tracking past the block string.
//
// The common indentation of the lines after the first raw line is removed from each of them. The
// first raw line has its own leading whitespace trimmed instead, and so does the first line that
// survives once blank lines at both ends are dropped.
//
// An all-blank raw value produces an empty string.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#BlockStringValue()
func BlockStringValue(raw string) (string, int) {
	// Expand a block string's raw value into independent lines.
	lines := splitLinesRegex.Split(raw, -1)
	lineCount := len(lines)

	// Compute the common indentation over the lines after the first one that have content.
	commonIndent := -1
	for i := 1; i < len(lines); i++ {
		line := lines[i]
		indent := leadingWhitespaceLen(line)
		if indent < len(line) && (commonIndent == -1 || indent < commonIndent) {
			commonIndent = indent
			if commonIndent == 0 {
				break
			}
		}
	}

	// Lines are about to be rewritten. Don't alias the slice returned from Split.
	lines = append([]string(nil), lines...)

	lines[0] = lines[0][leadingWhitespaceLen(lines[0]):]
	if commonIndent > 0 {
		for i := 1; i < len(lines); i++ {
			line := lines[i]
			if commonIndent > len(line) {
				lines[i] = ""
			} else {
				lines[i] = line[commonIndent:]
			}
		}
	}

	// Remove leading and trailing blank lines.
	for len(lines) > 0 && isBlank(lines[0]) {
		lines = lines[1:]
	}
	if len(lines) == 0 {
		return "", lineCount
	}
	for isBlank(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}

	lines[0] = lines[0][leadingWhitespaceLen(lines[0]):]

	// Return a string of the lines joined with U+000A.
	return strings.Join(lines, "\n"), lineCount
}

// leadingWhitespaceLen returns count of whitespace characters on given line.
func leadingWhitespaceLen(in string) (n int) {
	for i := 0; i < len(in); i++ {
		if in[i] == ' ' || in[i] == '\t' {
			n++
		} else {
			break
		}
	}
	return
}

// isBlank returns true when given line has no content.
func isBlank(in string) bool {
	return leadingWhitespaceLen(in) == len(in)
}
