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
	"bytes"
	"fmt"

	"github.com/botobag/gqlsyntax/graphql"
	lexerinternal "github.com/botobag/gqlsyntax/graphql/internal/lexer"
	"github.com/botobag/gqlsyntax/graphql/token"
)

// Option configures Tokenize.
type Option func(lexer *Lexer)

// MaxTokens limits the number of tokens (excluding comments, <SOF> and <EOF>) a source may contain.
// Sources exceeding the limit fail with a SyntaxErrorTooManyTokens error. Zero or a negative limit
// means unlimited.
func MaxTokens(n int) Option {
	return func(lexer *Lexer) {
		lexer.maxTokens = n
	}
}

// Lexer scans a Source. Each Lexer is used by a single Tokenize call; concurrent calls on the same
// Source are independent.
type Lexer struct {
	source *token.Source
	body   token.SourceBody

	// Current offset into the source body; Moved by only consume(), consumeWhitespace() and
	// newLine().
	bytePos uint

	// This caches the value of source.Body().Size().
	bodySize uint

	// 1-indexed line number of bytePos and the byte offset at which that line begins
	line      uint
	lineStart uint

	// Number of significant tokens emitted so far
	numTokens int
	maxTokens int
}

// Tokenize scans the entire source and returns its tokens. The stream always starts with <SOF> and
// ends with <EOF>, and includes comments. Tokenizing the same bytes always yields the same stream.
// On error, no tokens are returned.
func Tokenize(source *token.Source, opts ...Option) (token.Stream, error) {
	lexer := &Lexer{
		source:   source,
		body:     source.Body(),
		bodySize: source.Body().Size(),
		line:     1,
	}
	for _, opt := range opts {
		opt(lexer)
	}

	// A rough estimation of the number of tokens to avoid frequent reallocations.
	stream := make(token.Stream, 0, lexer.bodySize/4+2)
	stream = append(stream, token.Token{
		Kind:   token.KindSOF,
		Line:   1,
		Column: 1,
	})

	for {
		tok, err := lexer.lexToken()
		if err != nil {
			return nil, err
		}

		if tok.Kind != token.KindComment && tok.Kind != token.KindEOF {
			lexer.numTokens++
			if lexer.maxTokens > 0 && lexer.numTokens > lexer.maxTokens {
				return nil, graphql.NewSyntaxError(
					graphql.SyntaxErrorTooManyTokens,
					graphql.ErrorLocation{
						Line:   tok.Line,
						Column: tok.Column,
					},
					string(lexer.body[tok.Start:tok.End]),
					fmt.Sprintf("Document contains more than %d tokens. Parsing aborted.", lexer.maxTokens))
			}
		}

		stream = append(stream, tok)
		if tok.Kind == token.KindEOF {
			return stream, nil
		}
	}
}

// locationOf returns the line and column of a byte position on the current line.
func (lexer *Lexer) locationOf(bytePos uint) graphql.ErrorLocation {
	return graphql.ErrorLocation{
		Line:   lexer.line,
		Column: bytePos - lexer.lineStart + 1,
	}
}

// peek peeks the next byte at bytePos without consume it.
func (lexer *Lexer) peek() byte {
	return lexer.body.At(lexer.bytePos)
}

// consume reads a byte at current bytePos and then advances the bytePos. Return the byte.
func (lexer *Lexer) consume() byte {
	b := lexer.body.At(lexer.bytePos)
	if lexer.bytePos < lexer.bodySize {
		lexer.bytePos++
	}
	return b
}

// consumeWhitespace consumes bytes from body starting at current bytePos until it finds a
// non-whitespace character. Line terminators advance the line tracking.
func (lexer *Lexer) consumeWhitespace() {
	body := lexer.body
	bodySize := lexer.bodySize

	for lexer.bytePos < bodySize {
		bytePos := lexer.bytePos
		switch body[bytePos] {
		case '\t', ' ', ',':
			lexer.bytePos++

		case '\n':
			lexer.bytePos++
			lexer.newLine()

		case '\r':
			if (bodySize-bytePos) >= 2 && body[bytePos+1] == '\n' {
				lexer.bytePos++
			}
			lexer.bytePos++
			lexer.newLine()

		case '\xEF':
			// Unicode BOM (U+FEFF) is insignificant.
			if (bodySize-bytePos) >= 3 && body[bytePos+1] == '\xBB' && body[bytePos+2] == '\xBF' {
				lexer.bytePos += 3
				continue
			}
			return

		default:
			return
		}
	}
}

// newLine records that a line terminator ends right before bytePos.
func (lexer *Lexer) newLine() {
	lexer.line++
	lexer.lineStart = lexer.bytePos
}

// consumeDigits consumes bytes that represent a digit (i.e., from "0" to "9"). This is used by
// lexNumber as helper function. Return the byte that contains the first non-digits.
func (lexer *Lexer) consumeDigits() byte {
	for {
		char := lexer.peek()
		if char >= '0' && char <= '9' {
			lexer.consume()
		} else {
			return char
		}
	}
}

func (lexer *Lexer) charAtPosToStr(bytePos uint) string {
	if bytePos >= lexer.bodySize {
		return "<EOF>"
	}

	// Try to decode a rune at bytePos.
	r, _ := lexer.body.RuneAt(bytePos)

	// Print as ASCII for printable range.
	if r >= 0x20 && r < 0x7F {
		return fmt.Sprintf(`"%c"`, r)
	}

	// Print the escaped form. e.g. `"\\u0007"`
	return fmt.Sprintf(`"\u%04X"`, r)
}

// lexemeAt returns the source text of the (possibly multi-byte) character at bytePos.
func (lexer *Lexer) lexemeAt(bytePos uint) string {
	if bytePos >= lexer.bodySize {
		return ""
	}
	_, size := lexer.body.RuneAt(bytePos)
	return string(lexer.body[bytePos : bytePos+size])
}

// lexemeBetween returns the source text in [startPos, endPos] clamped to the body. The character at
// endPos is included.
func (lexer *Lexer) lexemeBetween(startPos uint, endPos uint) string {
	if endPos < lexer.bodySize {
		_, size := lexer.body.RuneAt(endPos)
		endPos += size
	} else {
		endPos = lexer.bodySize
	}
	return string(lexer.body[startPos:endPos])
}

// newUnexpectedCharacterError creates a syntax error to indicate an unexpected character at the
// given offset was encountered.
func (lexer *Lexer) newUnexpectedCharacterError(bytePos uint) error {
	var message string

	char := lexer.body.At(bytePos)
	if (char < 0x0020) && (char != 0x0009) && (char != 0x000a) && (char != 0x000d) {
		message = fmt.Sprintf("Cannot contain the invalid character %s.", lexer.charAtPosToStr(bytePos))
	} else if char == '\'' {
		message = "Unexpected single quote character ('), did you mean to use a double quote (\")?"
	} else {
		message = fmt.Sprintf("Cannot parse the unexpected character %s.", lexer.charAtPosToStr(bytePos))
	}

	return graphql.NewSyntaxError(
		graphql.SyntaxErrorUnexpectedCharacter,
		lexer.locationOf(bytePos),
		lexer.lexemeAt(bytePos),
		message)
}

// newNumberError reports a malformed number literal beginning at startPos.
func (lexer *Lexer) newNumberError(startPos uint, format string) error {
	return graphql.NewSyntaxError(
		graphql.SyntaxErrorInvalidNumberFormat,
		lexer.locationOf(lexer.bytePos),
		lexer.lexemeBetween(startPos, lexer.bytePos),
		fmt.Sprintf(format, lexer.charAtPosToStr(lexer.bytePos)))
}

func (lexer *Lexer) makeToken(kind token.Kind, startPos uint) token.Token {
	return lexer.makeTokenWithValue(kind, startPos, "")
}

func (lexer *Lexer) makeTokenWithValue(kind token.Kind, startPos uint, value string) token.Token {
	return token.Token{
		Kind:   kind,
		Start:  startPos,
		End:    lexer.bytePos,
		Line:   lexer.line,
		Column: startPos - lexer.lineStart + 1,
		Value:  value,
	}
}

// lexToken gets the next token from the source starting at the lexer.bytePos. This skips over
// whitespaces until it finds the next lexable token, then lexes punctuators immediately or calls
// the appropriate helper function for more complicated tokens.
func (lexer *Lexer) lexToken() (token.Token, error) {
	// Consume whitespace characters.
	lexer.consumeWhitespace()

	startPos := lexer.bytePos
	if startPos >= lexer.bodySize {
		return lexer.makeToken(token.KindEOF, startPos), nil
	}

	// lexSimpleToken lexes a byte and produces a token of the given type with location information.
	lexSimpleToken := func(kind token.Kind) (token.Token, error) {
		// Consume the byte.
		lexer.consume()

		// Make the token and return.
		return lexer.makeToken(kind, startPos), nil
	}

	switch char := lexer.peek(); char {
	case '!':
		return lexSimpleToken(token.KindBang)
	case '#':
		return lexer.lexComment(), nil
	case '$':
		return lexSimpleToken(token.KindDollar)
	case '&':
		return lexSimpleToken(token.KindAmp)
	case '(':
		return lexSimpleToken(token.KindLeftParen)
	case ')':
		return lexSimpleToken(token.KindRightParen)
	case '.':
		// Spread requires exactly three consecutive dots.
		if lexer.body.At(startPos+1) == '.' && lexer.body.At(startPos+2) == '.' {
			lexer.bytePos += 3
			return lexer.makeToken(token.KindSpread, startPos), nil
		}
		return token.Token{}, lexer.newUnexpectedCharacterError(startPos)
	case ':':
		return lexSimpleToken(token.KindColon)
	case '=':
		return lexSimpleToken(token.KindEquals)
	case '@':
		return lexSimpleToken(token.KindAt)
	case '[':
		return lexSimpleToken(token.KindLeftBracket)
	case ']':
		return lexSimpleToken(token.KindRightBracket)
	case '{':
		return lexSimpleToken(token.KindLeftBrace)
	case '|':
		return lexSimpleToken(token.KindPipe)
	case '}':
		return lexSimpleToken(token.KindRightBrace)

		// A-Z _ a-z
	case 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N',
		'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z',
		'_', 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n',
		'o', 'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z':
		return lexer.lexName(), nil

	// - 0-9
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return lexer.lexNumber()

	case '"':
		// Consume the quote.
		lexer.consume()
		// Peek the next character.
		if r := lexer.peek(); r == '"' {
			// Consume the second quote.
			lexer.consume()

			// See whether we have the third one.
			if lexer.peek() == '"' {
				lexer.consume()
				return lexer.lexBlockString(startPos)
			}

			// We already consumed 2 double quotes but failed to get the 3rd one. Return an empty string
			// value.
			return lexer.makeTokenWithValue(token.KindString, startPos, ""), nil
		}
		return lexer.lexString(startPos)
	}

	return token.Token{}, lexer.newUnexpectedCharacterError(startPos)
}

// lexComment reads a comment token from the source file.
//
//	Comment ::
//		# CommentCharlistopt
//
//	CommentChar ::
//		SourceCharacter but not LineTerminator
//
//	SourceCharacter ::
//		/[\u0009\u000A\u000D\u0020-\uFFFF]/
//
//	LineTerminator ::
//		New Line (U+000A)
//		Carriage Return (U+000D) [lookhead != New Line (U+000A)]
//		Carriage Return (U+000D) New Line (U+000A)
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Comments
func (lexer *Lexer) lexComment() token.Token {
	// Remember where the token begins.
	startPos := lexer.bytePos

	// Consume #.
	lexer.consume()
	for lexer.bytePos < lexer.bodySize {
		char := lexer.peek()
		// SourceCharacter but not LineTerminator
		if char > 0x1F || char == '\t' {
			lexer.consume()
			continue
		}
		break
	}

	return lexer.makeTokenWithValue(
		token.KindComment,
		startPos,
		string(lexer.body[startPos+1:lexer.bytePos]))
}

// lexNumber reads a number token from the source file, either a float [0] or an int [1] depending
// on whether a decimal point or an exponent appears.
//
//	IntValue ::
//		IntegerPart
//
//	FloatValue ::
//		IntegerPart FractionalPart
//		IntegerPart ExponentPart
//		IntegerPart FractionalPart ExponentPart
//
//	IntegerPart ::
//		NegativeSign? 0
//		NegativeSign? NonZeroDigit Digit*
//
// [0]: https://facebook.github.io/graphql/June2018/#sec-Float-Value
// [1]: https://facebook.github.io/graphql/June2018/#sec-Int-Value
func (lexer *Lexer) lexNumber() (token.Token, error) {
	// Remember where the token begins.
	startPos := lexer.bytePos

	// Consume one character that have been read in lexToken.
	char := lexer.consume()
	tokenKind := token.KindInt

	if char == '-' {
		char = lexer.peek()
		if char < '0' || char > '9' {
			return token.Token{}, lexer.newNumberError(startPos,
				"Invalid number, expected digit after '-' but got: %s.")
		}
		lexer.consume()
	}

	if char == '0' {
		char = lexer.peek()
		if char >= '0' && char <= '9' {
			return token.Token{}, lexer.newNumberError(startPos,
				"Invalid number, unexpected digit after 0: %s.")
		}
	} else {
		// char must be "1" .. "9". Consume all digits.
		char = lexer.consumeDigits()
	}

	if char == '.' {
		tokenKind = token.KindFloat

		// Consume the decimal point.
		lexer.consume()

		// Expect at least one digits.
		char = lexer.peek()
		if char >= '0' && char <= '9' {
			// Consume the first digits.
			lexer.consume()
			// Consume all subsequent digits.
			char = lexer.consumeDigits()
		} else {
			return token.Token{}, lexer.newNumberError(startPos,
				"Invalid number, expected digit after decimal point ('.') but got: %s.")
		}
	}

	if char == 'E' || char == 'e' {
		// Consume "E" or "e".
		lexer.consume()
		tokenKind = token.KindFloat

		char = lexer.peek()
		if char == '+' || char == '-' {
			lexer.consume()
		}

		// Expect at least one digits.
		char = lexer.peek()
		if char >= '0' && char <= '9' {
			// Consume the first digits.
			lexer.consume()
			// Consume all subsequent digits.
			lexer.consumeDigits()
		} else {
			return token.Token{}, lexer.newNumberError(startPos,
				"Invalid number, expected digit but got: %s.")
		}
	}

	return lexer.makeTokenWithValue(
		tokenKind,
		startPos,
		string(lexer.body[startPos:lexer.bytePos])), nil
}

// lexString reads a string token from the source file.
//
//	StringValue ::
//		" StringCharacter "
//		""" BlockStringCharacter """
//
//	StringCharacter ::
//		SourceCharacter but not " or \ or LineTerminator
//		\u EscapedUnicode
//		\ EscapedCharacter
//
//	EscapedUnicode ::
//		/[0-9A-Fa-f]{4}/
//
//	EscapedCharacter :: one of
//		"	\	/	b	f	n	r	t
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-String-Value
func (lexer *Lexer) lexString(startPos uint) (token.Token, error) {
	// Note that the " was already consumed in lexToken.
	var value bytes.Buffer

	// Loop until EOF.
	for lexer.bytePos < lexer.bodySize {
		char := lexer.peek()

		// Exit when encounter a LineTerminator.
		if char == '\n' || char == '\r' {
			break
		}

		if char == '"' {
			// Consume the closing quote (").
			lexer.consume()
			// Return a string token.
			return lexer.makeTokenWithValue(token.KindString, startPos, value.String()), nil
		}

		// Make sure the character is a valid SourceCharacter.
		if char < 0x0020 && char != '\t' {
			return token.Token{}, graphql.NewSyntaxError(
				graphql.SyntaxErrorUnexpectedCharacter,
				lexer.locationOf(lexer.bytePos),
				lexer.lexemeAt(lexer.bytePos),
				fmt.Sprintf("Invalid character within String: %s.", lexer.charAtPosToStr(lexer.bytePos)))
		}

		// Consume the character.
		lexer.consume()

		// Handle escape sequence.
		if char != '\\' {
			// Early exit for non-escape sequence.
			value.WriteByte(char)
			continue
		}

		// A backslash right before <EOF> leaves the string unterminated.
		if lexer.bytePos >= lexer.bodySize {
			break
		}

		// Consume the escaped character. Errors point at it.
		escapePos := lexer.bytePos
		char = lexer.consume()
		switch char {
		// EscapedCharacter
		case '"':
			value.WriteByte('"')
		case '\\':
			value.WriteByte('\\')
		case '/':
			value.WriteByte('/')
		case 'b':
			value.WriteByte('\b')
		case 'f':
			value.WriteByte('\f')
		case 'n':
			value.WriteByte('\n')
		case 'r':
			value.WriteByte('\r')
		case 't':
			value.WriteByte('\t')

		// EscapedUnicode
		case 'u':
			var (
				escapeSeqPos = lexer.bytePos
				escapeSeqEnd uint
			)
			if lexer.bodySize-lexer.bytePos < 4 {
				escapeSeqEnd = lexer.bodySize
			} else {
				escapeSeqEnd = lexer.bytePos + 4
				charCode := uniCharCode(
					lexer.consume(),
					lexer.consume(),
					lexer.consume(),
					lexer.consume(),
				)
				if charCode >= 0 {
					value.WriteRune(charCode)
					break
				}
			}

			escapeSeq := string(lexer.body[escapeSeqPos:escapeSeqEnd])
			return token.Token{}, graphql.NewSyntaxError(
				graphql.SyntaxErrorInvalidEscapeSequence,
				lexer.locationOf(escapePos),
				`\u`+escapeSeq,
				fmt.Sprintf("Invalid character escape sequence: \\u%s.", escapeSeq))

		default:
			return token.Token{}, graphql.NewSyntaxError(
				graphql.SyntaxErrorInvalidEscapeSequence,
				lexer.locationOf(escapePos),
				lexer.lexemeBetween(escapePos-1, escapePos),
				fmt.Sprintf("Invalid character escape sequence: \\%s.", lexer.lexemeAt(escapePos)))
		}
	}

	return token.Token{}, graphql.NewSyntaxError(
		graphql.SyntaxErrorUnterminatedString,
		lexer.locationOf(lexer.bytePos),
		string(lexer.body[startPos:lexer.bytePos]),
		"Unterminated string.")
}

// Converts four hexadecimal chars to the integer that the string represents. For example,
// uniCharCode('0','0','0','f') will return 15, and uniCharCode('0','0','f','f') returns 255.
//
// Returns a negative number on error, if a char was invalid.
//
// This is implemented by noting that char2hex() returns -1 on error, which means the result of
// ORing the char2hex() will also be negative.
func uniCharCode(a byte, b byte, c byte, d byte) rune {
	return (char2hex(a) << 12) | (char2hex(b) << 8) | (char2hex(c) << 4) | char2hex(d)
}

// Converts a hex character to its integer value.
//
// '0' becomes 0, '9' becomes 9
// 'A' becomes 10, 'F' becomes 15
// 'a' becomes 10, 'f' becomes 15
//
// Returns -1 on error.
func char2hex(a byte) rune {
	if a >= '0' && a <= '9' { // 0-9
		return rune(a - '0')
	} else if a >= 'A' && a <= 'F' { // A-F
		return rune(a - 55)
	} else if a >= 'a' && a <= 'f' {
		return rune(a - 87)
	}
	return -1
}

// lexBlockString reads a block string token from the source file.
//
//	BlockStringCharacter
//		SourceCharacter but not """ or \"""
//		\"""
//
// The raw text is normalized by BlockStringValue. Line tracking is advanced by the number of lines
// the raw text spans.
func (lexer *Lexer) lexBlockString(startPos uint) (token.Token, error) {
	// Note that the opening triple-quote (""") was already consumed in lexToken.
	var (
		value bytes.Buffer

		// Line tracking within the raw text; only used for error locations and the column after the
		// block string ends.
		line      = lexer.line
		lineStart = lexer.lineStart
	)

	startLine := lexer.line
	startColumn := startPos - lexer.lineStart + 1

	for lexer.bytePos < lexer.bodySize {
		char := lexer.peek()

		if char == '"' {
			// Consume 1st quote.
			lexer.consume()

			if char := lexer.peek(); char == '"' {
				// Consume the 2nd quote.
				lexer.consume()

				if char := lexer.peek(); char == '"' {
					// This is a closing triple-quote (""").
					lexer.consume()

					blockValue, lineCount := lexerinternal.BlockStringValue(value.String())

					// Advance line tracking past the block string.
					lexer.line += uint(lineCount - 1)
					lexer.lineStart = lineStart

					return token.Token{
						Kind:   token.KindBlockString,
						Start:  startPos,
						End:    lexer.bytePos,
						Line:   startLine,
						Column: startColumn,
						Value:  blockValue,
					}, nil
				}
				value.WriteByte('"')
			}
			value.WriteByte('"')
		} else if char == '\\' {
			// Check escape triple-quote (\"""). Consume backslash.
			lexer.consume()

			if char := lexer.peek(); char != '"' {
				// Write backslash.
				value.WriteByte('\\')
			} else {
				// Consume the 1st quote.
				lexer.consume()

				if char := lexer.peek(); char != '"' {
					// Write one backslash and one quote.
					value.WriteString("\\\"")
				} else {
					// Consume the 2nd quote.
					lexer.consume()

					if char := lexer.peek(); char != '"' {
						// Write one backslash and two quotes.
						value.WriteString("\\\"\"")
					} else {
						// Consume the 3rd quote. Got an escape triple-quote (\""").
						lexer.consume()
						value.WriteString("\"\"\"")
					}
				}
			}
		} else {
			// Make sure the character is a valid SourceCharacter.
			if char < 0x0020 && char != '\t' && char != '\r' && char != '\n' {
				return token.Token{}, graphql.NewSyntaxError(
					graphql.SyntaxErrorInvalidBlockStringEscape,
					graphql.ErrorLocation{
						Line:   line,
						Column: lexer.bytePos - lineStart + 1,
					},
					lexer.lexemeAt(lexer.bytePos),
					fmt.Sprintf("Invalid character within String: %s.", lexer.charAtPosToStr(lexer.bytePos)))
			}

			// Consume a valid character.
			lexer.consume()
			value.WriteByte(char)

			// Track line terminators. "\r\n" is one terminator which ends at "\n".
			if char == '\n' || (char == '\r' && lexer.peek() != '\n') {
				line++
				lineStart = lexer.bytePos
			}
		}
	}

	return token.Token{}, graphql.NewSyntaxError(
		graphql.SyntaxErrorUnterminatedString,
		graphql.ErrorLocation{
			Line:   line,
			Column: lexer.bytePos - lineStart + 1,
		},
		string(lexer.body[startPos:lexer.bytePos]),
		"Unterminated string.")
}

// lexName lexes a Name token from source.
//
//	Name ::
//		/[_A-Za-z][_0-9A-Za-z]*/
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Names
func (lexer *Lexer) lexName() token.Token {
	// Remember where the token begins.
	startPos := lexer.bytePos

	// Consume one byte which was read in lexToken before here.
	lexer.consume()

	for {
		char := lexer.peek()
		if char == '_' ||
			(char >= '0' && char <= '9') ||
			(char >= 'a' && char <= 'z') ||
			(char >= 'A' && char <= 'Z') {
			lexer.consume()
			continue
		}
		break
	}

	return lexer.makeTokenWithValue(
		token.KindName,
		startPos,
		string(lexer.body[startPos:lexer.bytePos]),
	)
}
