/*
 * Radon
 *
 * Copyright 2019 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package lexer

import (
	"strings"
)

const (
	mysqlSpecialCommentBeginLength = 1
	commentBeginLength             = 2
	hintBeginLength                = 3
	commentAndHintEndLength        = 2
	hexBeginLength                 = 2
)

var (
	// ambiguousIdentifiers are keywords only when followed by the continuation keyword.
	ambiguousIdentifiers = []string{"ORDER", "GROUP"}
	continuationKeyword  = "BY"
)

// Tokenizer extracts exactly one token from the input at the offset.
type Tokenizer struct {
	input      string
	dictionary *Dictionary
	offset     int

	// backslashEscape makes '\' escape the next char inside quoted strings.
	backslashEscape bool
}

// NewTokenizer creates the new tokenizer.
func NewTokenizer(input string, dictionary *Dictionary, offset int) *Tokenizer {
	return &Tokenizer{
		input:      input,
		dictionary: dictionary,
		offset:     offset,
	}
}

func (t *Tokenizer) charAt(index int) byte {
	if index < 0 || index >= len(t.input) {
		return EOI
	}
	return t.input[index]
}

func (t *Tokenizer) clamp(offset int) int {
	if offset > len(t.input) {
		return len(t.input)
	}
	return offset
}

// SkipWhitespace returns the offset after the whitespace.
func (t *Tokenizer) SkipWhitespace() int {
	length := 0
	for IsWhitespace(t.charAt(t.offset + length)) {
		length++
	}
	return t.offset + length
}

// SkipComment returns the offset after the comment.
func (t *Tokenizer) SkipComment() (int, error) {
	current := t.charAt(t.offset)
	next := t.charAt(t.offset + 1)
	switch {
	case (current == '/' && next == '/') || (current == '-' && next == '-'):
		return t.skipSingleLineComment(commentBeginLength), nil
	case current == '#':
		return t.skipSingleLineComment(mysqlSpecialCommentBeginLength), nil
	case current == '/' && next == '*':
		return t.untilCommentAndHintTerminateSign(commentBeginLength)
	}
	return t.offset, nil
}

func (t *Tokenizer) skipSingleLineComment(beginLength int) int {
	length := beginLength
	for !IsEndOfInput(t.charAt(t.offset+length)) && t.charAt(t.offset+length) != '\n' {
		length++
	}
	return t.clamp(t.offset + length + 1)
}

// SkipHint returns the offset after the hint.
func (t *Tokenizer) SkipHint() (int, error) {
	return t.untilCommentAndHintTerminateSign(hintBeginLength)
}

func (t *Tokenizer) untilCommentAndHintTerminateSign(beginLength int) (int, error) {
	length := beginLength
	for !(t.charAt(t.offset+length) == '*' && t.charAt(t.offset+length+1) == '/') {
		if IsEndOfInput(t.charAt(t.offset + length)) {
			return 0, &UnterminatedSpanError{Offset: t.offset, Terminator: "*/"}
		}
		length++
	}
	return t.offset + length + commentAndHintEndLength, nil
}

// ScanVariable scans @var or @@var, dots included.
func (t *Tokenizer) ScanVariable() Token {
	length := 1
	if t.charAt(t.offset+1) == '@' {
		length++
	}
	for ch := t.charAt(t.offset + length); IsIdentifierChar(ch) || ch == '.'; ch = t.charAt(t.offset + length) {
		length++
	}
	return t.token(VARIABLE, t.input[t.offset:t.offset+length], length)
}

// ScanIdentifier scans a quoted or bare identifier.
// A bare ORDER/GROUP is a keyword only if BY follows, otherwise it is an identifier.
func (t *Tokenizer) ScanIdentifier() (Token, error) {
	var terminator byte
	switch t.charAt(t.offset) {
	case '`':
		terminator = '`'
	case '"':
		terminator = '"'
	case '[':
		terminator = ']'
	}
	if terminator != 0 {
		length, err := t.lengthUntilTerminatedChar(terminator, false)
		if err != nil {
			return Token{}, err
		}
		return t.token(IDENTIFIER, t.input[t.offset:t.offset+length], length), nil
	}

	length := 0
	for IsIdentifierChar(t.charAt(t.offset + length)) {
		length++
	}
	literals := t.input[t.offset : t.offset+length]
	if isAmbiguousIdentifier(literals) {
		return t.token(t.processAmbiguousIdentifier(t.offset+length, literals), literals, length), nil
	}
	return t.token(t.dictionary.FindTokenType(literals, IDENTIFIER), literals, length), nil
}

func isAmbiguousIdentifier(literals string) bool {
	for _, word := range ambiguousIdentifiers {
		if strings.EqualFold(word, literals) {
			return true
		}
	}
	return false
}

func (t *Tokenizer) processAmbiguousIdentifier(offset int, literals string) TokenType {
	i := 0
	for IsWhitespace(t.charAt(offset + i)) {
		i++
	}
	next := string([]byte{t.charAt(offset + i), t.charAt(offset + i + 1)})
	if strings.EqualFold(continuationKeyword, next) {
		return t.dictionary.FindTokenType(literals, IDENTIFIER)
	}
	return IDENTIFIER
}

// lengthUntilTerminatedChar returns the length of a quoted span, delimiters included.
// A doubled terminator inside the span is an escaped char, not the end,
// so is a char after a backslash when backslash is set.
func (t *Tokenizer) lengthUntilTerminatedChar(terminator byte, backslash bool) (int, error) {
	length := 1
	for t.charAt(t.offset+length) != terminator || t.hasEscapeChar(terminator, t.offset+length) {
		if t.offset+length >= len(t.input) {
			return 0, &UnterminatedCharError{Offset: t.offset, Terminator: terminator}
		}
		if backslash && t.charAt(t.offset+length) == '\\' {
			length += 2
			continue
		}
		if t.hasEscapeChar(terminator, t.offset+length) {
			length++
		}
		length++
	}
	return length + 1, nil
}

func (t *Tokenizer) hasEscapeChar(terminator byte, offset int) bool {
	return t.charAt(offset) == terminator && t.charAt(offset+1) == terminator
}

// ScanHexDecimal scans 0x[-]hex.
func (t *Tokenizer) ScanHexDecimal() Token {
	length := hexBeginLength
	if t.charAt(t.offset+length) == '-' {
		length++
	}
	for IsHex(t.charAt(t.offset + length)) {
		length++
	}
	return t.token(HEX, t.input[t.offset:t.offset+length], length)
}

// ScanNumber scans an integer or a float.
func (t *Tokenizer) ScanNumber() Token {
	length := 0
	if t.charAt(t.offset) == '-' {
		length++
	}
	length += t.digitalLength(t.offset + length)
	isFloat := false
	if t.charAt(t.offset+length) == '.' {
		isFloat = true
		length++
		length += t.digitalLength(t.offset + length)
	}
	if ch := t.charAt(t.offset + length); ch == 'e' || ch == 'E' {
		isFloat = true
		length++
		if ch := t.charAt(t.offset + length); ch == '+' || ch == '-' {
			length++
		}
		length += t.digitalLength(t.offset + length)
	}
	switch t.charAt(t.offset + length) {
	case 'f', 'F', 'd', 'D':
		isFloat = true
		length++
	}
	typ := INT
	if isFloat {
		typ = FLOAT
	}
	return t.token(typ, t.input[t.offset:t.offset+length], length)
}

func (t *Tokenizer) digitalLength(offset int) int {
	n := 0
	for IsDigital(t.charAt(offset + n)) {
		n++
	}
	return n
}

// ScanChars scans a quoted string, the text excludes the delimiters and keeps the escapes.
func (t *Tokenizer) ScanChars() (Token, error) {
	terminator := t.charAt(t.offset)
	length, err := t.lengthUntilTerminatedChar(terminator, t.backslashEscape)
	if err != nil {
		return Token{}, err
	}
	return t.token(CHARS, t.input[t.offset+1:t.offset+length-1], length), nil
}

// ScanSymbol scans the longest known symbol.
func (t *Tokenizer) ScanSymbol() Token {
	length := 0
	for IsSymbol(t.charAt(t.offset + length)) {
		length++
	}
	for length > 0 {
		literals := t.input[t.offset : t.offset+length]
		if typ, ok := Symbol(literals); ok {
			return t.token(typ, literals, length)
		}
		length--
	}
	return t.token(ERROR, "", 0)
}

func (t *Tokenizer) token(typ TokenType, text string, length int) Token {
	return Token{
		Type:  typ,
		Text:  text,
		Start: t.offset,
		End:   t.offset + length,
	}
}
