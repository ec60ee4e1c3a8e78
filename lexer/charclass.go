/*
 * Radon
 *
 * Copyright 2019 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package lexer

// EOI is returned by every char lookup past the end of the input.
const EOI byte = 0x1A

type charClass uint8

const (
	classAlphabet charClass = 1 << iota
	classDigit
	classWhitespace
	classSymbol
	classHex
	classHighBit
)

var charClassTable [256]charClass

func init() {
	for b := '0'; b <= '9'; b++ {
		charClassTable[b] |= classDigit | classHex
	}
	for b := 'a'; b <= 'z'; b++ {
		charClassTable[b] |= classAlphabet
		if b <= 'f' {
			charClassTable[b] |= classHex
		}
	}
	for b := 'A'; b <= 'Z'; b++ {
		charClassTable[b] |= classAlphabet
		if b <= 'F' {
			charClassTable[b] |= classHex
		}
	}
	// Control chars, space and DEL, except the end-of-input marker.
	for b := 0; b <= 0x20; b++ {
		if byte(b) != EOI {
			charClassTable[b] |= classWhitespace
		}
	}
	charClassTable[0x7F] |= classWhitespace
	for b := 0x80; b <= 0xFF; b++ {
		charClassTable[b] |= classHighBit
	}
	for _, b := range []byte("()[]{}+-*/%^=><~!?&|.:#,;") {
		charClassTable[b] |= classSymbol
	}
}

// IsWhitespace returns true if the ch is a blank char.
func IsWhitespace(ch byte) bool {
	return charClassTable[ch]&classWhitespace != 0
}

// IsEndOfInput returns true if the ch is the end-of-input marker.
func IsEndOfInput(ch byte) bool {
	return ch == EOI
}

// IsAlphabet returns true if the ch is an ASCII letter.
func IsAlphabet(ch byte) bool {
	return charClassTable[ch]&classAlphabet != 0
}

// IsDigital returns true if the ch is a decimal digit.
func IsDigital(ch byte) bool {
	return charClassTable[ch]&classDigit != 0
}

// IsHex returns true if the ch is a hexadecimal digit.
func IsHex(ch byte) bool {
	return charClassTable[ch]&classHex != 0
}

// IsSymbol returns true if the ch can be part of a symbol token.
func IsSymbol(ch byte) bool {
	return charClassTable[ch]&classSymbol != 0
}

// IsHighBit returns true for the bytes of a multi-byte UTF-8 sequence.
func IsHighBit(ch byte) bool {
	return charClassTable[ch]&classHighBit != 0
}

// IsIdentifierChar returns true if the ch can continue a bare identifier.
func IsIdentifierChar(ch byte) bool {
	return IsAlphabet(ch) || IsDigital(ch) || IsHighBit(ch) || ch == '_' || ch == '$' || ch == '#'
}
