/*
 * Radon
 *
 * Copyright 2019 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package lexer

import (
	"fmt"
	"strings"
)

// TokenClass is the family a TokenType belongs to.
type TokenClass int

const (
	// ClassLiteral enum.
	ClassLiteral TokenClass = iota
	// ClassKeyword enum.
	ClassKeyword
	// ClassSymbol enum.
	ClassSymbol
	// ClassAssist enum.
	ClassAssist
)

var classNames = [...]string{
	ClassLiteral: "LITERAL",
	ClassKeyword: "KEYWORD",
	ClassSymbol:  "SYMBOL",
	ClassAssist:  "ASSIST",
}

// String returns the class name.
func (c TokenClass) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return fmt.Sprintf("CLASS(%d)", int(c))
}

// TokenType tuple.
// Two types are equal iff class and name are equal.
type TokenType struct {
	Class TokenClass
	Name  string
}

var (
	// INT literal.
	INT = TokenType{Class: ClassLiteral, Name: "INT"}
	// FLOAT literal.
	FLOAT = TokenType{Class: ClassLiteral, Name: "FLOAT"}
	// HEX literal.
	HEX = TokenType{Class: ClassLiteral, Name: "HEX"}
	// CHARS literal.
	CHARS = TokenType{Class: ClassLiteral, Name: "CHARS"}
	// IDENTIFIER literal.
	IDENTIFIER = TokenType{Class: ClassLiteral, Name: "IDENTIFIER"}
	// VARIABLE literal.
	VARIABLE = TokenType{Class: ClassLiteral, Name: "VARIABLE"}

	// END of the input.
	END = TokenType{Class: ClassAssist, Name: "END"}
	// ERROR token.
	ERROR = TokenType{Class: ClassAssist, Name: "ERROR"}
)

// Keyword returns the keyword type of the word.
func Keyword(word string) TokenType {
	return TokenType{Class: ClassKeyword, Name: strings.ToUpper(word)}
}

// String returns CLASS:NAME.
func (t TokenType) String() string {
	return t.Class.String() + ":" + t.Name
}

// IsLiteral returns true for the literal types.
func (t TokenType) IsLiteral() bool {
	return t.Class == ClassLiteral
}

// IsKeyword returns true for the keyword types.
func (t TokenType) IsKeyword() bool {
	return t.Class == ClassKeyword
}

// IsSymbol returns true for the symbol types.
func (t TokenType) IsSymbol() bool {
	return t.Class == ClassSymbol
}

// Token tuple.
type Token struct {
	// Type of the token.
	Type TokenType
	// Text is the matched source text, without the delimiters for CHARS.
	Text string
	// Start is the offset of the first char of the token.
	Start int
	// End is the offset immediately past the token.
	End int
}

// String returns the token info.
func (t Token) String() string {
	return fmt.Sprintf("%s[%s]@%d", t.Type, t.Text, t.End)
}
