/*
 * Radon
 *
 * Copyright 2019 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package lexer

// Symbols known by the tokenizer.
// Every single symbol char is registered, so the longest-match backoff always terminates.
var symbols = map[string]TokenType{}

func init() {
	for _, literal := range []string{
		"(", ")", "{", "}", "[", "]", ";", ",", ".", "..",
		"+", "-", "*", "/", "?", "=", ">", "<", "!", "~", "^", "%",
		":", "::", ":=", "<=", ">=", "<=>", "<>", "!=", "!>", "!<",
		"&", "|", "&&", "||", "<<", ">>", "#",
	} {
		symbols[literal] = TokenType{Class: ClassSymbol, Name: literal}
	}
}

// Symbol returns the symbol type of the literal.
func Symbol(literal string) (TokenType, bool) {
	typ, ok := symbols[literal]
	return typ, ok
}
