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
)

// UnterminatedSpanError is returned when a comment or hint is never closed.
type UnterminatedSpanError struct {
	Offset     int
	Terminator string
}

// Error impl.
func (e *UnterminatedSpanError) Error() string {
	return fmt.Sprintf("lexer.unterminated.span.at[%d].expect[%s]", e.Offset, e.Terminator)
}

// UnterminatedCharError is returned when a quoted identifier or string is never closed.
type UnterminatedCharError struct {
	Offset     int
	Terminator byte
}

// Error impl.
func (e *UnterminatedCharError) Error() string {
	return fmt.Sprintf("lexer.unterminated.char.at[%d].expect[%c]", e.Offset, e.Terminator)
}

// UnexpectedCharacterError is returned when no token can start at the offset.
type UnexpectedCharacterError struct {
	Offset int
	Char   byte
}

// Error impl.
func (e *UnexpectedCharacterError) Error() string {
	return fmt.Sprintf("lexer.unexpected.char[%q].at[%d]", e.Char, e.Offset)
}
