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

	"github.com/pkg/errors"
)

var (
	_ Dialect = &DefaultDialect{}
	_ Dialect = &MySQLDialect{}
	_ Dialect = &SQLServerDialect{}
)

// Dialect holds the language specific lexer hooks.
type Dialect interface {
	Name() string
	Keywords() []string
	IsHintBegin(l *Lexer) bool
	IsCommentBegin(l *Lexer) bool
	IsVariableBegin(l *Lexer) bool
	IsIdentifierBegin(ch byte) bool
	SupportNChars() bool
	SupportBackslashEscape() bool
}

// DefaultDialect tuple.
type DefaultDialect struct{}

// Name impl.
func (d *DefaultDialect) Name() string { return "default" }

// Keywords impl.
func (d *DefaultDialect) Keywords() []string { return nil }

// IsHintBegin impl.
func (d *DefaultDialect) IsHintBegin(l *Lexer) bool { return false }

// IsCommentBegin returns true on //, -- and /*.
func (d *DefaultDialect) IsCommentBegin(l *Lexer) bool {
	current, next := l.CharAt(0), l.CharAt(1)
	return (current == '/' && next == '/') || (current == '-' && next == '-') || (current == '/' && next == '*')
}

// IsVariableBegin impl.
func (d *DefaultDialect) IsVariableBegin(l *Lexer) bool { return false }

// IsIdentifierBegin returns true on letters, backtick, underscore and dollar.
func (d *DefaultDialect) IsIdentifierBegin(ch byte) bool {
	return IsAlphabet(ch) || IsHighBit(ch) || ch == '`' || ch == '_' || ch == '$'
}

// SupportNChars impl.
func (d *DefaultDialect) SupportNChars() bool { return false }

// SupportBackslashEscape impl.
func (d *DefaultDialect) SupportBackslashEscape() bool { return false }

// MySQLDialect tuple.
type MySQLDialect struct {
	DefaultDialect
}

// Name impl.
func (d *MySQLDialect) Name() string { return "mysql" }

// Keywords impl.
func (d *MySQLDialect) Keywords() []string { return MySQLKeywords }

// IsHintBegin returns true on /*!.
func (d *MySQLDialect) IsHintBegin(l *Lexer) bool {
	return l.CharAt(0) == '/' && l.CharAt(1) == '*' && l.CharAt(2) == '!'
}

// IsCommentBegin adds # to the default comments.
func (d *MySQLDialect) IsCommentBegin(l *Lexer) bool {
	return l.CharAt(0) == '#' || d.DefaultDialect.IsCommentBegin(l)
}

// IsVariableBegin returns true on @.
func (d *MySQLDialect) IsVariableBegin(l *Lexer) bool {
	return l.CharAt(0) == '@'
}

// SupportNChars impl.
func (d *MySQLDialect) SupportNChars() bool { return true }

// SupportBackslashEscape returns true, MySQL strings escape with '\'.
func (d *MySQLDialect) SupportBackslashEscape() bool { return true }

// SQLServerDialect tuple.
type SQLServerDialect struct {
	DefaultDialect
}

// Name impl.
func (d *SQLServerDialect) Name() string { return "sqlserver" }

// Keywords impl.
func (d *SQLServerDialect) Keywords() []string { return SQLServerKeywords }

// IsVariableBegin returns true on @.
func (d *SQLServerDialect) IsVariableBegin(l *Lexer) bool {
	return l.CharAt(0) == '@'
}

// IsIdentifierBegin adds the bracket quote.
func (d *SQLServerDialect) IsIdentifierBegin(ch byte) bool {
	return ch == '[' || d.DefaultDialect.IsIdentifierBegin(ch)
}

// SupportNChars impl.
func (d *SQLServerDialect) SupportNChars() bool { return true }

// DialectByName returns the dialect registered under the name.
func DialectByName(name string) (Dialect, error) {
	switch strings.ToLower(name) {
	case "", "default", "sql92":
		return &DefaultDialect{}, nil
	case "mysql":
		return &MySQLDialect{}, nil
	case "sqlserver":
		return &SQLServerDialect{}, nil
	}
	return nil, errors.Errorf("lexer.unsupported.dialect[%s]", name)
}
