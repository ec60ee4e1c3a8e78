/*
 * Radon
 *
 * Copyright 2019 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package statement

import (
	"strings"

	"github.com/radondb/shardcore/lexer"

	"github.com/pkg/errors"
)

var (
	keywordWhere   = lexer.Keyword("WHERE")
	keywordIn      = lexer.Keyword("IN")
	keywordBetween = lexer.Keyword("BETWEEN")
	keywordAnd     = lexer.Keyword("AND")
	keywordOr      = lexer.Keyword("OR")
)

// clauseEnds are the keywords closing a WHERE clause.
var clauseEnds = map[lexer.TokenType]bool{
	lexer.Keyword("GROUP"):  true,
	lexer.Keyword("ORDER"):  true,
	lexer.Keyword("HAVING"): true,
	lexer.Keyword("LIMIT"):  true,
	lexer.Keyword("UNION"):  true,
	lexer.Keyword("FOR"):    true,
}

var compareOperators = map[string]bool{
	"=":   true,
	"<>":  true,
	"!=":  true,
	"<":   true,
	">":   true,
	"<=":  true,
	">=":  true,
	"<=>": true,
}

// locator finds the source positions of the segments built from an AST.
// Every WHERE leaf must be located, in source order.
type locator struct {
	tokens []lexer.Token
	pos    int
}

func newLocator(query string, dialect lexer.Dialect) (*locator, error) {
	tokens, err := lexer.NewLexer(query, dialect).Tokens()
	if err != nil {
		return nil, err
	}
	return &locator{tokens: tokens}, nil
}

// unquote strips the identifier delimiters.
func unquote(text string) string {
	if len(text) >= 2 {
		switch first, last := text[0], text[len(text)-1]; {
		case first == '`' && last == '`', first == '"' && last == '"', first == '[' && last == ']':
			return text[1 : len(text)-1]
		}
	}
	return text
}

func (l *locator) token(i int) lexer.Token {
	if i >= 0 && i < len(l.tokens) {
		return l.tokens[i]
	}
	return lexer.Token{Type: lexer.END}
}

func (l *locator) isSymbol(i int, symbol string) bool {
	tok := l.token(i)
	return tok.Type.IsSymbol() && tok.Text == symbol
}

func (l *locator) isName(i int, name string) bool {
	tok := l.token(i)
	return (tok.Type == lexer.IDENTIFIER || tok.Type.IsKeyword()) && strings.EqualFold(unquote(tok.Text), name)
}

// seekWhere moves the cursor past the first top-level WHERE.
func (l *locator) seekWhere() bool {
	depth := 0
	for i := l.pos; i < len(l.tokens); i++ {
		switch {
		case l.isSymbol(i, "("):
			depth++
		case l.isSymbol(i, ")"):
			depth--
		case depth == 0 && l.tokens[i].Type == keywordWhere:
			l.pos = i + 1
			return true
		}
	}
	return false
}

// findTable locates the next reference to the table name.
func (l *locator) findTable(name string) (int, int) {
	for i := l.pos; i < len(l.tokens); i++ {
		if l.isName(i, name) && !l.isSymbol(i+1, ".") {
			l.pos = i + 1
			return l.tokens[i].Start, l.tokens[i].End - 1
		}
	}
	return -1, -1
}

// nextLeaf returns the token range [start, end) of the next WHERE leaf and moves past it.
// A leaf ends at a top-level AND or OR, at the ')' closing its group or at the end of the clause.
// The AND of a BETWEEN belongs to the leaf, parentheses inside the leaf are skipped as a whole.
func (l *locator) nextLeaf() (int, int, error) {
	start := l.skipConnectors()
	if l.isClauseEnd(start) || l.isSymbol(start, ")") {
		return 0, 0, errors.Errorf("statement.can.not.locate.where.condition.at.token[%d]", start)
	}

	depth, between := 0, false
	end := start
	for ; end < len(l.tokens); end++ {
		if l.isSymbol(end, "(") {
			depth++
			continue
		}
		if l.isSymbol(end, ")") {
			if depth == 0 {
				break
			}
			depth--
			continue
		}
		if depth > 0 {
			continue
		}
		typ := l.tokens[end].Type
		if typ == keywordBetween {
			between = true
			continue
		}
		if between && typ == keywordAnd {
			between = false
			continue
		}
		if l.isConnector(end) || l.isClauseEnd(end) {
			break
		}
	}
	l.pos = end
	return start, end, nil
}

// openGroup moves past the '(' of a parenthesized condition.
func (l *locator) openGroup() error {
	i := l.skipConnectors()
	if !l.isSymbol(i, "(") {
		return errors.Errorf("statement.can.not.locate.open.paren.at.token[%d]", i)
	}
	l.pos = i + 1
	return nil
}

// closeGroup moves past the ')' of a parenthesized condition.
func (l *locator) closeGroup() error {
	if !l.isSymbol(l.pos, ")") {
		return errors.Errorf("statement.can.not.locate.close.paren.at.token[%d]", l.pos)
	}
	l.pos++
	return nil
}

func (l *locator) skipConnectors() int {
	i := l.pos
	for i < len(l.tokens) && l.isConnector(i) {
		i++
	}
	return i
}

func (l *locator) isConnector(i int) bool {
	typ := l.token(i).Type
	return typ == keywordAnd || typ == keywordOr || l.isSymbol(i, "&&") || l.isSymbol(i, "||")
}

func (l *locator) isClauseEnd(i int) bool {
	typ := l.token(i).Type
	return typ == lexer.END || clauseEnds[typ] || l.isSymbol(i, ";")
}

// columnAt returns the index of the token after the column starting at i.
func (l *locator) columnAt(i int, column Column) (int, bool) {
	// db.table.column
	if l.isSymbol(i+1, ".") && l.isSymbol(i+3, ".") {
		i += 2
	}
	if column.Owner != "" {
		if l.isName(i, column.Owner) && l.isSymbol(i+1, ".") && l.isName(i+2, column.Name) {
			return i + 3, true
		}
		return 0, false
	}
	if l.isName(i, column.Name) {
		return i + 1, true
	}
	return 0, false
}

// span returns the source positions of the tokens [start, end).
func (l *locator) span(start int, end int) (int, int) {
	return l.tokens[start].Start, l.tokens[end-1].End - 1
}
