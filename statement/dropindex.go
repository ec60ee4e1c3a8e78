/*
 * Radon
 *
 * Copyright 2019 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package statement

import (
	"github.com/radondb/shardcore/lexer"

	"github.com/pkg/errors"
)

var (
	keywordDrop   = lexer.Keyword("DROP")
	keywordIndex  = lexer.Keyword("INDEX")
	keywordIf     = lexer.Keyword("IF")
	keywordExists = lexer.Keyword("EXISTS")
	keywordOn     = lexer.Keyword("ON")
)

// ParseDropIndex parses 'DROP INDEX [IF EXISTS] name [ON [db.]table]'.
func ParseDropIndex(query string, dialect lexer.Dialect) (*DropIndexStatement, error) {
	loc, err := newLocator(query, dialect)
	if err != nil {
		return nil, err
	}
	syntaxError := func(i int) error {
		return errors.Errorf("statement.drop.index.syntax.error.at.position[%d].near[%s]", loc.token(i).Start, loc.token(i).Text)
	}

	i := 0
	if loc.token(i).Type != keywordDrop {
		return nil, syntaxError(i)
	}
	i++
	if loc.token(i).Type != keywordIndex {
		return nil, syntaxError(i)
	}
	i++
	if loc.token(i).Type == keywordIf {
		if loc.token(i+1).Type != keywordExists {
			return nil, syntaxError(i + 1)
		}
		i += 2
	}
	if !isNameToken(loc.token(i)) {
		return nil, syntaxError(i)
	}
	stmt := &DropIndexStatement{IndexName: unquote(loc.token(i).Text)}
	i++

	if loc.token(i).Type == keywordOn {
		i++
		if !isNameToken(loc.token(i)) {
			return nil, syntaxError(i)
		}
		// db.table names the table.
		if loc.isSymbol(i+1, ".") {
			if !isNameToken(loc.token(i + 2)) {
				return nil, syntaxError(i + 2)
			}
			i += 2
		}
		tok := loc.token(i)
		stmt.TableList = Tables{{Name: unquote(tok.Text), StartIndex: tok.Start, StopIndex: tok.End - 1}}
		i++
	}
	if loc.isSymbol(i, ";") {
		i++
	}
	if loc.token(i).Type != lexer.END {
		return nil, syntaxError(i)
	}
	return stmt, nil
}

func isNameToken(tok lexer.Token) bool {
	return tok.Type == lexer.IDENTIFIER || (tok.Type.IsKeyword() && tok.Type != keywordOn)
}
