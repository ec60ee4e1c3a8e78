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

var (
	// DefaultKeywords are the words every dialect treats as keywords.
	DefaultKeywords = []string{
		"SCHEMA", "DATABASE", "TABLE", "COLUMN", "VIEW", "INDEX", "TRIGGER", "SEQUENCE",
		"TABLESPACE", "FUNCTION", "PROCEDURE", "SELECT", "FROM", "WHERE", "ORDER", "GROUP",
		"BY", "ASC", "DESC", "HAVING", "DISTINCT", "UNION", "ALL", "AS", "ON", "JOIN",
		"INNER", "OUTER", "LEFT", "RIGHT", "FULL", "CROSS", "USING", "INSERT", "INTO",
		"VALUES", "SET", "UPDATE", "DELETE", "CREATE", "ALTER", "DROP", "TRUNCATE", "DEFAULT",
		"AND", "OR", "NOT", "NULL", "IS", "IN", "BETWEEN", "LIKE", "ESCAPE", "EXISTS",
		"CASE", "WHEN", "THEN", "ELSE", "END", "TRUE", "FALSE", "PRIMARY", "KEY", "UNIQUE",
		"FOREIGN", "REFERENCES", "CHECK", "CONSTRAINT", "IF", "FOR", "WITH", "LIMIT",
		"OFFSET", "BEGIN", "COMMIT", "ROLLBACK", "SAVEPOINT", "TRANSACTION", "GRANT",
		"REVOKE", "CAST", "INTERVAL", "COLLATE", "MAX", "MIN", "SUM", "COUNT", "AVG",
	}

	// MySQLKeywords are the MySQL specific keywords.
	MySQLKeywords = []string{
		"SHOW", "DUAL", "LIMIT", "OFFSET", "VALUE", "FORCE", "PARTITION", "DISTINCTROW",
		"KILL", "QUICK", "BINARY", "CACHE", "SQL_CACHE", "SQL_NO_CACHE", "SQL_CALC_FOUND_ROWS",
		"LOW_PRIORITY", "HIGH_PRIORITY", "DELAYED", "IGNORE", "DUPLICATE", "REPLACE",
		"STRAIGHT_JOIN", "AUTO_INCREMENT", "ENGINE", "CHARSET", "COMMENT", "REGEXP", "DIV",
		"XOR", "MOD", "USE", "DESCRIBE", "EXPLAIN",
	}

	// SQLServerKeywords are the SQLServer specific keywords.
	SQLServerKeywords = []string{
		"TOP", "ROW_NUMBER", "OVER", "PARTITION", "NOLOCK", "OUTPUT", "IDENTITY", "GO",
	}
)

// Dictionary used to classify a bare word as keyword or identifier.
type Dictionary struct {
	tokens map[string]TokenType
}

// NewDictionary creates the dictionary with the default keywords plus the extras.
func NewDictionary(extras ...[]string) *Dictionary {
	d := &Dictionary{
		tokens: make(map[string]TokenType, 256),
	}
	d.fill(DefaultKeywords)
	for _, words := range extras {
		d.fill(words)
	}
	return d
}

func (d *Dictionary) fill(words []string) {
	for _, word := range words {
		typ := Keyword(word)
		d.tokens[typ.Name] = typ
	}
}

// Lookup returns the keyword type of the literals, case insensitive.
func (d *Dictionary) Lookup(literals string) (TokenType, bool) {
	typ, ok := d.tokens[strings.ToUpper(literals)]
	return typ, ok
}

// FindTokenType returns the keyword type of the literals, or the fallback.
func (d *Dictionary) FindTokenType(literals string, fallback TokenType) TokenType {
	if typ, ok := d.Lookup(literals); ok {
		return typ
	}
	return fallback
}
