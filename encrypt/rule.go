/*
 * Radon
 *
 * Copyright 2019 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package encrypt

import (
	"strings"

	"github.com/radondb/shardcore/config"

	"github.com/pkg/errors"
	"github.com/xelabs/go-mysqlstack/xlog"
)

// Column is one encrypted logic column.
type Column struct {
	Name          string
	Cipher        string
	AssistedQuery string
	Encryptor     Encryptor
}

// Table is the encrypted columns of one table, in config order.
type Table struct {
	Name    string
	Columns []*Column
}

func (t *Table) column(name string) (*Column, bool) {
	for _, c := range t.Columns {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return nil, false
}

// Rule holds the encryptors of the tables. Read-only after NewRule.
type Rule struct {
	log    *xlog.Log
	tables []*Table
}

// NewRule creates the rule from the config.
func NewRule(log *xlog.Log, conf *config.EncryptRuleConfig) (*Rule, error) {
	rule := &Rule{log: log}
	if conf == nil {
		return rule, nil
	}
	for _, tconf := range conf.Tables {
		if tconf.Name == "" {
			return nil, errors.New("encrypt.table.name.can.not.be.empty")
		}
		if rule.IsEncryptTable(tconf.Name) {
			return nil, errors.Errorf("encrypt.table[%s].duplicate", tconf.Name)
		}
		table := &Table{Name: tconf.Name}
		for _, cconf := range tconf.Columns {
			if cconf.Name == "" {
				return nil, errors.Errorf("encrypt.table[%s].column.name.can.not.be.empty", tconf.Name)
			}
			encryptor, err := NewEncryptor(cconf.Encryptor, cconf.Key)
			if err != nil {
				return nil, errors.Wrapf(err, "encrypt.table[%s].column[%s]", tconf.Name, cconf.Name)
			}
			table.Columns = append(table.Columns, &Column{
				Name:          cconf.Name,
				Cipher:        cconf.Cipher,
				AssistedQuery: cconf.AssistedQuery,
				Encryptor:     encryptor,
			})
		}
		rule.tables = append(rule.tables, table)
		log.Debug("encrypt.rule.add.table[%s].columns[%d]", table.Name, len(table.Columns))
	}
	return rule, nil
}

func (r *Rule) table(name string) (*Table, bool) {
	for _, t := range r.tables {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return nil, false
}

// IsEncryptTable reports whether the table has encrypted columns.
func (r *Rule) IsEncryptTable(table string) bool {
	_, ok := r.table(table)
	return ok
}

// EncryptTableNames returns the encrypted tables in config order.
func (r *Rule) EncryptTableNames() []string {
	names := make([]string, 0, len(r.tables))
	for _, t := range r.tables {
		names = append(names, t.Name)
	}
	return names
}

// GetShardingEncryptor returns the encryptor of the column.
func (r *Rule) GetShardingEncryptor(table string, column string) (Encryptor, bool) {
	t, ok := r.table(table)
	if !ok {
		return nil, false
	}
	c, ok := t.column(column)
	if !ok {
		return nil, false
	}
	return c.Encryptor, true
}

// GetAssistedQueryColumns returns the assisted query columns of the table in config order.
func (r *Rule) GetAssistedQueryColumns(table string) []string {
	t, ok := r.table(table)
	if !ok {
		return nil
	}
	var columns []string
	for _, c := range t.Columns {
		if c.AssistedQuery != "" {
			columns = append(columns, c.AssistedQuery)
		}
	}
	return columns
}

// GetAssistedQueryColumn returns the assisted query column of the logic column.
func (r *Rule) GetAssistedQueryColumn(table string, column string) (string, bool) {
	if t, ok := r.table(table); ok {
		if c, ok := t.column(column); ok && c.AssistedQuery != "" {
			return c.AssistedQuery, true
		}
	}
	return "", false
}

// GetCipherColumn returns the column storing the cipher of the logic column.
// It is the logic column itself when no cipher column is configured.
func (r *Rule) GetCipherColumn(table string, logicColumn string) (string, bool) {
	if t, ok := r.table(table); ok {
		if c, ok := t.column(logicColumn); ok {
			if c.Cipher != "" {
				return c.Cipher, true
			}
			return c.Name, true
		}
	}
	return "", false
}
