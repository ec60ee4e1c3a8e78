/*
 * Radon
 *
 * Copyright 2019 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package optimizer

import (
	"strings"

	"github.com/radondb/shardcore/encrypt"
	"github.com/radondb/shardcore/metadata"
	"github.com/radondb/shardcore/statement"

	"github.com/pkg/errors"
	"github.com/xelabs/go-mysqlstack/xlog"
)

// EncryptInsertColumns are the columns an INSERT writes once encrypted.
type EncryptInsertColumns struct {
	RegularColumnNames       []string
	AssistedQueryColumnNames []string
}

// NewEncryptInsertColumns resolves the columns of the insert.
// Without an explicit column list the regular columns are the table columns
// minus the assisted query ones.
func NewEncryptInsertColumns(rule *encrypt.Rule, metaData *metadata.ShardingTableMetaData, stmt *statement.InsertStatement) *EncryptInsertColumns {
	table := stmt.Table()
	columns := &EncryptInsertColumns{
		AssistedQueryColumnNames: rule.GetAssistedQueryColumns(table),
	}
	if len(stmt.Columns) > 0 {
		columns.RegularColumnNames = append(columns.RegularColumnNames, stmt.Columns...)
		return columns
	}
	if metaData == nil {
		return columns
	}
	for _, name := range metaData.GetAllColumnNames(table) {
		if !containsFold(columns.AssistedQueryColumnNames, name) {
			columns.RegularColumnNames = append(columns.RegularColumnNames, name)
		}
	}
	return columns
}

// AllColumnNames returns the regular columns followed by the assisted query ones
// not already listed.
func (c *EncryptInsertColumns) AllColumnNames() []string {
	all := make([]string, 0, len(c.RegularColumnNames)+len(c.AssistedQueryColumnNames))
	all = append(all, c.RegularColumnNames...)
	for _, name := range c.AssistedQueryColumnNames {
		if !containsFold(all, name) {
			all = append(all, name)
		}
	}
	return all
}

func containsFold(names []string, name string) bool {
	for _, n := range names {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}

// InsertOptimizedStatement is the INSERT with its encrypt columns.
type InsertOptimizedStatement struct {
	stmt    *statement.InsertStatement
	Columns *EncryptInsertColumns
}

// SQLStatement implements OptimizedStatement.
func (s *InsertOptimizedStatement) SQLStatement() statement.Statement {
	return s.stmt
}

// EncryptInsertOptimizeEngine resolves the columns of an INSERT.
type EncryptInsertOptimizeEngine struct {
	log      *xlog.Log
	stmt     *statement.InsertStatement
	rule     *encrypt.Rule
	metaData *metadata.ShardingTableMetaData
}

// NewEncryptInsertOptimizeEngine creates the new engine.
func NewEncryptInsertOptimizeEngine(log *xlog.Log, stmt *statement.InsertStatement, rule *encrypt.Rule, metaData *metadata.ShardingTableMetaData) *EncryptInsertOptimizeEngine {
	return &EncryptInsertOptimizeEngine{
		log:      log,
		stmt:     stmt,
		rule:     rule,
		metaData: metaData,
	}
}

// Optimize implements OptimizeEngine.
func (e *EncryptInsertOptimizeEngine) Optimize() (OptimizedStatement, error) {
	if e.stmt.Table() == "" {
		return nil, errors.New("optimizer.insert.table.can.not.be.empty")
	}
	return &InsertOptimizedStatement{
		stmt:    e.stmt,
		Columns: NewEncryptInsertColumns(e.rule, e.metaData, e.stmt),
	}, nil
}
