/*
 * Radon
 *
 * Copyright 2019 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package optimizer

import (
	"github.com/radondb/shardcore/metadata"
	"github.com/radondb/shardcore/statement"

	"github.com/xelabs/go-mysqlstack/xlog"
)

// DropIndexOptimizedStatement is the DROP INDEX with its logic table.
type DropIndexOptimizedStatement struct {
	stmt      *statement.DropIndexStatement
	TableName string
}

// SQLStatement implements OptimizedStatement.
func (s *DropIndexOptimizedStatement) SQLStatement() statement.Statement {
	return s.stmt
}

// ShardingDropIndexOptimizeEngine resolves the table of the dropped index.
type ShardingDropIndexOptimizeEngine struct {
	log      *xlog.Log
	stmt     *statement.DropIndexStatement
	metaData *metadata.ShardingTableMetaData
}

// NewShardingDropIndexOptimizeEngine creates the new engine.
func NewShardingDropIndexOptimizeEngine(log *xlog.Log, stmt *statement.DropIndexStatement, metaData *metadata.ShardingTableMetaData) *ShardingDropIndexOptimizeEngine {
	return &ShardingDropIndexOptimizeEngine{
		log:      log,
		stmt:     stmt,
		metaData: metaData,
	}
}

// Optimize uses the table named by the statement, else the table owning the index.
func (e *ShardingDropIndexOptimizeEngine) Optimize() (OptimizedStatement, error) {
	if table := e.stmt.Tables().SingleTableName(); table != "" {
		return &DropIndexOptimizedStatement{stmt: e.stmt, TableName: table}, nil
	}
	if e.metaData != nil {
		if table, ok := e.metaData.GetLogicTableName(e.stmt.IndexName); ok {
			e.log.Debug("optimizer.drop.index[%s].resolved.to.table[%s]", e.stmt.IndexName, table)
			return &DropIndexOptimizedStatement{stmt: e.stmt, TableName: table}, nil
		}
	}
	return nil, &UnresolvedIndexTableError{IndexName: e.stmt.IndexName}
}
