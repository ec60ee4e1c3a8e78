/*
 * Radon
 *
 * Copyright 2019 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package optimizer

import (
	"github.com/radondb/shardcore/encrypt"
	"github.com/radondb/shardcore/metadata"
	"github.com/radondb/shardcore/statement"

	"github.com/xelabs/go-mysqlstack/xlog"
)

var (
	_ OptimizeEngine = &TransparentOptimizeEngine{}
	_ OptimizeEngine = &ShardingDropIndexOptimizeEngine{}
	_ OptimizeEngine = &EncryptInsertOptimizeEngine{}
	_ OptimizeEngine = &EncryptConditionOptimizeEngine{}
)

// OptimizeEngine interface.
type OptimizeEngine interface {
	Optimize() (OptimizedStatement, error)
}

// OptimizedStatement is the statement with the facts resolved by an engine.
type OptimizedStatement interface {
	SQLStatement() statement.Statement
}

// NewOptimizeEngine creates the engine for the statement.
// The encrypt rule and the metadata may be nil.
func NewOptimizeEngine(log *xlog.Log, stmt statement.Statement, rule *encrypt.Rule, metaData *metadata.ShardingTableMetaData) OptimizeEngine {
	switch stmt := stmt.(type) {
	case *statement.DropIndexStatement:
		return NewShardingDropIndexOptimizeEngine(log, stmt, metaData)
	case *statement.InsertStatement:
		if rule != nil {
			return NewEncryptInsertOptimizeEngine(log, stmt, rule, metaData)
		}
	case *statement.SelectStatement, *statement.UpdateStatement, *statement.DeleteStatement:
		if rule != nil {
			return NewEncryptConditionOptimizeEngine(log, stmt, rule, metaData)
		}
	}
	return NewTransparentOptimizeEngine(log, stmt)
}

// TransparentOptimizedStatement is the statement as is.
type TransparentOptimizedStatement struct {
	stmt statement.Statement
}

// SQLStatement implements OptimizedStatement.
func (s *TransparentOptimizedStatement) SQLStatement() statement.Statement {
	return s.stmt
}

// TransparentOptimizeEngine passes the statement through.
type TransparentOptimizeEngine struct {
	log  *xlog.Log
	stmt statement.Statement
}

// NewTransparentOptimizeEngine creates the new transparent engine.
func NewTransparentOptimizeEngine(log *xlog.Log, stmt statement.Statement) *TransparentOptimizeEngine {
	return &TransparentOptimizeEngine{
		log:  log,
		stmt: stmt,
	}
}

// Optimize implements OptimizeEngine.
func (e *TransparentOptimizeEngine) Optimize() (OptimizedStatement, error) {
	return &TransparentOptimizedStatement{stmt: e.stmt}, nil
}
