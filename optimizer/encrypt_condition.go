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

var equalOperators = map[string]bool{
	"=":  true,
	"<>": true,
	"!=": true,
}

// WhereClauseEncryptConditionEngine builds the conditions on the encrypted columns of a WHERE clause.
type WhereClauseEncryptConditionEngine struct {
	log      *xlog.Log
	rule     *encrypt.Rule
	metaData *metadata.ShardingTableMetaData
}

// NewWhereClauseEncryptConditionEngine creates the new engine.
func NewWhereClauseEncryptConditionEngine(log *xlog.Log, rule *encrypt.Rule, metaData *metadata.ShardingTableMetaData) *WhereClauseEncryptConditionEngine {
	return &WhereClauseEncryptConditionEngine{
		log:      log,
		rule:     rule,
		metaData: metaData,
	}
}

// CreateEncryptConditions returns the conditions in the order they are met.
// A predicate shared by several OR branches gives one condition.
func (e *WhereClauseEncryptConditionEngine) CreateEncryptConditions(stmt statement.Statement) (*AndCondition, error) {
	result := &AndCondition{}
	seen := make(map[int]bool)
	for _, or := range stmt.OrPredicates() {
		for _, and := range or.AndPredicates {
			for _, predicate := range and.Predicates {
				if seen[predicate.StopIndex] {
					continue
				}
				seen[predicate.StopIndex] = true

				condition, err := e.createEncryptCondition(stmt.Tables(), predicate)
				if err != nil {
					return nil, err
				}
				if condition != nil {
					result.Conditions = append(result.Conditions, condition)
				}
			}
		}
	}
	return result, nil
}

func (e *WhereClauseEncryptConditionEngine) createEncryptCondition(tables statement.Tables, predicate *statement.PredicateSegment) (*Condition, error) {
	table, ok := e.findTableName(tables, predicate.Column)
	if !ok {
		return nil, nil
	}
	if _, ok := e.rule.GetShardingEncryptor(table, predicate.Column.Name); !ok {
		return nil, nil
	}

	condition := &Condition{
		Table:      table,
		Column:     predicate.Column.Name,
		StartIndex: predicate.StartIndex,
		StopIndex:  predicate.StopIndex,
	}
	switch value := predicate.RightValue.(type) {
	case *statement.CompareRightValue:
		if !equalOperators[value.Operator] {
			e.log.Debug("optimizer.encrypt.column[%s.%s].operator[%s].skipped", table, condition.Column, value.Operator)
			return nil, nil
		}
		condition.Operator = value.Operator
		condition.Values = []statement.Value{value.Value}
	case *statement.InRightValue:
		condition.Operator = OperatorIn
		condition.Values = value.Values
	case *statement.BetweenRightValue:
		return nil, &UnsupportedPredicateShapeError{Table: table, Column: condition.Column, Shape: "BETWEEN"}
	default:
		return nil, nil
	}
	return condition, nil
}

// findTableName resolves the logic table of the column:
// the owner if any, else the single table, else the first table having the column.
func (e *WhereClauseEncryptConditionEngine) findTableName(tables statement.Tables, column statement.Column) (string, bool) {
	if owner, ok := column.FindOwner(); ok {
		table, ok := tables.Find(owner)
		return table.Name, ok
	}
	if tables.IsSingleTable() {
		return tables.SingleTableName(), true
	}
	if e.metaData == nil {
		return "", false
	}
	for _, name := range tables.TableNames() {
		if e.metaData.ContainsColumn(name, column.Name) {
			return name, true
		}
	}
	return "", false
}

// EncryptConditionOptimizedStatement is the statement with its encrypt conditions.
type EncryptConditionOptimizedStatement struct {
	stmt         statement.Statement
	AndCondition *AndCondition
}

// SQLStatement implements OptimizedStatement.
func (s *EncryptConditionOptimizedStatement) SQLStatement() statement.Statement {
	return s.stmt
}

// EncryptConditionOptimizeEngine resolves the encrypt conditions of a SELECT, UPDATE or DELETE.
type EncryptConditionOptimizeEngine struct {
	log    *xlog.Log
	stmt   statement.Statement
	engine *WhereClauseEncryptConditionEngine
}

// NewEncryptConditionOptimizeEngine creates the new engine.
func NewEncryptConditionOptimizeEngine(log *xlog.Log, stmt statement.Statement, rule *encrypt.Rule, metaData *metadata.ShardingTableMetaData) *EncryptConditionOptimizeEngine {
	return &EncryptConditionOptimizeEngine{
		log:    log,
		stmt:   stmt,
		engine: NewWhereClauseEncryptConditionEngine(log, rule, metaData),
	}
}

// Optimize implements OptimizeEngine.
func (e *EncryptConditionOptimizeEngine) Optimize() (OptimizedStatement, error) {
	condition, err := e.engine.CreateEncryptConditions(e.stmt)
	if err != nil {
		return nil, err
	}
	return &EncryptConditionOptimizedStatement{
		stmt:         e.stmt,
		AndCondition: condition,
	}, nil
}
