/*
 * Radon
 *
 * Copyright 2019 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package optimizer

import (
	"fmt"
	"strconv"

	"github.com/radondb/shardcore/encrypt"
	"github.com/radondb/shardcore/lexer"
	"github.com/radondb/shardcore/statement"

	"github.com/pkg/errors"
)

const (
	// OperatorIn is the operator of IN conditions.
	OperatorIn = "IN"
)

// Condition is a predicate on an encrypted column.
type Condition struct {
	Table    string
	Column   string
	Operator string
	Values   []statement.Value
	// StartIndex and StopIndex locate the predicate in the query.
	StartIndex int
	StopIndex  int
}

// ConditionValues returns the values of the condition, the parameters taken from params.
func (c *Condition) ConditionValues(params []interface{}) ([]interface{}, error) {
	values := make([]interface{}, 0, len(c.Values))
	for _, v := range c.Values {
		if v.IsParameter() {
			if v.Parameter >= len(params) {
				return nil, errors.Errorf("optimizer.condition[%s.%s].parameter[%d].out.of.range[%d]", c.Table, c.Column, v.Parameter, len(params))
			}
			values = append(values, params[v.Parameter])
			continue
		}
		values = append(values, literalOf(v))
	}
	return values, nil
}

func literalOf(v statement.Value) interface{} {
	switch v.Kind {
	case lexer.INT:
		if n, err := strconv.ParseInt(v.Literal, 10, 64); err == nil {
			return n
		}
	case lexer.FLOAT:
		if f, err := strconv.ParseFloat(v.Literal, 64); err == nil {
			return f
		}
	}
	return v.Literal
}

// Rewrite returns the column and the values the condition is rewritten to.
// The assisted query column is used when the column has one.
func (c *Condition) Rewrite(rule *encrypt.Rule, params []interface{}) (string, []string, error) {
	encryptor, ok := rule.GetShardingEncryptor(c.Table, c.Column)
	if !ok {
		return "", nil, errors.Errorf("optimizer.condition[%s.%s].encryptor.not.found", c.Table, c.Column)
	}
	values, err := c.ConditionValues(params)
	if err != nil {
		return "", nil, err
	}

	rewritten := make([]string, 0, len(values))
	if column, ok := rule.GetAssistedQueryColumn(c.Table, c.Column); ok {
		if assisted, ok := encryptor.(encrypt.QueryAssistedEncryptor); ok {
			for _, v := range values {
				rewritten = append(rewritten, assisted.QueryAssistedEncrypt(fmt.Sprint(v)))
			}
			return column, rewritten, nil
		}
	}

	column, _ := rule.GetCipherColumn(c.Table, c.Column)
	for _, v := range values {
		cipher, err := encryptor.Encrypt(fmt.Sprint(v))
		if err != nil {
			return "", nil, errors.Wrapf(err, "optimizer.condition[%s.%s]", c.Table, c.Column)
		}
		rewritten = append(rewritten, cipher)
	}
	return column, rewritten, nil
}

// AndCondition is a conjunction of conditions.
type AndCondition struct {
	Conditions []*Condition
}

// FindConditions returns the conditions on the column.
func (a *AndCondition) FindConditions(table string, column string) []*Condition {
	var conditions []*Condition
	for _, c := range a.Conditions {
		if c.Table == table && c.Column == column {
			conditions = append(conditions, c)
		}
	}
	return conditions
}
