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
)

// Column is a column reference in a predicate.
type Column struct {
	Name string
	// Owner is the table name or alias qualifying the column, empty if unqualified.
	Owner string
}

// FindOwner returns the qualifier of the column.
func (c Column) FindOwner() (string, bool) {
	return c.Owner, c.Owner != ""
}

// TableSegment is a table reference with its position in the query.
type TableSegment struct {
	Name       string
	Alias      string
	StartIndex int
	StopIndex  int
}

// Tables is the table references of a statement, in source order.
type Tables []TableSegment

// IsEmpty returns true if there is no table.
func (ts Tables) IsEmpty() bool {
	return len(ts) == 0
}

// TableNames returns the distinct table names, case-insensitive, first seen wins.
func (ts Tables) TableNames() []string {
	var names []string
	for _, t := range ts {
		dup := false
		for _, n := range names {
			if strings.EqualFold(n, t.Name) {
				dup = true
				break
			}
		}
		if !dup {
			names = append(names, t.Name)
		}
	}
	return names
}

// IsSingleTable returns true if all references name the same table.
func (ts Tables) IsSingleTable() bool {
	return len(ts.TableNames()) == 1
}

// SingleTableName returns the first table name, empty if there is no table.
func (ts Tables) SingleTableName() string {
	if ts.IsEmpty() {
		return ""
	}
	return ts[0].Name
}

// Find finds the table by name first, then by alias.
func (ts Tables) Find(nameOrAlias string) (TableSegment, bool) {
	for _, t := range ts {
		if strings.EqualFold(t.Name, nameOrAlias) {
			return t, true
		}
	}
	for _, t := range ts {
		if t.Alias != "" && strings.EqualFold(t.Alias, nameOrAlias) {
			return t, true
		}
	}
	return TableSegment{}, false
}

// Value is a literal or a '?' parameter of a predicate.
type Value struct {
	Literal string
	Kind    lexer.TokenType
	// Parameter is the 0-based index of the '?' marker, -1 for literals.
	Parameter int
}

// LiteralValue creates a literal value.
func LiteralValue(literal string, kind lexer.TokenType) Value {
	return Value{Literal: literal, Kind: kind, Parameter: -1}
}

// ParameterValue creates a parameter value.
func ParameterValue(index int) Value {
	return Value{Parameter: index}
}

// IsParameter returns true for '?' markers.
func (v Value) IsParameter() bool {
	return v.Parameter >= 0
}

// RightValue is the right side of a predicate:
// *CompareRightValue, *InRightValue or *BetweenRightValue.
type RightValue interface {
	iRightValue()
}

// CompareRightValue is 'column <op> value'.
type CompareRightValue struct {
	Operator string
	Value    Value
}

// InRightValue is 'column IN (values)'.
type InRightValue struct {
	Values []Value
}

// BetweenRightValue is 'column BETWEEN value AND value'.
type BetweenRightValue struct {
	Between Value
	And     Value
}

func (*CompareRightValue) iRightValue() {}
func (*InRightValue) iRightValue()      {}
func (*BetweenRightValue) iRightValue() {}

// PredicateSegment is one predicate with its position.
// StopIndex is the offset of its last char and identifies the predicate in the query.
type PredicateSegment struct {
	StartIndex int
	StopIndex  int
	Column     Column
	RightValue RightValue
}

// AndPredicate is a conjunction of predicates.
type AndPredicate struct {
	Predicates []*PredicateSegment
}

// OrPredicateSegment is a disjunction of conjunctions.
type OrPredicateSegment struct {
	AndPredicates []*AndPredicate
}

// Statement is the parsed statement seen by the optimizers.
type Statement interface {
	Tables() Tables
	OrPredicates() []*OrPredicateSegment
}

// Base is the part shared by every statement.
type Base struct {
	TableList  Tables
	Predicates []*OrPredicateSegment
}

// Tables implements Statement.
func (b *Base) Tables() Tables {
	return b.TableList
}

// OrPredicates implements Statement.
func (b *Base) OrPredicates() []*OrPredicateSegment {
	return b.Predicates
}

// SelectStatement tuple.
type SelectStatement struct {
	Base
}

// UpdateStatement tuple.
type UpdateStatement struct {
	Base
}

// DeleteStatement tuple.
type DeleteStatement struct {
	Base
}

// InsertStatement tuple.
type InsertStatement struct {
	Base
	// Columns is the explicit column list, empty if omitted.
	Columns []string
}

// Table returns the insert target.
func (s *InsertStatement) Table() string {
	return s.TableList.SingleTableName()
}

// DropIndexStatement tuple.
type DropIndexStatement struct {
	Base
	IndexName string
}

// GeneralStatement is any statement the optimizers pass through.
type GeneralStatement struct {
	Base
}
