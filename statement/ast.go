/*
 * Radon
 *
 * Copyright 2019 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package statement

import (
	"strconv"
	"strings"

	"github.com/radondb/shardcore/lexer"
	"github.com/radondb/shardcore/xbase"

	"github.com/pkg/errors"
	"github.com/xelabs/go-mysqlstack/sqlparser"
)

const (
	// maxErrorQueryLength bounds the query text carried by the parse error.
	maxErrorQueryLength = 256
)

// Parse parses the MySQL query and adapts the AST.
func Parse(query string) (Statement, error) {
	node, err := sqlparser.Parse(query)
	if err != nil {
		return nil, errors.Wrapf(err, "statement.parse[%s]", xbase.TruncateQuery(query, maxErrorQueryLength))
	}
	return FromAST(query, node)
}

// FromAST adapts the AST of the query.
// The WHERE clause is expanded into OR-of-AND form, a predicate reached through
// several branches is the same segment in each of them.
func FromAST(query string, node sqlparser.Statement) (Statement, error) {
	b := &astBuilder{}

	switch node := node.(type) {
	case *sqlparser.Select:
		stmt := &SelectStatement{}
		if err := b.build(&stmt.Base, query, tablesOfExprs(node.From, nil), node.Where); err != nil {
			return nil, err
		}
		return stmt, nil
	case *sqlparser.Update:
		stmt := &UpdateStatement{}
		if err := b.build(&stmt.Base, query, tableOfName(node.Table, "", nil), node.Where); err != nil {
			return nil, err
		}
		return stmt, nil
	case *sqlparser.Delete:
		stmt := &DeleteStatement{}
		if err := b.build(&stmt.Base, query, tableOfName(node.Table, "", nil), node.Where); err != nil {
			return nil, err
		}
		return stmt, nil
	case *sqlparser.Insert:
		stmt := &InsertStatement{}
		if err := b.build(&stmt.Base, query, tableOfName(node.Table, "", nil), nil); err != nil {
			return nil, err
		}
		for _, column := range node.Columns {
			stmt.Columns = append(stmt.Columns, column.String())
		}
		return stmt, nil
	case *sqlparser.DDL:
		if node.Action == sqlparser.DropIndexStr {
			return ParseDropIndex(query, &lexer.MySQLDialect{})
		}
	}
	return &GeneralStatement{}, nil
}

func tableOfName(name sqlparser.TableName, alias string, tables Tables) Tables {
	if name.Name.IsEmpty() {
		return tables
	}
	return append(tables, TableSegment{Name: name.Name.String(), Alias: alias})
}

func tablesOfExprs(exprs sqlparser.TableExprs, tables Tables) Tables {
	for _, expr := range exprs {
		switch expr := expr.(type) {
		case *sqlparser.AliasedTableExpr:
			if name, ok := expr.Expr.(sqlparser.TableName); ok {
				tables = tableOfName(name, expr.As.String(), tables)
			}
		case *sqlparser.JoinTableExpr:
			tables = tablesOfExprs(sqlparser.TableExprs{expr.LeftExpr, expr.RightExpr}, tables)
		case *sqlparser.ParenTableExpr:
			tables = tablesOfExprs(expr.Exprs, tables)
		}
	}
	return tables
}

type astBuilder struct {
	loc *locator
	// params counts the unnumbered parameters.
	params int
}

func (b *astBuilder) build(base *Base, query string, tables Tables, where *sqlparser.Where) error {
	loc, err := newLocator(query, &lexer.MySQLDialect{})
	if err != nil {
		return err
	}
	b.loc = loc

	for i := range tables {
		tables[i].StartIndex, tables[i].StopIndex = loc.findTable(tables[i].Name)
	}
	base.TableList = tables

	if where == nil || where.Expr == nil {
		return nil
	}
	loc.pos = 0
	if !loc.seekWhere() {
		return errors.Errorf("statement.can.not.locate.where.in[%s]", xbase.TruncateQuery(query, maxErrorQueryLength))
	}
	groups, err := b.expand(where.Expr)
	if err != nil {
		return err
	}
	or := &OrPredicateSegment{}
	for _, group := range groups {
		if len(group) > 0 {
			or.AndPredicates = append(or.AndPredicates, &AndPredicate{Predicates: group})
		}
	}
	if len(or.AndPredicates) > 0 {
		base.Predicates = []*OrPredicateSegment{or}
	}
	return nil
}

// expand returns the expression as a disjunction of conjunctions.
// Each sub-expression is expanded once, in source order, so shared
// predicates keep one segment.
func (b *astBuilder) expand(expr sqlparser.Expr) ([][]*PredicateSegment, error) {
	switch expr := expr.(type) {
	case *sqlparser.AndExpr:
		left, err := b.expand(expr.Left)
		if err != nil {
			return nil, err
		}
		right, err := b.expand(expr.Right)
		if err != nil {
			return nil, err
		}
		result := make([][]*PredicateSegment, 0, len(left)*len(right))
		for _, l := range left {
			for _, r := range right {
				group := make([]*PredicateSegment, 0, len(l)+len(r))
				group = append(group, l...)
				result = append(result, append(group, r...))
			}
		}
		return result, nil
	case *sqlparser.OrExpr:
		left, err := b.expand(expr.Left)
		if err != nil {
			return nil, err
		}
		right, err := b.expand(expr.Right)
		if err != nil {
			return nil, err
		}
		return append(left, right...), nil
	case *sqlparser.ParenExpr:
		if err := b.loc.openGroup(); err != nil {
			return nil, err
		}
		groups, err := b.expand(expr.Expr)
		if err != nil {
			return nil, err
		}
		if err := b.loc.closeGroup(); err != nil {
			return nil, err
		}
		return groups, nil
	}

	start, end, err := b.loc.nextLeaf()
	if err != nil {
		return nil, err
	}
	predicate, err := b.predicate(expr, start, end)
	if err != nil {
		return nil, err
	}
	if predicate == nil {
		return [][]*PredicateSegment{{}}, nil
	}
	return [][]*PredicateSegment{{predicate}}, nil
}

// predicate builds the segment of the leaf spanning the tokens [start, end),
// nil if the leaf is not a column predicate on literals.
func (b *astBuilder) predicate(expr sqlparser.Expr, start int, end int) (*PredicateSegment, error) {
	var column Column
	var right RightValue

	switch expr := expr.(type) {
	case *sqlparser.ComparisonExpr:
		col, ok := expr.Left.(*sqlparser.ColName)
		if !ok {
			return nil, nil
		}
		column = columnOf(col)
		switch {
		case expr.Operator == sqlparser.InStr:
			tuple, ok := expr.Right.(sqlparser.ValTuple)
			if !ok {
				return nil, nil
			}
			in := &InRightValue{}
			for _, e := range tuple {
				v, ok := b.value(e)
				if !ok {
					return nil, nil
				}
				in.Values = append(in.Values, v)
			}
			right = in
		case compareOperators[expr.Operator]:
			v, ok := b.value(expr.Right)
			if !ok {
				return nil, nil
			}
			right = &CompareRightValue{Operator: expr.Operator, Value: v}
		default:
			return nil, nil
		}
	case *sqlparser.RangeCond:
		col, ok := expr.Left.(*sqlparser.ColName)
		if !ok || !strings.EqualFold(expr.Operator, "between") {
			return nil, nil
		}
		from, ok := b.value(expr.From)
		if !ok {
			return nil, nil
		}
		to, ok := b.value(expr.To)
		if !ok {
			return nil, nil
		}
		column = columnOf(col)
		right = &BetweenRightValue{Between: from, And: to}
	default:
		return nil, nil
	}

	loc := b.loc
	next, ok := loc.columnAt(start, column)
	if !ok {
		return nil, errors.Errorf("statement.can.not.locate.predicate.on[%s]", column.Name)
	}
	switch right := right.(type) {
	case *CompareRightValue:
		// The source text tells '<>' from '!='.
		tok := loc.token(next)
		if !tok.Type.IsSymbol() || !compareOperators[tok.Text] {
			return nil, errors.Errorf("statement.can.not.locate.compare.predicate.on[%s]", column.Name)
		}
		right.Operator = tok.Text
	case *InRightValue:
		if loc.token(next).Type != keywordIn {
			return nil, errors.Errorf("statement.can.not.locate.in.predicate.on[%s]", column.Name)
		}
	case *BetweenRightValue:
		if loc.token(next).Type != keywordBetween {
			return nil, errors.Errorf("statement.can.not.locate.between.predicate.on[%s]", column.Name)
		}
	}
	startIndex, stopIndex := loc.span(start, end)
	return &PredicateSegment{StartIndex: startIndex, StopIndex: stopIndex, Column: column, RightValue: right}, nil
}

func columnOf(col *sqlparser.ColName) Column {
	return Column{Name: col.Name.String(), Owner: col.Qualifier.Name.String()}
}

// value converts a literal or a parameter marker.
func (b *astBuilder) value(expr sqlparser.Expr) (Value, bool) {
	val, ok := expr.(*sqlparser.SQLVal)
	if !ok {
		return Value{}, false
	}
	literal := string(val.Val)
	switch val.Type {
	case sqlparser.IntVal:
		return LiteralValue(literal, lexer.INT), true
	case sqlparser.FloatVal:
		return LiteralValue(literal, lexer.FLOAT), true
	case sqlparser.StrVal:
		return LiteralValue(literal, lexer.CHARS), true
	case sqlparser.HexVal:
		return LiteralValue(literal, lexer.HEX), true
	case sqlparser.ValArg:
		// Positional markers are named :v1, :v2 ...
		if strings.HasPrefix(literal, ":v") {
			if n, err := strconv.Atoi(literal[2:]); err == nil && n > 0 {
				return ParameterValue(n - 1), true
			}
		}
		b.params++
		return ParameterValue(b.params - 1), true
	}
	if strings.HasPrefix(strings.ToLower(literal), "0x") {
		return LiteralValue(literal, lexer.HEX), true
	}
	return Value{}, false
}
