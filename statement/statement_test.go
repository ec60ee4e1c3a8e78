/*
 * Radon
 *
 * Copyright 2019 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package statement

import (
	"testing"

	"github.com/radondb/shardcore/lexer"

	"github.com/stretchr/testify/assert"
)

func TestTables(t *testing.T) {
	{
		var tables Tables
		assert.True(t, tables.IsEmpty())
		assert.False(t, tables.IsSingleTable())
		assert.Equal(t, "", tables.SingleTableName())
		_, ok := tables.Find("t")
		assert.False(t, ok)
	}

	{
		tables := Tables{
			{Name: "t_order", Alias: "o"},
			{Name: "T_ORDER", Alias: "x"},
		}
		assert.True(t, tables.IsSingleTable())
		assert.Equal(t, []string{"t_order"}, tables.TableNames())
		assert.Equal(t, "t_order", tables.SingleTableName())
	}

	{
		tables := Tables{
			{Name: "t_user", Alias: "t_order"},
			{Name: "t_order", Alias: "u"},
		}
		assert.False(t, tables.IsSingleTable())
		assert.Equal(t, []string{"t_user", "t_order"}, tables.TableNames())

		// Name wins over alias.
		got, ok := tables.Find("T_ORDER")
		assert.True(t, ok)
		assert.Equal(t, "t_order", got.Name)

		got, ok = tables.Find("u")
		assert.True(t, ok)
		assert.Equal(t, "t_order", got.Name)

		_, ok = tables.Find("x")
		assert.False(t, ok)
	}
}

func TestColumnAndValue(t *testing.T) {
	{
		owner, ok := Column{Name: "id", Owner: "u"}.FindOwner()
		assert.True(t, ok)
		assert.Equal(t, "u", owner)
		_, ok = Column{Name: "id"}.FindOwner()
		assert.False(t, ok)
	}

	{
		v := LiteralValue("1", lexer.INT)
		assert.False(t, v.IsParameter())
		assert.Equal(t, -1, v.Parameter)
		assert.True(t, ParameterValue(0).IsParameter())
	}
}

func TestInsertStatementTable(t *testing.T) {
	stmt := &InsertStatement{Base: Base{TableList: Tables{{Name: "t_user"}}}, Columns: []string{"id"}}
	assert.Equal(t, "t_user", stmt.Table())
	assert.Nil(t, stmt.OrPredicates())
}
