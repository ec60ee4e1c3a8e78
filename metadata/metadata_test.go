/*
 * Radon
 *
 * Copyright 2019 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package metadata

import (
	"testing"

	"github.com/radondb/shardcore/config"

	"github.com/stretchr/testify/assert"
	"github.com/xelabs/go-mysqlstack/xlog"
)

func TestShardingTableMetaData(t *testing.T) {
	log := xlog.NewStdLog(xlog.Level(xlog.PANIC))
	meta, err := NewShardingTableMetaData(log, config.MockMetaDataConfig())
	assert.Nil(t, err)

	assert.Equal(t, []string{"t_order", "t_encrypt", "t_user"}, meta.TableNames())
	assert.True(t, meta.ContainsTable("T_ORDER"))
	assert.False(t, meta.ContainsTable("t_none"))

	assert.True(t, meta.ContainsColumn("t_user", "NAME"))
	assert.False(t, meta.ContainsColumn("t_user", "pwd"))
	assert.False(t, meta.ContainsColumn("t_none", "id"))

	assert.Equal(t, []string{"id", "name", "name_q"}, meta.GetAllColumnNames("t_user"))
	assert.Nil(t, meta.GetAllColumnNames("t_none"))

	table, ok := meta.GetLogicTableName("IDX_ORDER_STATUS")
	assert.True(t, ok)
	assert.Equal(t, "t_order", table)
	_, ok = meta.GetLogicTableName("idx_none")
	assert.False(t, ok)
}

func TestShardingTableMetaDataEmpty(t *testing.T) {
	log := xlog.NewStdLog(xlog.Level(xlog.PANIC))
	meta, err := NewShardingTableMetaData(log, nil)
	assert.Nil(t, err)
	assert.Empty(t, meta.TableNames())
	_, ok := meta.GetLogicTableName("idx")
	assert.False(t, ok)
}

func TestShardingTableMetaDataError(t *testing.T) {
	log := xlog.NewStdLog(xlog.Level(xlog.PANIC))
	tests := []*config.MetaDataConfig{
		{Tables: []*config.TableMetaDataConfig{{Columns: []string{"id"}}}},
		{Tables: []*config.TableMetaDataConfig{{Name: "t"}, {Name: "T"}}},
		{Tables: []*config.TableMetaDataConfig{{Name: "a", Indexes: []string{"idx"}}, {Name: "b", Indexes: []string{"IDX"}}}},
	}
	for _, test := range tests {
		_, err := NewShardingTableMetaData(log, test)
		assert.NotNil(t, err)
	}
}
