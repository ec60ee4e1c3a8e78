/*
 * Radon
 *
 * Copyright 2019 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package router

import (
	"testing"

	"github.com/radondb/shardcore/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestTableRuleDefault(t *testing.T) {
	rule := NewDefaultTableRule("ds0", "T_Config")
	assert.Equal(t, "t_config", rule.LogicTable())
	assert.Equal(t, []DataNode{{DataSourceName: "ds0", TableName: "T_Config"}}, rule.ActualDataNodes())
	assert.Equal(t, []string{"ds0"}, rule.ActualDatasourceNames())
	assert.Equal(t, 0, rule.FindActualTableIndex("ds0", "T_Config"))
	assert.Nil(t, rule.DatabaseShardingStrategy())
	assert.Nil(t, rule.TableShardingStrategy())
	assert.Nil(t, rule.KeyGenerator())
	_, ok := rule.GenerateKeyColumn()
	assert.False(t, ok)
}

func TestTableRuleBroadcast(t *testing.T) {
	rule := NewBroadcastTableRule([]string{"ds0", "ds1"}, "t_dict")
	want := []DataNode{
		{DataSourceName: "ds0", TableName: "t_dict"},
		{DataSourceName: "ds1", TableName: "t_dict"},
	}
	assert.Equal(t, want, rule.ActualDataNodes())
	assert.Equal(t, 1, rule.FindActualTableIndex("ds1", "t_dict"))
	assert.Equal(t, []string{"t_dict"}, rule.ActualTableNames("ds1"))
}

func TestTableRuleInlineNodes(t *testing.T) {
	names := NewShardingDataSourceNames(&config.ShardingRuleConfig{}, []string{"ds0", "ds1"})
	conf := MockTableRuleConfig("T_Order", "ds${0..1}.t_order_${0..1}")
	conf.LogicIndex = "IDX_Status"
	rule, err := NewTableRule(conf, names)
	assert.Nil(t, err)

	assert.Equal(t, "t_order", rule.LogicTable())
	want := []DataNode{
		{DataSourceName: "ds0", TableName: "t_order_0"},
		{DataSourceName: "ds0", TableName: "t_order_1"},
		{DataSourceName: "ds1", TableName: "t_order_0"},
		{DataSourceName: "ds1", TableName: "t_order_1"},
	}
	assert.Equal(t, want, rule.ActualDataNodes())
	for i, node := range want {
		assert.Equal(t, i, rule.FindActualTableIndex(node.DataSourceName, node.TableName))
	}
	assert.Equal(t, []string{"ds0", "ds1"}, rule.ActualDatasourceNames())
	assert.Equal(t, []string{"t_order_0", "t_order_1"}, rule.ActualTableNames("ds1"))
	assert.Empty(t, rule.ActualTableNames("ds9"))
	assert.Equal(t, -1, rule.FindActualTableIndex("ds9", "t_order_0"))
	assert.Equal(t, -1, rule.FindActualTableIndex("ds0", "t_order_9"))

	assert.True(t, rule.IsExisted("T_ORDER_1"))
	assert.False(t, rule.IsExisted("t_order"))

	idx, ok := rule.LogicIndex()
	assert.True(t, ok)
	assert.Equal(t, "idx_status", idx)

	groups := rule.DataNodeGroups()
	assert.Equal(t, 2, len(groups))
	assert.Equal(t, "ds0", groups[0].DataSourceName)
	assert.Equal(t, want[:2], groups[0].DataNodes)
	assert.Equal(t, "ds1", groups[1].DataSourceName)
	assert.Equal(t, want[2:], groups[1].DataNodes)
}

func TestTableRuleEveryDataSource(t *testing.T) {
	names := NewShardingDataSourceNames(&config.ShardingRuleConfig{}, []string{"ds0", "ds1", "ds2"})
	conf := &config.TableRuleConfig{
		LogicTable: "t_user",
		TableStrategy: &config.StrategyConfig{
			Type:           "hash",
			ShardingColumn: "user_id",
		},
		KeyGenerator: &config.KeyGeneratorConfig{
			Type:   "uuid",
			Column: "user_id",
		},
	}
	rule, err := NewTableRule(conf, names)
	assert.Nil(t, err)
	assert.Equal(t, 3, len(rule.ActualDataNodes()))
	assert.Equal(t, []string{"ds0", "ds1", "ds2"}, rule.ActualDatasourceNames())
	assert.Equal(t, StrategyTypeHash, rule.TableShardingStrategy().Type())
	assert.Nil(t, rule.DatabaseShardingStrategy())
	assert.Equal(t, KeyGeneratorTypeUUID, rule.KeyGenerator().Type())
	column, ok := rule.GenerateKeyColumn()
	assert.True(t, ok)
	assert.Equal(t, "user_id", column)
}

func TestTableRuleMasterSlaveDataSource(t *testing.T) {
	sconf := &config.ShardingRuleConfig{
		MasterSlaveRules: []*config.MasterSlaveRuleConfig{config.MockMasterSlaveRuleConfig()},
	}
	names := NewShardingDataSourceNames(sconf, []string{"ds_master", "ds_slave0", "ds_slave1"})
	{
		rule, err := NewTableRule(MockTableRuleConfig("t", "ds.t_${0..1}"), names)
		assert.Nil(t, err)
		assert.Equal(t, 2, len(rule.ActualDataNodes()))
	}
	{
		_, err := NewTableRule(MockTableRuleConfig("t", "ds_master.t_0"), names)
		assert.NotNil(t, err)
	}
}

func TestTableRuleError(t *testing.T) {
	names := NewShardingDataSourceNames(&config.ShardingRuleConfig{}, []string{"ds0", "ds1"})

	// Unknown datasource.
	{
		_, err := NewTableRule(MockTableRuleConfig("t_order", "ds${0..2}.t_order"), names)
		assert.NotNil(t, err)
		nodeErr, ok := errors.Cause(err).(*InvalidDataNodeError)
		assert.True(t, ok)
		assert.Equal(t, "ds2.t_order", nodeErr.DataNode)
	}

	tests := []*config.TableRuleConfig{
		nil,
		{ActualDataNodes: "ds0.t"},
		{LogicTable: "t", ActualDataNodes: "ds0"},
		{LogicTable: "t", ActualDataNodes: "ds${0..1.t"},
		{LogicTable: "t", ActualDataNodes: "ds0.t_0, ds0.t_0"},
		{LogicTable: "t", ActualDataNodes: "ds0.t_${[0, 1, 0]}"},
		{LogicTable: "t", TableStrategy: &config.StrategyConfig{Type: "range"}},
		{LogicTable: "t", DatabaseStrategy: &config.StrategyConfig{Type: "mod"}},
		{LogicTable: "t", KeyGenerator: &config.KeyGeneratorConfig{Type: "xx"}},
	}
	for _, test := range tests {
		_, err := NewTableRule(test, names)
		assert.NotNil(t, err, "%+v", test)
	}
}

func TestTableRuleReturnsCopies(t *testing.T) {
	names := NewShardingDataSourceNames(&config.ShardingRuleConfig{}, []string{"ds0", "ds1"})
	rule, err := NewTableRule(MockTableRuleConfig("t_order", "ds${0..1}.t_order_${0..1}"), names)
	assert.Nil(t, err)

	nodes := rule.ActualDataNodes()
	nodes[0] = DataNode{DataSourceName: "ds9", TableName: "t_x"}
	_ = append(nodes[:1], DataNode{DataSourceName: "ds9", TableName: "t_y"})
	assert.Equal(t, DataNode{DataSourceName: "ds0", TableName: "t_order_0"}, rule.ActualDataNodes()[0])
	assert.Equal(t, DataNode{DataSourceName: "ds0", TableName: "t_order_1"}, rule.ActualDataNodes()[1])

	datasources := rule.ActualDatasourceNames()
	datasources[0] = "ds9"
	assert.Equal(t, []string{"ds0", "ds1"}, rule.ActualDatasourceNames())

	tables := rule.ActualTableNames("ds0")
	tables[0] = "t_x"
	assert.Equal(t, []string{"t_order_0", "t_order_1"}, rule.ActualTableNames("ds0"))
	assert.Equal(t, 1, rule.FindActualTableIndex("ds0", "t_order_1"))
}

func TestTableRuleDuplicateDataNode(t *testing.T) {
	names := NewShardingDataSourceNames(&config.ShardingRuleConfig{}, []string{"ds0", "ds1"})
	{
		_, err := NewTableRule(MockTableRuleConfig("t_order", "ds0.t_order_0, ds1.t_order_0, ds0.t_order_0"), names)
		assert.NotNil(t, err)
		assert.Contains(t, err.Error(), "router.table[t_order].duplicate.datanode[ds0.t_order_0]")
	}

	// Broadcast keeps the first of each datasource.
	{
		rule := NewBroadcastTableRule([]string{"ds0", "ds1", "ds0"}, "t_dict")
		assert.Equal(t, []DataNode{{"ds0", "t_dict"}, {"ds1", "t_dict"}}, rule.ActualDataNodes())
		assert.Equal(t, 1, rule.FindActualTableIndex("ds1", "t_dict"))
	}
}
