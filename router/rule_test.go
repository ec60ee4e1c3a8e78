/*
 * Radon
 *
 * Copyright 2019 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package router

import (
	"strconv"
	"testing"

	"github.com/radondb/shardcore/config"

	"github.com/stretchr/testify/assert"
	"github.com/xelabs/go-mysqlstack/xlog"
)

func TestShardingRuleTables(t *testing.T) {
	log := xlog.NewStdLog(xlog.Level(xlog.PANIC))
	rule := MockShardingRule(log)

	assert.Equal(t, []string{"ds0", "ds1"}, rule.DataSourceNames().DataSourceNames())
	assert.Equal(t, 3, len(rule.TableRules()))

	// Find.
	{
		tr, ok := rule.FindTableRule("T_ORDER")
		assert.True(t, ok)
		assert.Equal(t, "t_order", tr.LogicTable())
		assert.Equal(t, 4, len(tr.ActualDataNodes()))

		tr, ok = rule.FindTableRule("t_user")
		assert.True(t, ok)
		assert.Equal(t, []DataNode{{"ds0", "T_USER"}, {"ds1", "T_USER"}}, tr.ActualDataNodes())

		_, ok = rule.FindTableRule("t_config")
		assert.False(t, ok)
		assert.True(t, rule.IsShardingTable("t_order_item"))
		assert.False(t, rule.IsShardingTable("t_config"))
		assert.True(t, rule.IsBroadcastTable("T_CONFIG"))
		assert.False(t, rule.IsBroadcastTable("t_order"))
	}

	// Actual tables.
	{
		logic, ok := rule.FindLogicTableByActualTable("T_ORDER_1")
		assert.True(t, ok)
		assert.Equal(t, "t_order", logic)

		logic, ok = rule.FindLogicTableByActualTable("t_order_item_0")
		assert.True(t, ok)
		assert.Equal(t, "t_order_item", logic)

		_, ok = rule.FindLogicTableByActualTable("t_x")
		assert.False(t, ok)
	}

	// Logic index.
	{
		tr, ok := rule.FindTableRuleByLogicIndex("IDX_ORDER_STATUS")
		assert.True(t, ok)
		assert.Equal(t, "t_order", tr.LogicTable())
		_, ok = rule.FindTableRuleByLogicIndex("idx_none")
		assert.False(t, ok)
	}
}

func TestShardingRuleGetTableRule(t *testing.T) {
	log := xlog.NewStdLog(xlog.Level(xlog.PANIC))
	rule := MockShardingRule(log)

	// Configured.
	{
		tr, err := rule.GetTableRule("t_order")
		assert.Nil(t, err)
		assert.Equal(t, "t_order", tr.LogicTable())
	}

	// Broadcast.
	{
		tr, err := rule.GetTableRule("t_config")
		assert.Nil(t, err)
		assert.Equal(t, []DataNode{{"ds0", "t_config"}, {"ds1", "t_config"}}, tr.ActualDataNodes())
	}

	// Default datasource.
	{
		tr, err := rule.GetTableRule("t_other")
		assert.Nil(t, err)
		assert.Equal(t, []DataNode{{"ds0", "t_other"}}, tr.ActualDataNodes())
	}

	// No default.
	{
		conf := config.MockShardingRuleConfig()
		conf.DefaultDataSourceName = ""
		rule, err := NewShardingRule(log, conf, config.MockDataSources())
		assert.Nil(t, err)
		_, err = rule.GetTableRule("t_other")
		assert.NotNil(t, err)
	}

	// Single datasource is the default.
	{
		rule, err := NewShardingRule(log, &config.ShardingRuleConfig{}, []string{"ds_only"})
		assert.Nil(t, err)
		tr, err := rule.GetTableRule("t_other")
		assert.Nil(t, err)
		assert.Equal(t, []DataNode{{"ds_only", "t_other"}}, tr.ActualDataNodes())
	}
}

func TestShardingRuleBinding(t *testing.T) {
	log := xlog.NewStdLog(xlog.Level(xlog.PANIC))
	rule := MockShardingRule(log)

	binding, ok := rule.FindBindingTableRule("T_ORDER_ITEM")
	assert.True(t, ok)
	assert.True(t, binding.HasLogicTable("t_order"))
	assert.False(t, binding.HasLogicTable("t_user"))
	assert.Equal(t, 2, len(binding.TableRules()))

	_, ok = rule.FindBindingTableRule("t_user")
	assert.False(t, ok)

	{
		actual, err := binding.GetBindingActualTable("ds1", "t_order_item", "t_order_1")
		assert.Nil(t, err)
		assert.Equal(t, "t_order_item_1", actual)

		actual, err = binding.GetBindingActualTable("ds0", "t_order", "t_order_item_0")
		assert.Nil(t, err)
		assert.Equal(t, "t_order_0", actual)
	}

	// Errors.
	{
		_, err := binding.GetBindingActualTable("ds9", "t_order_item", "t_order_1")
		assert.NotNil(t, err)
		_, err = binding.GetBindingActualTable("ds1", "t_user", "t_order_1")
		assert.NotNil(t, err)
	}
}

func TestShardingRuleStrategy(t *testing.T) {
	log := xlog.NewStdLog(xlog.Level(xlog.PANIC))
	rule := MockShardingRule(log)

	order, _ := rule.FindTableRule("t_order")
	item, _ := rule.FindTableRule("t_order_item")

	assert.Equal(t, StrategyTypeMod, rule.GetDatabaseShardingStrategy(order).Type())
	assert.Equal(t, StrategyTypeHash, rule.GetDatabaseShardingStrategy(item).Type())
	assert.Equal(t, StrategyTypeMod, rule.GetTableShardingStrategy(item).Type())
	assert.Equal(t, StrategyTypeNone, rule.GetTableShardingStrategy(nil).Type())
}

func TestShardingRuleGenerateKey(t *testing.T) {
	log := xlog.NewStdLog(xlog.Level(xlog.PANIC))
	rule := MockShardingRule(log)

	{
		column, ok := rule.FindGenerateKeyColumn("t_order")
		assert.True(t, ok)
		assert.Equal(t, "order_id", column)

		column, ok = rule.FindGenerateKeyColumn("t_order_item")
		assert.True(t, ok)
		assert.Equal(t, "id", column)
	}

	{
		key, err := rule.GenerateKey("t_order")
		assert.Nil(t, err)
		_, err = strconv.ParseInt(key, 10, 64)
		assert.Nil(t, err)

		k1, err := rule.GenerateKey("t_order_item")
		assert.Nil(t, err)
		k2, err := rule.GenerateKey("t_order_item")
		assert.Nil(t, err)
		assert.NotEqual(t, k1, k2)
	}

	{
		_, err := rule.GenerateKey("t_config")
		assert.NotNil(t, err)
	}

	// No generator at all.
	{
		rule, err := NewShardingRule(log, &config.ShardingRuleConfig{
			Tables: []*config.TableRuleConfig{MockTableRuleConfig("t", "ds0.t")},
		}, []string{"ds0"})
		assert.Nil(t, err)
		_, ok := rule.FindGenerateKeyColumn("t")
		assert.False(t, ok)
		_, err = rule.GenerateKey("t")
		assert.NotNil(t, err)
	}
}

func TestShardingRuleRouteTable(t *testing.T) {
	log := xlog.NewStdLog(xlog.Level(xlog.PANIC))
	rule := MockShardingRule(log)

	// Full scan.
	{
		nodes, err := rule.RouteTable("t_order", nil, nil)
		assert.Nil(t, err)
		assert.Equal(t, 4, len(nodes))
	}

	// Point.
	{
		nodes, err := rule.RouteTable("t_order", []string{"1"}, []string{"2"})
		assert.Nil(t, err)
		assert.Equal(t, []DataNode{{"ds1", "t_order_0"}}, nodes)
	}

	// Database only, rule order kept.
	{
		nodes, err := rule.RouteTable("t_order", []string{"2"}, nil)
		assert.Nil(t, err)
		assert.Equal(t, []DataNode{{"ds0", "t_order_0"}, {"ds0", "t_order_1"}}, nodes)
	}

	// Default database strategy.
	{
		nodes, err := rule.RouteTable("t_user", []string{"7"}, []string{"7"})
		assert.Nil(t, err)
		assert.Equal(t, 1, len(nodes))
	}

	// Broadcast.
	{
		nodes, err := rule.RouteTable("t_config", []string{"7"}, nil)
		assert.Nil(t, err)
		assert.Equal(t, 1, len(nodes))
	}

	// Bad value.
	{
		_, err := rule.RouteTable("t_order", []string{"x"}, nil)
		assert.NotNil(t, err)
		_, err = rule.RouteTable("t_order", nil, []string{"x"})
		assert.NotNil(t, err)
	}
}

func TestShardingRuleError(t *testing.T) {
	log := xlog.NewStdLog(xlog.Level(xlog.PANIC))

	tests := []*config.ShardingRuleConfig{
		{Tables: []*config.TableRuleConfig{MockTableRuleConfig("t", "ds9.t")}},
		{Tables: []*config.TableRuleConfig{MockTableRuleConfig("t", "ds0.t"), MockTableRuleConfig("T", "ds1.t")}},
		{Tables: []*config.TableRuleConfig{MockTableRuleConfig("t", "ds0.t")}, BindingTableGroups: []string{"t, x"}},
		{DefaultDatabaseStrategy: &config.StrategyConfig{Type: "xx"}},
		{DefaultTableStrategy: &config.StrategyConfig{Type: "mod"}},
		{DefaultKeyGenerator: &config.KeyGeneratorConfig{Type: "xx"}},
	}
	for _, test := range tests {
		_, err := NewShardingRule(log, test, []string{"ds0", "ds1"})
		assert.NotNil(t, err, "%+v", test)
	}
}
