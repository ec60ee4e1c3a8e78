/*
 * Radon
 *
 * Copyright 2019 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package router

import (
	"github.com/radondb/shardcore/config"

	"github.com/xelabs/go-mysqlstack/xlog"
)

// MockShardingRule builds the rule of config.MockShardingRuleConfig over config.MockDataSources.
func MockShardingRule(log *xlog.Log) *ShardingRule {
	rule, err := NewShardingRule(log, config.MockShardingRuleConfig(), config.MockDataSources())
	if err != nil {
		panic(err)
	}
	return rule
}

// MockTableRuleConfig returns a sharded table rule config over 'nodes'.
func MockTableRuleConfig(logicTable string, nodes string) *config.TableRuleConfig {
	return &config.TableRuleConfig{
		LogicTable:      logicTable,
		ActualDataNodes: nodes,
	}
}
