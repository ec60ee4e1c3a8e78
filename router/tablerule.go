/*
 * Radon
 *
 * Copyright 2019 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package router

import (
	"strings"

	"github.com/radondb/shardcore/config"
	"github.com/radondb/shardcore/inline"

	"github.com/pkg/errors"
)

// TableRule maps one logic table to its ordered data nodes.
// It is immutable after construction.
type TableRule struct {
	logicTable       string
	actualDataNodes  []DataNode
	dataNodeIndexes  map[DataNode]int
	datasourceNames  []string
	datasourceTables map[string][]string

	databaseStrategy  ShardingStrategy
	tableStrategy     ShardingStrategy
	generateKeyColumn string
	keyGenerator      KeyGenerator
	logicIndex        string
}

func newTableRule(logicTable string) *TableRule {
	return &TableRule{
		logicTable:       strings.ToLower(logicTable),
		dataNodeIndexes:  make(map[DataNode]int),
		datasourceTables: make(map[string][]string),
	}
}

// NewDefaultTableRule creates the rule of an unsharded table living on the default datasource.
func NewDefaultTableRule(defaultDataSourceName string, logicTable string) *TableRule {
	rule := newTableRule(logicTable)
	rule.addDataNode(DataNode{DataSourceName: defaultDataSourceName, TableName: logicTable})
	return rule
}

// NewBroadcastTableRule creates the rule of a table replicated to every datasource.
func NewBroadcastTableRule(dataSourceNames []string, logicTable string) *TableRule {
	rule := newTableRule(logicTable)
	for _, ds := range dataSourceNames {
		rule.addDataNode(DataNode{DataSourceName: ds, TableName: logicTable})
	}
	return rule
}

// NewTableRule creates the rule from the config.
// Without actual-data-nodes the table is spread to every datasource, otherwise
// the nodes are expanded from the inline expression and must name known datasources.
func NewTableRule(conf *config.TableRuleConfig, names *ShardingDataSourceNames) (*TableRule, error) {
	if conf == nil || conf.LogicTable == "" {
		return nil, errors.New("router.table.rule.logic.table.can.not.be.empty")
	}
	rule := newTableRule(conf.LogicTable)

	nodes, err := inline.SplitAndEvaluate(conf.ActualDataNodes)
	if err != nil {
		return nil, errors.Wrapf(err, "router.table[%s].actual.datanodes", conf.LogicTable)
	}
	if len(nodes) == 0 {
		for _, ds := range names.DataSourceNames() {
			rule.addDataNode(DataNode{DataSourceName: ds, TableName: conf.LogicTable})
		}
	} else {
		for _, each := range nodes {
			node, err := NewDataNode(each)
			if err != nil {
				return nil, err
			}
			if !names.Contains(node.DataSourceName) {
				return nil, &InvalidDataNodeError{DataNode: each}
			}
			if !rule.addDataNode(node) {
				return nil, errors.Errorf("router.table[%s].duplicate.datanode[%s]", conf.LogicTable, each)
			}
		}
	}

	if conf.DatabaseStrategy != nil {
		if rule.databaseStrategy, err = NewShardingStrategy(conf.DatabaseStrategy); err != nil {
			return nil, err
		}
	}
	if conf.TableStrategy != nil {
		if rule.tableStrategy, err = NewShardingStrategy(conf.TableStrategy); err != nil {
			return nil, err
		}
	}
	if conf.KeyGenerator != nil {
		rule.generateKeyColumn = conf.KeyGenerator.Column
		if rule.keyGenerator, err = NewKeyGenerator(conf.KeyGenerator); err != nil {
			return nil, err
		}
	}
	rule.logicIndex = strings.ToLower(conf.LogicIndex)
	return rule, nil
}

// addDataNode appends the node and keeps the ordinal, datasource and table indexes in step.
// It returns false and keeps the rule unchanged if the node is already there.
func (r *TableRule) addDataNode(node DataNode) bool {
	if _, ok := r.dataNodeIndexes[node]; ok {
		return false
	}
	r.dataNodeIndexes[node] = len(r.actualDataNodes)
	r.actualDataNodes = append(r.actualDataNodes, node)

	tables, ok := r.datasourceTables[node.DataSourceName]
	if !ok {
		r.datasourceNames = append(r.datasourceNames, node.DataSourceName)
	}
	for _, t := range tables {
		if t == node.TableName {
			return true
		}
	}
	r.datasourceTables[node.DataSourceName] = append(tables, node.TableName)
	return true
}

// LogicTable returns the lower-cased logic table name.
func (r *TableRule) LogicTable() string {
	return r.logicTable
}

// ActualDataNodes returns the data nodes in ordinal order.
func (r *TableRule) ActualDataNodes() []DataNode {
	return append([]DataNode(nil), r.actualDataNodes...)
}

// ActualDatasourceNames returns the distinct datasources in first-seen order.
func (r *TableRule) ActualDatasourceNames() []string {
	return append([]string(nil), r.datasourceNames...)
}

// DataNodeGroup is the data nodes of one datasource.
type DataNodeGroup struct {
	DataSourceName string
	DataNodes      []DataNode
}

// DataNodeGroups groups the nodes by datasource, keeping the insertion order in and across groups.
func (r *TableRule) DataNodeGroups() []DataNodeGroup {
	groups := make([]DataNodeGroup, 0, len(r.datasourceNames))
	index := make(map[string]int, len(r.datasourceNames))
	for _, node := range r.actualDataNodes {
		i, ok := index[node.DataSourceName]
		if !ok {
			i = len(groups)
			index[node.DataSourceName] = i
			groups = append(groups, DataNodeGroup{DataSourceName: node.DataSourceName})
		}
		groups[i].DataNodes = append(groups[i].DataNodes, node)
	}
	return groups
}

// ActualTableNames returns the tables of the datasource, empty if the datasource is unknown.
func (r *TableRule) ActualTableNames(datasource string) []string {
	return append([]string(nil), r.datasourceTables[datasource]...)
}

// FindActualTableIndex returns the ordinal of the node, -1 if the pair is unknown.
func (r *TableRule) FindActualTableIndex(datasource string, table string) int {
	if idx, ok := r.dataNodeIndexes[DataNode{DataSourceName: datasource, TableName: table}]; ok {
		return idx
	}
	return -1
}

// IsExisted reports whether any node has the table, case-insensitive.
func (r *TableRule) IsExisted(table string) bool {
	for _, node := range r.actualDataNodes {
		if strings.EqualFold(node.TableName, table) {
			return true
		}
	}
	return false
}

// DatabaseShardingStrategy returns the strategy configured on the table, nil if none.
func (r *TableRule) DatabaseShardingStrategy() ShardingStrategy {
	return r.databaseStrategy
}

// TableShardingStrategy returns the strategy configured on the table, nil if none.
func (r *TableRule) TableShardingStrategy() ShardingStrategy {
	return r.tableStrategy
}

// GenerateKeyColumn returns the key column and whether it is configured.
func (r *TableRule) GenerateKeyColumn() (string, bool) {
	return r.generateKeyColumn, r.generateKeyColumn != ""
}

// KeyGenerator returns the key generator of the table, nil if none.
func (r *TableRule) KeyGenerator() KeyGenerator {
	return r.keyGenerator
}

// LogicIndex returns the lower-cased logic index and whether it is configured.
func (r *TableRule) LogicIndex() (string, bool) {
	return r.logicIndex, r.logicIndex != ""
}
