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

	"github.com/pkg/errors"
	"github.com/xelabs/go-mysqlstack/xlog"
)

// ShardingRule owns the table rules built from one sharding config.
// It is read-only after NewShardingRule returns.
type ShardingRule struct {
	log   *xlog.Log
	conf  *config.ShardingRuleConfig
	names *ShardingDataSourceNames

	tableRules              []*TableRule
	bindingTableRules       []*BindingTableRule
	broadcastTables         []string
	defaultDatabaseStrategy ShardingStrategy
	defaultTableStrategy    ShardingStrategy
	defaultKeyGenerator     KeyGenerator
}

// NewShardingRule builds the rule over the raw physical datasources.
func NewShardingRule(log *xlog.Log, conf *config.ShardingRuleConfig, rawDataSourceNames []string) (*ShardingRule, error) {
	var err error

	if conf == nil {
		conf = &config.ShardingRuleConfig{}
	}
	rule := &ShardingRule{
		log:             log,
		conf:            conf,
		names:           NewShardingDataSourceNames(conf, rawDataSourceNames),
		broadcastTables: conf.BroadcastTables,
	}

	for _, tconf := range conf.Tables {
		tr, err := NewTableRule(tconf, rule.names)
		if err != nil {
			log.Error("shardingrule.build.table[%+v].error:%+v", tconf, err)
			return nil, err
		}
		if _, ok := rule.FindTableRule(tr.LogicTable()); ok {
			return nil, errors.Errorf("router.table.rule[%s].duplicate", tr.LogicTable())
		}
		rule.tableRules = append(rule.tableRules, tr)
		log.Debug("shardingrule.build.table[%s].datanodes[%d]", tr.LogicTable(), len(tr.ActualDataNodes()))
	}

	for _, group := range conf.BindingTableGroups {
		binding := &BindingTableRule{}
		for _, logic := range strings.Split(group, ",") {
			logic = strings.TrimSpace(logic)
			if logic == "" {
				continue
			}
			tr, ok := rule.FindTableRule(logic)
			if !ok {
				return nil, errors.Errorf("router.binding.table[%s].can.not.find.table.rule", logic)
			}
			binding.tableRules = append(binding.tableRules, tr)
		}
		rule.bindingTableRules = append(rule.bindingTableRules, binding)
	}

	if rule.defaultDatabaseStrategy, err = NewShardingStrategy(conf.DefaultDatabaseStrategy); err != nil {
		return nil, err
	}
	if rule.defaultTableStrategy, err = NewShardingStrategy(conf.DefaultTableStrategy); err != nil {
		return nil, err
	}
	if conf.DefaultKeyGenerator != nil {
		if rule.defaultKeyGenerator, err = NewKeyGenerator(conf.DefaultKeyGenerator); err != nil {
			return nil, err
		}
	}
	return rule, nil
}

// DataSourceNames returns the datasource names seen by the rule.
func (r *ShardingRule) DataSourceNames() *ShardingDataSourceNames {
	return r.names
}

// TableRules returns the configured table rules in config order.
func (r *ShardingRule) TableRules() []*TableRule {
	return r.tableRules
}

// FindTableRule finds the configured rule of the logic table, case-insensitive.
func (r *ShardingRule) FindTableRule(logicTable string) (*TableRule, bool) {
	for _, tr := range r.tableRules {
		if strings.EqualFold(tr.LogicTable(), logicTable) {
			return tr, true
		}
	}
	return nil, false
}

// GetTableRule returns the rule of the logic table.
// Unconfigured tables fall back to a broadcast rule, then to the default datasource.
func (r *ShardingRule) GetTableRule(logicTable string) (*TableRule, error) {
	if tr, ok := r.FindTableRule(logicTable); ok {
		return tr, nil
	}
	if r.IsBroadcastTable(logicTable) {
		return NewBroadcastTableRule(r.names.DataSourceNames(), logicTable), nil
	}
	if ds := r.names.DefaultDataSourceName(); ds != "" {
		return NewDefaultTableRule(ds, logicTable), nil
	}
	return nil, errors.Errorf("router.can.not.find.table.rule[%s].and.default.datasource", logicTable)
}

// FindTableRuleByActualTable finds the first rule holding the physical table.
func (r *ShardingRule) FindTableRuleByActualTable(actualTable string) (*TableRule, bool) {
	for _, tr := range r.tableRules {
		if tr.IsExisted(actualTable) {
			return tr, true
		}
	}
	return nil, false
}

// FindLogicTableByActualTable returns the logic table of the physical table.
func (r *ShardingRule) FindLogicTableByActualTable(actualTable string) (string, bool) {
	if tr, ok := r.FindTableRuleByActualTable(actualTable); ok {
		return tr.LogicTable(), true
	}
	return "", false
}

// FindTableRuleByLogicIndex finds the rule declaring the logic index.
func (r *ShardingRule) FindTableRuleByLogicIndex(logicIndex string) (*TableRule, bool) {
	for _, tr := range r.tableRules {
		if idx, ok := tr.LogicIndex(); ok && strings.EqualFold(idx, logicIndex) {
			return tr, true
		}
	}
	return nil, false
}

// IsShardingTable reports whether the logic table has a configured rule.
func (r *ShardingRule) IsShardingTable(logicTable string) bool {
	_, ok := r.FindTableRule(logicTable)
	return ok
}

// IsBroadcastTable reports whether the logic table is broadcast.
func (r *ShardingRule) IsBroadcastTable(logicTable string) bool {
	for _, t := range r.broadcastTables {
		if strings.EqualFold(t, logicTable) {
			return true
		}
	}
	return false
}

// FindBindingTableRule returns the binding group of the logic table.
func (r *ShardingRule) FindBindingTableRule(logicTable string) (*BindingTableRule, bool) {
	for _, b := range r.bindingTableRules {
		if b.HasLogicTable(logicTable) {
			return b, true
		}
	}
	return nil, false
}

// GetDatabaseShardingStrategy returns the strategy of the table rule, or the default one.
func (r *ShardingRule) GetDatabaseShardingStrategy(tr *TableRule) ShardingStrategy {
	if tr != nil && tr.DatabaseShardingStrategy() != nil {
		return tr.DatabaseShardingStrategy()
	}
	return r.defaultDatabaseStrategy
}

// GetTableShardingStrategy returns the strategy of the table rule, or the default one.
func (r *ShardingRule) GetTableShardingStrategy(tr *TableRule) ShardingStrategy {
	if tr != nil && tr.TableShardingStrategy() != nil {
		return tr.TableShardingStrategy()
	}
	return r.defaultTableStrategy
}

// FindGenerateKeyColumn returns the generated key column of the logic table.
func (r *ShardingRule) FindGenerateKeyColumn(logicTable string) (string, bool) {
	if tr, ok := r.FindTableRule(logicTable); ok {
		if column, ok := tr.GenerateKeyColumn(); ok {
			return column, true
		}
	}
	if r.conf.DefaultKeyGenerator != nil && r.conf.DefaultKeyGenerator.Column != "" {
		return r.conf.DefaultKeyGenerator.Column, true
	}
	return "", false
}

// GenerateKey generates a key with the table's generator, or the default one.
func (r *ShardingRule) GenerateKey(logicTable string) (string, error) {
	tr, ok := r.FindTableRule(logicTable)
	if !ok {
		return "", errors.Errorf("router.can.not.find.table.rule[%s]", logicTable)
	}
	gen := tr.KeyGenerator()
	if gen == nil {
		gen = r.defaultKeyGenerator
	}
	if gen == nil {
		return "", errors.Errorf("router.table[%s].has.no.key.generator", logicTable)
	}
	return gen.GenerateKey()
}

// RouteTable routes the logic table by the database then the table sharding values.
// The nodes are returned in the rule order.
func (r *ShardingRule) RouteTable(logicTable string, dbValues []string, tableValues []string) ([]DataNode, error) {
	tr, err := r.GetTableRule(logicTable)
	if err != nil {
		return nil, err
	}

	datasources, err := r.GetDatabaseShardingStrategy(tr).DoSharding(tr.ActualDatasourceNames(), dbValues)
	if err != nil {
		return nil, err
	}
	tableStrategy := r.GetTableShardingStrategy(tr)
	hits := make(map[DataNode]bool)
	for _, ds := range datasources {
		tables, err := tableStrategy.DoSharding(tr.ActualTableNames(ds), tableValues)
		if err != nil {
			return nil, err
		}
		for _, t := range tables {
			hits[DataNode{DataSourceName: ds, TableName: t}] = true
		}
	}

	var nodes []DataNode
	for _, node := range tr.ActualDataNodes() {
		if hits[node] {
			nodes = append(nodes, node)
		}
	}
	r.log.Debug("shardingrule.route.table[%s].db%v.table%v.nodes%v", logicTable, dbValues, tableValues, nodes)
	return nodes, nil
}

// BindingTableRule is a group of tables sharded the same way.
type BindingTableRule struct {
	tableRules []*TableRule
}

// TableRules returns the rules of the group.
func (b *BindingTableRule) TableRules() []*TableRule {
	return b.tableRules
}

// HasLogicTable reports whether the logic table is in the group.
func (b *BindingTableRule) HasLogicTable(logicTable string) bool {
	for _, tr := range b.tableRules {
		if strings.EqualFold(tr.LogicTable(), logicTable) {
			return true
		}
	}
	return false
}

// GetBindingActualTable returns the physical table of logicTable matching the
// ordinal of otherActualTable on the datasource.
func (b *BindingTableRule) GetBindingActualTable(dataSource string, logicTable string, otherActualTable string) (string, error) {
	index := -1
	for _, tr := range b.tableRules {
		if index = tr.FindActualTableIndex(dataSource, otherActualTable); index != -1 {
			break
		}
	}
	if index == -1 {
		return "", errors.Errorf("router.binding.can.not.find.actual.table[%s.%s]", dataSource, otherActualTable)
	}
	for _, tr := range b.tableRules {
		if strings.EqualFold(tr.LogicTable(), logicTable) {
			nodes := tr.ActualDataNodes()
			if index >= len(nodes) {
				return "", errors.Errorf("router.binding.table[%s].has.no.ordinal[%d]", logicTable, index)
			}
			return nodes[index].TableName, nil
		}
	}
	return "", errors.Errorf("router.binding.can.not.find.logic.table[%s]", logicTable)
}
