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
)

// ShardingDataSourceNames is the datasource set seen by the sharding rule:
// the raw datasources with every master-slave group folded into its logic name.
type ShardingDataSourceNames struct {
	conf  *config.ShardingRuleConfig
	names []string
}

// NewShardingDataSourceNames creates the names from the raw physical datasources.
func NewShardingDataSourceNames(conf *config.ShardingRuleConfig, raw []string) *ShardingDataSourceNames {
	if conf == nil {
		conf = &config.ShardingRuleConfig{}
	}
	names := make([]string, 0, len(raw))
	for _, name := range raw {
		names = appendUnique(names, name)
	}
	for _, ms := range conf.MasterSlaveRules {
		names = remove(names, ms.MasterDataSourceName)
		for _, slave := range ms.SlaveDataSourceNames {
			names = remove(names, slave)
		}
		names = appendUnique(names, ms.Name)
	}
	return &ShardingDataSourceNames{conf: conf, names: names}
}

// DataSourceNames returns the visible names in insertion order.
func (s *ShardingDataSourceNames) DataSourceNames() []string {
	return s.names
}

// Contains reports whether the name is visible.
func (s *ShardingDataSourceNames) Contains(name string) bool {
	for _, n := range s.names {
		if n == name {
			return true
		}
	}
	return false
}

// DefaultDataSourceName returns the only visible datasource, or the configured default.
func (s *ShardingDataSourceNames) DefaultDataSourceName() string {
	if len(s.names) == 1 {
		return s.names[0]
	}
	return s.conf.DefaultDataSourceName
}

// RawMasterDataSourceName returns the master of the group named 'name', or 'name' itself.
func (s *ShardingDataSourceNames) RawMasterDataSourceName(name string) string {
	if ms, ok := s.MasterSlaveRule(name); ok {
		return ms.MasterDataSourceName
	}
	return name
}

// MasterSlaveRule returns the group config of the logic name.
func (s *ShardingDataSourceNames) MasterSlaveRule(name string) (*config.MasterSlaveRuleConfig, bool) {
	for _, ms := range s.conf.MasterSlaveRules {
		if ms.Name == name {
			return ms, true
		}
	}
	return nil, false
}

func appendUnique(names []string, name string) []string {
	for _, n := range names {
		if n == name {
			return names
		}
	}
	return append(names, name)
}

func remove(names []string, name string) []string {
	for i, n := range names {
		if n == name {
			return append(names[:i], names[i+1:]...)
		}
	}
	return names
}
