/*
 * Radon
 *
 * Copyright 2019 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package metadata

import (
	"strings"

	"github.com/radondb/shardcore/config"

	"github.com/pkg/errors"
	"github.com/xelabs/go-mysqlstack/xlog"
)

// TableMetaData tuple.
type TableMetaData struct {
	Name    string
	Columns []string
	Indexes []string
}

// ShardingTableMetaData holds the columns and indexes of the logic tables.
// Names are matched case-insensitively.
type ShardingTableMetaData struct {
	log    *xlog.Log
	tables []*TableMetaData
	// index name(lower) -> logic table
	indexes map[string]string
}

// NewShardingTableMetaData creates the metadata from the config.
func NewShardingTableMetaData(log *xlog.Log, conf *config.MetaDataConfig) (*ShardingTableMetaData, error) {
	meta := &ShardingTableMetaData{
		log:     log,
		indexes: make(map[string]string),
	}
	if conf == nil {
		return meta, nil
	}
	for _, t := range conf.Tables {
		if t.Name == "" {
			return nil, errors.New("metadata.table.name.can.not.be.empty")
		}
		if meta.ContainsTable(t.Name) {
			return nil, errors.Errorf("metadata.table[%s].duplicate", t.Name)
		}
		for _, idx := range t.Indexes {
			key := strings.ToLower(idx)
			if owner, ok := meta.indexes[key]; ok {
				return nil, errors.Errorf("metadata.index[%s].belongs.to.both[%s].and[%s]", idx, owner, t.Name)
			}
			meta.indexes[key] = t.Name
		}
		meta.tables = append(meta.tables, &TableMetaData{
			Name:    t.Name,
			Columns: t.Columns,
			Indexes: t.Indexes,
		})
		log.Debug("metadata.add.table[%s].columns%v.indexes%v", t.Name, t.Columns, t.Indexes)
	}
	return meta, nil
}

func (m *ShardingTableMetaData) table(name string) (*TableMetaData, bool) {
	for _, t := range m.tables {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return nil, false
}

// TableNames returns the tables in config order.
func (m *ShardingTableMetaData) TableNames() []string {
	names := make([]string, 0, len(m.tables))
	for _, t := range m.tables {
		names = append(names, t.Name)
	}
	return names
}

// ContainsTable reports whether the table is known.
func (m *ShardingTableMetaData) ContainsTable(table string) bool {
	_, ok := m.table(table)
	return ok
}

// ContainsColumn reports whether the table has the column.
func (m *ShardingTableMetaData) ContainsColumn(table string, column string) bool {
	t, ok := m.table(table)
	if !ok {
		return false
	}
	for _, c := range t.Columns {
		if strings.EqualFold(c, column) {
			return true
		}
	}
	return false
}

// GetAllColumnNames returns the columns of the table in config order, nil if unknown.
func (m *ShardingTableMetaData) GetAllColumnNames(table string) []string {
	if t, ok := m.table(table); ok {
		return t.Columns
	}
	return nil
}

// GetLogicTableName returns the logic table owning the index.
func (m *ShardingTableMetaData) GetLogicTableName(index string) (string, bool) {
	table, ok := m.indexes[strings.ToLower(index)]
	return table, ok
}
