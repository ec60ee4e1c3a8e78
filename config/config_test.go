/*
 * Radon
 *
 * Copyright 2019 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package config

import (
	"os"
	"path"
	"testing"

	"github.com/radondb/shardcore/xbase"

	"github.com/stretchr/testify/assert"
)

func getTmpDir(t *testing.T) string {
	dir, err := os.MkdirTemp("", "shardcore_config_")
	assert.Nil(t, err)
	return dir
}

func TestWriteLoadConfig(t *testing.T) {
	tmpDir := getTmpDir(t)
	defer os.RemoveAll(tmpDir)

	for _, name := range []string{"shard.json", "shard.yaml", "shard.yml"} {
		conf := MockConfig()
		file := path.Join(tmpDir, name)
		err := WriteConfig(file, conf)
		assert.Nil(t, err, name)

		got, err := LoadConfig(file)
		assert.Nil(t, err, name)
		assert.Equal(t, conf, got, name)
	}
}

func TestLoadConfigToml(t *testing.T) {
	tmpDir := getTmpDir(t)
	defer os.RemoveAll(tmpDir)

	data := `
datasources = ["ds0", "ds1"]

[sharding]
default-datasource-name = "ds0"
broadcast-tables = ["t_config"]

[[sharding.tables]]
logic-table = "t_order"
actual-data-nodes = "ds${0..1}.t_order_${0..1}"

[sharding.tables.table-strategy]
type = "mod"
sharding-column = "order_id"

[[sharding.master-slave-rules]]
name = "ms"
master-datasource-name = "ds_master"
slave-datasource-names = ["ds_slave0"]

[lexer]
dialect = "sqlserver"
`
	file := path.Join(tmpDir, "shard.toml")
	err := xbase.WriteFile(file, []byte(data))
	assert.Nil(t, err)

	conf, err := LoadConfig(file)
	assert.Nil(t, err)
	assert.Equal(t, []string{"ds0", "ds1"}, conf.DataSources)
	assert.Equal(t, "ds0", conf.Sharding.DefaultDataSourceName)
	assert.Equal(t, 1, len(conf.Sharding.Tables))
	assert.Equal(t, "t_order", conf.Sharding.Tables[0].LogicTable)
	assert.Equal(t, "ds${0..1}.t_order_${0..1}", conf.Sharding.Tables[0].ActualDataNodes)
	assert.Equal(t, &StrategyConfig{Type: "mod", ShardingColumn: "order_id"}, conf.Sharding.Tables[0].TableStrategy)
	assert.Nil(t, conf.Sharding.Tables[0].DatabaseStrategy)
	assert.Equal(t, "ds_master", conf.Sharding.MasterSlaveRules[0].MasterDataSourceName)
	assert.Equal(t, "sqlserver", conf.Lexer.Dialect)

	// Defaults.
	assert.Equal(t, DefaultLogConfig(), conf.Log)
	assert.NotNil(t, conf.Encrypt)
	assert.NotNil(t, conf.MetaData)

	// Round trip.
	{
		out := path.Join(tmpDir, "out.toml")
		err := WriteConfig(out, conf)
		assert.Nil(t, err)
		got, err := LoadConfig(out)
		assert.Nil(t, err)
		assert.Equal(t, conf.Sharding.Tables, got.Sharding.Tables)
		assert.Equal(t, conf.Lexer, got.Lexer)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	tmpDir := getTmpDir(t)
	defer os.RemoveAll(tmpDir)

	file := path.Join(tmpDir, "shard.json")
	err := xbase.WriteFile(file, []byte(`{"datasources":["ds0"], "log":{}}`))
	assert.Nil(t, err)

	conf, err := LoadConfig(file)
	assert.Nil(t, err)
	assert.Equal(t, DefaultLexerConfig(), conf.Lexer)
	assert.Equal(t, "ERROR", conf.Log.Level)
	assert.Equal(t, 0, len(conf.Sharding.Tables))
}

func TestLoadConfigError(t *testing.T) {
	tmpDir := getTmpDir(t)
	defer os.RemoveAll(tmpDir)

	// Not exists.
	{
		_, err := LoadConfig(path.Join(tmpDir, "none.json"))
		assert.NotNil(t, err)
	}

	// Unknown suffix.
	{
		file := path.Join(tmpDir, "shard.ini")
		err := xbase.WriteFile(file, []byte("x=1"))
		assert.Nil(t, err)
		_, err = LoadConfig(file)
		assert.NotNil(t, err)
	}

	// Malformed.
	for _, name := range []string{"bad.json", "bad.yaml", "bad.toml"} {
		file := path.Join(tmpDir, name)
		err := xbase.WriteFile(file, []byte("{[:"))
		assert.Nil(t, err)
		_, err = LoadConfig(file)
		assert.NotNil(t, err, name)
	}
}

func TestReadTableRuleConfig(t *testing.T) {
	data := `{
	"logic-table": "t_order",
	"actual-data-nodes": "ds${0..1}.t_order_${0..1}",
	"key-generator": {"type": "uuid", "column": "order_id"}
}`
	conf, err := ReadTableRuleConfig(data)
	assert.Nil(t, err)
	assert.Equal(t, "t_order", conf.LogicTable)
	assert.Equal(t, &KeyGeneratorConfig{Type: "uuid", Column: "order_id"}, conf.KeyGenerator)

	_, err = ReadTableRuleConfig("{")
	assert.NotNil(t, err)
}
