/*
 * Radon
 *
 * Copyright 2019 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package config

import (
	"bytes"
	"encoding/json"

	"github.com/radondb/shardcore/xbase"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// StrategyConfig tuple.
// Type is one of none/hash/mod, Algorithm is used by hash: jump/murmur/city.
type StrategyConfig struct {
	Type           string `json:"type" yaml:"type" toml:"type"`
	ShardingColumn string `json:"sharding-column,omitempty" yaml:"sharding-column,omitempty" toml:"sharding-column,omitempty"`
	Algorithm      string `json:"algorithm,omitempty" yaml:"algorithm,omitempty" toml:"algorithm,omitempty"`
}

// KeyGeneratorConfig tuple.
// Type is one of increment/uuid/snowflake.
type KeyGeneratorConfig struct {
	Type     string `json:"type" yaml:"type" toml:"type"`
	Column   string `json:"column" yaml:"column" toml:"column"`
	WorkerID int64  `json:"worker-id,omitempty" yaml:"worker-id,omitempty" toml:"worker-id,omitempty"`
}

// TableRuleConfig tuple.
type TableRuleConfig struct {
	LogicTable       string              `json:"logic-table" yaml:"logic-table" toml:"logic-table"`
	ActualDataNodes  string              `json:"actual-data-nodes,omitempty" yaml:"actual-data-nodes,omitempty" toml:"actual-data-nodes,omitempty"`
	DatabaseStrategy *StrategyConfig     `json:"database-strategy,omitempty" yaml:"database-strategy,omitempty" toml:"database-strategy,omitempty"`
	TableStrategy    *StrategyConfig     `json:"table-strategy,omitempty" yaml:"table-strategy,omitempty" toml:"table-strategy,omitempty"`
	KeyGenerator     *KeyGeneratorConfig `json:"key-generator,omitempty" yaml:"key-generator,omitempty" toml:"key-generator,omitempty"`
	LogicIndex       string              `json:"logic-index,omitempty" yaml:"logic-index,omitempty" toml:"logic-index,omitempty"`
}

// MasterSlaveRuleConfig tuple.
type MasterSlaveRuleConfig struct {
	Name                 string   `json:"name" yaml:"name" toml:"name"`
	MasterDataSourceName string   `json:"master-datasource-name" yaml:"master-datasource-name" toml:"master-datasource-name"`
	SlaveDataSourceNames []string `json:"slave-datasource-names" yaml:"slave-datasource-names" toml:"slave-datasource-names"`
	LoadBalanceAlgorithm string   `json:"load-balance-algorithm,omitempty" yaml:"load-balance-algorithm,omitempty" toml:"load-balance-algorithm,omitempty"`
}

// ShardingRuleConfig tuple.
type ShardingRuleConfig struct {
	DefaultDataSourceName   string                   `json:"default-datasource-name,omitempty" yaml:"default-datasource-name,omitempty" toml:"default-datasource-name,omitempty"`
	Tables                  []*TableRuleConfig       `json:"tables" yaml:"tables" toml:"tables"`
	BindingTableGroups      []string                 `json:"binding-table-groups,omitempty" yaml:"binding-table-groups,omitempty" toml:"binding-table-groups,omitempty"`
	BroadcastTables         []string                 `json:"broadcast-tables,omitempty" yaml:"broadcast-tables,omitempty" toml:"broadcast-tables,omitempty"`
	DefaultDatabaseStrategy *StrategyConfig          `json:"default-database-strategy,omitempty" yaml:"default-database-strategy,omitempty" toml:"default-database-strategy,omitempty"`
	DefaultTableStrategy    *StrategyConfig          `json:"default-table-strategy,omitempty" yaml:"default-table-strategy,omitempty" toml:"default-table-strategy,omitempty"`
	DefaultKeyGenerator     *KeyGeneratorConfig      `json:"default-key-generator,omitempty" yaml:"default-key-generator,omitempty" toml:"default-key-generator,omitempty"`
	MasterSlaveRules        []*MasterSlaveRuleConfig `json:"master-slave-rules,omitempty" yaml:"master-slave-rules,omitempty" toml:"master-slave-rules,omitempty"`
}

// EncryptColumnConfig tuple.
// Name is the logic column, Cipher the stored column and AssistedQuery the optional lookup column.
type EncryptColumnConfig struct {
	Name          string `json:"name" yaml:"name" toml:"name"`
	Cipher        string `json:"cipher,omitempty" yaml:"cipher,omitempty" toml:"cipher,omitempty"`
	AssistedQuery string `json:"assisted-query,omitempty" yaml:"assisted-query,omitempty" toml:"assisted-query,omitempty"`
	Encryptor     string `json:"encryptor" yaml:"encryptor" toml:"encryptor"`
	Key           string `json:"key,omitempty" yaml:"key,omitempty" toml:"key,omitempty"`
}

// EncryptTableConfig tuple.
type EncryptTableConfig struct {
	Name    string                 `json:"name" yaml:"name" toml:"name"`
	Columns []*EncryptColumnConfig `json:"columns" yaml:"columns" toml:"columns"`
}

// EncryptRuleConfig tuple.
type EncryptRuleConfig struct {
	Tables []*EncryptTableConfig `json:"tables" yaml:"tables" toml:"tables"`
}

// TableMetaDataConfig tuple.
type TableMetaDataConfig struct {
	Name    string   `json:"name" yaml:"name" toml:"name"`
	Columns []string `json:"columns" yaml:"columns" toml:"columns"`
	Indexes []string `json:"indexes,omitempty" yaml:"indexes,omitempty" toml:"indexes,omitempty"`
}

// MetaDataConfig tuple.
type MetaDataConfig struct {
	Tables []*TableMetaDataConfig `json:"tables" yaml:"tables" toml:"tables"`
}

// LexerConfig tuple.
type LexerConfig struct {
	Dialect string `json:"dialect" yaml:"dialect" toml:"dialect"`
}

// DefaultLexerConfig returns default lexer config.
func DefaultLexerConfig() *LexerConfig {
	return &LexerConfig{
		Dialect: "mysql",
	}
}

// UnmarshalJSON interface on LexerConfig.
func (c *LexerConfig) UnmarshalJSON(b []byte) error {
	type confAlias *LexerConfig
	conf := confAlias(DefaultLexerConfig())
	if err := json.Unmarshal(b, conf); err != nil {
		return err
	}
	*c = LexerConfig(*conf)
	return nil
}

// LogConfig tuple.
type LogConfig struct {
	Level string `json:"level" yaml:"level" toml:"level"`
}

// DefaultLogConfig returns default log config.
func DefaultLogConfig() *LogConfig {
	return &LogConfig{
		Level: "ERROR",
	}
}

// UnmarshalJSON interface on LogConfig.
func (c *LogConfig) UnmarshalJSON(b []byte) error {
	type confAlias *LogConfig
	conf := confAlias(DefaultLogConfig())
	if err := json.Unmarshal(b, conf); err != nil {
		return err
	}
	*c = LogConfig(*conf)
	return nil
}

// Config tuple.
type Config struct {
	DataSources []string            `json:"datasources" yaml:"datasources" toml:"datasources"`
	Sharding    *ShardingRuleConfig `json:"sharding" yaml:"sharding" toml:"sharding"`
	Encrypt     *EncryptRuleConfig  `json:"encrypt" yaml:"encrypt" toml:"encrypt"`
	MetaData    *MetaDataConfig     `json:"metadata" yaml:"metadata" toml:"metadata"`
	Lexer       *LexerConfig        `json:"lexer" yaml:"lexer" toml:"lexer"`
	Log         *LogConfig          `json:"log" yaml:"log" toml:"log"`
}

func checkConfig(conf *Config) {
	if conf.Sharding == nil {
		conf.Sharding = &ShardingRuleConfig{}
	}

	if conf.Encrypt == nil {
		conf.Encrypt = &EncryptRuleConfig{}
	}

	if conf.MetaData == nil {
		conf.MetaData = &MetaDataConfig{}
	}

	if conf.Lexer == nil {
		conf.Lexer = DefaultLexerConfig()
	}
	if conf.Lexer.Dialect == "" {
		conf.Lexer.Dialect = DefaultLexerConfig().Dialect
	}

	if conf.Log == nil {
		conf.Log = DefaultLogConfig()
	}
	if conf.Log.Level == "" {
		conf.Log.Level = DefaultLogConfig().Level
	}
}

// LoadConfig used to load the config from file, the decoder is chosen by the suffix.
func LoadConfig(path string) (*Config, error) {
	data, err := xbase.ReadFile(path)
	if err != nil {
		return nil, err
	}

	conf := &Config{}
	switch ext := xbase.FileExt(path); ext {
	case "json":
		if err := json.Unmarshal(data, conf); err != nil {
			return nil, errors.WithStack(err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, conf); err != nil {
			return nil, errors.WithStack(err)
		}
	case "toml":
		if _, err := toml.Decode(string(data), conf); err != nil {
			return nil, errors.WithStack(err)
		}
	default:
		return nil, errors.Errorf("config.unknown.format[%s].use.json.yaml.or.toml", path)
	}
	checkConfig(conf)
	return conf, nil
}

// ReadTableRuleConfig used to read the table rule config from the json data.
func ReadTableRuleConfig(data string) (*TableRuleConfig, error) {
	conf := &TableRuleConfig{}
	if err := json.Unmarshal([]byte(data), conf); err != nil {
		return nil, errors.WithStack(err)
	}
	return conf, nil
}

// WriteConfig used to write the conf to file, the encoder is chosen by the suffix.
func WriteConfig(path string, conf interface{}) error {
	var b []byte
	var err error

	switch xbase.FileExt(path) {
	case "yaml", "yml":
		b, err = yaml.Marshal(conf)
	case "toml":
		buf := new(bytes.Buffer)
		err = toml.NewEncoder(buf).Encode(conf)
		b = buf.Bytes()
	default:
		b, err = json.MarshalIndent(conf, "", "\t")
	}
	if err != nil {
		return errors.WithStack(err)
	}
	return xbase.WriteFile(path, b)
}
