/*
 * Radon
 *
 * Copyright 2019 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package config

// MockDataSources returns the physical datasources of the mock cluster.
func MockDataSources() []string {
	return []string{"ds0", "ds1"}
}

// MockShardingRuleConfig returns a rule with:
// t_order and t_order_item sharded over ds${0..1}.xx_${0..1} and bound together,
// t_user replicated to every datasource, t_config broadcast.
func MockShardingRuleConfig() *ShardingRuleConfig {
	return &ShardingRuleConfig{
		DefaultDataSourceName: "ds0",
		Tables: []*TableRuleConfig{
			{
				LogicTable:      "t_order",
				ActualDataNodes: "ds${0..1}.t_order_${0..1}",
				DatabaseStrategy: &StrategyConfig{
					Type:           "mod",
					ShardingColumn: "user_id",
				},
				TableStrategy: &StrategyConfig{
					Type:           "mod",
					ShardingColumn: "order_id",
				},
				KeyGenerator: &KeyGeneratorConfig{
					Type:   "snowflake",
					Column: "order_id",
				},
				LogicIndex: "idx_order_status",
			},
			{
				LogicTable:      "t_order_item",
				ActualDataNodes: "ds${0..1}.t_order_item_${0..1}",
				TableStrategy: &StrategyConfig{
					Type:           "mod",
					ShardingColumn: "order_id",
				},
			},
			{
				LogicTable: "T_USER",
				TableStrategy: &StrategyConfig{
					Type:           "hash",
					ShardingColumn: "user_id",
					Algorithm:      "jump",
				},
			},
		},
		BindingTableGroups: []string{"t_order, t_order_item"},
		BroadcastTables:    []string{"t_config"},
		DefaultDatabaseStrategy: &StrategyConfig{
			Type:           "hash",
			ShardingColumn: "user_id",
			Algorithm:      "murmur",
		},
		DefaultKeyGenerator: &KeyGeneratorConfig{
			Type:   "increment",
			Column: "id",
		},
	}
}

// MockMasterSlaveRuleConfig returns the group 'ds' over one master and two slaves.
func MockMasterSlaveRuleConfig() *MasterSlaveRuleConfig {
	return &MasterSlaveRuleConfig{
		Name:                 "ds",
		MasterDataSourceName: "ds_master",
		SlaveDataSourceNames: []string{"ds_slave0", "ds_slave1"},
		LoadBalanceAlgorithm: "round_robin",
	}
}

// MockEncryptRuleConfig returns the encryption of t_encrypt and t_user.
func MockEncryptRuleConfig() *EncryptRuleConfig {
	return &EncryptRuleConfig{
		Tables: []*EncryptTableConfig{
			{
				Name: "t_encrypt",
				Columns: []*EncryptColumnConfig{
					{
						Name:          "pwd",
						Cipher:        "pwd_cipher",
						AssistedQuery: "pwd_assisted",
						Encryptor:     "aes",
						Key:           "123456",
					},
					{
						Name:      "mobile",
						Cipher:    "mobile_cipher",
						Encryptor: "md5",
					},
				},
			},
			{
				Name: "t_user",
				Columns: []*EncryptColumnConfig{
					{
						Name:          "name",
						AssistedQuery: "name_q",
						Encryptor:     "aes",
						Key:           "radon",
					},
				},
			},
		},
	}
}

// MockMetaDataConfig returns the columns and indexes of the mock tables.
func MockMetaDataConfig() *MetaDataConfig {
	return &MetaDataConfig{
		Tables: []*TableMetaDataConfig{
			{
				Name:    "t_order",
				Columns: []string{"order_id", "user_id", "status"},
				Indexes: []string{"idx_order_status"},
			},
			{
				Name:    "t_encrypt",
				Columns: []string{"id", "pwd", "pwd_assisted", "mobile"},
			},
			{
				Name:    "t_user",
				Columns: []string{"id", "name", "name_q"},
				Indexes: []string{"idx_user_name"},
			},
		},
	}
}

// MockConfig returns the full mock config.
func MockConfig() *Config {
	return &Config{
		DataSources: MockDataSources(),
		Sharding:    MockShardingRuleConfig(),
		Encrypt:     MockEncryptRuleConfig(),
		MetaData:    MockMetaDataConfig(),
		Lexer:       DefaultLexerConfig(),
		Log:         DefaultLogConfig(),
	}
}
