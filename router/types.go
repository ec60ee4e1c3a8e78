/*
 * Radon
 *
 * Copyright 2019 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package router

// StrategyType type.
type StrategyType string

const (
	// StrategyTypeNone routes to every target.
	StrategyTypeNone StrategyType = "NONE"
	// StrategyTypeHash routes by the hash of the sharding value.
	StrategyTypeHash StrategyType = "HASH"
	// StrategyTypeMod routes by the sharding value modulo the target count.
	StrategyTypeMod StrategyType = "MOD"
)

// KeyGeneratorType type.
type KeyGeneratorType string

const (
	// KeyGeneratorTypeIncrement type.
	KeyGeneratorTypeIncrement KeyGeneratorType = "INCREMENT"
	// KeyGeneratorTypeUUID type.
	KeyGeneratorTypeUUID KeyGeneratorType = "UUID"
	// KeyGeneratorTypeSnowflake type.
	KeyGeneratorTypeSnowflake KeyGeneratorType = "SNOWFLAKE"
)
