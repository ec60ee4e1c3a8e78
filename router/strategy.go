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
	"strings"

	"github.com/radondb/shardcore/config"

	"github.com/go-faster/city"
	"github.com/pkg/errors"
	jump "github.com/lithammer/go-jump-consistent-hash"
	"github.com/spaolacci/murmur3"
)

// ShardingStrategy picks the targets (datasources or tables) of the sharding values.
type ShardingStrategy interface {
	Type() StrategyType
	ShardingColumns() []string
	// DoSharding returns the matched targets in targets order, all of them when values is empty.
	DoSharding(targets []string, values []string) ([]string, error)
}

// NewShardingStrategy creates the strategy from the config.
func NewShardingStrategy(conf *config.StrategyConfig) (ShardingStrategy, error) {
	if conf == nil {
		return &NoneStrategy{}, nil
	}
	switch StrategyType(strings.ToUpper(conf.Type)) {
	case StrategyTypeNone, "":
		return &NoneStrategy{}, nil
	case StrategyTypeHash:
		if conf.ShardingColumn == "" {
			return nil, errors.New("router.hash.strategy.sharding.column.can.not.be.empty")
		}
		algorithm := strings.ToLower(conf.Algorithm)
		switch algorithm {
		case "":
			algorithm = hashJump
		case hashJump, hashMurmur, hashCity:
		default:
			return nil, errors.Errorf("router.hash.strategy.unsupported.algorithm[%s]", conf.Algorithm)
		}
		return &HashStrategy{column: conf.ShardingColumn, algorithm: algorithm}, nil
	case StrategyTypeMod:
		if conf.ShardingColumn == "" {
			return nil, errors.New("router.mod.strategy.sharding.column.can.not.be.empty")
		}
		return &ModStrategy{column: conf.ShardingColumn}, nil
	default:
		return nil, errors.Errorf("router.unsupported.strategy.type[%s]", conf.Type)
	}
}

// NoneStrategy routes to every target.
type NoneStrategy struct{}

// Type returns the strategy type.
func (s *NoneStrategy) Type() StrategyType {
	return StrategyTypeNone
}

// ShardingColumns returns nothing.
func (s *NoneStrategy) ShardingColumns() []string {
	return nil
}

// DoSharding returns every target.
func (s *NoneStrategy) DoSharding(targets []string, values []string) ([]string, error) {
	return targets, nil
}

const (
	hashJump   = "jump"
	hashMurmur = "murmur"
	hashCity   = "city"
)

// HashStrategy hashes the value into a bucket of the targets.
type HashStrategy struct {
	column    string
	algorithm string
}

// Type returns the strategy type.
func (s *HashStrategy) Type() StrategyType {
	return StrategyTypeHash
}

// ShardingColumns returns the hashed column.
func (s *HashStrategy) ShardingColumns() []string {
	return []string{s.column}
}

// Algorithm returns the hash algorithm name.
func (s *HashStrategy) Algorithm() string {
	return s.algorithm
}

// DoSharding implements ShardingStrategy.
func (s *HashStrategy) DoSharding(targets []string, values []string) ([]string, error) {
	if len(values) == 0 || len(targets) == 0 {
		return targets, nil
	}
	hit := make([]bool, len(targets))
	for _, v := range values {
		hit[s.bucket(v, len(targets))] = true
	}
	return pick(targets, hit), nil
}

func (s *HashStrategy) bucket(value string, buckets int) int {
	switch s.algorithm {
	case hashMurmur:
		return int(murmur3.Sum64([]byte(value)) % uint64(buckets))
	case hashCity:
		return int(city.Hash32([]byte(value)) % uint32(buckets))
	default:
		if i, err := strconv.ParseInt(value, 0, 64); err == nil {
			return int(jump.Hash(uint64(i), int32(buckets)))
		}
		return int(jump.HashString(value, int32(buckets), jump.CRC64))
	}
}

// ModStrategy takes the integer value modulo the number of targets.
// The target whose name ends with '_<mod>' wins, otherwise the target at that ordinal.
type ModStrategy struct {
	column string
}

// Type returns the strategy type.
func (s *ModStrategy) Type() StrategyType {
	return StrategyTypeMod
}

// ShardingColumns returns the sharding column.
func (s *ModStrategy) ShardingColumns() []string {
	return []string{s.column}
}

// DoSharding implements ShardingStrategy.
func (s *ModStrategy) DoSharding(targets []string, values []string) ([]string, error) {
	if len(values) == 0 || len(targets) == 0 {
		return targets, nil
	}
	n := int64(len(targets))
	hit := make([]bool, len(targets))
	for _, v := range values {
		i, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, errors.Errorf("router.mod.strategy.column[%s].value[%s].is.not.integer", s.column, v)
		}
		mod := ((i % n) + n) % n
		hit[s.target(targets, mod)] = true
	}
	return pick(targets, hit), nil
}

func (s *ModStrategy) target(targets []string, mod int64) int {
	suffix := "_" + strconv.FormatInt(mod, 10)
	for i, t := range targets {
		if strings.HasSuffix(t, suffix) {
			return i
		}
	}
	return int(mod)
}

func pick(targets []string, hit []bool) []string {
	var result []string
	for i, t := range targets {
		if hit[i] {
			result = append(result, t)
		}
	}
	return result
}
