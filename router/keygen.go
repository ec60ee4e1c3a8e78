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
	"sync"
	"time"

	"github.com/radondb/shardcore/config"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/atomic"
)

// KeyGenerator generates the values of the generated key column.
type KeyGenerator interface {
	Type() KeyGeneratorType
	GenerateKey() (string, error)
}

// NewKeyGenerator creates the key generator from the config.
func NewKeyGenerator(conf *config.KeyGeneratorConfig) (KeyGenerator, error) {
	switch KeyGeneratorType(strings.ToUpper(conf.Type)) {
	case KeyGeneratorTypeIncrement:
		return NewIncrementKeyGenerator(), nil
	case KeyGeneratorTypeUUID:
		return &UUIDKeyGenerator{}, nil
	case KeyGeneratorTypeSnowflake, "":
		return NewSnowflakeKeyGenerator(conf.WorkerID)
	default:
		return nil, errors.Errorf("router.unsupported.key.generator.type[%s]", conf.Type)
	}
}

// IncrementKeyGenerator hands out a sequence seeded with Now().UnixNano.
type IncrementKeyGenerator struct {
	seq *atomic.Uint64
}

// NewIncrementKeyGenerator creates the generator.
func NewIncrementKeyGenerator() *IncrementKeyGenerator {
	return &IncrementKeyGenerator{
		seq: atomic.NewUint64(uint64(time.Now().UnixNano())),
	}
}

// Type returns the generator type.
func (g *IncrementKeyGenerator) Type() KeyGeneratorType {
	return KeyGeneratorTypeIncrement
}

// GenerateKey returns the next value.
func (g *IncrementKeyGenerator) GenerateKey() (string, error) {
	return strconv.FormatUint(g.seq.Inc(), 10), nil
}

// UUIDKeyGenerator generates random v4 uuids without dashes.
type UUIDKeyGenerator struct{}

// Type returns the generator type.
func (g *UUIDKeyGenerator) Type() KeyGeneratorType {
	return KeyGeneratorTypeUUID
}

// GenerateKey returns a new uuid.
func (g *UUIDKeyGenerator) GenerateKey() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", errors.WithStack(err)
	}
	return strings.Replace(id.String(), "-", "", -1), nil
}

const (
	snowflakeWorkerBits   = 10
	snowflakeSequenceBits = 12
	snowflakeMaxWorkerID  = 1<<snowflakeWorkerBits - 1
	snowflakeSequenceMask = 1<<snowflakeSequenceBits - 1
)

// snowflakeEpoch is 2016-11-01 00:00:00 UTC.
var snowflakeEpoch = time.Date(2016, time.November, 1, 0, 0, 0, 0, time.UTC)

// SnowflakeKeyGenerator generates 64-bit ids:
// 41 bits of milliseconds since the epoch, 10 bits of worker id, 12 bits of sequence.
type SnowflakeKeyGenerator struct {
	mu        sync.Mutex
	workerID  int64
	lastMilli int64
	sequence  int64
	now       func() time.Time
}

// NewSnowflakeKeyGenerator creates the generator, workerID must be in [0, 1023].
func NewSnowflakeKeyGenerator(workerID int64) (*SnowflakeKeyGenerator, error) {
	if workerID < 0 || workerID > snowflakeMaxWorkerID {
		return nil, errors.Errorf("router.snowflake.worker.id[%d].out.of.range[0-%d]", workerID, snowflakeMaxWorkerID)
	}
	return &SnowflakeKeyGenerator{
		workerID: workerID,
		now:      time.Now,
	}, nil
}

// Type returns the generator type.
func (g *SnowflakeKeyGenerator) Type() KeyGeneratorType {
	return KeyGeneratorTypeSnowflake
}

// GenerateKey returns the next id.
func (g *SnowflakeKeyGenerator) GenerateKey() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	milli := g.now().Sub(snowflakeEpoch).Nanoseconds() / int64(time.Millisecond)
	if milli < g.lastMilli {
		return "", errors.Errorf("router.snowflake.clock.moved.backwards[%dms]", g.lastMilli-milli)
	}
	if milli == g.lastMilli {
		g.sequence = (g.sequence + 1) & snowflakeSequenceMask
		if g.sequence == 0 {
			// Sequence exhausted, spin to the next millisecond.
			for milli <= g.lastMilli {
				milli = g.now().Sub(snowflakeEpoch).Nanoseconds() / int64(time.Millisecond)
			}
		}
	} else {
		g.sequence = 0
	}
	g.lastMilli = milli
	id := milli<<(snowflakeWorkerBits+snowflakeSequenceBits) | g.workerID<<snowflakeSequenceBits | g.sequence
	return strconv.FormatInt(id, 10), nil
}
