package rubiks

import (
	"math/rand/v2"
	"time"
)

// Source supplies the random choices made by Shuffle. A *rand.Rand from
// math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// NewSource returns a deterministic generator for seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x5DEECE66D))
}

// ShuffleOption configures Shuffle.
type ShuffleOption func(*shuffleConfig)

type shuffleConfig struct {
	source Source
}

func defaultShuffleConfig() *shuffleConfig {
	return &shuffleConfig{}
}

// WithSource draws moves from src. Two shuffles fed by sources in the same
// state produce the same moves.
func WithSource(src Source) ShuffleOption {
	return func(c *shuffleConfig) {
		c.source = src
	}
}

// WithSeed draws moves from a fresh generator seeded with seed.
func WithSeed(seed uint64) ShuffleOption {
	return func(c *shuffleConfig) {
		c.source = NewSource(seed)
	}
}

func (c *shuffleConfig) sourceOrDefault() Source {
	if c.source != nil {
		return c.source
	}
	return NewSource(uint64(time.Now().UnixNano()))
}
