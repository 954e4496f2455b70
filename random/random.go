// Package random provides the range generator used to place mines.
package random

import (
	"math/rand"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidRange is returned by Range when min is not strictly less than max.
var ErrInvalidRange = errors.New("invalid range")

// Generator draws uniformly distributed integers. It is not safe for
// concurrent use.
type Generator struct {
	rand *rand.Rand
	seed int64
}

// New returns a Generator producing a deterministic sequence for seed.
func New(seed int64) *Generator {
	return &Generator{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Default returns a Generator seeded from the current time.
func Default() *Generator {
	return New(time.Now().UnixNano())
}

func (gen *Generator) Seed() int64 {
	return gen.seed
}

// Range returns an integer r with min <= r < max.
func (gen *Generator) Range(min, max int) (int, error) {
	if min >= max {
		return 0, errors.Wrapf(ErrInvalidRange, "[%d, %d)", min, max)
	}
	return min + gen.rand.Intn(max-min), nil
}

// Shuffle pseudo-randomizes the order of n elements using swap.
func (gen *Generator) Shuffle(n int, swap func(i, j int)) {
	gen.rand.Shuffle(n, swap)
}

var (
	defaultMu        sync.Mutex
	defaultGenerator = Default()
)

// Range draws from a process-wide generator seeded at startup. It is safe for
// concurrent use.
func Range(min, max int) (int, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return defaultGenerator.Range(min, max)
}
