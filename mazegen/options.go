// options.go — functional options for the mazegen package.
//
// Contract:
//   - Options are functional (type Option func(*genConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     Generate itself never panics on a bad Config, it returns errors.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.
//   - No hidden globals; everything flows through genConfig.

package mazegen

import (
	"math/rand"
)

// defaultCostDensity is the fraction of open interior cells upgraded to
// numbered-cost terrain when no WithCostDensity option is given.
const defaultCostDensity = 0.15

// Option customizes the generator by mutating a genConfig before carving
// begins.
type Option func(*genConfig)

// genConfig carries the resolved generation knobs.
type genConfig struct {
	rng         *rand.Rand
	costDensity float64
}

// newGenConfig resolves defaults: an unseeded RNG drawn from the global
// source and the default cost density.
func newGenConfig() genConfig {
	return genConfig{
		rng:         rand.New(rand.NewSource(rand.Int63())),
		costDensity: defaultCostDensity,
	}
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("mazegen: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithCostDensity sets the fraction of open interior cells that become
// Cost1..Cost4 terrain. Panics outside [0,1].
func WithCostDensity(f float64) Option {
	if f < 0 || f > 1 {
		panic("mazegen: WithCostDensity outside [0,1]")
	}
	return func(c *genConfig) {
		c.costDensity = f
	}
}
