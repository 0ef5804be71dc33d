// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// BuilderOption mutates builderConfig before constructors run.
// Option constructors panic on meaningless input; constructors never do.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a seeded RNG so RandomBipartite is reproducible.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithPartitionPrefix sets the Left and Right ID prefixes.
// Empty values fall back to the defaults "L" and "R".
// Panics when both are non-empty and equal, since IDs would collide across sides.
func WithPartitionPrefix(left, right string) BuilderOption {
	if left != "" && left == right {
		panic("builder: WithPartitionPrefix(left == right)")
	}

	return func(c *builderConfig) { c.leftPrefix, c.rightPrefix = left, right }
}
