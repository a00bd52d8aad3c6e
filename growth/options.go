// SPDX-License-Identifier: MIT
//
// Functional options for the growth package.
//
// Contract (strict):
//   - Options are functional (type Option func(*config)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs; Grow
//     itself must not panic.
//   - Determinism is explicit: seeding happens only via WithSeed or WithRand.
//   - No hidden globals; everything flows through config.
package growth

import "math/rand"

// Option customizes one Grow run by mutating its config before the first
// step executes.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// config aggregates all knobs used by Grow. Passed by value to strategies'
// surroundings; immutable once resolved.
type config struct {
	// rng drives every stochastic choice; nil means "not configured".
	rng *rand.Rand

	// strategy selects the next unordered pair each step.
	strategy Strategy
}

// newConfig resolves deterministic defaults, then applies options in order
// (later overrides earlier).
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{
		rng:      nil,       // no RNG unless explicitly seeded
		strategy: Uniform(), // uniform pair selection by default
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed configures a fresh deterministic RNG with the given seed. Use it
// in tests and examples to lock outcomes.
// Complexity: O(1).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
// Complexity: O(1).
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("growth: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithStrategy sets the pair-selection strategy. Panics on nil to surface
// programmer error early.
// Complexity: O(1).
func WithStrategy(s Strategy) Option {
	if s == nil {
		panic("growth: WithStrategy(nil)")
	}
	return func(c *config) {
		c.strategy = s
	}
}
