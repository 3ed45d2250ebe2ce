// Package collapse: functional options for the generation drivers.
//
// Contract (strict):
//   - Options are functional (type Option func(*config)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     algorithms themselves never panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.
//   - No hidden globals; everything flows through config.
package collapse

import (
	"golang.org/x/exp/rand" // RNG family shared with gonum/stat/distuv
)

// defaultMaxRestarts bounds Regenerate's retry loop when the caller does
// not choose a budget.
const defaultMaxRestarts = 8

// config aggregates all knobs used by the drivers. Passed by value:
// immutable to callers once resolved.
type config struct {
	// rng drives every stochastic choice; nil means "not configured" and
	// is rejected by entry points with ErrNeedRandSource.
	rng *rand.Rand
	// uniformFallback switches the zero-constraint fallback from the
	// model's marginal frequencies to a uniform pick over the vocabulary.
	uniformFallback bool
	// maxRestarts bounds Regenerate's whole-grid retry loop.
	maxRestarts int
}

// newConfig resolves deterministic defaults, then applies options in
// order (later overrides earlier).
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{
		rng:             nil,
		uniformFallback: false,
		maxRestarts:     defaultMaxRestarts,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Option customizes a generation call by mutating its config before any
// work begins.
type Option func(*config)

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs. The *rand.Rand doubles as the source for the
// Dirichlet and categorical draws, so one seed fixes the whole run.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("collapse: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a fresh RNG from the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithUniformFallback makes the zero-constraint fallback draw uniformly
// over the tile vocabulary instead of from the marginal training
// frequencies. Off by default: the marginal preserves statistical
// fidelity, the uniform variant is a calibration knob.
func WithUniformFallback() Option {
	return func(c *config) {
		c.uniformFallback = true
	}
}

// WithMaxRestarts sets Regenerate's retry budget. Panics if n < 1.
func WithMaxRestarts(n int) Option {
	if n < 1 {
		panic("collapse: WithMaxRestarts(n<1)")
	}
	return func(c *config) {
		c.maxRestarts = n
	}
}
