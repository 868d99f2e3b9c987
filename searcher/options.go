package searcher

import (
	"duskcrawl/combat"
	"duskcrawl/meta"
)

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithHorizon overrides the search depth. Non-positive values are ignored.
func WithHorizon(horizon int) Option {
	return func(e *Engine) {
		if horizon > 0 {
			e.horizon = horizon
		}
	}
}

// WithWeights overrides the evaluator weight table the search scores leaf
// and branch-exit states with.
func WithWeights(w combat.Weights) Option {
	return func(e *Engine) {
		e.weights = w
	}
}

// WithMetrics attaches a real Collector in place of the default no-op one.
func WithMetrics() Option {
	return func(e *Engine) {
		e.metrics = NewCollector()
	}
}

// WithLethalThreshold overrides the value below which a child branch is
// treated as certainly lethal. Exposed mainly for tests that want to
// synthesize a lethal override without reaching the evaluator's actual
// death-sentinel magnitude.
func WithLethalThreshold(threshold float64) Option {
	return func(e *Engine) {
		e.lethalThreshold = threshold
	}
}

// New constructs an Engine with the given options layered over the
// package defaults: horizon meta.DefaultHorizon, DefaultWeights, and a
// no-op metrics collector.
func New(options ...Option) *Engine {
	e := &Engine{
		horizon:         meta.DefaultHorizon,
		weights:         combat.DefaultWeights(),
		metrics:         NewNoopCollector(),
		lethalThreshold: meta.LethalThreshold,
	}
	for _, option := range options {
		option(e)
	}
	return e
}
