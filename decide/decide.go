// Package decide wires the loot valuator and the expectimax searcher
// behind the single public entry point a caller actually wants: given a
// snapshot, return the next action.
package decide

import (
	"duskcrawl/combat"
	"duskcrawl/searcher"
)

// Decider dispatches one decision: loot phase picks the max-scoring offer;
// combat phase runs the search engine. It holds no state between calls;
// the search engine clears its memoization cache on every Decide, per the
// design's "cache is local to one decide call" rule.
type Decider struct {
	engine      *searcher.Engine
	weights     combat.Weights
	lootWeights combat.LootWeights
	sink        Sink
}

// Option configures a Decider.
type Option func(*Decider)

// WithEngine overrides the search engine (e.g. to change horizon or attach
// metrics).
func WithEngine(e *searcher.Engine) Option {
	return func(d *Decider) {
		d.engine = e
	}
}

// WithWeights overrides the evaluator weight table used by the Decider's
// own loot scoring. It does not reach the search engine (callers who also
// want the search to use the same table should build the engine with
// searcher.WithWeights(w)).
func WithWeights(w combat.Weights) Option {
	return func(d *Decider) {
		d.weights = w
	}
}

// WithLootWeights overrides the loot valuator's magnitude table.
func WithLootWeights(w combat.LootWeights) Option {
	return func(d *Decider) {
		d.lootWeights = w
	}
}

// WithSink attaches an observer sink. The default is NoopSink.
func WithSink(sink Sink) Option {
	return func(d *Decider) {
		d.sink = sink
	}
}

// New constructs a Decider with a fresh default-horizon engine unless
// overridden by WithEngine.
func New(options ...Option) *Decider {
	d := &Decider{
		engine:      searcher.New(),
		weights:     combat.DefaultWeights(),
		lootWeights: combat.DefaultLootWeights(),
		sink:        NoopSink{},
	}
	for _, option := range options {
		option(d)
	}
	return d
}

// LastMetrics returns the search metrics from the most recent combat
// decision (zero-valued after a loot decision or if the engine has no
// metrics collector attached).
func (d *Decider) LastMetrics() searcher.SearchMetrics {
	return d.engine.LastMetrics()
}

// Decide dispatches a single decision:
//
//	if loot_phase and loot_options not empty:
//	    return index of loot option with maximum score_loot (ties -> lowest index)
//	else:
//	    clear memoization (implicit: the engine builds a fresh cache per call)
//	    (action, _) = search(state, H)
//	    return action (or a Rock fallback if none legal)
func (d *Decider) Decide(s combat.RunState) combat.Action {
	if s.LootPhase && len(s.LootOptions) > 0 {
		return d.decideLoot(s)
	}

	action, value := d.engine.Decide(s)
	d.sink.OnCombatDecision(s, action, value)
	return action
}

func (d *Decider) decideLoot(s combat.RunState) combat.Action {
	bestIndex := 0
	bestScore := combat.ScoreLootWithWeights(s, s.LootOptions[0], d.weights, d.lootWeights)

	for i := 1; i < len(s.LootOptions); i++ {
		score := combat.ScoreLootWithWeights(s, s.LootOptions[i], d.weights, d.lootWeights)
		if score > bestScore {
			bestScore = score
			bestIndex = i
		}
	}

	d.sink.OnLootDecision(s, bestIndex, bestScore)
	return combat.LootAction(bestIndex)
}
