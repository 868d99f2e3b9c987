// Package searcher implements the expectimax search over combat moves:
// the player chooses a move, the enemy is modeled as a uniform distribution
// over its own legal moves, and any branch certainly ending in the
// player's death overrides the probability-weighted average for that
// action; a plain expectation would happily trade a small chance of death
// against a larger average payoff, which a dungeon crawler's player never
// wants.
package searcher

import (
	"duskcrawl/combat"
)

// Engine runs one fixed-horizon expectimax search per Decide call. It is
// not safe for concurrent use by multiple goroutines on the same call (the
// memoization cache is unshared, new per call), but distinct Engines, or
// sequential calls on the same Engine, are both fine.
type Engine struct {
	horizon         int
	weights         combat.Weights
	metrics         Collector
	lethalThreshold float64
	lastMetrics     SearchMetrics
}

type cacheEntry struct {
	action combat.Action
	value  float64
}

// Decide returns the root-best action and its expectimax value, searching
// to the Engine's configured horizon. Preconditions (the caller's
// responsibility): state is not in loot phase, and both the player and the
// current enemy are alive; Decide still degrades gracefully (returning a
// Rock fallback) if either is violated, since search treats those as
// already terminal.
func (e *Engine) Decide(s combat.RunState) (combat.Action, float64) {
	e.metrics.Start()
	cache := make(map[string]cacheEntry)
	action, value := e.search(s, e.horizon, cache)
	e.lastMetrics = e.metrics.Complete()
	return action, value
}

// LastMetrics returns the metrics collected during the most recent Decide
// call (zero-valued if the Engine was built without WithMetrics).
func (e *Engine) LastMetrics() SearchMetrics {
	return e.lastMetrics
}

// search implements the expectimax recursion: at depth 0, or
// any terminal state, it returns the evaluator's score with no action.
// Otherwise it expands every legal player move against the enemy's uniform
// reply distribution, applies the lethal-branch override per action, and
// returns the max-value action along with its value.
func (e *Engine) search(s combat.RunState, depth int, cache map[string]cacheEntry) (combat.Action, float64) {
	if depth == 0 || s.Terminal() {
		return combat.Action{}, combat.EvaluateWithWeights(s, e.weights)
	}

	key := searchKey(s, depth)
	if entry, ok := cache[key]; ok {
		e.metrics.AddCacheHit()
		return entry.action, entry.value
	}

	legal := s.Player.LegalMoves()
	if len(legal) == 0 {
		entry := cacheEntry{action: combat.MoveAction(combat.Rock), value: combat.EvaluateWithWeights(s, e.weights)}
		cache[key] = entry
		return entry.action, entry.value
	}

	enemy, _ := s.CurrentEnemy()
	enemyMoves := enemy.LegalMoves()
	if len(enemyMoves) == 0 {
		enemyMoves = []combat.Move{combat.Rock}
	}
	prob := 1.0 / float64(len(enemyMoves))

	var bestAction combat.Action
	bestValue := 0.0
	haveBest := false

	for _, a := range legal {
		e.metrics.AddNodeExpanded()

		lethal := false
		worst := 0.0
		acc := 0.0
		for _, em := range enemyMoves {
			child := combat.PlayRound(s, a, em)
			_, v := e.search(child, depth-1, cache)
			if v < e.lethalThreshold {
				if !lethal || v < worst {
					worst = v
				}
				lethal = true
			} else {
				acc += v * prob
			}
		}

		value := acc
		if lethal {
			value = worst
			e.metrics.AddLethalOverride()
		}

		if !haveBest || value > bestValue {
			bestValue = value
			bestAction = combat.MoveAction(a)
			haveBest = true
		}
	}

	entry := cacheEntry{action: bestAction, value: bestValue}
	cache[key] = entry
	return bestAction, bestValue
}
