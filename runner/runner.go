// Package runner drives synchronous local self-play: repeatedly call
// decide.Decide, apply the result, and pick the enemy's reply uniformly at
// random (the same opponent model the search engine assumes), producing a
// step-by-step trace.
package runner

import (
	"time"

	"golang.org/x/exp/rand"

	"duskcrawl/combat"
	"duskcrawl/decide"
	"duskcrawl/searcher"
)

// MaxSteps bounds a single run so a state that never reaches a terminal
// condition cannot loop forever.
const MaxSteps = 500

// StepTrace records one decision within a run: the state it was made from,
// the action taken, and the search cost (zero-valued fields when the
// decider's engine has no metrics collector attached).
type StepTrace struct {
	Before         combat.RunState
	Action         combat.Action
	SearchDuration time.Duration
	Metrics        searcher.SearchMetrics
}

// RunTrace is the full replay of one self-play run.
type RunTrace struct {
	Steps    []StepTrace
	Final    combat.RunState
	Survived bool
}

// Runner drives one self-play run against a fixed Decider.
type Runner struct {
	decider *decide.Decider
	rng     *rand.Rand
}

// New builds a Runner. seed controls the enemy-move RNG, so a run can be
// replayed deterministically.
func New(decider *decide.Decider, seed uint64) *Runner {
	return &Runner{decider: decider, rng: rand.New(rand.NewSource(seed))}
}

// Run drives s to a terminal state (or MaxSteps, whichever comes first),
// returning the full trace.
func (r *Runner) Run(s combat.RunState) RunTrace {
	trace := RunTrace{}

	for step := 0; step < MaxSteps && !s.Terminal(); step++ {
		next, st := r.Step(s)
		trace.Steps = append(trace.Steps, st)
		s = next
	}

	trace.Final = s
	trace.Survived = s.Player.Alive()
	return trace
}

// Step decides and applies exactly one action from s, returning the
// resulting state and a record of what happened. Exposed separately from
// Run so an interactive driver (cmd/duskcrawltui) can advance one decision
// per keypress instead of only ever replaying a whole run at once.
func (r *Runner) Step(s combat.RunState) (combat.RunState, StepTrace) {
	start := time.Now()
	action := r.decider.Decide(s)
	duration := time.Since(start)

	st := StepTrace{
		Before:         s,
		Action:         action,
		SearchDuration: duration,
		Metrics:        r.decider.LastMetrics(),
	}
	return r.applyAction(s, action), st
}

func (r *Runner) applyAction(s combat.RunState, action combat.Action) combat.RunState {
	if action.Kind == combat.ActionLoot {
		if action.Loot < 0 || action.Loot >= len(s.LootOptions) {
			return s
		}
		s = combat.ApplyLoot(s, s.LootOptions[action.Loot])
		s.LootPhase = false
		s.LootOptions = nil
		return s
	}

	enemy, ok := s.CurrentEnemy()
	if !ok {
		return s
	}
	enemyMoves := enemy.LegalMoves()
	if len(enemyMoves) == 0 {
		enemyMoves = []combat.Move{combat.Rock}
	}
	enemyMove := enemyMoves[r.rng.Intn(len(enemyMoves))]

	return combat.PlayRound(s, action.Move, enemyMove)
}
