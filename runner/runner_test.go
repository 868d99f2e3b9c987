package runner

import (
	"testing"

	"github.com/stretchr/testify/require"

	"duskcrawl/combat"
	"duskcrawl/decide"
	"duskcrawl/searcher"
)

func basicFighter() combat.Fighter {
	return combat.Fighter{
		Health:  combat.Health{Current: 30, Max: 30},
		Armor:   combat.Health{Current: 0, Max: 10},
		Rock:    combat.MoveStat{Atk: 5, Def: 2, Charges: 3},
		Paper:   combat.MoveStat{Atk: 4, Def: 2, Charges: 3},
		Scissor: combat.MoveStat{Atk: 3, Def: 2, Charges: 3},
	}
}

func TestRunStopsAtTerminalState(t *testing.T) {
	weak := basicFighter()
	weak.Health = combat.Health{Current: 1, Max: 30}

	s := combat.RunState{Player: basicFighter(), Enemies: []combat.Fighter{weak}}
	d := decide.New(decide.WithEngine(searcher.New(searcher.WithHorizon(2))))
	r := New(d, 1)

	trace := r.Run(s)

	require.True(t, trace.Final.Terminal())
	require.LessOrEqual(t, len(trace.Steps), MaxSteps)
	require.NotEmpty(t, trace.Steps)
}

func TestRunIsDeterministicForAFixedSeed(t *testing.T) {
	s := combat.RunState{Player: basicFighter(), Enemies: []combat.Fighter{basicFighter()}}
	d1 := decide.New(decide.WithEngine(searcher.New(searcher.WithHorizon(2))))
	d2 := decide.New(decide.WithEngine(searcher.New(searcher.WithHorizon(2))))

	trace1 := New(d1, 42).Run(s)
	trace2 := New(d2, 42).Run(s)

	require.Equal(t, len(trace1.Steps), len(trace2.Steps))
	require.Equal(t, trace1.Final, trace2.Final)
}

func TestRunRecordsMetricsPerCombatStep(t *testing.T) {
	s := combat.RunState{Player: basicFighter(), Enemies: []combat.Fighter{basicFighter()}}
	d := decide.New(decide.WithEngine(searcher.New(searcher.WithHorizon(1), searcher.WithMetrics())))
	r := New(d, 7)

	trace := r.Run(s)

	require.NotEmpty(t, trace.Steps)
	require.Greater(t, trace.Steps[0].Metrics.NodesExpanded, int64(0))
}
