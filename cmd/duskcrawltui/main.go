// Command duskcrawltui is a terminal demo driver for the decision engine:
// it steps a single self-play run one decision at a time so a human can
// watch what the engine would have done. It sits entirely outside the
// decision path; this binary is only ever a caller of decide.Decide.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"duskcrawl/combat"
	"duskcrawl/decide"
	"duskcrawl/meta"
	"duskcrawl/runner"
	"duskcrawl/searcher"
)

func main() {
	horizon := flag.Int("horizon", meta.DefaultHorizon, "expectimax search horizon")
	seed := flag.Uint64("seed", 1, "enemy-move RNG seed")
	flag.Parse()

	engine := searcher.New(searcher.WithHorizon(*horizon))
	decider := decide.New(decide.WithEngine(engine))
	r := runner.New(decider, *seed)

	m := NewModel(r, sampleRun())

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "duskcrawltui:", err)
		os.Exit(1)
	}
}

func sampleRun() combat.RunState {
	player := combat.Fighter{
		Health:  combat.Health{Current: 28, Max: 30},
		Armor:   combat.Health{Current: 2, Max: 10},
		Rock:    combat.MoveStat{Atk: 5, Def: 2, Charges: 3},
		Paper:   combat.MoveStat{Atk: 4, Def: 2, Charges: 3},
		Scissor: combat.MoveStat{Atk: 3, Def: 3, Charges: 3},
	}
	enemy := combat.Fighter{
		Health:  combat.Health{Current: 18, Max: 18},
		Armor:   combat.Health{Current: 0, Max: 5},
		Rock:    combat.MoveStat{Atk: 4, Def: 1, Charges: 3},
		Paper:   combat.MoveStat{Atk: 4, Def: 1, Charges: 3},
		Scissor: combat.MoveStat{Atk: 4, Def: 1, Charges: 3},
	}
	tougherEnemy := enemy
	tougherEnemy.Health = combat.Health{Current: 24, Max: 24}
	tougherEnemy.Rock.Atk, tougherEnemy.Paper.Atk, tougherEnemy.Scissor.Atk = 6, 6, 6

	return combat.RunState{
		Player:           player,
		Enemies:          []combat.Fighter{enemy, tougherEnemy},
		TotalRooms:       2,
		CurrentRoomIndex: 0,
	}
}
