// Command duskcrawlsim runs many synchronous local self-play matches
// back-to-back, varying the search horizon, and writes CSV run/step
// records for manual calibration of the evaluator weight table.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"duskcrawl/combat"
	"duskcrawl/decide"
	"duskcrawl/meta"
	"duskcrawl/metrics"
	"duskcrawl/runner"
	"duskcrawl/searcher"
)

func main() {
	runs := flag.Int("runs", 20, "number of self-play runs per horizon")
	horizons := flag.String("horizons", "2,4,6", "comma-separated search horizons to compare")
	outDir := flag.String("out", "duskcrawlsim-results", "output directory for CSV records")
	seed := flag.Uint64("seed", 1, "base RNG seed; run i uses seed+i")
	flag.Parse()

	hs, err := parseHorizons(*horizons)
	if err != nil {
		fmt.Fprintln(os.Stderr, "duskcrawlsim:", err)
		os.Exit(1)
	}

	stamp := time.Now().UTC()
	writer, err := metrics.NewWriter(*outDir, "self-play", stamp)
	if err != nil {
		fmt.Fprintln(os.Stderr, "duskcrawlsim:", err)
		os.Exit(1)
	}

	var runRecords []metrics.RunRecord
	var stepRecords []metrics.StepRecord
	runID := 0

	for _, horizon := range hs {
		for i := 0; i < *runs; i++ {
			runID++
			start := time.Now()

			engine := searcher.New(searcher.WithHorizon(horizon), searcher.WithMetrics())
			decider := decide.New(decide.WithEngine(engine))
			r := runner.New(decider, *seed+uint64(runID))

			trace := r.Run(sampleDungeon())
			end := time.Now()

			runRecords = append(runRecords, metrics.RunRecord{
				ID:        runID,
				Horizon:   horizon,
				Survived:  trace.Survived,
				Steps:     len(trace.Steps),
				StartTime: start,
				EndTime:   end,
			})

			for step, st := range trace.Steps {
				stepRecords = append(stepRecords, metrics.StepRecord{
					Run:            runID,
					Step:           step,
					CurrentRoom:    st.Before.CurrentRoomIndex,
					TotalRooms:     st.Before.TotalRooms,
					LootPhase:      st.Before.LootPhase,
					ActionKind:     actionKindLabel(st.Action),
					Value:          0,
					SearchDuration: st.SearchDuration,
					NodesExpanded:  st.Metrics.NodesExpanded,
					CacheHits:      st.Metrics.CacheHits,
					LethalOverride: st.Metrics.LethalOverrides,
				})
			}

			fmt.Printf("run %d (horizon=%d): survived=%v steps=%d\n", runID, horizon, trace.Survived, len(trace.Steps))
		}
	}

	if err := writer.WriteRunRecords(runRecords); err != nil {
		fmt.Fprintln(os.Stderr, "duskcrawlsim:", err)
		os.Exit(1)
	}
	if err := writer.WriteStepRecords(stepRecords); err != nil {
		fmt.Fprintln(os.Stderr, "duskcrawlsim:", err)
		os.Exit(1)
	}
}

func actionKindLabel(a combat.Action) string {
	if a.Kind == combat.ActionLoot {
		return "loot"
	}
	return "move"
}

func parseHorizons(list string) ([]int, error) {
	var out []int
	start := 0
	for i := 0; i <= len(list); i++ {
		if i == len(list) || list[i] == ',' {
			if i > start {
				var h int
				if _, err := fmt.Sscanf(list[start:i], "%d", &h); err != nil {
					return nil, fmt.Errorf("invalid horizon %q: %w", list[start:i], err)
				}
				if h <= 0 {
					h = meta.DefaultHorizon
				}
				out = append(out, h)
			}
			start = i + 1
		}
	}
	if len(out) == 0 {
		return []int{meta.DefaultHorizon}, nil
	}
	return out, nil
}

// sampleDungeon is a small fixed three-enemy run used as the calibration
// scenario; a real host would instead feed snapshots pulled from the live
// game server.
func sampleDungeon() combat.RunState {
	player := combat.Fighter{
		Health:  combat.Health{Current: 30, Max: 30},
		Armor:   combat.Health{Current: 0, Max: 10},
		Rock:    combat.MoveStat{Atk: 5, Def: 2, Charges: 3},
		Paper:   combat.MoveStat{Atk: 4, Def: 2, Charges: 3},
		Scissor: combat.MoveStat{Atk: 3, Def: 3, Charges: 3},
	}
	enemy := func(hp, atk int) combat.Fighter {
		return combat.Fighter{
			Health:  combat.Health{Current: hp, Max: hp},
			Armor:   combat.Health{Current: 0, Max: 5},
			Rock:    combat.MoveStat{Atk: atk, Def: 1, Charges: 3},
			Paper:   combat.MoveStat{Atk: atk, Def: 1, Charges: 3},
			Scissor: combat.MoveStat{Atk: atk, Def: 1, Charges: 3},
		}
	}

	return combat.RunState{
		Player: player,
		Enemies: []combat.Fighter{
			enemy(15, 3),
			enemy(20, 4),
			enemy(25, 5),
		},
		TotalRooms:       3,
		CurrentRoomIndex: 0,
	}
}
