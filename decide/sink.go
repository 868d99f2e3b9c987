package decide

import (
	"github.com/rs/zerolog"

	"duskcrawl/combat"
)

// Sink observes decisions without the engine core ever touching a logger
// directly. Production callers get NoopSink; a host that wants visibility
// into why the engine chose what it chose can supply a ZerologSink or
// their own implementation.
type Sink interface {
	OnCombatDecision(s combat.RunState, action combat.Action, value float64)
	OnLootDecision(s combat.RunState, index int, score float64)
}

// NoopSink discards every observation. It is the default.
type NoopSink struct{}

func (NoopSink) OnCombatDecision(combat.RunState, combat.Action, float64) {}
func (NoopSink) OnLootDecision(combat.RunState, int, float64)             {}

// ZerologSink emits one structured debug event per decision.
type ZerologSink struct {
	Logger zerolog.Logger
}

func (z ZerologSink) OnCombatDecision(s combat.RunState, action combat.Action, value float64) {
	z.Logger.Debug().
		Int("current_enemy_index", s.CurrentEnemyIndex).
		Str("move", action.Move.String()).
		Float64("value", value).
		Msg("combat decision")
}

func (z ZerologSink) OnLootDecision(s combat.RunState, index int, score float64) {
	z.Logger.Debug().
		Int("loot_index", index).
		Int("offered", len(s.LootOptions)).
		Float64("score", score).
		Msg("loot decision")
}
