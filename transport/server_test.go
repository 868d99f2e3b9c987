package transport

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"duskcrawl/combat"
	"duskcrawl/decide"
)

func TestServerAndClientRoundTripCombatDecision(t *testing.T) {
	srv := NewServer(decide.New())
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	client := NewClient(ts.URL)

	fighter := combat.Fighter{
		Health:  combat.Health{Current: 30, Max: 30},
		Armor:   combat.Health{Current: 0, Max: 10},
		Rock:    combat.MoveStat{Atk: 5, Def: 2, Charges: 3},
		Paper:   combat.MoveStat{Atk: 4, Def: 2, Charges: 3},
		Scissor: combat.MoveStat{Atk: 3, Def: 2, Charges: 3},
	}
	s := combat.RunState{Player: fighter, Enemies: []combat.Fighter{fighter}}

	action, requestID, err := client.Decide(context.Background(), s)
	require.NoError(t, err)
	require.Equal(t, combat.ActionMove, action.Kind)
	require.NotEmpty(t, requestID)
}

func TestServerAndClientRoundTripLootDecision(t *testing.T) {
	srv := NewServer(decide.New())
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	client := NewClient(ts.URL)

	fighter := combat.Fighter{
		Health:  combat.Health{Current: 15, Max: 30},
		Armor:   combat.Health{Current: 0, Max: 10},
		Rock:    combat.MoveStat{Atk: 5, Def: 2, Charges: 3},
		Paper:   combat.MoveStat{Atk: 4, Def: 2, Charges: 3},
		Scissor: combat.MoveStat{Atk: 3, Def: 2, Charges: 3},
	}
	s := combat.RunState{
		Player:      fighter,
		Enemies:     []combat.Fighter{fighter},
		LootPhase:   true,
		LootOptions: []combat.LootOption{combat.Heal(10), combat.UpgradeRock(1, 0)},
	}

	action, _, err := client.Decide(context.Background(), s)
	require.NoError(t, err)
	require.Equal(t, combat.ActionLoot, action.Kind)
}
