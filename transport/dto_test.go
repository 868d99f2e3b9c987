package transport

import (
	"testing"

	"github.com/stretchr/testify/require"

	"duskcrawl/combat"
)

func sampleFighterDTO() FighterDTO {
	return FighterDTO{
		Health:  HealthDTO{Current: 25, Max: 30},
		Armor:   HealthDTO{Current: 2, Max: 10},
		Rock:    MoveStatDTO{Atk: 5, Def: 2, Charges: 3},
		Paper:   MoveStatDTO{Atk: 4, Def: 2, Charges: 3},
		Scissor: MoveStatDTO{Atk: 3, Def: 2, Charges: 3},
	}
}

func TestFromDTORoundTripsFighterFields(t *testing.T) {
	dto := RunStateDTO{
		Player:           sampleFighterDTO(),
		Enemies:          []FighterDTO{sampleFighterDTO()},
		TotalRooms:       5,
		CurrentRoomIndex: 2,
	}

	s := FromDTO(dto)

	require.Equal(t, 25, s.Player.Health.Current)
	require.Equal(t, 10, s.Player.Armor.Max)
	require.Len(t, s.Enemies, 1)
	require.Equal(t, 5, s.TotalRooms)
}

func TestFromDTOClassifiesLootOptions(t *testing.T) {
	dto := RunStateDTO{
		Player:      sampleFighterDTO(),
		Enemies:     []FighterDTO{sampleFighterDTO()},
		LootPhase:   true,
		LootOptions: []RawLootOption{{Type: "Heal", V1: 10}, {Label: "Iron Armor"}},
	}

	s := FromDTO(dto)

	require.Len(t, s.LootOptions, 2)
	require.Equal(t, combat.LootHeal, s.LootOptions[0].Kind)
	require.Equal(t, combat.LootAddMaxArmor, s.LootOptions[1].Kind)
}

func TestToDTOEmitsCanonicalTagForEachLootKind(t *testing.T) {
	s := combat.RunState{
		Player:      combat.Fighter{},
		LootOptions: []combat.LootOption{combat.UpgradePaper(1, 2)},
	}

	dto := ToDTO(s)

	require.Len(t, dto.LootOptions, 1)
	require.Equal(t, "upgradepaper", dto.LootOptions[0].Type)
	require.Equal(t, 1, dto.LootOptions[0].V1)
	require.Equal(t, 2, dto.LootOptions[0].V2)
}

func TestActionToDTOEncodesMoveAndLoot(t *testing.T) {
	require.Equal(t, ActionDTO{Kind: "move", Move: "Rock"}, ActionToDTO(combat.MoveAction(combat.Rock)))
	require.Equal(t, ActionDTO{Kind: "loot", LootIndex: 2}, ActionToDTO(combat.LootAction(2)))
}
