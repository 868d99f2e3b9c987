package transport

import (
	"testing"

	"github.com/stretchr/testify/require"

	"duskcrawl/combat"
)

func TestClassifyCanonicalTagsAreCaseInsensitive(t *testing.T) {
	got := Classify(RawLootOption{Type: "UpgradeRock", V1: 2, V2: 1})
	require.Equal(t, combat.UpgradeRock(2, 1), got)
}

func TestClassifyFallsBackToLabelKeywords(t *testing.T) {
	cases := []struct {
		name string
		raw  RawLootOption
		want combat.LootOption
	}{
		{"max health via hp", RawLootOption{Label: "Flask of HP", V1: 5}, combat.AddMaxHealth(5)},
		{"max health via vitality", RawLootOption{Label: "Ring of Vitality", V1: 3}, combat.AddMaxHealth(3)},
		{"armor via armor", RawLootOption{Label: "Iron Armor Plate", V1: 4}, combat.AddMaxArmor(4)},
		{"heal via potion, not max-hp", RawLootOption{Label: "Healing Potion", V1: 10}, combat.Heal(10)},
		{"rock via sword", RawLootOption{Label: "Sharpened Sword", V1: 1, V2: 1}, combat.UpgradeRock(1, 1)},
		{"paper via shield", RawLootOption{Label: "Tower Shield", V1: 0, V2: 2}, combat.UpgradePaper(0, 2)},
		{"scissor via magic", RawLootOption{Label: "Arcane Magic Shard", V1: 2, V2: 0}, combat.UpgradeScissor(2, 0)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Classify(tc.raw))
		})
	}
}

func TestClassifyArmorPrecedesGenericHealKeyword(t *testing.T) {
	// "armor" must win over "heal" even if a label could loosely suggest
	// both: max-armor is matched before the generic heal fallback.
	got := Classify(RawLootOption{Label: "Healing Armor Plate", V1: 6})
	require.Equal(t, combat.AddMaxArmor(6), got)
}

func TestClassifyUnknownLabelReturnsUnknownKind(t *testing.T) {
	got := Classify(RawLootOption{Type: "mystery", Label: "???"})
	require.Equal(t, combat.LootUnknown, got.Kind)
}
