package transport

import (
	"strings"

	"duskcrawl/combat"
)

// canonicalTags maps the canonical tag strings the engine recognizes
// directly (case-insensitively) to their LootKind. "grantcharges" has no
// free-form keyword fallback, but the tag itself round-trips so ToDTO
// output always classifies back to what it encoded.
var canonicalTags = map[string]combat.LootKind{
	"heal":           combat.LootHeal,
	"addmaxhealth":   combat.LootAddMaxHealth,
	"addmaxarmor":    combat.LootAddMaxArmor,
	"upgraderock":    combat.LootUpgradeRock,
	"upgradepaper":   combat.LootUpgradePaper,
	"upgradescissor": combat.LootUpgradeScissor,
	"grantcharges":   combat.LootGrantCharges,
}

// Classify translates a free-form server payload into the engine's closed
// LootOption sum type. It first tries an exact (case-insensitive) match on
// the canonical tag string; failing that, it falls back to case-insensitive
// substring matching on the human label, in a fixed precedence: max-hp and
// armor are checked before the generic "heal" keyword so a "healing armor
// plate" isn't misread as a heal. Unknown loot classifies as
// combat.LootUnknown, which the valuator scores as 0.
func Classify(raw RawLootOption) combat.LootOption {
	if kind, ok := canonicalTags[strings.ToLower(raw.Type)]; ok {
		return combat.LootOption{Kind: kind, V1: raw.V1, V2: raw.V2, V3: raw.V3}
	}

	label := strings.ToLower(raw.Label)

	switch {
	case containsAny(label, "maxhealth", "hp", "vitality"):
		return combat.AddMaxHealth(raw.V1)
	case containsAny(label, "maxarmor", "armor"):
		return combat.AddMaxArmor(raw.V1)
	case containsAny(label, "heal", "potion"):
		return combat.Heal(raw.V1)
	case containsAny(label, "rock", "sword"):
		return combat.UpgradeRock(raw.V1, raw.V2)
	case containsAny(label, "paper", "shield"):
		return combat.UpgradePaper(raw.V1, raw.V2)
	case containsAny(label, "scissor", "spell", "magic"):
		return combat.UpgradeScissor(raw.V1, raw.V2)
	default:
		return combat.LootOption{Kind: combat.LootUnknown}
	}
}

func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// canonicalTag returns the wire tag string for a LootKind, the inverse of
// the canonicalTags lookup used by Classify.
func canonicalTag(k combat.LootKind) string {
	switch k {
	case combat.LootHeal:
		return "heal"
	case combat.LootAddMaxHealth:
		return "addmaxhealth"
	case combat.LootAddMaxArmor:
		return "addmaxarmor"
	case combat.LootUpgradeRock:
		return "upgraderock"
	case combat.LootUpgradePaper:
		return "upgradepaper"
	case combat.LootUpgradeScissor:
		return "upgradescissor"
	case combat.LootGrantCharges:
		return "grantcharges"
	default:
		return "unknown"
	}
}
