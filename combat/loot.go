package combat

// LootKind is the canonical tag of a loot offer. The engine core only ever
// sees this closed sum type; translating an open, free-form server
// payload into one is the job of a thin classifier layer outside this
// package.
type LootKind int

const (
	LootUnknown LootKind = iota
	LootHeal
	LootAddMaxHealth
	LootAddMaxArmor
	LootUpgradeRock
	LootUpgradePaper
	LootUpgradeScissor
	LootGrantCharges
)

// LootOption is a single boon offer. V1/V2 are the two value slots for the
// six canonical single-target tags; V3 additionally carries the scissor
// component of GrantCharges{r,p,s} (r=V1, p=V2, s=V3), which needs three
// integers where the others need at most two.
type LootOption struct {
	Kind LootKind
	V1   int
	V2   int
	V3   int
}

func Heal(v int) LootOption              { return LootOption{Kind: LootHeal, V1: v} }
func AddMaxHealth(v int) LootOption      { return LootOption{Kind: LootAddMaxHealth, V1: v} }
func AddMaxArmor(v int) LootOption       { return LootOption{Kind: LootAddMaxArmor, V1: v} }
func UpgradeRock(a, d int) LootOption    { return LootOption{Kind: LootUpgradeRock, V1: a, V2: d} }
func UpgradePaper(a, d int) LootOption   { return LootOption{Kind: LootUpgradePaper, V1: a, V2: d} }
func UpgradeScissor(a, d int) LootOption { return LootOption{Kind: LootUpgradeScissor, V1: a, V2: d} }
func GrantCharges(r, p, s int) LootOption {
	return LootOption{Kind: LootGrantCharges, V1: r, V2: p, V3: s}
}

// ApplyLoot returns a new RunState with loot's declarative effect applied
// to the player. Unknown loot kinds are a no-op; the scoring side already
// returns 0 for them.
func ApplyLoot(s RunState, loot LootOption) RunState {
	s = s.Copy()
	p := s.Player

	switch loot.Kind {
	case LootHeal:
		p.Health.Current = minInt(p.Health.Current+loot.V1, p.Health.Max)
	case LootAddMaxHealth:
		p.Health.Max += loot.V1
		p.Health.Current += loot.V1
	case LootAddMaxArmor:
		p.Armor.Max += loot.V1
		p.Armor.Current = minInt(p.Armor.Current+loot.V1, p.Armor.Max)
	case LootUpgradeRock:
		p.Rock.Atk += loot.V1
		p.Rock.Def += loot.V2
	case LootUpgradePaper:
		p.Paper.Atk += loot.V1
		p.Paper.Def += loot.V2
	case LootUpgradeScissor:
		p.Scissor.Atk += loot.V1
		p.Scissor.Def += loot.V2
	case LootGrantCharges:
		p.Rock.Charges = clampCharges(p.Rock.Charges + loot.V1)
		p.Paper.Charges = clampCharges(p.Paper.Charges + loot.V2)
		p.Scissor.Charges = clampCharges(p.Scissor.Charges + loot.V3)
	}

	s.Player = p
	return s
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
