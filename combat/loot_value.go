package combat

// LootWeights holds the tunable magnitudes behind ScoreLoot's three
// components: state-delta value, build-preference bias, and the greedy
// forward micro-simulation.
type LootWeights struct {
	WeaponBiasMagnitude float64
	StatBiasMagnitude   float64
	HealBiasMagnitude   float64

	MicroSimRounds     int
	TTKPenaltyPerRound float64
	SurvivalBonus      float64

	FutureFloorCap     float64
	FutureFloorPerRoom float64

	FullHealSentinel    float64
	NearFullHealPenalty float64
	NearFullHealRatio   float64
}

// DefaultLootWeights returns the calibrated magnitudes: weapon investment
// bias tops out around 50, stat bias around 40, heal bias around 30; the
// micro-simulation runs 3 greedy rounds and weighs a round of time-to-kill
// against a unit of survival at roughly 1:3.
func DefaultLootWeights() LootWeights {
	return LootWeights{
		WeaponBiasMagnitude: 50,
		StatBiasMagnitude:   40,
		HealBiasMagnitude:   30,

		MicroSimRounds:     3,
		TTKPenaltyPerRound: 1200,
		SurvivalBonus:      4000,

		FutureFloorCap:     0.4,
		FutureFloorPerRoom: 0.05,

		FullHealSentinel:    -1e12,
		NearFullHealPenalty: -100_000,
		NearFullHealRatio:   0.9,
	}
}

// ScoreLoot ranks a single loot option for the current state, using the
// default evaluator and loot weight tables.
func ScoreLoot(s RunState, loot LootOption) float64 {
	return ScoreLootWithWeights(s, loot, DefaultWeights(), DefaultLootWeights())
}

// ScoreLootWithWeights combines three signals into one scalar:
//
//  1. State Delta Value: Evaluate(after) - Evaluate(before).
//  2. A build-preference soft bias toward whichever weapon or resource the
//     player has already invested in.
//  3. A short greedy forward micro-simulation comparing time-to-kill and
//     end-of-window survival with and without the loot.
//
// Two special cases short-circuit the combination entirely: healing a
// fighter already at full health is worthless (a large negative sentinel),
// and healing a fighter above NearFullHealRatio is a near-total waste (a
// smaller, still strongly negative, penalty).
func ScoreLootWithWeights(s RunState, loot LootOption, w Weights, lw LootWeights) float64 {
	if loot.Kind == LootHeal {
		missing := s.Player.Health.Max - s.Player.Health.Current
		if missing < 1 {
			return lw.FullHealSentinel
		}
		if s.Player.Health.Max > 0 {
			ratio := float64(s.Player.Health.Current) / float64(s.Player.Health.Max)
			if ratio > lw.NearFullHealRatio {
				return lw.NearFullHealPenalty
			}
		}
	}

	before := EvaluateWithWeights(s, w)
	after := EvaluateWithWeights(ApplyLoot(s, loot), w)
	score := after - before

	score += buildPreferenceBias(s, loot, lw)

	ttkDelta, survivalDelta := microSimDeltas(s, loot, lw.MicroSimRounds)
	score += -lw.TTKPenaltyPerRound*float64(ttkDelta) + lw.SurvivalBonus*float64(survivalDelta)

	score *= futureFloorMultiplier(s, lw)

	if isNonFinite(score) {
		return negativeInfinitySentinel
	}
	return score
}

func isNonFinite(f float64) bool {
	return f != f || f > 1e308 || f < -1e308
}

// buildPreferenceBias rewards loot that matches what the player has already
// been investing in: weapons with high atk*charges+def are the player's
// apparent main line, a healthy armor ratio signals a tank build, and low
// hp/charges signal an urgent need rather than a preference.
func buildPreferenceBias(s RunState, loot LootOption, lw LootWeights) float64 {
	p := s.Player

	weaponScore := func(m Move) float64 {
		ms := p.Stat(m)
		charges := ms.Charges
		if charges < 1 {
			charges = 1
		}
		if charges > 3 {
			charges = 3
		}
		return float64(ms.Atk*charges) + 0.5*float64(ms.Def)
	}

	rockScore := weaponScore(Rock)
	paperScore := weaponScore(Paper)
	scissorScore := weaponScore(Scissor)
	maxWeapon := rockScore
	if paperScore > maxWeapon {
		maxWeapon = paperScore
	}
	if scissorScore > maxWeapon {
		maxWeapon = scissorScore
	}

	weaponPref := func(score float64) float64 {
		if maxWeapon <= 0 {
			return 0
		}
		return score / maxWeapon
	}

	hpPref := 0.0
	if p.Health.Max > 0 {
		hpPref = 1 - float64(p.Health.Current)/float64(p.Health.Max)
	}
	armorPref := 0.0
	if p.Armor.Max > 0 {
		armorPref = float64(p.Armor.Current) / float64(p.Armor.Max)
	}
	chargesPref := 1 - minFloat(1, float64(p.TotalPositiveCharges())/9)

	switch loot.Kind {
	case LootUpgradeRock:
		return weaponUpgradeBias(weaponPref(rockScore), loot, lw)
	case LootUpgradePaper:
		return weaponUpgradeBias(weaponPref(paperScore), loot, lw)
	case LootUpgradeScissor:
		return weaponUpgradeBias(weaponPref(scissorScore), loot, lw)
	case LootAddMaxHealth:
		return hpPref * lw.StatBiasMagnitude
	case LootAddMaxArmor:
		return armorPref * lw.StatBiasMagnitude
	case LootGrantCharges:
		return chargesPref * lw.StatBiasMagnitude
	case LootHeal:
		return hpPref * lw.HealBiasMagnitude
	default:
		return 0
	}
}

// weaponUpgradeBias scales with the square of the total atk+def offered,
// rewarding a substantial upgrade to the player's apparent main weapon far
// more than linearly. A bare +1 upgrade (the smallest offer the engine will
// see) is specifically de-preferred: it barely moves the weapon's combat
// output, so it takes a flat penalty rather than a share of the quadratic
// bonus.
func weaponUpgradeBias(pref float64, loot LootOption, lw LootWeights) float64 {
	delta := loot.V1 + loot.V2
	if delta == 1 {
		return -pref * lw.WeaponBiasMagnitude * 0.4
	}
	const referenceDelta = 3
	scale := minFloat(1, float64(delta*delta)/float64(referenceDelta*referenceDelta))
	return pref * lw.WeaponBiasMagnitude * scale
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// microSimDeltas forward-simulates rounds greedy rounds twice, once from s
// and once from s with loot applied, and returns the signed differences in
// rounds-to-kill and end-of-window survival (modified minus baseline).
func microSimDeltas(s RunState, loot LootOption, rounds int) (ttkDelta int, survivalDelta int) {
	baseTTK, baseAlive := simulateGreedy(s, rounds)
	modTTK, modAlive := simulateGreedy(ApplyLoot(s, loot), rounds)

	ttkDelta = modTTK - baseTTK
	survivalDelta = boolToInt(modAlive) - boolToInt(baseAlive)
	return ttkDelta, survivalDelta
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// simulateGreedy advances s up to rounds times using a greedy deterministic
// policy for both fighters (always the legal move with highest attack,
// ties broken by rock-paper-scissor enumeration order), stopping early if
// the current enemy dies or the player dies. It returns the round on which
// the current enemy died (or rounds+1 if it never did within the window)
// and whether the player was alive at the end of the simulated window.
func simulateGreedy(s RunState, rounds int) (ttk int, alive bool) {
	startIndex := s.CurrentEnemyIndex
	cur := s.Copy()

	for r := 1; r <= rounds; r++ {
		if cur.Player.Health.Current == 0 {
			return rounds + 1, false
		}
		enemy, ok := cur.CurrentEnemy()
		if !ok {
			return r - 1, cur.Player.Health.Current > 0
		}

		pm := greedyMove(cur.Player)
		em := greedyMove(enemy)
		cur = PlayRound(cur, pm, em)

		if cur.Player.Health.Current == 0 {
			return rounds + 1, false
		}
		if cur.CurrentEnemyIndex > startIndex {
			return r, true
		}
	}
	return rounds + 1, cur.Player.Health.Current > 0
}

// greedyMove picks the legal move with the highest attack value, breaking
// ties by canonical rock-paper-scissor order. It falls back to Rock if
// nothing is currently usable.
func greedyMove(f Fighter) Move {
	best := Rock
	bestAtk := -1
	found := false
	for _, m := range moveOrder {
		ms := f.Stat(m)
		if !ms.Usable() {
			continue
		}
		if !found || ms.Atk > bestAtk {
			best = m
			bestAtk = ms.Atk
			found = true
		}
	}
	if !found {
		return Rock
	}
	return best
}

// futureFloorMultiplier dampens loot scoring slightly as fewer rooms remain
// before the end of a run is near: acquiring a long-term investment matters
// less the closer the run is to over. With no room budget configured, the
// multiplier is always 1.
func futureFloorMultiplier(s RunState, lw LootWeights) float64 {
	if s.TotalRooms <= 0 {
		return 1
	}
	bonus := float64(s.RemainingRooms()) * lw.FutureFloorPerRoom
	if bonus > lw.FutureFloorCap {
		bonus = lw.FutureFloorCap
	}
	return 1 + bonus
}
