package combat

// Weights holds the calibrated coefficients for Evaluate, exposed as
// configuration rather than baked-in constants so callers can retune
// without touching the resolution order itself.
type Weights struct {
	PlayerDeadScore       float64
	PerClearedEnemy       float64
	CurrentEnemyDeadBonus float64
	HealthPerPoint        float64
	ArmorPerPoint         float64
	ArmorZeroPenalty      float64
	DamageDealtPerPoint   float64
	ChargeZero            float64
	ChargeOne             float64
	ChargeTwo             float64
	ChargeThreeOrMore     float64
	StatInvestmentPerUnit float64
	ThreatPerAtkPoint     float64
	LowHPRatioThreshold   float64
	LowHPPenaltyPerUnit   float64
}

// DefaultWeights returns the balanced "combatEvaluate" profile: survival
// dominates progress dominates aggression dominates economy dominates
// threat.
func DefaultWeights() Weights {
	return Weights{
		PlayerDeadScore:       -1_000_000,
		PerClearedEnemy:       20_000,
		CurrentEnemyDeadBonus: 35_000,
		HealthPerPoint:        300,
		ArmorPerPoint:         120,
		ArmorZeroPenalty:      -800,
		DamageDealtPerPoint:   80,
		ChargeZero:            -120,
		ChargeOne:             35,
		ChargeTwo:             60,
		ChargeThreeOrMore:     90,
		StatInvestmentPerUnit: 30,
		ThreatPerAtkPoint:     -25,
		LowHPRatioThreshold:   0.35,
		LowHPPenaltyPerUnit:   2000,
	}
}

// Evaluate scores a RunState using the default weight table. Higher is
// better for the player. It is pure and deterministic: evaluate(s) ==
// evaluate(clone(s)).
func Evaluate(s RunState) float64 {
	return EvaluateWithWeights(s, DefaultWeights())
}

// EvaluateWithWeights is Evaluate parameterized by an explicit Weights
// table.
func EvaluateWithWeights(s RunState, w Weights) float64 {
	if s.Player.Health.Current == 0 {
		return w.PlayerDeadScore
	}

	score := w.PerClearedEnemy * float64(s.CurrentEnemyIndex)

	enemy, hasEnemy := s.CurrentEnemy()
	if hasEnemy && enemy.Health.Current == 0 {
		score += w.CurrentEnemyDeadBonus
		return score + 250*float64(s.Player.Health.Current)
	}

	score += w.HealthPerPoint * float64(s.Player.Health.Current)
	score += w.ArmorPerPoint * float64(s.Player.Armor.Current)
	if s.Player.Armor.Current == 0 {
		score += w.ArmorZeroPenalty
	}

	if hasEnemy {
		score += w.DamageDealtPerPoint * float64(enemy.Health.Max-enemy.Health.Current)
	}

	for _, m := range moveOrder {
		score += chargeBonus(w, s.Player.Stat(m).Charges)
	}

	for _, m := range moveOrder {
		ms := s.Player.Stat(m)
		score += w.StatInvestmentPerUnit * float64(ms.Atk+ms.Def)
	}

	if hasEnemy {
		for _, m := range moveOrder {
			ms := enemy.Stat(m)
			if ms.Charges > 0 {
				score += w.ThreatPerAtkPoint * float64(ms.Atk)
			}
		}
	}

	if s.Player.Health.Max > 0 {
		ratio := float64(s.Player.Health.Current) / float64(s.Player.Health.Max)
		if ratio < w.LowHPRatioThreshold {
			score -= (w.LowHPRatioThreshold - ratio) * w.LowHPPenaltyPerUnit
		}
	}

	return score
}

func chargeBonus(w Weights, charges int) float64 {
	switch {
	case charges <= 0:
		return w.ChargeZero
	case charges == 1:
		return w.ChargeOne
	case charges == 2:
		return w.ChargeTwo
	default:
		return w.ChargeThreeOrMore
	}
}
