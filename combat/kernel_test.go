package combat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func fullFighter() Fighter {
	return Fighter{
		Health:  Health{Current: 30, Max: 30},
		Armor:   Health{Current: 0, Max: 10},
		Rock:    MoveStat{Atk: 5, Def: 2, Charges: 3},
		Paper:   MoveStat{Atk: 4, Def: 2, Charges: 3},
		Scissor: MoveStat{Atk: 3, Def: 2, Charges: 3},
	}
}

func TestApplyRound(t *testing.T) {
	t.Run("tie combat round", func(t *testing.T) {
		player := fullFighter()
		player.Rock.Atk = 5
		player.Rock.Def = 2
		enemy := fullFighter()
		enemy.Rock.Atk = 3
		enemy.Rock.Def = 1

		s := RunState{Player: player, Enemies: []Fighter{enemy}}

		got := ApplyRound(s, Rock, Rock)

		require.Equal(t, 27, got.Player.Health.Current, "player takes enemy's rock atk")
		require.Equal(t, 25, got.Enemies[0].Health.Current, "enemy takes player's rock atk")
		require.Equal(t, 2, got.Player.Armor.Current, "player gains rock def as armor")
		require.Equal(t, 1, got.Enemies[0].Armor.Current, "enemy gains rock def as armor")
		require.Equal(t, 2, got.Player.Rock.Charges, "used move decrements from 3")
		require.Equal(t, 2, got.Enemies[0].Rock.Charges, "used move decrements from 3")
	})

	t.Run("player wins: only enemy takes damage", func(t *testing.T) {
		s := RunState{Player: fullFighter(), Enemies: []Fighter{fullFighter()}}

		got := ApplyRound(s, Rock, Scissor)

		require.Equal(t, 30, got.Player.Health.Current, "player takes no damage on a win")
		require.Equal(t, 25, got.Enemies[0].Health.Current, "enemy takes player's rock atk")
		require.Equal(t, 2, got.Player.Armor.Current, "player gains rock def as armor")
		require.Equal(t, 0, got.Enemies[0].Armor.Current, "enemy gains no armor on a loss")
	})

	t.Run("armor absorbs damage before health", func(t *testing.T) {
		player := fullFighter()
		player.Armor.Current = 10
		enemy := fullFighter()
		enemy.Rock.Atk = 6

		s := RunState{Player: player, Enemies: []Fighter{enemy}}

		got := ApplyRound(s, Scissor, Rock)

		require.Equal(t, 30, got.Player.Health.Current, "armor should fully absorb 6 damage")
		require.Equal(t, 4, got.Player.Armor.Current, "armor reduced by absorbed damage")
	})

	t.Run("damage beyond armor spills into health", func(t *testing.T) {
		player := fullFighter()
		player.Armor.Current = 2
		enemy := fullFighter()
		enemy.Rock.Atk = 6

		s := RunState{Player: player, Enemies: []Fighter{enemy}}

		got := ApplyRound(s, Scissor, Rock)

		require.Equal(t, 0, got.Player.Armor.Current)
		require.Equal(t, 26, got.Player.Health.Current, "4 points spill past the 2 absorbed")
	})

	t.Run("health floors at zero", func(t *testing.T) {
		player := fullFighter()
		player.Health.Current = 2
		enemy := fullFighter()
		enemy.Rock.Atk = 50

		s := RunState{Player: player, Enemies: []Fighter{enemy}}

		got := ApplyRound(s, Scissor, Rock)

		require.Equal(t, 0, got.Player.Health.Current)
	})

	t.Run("charge regeneration property: use rock from {1,0,-1}", func(t *testing.T) {
		player := fullFighter()
		player.Rock = MoveStat{Atk: 5, Def: 2, Charges: 1}
		player.Paper = MoveStat{Atk: 4, Def: 2, Charges: 0}
		player.Scissor = MoveStat{Atk: 3, Def: 2, Charges: -1}
		enemy := fullFighter()

		s := RunState{Player: player, Enemies: []Fighter{enemy}}

		got := ApplyRound(s, Rock, Rock)

		require.Equal(t, -1, got.Player.Rock.Charges, "charges==1 on used move becomes -1")
		require.Equal(t, 1, got.Player.Paper.Charges, "unused move at 0 increments to 1")
		require.Equal(t, 0, got.Player.Scissor.Charges, "unused move at -1 resets to 0")
	})

	t.Run("unused move already at 3 stays at 3", func(t *testing.T) {
		s := RunState{Player: fullFighter(), Enemies: []Fighter{fullFighter()}}

		got := ApplyRound(s, Rock, Rock)

		require.Equal(t, 3, got.Player.Paper.Charges)
		require.Equal(t, 3, got.Player.Scissor.Charges)
	})

	t.Run("does not mutate its argument", func(t *testing.T) {
		s := RunState{Player: fullFighter(), Enemies: []Fighter{fullFighter()}}
		before := s.Player.Health.Current

		ApplyRound(s, Rock, Scissor)

		require.Equal(t, before, s.Player.Health.Current, "ApplyRound must not mutate its input")
	})

	t.Run("armor gain clamps to max", func(t *testing.T) {
		player := fullFighter()
		player.Armor = Health{Current: 9, Max: 10}
		player.Rock.Def = 5
		s := RunState{Player: player, Enemies: []Fighter{fullFighter()}}

		got := ApplyRound(s, Rock, Scissor)

		require.Equal(t, 10, got.Player.Armor.Current)
	})
}

func TestAdvanceEnemyIfDead(t *testing.T) {
	t.Run("advances index when current enemy health hits zero", func(t *testing.T) {
		dead := fullFighter()
		dead.Health.Current = 0
		s := RunState{Enemies: []Fighter{dead, fullFighter()}, CurrentEnemyIndex: 0}

		got := AdvanceEnemyIfDead(s)

		require.Equal(t, 1, got.CurrentEnemyIndex)
	})

	t.Run("leaves index unchanged when enemy alive", func(t *testing.T) {
		s := RunState{Enemies: []Fighter{fullFighter()}, CurrentEnemyIndex: 0}

		got := AdvanceEnemyIfDead(s)

		require.Equal(t, 0, got.CurrentEnemyIndex)
	})
}

func TestPlayRoundUniversalInvariants(t *testing.T) {
	atks := []int{0, 1, 3, 5, 50}
	moves := []Move{Rock, Paper, Scissor}

	for _, pAtk := range atks {
		for _, pm := range moves {
			for _, em := range moves {
				player := fullFighter()
				player.Rock.Atk, player.Paper.Atk, player.Scissor.Atk = pAtk, pAtk, pAtk
				s := RunState{Player: player, Enemies: []Fighter{fullFighter()}}

				got := PlayRound(s, pm, em)

				require.NoError(t, Validate(ClampState(got)))
				require.GreaterOrEqual(t, got.Player.Health.Current, 0)
				require.LessOrEqual(t, got.Player.Health.Current, got.Player.Health.Max)
				require.GreaterOrEqual(t, got.Player.Armor.Current, 0)
				require.LessOrEqual(t, got.Player.Armor.Current, got.Player.Armor.Max)
			}
		}
	}
}
