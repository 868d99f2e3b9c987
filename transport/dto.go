// Package transport is the wire boundary around the pure decision engine:
// JSON request/response shapes, a free-form loot classifier for
// interoperability with a remote game server, and the HTTP service/client
// pair that exercise them. None of this is imported by combat, searcher, or
// decide; the engine core never does I/O.
package transport

import "duskcrawl/combat"

// HealthDTO is the wire shape of combat.Health.
type HealthDTO struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// MoveStatDTO is the wire shape of combat.MoveStat.
type MoveStatDTO struct {
	Atk     int `json:"atk"`
	Def     int `json:"def"`
	Charges int `json:"charges"`
}

// FighterDTO is the wire shape of combat.Fighter.
type FighterDTO struct {
	Health  HealthDTO   `json:"health"`
	Armor   HealthDTO   `json:"armor"`
	Rock    MoveStatDTO `json:"rock"`
	Paper   MoveStatDTO `json:"paper"`
	Scissor MoveStatDTO `json:"scissor"`
}

// RawLootOption is a loot offer as a remote server would actually send it:
// a free-form type tag (canonical or not) plus a human label and up to
// three integer value slots. Classify translates this open record into a
// combat.LootOption.
type RawLootOption struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	V1    int    `json:"v1"`
	V2    int    `json:"v2"`
	V3    int    `json:"v3"`
}

// RunStateDTO is the wire shape of combat.RunState, with loot carried as
// RawLootOption so a server payload doesn't need to already speak the
// engine's internal tagged variant.
type RunStateDTO struct {
	Player            FighterDTO      `json:"player"`
	Enemies           []FighterDTO    `json:"enemies"`
	CurrentEnemyIndex int             `json:"current_enemy_index"`
	LootPhase         bool            `json:"loot_phase"`
	LootOptions       []RawLootOption `json:"loot_options,omitempty"`
	TotalRooms        int             `json:"total_rooms"`
	CurrentRoomIndex  int             `json:"current_room_index"`
}

// ActionDTO is the wire shape of combat.Action.
type ActionDTO struct {
	Kind      string `json:"kind"`
	Move      string `json:"move,omitempty"`
	LootIndex int    `json:"loot_index,omitempty"`
}

func healthFromDTO(d HealthDTO) combat.Health { return combat.Health{Current: d.Current, Max: d.Max} }
func healthToDTO(h combat.Health) HealthDTO   { return HealthDTO{Current: h.Current, Max: h.Max} }

func moveStatFromDTO(d MoveStatDTO) combat.MoveStat {
	return combat.MoveStat{Atk: d.Atk, Def: d.Def, Charges: d.Charges}
}

func moveStatToDTO(m combat.MoveStat) MoveStatDTO {
	return MoveStatDTO{Atk: m.Atk, Def: m.Def, Charges: m.Charges}
}

func fighterFromDTO(d FighterDTO) combat.Fighter {
	return combat.Fighter{
		Health:  healthFromDTO(d.Health),
		Armor:   healthFromDTO(d.Armor),
		Rock:    moveStatFromDTO(d.Rock),
		Paper:   moveStatFromDTO(d.Paper),
		Scissor: moveStatFromDTO(d.Scissor),
	}
}

func fighterToDTO(f combat.Fighter) FighterDTO {
	return FighterDTO{
		Health:  healthToDTO(f.Health),
		Armor:   healthToDTO(f.Armor),
		Rock:    moveStatToDTO(f.Rock),
		Paper:   moveStatToDTO(f.Paper),
		Scissor: moveStatToDTO(f.Scissor),
	}
}

// FromDTO translates a wire RunStateDTO into the engine's internal
// combat.RunState, classifying every raw loot option along the way.
func FromDTO(d RunStateDTO) combat.RunState {
	enemies := make([]combat.Fighter, len(d.Enemies))
	for i, e := range d.Enemies {
		enemies[i] = fighterFromDTO(e)
	}

	var loot []combat.LootOption
	if len(d.LootOptions) > 0 {
		loot = make([]combat.LootOption, len(d.LootOptions))
		for i, raw := range d.LootOptions {
			loot[i] = Classify(raw)
		}
	}

	return combat.RunState{
		Player:            fighterFromDTO(d.Player),
		Enemies:           enemies,
		CurrentEnemyIndex: d.CurrentEnemyIndex,
		LootPhase:         d.LootPhase,
		LootOptions:       loot,
		TotalRooms:        d.TotalRooms,
		CurrentRoomIndex:  d.CurrentRoomIndex,
	}
}

// ToDTO translates an internal combat.RunState into its wire shape. Loot
// options round-trip through their canonical tag name, not the original
// free-form label, since the engine no longer holds the label once
// classified.
func ToDTO(s combat.RunState) RunStateDTO {
	enemies := make([]FighterDTO, len(s.Enemies))
	for i, e := range s.Enemies {
		enemies[i] = fighterToDTO(e)
	}

	var loot []RawLootOption
	if len(s.LootOptions) > 0 {
		loot = make([]RawLootOption, len(s.LootOptions))
		for i, lo := range s.LootOptions {
			loot[i] = RawLootOption{Type: canonicalTag(lo.Kind), V1: lo.V1, V2: lo.V2, V3: lo.V3}
		}
	}

	return RunStateDTO{
		Player:            fighterToDTO(s.Player),
		Enemies:           enemies,
		CurrentEnemyIndex: s.CurrentEnemyIndex,
		LootPhase:         s.LootPhase,
		LootOptions:       loot,
		TotalRooms:        s.TotalRooms,
		CurrentRoomIndex:  s.CurrentRoomIndex,
	}
}

// ActionToDTO translates an internal combat.Action into its wire shape.
func ActionToDTO(a combat.Action) ActionDTO {
	if a.Kind == combat.ActionLoot {
		return ActionDTO{Kind: "loot", LootIndex: a.Loot}
	}
	return ActionDTO{Kind: "move", Move: a.Move.String()}
}
