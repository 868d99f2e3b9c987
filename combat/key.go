package combat

import "strconv"

// Key returns a canonical string encoding of s suitable for use as a search
// memoization cache key: two states that are equal in every field the
// kernel and evaluator read produce the same key, and the per-fighter
// encoding is order-sensitive so transposed enemies are never conflated.
//
// Terminal states collapse to a short form, since every dead-enemy-index
// (or dead-player) state is interchangeable for search purposes regardless
// of the untouched enemies still sitting in the slice behind it.
func (s RunState) Key() string {
	if s.Player.Health.Current == 0 {
		return "T:dead"
	}
	if s.CurrentEnemyIndex >= len(s.Enemies) {
		return "T:cleared:" + itoa(s.CurrentEnemyIndex)
	}

	var b []byte
	b = appendFighterKey(b, s.Player)
	b = append(b, '|')
	b = appendFighterKey(b, s.Enemies[s.CurrentEnemyIndex])
	b = append(b, '|')
	b = append(b, 'i')
	b = strconv.AppendInt(b, int64(s.CurrentEnemyIndex), 10)
	b = append(b, '/')
	b = strconv.AppendInt(b, int64(len(s.Enemies)), 10)

	if s.LootPhase {
		b = append(b, "|L"...)
		for _, lo := range s.LootOptions {
			b = append(b, '[')
			b = strconv.AppendInt(b, int64(lo.Kind), 10)
			b = append(b, ',')
			b = strconv.AppendInt(b, int64(lo.V1), 10)
			b = append(b, ',')
			b = strconv.AppendInt(b, int64(lo.V2), 10)
			b = append(b, ',')
			b = strconv.AppendInt(b, int64(lo.V3), 10)
			b = append(b, ']')
		}
	}

	return string(b)
}

func appendFighterKey(b []byte, f Fighter) []byte {
	b = strconv.AppendInt(b, int64(f.Health.Current), 10)
	b = append(b, '/')
	b = strconv.AppendInt(b, int64(f.Health.Max), 10)
	b = append(b, ',')
	b = strconv.AppendInt(b, int64(f.Armor.Current), 10)
	b = append(b, '/')
	b = strconv.AppendInt(b, int64(f.Armor.Max), 10)
	for _, m := range moveOrder {
		ms := f.Stat(m)
		b = append(b, ',')
		b = strconv.AppendInt(b, int64(ms.Atk), 10)
		b = append(b, '.')
		b = strconv.AppendInt(b, int64(ms.Def), 10)
		b = append(b, '.')
		b = strconv.AppendInt(b, int64(ms.Charges), 10)
	}
	return b
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
