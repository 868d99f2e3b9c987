package searcher

import (
	"strconv"

	"duskcrawl/combat"
)

// searchKey extends a RunState's canonical key with the remaining search
// depth: the same state at two different depths has two different
// expectimax values, so they must never share a cache entry.
func searchKey(s combat.RunState, depth int) string {
	return s.Key() + "@" + strconv.Itoa(depth)
}
