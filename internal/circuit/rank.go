package circuit

import (
	"math"
	"sort"
)

// Match is one ranked candidate: a circuit and its absolute deviation from
// the target resistance. Component count is only a sort key, not part of
// the result.
type Match struct {
	Circuit   Circuit
	Deviation float64
}

// Rank filters the set down to circuits within tolerancePct of target,
// orders them, and truncates to maxResults.
//
// Ordering is ascending by deviation, or ascending by (component count,
// deviation) when preferFewer is set. Remaining ties break on the canonical
// circuit key, so results are deterministic even though the set iterates in
// arbitrary order.
func Rank(set *Set, target, tolerancePct float64, maxResults int, preferFewer bool) []Match {
	tolerance := target * tolerancePct / 100

	var matches []Match
	for _, c := range set.Circuits() {
		deviation := math.Abs(c.TotalResistance() - target)
		if deviation <= tolerance {
			matches = append(matches, Match{Circuit: c, Deviation: deviation})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if preferFewer {
			if ca, cb := a.Circuit.ComponentCount(), b.Circuit.ComponentCount(); ca != cb {
				return ca < cb
			}
		}
		if a.Deviation != b.Deviation {
			return a.Deviation < b.Deviation
		}
		return a.Circuit.Key() < b.Circuit.Key()
	})

	if maxResults >= 0 && len(matches) > maxResults {
		matches = matches[:maxResults]
	}
	return matches
}
