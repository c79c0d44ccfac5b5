package circuit

import (
	"slices"

	"github.com/OWNER/ohm/internal/inventory"
)

// Combinations generates every branch buildable from the inventory:
//
//   - single-value runs of each value, from one resistor up to that value's
//     available count, and
//   - for every pair of distinct values, the two-resistor branch with one of
//     each, when both values have stock.
//
// Mixed branches are deliberately limited to one-of-A plus one-of-B: no
// branch combines three distinct values, and no repeated run is combined
// with another value. Widening this would change the output cardinality
// that downstream consumers depend on.
//
// The result is deduplicated and sorted for determinism.
func Combinations(inv inventory.Inventory) []Branch {
	var result []Branch
	seen := make(map[string]bool)

	add := func(b Branch) {
		k := branchKey(b)
		if seen[k] {
			return
		}
		seen[k] = true
		result = append(result, b)
	}

	// Single-value runs up to each value's count.
	for _, e := range inv {
		for n := 1; n <= e.Count; n++ {
			run := make(Branch, n)
			for i := range run {
				run[i] = e.Value
			}
			add(run)
		}
	}

	// One-of-each pairs of distinct values.
	for i := 0; i < len(inv); i++ {
		for j := i + 1; j < len(inv); j++ {
			pair := Branch{inv[i].Value, inv[j].Value}.sorted()
			if withinInventory(pair, inv) {
				add(pair)
			}
		}
	}

	slices.SortFunc(result, compareBranches)
	return result
}

// branchKey returns a content key for a branch, used for dedup during
// generation. Unlike Circuit.Key it does not sort: generation only ever
// produces branches in canonical value order.
func branchKey(b Branch) string {
	c := Circuit{branches: []Branch{b}}
	return c.Key()
}

// withinInventory reports whether the branch's per-value usage stays within
// the inventory's counts.
func withinInventory(b Branch, inv inventory.Inventory) bool {
	used := make(map[float64]int, len(b))
	for _, v := range b {
		used[v]++
	}
	for v, n := range used {
		if n > inv.MaxCount(v) {
			return false
		}
	}
	return true
}
