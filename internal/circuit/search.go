package circuit

import (
	"sync"

	"github.com/OWNER/ohm/internal/inventory"
)

// maxSearchSubsets bounds the parallel branch count explored by the
// constrained search: subsets of 2..min(maxSearchSubsets, numBranches)-1
// branches, so bundles of at most four branches. This bound is independent
// of Synthesize's maxParallel parameter.
const maxSearchSubsets = 5

// Search is the production path: it generates the inventory's branch
// combinations, emits one series circuit per branch, and bundles branch
// subsets into parallel circuits, rejecting any subset whose aggregate
// per-value usage exceeds the inventory. All accepted circuits land in a
// deduplicating set.
//
// An empty inventory yields an empty set, not an error.
func Search(inv inventory.Inventory) *Set {
	branches := Combinations(inv)
	set := NewSet()

	for _, b := range branches {
		set.Add(New([]Branch{b}, ConnectionSeries))
	}

	limit := min(maxSearchSubsets, len(branches)+1)
	for n := 2; n < limit; n++ {
		forEachSubset(len(branches), n, func(idx []int) {
			addIfBuildable(set, branches, idx, inv)
		})
	}

	return set
}

// SearchParallel is Search with subset evaluation sharded across worker
// goroutines. Each worker accumulates into its own set; the shards merge at
// the end, preserving the at-most-one-canonical-entry invariant. Subset
// validity checks and resistance computations are independent and
// side-effect-free, so no other coordination is needed.
func SearchParallel(inv inventory.Inventory, workers int) *Set {
	if workers <= 1 {
		return Search(inv)
	}

	branches := Combinations(inv)
	set := NewSet()

	for _, b := range branches {
		set.Add(New([]Branch{b}, ConnectionSeries))
	}

	// Shard by the subset's first branch index: each job enumerates all
	// subsets that start at that index.
	jobs := make(chan int)
	shards := make([]*Set, workers)
	var wg sync.WaitGroup

	limit := min(maxSearchSubsets, len(branches)+1)
	for w := 0; w < workers; w++ {
		shard := NewSet()
		shards[w] = shard
		wg.Add(1)
		go func() {
			defer wg.Done()
			for first := range jobs {
				for n := 2; n < limit; n++ {
					forEachSubset(len(branches)-first-1, n-1, func(rest []int) {
						idx := make([]int, n)
						idx[0] = first
						for i, j := range rest {
							idx[i+1] = first + 1 + j
						}
						addIfBuildable(shard, branches, idx, inv)
					})
				}
			}
		}()
	}

	for first := 0; first < len(branches); first++ {
		jobs <- first
	}
	close(jobs)
	wg.Wait()

	for _, shard := range shards {
		set.Merge(shard)
	}
	return set
}

// addIfBuildable adds the parallel circuit over branches[idx...] to the set
// when its aggregate resistor usage stays within the inventory.
func addIfBuildable(set *Set, branches []Branch, idx []int, inv inventory.Inventory) {
	used := make(map[float64]int)
	for _, j := range idx {
		for _, v := range branches[j] {
			used[v]++
		}
	}
	for v, n := range used {
		if n > inv.MaxCount(v) {
			return
		}
	}

	subset := make([]Branch, len(idx))
	for i, j := range idx {
		subset[i] = branches[j]
	}
	set.Add(New(subset, ConnectionParallel))
}
