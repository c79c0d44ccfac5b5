package circuit

// Synthesize composes branches into circuits without inventory constraints:
// one series circuit per branch, plus one parallel circuit for every
// unordered n-subset of branches, 2 <= n <= maxParallel. Useful standalone
// when the branch list is already known to be buildable; the production
// path is Search, which enforces inventory limits.
func Synthesize(branches []Branch, maxParallel int) []Circuit {
	var circuits []Circuit

	for _, b := range branches {
		circuits = append(circuits, New([]Branch{b}, ConnectionSeries))
	}

	for n := 2; n <= maxParallel; n++ {
		forEachSubset(len(branches), n, func(idx []int) {
			subset := make([]Branch, n)
			for i, j := range idx {
				subset[i] = branches[j]
			}
			circuits = append(circuits, New(subset, ConnectionParallel))
		})
	}

	return circuits
}

// forEachSubset calls fn with every k-subset of indexes 0..n-1 in
// lexicographic order. The index slice is reused between calls.
func forEachSubset(n, k int, fn func(idx []int)) {
	if k <= 0 || k > n {
		return
	}

	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	for {
		fn(idx)

		// Advance to the next combination, rightmost position first.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
