package circuit

// Set is a deduplicating circuit collection keyed on each circuit's
// canonical key. Structurally identical circuits reached through different
// generation paths collapse to a single entry.
//
// A Set is not safe for concurrent use; parallel searches give each worker
// its own Set and Merge them at the end.
type Set struct {
	m map[string]Circuit
}

// NewSet returns an empty circuit set.
func NewSet() *Set {
	return &Set{m: make(map[string]Circuit)}
}

// Add inserts the circuit unless an equal one is already present.
// It reports whether the circuit was inserted.
func (s *Set) Add(c Circuit) bool {
	k := c.Key()
	if _, ok := s.m[k]; ok {
		return false
	}
	s.m[k] = c
	return true
}

// Contains reports whether an equal circuit is in the set.
func (s *Set) Contains(c Circuit) bool {
	_, ok := s.m[c.Key()]
	return ok
}

// Len returns the number of distinct circuits.
func (s *Set) Len() int {
	return len(s.m)
}

// Circuits returns the distinct circuits in unspecified order.
// The ranker imposes ordering afterwards.
func (s *Set) Circuits() []Circuit {
	out := make([]Circuit, 0, len(s.m))
	for _, c := range s.m {
		out = append(out, c)
	}
	return out
}

// Merge folds another set into this one, keeping the first entry seen for
// each canonical key.
func (s *Set) Merge(other *Set) {
	for k, c := range other.m {
		if _, ok := s.m[k]; !ok {
			s.m[k] = c
		}
	}
}
