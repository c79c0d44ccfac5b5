package circuit

import "testing"

func TestSetDeduplicates(t *testing.T) {
	t.Parallel()

	set := NewSet()

	// The same logical circuit reached via two generation paths.
	a := New([]Branch{{100}, {200, 100}}, ConnectionParallel)
	b := New([]Branch{{100, 200}, {100}}, ConnectionParallel)

	if !set.Add(a) {
		t.Fatal("first Add returned false")
	}
	if set.Add(b) {
		t.Error("second Add of an equal circuit returned true")
	}
	if set.Len() != 1 {
		t.Errorf("Len() = %d, want 1", set.Len())
	}
	if !set.Contains(b) {
		t.Error("Contains(equal circuit) = false")
	}
}

func TestSetDistinctCircuits(t *testing.T) {
	t.Parallel()

	set := NewSet()
	set.Add(New([]Branch{{100}}, ConnectionSeries))
	set.Add(New([]Branch{{100}, {100}}, ConnectionParallel))
	set.Add(New([]Branch{{200}}, ConnectionSeries))

	if set.Len() != 3 {
		t.Errorf("Len() = %d, want 3", set.Len())
	}
	if len(set.Circuits()) != 3 {
		t.Errorf("Circuits() returned %d entries, want 3", len(set.Circuits()))
	}
}

func TestSetMerge(t *testing.T) {
	t.Parallel()

	a := NewSet()
	a.Add(New([]Branch{{100}}, ConnectionSeries))
	a.Add(New([]Branch{{100}, {200}}, ConnectionParallel))

	b := NewSet()
	b.Add(New([]Branch{{200}, {100}}, ConnectionParallel)) // duplicate of a's entry
	b.Add(New([]Branch{{200}}, ConnectionSeries))

	a.Merge(b)
	if a.Len() != 3 {
		t.Errorf("Len() after merge = %d, want 3", a.Len())
	}
}
