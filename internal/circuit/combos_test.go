package circuit

import (
	"slices"
	"testing"

	"github.com/OWNER/ohm/internal/inventory"
)

func TestCombinations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		inv  inventory.Inventory
		want []Branch
	}{
		{
			name: "two values with runs and one pair",
			inv:  inventory.Inventory{{Value: 100, Count: 2}, {Value: 200, Count: 1}},
			want: []Branch{{100}, {100, 100}, {100, 200}, {200}},
		},
		{
			name: "single value only runs",
			inv:  inventory.Inventory{{Value: 470, Count: 3}},
			want: []Branch{{470}, {470, 470}, {470, 470, 470}},
		},
		{
			name: "zero-count value contributes nothing",
			inv:  inventory.Inventory{{Value: 100, Count: 2}, {Value: 200, Count: 0}},
			want: []Branch{{100}, {100, 100}},
		},
		{
			name: "three values give three pairs",
			inv:  inventory.Inventory{{Value: 100, Count: 1}, {Value: 200, Count: 1}, {Value: 300, Count: 1}},
			want: []Branch{{100}, {100, 200}, {100, 300}, {200}, {200, 300}, {300}},
		},
		{
			name: "empty inventory",
			inv:  nil,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Combinations(tt.inv)
			if len(got) != len(tt.want) {
				t.Fatalf("Combinations() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if !slices.Equal(got[i], tt.want[i]) {
					t.Errorf("Combinations()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// Pairs never mix more than two distinct values and never combine a repeated
// run with another value. This limit is part of the contract, not a gap.
func TestCombinationsPairLimit(t *testing.T) {
	t.Parallel()

	inv := inventory.Inventory{
		{Value: 100, Count: 3},
		{Value: 200, Count: 3},
		{Value: 300, Count: 3},
	}

	for _, b := range Combinations(inv) {
		distinct := make(map[float64]bool)
		for _, v := range b {
			distinct[v] = true
		}
		if len(distinct) > 2 {
			t.Errorf("branch %v mixes more than two distinct values", b)
		}
		if len(distinct) == 2 && len(b) != 2 {
			t.Errorf("mixed branch %v is not a one-of-each pair", b)
		}
	}
}

func TestCombinationsDeterministic(t *testing.T) {
	t.Parallel()

	inv := inventory.Inventory{{Value: 220, Count: 2}, {Value: 100, Count: 2}}

	a := Combinations(inv)
	b := Combinations(inv)
	if len(a) != len(b) {
		t.Fatal("Combinations is not deterministic")
	}
	for i := range a {
		if !slices.Equal(a[i], b[i]) {
			t.Fatalf("Combinations order differs between runs: %v vs %v", a, b)
		}
	}
	if !slices.IsSortedFunc(a, compareBranches) {
		t.Errorf("Combinations() = %v, want sorted", a)
	}
}
