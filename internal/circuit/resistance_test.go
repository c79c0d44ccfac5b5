package circuit

import (
	"math"
	"slices"
	"testing"
)

func TestSeries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{name: "empty", values: nil, want: 0},
		{name: "single resistor", values: []float64{1000}, want: 1000},
		{name: "two equal", values: []float64{100, 100}, want: 200},
		{name: "three different", values: []float64{100, 200, 300}, want: 600},
		{name: "four equal", values: []float64{250, 250, 250, 250}, want: 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Series(tt.values); got != tt.want {
				t.Errorf("Series(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}

func TestParallel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{name: "empty", values: nil, want: 0},
		{name: "single resistor", values: []float64{1000}, want: 1000},
		{name: "two equal halve", values: []float64{100, 100}, want: 50},
		{name: "three different", values: []float64{100, 200, 400}, want: 57.14285714285714},
		{name: "four equal quarter", values: []float64{100, 100, 100, 100}, want: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Parallel(tt.values); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Parallel(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}

// Parallel resistance of a multi-value list is strictly below the smallest
// individual value.
func TestParallelBelowMinimum(t *testing.T) {
	t.Parallel()

	lists := [][]float64{
		{100, 100},
		{100, 200, 400},
		{4700, 330},
		{1, 1e6},
	}

	for _, values := range lists {
		got := Parallel(values)
		if got >= slices.Min(values) {
			t.Errorf("Parallel(%v) = %v, want < %v", values, got, slices.Min(values))
		}
	}
}
