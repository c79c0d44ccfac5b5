// Package circuit is the resistor network engine: it generates branch
// combinations from an inventory, composes them into series and parallel
// circuits, deduplicates structurally identical networks, and ranks
// candidates against a target resistance.
package circuit

// Series returns the equivalent resistance of values wired in series.
// An empty input yields 0.
func Series(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}

// Parallel returns the equivalent resistance of values wired in parallel.
// An empty input yields 0. Values must be non-zero; inventory validation
// upstream guarantees the engine never produces a zero-valued resistor.
func Parallel(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += 1 / v
	}
	return 1 / sum
}
