// Package format renders resistance values as human-readable strings with
// metric scale prefixes.
package format

import (
	"fmt"
	"math"
)

// scales is ordered largest first; the first scale the value reaches is the
// one used. The bottom bracket catches everything below a picoohm.
var scales = []struct {
	factor float64
	prefix string
}{
	{1e12, "T"},
	{1e9, "G"},
	{1e6, "M"},
	{1e3, "k"},
	{1, ""},
	{1e-3, "m"},
	{1e-6, "µ"},
	{1e-9, "n"},
	{1e-12, "p"},
}

// Resistance formats a value in ohms with a metric prefix and two-decimal
// precision. Values of 100 or more keep their decimals in the k/M/G/T
// scales, while whole numbers of 100 or more at smaller scales drop them
// ("470", not "470.00").
func Resistance(value float64) string {
	for _, s := range scales {
		if value >= s.factor || s.factor == 1e-12 {
			scaled := value / s.factor
			if math.Abs(scaled) >= 100 {
				switch s.prefix {
				case "k", "M", "G", "T":
					return fmt.Sprintf("%.2f%s", scaled, s.prefix)
				}
				if scaled == math.Trunc(scaled) {
					return fmt.Sprintf("%.0f%s", scaled, s.prefix)
				}
				return fmt.Sprintf("%.2f%s", scaled, s.prefix)
			}
			return fmt.Sprintf("%.2f%s", scaled, s.prefix)
		}
	}
	return fmt.Sprintf("%.2f", value)
}

// Label formats a resistor value for in-diagram labels: large whole numbers
// render bare ("470"), everything else falls back to Resistance.
func Label(value float64) string {
	if value >= 100 && value == math.Trunc(value) {
		return fmt.Sprintf("%d", int64(value))
	}
	return Resistance(value)
}
