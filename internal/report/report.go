// Package report builds per-circuit text reports and writes them to an
// output directory.
package report

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/OWNER/ohm/internal/circuit"
	"github.com/OWNER/ohm/internal/format"
	"github.com/OWNER/ohm/internal/schematic"
)

// typeCaser title-cases connection type names for display ("series" ->
// "Series").
var typeCaser = cases.Title(language.English)

// Build renders the full text report for one ranked result: resistance,
// deviation, configuration, component count, and the schematic diagram.
// index is the 1-based position in the result list.
func Build(index int, m circuit.Match, target float64, diagramWidth int) string {
	c := m.Circuit

	lines := []string{
		fmt.Sprintf("Circuit %d:", index),
		fmt.Sprintf("Equivalent resistance: %sΩ", format.Resistance(c.TotalResistance())),
		fmt.Sprintf("Deviation from target: %sΩ (%.1f%%)",
			format.Resistance(m.Deviation), m.Deviation/target*100),
		fmt.Sprintf("Configuration: %s", typeCaser.String(c.Type().String())),
		fmt.Sprintf("Total components: %d", c.ComponentCount()),
		"Circuit diagram:",
		schematic.NewDrawer(diagramWidth).Draw(c),
		"",
	}

	return strings.Join(lines, "\n")
}
