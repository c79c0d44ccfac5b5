// Package schematic renders resolved circuits as fixed-width ASCII
// diagrams, with box-drawing junctions and sequentially numbered resistors.
package schematic

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/OWNER/ohm/internal/circuit"
	"github.com/OWNER/ohm/internal/format"
)

// DefaultWidth is the canvas width used when none is given.
const DefaultWidth = 120

// Drawer renders circuits onto a fixed-width character canvas. The resistor
// counter is scoped to one Draw call: labels restart at R1 for every
// diagram. A Drawer is not safe for concurrent use.
type Drawer struct {
	width       int
	lines       [][]rune
	resistorNum int
}

// NewDrawer returns a drawer with the given canvas width, or DefaultWidth
// when width is not positive.
func NewDrawer(width int) *Drawer {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Drawer{width: width}
}

// Render draws the circuit with a fresh default-width drawer.
func Render(c circuit.Circuit) string {
	return NewDrawer(0).Draw(c)
}

// Draw renders the circuit as a multi-line diagram with input/output leads
// and two blank lines of padding above and below.
func (d *Drawer) Draw(c circuit.Circuit) string {
	d.lines = nil
	d.resistorNum = 0

	branches := c.Branches()
	maxHeight := 3
	if c.Type() != circuit.ConnectionSeries {
		maxHeight = 2*len(branches) + 1
	}
	centerY := maxHeight / 2

	d.put("input >───", centerY, 0)

	var endX int
	if c.Type() == circuit.ConnectionSeries {
		endX = d.drawSeries(branches[0], 10, centerY)
	} else {
		endX = d.drawParallel(branches, 10, centerY)
	}

	d.put("───> output", centerY, endX)

	out := make([]string, 0, len(d.lines)+4)
	out = append(out, "", "")
	for _, line := range d.lines {
		out = append(out, strings.TrimRight(string(line), " "))
	}
	out = append(out, "", "")
	return strings.Join(out, "\n")
}

// resistorLabel returns the next "[Rn value Ω]" label, advancing the
// per-render counter.
func (d *Drawer) resistorLabel(value float64) string {
	d.resistorNum++
	return fmt.Sprintf("[R%d %sΩ]", d.resistorNum, format.Label(value))
}

// put writes content onto the canvas at (x, y), extending the canvas
// downward as needed and clipping at the right edge.
func (d *Drawer) put(content string, y, x int) {
	for len(d.lines) <= y {
		blank := make([]rune, d.width)
		for i := range blank {
			blank[i] = ' '
		}
		d.lines = append(d.lines, blank)
	}

	row := d.lines[y]
	for i, r := range []rune(content) {
		pos := x + i
		if pos >= 0 && pos < d.width {
			row[pos] = r
		}
	}
}

// drawSeries draws one series chain left to right and returns the x
// position just past it.
func (d *Drawer) drawSeries(branch circuit.Branch, startX, y int) int {
	x := startX
	for i, v := range branch {
		label := d.resistorLabel(v)
		d.put("─"+label+"─", y, x)
		x += utf8.RuneCountInString(label) + 2

		if i < len(branch)-1 {
			d.put("─", y, x)
			x++
		}
	}
	return x
}

// drawParallel draws a bundle of branches between two junction columns,
// centered on y, and returns the x position just past the closing junction.
func (d *Drawer) drawParallel(branches []circuit.Branch, startX, y int) int {
	count := len(branches)
	startY := y - (2*(count-1))/2

	// Opening junction column.
	if count == 2 {
		d.put("┌", startY, startX)
		d.put("│", y, startX)
		d.put("└", startY+2, startX)
	} else {
		for i := 0; i < count; i++ {
			curY := startY + i*2
			switch i {
			case 0:
				d.put("┌", curY, startX)
			case count - 1:
				d.put("└", curY, startX)
			default:
				d.put("┼", curY, startX)
			}
			if i > 0 {
				d.put("│", curY-1, startX)
			}
		}
	}

	// Branches, tracking where each one ends.
	maxEndX := startX
	type branchEnd struct{ x, y int }
	ends := make([]branchEnd, 0, count)

	for i, branch := range branches {
		branchY := startY + i*2
		x := startX + 1

		for j, v := range branch {
			label := d.resistorLabel(v)
			d.put("─"+label+"─", branchY, x)
			x += utf8.RuneCountInString(label) + 2

			if j < len(branch)-1 {
				d.put("─", branchY, x)
				x++
			}
		}

		ends = append(ends, branchEnd{x: x, y: branchY})
		if x > maxEndX {
			maxEndX = x
		}
	}

	// Closing junction column.
	for i := 0; i < count; i++ {
		curY := startY + i*2
		switch i {
		case 0:
			d.put("┐", curY, maxEndX)
		case count - 1:
			d.put("┘", curY, maxEndX)
		default:
			d.put("┼", curY, maxEndX)
		}
		if i < count-1 {
			d.put("│", curY+1, maxEndX)
		}
	}

	// Pad shorter branches out to the closing junction.
	for _, e := range ends {
		if e.x < maxEndX {
			d.put(strings.Repeat("─", maxEndX-e.x), e.y, e.x)
		}
	}

	return maxEndX + 1
}
