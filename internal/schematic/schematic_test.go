package schematic

import (
	"strings"
	"testing"

	"github.com/OWNER/ohm/internal/circuit"
)

func TestDrawSeries(t *testing.T) {
	t.Parallel()

	c := circuit.New([]circuit.Branch{{100, 220}}, circuit.ConnectionSeries)
	art := Render(c)

	for _, want := range []string{"input >───", "───> output", "[R1 100Ω]", "[R2 220Ω]"} {
		if !strings.Contains(art, want) {
			t.Errorf("series diagram missing %q:\n%s", want, art)
		}
	}
	if strings.ContainsAny(art, "┌┐└┘") {
		t.Errorf("series diagram has junction glyphs:\n%s", art)
	}
}

func TestDrawParallelTwoBranches(t *testing.T) {
	t.Parallel()

	c := circuit.New([]circuit.Branch{{100}, {220}}, circuit.ConnectionParallel)
	art := Render(c)

	for _, want := range []string{"┌", "┐", "└", "┘", "[R1 100Ω]", "[R2 220Ω]"} {
		if !strings.Contains(art, want) {
			t.Errorf("parallel diagram missing %q:\n%s", want, art)
		}
	}
}

func TestDrawParallelThreeBranches(t *testing.T) {
	t.Parallel()

	c := circuit.New([]circuit.Branch{{100}, {220}, {330}}, circuit.ConnectionParallel)
	art := Render(c)

	// Middle branch junctions use the cross glyph.
	if !strings.Contains(art, "┼") {
		t.Errorf("three-branch diagram missing middle junction:\n%s", art)
	}
	for _, want := range []string{"[R1 100Ω]", "[R2 220Ω]", "[R3 330Ω]"} {
		if !strings.Contains(art, want) {
			t.Errorf("diagram missing %q:\n%s", want, art)
		}
	}
}

// Labels restart at R1 for every render: the counter is per-call, not
// drawer- or process-wide.
func TestResistorNumberingResets(t *testing.T) {
	t.Parallel()

	d := NewDrawer(0)
	c := circuit.New([]circuit.Branch{{100, 220}}, circuit.ConnectionSeries)

	first := d.Draw(c)
	second := d.Draw(c)
	if first != second {
		t.Error("repeated Draw calls differ; resistor counter leaked across renders")
	}
	if !strings.Contains(second, "[R1 100Ω]") {
		t.Errorf("second render did not restart numbering:\n%s", second)
	}
}

// Labels are assigned in left-to-right, branch-order traversal, so the same
// circuit always yields the same numbering.
func TestLabelOrderFollowsBranchOrder(t *testing.T) {
	t.Parallel()

	c := circuit.New([]circuit.Branch{{220}, {100, 330}}, circuit.ConnectionParallel)
	art := Render(c)

	r1 := strings.Index(art, "[R1 220Ω]")
	r2 := strings.Index(art, "[R2 100Ω]")
	r3 := strings.Index(art, "[R3 330Ω]")
	if r1 < 0 || r2 < 0 || r3 < 0 {
		t.Fatalf("diagram labels out of order:\n%s", art)
	}
}

func TestDrawPadding(t *testing.T) {
	t.Parallel()

	c := circuit.New([]circuit.Branch{{100}}, circuit.ConnectionSeries)
	art := Render(c)

	lines := strings.Split(art, "\n")
	if len(lines) < 5 {
		t.Fatalf("diagram has %d lines, want blank padding rows", len(lines))
	}
	if lines[0] != "" || lines[1] != "" {
		t.Error("diagram missing blank rows above")
	}
	if lines[len(lines)-1] != "" || lines[len(lines)-2] != "" {
		t.Error("diagram missing blank rows below")
	}
	for _, line := range lines {
		if strings.HasSuffix(line, " ") {
			t.Errorf("line has trailing spaces: %q", line)
		}
	}
}

func TestLargeWholeLabels(t *testing.T) {
	t.Parallel()

	// In-diagram labels for large whole values drop decimals and scaling.
	c := circuit.New([]circuit.Branch{{4700}}, circuit.ConnectionSeries)
	art := Render(c)
	if !strings.Contains(art, "[R1 4700Ω]") {
		t.Errorf("diagram label not in bare whole-number form:\n%s", art)
	}
}
