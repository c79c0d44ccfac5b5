package circuit

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// equalityEpsilon is the tolerance for comparing total resistances of two
// circuits. Circuits with identical canonical branches always land within it.
const equalityEpsilon = 1e-10

// ConnectionType says how a circuit's branches are wired together.
type ConnectionType int

const (
	// ConnectionSeries is a single chain of resistors.
	ConnectionSeries ConnectionType = iota
	// ConnectionParallel is a bundle of two or more series chains.
	ConnectionParallel
	// ConnectionMixed is reserved; the generators never produce it.
	ConnectionMixed
)

// String returns the lowercase name of the connection type.
func (t ConnectionType) String() string {
	switch t {
	case ConnectionSeries:
		return "series"
	case ConnectionParallel:
		return "parallel"
	case ConnectionMixed:
		return "mixed"
	default:
		return fmt.Sprintf("ConnectionType(%d)", int(t))
	}
}

// Branch is an ordered run of resistor values wired in series.
type Branch []float64

// Resistance returns the branch's series resistance.
func (b Branch) Resistance() float64 {
	return Series(b)
}

// sorted returns a copy of the branch with values in ascending order.
func (b Branch) sorted() Branch {
	s := slices.Clone(b)
	slices.Sort(s)
	return s
}

// compareBranches orders branches elementwise, shorter prefix first.
func compareBranches(a, b Branch) int {
	return slices.Compare(a, b)
}

// Circuit is an immutable resistor network: one branch for a series circuit,
// two or more for a parallel bundle of series chains. The total resistance is
// derived from the branches at construction and never set independently.
type Circuit struct {
	branches []Branch
	ctype    ConnectionType
	total    float64
}

// New builds a circuit from branches and computes its total resistance.
// The branches are copied, so the caller's slices stay untouched.
func New(branches []Branch, ctype ConnectionType) Circuit {
	copied := make([]Branch, len(branches))
	for i, b := range branches {
		copied[i] = slices.Clone(b)
	}

	sums := make([]float64, len(copied))
	for i, b := range copied {
		sums[i] = b.Resistance()
	}

	var total float64
	switch ctype {
	case ConnectionSeries:
		total = Series(sums)
	default:
		total = Parallel(sums)
	}

	return Circuit{branches: copied, ctype: ctype, total: total}
}

// Branches returns the circuit's branches in their stable construction
// order. The schematic renderer relies on this order for reproducible
// resistor labelling. Callers must not modify the returned slices.
func (c Circuit) Branches() []Branch {
	return c.branches
}

// Type returns the circuit's connection type.
func (c Circuit) Type() ConnectionType {
	return c.ctype
}

// TotalResistance returns the equivalent resistance derived from the
// branches at construction time.
func (c Circuit) TotalResistance() float64 {
	return c.total
}

// ComponentCount returns the number of resistors across all branches.
func (c Circuit) ComponentCount() int {
	n := 0
	for _, b := range c.branches {
		n += len(b)
	}
	return n
}

// canonicalBranches returns the branches with each branch sorted internally
// and the branch list itself sorted. Two structurally identical circuits
// produce identical canonical branches regardless of branch or within-branch
// ordering.
func (c Circuit) canonicalBranches() []Branch {
	canon := make([]Branch, len(c.branches))
	for i, b := range c.branches {
		canon[i] = b.sorted()
	}
	slices.SortFunc(canon, compareBranches)
	return canon
}

// Equal reports whether two circuits are structurally identical: same
// connection type, totals within epsilon, and the same multiset of branches
// (branch order and within-branch order are irrelevant).
func (c Circuit) Equal(other Circuit) bool {
	if c.ctype != other.ctype {
		return false
	}
	if math.Abs(c.total-other.total) > equalityEpsilon {
		return false
	}

	a, b := c.canonicalBranches(), other.canonicalBranches()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !slices.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Key returns the circuit's canonical dedup key. Equal circuits always
// produce equal keys, so a map keyed on it behaves as a hash-consed set.
func (c Circuit) Key() string {
	var sb strings.Builder
	sb.WriteString(c.ctype.String())
	for _, b := range c.canonicalBranches() {
		sb.WriteByte('|')
		for i, v := range b {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
	}
	return sb.String()
}

// String renders a short debug form, e.g. "Circuit(R=137.5Ω, parallel)".
func (c Circuit) String() string {
	return fmt.Sprintf("Circuit(R=%gΩ, %s)", c.total, c.ctype)
}
