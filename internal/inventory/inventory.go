// Package inventory models the resistor stock available to the search engine.
//
// An inventory is the parsed form of the CLI's "value:count" tokens. Counts
// are the hard ceiling on how many resistors of a value a single circuit may
// use, summed across all of its branches. All input validation lives here:
// the engine only ever sees inventories that passed Parse.
package inventory

import (
	"fmt"
	"strconv"
	"strings"
)

// Entry is one resistor value and how many of it are on hand.
type Entry struct {
	Value float64 // ohms, always > 0 after Parse
	Count int     // available units, >= 0
}

// Inventory is the full resistor stock, in the caller's enumeration order.
type Inventory []Entry

// scaleSuffixes maps metric suffixes accepted in value tokens to multipliers.
// Case matters: "m" is milli, "M" is mega.
var scaleSuffixes = map[string]float64{
	"p": 1e-12,
	"n": 1e-9,
	"u": 1e-6,
	"µ": 1e-6,
	"m": 1e-3,
	"k": 1e3,
	"K": 1e3,
	"M": 1e6,
	"G": 1e9,
	"T": 1e12,
}

// ParseValue parses a resistance value, either a plain number ("470", "4.7")
// or one with a metric suffix ("4.7k", "1M", "470m").
func ParseValue(s string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty resistance value")
	}

	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, nil
	}

	// Try stripping a one-rune metric suffix.
	runes := []rune(s)
	suffix := string(runes[len(runes)-1])
	factor, ok := scaleSuffixes[suffix]
	if !ok {
		return 0, fmt.Errorf("invalid resistance value %q", s)
	}

	v, err := strconv.ParseFloat(string(runes[:len(runes)-1]), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid resistance value %q", s)
	}

	return v * factor, nil
}

// ParseToken parses a single "value:count" token, e.g. "100:2" or "4.7k:3".
func ParseToken(tok string) (Entry, error) {
	value, count, ok := strings.Cut(tok, ":")
	if !ok {
		return Entry{}, fmt.Errorf("invalid resistor %q (expected value:count, e.g. 100:2)", tok)
	}

	v, err := ParseValue(value)
	if err != nil {
		return Entry{}, fmt.Errorf("invalid resistor %q: %w", tok, err)
	}
	if v <= 0 {
		return Entry{}, fmt.Errorf("invalid resistor %q: value must be positive", tok)
	}

	n, err := strconv.Atoi(count)
	if err != nil {
		return Entry{}, fmt.Errorf("invalid resistor %q: count must be an integer", tok)
	}
	if n < 0 {
		return Entry{}, fmt.Errorf("invalid resistor %q: count must not be negative", tok)
	}

	return Entry{Value: v, Count: n}, nil
}

// Parse parses a list of "value:count" tokens into an Inventory.
// Duplicate values are rejected rather than merged, so a typo like
// "100:2 100:3" surfaces instead of silently summing.
func Parse(tokens []string) (Inventory, error) {
	inv := make(Inventory, 0, len(tokens))
	seen := make(map[float64]bool, len(tokens))

	for _, tok := range tokens {
		e, err := ParseToken(tok)
		if err != nil {
			return nil, err
		}
		if seen[e.Value] {
			return nil, fmt.Errorf("duplicate resistor value in %q", tok)
		}
		seen[e.Value] = true
		inv = append(inv, e)
	}

	return inv, nil
}

// MaxCount returns how many resistors of the given value are available.
// Values not in the inventory have a count of zero.
func (inv Inventory) MaxCount(value float64) int {
	for _, e := range inv {
		if e.Value == value {
			return e.Count
		}
	}
	return 0
}

// TotalCount returns the total number of resistors on hand.
func (inv Inventory) TotalCount() int {
	total := 0
	for _, e := range inv {
		total += e.Count
	}
	return total
}

// String renders the inventory for status output, e.g. "100Ω×2 220Ω×1".
func (inv Inventory) String() string {
	parts := make([]string, 0, len(inv))
	for _, e := range inv {
		parts = append(parts, fmt.Sprintf("%gΩ×%d", e.Value, e.Count))
	}
	return strings.Join(parts, " ")
}
