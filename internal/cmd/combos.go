package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OWNER/ohm/internal/circuit"
	"github.com/OWNER/ohm/internal/format"
	"github.com/OWNER/ohm/internal/inventory"
)

var combosCmd = &cobra.Command{
	Use:   "combos <value:count>...",
	Short: "List branch combinations buildable from an inventory",
	Long: `List every series branch the search would build from the inventory,
with its resistance, plus the count of distinct circuits those branches
compose into. Useful for sanity-checking an inventory before a search.

Example:
  ohm combos 100:2 220:1`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCombos,
}

func init() {
	rootCmd.AddCommand(combosCmd)
}

func runCombos(cmd *cobra.Command, args []string) error {
	inv, err := inventory.Parse(args)
	if err != nil {
		return err
	}

	branches := circuit.Combinations(inv)
	fmt.Printf("Inventory: %s\n", inv.String())
	fmt.Printf("Branches: %d\n", len(branches))

	for _, b := range branches {
		parts := make([]string, 0, len(b))
		for _, v := range b {
			parts = append(parts, format.Resistance(v))
		}
		fmt.Printf("  [%s]  = %sΩ\n", strings.Join(parts, " + "), format.Resistance(b.Resistance()))
	}

	set := circuit.Search(inv)
	fmt.Printf("Distinct circuits: %d\n", set.Len())
	return nil
}
