package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/OWNER/ohm/internal/circuit"
	"github.com/OWNER/ohm/internal/config"
	"github.com/OWNER/ohm/internal/format"
	"github.com/OWNER/ohm/internal/inventory"
	"github.com/OWNER/ohm/internal/report"
	"github.com/OWNER/ohm/internal/tui/results"
	"github.com/OWNER/ohm/internal/ui"
)

// Find command flags
var (
	findTolerance   float64
	findMaxResults  int
	findPreferFewer bool
	findOutputDir   string
	findJSON        bool
	findInteractive bool
	findWorkers     int
)

var findCmd = &cobra.Command{
	Use:   "find <target> <value:count>...",
	Short: "Find circuits matching a target resistance",
	Long: `Find series/parallel resistor networks whose equivalent resistance falls
within a tolerance window around the target.

The target and resistor values accept metric suffixes (4.7k, 1M, 470m).
Each value:count token is one resistor value and how many of it you have;
no circuit will use more of a value than its count.

Examples:
  ohm find 150 100:3 220:2              # top 5 by accuracy, ±5%
  ohm find 150 100:3 220:2 -t 10 -m 3   # ±10%, top 3
  ohm find 150 100:3 220:2 -p           # fewest components first
  ohm find 150 100:3 220:2 -o ./out     # save circuit_<n>.txt files
  ohm find 150 100:3 220:2 -i           # browse results interactively`,
	Args: cobra.MinimumNArgs(2),
	RunE: runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)
	f := findCmd.Flags()
	f.Float64VarP(&findTolerance, "tolerance", "t", 5.0, "Tolerance window in percent")
	f.IntVarP(&findMaxResults, "max-results", "m", 5, "Maximum number of results")
	f.BoolVarP(&findPreferFewer, "prioritize-fewer", "p", false, "Prefer circuits with fewer components")
	f.StringVarP(&findOutputDir, "output-dir", "o", "", "Directory to save one file per circuit")
	f.BoolVar(&findJSON, "json", false, "Output results as JSON")
	f.BoolVarP(&findInteractive, "interactive", "i", false, "Browse results in a TUI")
	f.IntVar(&findWorkers, "workers", 0, "Search worker goroutines (0 = sequential)")
}

// applyConfig fills in flag values from the config file for flags the user
// did not set explicitly. Flags beat config, config beats built-ins.
func applyConfig(cmd *cobra.Command, cfg config.Config) {
	f := cmd.Flags()
	if !f.Changed("tolerance") {
		findTolerance = cfg.Tolerance
	}
	if !f.Changed("max-results") {
		findMaxResults = cfg.MaxResults
	}
	if !f.Changed("prioritize-fewer") {
		findPreferFewer = cfg.PrioritizeFewer
	}
	if !f.Changed("output-dir") && cfg.OutputDir != "" {
		findOutputDir = cfg.OutputDir
	}
	if !f.Changed("workers") {
		findWorkers = cfg.Workers
	}
}

func runFind(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyConfig(cmd, cfg)

	if findTolerance <= 0 {
		return fmt.Errorf("tolerance must be positive, got %g", findTolerance)
	}
	if findMaxResults < 1 {
		return fmt.Errorf("max-results must be at least 1, got %d", findMaxResults)
	}

	target, err := inventory.ParseValue(args[0])
	if err != nil {
		return fmt.Errorf("invalid target: %w", err)
	}
	if target <= 0 {
		return fmt.Errorf("target resistance must be positive, got %g", target)
	}

	inv, err := inventory.Parse(args[1:])
	if err != nil {
		return err
	}

	set := circuit.SearchParallel(inv, findWorkers)
	matches := circuit.Rank(set, target, findTolerance, findMaxResults, findPreferFewer)

	if findJSON {
		return writeJSON(cmd, target, matches)
	}

	if findInteractive {
		prog := tea.NewProgram(results.New(target, matches, cfg.DiagramWidth))
		_, err := prog.Run()
		return err
	}

	return printResults(target, inv, matches, cfg.DiagramWidth)
}

// printResults writes the headline, the per-circuit reports, and optionally
// one file per circuit.
func printResults(target float64, inv inventory.Inventory, matches []circuit.Match, diagramWidth int) error {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	// Clamp diagrams to the terminal so wide bundles don't wrap.
	if isTTY {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && w < diagramWidth {
			diagramWidth = w
		}
	}

	styled := func(s string) string { return s }
	dim := styled
	if isTTY {
		styled = func(s string) string { return ui.Header.Render(s) }
		dim = func(s string) string { return ui.Dim.Render(s) }
	}

	fmt.Println(styled(fmt.Sprintf("Finding circuits closest to %sΩ (±%g%%)",
		format.Resistance(target), findTolerance)))
	fmt.Println(dim("Available resistors: " + inv.String()))
	if findPreferFewer {
		fmt.Println(dim("Prioritizing fewer components"))
	}
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No circuits found within the specified tolerance.")
		return nil
	}

	fmt.Printf("Found %d circuits within tolerance:\n\n", len(matches))

	var writer *report.Writer
	if findOutputDir != "" {
		var err error
		writer, err = report.NewWriter(findOutputDir)
		if err != nil {
			return err
		}
		defer writer.Close()
	}

	for i, m := range matches {
		text := report.Build(i+1, m, target, diagramWidth)
		fmt.Println(text)

		if writer != nil {
			path, err := writer.Write(i+1, text)
			if err != nil {
				return err
			}
			fmt.Println(dim(fmt.Sprintf("Saved circuit %d to %s", i+1, path)))
		}
	}

	if writer != nil {
		fmt.Printf("\nAll circuits have been saved to %s (run %s)\n", findOutputDir, writer.RunID())
	}
	return nil
}

// matchJSON is the JSON shape for one ranked result.
type matchJSON struct {
	Resistance float64     `json:"resistance"`
	Display    string      `json:"display"`
	Deviation  float64     `json:"deviation"`
	Type       string      `json:"type"`
	Components int         `json:"components"`
	Branches   [][]float64 `json:"branches"`
}

func writeJSON(cmd *cobra.Command, target float64, matches []circuit.Match) error {
	out := struct {
		Target  float64     `json:"target"`
		Results []matchJSON `json:"results"`
	}{Target: target, Results: make([]matchJSON, 0, len(matches))}

	for _, m := range matches {
		c := m.Circuit
		branches := make([][]float64, 0, len(c.Branches()))
		for _, b := range c.Branches() {
			branches = append(branches, []float64(b))
		}
		out.Results = append(out.Results, matchJSON{
			Resistance: c.TotalResistance(),
			Display:    format.Resistance(c.TotalResistance()) + "Ω",
			Deviation:  m.Deviation,
			Type:       c.Type().String(),
			Components: c.ComponentCount(),
			Branches:   branches,
		})
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
