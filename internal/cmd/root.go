// Package cmd provides CLI commands for the ohm tool.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/OWNER/ohm/internal/version"
)

var rootCmd = &cobra.Command{
	Use:     "ohm",
	Short:   "ohm - resistor network finder",
	Version: version.Version,
	Long: `ohm finds series/parallel resistor networks that approximate a target
resistance, built from the resistors you actually have on hand.

Give it a target and your stock as value:count tokens:

  ohm find 150 100:3 220:2
  ohm find 4.7k 1k:4 2.2k:2 -t 2 -p
  ohm find 150 100:3 220:2 -o ./circuits

Networks are series chains and parallel bundles of series chains, nothing
wilder; results are deduplicated structurally and ranked by accuracy or by
component count.`,
}

// Execute runs the root command and returns an exit code.
// The caller (main) should call os.Exit with this code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		// Errors already printed by cobra
		return 1
	}
	return 0
}

func init() {
	// Enable prefix matching for subcommands (e.g., "ohm f" -> "ohm find")
	cobra.EnablePrefixMatching = true
}
