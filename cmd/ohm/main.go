/*
ohm finds resistor networks matching a target resistance.

Given a target and an inventory of resistor values with counts, ohm
enumerates series chains and parallel bundles of series chains buildable
from the stock, deduplicates structurally identical networks, and ranks
the results by accuracy or component count.

Usage:

	ohm <command> [arguments]

Common commands:

	ohm find 150 100:3 220:2    Find circuits near 150Ω
	ohm combos 100:2 220:1      List buildable branch combinations
	ohm version                 Print version information

See 'ohm help <command>' for more information on a specific command.
*/
package main

import (
	"os"

	"github.com/OWNER/ohm/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
