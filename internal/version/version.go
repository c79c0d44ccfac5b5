// Package version holds build metadata stamped in at link time.
package version

import "fmt"

// Set via -ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String returns the full version line.
func String() string {
	return fmt.Sprintf("ohm %s (commit %s, built %s)", Version, Commit, Date)
}
