// Package cli implements the reelcut command line interface.
package cli

import (
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags "-X .../internal/cli.version=...".
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "reelcut",
	Short: "Wire reel cut optimizer",
	Long: `reelcut assigns requested cut lengths to wire reels of matching
item numbers using a first-fit decreasing strategy, and reports any
cuts that do not fit on the available reels.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
