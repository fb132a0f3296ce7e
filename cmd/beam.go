package cmd

import (
	"github.com/spf13/cobra"
)

var beamCmd = &cobra.Command{
	Use:   "beam",
	Short: "Singly reinforced rectangular beam analysis",
	Long: `Analyze singly reinforced rectangular concrete beams based on
ACI 318 provisions.

Subcommands:
  analyze   - Calculate nominal moment strength for a given section
  defaults  - Show the default parameter set for a unit system

All calculations use the equivalent rectangular (Whitney) stress block.`,
}

func init() {
	rootCmd.AddCommand(beamCmd)
}
