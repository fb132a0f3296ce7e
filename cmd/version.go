package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goaci/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of goaci",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("goaci v%s\n", version.Version)
		fmt.Println("ACI 318 Nominal Moment Strength Calculator")
		if version.GitCommit != "unknown" {
			fmt.Printf("commit %s, built %s\n", version.GitCommit, version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
