package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goaci/internal/config"
	"github.com/alexiusacademia/goaci/internal/version"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "goaci",
	Short: "ACI 318 Nominal Moment Strength Calculator",
	Long: `goaci - Nominal Moment Strength Calculator

A CLI tool for the flexural analysis of singly reinforced rectangular
concrete beams based on ACI 318 provisions.

This tool helps structural engineers perform:
  - Nominal moment strength (Mn) analysis via the Whitney stress block
  - Minimum reinforcement (As,min) compliance checks
  - Factored moment calculation using ACI load combinations
  - Section, strain and stress diagrams (terminal and image export)
  - Calculation history and PDF reports

Both Imperial (psi, in, lb) and SI (MPa, mm, N) unit systems are
supported; each system works in its own native units.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   goaci v%-49s║\n", version.Version)
		fmt.Println("  ║   ACI 318 Nominal Moment Strength Calculator              ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the flexural analysis of singly reinforced")
		fmt.Println("  rectangular concrete beams based on ACI 318 provisions.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Nominal moment strength (Mn) via the Whitney stress block")
		fmt.Println("    • Imperial and SI unit systems with native defaults")
		fmt.Println("    • Minimum reinforcement compliance checks")
		fmt.Println("    • Factored moment calculation using ACI load combinations")
		fmt.Println("    • Diagrams, PDF reports and calculation history")
		fmt.Println()
		fmt.Println("  Use 'goaci --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.goaci/config.toml)")
}

// loadConfig loads the config file named by --config or the default path
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	return config.Load(path)
}
