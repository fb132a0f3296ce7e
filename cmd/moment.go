package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goaci/internal/aci"
)

var (
	// Unfactored moments (any consistent unit)
	momentDead       float64
	momentLive       float64
	momentRoof       float64
	momentWind       float64
	momentEarthquake float64
	momentRain       float64

	// Options
	showAll        bool
	useSimplified  bool
	momentUnit     string
	momentCapacity float64
)

var momentCmd = &cobra.Command{
	Use:   "moment",
	Short: "Calculate factored moment using ACI load combinations",
	Long: `Calculate the factored moment (Mu) based on ACI 318 Section 5.3
load combinations.

Provide unfactored moments from different load types and this command
will compute the factored moments for all applicable combinations. Any
consistent moment unit works (k-ft or kN-m); the load factors are
unitless.

Load Types:
  D  - Dead load
  L  - Live load
  Lr - Roof live load
  W  - Wind load
  E  - Earthquake load
  R  - Rain load

Examples:
  # Simple gravity loads (dead + live)
  goaci moment --dead 50 --live 30

  # With wind load, showing every combination
  goaci moment --dead 50 --live 30 --wind 20 --all

  # SI labels
  goaci moment --dead 50 --live 30 --unit kN-m`,
	Run: runMoment,
}

func init() {
	rootCmd.AddCommand(momentCmd)

	// Load moment flags
	momentCmd.Flags().Float64VarP(&momentDead, "dead", "d", 0, "Moment due to dead load")
	momentCmd.Flags().Float64VarP(&momentLive, "live", "l", 0, "Moment due to live load")
	momentCmd.Flags().Float64VarP(&momentRoof, "roof", "r", 0, "Moment due to roof live load")
	momentCmd.Flags().Float64VarP(&momentWind, "wind", "w", 0, "Moment due to wind load")
	momentCmd.Flags().Float64VarP(&momentEarthquake, "earthquake", "e", 0, "Moment due to earthquake load")
	momentCmd.Flags().Float64VarP(&momentRain, "rain", "R", 0, "Moment due to rain load")

	// Options
	momentCmd.Flags().BoolVarP(&showAll, "all", "a", false, "Show all load combination results")
	momentCmd.Flags().BoolVarP(&useSimplified, "simplified", "s", false, "Use simplified combinations (gravity only: 1.4D and 1.2D+1.6L)")
	momentCmd.Flags().StringVar(&momentUnit, "unit", "k-ft", "Moment unit label for the output")
	momentCmd.Flags().Float64Var(&momentCapacity, "capacity", 0, "Design capacity φMn to check against (same unit)")
}

func runMoment(cmd *cobra.Command, args []string) {
	moments := aci.LoadMoments{
		Dead:       momentDead,
		Live:       momentLive,
		Roof:       momentRoof,
		Wind:       momentWind,
		Earthquake: momentEarthquake,
		Rain:       momentRain,
	}

	// Check if any moment is provided
	if moments.Dead == 0 && moments.Live == 0 && moments.Roof == 0 &&
		moments.Wind == 0 && moments.Earthquake == 0 && moments.Rain == 0 {
		fmt.Println("Error: Please provide at least one unfactored moment.")
		fmt.Println("Use 'goaci moment --help' for usage information.")
		return
	}

	// Select which combinations to use
	combinations := aci.LoadCombinations
	if useSimplified {
		combinations = aci.SimplifiedCombinations
	}

	// Print header
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          ACI 318 FACTORED MOMENT CALCULATION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	// Print input moments
	fmt.Printf("UNFACTORED MOMENTS (%s):\n", momentUnit)
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if moments.Dead != 0 {
		fmt.Fprintf(w, "  Dead Load (D):\t%.2f\n", moments.Dead)
	}
	if moments.Live != 0 {
		fmt.Fprintf(w, "  Live Load (L):\t%.2f\n", moments.Live)
	}
	if moments.Roof != 0 {
		fmt.Fprintf(w, "  Roof Live Load (Lr):\t%.2f\n", moments.Roof)
	}
	if moments.Wind != 0 {
		fmt.Fprintf(w, "  Wind Load (W):\t%.2f\n", moments.Wind)
	}
	if moments.Earthquake != 0 {
		fmt.Fprintf(w, "  Earthquake Load (E):\t%.2f\n", moments.Earthquake)
	}
	if moments.Rain != 0 {
		fmt.Fprintf(w, "  Rain Load (R):\t%.2f\n", moments.Rain)
	}
	w.Flush()
	fmt.Println()

	// Calculate governing moment
	maxMu, governingCombo := aci.CalculateGoverningMoment(moments, combinations)

	if showAll {
		// Show all combinations
		fmt.Println("LOAD COMBINATIONS (ACI 318 Table 5.3.1):")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tCombination\tMu (%s)\n", momentUnit)
		fmt.Fprintf(w, "  ─\t───────────\t─────────\n")

		for _, combo := range combinations {
			mu := combo.CalculateFactoredMoment(moments)
			marker := ""
			if combo.ID == governingCombo.ID {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(w, "  %s\t%s\t%.2f%s\n", combo.ID, combo.Description, mu, marker)
		}
		w.Flush()
		fmt.Println()
	}

	// Print result
	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  Governing Combination: %s (%s)\n", governingCombo.ID, governingCombo.Description)
	fmt.Println()
	fmt.Printf("  ╔═══════════════════════════════════╗\n")
	fmt.Printf("  ║  FACTORED MOMENT (Mu) = %.2f %s  \n", maxMu, momentUnit)
	fmt.Printf("  ╚═══════════════════════════════════╝\n")
	fmt.Println()

	if momentCapacity > 0 {
		fmt.Println("CAPACITY CHECK:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		fmt.Printf("  φMn = %.2f %s, Mu = %.2f %s\n", momentCapacity, momentUnit, maxMu, momentUnit)
		if momentCapacity >= maxMu {
			fmt.Printf("  ✓ ADEQUATE (φMn ≥ Mu, ratio %.2f)\n", momentCapacity/maxMu)
		} else {
			fmt.Printf("  ✗ INADEQUATE (φMn < Mu, ratio %.2f)\n", momentCapacity/maxMu)
		}
		fmt.Println()
	}
}
