package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goaci/internal/beam"
)

var defaultsUnits string

var beamDefaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Show the default parameter set for a unit system",
	Long: `Show the default parameter set for a unit system.

These are the canonical reference scenarios (ACI Example 4-1 for
Imperial, 4-1M for SI) that 'beam analyze' starts from; a config file
can override individual fields.

Examples:
  goaci beam defaults
  goaci beam defaults --units si`,
	Run: runBeamDefaults,
}

func init() {
	beamCmd.AddCommand(beamDefaultsCmd)
	beamDefaultsCmd.Flags().StringVarP(&defaultsUnits, "units", "u", "imperial", "Unit system: imperial or si")
}

func runBeamDefaults(cmd *cobra.Command, args []string) {
	units, err := beam.ParseUnitSystem(defaultsUnits)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	input := cfg.DefaultInput(units)
	labels := beam.Labels(units)

	fmt.Println()
	fmt.Printf("DEFAULT PARAMETERS (%s):\n", input.Units)
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  f'c:\t%.1f %s\n", input.FcPrime, labels.Stress)
	fmt.Fprintf(w, "  fy:\t%.1f %s\n", input.Fy, labels.Stress)
	fmt.Fprintf(w, "  Es:\t%.0f %s\n", input.Es, labels.Stress)
	fmt.Fprintf(w, "  β₁:\t%.3f\n", input.Beta1)
	fmt.Fprintf(w, "  εcu:\t%.4f\n", input.EpsilonCU)
	fmt.Fprintf(w, "  b:\t%.2f %s\n", input.Width, labels.Length)
	fmt.Fprintf(w, "  h:\t%.2f %s\n", input.Height, labels.Length)
	fmt.Fprintf(w, "  d:\t%.2f %s\n", input.EffectiveDepth, labels.Length)
	fmt.Fprintf(w, "  Bars:\t%d × %.3f %s\n", input.NumBars, input.BarArea, labels.Area)
	w.Flush()
	fmt.Println()
}
