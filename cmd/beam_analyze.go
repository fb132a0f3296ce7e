package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goaci/internal/aci"
	"github.com/alexiusacademia/goaci/internal/beam"
	"github.com/alexiusacademia/goaci/internal/diagram"
	"github.com/alexiusacademia/goaci/internal/report"
	"github.com/alexiusacademia/goaci/internal/store"
)

var (
	// Analysis inputs
	analyzeUnits   string
	analyzeFc      float64
	analyzeFy      float64
	analyzeEs      float64
	analyzeBeta1   float64
	analyzeEcu     float64
	analyzeWidth   float64
	analyzeHeight  float64
	analyzeDepth   float64
	analyzeBars    int
	analyzeBarArea float64

	// Input/output options
	analyzeFile   string
	analyzeImage  string
	analyzePDF    string
	analyzeStrain bool
	analyzeSave   bool
)

var beamAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Calculate nominal moment strength of a singly reinforced beam",
	Long: `Calculate the nominal moment strength (Mn) of a singly reinforced
rectangular beam using the equivalent rectangular stress block.

The analysis follows ACI 318 provisions:
  - Section 22.2.2.4: Equivalent rectangular stress block
  - Section 9.6.1.2:  Minimum flexural reinforcement
  - Table 21.2.2:     Strength reduction factors

Unset flags fall back to the unit system's default parameter set
(ACI Example 4-1 for Imperial, 4-1M for SI); switching --units resets
the defaults, it never converts values. When --beta1 is not given it
is derived from f'c.

Examples:
  # Reference Imperial section (12x20 in, 4 bars of 0.79 in²)
  goaci beam analyze

  # SI section with explicit geometry
  goaci beam analyze --units si -b 300 --height 550 -d 490 --bars 4 --bar-area 510

  # Export a section diagram and a PDF report, and save to history
  goaci beam analyze --image section.png --pdf calc.pdf --save

  # Load the full input record from a JSON file
  goaci beam analyze --file section.json`,
	Run: runBeamAnalyze,
}

func init() {
	beamCmd.AddCommand(beamAnalyzeCmd)

	beamAnalyzeCmd.Flags().StringVarP(&analyzeUnits, "units", "u", "imperial", "Unit system: imperial or si")

	// Material flags
	beamAnalyzeCmd.Flags().Float64Var(&analyzeFc, "fc", 0, "Concrete compressive strength f'c (psi or MPa)")
	beamAnalyzeCmd.Flags().Float64Var(&analyzeFy, "fy", 0, "Steel yield strength fy (psi or MPa)")
	beamAnalyzeCmd.Flags().Float64Var(&analyzeEs, "es", 0, "Steel modulus of elasticity Es (psi or MPa)")
	beamAnalyzeCmd.Flags().Float64Var(&analyzeBeta1, "beta1", 0, "Stress block factor (derived from f'c when unset)")
	beamAnalyzeCmd.Flags().Float64Var(&analyzeEcu, "ecu", 0, "Ultimate concrete strain (default 0.003)")

	// Geometry flags
	beamAnalyzeCmd.Flags().Float64VarP(&analyzeWidth, "width", "b", 0, "Beam width (in or mm)")
	beamAnalyzeCmd.Flags().Float64Var(&analyzeHeight, "height", 0, "Beam total depth (in or mm)")
	beamAnalyzeCmd.Flags().Float64VarP(&analyzeDepth, "depth", "d", 0, "Effective depth to steel centroid (in or mm)")

	// Reinforcement flags
	beamAnalyzeCmd.Flags().IntVarP(&analyzeBars, "bars", "n", 0, "Number of tension bars")
	beamAnalyzeCmd.Flags().Float64VarP(&analyzeBarArea, "bar-area", "a", 0, "Area per bar (in² or mm²)")

	// Input/output options
	beamAnalyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Load the full input record from a JSON file")
	beamAnalyzeCmd.Flags().StringVar(&analyzeImage, "image", "", "Export the section diagram to an image (.png/.svg/.pdf)")
	beamAnalyzeCmd.Flags().StringVar(&analyzePDF, "pdf", "", "Write a PDF calculation report to this file")
	beamAnalyzeCmd.Flags().BoolVar(&analyzeStrain, "strain", false, "Also print the strain distribution diagram")
	beamAnalyzeCmd.Flags().BoolVar(&analyzeSave, "save", false, "Save this calculation to the history")
}

// buildAnalyzeInput assembles the input record: JSON file if given,
// otherwise the unit system's defaults overridden by explicit flags
func buildAnalyzeInput(cmd *cobra.Command) (beam.SectionInput, error) {
	if analyzeFile != "" {
		input, err := beam.LoadInputFromFile(analyzeFile)
		if err != nil {
			return beam.SectionInput{}, err
		}
		return *input, nil
	}

	units, err := beam.ParseUnitSystem(analyzeUnits)
	if err != nil {
		return beam.SectionInput{}, err
	}

	cfg, err := loadConfig()
	if err != nil {
		return beam.SectionInput{}, err
	}

	input := cfg.DefaultInput(units)

	if cmd.Flags().Changed("fc") {
		input.FcPrime = analyzeFc
	}
	if cmd.Flags().Changed("fy") {
		input.Fy = analyzeFy
	}
	if cmd.Flags().Changed("es") {
		input.Es = analyzeEs
	}
	if cmd.Flags().Changed("ecu") {
		input.EpsilonCU = analyzeEcu
	}
	if cmd.Flags().Changed("width") {
		input.Width = analyzeWidth
	}
	if cmd.Flags().Changed("height") {
		input.Height = analyzeHeight
	}
	if cmd.Flags().Changed("depth") {
		input.EffectiveDepth = analyzeDepth
	}
	if cmd.Flags().Changed("bars") {
		input.NumBars = analyzeBars
	}
	if cmd.Flags().Changed("bar-area") {
		input.BarArea = analyzeBarArea
	}

	// Beta1: explicit flag wins, then a config override, otherwise
	// derive from f'c (ACI 318 Table 22.2.2.4.3)
	switch {
	case cmd.Flags().Changed("beta1"):
		input.Beta1 = analyzeBeta1
	case units == beam.SI && cfg.Defaults.SI.Beta1 != nil:
		// config already applied
	case units == beam.Imperial && cfg.Defaults.Imperial.Beta1 != nil:
		// config already applied
	case units == beam.SI:
		input.Beta1 = aci.Beta1SI(input.FcPrime)
	default:
		input.Beta1 = aci.Beta1Imperial(input.FcPrime)
	}

	return input, nil
}

func runBeamAnalyze(cmd *cobra.Command, args []string) {
	input, err := buildAnalyzeInput(cmd)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	result, err := beam.Compute(input)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	labels := beam.Labels(input.Units)

	// Print results
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SINGLY REINFORCED BEAM ANALYSIS - ACI 318")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	// Input summary
	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Unit System:\t%s\n", input.Units)
	fmt.Fprintf(w, "  Beam Width (b):\t%.2f %s\n", input.Width, labels.Length)
	fmt.Fprintf(w, "  Beam Depth (h):\t%.2f %s\n", input.Height, labels.Length)
	fmt.Fprintf(w, "  Effective Depth (d):\t%.2f %s\n", input.EffectiveDepth, labels.Length)
	fmt.Fprintf(w, "  f'c:\t%.1f %s\n", input.FcPrime, labels.Stress)
	fmt.Fprintf(w, "  fy:\t%.1f %s\n", input.Fy, labels.Stress)
	fmt.Fprintf(w, "  Es:\t%.0f %s\n", input.Es, labels.Stress)
	fmt.Fprintf(w, "  β₁:\t%.3f\n", input.Beta1)
	fmt.Fprintf(w, "  εcu:\t%.4f\n", input.EpsilonCU)
	fmt.Fprintf(w, "  Reinforcement:\t%d × %.3f %s (As = %.3f %s)\n",
		input.NumBars, input.BarArea, labels.Area, result.As, labels.Area)
	w.Flush()
	fmt.Println()

	for _, warning := range result.Warnings {
		fmt.Printf("  ⚠ %s\n", warning)
	}
	if len(result.Warnings) > 0 {
		fmt.Println()
	}

	if result.Degenerate {
		fmt.Println("RESULT:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		fmt.Println("  Section has no tension reinforcement (As = 0).")
		fmt.Println("  Strain state is undefined; Mn = 0.")
		fmt.Printf("  As,min = %.3f %s — NOT satisfied.\n", result.AsMin, labels.Area)
		fmt.Println()
		finishAnalyze(input, result)
		return
	}

	// Section analysis
	fmt.Println("SECTION ANALYSIS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Tension force (T = As·fy):\t%.2f %s\n", result.TDisplay, labels.ForceDisplay)
	fmt.Fprintf(w, "  Stress block depth (a):\t%.3f %s\n", result.A, labels.Length)
	fmt.Fprintf(w, "  Neutral axis depth (c):\t%.3f %s\n", result.C, labels.Length)
	fmt.Fprintf(w, "  Lever arm (d - a/2):\t%.3f %s\n", input.EffectiveDepth-result.A/2, labels.Length)
	w.Flush()
	fmt.Println()

	// Strain compatibility
	fmt.Println("STRAIN COMPATIBILITY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Yield strain (εy = fy/Es):\t%.5f\n", result.EpsilonY)
	fmt.Fprintf(w, "  Steel strain (εs):\t%.5f", result.EpsilonS)
	if result.SteelYields {
		fmt.Fprintf(w, " ✓ yields\n")
	} else {
		fmt.Fprintf(w, " ✗ elastic\n")
	}
	fmt.Fprintf(w, "  Steel stress (fs):\t%.1f %s\n", result.Fs, labels.Stress)
	fmt.Fprintf(w, "  Strength reduction (φ):\t%.3f\n", result.Phi)
	w.Flush()
	fmt.Println()

	// Moment capacity
	fmt.Println("MOMENT CAPACITY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Nominal Moment (Mn):\t%.2f %s\t(%.0f %s)\n",
		result.MnDisplay, labels.MomentDisplay, result.Mn, labels.Moment)
	fmt.Fprintf(w, "  Design Capacity (φMn):\t%.2f %s\n", result.PhiMnDisplay, labels.MomentDisplay)
	w.Flush()
	fmt.Println()

	fmt.Printf("  ╔═════════════════════════════════════════╗\n")
	fmt.Printf("  ║  NOMINAL MOMENT Mn = %.2f %s     \n", result.MnDisplay, labels.MomentDisplay)
	fmt.Printf("  ╚═════════════════════════════════════════╝\n")
	fmt.Println()

	// Minimum reinforcement
	fmt.Println("MINIMUM REINFORCEMENT (ACI 318 Section 9.6.1.2):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  As,min:\t%.3f %s\n", result.AsMin, labels.Area)
	fmt.Fprintf(w, "  As,provided:\t%.3f %s", result.As, labels.Area)
	if result.AsMinOK {
		fmt.Fprintf(w, " ✓ OK\n")
	} else {
		fmt.Fprintf(w, " ✗ NG (below As,min)\n")
	}
	w.Flush()
	fmt.Println()

	// Status
	fmt.Println("STATUS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	if result.SteelYields {
		fmt.Println("  Section is under-reinforced: steel yields before crushing.")
	} else {
		fmt.Println("  Section is over-reinforced: steel remains elastic (fs < fy).")
	}
	if !result.AsMinOK {
		fmt.Println("  WARNING: provided steel is below the code minimum.")
	}
	fmt.Println()

	// ASCII diagram
	data := diagram.FromResult(input, result)
	fmt.Println(diagram.DrawASCIISectionDiagram(data))
	if analyzeStrain {
		fmt.Println(diagram.DrawStrainDiagram(data))
	}

	finishAnalyze(input, result)
}

// finishAnalyze handles the optional outputs (image, PDF, history)
func finishAnalyze(input beam.SectionInput, result *beam.SectionResult) {
	if analyzeImage != "" {
		data := diagram.FromResult(input, result)
		if err := diagram.ExportSectionDiagram(data, analyzeImage); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("  Section diagram written to %s\n", analyzeImage)
		}
	}

	if analyzePDF != "" {
		if err := report.GenerateFile(analyzePDF, input, *result); err != nil {
			fmt.Printf("Error writing report: %v\n", err)
		} else {
			fmt.Printf("  PDF report written to %s\n", analyzePDF)
		}
	}

	if analyzeSave {
		cfg, err := loadConfig()
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			return
		}
		s := store.New(cfg.HistoryFile(store.DefaultPath()))
		record, err := s.Save(input, *result)
		if err != nil {
			fmt.Printf("Error saving calculation: %v\n", err)
			return
		}
		fmt.Printf("  Calculation saved (id %s)\n", record.ID)
	}
}
