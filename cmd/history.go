package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goaci/internal/beam"
	"github.com/alexiusacademia/goaci/internal/store"
)

var (
	historyLimit  int
	exportFormat  string
	exportOutFile string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage saved calculations",
	Long: `Manage the calculation history.

Calculations are saved with 'beam analyze --save' and stored as a JSON
file (default ~/.goaci/history.json, configurable).

Subcommands:
  list    - Show recent calculations
  show    - Show one calculation in full
  clear   - Delete all saved calculations
  export  - Export the history to XLSX or JSON`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show recent calculations",
	Run:   runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one calculation in full",
	Args:  cobra.ExactArgs(1),
	Run:   runHistoryShow,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all saved calculations",
	Run:   runHistoryClear,
}

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the history to XLSX or JSON",
	Run:   runHistoryExport,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyExportCmd)

	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "l", 0, "Maximum records to show (default from config, 10)")
	historyExportCmd.Flags().StringVarP(&exportFormat, "format", "f", "xlsx", "Export format: xlsx or json")
	historyExportCmd.Flags().StringVarP(&exportOutFile, "out", "o", "", "Output file (default goaci_history.<format>)")
}

func openStore() (*store.Store, int, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, 0, err
	}
	return store.New(cfg.HistoryFile(store.DefaultPath())), cfg.HistoryLimit(), nil
}

func runHistoryList(cmd *cobra.Command, args []string) {
	s, cfgLimit, err := openStore()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	limit := historyLimit
	if limit <= 0 {
		limit = cfgLimit
	}

	records, err := s.List(limit)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if len(records) == 0 {
		fmt.Println("No saved calculations.")
		return
	}

	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  ID\tDate\tUnits\tSection\tAs\tMn\tAs,min\n")
	fmt.Fprintf(w, "  ──\t────\t─────\t───────\t──\t──\t──────\n")
	for _, rec := range records {
		labels := beam.Labels(rec.Input.Units)
		status := "OK"
		if !rec.Result.AsMinOK {
			status = "NG"
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\t%.0f×%.0f\t%.3f %s\t%.2f %s\t%s\n",
			rec.ID[:8],
			rec.Timestamp.Format("2006-01-02 15:04"),
			rec.Input.Units,
			rec.Input.Width, rec.Input.Height,
			rec.Result.As, labels.Area,
			rec.Result.MnDisplay, labels.MomentDisplay,
			status)
	}
	w.Flush()
	fmt.Println()
	fmt.Println("  Use 'goaci history show <id>' with the full ID from 'history export'.")
	fmt.Println()
}

func runHistoryShow(cmd *cobra.Command, args []string) {
	s, _, err := openStore()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	// Accept a full ID or an unambiguous prefix
	records, err := s.List(0)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	var match *store.Record
	for i := range records {
		if records[i].ID == args[0] || (len(args[0]) >= 8 && len(records[i].ID) >= len(args[0]) && records[i].ID[:len(args[0])] == args[0]) {
			if match != nil {
				fmt.Printf("Error: id prefix %q is ambiguous\n", args[0])
				return
			}
			match = &records[i]
		}
	}
	if match == nil {
		fmt.Printf("Error: no calculation with id %s\n", args[0])
		return
	}

	labels := beam.Labels(match.Input.Units)

	fmt.Println()
	fmt.Printf("CALCULATION %s (%s)\n", match.ID, match.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Unit System:\t%s\n", match.Input.Units)
	fmt.Fprintf(w, "  Section (b×h):\t%.2f × %.2f %s\n", match.Input.Width, match.Input.Height, labels.Length)
	fmt.Fprintf(w, "  Effective Depth (d):\t%.2f %s\n", match.Input.EffectiveDepth, labels.Length)
	fmt.Fprintf(w, "  f'c / fy:\t%.1f / %.1f %s\n", match.Input.FcPrime, match.Input.Fy, labels.Stress)
	fmt.Fprintf(w, "  Reinforcement:\t%d × %.3f %s\n", match.Input.NumBars, match.Input.BarArea, labels.Area)
	fmt.Fprintf(w, "  As:\t%.3f %s\n", match.Result.As, labels.Area)
	fmt.Fprintf(w, "  a / c:\t%.3f / %.3f %s\n", match.Result.A, match.Result.C, labels.Length)
	fmt.Fprintf(w, "  Steel yields:\t%v\n", match.Result.SteelYields)
	fmt.Fprintf(w, "  Mn:\t%.2f %s\n", match.Result.MnDisplay, labels.MomentDisplay)
	fmt.Fprintf(w, "  φMn:\t%.2f %s\n", match.Result.PhiMnDisplay, labels.MomentDisplay)
	fmt.Fprintf(w, "  As,min:\t%.3f %s (ok: %v)\n", match.Result.AsMin, labels.Area, match.Result.AsMinOK)
	w.Flush()
	fmt.Println()
}

func runHistoryClear(cmd *cobra.Command, args []string) {
	s, _, err := openStore()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if err := s.Clear(); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println("History cleared.")
}

func runHistoryExport(cmd *cobra.Command, args []string) {
	s, _, err := openStore()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	out := exportOutFile
	if out == "" {
		out = "goaci_history." + exportFormat
	}

	switch exportFormat {
	case "xlsx":
		err = s.ExportXLSX(out)
	case "json":
		err = s.ExportJSON(out)
	default:
		fmt.Printf("Error: unknown format %q (expected xlsx or json)\n", exportFormat)
		return
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("History exported to %s\n", filepath.Clean(out))
}
