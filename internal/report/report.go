// Package report renders a calculation into a PDF document.
package report

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/goaci/internal/beam"
)

// pdfLabels returns ASCII-safe unit labels for the core PDF fonts
func pdfLabels(units beam.UnitSystem) beam.UnitLabels {
	if units == beam.SI {
		return beam.UnitLabels{
			Length: "mm", Area: "mm2", Stress: "MPa",
			Force: "N", ForceDisplay: "kN",
			Moment: "N-mm", MomentDisplay: "kN-m",
		}
	}
	return beam.UnitLabels{
		Length: "in", Area: "in2", Stress: "psi",
		Force: "lb", ForceDisplay: "kips",
		Moment: "lb-in", MomentDisplay: "k-ft",
	}
}

// Generate writes a PDF calculation report to w
func Generate(w io.Writer, input beam.SectionInput, result beam.SectionResult) error {
	labels := pdfLabels(input.Units)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Nominal Moment Strength - ACI 318")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Unit system: %s", input.Units))
	pdf.Ln(10)

	section := func(title string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, title)
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "", 10)
	}
	row := func(label, value string) {
		pdf.Cell(70, 6, label)
		pdf.Cell(0, 6, value)
		pdf.Ln(6)
	}

	section("Input Data")
	row("Concrete strength f'c", fmt.Sprintf("%.1f %s", input.FcPrime, labels.Stress))
	row("Steel yield strength fy", fmt.Sprintf("%.1f %s", input.Fy, labels.Stress))
	row("Steel modulus Es", fmt.Sprintf("%.0f %s", input.Es, labels.Stress))
	row("Stress block factor beta1", fmt.Sprintf("%.3f", input.Beta1))
	row("Ultimate concrete strain", fmt.Sprintf("%.4f", input.EpsilonCU))
	row("Width b", fmt.Sprintf("%.2f %s", input.Width, labels.Length))
	row("Total depth h", fmt.Sprintf("%.2f %s", input.Height, labels.Length))
	row("Effective depth d", fmt.Sprintf("%.2f %s", input.EffectiveDepth, labels.Length))
	row("Reinforcement", fmt.Sprintf("%d bars x %.3f %s", input.NumBars, input.BarArea, labels.Area))
	pdf.Ln(4)

	if result.Degenerate {
		section("Result")
		row("Steel area As", fmt.Sprintf("0 %s", labels.Area))
		row("Nominal moment Mn", fmt.Sprintf("0 %s", labels.MomentDisplay))
		pdf.Ln(2)
		pdf.MultiCell(0, 6, "Section has no tension reinforcement; the strain state is undefined and the section carries no flexural capacity.", "", "L", false)
		return pdf.Output(w)
	}

	section("Section Analysis")
	row("Steel area As", fmt.Sprintf("%.3f %s", result.As, labels.Area))
	row("Tension force T", fmt.Sprintf("%.2f %s", result.TDisplay, labels.ForceDisplay))
	row("Stress block depth a", fmt.Sprintf("%.3f %s", result.A, labels.Length))
	row("Neutral axis depth c", fmt.Sprintf("%.3f %s", result.C, labels.Length))
	row("Yield strain", fmt.Sprintf("%.5f", result.EpsilonY))
	row("Steel strain at ultimate", fmt.Sprintf("%.5f", result.EpsilonS))
	yields := "elastic (below yield)"
	if result.SteelYields {
		yields = "yields"
	}
	row("Steel state", yields)
	row("Steel stress fs", fmt.Sprintf("%.1f %s", result.Fs, labels.Stress))
	pdf.Ln(4)

	section("Capacity")
	row("Nominal moment Mn", fmt.Sprintf("%.2f %s", result.MnDisplay, labels.MomentDisplay))
	row("Strength reduction phi", fmt.Sprintf("%.3f", result.Phi))
	row("Design capacity phi*Mn", fmt.Sprintf("%.2f %s", result.PhiMnDisplay, labels.MomentDisplay))
	pdf.Ln(4)

	section("Minimum Reinforcement Check")
	row("As,min", fmt.Sprintf("%.3f %s", result.AsMin, labels.Area))
	status := "NG - increase reinforcement"
	if result.AsMinOK {
		status = "OK"
	}
	row("As >= As,min", status)

	if len(result.Warnings) > 0 {
		pdf.Ln(4)
		section("Warnings")
		for _, warning := range result.Warnings {
			pdf.MultiCell(0, 6, "- "+warning, "", "L", false)
		}
	}

	return pdf.Output(w)
}

// GenerateFile writes a PDF calculation report to a file
func GenerateFile(path string, input beam.SectionInput, result beam.SectionResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	defer f.Close()

	if err := Generate(f, input, result); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
