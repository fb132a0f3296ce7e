package diagram

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/alexiusacademia/goaci/internal/beam"
)

func referenceData(t *testing.T) SectionDiagramData {
	t.Helper()
	input := beam.DefaultInput(beam.Imperial)
	result, err := beam.Compute(input)
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}
	return FromResult(input, result)
}

func TestDrawASCIISectionDiagram(t *testing.T) {
	out := DrawASCIISectionDiagram(referenceData(t))

	for _, want := range []string{"BEAM SECTION", "STRAIN", "STRESS", "N.A.", "(yields)", "psi"} {
		if !strings.Contains(out, want) {
			t.Errorf("diagram missing %q:\n%s", want, out)
		}
	}
}

func TestDrawASCIISectionDiagramSIUnits(t *testing.T) {
	input := beam.DefaultInput(beam.SI)
	result, err := beam.Compute(input)
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}
	out := DrawASCIISectionDiagram(FromResult(input, result))
	if !strings.Contains(out, "MPa") {
		t.Errorf("SI diagram should label stresses in MPa:\n%s", out)
	}
}

func TestDrawASCIISectionDiagramDegenerate(t *testing.T) {
	input := beam.DefaultInput(beam.Imperial)
	input.NumBars = 0
	result, err := beam.Compute(input)
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}
	out := DrawASCIISectionDiagram(FromResult(input, result))
	if !strings.Contains(out, "no tension reinforcement") {
		t.Errorf("degenerate diagram should say so:\n%s", out)
	}
}

func TestDrawASCIISectionDiagramDeepStressBlock(t *testing.T) {
	// Heavily over-reinforced: the stress block reaches the bar row,
	// so the marker is spliced into the shaded fill
	input := beam.DefaultInput(beam.Imperial)
	input.Width = 10
	input.Height = 16
	input.EffectiveDepth = 15
	input.NumBars = 6
	input.BarArea = 1.5
	result, err := beam.Compute(input)
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}
	if result.A < input.EffectiveDepth {
		t.Fatalf("fixture not deep enough: a = %.2f, d = %.2f", result.A, input.EffectiveDepth)
	}

	out := DrawASCIISectionDiagram(FromResult(input, result))
	if !utf8.ValidString(out) {
		t.Errorf("diagram contains invalid UTF-8:\n%s", out)
	}
	if !strings.Contains(out, "●────●") {
		t.Errorf("diagram missing the bar marker:\n%s", out)
	}
}

func TestDrawStrainDiagram(t *testing.T) {
	out := DrawStrainDiagram(referenceData(t))
	for _, want := range []string{"STRAIN DISTRIBUTION", "N.A.", "εy"} {
		if !strings.Contains(out, want) {
			t.Errorf("strain diagram missing %q", want)
		}
	}
}

func TestDrawStressBlock(t *testing.T) {
	out := DrawStressBlock(referenceData(t))
	for _, want := range []string{"STRESS BLOCK", "0.85f'c", "Tension Steel"} {
		if !strings.Contains(out, want) {
			t.Errorf("stress block diagram missing %q", want)
		}
	}
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("RESULTS", []string{"Mn = 239.79 k-ft", "Status: OK"})
	for _, want := range []string{"RESULTS", "Mn = 239.79 k-ft", "╔", "╚"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary box missing %q:\n%s", want, out)
		}
	}
}
