package diagram

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/goaci/internal/beam"
)

// SectionDiagramData holds everything needed to draw a section with its
// strain and stress distributions. Magnitudes are in the native units of
// Units; labels follow the unit system.
type SectionDiagramData struct {
	// Beam dimensions
	Width  float64
	Height float64

	// Analysis results
	NeutralAxisDepth float64 // c - from top
	StressBlockDepth float64 // a - from top

	// Reinforcement
	TensionSteelY    float64 // distance from bottom to the steel centroid
	TensionSteelArea float64
	NumBars          int

	// Strains
	EpsilonCU float64
	EpsilonS  float64
	EpsilonY  float64

	// Stresses
	FcBlock   float64 // 0.85 f'c
	FsTension float64

	// Status
	TensionYields bool
	Degenerate    bool

	Units beam.UnitSystem
}

// FromResult builds diagram data from an engine input/result pair
func FromResult(input beam.SectionInput, result *beam.SectionResult) SectionDiagramData {
	return SectionDiagramData{
		Width:            input.Width,
		Height:           input.Height,
		NeutralAxisDepth: result.C,
		StressBlockDepth: result.A,
		TensionSteelY:    input.Height - input.EffectiveDepth,
		TensionSteelArea: result.As,
		NumBars:          input.NumBars,
		EpsilonCU:        input.EpsilonCU,
		EpsilonS:         result.EpsilonS,
		EpsilonY:         result.EpsilonY,
		FcBlock:          0.85 * input.FcPrime,
		FsTension:        result.Fs,
		TensionYields:    result.SteelYields,
		Degenerate:       result.Degenerate,
		Units:            input.Units,
	}
}

// DrawASCIISectionDiagram creates an ASCII view of the section with the
// stress block, strain distribution and stress annotations
func DrawASCIISectionDiagram(data SectionDiagramData) string {
	var sb strings.Builder

	labels := beam.Labels(data.Units)

	if data.Degenerate {
		sb.WriteString("\n  BEAM SECTION (no tension reinforcement)\n")
		sb.WriteString("  ────────────────────────────────────────\n")
		sb.WriteString("  Strain state is undefined for As = 0; nothing to draw.\n")
		return sb.String()
	}

	// Scale factors for ASCII drawing
	widthChars := 30
	heightChars := 20

	naLine := int(data.NeutralAxisDepth / data.Height * float64(heightChars))
	aLine := int(data.StressBlockDepth / data.Height * float64(heightChars))
	tensionLine := heightChars - int(data.TensionSteelY/data.Height*float64(heightChars))

	sb.WriteString("\n")
	sb.WriteString("  BEAM SECTION                    STRAIN              STRESS\n")
	sb.WriteString("  ────────────                    ──────              ──────\n")

	for i := 0; i <= heightChars; i++ {
		// Section column
		if i == 0 {
			sb.WriteString(fmt.Sprintf("  ┌%s┐", strings.Repeat("─", widthChars)))
		} else if i == heightChars {
			sb.WriteString(fmt.Sprintf("  └%s┘", strings.Repeat("─", widthChars)))
		} else {
			var fill string
			if i <= aLine {
				// Stress block region (compression)
				fill = strings.Repeat("░", widthChars)
			} else {
				fill = strings.Repeat(" ", widthChars)
			}

			// Tension steel marker. Splice on runes: the shaded fill
			// uses multi-byte characters.
			if i == tensionLine && widthChars >= 10 {
				runes := []rune(fill)
				mid := widthChars / 2
				fill = string(runes[:mid-3]) + "●────●" + string(runes[mid+3:])
			}

			sb.WriteString(fmt.Sprintf("  │%s│", fill))
			if i == naLine {
				sb.WriteString(" ◄─ N.A.")
			}
		}

		// Strain diagram column
		sb.WriteString("    ")
		if i == 0 {
			sb.WriteString(fmt.Sprintf("  ├── εcu = %.4f", data.EpsilonCU))
		} else if i == naLine {
			sb.WriteString("  ├── ε = 0")
		} else if i == tensionLine {
			yieldMark := ""
			if data.TensionYields {
				yieldMark = " (yields)"
			}
			sb.WriteString(fmt.Sprintf("  ├── εs = %.4f%s", data.EpsilonS, yieldMark))
		} else if i > 0 && i < heightChars {
			sb.WriteString("  │")
		}

		// Stress diagram column
		if i == 0 {
			sb.WriteString(fmt.Sprintf("      ┌── 0.85f'c = %.1f %s", data.FcBlock, labels.Stress))
		} else if i == aLine && aLine > 0 {
			sb.WriteString("      └── (stress block)")
		} else if i == tensionLine {
			sb.WriteString(fmt.Sprintf("      ── fs = %.1f %s", data.FsTension, labels.Stress))
		}

		sb.WriteString("\n")
	}

	// Legend
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ░░░ = Compression zone (stress block)\n")
	sb.WriteString("  ●●● = Tension reinforcement\n")
	sb.WriteString(fmt.Sprintf("  N.A. = Neutral Axis at c = %.2f %s from top\n", data.NeutralAxisDepth, labels.Length))
	sb.WriteString(fmt.Sprintf("  Stress block depth a = %.2f %s\n", data.StressBlockDepth, labels.Length))

	return sb.String()
}

// DrawStrainDiagram creates an ASCII strain distribution diagram
func DrawStrainDiagram(data SectionDiagramData) string {
	var sb strings.Builder

	if data.Degenerate {
		return ""
	}

	height := 15
	width := 40

	maxStrain := data.EpsilonCU
	if data.EpsilonS > maxStrain {
		maxStrain = data.EpsilonS
	}
	scale := float64(width-10) / maxStrain

	sb.WriteString("\n")
	sb.WriteString("  STRAIN DISTRIBUTION DIAGRAM\n")
	sb.WriteString("  ───────────────────────────\n\n")

	naLine := int(data.NeutralAxisDepth / data.Height * float64(height))
	tensionLine := height - int((data.TensionSteelY/data.Height)*float64(height))

	for i := 0; i <= height; i++ {
		depth := float64(i) / float64(height) * data.Height

		var strain float64
		if depth <= data.NeutralAxisDepth {
			// Compression zone
			strain = data.EpsilonCU * (data.NeutralAxisDepth - depth) / data.NeutralAxisDepth
		} else {
			// Tension zone (drawn positive)
			strain = data.EpsilonCU * (depth - data.NeutralAxisDepth) / data.NeutralAxisDepth
		}

		barLen := int(strain * scale)
		if barLen < 0 {
			barLen = 0
		}
		if barLen > width {
			barLen = width
		}

		if i == 0 {
			sb.WriteString(fmt.Sprintf("  Top    │%s▶ εcu=%.4f\n", strings.Repeat("█", barLen), data.EpsilonCU))
		} else if i == naLine {
			sb.WriteString(fmt.Sprintf("  N.A.   ├%s (ε=0)\n", strings.Repeat("─", 5)))
		} else if i == tensionLine {
			mark := ""
			if data.TensionYields {
				mark = " ✓yields"
			}
			sb.WriteString(fmt.Sprintf("  Steel  │%s▶ εs=%.4f%s\n", strings.Repeat("█", barLen), data.EpsilonS, mark))
		} else if i == height {
			sb.WriteString(fmt.Sprintf("  Bottom │%s\n", strings.Repeat("█", barLen)))
		} else {
			sb.WriteString(fmt.Sprintf("         │%s\n", strings.Repeat("█", barLen)))
		}
	}

	yieldBar := int(data.EpsilonY * scale)
	sb.WriteString(fmt.Sprintf("\n  εy = %.4f %s (yield strain)\n", data.EpsilonY, strings.Repeat("─", yieldBar)+"┤"))

	return sb.String()
}

// DrawStressBlock creates a simple stress block diagram
func DrawStressBlock(data SectionDiagramData) string {
	var sb strings.Builder

	if data.Degenerate {
		return ""
	}

	labels := beam.Labels(data.Units)

	sb.WriteString("\n")
	sb.WriteString("  EQUIVALENT RECTANGULAR STRESS BLOCK\n")
	sb.WriteString("  ────────────────────────────────────\n\n")

	sb.WriteString("       ┌───────────────┐\n")
	sb.WriteString("       │               │\n")
	sb.WriteString(fmt.Sprintf("       │  0.85f'c      │ ← a = %.2f %s\n", data.StressBlockDepth, labels.Length))
	sb.WriteString(fmt.Sprintf("       │  = %.1f %s\n", data.FcBlock, labels.Stress))
	sb.WriteString("       │               │\n")
	sb.WriteString("       └───────────────┘ ─── Cc = 0.85·f'c·b·a\n")
	sb.WriteString(fmt.Sprintf("       ─ ─ ─ ─ ─ ─ ─ ─ ─ ← N.A. (c = %.2f %s)\n", data.NeutralAxisDepth, labels.Length))
	sb.WriteString("                         │\n")
	sb.WriteString("                         │  (d - a/2)\n")
	sb.WriteString("                         │\n")
	sb.WriteString("       ●═══════════════● ← Tension Steel\n")
	sb.WriteString(fmt.Sprintf("         As = %.2f %s\n", data.TensionSteelArea, labels.Area))
	sb.WriteString(fmt.Sprintf("         T = As·fs = %.1f %s\n", data.TensionSteelArea*data.FsTension/1000, labels.ForceDisplay))

	return sb.String()
}

// DrawSummaryBox creates a bordered summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
