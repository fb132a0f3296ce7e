package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/goaci/internal/beam"
)

// ExportSectionDiagram exports the section diagram to an image file.
// The format follows the file extension (.png, .svg or .pdf; default png).
func ExportSectionDiagram(data SectionDiagramData, filename string) error {
	if data.Degenerate {
		return fmt.Errorf("cannot draw a section without tension reinforcement")
	}

	labels := beam.Labels(data.Units)

	p := plot.New()
	p.Title.Text = "Beam Section Analysis"
	p.X.Label.Text = fmt.Sprintf("Width (%s)", labels.Length)
	p.Y.Label.Text = fmt.Sprintf("Height (%s)", labels.Length)

	// Beam outline
	beamOutline := plotter.XYs{
		{X: 0, Y: 0},
		{X: data.Width, Y: 0},
		{X: data.Width, Y: data.Height},
		{X: 0, Y: data.Height},
		{X: 0, Y: 0},
	}
	beamLine, err := plotter.NewLine(beamOutline)
	if err != nil {
		return err
	}
	beamLine.LineStyle.Width = vg.Points(2)
	beamLine.LineStyle.Color = color.Black
	p.Add(beamLine)

	// Equivalent rectangular stress block
	stressBlockPts := plotter.XYs{
		{X: 0, Y: data.Height},
		{X: data.Width, Y: data.Height},
		{X: data.Width, Y: data.Height - data.StressBlockDepth},
		{X: 0, Y: data.Height - data.StressBlockDepth},
	}
	stressBlock, err := plotter.NewPolygon(stressBlockPts)
	if err != nil {
		return err
	}
	stressBlock.Color = color.RGBA{R: 100, G: 149, B: 237, A: 150}
	stressBlock.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(stressBlock)

	// Neutral axis line
	naY := data.Height - data.NeutralAxisDepth
	naLine, err := plotter.NewLine(plotter.XYs{
		{X: -data.Width * 0.05, Y: naY},
		{X: data.Width * 1.05, Y: naY},
	})
	if err != nil {
		return err
	}
	naLine.LineStyle.Width = vg.Points(1.5)
	naLine.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	naLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(naLine)

	// Tension bars spread evenly across the width at the steel centroid
	nBars := data.NumBars
	if nBars < 1 {
		nBars = 1
	}
	barPts := make(plotter.XYs, nBars)
	if nBars == 1 {
		barPts[0] = plotter.XY{X: data.Width / 2, Y: data.TensionSteelY}
	} else {
		edge := data.Width * 0.15
		spacing := (data.Width - 2*edge) / float64(nBars-1)
		for i := 0; i < nBars; i++ {
			barPts[i] = plotter.XY{X: edge + float64(i)*spacing, Y: data.TensionSteelY}
		}
	}
	tensionSteel, err := plotter.NewScatter(barPts)
	if err != nil {
		return err
	}
	tensionSteel.GlyphStyle.Color = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	tensionSteel.GlyphStyle.Radius = vg.Points(6)
	tensionSteel.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(tensionSteel)

	// Annotations
	annotations := []struct {
		x, y float64
		text string
	}{
		{data.Width * 1.08, naY, "N.A."},
		{data.Width * 1.08, data.Height - data.StressBlockDepth/2, fmt.Sprintf("a=%.1f%s", data.StressBlockDepth, labels.Length)},
		{data.Width / 2, data.TensionSteelY - data.Height*0.05, fmt.Sprintf("As=%.2f%s", data.TensionSteelArea, labels.Area)},
	}
	for _, a := range annotations {
		l, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: a.x, Y: a.y}},
			Labels: []string{a.text},
		})
		if err != nil {
			return err
		}
		p.Add(l)
	}

	width := 8 * vg.Inch
	height := 6 * vg.Inch

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
