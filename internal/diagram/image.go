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
)

var componentColors = [3]color.RGBA{
	{R: 0, G: 0, B: 139, A: 255},
	{R: 0, G: 100, B: 0, A: 255},
	{R: 200, G: 0, B: 0, A: 255},
}

// ExportProfile exports a through-thickness distribution to an image file.
// The quantity runs along X and z along Y, so the plot reads like the section.
func ExportProfile(data ProfileData, filename string, width, height vg.Length) error {
	if len(data.Samples) == 0 {
		return fmt.Errorf("export %s: no samples", filename)
	}

	p := plot.New()
	p.Title.Text = data.Title
	p.X.Label.Text = "Value"
	p.Y.Label.Text = "z (mm)"
	p.Legend.Top = true

	minX, maxX := data.Samples[0].Values[0], data.Samples[0].Values[0]
	for c := 0; c < 3; c++ {
		pts := make(plotter.XYs, len(data.Samples))
		for i, s := range data.Samples {
			pts[i] = plotter.XY{X: s.Values[c], Y: s.Z}
			if s.Values[c] < minX {
				minX = s.Values[c]
			}
			if s.Values[c] > maxX {
				maxX = s.Values[c]
			}
		}

		line, scatter, err := plotter.NewLinePoints(pts)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = componentColors[c]
		scatter.GlyphStyle.Color = componentColors[c]
		scatter.GlyphStyle.Radius = vg.Points(2)
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(line, scatter)
		p.Legend.Add(data.Labels[c], line)
	}

	// Zero reference line
	zMin := data.Samples[0].Z
	zMax := data.Samples[len(data.Samples)-1].Z
	zeroLine, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: zMin},
		{X: 0, Y: zMax},
	})
	if err != nil {
		return err
	}
	zeroLine.LineStyle.Width = vg.Points(1)
	zeroLine.LineStyle.Color = color.Gray{Y: 128}
	p.Add(zeroLine)

	// Ply interfaces
	for _, z := range data.Interfaces {
		iface, err := plotter.NewLine(plotter.XYs{
			{X: minX, Y: z},
			{X: maxX, Y: z},
		})
		if err != nil {
			return err
		}
		iface.LineStyle.Color = color.RGBA{R: 255, G: 165, B: 0, A: 255}
		iface.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
		p.Add(iface)
	}

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
