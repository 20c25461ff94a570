package render

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/mahesh-hegde/plotweave/app/chart"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"
)

// build assembles the gonum plot for p: one line per combination, all
// reading from the shared projected table.
func build(p *chart.Plot) (*plot.Plot, error) {
	plt, err := plot.New()
	if err != nil {
		return nil, err
	}
	plt.Title.Text = p.Config.Title
	plt.X.Label.Text = chart.AxisLabel(p.Config.XAttributes, p.Config.XAxisLabel)
	plt.Y.Label.Text = p.Config.YAxisLabel
	plt.Add(plotter.NewGrid())

	for _, c := range p.Combinations {
		xys := make(plotter.XYs, len(p.Rows))
		for i, row := range p.Rows {
			xys[i].X = axisValue(p.AxisField, row)
			xys[i].Y = row.Fields[c.LineKey].Num
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, err
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = parseHexColor(c.Color)
		plt.Add(line)
		plt.Legend.Add(c.LineName, line)
	}
	plt.Legend.Top = true
	return plt, nil
}

// axisValue reads the horizontal position of a row. Text cells cannot
// drive a numeric axis, such rows fall back to their position.
func axisValue(field string, row chart.ProjectedRow) float64 {
	if field == chart.IndexField {
		return float64(row.Index)
	}
	v := row.Fields[field]
	if !v.Number {
		return float64(row.Index)
	}
	return v.Num
}

// SVG renders the plot as an SVG document, suitable for inlining into a
// page.
func SVG(p *chart.Plot, width, height vg.Length) ([]byte, error) {
	plt, err := build(p)
	if err != nil {
		return nil, err
	}
	canvas := vgsvg.New(width, height)
	plt.Draw(draw.New(canvas))

	var buf bytes.Buffer
	if _, err := canvas.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// PNG renders the plot as a PNG image for export.
func PNG(p *chart.Plot, width, height vg.Length) ([]byte, error) {
	plt, err := build(p)
	if err != nil {
		return nil, err
	}
	img := vgimg.New(width, height)
	plt.Draw(draw.New(img))

	var buf bytes.Buffer
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func parseHexColor(s string) color.Color {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.Black
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
