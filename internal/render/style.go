// Package render draws the jet and radio figures with gonum/plot.
package render

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	black   = color.RGBA{A: 255}
	red     = color.RGBA{R: 255, A: 255}
	green   = color.RGBA{G: 128, A: 255}
	blue    = color.RGBA{B: 255, A: 255}
	magenta = color.RGBA{R: 191, B: 191, A: 255}
)

var (
	solid   []vg.Length
	dotted  = []vg.Length{vg.Points(1.5), vg.Points(4)}
	dashed  = []vg.Length{vg.Points(9), vg.Points(4)}
	dashDot = []vg.Length{vg.Points(9), vg.Points(3), vg.Points(1.5), vg.Points(3)}
)

// Width and height of every figure
const (
	FigureWidth  = 14 * vg.Inch
	FigureHeight = 6 * vg.Inch
)

// bandStyle is how one radio band is drawn, in band order
type bandStyle struct {
	color  color.Color
	dashes []vg.Length
	shape  draw.GlyphDrawer
	radius vg.Length
}

var bandStyles = []bandStyle{
	{color: red, dashes: dashed, shape: draw.BoxGlyph{}, radius: vg.Points(7)},
	{color: blue, dashes: dashDot, shape: draw.RingGlyph{}, radius: vg.Points(9)},
	{color: green, dashes: solid, shape: draw.CircleGlyph{}, radius: vg.Points(8)},
}

func newFigure(xLabel, yLabel string, labelSize vg.Length) *plot.Plot {
	p := plot.New()
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.X.Label.TextStyle.Font.Size = labelSize
	p.Y.Label.TextStyle.Font.Size = labelSize
	p.X.Tick.Label.Font.Size = vg.Points(18)
	p.Y.Tick.Label.Font.Size = vg.Points(18)
	p.X.LineStyle.Width = vg.Points(2.5)
	p.Y.LineStyle.Width = vg.Points(2.5)
	p.X.Tick.LineStyle.Width = vg.Points(2)
	p.Y.Tick.LineStyle.Width = vg.Points(2)
	p.X.Tick.Length = vg.Points(10)
	p.Y.Tick.Length = vg.Points(10)
	p.Legend.Top = true
	p.Legend.TextStyle.Font.Size = vg.Points(20)
	return p
}

func styledLine(xys plotter.XYs, c color.Color, width vg.Length, dashes []vg.Length) (*plotter.Line, error) {
	l, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	l.LineStyle.Color = c
	l.LineStyle.Width = width
	l.LineStyle.Dashes = dashes
	return l, nil
}

func styledScatter(xys plotter.XYs, c color.Color, shape draw.GlyphDrawer, radius vg.Length) (*plotter.Scatter, error) {
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, err
	}
	s.GlyphStyle.Color = c
	s.GlyphStyle.Shape = shape
	s.GlyphStyle.Radius = radius
	return s, nil
}

// positive keeps only points a log-log axis can place
func positive(x, y []float64, logX bool) plotter.XYs {
	xys := make(plotter.XYs, 0, len(x))
	for i := range x {
		if y[i] <= 0 || (logX && x[i] <= 0) {
			continue
		}
		xys = append(xys, plotter.XY{X: x[i], Y: y[i]})
	}
	return xys
}

// limits fixes the axis ranges. Plot.Add widens the axes to the data, so
// this runs after every plotter has been added.
func limits(p *plot.Plot, xmin, xmax, ymin, ymax float64) {
	p.X.Min, p.X.Max = xmin, xmax
	p.Y.Min, p.Y.Max = ymin, ymax
}

// verticalMarker spans [y0, y1] at x
func verticalMarker(x, y0, y1 float64) plotter.XYs {
	return plotter.XYs{{X: x, Y: y0}, {X: x, Y: y1}}
}
