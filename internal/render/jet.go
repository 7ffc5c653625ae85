package render

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/chrissnell/jetfigures/internal/jet"
)

// epochStyle is how one reference epoch is marked on the jet figures
type epochStyle struct {
	label  string
	color  color.Color
	dashes []vg.Length
	shape  draw.GlyphDrawer
	radius vg.Length
}

var epochStyles = map[jet.EpochKind]epochStyle{
	jet.EpochEarly:       {label: "early", color: red, dashes: dotted, shape: draw.CircleGlyph{}, radius: vg.Points(10)},
	jet.EpochSedov:       {label: "r_Sedov", color: blue, dashes: dashDot, shape: draw.TriangleGlyph{}, radius: vg.Points(10)},
	jet.EpochTorus:       {label: "r_f", color: green, dashes: dashed, shape: draw.BoxGlyph{}, radius: vg.Points(9)},
	jet.EpochAccelerated: {label: "r_f + Δr_acc", color: magenta, dashes: dashed, shape: draw.RingGlyph{}, radius: vg.Points(12)},
}

// BetaFigure plots the jet velocity against observer time with the
// reference epochs marked, and an inset around the torus edge.
func BetaFigure(res *jet.Result) (*Figure, error) {
	tobs := jet.Column(res.Samples, func(s jet.Sample) float64 { return s.Tobs })
	bsh := jet.Column(res.Samples, func(s jet.Sample) float64 { return s.Bsh })
	xys := positive(tobs, bsh, true)

	p := newFigure("Epoch [days]", "β_jet", vg.Points(28))
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = tickMarker(LogTicks(-1, 3, 1, 1), concat(LogTicks(-1, 2, 2, 9), LogTicks(3, 3, 2, 5)))
	p.Y.Tick.Marker = tickMarker(LogTicks(-1, 0, 1, 1), concat(LogTicks(-1, -1, 2, 9), LogTicks(-2, -2, 7, 9)))

	line, err := styledLine(xys, black, vg.Points(4), solid)
	if err != nil {
		return nil, err
	}
	p.Add(line)
	p.Legend.Add("β_jet", line)

	for _, e := range res.Epochs {
		if e.Sample.Tobs <= 0 {
			continue
		}
		st := epochStyles[e.Kind]
		m, err := styledLine(verticalMarker(e.Sample.Tobs, 0.07, 1), st.color, vg.Points(3), st.dashes)
		if err != nil {
			return nil, err
		}
		p.Add(m)
		p.Legend.Add(st.label, m)
	}

	limits(p, 0.1, 5000, 0.07, 1.1)

	inset, err := betaInset(xys, res.Epochs)
	if err != nil {
		return nil, err
	}

	return &Figure{
		Main:   p,
		Insets: []Inset{{Plot: inset, Left: 0.65, Bottom: 0.75, Width: 0.15, Height: 0.18}},
	}, nil
}

func betaInset(xys plotter.XYs, epochs []jet.Epoch) (*plot.Plot, error) {
	p := newFigure("Time [days]", "β_jet", vg.Points(16))
	p.X.Tick.Label.Font.Size = vg.Points(10)
	p.Y.Tick.Label.Font.Size = vg.Points(10)
	p.X.LineStyle.Width = vg.Points(2)
	p.Y.LineStyle.Width = vg.Points(2)

	line, err := styledLine(xys, black, vg.Points(4), solid)
	if err != nil {
		return nil, err
	}
	p.Add(line)

	for _, e := range epochs {
		if e.Kind != jet.EpochTorus && e.Kind != jet.EpochAccelerated {
			continue
		}
		st := epochStyles[e.Kind]
		width := vg.Points(2)
		if e.Kind == jet.EpochAccelerated {
			width = vg.Points(4)
		}
		m, err := styledLine(verticalMarker(e.Sample.Tobs, 0.05, 1), st.color, width, st.dashes)
		if err != nil {
			return nil, err
		}
		p.Add(m)
	}
	limits(p, 770, 820, 0.05, 0.25)
	return p, nil
}

// EnergyFigure plots the kinetic energy against the four-velocity with the
// reference epochs as markers.
func EnergyFigure(res *jet.Result) (*Figure, error) {
	gb := jet.Column(res.Samples, func(s jet.Sample) float64 { return s.GammaBeta })
	ek := jet.Column(res.Samples, func(s jet.Sample) float64 { return s.Ek / 1e51 })

	p := newFigure("Γβ", "E_K / 10^51 erg", vg.Points(28))
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = tickMarker(LogTicks(-1, 1, 1, 1), concat(LogTicks(-2, -2, 5, 9), LogTicks(-1, 0, 2, 9)))
	p.Y.Tick.Marker = tickMarker(LogTicks(0, 0, 1, 1), concat(LogTicks(-1, -1, 2, 9), LogTicks(0, 0, 2, 2)))

	line, err := styledLine(positive(gb, ek, true), black, vg.Points(4), solid)
	if err != nil {
		return nil, err
	}
	p.Add(line)
	p.Legend.Add("jet", line)

	for _, e := range res.Epochs {
		pt := positive([]float64{e.Sample.GammaBeta}, []float64{e.Sample.Ek / 1e51}, true)
		if len(pt) == 0 {
			continue
		}
		st := epochStyles[e.Kind]
		s, err := styledScatter(pt, st.color, st.shape, st.radius)
		if err != nil {
			return nil, err
		}
		p.Add(s)
		p.Legend.Add(st.label, s)
	}
	limits(p, 0.05, 12, 0.1, 2.5)

	return &Figure{Main: p}, nil
}
