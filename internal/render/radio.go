package render

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/chrissnell/jetfigures/internal/radio"
)

// Radio figure axis limits
const (
	radioXMin = 20
	radioXMax = 5000
	radioYMin = 1e26
	radioYMax = 3e29
)

// errorPoints pairs observed points with their error bars
type errorPoints struct {
	plotter.XYs
	plotter.YErrors
}

// RadioFigure plots the simulated light curves as lines and the observed
// luminosities with sigma-scaled error bars, one color per band.
func RadioFigure(res *radio.Result, sigma float64) (*Figure, error) {
	p := newFigure("Epoch (days)", "L_ν (erg s^-1 Hz^-1)", vg.Points(28))
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.X.Tick.Marker = tickMarker(LinTicks(1000, 5000, 5), LinTicks(100, 5000, 50))

	for i, b := range res.Bands {
		st := bandStyles[i%len(bandStyles)]

		if b.Model != nil {
			lum := make([]float64, len(b.Model.Lum))
			for j, l := range b.Model.Lum {
				lum[j] = l / b.ModelDivisor
			}
			line, err := styledLine(positive(b.Model.Time, lum, false), st.color, vg.Points(4), st.dashes)
			if err != nil {
				return nil, fmt.Errorf("%s model: %w", b.Label, err)
			}
			p.Add(line)
			p.Legend.Add(b.Label, line)
		}

		if len(b.Observations) == 0 {
			continue
		}
		pts := observedPoints(b, sigma)
		if len(pts.XYs) == 0 {
			continue
		}
		bars, err := plotter.NewYErrorBars(pts)
		if err != nil {
			return nil, fmt.Errorf("%s observations: %w", b.Label, err)
		}
		bars.LineStyle.Color = st.color
		bars.LineStyle.Width = vg.Points(1.5)
		marks, err := styledScatter(pts.XYs, st.color, st.shape, st.radius)
		if err != nil {
			return nil, fmt.Errorf("%s observations: %w", b.Label, err)
		}
		p.Add(bars, marks)
	}

	label, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: 200, Y: 1e29}},
		Labels: []string{"A"},
	})
	if err != nil {
		return nil, err
	}
	for i := range label.TextStyle {
		label.TextStyle[i].Font.Size = vg.Points(35)
	}
	p.Add(label)

	limits(p, radioXMin, radioXMax, radioYMin, radioYMax)
	return &Figure{Main: p}, nil
}

// observedPoints converts a band's observations to spectral luminosities.
// The lower error bar is cut at half the axis floor so that it stays
// drawable on the log axis.
func observedPoints(b radio.Band, sigma float64) errorPoints {
	freq := b.FrequencyGHz * 1e9
	var pts errorPoints
	for _, o := range b.Observations {
		y := o.Lum / freq
		if y <= 0 {
			continue
		}
		e := sigma * o.LumErr / freq
		low := e
		if y-low <= 0 {
			low = y - radioYMin/2
			if low < 0 {
				low = 0
			}
		}
		pts.XYs = append(pts.XYs, plotter.XY{X: o.Time, Y: y})
		pts.YErrors = append(pts.YErrors, struct{ Low, High float64 }{Low: low, High: e})
	}
	return pts
}
