package render

import (
	"bytes"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/plot/vg"

	"github.com/chrissnell/jetfigures/internal/jet"
	"github.com/chrissnell/jetfigures/internal/radio"
	"github.com/chrissnell/jetfigures/pkg/config"
)

func TestLogTicks(t *testing.T) {
	tests := []struct {
		name     string
		got      []float64
		expected []float64
	}{
		{name: "decades", got: LogTicks(-1, 3, 1, 1), expected: []float64{0.1, 1, 10, 100, 1000}},
		{name: "minor", got: LogTicks(-2, -2, 7, 9), expected: []float64{0.07, 0.08, 0.09}},
		{name: "two decades", got: LogTicks(0, 1, 2, 3), expected: []float64{2, 3, 20, 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.got) != len(tt.expected) {
				t.Fatalf("ticks = %v, expected %v", tt.got, tt.expected)
			}
			for i := range tt.got {
				if math.Abs(tt.got[i]-tt.expected[i]) > 1e-12 {
					t.Errorf("ticks[%d] = %v, expected %v", i, tt.got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestLinTicks(t *testing.T) {
	got := LinTicks(1000, 5000, 5)
	expected := []float64{1000, 2000, 3000, 4000, 5000}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("LinTicks()[%d] = %v, expected %v", i, got[i], expected[i])
		}
	}
	if n := len(LinTicks(100, 5000, 50)); n != 50 {
		t.Errorf("len = %d, expected 50", n)
	}
	if got := LinTicks(3, 9, 1); len(got) != 1 || got[0] != 3 {
		t.Errorf("LinTicks(n=1) = %v", got)
	}
}

func TestTickMarkerLabelsMajorOnly(t *testing.T) {
	ticks := tickMarker([]float64{0.1, 1}, []float64{0.2, 1, 2}).Ticks(0.1, 2)
	labelled := 0
	for _, tk := range ticks {
		if tk.Label != "" {
			labelled++
		}
	}
	if len(ticks) != 4 || labelled != 2 {
		t.Errorf("ticks = %+v, expected 4 ticks with 2 labels", ticks)
	}
}

func syntheticJet() *jet.Result {
	var samples []jet.Sample
	for i := 0; i < 200; i++ {
		gsh := 1 + 9*math.Exp(-float64(i)/40)
		samples = append(samples, jet.Sample{
			T:         float64(i),
			R:         float64(i) * 0.5,
			Gsh:       gsh,
			Tobs:      0.05 * math.Pow(1.06, float64(i)),
			Ek:        1e51 * (0.2 + float64(i)/200),
			Bsh:       math.Sqrt(1 - 1/(gsh*gsh)),
			GammaBeta: math.Sqrt(gsh*gsh - 1),
		})
	}
	// the first row sits exactly at rest and must be skipped on log axes
	samples[0].Bsh, samples[0].GammaBeta, samples[0].Tobs = 0, 0, 0

	epochs := []jet.Epoch{
		{Kind: jet.EpochEarly, Row: 10, Sample: samples[10]},
		{Kind: jet.EpochSedov, Row: 30, Sample: samples[30]},
		{Kind: jet.EpochTorus, Row: 135, Sample: samples[135]},
		{Kind: jet.EpochAccelerated, Row: 140, Sample: samples[140]},
	}
	return &jet.Result{Samples: samples, Epochs: epochs}
}

func assertPNG(t *testing.T, f *Figure) {
	t.Helper()
	data, err := f.PNG(4*vg.Inch, 2*vg.Inch)
	if err != nil {
		t.Fatalf("PNG() error = %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() <= b.Dy() || b.Dy() == 0 {
		t.Errorf("image bounds = %v, expected a landscape figure", b)
	}
}

func TestBetaFigure(t *testing.T) {
	f, err := BetaFigure(syntheticJet())
	if err != nil {
		t.Fatalf("BetaFigure() error = %v", err)
	}
	if len(f.Insets) != 1 {
		t.Fatalf("insets = %d, expected 1", len(f.Insets))
	}
	if f.Main.X.Min != 0.1 || f.Main.X.Max != 5000 {
		t.Errorf("x range = [%v, %v], expected [0.1, 5000]", f.Main.X.Min, f.Main.X.Max)
	}
	if in := f.Insets[0].Plot; in.X.Min != 770 || in.X.Max != 820 {
		t.Errorf("inset x range = [%v, %v]", in.X.Min, in.X.Max)
	}
	assertPNG(t, f)
}

func TestEnergyFigure(t *testing.T) {
	f, err := EnergyFigure(syntheticJet())
	if err != nil {
		t.Fatalf("EnergyFigure() error = %v", err)
	}
	if f.Main.Y.Min != 0.1 || f.Main.Y.Max != 2.5 {
		t.Errorf("y range = [%v, %v], expected [0.1, 2.5]", f.Main.Y.Min, f.Main.Y.Max)
	}
	assertPNG(t, f)
}

func syntheticRadio() *radio.Result {
	cfg := config.Default()
	res := &radio.Result{}
	for i, b := range cfg.Radio.Bands {
		model := &radio.LightCurve{}
		for d := 50.0; d < 5000; d += 50 {
			model.Time = append(model.Time, d)
			model.Lum = append(model.Lum, b.ModelDivisor*1e28*math.Exp(-d/2000))
		}
		freq := b.FrequencyGHz * 1e9
		res.Bands = append(res.Bands, radio.Band{
			BandData: b,
			Model:    model,
			Observations: []radio.Observation{
				{Time: 1500 + float64(i)*100, Freq: b.FrequencyGHz, Lum: 5e27 * freq, LumErr: 1e27 * freq},
				// the error bar reaches below zero and gets cut
				{Time: 2500, Freq: b.FrequencyGHz, Lum: 3e26 * freq, LumErr: 2e26 * freq},
			},
		})
	}
	return res
}

func TestRadioFigure(t *testing.T) {
	res := syntheticRadio()
	f, err := RadioFigure(res, 3)
	if err != nil {
		t.Fatalf("RadioFigure() error = %v", err)
	}
	if f.Main.Y.Min != 1e26 || f.Main.Y.Max != 3e29 {
		t.Errorf("y range = [%v, %v]", f.Main.Y.Min, f.Main.Y.Max)
	}
	assertPNG(t, f)

	pts := observedPoints(res.Bands[0], 3)
	low, high := pts.YError(1)
	if y := pts.XYs[1].Y; y-low <= 0 {
		t.Errorf("lower error bar %v reaches below zero from %v", low, y)
	}
	if math.Abs(high-6e26) > 1e12 {
		t.Errorf("upper error bar = %g, expected 6e26", high)
	}
}

func TestFigureSave(t *testing.T) {
	f, err := EnergyFigure(syntheticJet())
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "Arp299B-AT1-E_K.png")
	if err := f.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		t.Errorf("figure not written: %v", err)
	}

	if err := f.Save(filepath.Join(t.TempDir(), "missing", "fig.png")); err == nil {
		t.Error("Save() into a missing directory succeeded")
	}
}
