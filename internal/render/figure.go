package render

import (
	"bytes"
	"fmt"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Inset is a plot drawn over part of the main plot. Left, Bottom, Width
// and Height are fractions of the figure.
type Inset struct {
	Plot                        *plot.Plot
	Left, Bottom, Width, Height float64
}

// Figure is a main plot with optional insets
type Figure struct {
	Main   *plot.Plot
	Insets []Inset
}

// PNG renders the figure at the given size
func (f *Figure) PNG(w, h vg.Length) ([]byte, error) {
	img := vgimg.New(w, h)
	dc := draw.New(img)
	f.Main.Draw(dc)

	for _, in := range f.Insets {
		rect := vg.Rectangle{
			Min: vg.Point{X: vg.Length(in.Left) * w, Y: vg.Length(in.Bottom) * h},
			Max: vg.Point{X: vg.Length(in.Left+in.Width) * w, Y: vg.Length(in.Bottom+in.Height) * h},
		}
		in.Plot.Draw(draw.Canvas{Canvas: img, Rectangle: rect})
	}

	var buf bytes.Buffer
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("could not encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// Save renders the figure and writes it to path. Nothing is written when
// rendering fails.
func (f *Figure) Save(path string) error {
	data, err := f.PNG(FigureWidth, FigureHeight)
	if err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create figure file: %w", err)
	}
	if _, err := out.Write(data); err != nil {
		out.Close()
		return fmt.Errorf("could not write figure %s: %w", path, err)
	}
	return out.Close()
}
