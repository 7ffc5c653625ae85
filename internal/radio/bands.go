package radio

import (
	"fmt"

	"github.com/chrissnell/jetfigures/internal/table"
	"github.com/chrissnell/jetfigures/pkg/config"
)

// LightCurve is a simulated luminosity history for one band
type LightCurve struct {
	Time []float64
	Lum  []float64
}

// LightCurvePath names the simulated light curve for a band
func LightCurvePath(root, tag string) string {
	return fmt.Sprintf("%s-thick-%s.dat", root, tag)
}

// LoadLightCurve reads one simulated light curve
func LoadLightCurve(path string) (*LightCurve, error) {
	tbl, err := table.ReadFile(path, table.LightCurve)
	if err != nil {
		return nil, err
	}
	return &LightCurve{Time: tbl.Col("time"), Lum: tbl.Col("lum")}, nil
}

// Band groups the observations and the model of one observing band
type Band struct {
	config.BandData
	Observations []Observation
	Model        *LightCurve
}

// SplitBands selects the observations of each band by exact frequency
// match. Observations that fall in no band are counted and left out.
func SplitBands(obs []Observation, bands []config.BandData) ([]Band, int) {
	out := make([]Band, len(bands))
	for i, b := range bands {
		out[i].BandData = b
	}

	excluded := 0
	for _, o := range obs {
		matched := false
		for i := range out {
			if o.Freq == out[i].FrequencyGHz {
				out[i].Observations = append(out[i].Observations, o)
				matched = true
			}
		}
		if !matched {
			excluded++
		}
	}
	return out, excluded
}
