package jet

import (
	"fmt"

	"github.com/chrissnell/jetfigures/internal/physics"
	"github.com/chrissnell/jetfigures/internal/table"
)

// LoadShockPositions reads the shock-position file and computes observer
// times. The first row of the file is discarded.
func LoadShockPositions(path string, u physics.Units) ([]ShockSample, error) {
	tbl, err := table.ReadFile(path, table.ShockPosition)
	if err != nil {
		return nil, err
	}
	return shockSamples(tbl, u), nil
}

func shockSamples(tbl *table.Table, u physics.Units) []ShockSample {
	t, r, gsh := tbl.Col("t"), tbl.Col("r"), tbl.Col("gsh")
	tobs := u.ObserverTimes(t, r)

	samples := make([]ShockSample, tbl.Len())
	for i := range samples {
		samples[i] = ShockSample{T: t[i], R: r[i], Gsh: gsh[i], Tobs: tobs[i]}
	}
	return samples
}

// LoadMassEnergy reads the mass/energy file, shifts its times by offset and
// converts the kinetic energy to erg.
func LoadMassEnergy(path string, u physics.Units, offset float64) ([]EnergySample, error) {
	tbl, err := table.ReadFile(path, table.MassEnergy)
	if err != nil {
		return nil, err
	}
	return energySamples(tbl, u, offset), nil
}

func energySamples(tbl *table.Table, u physics.Units, offset float64) []EnergySample {
	t := physics.ShiftTimes(tbl.Col("t"), offset)
	m := tbl.Col("M")
	ek := u.KineticEnergies(tbl.Col("Ek"))

	samples := make([]EnergySample, tbl.Len())
	for i := range samples {
		samples[i] = EnergySample{T: t[i], M: m[i], Ek: ek[i]}
	}
	return samples
}

// ShockTimes returns the time column of the shock samples
func ShockTimes(s []ShockSample) []float64 {
	out := make([]float64, len(s))
	for i := range s {
		out[i] = s[i].T
	}
	return out
}

// EnergyTimes returns the time column of the energy samples
func EnergyTimes(s []EnergySample) []float64 {
	out := make([]float64, len(s))
	for i := range s {
		out[i] = s[i].T
	}
	return out
}

func errNoRows(what string) error {
	return fmt.Errorf("%s: no rows", what)
}
