package physics

import (
	"gonum.org/v1/gonum/floats"
)

// ObserverTimes applies ObserverTimeDays row by row
func (u Units) ObserverTimes(t, r []float64) []float64 {
	dst := make([]float64, len(t))
	floats.SubTo(dst, t, r)
	floats.Scale(u.DaysPerCodeTime(), dst)
	return dst
}

// KineticEnergies converts a code-unit energy column to erg
func (u Units) KineticEnergies(ek []float64) []float64 {
	dst := append([]float64(nil), ek...)
	floats.Scale(u.EnergyScale(), dst)
	return dst
}

// ShiftTimes adds a constant offset to every time
func ShiftTimes(t []float64, offset float64) []float64 {
	dst := append([]float64(nil), t...)
	floats.AddConst(offset, dst)
	return dst
}
