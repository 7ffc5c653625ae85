package jet

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary condenses the merged table for the run log and archive
type Summary struct {
	Rows          int
	MeanBeta      float64
	BetaStdDev    float64
	PeakGammaBeta float64
	PeakEnergy    float64 // erg
}

// Summarize computes the summary of a non-empty merged table
func Summarize(samples []Sample) Summary {
	if len(samples) == 0 {
		return Summary{}
	}
	bsh := Column(samples, func(s Sample) float64 { return s.Bsh })
	mean, std := stat.MeanStdDev(bsh, nil)
	if len(bsh) == 1 {
		std = 0
	}

	return Summary{
		Rows:          len(samples),
		MeanBeta:      mean,
		BetaStdDev:    std,
		PeakGammaBeta: floats.Max(Column(samples, func(s Sample) float64 { return s.GammaBeta })),
		PeakEnergy:    floats.Max(Column(samples, func(s Sample) float64 { return s.Ek })),
	}
}
