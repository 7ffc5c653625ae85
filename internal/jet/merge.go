package jet

import (
	"fmt"

	"github.com/chrissnell/jetfigures/internal/align"
	"github.com/chrissnell/jetfigures/internal/physics"
)

// Merge joins shock and energy samples on their quantized times and derives
// the shock velocity and four-velocity of every joined row. The shock time
// is kept; the energy time and mass are discarded.
func Merge(shock []ShockSample, energy []EnergySample, keyScale float64) ([]Sample, align.JoinReport) {
	pairs, report := align.JoinOnTime(ShockTimes(shock), EnergyTimes(energy), keyScale)

	samples := make([]Sample, len(pairs))
	for i, p := range pairs {
		s, e := shock[p.Left], energy[p.Right]
		samples[i] = Sample{
			T:         s.T,
			R:         s.R,
			Gsh:       s.Gsh,
			Tobs:      s.Tobs,
			Ek:        e.Ek,
			Bsh:       physics.ShockVelocity(s.Gsh),
			GammaBeta: physics.FourVelocity(s.Gsh),
		}
	}
	return samples, report
}

// Column extracts one quantity from every sample
func Column(samples []Sample, f func(Sample) float64) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = f(s)
	}
	return out
}

// EpochTargets holds the reference values the epochs are located at
type EpochTargets struct {
	EarlyDays        float64
	SedovRadius      float64
	TorusRadius      float64
	AccelerationRows int
}

// LocateEpochs finds the early, Sedov, torus-edge and post-acceleration
// rows. Targets outside the sampled range clamp to the nearest endpoint;
// an acceleration offset that runs past the last row is an error.
func LocateEpochs(samples []Sample, targets EpochTargets) ([]Epoch, error) {
	if len(samples) == 0 {
		return nil, errNoRows("locate epochs")
	}

	tobs := Column(samples, func(s Sample) float64 { return s.Tobs })
	r := Column(samples, func(s Sample) float64 { return s.R })

	searches := []struct {
		kind   EpochKind
		values []float64
		target float64
	}{
		{EpochEarly, tobs, targets.EarlyDays},
		{EpochSedov, r, targets.SedovRadius},
		{EpochTorus, r, targets.TorusRadius},
	}

	epochs := make([]Epoch, 0, 4)
	for _, s := range searches {
		m, err := align.Nearest(s.values, s.target)
		if err != nil {
			return nil, fmt.Errorf("locate %s: %w", s.kind, err)
		}
		epochs = append(epochs, Epoch{
			Kind:    s.kind,
			Row:     m.Index,
			Sample:  samples[m.Index],
			Target:  s.target,
			Clamped: m.Clamped,
		})
	}

	torus := epochs[2].Row
	row := torus + targets.AccelerationRows
	if row >= len(samples) {
		return nil, fmt.Errorf("locate %s: row %d + %d is past the last merged row %d",
			EpochAccelerated, torus, targets.AccelerationRows, len(samples)-1)
	}
	epochs = append(epochs, Epoch{Kind: EpochAccelerated, Row: row, Sample: samples[row]})

	return epochs, nil
}
