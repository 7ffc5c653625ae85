package jet

import (
	"fmt"

	"github.com/chrissnell/jetfigures/internal/align"
	"github.com/chrissnell/jetfigures/internal/log"
	"github.com/chrissnell/jetfigures/internal/physics"
	"github.com/chrissnell/jetfigures/pkg/config"
)

// Result is everything the figures and the diagnostic table need
type Result struct {
	Samples []Sample
	Join    align.JoinReport
	Epochs  []Epoch
	Summary Summary
}

// Epoch returns the located epoch of the given kind
func (r *Result) Epoch(kind EpochKind) (Epoch, bool) {
	for _, e := range r.Epochs {
		if e.Kind == kind {
			return e, true
		}
	}
	return Epoch{}, false
}

// Run loads both simulation files, merges them and locates the reference
// epochs. Any failure aborts the run.
func Run(cfg *config.ConfigData) (*Result, error) {
	units := physics.FromConfig(cfg.Physics)
	be := cfg.BetaEnergy

	shock, err := LoadShockPositions(be.ShockPositionFile, units)
	if err != nil {
		return nil, fmt.Errorf("error loading shock positions: %w", err)
	}
	energy, err := LoadMassEnergy(be.MassEnergyFile, units, be.EnergyTimeOffset)
	if err != nil {
		return nil, fmt.Errorf("error loading mass/energy: %w", err)
	}
	log.Infow("loaded simulation output", "shock_rows", len(shock), "energy_rows", len(energy))

	return Build(shock, energy, be)
}

// Build merges already loaded samples and locates the epochs
func Build(shock []ShockSample, energy []EnergySample, be config.BetaEnergyData) (*Result, error) {
	samples, report := Merge(shock, energy, be.TimeKeyScale)
	logJoin(report)
	if len(samples) == 0 {
		return nil, fmt.Errorf("no shock rows matched an energy row (%d shock, %d energy)", report.LeftRows, report.RightRows)
	}

	epochs, err := LocateEpochs(samples, EpochTargets{
		EarlyDays:        be.EarlyEpochDays,
		SedovRadius:      be.SedovRadius,
		TorusRadius:      be.TorusRadius,
		AccelerationRows: be.AccelerationRows,
	})
	if err != nil {
		return nil, err
	}
	for _, e := range epochs {
		if e.Clamped {
			log.Warnw("reference value outside sampled range, using nearest endpoint",
				"epoch", e.Kind, "target", e.Target, "row", e.Row)
		}
		log.Debugw("located epoch", "epoch", e.Kind, "row", e.Row, "tobs", e.Sample.Tobs, "r", e.Sample.R)
	}

	summary := Summarize(samples)
	log.Infow("merged table",
		"rows", summary.Rows,
		"mean_beta", summary.MeanBeta,
		"beta_stddev", summary.BetaStdDev,
		"peak_gammabeta", summary.PeakGammaBeta,
		"peak_ek_erg", summary.PeakEnergy)

	return &Result{Samples: samples, Join: report, Epochs: epochs, Summary: summary}, nil
}

func logJoin(r align.JoinReport) {
	log.Infow("joined shock and energy series",
		"matched", r.Matched,
		"shock_dropped", r.LeftDropped,
		"energy_dropped", r.RightDropped)
	if r.FansOut() {
		log.Warnw("duplicate time keys multiplied joined rows",
			"shock_duplicate_keys", r.LeftDuplicateKeys,
			"energy_duplicate_keys", r.RightDuplicateKeys)
	}
}
