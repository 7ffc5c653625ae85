package radio

import (
	"fmt"
	"time"

	"github.com/chrissnell/jetfigures/internal/log"
	"github.com/chrissnell/jetfigures/internal/physics"
	"github.com/chrissnell/jetfigures/pkg/config"
)

// Result holds the prepared bands of the radio figure
type Result struct {
	ExplosionTime float64
	Remapped      int
	Excluded      int
	Bands         []Band
}

// Run loads the simulated light curves and the observation spreadsheet and
// prepares every band for plotting.
func Run(cfg *config.ConfigData) (*Result, error) {
	rc := cfg.Radio

	models := make(map[string]*LightCurve, len(rc.Bands))
	for _, b := range rc.Bands {
		path := LightCurvePath(rc.LightCurveRoot, b.FileTag)
		lc, err := LoadLightCurve(path)
		if err != nil {
			return nil, fmt.Errorf("error loading %s light curve: %w", b.Label, err)
		}
		models[b.FileTag] = lc
		log.Infow("loaded simulated light curve", "band", b.Label, "file", path, "rows", len(lc.Time))
	}

	obs, err := LoadObservations(rc.ObservationFile, rc.Sheet)
	if err != nil {
		return nil, fmt.Errorf("error loading observations: %w", err)
	}

	res, err := Prepare(obs, physics.FromConfig(cfg.Physics), rc)
	if err != nil {
		return nil, err
	}
	for i := range res.Bands {
		res.Bands[i].Model = models[res.Bands[i].FileTag]
	}
	return res, nil
}

// Prepare derives the explosion time, remaps frequencies, converts fluxes to
// luminosities, rebases times and splits the observations into bands. obs
// is modified in place.
func Prepare(obs []Observation, u physics.Units, rc config.RadioData) (*Result, error) {
	explosion, err := ExplosionTime(obs)
	if err != nil {
		return nil, err
	}
	if rc.EpochIsMJD {
		log.Infow("derived explosion time", "mjd", explosion, "utc", MJDToTime(explosion).Format(time.RFC3339))
	} else {
		log.Infow("derived explosion time", "time", explosion)
	}

	remapped := RemapFrequencies(obs, rc.FrequencyRemap)
	ApplyLuminosity(obs, u, rc.DistanceMpc)
	Rebase(obs, explosion)

	bands, excluded := SplitBands(obs, rc.Bands)
	log.Infow("split observations into bands", "observations", len(obs), "remapped", remapped, "excluded", excluded)
	if excluded > 0 {
		log.Warnw("observations outside every band are not plotted", "count", excluded)
	}

	return &Result{ExplosionTime: explosion, Remapped: remapped, Excluded: excluded, Bands: bands}, nil
}
