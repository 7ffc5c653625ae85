// Package radio prepares the observed and simulated radio light curves.
package radio

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/soniakeys/meeus/v3/julian"

	"github.com/chrissnell/jetfigures/internal/physics"
	"github.com/chrissnell/jetfigures/internal/table"
	"github.com/chrissnell/jetfigures/pkg/config"
)

// ObservationColumns are the spreadsheet columns the pipeline reads
var ObservationColumns = []string{"time", "t_exp", "freq", "tflux", "err_tflux"}

// Observation is one flux density measurement
type Observation struct {
	Time     float64 // days; rebased to the explosion by Rebase
	TExp     float64 // days since the experiment reference time
	Freq     float64 // GHz
	TFlux    float64 // µJy
	ErrTFlux float64 // µJy
	Lum      float64 // erg/s
	LumErr   float64 // erg/s
}

// LoadObservations reads the observation spreadsheet
func LoadObservations(path, sheet string) ([]Observation, error) {
	tbl, err := table.ReadWorkbook(path, sheet, ObservationColumns)
	if err != nil {
		return nil, err
	}

	tm, texp, freq := tbl.Col("time"), tbl.Col("t_exp"), tbl.Col("freq")
	flux, errFlux := tbl.Col("tflux"), tbl.Col("err_tflux")
	obs := make([]Observation, tbl.Len())
	for i := range obs {
		obs[i] = Observation{Time: tm[i], TExp: texp[i], Freq: freq[i], TFlux: flux[i], ErrTFlux: errFlux[i]}
	}
	return obs, nil
}

// RemapFrequencies rewrites legacy frequencies to their canonical values.
// Rules apply in order and only on exact equality. It returns the number of
// rewritten values.
func RemapFrequencies(obs []Observation, rules []config.FrequencyRemapData) int {
	n := 0
	for _, rule := range rules {
		for i := range obs {
			if obs[i].Freq == rule.From {
				obs[i].Freq = rule.To
				n++
			}
		}
	}
	return n
}

// ExplosionTimeError is returned when the observations disagree on the
// explosion time
type ExplosionTimeError struct {
	Values []float64
}

func (e *ExplosionTimeError) Error() string {
	if len(e.Values) == 0 {
		return "no observations to derive the explosion time from"
	}
	parts := make([]string, len(e.Values))
	for i, v := range e.Values {
		parts[i] = fmt.Sprintf("%g", v)
	}
	return fmt.Sprintf("time - t_exp must be identical for every observation, found %d values: [%s]",
		len(e.Values), strings.Join(parts, ", "))
}

// ExplosionTime derives the explosion epoch as the single distinct value of
// time - t_exp across all observations.
func ExplosionTime(obs []Observation) (float64, error) {
	seen := make(map[float64]struct{})
	var distinct []float64
	for _, o := range obs {
		v := o.Time - o.TExp
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		distinct = append(distinct, v)
	}
	if len(distinct) != 1 {
		sort.Float64s(distinct)
		return 0, &ExplosionTimeError{Values: distinct}
	}
	return distinct[0], nil
}

// ApplyLuminosity converts every flux density and its error to a luminosity
func ApplyLuminosity(obs []Observation, u physics.Units, distanceMpc float64) {
	for i := range obs {
		scale := u.LuminosityScale(distanceMpc, obs[i].Freq)
		obs[i].Lum = obs[i].TFlux * scale
		obs[i].LumErr = obs[i].ErrTFlux * scale
	}
}

// Rebase shifts every observation time so the explosion is at zero
func Rebase(obs []Observation, explosion float64) {
	for i := range obs {
		obs[i].Time -= explosion
	}
}

// MJDToTime converts a Modified Julian Date to UTC
func MJDToTime(mjd float64) time.Time {
	return julian.JDToTime(mjd + 2400000.5).UTC()
}
