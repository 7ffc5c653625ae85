package config

import (
	"errors"
	"fmt"
	"slices"
)

// Validate checks that every constant is usable and every path is set.
// All problems are reported together.
func (c *ConfigData) Validate() error {
	var errs []error

	positive := map[string]float64{
		"physics.speed_of_light":       c.Physics.SpeedOfLight,
		"physics.length_unit":          c.Physics.LengthUnit,
		"physics.seconds_per_day":      c.Physics.SecondsPerDay,
		"physics.proton_mass":          c.Physics.ProtonMass,
		"physics.opening_angle":        c.Physics.OpeningAngle,
		"physics.energy_unit":          c.Physics.EnergyUnit,
		"physics.parsec":               c.Physics.Parsec,
		"physics.micro_jansky":         c.Physics.MicroJansky,
		"beta_energy.time_key_scale":   c.BetaEnergy.TimeKeyScale,
		"beta_energy.early_epoch_days": c.BetaEnergy.EarlyEpochDays,
		"beta_energy.sedov_radius":     c.BetaEnergy.SedovRadius,
		"beta_energy.torus_radius":     c.BetaEnergy.TorusRadius,
		"radio.distance_mpc":           c.Radio.DistanceMpc,
		"radio.error_bar_sigma":        c.Radio.ErrorBarSigma,
	}
	for _, name := range sortedKeys(positive) {
		if positive[name] <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %g", name, positive[name]))
		}
	}

	if c.BetaEnergy.AccelerationRows < 0 {
		errs = append(errs, fmt.Errorf("beta_energy.acceleration_rows must not be negative, got %d", c.BetaEnergy.AccelerationRows))
	}

	paths := map[string]string{
		"beta_energy.shock_position_file": c.BetaEnergy.ShockPositionFile,
		"beta_energy.mass_energy_file":    c.BetaEnergy.MassEnergyFile,
		"beta_energy.beta_figure":         c.BetaEnergy.BetaFigure,
		"beta_energy.energy_figure":       c.BetaEnergy.EnergyFigure,
		"radio.light_curve_root":          c.Radio.LightCurveRoot,
		"radio.observation_file":          c.Radio.ObservationFile,
		"radio.figure":                    c.Radio.Figure,
	}
	for _, name := range sortedKeys(paths) {
		if paths[name] == "" {
			errs = append(errs, fmt.Errorf("%s is required", name))
		}
	}

	if len(c.Radio.Bands) == 0 {
		errs = append(errs, errors.New("radio.bands must list at least one band"))
	}
	for i, b := range c.Radio.Bands {
		if b.FrequencyGHz <= 0 || b.ModelDivisor <= 0 {
			errs = append(errs, fmt.Errorf("radio.bands[%d] (%s): frequency and model divisor must be positive", i, b.Label))
		}
		if b.FileTag == "" {
			errs = append(errs, fmt.Errorf("radio.bands[%d] (%s): file_tag is required", i, b.Label))
		}
	}

	return errors.Join(errs...)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
