// Package physics holds the closed-form unit conversions used by the figure
// pipelines. Every function is a pure function of its inputs and Units.
package physics

import (
	"math"

	"github.com/chrissnell/jetfigures/pkg/config"
)

// Units carries the constants the conversions depend on
type Units struct {
	SpeedOfLight  float64
	LengthUnit    float64
	SecondsPerDay float64
	ProtonMass    float64
	OpeningAngle  float64
	EnergyUnit    float64
	Parsec        float64
	MicroJansky   float64
}

// FromConfig copies the physical constants out of the configuration
func FromConfig(p config.PhysicsData) Units {
	return Units{
		SpeedOfLight:  p.SpeedOfLight,
		LengthUnit:    p.LengthUnit,
		SecondsPerDay: p.SecondsPerDay,
		ProtonMass:    p.ProtonMass,
		OpeningAngle:  p.OpeningAngle,
		EnergyUnit:    p.EnergyUnit,
		Parsec:        p.Parsec,
		MicroJansky:   p.MicroJansky,
	}
}

// Megaparsec returns one megaparsec in cm
func (u Units) Megaparsec() float64 {
	return 1e6 * u.Parsec
}

// DaysPerCodeTime is the observer-frame duration, in days, of one code time
// unit (LengthUnit / c).
func (u Units) DaysPerCodeTime() float64 {
	return u.LengthUnit / u.SpeedOfLight / u.SecondsPerDay
}

// ObserverTimeDays converts simulation time t and shock radius r (both in
// code units) to the arrival time seen by a distant observer.
func (u Units) ObserverTimeDays(t, r float64) float64 {
	return (t - r) * u.DaysPerCodeTime()
}

// EnergyScale converts code-unit kinetic energy to erg for a double-sided
// jet of the configured half-opening angle.
func (u Units) EnergyScale() float64 {
	solidAngle := 2 * math.Pi * (1 - math.Cos(u.OpeningAngle))
	return solidAngle * u.ProtonMass * u.EnergyUnit * u.SpeedOfLight * u.SpeedOfLight
}

// KineticEnergyErg converts a code-unit kinetic energy to erg
func (u Units) KineticEnergyErg(ek float64) float64 {
	return ek * u.EnergyScale()
}

// LuminosityScale returns the factor turning a flux density in µJy at
// frequency freqGHz into νLν (erg/s) for a source at distanceMpc.
func (u Units) LuminosityScale(distanceMpc, freqGHz float64) float64 {
	d := distanceMpc * u.Megaparsec()
	return u.MicroJansky * 4 * math.Pi * d * d * freqGHz * 1e9
}

// Luminosity converts a flux density in µJy to a luminosity
func (u Units) Luminosity(fluxMicroJy, freqGHz, distanceMpc float64) float64 {
	return fluxMicroJy * u.LuminosityScale(distanceMpc, freqGHz)
}

// ShockVelocity returns β = sqrt(1 - 1/Γ²) for shock Lorentz factor gsh
func ShockVelocity(gsh float64) float64 {
	return math.Sqrt(1 - 1/(gsh*gsh))
}

// FourVelocity returns Γβ for shock Lorentz factor gsh
func FourVelocity(gsh float64) float64 {
	return ShockVelocity(gsh) * gsh
}
