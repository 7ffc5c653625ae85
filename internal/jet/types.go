// Package jet builds the merged shock/energy table behind the jet velocity
// and kinetic energy figures.
package jet

// ShockSample is one row of the shock-position file with its observer time
type ShockSample struct {
	T    float64 // simulation time, 1e16 cm / c
	R    float64 // shock radius, 1e16 cm
	Gsh  float64 // shock Lorentz factor
	Tobs float64 // observer time, days
}

// EnergySample is one row of the mass/energy file after unit conversion
type EnergySample struct {
	T  float64 // simulation time with the energy time offset applied
	M  float64 // mass, code units
	Ek float64 // kinetic energy, erg
}

// Sample is a joined shock/energy row with the derived kinematics
type Sample struct {
	T         float64
	R         float64
	Gsh       float64
	Tobs      float64
	Ek        float64
	Bsh       float64 // shock velocity over c
	GammaBeta float64 // four-velocity
}

// EpochKind names the reference epochs marked on both figures
type EpochKind string

const (
	EpochEarly       EpochKind = "early"
	EpochSedov       EpochKind = "r_Sedov"
	EpochTorus       EpochKind = "r_f"
	EpochAccelerated EpochKind = "r_f+dr_acc"
)

// Epoch is a located reference row
type Epoch struct {
	Kind   EpochKind
	Row    int
	Sample Sample
	// Target is the value searched for; zero for row-offset epochs
	Target  float64
	Clamped bool
}
