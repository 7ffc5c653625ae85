package config

// ConfigProvider defines the interface for configuration data sources
type ConfigProvider interface {
	// Load complete configuration
	LoadConfig() (*ConfigData, error)

	// Get specific configuration sections
	GetPhysics() (*PhysicsData, error)
	GetBetaEnergy() (*BetaEnergyData, error)
	GetRadio() (*RadioData, error)
}

// ConfigData represents the complete configuration of both figure pipelines
type ConfigData struct {
	Physics    PhysicsData    `yaml:"physics" json:"physics"`
	BetaEnergy BetaEnergyData `yaml:"beta_energy" json:"beta_energy"`
	Radio      RadioData      `yaml:"radio" json:"radio"`
}

// PhysicsData holds the physical constants and unit scales shared by both
// pipelines. All values are CGS.
type PhysicsData struct {
	SpeedOfLight  float64 `yaml:"speed_of_light" json:"speed_of_light"` // cm/s
	LengthUnit    float64 `yaml:"length_unit" json:"length_unit"`       // code length unit, cm
	SecondsPerDay float64 `yaml:"seconds_per_day" json:"seconds_per_day"`
	ProtonMass    float64 `yaml:"proton_mass" json:"proton_mass"`     // g
	OpeningAngle  float64 `yaml:"opening_angle" json:"opening_angle"` // jet half-opening angle, rad
	EnergyUnit    float64 `yaml:"energy_unit" json:"energy_unit"`     // code density*volume scale
	Parsec        float64 `yaml:"parsec" json:"parsec"`               // cm
	MicroJansky   float64 `yaml:"micro_jansky" json:"micro_jansky"`   // erg/s/cm^2/Hz
}

// BetaEnergyData configures the jet velocity and kinetic energy figures
type BetaEnergyData struct {
	ShockPositionFile string `yaml:"shock_position_file" json:"shock_position_file"`
	MassEnergyFile    string `yaml:"mass_energy_file" json:"mass_energy_file"`
	BetaFigure        string `yaml:"beta_figure" json:"beta_figure"`
	EnergyFigure      string `yaml:"energy_figure" json:"energy_figure"`

	// EnergyTimeOffset is added to every mass/energy time so both series
	// share the same time origin.
	EnergyTimeOffset float64 `yaml:"energy_time_offset" json:"energy_time_offset"`
	TimeKeyScale     float64 `yaml:"time_key_scale" json:"time_key_scale"`

	EarlyEpochDays   float64 `yaml:"early_epoch_days" json:"early_epoch_days"`
	SedovRadius      float64 `yaml:"sedov_radius" json:"sedov_radius"`
	TorusRadius      float64 `yaml:"torus_radius" json:"torus_radius"`
	AccelerationRows int     `yaml:"acceleration_rows" json:"acceleration_rows"`
}

// RadioData configures the radio light-curve figure
type RadioData struct {
	LightCurveRoot  string `yaml:"light_curve_root" json:"light_curve_root"`
	ObservationFile string `yaml:"observation_file" json:"observation_file"`
	Sheet           string `yaml:"sheet,omitempty" json:"sheet,omitempty"`
	Figure          string `yaml:"figure" json:"figure"`

	DistanceMpc    float64              `yaml:"distance_mpc" json:"distance_mpc"`
	FrequencyRemap []FrequencyRemapData `yaml:"frequency_remap" json:"frequency_remap"`
	Bands          []BandData           `yaml:"bands" json:"bands"`
	ErrorBarSigma  float64              `yaml:"error_bar_sigma" json:"error_bar_sigma"`

	// EpochIsMJD marks the spreadsheet time column as Modified Julian Date
	EpochIsMJD bool `yaml:"epoch_is_mjd,omitempty" json:"epoch_is_mjd,omitempty"`
}

// FrequencyRemapData rewrites one recorded frequency (GHz) to its canonical value
type FrequencyRemapData struct {
	From float64 `yaml:"from" json:"from"`
	To   float64 `yaml:"to" json:"to"`
}

// BandData describes one observing band
type BandData struct {
	Label        string  `yaml:"label" json:"label"`
	FrequencyGHz float64 `yaml:"frequency_ghz" json:"frequency_ghz"`
	// FileTag selects the simulated light curve <root>-thick-<tag>.dat
	FileTag string `yaml:"file_tag" json:"file_tag"`
	// ModelDivisor converts the simulated luminosity to a spectral luminosity
	ModelDivisor float64 `yaml:"model_divisor" json:"model_divisor"`
}
