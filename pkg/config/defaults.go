package config

// Default returns the configuration the figures in the research note were
// produced with.
func Default() *ConfigData {
	return &ConfigData{
		Physics: PhysicsData{
			SpeedOfLight:  2.99792458e10,
			LengthUnit:    1e16,
			SecondsPerDay: 86400,
			ProtonMass:    1.67262158e-24,
			OpeningAngle:  0.1,
			EnergyUnit:    1e48,
			Parsec:        3.0857e18,
			MicroJansky:   1e-6 * 1e-23,
		},
		BetaEnergy: BetaEnergyData{
			ShockPositionFile: "fsp-pos.dat",
			MassEnergyFile:    "massen.dat",
			BetaFigure:        "Arp299B-AT1-beta.png",
			EnergyFigure:      "Arp299B-AT1-E_K.png",
			EnergyTimeOffset:  1.00503781526,
			TimeKeyScale:      10000,
			EarlyEpochDays:    1,
			SedovRadius:       15.08,
			TorusRadius:       67.5,
			AccelerationRows:  5,
		},
		Radio: RadioData{
			LightCurveRoot:  "lc",
			ObservationFile: "AT1_data.xlsx",
			Figure:          "Arp299B-AT1-radio_lc.png",
			DistanceMpc:     44.8,
			FrequencyRemap: []FrequencyRemapData{
				{From: 8.44, To: 8.42},
				{From: 1.54, To: 1.66},
			},
			Bands: []BandData{
				{Label: "8.4 GHz", FrequencyGHz: 8.42, FileTag: "8.42d9", ModelDivisor: 8.4e9},
				{Label: "5 GHz", FrequencyGHz: 4.99, FileTag: "4.99d9", ModelDivisor: 4.99e9},
				{Label: "1.7 GHz", FrequencyGHz: 1.66, FileTag: "1.66d9", ModelDivisor: 1.66e9},
			},
			ErrorBarSigma: 3,
		},
	}
}

// DefaultProvider serves the built-in configuration
type DefaultProvider struct{}

// LoadConfig returns a fresh copy of the defaults
func (DefaultProvider) LoadConfig() (*ConfigData, error) {
	return Default(), nil
}

func (d DefaultProvider) GetPhysics() (*PhysicsData, error) {
	c, _ := d.LoadConfig()
	return &c.Physics, nil
}

func (d DefaultProvider) GetBetaEnergy() (*BetaEnergyData, error) {
	c, _ := d.LoadConfig()
	return &c.BetaEnergy, nil
}

func (d DefaultProvider) GetRadio() (*RadioData, error) {
	c, _ := d.LoadConfig()
	return &c.Radio, nil
}
