package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLProvider implements ConfigProvider for YAML configuration files.
// Keys missing from the file keep their default values.
type YAMLProvider struct {
	filename string
	config   *ConfigData
}

// NewYAMLProvider creates a new YAML configuration provider
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{
		filename: filename,
	}
}

// LoadConfig loads the complete configuration from the YAML file
func (y *YAMLProvider) LoadConfig() (*ConfigData, error) {
	cfgFile, err := os.ReadFile(y.filename)
	if err != nil {
		return nil, err
	}

	config, err := Parse(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", y.filename, err)
	}

	y.config = config
	return config, nil
}

// Parse decodes YAML on top of the defaults and validates the result
func Parse(data []byte) (*ConfigData, error) {
	config := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// GetPhysics returns the physical constants
func (y *YAMLProvider) GetPhysics() (*PhysicsData, error) {
	if y.config == nil {
		_, err := y.LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return &y.config.Physics, nil
}

// GetBetaEnergy returns the beta-energy pipeline configuration
func (y *YAMLProvider) GetBetaEnergy() (*BetaEnergyData, error) {
	if y.config == nil {
		_, err := y.LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return &y.config.BetaEnergy, nil
}

// GetRadio returns the radio light-curve pipeline configuration
func (y *YAMLProvider) GetRadio() (*RadioData, error) {
	if y.config == nil {
		_, err := y.LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return &y.config.Radio, nil
}

// Load picks the YAML provider when a path is given and the defaults otherwise
func Load(path string) (*ConfigData, error) {
	var p ConfigProvider = DefaultProvider{}
	if path != "" {
		p = NewYAMLProvider(path)
	}
	return p.LoadConfig()
}
