// Package config handles configuration loading for the correction run.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes the feature service layout: where the service lives,
// which layers hold stations and line segments, and which attribute fields
// carry the station codes.
type Config struct {
	ServiceURL    string `yaml:"service_url"`
	StationsLayer string `yaml:"stations_layer"`
	LinesLayer    string `yaml:"lines_layer"`
	CodeField     string `yaml:"code_field"`
	Code1Field    string `yaml:"code1_field"`
	Code2Field    string `yaml:"code2_field"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		ServiceURL:    "https://services.arcgis.com/rail/arcgis/rest/services/railnet/FeatureServer",
		StationsLayer: "0",
		LinesLayer:    "1",
		CodeField:     "code",
		Code1Field:    "code1",
		Code2Field:    "code2",
	}
}

// Load reads and parses the YAML configuration file from the specified
// path. Fields left empty in the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
