// Package config loads shumway-inspect settings from SHUMWAY_* environment
// variables.
package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config holds the inspector's settings. PathScale multiplies every path-data
// coordinate; ShapeHit selects shape-accurate hit tests for -hit.
type Config struct {
	Debug     bool    `envconfig:"DEBUG" default:"false"`
	PathScale float64 `envconfig:"PATH_SCALE" default:"1"`
	ShapeHit  bool    `envconfig:"SHAPE_HIT" default:"true"`
}

// Load reads SHUMWAY_* variables from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("shumway", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
