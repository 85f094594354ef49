// Package config loads CLI configuration from the environment. Every tunable
// of the extraction pipeline can be set with a SCHEDGRID_-prefixed variable;
// command-line flags override whatever the environment supplies.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/tsawler/schedgrid/grid"
	"github.com/tsawler/schedgrid/normalize"
)

// Config holds every environment-tunable setting of the schedgrid CLI.
type Config struct {
	// Geometric tuning
	MinHeaderLabels int     `envconfig:"MIN_HEADER_LABELS" default:"3"`
	HeaderBucket    float64 `envconfig:"HEADER_BUCKET" default:"5"`
	HeaderMargin    float64 `envconfig:"HEADER_MARGIN" default:"2"`
	RowThreshold    float64 `envconfig:"ROW_THRESHOLD" default:"4"`
	MinTimeCells    int     `envconfig:"MIN_TIME_CELLS" default:"2"`

	// Normalization defaults
	DefaultInstructor string `envconfig:"DEFAULT_INSTRUCTOR" default:"TBD"`
	DefaultRoom       string `envconfig:"DEFAULT_ROOM" default:"Main Ballroom"`
	DefaultDay        string `envconfig:"DEFAULT_DAY" default:"Saturday"`
	DefaultLevel      string `envconfig:"DEFAULT_LEVEL" default:"All Levels"`

	// Pipeline toggles
	FreeText bool `envconfig:"FREE_TEXT" default:"true"`

	// Logging
	Debug bool `envconfig:"DEBUG" default:"false"`
}

// Load reads configuration from SCHEDGRID_-prefixed environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("schedgrid", &cfg); err != nil {
		return Config{}, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the pipeline cannot run with.
func (c Config) Validate() error {
	if c.MinHeaderLabels < 1 {
		return fmt.Errorf("min header labels must be at least 1, got %d", c.MinHeaderLabels)
	}
	if c.HeaderBucket <= 0 {
		return fmt.Errorf("header bucket must be positive, got %g", c.HeaderBucket)
	}
	if c.RowThreshold <= 0 {
		return fmt.Errorf("row threshold must be positive, got %g", c.RowThreshold)
	}
	if c.MinTimeCells < 1 {
		return fmt.Errorf("min time cells must be at least 1, got %d", c.MinTimeCells)
	}
	return nil
}

// GridConfig converts the loaded settings into grid tuning constants.
func (c Config) GridConfig() grid.Config {
	return grid.Config{
		MinHeaderLabels: c.MinHeaderLabels,
		HeaderBucket:    c.HeaderBucket,
		HeaderMargin:    c.HeaderMargin,
		RowThreshold:    c.RowThreshold,
		MinTimeCells:    c.MinTimeCells,
	}
}

// Defaults converts the loaded settings into normalization defaults.
func (c Config) Defaults() normalize.Defaults {
	return normalize.Defaults{
		Instructor: c.DefaultInstructor,
		Room:       c.DefaultRoom,
		Day:        c.DefaultDay,
		Level:      c.DefaultLevel,
	}
}
