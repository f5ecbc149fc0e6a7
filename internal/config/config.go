// Package config reads command defaults from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds defaults that command-line flags may override
type Config struct {
	// Material preset name
	Material string `env:"LAMINATE_MATERIAL" envDefault:"carbon-epoxy"`

	// Ply thickness (mm); 0 uses the preset's nominal thickness
	Thickness float64 `env:"LAMINATE_THICKNESS" envDefault:"0"`

	// Relative ABD zero-snap tolerance; 0 disables snapping
	ZeroTolerance float64 `env:"LAMINATE_ZERO_TOL" envDefault:"1e-6"`

	// Exported diagram size (inches)
	PlotWidth  float64 `env:"LAMINATE_PLOT_WIDTH" envDefault:"6"`
	PlotHeight float64 `env:"LAMINATE_PLOT_HEIGHT" envDefault:"8"`
}

// Load parses the process environment
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses the given variables instead of the process environment
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.ZeroTolerance < 0 {
		return Config{}, fmt.Errorf("parse env: LAMINATE_ZERO_TOL must not be negative, got %g", cfg.ZeroTolerance)
	}
	if cfg.PlotWidth <= 0 || cfg.PlotHeight <= 0 {
		return Config{}, fmt.Errorf("parse env: plot size must be positive, got %gx%g", cfg.PlotWidth, cfg.PlotHeight)
	}
	return cfg, nil
}
