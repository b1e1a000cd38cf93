// Package config loads the settings of the validation harness from the
// environment, with an optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Defaults for configuration values.
const (
	DefaultDBPath      = "validation.db"
	DefaultGridSamples = 25
	DefaultRelTol      = 1e-12
	DefaultMinLRE      = 11.0
)

// DefaultFunctions is the sweep run when FUNCTIONS is unset.
var DefaultFunctions = []string{"gamma", "beta", "marcum", "erf"}

// Config holds the validation-harness configuration. The numeric core takes
// no configuration; everything here concerns the sweeps and their storage.
type Config struct {
	DBPath      string   // SQLite file for validation results; empty disables persistence
	GridSamples int      // points per parameter axis in a sweep
	RelTol      float64  // tolerance handed to the iterative refinements
	MinLRE      float64  // digits of agreement below which a case counts as a failure
	Functions   []string // which function families to sweep
}

// Load reads configuration from environment variables (and .env file if present).
func Load() Config {
	_ = godotenv.Load() // Ignore error if .env doesn't exist

	cfg := Config{
		DBPath:      DefaultDBPath,
		GridSamples: DefaultGridSamples,
		RelTol:      DefaultRelTol,
		MinLRE:      DefaultMinLRE,
		Functions:   DefaultFunctions,
	}

	if v := os.Getenv("DB_PATH"); v != "" {
		cfg.DBPath = v
	}

	if v := os.Getenv("GRID_SAMPLES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.GridSamples = n
		}
	}

	if v := os.Getenv("REL_TOL"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.RelTol = f
		}
	}

	if v := os.Getenv("MIN_LRE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.MinLRE = f
		}
	}

	if v := os.Getenv("FUNCTIONS"); v != "" {
		var fns []string
		for _, name := range strings.Split(v, ",") {
			if name = strings.TrimSpace(name); name != "" {
				fns = append(fns, name)
			}
		}
		if len(fns) > 0 {
			cfg.Functions = fns
		}
	}

	return cfg
}

// Validate checks that configuration values are within acceptable ranges.
func Validate(cfg Config) error {
	if cfg.GridSamples < 2 {
		return fmt.Errorf("GRID_SAMPLES must be at least 2, got %d", cfg.GridSamples)
	}
	if cfg.RelTol <= 0 || cfg.RelTol > 1e-3 {
		return fmt.Errorf("REL_TOL must be in (0, 1e-3], got %g", cfg.RelTol)
	}
	if cfg.MinLRE < 0 || cfg.MinLRE > 17 {
		return fmt.Errorf("MIN_LRE must be between 0 and 17, got %g", cfg.MinLRE)
	}
	known := map[string]bool{"gamma": true, "beta": true, "marcum": true, "erf": true}
	for _, fn := range cfg.Functions {
		if !known[fn] {
			return fmt.Errorf("unknown function family %q in FUNCTIONS", fn)
		}
	}
	return nil
}
