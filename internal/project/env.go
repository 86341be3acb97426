package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v9"
)

// Env holds settings read from the environment.
type Env struct {
	Home     string `env:"WALLCALC_HOME"`                        // Data directory, default ~/.wallcalc
	LogLevel string `env:"WALLCALC_LOG_LEVEL" envDefault:"info"` // debug, info, warn, error
}

// LoadEnv parses the WALLCALC_* environment variables.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	if e.Home == "" {
		e.Home = DefaultConfigDir()
	}
	return e, nil
}

// DefaultConfigDir returns the default directory for application data.
// On all platforms this is ~/.wallcalc/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".wallcalc")
}

// Paths locates the data files inside a data directory.
type Paths struct {
	Dir string
}

// Paths returns the file locations for the environment's data directory.
func (e Env) Paths() Paths {
	return Paths{Dir: e.Home}
}

// Config returns the path of the application config file.
func (p Paths) Config() string {
	return filepath.Join(p.Dir, "config.json")
}

// Catalog returns the path of the roll catalog file.
func (p Paths) Catalog() string {
	return filepath.Join(p.Dir, "catalog.json")
}

// Templates returns the path of the room templates file.
func (p Paths) Templates() string {
	return filepath.Join(p.Dir, "templates.json")
}
