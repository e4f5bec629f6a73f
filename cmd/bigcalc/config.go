package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// bigcalcConfig is the shape of an optional bigcalc.toml found in the
// current directory or one of its ancestors, holding the output-verbosity
// and table-size knobs a caller may want to fix across invocations.
type bigcalcConfig struct {
	Output outputConfig `toml:"output"`
	ModExp modExpConfig `toml:"modexp"`
}

type outputConfig struct {
	// Verbose, when true, is equivalent to passing --verbose on every
	// invocation.
	Verbose bool `toml:"verbose"`
}

type modExpConfig struct {
	// TableBits sizes the default precomputation table used by any
	// command that builds a modular-exponentiation table.
	TableBits int `toml:"table_bits"`
}

func defaultConfig() bigcalcConfig {
	return bigcalcConfig{ModExp: modExpConfig{TableBits: 256}}
}

// findConfigFile walks upward from startDir looking for bigcalc.toml,
// stopping at the filesystem root. It reports ok == false, no error, if
// no config file is found anywhere in the chain.
func findConfigFile(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "bigcalc.toml")
		if _, statErr := os.Stat(candidate); statErr == nil {
			return candidate, true, nil
		} else if !errors.Is(statErr, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, statErr)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadConfig reads and parses a config file, falling back to defaultConfig
// if path is empty and no bigcalc.toml can be found from the cwd upward.
func loadConfig(path string) (bigcalcConfig, error) {
	cfg := defaultConfig()

	if path == "" {
		found, ok, err := findConfigFile(".")
		if err != nil {
			return cfg, err
		}
		if !ok {
			return cfg, nil
		}
		path = found
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return bigcalcConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return cfg, nil
}
