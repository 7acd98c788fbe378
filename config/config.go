// Package config loads the translator's JSON configuration file,
// adapted from the teacher's configuration/config_parser.go: the same
// encoding/json-backed, flat config struct, generalized from Imposm
// mapping-rebuild options to this translator's input/output paths and
// combination cap.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/geocart/cartosld/powerset"
)

// MaxCombinationsEnv overrides MaxCombinations when set to a positive
// integer; it is consulted once, by Load, and never read again.
const MaxCombinationsEnv = "CARTOSLD_MAX_COMBINATIONS"

// Config is the translator's on-disk configuration.
type Config struct {
	// InputPath is the cartographic stylesheet to translate.
	InputPath string `json:"input_path"`
	// OutputPath is where the rendered SLD document is written.
	OutputPath string `json:"output_path"`
	// MappingPath, if set, points at a mapping.Catalog YAML file used
	// as the translator's authoritative featuretype.Source.
	MappingPath string `json:"mapping_path,omitempty"`
	// StyleName is copied into the emitted SLD UserStyle.
	StyleName string `json:"style_name,omitempty"`
	// MaxCombinations bounds the power-set combiner. Zero after Load
	// means the caller should use powerset.DefaultMaxCombinations.
	MaxCombinations int `json:"max_combinations,omitempty"`
}

// Load reads and parses the JSON configuration file at path, then
// applies the CARTOSLD_MAX_COMBINATIONS environment override, if
// present and positive, on top of whatever the file specified.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %q: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config %q: %w", path, err)
	}

	if raw := os.Getenv(MaxCombinationsEnv); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			cfg.MaxCombinations = n
		}
	}

	return cfg, nil
}

// ResolvedMaxCombinations returns c.MaxCombinations, or
// powerset.DefaultMaxCombinations when the config left it unset.
func (c Config) ResolvedMaxCombinations() int {
	if c.MaxCombinations > 0 {
		return c.MaxCombinations
	}
	return powerset.DefaultMaxCombinations
}
