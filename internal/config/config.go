// Package config loads the optional project configuration file
// (.grugast.yaml or .grugast.yml) that controls the handful of knobs the
// Applier and Directory Walker expose beyond the spec's fixed defaults:
// source file extension, indentation, and directory ordering.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// Config holds project-wide grugast settings, mirroring the shape of the
// teacher's printer.Options (IndentWidth, UseSpaces) generalized into a
// file-backed project setting rather than a per-invocation CLI flag only.
type Config struct {
	Extension            string `yaml:"extension"`
	IndentWidth          int    `yaml:"indent_width"`
	SortDirectoryEntries bool   `yaml:"sort_directory_entries"`
	UseTabs              bool   `yaml:"use_tabs"`
}

// Default returns the spec-mandated defaults: ".grug" extension, four-space
// indentation, deterministic sorted directory ordering.
func Default() Config {
	return Config{
		Extension:            ".grug",
		IndentWidth:          4,
		SortDirectoryEntries: true,
		UseTabs:              false,
	}
}

var candidateNames = []string{".grugast.yaml", ".grugast.yml"}

// Load looks for a config file in dir and merges it onto Default(). A
// missing file is not an error.
func Load(dir string) (Config, error) {
	cfg := Default()

	for _, name := range candidateNames {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return cfg, fmt.Errorf("reading %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing %s: %w", path, err)
		}
		return cfg, nil
	}

	return cfg, nil
}
