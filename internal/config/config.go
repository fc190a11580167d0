// Package config loads the viewer's optional YAML configuration file.
// A missing file is not an error; the loader falls back to defaults so the
// binary always starts.
package config

import (
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultConfigFilename = "triview.yml"

// Prevent loading excessively large config files by mistake.
const maxConfigSize = 1024 * 1024 // 1MB

// Config holds everything the binary needs to wire the window, renderer, and
// camera. Pointer fields distinguish unset from zero so partial files only
// override what they name.
type Config struct {
	WindowTitle  string `yaml:"window_title"`
	WindowWidth  int    `yaml:"window_width"`
	WindowHeight int    `yaml:"window_height"`

	// PresentMode is "vsync" or "uncapped".
	PresentMode string `yaml:"present_mode"`

	// MSAASamples is 1, 4, 8, or 16. Unrecognized values fall back to the default.
	MSAASamples int `yaml:"msaa_samples"`

	// ClearColor is the background in linear RGBA, each channel 0..1.
	ClearColor struct {
		R float64 `yaml:"r"`
		G float64 `yaml:"g"`
		B float64 `yaml:"b"`
		A float64 `yaml:"a"`
	} `yaml:"clear_color"`

	Zoom      float64  `yaml:"zoom"`
	ZoomSpeed float64  `yaml:"zoom_speed"`
	ZoomMin   *float64 `yaml:"zoom_min"` // pointer to distinguish unset vs 0
	ZoomMax   *float64 `yaml:"zoom_max"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	var c Config
	c.WindowTitle = "triview"
	c.WindowWidth = 800
	c.WindowHeight = 600
	c.PresentMode = "vsync"
	c.MSAASamples = 4
	c.ClearColor.R = 0.1
	c.ClearColor.G = 0.1
	c.ClearColor.B = 0.1
	c.ClearColor.A = 1.0
	c.Zoom = 5.0
	c.ZoomSpeed = 0.25
	return c
}

// Load reads and parses the config file at path. A missing, unreadable,
// oversized, or malformed file yields the defaults; only the missing-file case
// is silent since that is the normal state for a fresh checkout.
//
// Parameters:
//   - path: the config file path to load
//
// Returns:
//   - Config: the parsed config merged over the defaults
func Load(path string) Config {
	config := Default()

	info, err := os.Stat(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("failed to stat config", "path", path, "error", err)
		}
		return config
	}

	if info.Size() > maxConfigSize {
		slog.Warn("config file too large, using defaults", "path", path, "size", info.Size())
		return config
	}

	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("failed to read config, using defaults", "path", path, "error", err)
		return config
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		slog.Warn("failed to parse config, using defaults", "path", path, "error", err)
		return Default()
	}

	slog.Info("loaded config", "path", path, "size", info.Size())
	return config
}
