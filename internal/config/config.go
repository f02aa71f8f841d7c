// Package config loads optional run configuration from a JSON file.
// CLI flags override file values, file values override the built-in
// defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gemmology-dev/crystalgen/gen"
)

// Config holds output and presentation settings.
type Config struct {
	BaseDir string `json:"base_dir"`

	Elevation float64 `json:"elevation"`
	Azimuth   float64 `json:"azimuth"`
	FaceColor string  `json:"face_color"`
	EdgeColor string  `json:"edge_color"`
	EdgeWidth float64 `json:"edge_width"`
	Opacity   float64 `json:"opacity"`
	Size      int     `json:"size"`
	AsciiSTL  bool    `json:"ascii_stl"`
}

// Flags are the CLI values that may override the file.
type Flags struct {
	BaseDir string
}

// Load reads a JSON config file. Fields not set in the file keep their
// zero values until Resolve fills defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve applies flag overrides and fills remaining empty fields with
// defaults.
func (c *Config) Resolve(flags Flags) {
	if flags.BaseDir != "" {
		c.BaseDir = flags.BaseDir
	}
	if c.BaseDir == "" {
		c.BaseDir = "public"
	}

	def := gen.DefaultOptions()
	if c.Elevation == 0 {
		c.Elevation = def.Elevation
	}
	if c.Azimuth == 0 {
		c.Azimuth = def.Azimuth
	}
	if c.FaceColor == "" {
		c.FaceColor = def.FaceColor
	}
	if c.EdgeColor == "" {
		c.EdgeColor = def.EdgeColor
	}
	if c.EdgeWidth == 0 {
		c.EdgeWidth = def.EdgeWidth
	}
	if c.Opacity == 0 {
		c.Opacity = def.Opacity
	}
	if c.Size == 0 {
		c.Size = def.Size
	}
}

// Options converts the resolved config to exporter options.
func (c Config) Options() gen.Options {
	return gen.Options{
		Elevation: c.Elevation,
		Azimuth:   c.Azimuth,
		FaceColor: c.FaceColor,
		EdgeColor: c.EdgeColor,
		EdgeWidth: c.EdgeWidth,
		Opacity:   c.Opacity,
		Size:      c.Size,
		Binary:    !c.AsciiSTL,
	}
}
