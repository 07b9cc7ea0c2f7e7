package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds all stereogram options.
type Config struct {
	Width          int     `json:"width"`
	Height         int     `json:"height"`
	TilePath       string  `json:"tile_path"`
	FontPath       string  `json:"font_path"`
	FontSize       int     `json:"font_size"`
	DepthValue     int     `json:"depth_value"`
	DepthMapPath   string  `json:"depth_map_path"`
	OutputPath     string  `json:"output_path"`
	CrossEyed      bool    `json:"cross_eyed"`
	PatternDivisor float64 `json:"pattern_divisor"`
	Text           string  `json:"text"`
	NoPreview      bool    `json:"no_preview"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
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

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Width          int
	Height         int
	TilePath       string
	FontPath       string
	FontSize       int
	DepthValue     int
	DepthMapPath   string
	OutputPath     string
	CrossEyed      bool
	PatternDivisor float64
	NoPreview      bool
}

// Resolve applies flag overrides and fills in defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.TilePath != "" {
		c.TilePath = flags.TilePath
	}
	if flags.FontPath != "" {
		c.FontPath = flags.FontPath
	}
	if flags.FontSize > 0 {
		c.FontSize = flags.FontSize
	}
	if flags.DepthValue > 0 {
		c.DepthValue = flags.DepthValue
	}
	if flags.DepthMapPath != "" {
		c.DepthMapPath = flags.DepthMapPath
	}
	if flags.OutputPath != "" {
		c.OutputPath = flags.OutputPath
	}
	if flags.CrossEyed {
		c.CrossEyed = true
	}
	if flags.PatternDivisor > 0 {
		c.PatternDivisor = flags.PatternDivisor
	}
	if flags.NoPreview {
		c.NoPreview = true
	}

	// Defaults
	if c.Width == 0 {
		c.Width = 640
	}
	if c.Height == 0 {
		c.Height = 480
	}
	if c.FontSize == 0 {
		c.FontSize = 24
	}
	if c.DepthValue == 0 {
		c.DepthValue = 60
	}
	if c.PatternDivisor == 0 {
		c.PatternDivisor = 2.0
	}
	if c.Text == "" {
		c.Text = "Hello, world!"
	}
}

// Validate checks the resolved configuration.
func (c *Config) Validate() error {
	if c.TilePath == "" {
		return fmt.Errorf("config: a tile image is required")
	}
	textMode := c.FontPath != ""
	mapMode := c.DepthMapPath != ""
	if textMode && mapMode {
		return fmt.Errorf("config: please specify just a string & font pair, or a depth map, not both")
	}
	if !textMode && !mapMode {
		return fmt.Errorf("config: please specify a font for text mode, or a depth map")
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: output dimensions must be positive")
	}
	if textMode {
		if c.FontSize <= 0 {
			return fmt.Errorf("config: font size must be positive")
		}
		if c.DepthValue < 1 || c.DepthValue > 255 {
			return fmt.Errorf("config: depth value must be between 1 and 255")
		}
	}
	if c.PatternDivisor <= 1.0 {
		return fmt.Errorf("config: pattern length divisor must be greater than 1.0")
	}
	return nil
}
